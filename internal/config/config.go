// Package config holds the simulator's runtime settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds settings for the simulator CLI.
type Config struct {
	Quantum   int    `yaml:"quantum"`    // Round-robin time slice (default 4)
	LogLevel  string `yaml:"log_level"`  // Log level: debug, info, warn, error
	LogFormat string `yaml:"log_format"` // Log format: text, json
}

// Default returns sensible defaults.
func Default() Config {
	return Config{
		Quantum:   4,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads a YAML config file over the defaults. Unset fields keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Quantum <= 0 {
		return cfg, fmt.Errorf("config %s: quantum must be positive", path)
	}
	return cfg, nil
}
