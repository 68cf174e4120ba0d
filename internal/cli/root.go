// Package cli implements the schedsim command line interface.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/me/schedsim/internal/config"
	"github.com/me/schedsim/internal/logging"
	"github.com/me/schedsim/internal/scenario"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	cfg    config.Config
	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for the schedsim CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "schedsim",
		Short: "schedsim compares CPU scheduling policies over triage workloads",
		Long: `schedsim simulates preemptive priority, FCFS, SJF, and round-robin
dispatch over prioritized job workloads and reports per-job timings,
aggregate metrics, and the preemptive execution timeline.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Default()
			if flagConfig != "" {
				loaded, err := config.Load(flagConfig)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if flagLogLevel != "" {
				cfg.LogLevel = flagLogLevel
			}
			if flagLogFormat != "" {
				cfg.LogFormat = flagLogFormat
			}
			if flagDebug {
				cfg.LogLevel = "debug"
			}
			logger = logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format (text, json)")

	root.AddCommand(
		newCompareCmd(),
		newRunCmd(),
		newScenariosCmd(),
	)

	return root
}

// resolveScenario picks the workload for a command: an explicit YAML file
// wins, then a named built-in, then the emergency fixture.
func resolveScenario(file string, args []string) (*scenario.Scenario, error) {
	if file != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("give either a scenario name or --file, not both")
		}
		return scenario.Load(file)
	}
	name := "emergency"
	if len(args) > 0 {
		name = args[0]
	}
	return scenario.Builtin(name)
}
