package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/me/schedsim/pkg/model"
)

// fileScenario is the YAML shape of a scenario file:
//
//	name: night-shift
//	description: ...
//	quantum: 4
//	jobs:
//	  - id: 0
//	    label: Check-in
//	    classification: Standard
//	    priority: 3
//	    arrival: 0
//	    burst: 4
type fileScenario struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Quantum     int       `yaml:"quantum"`
	Jobs        []fileJob `yaml:"jobs"`
}

type fileJob struct {
	ID             int    `yaml:"id"`
	Label          string `yaml:"label"`
	Classification string `yaml:"classification"`
	Priority       int    `yaml:"priority"`
	Arrival        int    `yaml:"arrival"`
	Burst          int    `yaml:"burst"`
}

// Load reads a scenario from a YAML file. Job validity is checked through
// the same model constructors the built-ins go through, so a bad file is
// rejected before any simulation starts.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var fs fileScenario
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}
	if fs.Name == "" {
		return nil, fmt.Errorf("scenario file %s: missing name", path)
	}

	jobs := make([]*model.Job, len(fs.Jobs))
	for i, fj := range fs.Jobs {
		jobs[i] = &model.Job{
			ID:             fj.ID,
			Label:          fj.Label,
			Classification: fj.Classification,
			Priority:       fj.Priority,
			ArrivalTime:    fj.Arrival,
			BurstTime:      fj.Burst,
		}
		if err := jobs[i].Validate(); err != nil {
			return nil, fmt.Errorf("scenario file %s: %w", path, err)
		}
	}

	s := &Scenario{
		Name:        fs.Name,
		Description: fs.Description,
		Quantum:     fs.Quantum,
		Jobs:        jobs,
	}
	if _, err := s.Registry(); err != nil {
		return nil, err
	}
	return s, nil
}
