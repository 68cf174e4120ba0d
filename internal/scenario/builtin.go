package scenario

import (
	"fmt"
	"sort"

	"github.com/me/schedsim/pkg/model"
)

func fixtureJob(id int, label, class string, priority, arrival, burst int) *model.Job {
	return &model.Job{
		ID:             id,
		Label:          label,
		Classification: class,
		Priority:       priority,
		ArrivalTime:    arrival,
		BurstTime:      burst,
	}
}

// builtins holds the three validation workloads. The emergency scenario is
// the primary one: a mass-casualty burst of priority-1 jobs landing on top
// of routine hospital operations.
var builtins = map[string]*Scenario{
	"emergency": {
		Name:        "emergency",
		Description: "Mass casualty: 6 critical patients arrive within 10 time units of each other while routine work is in flight.",
		Jobs: []*model.Job{
			fixtureJob(0, "Background Report", "Routine Documentation", 5, 0, 30),
			fixtureJob(1, "EMERGENCY #1", "Critical - Trauma", 1, 5, 3),
			fixtureJob(2, "EMERGENCY #2", "Critical - Cardiac", 1, 7, 3),
			fixtureJob(7, "Lab Processing", "Urgent - Lab Results", 2, 8, 10),
			fixtureJob(3, "EMERGENCY #3", "Critical - Respiratory", 1, 9, 3),
			fixtureJob(4, "EMERGENCY #4", "Critical - Hemorrhage", 1, 11, 3),
			fixtureJob(8, "Check-in", "Standard Registration", 3, 12, 4),
			fixtureJob(5, "EMERGENCY #5", "Critical - Head Injury", 1, 13, 3),
			fixtureJob(6, "EMERGENCY #6", "Critical - Multi-trauma", 1, 15, 3),
			fixtureJob(9, "Admin Task", "Non-critical Admin", 4, 15, 8),
			fixtureJob(10, "Lab Processing #2", "Urgent - Lab Results", 2, 18, 9),
			fixtureJob(11, "Database Backup", "Background Maintenance", 5, 20, 25),
		},
	},
	"normal": {
		Name:        "normal",
		Description: "Standard evening rush: mixed-priority workload with a single emergency.",
		Jobs: []*model.Job{
			fixtureJob(0, "Report Generation", "Routine", 5, 0, 20),
			fixtureJob(1, "Check-in #1", "Standard", 3, 3, 4),
			fixtureJob(2, "Lab Processing #1", "Urgent", 2, 6, 8),
			fixtureJob(3, "Check-in #2", "Standard", 3, 10, 4),
			fixtureJob(4, "EMERGENCY Patient", "Critical", 1, 12, 2),
			fixtureJob(5, "Lab Processing #2", "Urgent", 2, 15, 7),
			fixtureJob(6, "Admin Task", "Routine", 4, 18, 6),
			fixtureJob(7, "Check-in #3", "Standard", 3, 22, 4),
		},
	},
	"best": {
		Name:        "best",
		Description: "Light load: well-spaced routine operations and one emergency.",
		Jobs: []*model.Job{
			fixtureJob(0, "Routine Check-in", "Standard", 3, 0, 5),
			fixtureJob(1, "Lab Result Processing", "Urgent", 2, 8, 10),
			fixtureJob(2, "Admin Task", "Routine", 4, 15, 8),
			fixtureJob(3, "Emergency Patient", "Critical", 1, 20, 3),
			fixtureJob(4, "Report Generation", "Background", 5, 25, 12),
		},
	},
}

// Builtin returns the named built-in scenario with an independent job list,
// so callers can never corrupt the fixture.
func Builtin(name string) (*Scenario, error) {
	s, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q (have: %v)", name, Names())
	}
	jobs := make([]*model.Job, len(s.Jobs))
	for i, j := range s.Jobs {
		jobs[i] = j.Clone()
	}
	return &Scenario{
		Name:        s.Name,
		Description: s.Description,
		Quantum:     s.Quantum,
		Jobs:        jobs,
	}, nil
}

// Names lists the built-in scenarios in stable order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
