// Package scenario supplies job workloads to the comparison harness: the
// built-in fixtures and a YAML loader for user-defined ones.
package scenario

import (
	"fmt"

	"github.com/me/schedsim/pkg/model"
)

// Scenario is a named workload: an ordered job list plus an optional
// round-robin quantum override. Job order doubles as the FCFS dispatch
// order, so fixtures keep their jobs sorted by arrival time.
type Scenario struct {
	Name        string
	Description string

	// Quantum overrides the round-robin slice for this workload.
	// Zero means "use the configured default".
	Quantum int

	Jobs []*model.Job
}

// Registry validates the job list and builds the immutable template every
// algorithm run copies from.
func (s *Scenario) Registry() (*model.Registry, error) {
	reg, err := model.NewRegistry(s.Jobs)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return reg, nil
}

// EmergencyCount returns the number of priority-1 jobs in the workload.
func (s *Scenario) EmergencyCount() int {
	n := 0
	for _, j := range s.Jobs {
		if j.Emergency() {
			n++
		}
	}
	return n
}
