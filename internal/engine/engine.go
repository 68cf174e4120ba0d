// Package engine implements the four dispatch policies the simulator
// compares: preemptive priority, first-come-first-served, shortest-job-first,
// and round robin. Every policy is a pure function over a private copy of the
// job registry, so runs never observe each other and may execute in parallel.
package engine

import (
	"strings"

	"github.com/google/uuid"

	"github.com/me/schedsim/pkg/model"
)

// Algorithm is one scheduling policy. Run clones the registry before
// simulating, leaving the template untouched.
type Algorithm interface {
	// Name returns the human-readable policy name used in reports.
	Name() string

	// Run simulates the policy over a fresh copy of the registry and
	// returns the populated timing fields, the dispatch statistics, and,
	// for the preemptive policy, the event trace.
	Run(reg *model.Registry) *Result
}

// Result is the output of one algorithm run.
type Result struct {
	// RunID uniquely identifies this run across the comparison.
	RunID     string
	Algorithm string

	// Jobs are the run's private copies with all computed fields set,
	// in registry order.
	Jobs []*model.Job

	// Trace is the ordered dispatch-transition log. Only the preemptive
	// priority policy produces one; it is nil for the others.
	Trace []model.Event

	// TotalTime is the logical time at which the run's loop terminated.
	TotalTime int

	// ContextSwitches counts dispatches as defined by the policy.
	ContextSwitches int
}

func newResult(algorithm string, jobs []*model.Job) *Result {
	return &Result{
		RunID:     "run_" + uuid.New().String(),
		Algorithm: algorithm,
		Jobs:      jobs,
	}
}

// New returns the algorithm registered under name. Matching is
// case-insensitive over the short names: priority, fcfs, sjf, rr.
func New(name string, quantum int) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "priority":
		return NewPriority(), nil
	case "fcfs":
		return NewFCFS(), nil
	case "sjf":
		return NewSJF(), nil
	case "rr", "roundrobin", "round-robin":
		return NewRoundRobin(quantum), nil
	}
	return nil, model.ErrUnknownAlgorithm
}

// All returns the four policies in the order reports present them.
func All(quantum int) []Algorithm {
	return []Algorithm{
		NewPriority(),
		NewFCFS(),
		NewSJF(),
		NewRoundRobin(quantum),
	}
}

// firstDispatch fixes StartTime and ResponseTime the first time a job gets
// the processor. Resumes after preemption leave both untouched.
func firstDispatch(j *model.Job, now int) {
	if j.StartTime == model.NotStarted {
		j.StartTime = now
		j.ResponseTime = now - j.ArrivalTime
	}
}

// complete writes the completion-derived fields once the job's burst is
// fully consumed at time now.
func complete(j *model.Job, now int) {
	j.CompletionTime = now
	j.TurnaroundTime = now - j.ArrivalTime
	j.WaitingTime = j.TurnaroundTime - j.BurstTime
}
