package model

import "fmt"

// MaxJobs bounds the number of jobs a single scenario may carry.
const MaxJobs = 20

// Registry is the immutable job template for a scenario. It is built once,
// validated once, and never mutated afterwards: every algorithm run works on
// its own deep copy from Clone. Copying is the only synchronization the
// simulation core needs, so concurrent runs over the same registry are safe.
type Registry struct {
	jobs []*Job
}

// NewRegistry validates the descriptors and returns a registry holding
// pristine copies of them. More than MaxJobs jobs, a negative arrival, a
// non-positive burst, or an out-of-range priority rejects the whole
// registry. An empty job list is legal.
func NewRegistry(jobs []*Job) (*Registry, error) {
	if len(jobs) > MaxJobs {
		return nil, fmt.Errorf("%w: %d jobs, limit %d", ErrCapacityExceeded, len(jobs), MaxJobs)
	}
	owned := make([]*Job, len(jobs))
	for i, j := range jobs {
		if err := j.Validate(); err != nil {
			return nil, err
		}
		c := j.Clone()
		c.Reset()
		owned[i] = c
	}
	return &Registry{jobs: owned}, nil
}

// Len returns the number of jobs in the registry.
func (r *Registry) Len() int {
	return len(r.jobs)
}

// Jobs returns the template jobs in registration order. Callers must treat
// the result as read-only; algorithm runs go through Clone instead.
func (r *Registry) Jobs() []*Job {
	return r.jobs
}

// Clone returns fresh, fully reset copies of the jobs for one algorithm run.
// Index order is registration order, which the schedulers use as their tie
// break (lowest index wins).
func (r *Registry) Clone() []*Job {
	out := make([]*Job, len(r.jobs))
	for i, j := range r.jobs {
		c := j.Clone()
		c.Reset()
		out[i] = c
	}
	return out
}
