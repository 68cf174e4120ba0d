package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Hand-computed rotation with quantum 2:
//
//	t0  A runs 2 (B, C arrive during the slice)  queue: B C A
//	t2  B runs 2                                 queue: C A B
//	t4  C runs 2, completes at 6                 queue: A B
//	t6  A runs 2                                 queue: B A
//	t8  B runs its 1 remaining, completes at 9   queue: A
//	t9  A runs its 1 remaining, completes at 10
func TestRoundRobinRotation(t *testing.T) {
	reg := mustRegistry(t,
		job(0, 3, 0, 5),
		job(1, 3, 1, 3),
		job(2, 3, 2, 2),
	)

	res := NewRoundRobin(2).Run(reg)

	assert.Equal(t, 10, jobByID(t, res, 0).CompletionTime)
	assert.Equal(t, 9, jobByID(t, res, 1).CompletionTime)
	assert.Equal(t, 6, jobByID(t, res, 2).CompletionTime)

	assert.Equal(t, 0, jobByID(t, res, 0).ResponseTime)
	assert.Equal(t, 1, jobByID(t, res, 1).ResponseTime)
	assert.Equal(t, 2, jobByID(t, res, 2).ResponseTime)

	assert.Equal(t, 6, res.ContextSwitches)
	assert.Equal(t, 10, res.TotalTime)
}

// A job arriving during a slice is queued ahead of the job that just ran.
func TestRoundRobinArrivalsBeforeRequeue(t *testing.T) {
	reg := mustRegistry(t,
		job(0, 3, 0, 6),
		job(1, 3, 2, 1),
	)

	res := NewRoundRobin(4).Run(reg)

	// Job 1 arrived at t=2 inside job 0's first slice (0..4), so it runs
	// at t=4 before job 0 gets its remainder.
	assert.Equal(t, 4, jobByID(t, res, 1).StartTime)
	assert.Equal(t, 5, jobByID(t, res, 1).CompletionTime)
	assert.Equal(t, 7, jobByID(t, res, 0).CompletionTime)
}

// A burst shorter than the quantum finishes in one dispatch; the final
// slice of a longer burst is just the remainder.
func TestRoundRobinShortBurstSingleDispatch(t *testing.T) {
	reg := mustRegistry(t,
		job(0, 3, 0, 3),
	)

	res := NewRoundRobin(4).Run(reg)

	assert.Equal(t, 1, res.ContextSwitches)
	assert.Equal(t, 3, res.TotalTime)
	assert.Equal(t, 3, jobByID(t, res, 0).CompletionTime)
}

func TestRoundRobinIdleUntilLateArrival(t *testing.T) {
	reg := mustRegistry(t,
		job(0, 3, 5, 2),
	)

	res := NewRoundRobin(4).Run(reg)

	// Nothing arrives at t=0; the queue idles tick by tick until t=5.
	assert.Equal(t, 5, jobByID(t, res, 0).StartTime)
	assert.Equal(t, 0, jobByID(t, res, 0).ResponseTime)
	assert.Equal(t, 7, res.TotalTime)
}

func TestRoundRobinDefaultQuantum(t *testing.T) {
	rr := NewRoundRobin(0)
	assert.Equal(t, DefaultQuantum, rr.Quantum())
	assert.Contains(t, rr.Name(), "q=4")
}

// Context switches grow with slicing granularity: the overhead argument
// against round robin for priority workloads.
func TestRoundRobinSwitchCountByQuantum(t *testing.T) {
	reg := mustRegistry(t,
		job(0, 3, 0, 8),
		job(1, 3, 0, 8),
	)

	coarse := NewRoundRobin(8).Run(reg)
	fine := NewRoundRobin(2).Run(reg)

	assert.Equal(t, 2, coarse.ContextSwitches)
	assert.Equal(t, 8, fine.ContextSwitches)
	assert.Equal(t, coarse.TotalTime, fine.TotalTime)
}
