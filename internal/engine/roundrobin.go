package engine

import (
	"fmt"

	"github.com/me/schedsim/pkg/model"
)

// DefaultQuantum is the round-robin time slice used when none is configured.
const DefaultQuantum = 4

// RoundRobin is the time-sliced policy. A FIFO ready queue hands each job at
// most one quantum per dispatch. Jobs that arrive while a slice is executing
// are enqueued ahead of the job that just ran, which goes to the back of the
// queue if it still has work left.
type RoundRobin struct {
	quantum int
}

// NewRoundRobin returns the round-robin algorithm. A non-positive quantum
// falls back to DefaultQuantum.
func NewRoundRobin(quantum int) *RoundRobin {
	if quantum <= 0 {
		quantum = DefaultQuantum
	}
	return &RoundRobin{quantum: quantum}
}

func (r *RoundRobin) Name() string {
	return fmt.Sprintf("Round Robin (q=%d)", r.quantum)
}

// Quantum returns the configured time slice.
func (r *RoundRobin) Quantum() int {
	return r.quantum
}

func (r *RoundRobin) Run(reg *model.Registry) *Result {
	jobs := reg.Clone()
	res := newResult(r.Name(), jobs)

	now := 0
	completed := 0
	queue := make([]int, 0, len(jobs))
	inQueue := make([]bool, len(jobs))

	enqueue := func(i int) {
		queue = append(queue, i)
		inQueue[i] = true
	}

	for i, j := range jobs {
		if j.ArrivalTime == 0 {
			enqueue(i)
		}
	}

	for completed < len(jobs) {
		if len(queue) == 0 {
			// Idle tick, then admit anything that has arrived.
			now++
			for i, j := range jobs {
				if j.ArrivalTime <= now && j.RemainingTime > 0 && !inQueue[i] {
					enqueue(i)
				}
			}
			continue
		}

		idx := queue[0]
		queue = queue[1:]
		inQueue[idx] = false
		j := jobs[idx]

		firstDispatch(j, now)

		slice := min(j.RemainingTime, r.quantum)
		j.RemainingTime -= slice
		now += slice
		res.ContextSwitches++

		// Arrivals during the slice go ahead of the job that just ran.
		for i, other := range jobs {
			if other.ArrivalTime <= now && other.RemainingTime > 0 && !inQueue[i] && i != idx {
				enqueue(i)
			}
		}

		if j.RemainingTime == 0 {
			complete(j, now)
			completed++
		} else {
			enqueue(idx)
		}
	}

	res.TotalTime = now
	return res
}
