package engine

import "github.com/me/schedsim/pkg/model"

// FCFS is the non-preemptive first-come-first-served policy. Jobs run to
// completion in registry order.
//
// Precondition: the registry is already sorted by arrival time. FCFS does
// not sort defensively; an unsorted registry still terminates but the
// dispatch order is registration order, not arrival order.
type FCFS struct{}

// NewFCFS returns the first-come-first-served algorithm.
func NewFCFS() *FCFS {
	return &FCFS{}
}

func (f *FCFS) Name() string {
	return "FCFS"
}

func (f *FCFS) Run(reg *model.Registry) *Result {
	jobs := reg.Clone()
	res := newResult(f.Name(), jobs)

	now := 0
	for _, j := range jobs {
		// Idle gap: the processor waits for the next job to arrive.
		if now < j.ArrivalTime {
			now = j.ArrivalTime
		}

		firstDispatch(j, now)
		now += j.BurstTime
		j.RemainingTime = 0
		complete(j, now)

		// One dispatch per job, idle gaps notwithstanding.
		res.ContextSwitches++
	}

	res.TotalTime = now
	return res
}
