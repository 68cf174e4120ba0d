package engine

import "github.com/me/schedsim/pkg/model"

// SJF is the non-preemptive shortest-job-first policy. At each decision
// point it picks, among arrived and unfinished jobs, the one with the
// smallest original burst time (ties to the lowest registry index) and runs
// it to completion in one atomic clock advance.
type SJF struct{}

// NewSJF returns the shortest-job-first algorithm.
func NewSJF() *SJF {
	return &SJF{}
}

func (s *SJF) Name() string {
	return "SJF"
}

func (s *SJF) Run(reg *model.Registry) *Result {
	jobs := reg.Clone()
	res := newResult(s.Name(), jobs)

	now := 0
	completed := 0

	for completed < len(jobs) {
		next := -1
		shortest := 0
		for i, j := range jobs {
			if j.ArrivalTime <= now && j.RemainingTime > 0 {
				if next == -1 || j.BurstTime < shortest {
					shortest = j.BurstTime
					next = i
				}
			}
		}

		if next == -1 {
			now++
			continue
		}

		j := jobs[next]
		firstDispatch(j, now)
		now += j.BurstTime
		j.RemainingTime = 0
		complete(j, now)
		completed++
		res.ContextSwitches++
	}

	res.TotalTime = now
	return res
}
