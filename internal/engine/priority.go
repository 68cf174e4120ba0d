package engine

import "github.com/me/schedsim/pkg/model"

// Priority is the preemptive priority policy. Time advances tick by tick;
// at every tick the eligible job with the lowest priority number runs, ties
// going to the lowest registry index. A newly arrived job with a lower
// priority number preempts the running one at that tick.
//
// This is the only policy that records an event trace: a START for every
// dispatch, a PREEMPT for a displaced job that still has work left, and a
// COMPLETE when a burst is fully consumed.
type Priority struct{}

// NewPriority returns the preemptive priority algorithm.
func NewPriority() *Priority {
	return &Priority{}
}

func (p *Priority) Name() string {
	return "Priority (Preemptive)"
}

func (p *Priority) Run(reg *model.Registry) *Result {
	jobs := reg.Clone()
	res := newResult(p.Name(), jobs)

	now := 0
	completed := 0
	running := -1

	for completed < len(jobs) {
		next := -1
		best := model.LowestPriority + 1
		for i, j := range jobs {
			if j.ArrivalTime <= now && j.RemainingTime > 0 && j.Priority < best {
				best = j.Priority
				next = i
			}
		}

		// Nothing eligible yet: idle one tick.
		if next == -1 {
			now++
			continue
		}

		if running != next {
			if running != -1 && jobs[running].RemainingTime > 0 {
				res.Trace = append(res.Trace, model.Event{
					Time: now, JobID: jobs[running].ID, Kind: model.EventPreempt,
				})
			}
			firstDispatch(jobs[next], now)
			res.Trace = append(res.Trace, model.Event{
				Time: now, JobID: jobs[next].ID, Kind: model.EventStart,
			})
			res.ContextSwitches++
			running = next
		}

		jobs[next].RemainingTime--
		now++

		if jobs[next].RemainingTime == 0 {
			complete(jobs[next], now)
			res.Trace = append(res.Trace, model.Event{
				Time: now, JobID: jobs[next].ID, Kind: model.EventComplete,
			})
			completed++
			running = -1
		}
	}

	res.TotalTime = now
	return res
}
