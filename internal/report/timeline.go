package report

import (
	"fmt"
	"io"

	"github.com/me/schedsim/internal/engine"
	"github.com/me/schedsim/pkg/model"
)

// maxTimelineWidth caps the rendered row length; longer runs are sampled.
const maxTimelineWidth = 72

// interval is one contiguous stretch of execution for a job, reconstructed
// from the preemptive trace.
type interval struct {
	start, end int
}

// intervals folds the event trace into per-job execution stretches. A START
// opens a stretch; the job's next PREEMPT or COMPLETE closes it. The trace
// is causally ordered, so a single pass suffices.
func intervals(trace []model.Event) map[int][]interval {
	open := make(map[int]int)
	out := make(map[int][]interval)
	for _, e := range trace {
		switch e.Kind {
		case model.EventStart:
			open[e.JobID] = e.Time
		case model.EventPreempt, model.EventComplete:
			if start, ok := open[e.JobID]; ok {
				out[e.JobID] = append(out[e.JobID], interval{start: start, end: e.Time})
				delete(open, e.JobID)
			}
		}
	}
	return out
}

// Timeline renders a Gantt-style execution view of a preemptive run: one
// row per job, '#' where the job held the processor, plus the key dispatch
// events. Runs without a trace print nothing.
func Timeline(w io.Writer, res *engine.Result) {
	if len(res.Trace) == 0 {
		return
	}

	step := 1
	for res.TotalTime/step > maxTimelineWidth {
		step++
	}

	fmt.Fprintf(w, "Execution timeline (0-%d", res.TotalTime)
	if step > 1 {
		fmt.Fprintf(w, ", 1 column = %d units", step)
	}
	fmt.Fprintln(w, "):")

	byJob := intervals(res.Trace)
	for _, j := range res.Jobs {
		fmt.Fprintf(w, "%-24s ", j.Label)
		for t := 0; t < res.TotalTime; t += step {
			executing := false
			for _, iv := range byJob[j.ID] {
				if t >= iv.start && t < iv.end {
					executing = true
					break
				}
			}
			if executing {
				fmt.Fprint(w, "#")
			} else {
				fmt.Fprint(w, ".")
			}
		}
		if j.Emergency() {
			fmt.Fprintf(w, "  [emergency, response %d]", j.ResponseTime)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "\nKey events:")
	labels := make(map[int]string, len(res.Jobs))
	for _, j := range res.Jobs {
		labels[j.ID] = j.Label
	}
	for _, e := range res.Trace {
		switch e.Kind {
		case model.EventStart:
			fmt.Fprintf(w, "  t=%-4d %s starts\n", e.Time, labels[e.JobID])
		case model.EventPreempt:
			fmt.Fprintf(w, "  t=%-4d %s preempted\n", e.Time, labels[e.JobID])
		case model.EventComplete:
			fmt.Fprintf(w, "  t=%-4d %s completes\n", e.Time, labels[e.JobID])
		}
	}
}
