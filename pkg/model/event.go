package model

import "fmt"

// EventKind labels a dispatch transition in the preemptive trace.
type EventKind string

const (
	EventStart    EventKind = "START"
	EventPreempt  EventKind = "PREEMPT"
	EventComplete EventKind = "COMPLETE"
)

// String returns the string representation of the event kind.
func (k EventKind) String() string {
	return string(k)
}

// Event is one entry in the preemptive scheduler's trace: at Time, the job
// identified by JobID started, was preempted, or completed. Events are
// appended in causal order, so entries sharing a tick keep insertion order
// (a preemption precedes the start that displaced it).
type Event struct {
	Time  int       `json:"time"`
	JobID int       `json:"job_id"`
	Kind  EventKind `json:"kind"`
}

func (e Event) String() string {
	return fmt.Sprintf("t=%d job=%d %s", e.Time, e.JobID, e.Kind)
}
