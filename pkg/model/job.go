package model

// Priority bounds. Priority 1 is the emergency class and always wins
// dispatch under the preemptive policy; 5 is background work.
const (
	HighestPriority = 1
	LowestPriority  = 5

	// EmergencyPriority marks life-critical jobs. Metrics track their
	// response times separately.
	EmergencyPriority = 1
)

// NotStarted is the StartTime sentinel for a job that has never been
// dispatched.
const NotStarted = -1

// Job is one schedulable unit of work: a patient intake, a lab run, or any
// other hospital operation competing for the single simulated processor.
//
// ID, Label, Classification, Priority, ArrivalTime, and BurstTime are fixed
// at creation. The remaining fields are written by exactly one algorithm run
// over the job's private copy.
type Job struct {
	ID             int    `json:"id"`
	Label          string `json:"label"`
	Classification string `json:"classification"`
	Priority       int    `json:"priority"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`

	// RemainingTime counts down from BurstTime as the job executes.
	RemainingTime int `json:"remaining_time"`

	// StartTime is the tick of first dispatch, NotStarted until then.
	// ResponseTime is fixed at the same moment and never changes on
	// resume after preemption.
	StartTime    int `json:"start_time"`
	ResponseTime int `json:"response_time"`

	CompletionTime int `json:"completion_time"`
	TurnaroundTime int `json:"turnaround_time"`
	WaitingTime    int `json:"waiting_time"`
}

// Validate checks the immutable fields. Computed fields are not inspected.
func (j *Job) Validate() error {
	if j.Priority < HighestPriority || j.Priority > LowestPriority {
		return &InvalidJobError{ID: j.ID, Reason: "priority must be between 1 and 5"}
	}
	if j.ArrivalTime < 0 {
		return &InvalidJobError{ID: j.ID, Reason: "arrival time must not be negative"}
	}
	if j.BurstTime <= 0 {
		return &InvalidJobError{ID: j.ID, Reason: "burst time must be positive"}
	}
	return nil
}

// Reset restores the pristine pre-run state: full remaining burst, no start,
// no computed timings.
func (j *Job) Reset() {
	j.RemainingTime = j.BurstTime
	j.StartTime = NotStarted
	j.ResponseTime = 0
	j.CompletionTime = 0
	j.TurnaroundTime = 0
	j.WaitingTime = 0
}

// Clone returns an independent copy. Jobs carry no reference fields, so a
// shallow copy is a deep one.
func (j *Job) Clone() *Job {
	c := *j
	return &c
}

// Completed reports whether the job finished during its run. Completion
// times are strictly positive because bursts are.
func (j *Job) Completed() bool {
	return j.CompletionTime > 0
}

// Emergency reports whether the job belongs to the emergency class.
func (j *Job) Emergency() bool {
	return j.Priority == EmergencyPriority
}
