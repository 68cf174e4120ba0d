package model

// Metrics summarizes one (scenario, algorithm) run over the completed jobs.
// A run that completed nothing, or that ended at time zero, reports all
// zeroes rather than dividing by zero.
type Metrics struct {
	AvgResponseTime   float64 `json:"avg_response_time"`
	AvgTurnaroundTime float64 `json:"avg_turnaround_time"`
	AvgWaitingTime    float64 `json:"avg_waiting_time"`

	// EmergencyResponseMin/Max span the response times of priority-1 jobs.
	// Both are zero when the run had no emergency jobs.
	EmergencyResponseMin float64 `json:"emergency_response_min"`
	EmergencyResponseMax float64 `json:"emergency_response_max"`

	// CPUUtilization is completed burst over total run length, in percent.
	CPUUtilization float64 `json:"cpu_utilization"`

	// ContextSwitches counts dispatch events. What constitutes a dispatch
	// is defined per algorithm: the preemptive scheduler counts processor
	// handovers, the non-preemptive ones count one per job, round robin
	// counts every dequeue-and-run.
	ContextSwitches int `json:"context_switches"`

	// Throughput is completed jobs per unit of simulated time.
	Throughput float64 `json:"throughput"`

	// TotalTime is the logical end time of the run.
	TotalTime int `json:"total_time"`

	CompletedJobs int `json:"completed_jobs"`
}
