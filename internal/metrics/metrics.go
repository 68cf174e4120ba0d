// Package metrics aggregates a finished run's per-job timing fields into the
// summary a comparison report presents.
package metrics

import "github.com/me/schedsim/pkg/model"

// Calculate folds the post-run job list into summary statistics. Only
// completed jobs contribute. Zero completed jobs or a zero-length run yields
// all-zero metrics instead of dividing by zero.
func Calculate(jobs []*model.Job, totalTime, contextSwitches int) model.Metrics {
	m := model.Metrics{
		TotalTime:       totalTime,
		ContextSwitches: contextSwitches,
	}

	var sumResponse, sumTurnaround, sumWaiting, totalBurst int
	emergencySeen := false

	for _, j := range jobs {
		if !j.Completed() {
			continue
		}
		sumResponse += j.ResponseTime
		sumTurnaround += j.TurnaroundTime
		sumWaiting += j.WaitingTime
		totalBurst += j.BurstTime
		m.CompletedJobs++

		if j.Emergency() {
			rt := float64(j.ResponseTime)
			if !emergencySeen || rt < m.EmergencyResponseMin {
				m.EmergencyResponseMin = rt
			}
			if rt > m.EmergencyResponseMax {
				m.EmergencyResponseMax = rt
			}
			emergencySeen = true
		}
	}

	if m.CompletedJobs > 0 {
		n := float64(m.CompletedJobs)
		m.AvgResponseTime = float64(sumResponse) / n
		m.AvgTurnaroundTime = float64(sumTurnaround) / n
		m.AvgWaitingTime = float64(sumWaiting) / n
	}
	if totalTime > 0 {
		m.CPUUtilization = float64(totalBurst) / float64(totalTime) * 100
		m.Throughput = float64(m.CompletedJobs) / float64(totalTime)
	}

	return m
}
