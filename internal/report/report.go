// Package report renders simulation results as text tables for the CLI. It
// is presentation only: everything here is derived from the engine's outputs
// and never feeds back into scheduling.
package report

import (
	"fmt"
	"io"

	"github.com/me/schedsim/internal/compare"
	"github.com/me/schedsim/internal/scenario"
	"github.com/me/schedsim/pkg/model"
)

// Workload prints the scenario's job table and its emergency breakdown.
func Workload(w io.Writer, s *scenario.Scenario) {
	fmt.Fprintf(w, "Scenario: %s\n", s.Name)
	if s.Description != "" {
		fmt.Fprintf(w, "%s\n", s.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-4s %-24s %-9s %-8s %-7s %s\n", "ID", "Job", "Priority", "Arrival", "Burst", "Classification")
	fmt.Fprintf(w, "%-4s %-24s %-9s %-8s %-7s %s\n", "----", "------------------------", "--------", "-------", "-----", "----------------------")
	for _, j := range s.Jobs {
		fmt.Fprintf(w, "%-4d %-24s %-9d %-8d %-7d %s\n",
			j.ID, j.Label, j.Priority, j.ArrivalTime, j.BurstTime, j.Classification)
	}

	emergencies := s.EmergencyCount()
	if emergencies > 0 {
		fmt.Fprintf(w, "\nTotal jobs: %d (%d emergencies + %d supporting operations)\n",
			len(s.Jobs), emergencies, len(s.Jobs)-emergencies)
	} else {
		fmt.Fprintf(w, "\nTotal jobs: %d\n", len(s.Jobs))
	}
}

// Metrics prints one run's summary statistics with a coarse assessment of
// the response-time figures.
func Metrics(w io.Writer, algorithm string, m model.Metrics) {
	fmt.Fprintf(w, "Performance metrics: %s\n", algorithm)
	fmt.Fprintf(w, "%-28s %-12s %s\n", "Metric", "Value", "Assessment")
	fmt.Fprintf(w, "%-28s %-12s %s\n", "----------------------------", "---------", "-----------")

	fmt.Fprintf(w, "%-28s %-12s %s\n", "Average response time",
		fmt.Sprintf("%.2f", m.AvgResponseTime), responseAssessment(m.AvgResponseTime))
	fmt.Fprintf(w, "%-28s %.2f\n", "Average turnaround time", m.AvgTurnaroundTime)
	fmt.Fprintf(w, "%-28s %.2f\n", "Average waiting time", m.AvgWaitingTime)

	if m.EmergencyResponseMin != 0 || m.EmergencyResponseMax != 0 {
		fmt.Fprintf(w, "%-28s %-12s %s\n", "Emergency response",
			emergencyRange(m), emergencyAssessment(m.EmergencyResponseMax))
	}

	fmt.Fprintf(w, "%-28s %.2f%%\n", "CPU utilization", m.CPUUtilization)
	fmt.Fprintf(w, "%-28s %d\n", "Context switches", m.ContextSwitches)
	fmt.Fprintf(w, "%-28s %.3f jobs/unit\n", "Throughput", m.Throughput)
	fmt.Fprintf(w, "%-28s %d\n", "Total run length", m.TotalTime)
}

// Jobs prints per-job timing fields, emergencies first.
func Jobs(w io.Writer, jobs []*model.Job) {
	fmt.Fprintln(w, "Individual job performance:")
	fmt.Fprintf(w, "%-24s %-9s %-8s %-6s %-6s %-7s %-9s %-5s %s\n",
		"Job", "Priority", "Arrival", "Burst", "Start", "Finish", "Response", "TAT", "Wait")
	fmt.Fprintf(w, "%-24s %-9s %-8s %-6s %-6s %-7s %-9s %-5s %s\n",
		"------------------------", "--------", "-------", "-----", "-----", "------", "--------", "----", "----")

	printRow := func(j *model.Job) {
		fmt.Fprintf(w, "%-24s %-9d %-8d %-6d %-6d %-7d %-9d %-5d %d\n",
			j.Label, j.Priority, j.ArrivalTime, j.BurstTime,
			j.StartTime, j.CompletionTime, j.ResponseTime, j.TurnaroundTime, j.WaitingTime)
	}
	for _, j := range jobs {
		if j.Emergency() {
			printRow(j)
		}
	}
	for _, j := range jobs {
		if !j.Emergency() {
			printRow(j)
		}
	}
}

// Summary prints the side-by-side algorithm comparison table.
func Summary(w io.Writer, reports []compare.RunReport) {
	if len(reports) == 0 {
		return
	}

	fmt.Fprintln(w, "Algorithm comparison summary:")
	fmt.Fprintf(w, "%-26s", "Metric")
	for _, r := range reports {
		fmt.Fprintf(w, "  %-22s", r.Result.Algorithm)
	}
	fmt.Fprintln(w)

	row := func(label string, value func(model.Metrics) string) {
		fmt.Fprintf(w, "%-26s", label)
		for _, r := range reports {
			fmt.Fprintf(w, "  %-22s", value(r.Metrics))
		}
		fmt.Fprintln(w)
	}

	row("Avg response time", func(m model.Metrics) string { return fmt.Sprintf("%.2f", m.AvgResponseTime) })
	row("Avg turnaround time", func(m model.Metrics) string { return fmt.Sprintf("%.2f", m.AvgTurnaroundTime) })
	row("Avg waiting time", func(m model.Metrics) string { return fmt.Sprintf("%.2f", m.AvgWaitingTime) })

	hasEmergency := false
	for _, r := range reports {
		if r.Metrics.EmergencyResponseMin != 0 || r.Metrics.EmergencyResponseMax != 0 {
			hasEmergency = true
			break
		}
	}
	if hasEmergency {
		row("Emergency response", func(m model.Metrics) string { return emergencyRange(m) })
	}

	row("Context switches", func(m model.Metrics) string { return fmt.Sprintf("%d", m.ContextSwitches) })
	row("CPU utilization", func(m model.Metrics) string { return fmt.Sprintf("%.2f%%", m.CPUUtilization) })
	row("Throughput", func(m model.Metrics) string { return fmt.Sprintf("%.3f", m.Throughput) })
	row("Total run length", func(m model.Metrics) string { return fmt.Sprintf("%d", m.TotalTime) })
}

func emergencyRange(m model.Metrics) string {
	if m.EmergencyResponseMin == m.EmergencyResponseMax {
		return fmt.Sprintf("%.0f", m.EmergencyResponseMin)
	}
	return fmt.Sprintf("%.0f-%.0f", m.EmergencyResponseMin, m.EmergencyResponseMax)
}

func responseAssessment(avg float64) string {
	switch {
	case avg < 5:
		return "excellent"
	case avg < 15:
		return "good"
	default:
		return "poor"
	}
}

func emergencyAssessment(max float64) string {
	switch {
	case max <= 5:
		return "excellent"
	case max <= 10:
		return "acceptable"
	default:
		return "critical delay"
	}
}
