package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/me/schedsim/pkg/model"
)

func completedJob(id, priority, burst, response, turnaround, waiting, completion int) *model.Job {
	return &model.Job{
		ID:             id,
		Priority:       priority,
		BurstTime:      burst,
		ResponseTime:   response,
		TurnaroundTime: turnaround,
		WaitingTime:    waiting,
		CompletionTime: completion,
	}
}

func TestCalculateAverages(t *testing.T) {
	jobs := []*model.Job{
		completedJob(0, 3, 4, 0, 4, 0, 4),
		completedJob(1, 3, 6, 4, 10, 4, 10),
	}

	m := Calculate(jobs, 10, 2)

	assert.Equal(t, 2, m.CompletedJobs)
	assert.InDelta(t, 2.0, m.AvgResponseTime, 1e-9)
	assert.InDelta(t, 7.0, m.AvgTurnaroundTime, 1e-9)
	assert.InDelta(t, 2.0, m.AvgWaitingTime, 1e-9)
	assert.InDelta(t, 100.0, m.CPUUtilization, 1e-9)
	assert.InDelta(t, 0.2, m.Throughput, 1e-9)
	assert.Equal(t, 2, m.ContextSwitches)
	assert.Equal(t, 10, m.TotalTime)
}

func TestCalculateEmergencyExtremes(t *testing.T) {
	jobs := []*model.Job{
		completedJob(0, 1, 3, 5, 8, 5, 13),
		completedJob(1, 1, 3, 2, 5, 2, 18),
		completedJob(2, 4, 8, 0, 8, 0, 8),
	}

	m := Calculate(jobs, 24, 3)

	assert.InDelta(t, 2.0, m.EmergencyResponseMin, 1e-9)
	assert.InDelta(t, 5.0, m.EmergencyResponseMax, 1e-9)
}

// A single emergency with response zero must still register: zero is a real
// minimum and maximum, not the "no emergencies" marker.
func TestCalculateSingleImmediateEmergency(t *testing.T) {
	jobs := []*model.Job{
		completedJob(0, 1, 3, 0, 3, 0, 3),
	}

	m := Calculate(jobs, 3, 1)

	assert.Zero(t, m.EmergencyResponseMin)
	assert.Zero(t, m.EmergencyResponseMax)
	assert.Equal(t, 1, m.CompletedJobs)
}

func TestCalculateNoEmergencies(t *testing.T) {
	jobs := []*model.Job{
		completedJob(0, 2, 5, 1, 6, 1, 6),
	}

	m := Calculate(jobs, 6, 1)

	assert.Zero(t, m.EmergencyResponseMin)
	assert.Zero(t, m.EmergencyResponseMax)
}

func TestCalculateSkipsIncompleteJobs(t *testing.T) {
	jobs := []*model.Job{
		completedJob(0, 3, 4, 0, 4, 0, 4),
		{ID: 1, Priority: 1, BurstTime: 9, ResponseTime: 7}, // never completed
	}

	m := Calculate(jobs, 4, 1)

	assert.Equal(t, 1, m.CompletedJobs)
	assert.Zero(t, m.EmergencyResponseMax)
	assert.InDelta(t, 0.0, m.AvgResponseTime, 1e-9)
}

func TestCalculateZeroGuards(t *testing.T) {
	assert.Equal(t, model.Metrics{}, Calculate(nil, 0, 0))

	m := Calculate([]*model.Job{}, 0, 0)
	assert.Zero(t, m.AvgResponseTime)
	assert.Zero(t, m.CPUUtilization)
	assert.Zero(t, m.Throughput)
}
