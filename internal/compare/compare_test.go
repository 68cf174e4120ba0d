package compare

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/me/schedsim/internal/scenario"
	"github.com/me/schedsim/pkg/model"
)

func testHarness(quantum int) *Harness {
	return New(quantum, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRunAllPolicies(t *testing.T) {
	s, err := scenario.Builtin("emergency")
	require.NoError(t, err)

	reports, err := testHarness(0).Run(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, reports, 4)

	for _, r := range reports {
		assert.Equal(t, "emergency", r.Scenario)
		assert.Len(t, r.Result.Jobs, len(s.Jobs))
		assert.Equal(t, len(s.Jobs), r.Metrics.CompletedJobs)
		assert.Positive(t, r.Metrics.TotalTime)
		assert.Equal(t, r.Result.ContextSwitches, r.Metrics.ContextSwitches)
	}

	// Presentation order is fixed: preemptive priority first, and it is
	// the only run that carries a trace.
	assert.Contains(t, reports[0].Result.Algorithm, "Priority")
	assert.NotEmpty(t, reports[0].Result.Trace)
	for _, r := range reports[1:] {
		assert.Empty(t, r.Result.Trace, r.Result.Algorithm)
	}
}

// The priority policy holds every emergency response within the arrival
// spread; FCFS pays the convoy effect on the same workload.
func TestRunEmergencyContrast(t *testing.T) {
	s, err := scenario.Builtin("emergency")
	require.NoError(t, err)

	reports, err := testHarness(0).Run(context.Background(), s)
	require.NoError(t, err)

	priority := reports[0].Metrics
	fcfs := reports[1].Metrics
	assert.Less(t, priority.EmergencyResponseMax, fcfs.EmergencyResponseMin)
}

func TestRunScenarioQuantumOverride(t *testing.T) {
	s, err := scenario.Builtin("best")
	require.NoError(t, err)
	s.Quantum = 2

	reports, err := testHarness(8).Run(context.Background(), s)
	require.NoError(t, err)
	assert.Contains(t, reports[3].Result.Algorithm, "q=2")
}

func TestRunOne(t *testing.T) {
	s, err := scenario.Builtin("normal")
	require.NoError(t, err)

	r, err := testHarness(0).RunOne("sjf", s)
	require.NoError(t, err)
	assert.Equal(t, "SJF", r.Result.Algorithm)
	assert.Equal(t, len(s.Jobs), r.Metrics.CompletedJobs)

	_, err = testHarness(0).RunOne("mlfq", s)
	assert.ErrorIs(t, err, model.ErrUnknownAlgorithm)
}

// The registry template survives a full comparison untouched, so a second
// comparison over the same scenario reproduces the first.
func TestRunIsRepeatable(t *testing.T) {
	s, err := scenario.Builtin("normal")
	require.NoError(t, err)

	h := testHarness(0)
	first, err := h.Run(context.Background(), s)
	require.NoError(t, err)
	second, err := h.Run(context.Background(), s)
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].Metrics, second[i].Metrics)
	}
}
