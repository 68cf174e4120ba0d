// Package compare is the harness that runs every scheduling policy over a
// scenario and pairs each run with its derived metrics.
package compare

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/me/schedsim/internal/engine"
	"github.com/me/schedsim/internal/metrics"
	"github.com/me/schedsim/internal/scenario"
	"github.com/me/schedsim/pkg/model"
)

// RunReport pairs one algorithm run with its aggregated metrics.
type RunReport struct {
	Scenario string
	Result   *engine.Result
	Metrics  model.Metrics
}

// Harness runs the four policies over scenarios.
type Harness struct {
	quantum int
	logger  *slog.Logger
}

// New creates a harness. quantum applies to round robin unless the scenario
// overrides it; non-positive means engine.DefaultQuantum.
func New(quantum int, logger *slog.Logger) *Harness {
	return &Harness{
		quantum: quantum,
		logger:  logger.With("component", "compare"),
	}
}

// Run executes all four algorithms over the scenario's registry, each on its
// own copy and its own goroutine. The runs share nothing, so the only
// coordination is waiting for them to finish. Reports come back in the
// engine's presentation order regardless of completion order.
func (h *Harness) Run(ctx context.Context, s *scenario.Scenario) ([]RunReport, error) {
	reg, err := s.Registry()
	if err != nil {
		return nil, err
	}

	quantum := h.quantum
	if s.Quantum > 0 {
		quantum = s.Quantum
	}

	algs := engine.All(quantum)
	reports := make([]RunReport, len(algs))

	g, ctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		i, alg := i, alg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := alg.Run(reg)
			reports[i] = RunReport{
				Scenario: s.Name,
				Result:   res,
				Metrics:  metrics.Calculate(res.Jobs, res.TotalTime, res.ContextSwitches),
			}
			h.logger.Debug("run finished",
				"scenario", s.Name,
				"algorithm", alg.Name(),
				"run_id", res.RunID,
				"total_time", res.TotalTime,
				"context_switches", res.ContextSwitches,
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// RunOne executes a single named algorithm over the scenario.
func (h *Harness) RunOne(name string, s *scenario.Scenario) (*RunReport, error) {
	reg, err := s.Registry()
	if err != nil {
		return nil, err
	}

	quantum := h.quantum
	if s.Quantum > 0 {
		quantum = s.Quantum
	}

	alg, err := engine.New(name, quantum)
	if err != nil {
		return nil, err
	}

	res := alg.Run(reg)
	return &RunReport{
		Scenario: s.Name,
		Result:   res,
		Metrics:  metrics.Calculate(res.Jobs, res.TotalTime, res.ContextSwitches),
	}, nil
}
