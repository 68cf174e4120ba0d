package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/schedsim/internal/compare"
	"github.com/me/schedsim/internal/report"
)

func newRunCmd() *cobra.Command {
	var file string
	var quantum int
	var details bool

	cmd := &cobra.Command{
		Use:   "run <algorithm> [scenario]",
		Short: "Run a single scheduling policy over a scenario",
		Long: `Runs one policy (priority, fcfs, sjf, or rr) over a workload and
prints its metrics and per-job timings.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveScenario(file, args[1:])
			if err != nil {
				return err
			}
			if quantum > 0 {
				s.Quantum = quantum
			}

			h := compare.New(cfg.Quantum, logger)
			r, err := h.RunOne(args[0], s)
			if err != nil {
				return fmt.Errorf("run %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			report.Workload(out, s)
			fmt.Fprintln(out)
			report.Metrics(out, r.Result.Algorithm, r.Metrics)
			fmt.Fprintln(out)
			report.Jobs(out, r.Result.Jobs)
			if details && len(r.Result.Trace) > 0 {
				fmt.Fprintln(out)
				report.Timeline(out, r.Result)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Load the scenario from a YAML file")
	cmd.Flags().IntVar(&quantum, "quantum", 0, "Round-robin quantum override")
	cmd.Flags().BoolVar(&details, "details", false, "Print the execution timeline (priority only)")

	return cmd
}
