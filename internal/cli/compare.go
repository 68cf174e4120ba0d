package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/schedsim/internal/compare"
	"github.com/me/schedsim/internal/report"
)

func newCompareCmd() *cobra.Command {
	var file string
	var quantum int
	var details bool

	cmd := &cobra.Command{
		Use:   "compare [scenario]",
		Short: "Run all four scheduling policies over a scenario and compare them",
		Long: `Runs preemptive priority, FCFS, SJF, and round robin over the same
workload, each on its own copy, and prints per-policy metrics and a
side-by-side summary. --details adds the per-job tables and the
preemptive execution timeline.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveScenario(file, args)
			if err != nil {
				return err
			}
			if quantum > 0 {
				s.Quantum = quantum
			}

			h := compare.New(cfg.Quantum, logger)
			reports, err := h.Run(cmd.Context(), s)
			if err != nil {
				return fmt.Errorf("compare %s: %w", s.Name, err)
			}

			out := cmd.OutOrStdout()
			report.Workload(out, s)
			for _, r := range reports {
				fmt.Fprintln(out)
				report.Metrics(out, r.Result.Algorithm, r.Metrics)
				if details {
					fmt.Fprintln(out)
					report.Jobs(out, r.Result.Jobs)
					if len(r.Result.Trace) > 0 {
						fmt.Fprintln(out)
						report.Timeline(out, r.Result)
					}
				}
			}
			fmt.Fprintln(out)
			report.Summary(out, reports)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Load the scenario from a YAML file")
	cmd.Flags().IntVar(&quantum, "quantum", 0, "Round-robin quantum override")
	cmd.Flags().BoolVar(&details, "details", false, "Print per-job tables and the execution timeline")

	return cmd
}
