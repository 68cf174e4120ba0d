package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/schedsim/internal/scenario"
)

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the built-in scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-12s %-6s %-12s %s\n", "NAME", "JOBS", "EMERGENCIES", "DESCRIPTION")
			for _, name := range scenario.Names() {
				s, err := scenario.Builtin(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-12s %-6d %-12d %s\n",
					s.Name, len(s.Jobs), s.EmergencyCount(), s.Description)
			}
			return nil
		},
	}
}
