package ui

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) resetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the built-in appointments, jobs and team",
		Long: `Replace the stored schedule with the built-in seed data.

Every appointment and job change is lost. Asks for confirmation unless
--yes is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !yes {
				reader := bufio.NewReader(cmd.InOrStdin())
				if !promptYesNo(reader, out, formatWarn("Reset all appointments and jobs to the seed data?")) {
					fmt.Fprintln(out, "Reset cancelled.")
					return nil
				}
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			if err := s.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("resetting schedule: %w", err)
			}

			fmt.Fprintf(out, "Schedule reset: %s\n", CountStatuses(s.List()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
