package ui

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/teamcal/internal/schedule"
)

// ErrOverlapsFound is returned by check when any member is double-booked.
var ErrOverlapsFound = errors.New("overlapping appointments found")

func (a *App) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report double-booked team members",
		Long: `Check every team member's appointments for overlaps.

Exits with a non-zero status when any overlap exists.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			pairs := schedule.OverlappingPairs(s.List())
			if len(pairs) == 0 {
				fmt.Fprintln(out, "No overlapping appointments.")
				return nil
			}

			names := memberNames(s.Members())
			for _, p := range pairs {
				fmt.Fprintf(out, "  %s %s: %s (%s) overlaps %s (%s)\n",
					formatWarn("!"), formatHeader(memberName(names, p[0].Member)),
					p[0].ClientName, p[0].Time, p[1].ClientName, p[1].Time)
			}
			return fmt.Errorf("%w: %d", ErrOverlapsFound, len(pairs))
		},
	}
}
