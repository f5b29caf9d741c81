package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/teamcal/internal/schedule"
)

func (a *App) jobsCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List jobs waiting to be scheduled",
		Example: `  teamcal jobs
  teamcal jobs --filter=Unassigned`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(schedule.AssignedFilters(), filter) {
				return fmt.Errorf("unknown filter %q (want %s)", filter, strings.Join(schedule.AssignedFilters(), ", "))
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			jobs := schedule.FilterJobs(s.Jobs(), filter)
			if len(jobs) == 0 {
				fmt.Fprintln(out, "No jobs found.")
				return nil
			}

			names := memberNames(s.Members())
			fmt.Fprintf(out, "=== %s ===\n", formatHeader(filter+" jobs"))
			for _, j := range jobs {
				var assignee string
				if j.AssignedMember != nil {
					assignee = memberName(names, *j.AssignedMember)
				}
				PrintJobRow(out, j, assignee, 22)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", schedule.FilterAll, "Assigned filter (Assigned, Unassigned, All)")

	return cmd
}
