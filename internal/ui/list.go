package ui

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/teamcal/internal/dateutil"
	"github.com/javiermolinar/teamcal/internal/schedule"
)

func (a *App) listCmd() *cobra.Command {
	var (
		status  string
		member  int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments by team member",
		Long: `List the scheduled appointments grouped by team member.

Appointments can be narrowed by status and by team member id.`,
		Example: `  teamcal list
  teamcal list --status=pending
  teamcal list --member=3 --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statusFilter, err := parseStatusFilter(status)
			if err != nil {
				return err
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}

			teamFilter := schedule.FilterAll
			if member != 0 {
				if _, ok := s.Member(member); !ok {
					return fmt.Errorf("%w: %d", schedule.ErrMemberNotFound, member)
				}
				teamFilter = strconv.Itoa(member)
			}

			out := cmd.OutOrStdout()
			appointments := schedule.FilterAppointments(s.List(), statusFilter, teamFilter)
			fmt.Fprintf(out, "=== %s ===\n", formatHeader(dateutil.DayLabel(s.UI().SelectedDate)))
			if len(appointments) == 0 {
				fmt.Fprintln(out, "No appointments found.")
				return nil
			}

			opts := PrintOpts{Verbose: verbose}
			width := opts.CalcMaxNameWidth(30)
			for _, m := range s.Members() {
				own := appointmentsFor(appointments, m.ID)
				if len(own) == 0 {
					continue
				}
				fmt.Fprintf(out, "  %s\n", formatHeader(m.Name))
				for _, appt := range own {
					PrintAppointmentRow(out, appt, opts, width)
				}
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatMuted(CountStatuses(appointments).String()))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", schedule.FilterAll, "Status filter (All, pending, active, completed)")
	cmd.Flags().IntVar(&member, "member", 0, "Team member id (0 for everyone)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show descriptions")

	return cmd
}

// parseStatusFilter validates a --status value.
func parseStatusFilter(v string) (string, error) {
	if v == "" || v == schedule.FilterAll {
		return schedule.FilterAll, nil
	}
	st, err := schedule.ParseStatus(v)
	if err != nil {
		return "", err
	}
	return string(st), nil
}

// appointmentsFor returns the member's appointments ordered by start.
func appointmentsFor(all []schedule.Appointment, memberID int) []schedule.Appointment {
	var own []schedule.Appointment
	for _, a := range all {
		if a.Member == memberID {
			own = append(own, a)
		}
	}
	slices.SortStableFunc(own, func(x, y schedule.Appointment) int {
		return x.StartHour - y.StartHour
	})
	return own
}
