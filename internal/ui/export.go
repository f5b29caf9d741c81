package ui

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/teamcal/internal/dateutil"
	"github.com/javiermolinar/teamcal/internal/export"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		format string
		out    string
		date   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the schedule as JSON, YAML or iCalendar",
		Long: `Export the schedule.

The format defaults to the --out file extension, or JSON when writing to
stdout. iCalendar events are placed on --date, which defaults to the
selected day and accepts the same shortcuts as the /date prompt.`,
		Example: `  teamcal export
  teamcal export --out=today.ics
  teamcal export --format=yaml --date=tomorrow`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := resolveFormat(format, out)
			if err != nil {
				return err
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}

			day := s.UI().SelectedDate
			if date != "" {
				day, err = dateutil.ParseRelativeDate(date, dateutil.TruncateToDay(a.now()))
				if err != nil {
					return err
				}
			}

			snap := s.Snapshot()
			if out == "" {
				return export.Write(cmd.OutOrStdout(), f, snap, day)
			}
			if err := export.WriteFile(out, f, snap, day); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d appointments to %s\n", len(snap.Appointments), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format (json, yaml, ics)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (defaults to stdout)")
	cmd.Flags().StringVar(&date, "date", "", "Day for calendar events (YYYY-MM-DD, today, tomorrow, ...)")

	return cmd
}

// resolveFormat picks the explicit format, else the file extension, else JSON.
func resolveFormat(format, out string) (export.Format, error) {
	switch {
	case format != "":
		return export.ParseFormat(format)
	case filepath.Ext(out) != "":
		return export.ParseFormat(filepath.Ext(out))
	default:
		return export.FormatJSON, nil
	}
}
