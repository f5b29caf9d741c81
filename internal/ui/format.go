package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/teamcal/internal/schedule"
	"github.com/javiermolinar/teamcal/internal/slot"
)

// Stats holds appointment counts per status.
type Stats struct {
	Total     int
	Pending   int
	Active    int
	Completed int
	Hours     float64
}

// CountStatuses aggregates appointments by status.
func CountStatuses(all []schedule.Appointment) Stats {
	var s Stats
	for _, a := range all {
		s.Total++
		s.Hours += a.Duration
		switch a.Status {
		case schedule.StatusPending:
			s.Pending++
		case schedule.StatusActive:
			s.Active++
		case schedule.StatusCompleted:
			s.Completed++
		}
	}
	return s
}

// String renders the counts the way the grid footer does.
func (s Stats) String() string {
	noun := "appointments"
	if s.Total == 1 {
		noun = "appointment"
	}
	return fmt.Sprintf("%d %s | %d pending, %d active, %d completed",
		s.Total, noun, s.Pending, s.Active, s.Completed)
}

// PrintOpts configures appointment printing behavior.
type PrintOpts struct {
	Verbose      bool // Show descriptions
	MaxNameWidth int  // Maximum client name width (0 = auto)
}

// CalcMaxNameWidth calculates the maximum client name width based on options.
func (o PrintOpts) CalcMaxNameWidth(defaultWidth int) int {
	if o.MaxNameWidth > 0 {
		return o.MaxNameWidth
	}
	if !o.Verbose {
		return defaultWidth
	}
	// Base: "    ● 10:00 am - 12:30 pm  completed  " = ~40 columns
	available := termWidth() - 40
	if available > defaultWidth {
		return available
	}
	return defaultWidth
}

// PrintAppointmentRow prints a single appointment row.
func PrintAppointmentRow(w io.Writer, a schedule.Appointment, opts PrintOpts, maxNameWidth int) {
	name := truncate(a.ClientName, maxNameWidth)
	status := formatStatus(a.Status)
	// Pad on the raw status so colors do not skew the column.
	pad := strings.Repeat(" ", max(0, len("completed")-len(a.Status)))

	line := fmt.Sprintf("    %s %-19s  %s%s  %s",
		statusSymbol(a.Status), a.Time, status, pad, name)
	if !a.WithinWorkingHours() {
		line += "  " + formatWarn("(past 6:00 pm)")
	}
	fmt.Fprintln(w, line)

	if opts.Verbose && a.Description != "" {
		fmt.Fprintf(w, "      %s\n", formatMuted(a.Description))
	}
}

// PrintJobRow prints a single job row.
func PrintJobRow(w io.Writer, j schedule.Job, assignee string, maxNameWidth int) {
	priority := "-"
	if j.Priority != nil {
		priority = string(*j.Priority)
	}
	if assignee == "" {
		assignee = formatMuted("unassigned")
	}
	fmt.Fprintf(w, "  #%-3s %s  %-*s  %-6s  %-6s  %s\n",
		j.ID, j.JobID, maxNameWidth, truncate(j.Name, maxNameWidth),
		priority, slot.FormatDuration(j.Duration()), assignee)
}

// truncate shortens s to width display columns, ending with "...".
func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

func statusSymbol(s schedule.Status) string {
	switch s {
	case schedule.StatusPending:
		return "○"
	case schedule.StatusActive:
		return "◐"
	case schedule.StatusCompleted:
		return "●"
	default:
		return "?"
	}
}

// memberNames maps member ids to display names.
func memberNames(members []schedule.TeamMember) map[int]string {
	names := make(map[int]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}
	return names
}

// memberName returns the member's name, or "member <id>" for unknown ids.
func memberName(names map[int]string, id int) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "member " + strconv.Itoa(id)
}
