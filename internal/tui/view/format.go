// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"
	"strconv"

	"github.com/javiermolinar/teamcal/internal/schedule"
)

// ConflictLine formats one entry of the editor conflict list.
func ConflictLine(a schedule.Appointment) string {
	return fmt.Sprintf("• %s (%s)", a.ClientName, a.Time)
}

// TeamFilterLabel resolves a team filter value to a member name.
func TeamFilterLabel(filter string, members []schedule.TeamMember) string {
	id, err := strconv.Atoi(filter)
	if err != nil {
		return filter
	}
	for _, m := range members {
		if m.ID == id {
			return m.Name
		}
	}
	return filter
}

// CardSummary is the text copied to the clipboard for an appointment.
func CardSummary(a schedule.Appointment, member string) string {
	s := fmt.Sprintf("%s, %s with %s [%s]", a.ClientName, a.Time, member, a.Status)
	if a.Description != "" {
		s += ": " + a.Description
	}
	return s
}
