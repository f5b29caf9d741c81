package view

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/teamcal/internal/dateutil"
	"github.com/javiermolinar/teamcal/internal/slot"
)

// HeaderModel contains the fields shown above the grid.
type HeaderModel struct {
	Date         time.Time
	Today        time.Time
	View         string
	StatusFilter string
	TeamFilter   string
	Grabbing     bool
}

// HeaderStyles groups styles for the header lines.
type HeaderStyles struct {
	Title lipgloss.Style
	Day   lipgloss.Style
	Today lipgloss.Style
	Tag   lipgloss.Style
	Mode  lipgloss.Style
	Muted lipgloss.Style
	Bg    lipgloss.Color
}

// HeaderLines renders the title line and the filter line.
func HeaderLines(model HeaderModel, styles HeaderStyles, width int) []string {
	dayStyle := styles.Day
	dayLabel := dateutil.DayLabel(model.Date)
	if dateutil.SameDay(model.Date, model.Today) {
		dayStyle = styles.Today
		dayLabel += " (today)"
	}
	sep := styles.Muted.Render("  ")

	title := styles.Title.Render(dateutil.HeaderLabel(model.Date)) + sep + dayStyle.Render(dayLabel)
	if model.Grabbing {
		title += sep + styles.Mode.Render(" MOVE ")
	}

	filters := strings.Join([]string{
		styles.Tag.Render(model.View),
		styles.Muted.Render("status:") + styles.Tag.Render(model.StatusFilter),
		styles.Muted.Render("team:") + styles.Tag.Render(model.TeamFilter),
	}, sep)

	return []string{
		PadLinesWithBackground(title, width, 1, styles.Bg),
		PadLinesWithBackground(filters, width, 1, styles.Bg),
	}
}

// SlotHeader returns the hour labels positioned at each slot column.
func SlotHeader(memberColumnWidth, slotWidth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", memberColumnWidth))
	for s := slot.First; s <= slot.Last; s++ {
		b.WriteString(Fit(slot.HeaderLabel(s), slotWidth))
	}
	return b.String()
}
