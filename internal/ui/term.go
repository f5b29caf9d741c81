package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/teamcal/internal/schedule"
)

// Color definitions for consistent styling across the UI.
var (
	colorPending   = color.New(color.FgYellow)
	colorActive    = color.New(color.FgCyan, color.Bold)
	colorCompleted = color.New(color.FgGreen)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Warnings: overlaps and destructive prompts
	colorWarn = color.New(color.FgRed, color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatStatus colors a status name by its lifecycle state.
func formatStatus(s schedule.Status) string {
	switch s {
	case schedule.StatusPending:
		return colorPending.Sprint(string(s))
	case schedule.StatusActive:
		return colorActive.Sprint(string(s))
	case schedule.StatusCompleted:
		return colorCompleted.Sprint(string(s))
	default:
		return string(s)
	}
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatWarn formats text as a warning.
func formatWarn(s string) string {
	return colorWarn.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
