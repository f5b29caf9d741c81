package tui

import (
	"github.com/javiermolinar/teamcal/internal/tui/input"
	"github.com/javiermolinar/teamcal/internal/tui/view"
)

var promptCommands = []input.PromptCommand{
	{
		Name:        "/date",
		Args:        "<YYYY-MM-DD|today|tomorrow|friday|last-monday>",
		Description: "Jump to a day",
	},
	{
		Name:        "/status",
		Args:        "<All|pending|active|completed>",
		Description: "Filter appointments by status",
	},
	{
		Name:        "/team",
		Args:        "<All|member id>",
		Description: "Filter appointments by team member",
	},
	{
		Name:        "/view",
		Args:        "<Events|Team View|Team Tracking>",
		Description: "Select the calendar view",
	},
	{
		Name:        "/export",
		Args:        "<file.json|file.yaml|file.ics>",
		Description: "Export the schedule for the selected day",
	},
	{
		Name:        "/reset",
		Description: "Restore the built-in sample data",
	},
	{
		Name:        "/help",
		Description: "Show key bindings",
	},
}

func (m Model) promptLines(contentWidth int) []string {
	state := view.PromptState{
		Value:      m.prompt.Value(),
		Cursor:     m.promptCursor(),
		ModePrompt: m.mode == ModePrompt,
	}
	return view.PromptLines(state, contentWidth, promptCommands)
}
