// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// EditorField is one row of the appointment form.
type EditorField struct {
	Label   string
	Value   string // rendered input or choice label
	Focused bool
	Choice  bool // cycled with left/right instead of typed
}

// EditorFormModel contains the fields needed to render the editor body.
type EditorFormModel struct {
	Tags      []string
	Fields    []EditorField
	Conflicts []string
	Error     string
}

// EditorStyles groups styles for the editor body.
type EditorStyles struct {
	TagStyle          lipgloss.Style
	BodyStyle         lipgloss.Style
	LabelStyle        lipgloss.Style
	InputStyle        lipgloss.Style
	InputFocusedStyle lipgloss.Style
	ChoiceActive      lipgloss.Style
	ChoiceInactive    lipgloss.Style
	HintStyle         lipgloss.Style
	WarningStyle      lipgloss.Style
	SectionTitleStyle lipgloss.Style
}

// RenderEditorBody renders the modal body for the appointment editor.
func RenderEditorBody(model EditorFormModel, styles EditorStyles) string {
	var body strings.Builder
	sep := styles.BodyStyle.Render(" ")

	if len(model.Tags) > 0 {
		tags := make([]string, 0, len(model.Tags))
		for _, tag := range model.Tags {
			tags = append(tags, styles.TagStyle.Render(tag))
		}
		body.WriteString(strings.Join(tags, sep) + "\n\n")
	}

	for _, f := range model.Fields {
		label := styles.LabelStyle.Render(f.Label)
		var value string
		switch {
		case f.Choice && f.Focused:
			value = styles.ChoiceActive.Render("< "+f.Value+" >") + sep + styles.HintStyle.Render("left/right")
		case f.Choice:
			value = styles.ChoiceInactive.Render("  " + f.Value + "  ")
		case f.Focused:
			value = styles.InputFocusedStyle.Render(f.Value)
		default:
			value = styles.InputStyle.Render(f.Value)
		}
		body.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, label, value) + "\n")
	}

	if len(model.Conflicts) > 0 {
		body.WriteString("\n" + styles.WarningStyle.Render("Scheduling conflict with:") + "\n")
		for _, c := range model.Conflicts {
			body.WriteString(styles.WarningStyle.Render("  "+c) + "\n")
		}
	}
	if model.Error != "" {
		body.WriteString("\n" + styles.WarningStyle.Render(model.Error) + "\n")
	}

	return strings.TrimRight(body.String(), "\n")
}
