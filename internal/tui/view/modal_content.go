// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmDeleteModel contains the fields needed to render the confirm delete body.
type ConfirmDeleteModel struct {
	Message   string
	TimeRange string
	Member    string
}

// ConfirmDeleteStyles groups styles for the confirm delete body.
type ConfirmDeleteStyles struct {
	BodyStyle lipgloss.Style
	MetaStyle lipgloss.Style
}

// RenderConfirmDeleteBody renders the modal body for the delete confirmation.
func RenderConfirmDeleteBody(model ConfirmDeleteModel, styles ConfirmDeleteStyles) string {
	var body strings.Builder

	body.WriteString(styles.BodyStyle.Render(model.Message) + "\n")
	if model.TimeRange != "" {
		body.WriteString("\n" + styles.MetaStyle.Render(model.TimeRange+" with "+model.Member))
	}

	return body.String()
}

// HelpSection is a titled group of key bindings.
type HelpSection struct {
	Title string
	Keys  [][2]string // key, description
}

// HelpStyles groups styles for the help body.
type HelpStyles struct {
	SectionTitleStyle lipgloss.Style
	KeyStyle          lipgloss.Style
	BodyStyle         lipgloss.Style
}

// RenderHelpBody renders key binding sections.
func RenderHelpBody(sections []HelpSection, styles HelpStyles) string {
	var body strings.Builder
	for i, sec := range sections {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(styles.SectionTitleStyle.Render(sec.Title) + "\n")
		for _, kv := range sec.Keys {
			body.WriteString(styles.KeyStyle.Render(kv[0]) + styles.BodyStyle.Render(kv[1]) + "\n")
		}
	}
	return strings.TrimRight(body.String(), "\n")
}
