// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles needed to render modal frames and buttons.
type ModalStyles struct {
	ModalHeaderStyle         lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalFooterStyle         lipgloss.Style
	ModalStyle               lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonActiveStyle   lipgloss.Style
	ModalButtonDisabledStyle lipgloss.Style
	ModalBodyStyle           lipgloss.Style
}

// Button is one footer action.
type Button struct {
	Label    string
	Disabled bool
}

// RenderModalFrame renders a modal with the provided title, body, and footer.
func RenderModalFrame(title, body, footer string, styles ModalStyles) string {
	var b strings.Builder

	header := styles.ModalHeaderStyle.Render(styles.ModalTitleStyle.Render(title))
	b.WriteString(header)
	if body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	if footer != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.ModalFooterStyle.Render(footer))
	}

	return styles.ModalStyle.Render(b.String())
}

// RenderModalButtons renders a row of modal buttons with the first one active.
func RenderModalButtons(styles ModalStyles, labels ...string) string {
	buttons := make([]Button, 0, len(labels))
	for _, label := range labels {
		buttons = append(buttons, Button{Label: label})
	}
	return RenderButtons(styles, buttons...)
}

// RenderButtons renders buttons; the first enabled one is active and
// disabled ones are dimmed.
func RenderButtons(styles ModalStyles, buttons ...Button) string {
	parts := make([]string, 0, len(buttons))
	activeDone := false
	for _, btn := range buttons {
		style := styles.ModalButtonStyle
		switch {
		case btn.Disabled:
			style = styles.ModalButtonDisabledStyle
		case !activeDone:
			style = styles.ModalButtonActiveStyle
			activeDone = true
		}
		parts = append(parts, style.Render(btn.Label))
	}
	sep := styles.ModalBodyStyle.Render(" ")
	return strings.Join(parts, sep)
}
