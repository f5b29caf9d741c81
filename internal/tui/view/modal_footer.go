// Package view provides rendering helpers for the TUI.
package view

// EditorFooter renders the footer for the appointment editor. Save is
// disabled while the form conflicts with another appointment.
func EditorFooter(editing, canSubmit bool, styles ModalStyles) string {
	buttons := []Button{{Label: "[Enter] Save", Disabled: !canSubmit}}
	if editing {
		buttons = append(buttons, Button{Label: "[ctrl+d] Delete"})
	}
	buttons = append(buttons, Button{Label: "[Esc] Cancel"})
	return RenderButtons(styles, buttons...)
}

// ConfirmDeleteFooter renders the footer for the confirm delete modal.
func ConfirmDeleteFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, "[y/Enter] Delete", "[n/Esc] Keep")
}

// JobsFooter renders the footer for the job list modal.
func JobsFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, "[Enter] Schedule", "[Tab] Filter", "[Esc] Close")
}

// HelpFooter renders the footer for the help modal.
func HelpFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, "[Esc] Close")
}
