package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/teamcal/internal/tui/view"
)

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalEditor:
		return m.renderEditorModal()
	case ModalConfirmDelete:
		return m.renderConfirmDeleteModal()
	case ModalJobs:
		return m.renderJobsModal()
	case ModalHelp:
		return m.renderHelpModal()
	default:
		return ""
	}
}

// renderEditorModal renders the appointment create/edit form.
func (m Model) renderEditorModal() string {
	vm := m.editorModalViewModel()
	styles := m.styles.modalStyles()
	body := view.RenderEditorBody(vm.Model, vm.Styles)
	footer := view.EditorFooter(vm.Editing, vm.CanSubmit, styles)
	return view.RenderModalFrame(vm.Title, body, footer, styles)
}

// renderConfirmDeleteModal renders the delete confirmation modal.
func (m Model) renderConfirmDeleteModal() string {
	vm := m.confirmDeleteModalViewModel()
	styles := m.styles.modalStyles()
	body := view.RenderConfirmDeleteBody(vm.Model, vm.Styles)
	footer := view.ConfirmDeleteFooter(styles)
	return view.RenderModalFrame("Delete Appointment", body, footer, styles)
}

// renderJobsModal renders the job list.
func (m Model) renderJobsModal() string {
	vm := m.jobsModalViewModel()
	styles := m.styles.modalStyles()
	body := view.RenderTable(vm.Table)
	// Never narrower than the table, or lipgloss wraps its rows.
	width := max(vm.Width, lipgloss.Width(body)+styles.ModalStyle.GetHorizontalPadding())
	styles.ModalStyle = styles.ModalStyle.Width(width)
	footer := view.JobsFooter(styles)
	return view.RenderModalFrame(vm.Title, body, footer, styles)
}

// renderHelpModal renders the key binding reference.
func (m Model) renderHelpModal() string {
	styles := m.styles.modalStyles()
	body := view.RenderHelpBody(helpSections(), m.styles.modalStyleSet().HelpStyles())
	footer := view.HelpFooter(styles)
	return view.RenderModalFrame("Keys", body, footer, styles)
}
