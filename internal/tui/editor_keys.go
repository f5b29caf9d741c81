package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/teamcal/internal/editor"
	"github.com/javiermolinar/teamcal/internal/schedule"
)

// handleModalKeys routes keys to the open modal.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalEditor:
		return m.handleEditorKeys(msg)
	case ModalConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	case ModalJobs:
		return m.handleJobsKeys(msg)
	case ModalHelp:
		return m.handleHelpKeys(msg)
	default:
		m.closeModal("no_modal")
		return m, nil
	}
}

// openCreateAt opens the editor for a new appointment on a member row.
func (m Model) openCreateAt(slotIdx, memberID int) (tea.Model, tea.Cmd) {
	if err := m.editor.OpenCreateAt(slotIdx, memberID); err != nil {
		cmd := m.setError("opening editor", err)
		return m, cmd
	}
	return m.showEditor("create")
}

// openEditFor opens the editor on an existing appointment.
func (m Model) openEditFor(a schedule.Appointment) (tea.Model, tea.Cmd) {
	if err := m.editor.OpenEdit(a); err != nil {
		cmd := m.setError("opening editor", err)
		return m, cmd
	}
	return m.showEditor("edit")
}

// openForJob opens the editor prefilled from a job.
func (m Model) openForJob(j schedule.Job) (tea.Model, tea.Cmd) {
	if err := m.editor.OpenForJob(j); err != nil {
		cmd := m.setError("opening editor", err)
		return m, cmd
	}
	return m.showEditor("job")
}

func (m Model) showEditor(reason string) (tea.Model, tea.Cmd) {
	m.loadForm()
	m.openModal(ModalEditor, reason)
	cmd := m.focusField(fieldClient)
	return m, cmd
}

// loadForm copies the editor's values into the text inputs.
func (m *Model) loadForm() {
	form := m.editor.Form()
	m.formClient.SetValue(form.ClientName)
	m.formDuration.SetValue(form.Duration)
	m.formDesc.SetValue(form.Description)
	m.formClient.CursorEnd()
	m.formDuration.CursorEnd()
	m.formDesc.CursorEnd()
	m.formErr = ""
}

// focusField moves form focus, blurring the other inputs.
func (m *Model) focusField(field int) tea.Cmd {
	m.formFocus = (field%fieldCount + fieldCount) % fieldCount
	m.formClient.Blur()
	m.formDuration.Blur()
	m.formDesc.Blur()
	if in := m.focusedInput(); in != nil {
		return in.Focus()
	}
	return nil
}

// focusedInput returns the text input with focus, or nil on a choice field.
func (m *Model) focusedInput() *textinput.Model {
	switch m.formFocus {
	case fieldClient:
		return &m.formClient
	case fieldDuration:
		return &m.formDuration
	case fieldDescription:
		return &m.formDesc
	default:
		return nil
	}
}

// handleEditorKeys handles keys in the create/edit form.
func (m Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editor.Cancel()
		m.closeModal("editor_cancelled")
		return m, nil
	case "tab", "down":
		cmd := m.focusField(m.formFocus + 1)
		return m, cmd
	case "shift+tab", "up":
		cmd := m.focusField(m.formFocus - 1)
		return m, cmd
	case "enter":
		return m.submitEditor()
	case "ctrl+d":
		if m.editor.State() != editor.StateEditing {
			return m, nil
		}
		if err := m.editor.RequestDelete(); err != nil {
			cmd := m.setError("requesting delete", err)
			return m, cmd
		}
		m.deleteFromGrid = false
		m.openModal(ModalConfirmDelete, "confirm_delete")
		return m, nil
	case "left", "right":
		if m.focusedInput() == nil {
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			m.cycleChoice(delta)
			return m, nil
		}
	}

	in := m.focusedInput()
	if in == nil {
		return m, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	m.syncField()
	return m, cmd
}

// cycleChoice steps the focused choice field.
func (m *Model) cycleChoice(delta int) {
	switch m.formFocus {
	case fieldMember:
		m.editor.CycleMember(delta)
	case fieldStart:
		m.editor.CycleStartSlot(delta)
	case fieldStatus:
		m.editor.CycleStatus(delta)
	}
	m.formErr = ""
}

// syncField pushes the focused input's value into the editor.
func (m *Model) syncField() {
	switch m.formFocus {
	case fieldClient:
		m.editor.SetClientName(m.formClient.Value())
	case fieldDuration:
		m.editor.SetDuration(m.formDuration.Value())
	case fieldDescription:
		m.editor.SetDescription(m.formDesc.Value())
	}
	m.formErr = ""
}

// submitEditor saves the form. Validation failures keep the form open.
func (m Model) submitEditor() (tea.Model, tea.Cmd) {
	editing := m.editor.State() == editor.StateEditing
	a, err := m.editor.Submit()

	var verr *editor.ValidationError
	if errors.As(err, &verr) {
		m.formErr = verr.Message
		return m, nil
	}

	m.closeModal("editor_submitted")
	if err != nil {
		if a.ID == "" {
			m.editor.Cancel()
		}
		m.grid.Invalidate()
		cmd := m.setError("saving appointment", err)
		return m, cmd
	}

	m.grid.Invalidate()
	m.selectCardCursor(a)
	verb := "Created"
	if editing {
		verb = "Updated"
	}
	m.logger.Info("appointment saved", "id", a.ID, "editing", editing)
	cmd := m.setStatus(fmt.Sprintf("%s %s %s", verb, a.ClientName, a.Time))
	return m, cmd
}

// requestDeleteAtCursor asks to delete the card under the cursor.
func (m Model) requestDeleteAtCursor() (tea.Model, tea.Cmd) {
	a, ok := m.appointmentAtCursor()
	if !ok {
		cmd := m.setStatus("No appointment to delete")
		return m, cmd
	}
	if err := m.editor.OpenEdit(a); err != nil {
		cmd := m.setError("opening editor", err)
		return m, cmd
	}
	if err := m.editor.RequestDelete(); err != nil {
		m.editor.Cancel()
		cmd := m.setError("requesting delete", err)
		return m, cmd
	}
	m.openModal(ModalConfirmDelete, "confirm_delete")
	m.deleteFromGrid = true
	return m, nil
}

// handleConfirmDeleteKeys handles the delete confirmation.
func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		name := m.editor.Form().ClientName
		deleted, err := m.editor.ConfirmDelete()
		m.closeModal("deleted")
		if err != nil {
			cmd := m.setError("deleting appointment", err)
			return m, cmd
		}
		m.grid.Invalidate()
		m.clampCursor()
		if !deleted {
			cmd := m.setStatus("Appointment was already gone")
			return m, cmd
		}
		m.logger.Info("appointment deleted", "client", name)
		cmd := m.setStatus("Deleted " + name)
		return m, cmd

	case "n", "esc":
		if m.deleteFromGrid {
			m.editor.Cancel()
			m.closeModal("delete_cancelled")
			return m, nil
		}
		m.editor.CancelDelete()
		m.openModal(ModalEditor, "delete_cancelled")
		cmd := m.focusField(m.formFocus)
		return m, cmd
	}
	return m, nil
}

// handleJobsKeys handles the job list.
func (m Model) handleJobsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	jobs := m.store.FilteredJobs()
	switch msg.String() {
	case "esc", "q", "J":
		m.closeModal("jobs_closed")
	case "j", "down":
		if m.jobCursor < len(jobs)-1 {
			m.jobCursor++
		}
	case "k", "up":
		if m.jobCursor > 0 {
			m.jobCursor--
		}
	case "tab":
		next := schedule.Next(schedule.AssignedFilters(), m.store.UI().AssignedFilter)
		if err := m.store.SetAssignedFilter(next); err != nil {
			cmd := m.setError("setting job filter", err)
			return m, cmd
		}
		m.jobCursor = 0
	case "enter":
		if len(jobs) == 0 {
			return m, nil
		}
		j := jobs[min(m.jobCursor, len(jobs)-1)]
		m.closeModal("job_selected")
		return m.openForJob(j)
	}
	return m, nil
}

// handleHelpKeys handles the help modal.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "?", "q", "enter":
		m.closeModal("help_closed")
	}
	return m, nil
}
