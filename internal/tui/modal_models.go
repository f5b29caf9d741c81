package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/javiermolinar/teamcal/internal/editor"
	"github.com/javiermolinar/teamcal/internal/schedule"
	"github.com/javiermolinar/teamcal/internal/slot"
	"github.com/javiermolinar/teamcal/internal/tui/view"
)

type editorModalViewModel struct {
	Title     string
	Editing   bool
	CanSubmit bool
	Model     view.EditorFormModel
	Styles    view.EditorStyles
}

func (m Model) editorModalViewModel() editorModalViewModel {
	form := m.editor.Form()
	editing := m.editor.State() == editor.StateEditing
	title := "New Appointment"
	if editing {
		title = "Edit Appointment"
	}

	preview := m.editor.Preview()
	tags := []string{preview.Range()}
	if id := m.editor.JobID(); id != "" {
		if j, ok := m.store.Job(id); ok {
			tags = append(tags, "Job "+j.JobID)
		}
	}

	fields := []view.EditorField{
		{Label: "Client", Value: m.formInputView(m.formClient, fieldClient)},
		{Label: "Team member", Value: preview.Member, Choice: true},
		{Label: "Start", Value: slotLabel(form.StartSlot), Choice: true},
		{Label: "Hours", Value: m.formInputView(m.formDuration, fieldDuration)},
		{Label: "Status", Value: form.Status.Title(), Choice: true},
		{Label: "Description", Value: m.formInputView(m.formDesc, fieldDescription)},
	}
	fields[m.formFocus].Focused = true

	conflicts := m.editor.Conflicts()
	lines := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		lines = append(lines, view.ConflictLine(c))
	}

	return editorModalViewModel{
		Title:     title,
		Editing:   editing,
		CanSubmit: m.editor.CanSubmit(),
		Model: view.EditorFormModel{
			Tags:      tags,
			Fields:    fields,
			Conflicts: lines,
			Error:     m.formErr,
		},
		Styles: m.styles.modalStyleSet().EditorStyles(),
	}
}

// formInputView renders a text input with the focused background when it
// has focus.
func (m Model) formInputView(in textinput.Model, field int) string {
	textStyle := m.styles.ModalInputTextStyle
	cursorStyle := textStyle
	if m.formFocus == field {
		focusedBg := m.styles.ModalInputFocusedStyle.GetBackground()
		textStyle = textStyle.Background(focusedBg)
		in.PlaceholderStyle = m.styles.ModalPlaceholderStyle.Background(focusedBg)
		cursorStyle = m.styles.ModalInputCursorStyle
	}
	in.TextStyle = textStyle
	in.PromptStyle = textStyle
	in.Cursor.TextStyle = textStyle
	in.Cursor.Style = cursorStyle
	return in.View()
}

func slotLabel(s int) string {
	if !slot.Valid(s) {
		return "-"
	}
	return slot.MustLabel(s)
}

type confirmDeleteModalViewModel struct {
	Model  view.ConfirmDeleteModel
	Styles view.ConfirmDeleteStyles
}

func (m Model) confirmDeleteModalViewModel() confirmDeleteModalViewModel {
	preview := m.editor.Preview()
	return confirmDeleteModalViewModel{
		Model: view.ConfirmDeleteModel{
			Message:   m.editor.DeleteMessage(),
			TimeRange: preview.Range(),
			Member:    preview.Member,
		},
		Styles: m.styles.modalStyleSet().ConfirmDeleteStyles(),
	}
}

var jobTableHeaders = []string{"Job", "Name", "Address", "Assigned", "Priority", "Est."}

// jobAddressColumn narrows when the modal is too small for the job table.
const jobAddressColumn = 2

type jobsModalViewModel struct {
	Title string
	Width int
	Table view.TableViewState
}

// jobsModalWidth grows the modal with the terminal, within bounds.
func (m Model) jobsModalWidth() int {
	return min(max(m.width-8, m.styles.ModalStyle.GetWidth()), maxJobsModalWidth)
}

const maxJobsModalWidth = 100

func (m Model) jobsModalViewModel() jobsModalViewModel {
	ui := m.store.UI()
	jobs := m.store.FilteredJobs()
	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, m.jobRow(j))
	}

	selected := -1
	if len(rows) > 0 {
		selected = min(m.jobCursor, len(rows)-1)
	}

	width := m.jobsModalWidth()
	return jobsModalViewModel{
		Title: "Jobs: " + ui.AssignedFilter,
		Width: width,
		Table: view.TableViewState{
			Width:       max(0, width-m.styles.ModalStyle.GetHorizontalPadding()),
			Headers:     jobTableHeaders,
			Rows:        rows,
			SelectedRow: selected,
			FlexColumn:  jobAddressColumn,
			Styles:      m.styles.modalStyleSet().JobTableStyles(),
			EmptyText:   "No jobs match this filter.",
		},
	}
}

func (m Model) jobRow(j schedule.Job) []string {
	assigned := "Unassigned"
	if j.Assigned() {
		assigned = "?"
		if mem, ok := m.store.Member(*j.AssignedMember); ok {
			assigned = mem.Name
		}
	}
	priority := "-"
	if j.Priority != nil {
		priority = string(*j.Priority)
	}
	return []string{j.JobID, j.Name, j.Address, assigned, priority, slot.FormatDuration(j.Duration())}
}

// helpSections lists the key bindings shown by the help modal.
func helpSections() []view.HelpSection {
	return []view.HelpSection{
		{
			Title: "Grid",
			Keys: [][2]string{
				{"h/j/k/l", "move the cursor"},
				{"Enter", "edit the card, or create one here"},
				{"m", "pick up the card to move it"},
				{"d/x", "delete the card"},
				{"y", "copy the card summary"},
				{"[ / ] / t", "previous day / next day / today"},
			},
		},
		{
			Title: "Filters",
			Keys: [][2]string{
				{"s", "cycle the status filter"},
				{"f", "cycle the team filter"},
				{"v", "cycle the view"},
				{"J", "schedule a job"},
			},
		},
		{
			Title: "Mouse",
			Keys: [][2]string{
				{"drag", "move a card"},
				{"double-click", "edit a card, or create one"},
				{"wheel", "scroll the team"},
			},
		},
		{
			Title: "Other",
			Keys: [][2]string{
				{"/", "open the command prompt"},
				{"?", "toggle this help"},
				{"q", "quit"},
			},
		},
	}
}
