package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/teamcal/internal/dateutil"
	"github.com/javiermolinar/teamcal/internal/schedule"
	"github.com/javiermolinar/teamcal/internal/slot"
	"github.com/javiermolinar/teamcal/internal/tui/commands"
	"github.com/javiermolinar/teamcal/internal/tui/input"
	"github.com/javiermolinar/teamcal/internal/tui/view"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// Mode-specific handling
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeGrab:
		return m.handleGrabKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "h", "left":
		m.moveCursor(-1, 0)
	case "l", "right":
		m.moveCursor(1, 0)
	case "k", "up":
		m.moveCursor(0, -1)
	case "j", "down":
		m.moveCursor(0, 1)
	case "home", "0":
		m.moveCursor(-m.cursor.TimeIndex, 0)
	case "end", "$":
		m.moveCursor(slot.Last-m.cursor.TimeIndex, 0)
	case "pgup":
		m.moveCursor(0, -max(1, m.layoutCache.VisibleRows))
	case "pgdown":
		m.moveCursor(0, max(1, m.layoutCache.VisibleRows))

	// Day navigation
	case "[":
		return m.shiftDay(-1)
	case "]":
		return m.shiftDay(1)
	case "t":
		m.store.SetSelectedDate(dateutil.TruncateToDay(m.now()))
		return m, nil

	// Appointments
	case "enter", "e":
		return m.handleEnter()
	case "n":
		mem, ok := m.memberAtCursor()
		if !ok {
			return m, nil
		}
		return m.openCreateAt(m.cursor.TimeIndex, mem.ID)
	case "m":
		return m.startGrab()
	case "d", "x":
		return m.requestDeleteAtCursor()
	case "y":
		return m.handleYank()

	// Filters
	case "s":
		return m.cycleFilter("status", schedule.StatusFilters(), m.store.UI().StatusFilter, m.store.SetStatusFilter)
	case "f":
		return m.cycleFilter("team", schedule.TeamFilters(m.store.Members()), m.store.UI().TeamFilter, m.store.SetTeamFilter)
	case "v":
		return m.cycleFilter("view", schedule.Views, m.store.UI().ActiveView, m.store.SetActiveView)

	// Modals and prompt
	case "J":
		m.jobCursor = 0
		m.openModal(ModalJobs, "jobs")
	case "?":
		m.openModal(ModalHelp, "help")
	case "/", ":":
		m.setMode(ModePrompt, "prompt")
		m.prompt.SetValue("/")
		m.prompt.CursorEnd()
		m.layoutCache = m.buildLayoutCache(m.width, m.height)
		cmd := m.prompt.Focus()
		return m, cmd
	case "esc":
		m.statusMsg = ""
	}
	return m, nil
}

// handleEnter edits the card under the cursor or creates one there.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	if a, ok := m.appointmentAtCursor(); ok {
		return m.openEditFor(a)
	}
	mem, ok := m.memberAtCursor()
	if !ok {
		return m, nil
	}
	return m.openCreateAt(m.cursor.TimeIndex, mem.ID)
}

// handleYank copies the card under the cursor.
func (m Model) handleYank() (tea.Model, tea.Cmd) {
	a, ok := m.appointmentAtCursor()
	if !ok {
		cmd := m.setStatus("No appointment to copy")
		return m, cmd
	}
	return m, commands.CopyToClipboard(view.CardSummary(a, m.memberName(a.Member)))
}

func (m Model) shiftDay(n int) (tea.Model, tea.Cmd) {
	day := dateutil.ShiftDays(m.store.UI().SelectedDate, n)
	m.store.SetSelectedDate(day)
	return m, nil
}

// cycleFilter advances a filter to its next value.
func (m Model) cycleFilter(name string, values []string, current string, set func(string) error) (tea.Model, tea.Cmd) {
	next := schedule.Next(values, current)
	if err := set(next); err != nil {
		cmd := m.setError("setting "+name+" filter", err)
		return m, cmd
	}
	m.grid.Invalidate()
	m.clampCursor()
	label := next
	if name == "team" {
		label = view.TeamFilterLabel(next, m.store.Members())
	}
	cmd := m.setStatus(fmt.Sprintf("%s: %s", capitalize(name), label))
	return m, cmd
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// startGrab picks up the card under the cursor for a keyboard move.
func (m Model) startGrab() (tea.Model, tea.Cmd) {
	a, ok := m.appointmentAtCursor()
	if !ok {
		cmd := m.setStatus("No appointment to move")
		return m, cmd
	}
	if !m.grid.Grab(a.ID) {
		return m, nil
	}
	session, _ := m.grid.Dragging()
	LogDrag("grab", session)
	m.setMode(ModeGrab, "grab")
	cmd := m.setStatus(fmt.Sprintf("Moving %s", a.ClientName))
	return m, cmd
}

// handleGrabKeys handles keys while a card is picked up.
func (m Model) handleGrabKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		m.moveGrabbed(-1, 0)
	case "l", "right":
		m.moveGrabbed(1, 0)
	case "k", "up":
		m.moveGrabbed(0, -1)
	case "j", "down":
		m.moveGrabbed(0, 1)
	case "enter", "m", " ":
		session, _ := m.grid.Dragging()
		m.setMode(ModeNormal, "drop")
		if session.HasHover && session.Hover == session.Origin {
			m.grid.CancelDrag()
			cmd := m.setStatus("Move cancelled")
			return m, cmd
		}
		LogDrag("drop", session)
		return m.finishDrop(m.grid.DropGrabbed())
	case "esc", "q":
		session, _ := m.grid.Dragging()
		LogDrag("cancel", session)
		m.grid.CancelDrag()
		m.setMode(ModeNormal, "move_cancelled")
		m.selectCardCursor(session.Appointment)
		cmd := m.setStatus("Move cancelled")
		return m, cmd
	}
	return m, nil
}

func (m *Model) moveGrabbed(dSlot, dRow int) {
	m.grid.MoveGrabbed(dSlot, dRow)
	if session, ok := m.grid.Dragging(); ok {
		m.ensureCellVisible(session.Hover.MemberIndex, session.Hover.TimeIndex)
	}
}

// handlePromptKeys handles keys in prompt mode.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil

	case "enter":
		value := m.prompt.Value()
		m.closePrompt()
		return m.handlePromptSubmit(value)

	case "tab":
		if completion, ok := input.PromptAutocomplete(m.prompt.Value(), promptCommands); ok {
			m.prompt.SetValue(completion)
			m.prompt.CursorEnd()
			m.layoutCache = m.buildLayoutCache(m.width, m.height)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.setMode(ModeNormal, "prompt_closed")
	m.prompt.Blur()
	m.prompt.SetValue("")
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
}

// handlePromptSubmit processes the submitted prompt.
func (m Model) handlePromptSubmit(value string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(value) == "" || strings.TrimSpace(value) == "/" {
		return m, nil
	}

	inv, err := input.ParsePrompt(value)
	if err != nil {
		cmd := m.setStatus(err.Error())
		return m, cmd
	}

	switch inv.Name {
	case "/date":
		day, err := dateutil.ParseRelativeDate(inv.Rest(), m.store.UI().SelectedDate)
		if err != nil {
			cmd := m.setStatus(err.Error())
			return m, cmd
		}
		m.store.SetSelectedDate(day)
		cmd := m.setStatus("Showing " + dateutil.DayLabel(day))
		return m, cmd

	case "/status":
		if err := m.store.SetStatusFilter(inv.Arg(0)); err != nil {
			cmd := m.setStatus(fmt.Sprintf("Unknown status filter %q", inv.Arg(0)))
			return m, cmd
		}
		m.clampCursor()
		return m, nil

	case "/team":
		filter := inv.Arg(0)
		if strings.EqualFold(filter, schedule.FilterAll) {
			filter = schedule.FilterAll
		}
		if err := m.store.SetTeamFilter(filter); err != nil {
			cmd := m.setStatus(fmt.Sprintf("Unknown team member %q", inv.Arg(0)))
			return m, cmd
		}
		m.clampCursor()
		return m, nil

	case "/view":
		if err := m.store.SetActiveView(inv.Rest()); err != nil {
			cmd := m.setStatus(fmt.Sprintf("Unknown view %q", inv.Rest()))
			return m, cmd
		}
		return m, nil

	case "/export":
		path := inv.Rest()
		if path == "" {
			cmd := m.setStatus("Export requires a file name")
			return m, cmd
		}
		ui := m.store.UI()
		return m, commands.Export(path, m.store.Snapshot(), ui.SelectedDate)

	case "/reset":
		return m, commands.Reset(m.store)

	case "/help":
		m.openModal(ModalHelp, "prompt_help")
		return m, nil

	default:
		cmd := m.setStatus(fmt.Sprintf("Unknown command: %s", inv.Name))
		return m, cmd
	}
}
