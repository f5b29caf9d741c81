package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/teamcal/internal/schedule"
	"github.com/javiermolinar/teamcal/internal/slot"
	"github.com/javiermolinar/teamcal/internal/tui/commands"
)

// How long status and error messages stay in the footer.
const (
	statusTimeout = 3 * time.Second
	errorTimeout  = 5 * time.Second
)

// setStatus shows msg and schedules its removal.
func (m *Model) setStatus(msg string) tea.Cmd {
	return m.flash(msg, statusTimeout)
}

// setError logs err and shows it in the footer.
func (m *Model) setError(context string, err error) tea.Cmd {
	m.err = err
	LogError(context, err)
	m.logger.Error(context, "error", err)
	return m.flash(fmt.Sprintf("Error: %v", err), errorTimeout)
}

func (m *Model) flash(msg string, d time.Duration) tea.Cmd {
	m.statusMsg = msg
	m.statusTime = m.now().Add(d)
	return tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

// setMode switches the interaction mode.
func (m *Model) setMode(to Mode, reason string) {
	LogModeChange(m.mode, to, reason)
	m.mode = to
	if to != ModeModal {
		m.modalType = ModalNone
	}
}

// openModal shows a modal.
func (m *Model) openModal(t ModalType, reason string) {
	m.setMode(ModeModal, reason)
	m.modalType = t
}

// closeModal returns to the grid.
func (m *Model) closeModal(reason string) {
	m.setMode(ModeNormal, reason)
	m.formErr = ""
	m.deleteFromGrid = false
}

func (m Model) cursorInGrid(rows int) bool {
	return m.cursor.MemberIndex >= 0 && m.cursor.MemberIndex < rows &&
		slot.Valid(m.cursor.TimeIndex)
}

// appointmentAtCursor returns the topmost card covering the cursor cell.
func (m Model) appointmentAtCursor() (schedule.Appointment, bool) {
	return m.grid.CardAtCell(m.cursor)
}

// memberAtCursor returns the member on the cursor row.
func (m Model) memberAtCursor() (schedule.TeamMember, bool) {
	return m.grid.MemberAt(m.cursor.MemberIndex)
}

// moveCursor shifts the cursor, clamped to the grid.
func (m *Model) moveCursor(dSlot, dRow int) {
	m.cursor.TimeIndex += dSlot
	m.cursor.MemberIndex += dRow
	m.clampCursor()
	m.ensureCursorVisible()
}

func (m *Model) clampCursor() {
	rows := len(m.grid.Members())
	m.cursor.TimeIndex = min(max(m.cursor.TimeIndex, slot.First), slot.Last)
	m.cursor.MemberIndex = min(max(m.cursor.MemberIndex, 0), max(rows-1, 0))
}

// ensureCellVisible scrolls the viewport so the cell at (row, col) is shown.
func (m *Model) ensureCellVisible(row, col int) {
	layout := m.layoutCache
	if row < m.scroll {
		m.scroll = row
	}
	if layout.VisibleRows > 0 && row >= m.scroll+layout.VisibleRows {
		m.scroll = row - layout.VisibleRows + 1
	}
	if col < m.hscroll {
		m.hscroll = col
	}
	if layout.VisibleSlots > 0 && col >= m.hscroll+layout.VisibleSlots {
		m.hscroll = col - layout.VisibleSlots + 1
	}
	m.clampScroll()
}

func (m *Model) ensureCursorVisible() {
	m.ensureCellVisible(m.cursor.MemberIndex, m.cursor.TimeIndex)
}

// clampScroll keeps the viewport inside the grid.
func (m *Model) clampScroll() {
	rows := len(m.grid.Members())
	m.scroll = min(max(m.scroll, 0), max(0, rows-m.layoutCache.VisibleRows))
	m.hscroll = min(max(m.hscroll, 0), max(0, slot.Count-m.layoutCache.VisibleSlots))
}

// scrollBy moves the viewport by rows without moving the cursor.
func (m *Model) scrollBy(rows int) {
	m.scroll += rows
	m.clampScroll()
}

// selectCardCursor puts the cursor on an appointment's start cell.
func (m *Model) selectCardCursor(a schedule.Appointment) {
	if row, ok := m.grid.RowOf(a.Member); ok {
		m.cursor.MemberIndex = row
		m.cursor.TimeIndex = a.StartHour
		m.clampCursor()
		m.ensureCursorVisible()
	}
}

// memberName resolves a member id for messages.
func (m Model) memberName(id int) string {
	if mem, ok := m.store.Member(id); ok {
		return mem.Name
	}
	return fmt.Sprintf("member %d", id)
}
