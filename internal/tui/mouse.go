package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/teamcal/internal/grid"
	"github.com/javiermolinar/teamcal/internal/schedule"
	"github.com/javiermolinar/teamcal/internal/slot"
)

// gridPoint translates a terminal position to grid coordinates, undoing
// the viewport scroll past the frozen member column and slot header.
// Positions outside the grid box return ok == false.
func (m Model) gridPoint(x, y int) (gx, gy int, ok bool) {
	layout := m.layoutCache
	l := m.grid.Layout()

	gx = x - layout.GridX
	gy = y - layout.GridY
	if gx < 0 || gy < 0 || gx >= layout.InnerW || gy >= layout.GridH {
		return -1, -1, false
	}
	if gx >= l.MemberColumnWidth {
		gx += m.hscroll * l.SlotWidth
	}
	if gy >= l.HeaderHeight {
		gy += m.scroll * l.RowHeight
	}
	return gx, gy, true
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	gx, gy, inGrid := m.gridPoint(msg.X, msg.Y)
	LogMouse(msg, gx, gy)

	if m.mode == ModeModal || m.mode == ModePrompt {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(1)
		return m, nil
	}

	if m.mode != ModeNormal {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inGrid {
			return m, nil
		}
		return m.handleMousePress(gx, gy)

	case tea.MouseActionMotion:
		if _, dragging := m.grid.Dragging(); dragging && inGrid {
			m.grid.DragTo(gx, gy)
		}
		return m, nil

	case tea.MouseActionRelease:
		return m.handleMouseRelease(gx, gy, inGrid)
	}

	return m, nil
}

func (m Model) handleMousePress(gx, gy int) (tea.Model, tea.Cmd) {
	cell, ok := m.grid.HitTest(gx, gy)
	if !ok {
		m.clicks.Reset()
		return m, nil
	}
	m.cursor = cell
	m.pressCell = cell
	m.ensureCursorVisible()

	if m.clicks.Click(cell, m.now()) {
		m.grid.CancelDrag()
		return m.runAction(m.grid.DoubleClick(gx, gy))
	}

	if m.grid.BeginDrag(gx, gy) {
		session, _ := m.grid.Dragging()
		LogDrag("begin", session)
	}
	return m, nil
}

func (m Model) handleMouseRelease(gx, gy int, inGrid bool) (tea.Model, tea.Cmd) {
	session, dragging := m.grid.Dragging()
	if !dragging {
		return m, nil
	}

	var cell grid.Cell
	ok := false
	if inGrid {
		cell, ok = m.grid.HitTest(gx, gy)
	}
	if !ok || cell == m.pressCell {
		// A click without movement, or a drop off the grid.
		m.grid.CancelDrag()
		LogDrag("cancel", session)
		return m, nil
	}

	LogDrag("drop", session)
	m.clicks.Reset()
	return m.finishDrop(m.grid.DropAt(cell))
}

// finishDrop reports the outcome of a mouse or keyboard drop.
func (m Model) finishDrop(res grid.DropResult, err error) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(err, grid.ErrOutsideWorkingHours):
		cmd := m.setStatus(fmt.Sprintf("Cannot move: %v", err))
		return m, cmd
	case errors.Is(err, grid.ErrNoTargetCell), errors.Is(err, grid.ErrNotDragging):
		return m, nil
	case err != nil:
		cmd := m.setError("moving appointment", err)
		return m, cmd
	}

	a := res.Appointment
	m.selectCardCursor(a)
	msg := fmt.Sprintf("Moved %s to %s with %s", a.ClientName, a.Time, m.memberName(a.Member))
	if len(res.Overlaps) > 0 {
		msg += fmt.Sprintf(" (overlaps %s)", overlapNames(res.Overlaps))
	}
	m.logger.Info("appointment moved", "id", a.ID, "start", a.StartHour, "member", a.Member, "overlaps", len(res.Overlaps))
	cmd := m.setStatus(msg)
	return m, cmd
}

func overlapNames(appts []schedule.Appointment) string {
	switch len(appts) {
	case 0:
		return ""
	case 1:
		return appts[0].ClientName
	default:
		return fmt.Sprintf("%s and %d more", appts[0].ClientName, len(appts)-1)
	}
}

// runAction opens the editor for a double-click.
func (m Model) runAction(action grid.Action) (tea.Model, tea.Cmd) {
	switch action.Kind {
	case grid.ActionEdit:
		return m.openEditFor(action.Appointment)
	case grid.ActionCreate:
		mem, ok := m.grid.MemberAt(action.Cell.MemberIndex)
		if !ok || !slot.Valid(action.Cell.TimeIndex) {
			return m, nil
		}
		return m.openCreateAt(action.Cell.TimeIndex, mem.ID)
	default:
		return m, nil
	}
}
