package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/teamcal/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		LogKeyPress(msg, m.mode)
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		m.ensureCursorVisible()
		return m, nil

	case commands.StoreEventMsg:
		LogStoreEvent(msg.Event)
		m.logger.Debug("store event", "kind", msg.Event.Kind.String(), "id", msg.Event.ID)
		m.grid.Invalidate()
		m.clampCursor()
		m.clampScroll()
		return m, commands.WaitForStoreEvent(m.events)

	case commands.ExportedMsg:
		cmd := m.setStatus(fmt.Sprintf("Exported %s to %s", msg.Format, msg.Path))
		return m, cmd

	case commands.ResetMsg:
		m.cursor.TimeIndex, m.cursor.MemberIndex = 0, 0
		m.scroll, m.hscroll = 0, 0
		cmd := m.setStatus("Restored sample data")
		return m, cmd

	case commands.ErrMsg:
		cmd := m.setError("command failed", msg.Err)
		return m, cmd

	case commands.StatusMsgCmd:
		cmd := m.setStatus(msg.Msg)
		return m, cmd

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}
