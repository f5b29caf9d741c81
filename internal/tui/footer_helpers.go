package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/teamcal/internal/schedule"
)

// statusMsgOrDefault returns the status message or a space to preserve layout.
func (m Model) statusMsgOrDefault() string {
	if m.statusMsg == "" {
		return " "
	}
	return m.statusMsg
}

// summaryText counts the visible appointments per status and the
// same-member overlaps among them.
func (m Model) summaryText() string {
	visible := m.store.Filtered()
	counts := make(map[schedule.Status]int, len(schedule.Statuses))
	for _, a := range visible {
		counts[a.Status]++
	}

	parts := make([]string, 0, len(schedule.Statuses))
	for _, s := range schedule.Statuses {
		parts = append(parts, fmt.Sprintf("%d %s", counts[s], s))
	}

	summary := fmt.Sprintf("%d appointments | %s", len(visible), strings.Join(parts, ", "))
	if n := len(schedule.OverlappingPairs(visible)); n > 0 {
		summary += fmt.Sprintf(" | %d overlaps", n)
	}
	return summary
}

// renderLegend renders a swatch per appointment status.
func (m Model) renderLegend() string {
	baseStyle := lipgloss.NewStyle().
		Foreground(m.styles.colorFg).
		Background(m.styles.colorBg)

	var legend strings.Builder
	legend.WriteString(baseStyle.Render("Legend: "))
	for i, s := range schedule.Statuses {
		if i > 0 {
			legend.WriteString(baseStyle.Render("  "))
		}
		card := m.styleCache.Card(s)
		legend.WriteString(card.Border.Render(string(glyphBorder)))
		legend.WriteString(card.Body.Render(" " + s.Title() + " "))
	}
	return legend.String()
}

// promptCursor returns the cursor character if in prompt mode.
func (m Model) promptCursor() string {
	if m.mode == ModePrompt {
		return "_"
	}
	return ""
}

// helpText returns the key hints for the current mode.
func (m Model) helpText() string {
	switch m.mode {
	case ModeGrab:
		return "MOVE: h/j/k/l: choose slot | Enter/m: drop | Esc: cancel"
	case ModePrompt:
		return "Tab: complete | Enter: submit | Esc: cancel"
	case ModeModal:
		switch m.modalType {
		case ModalEditor:
			return "Tab: next field | ←/→: change choice | Enter: save | Esc: cancel"
		case ModalConfirmDelete:
			return "y/Enter: delete | n/Esc: keep"
		case ModalJobs:
			return "j/k: select | Tab: filter | Enter: schedule | Esc: close"
		default:
			return "Esc: close"
		}
	default:
		return "h/j/k/l: navigate | Enter: open | m: move | d: delete | [/]: day | J: jobs | /: commands | ?: help | q: quit"
	}
}
