package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
)

// minFlexWidth is the narrowest the flex column gets, padding excluded.
const minFlexWidth = 3

// TableStyles groups styles for a list table.
type TableStyles struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Style
}

// TableViewState holds data needed to render a selectable table.
type TableViewState struct {
	Width       int
	Headers     []string
	Rows        [][]string
	SelectedRow int // -1 for none
	FlexColumn  int // column truncated to fit Width; -1 for none
	Styles      TableStyles
	EmptyText   string
}

// RenderTable renders rows with a rounded border and a highlighted
// selection. Columns keep their natural width so cells never wrap; when
// the table is wider than Width, only FlexColumn is truncated.
func RenderTable(state TableViewState) string {
	if len(state.Rows) == 0 && state.EmptyText != "" {
		return state.Styles.Cell.Render(state.EmptyText)
	}
	rows := fitFlexColumn(state)

	t := table.New().
		Headers(state.Headers...).
		Border(lipgloss.RoundedBorder()).
		BorderTop(true).
		BorderBottom(true).
		BorderLeft(true).
		BorderRight(true).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		BorderStyle(state.Styles.Border).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return state.Styles.Header.Padding(0, 1)
			case row == state.SelectedRow:
				return state.Styles.Selected.Padding(0, 1)
			default:
				return state.Styles.Cell.Padding(0, 1)
			}
		})

	return t.Render()
}

// fitFlexColumn returns the rows with the flex column truncated so the
// rendered table is no wider than state.Width.
func fitFlexColumn(state TableViewState) [][]string {
	flex := state.FlexColumn
	if state.Width <= 0 || flex < 0 || flex >= len(state.Headers) {
		return state.Rows
	}

	widths := make([]int, len(state.Headers))
	for i, h := range state.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range state.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	// One border per column plus the closing one, two cells of padding each.
	total := len(widths) + 1
	for _, w := range widths {
		total += w + 2
	}
	overflow := total - state.Width
	if overflow <= 0 {
		return state.Rows
	}
	limit := max(minFlexWidth, widths[flex]-overflow, lipgloss.Width(state.Headers[flex]))

	rows := make([][]string, len(state.Rows))
	for i, row := range state.Rows {
		rows[i] = append([]string(nil), row...)
		if flex < len(rows[i]) {
			rows[i][flex] = ansi.Truncate(rows[i][flex], limit, "…")
		}
	}
	return rows
}
