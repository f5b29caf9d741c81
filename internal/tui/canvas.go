package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/teamcal/internal/grid"
	"github.com/javiermolinar/teamcal/internal/schedule"
	"github.com/javiermolinar/teamcal/internal/slot"
	"github.com/javiermolinar/teamcal/internal/tui/view"
)

// Glyphs painted on the grid.
const (
	glyphBorder = '▎'
	glyphTick   = '┊'
	glyphRule   = '─'
	glyphSwatch = '●'
)

// canvasCell is one terminal cell. A zero rune marks the right half of a
// wide rune.
type canvasCell struct {
	r     rune
	style int
}

// canvas is a cell buffer the grid is painted into before being cropped to
// the viewport and rendered as styled runs.
type canvas struct {
	w, h   int
	cells  []canvasCell
	styles []lipgloss.Style
}

func newCanvas(w, h int, fill lipgloss.Style) *canvas {
	c := &canvas{
		w:      max(0, w),
		h:      max(0, h),
		styles: []lipgloss.Style{fill},
	}
	c.cells = make([]canvasCell, c.w*c.h)
	for i := range c.cells {
		c.cells[i] = canvasCell{r: ' '}
	}
	return c
}

// style registers s and returns its index.
func (c *canvas) style(s lipgloss.Style) int {
	c.styles = append(c.styles, s)
	return len(c.styles) - 1
}

func (c *canvas) set(x, y int, r rune, style int) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = canvasCell{r: r, style: style}
}

func (c *canvas) at(x, y int) canvasCell {
	return c.cells[y*c.w+x]
}

// fill paints a rectangle with r.
func (c *canvas) fill(rect grid.Rect, r rune, style int) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			c.set(x, y, r, style)
		}
	}
}

// text writes s at (x, y), truncated with an ellipsis to width cells.
func (c *canvas) text(x, y, width int, s string, style int) {
	if width <= 0 {
		return
	}
	if runewidth.StringWidth(s) > width {
		tail := "…"
		if width == 1 {
			tail = ""
		}
		s = runewidth.Truncate(s, width, tail)
	}
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if rw == 2 && x+1 >= c.w {
			break
		}
		c.set(x, y, r, style)
		if rw == 2 {
			c.set(x+1, y, 0, style)
		}
		x += rw
	}
}

// render crops the canvas to cols × rows (source coordinates) and returns
// one styled string per row.
func (c *canvas) render(cols, rows []int) []string {
	lines := make([]string, 0, len(rows))
	var run strings.Builder
	for _, y := range rows {
		var line strings.Builder
		current := -1
		flush := func() {
			if run.Len() > 0 {
				line.WriteString(c.styles[current].Render(run.String()))
				run.Reset()
			}
		}
		for i, x := range cols {
			cell := c.at(x, y)
			r := cell.r
			switch {
			case r == 0:
				// Continuation of a wide rune; only emitted when its head
				// was cropped away.
				if i > 0 && cols[i-1] == x-1 {
					continue
				}
				r = ' '
			case runewidth.RuneWidth(r) == 2:
				if i+1 >= len(cols) || cols[i+1] != x+1 {
					r = ' '
				}
			}
			if cell.style != current {
				flush()
				current = cell.style
			}
			run.WriteRune(r)
		}
		flush()
		lines = append(lines, line.String())
	}
	return lines
}

// gridCanvas paints the whole grid (every slot and member row) in grid
// coordinates.
func (m Model) gridCanvas() *canvas {
	cache := m.styleCache
	l := m.grid.Layout()
	members := m.grid.Members()
	width := l.GridWidth()
	height := l.HeaderHeight + len(members)*l.RowHeight

	c := newCanvas(width, height, cache.Empty)
	header := c.style(cache.SlotHeader)
	rule := c.style(cache.Rule)
	member := c.style(cache.Member)

	// Slot header and rule.
	c.text(1, 0, l.MemberColumnWidth-1, "Team", header)
	for s := slot.First; s <= slot.Last; s++ {
		c.text(l.MemberColumnWidth+s*l.SlotWidth, 0, l.SlotWidth, slot.HeaderLabel(s), header)
	}
	for x := 0; x < width; x++ {
		c.set(x, l.HeaderHeight-1, glyphRule, rule)
	}

	// Member column and slot ticks.
	for i, mem := range members {
		y := l.HeaderHeight + i*l.RowHeight
		swatch := c.style(cache.Member.Foreground(lipgloss.Color(mem.Color)))
		c.set(1, y, glyphSwatch, swatch)
		c.text(3, y, l.MemberColumnWidth-4, mem.Name, member)
		for line := 0; line < l.RowHeight; line++ {
			for s := slot.First; s <= slot.Last; s++ {
				c.set(l.MemberColumnWidth+s*l.SlotWidth, y+line, glyphTick, rule)
			}
		}
	}

	session, dragging := m.grid.Dragging()
	if m.mode != ModeGrab && !dragging && m.cursorInGrid(len(members)) {
		c.fill(l.CellRect(m.cursor), ' ', c.style(cache.Cursor))
	}

	selectedID := ""
	if !dragging {
		if a, ok := m.grid.CardAtCell(m.cursor); ok {
			selectedID = a.ID
		}
	}

	for _, card := range m.grid.Cards() {
		a := card.Appointment
		styles := cache.Card(a.Status)
		body, border := styles.Body, styles.Border
		switch {
		case dragging && a.ID == session.Appointment.ID:
			body, border = styles.Origin, styles.Origin
		case a.ID == selectedID:
			body, border = styles.Selected, styles.SelectedBorder
		}
		paintCard(c, card.Rect, a, c.style(body), c.style(border))
	}

	if dragging && session.HasHover {
		m.paintDropPreview(c, session)
	}

	return c
}

func paintCard(c *canvas, r grid.Rect, a schedule.Appointment, body, border int) {
	c.fill(r, ' ', body)
	for y := r.Y; y < r.Y+r.H; y++ {
		c.set(r.X, y, glyphBorder, border)
	}
	c.text(r.X+1, r.Y, r.W-1, a.ClientName, body)
	if r.H > 1 {
		c.text(r.X+1, r.Y+1, r.W-1, a.Time, body)
	}
}

// paintDropPreview outlines where the dragged card would land.
func (m Model) paintDropPreview(c *canvas, session grid.DragSession) {
	mem, ok := m.grid.MemberAt(session.Hover.MemberIndex)
	if !ok {
		return
	}
	a := session.Appointment
	a.StartHour = session.Hover.TimeIndex
	a.Member = mem.ID
	r, ok := m.grid.Place(a)
	if !ok {
		return
	}

	style := m.styleCache.Preview
	label := slot.Range(slot.MustLabel(a.StartHour), slot.EndLabel(a.StartHour, a.Duration))
	if !a.WithinWorkingHours() {
		style = m.styleCache.PreviewBad
		label = "past 6:00 pm"
	}
	idx := c.style(style)
	c.fill(r, ' ', idx)
	c.text(r.X+1, r.Y, r.W-1, a.ClientName, idx)
	if r.H > 1 {
		c.text(r.X+1, r.Y+1, r.W-1, label, idx)
	}
}

// viewportColumns lists the canvas columns shown: the frozen member column
// followed by the horizontally scrolled slot columns.
func (m Model) viewportColumns(canvasW, innerW int) []int {
	l := m.grid.Layout()
	cols := make([]int, 0, innerW)
	for x := 0; x < l.MemberColumnWidth && x < innerW && x < canvasW; x++ {
		cols = append(cols, x)
	}
	for x := l.MemberColumnWidth + m.hscroll*l.SlotWidth; x < canvasW && len(cols) < innerW; x++ {
		cols = append(cols, x)
	}
	return cols
}

// viewportRows lists the canvas rows shown: the frozen slot header
// followed by the vertically scrolled member rows.
func (m Model) viewportRows(canvasH, gridH int) []int {
	l := m.grid.Layout()
	rows := make([]int, 0, gridH)
	for y := 0; y < l.HeaderHeight && y < gridH && y < canvasH; y++ {
		rows = append(rows, y)
	}
	for y := l.HeaderHeight + m.scroll*l.RowHeight; y < canvasH && len(rows) < gridH; y++ {
		rows = append(rows, y)
	}
	return rows
}

// renderGrid paints and crops the grid to the layout's grid box.
func (m Model) renderGrid(layout LayoutCache) string {
	c := m.gridCanvas()
	lines := c.render(m.viewportColumns(c.w, layout.InnerW), m.viewportRows(c.h, layout.GridH))
	return view.PadLinesWithBackground(strings.Join(lines, "\n"), layout.InnerW, layout.GridH, m.styles.colorBg)
}
