package grid

import (
	"math"

	"github.com/javiermolinar/teamcal/internal/slot"
)

// Layout defaults, in terminal cells.
const (
	DefaultMemberColumnWidth = 18
	DefaultHeaderHeight      = 2
	DefaultRowHeight         = 2
	DefaultCardMargin        = 1
	MinSlotWidth             = 6
)

// Layout holds the grid geometry.
type Layout struct {
	MemberColumnWidth int
	HeaderHeight      int
	RowHeight         int
	CardMargin        int
	SlotWidth         int
	Width             int
	Height            int
}

// DefaultLayout returns the default geometry at the minimum slot width.
func DefaultLayout() Layout {
	l := Layout{
		MemberColumnWidth: DefaultMemberColumnWidth,
		HeaderHeight:      DefaultHeaderHeight,
		RowHeight:         DefaultRowHeight,
		CardMargin:        DefaultCardMargin,
	}
	l.Resize(0, 0)
	return l
}

// Resize recomputes the slot width for a container size.
func (l *Layout) Resize(width, height int) {
	l.Width = width
	l.Height = height
	l.SlotWidth = max(MinSlotWidth, (width-l.MemberColumnWidth)/slot.Count)
}

// GridWidth is the width of the member column plus every slot column.
func (l Layout) GridWidth() int {
	return l.MemberColumnWidth + slot.Count*l.SlotWidth
}

// Rect is a cell-aligned rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Cell addresses a slot column and a member row.
type Cell struct {
	TimeIndex   int
	MemberIndex int
}

// rect returns the placement of an interval on a row.
func (l Layout) rect(row, startHour int, duration float64) Rect {
	w := int(math.Round(duration*float64(l.SlotWidth))) - l.CardMargin
	return Rect{
		X: l.MemberColumnWidth + startHour*l.SlotWidth,
		Y: l.HeaderHeight + row*l.RowHeight,
		W: max(1, w),
		H: l.RowHeight,
	}
}

// CellRect returns the rectangle of a single cell.
func (l Layout) CellRect(c Cell) Rect {
	return Rect{
		X: l.MemberColumnWidth + c.TimeIndex*l.SlotWidth,
		Y: l.HeaderHeight + c.MemberIndex*l.RowHeight,
		W: l.SlotWidth,
		H: l.RowHeight,
	}
}

// hit maps a point to a cell given the number of rows.
func (l Layout) hit(x, y, rows int) (Cell, bool) {
	if x < l.MemberColumnWidth || y < l.HeaderHeight {
		return Cell{}, false
	}
	t := (x - l.MemberColumnWidth) / l.SlotWidth
	m := (y - l.HeaderHeight) / l.RowHeight
	if t >= slot.Count || m >= rows {
		return Cell{}, false
	}
	return Cell{TimeIndex: t, MemberIndex: m}, true
}
