// Package grid implements the day scheduling grid: card placement, hit
// testing, drag-and-drop repositioning and double-click routing.
//
// A Grid is driven from a single goroutine. The store change callback only
// marks the card cache stale, so store mutations made while a Grid method
// is running are safe.
package grid

import (
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/javiermolinar/teamcal/internal/schedule"
	"github.com/javiermolinar/teamcal/internal/slot"
	"github.com/javiermolinar/teamcal/internal/store"
)

// Drop errors.
var (
	ErrOutsideWorkingHours = errors.New("appointment would end after 6:00 pm")
	ErrNotDragging         = errors.New("no drag in progress")
	ErrNoTargetCell        = errors.New("drop target is outside the grid")
)

// Source is the store surface the grid depends on.
type Source interface {
	List() []schedule.Appointment
	Filtered() []schedule.Appointment
	Members() []schedule.TeamMember
	Update(id string, p schedule.AppointmentPatch) (schedule.Appointment, error)
	Subscribe(fn func(store.Event)) (cancel func())
}

// Card is an appointment with its on-screen placement.
type Card struct {
	Appointment schedule.Appointment
	Rect        Rect
}

// DragSession is the state of an in-progress move.
type DragSession struct {
	Appointment schedule.Appointment
	Origin      Cell
	Hover       Cell
	HasHover    bool
	Keyboard    bool
}

// DropResult is the outcome of a successful drop. Overlaps lists the
// same-member appointments the moved card now overlaps; drops are not
// rejected for overlapping.
type DropResult struct {
	Appointment schedule.Appointment
	Overlaps    []schedule.Appointment
}

// Option configures a Grid.
type Option func(*Grid)

// WithLayout sets the initial geometry.
func WithLayout(l Layout) Option {
	return func(g *Grid) {
		g.layout = l
	}
}

// Grid renders the filtered appointments of a Source onto a member by slot
// matrix.
type Grid struct {
	src    Source
	layout Layout

	stale   atomic.Bool
	members []schedule.TeamMember
	cards   []Card

	drag   *DragSession
	cancel func()
}

// New creates a grid over src and subscribes to its changes.
func New(src Source, opts ...Option) *Grid {
	g := &Grid{
		src:    src,
		layout: DefaultLayout(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.stale.Store(true)
	g.cancel = src.Subscribe(func(store.Event) {
		g.stale.Store(true)
	})
	return g
}

// Close removes the store subscription.
func (g *Grid) Close() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

// Layout returns the current geometry.
func (g *Grid) Layout() Layout {
	return g.layout
}

// Resize recomputes the geometry for a container size.
func (g *Grid) Resize(width, height int) {
	g.layout.Resize(width, height)
	g.stale.Store(true)
}

// Invalidate forces the next read to recompute placements.
func (g *Grid) Invalidate() {
	g.stale.Store(true)
}

func (g *Grid) refresh() {
	if !g.stale.Swap(false) {
		return
	}
	g.members = g.src.Members()
	appointments := g.src.Filtered()
	cards := make([]Card, 0, len(appointments))
	for _, a := range appointments {
		if r, ok := g.place(a); ok {
			cards = append(cards, Card{Appointment: a, Rect: r})
		}
	}
	g.cards = cards
}

// Members returns the roster in row order.
func (g *Grid) Members() []schedule.TeamMember {
	g.refresh()
	return slices.Clone(g.members)
}

// RowOf returns the row index of a member id.
func (g *Grid) RowOf(memberID int) (int, bool) {
	g.refresh()
	return g.rowOf(memberID)
}

func (g *Grid) rowOf(memberID int) (int, bool) {
	i := slices.IndexFunc(g.members, func(m schedule.TeamMember) bool { return m.ID == memberID })
	return i, i >= 0
}

// MemberAt returns the member on a row.
func (g *Grid) MemberAt(row int) (schedule.TeamMember, bool) {
	g.refresh()
	if row < 0 || row >= len(g.members) {
		return schedule.TeamMember{}, false
	}
	return g.members[row], true
}

// Place returns the rectangle for an appointment. Appointments whose
// member is not on the roster are not placed.
func (g *Grid) Place(a schedule.Appointment) (Rect, bool) {
	g.refresh()
	return g.place(a)
}

func (g *Grid) place(a schedule.Appointment) (Rect, bool) {
	row, ok := g.rowOf(a.Member)
	if !ok {
		return Rect{}, false
	}
	return g.layout.rect(row, a.StartHour, a.Duration), true
}

// Cards returns the placements of the filtered appointments in paint
// order. Later cards paint over earlier ones.
func (g *Grid) Cards() []Card {
	g.refresh()
	return slices.Clone(g.cards)
}

// HitTest maps a terminal position to a grid cell.
func (g *Grid) HitTest(x, y int) (Cell, bool) {
	g.refresh()
	return g.layout.hit(x, y, len(g.members))
}

// CardAt returns the topmost card containing (x, y).
func (g *Grid) CardAt(x, y int) (schedule.Appointment, bool) {
	g.refresh()
	for i := len(g.cards) - 1; i >= 0; i-- {
		if g.cards[i].Rect.Contains(x, y) {
			return g.cards[i].Appointment, true
		}
	}
	return schedule.Appointment{}, false
}

// CardAtCell returns the topmost card whose interval covers the cell.
func (g *Grid) CardAtCell(c Cell) (schedule.Appointment, bool) {
	g.refresh()
	if c.MemberIndex < 0 || c.MemberIndex >= len(g.members) {
		return schedule.Appointment{}, false
	}
	memberID := g.members[c.MemberIndex].ID
	t := float64(c.TimeIndex)
	for i := len(g.cards) - 1; i >= 0; i-- {
		a := g.cards[i].Appointment
		if a.Member != memberID {
			continue
		}
		// A card owns its start cell even when shorter than one slot.
		if t == float64(a.StartHour) || (t > float64(a.StartHour) && t < a.EndHour()) {
			return a, true
		}
	}
	return schedule.Appointment{}, false
}

// BeginDrag grabs the card under (x, y). It reports whether a card was
// grabbed.
func (g *Grid) BeginDrag(x, y int) bool {
	a, ok := g.CardAt(x, y)
	if !ok {
		return false
	}
	row, _ := g.rowOf(a.Member)
	origin := Cell{TimeIndex: a.StartHour, MemberIndex: row}
	g.drag = &DragSession{Appointment: a, Origin: origin, Hover: origin, HasHover: true}
	return true
}

// DragTo tracks the cell under the pointer.
func (g *Grid) DragTo(x, y int) {
	if g.drag == nil {
		return
	}
	c, ok := g.HitTest(x, y)
	g.drag.Hover = c
	g.drag.HasHover = ok
}

// Dragging returns the active drag session.
func (g *Grid) Dragging() (DragSession, bool) {
	if g.drag == nil {
		return DragSession{}, false
	}
	return *g.drag, true
}

// CancelDrag ends the drag without changing anything.
func (g *Grid) CancelDrag() {
	g.drag = nil
}

// Drop moves the dragged appointment to the cell under (x, y). The drag
// ends whether or not the drop succeeds.
func (g *Grid) Drop(x, y int) (DropResult, error) {
	if g.drag == nil {
		return DropResult{}, ErrNotDragging
	}
	c, ok := g.HitTest(x, y)
	if !ok {
		g.drag = nil
		return DropResult{}, ErrNoTargetCell
	}
	return g.DropAt(c)
}

// DropAt moves the dragged appointment to c, keeping its duration.
func (g *Grid) DropAt(c Cell) (DropResult, error) {
	if g.drag == nil {
		return DropResult{}, ErrNotDragging
	}
	session := *g.drag
	g.drag = nil

	member, ok := g.MemberAt(c.MemberIndex)
	if !ok || !slot.Valid(c.TimeIndex) {
		return DropResult{}, ErrNoTargetCell
	}

	a := session.Appointment
	if float64(c.TimeIndex)+a.Duration > slot.Last {
		return DropResult{}, fmt.Errorf("%w: %s for %s", ErrOutsideWorkingHours,
			slot.MustLabel(c.TimeIndex), slot.FormatDuration(a.Duration))
	}

	start := slot.MustLabel(c.TimeIndex)
	end := slot.EndLabel(c.TimeIndex, a.Duration)
	updated, err := g.src.Update(a.ID, schedule.AppointmentPatch{
		StartHour: schedule.Ptr(c.TimeIndex),
		Member:    schedule.Ptr(member.ID),
		StartTime: schedule.Ptr(start),
		EndTime:   schedule.Ptr(end),
		Time:      schedule.Ptr(slot.Range(start, end)),
		Duration:  schedule.Ptr(a.Duration),
	})
	if err != nil {
		return DropResult{}, fmt.Errorf("moving appointment: %w", err)
	}

	overlaps := schedule.CheckConflict(updated.Placement(), g.src.List(), updated.ID)
	return DropResult{Appointment: updated, Overlaps: overlaps.Conflicting}, nil
}

// Grab starts a keyboard move of the appointment with the given id.
func (g *Grid) Grab(id string) bool {
	g.refresh()
	for _, card := range g.cards {
		if card.Appointment.ID != id {
			continue
		}
		a := card.Appointment
		row, _ := g.rowOf(a.Member)
		origin := Cell{TimeIndex: a.StartHour, MemberIndex: row}
		g.drag = &DragSession{Appointment: a, Origin: origin, Hover: origin, HasHover: true, Keyboard: true}
		return true
	}
	return false
}

// MoveGrabbed shifts the hovered cell, clamped to the grid.
func (g *Grid) MoveGrabbed(dSlot, dRow int) {
	if g.drag == nil {
		return
	}
	g.refresh()
	h := g.drag.Hover
	h.TimeIndex = min(max(h.TimeIndex+dSlot, slot.First), slot.Last)
	h.MemberIndex = min(max(h.MemberIndex+dRow, 0), max(len(g.members)-1, 0))
	g.drag.Hover = h
	g.drag.HasHover = true
}

// DropGrabbed drops the grabbed appointment on the hovered cell.
func (g *Grid) DropGrabbed() (DropResult, error) {
	if g.drag == nil {
		return DropResult{}, ErrNotDragging
	}
	if !g.drag.HasHover {
		g.drag = nil
		return DropResult{}, ErrNoTargetCell
	}
	return g.DropAt(g.drag.Hover)
}

// ActionKind says what a double-click should open.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionCreate
	ActionEdit
)

// Action is the editor request produced by a double-click.
type Action struct {
	Kind        ActionKind
	Cell        Cell
	Appointment schedule.Appointment
}

// DoubleClick routes a double-click at (x, y): a card opens it for edit,
// an empty cell opens a create prefilled with the cell.
func (g *Grid) DoubleClick(x, y int) Action {
	if a, ok := g.CardAt(x, y); ok {
		row, _ := g.rowOf(a.Member)
		return Action{Kind: ActionEdit, Cell: Cell{TimeIndex: a.StartHour, MemberIndex: row}, Appointment: a}
	}
	if c, ok := g.HitTest(x, y); ok {
		return Action{Kind: ActionCreate, Cell: c}
	}
	return Action{Kind: ActionNone}
}

// DefaultDoubleClickWindow is the maximum gap between two presses.
const DefaultDoubleClickWindow = 400 * time.Millisecond

// ClickTracker detects two presses on the same cell within Window.
type ClickTracker struct {
	Window time.Duration

	last   Cell
	lastAt time.Time
	armed  bool
}

// Click records a press and reports whether it completes a double-click.
func (t *ClickTracker) Click(c Cell, at time.Time) bool {
	window := t.Window
	if window <= 0 {
		window = DefaultDoubleClickWindow
	}
	if t.armed && c == t.last && at.Sub(t.lastAt) <= window {
		t.armed = false
		return true
	}
	t.last = c
	t.lastAt = at
	t.armed = true
	return false
}

// Reset forgets the last press.
func (t *ClickTracker) Reset() {
	t.armed = false
}
