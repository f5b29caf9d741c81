package grid

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/teamcal/internal/schedule"
	"github.com/javiermolinar/teamcal/internal/store"
)

type memRepo struct {
	data map[string][]byte
}

func (m *memRepo) LoadSnapshot(_ context.Context, key string) ([]byte, error) {
	d, ok := m.data[key]
	if !ok {
		return nil, schedule.ErrSnapshotNotFound
	}
	return d, nil
}

func (m *memRepo) SaveSnapshot(_ context.Context, key string, data []byte) error {
	m.data[key] = data
	return nil
}

func (m *memRepo) DeleteSnapshot(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memRepo) Close() error { return nil }

// testWidth gives a slot width of exactly 10 cells.
const testWidth = DefaultMemberColumnWidth + 13*10

func newTestGrid(t *testing.T) (*Grid, *store.Store) {
	t.Helper()
	s, err := store.Open(context.Background(), &memRepo{data: map[string][]byte{}})
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	g := New(s)
	g.Resize(testWidth, 40)
	t.Cleanup(g.Close)
	return g, s
}

// cellCenter returns a point inside cell (timeIndex, memberIndex).
func cellCenter(g *Grid, timeIndex, memberIndex int) (int, int) {
	r := g.Layout().CellRect(Cell{TimeIndex: timeIndex, MemberIndex: memberIndex})
	return r.X + 1, r.Y
}

func TestLayoutResize(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{testWidth, 10},
		{DefaultMemberColumnWidth + 13*12 + 5, 12},
		{40, MinSlotWidth},
		{0, MinSlotWidth},
	}

	for _, tt := range tests {
		l := DefaultLayout()
		l.Resize(tt.width, 20)
		if l.SlotWidth != tt.want {
			t.Errorf("Resize(%d): SlotWidth = %d, want %d", tt.width, l.SlotWidth, tt.want)
		}
	}
}

func TestPlace(t *testing.T) {
	g, s := newTestGrid(t)

	a, _ := s.Get("3") // member 3, slot 3, 0.5h
	r, ok := g.Place(a)
	if !ok {
		t.Fatal("expected placement")
	}
	want := Rect{X: 18 + 3*10, Y: 2 + 2*2, W: 5 - 1, H: 2}
	if r != want {
		t.Errorf("Place = %+v, want %+v", r, want)
	}

	a, _ = s.Get("1") // member 1, slot 4, 4h
	r, _ = g.Place(a)
	if r.X != 58 || r.Y != 2 || r.W != 39 {
		t.Errorf("Place(1) = %+v", r)
	}
}

func TestPlace_MinimumWidth(t *testing.T) {
	g, _ := newTestGrid(t)
	r, ok := g.Place(schedule.Appointment{Member: 1, StartHour: 0, Duration: 0.05})
	if !ok || r.W != 1 {
		t.Errorf("expected width 1, got %+v", r)
	}
}

func TestPlace_UnknownMember(t *testing.T) {
	g, _ := newTestGrid(t)
	if _, ok := g.Place(schedule.Appointment{Member: 99, StartHour: 1, Duration: 1}); ok {
		t.Error("unknown member should not be placed")
	}
}

func TestHitTest(t *testing.T) {
	g, _ := newTestGrid(t)

	tests := []struct {
		name   string
		x, y   int
		want   Cell
		wantOK bool
	}{
		{"first cell", 18, 2, Cell{0, 0}, true},
		{"row two lower line", 18 + 5*10 + 9, 2 + 1*2 + 1, Cell{5, 1}, true},
		{"last cell", 18 + 12*10, 2 + 10*2, Cell{12, 10}, true},
		{"member column", 10, 5, Cell{}, false},
		{"header", 40, 1, Cell{}, false},
		{"past last row", 40, 2 + 11*2, Cell{}, false},
		{"past last slot", 18 + 13*10, 5, Cell{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.HitTest(tt.x, tt.y)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("HitTest(%d,%d) = %+v,%v want %+v,%v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCardAt(t *testing.T) {
	g, _ := newTestGrid(t)

	a, ok := g.CardAt(49, 6)
	if !ok || a.ID != "3" {
		t.Errorf("CardAt = %q,%v want 3", a.ID, ok)
	}
	// Margin cell right of a half-hour card is empty.
	if _, ok := g.CardAt(52, 6); ok {
		t.Error("expected no card in margin")
	}
}

func TestCardAtCell(t *testing.T) {
	g, _ := newTestGrid(t)

	if a, ok := g.CardAtCell(Cell{TimeIndex: 6, MemberIndex: 0}); !ok || a.ID != "1" {
		t.Errorf("expected card 1 spanning slot 6, got %q,%v", a.ID, ok)
	}
	if _, ok := g.CardAtCell(Cell{TimeIndex: 8, MemberIndex: 0}); ok {
		t.Error("slot 8 is past the end of card 1")
	}
	if a, ok := g.CardAtCell(Cell{TimeIndex: 3, MemberIndex: 2}); !ok || a.ID != "3" {
		t.Errorf("expected card 3, got %q,%v", a.ID, ok)
	}
}

func TestCards_FollowFilters(t *testing.T) {
	g, s := newTestGrid(t)

	if got := len(g.Cards()); got != 10 {
		t.Fatalf("cards = %d, want 10", got)
	}
	if err := s.SetStatusFilter("completed"); err != nil {
		t.Fatal(err)
	}
	cards := g.Cards()
	if len(cards) != 4 {
		t.Errorf("cards = %d, want 4", len(cards))
	}
	for _, c := range cards {
		if c.Appointment.Status != schedule.StatusCompleted {
			t.Errorf("unexpected card %s with status %s", c.Appointment.ID, c.Appointment.Status)
		}
	}
}

func TestCards_RecomputedOnStoreChange(t *testing.T) {
	g, s := newTestGrid(t)
	_ = g.Cards()

	if _, err := s.Update("3", schedule.AppointmentPatch{StartHour: schedule.Ptr(0)}); err != nil {
		t.Fatal(err)
	}
	a, ok := g.CardAt(18, 6)
	if !ok || a.ID != "3" {
		t.Errorf("card not moved after store update: %q,%v", a.ID, ok)
	}
}

func TestDragAndDrop(t *testing.T) {
	g, s := newTestGrid(t)

	if !g.BeginDrag(49, 6) {
		t.Fatal("expected to grab card 3")
	}
	session, ok := g.Dragging()
	if !ok || session.Appointment.ID != "3" || session.Origin != (Cell{3, 2}) {
		t.Fatalf("unexpected session %+v", session)
	}

	x, y := cellCenter(g, 5, 1)
	g.DragTo(x, y)
	if session, _ = g.Dragging(); session.Hover != (Cell{5, 1}) || !session.HasHover {
		t.Errorf("hover = %+v", session.Hover)
	}

	res, err := g.Drop(x, y)
	if err != nil {
		t.Fatalf("Drop failed: %v", err)
	}

	got, _ := s.Get("3")
	if got.Member != 2 || got.StartHour != 5 || got.StartTime != "11:00 am" ||
		got.EndTime != "11:30 am" || got.Duration != 0.5 || got.Time != "11:00 am - 11:30 am" {
		t.Errorf("unexpected stored appointment %+v", got)
	}
	if res.Appointment != got {
		t.Errorf("result %+v differs from store %+v", res.Appointment, got)
	}
	if len(res.Overlaps) != 0 {
		t.Errorf("expected no overlaps, got %d", len(res.Overlaps))
	}
	if _, ok := g.Dragging(); ok {
		t.Error("drag should end after drop")
	}
}

func TestDrop_ReportsOverlaps(t *testing.T) {
	g, s := newTestGrid(t)

	g.BeginDrag(49, 6)
	x, y := cellCenter(g, 5, 0)
	res, err := g.Drop(x, y)
	if err != nil {
		t.Fatalf("Drop failed: %v", err)
	}
	if len(res.Overlaps) != 1 || res.Overlaps[0].ID != "1" {
		t.Errorf("expected overlap with 1, got %+v", res.Overlaps)
	}
	if got, _ := s.Get("3"); got.Member != 1 {
		t.Error("overlapping drop should still be applied")
	}
}

func TestDrop_OutsideWorkingHours(t *testing.T) {
	g, s := newTestGrid(t)
	before, _ := s.Get("1")

	g.BeginDrag(60, 2) // card 1, 4h
	x, y := cellCenter(g, 10, 0)
	_, err := g.Drop(x, y)
	if !errors.Is(err, ErrOutsideWorkingHours) {
		t.Fatalf("expected ErrOutsideWorkingHours, got %v", err)
	}
	if after, _ := s.Get("1"); after != before {
		t.Errorf("store changed: %+v", after)
	}
}

func TestDrop_EndingAtSixIsAllowed(t *testing.T) {
	g, s := newTestGrid(t)

	g.BeginDrag(60, 2) // card 1, 4h
	x, y := cellCenter(g, 8, 0)
	if _, err := g.Drop(x, y); err != nil {
		t.Fatalf("Drop failed: %v", err)
	}
	got, _ := s.Get("1")
	if got.EndTime != "6:00 pm" {
		t.Errorf("end time = %q", got.EndTime)
	}
}

func TestDrop_OutsideGrid(t *testing.T) {
	g, s := newTestGrid(t)
	before, _ := s.Get("3")

	g.BeginDrag(49, 6)
	if _, err := g.Drop(5, 5); !errors.Is(err, ErrNoTargetCell) {
		t.Errorf("expected ErrNoTargetCell, got %v", err)
	}
	if after, _ := s.Get("3"); after != before {
		t.Error("store changed")
	}
	if _, ok := g.Dragging(); ok {
		t.Error("drag should end")
	}
}

func TestDrop_WithoutDrag(t *testing.T) {
	g, _ := newTestGrid(t)
	if _, err := g.Drop(40, 4); !errors.Is(err, ErrNotDragging) {
		t.Errorf("expected ErrNotDragging, got %v", err)
	}
}

func TestBeginDrag_EmptyCell(t *testing.T) {
	g, _ := newTestGrid(t)
	x, y := cellCenter(g, 0, 0)
	if g.BeginDrag(x, y) {
		t.Error("empty cell should not start a drag")
	}
}

func TestCancelDrag(t *testing.T) {
	g, s := newTestGrid(t)
	before, _ := s.Get("3")

	g.BeginDrag(49, 6)
	g.CancelDrag()
	if _, ok := g.Dragging(); ok {
		t.Error("drag still active")
	}
	if after, _ := s.Get("3"); after != before {
		t.Error("store changed")
	}
}

func TestKeyboardGrab(t *testing.T) {
	g, s := newTestGrid(t)

	if !g.Grab("3") {
		t.Fatal("Grab failed")
	}
	g.MoveGrabbed(2, -1)
	res, err := g.DropGrabbed()
	if err != nil {
		t.Fatalf("DropGrabbed failed: %v", err)
	}
	if res.Appointment.Member != 2 || res.Appointment.StartHour != 5 {
		t.Errorf("unexpected result %+v", res.Appointment)
	}
	if got, _ := s.Get("3"); got.StartTime != "11:00 am" {
		t.Errorf("start time = %q", got.StartTime)
	}
}

func TestMoveGrabbed_Clamps(t *testing.T) {
	g, _ := newTestGrid(t)

	g.Grab("3")
	g.MoveGrabbed(-100, -100)
	if s, _ := g.Dragging(); s.Hover != (Cell{0, 0}) {
		t.Errorf("hover = %+v", s.Hover)
	}
	g.MoveGrabbed(100, 100)
	if s, _ := g.Dragging(); s.Hover != (Cell{12, 10}) {
		t.Errorf("hover = %+v", s.Hover)
	}
}

func TestGrab_Unknown(t *testing.T) {
	g, _ := newTestGrid(t)
	if g.Grab("nope") {
		t.Error("unknown id should not be grabbed")
	}
}

func TestDoubleClick(t *testing.T) {
	g, _ := newTestGrid(t)

	act := g.DoubleClick(49, 6)
	if act.Kind != ActionEdit || act.Appointment.ID != "3" {
		t.Errorf("card: got %+v", act)
	}

	x, y := cellCenter(g, 7, 3)
	act = g.DoubleClick(x, y)
	if act.Kind != ActionCreate || act.Cell != (Cell{7, 3}) {
		t.Errorf("empty cell: got %+v", act)
	}

	if act = g.DoubleClick(3, 3); act.Kind != ActionNone {
		t.Errorf("member column: got %+v", act)
	}
}

func TestClickTracker(t *testing.T) {
	base := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	c := Cell{TimeIndex: 2, MemberIndex: 4}

	t.Run("double within window", func(t *testing.T) {
		var tr ClickTracker
		if tr.Click(c, base) {
			t.Fatal("first click is not a double")
		}
		if !tr.Click(c, base.Add(300*time.Millisecond)) {
			t.Error("expected double-click")
		}
		if tr.Click(c, base.Add(350*time.Millisecond)) {
			t.Error("third click starts a new sequence")
		}
	})

	t.Run("too slow", func(t *testing.T) {
		var tr ClickTracker
		tr.Click(c, base)
		if tr.Click(c, base.Add(500*time.Millisecond)) {
			t.Error("expected no double-click")
		}
	})

	t.Run("different cell", func(t *testing.T) {
		var tr ClickTracker
		tr.Click(c, base)
		if tr.Click(Cell{TimeIndex: 3, MemberIndex: 4}, base.Add(100*time.Millisecond)) {
			t.Error("expected no double-click")
		}
	})

	t.Run("custom window", func(t *testing.T) {
		tr := ClickTracker{Window: time.Second}
		tr.Click(c, base)
		if !tr.Click(c, base.Add(900*time.Millisecond)) {
			t.Error("expected double-click")
		}
	})
}
