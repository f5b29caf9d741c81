package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/javiermolinar/teamcal/internal/db"
	"github.com/javiermolinar/teamcal/internal/logging"
	"github.com/javiermolinar/teamcal/internal/schedule"
)

// fakeRepo is an in-memory snapshot repository.
type fakeRepo struct {
	mu      sync.Mutex
	data    map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{data: make(map[string][]byte)}
}

func (f *fakeRepo) LoadSnapshot(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	d, ok := f.data[key]
	if !ok {
		return nil, schedule.ErrSnapshotNotFound
	}
	return d, nil
}

func (f *fakeRepo) SaveSnapshot(_ context.Context, key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data[key] = append([]byte(nil), data...)
	return nil
}

func (f *fakeRepo) DeleteSnapshot(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

func (f *fakeRepo) Close() error { return nil }

func (f *fakeRepo) stored(t *testing.T, key string) schedule.Snapshot {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	var snap schedule.Snapshot
	if err := json.Unmarshal(f.data[key], &snap); err != nil {
		t.Fatalf("stored snapshot is not valid JSON: %v", err)
	}
	return snap
}

var fixedNow = time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, repo schedule.SnapshotRepository, opts ...Option) *Store {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	s, err := Open(context.Background(), repo, opts...)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s
}

func TestOpen_SeedsWhenEmpty(t *testing.T) {
	s := newTestStore(t, newFakeRepo())

	if got := len(s.List()); got != 10 {
		t.Errorf("appointments = %d, want 10", got)
	}
	if got := len(s.Members()); got != 11 {
		t.Errorf("members = %d, want 11", got)
	}
	if got := len(s.Jobs()); got != 4 {
		t.Errorf("jobs = %d, want 4", got)
	}

	ui := s.UI()
	if !ui.SelectedDate.Equal(fixedNow) {
		t.Errorf("selected date = %v", ui.SelectedDate)
	}
	if ui.ActiveView != schedule.DefaultView || ui.StatusFilter != schedule.FilterAll ||
		ui.TeamFilter != schedule.FilterAll || ui.AssignedFilter != schedule.FilterAssigned {
		t.Errorf("unexpected default UI state %+v", ui)
	}
}

func TestOpen_MalformedSnapshotFallsBackToSeed(t *testing.T) {
	repo := newFakeRepo()
	repo.data[schedule.DefaultSnapshotKey] = []byte("{not json")

	var buf bytes.Buffer
	s := newTestStore(t, repo, WithLogger(logging.New(&buf, slog.LevelInfo)))

	if got := len(s.List()); got != 10 {
		t.Errorf("appointments = %d, want seed 10", got)
	}
	if !strings.Contains(buf.String(), "parsing snapshot failed") {
		t.Errorf("expected warning in log, got %s", buf.String())
	}
}

func TestOpen_UnknownStatusFallsBackToSeed(t *testing.T) {
	repo := newFakeRepo()
	repo.data[schedule.DefaultSnapshotKey] = []byte(`{"appointments":[{"id":"x","status":"archived"}]}`)

	s := newTestStore(t, repo)
	if _, ok := s.Get("x"); ok {
		t.Error("appointment with unknown status should not be loaded")
	}
	if got := len(s.List()); got != 10 {
		t.Errorf("appointments = %d, want seed 10", got)
	}
}

func TestOpen_LoadErrorFallsBackToSeed(t *testing.T) {
	repo := newFakeRepo()
	repo.loadErr = errors.New("disk on fire")

	s := newTestStore(t, repo)
	if got := len(s.List()); got != 10 {
		t.Errorf("appointments = %d, want seed 10", got)
	}
}

func TestOpen_PartialSnapshotKeepsDefaults(t *testing.T) {
	repo := newFakeRepo()
	repo.data[schedule.DefaultSnapshotKey] = []byte(`{
		"appointments": [],
		"selectedDate": "2026-01-02T00:00:00Z",
		"statusFilter": "active"
	}`)

	s := newTestStore(t, repo)
	if got := len(s.List()); got != 0 {
		t.Errorf("appointments = %d, want 0", got)
	}
	if got := len(s.Jobs()); got != 4 {
		t.Errorf("jobs = %d, want seed 4", got)
	}
	ui := s.UI()
	if want := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC); !ui.SelectedDate.Equal(want) {
		t.Errorf("selected date = %v, want %v", ui.SelectedDate, want)
	}
	if ui.StatusFilter != "active" {
		t.Errorf("status filter = %q", ui.StatusFilter)
	}
	if ui.AssignedFilter != schedule.FilterAssigned {
		t.Errorf("assigned filter = %q", ui.AssignedFilter)
	}
}

func TestCreate_AssignsIDAndPersists(t *testing.T) {
	repo := newFakeRepo()
	s := newTestStore(t, repo, WithIDGenerator(func() string { return "new-1" }))

	a, err := s.Create(schedule.Appointment{ClientName: "Acme", StartHour: 0, Duration: 1, Member: 1, Status: schedule.StatusPending})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if a.ID != "new-1" {
		t.Errorf("id = %q, want new-1", a.ID)
	}

	snap := repo.stored(t, schedule.DefaultSnapshotKey)
	if len(snap.Appointments) != 11 || snap.Appointments[10].ClientName != "Acme" {
		t.Errorf("snapshot not persisted: %d appointments", len(snap.Appointments))
	}
}

func TestCreate_DefaultIDsAreUnique(t *testing.T) {
	s := newTestStore(t, newFakeRepo())

	seen := map[string]bool{}
	for range 20 {
		a, _ := s.Create(schedule.Appointment{ClientName: "x", Member: 1, Duration: 1})
		if a.ID == "" || seen[a.ID] {
			t.Fatalf("duplicate or empty id %q", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestCreate_ReplacesDuplicateID(t *testing.T) {
	s := newTestStore(t, newFakeRepo(), WithIDGenerator(func() string { return "fresh" }))

	a, _ := s.Create(schedule.Appointment{ID: "1", ClientName: "dup"})
	if a.ID != "fresh" {
		t.Errorf("id = %q, want fresh", a.ID)
	}
}

func TestUpdate(t *testing.T) {
	repo := newFakeRepo()
	s := newTestStore(t, repo)

	got, err := s.Update("3", schedule.AppointmentPatch{StartHour: schedule.Ptr(5), Member: schedule.Ptr(2)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.StartHour != 5 || got.Member != 2 || got.ClientName != "Global Solutions" {
		t.Errorf("unexpected result %+v", got)
	}

	stored, _ := s.Get("3")
	if stored != got {
		t.Errorf("store not updated: %+v", stored)
	}
	if snap := repo.stored(t, schedule.DefaultSnapshotKey); snap.Appointments[2].StartHour != 5 {
		t.Error("update not persisted")
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	repo := newFakeRepo()
	s := newTestStore(t, repo)
	before := s.List()

	_, err := s.Update("nope", schedule.AppointmentPatch{StartHour: schedule.Ptr(1)})
	if !errors.Is(err, schedule.ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}

	after := s.List()
	if len(before) != len(after) {
		t.Fatal("collection size changed")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("appointment %d changed", i)
		}
	}
	if repo.saves != 0 {
		t.Errorf("expected no save, got %d", repo.saves)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t, newFakeRepo())

	if !s.Delete("5") {
		t.Fatal("expected delete to succeed")
	}
	if _, ok := s.Get("5"); ok {
		t.Error("appointment still present")
	}
	if s.Delete("5") {
		t.Error("second delete should report false")
	}
	if got := len(s.List()); got != 9 {
		t.Errorf("appointments = %d, want 9", got)
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := newTestStore(t, newFakeRepo())

	list := s.List()
	list[0].ClientName = "mutated"

	a, _ := s.Get(list[0].ID)
	if a.ClientName == "mutated" {
		t.Error("List exposed internal state")
	}
}

func TestFiltered(t *testing.T) {
	s := newTestStore(t, newFakeRepo())

	if err := s.SetStatusFilter("pending"); err != nil {
		t.Fatalf("SetStatusFilter failed: %v", err)
	}
	if got := len(s.Filtered()); got != 3 {
		t.Errorf("pending = %d, want 3", got)
	}

	if err := s.SetTeamFilter("8"); err != nil {
		t.Fatalf("SetTeamFilter failed: %v", err)
	}
	got := s.Filtered()
	if len(got) != 1 || got[0].ID != "8" {
		t.Errorf("unexpected filtered set %+v", got)
	}
}

func TestFilterSetters_Reject(t *testing.T) {
	s := newTestStore(t, newFakeRepo())

	if err := s.SetStatusFilter("archived"); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("status: expected ErrInvalidFilter, got %v", err)
	}
	if err := s.SetTeamFilter("99"); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("team: expected ErrInvalidFilter, got %v", err)
	}
	if err := s.SetTeamFilter("abc"); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("team: expected ErrInvalidFilter, got %v", err)
	}
	if err := s.SetAssignedFilter("Maybe"); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("assigned: expected ErrInvalidFilter, got %v", err)
	}
	if err := s.SetActiveView("Month"); !errors.Is(err, ErrInvalidView) {
		t.Errorf("view: expected ErrInvalidView, got %v", err)
	}
}

func TestAssignJob(t *testing.T) {
	s := newTestStore(t, newFakeRepo())

	if err := s.AssignJob("1", 5); err != nil {
		t.Fatalf("AssignJob failed: %v", err)
	}
	j, _ := s.Job("1")
	if j.AssignedMember == nil || *j.AssignedMember != 5 {
		t.Errorf("assigned member = %v", j.AssignedMember)
	}
	if got := len(s.FilteredJobs()); got != 2 {
		t.Errorf("assigned jobs = %d, want 2", got)
	}

	if err := s.AssignJob("missing", 1); !errors.Is(err, schedule.ErrJobNotFound) {
		t.Errorf("expected ErrJobNotFound, got %v", err)
	}
	if err := s.AssignJob("2", 42); !errors.Is(err, schedule.ErrMemberNotFound) {
		t.Errorf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestSaveFailureIsLoggedNotReturned(t *testing.T) {
	repo := newFakeRepo()
	repo.saveErr = errors.New("read-only")

	var buf bytes.Buffer
	s := newTestStore(t, repo, WithLogger(logging.New(&buf, slog.LevelInfo)))

	if _, err := s.Create(schedule.Appointment{ClientName: "x", Member: 1, Duration: 1}); err != nil {
		t.Fatalf("Create should not surface save errors: %v", err)
	}
	if got := len(s.List()); got != 11 {
		t.Errorf("in-memory state not updated: %d", got)
	}
	if !strings.Contains(buf.String(), "saving snapshot failed") {
		t.Errorf("expected logged failure, got %s", buf.String())
	}
}

func TestSubscribe(t *testing.T) {
	s := newTestStore(t, newFakeRepo())

	var events []Event
	cancel := s.Subscribe(func(ev Event) { events = append(events, ev) })

	_, _ = s.Update("1", schedule.AppointmentPatch{Status: schedule.Ptr(schedule.StatusActive)})
	_, _ = s.Update("missing", schedule.AppointmentPatch{})
	s.Delete("2")
	s.Delete("2")
	_ = s.SetStatusFilter("active")

	want := []Event{
		{Kind: EventUpdated, ID: "1"},
		{Kind: EventDeleted, ID: "2"},
		{Kind: EventUIChanged},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(events), len(want), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}

	cancel()
	s.Delete("3")
	if len(events) != len(want) {
		t.Error("cancelled subscriber still notified")
	}
}

func TestSubscriberCanReadStore(t *testing.T) {
	s := newTestStore(t, newFakeRepo())

	var seen int
	s.Subscribe(func(Event) { seen = len(s.List()) })
	s.Delete("1")
	if seen != 9 {
		t.Errorf("subscriber saw %d appointments, want 9", seen)
	}
}

func TestReset(t *testing.T) {
	repo := newFakeRepo()
	s := newTestStore(t, repo)

	s.Delete("1")
	_ = s.SetStatusFilter("completed")
	if err := s.Reset(context.Background()); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if got := len(s.List()); got != 10 {
		t.Errorf("appointments = %d, want 10", got)
	}
	if s.UI().StatusFilter != schedule.FilterAll {
		t.Error("filters not reset")
	}
	if snap := repo.stored(t, schedule.DefaultSnapshotKey); len(snap.Appointments) != 10 {
		t.Errorf("reset not persisted: %d", len(snap.Appointments))
	}
}

func TestReset_ReturnsSaveError(t *testing.T) {
	repo := newFakeRepo()
	s := newTestStore(t, repo)
	repo.saveErr = errors.New("boom")

	if err := s.Reset(context.Background()); err == nil {
		t.Error("expected error")
	}
}

func TestRoundTripThroughSQLite(t *testing.T) {
	repo, err := db.New(filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatalf("db.New failed: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	s := newTestStore(t, repo, WithKey("roundtrip"))
	created, _ := s.Create(schedule.Appointment{
		ClientName: "Acme", Time: "6:00 am - 7:00 am", StartTime: "6:00 am", EndTime: "7:00 am",
		StartHour: 0, Duration: 1, Status: schedule.StatusPending, Member: 11,
	})
	_ = s.AssignJob("2", 4)
	_ = s.SetTeamFilter("11")
	s.SetSelectedDate(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC))

	reopened := newTestStore(t, repo, WithKey("roundtrip"))
	if a, ok := reopened.Get(created.ID); !ok || a != created {
		t.Errorf("created appointment not restored: %+v", a)
	}
	if j, _ := reopened.Job("2"); j.AssignedMember == nil || *j.AssignedMember != 4 {
		t.Error("job assignment not restored")
	}
	ui := reopened.UI()
	if ui.TeamFilter != "11" {
		t.Errorf("team filter = %q", ui.TeamFilter)
	}
	if !ui.SelectedDate.Equal(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("selected date = %v", ui.SelectedDate)
	}
	if original, restored := s.Snapshot(), reopened.Snapshot(); len(original.Appointments) != len(restored.Appointments) {
		t.Errorf("appointment count mismatch %d vs %d", len(original.Appointments), len(restored.Appointments))
	}
}
