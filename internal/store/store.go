// Package store holds the authoritative in-memory scheduling state and
// persists it as a snapshot after every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/teamcal/internal/logging"
	"github.com/javiermolinar/teamcal/internal/schedule"
)

// Filter and view errors.
var (
	ErrInvalidFilter = errors.New("invalid filter value")
	ErrInvalidView   = errors.New("invalid view")
)

const persistTimeout = 5 * time.Second

// EventKind identifies what changed.
type EventKind int

const (
	EventCreated EventKind = iota
	EventUpdated
	EventDeleted
	EventJobChanged
	EventUIChanged
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventCreated:
		return "created"
	case EventUpdated:
		return "updated"
	case EventDeleted:
		return "deleted"
	case EventJobChanged:
		return "job_changed"
	case EventUIChanged:
		return "ui_changed"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after a successful mutation.
type Event struct {
	Kind EventKind
	ID   string // appointment or job id, empty for UI and reset events
}

// Option configures a Store.
type Option func(*Store)

// WithKey sets the snapshot key.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithClock sets the clock used for the default selected date.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides appointment id generation.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// Store owns appointments, jobs, the roster and UI selections.
// Readers receive copies.
type Store struct {
	mu     sync.RWMutex
	repo   schedule.SnapshotRepository
	key    string
	logger *slog.Logger
	now    func() time.Time
	newID  func() string

	appointments []schedule.Appointment
	jobs         []schedule.Job
	members      []schedule.TeamMember
	ui           schedule.UIState

	subMu   sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

// Open builds a store hydrated from the snapshot in repo. Missing or
// unreadable snapshots fall back to seed data.
func Open(ctx context.Context, repo schedule.SnapshotRepository, opts ...Option) (*Store, error) {
	if repo == nil {
		return nil, errors.New("store: nil repository")
	}

	s := &Store{
		repo:   repo,
		key:    schedule.DefaultSnapshotKey,
		logger: logging.Discard(),
		now:    time.Now,
		newID:  newAppointmentID,
		subs:   make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.seed()
	s.hydrate(ctx)
	return s, nil
}

func newAppointmentID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (s *Store) seed() {
	s.appointments = schedule.SeedAppointments()
	s.jobs = schedule.SeedJobs()
	s.members = schedule.SeedMembers()
	s.ui = schedule.DefaultUIState(s.now())
}

// hydrate overlays the persisted snapshot on the seed state. Failures are
// logged and leave the seed state in place.
func (s *Store) hydrate(ctx context.Context) {
	data, err := s.repo.LoadSnapshot(ctx, s.key)
	if errors.Is(err, schedule.ErrSnapshotNotFound) {
		s.logger.Info("no snapshot stored, using seed data", "key", s.key)
		return
	}
	if err != nil {
		s.logger.Warn("loading snapshot failed, using seed data", "key", s.key, "error", err)
		return
	}

	var snap schedule.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("parsing snapshot failed, using seed data", "key", s.key, "error", err)
		return
	}

	if snap.Appointments != nil {
		s.appointments = snap.Appointments
	}
	if snap.Jobs != nil {
		s.jobs = snap.Jobs
	}
	if len(snap.TeamMembers) > 0 {
		s.members = snap.TeamMembers
	}
	if snap.SelectedDate != "" {
		if t, err := time.Parse(time.RFC3339, snap.SelectedDate); err == nil {
			// Stored in UTC; show the day in the local zone it was picked in.
			s.ui.SelectedDate = t.In(s.now().Location())
		} else {
			s.logger.Warn("ignoring unparseable selected date", "value", snap.SelectedDate, "error", err)
		}
	}
	if snap.ActiveView != "" {
		s.ui.ActiveView = snap.ActiveView
	}
	if snap.StatusFilter != "" {
		s.ui.StatusFilter = snap.StatusFilter
	}
	if snap.TeamFilter != "" {
		s.ui.TeamFilter = snap.TeamFilter
	}
	if snap.AssignedFilter != "" {
		s.ui.AssignedFilter = snap.AssignedFilter
	}

	s.logger.Info("snapshot restored", "key", s.key, "appointments", len(s.appointments), "jobs", len(s.jobs))
}

// Create appends a new appointment. An empty or already used id is
// replaced with a fresh one. Overlaps are not checked here.
func (s *Store) Create(a schedule.Appointment) (schedule.Appointment, error) {
	s.mu.Lock()
	if a.ID == "" || s.indexOf(a.ID) >= 0 {
		a.ID = s.newID()
	}
	s.appointments = append(s.appointments, a)
	s.persistLocked()
	s.mu.Unlock()

	s.notify(Event{Kind: EventCreated, ID: a.ID})
	return a, nil
}

// Update merges p into the appointment with the given id.
// Returns schedule.ErrAppointmentNotFound if no appointment has that id.
func (s *Store) Update(id string, p schedule.AppointmentPatch) (schedule.Appointment, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return schedule.Appointment{}, fmt.Errorf("%w: %s", schedule.ErrAppointmentNotFound, id)
	}
	updated := p.Apply(s.appointments[i])
	s.appointments[i] = updated
	s.persistLocked()
	s.mu.Unlock()

	s.notify(Event{Kind: EventUpdated, ID: id})
	return updated, nil
}

// Delete removes the appointment with the given id. It reports whether
// anything was removed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.appointments = slices.Delete(s.appointments, i, i+1)
	s.persistLocked()
	s.mu.Unlock()

	s.notify(Event{Kind: EventDeleted, ID: id})
	return true
}

// List returns every appointment in insertion order.
func (s *Store) List() []schedule.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.appointments)
}

// Get returns the appointment with the given id.
func (s *Store) Get(id string) (schedule.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.appointments[i], true
	}
	return schedule.Appointment{}, false
}

// Filtered returns the appointments passing the active status and team
// filters.
func (s *Store) Filtered() []schedule.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return schedule.FilterAppointments(s.appointments, s.ui.StatusFilter, s.ui.TeamFilter)
}

// Members returns the roster in row order.
func (s *Store) Members() []schedule.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.members)
}

// Member returns the team member with the given id.
func (s *Store) Member(id int) (schedule.TeamMember, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.ID == id {
			return m, true
		}
	}
	return schedule.TeamMember{}, false
}

// Jobs returns every job.
func (s *Store) Jobs() []schedule.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.jobs)
}

// FilteredJobs returns the jobs passing the active assigned filter.
func (s *Store) FilteredJobs() []schedule.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return schedule.FilterJobs(s.jobs, s.ui.AssignedFilter)
}

// Job returns the job with the given id.
func (s *Store) Job(id string) (schedule.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, j := range s.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return schedule.Job{}, false
}

// AssignJob records memberID as the job's assignee.
func (s *Store) AssignJob(jobID string, memberID int) error {
	s.mu.Lock()
	if !s.hasMember(memberID) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %d", schedule.ErrMemberNotFound, memberID)
	}
	i := slices.IndexFunc(s.jobs, func(j schedule.Job) bool { return j.ID == jobID })
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", schedule.ErrJobNotFound, jobID)
	}
	s.jobs[i].AssignedMember = schedule.Ptr(memberID)
	s.persistLocked()
	s.mu.Unlock()

	s.notify(Event{Kind: EventJobChanged, ID: jobID})
	return nil
}

// UI returns the current header and filter selections.
func (s *Store) UI() schedule.UIState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ui
}

// SetSelectedDate changes the selected day.
func (s *Store) SetSelectedDate(t time.Time) {
	s.setUI(func(ui *schedule.UIState) { ui.SelectedDate = t })
}

// SetActiveView changes the header view label.
func (s *Store) SetActiveView(view string) error {
	if !slices.Contains(schedule.Views, view) {
		return fmt.Errorf("%w: %q", ErrInvalidView, view)
	}
	s.setUI(func(ui *schedule.UIState) { ui.ActiveView = view })
	return nil
}

// SetStatusFilter changes the status filter.
func (s *Store) SetStatusFilter(filter string) error {
	if !slices.Contains(schedule.StatusFilters(), filter) {
		return fmt.Errorf("%w: status %q", ErrInvalidFilter, filter)
	}
	s.setUI(func(ui *schedule.UIState) { ui.StatusFilter = filter })
	return nil
}

// SetTeamFilter changes the team filter to "All" or a member id.
func (s *Store) SetTeamFilter(filter string) error {
	if filter != schedule.FilterAll {
		id, err := strconv.Atoi(filter)
		if err != nil {
			return fmt.Errorf("%w: team %q", ErrInvalidFilter, filter)
		}
		if _, ok := s.Member(id); !ok {
			return fmt.Errorf("%w: team %q", ErrInvalidFilter, filter)
		}
	}
	s.setUI(func(ui *schedule.UIState) { ui.TeamFilter = filter })
	return nil
}

// SetAssignedFilter changes the job list filter.
func (s *Store) SetAssignedFilter(filter string) error {
	if !slices.Contains(schedule.AssignedFilters(), filter) {
		return fmt.Errorf("%w: assigned %q", ErrInvalidFilter, filter)
	}
	s.setUI(func(ui *schedule.UIState) { ui.AssignedFilter = filter })
	return nil
}

func (s *Store) setUI(fn func(*schedule.UIState)) {
	s.mu.Lock()
	fn(&s.ui)
	s.persistLocked()
	s.mu.Unlock()

	s.notify(Event{Kind: EventUIChanged})
}

// Snapshot returns the full state in its persisted shape.
func (s *Store) Snapshot() schedule.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() schedule.Snapshot {
	return schedule.Snapshot{
		Appointments:   slices.Clone(s.appointments),
		Jobs:           slices.Clone(s.jobs),
		TeamMembers:    slices.Clone(s.members),
		SelectedDate:   s.ui.SelectedDate.UTC().Format(time.RFC3339),
		ActiveView:     s.ui.ActiveView,
		StatusFilter:   s.ui.StatusFilter,
		TeamFilter:     s.ui.TeamFilter,
		AssignedFilter: s.ui.AssignedFilter,
	}
}

// Reset restores the seed data and writes it to the repository.
// Unlike regular mutations, a failed write is returned.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.seed()
	data, err := json.Marshal(s.snapshotLocked())
	if err == nil {
		err = s.repo.SaveSnapshot(ctx, s.key, data)
	}
	s.mu.Unlock()

	s.notify(Event{Kind: EventReset})
	if err != nil {
		return fmt.Errorf("saving seed snapshot: %w", err)
	}
	return nil
}

// Subscribe registers fn for change events. The returned function
// removes the subscription. Callbacks run outside the store lock.
func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(ev Event) {
	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(Event), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// persistLocked writes the snapshot. Failures are logged only.
// Callers hold s.mu.
func (s *Store) persistLocked() {
	data, err := json.Marshal(s.snapshotLocked())
	if err != nil {
		s.logger.Error("encoding snapshot failed", "key", s.key, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.repo.SaveSnapshot(ctx, s.key, data); err != nil {
		s.logger.Error("saving snapshot failed", "key", s.key, "error", err)
	}
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.appointments, func(a schedule.Appointment) bool { return a.ID == id })
}

func (s *Store) hasMember(id int) bool {
	return slices.ContainsFunc(s.members, func(m schedule.TeamMember) bool { return m.ID == id })
}
