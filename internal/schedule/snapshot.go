package schedule

import (
	"context"
	"time"
)

// DefaultSnapshotKey is the storage key of the application snapshot.
const DefaultSnapshotKey = "teamCalendarData"

// UIState holds the persisted header and filter selections.
type UIState struct {
	SelectedDate   time.Time
	ActiveView     string
	StatusFilter   string
	TeamFilter     string
	AssignedFilter string
}

// DefaultUIState returns the selections used on first start.
func DefaultUIState(now time.Time) UIState {
	return UIState{
		SelectedDate:   now,
		ActiveView:     DefaultView,
		StatusFilter:   FilterAll,
		TeamFilter:     FilterAll,
		AssignedFilter: FilterAssigned,
	}
}

// Snapshot is the full serialized application state.
// Nil slices mean the section was absent.
type Snapshot struct {
	Appointments   []Appointment `json:"appointments" yaml:"appointments"`
	Jobs           []Job         `json:"jobs" yaml:"jobs"`
	TeamMembers    []TeamMember  `json:"teamMembers" yaml:"teamMembers"`
	SelectedDate   string        `json:"selectedDate" yaml:"selectedDate"` // RFC 3339
	ActiveView     string        `json:"activeView" yaml:"activeView"`
	StatusFilter   string        `json:"statusFilter" yaml:"statusFilter"`
	TeamFilter     string        `json:"teamFilter" yaml:"teamFilter"`
	AssignedFilter string        `json:"assignedFilter" yaml:"assignedFilter"`
}

// SeedSnapshot returns a snapshot of the built-in data.
func SeedSnapshot(now time.Time) Snapshot {
	ui := DefaultUIState(now)
	return Snapshot{
		Appointments:   SeedAppointments(),
		Jobs:           SeedJobs(),
		TeamMembers:    SeedMembers(),
		SelectedDate:   ui.SelectedDate.UTC().Format(time.RFC3339),
		ActiveView:     ui.ActiveView,
		StatusFilter:   ui.StatusFilter,
		TeamFilter:     ui.TeamFilter,
		AssignedFilter: ui.AssignedFilter,
	}
}

// SnapshotRepository defines durable key-value storage for snapshots.
type SnapshotRepository interface {
	// LoadSnapshot returns the raw snapshot stored under key.
	// Returns ErrSnapshotNotFound if nothing is stored.
	LoadSnapshot(ctx context.Context, key string) ([]byte, error)

	// SaveSnapshot replaces the snapshot stored under key.
	SaveSnapshot(ctx context.Context, key string, data []byte) error

	// DeleteSnapshot removes the snapshot stored under key.
	// Deleting a missing key is not an error.
	DeleteSnapshot(ctx context.Context, key string) error

	// Close releases any resources held by the repository.
	Close() error
}
