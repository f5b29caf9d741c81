// Package editor implements the appointment create/edit/delete state
// machine with live conflict checking and ordered submit validation.
package editor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/javiermolinar/teamcal/internal/schedule"
	"github.com/javiermolinar/teamcal/internal/slot"
)

// DefaultMaxDuration is the longest appointment accepted, in hours.
const DefaultMaxDuration = 8.0

// Create defaults.
const (
	DefaultStartSlot = 3 // 9:00 am
	DefaultDuration  = "1"
)

// State is the editor lifecycle state.
type State int

const (
	StateClosed State = iota
	StateCreating
	StateEditing
	StateConfirmingDelete
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateCreating:
		return "creating"
	case StateEditing:
		return "editing"
	case StateConfirmingDelete:
		return "confirming_delete"
	default:
		return "unknown"
	}
}

// Backend is the store surface the editor writes through.
type Backend interface {
	List() []schedule.Appointment
	Members() []schedule.TeamMember
	Member(id int) (schedule.TeamMember, bool)
	Create(a schedule.Appointment) (schedule.Appointment, error)
	Update(id string, p schedule.AppointmentPatch) (schedule.Appointment, error)
	Delete(id string) bool
	AssignJob(jobID string, memberID int) error
}

// Form holds the field values as entered. Duration stays a string until
// submit so partially typed input is preserved.
type Form struct {
	ClientName  string
	Member      int
	StartSlot   int
	Duration    string
	Status      schedule.Status
	Description string
}

// Option configures an Editor.
type Option func(*Editor)

// WithMaxDuration sets the longest accepted duration in hours.
func WithMaxDuration(hours float64) Option {
	return func(e *Editor) {
		if hours > 0 {
			e.maxDuration = hours
		}
	}
}

// Editor is the modal appointment editor.
type Editor struct {
	backend     Backend
	maxDuration float64

	state     State
	form      Form
	editingID string
	original  schedule.Appointment
	jobID     string
	conflicts []schedule.Appointment
}

// New creates a closed editor.
func New(b Backend, opts ...Option) *Editor {
	e := &Editor{
		backend:     b,
		maxDuration: DefaultMaxDuration,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current state.
func (e *Editor) State() State { return e.state }

// Open reports whether the editor is showing.
func (e *Editor) Open() bool { return e.state != StateClosed }

// Form returns the current field values.
func (e *Editor) Form() Form { return e.form }

// EditingID returns the id of the appointment being edited.
func (e *Editor) EditingID() string { return e.editingID }

// JobID returns the job the current create was opened for.
func (e *Editor) JobID() string { return e.jobID }

// MaxDuration returns the configured duration limit in hours.
func (e *Editor) MaxDuration() float64 { return e.maxDuration }

// Conflicts returns the appointments the current form overlaps.
func (e *Editor) Conflicts() []schedule.Appointment {
	return append([]schedule.Appointment(nil), e.conflicts...)
}

// HasConflict reports whether the current form overlaps anything.
func (e *Editor) HasConflict() bool { return len(e.conflicts) > 0 }

// CanSubmit reports whether the submit action is enabled.
func (e *Editor) CanSubmit() bool {
	return (e.state == StateCreating || e.state == StateEditing) && !e.HasConflict()
}

// OpenCreate opens an empty form with the default start and member.
func (e *Editor) OpenCreate() error {
	member := 0
	if members := e.backend.Members(); len(members) > 0 {
		member = members[0].ID
	}
	return e.OpenCreateAt(DefaultStartSlot, member)
}

// OpenCreateAt opens an empty form prefilled with a start slot and member.
func (e *Editor) OpenCreateAt(startSlot, memberID int) error {
	if e.state != StateClosed {
		return fmt.Errorf("%w: create from %s", ErrInvalidTransition, e.state)
	}
	if !slot.Valid(startSlot) {
		startSlot = DefaultStartSlot
	}
	e.reset()
	e.state = StateCreating
	e.form = Form{
		Member:    memberID,
		StartSlot: startSlot,
		Duration:  DefaultDuration,
		Status:    schedule.StatusPending,
	}
	e.recompute()
	return nil
}

// OpenForJob opens a create form prefilled from a job. Submitting it also
// assigns the job to the chosen member.
func (e *Editor) OpenForJob(j schedule.Job) error {
	if e.state != StateClosed {
		return fmt.Errorf("%w: create from %s", ErrInvalidTransition, e.state)
	}
	member := 0
	if j.AssignedMember != nil {
		member = *j.AssignedMember
	} else if members := e.backend.Members(); len(members) > 0 {
		member = members[0].ID
	}

	e.reset()
	e.state = StateCreating
	e.jobID = j.ID
	e.form = Form{
		ClientName:  j.Name,
		Member:      member,
		StartSlot:   DefaultStartSlot,
		Duration:    formatHours(j.Duration()),
		Status:      schedule.StatusPending,
		Description: j.AppointmentDescription(),
	}
	e.recompute()
	return nil
}

// OpenEdit opens a form populated from an existing appointment.
func (e *Editor) OpenEdit(a schedule.Appointment) error {
	if e.state != StateClosed {
		return fmt.Errorf("%w: edit from %s", ErrInvalidTransition, e.state)
	}
	e.reset()
	e.state = StateEditing
	e.editingID = a.ID
	e.original = a
	e.form = Form{
		ClientName:  a.ClientName,
		Member:      a.Member,
		StartSlot:   a.StartHour,
		Duration:    formatHours(a.Duration),
		Status:      a.Status,
		Description: a.Description,
	}
	e.recompute()
	return nil
}

// Cancel closes the editor without writing.
func (e *Editor) Cancel() {
	e.reset()
}

func (e *Editor) reset() {
	e.state = StateClosed
	e.form = Form{}
	e.editingID = ""
	e.original = schedule.Appointment{}
	e.jobID = ""
	e.conflicts = nil
}

// SetClientName updates the client name.
func (e *Editor) SetClientName(name string) { e.form.ClientName = name }

// SetDescription updates the description.
func (e *Editor) SetDescription(desc string) { e.form.Description = desc }

// SetStatus updates the status.
func (e *Editor) SetStatus(s schedule.Status) { e.form.Status = s }

// SetMember changes the assigned member and rechecks conflicts.
func (e *Editor) SetMember(id int) error {
	if _, ok := e.backend.Member(id); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownMember, id)
	}
	e.form.Member = id
	e.recompute()
	return nil
}

// SetStartSlot changes the start slot and rechecks conflicts.
func (e *Editor) SetStartSlot(s int) error {
	if !slot.Valid(s) {
		return fmt.Errorf("%w: %d", ErrInvalidStartSlot, s)
	}
	e.form.StartSlot = s
	e.recompute()
	return nil
}

// SetDuration changes the typed duration and rechecks conflicts.
func (e *Editor) SetDuration(d string) {
	e.form.Duration = d
	e.recompute()
}

// CycleMember moves the member selection by delta rows, wrapping.
func (e *Editor) CycleMember(delta int) {
	members := e.backend.Members()
	if len(members) == 0 {
		return
	}
	i := 0
	for j, m := range members {
		if m.ID == e.form.Member {
			i = j
			break
		}
	}
	i = wrap(i+delta, len(members))
	e.form.Member = members[i].ID
	e.recompute()
}

// CycleStartSlot moves the start selection by delta slots, wrapping.
func (e *Editor) CycleStartSlot(delta int) {
	e.form.StartSlot = wrap(e.form.StartSlot+delta, slot.Count)
	e.recompute()
}

// CycleStatus moves the status selection by delta, wrapping.
func (e *Editor) CycleStatus(delta int) {
	i := 0
	for j, s := range schedule.Statuses {
		if s == e.form.Status {
			i = j
			break
		}
	}
	e.form.Status = schedule.Statuses[wrap(i+delta, len(schedule.Statuses))]
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// liveDuration is the duration used for conflict checks and previews.
// Unparseable input counts as one hour.
func (e *Editor) liveDuration() float64 {
	d, ok := parseDuration(e.form.Duration)
	if !ok {
		return 1
	}
	return d
}

func (e *Editor) placement(duration float64) schedule.Placement {
	return schedule.Placement{
		Member:    e.form.Member,
		StartHour: e.form.StartSlot,
		Duration:  duration,
	}
}

func (e *Editor) recompute() {
	res := schedule.CheckConflict(e.placement(e.liveDuration()), e.backend.List(), e.editingID)
	e.conflicts = res.Conflicting
}

// parseDuration accepts a positive finite number of hours.
func parseDuration(s string) (float64, bool) {
	d, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return 0, false
	}
	return d, true
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// Validate runs the submit rules in order and returns the first failure.
func (e *Editor) Validate() error {
	if strings.TrimSpace(e.form.ClientName) == "" {
		return ErrClientNameRequired
	}
	d, ok := parseDuration(e.form.Duration)
	if !ok {
		return ErrInvalidDuration
	}
	if d > e.maxDuration {
		return durationTooLong(e.maxDuration)
	}
	res := schedule.CheckConflict(e.placement(d), e.backend.List(), e.editingID)
	e.conflicts = res.Conflicting
	if res.HasConflict {
		return ErrSchedulingConflict
	}
	if float64(e.form.StartSlot)+d > slot.Last {
		return ErrOutsideWorkingHours
	}
	return nil
}

// Submit validates the form and writes it to the backend. A rejected
// submit leaves the backend untouched and the editor open.
func (e *Editor) Submit() (schedule.Appointment, error) {
	if e.state != StateCreating && e.state != StateEditing {
		return schedule.Appointment{}, fmt.Errorf("%w: submit from %s", ErrInvalidTransition, e.state)
	}
	if _, ok := e.backend.Member(e.form.Member); !ok {
		return schedule.Appointment{}, fmt.Errorf("%w: %d", ErrUnknownMember, e.form.Member)
	}
	if err := e.Validate(); err != nil {
		return schedule.Appointment{}, err
	}

	d, _ := parseDuration(e.form.Duration)
	start := slot.MustLabel(e.form.StartSlot)
	end, err := slot.AddDuration(start, d)
	if err != nil {
		return schedule.Appointment{}, err
	}
	name := strings.TrimSpace(e.form.ClientName)
	timeRange := slot.Range(start, end)

	if e.state == StateEditing {
		updated, err := e.backend.Update(e.editingID, schedule.AppointmentPatch{
			ClientName:  &name,
			Time:        &timeRange,
			StartTime:   &start,
			EndTime:     &end,
			StartHour:   schedule.Ptr(e.form.StartSlot),
			Duration:    &d,
			Status:      schedule.Ptr(e.form.Status),
			Member:      schedule.Ptr(e.form.Member),
			Description: schedule.Ptr(e.form.Description),
		})
		if err != nil {
			return schedule.Appointment{}, fmt.Errorf("updating appointment: %w", err)
		}
		e.reset()
		return updated, nil
	}

	created, err := e.backend.Create(schedule.Appointment{
		ClientName:  name,
		Time:        timeRange,
		StartTime:   start,
		EndTime:     end,
		StartHour:   e.form.StartSlot,
		Duration:    d,
		Status:      e.form.Status,
		Member:      e.form.Member,
		Description: e.form.Description,
	})
	if err != nil {
		return schedule.Appointment{}, fmt.Errorf("creating appointment: %w", err)
	}

	jobID, member := e.jobID, e.form.Member
	e.reset()
	if jobID != "" {
		if err := e.backend.AssignJob(jobID, member); err != nil {
			return created, fmt.Errorf("assigning job: %w", err)
		}
	}
	return created, nil
}

// RequestDelete asks for confirmation before deleting the edited
// appointment.
func (e *Editor) RequestDelete() error {
	if e.state != StateEditing {
		return fmt.Errorf("%w: delete from %s", ErrInvalidTransition, e.state)
	}
	e.state = StateConfirmingDelete
	return nil
}

// CancelDelete returns to editing.
func (e *Editor) CancelDelete() {
	if e.state == StateConfirmingDelete {
		e.state = StateEditing
	}
}

// ConfirmDelete deletes the edited appointment and closes the editor. It
// reports whether anything was removed.
func (e *Editor) ConfirmDelete() (bool, error) {
	if e.state != StateConfirmingDelete {
		return false, fmt.Errorf("%w: confirm delete from %s", ErrInvalidTransition, e.state)
	}
	id := e.editingID
	e.reset()
	return e.backend.Delete(id), nil
}

// DeleteMessage is the confirmation prompt for the pending delete.
func (e *Editor) DeleteMessage() string {
	return fmt.Sprintf("Are you sure you want to delete the appointment for %s? This action cannot be undone.", e.original.ClientName)
}

// Preview summarizes the form as it would be saved.
type Preview struct {
	Start  string
	End    string
	Member string
}

// Range returns "from <start> to <end>".
func (p Preview) Range() string {
	return "from " + p.Start + " to " + p.End
}

// Preview returns the time range and member the form currently describes.
func (e *Editor) Preview() Preview {
	p := Preview{}
	if slot.Valid(e.form.StartSlot) {
		p.Start = slot.MustLabel(e.form.StartSlot)
		p.End = slot.EndLabel(e.form.StartSlot, e.liveDuration())
	}
	if m, ok := e.backend.Member(e.form.Member); ok {
		p.Member = m.Name
	}
	return p
}
