// Package schedule defines the core domain types for teamcal.
package schedule

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/javiermolinar/teamcal/internal/slot"
)

// Validation errors.
var (
	ErrInvalidStatus   = errors.New("status must be 'pending', 'active' or 'completed'")
	ErrInvalidPriority = errors.New("priority must be 'high', 'medium' or 'low'")
)

// Domain errors.
var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrMemberNotFound      = errors.New("team member not found")
	ErrSnapshotNotFound    = errors.New("snapshot not found")
)

// Status is the lifecycle state of an appointment.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusPending, StatusActive, StatusCompleted}

// Valid returns true if the status is a known value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusCompleted:
		return true
	default:
		return false
	}
}

// Title returns the capitalized status name.
func (s Status) Title() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusActive:
		return "Active"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// UnmarshalJSON rejects unknown status strings.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	st, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// ParseStatus converts a string to a Status.
func ParseStatus(v string) (Status, error) {
	st := Status(v)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, v)
	}
	return st, nil
}

// TeamMember is a row in the scheduling grid.
type TeamMember struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

// Appointment is a client booking for one team member.
type Appointment struct {
	ID          string  `json:"id" yaml:"id"`
	ClientName  string  `json:"clientName" yaml:"clientName"`
	Time        string  `json:"time" yaml:"time"`           // "start - end" display
	StartTime   string  `json:"startTime" yaml:"startTime"` // "9:00 am"
	EndTime     string  `json:"endTime" yaml:"endTime"`
	StartHour   int     `json:"startHour" yaml:"startHour"` // slot ordinal, 0 = 6:00 am
	Duration    float64 `json:"duration" yaml:"duration"`   // hours
	Status      Status  `json:"status" yaml:"status"`
	Member      int     `json:"member" yaml:"member"` // TeamMember.ID
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// EndHour returns the slot position where the appointment ends.
func (a Appointment) EndHour() float64 {
	return float64(a.StartHour) + a.Duration
}

// WithinWorkingHours reports whether the appointment fits between
// 6:00 am and 6:00 pm.
func (a Appointment) WithinWorkingHours() bool {
	return a.StartHour >= slot.First && a.EndHour() <= slot.Last
}

// Placement returns the member and interval used for conflict checks.
func (a Appointment) Placement() Placement {
	return Placement{Member: a.Member, StartHour: a.StartHour, Duration: a.Duration}
}

// Priority ranks jobs.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid returns true if the priority is a known value.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// UnmarshalJSON rejects unknown priority strings.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	pr := Priority(raw)
	if !pr.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, raw)
	}
	*p = pr
	return nil
}

// Job is unscheduled work that can be turned into an appointment.
type Job struct {
	ID                string    `json:"id" yaml:"id"`
	Name              string    `json:"name" yaml:"name"`
	Address           string    `json:"address" yaml:"address"`
	JobID             string    `json:"jobId" yaml:"jobId"`
	AssignedMember    *int      `json:"assignedMember,omitempty" yaml:"assignedMember,omitempty"`
	Priority          *Priority `json:"priority,omitempty" yaml:"priority,omitempty"`
	EstimatedDuration *float64  `json:"estimatedDuration,omitempty" yaml:"estimatedDuration,omitempty"`
}

// Assigned reports whether the job has a team member.
func (j Job) Assigned() bool {
	return j.AssignedMember != nil
}

// Duration returns the estimated duration, defaulting to one hour.
func (j Job) Duration() float64 {
	if j.EstimatedDuration == nil || *j.EstimatedDuration <= 0 {
		return 1
	}
	return *j.EstimatedDuration
}

// AppointmentDescription is the description given to appointments
// created from this job.
func (j Job) AppointmentDescription() string {
	return "Job: " + j.JobID
}
