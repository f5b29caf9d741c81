// Package export renders schedule state as JSON, YAML or iCalendar.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"gopkg.in/yaml.v3"

	"github.com/javiermolinar/teamcal/internal/schedule"
	"github.com/javiermolinar/teamcal/internal/slot"
)

// ErrUnknownFormat is returned for unsupported format names.
var ErrUnknownFormat = errors.New("unknown export format")

// Format is an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatICS  Format = "ics"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatICS}

// ParseFormat converts a name or file extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "ics", "ical", "icalendar":
		return FormatICS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// MemberProperty carries the team member name on each event.
const MemberProperty = ical.ComponentProperty("X-TEAMCAL-MEMBER")

const productID = "-//teamcal//teamcal//EN"

// Write encodes snap in the given format. day anchors iCalendar events.
func Write(w io.Writer, format Format, snap schedule.Snapshot, day time.Time) error {
	switch format {
	case FormatJSON:
		return JSON(w, snap)
	case FormatYAML:
		return YAML(w, snap)
	case FormatICS:
		return ICS(w, snap.Appointments, snap.TeamMembers, day)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteFile creates path and encodes snap into it.
func WriteFile(path string, format Format, snap schedule.Snapshot, day time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := Write(f, format, snap, day); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}

// JSON writes the snapshot as indented JSON in its persisted shape.
func JSON(w io.Writer, snap schedule.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// YAML writes the snapshot as YAML.
func YAML(w io.Writer, snap schedule.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return nil
}

// ICS writes one VEVENT per appointment, placed on day.
func ICS(w io.Writer, appointments []schedule.Appointment, members []schedule.TeamMember, day time.Time) error {
	names := make(map[int]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	stamp := time.Now().UTC()
	for _, a := range appointments {
		start, end := EventTimes(a, day)

		ev := cal.AddEvent(a.ID + "@teamcal")
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(a.ClientName)
		if a.Description != "" {
			ev.SetDescription(a.Description)
		}
		ev.SetProperty(ical.ComponentPropertyStatus, eventStatus(a.Status))
		if a.Status == schedule.StatusCompleted {
			ev.SetProperty(ical.ComponentPropertyCategories, "COMPLETED")
		}
		if name, ok := names[a.Member]; ok {
			ev.SetProperty(MemberProperty, name)
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("writing ics: %w", err)
	}
	return nil
}

// EventTimes returns the wall-clock interval of a on day.
func EventTimes(a schedule.Appointment, day time.Time) (time.Time, time.Time) {
	y, m, d := day.Date()
	start := time.Date(y, m, d, slot.DayStartHour+a.StartHour, 0, 0, 0, day.Location())
	end := start.Add(time.Duration(math.Round(a.Duration*60)) * time.Minute)
	return start, end
}

func eventStatus(s schedule.Status) string {
	switch s {
	case schedule.StatusPending:
		return "TENTATIVE"
	case schedule.StatusActive, schedule.StatusCompleted:
		return "CONFIRMED"
	default:
		return "TENTATIVE"
	}
}
