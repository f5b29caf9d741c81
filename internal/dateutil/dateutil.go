// Package dateutil provides selected-date parsing, navigation and labels.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDateFormat is returned for unrecognized date input.
var ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")

const dateLayout = "2006-01-02"

var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// ParseRelativeDate parses navigation input relative to a day:
//   - "" or "today"
//   - "tomorrow", "yesterday"
//   - a weekday name: the next occurrence after relativeTo
//   - "last-<weekday>": the previous occurrence before relativeTo
//   - an absolute YYYY-MM-DD date, past dates included
//
// Input is case-insensitive.
func ParseRelativeDate(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if name, ok := strings.CutPrefix(input, "last-"); ok {
		if target, ok := weekdayMap[name]; ok {
			return previousWeekday(today, target), nil
		}
		return time.Time{}, ErrInvalidDateFormat
	}
	if target, ok := weekdayMap[input]; ok {
		return nextWeekday(today, target), nil
	}

	t, err := time.ParseInLocation(dateLayout, input, relativeTo.Location())
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

func nextWeekday(today time.Time, target time.Weekday) time.Time {
	days := int(target) - int(today.Weekday())
	if days <= 0 {
		days += 7
	}
	return today.AddDate(0, 0, days)
}

func previousWeekday(today time.Time, target time.Weekday) time.Time {
	days := int(today.Weekday()) - int(target)
	if days <= 0 {
		days += 7
	}
	return today.AddDate(0, 0, -days)
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ShiftDays moves t by n calendar days and truncates it to midnight.
func ShiftDays(t time.Time, n int) time.Time {
	return TruncateToDay(t).AddDate(0, 0, n)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// HeaderLabel returns the month heading, e.g. "October 2026".
func HeaderLabel(t time.Time) string {
	return t.Format("January 2006")
}

// DayLabel returns the short day heading, e.g. "Wed, Oct 14".
func DayLabel(t time.Time) string {
	return t.Format("Mon, Jan 2")
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
