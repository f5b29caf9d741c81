// Package slot maps between grid slot ordinals and 12-hour time labels.
//
// The grid spans thirteen whole-hour slots: ordinal 0 is 6:00 am and
// ordinal 12 is 6:00 pm. Labels use the "h:mm am|pm" form with a
// zero-padded minute and a lowercase period.
package slot

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Grid bounds.
const (
	First = 0
	Last  = 12
	Count = Last - First + 1

	// DayStartHour is the 24-hour clock hour of slot 0.
	DayStartHour = 6
)

const minutesPerDay = 24 * 60

// Lookup errors.
var (
	ErrUnknownLabel   = errors.New("unrecognized time label")
	ErrSlotOutOfRange = errors.New("slot outside 6:00 am - 6:00 pm")
)

// Option is a selectable start time.
type Option struct {
	Value string // "9:00 am"
	Label string // "9:00 AM"
	Index int
}

// Valid reports whether s is a grid slot ordinal.
func Valid(s int) bool {
	return s >= First && s <= Last
}

// Label returns the display label for a slot ordinal.
func Label(s int) (string, error) {
	if !Valid(s) {
		return "", fmt.Errorf("%w: %d", ErrSlotOutOfRange, s)
	}
	return Format(DayStartHour+s, 0), nil
}

// MustLabel is Label for ordinals known to be valid. It panics otherwise.
func MustLabel(s int) string {
	l, err := Label(s)
	if err != nil {
		panic(err)
	}
	return l
}

// ToSlot returns the slot ordinal for a label.
//
// Exact slot labels map to their ordinal. Other parseable labels round to
// the nearest slot, half rounding up, so "9:30 am" yields 4. Labels that
// cannot be parsed return ErrUnknownLabel and labels that round outside
// the grid return ErrSlotOutOfRange.
func ToSlot(label string) (int, error) {
	h, m, err := Parse(label)
	if err != nil {
		return 0, err
	}
	offset := float64(h*60+m-DayStartHour*60) / 60
	s := int(math.Round(offset))
	if !Valid(s) {
		return 0, fmt.Errorf("%w: %q", ErrSlotOutOfRange, label)
	}
	return s, nil
}

// AddDuration adds hours to a start label and returns the end label.
// The result wraps at midnight; callers enforce the working-hours bound.
func AddDuration(start string, hours float64) (string, error) {
	h, m, err := Parse(start)
	if err != nil {
		return "", err
	}
	total := h*60 + m + int(math.Round(hours*60))
	return formatMinutes(total), nil
}

// EndLabel returns the label for the point startSlot+hours on the grid.
func EndLabel(startSlot int, hours float64) string {
	total := DayStartHour*60 + startSlot*60 + int(math.Round(hours*60))
	return formatMinutes(total)
}

// Range renders "start - end" for an appointment starting at label.
func Range(start, end string) string {
	return start + " - " + end
}

// Parse reads a "h:mm am|pm" label into a 24-hour hour and minute.
// The minute part is optional ("9 am").
func Parse(label string) (hour, minute int, err error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(label)))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	clock, period := fields[0], fields[1]
	if period != "am" && period != "pm" {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}

	hourPart, minutePart, hasMinute := strings.Cut(clock, ":")
	hour, err = strconv.Atoi(hourPart)
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	if hasMinute {
		if len(minutePart) != 2 {
			return 0, 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
		}
		minute, err = strconv.Atoi(minutePart)
		if err != nil || minute < 0 || minute > 59 {
			return 0, 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
		}
	}

	switch {
	case period == "pm" && hour != 12:
		hour += 12
	case period == "am" && hour == 12:
		hour = 0
	}
	return hour, minute, nil
}

// Format renders a 24-hour hour and minute as a 12-hour label.
func Format(hour, minute int) string {
	period := "am"
	if hour >= 12 {
		period = "pm"
	}
	h12 := hour
	if hour > 12 {
		h12 = hour - 12
	}
	if hour == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, minute, period)
}

func formatMinutes(total int) string {
	total = ((total % minutesPerDay) + minutesPerDay) % minutesPerDay
	return Format(total/60, total%60)
}

// HeaderLabel returns the compact column header for a slot ("6am", "12pm").
func HeaderLabel(s int) string {
	hour := DayStartHour + s
	period := "am"
	if hour >= 12 {
		period = "pm"
	}
	h12 := ((hour + 11) % 12) + 1
	return strconv.Itoa(h12) + period
}

// Options returns the start-time choices for every slot.
func Options() []Option {
	opts := make([]Option, 0, Count)
	for i := First; i <= Last; i++ {
		v := MustLabel(i)
		opts = append(opts, Option{Value: v, Label: strings.ToUpper(v), Index: i})
	}
	return opts
}

// FormatDuration renders fractional hours as "30 min", "2h" or "1h 30m".
func FormatDuration(hours float64) string {
	h := int(math.Floor(hours))
	m := int(math.Round((hours - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	switch {
	case h == 0:
		return fmt.Sprintf("%d min", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}
