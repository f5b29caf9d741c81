package integration

import (
	"testing"
	"time"

	"github.com/javiermolinar/teamcal/internal/dateutil"
	"github.com/javiermolinar/teamcal/internal/export"
	"github.com/javiermolinar/teamcal/internal/schedule"
)

func TestSelectedDate_SurvivesReopenAcrossZones(t *testing.T) {
	zones := []string{"Asia/Tokyo", "America/Los_Angeles", "UTC", "Pacific/Kiritimati"}

	for _, name := range zones {
		t.Run(name, func(t *testing.T) {
			loc, err := time.LoadLocation(name)
			if err != nil {
				t.Skipf("zone %s unavailable: %v", name, err)
			}
			repo, _ := openRepo(t)
			now := time.Date(2026, 10, 14, 23, 30, 0, 0, loc)
			s := openStore(t, repo, now)

			// Local midnight is the previous UTC day for zones east of UTC.
			picked := time.Date(2026, 10, 20, 0, 0, 0, 0, loc)
			s.SetSelectedDate(picked)
			t.Logf("picked %v, stored as %s", picked, s.Snapshot().SelectedDate)

			reopened := openStore(t, repo, now)
			got := reopened.UI().SelectedDate
			if !got.Equal(picked) {
				t.Fatalf("selected date = %v, want %v", got, picked)
			}
			if label := dateutil.DayLabel(got); label != "Tue, Oct 20" {
				t.Fatalf("day label = %q, want Tue, Oct 20", label)
			}
		})
	}
}

func TestEventTimes_UseTheDayLocation(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Skipf("zone unavailable: %v", err)
	}
	// Oct 25 2026 is the end of Madrid summer time; wall-clock slots must not shift.
	day := time.Date(2026, 10, 25, 0, 0, 0, 0, loc)
	a := schedule.Appointment{StartHour: 3, Duration: 1.5}

	start, end := export.EventTimes(a, day)
	if start.Hour() != 9 || start.Minute() != 0 || start.Location() != loc {
		t.Fatalf("start = %v, want 9:00 in %s", start, loc)
	}
	if end.Sub(start) != 90*time.Minute {
		t.Fatalf("end - start = %v, want 1h30m", end.Sub(start))
	}
}
