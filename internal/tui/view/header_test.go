package view

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestHeaderLines(t *testing.T) {
	s := lipgloss.NewStyle()
	styles := HeaderStyles{Title: s, Day: s, Today: s, Tag: s, Mode: s, Muted: s}
	day := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

	lines := HeaderLines(HeaderModel{
		Date:         day,
		Today:        day,
		View:         "Team View",
		StatusFilter: "All",
		TeamFilter:   "Mike Davis",
	}, styles, 80)

	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	title := ansi.Strip(lines[0])
	if !strings.Contains(title, "October 2026") || !strings.Contains(title, "Wed, Oct 14 (today)") {
		t.Errorf("title = %q", title)
	}
	if lipgloss.Width(lines[0]) != 80 {
		t.Errorf("title width = %d, want 80", lipgloss.Width(lines[0]))
	}
	filters := ansi.Strip(lines[1])
	if !strings.Contains(filters, "Team View") || !strings.Contains(filters, "team:Mike Davis") {
		t.Errorf("filters = %q", filters)
	}
}

func TestSlotHeader(t *testing.T) {
	got := SlotHeader(4, 5)
	if !strings.HasPrefix(got, "    6am  7am  ") {
		t.Fatalf("SlotHeader = %q", got)
	}
	if len(got) != 4+13*5 {
		t.Fatalf("SlotHeader width = %d", len(got))
	}
	if !strings.HasSuffix(got, "6pm  ") {
		t.Fatalf("SlotHeader should end with 6pm, got %q", got)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abcdef", 4, "abc…"},
		{"abc", 1, "a"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Fit(tt.in, tt.width); got != tt.want {
			t.Errorf("Fit(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
