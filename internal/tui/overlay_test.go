package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestOverlaySetActive(t *testing.T) {
	overlay := NewOverlayModel()
	if overlay.Active() {
		t.Fatalf("expected overlay to start inactive")
	}
	overlay.SetActive(true)
	if !overlay.Active() {
		t.Fatalf("expected overlay to be active")
	}
}

func TestOverlayRenderInactiveReturnsBase(t *testing.T) {
	overlay := NewOverlayModel()
	base := "alpha\nbeta"
	if got := overlay.Render(base, 10, 2, "content"); got != base {
		t.Fatalf("expected base content unchanged when inactive")
	}
}

func TestOverlayRenderCentersContent(t *testing.T) {
	useTrueColor(t)
	overlay := NewOverlayModel()
	overlay.SetBackground(lipgloss.Color("#0c0c0c"))
	overlay.SetActive(true)

	width, height := 30, 12
	row := strings.Repeat(".", width)
	base := strings.Repeat(row+"\n", height-1) + row
	got := overlay.Render(base, width, height, "EDITOR")

	lines := strings.Split(got, "\n")
	if len(lines) != height {
		t.Fatalf("expected %d lines, got %d", height, len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != width {
			t.Fatalf("line %d width = %d, want %d", i, w, width)
		}
	}

	// A 6-cell line plus the margins makes a 10 × 3 box.
	boxW, boxH := 6+2*overlayMarginX, 1+2*overlayMarginY
	top := (height - boxH) / 2
	left := (width - boxW) / 2

	stripped := strings.Split(ansi.Strip(got), "\n")
	if stripped[0] != row {
		t.Fatalf("row above the box changed: %q", stripped[0])
	}
	want := strings.Repeat(".", left) + "  EDITOR  " + strings.Repeat(".", width-left-boxW)
	if stripped[top+overlayMarginY] != want {
		t.Fatalf("content row = %q, want %q", stripped[top+overlayMarginY], want)
	}

	bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor("#0c0c0c")).String()
	if !strings.Contains(lines[top], bgSeq) {
		t.Fatalf("backdrop color missing from the box: %q", lines[top])
	}
}
