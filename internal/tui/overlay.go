package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/teamcal/internal/tui/view"
)

// Backdrop margin drawn around modal content, in cells.
const (
	overlayMarginX = 2
	overlayMarginY = 1
)

// OverlayModel composites a modal box over the base view.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel() OverlayModel {
	return OverlayModel{}
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetActive shows or hides the overlay.
func (o *OverlayModel) SetActive(active bool) {
	o.active = active
}

// SetBackground updates the backdrop color.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render draws content centered on base, framed by a backdrop margin.
// Base lines outside the box are kept as they are.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	contentLines := trimTrailingEmpty(strings.Split(content, "\n"))
	if len(contentLines) == 0 {
		return base
	}
	contentW := 0
	for _, line := range contentLines {
		contentW = max(contentW, lipgloss.Width(line))
	}

	boxW := min(width, contentW+2*overlayMarginX)
	boxH := min(height, len(contentLines)+2*overlayMarginY)
	top := max(0, (height-boxH)/2)
	left := max(0, (width-boxW)/2)

	box := o.boxLines(contentLines, boxW, boxH)
	lines := normalizeLines(base, width, height)
	for i, line := range box {
		row := top + i
		if row >= height {
			break
		}
		lines[row] = ansi.Cut(lines[row], 0, left) + line + ansi.Cut(lines[row], left+boxW, width)
	}
	return strings.Join(lines, "\n")
}

// boxLines lays the content onto a backdrop-filled box of boxW × boxH.
func (o OverlayModel) boxLines(content []string, boxW, boxH int) []string {
	bgSeq := view.BackgroundSeq(o.bgColor)
	blank := bgSeq + strings.Repeat(" ", boxW) + ansi.ResetStyle

	lines := make([]string, boxH)
	for i := range lines {
		lines[i] = blank
	}

	innerW := max(0, boxW-2*overlayMarginX)
	for i, line := range content {
		row := overlayMarginY + i
		if row >= boxH {
			break
		}
		if lipgloss.Width(line) > innerW {
			line = ansi.Cut(line, 0, innerW)
		}
		pad := innerW - lipgloss.Width(line)
		lines[row] = bgSeq + strings.Repeat(" ", overlayMarginX) +
			view.ReapplyBackground(line, bgSeq) +
			bgSeq + strings.Repeat(" ", pad+boxW-innerW-overlayMarginX) +
			ansi.ResetStyle
	}
	return lines
}

func trimTrailingEmpty(lines []string) []string {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// normalizeLines pads or cuts base to exactly width × height.
func normalizeLines(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	for i, line := range lines {
		w := lipgloss.Width(line)
		switch {
		case w > width:
			lines[i] = ansi.Cut(line, 0, width)
		case w < width:
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return lines
}
