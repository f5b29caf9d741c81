package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// PlaceBox renders content in a lipgloss.Place box with background fill.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(
		w,
		h,
		lipgloss.Left,
		vAlign,
		content,
		lipgloss.WithWhitespaceBackground(bg),
	)
	return PadLinesWithBackground(placed, w, h, bg)
}

// PadLinesWithBackground pads content to width/height with a background color.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	paddingStyle := lipgloss.NewStyle().Background(bg)
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := 0; i < height; i++ {
		line := lines[i]
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Truncate(line, width, "")
			continue
		}
		lines[i] = line + paddingStyle.Render(strings.Repeat(" ", width-lineWidth))
	}
	return strings.Join(lines[:height], "\n")
}

// BackgroundSeq returns the background escape sequence for a color.
func BackgroundSeq(bg lipgloss.Color) string {
	if bg == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
}

// ReapplyBackground restores bgSeq after every ANSI reset in line so the
// surrounding fill survives nested styles.
func ReapplyBackground(line, bgSeq string) string {
	if bgSeq == "" || line == "" {
		return line
	}
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
	return line
}

// Fit truncates or pads plain text to exactly width cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		if width == 1 {
			return runewidth.Truncate(s, width, "")
		}
		return runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
