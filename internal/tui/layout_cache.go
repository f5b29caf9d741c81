// Package tui provides the terminal user interface for teamcal.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/teamcal/internal/grid"
)

const (
	headerLines         = 2
	footerCompact       = 2 // status + help
	footerBaseLines     = 4 // summary + legend + status + help
	footerFullMinHeight = 20
	promptBorderLines   = 2
	promptMinLines      = 1

	// The member column plus four slots, with the app padding.
	minWidth  = grid.DefaultMemberColumnWidth + 4*grid.MinSlotWidth + 4
	minHeight = 12
)

// LayoutCache stores layout dimensions and styles derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	HeaderH int
	GridH   int
	FooterH int

	// Terminal position of the grid origin.
	GridX int
	GridY int

	VisibleRows  int
	VisibleSlots int

	FooterAuxStyle     lipgloss.Style
	StatusAuxStyle     lipgloss.Style
	HelpAuxStyle       lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	PromptContentWidth int
}

func promptContentWidth(styles *Styles, innerW int) int {
	frameW, _ := styles.PromptFocusedStyle.GetFrameSize()
	return max(0, innerW-frameW)
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	styles := m.styles
	appH, appV := styles.AppStyle.GetFrameSize()
	innerW := max(0, width-appH)
	innerH := max(0, height-appV)

	footerH := footerCompact
	if innerH >= footerFullMinHeight {
		footerH = m.fullFooterHeight(innerH, promptContentWidth(styles, innerW))
	}

	gridH := max(2, innerH-headerLines-footerH)

	l := m.grid.Layout()
	visibleRows := max(1, (gridH-l.HeaderHeight)/l.RowHeight)
	visibleSlots := max(1, (innerW-l.MemberColumnWidth)/max(1, l.SlotWidth))

	footerAuxStyle := lipgloss.NewStyle().
		Width(innerW).
		Background(styles.colorBg)
	statusAuxStyle := styles.StatusStyle.Inherit(footerAuxStyle)
	helpAuxStyle := styles.HelpStyle.Inherit(footerAuxStyle)

	promptWidth := promptContentWidth(styles, innerW)

	return LayoutCache{
		InnerW:             innerW,
		InnerH:             innerH,
		HeaderH:            headerLines,
		GridH:              gridH,
		FooterH:            footerH,
		GridX:              styles.AppStyle.GetPaddingLeft(),
		GridY:              styles.AppStyle.GetPaddingTop() + headerLines,
		VisibleRows:        visibleRows,
		VisibleSlots:       visibleSlots,
		FooterAuxStyle:     footerAuxStyle,
		StatusAuxStyle:     statusAuxStyle,
		HelpAuxStyle:       helpAuxStyle,
		PromptFocusedStyle: styles.PromptFocusedStyle.Width(promptWidth),
		PromptContentWidth: promptWidth,
	}
}

// fullFooterHeight grows the footer to fit the prompt box while prompting.
func (m Model) fullFooterHeight(innerH, promptWidth int) int {
	desired := footerBaseLines
	if m.mode == ModePrompt {
		lines := max(promptMinLines, len(m.promptLines(promptWidth)))
		desired += lines + promptBorderLines
	}
	// Keep at least the slot header and one member row for the grid.
	maxFooter := innerH - headerLines - grid.DefaultHeaderHeight - grid.DefaultRowHeight
	if maxFooter < footerBaseLines {
		return footerCompact
	}
	return min(desired, maxFooter)
}

func (m Model) promptMaxContentLines() int {
	return max(promptMinLines, m.layoutCache.FooterH-footerBaseLines-promptBorderLines)
}

// relayout resizes the grid to the current window and rebuilds the cache.
func (m *Model) relayout() {
	appH, appV := m.styles.AppStyle.GetFrameSize()
	innerW := max(0, m.width-appH)
	innerH := max(0, m.height-appV)
	m.grid.Resize(innerW, innerH)
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
	m.clampScroll()
}
