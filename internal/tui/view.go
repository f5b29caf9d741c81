package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/teamcal/internal/dateutil"
	"github.com/javiermolinar/teamcal/internal/tui/view"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	showModal := m.mode == ModeModal && m.modalType != ModalNone
	modal := ""
	if showModal {
		modal = m.renderModal()
	}
	m.overlay.SetActive(showModal)
	m.overlay.SetBackground(m.styles.ModalBackdropColor)

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		MinWidth:         minWidth,
		MinHeight:        minHeight,
		BaseContent:      m.renderAppContent(),
		ModalContent:     modal,
		ShowModal:        showModal,
		Overlay:          m.overlay,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	layout := m.layoutCache
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return view.TooSmallMessage
	}

	headerBox := strings.Join(view.HeaderLines(m.headerModel(), m.styles.headerStyles(), layout.InnerW), "\n")
	gridBox := m.renderGrid(layout)
	footerBox := view.RenderFooterModel(m.footerViewState(layout))

	content := lipgloss.JoinVertical(lipgloss.Left, headerBox, gridBox, footerBox)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) headerModel() view.HeaderModel {
	ui := m.store.UI()
	return view.HeaderModel{
		Date:         ui.SelectedDate,
		Today:        dateutil.TruncateToDay(m.now()),
		View:         ui.ActiveView,
		StatusFilter: ui.StatusFilter,
		TeamFilter:   view.TeamFilterLabel(ui.TeamFilter, m.store.Members()),
		Grabbing:     m.mode == ModeGrab,
	}
}

func (m Model) footerViewState(layout LayoutCache) view.FooterModel {
	contentWidth := layout.PromptContentWidth
	lines := view.ClampPromptLines(m.promptLines(contentWidth), m.promptMaxContentLines(), contentWidth)

	full := layout.FooterH >= footerBaseLines
	status := m.statusMsgOrDefault()
	if !full && m.mode == ModePrompt {
		// No room for the prompt box; type on the status line.
		status = m.prompt.View()
	}

	return view.FooterModel{
		InnerW:           layout.InnerW,
		FooterH:          layout.FooterH,
		FullFooter:       full,
		SummaryText:      m.summaryText(),
		LegendText:       m.renderLegend(),
		StatusText:       status,
		HelpText:         m.helpText(),
		PromptLines:      lines,
		ShowPrompt:       full && m.mode == ModePrompt,
		FooterStyle:      layout.FooterAuxStyle,
		StatusStyle:      layout.StatusAuxStyle,
		HelpStyle:        layout.HelpAuxStyle,
		PromptFocusStyle: layout.PromptFocusedStyle,
		VAlign:           lipgloss.Bottom,
		Bg:               m.styles.colorBg,
	}
}
