package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	InnerW           int
	FooterH          int
	FullFooter       bool
	SummaryText      string
	LegendText       string
	StatusText       string
	HelpText         string
	PromptLines      []string
	ShowPrompt       bool
	FooterStyle      lipgloss.Style
	StatusStyle      lipgloss.Style
	HelpStyle        lipgloss.Style
	PromptFocusStyle lipgloss.Style
	VAlign           lipgloss.Position
	Bg               lipgloss.Color
}

// RenderFooterModel builds footer lines and renders the footer.
func RenderFooterModel(model FooterModel) string {
	promptLine := ""
	if model.ShowPrompt {
		promptLine = RenderPrompt(model.InnerW, model.PromptFocusStyle, model.PromptLines)
	}

	state := FooterViewState{
		InnerW:      model.InnerW,
		FooterH:     model.FooterH,
		FullFooter:  model.FullFooter,
		SummaryLine: footerLine(model.InnerW, model.FooterStyle, model.SummaryText),
		LegendLine:  footerLine(model.InnerW, model.FooterStyle, model.LegendText),
		PromptLine:  promptLine,
		StatusLine:  footerLine(model.InnerW, model.StatusStyle, model.StatusText),
		HelpLine:    footerLine(model.InnerW, model.HelpStyle, model.HelpText),
		VAlign:      model.VAlign,
		Bg:          model.Bg,
	}

	return RenderFooter(state)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := width - frameW
	if contentWidth < 0 {
		contentWidth = 0
	}
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}
