// Package tui provides the terminal user interface for teamcal.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/teamcal/internal/tui/theme"
	"github.com/javiermolinar/teamcal/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorCurrent     lipgloss.Color
	colorWarning     lipgloss.Color

	colorTextOnAccent  lipgloss.Color
	colorTextOnWarning lipgloss.Color

	// Header
	TitleStyle          lipgloss.Style
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style
	TagStyle            lipgloss.Style
	ModeStyle           lipgloss.Style
	MutedStyle          lipgloss.Style

	// Grid
	SlotHeaderStyle lipgloss.Style
	MemberStyle     lipgloss.Style
	RuleStyle       lipgloss.Style
	EmptyCellStyle  lipgloss.Style
	CursorStyle     lipgloss.Style
	PreviewStyle    lipgloss.Style
	PreviewBadStyle lipgloss.Style

	// Footer
	SummaryStyle       lipgloss.Style
	StatusStyle        lipgloss.Style
	HelpStyle          lipgloss.Style
	PromptFocusedStyle lipgloss.Style

	// Modal styles
	ModalStyle               lipgloss.Style
	ModalBgColor             lipgloss.Color
	ModalBackdropColor       lipgloss.Color
	ModalHeaderStyle         lipgloss.Style
	ModalFooterStyle         lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalBodyStyle           lipgloss.Style
	ModalMetaStyle           lipgloss.Style
	ModalSectionTitleStyle   lipgloss.Style
	ModalTagStyle            lipgloss.Style
	ModalLabelStyle          lipgloss.Style
	ModalInputStyle          lipgloss.Style
	ModalInputFocusedStyle   lipgloss.Style
	ModalInputTextStyle      lipgloss.Style
	ModalInputCursorStyle    lipgloss.Style
	ModalPlaceholderStyle    lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonActiveStyle   lipgloss.Style
	ModalButtonDisabledStyle lipgloss.Style
	ModalHintStyle           lipgloss.Style
	ModalWarningStyle        lipgloss.Style
	ChoiceActiveStyle        lipgloss.Style
	ChoiceInactiveStyle      lipgloss.Style
	TableSelectedStyle       lipgloss.Style
	TableBorderStyle         lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)
	s.palette = palette

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorCurrent = palette.Current
	s.colorWarning = palette.Warning
	s.colorTextOnAccent = palette.TextOnAccent
	s.colorTextOnWarning = palette.TextOnWarning

	base := lipgloss.NewStyle().Background(s.colorBg)

	s.TitleStyle = base.
		Bold(true).
		Foreground(s.colorAccent)

	s.DayHeaderStyle = base.
		Bold(true).
		Foreground(s.colorFg)

	s.DayHeaderTodayStyle = s.DayHeaderStyle.
		Foreground(s.colorCurrent)

	s.TagStyle = base.
		Foreground(s.colorFg)

	// Move indicator, shown while a card is grabbed
	s.ModeStyle = lipgloss.NewStyle().
		Background(s.colorAccent).
		Foreground(s.colorTextOnAccent).
		Bold(true)

	s.MutedStyle = base.
		Foreground(s.colorFgMuted)

	s.SlotHeaderStyle = base.
		Foreground(s.colorAccent).
		Bold(true)

	s.MemberStyle = base.
		Foreground(s.colorFg)

	s.RuleStyle = base.
		Foreground(s.colorBgSelection)

	s.EmptyCellStyle = base.
		Foreground(s.colorFgMuted)

	s.CursorStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorAccent).
		Bold(true)

	s.PreviewStyle = lipgloss.NewStyle().
		Background(s.colorAccent).
		Foreground(s.colorTextOnAccent).
		Bold(true)

	// Preview for a drop that would end after the last slot
	s.PreviewBadStyle = lipgloss.NewStyle().
		Background(s.colorWarning).
		Foreground(s.colorTextOnWarning).
		Bold(true)

	s.SummaryStyle = base.
		Foreground(s.colorFg)

	s.StatusStyle = base.
		Foreground(s.colorWarning).
		Bold(true)

	s.HelpStyle = base.
		Foreground(s.colorFgMuted)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		BorderBackground(s.colorBg).
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true).
		Padding(0, 1)

	modal := palette.Modal
	modalBg := modal.Bg
	s.ModalBackdropColor = modal.Backdrop
	s.ModalBgColor = modalBg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		BorderBackground(modalBg).
		Background(modalBg).
		Foreground(modal.Text).
		Padding(1, 2).
		Width(64).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalSectionTitleStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		Background(modalBg)

	s.ModalTagStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Panel).
		Bold(true).
		Padding(0, 1)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		Width(13).
		Background(modalBg)

	s.ModalInputStyle = lipgloss.NewStyle().
		Background(modalBg).
		Foreground(modal.Text).
		Padding(0, 1).
		Width(44)

	s.ModalInputFocusedStyle = lipgloss.NewStyle().
		Background(modal.Panel).
		Foreground(modal.Text).
		Padding(0, 1).
		Width(44)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modal.ReverseText).
		Background(modal.Highlight)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modal.Panel).
		Foreground(modal.Text).
		Padding(0, 2)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(modal.ReverseText).
		Padding(0, 2).
		Underline(true)

	s.ModalButtonDisabledStyle = lipgloss.NewStyle().
		Background(modalBg).
		Foreground(modal.Muted).
		Padding(0, 2).
		Strikethrough(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalWarningStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(modalBg).
		Bold(true)

	s.ChoiceActiveStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(modal.ReverseText).
		Bold(true)

	s.ChoiceInactiveStyle = lipgloss.NewStyle().
		Background(modalBg).
		Foreground(modal.Text)

	s.TableSelectedStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(modal.ReverseText).
		Bold(true)

	s.TableBorderStyle = lipgloss.NewStyle().
		Foreground(modal.Border).
		Background(modalBg)

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingBottom(1)

	return s
}

// Palette returns the colors the styles were built from.
func (s *Styles) Palette() *theme.Palette {
	return s.palette
}

func (s *Styles) modalStyleSet() view.ModalStyleSet {
	return view.ModalStyleSet{
		BodyStyle:           s.ModalBodyStyle,
		MetaStyle:           s.ModalMetaStyle,
		SectionTitleStyle:   s.ModalSectionTitleStyle,
		TagStyle:            s.ModalTagStyle,
		LabelStyle:          s.ModalLabelStyle,
		HintStyle:           s.ModalHintStyle,
		WarningStyle:        s.ModalWarningStyle,
		InputStyle:          s.ModalInputStyle,
		InputFocusedStyle:   s.ModalInputFocusedStyle,
		ChoiceActiveStyle:   s.ChoiceActiveStyle,
		ChoiceInactiveStyle: s.ChoiceInactiveStyle,
		SelectedRowStyle:    s.TableSelectedStyle,
		BorderStyle:         s.TableBorderStyle,
	}
}

func (s *Styles) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:         s.ModalHeaderStyle,
		ModalTitleStyle:          s.ModalTitleStyle,
		ModalFooterStyle:         s.ModalFooterStyle,
		ModalStyle:               s.ModalStyle,
		ModalButtonStyle:         s.ModalButtonStyle,
		ModalButtonActiveStyle:   s.ModalButtonActiveStyle,
		ModalButtonDisabledStyle: s.ModalButtonDisabledStyle,
		ModalBodyStyle:           s.ModalBodyStyle,
	}
}

func (s *Styles) headerStyles() view.HeaderStyles {
	return view.HeaderStyles{
		Title: s.TitleStyle,
		Day:   s.DayHeaderStyle,
		Today: s.DayHeaderTodayStyle,
		Tag:   s.TagStyle,
		Mode:  s.ModeStyle,
		Muted: s.MutedStyle,
		Bg:    s.colorBg,
	}
}
