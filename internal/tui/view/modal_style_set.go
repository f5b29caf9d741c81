// Package view provides rendering helpers for the TUI.
package view

import "github.com/charmbracelet/lipgloss"

// ModalStyleSet groups modal styles to reduce call-site verbosity.
type ModalStyleSet struct {
	BodyStyle           lipgloss.Style
	MetaStyle           lipgloss.Style
	SectionTitleStyle   lipgloss.Style
	TagStyle            lipgloss.Style
	LabelStyle          lipgloss.Style
	HintStyle           lipgloss.Style
	WarningStyle        lipgloss.Style
	InputStyle          lipgloss.Style
	InputFocusedStyle   lipgloss.Style
	ChoiceActiveStyle   lipgloss.Style
	ChoiceInactiveStyle lipgloss.Style
	SelectedRowStyle    lipgloss.Style
	BorderStyle         lipgloss.Style
}

// EditorStyles returns the modal styles needed for the appointment editor.
func (s ModalStyleSet) EditorStyles() EditorStyles {
	return EditorStyles{
		TagStyle:          s.TagStyle,
		BodyStyle:         s.BodyStyle,
		LabelStyle:        s.LabelStyle,
		InputStyle:        s.InputStyle,
		InputFocusedStyle: s.InputFocusedStyle,
		ChoiceActive:      s.ChoiceActiveStyle,
		ChoiceInactive:    s.ChoiceInactiveStyle,
		HintStyle:         s.HintStyle,
		WarningStyle:      s.WarningStyle,
		SectionTitleStyle: s.SectionTitleStyle,
	}
}

// ConfirmDeleteStyles returns the modal styles needed for delete confirmation.
func (s ModalStyleSet) ConfirmDeleteStyles() ConfirmDeleteStyles {
	return ConfirmDeleteStyles{
		BodyStyle: s.BodyStyle,
		MetaStyle: s.MetaStyle,
	}
}

// HelpStyles returns the modal styles needed for the help modal.
func (s ModalStyleSet) HelpStyles() HelpStyles {
	return HelpStyles{
		SectionTitleStyle: s.SectionTitleStyle,
		KeyStyle:          s.LabelStyle,
		BodyStyle:         s.BodyStyle,
	}
}

// JobTableStyles returns the styles needed for the job table.
func (s ModalStyleSet) JobTableStyles() TableStyles {
	return TableStyles{
		Header:   s.SectionTitleStyle,
		Cell:     s.BodyStyle,
		Selected: s.SelectedRowStyle,
		Border:   s.BorderStyle,
	}
}
