package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestEditorFooter(t *testing.T) {
	styles := ModalStyles{
		ModalButtonDisabledStyle: lipgloss.NewStyle().Faint(true),
	}

	create := EditorFooter(false, true, styles)
	if strings.Contains(create, "Delete") {
		t.Fatalf("create footer should not offer delete, got %q", create)
	}

	edit := EditorFooter(true, true, styles)
	if !strings.Contains(edit, "[ctrl+d] Delete") {
		t.Fatalf("edit footer should offer delete, got %q", edit)
	}

	blocked := EditorFooter(false, false, styles)
	if !strings.Contains(blocked, styles.ModalButtonDisabledStyle.Render("[Enter] Save")) {
		t.Fatalf("expected disabled save while conflicted, got %q", blocked)
	}
}

func TestConfirmDeleteFooter(t *testing.T) {
	out := ConfirmDeleteFooter(ModalStyles{})
	if !strings.Contains(out, "[y/Enter] Delete") || !strings.Contains(out, "[n/Esc] Keep") {
		t.Fatalf("unexpected footer %q", out)
	}
}
