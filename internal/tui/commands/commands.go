// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/teamcal/internal/export"
	"github.com/javiermolinar/teamcal/internal/schedule"
	"github.com/javiermolinar/teamcal/internal/store"
)

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// StoreEventMsg carries a store change notification into the update loop.
type StoreEventMsg struct {
	Event store.Event
}

// ExportedMsg is sent when an export file has been written.
type ExportedMsg struct {
	Path   string
	Format export.Format
}

// ResetMsg is sent after the store has been restored to seed data.
type ResetMsg struct{}

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// WaitForStoreEvent blocks until the next store event. A closed channel
// yields no message.
func WaitForStoreEvent(events <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return StoreEventMsg{Event: ev}
	}
}

// Export writes snap to path. The format comes from the file extension.
func Export(path string, snap schedule.Snapshot, day time.Time) tea.Cmd {
	return func() tea.Msg {
		format, err := export.ParseFormat(filepath.Ext(path))
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("export %s: %w", path, err)}
		}

		if err := export.WriteFile(path, format, snap, day); err != nil {
			return ErrMsg{Err: err}
		}

		return ExportedMsg{Path: path, Format: format}
	}
}

// CopyToClipboard copies text and reports the outcome as a status message.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied: " + text}
	}
}

// Reset restores the store to seed data.
func Reset(s *store.Store) tea.Cmd {
	return func() tea.Msg {
		if err := s.Reset(context.Background()); err != nil {
			return ErrMsg{Err: fmt.Errorf("resetting data: %w", err)}
		}
		return ResetMsg{}
	}
}
