package tui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/teamcal/internal/grid"
	"github.com/javiermolinar/teamcal/internal/logging"
	"github.com/javiermolinar/teamcal/internal/store"
)

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "teamcal-debug.log"

// debugState is the active debug log, if any.
type debugState struct {
	logger *slog.Logger
	file   io.Closer
	seq    atomic.Int64
}

// Global debug logger instance
var debugLog *debugState

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = nil
		return nil
	}

	// Create log file in current directory with fixed name (easy to find)
	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &debugState{
		logger: logging.New(f, slog.LevelDebug),
		file:   f,
	}
	debugLog.log("DEBUG_START", "log_file", DebugLogPath)
	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog == nil {
		return
	}
	debugLog.log("DEBUG_END")
	_ = debugLog.file.Close()
	debugLog = nil
}

// debugLogger returns the debug logger, or a discarding one.
func debugLogger() *slog.Logger {
	if debugLog == nil {
		return logging.Discard()
	}
	return debugLog.logger
}

func (d *debugState) log(event string, args ...any) {
	if d == nil {
		return
	}
	args = append([]any{"seq", d.seq.Add(1)}, args...)
	d.logger.Debug(event, args...)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg, mode Mode) {
	debugLog.log("KEY_PRESS", "key", msg.String(), "mode", modeString(mode))
}

// LogMouse logs a mouse event in grid coordinates.
func LogMouse(msg tea.MouseMsg, gx, gy int) {
	debugLog.log("MOUSE",
		"action", mouseActionString(msg.Action),
		"button", mouseButtonString(msg.Button),
		"x", msg.X, "y", msg.Y,
		"grid_x", gx, "grid_y", gy,
	)
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	if from == to {
		return
	}
	debugLog.log("MODE_CHANGE", "from", modeString(from), "to", modeString(to), "reason", reason)
}

// LogDrag logs a drag session transition.
func LogDrag(action string, session grid.DragSession) {
	debugLog.log("DRAG",
		"action", action,
		"id", session.Appointment.ID,
		"client", session.Appointment.ClientName,
		"origin_slot", session.Origin.TimeIndex,
		"origin_row", session.Origin.MemberIndex,
		"hover_slot", session.Hover.TimeIndex,
		"hover_row", session.Hover.MemberIndex,
		"keyboard", session.Keyboard,
	)
}

// LogStoreEvent logs a store change notification.
func LogStoreEvent(ev store.Event) {
	debugLog.log("STORE_EVENT", "kind", ev.Kind.String(), "id", ev.ID)
}

// LogError logs an error.
func LogError(context string, err error) {
	if err == nil {
		return
	}
	debugLog.log("ERROR", "context", context, "error", err.Error())
}

// modeString returns a string representation of a Mode.
func modeString(m Mode) string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeGrab:
		return "Grab"
	case ModePrompt:
		return "Prompt"
	case ModeModal:
		return "Modal"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// mouseActionString returns a string representation of a MouseAction.
func mouseActionString(a tea.MouseAction) string {
	switch a {
	case tea.MouseActionPress:
		return "press"
	case tea.MouseActionRelease:
		return "release"
	case tea.MouseActionMotion:
		return "motion"
	default:
		return fmt.Sprintf("Unknown(%d)", a)
	}
}

// mouseButtonString returns a string representation of a MouseButton.
func mouseButtonString(b tea.MouseButton) string {
	switch b {
	case tea.MouseButtonNone:
		return "none"
	case tea.MouseButtonLeft:
		return "left"
	case tea.MouseButtonMiddle:
		return "middle"
	case tea.MouseButtonRight:
		return "right"
	case tea.MouseButtonWheelUp:
		return "wheel up"
	case tea.MouseButtonWheelDown:
		return "wheel down"
	case tea.MouseButtonWheelLeft:
		return "wheel left"
	case tea.MouseButtonWheelRight:
		return "wheel right"
	default:
		return fmt.Sprintf("Unknown(%d)", b)
	}
}
