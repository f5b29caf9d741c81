// Package tui provides the terminal user interface for teamcal.
package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/teamcal/internal/config"
	"github.com/javiermolinar/teamcal/internal/editor"
	"github.com/javiermolinar/teamcal/internal/grid"
	"github.com/javiermolinar/teamcal/internal/logging"
	"github.com/javiermolinar/teamcal/internal/store"
	"github.com/javiermolinar/teamcal/internal/tui/commands"
	"github.com/javiermolinar/teamcal/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeGrab        // Moving a card with the keyboard
	ModePrompt
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalEditor
	ModalConfirmDelete
	ModalJobs
	ModalHelp
)

// Editor form fields in focus order.
const (
	fieldClient = iota
	fieldMember
	fieldStart
	fieldDuration
	fieldStatus
	fieldDescription
	fieldCount
)

// storeEventBuffer bounds the queue between store callbacks and the
// update loop.
const storeEventBuffer = 64

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store  *store.Store
	grid   *grid.Grid
	editor *editor.Editor
	config *config.Config
	logger *slog.Logger

	events      chan store.Event
	unsubscribe func()

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Interaction state
	cursor    grid.Cell
	mode      Mode
	modalType ModalType
	clicks    *grid.ClickTracker
	pressCell grid.Cell // cell under the last left press
	now       func() time.Time

	// Editor form inputs; the editor owns the values.
	formClient   textinput.Model
	formDuration textinput.Model
	formDesc     textinput.Model
	formFocus    int
	formErr      string

	// deleteFromGrid is set when the confirmation was opened from the
	// grid, so cancelling closes it instead of returning to the form.
	deleteFromGrid bool

	jobCursor int

	overlay OverlayModel
	prompt  textinput.Model

	// Terminal dimensions and viewport
	width   int
	height  int
	scroll  int // first visible member row
	hscroll int // first visible slot column

	// Cached render data
	styleCache  StyleCache
	layoutCache LayoutCache

	// Messages
	statusMsg  string
	statusTime time.Time

	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithLogger sets the logger for store events and errors.
func WithLogger(l *slog.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock sets the time source used for "today" and double-clicks.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// New creates a new TUI model over an open store.
func New(s *store.Store, cfg *config.Config, opts ...ModelOption) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Placeholder = "/date tomorrow"
	ti.Prompt = "> "

	m := Model{
		store:        s,
		editor:       editor.New(s, editor.WithMaxDuration(cfg.Schedule.MaxDuration)),
		config:       cfg,
		logger:       logging.Discard(),
		events:       make(chan store.Event, storeEventBuffer),
		theme:        t,
		styles:       styles,
		mode:         ModeNormal,
		clicks:       &grid.ClickTracker{Window: cfg.DoubleClickWindow()},
		now:          time.Now,
		formClient:   newFormInput(styles, "Client name", 128),
		formDuration: newFormInput(styles, "Hours, e.g. 1.5", 8),
		formDesc:     newFormInput(styles, "Optional notes", 256),
		overlay:      NewOverlayModel(),
		prompt:       ti,
		styleCache:   NewStyleCache(styles),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.grid = grid.New(s)
	events := m.events
	m.unsubscribe = s.Subscribe(func(ev store.Event) {
		// Never block the writer; the grid is already marked stale.
		select {
		case events <- ev:
		default:
		}
	})
	m.layoutCache = m.buildLayoutCache(0, 0)
	return m
}

func newFormInput(styles *Styles, placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	in.Prompt = ""
	in.PlaceholderStyle = styles.ModalPlaceholderStyle
	in.TextStyle = styles.ModalInputTextStyle
	in.PromptStyle = styles.ModalInputTextStyle
	in.Cursor.Style = styles.ModalInputCursorStyle
	in.Cursor.TextStyle = styles.ModalInputTextStyle
	return in
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.WaitForStoreEvent(m.events)
}

// Close releases the store subscriptions held by the model.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.grid.Close()
}

// Run starts the TUI.
func Run(s *store.Store, cfg *config.Config, opts ...ModelOption) error {
	return RunWithDebug(s, cfg, false, opts...)
}

// RunWithDebug starts the TUI with optional debug logging. A nil store is
// opened from the configured database.
func RunWithDebug(s *store.Store, cfg *config.Config, debug bool, opts ...ModelOption) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	if s == nil {
		opened, closer, err := OpenStore(cfg, logging.Discard())
		if err != nil {
			return err
		}
		defer func() { _ = closer.Close() }()
		s = opened
	}

	if debug {
		opts = append(opts, WithLogger(debugLogger()))
	}
	model := New(s, cfg, opts...)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
