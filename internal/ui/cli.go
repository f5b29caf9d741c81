// Package ui wires the teamcal command line.
package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/teamcal/internal/config"
	"github.com/javiermolinar/teamcal/internal/logging"
	"github.com/javiermolinar/teamcal/internal/store"
	"github.com/javiermolinar/teamcal/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store      *store.Store
	closers    []io.Closer
	config     *config.Config
	configPath string
	logger     *slog.Logger
	now        func() time.Time
	in         io.Reader
	out        io.Writer
	root       *cobra.Command
	debug      bool // Enable debug logging
	noColor    bool
}

// Option configures an App.
type Option func(*App)

// WithStore uses s instead of opening the configured database.
func WithStore(s *store.Store) Option {
	return func(a *App) { a.store = s }
}

// WithConfigPath overrides the config file location.
func WithConfigPath(path string) Option {
	return func(a *App) { a.configPath = path }
}

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithIO redirects prompts and command output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.in = in
		a.out = out
	}
}

// WithClock sets the time source used for relative dates.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// NewApp creates a new CLI application with the given config. The store
// is opened lazily by the commands that need it.
func NewApp(cfg *config.Config, opts ...Option) *App {
	a := &App{
		config:     cfg,
		configPath: config.DefaultConfigPath(),
		now:        time.Now,
		in:         os.Stdin,
		out:        os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.root = &cobra.Command{
		Use:   "teamcal",
		Short: "A terminal calendar for scheduling team appointments",
		Long: `Teamcal is a day calendar for scheduling client appointments
across a team.

Run without arguments to open the scheduling grid. Drag cards between
members and hours, double-click to create or edit, and schedule jobs
from the job list.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runTUI()
		},
	}
	a.root.SetIn(a.in)
	a.root.SetOut(a.out)

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.jobsCmd())
	a.root.AddCommand(a.checkCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.resetCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "teamcal %s (commit: %s)\n", Version, Commit)
		},
	}
}

func (a *App) runTUI() error {
	state, err := tui.DetectInitState(a.config, a.configPath)
	if err != nil {
		return err
	}
	if state.ConfigMissing {
		if err := a.config.SaveTo(a.configPath); err != nil {
			return fmt.Errorf("saving default config: %w", err)
		}
	}

	s, err := a.openStore()
	if err != nil {
		return err
	}
	if state.FirstRun() {
		a.logger.Info("first run, seeded defaults", "config", state.ConfigPath, "db", state.DBPath)
	}
	return tui.RunWithDebug(s, a.config, a.debug, tui.WithLogger(a.logger))
}

// openStore returns the injected store or opens the configured one,
// along with the log file it writes to.
func (a *App) openStore() (*store.Store, error) {
	if a.logger == nil {
		level, err := logging.ParseLevel(a.config.Log.Level)
		if err != nil {
			return nil, err
		}
		logger, closer, err := logging.Open(a.config.Log.Path, level)
		if err != nil {
			return nil, err
		}
		a.logger = logger
		a.closers = append(a.closers, closer)
	}
	if a.store != nil {
		return a.store, nil
	}

	s, closer, err := tui.OpenStore(a.config, a.logger)
	if err != nil {
		return nil, err
	}
	a.store = s
	a.closers = append(a.closers, closer)
	return s, nil
}

// SetArgs overrides the command line arguments, mainly for tests.
func (a *App) SetArgs(args ...string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the database and log file opened by commands.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
