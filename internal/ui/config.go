package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/teamcal/internal/config"
	"github.com/javiermolinar/teamcal/internal/logging"
	"github.com/javiermolinar/teamcal/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  teamcal config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(a.configPath, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runConfigInteractive(configPath string, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	// Ask if user wants to edit
	reader := bufio.NewReader(in)
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)
	cfg.Storage.SnapshotKey = promptValue(reader, out, "Snapshot key", cfg.Storage.SnapshotKey)
	cfg.Schedule.MaxDuration = promptFloat(reader, out, "Max appointment hours", cfg.Schedule.MaxDuration)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.UI.DoubleClickMS = promptInt(reader, out, "Double-click window (ms)", cfg.UI.DoubleClickMS)
	cfg.Log.Path = promptValue(reader, out, "Log file", cfg.Log.Path)
	cfg.Log.Level = promptLevel(reader, out, cfg.Log.Level)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[storage]")
	fmt.Fprintf(out, "  db_path          = %s\n", cfg.Storage.DBPath)
	fmt.Fprintf(out, "  snapshot_key     = %s\n", cfg.Storage.SnapshotKey)
	fmt.Fprintln(out, "\n[schedule]")
	fmt.Fprintf(out, "  max_duration     = %v\n", cfg.Schedule.MaxDuration)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme            = %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "  double_click_ms  = %d\n", cfg.UI.DoubleClickMS)
	fmt.Fprintln(out, "\n[log]")
	fmt.Fprintf(out, "  path             = %s\n", cfg.Log.Path)
	fmt.Fprintf(out, "  level            = %s\n", cfg.Log.Level)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

// promptFloat keeps asking until the answer parses. EOF keeps current.
func promptFloat(reader *bufio.Reader, out io.Writer, label string, current float64) float64 {
	for {
		value := promptValue(reader, out, label, strconv.FormatFloat(current, 'f', -1, 64))
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptLevel(reader *bufio.Reader, out io.Writer, current string) string {
	for {
		value := strings.ToLower(promptValue(reader, out, "Log level (debug, info, warn, error)", current))
		if _, err := logging.ParseLevel(value); err == nil {
			return value
		}
		fmt.Fprintf(out, "  Invalid level %q\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
