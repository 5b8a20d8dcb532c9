// Package main provides the CLI entrypoint for sposa.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/sposa/internal/config"
	"github.com/verte-zerg/sposa/internal/model"
	"github.com/verte-zerg/sposa/internal/reader"
	"github.com/verte-zerg/sposa/internal/source"
	"github.com/verte-zerg/sposa/internal/stats"
	"github.com/verte-zerg/sposa/internal/store"
	"github.com/verte-zerg/sposa/internal/tui"
)

const (
	defaultSpeed   = 1.0
	defaultBaseWPM = 188
	defaultWindow  = 5
)

var (
	readClipboard bool
	readSpeed     float64

	statsSource string
	statsSince  string
	statsLast   int
	statsWindow int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sposa [source]",
		Short:         "RSVP speed reader for the terminal",
		Long:          "sposa displays a text one word at a time, highlighting each word's optimal recognition point.\n\nThe source is a file path, or \":clipboard:\" to read the system clipboard.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runReadCmd,
	}

	rootCmd.Flags().BoolVar(&readClipboard, "clipboard", false, "read from the system clipboard")
	rootCmd.Flags().Float64Var(&readSpeed, "speed", defaultSpeed, "initial speed multiplier (0.1-2.8)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runReadCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !readClipboard {
		return cmd.Help()
	}

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFloatConfig(cmd, "speed", &readSpeed, fileCfg.Reader.Speed)

	settings := settingsFromConfig(fileCfg)
	settings.Speed = readSpeed
	if err := validateSettings(settings); err != nil {
		return err
	}

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	words, label, err := source.Resolve(arg, readClipboard)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	rd := reader.New(words, timingFromSettings(settings), settings.Speed, settings.BaseWPM)
	startedAt := time.Now()
	program := tea.NewProgram(tui.NewModel(rd), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	endedAt := time.Now()

	if rd.WordsRead() > 0 {
		session := model.SessionStats{
			StartedAt:  startedAt,
			EndedAt:    endedAt,
			Source:     label,
			WordsTotal: rd.Len(),
			WordsRead:  rd.WordsRead(),
			DurationMs: endedAt.Sub(startedAt).Milliseconds(),
			Speed:      rd.Speed(),
		}
		if _, err := st.InsertSession(context.Background(), session); err != nil {
			logErrf("failed to save session: %v\n", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show reading history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSource, "source", "", "source filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&statsWindow, "window", defaultWindow, "moving average window for the trend")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	filter := model.StatsFilter{
		Source: statsSource,
		Since:  sinceTime,
		Last:   statsLast,
	}
	sessions, err := st.ListSessions(context.Background(), filter)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := stats.RenderSummary(out, sessions); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	width := stats.TerminalWidth() - len("WPM trend: ")
	if err := stats.RenderTrend(out, sessions, statsWindow, width); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func settingsFromConfig(cfg config.FileConfig) model.Settings {
	timing := reader.DefaultTiming()
	settings := model.Settings{
		Speed:          defaultSpeed,
		BaseWPM:        defaultBaseWPM,
		CharDelay:      timing.CharDelay,
		WordDelay:      timing.WordDelay,
		SentenceBonus:  timing.SentenceBonus,
		ClauseBonus:    timing.ClauseBonus,
		FirstWordDelay: timing.FirstWordDelay,
		PollInterval:   timing.PollInterval,
	}
	applyIntValue(&settings.BaseWPM, cfg.Reader.BaseWPM)
	applyDurationMs(&settings.CharDelay, cfg.Reader.CharDelayMs)
	applyDurationMs(&settings.WordDelay, cfg.Reader.WordDelayMs)
	applyDurationMs(&settings.SentenceBonus, cfg.Reader.SentenceBonusMs)
	applyDurationMs(&settings.ClauseBonus, cfg.Reader.ClauseBonusMs)
	applyDurationMs(&settings.FirstWordDelay, cfg.Reader.FirstWordDelayMs)
	return settings
}

func timingFromSettings(settings model.Settings) reader.Timing {
	return reader.Timing{
		CharDelay:      settings.CharDelay,
		WordDelay:      settings.WordDelay,
		SentenceBonus:  settings.SentenceBonus,
		ClauseBonus:    settings.ClauseBonus,
		FirstWordDelay: settings.FirstWordDelay,
		PollInterval:   settings.PollInterval,
	}
}

func validateSettings(settings model.Settings) error {
	if settings.Speed < reader.MinSpeed || settings.Speed > reader.MaxSpeed {
		return fmt.Errorf("--speed must be between %.1f and %.1f", reader.MinSpeed, reader.MaxSpeed)
	}
	if settings.BaseWPM <= 0 {
		return fmt.Errorf("base-wpm must be > 0")
	}
	if settings.CharDelay <= 0 || settings.WordDelay <= 0 || settings.FirstWordDelay <= 0 {
		return fmt.Errorf("delays must be > 0")
	}
	if settings.SentenceBonus < 0 || settings.ClauseBonus < 0 {
		return fmt.Errorf("bonuses must be >= 0")
	}
	return nil
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntValue(target *int, value *int) {
	if value == nil {
		return
	}
	*target = *value
}

func applyDurationMs(target *time.Duration, ms *int) {
	if ms == nil {
		return
	}
	*target = time.Duration(*ms) * time.Millisecond
}

func defaultConfigTemplate() string {
	timing := reader.DefaultTiming()
	return fmt.Sprintf(`# sposa configuration
# Uncomment a value to enable it. CLI flags override config values.

[reader]
# speed = %.1f              # Initial speed multiplier (%.1f-%.1f)
# base-wpm = %d           # WPM label at 1.0x
# char-delay-ms = %d       # Typing reveal delay per character
# word-delay-ms = %d      # Base settle delay per word
# sentence-bonus-ms = %d  # Extra delay after . : ! ?
# clause-bonus-ms = %d    # Extra delay after , ;
# first-word-delay-ms = %d # Settle delay for the first word
`,
		defaultSpeed,
		reader.MinSpeed,
		reader.MaxSpeed,
		defaultBaseWPM,
		timing.CharDelay.Milliseconds(),
		timing.WordDelay.Milliseconds(),
		timing.SentenceBonus.Milliseconds(),
		timing.ClauseBonus.Milliseconds(),
		timing.FirstWordDelay.Milliseconds(),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
