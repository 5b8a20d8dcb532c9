package stats

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/verte-zerg/sposa/internal/model"
)

const terminalWidthBackup = 80

// TerminalWidth returns the current terminal width or a backup value when
// stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// RenderSummary prints a summary of reading sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	var totalWords int
	var totalWPM float64
	bestWPM := 0.0
	finished := 0
	for _, s := range sessions {
		wpm := SessionMetrics(s.WordsRead, s.DurationMs)
		totalWPM += wpm
		if wpm > bestWPM {
			bestWPM = wpm
		}
		totalWords += s.WordsRead
		if Completion(s.WordsRead, s.WordsTotal) >= 1 {
			finished++
		}
	}
	count := float64(len(sessions))
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Sessions: %d (%d finished)\n", len(sessions), finished); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Words read: %d\n", totalWords); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg WPM: %.1f\n", totalWPM/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best WPM: %.1f\n", bestWPM); err != nil {
		return err
	}
	return nil
}

// RenderTrend prints a WPM sparkline for the sessions, truncated to the
// given width. A width of 0 means unbounded.
func RenderTrend(w io.Writer, sessions []model.SessionAggregate, window, width int) error {
	if len(sessions) < 2 {
		return nil
	}
	values := MovingAverage(WPMSeries(sessions), window)
	if width > 0 && len(values) > width {
		values = values[len(values)-width:]
	}
	_, err := fmt.Fprintf(w, "WPM trend: %s\n", Sparkline(values))
	return err
}
