package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/sposa/internal/model"
)

func TestSessionMetrics(t *testing.T) {
	if got := SessionMetrics(188, 60000); got != 188 {
		t.Fatalf("wpm = %v, want 188", got)
	}
	if got := SessionMetrics(50, 30000); got != 100 {
		t.Fatalf("wpm = %v, want 100", got)
	}
	if got := SessionMetrics(10, 0); got != 0 {
		t.Fatalf("zero duration wpm = %v, want 0", got)
	}
}

func TestCompletion(t *testing.T) {
	if got := Completion(50, 100); got != 0.5 {
		t.Fatalf("completion = %v, want 0.5", got)
	}
	if got := Completion(120, 100); got != 1 {
		t.Fatalf("completion should cap at 1, got %v", got)
	}
	if got := Completion(1, 0); got != 0 {
		t.Fatalf("completion with zero total = %v", got)
	}
}

func TestMovingAverage(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	got := MovingAverage(values, 2)
	want := []float64{1, 1.5, 2.5, 3.5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("moving average = %v, want %v", got, want)
		}
	}
}

func TestSparkline(t *testing.T) {
	flat := Sparkline([]float64{5, 5, 5})
	if len(flat) != 3 {
		t.Fatalf("flat sparkline = %q", flat)
	}
	rising := Sparkline([]float64{0, 50, 100})
	if rising[0] != ' ' || rising[len(rising)-1] != '@' {
		t.Fatalf("rising sparkline = %q", rising)
	}
	if Sparkline(nil) != "" {
		t.Fatalf("empty sparkline should be empty")
	}
}

func TestRenderSummary(t *testing.T) {
	ended := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	sessions := []model.SessionAggregate{
		{EndedAt: ended, WordsTotal: 100, WordsRead: 100, DurationMs: 60000},
		{EndedAt: ended.Add(time.Hour), WordsTotal: 200, WordsRead: 50, DurationMs: 30000},
	}
	var buf bytes.Buffer
	if err := RenderSummary(&buf, sessions); err != nil {
		t.Fatalf("failed to render summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Sessions: 2 (1 finished)", "Words read: 150", "Avg WPM: 100.0", "Best WPM: 100.0"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, nil); err != nil {
		t.Fatalf("failed to render summary: %v", err)
	}
	if !strings.Contains(buf.String(), "No sessions found.") {
		t.Fatalf("unexpected empty summary: %q", buf.String())
	}
}

func TestRenderTrend(t *testing.T) {
	ended := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	sessions := []model.SessionAggregate{
		{EndedAt: ended, WordsRead: 60, DurationMs: 60000},
		{EndedAt: ended.Add(time.Hour), WordsRead: 120, DurationMs: 60000},
		{EndedAt: ended.Add(2 * time.Hour), WordsRead: 180, DurationMs: 60000},
	}
	var buf bytes.Buffer
	if err := RenderTrend(&buf, sessions, 1, 2); err != nil {
		t.Fatalf("failed to render trend: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "WPM trend: ") {
		t.Fatalf("unexpected trend output: %q", out)
	}
	if got := len(strings.TrimSuffix(strings.TrimPrefix(out, "WPM trend: "), "\n")); got != 2 {
		t.Fatalf("trend not truncated to width: %q", out)
	}
}

func TestRenderTrendTooFewSessions(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTrend(&buf, []model.SessionAggregate{{WordsRead: 10, DurationMs: 1000}}, 1, 0); err != nil {
		t.Fatalf("failed to render trend: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("single session should produce no trend, got %q", buf.String())
	}
}
