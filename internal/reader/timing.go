package reader

import "time"

// Timing holds the delay constants driving playback. All delays are divided
// by the current speed multiplier before use.
type Timing struct {
	// CharDelay is the wait between character reveals in the typing phase.
	CharDelay time.Duration
	// WordDelay is the base settle delay after a word is fully revealed.
	WordDelay time.Duration
	// SentenceBonus is added when the word ends in one of ". : ! ?".
	SentenceBonus time.Duration
	// ClauseBonus is added when the word ends in one of ", ;".
	ClauseBonus time.Duration
	// FirstWordDelay replaces the settle delay for the very first word.
	FirstWordDelay time.Duration
	// PollInterval is the re-check cadence while paused or finished.
	PollInterval time.Duration
}

// DefaultTiming returns the canonical delay set.
func DefaultTiming() Timing {
	return Timing{
		CharDelay:      31 * time.Millisecond,
		WordDelay:      318 * time.Millisecond,
		SentenceBonus:  360 * time.Millisecond,
		ClauseBonus:    320 * time.Millisecond,
		FirstWordDelay: time.Second,
		PollInterval:   100 * time.Millisecond,
	}
}
