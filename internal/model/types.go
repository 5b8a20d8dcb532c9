// Package model defines shared data structures.
package model

import "time"

// Settings defines reader behavior for a session.
type Settings struct {
	Speed   float64 // initial speed multiplier
	BaseWPM int     // words-per-minute label at 1.0x

	CharDelay      time.Duration
	WordDelay      time.Duration
	SentenceBonus  time.Duration
	ClauseBonus    time.Duration
	FirstWordDelay time.Duration
	PollInterval   time.Duration
}

// StatsFilter limits which sessions a report covers.
type StatsFilter struct {
	Source string
	Since  *time.Time
	Last   int
}

// SessionStats captures a completed reading session.
type SessionStats struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Source     string
	WordsTotal int
	WordsRead  int
	DurationMs int64
	Speed      float64
}

// SessionAggregate summarizes a stored session for reporting.
type SessionAggregate struct {
	SessionID  int64
	EndedAt    time.Time
	Source     string
	WordsTotal int
	WordsRead  int
	DurationMs int64
	Speed      float64
}
