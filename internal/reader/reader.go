// Package reader implements the RSVP playback state machine.
//
// The Reader is scheduler-agnostic: it never sleeps and owns no timers.
// Each call to Next performs one unit of work (reveal a character, settle a
// word, or re-check while paused) and returns the frame to display together
// with the delay before the next call. The presentation layer turns that
// delay into whatever one-shot timer primitive it has.
package reader

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/sposa/internal/orp"
)

// Speed multiplier bounds and step size.
const (
	MinSpeed  = 0.1
	MaxSpeed  = 2.8
	SpeedStep = 0.1
)

// delayTerminals earn the sentence bonus on the settle delay; clauseMarks
// earn the clause bonus. The delay set includes the colon, unlike the
// navigation set in sentence.go.
const (
	delayTerminals = ".:!?"
	clauseMarks    = ",;"
)

// Frame is the renderable projection of the playback state.
type Frame struct {
	Word       orp.Word // revealed portion of the current word, ORP-split
	Typing     bool     // word is still being revealed
	Index      int      // playback cursor, len(words) means finished
	Total      int
	SpeedLabel string
}

// Reader owns the playback cursor, pause flag, and speed multiplier. It is
// not safe for concurrent use; all mutation happens on the event loop.
type Reader struct {
	words   []string
	timing  Timing
	baseWPM int

	index    int // cursor in [0, len(words)]
	revealed int // runes of the current word shown so far
	maxIndex int // furthest cursor position reached
	paused   bool
	speed    float64

	frame Frame
}

// New constructs a Reader over an immutable word sequence. The reader starts
// paused; an explicit resume begins playback. An empty sequence is legal and
// leaves the reader idle.
func New(words []string, timing Timing, speed float64, baseWPM int) *Reader {
	r := &Reader{
		words:   words,
		timing:  timing,
		baseWPM: baseWPM,
		paused:  true,
		speed:   clampSpeed(speed),
	}
	if len(words) > 0 {
		r.frame = r.previewFrame()
	}
	return r
}

// Next performs one scheduled unit of work and returns the display frame
// plus the delay until the next call. While paused or finished it re-polls
// at the timing's PollInterval without touching reveal progress, so a pause
// toggled mid-word never skips or repeats a character.
func (r *Reader) Next() (Frame, time.Duration) {
	if len(r.words) == 0 {
		return r.refresh(), r.timing.PollInterval
	}
	if r.paused {
		return r.refresh(), r.timing.PollInterval
	}
	if r.index >= len(r.words) {
		r.paused = true
		return r.refresh(), r.timing.PollInterval
	}

	word := r.words[r.index]
	runes := []rune(word)
	if r.revealed < len(runes) {
		r.revealed++
		r.frame = Frame{
			Word:   orp.Split(string(runes[:r.revealed])),
			Typing: true,
			Index:  r.index,
		}
		return r.refresh(), r.scaled(r.timing.CharDelay)
	}

	// Settle phase: the full word stays on screen for the settle delay,
	// then the cursor has already moved on.
	delay := r.settleDelay(word)
	r.index++
	if r.index > r.maxIndex {
		r.maxIndex = r.index
	}
	r.revealed = 0
	r.frame = Frame{
		Word:  orp.Split(word),
		Index: r.index,
	}
	return r.refresh(), r.scaled(delay)
}

// TogglePause flips the pause flag. At or past the end it instead resets the
// cursor to the start and resumes, giving restart semantics.
func (r *Reader) TogglePause() {
	if len(r.words) == 0 {
		return
	}
	if r.index >= len(r.words) {
		r.index = 0
		r.revealed = 0
		r.paused = false
		r.frame = r.previewFrame()
		return
	}
	r.paused = !r.paused
}

// IncreaseSpeed raises the speed multiplier by one step, up to MaxSpeed.
func (r *Reader) IncreaseSpeed() {
	r.speed = clampSpeed(r.speed + SpeedStep)
}

// DecreaseSpeed lowers the speed multiplier by one step, down to MinSpeed.
func (r *Reader) DecreaseSpeed() {
	r.speed = clampSpeed(r.speed - SpeedStep)
}

// Seek moves the cursor, clamped to [0, len(words)], and resets reveal
// progress so the target word types from its first character.
func (r *Reader) Seek(index int) {
	if len(r.words) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(r.words) {
		index = len(r.words)
	}
	r.index = index
	r.revealed = 0
	r.frame = r.previewFrame()
}

// JumpToPreviousSentence moves to the start of the current sentence, or to
// the start of the preceding sentence when the cursor already sits on a
// sentence start, like "previous track" on a media player.
func (r *Reader) JumpToPreviousSentence() {
	if len(r.words) == 0 {
		return
	}
	start := PreviousSentenceStart(r.words, r.index)
	if r.index == start && start > 0 {
		start = PreviousSentenceStart(r.words, start-1)
	}
	r.Seek(start)
}

// JumpToNextSentence moves to the start of the next sentence.
func (r *Reader) JumpToNextSentence() {
	if len(r.words) == 0 {
		return
	}
	r.Seek(NextSentenceStart(r.words, r.index))
}

// State derives the playback state.
func (r *Reader) State() State {
	switch {
	case len(r.words) == 0:
		return StateIdle
	case r.index >= len(r.words):
		return StateFinished
	case r.paused:
		return StatePaused
	default:
		return StatePlaying
	}
}

// Index returns the playback cursor.
func (r *Reader) Index() int {
	return r.index
}

// Len returns the number of words loaded.
func (r *Reader) Len() int {
	return len(r.words)
}

// Paused reports whether playback is suspended.
func (r *Reader) Paused() bool {
	return r.paused
}

// Speed returns the current speed multiplier.
func (r *Reader) Speed() float64 {
	return r.speed
}

// WordsRead returns the furthest cursor position reached, used for session
// accounting. Jumping backward does not reduce it.
func (r *Reader) WordsRead() int {
	return r.maxIndex
}

// Frame returns the current display frame without performing work.
func (r *Reader) Frame() Frame {
	return r.refresh()
}

// PollInterval exposes the paused re-check cadence for the scheduler.
func (r *Reader) PollInterval() time.Duration {
	return r.timing.PollInterval
}

// SpeedLabel formats the multiplier with its effective words-per-minute.
func (r *Reader) SpeedLabel() string {
	return fmt.Sprintf("%.1fx (%d wpm)", r.speed, int(float64(r.baseWPM)*r.speed))
}

// refresh stamps the volatile fields onto the stored frame so paused frames
// still reflect speed changes made since the last unit of work.
func (r *Reader) refresh() Frame {
	r.frame.Total = len(r.words)
	r.frame.SpeedLabel = r.SpeedLabel()
	if r.frame.Index > len(r.words) {
		r.frame.Index = len(r.words)
	}
	return r.frame
}

// previewFrame shows the full word under the cursor without typing effects,
// used when the cursor moves while playback is not running.
func (r *Reader) previewFrame() Frame {
	idx := r.index
	if idx > len(r.words)-1 {
		idx = len(r.words) - 1
	}
	return Frame{
		Word:  orp.Split(r.words[idx]),
		Index: r.index,
	}
}

func (r *Reader) settleDelay(word string) time.Duration {
	// The very first word of the session gets a fixed long delay so the
	// reader has a beat to focus before the stream starts.
	if r.index == 0 {
		return r.timing.FirstWordDelay
	}
	delay := r.timing.WordDelay
	runes := []rune(word)
	if len(runes) == 0 {
		return delay
	}
	last := runes[len(runes)-1]
	switch {
	case strings.ContainsRune(delayTerminals, last):
		delay += r.timing.SentenceBonus
	case strings.ContainsRune(clauseMarks, last):
		delay += r.timing.ClauseBonus
	}
	return delay
}

func (r *Reader) scaled(d time.Duration) time.Duration {
	return time.Duration(float64(d) / r.speed)
}

func clampSpeed(v float64) float64 {
	v = math.Round(v*10) / 10
	if v > MaxSpeed {
		return MaxSpeed
	}
	if v < MinSpeed {
		return MinSpeed
	}
	return v
}
