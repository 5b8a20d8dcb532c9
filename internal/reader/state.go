package reader

// State describes the playback state of a Reader.
type State int

const (
	// StateIdle indicates no words are loaded.
	StateIdle State = iota
	// StatePlaying indicates the cursor is advancing.
	StatePlaying
	// StatePaused indicates playback is suspended.
	StatePaused
	// StateFinished indicates the cursor reached the end of the words.
	StateFinished
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}
