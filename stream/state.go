package stream

// State is the lifecycle phase of a Stream.
//
// Ready accepts writes. ClosePending is entered by Close while data or
// asynchronous writes are still outstanding; it accepts reads only.
// Closed and Errored are terminal: once entered, the state never
// changes again.
type State int

const (
	// Ready accepts both reads and writes.
	Ready State = iota
	// ClosePending means close was requested but buffered data or
	// in-flight asynchronous writes remain.
	ClosePending
	// Closed is the orderly terminal state.
	Closed
	// Errored is the failure terminal state; Err holds the cause.
	Errored
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case ClosePending:
		return "close_pending"
	case Closed:
		return "closed"
	case Errored:
		return "errored"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state admits no further transitions.
func (s State) Terminal() bool {
	return s == Closed || s == Errored
}
