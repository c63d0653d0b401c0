// Package game provides the turn loop, command interpretation, and
// outcome evaluation for a single session.
package game

// State represents where a session is in its lifecycle.
type State int

const (
	// StateInit is a constructed session that has not started playing.
	StateInit State = iota
	// StatePlaying is an active session taking commands.
	StatePlaying
	// StateWon means the player reached the backyard with every item.
	StateWon
	// StateLost means the player reached the backyard short of items.
	StateLost
	// StateQuit means the player ended the session with "q".
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal returns true once the session has ended.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost || s == StateQuit
}
