// Package state holds the lifecycle states of a level run.
package state

// GameState represents the current state of the game
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateStageClear
	StateGameOver
	StateComplete
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateStageClear:
		return "StageClear"
	case StateGameOver:
		return "GameOver"
	case StateComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// IsOver reports whether the run has ended for good
func (s GameState) IsOver() bool {
	return s == StateGameOver || s == StateComplete
}
