package system

import "github.com/younwookim/gridrun/internal/domain/entity"

// Intent represents an action that the player wants to perform this frame
type Intent interface {
	isIntent()
}

// MoveIntent represents a horizontal walking intention
type MoveIntent struct {
	Direction entity.Direction
}

func (MoveIntent) isIntent() {}

// JumpIntent represents a jump intention
type JumpIntent struct{}

func (JumpIntent) isIntent() {}

// BuildIntent places a block next to the player
type BuildIntent struct {
	Direction entity.Direction
}

func (BuildIntent) isIntent() {}

// BreakIntent digs the block next to the player
type BreakIntent struct {
	Direction entity.Direction
}

func (BreakIntent) isIntent() {}

// DrawBowIntent holds the bow drawn for this frame
type DrawBowIntent struct{}

func (DrawBowIntent) isIntent() {}

// IntentsFromInput turns a frame of input into intents. Build and break aim
// up or down while those keys are held, and at the facing side otherwise.
func IntentsFromInput(input InputState, facing entity.Direction) []Intent {
	intents := make([]Intent, 0, 4)

	switch {
	case input.Left && !input.Right:
		intents = append(intents, MoveIntent{Direction: entity.DirLeft})
		facing = entity.DirLeft
	case input.Right && !input.Left:
		intents = append(intents, MoveIntent{Direction: entity.DirRight})
		facing = entity.DirRight
	}

	if input.JumpPressed {
		intents = append(intents, JumpIntent{})
	}

	aim := facing
	switch {
	case input.Up:
		aim = entity.DirUp
	case input.Down:
		aim = entity.DirDown
	}
	if input.Build {
		intents = append(intents, BuildIntent{Direction: aim})
	}
	if input.Break {
		intents = append(intents, BreakIntent{Direction: aim})
	}
	if input.Fire {
		intents = append(intents, DrawBowIntent{})
	}
	return intents
}
