package entity

// MotionState is the vertical kinematic state of an actor
type MotionState int

const (
	MotionIdle MotionState = iota
	MotionJump
	MotionFall
)

// String returns the string representation of the motion state
func (s MotionState) String() string {
	switch s {
	case MotionIdle:
		return "Idle"
	case MotionJump:
		return "Jump"
	case MotionFall:
		return "Fall"
	default:
		return "Unknown"
	}
}

// Kinematics is the component every physics-enabled actor owns
type Kinematics struct {
	Position  GridPosition
	State     MotionState
	JumpCount int

	// Vertical velocity in world units per second, positive is up
	Velocity float64
}

// SetState switches motion state. Entering Idle or Fall discards any
// residual velocity so each fall starts from rest.
func (k *Kinematics) SetState(state MotionState) {
	k.State = state
	if state != MotionJump {
		k.Velocity = 0
	}
}
