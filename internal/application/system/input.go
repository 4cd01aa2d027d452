package system

// InputState holds one frame of player input. Fire is held while the bow
// is being drawn; the arrow leaves on the first frame it is released.
type InputState struct {
	Left        bool
	Right       bool
	Up          bool
	Down        bool
	JumpPressed bool
	Build       bool
	Break       bool
	Fire        bool
}

// IsZero reports whether nothing is pressed
func (s InputState) IsZero() bool {
	return s == InputState{}
}
