package replay

import "github.com/younwookim/gridrun/internal/application/system"

// Version is written into every recording
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
	J bool `json:"j,omitempty"` // JumpPressed
	B bool `json:"b,omitempty"` // Build
	X bool `json:"x,omitempty"` // Break
	A bool `json:"a,omitempty"` // Fire
}

// NewFrameInput packs an input state for frame f
func NewFrameInput(f int, in system.InputState) FrameInput {
	return FrameInput{
		F: f,
		L: in.Left,
		R: in.Right,
		U: in.Up,
		D: in.Down,
		J: in.JumpPressed,
		B: in.Build,
		X: in.Break,
		A: in.Fire,
	}
}

// Input unpacks the recorded input state
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:        fi.L,
		Right:       fi.R,
		Up:          fi.U,
		Down:        fi.D,
		JumpPressed: fi.J,
		Build:       fi.B,
		Break:       fi.X,
		Fire:        fi.A,
	}
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     int          `json:"level"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
