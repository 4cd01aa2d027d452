package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/gridrun/internal/application/system"
)

// KeyboardInput reads the keyboard through ebiten
type KeyboardInput struct{}

// NewKeyboardInput creates a new keyboard input source
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// GetInput reads the current input state
func (k *KeyboardInput) GetInput() system.InputState {
	return system.InputState{
		Left:        ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:       ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:          ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:        ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Build:       inpututil.IsKeyJustPressed(ebiten.KeyJ),
		Break:       ebiten.IsKeyPressed(ebiten.KeyK),
		Fire:        ebiten.IsKeyPressed(ebiten.KeyL),
	}
}
