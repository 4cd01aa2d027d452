// Package scene defines the Scene interface for game screens.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. The game loop delegates Update and Draw
// to the current scene and switches scenes when Update returns a new one.
type Scene interface {
	// Update advances the scene by dt seconds. It returns the next scene
	// to switch to, or nil to stay. An error ends the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is left or the game closes.
	OnExit()
}
