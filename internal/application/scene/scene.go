// Package scene defines the Scene interface driven by the game loop.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. The loop calls Update once per tick and
// Draw once per frame.
type Scene interface {
	// Update advances the scene by dt seconds. A non-nil next scene replaces
	// this one. Returning ebiten.Termination ends the game cleanly; any other
	// error aborts it.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is replaced.
	OnExit()
}
