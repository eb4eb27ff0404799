package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"elfrevenge/sim"
)

// PlayerInput turns keyboard state into per-frame controls
type PlayerInput struct {
	quitKeys []ebiten.Key
}

// NewPlayerInput creates a new keyboard input source
func NewPlayerInput() *PlayerInput {
	return &PlayerInput{
		quitKeys: []ebiten.Key{ebiten.KeyEscape},
	}
}

// Controls returns the controls for this frame. Space and S only count
// on the frame they go down; the arrows count while held.
func (p *PlayerInput) Controls() sim.Controls {
	return sim.Controls{
		RotateLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		RotateRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Thrust:      ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Reverse:     ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Shoot:       inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Restart:     inpututil.IsKeyJustPressed(ebiten.KeyS),
	}
}

// Quit returns true when a quit key goes down
func (p *PlayerInput) Quit() bool {
	for _, k := range p.quitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// ToggleDebug returns true when F1 goes down
func (p *PlayerInput) ToggleDebug() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF1)
}
