package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"elfrevenge/sim"
)

var hitboxColor = color.RGBA{0, 255, 0, 255}

// DebugState holds the debug flags of one game; they survive restarts
type DebugState struct {
	ShowHitboxes bool // collision circles plus the counters line
}

// Toggle flips the overlay on or off
func (d *DebugState) Toggle() {
	d.ShowHitboxes = !d.ShowHitboxes
}

// Draw outlines every collision circle and prints the frame counters
func (d *DebugState) Draw(screen *ebiten.Image, sprites []sim.Sprite, s *sim.Session) {
	if !d.ShowHitboxes {
		return
	}

	for _, sp := range sprites {
		vector.StrokeCircle(screen, float32(sp.Pos.X), float32(sp.Pos.Y), float32(sp.Radius), 1, hitboxColor, true)
	}

	w := s.World()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f  FPS: %0.1f  enemies: %d  shots: %d  state: %s",
		ebiten.ActualTPS(), ebiten.ActualFPS(), len(w.Enemies()), len(w.Projectiles()), s.State()))
}
