package sim

// Projectile travels in a straight line and never wraps. The world
// removes it once it leaves the field or hits an enemy.
type Projectile struct {
	Body
}

// NewProjectile creates a projectile at pos moving with vel
func NewProjectile(pos, vel Vec2, radius float64) *Projectile {
	return &Projectile{Body: Body{Pos: pos, Vel: vel, Radius: radius}}
}

// Move advances the projectile one tick. The bounds are ignored.
func (p *Projectile) Move(_, _ float64) {
	p.Pos = p.Pos.Add(p.Vel)
}
