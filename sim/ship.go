package sim

// Ship is the player-controlled elf. There is no drag: velocity only
// changes through Accelerate and Decelerate.
type Ship struct {
	Body

	// Facing is the unit vector the ship aims and thrusts along
	Facing Vec2

	acceleration     float64
	reverseRatio     float64
	turnDegrees      float64
	bulletSpeed      float64
	projectileRadius float64
}

// NewShip creates a stationary ship facing up at pos
func NewShip(cfg Config, pos Vec2) *Ship {
	return &Ship{
		Body: Body{
			Pos:    pos,
			Radius: cfg.ShipRadius,
		},
		Facing:           Up,
		acceleration:     cfg.Acceleration,
		reverseRatio:     cfg.ReverseRatio,
		turnDegrees:      cfg.TurnDegrees,
		bulletSpeed:      cfg.BulletSpeed,
		projectileRadius: cfg.ProjectileRadius,
	}
}

// Move advances the ship one tick, wrapping at the field edges
func (s *Ship) Move(w, h float64) {
	s.drift(w, h)
}

// Rotate turns the facing by one maneuver step
func (s *Ship) Rotate(clockwise bool) {
	angle := s.turnDegrees
	if !clockwise {
		angle = -angle
	}
	s.Facing = s.Facing.Rotate(angle)
}

// Accelerate applies forward thrust along the facing
func (s *Ship) Accelerate() {
	s.Vel = s.Vel.Add(s.Facing.Scale(s.acceleration))
}

// Decelerate applies the weaker rear thrusters. It pushes backwards
// relative to the facing; it does not brake towards zero velocity.
func (s *Ship) Decelerate() {
	s.Vel = s.Vel.Sub(s.Facing.Scale(s.reverseRatio * s.acceleration))
}

// Shoot returns a new projectile leaving the ship along its facing. The
// projectile inherits the ship's momentum. The caller owns placing it.
func (s *Ship) Shoot() *Projectile {
	return NewProjectile(s.Pos, s.Facing.Scale(s.bulletSpeed).Add(s.Vel), s.projectileRadius)
}
