package sim

// Config holds the gameplay tuning for a session
type Config struct {
	// Width and Height are the field dimensions; positions wrap inside them
	Width, Height float64

	// EnemyCount is the number of large enemies spawned on reset
	EnemyCount int

	// MinSpawnDistance is how far from the ship spawn an enemy must be placed
	MinSpawnDistance float64

	// Ship tuning
	ShipRadius   float64
	Acceleration float64 // forward thrust per tick
	ReverseRatio float64 // reverse thrust as a fraction of Acceleration
	TurnDegrees  float64 // rotation per input tick
	BulletSpeed  float64

	// ProjectileRadius is the collision radius of a projectile
	ProjectileRadius float64

	// EnemyBaseRadius is the radius of a tier 3 enemy; smaller tiers scale it down
	EnemyBaseRadius float64

	// Enemy speed range, inclusive, in whole units per tick
	EnemyMinSpeed, EnemyMaxSpeed int
}

// DefaultConfig returns the classic 800x600 arcade tuning
func DefaultConfig() Config {
	return Config{
		Width:            800,
		Height:           600,
		EnemyCount:       6,
		MinSpawnDistance: 250,
		ShipRadius:       24,
		Acceleration:     0.15,
		ReverseRatio:     0.35,
		TurnDegrees:      3,
		BulletSpeed:      3,
		ProjectileRadius: 4,
		EnemyBaseRadius:  48,
		EnemyMinSpeed:    1,
		EnemyMaxSpeed:    3,
	}
}

// Center returns the middle of the field, where the ship spawns
func (c Config) Center() Vec2 {
	return Vec2{X: c.Width / 2, Y: c.Height / 2}
}

// InBounds reports whether p lies inside [0,Width) x [0,Height)
func (c Config) InBounds(p Vec2) bool {
	return p.X >= 0 && p.X < c.Width && p.Y >= 0 && p.Y < c.Height
}
