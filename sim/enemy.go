package sim

// Tier is the size class of an enemy
type Tier int

const (
	TierSmall  Tier = 1
	TierMedium Tier = 2
	TierLarge  Tier = 3
)

// Scale returns the radius multiplier for the tier
func (t Tier) Scale() float64 {
	switch t {
	case TierLarge:
		return 1
	case TierMedium:
		return 0.5
	case TierSmall:
		return 0.25
	default:
		return 1
	}
}

// EnemyKind picks the enemy's look. It has no gameplay effect.
type EnemyKind int

const (
	KindGift EnemyKind = iota
	KindSanta
	kindCount
)

// String returns the sprite name of the kind
func (k EnemyKind) String() string {
	switch k {
	case KindGift:
		return "gift"
	case KindSanta:
		return "santa"
	default:
		return "unknown"
	}
}

// Rand is the source of randomness the simulation draws from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Enemy drifts across the field and splits when shot
type Enemy struct {
	Body

	Tier Tier
	Kind EnemyKind

	baseRadius         float64
	minSpeed, maxSpeed int
}

// NewEnemy creates an enemy of the given tier at pos with a random kind
// and a random velocity
func NewEnemy(cfg Config, rng Rand, pos Vec2, tier Tier) *Enemy {
	return &Enemy{
		Body: Body{
			Pos:    pos,
			Vel:    randomVelocity(rng, cfg.EnemyMinSpeed, cfg.EnemyMaxSpeed),
			Radius: cfg.EnemyBaseRadius * tier.Scale(),
		},
		Tier:       tier,
		Kind:       EnemyKind(rng.Intn(int(kindCount))),
		baseRadius: cfg.EnemyBaseRadius,
		minSpeed:   cfg.EnemyMinSpeed,
		maxSpeed:   cfg.EnemyMaxSpeed,
	}
}

// Move advances the enemy one tick, wrapping at the field edges
func (e *Enemy) Move(w, h float64) {
	e.drift(w, h)
}

// Split returns the fragments left behind when the enemy is destroyed:
// two enemies one tier smaller at the same position, or none for the
// smallest tier. Each fragment gets its own random velocity. The enemy
// does not remove itself from the world.
func (e *Enemy) Split(rng Rand) []*Enemy {
	if e.Tier <= TierSmall {
		return nil
	}
	cfg := Config{
		EnemyBaseRadius: e.baseRadius,
		EnemyMinSpeed:   e.minSpeed,
		EnemyMaxSpeed:   e.maxSpeed,
	}
	children := make([]*Enemy, 0, 2)
	for i := 0; i < 2; i++ {
		children = append(children, NewEnemy(cfg, rng, e.Pos, e.Tier-1))
	}
	return children
}

// randomVelocity returns a velocity with a whole-degree heading in
// [0,360) and a whole speed in [minSpeed,maxSpeed]
func randomVelocity(rng Rand, minSpeed, maxSpeed int) Vec2 {
	speed := minSpeed
	if maxSpeed > minSpeed {
		speed += rng.Intn(maxSpeed - minSpeed + 1)
	}
	angle := rng.Intn(360)
	return Vec2{X: float64(speed)}.Rotate(float64(angle))
}
