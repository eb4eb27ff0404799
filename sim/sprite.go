package sim

// SpriteType says which kind of entity a Sprite describes
type SpriteType int

const (
	SpriteShip SpriteType = iota
	SpriteEnemy
	SpriteProjectile
)

// Sprite is the render view of one live entity
type Sprite struct {
	Type   SpriteType
	Pos    Vec2
	Radius float64

	// Facing is set for the ship only
	Facing Vec2

	// Tier and Kind are set for enemies only
	Tier Tier
	Kind EnemyKind
}

// AppendSprites appends a Sprite for every live entity to dst and
// returns the extended slice. Enemies come first, then projectiles,
// then the ship, so the ship is drawn on top.
func (w *World) AppendSprites(dst []Sprite) []Sprite {
	for _, e := range w.enemies {
		dst = append(dst, Sprite{
			Type:   SpriteEnemy,
			Pos:    e.Pos,
			Radius: e.Radius,
			Tier:   e.Tier,
			Kind:   e.Kind,
		})
	}
	for _, p := range w.projectiles {
		dst = append(dst, Sprite{
			Type:   SpriteProjectile,
			Pos:    p.Pos,
			Radius: p.Radius,
		})
	}
	if w.ship != nil {
		dst = append(dst, Sprite{
			Type:   SpriteShip,
			Pos:    w.ship.Pos,
			Radius: w.ship.Radius,
			Facing: w.ship.Facing,
		})
	}
	return dst
}
