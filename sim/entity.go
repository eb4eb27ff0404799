package sim

// Body is the shape shared by every entity: where it is, where it is
// going and how big it is for collision purposes
type Body struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
}

// Collider is anything with a collision circle
type Collider interface {
	Circle() (center Vec2, radius float64)
}

// Circle returns the collision circle of the body
func (b *Body) Circle() (Vec2, float64) {
	return b.Pos, b.Radius
}

// drift advances the body by its velocity and wraps it into the field
func (b *Body) drift(w, h float64) {
	b.Pos = b.Pos.Add(b.Vel).Wrap(w, h)
}

// CollidesWith reports whether the two circles overlap. Touching circles
// (distance exactly equal to the radius sum) do not collide.
func (b *Body) CollidesWith(other Collider) bool {
	return collides(b, other)
}

func collides(a, b Collider) bool {
	pa, ra := a.Circle()
	pb, rb := b.Circle()
	return pa.Dist(pb) < ra+rb
}
