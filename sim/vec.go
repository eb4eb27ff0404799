package sim

import "math"

// Vec2 is a 2D vector in field coordinates (y grows downwards)
type Vec2 struct {
	X, Y float64
}

// Up is the initial facing of a new ship
var Up = Vec2{X: 0, Y: -1}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Len returns the magnitude of v
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Rotate turns v by the given angle in degrees. On a y-down screen a
// positive angle turns clockwise.
func (v Vec2) Rotate(degrees float64) Vec2 {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle returns the clockwise angle in degrees from Up to v
func (v Vec2) Angle() float64 {
	return math.Atan2(v.X, -v.Y) * 180 / math.Pi
}

// Wrap maps each axis into [0,w) x [0,h) modulo the bound
func (v Vec2) Wrap(w, h float64) Vec2 {
	return Vec2{X: wrapAxis(v.X, w), Y: wrapAxis(v.Y, h)}
}

func wrapAxis(x, bound float64) float64 {
	if bound <= 0 {
		return x
	}
	x = math.Mod(x, bound)
	if x < 0 {
		x += bound
	}
	// Adding the bound to a tiny negative remainder can round up to it.
	if x >= bound {
		x = 0
	}
	return x
}
