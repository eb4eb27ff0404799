package sim

import (
	"math"
	"math/rand"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"inside", Vec2{400, 300}, Vec2{400, 300}},
		{"past right edge", Vec2{804, 10}, Vec2{4, 10}},
		{"past left edge", Vec2{-1, 10}, Vec2{799, 10}},
		{"exactly on bound", Vec2{800, 600}, Vec2{0, 0}},
		{"below bottom", Vec2{10, 650}, Vec2{10, 50}},
		{"above top", Vec2{10, -0.5}, Vec2{10, 599.5}},
		{"several widths", Vec2{2450, -1250}, Vec2{50, 550}},
		{"tiny negative", Vec2{-1e-18, 0}, Vec2{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Wrap(800, 600)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWrapStaysInField(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		v := Vec2{X: (rng.Float64() - 0.5) * 1e5, Y: (rng.Float64() - 0.5) * 1e5}
		got := v.Wrap(800, 600)
		if got.X < 0 || got.X >= 800 || got.Y < 0 || got.Y >= 600 {
			t.Fatalf("Wrap(%v) = %v, outside the field", v, got)
		}
	}
}

func TestRotate(t *testing.T) {
	right := Up.Rotate(90)
	if math.Abs(right.X-1) > 1e-12 || math.Abs(right.Y) > 1e-12 {
		t.Errorf("Up rotated 90 degrees = %v, want (1,0)", right)
	}
	if got := right.Angle(); math.Abs(got-90) > 1e-9 {
		t.Errorf("Angle of (1,0) = %f, want 90", got)
	}

	left := Up.Rotate(-90)
	if math.Abs(left.X+1) > 1e-12 || math.Abs(left.Y) > 1e-12 {
		t.Errorf("Up rotated -90 degrees = %v, want (-1,0)", left)
	}
}

func TestDist(t *testing.T) {
	if got := (Vec2{0, 0}).Dist(Vec2{3, 4}); got != 5 {
		t.Errorf("Dist = %f, want 5", got)
	}
}
