package term

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"elfrevenge/sim"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

// row returns the runes of screen row y as a string
func row(screen tcell.Screen, cols, y int) string {
	var b strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestViewCell(t *testing.T) {
	v := NewView(80, 24, 800, 600)
	tests := []struct {
		p    sim.Vec2
		x, y int
	}{
		{sim.Vec2{X: 0, Y: 0}, 0, 0},
		{sim.Vec2{X: 400, Y: 300}, 40, 12},
		{sim.Vec2{X: 799.9, Y: 599.9}, 79, 23},
		{sim.Vec2{X: 9.9, Y: 24.9}, 0, 0},
		{sim.Vec2{X: 15, Y: 30}, 1, 1},
		{sim.Vec2{X: -1, Y: 600}, -1, 24},
	}
	for _, tt := range tests {
		if x, y := v.Cell(tt.p); x != tt.x || y != tt.y {
			t.Errorf("Cell(%v) = (%d,%d), want (%d,%d)", tt.p, x, y, tt.x, tt.y)
		}
	}
}

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		degrees float64
		want    rune
	}{
		{0, '↑'},
		{44, '↗'},
		{90, '→'},
		{180, '↓'},
		{-90, '←'},
		{-135, '↙'},
		{359, '↑'},
	}
	for _, tt := range tests {
		if got := ShipGlyph(sim.Up.Rotate(tt.degrees)); got != tt.want {
			t.Errorf("ShipGlyph(%v°) = %q, want %q", tt.degrees, got, tt.want)
		}
	}
}

func TestViewDrawsSprites(t *testing.T) {
	screen := newScreen(t, 80, 24)
	v := NewView(80, 24, 800, 600)

	sprites := []sim.Sprite{
		{Type: sim.SpriteEnemy, Pos: sim.Vec2{X: 105, Y: 112}, Radius: 48, Tier: sim.TierLarge, Kind: sim.KindSanta},
		{Type: sim.SpriteProjectile, Pos: sim.Vec2{X: 605, Y: 512}, Radius: 4},
		{Type: sim.SpriteShip, Pos: sim.Vec2{X: 405, Y: 312}, Radius: 24, Facing: sim.Up},
	}
	v.Draw(screen, sprites, sim.Banner{Score: "17"}, "")

	if r, _, _, _ := screen.GetContent(40, 12); r != '↑' {
		t.Errorf("ship cell = %q, want ↑", r)
	}
	if r, _, _, _ := screen.GetContent(60, 20); r != '•' {
		t.Errorf("projectile cell = %q, want •", r)
	}
	if r, _, _, _ := screen.GetContent(10, 4); r != '*' {
		t.Errorf("enemy centre = %q, want *", r)
	}
	// A large enemy spans several cells.
	if r, _, _, _ := screen.GetContent(13, 4); r != '█' {
		t.Errorf("enemy body = %q, want █", r)
	}
	if got := string([]rune(row(screen, 80, 2))[70:72]); got != "17" {
		t.Errorf("score = %q, want 17 at column 70", got)
	}
}

func TestViewBanner(t *testing.T) {
	screen := newScreen(t, 80, 24)
	v := NewView(80, 24, 800, 600)

	v.Draw(screen, nil, sim.Banner{Score: "0", Headline: sim.MessageLoss, Prompt: sim.PromptContinue}, "status")

	if got := strings.TrimSpace(row(screen, 80, 12)); got != sim.MessageLoss {
		t.Errorf("headline row = %q", got)
	}
	if got := strings.TrimSpace(row(screen, 80, 16)); got != sim.PromptContinue {
		t.Errorf("prompt row = %q", got)
	}
	if got := strings.TrimSpace(row(screen, 80, 23)); got != "status" {
		t.Errorf("status row = %q", got)
	}
}

func TestViewClipsOffscreen(t *testing.T) {
	screen := newScreen(t, 20, 10)
	v := NewView(20, 10, 800, 600)

	// An enemy straddling the corner and a projectile outside the field
	// must not panic or write outside the grid.
	v.Draw(screen, []sim.Sprite{
		{Type: sim.SpriteEnemy, Pos: sim.Vec2{X: 2, Y: 2}, Radius: 48, Kind: sim.KindGift},
		{Type: sim.SpriteProjectile, Pos: sim.Vec2{X: -30, Y: 900}, Radius: 4},
	}, sim.Banner{Score: "123456"}, "")

	if r, _, _, _ := screen.GetContent(0, 0); r != '+' {
		t.Errorf("corner = %q, want the gift centre", r)
	}
}

func TestViewOfLiveSession(t *testing.T) {
	screen := newScreen(t, 80, 24)
	s := sim.NewSession(sim.DefaultConfig(), rand.New(rand.NewSource(3)), nil, nil)
	s.Reset()

	v := NewView(80, 24, 800, 600)
	v.Draw(screen, s.AppendSprites(nil), s.Banner(60), "")

	if r, _, _, _ := screen.GetContent(40, 12); r != '↑' {
		t.Errorf("fresh ship should be drawn at the centre, got %q", r)
	}
}
