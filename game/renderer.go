package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"elfrevenge/sim"
)

var (
	backgroundColor = color.RGBA{12, 18, 38, 255}
	shipColor       = color.RGBA{60, 200, 90, 255}
	shipTrimColor   = color.RGBA{230, 255, 230, 255}
	projectileColor = color.RGBA{255, 230, 80, 255}
	giftColor       = color.RGBA{70, 130, 230, 255}
	ribbonColor     = color.RGBA{240, 200, 60, 255}
	santaColor      = color.RGBA{210, 40, 40, 255}
	trimColor       = color.RGBA{245, 245, 245, 255}
	messageColor    = color.RGBA{255, 99, 71, 255} // tomato
	promptColor     = color.RGBA{255, 255, 0, 255}
	scoreColor      = color.RGBA{255, 255, 255, 255}
)

// scorePos is the top-left corner of the score text
var scorePos = sim.Vec2{X: 700, Y: 50}

// Renderer draws sprites and the HUD
type Renderer struct {
	width, height float64
	headlineFace  *text.GoTextFace
	scoreFace     *text.GoTextFace
	sprites       []sim.Sprite
}

// NewRenderer creates a renderer for a width x height screen
func NewRenderer(width, height int) (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load HUD font: %w", err)
	}
	return &Renderer{
		width:        float64(width),
		height:       float64(height),
		headlineFace: &text.GoTextFace{Source: src, Size: 48},
		scoreFace:    &text.GoTextFace{Source: src, Size: 36},
		sprites:      make([]sim.Sprite, 0, 64),
	}, nil
}

// Render draws the session's entities and HUD. The sprites it drew are
// returned for overlays; the slice is reused on the next call.
func (r *Renderer) Render(screen *ebiten.Image, s *sim.Session, tps int) []sim.Sprite {
	screen.Fill(backgroundColor)

	r.sprites = s.AppendSprites(r.sprites[:0])
	for _, sp := range r.sprites {
		r.RenderSprite(screen, sp)
	}

	r.renderBanner(screen, s.Banner(tps))
	return r.sprites
}

// RenderSprite draws a single entity
func (r *Renderer) RenderSprite(screen *ebiten.Image, sp sim.Sprite) {
	switch sp.Type {
	case sim.SpriteShip:
		drawShip(screen, sp)
	case sim.SpriteEnemy:
		if sp.Kind == sim.KindSanta {
			drawSanta(screen, sp)
		} else {
			drawGift(screen, sp)
		}
	case sim.SpriteProjectile:
		vector.DrawFilledCircle(screen, float32(sp.Pos.X), float32(sp.Pos.Y), float32(sp.Radius), projectileColor, true)
	}
}

// drawShip draws a dart pointing along the facing
func drawShip(screen *ebiten.Image, sp sim.Sprite) {
	tip := sp.Pos.Add(sp.Facing.Scale(sp.Radius))
	left := sp.Pos.Add(sp.Facing.Rotate(-140).Scale(sp.Radius))
	right := sp.Pos.Add(sp.Facing.Rotate(140).Scale(sp.Radius))
	tail := sp.Pos.Sub(sp.Facing.Scale(sp.Radius * 0.35))

	vector.DrawFilledCircle(screen, float32(sp.Pos.X), float32(sp.Pos.Y), float32(sp.Radius*0.3), shipColor, true)
	line(screen, tip, left, 3, shipColor)
	line(screen, left, tail, 3, shipColor)
	line(screen, tail, right, 3, shipColor)
	line(screen, right, tip, 3, shipColor)
	line(screen, sp.Pos, tip, 1, shipTrimColor)
}

// drawGift draws a wrapped box; smaller tiers get a thinner ribbon
func drawGift(screen *ebiten.Image, sp sim.Sprite) {
	half := sp.Radius * 0.7
	x, y := sp.Pos.X-half, sp.Pos.Y-half
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(2*half), float32(2*half), giftColor, true)

	ribbon := float32(sp.Tier) * 2
	vector.StrokeLine(screen, float32(sp.Pos.X), float32(y), float32(sp.Pos.X), float32(y+2*half), ribbon, ribbonColor, true)
	vector.StrokeLine(screen, float32(x), float32(sp.Pos.Y), float32(x+2*half), float32(sp.Pos.Y), ribbon, ribbonColor, true)
	vector.StrokeCircle(screen, float32(sp.Pos.X), float32(y), float32(half*0.3), ribbon, ribbonColor, true)
}

// drawSanta draws a round body with a trimmed hat
func drawSanta(screen *ebiten.Image, sp sim.Sprite) {
	cx, cy, rad := float32(sp.Pos.X), float32(sp.Pos.Y), float32(sp.Radius)
	vector.DrawFilledCircle(screen, cx, cy, rad*0.9, santaColor, true)
	vector.DrawFilledCircle(screen, cx, cy+rad*0.35, rad*0.45, trimColor, true)
	vector.StrokeLine(screen, cx-rad*0.6, cy-rad*0.5, cx+rad*0.6, cy-rad*0.5, rad*0.18, trimColor, true)
	vector.DrawFilledCircle(screen, cx+rad*0.55, cy-rad*0.85, rad*0.15, trimColor, true)
}

func line(screen *ebiten.Image, a, b sim.Vec2, width float32, clr color.Color) {
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
}

// renderBanner draws the score and, when set, the centered headline
// with the prompt 100 pixels below it
func (r *Renderer) renderBanner(screen *ebiten.Image, b sim.Banner) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(scorePos.X, scorePos.Y)
	op.ColorScale.ScaleWithColor(scoreColor)
	text.Draw(screen, b.Score, r.scoreFace, op)

	if b.Headline != "" {
		clr := color.Color(messageColor)
		if b.HighScore {
			clr = scoreColor
		}
		r.centered(screen, b.Headline, 0, clr)
	}
	if b.Prompt != "" {
		r.centered(screen, b.Prompt, 100, promptColor)
	}
}

func (r *Renderer) centered(screen *ebiten.Image, msg string, yOffset float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(r.width/2, r.height/2+yOffset)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, msg, r.headlineFace, op)
}
