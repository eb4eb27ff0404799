package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"elfrevenge/sim"
)

var (
	styleShip       = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleGift       = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue)
	styleRibbon     = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleSanta      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleTrim       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleScore      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleMessage    = tcell.StyleDefault.Foreground(tcell.ColorTomato).Bold(true)
	stylePrompt     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// shipArrows are indexed by facing in 45 degree steps clockwise from up
var shipArrows = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// scoreAt is where the score starts in field coordinates
var scoreAt = sim.Vec2{X: 700, Y: 50}

// promptOffset is the distance below the headline, in field units
const promptOffset = 100

// View maps the field onto a grid of terminal cells
type View struct {
	cols, rows int
	width      float64
	height     float64
}

// NewView creates a view of a width x height field on cols x rows cells
func NewView(cols, rows int, width, height float64) View {
	return View{cols: max(cols, 1), rows: max(rows, 1), width: width, height: height}
}

// Cell returns the cell containing field point p. Points outside the
// field map outside the grid.
func (v View) Cell(p sim.Vec2) (x, y int) {
	x = int(math.Floor(p.X / v.width * float64(v.cols)))
	y = int(math.Floor(p.Y / v.height * float64(v.rows)))
	return x, y
}

// center returns the field point at the middle of cell (x, y)
func (v View) center(x, y int) sim.Vec2 {
	return sim.Vec2{
		X: (float64(x) + 0.5) * v.width / float64(v.cols),
		Y: (float64(y) + 0.5) * v.height / float64(v.rows),
	}
}

func (v View) inside(x, y int) bool {
	return x >= 0 && x < v.cols && y >= 0 && y < v.rows
}

// Draw clears the screen and paints sprites, the banner and an
// optional status line. The caller shows the screen.
func (v View) Draw(screen tcell.Screen, sprites []sim.Sprite, b sim.Banner, status string) {
	screen.Clear()

	for _, sp := range sprites {
		switch sp.Type {
		case sim.SpriteEnemy:
			v.drawEnemy(screen, sp)
		case sim.SpriteProjectile:
			v.put(screen, sp.Pos, '•', styleProjectile)
		case sim.SpriteShip:
			v.put(screen, sp.Pos, ShipGlyph(sp.Facing), styleShip)
		}
	}

	x, y := v.Cell(scoreAt)
	v.text(screen, x, y, b.Score, styleScore)

	mid := v.rows / 2
	if b.Headline != "" {
		style := styleMessage
		if b.HighScore {
			style = styleScore
		}
		v.centered(screen, mid, b.Headline, style)
	}
	if b.Prompt != "" {
		_, below := v.Cell(sim.Vec2{Y: v.height/2 + promptOffset})
		v.centered(screen, max(below, mid+1), b.Prompt, stylePrompt)
	}
	if status != "" {
		v.text(screen, 0, v.rows-1, status, styleStatus)
	}
}

// ShipGlyph returns the arrow nearest to facing
func ShipGlyph(facing sim.Vec2) rune {
	i := int(math.Round(facing.Angle()/45)) % 8
	if i < 0 {
		i += 8
	}
	return shipArrows[i]
}

// drawEnemy fills every cell whose centre lies inside the enemy's
// circle, plus the cell under its centre
func (v View) drawEnemy(screen tcell.Screen, sp sim.Sprite) {
	fill, mark := '▒', '+'
	body, trim := styleGift, styleRibbon
	if sp.Kind == sim.KindSanta {
		fill, mark = '█', '*'
		body, trim = styleSanta, styleTrim
	}

	r := sim.Vec2{X: sp.Radius, Y: sp.Radius}
	x0, y0 := v.Cell(sp.Pos.Sub(r))
	x1, y1 := v.Cell(sp.Pos.Add(r))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if v.inside(x, y) && v.center(x, y).Dist(sp.Pos) <= sp.Radius {
				screen.SetContent(x, y, fill, nil, body)
			}
		}
	}
	v.put(screen, sp.Pos, mark, trim)
}

func (v View) put(screen tcell.Screen, p sim.Vec2, r rune, style tcell.Style) {
	x, y := v.Cell(p)
	if v.inside(x, y) {
		screen.SetContent(x, y, r, nil, style)
	}
}

func (v View) text(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if v.inside(x, y) {
			screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

func (v View) centered(screen tcell.Screen, y int, s string, style tcell.Style) {
	n := len([]rune(s))
	v.text(screen, (v.cols-n)/2, y, s, style)
}
