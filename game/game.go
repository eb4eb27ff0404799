package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"elfrevenge/sim"
)

// Game adapts a sim.Session to ebiten's game loop
type Game struct {
	session  *sim.Session
	input    *PlayerInput
	renderer *Renderer
	effects  *Effects
	debug    *DebugState
	watch    *FrameWatch
	config   Config
}

// NewGame creates a game on the title screen. audio and store may be
// nil for a silent session without persistence.
func NewGame(config Config, rng sim.Rand, audio sim.AudioSink, store sim.ScoreStore) (*Game, error) {
	renderer, err := NewRenderer(config.ScreenWidth, config.ScreenHeight)
	if err != nil {
		return nil, err
	}

	g := &Game{
		session:  sim.NewSession(config.Sim, rng, audio, store),
		input:    NewPlayerInput(),
		renderer: renderer,
		effects:  NewEffects(config.Sim.ShipRadius),
		debug:    &DebugState{},
		config:   config,
	}
	if config.Settings.ProfileOnDrop {
		threshold := float64(g.tps()) * 0.9
		g.watch = NewFrameWatch(NewProfiler(config.Settings.ProfilesDir), threshold, 3*time.Second)
	}
	return g, nil
}

// Session returns the running session
func (g *Game) Session() *sim.Session {
	return g.session
}

// Update runs one logical frame
func (g *Game) Update() error {
	if g.input.Quit() {
		return ebiten.Termination
	}
	if g.input.ToggleDebug() {
		g.debug.Toggle()
	}

	w := g.session.World()
	g.watch.Observe(time.Now(), ebiten.ActualTPS(), len(w.Enemies())+len(w.Projectiles()))

	controls := g.input.Controls()
	g.session.Update(controls)
	g.effects.Update(1/float64(g.tps()), w.Ship(), controls)
	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	sprites := g.renderer.Render(screen, g.session, g.tps())
	g.effects.Draw(screen)
	g.debug.Draw(screen, sprites, g.session)
}

func (g *Game) tps() int {
	if g.config.Settings.TPS <= 0 {
		return ebiten.DefaultTPS
	}
	return g.config.Settings.TPS
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
