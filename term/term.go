// Package term runs a session in a terminal with tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"elfrevenge/sim"
)

// App drives a session from terminal events at a fixed tick rate
type App struct {
	screen  tcell.Screen
	session *sim.Session
	keys    *Keys
	tps     int

	view    View
	sprites []sim.Sprite
	status  bool
}

// New creates an app on an initialised screen
func New(screen tcell.Screen, session *sim.Session, tps int) *App {
	if tps <= 0 {
		tps = 60
	}
	a := &App{
		screen:  screen,
		session: session,
		keys:    NewKeys(DefaultHoldFrames * tps / 60),
		tps:     tps,
		sprites: make([]sim.Sprite, 0, 64),
	}
	a.resize()
	return a
}

func (a *App) resize() {
	cols, rows := a.screen.Size()
	cfg := a.session.World().Config()
	a.view = NewView(cols, rows, cfg.Width, cfg.Height)
}

// Run loops until a quit key, the screen closing or ctx ending
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(a.tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.handle(ev)
			if a.keys.Quit() {
				return nil
			}

		case <-ticker.C:
			a.Step()
			a.draw()
		}
	}
}

func (a *App) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.keys.Handle(ev)
		if a.keys.TakeDebug() {
			a.status = !a.status
		}
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	}
}

// Step runs one frame with the latched controls
func (a *App) Step() {
	a.session.Update(a.keys.Controls())
}

func (a *App) draw() {
	a.sprites = a.session.AppendSprites(a.sprites[:0])

	var status string
	if a.status {
		w := a.session.World()
		status = fmt.Sprintf("frame %d  enemies %d  shots %d  %s",
			a.session.Frame(), len(w.Enemies()), len(w.Projectiles()), a.session.State())
	}

	a.view.Draw(a.screen, a.sprites, a.session.Banner(a.tps), status)
	a.screen.Show()
}
