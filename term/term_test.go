package term

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"elfrevenge/sim"
)

func newApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := newScreen(t, 80, 24)
	s := sim.NewSession(sim.DefaultConfig(), rand.New(rand.NewSource(5)), nil, nil)
	return New(screen, s, 60), screen
}

func TestAppQuitsOnEscape(t *testing.T) {
	app, screen := newApp(t)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil on Escape", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Escape")
	}
}

func TestAppRestartKeyStartsGame(t *testing.T) {
	app, screen := newApp(t)
	screen.InjectKey(tcell.KeyRune, 's', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	if err := app.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run() = %v, want deadline exceeded", err)
	}

	if app.session.Frame() == 0 {
		t.Error("no frames ran")
	}
	if app.session.State() != sim.StatePlaying {
		t.Errorf("state = %s, want playing after S", app.session.State())
	}
}

func TestAppStepUsesLatchedKeys(t *testing.T) {
	app, _ := newApp(t)
	app.session.Reset()
	ship := app.session.World().Ship()

	app.handle(key(tcell.KeyRight))
	app.Step()
	if a := ship.Facing.Angle(); a < 2.9 || a > 3.1 {
		t.Errorf("facing after one latched right = %.2f°, want 3°", a)
	}
	app.Step()
	if a := ship.Facing.Angle(); a < 5.9 || a > 6.1 {
		t.Errorf("latch should keep turning on the next frame, got %.2f°", a)
	}
}

func TestAppDebugToggle(t *testing.T) {
	app, _ := newApp(t)
	app.handle(key(tcell.KeyF1))
	if !app.status {
		t.Fatal("F1 should show the status line")
	}
	app.draw()
	app.handle(key(tcell.KeyF1))
	if app.status {
		t.Error("second F1 should hide it")
	}
}
