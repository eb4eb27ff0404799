package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"elfrevenge/sim"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeysLatchSteering(t *testing.T) {
	k := NewKeys(3)
	k.Handle(key(tcell.KeyLeft))
	k.Handle(key(tcell.KeyUp))

	for frame := 0; frame < 3; frame++ {
		c := k.Controls()
		if !c.RotateLeft || !c.Thrust {
			t.Fatalf("frame %d: latch released early: %+v", frame, c)
		}
	}
	if c := k.Controls(); c.RotateLeft || c.Thrust {
		t.Errorf("latch should expire after 3 frames: %+v", c)
	}
}

func TestKeysRepeatExtendsLatch(t *testing.T) {
	k := NewKeys(2)
	k.Handle(key(tcell.KeyRight))
	k.Controls()
	k.Handle(key(tcell.KeyRight))
	k.Controls()
	if c := k.Controls(); !c.RotateRight {
		t.Error("a repeat event should restart the hold")
	}
}

func TestKeysOppositeCancels(t *testing.T) {
	k := NewKeys(10)
	k.Handle(key(tcell.KeyRight))
	k.Handle(key(tcell.KeyLeft))
	k.Handle(key(tcell.KeyUp))
	k.Handle(key(tcell.KeyDown))

	c := k.Controls()
	if c.RotateRight || !c.RotateLeft {
		t.Errorf("left after right should steer left only: %+v", c)
	}
	if c.Thrust || !c.Reverse {
		t.Errorf("down after up should reverse only: %+v", c)
	}
}

func TestKeysOneShots(t *testing.T) {
	k := NewKeys(0)
	k.Handle(runeKey(' '))
	k.Handle(runeKey('S'))

	if c := k.Controls(); c != (sim.Controls{Shoot: true, Restart: true}) {
		t.Errorf("Controls() = %+v, want shoot and restart", c)
	}
	if c := k.Controls(); c.Shoot || c.Restart {
		t.Errorf("one-shots should be consumed: %+v", c)
	}

	k.Handle(runeKey('s'))
	if !k.Controls().Restart {
		t.Error("lower-case s should restart")
	}
	k.Handle(runeKey('x'))
	if k.Controls() != (sim.Controls{}) {
		t.Error("unbound keys should do nothing")
	}
}

func TestKeysQuitAndDebug(t *testing.T) {
	for _, k := range []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC} {
		keys := NewKeys(0)
		keys.Handle(key(k))
		if !keys.Quit() {
			t.Errorf("%v should quit", k)
		}
	}

	keys := NewKeys(0)
	keys.Handle(key(tcell.KeyF1))
	if !keys.TakeDebug() || keys.TakeDebug() {
		t.Error("F1 should toggle debug once")
	}
	if keys.Quit() {
		t.Error("F1 should not quit")
	}
}
