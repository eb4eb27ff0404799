package term

import (
	"github.com/gdamore/tcell/v2"

	"elfrevenge/sim"
)

// DefaultHoldFrames covers the usual terminal key-repeat delay at 60 TPS
const DefaultHoldFrames = 18

type heldKey int

const (
	heldLeft heldKey = iota
	heldRight
	heldUp
	heldDown
	heldCount
)

// Keys turns terminal key events into per-frame controls. Terminals
// report presses and auto-repeats but no releases, so a steering key
// counts as held for a number of frames after its last event.
type Keys struct {
	holdFrames int
	held       [heldCount]int

	shoot   bool
	restart bool
	quit    bool
	debug   bool
}

// NewKeys creates a latch holding steering keys for holdFrames frames
func NewKeys(holdFrames int) *Keys {
	if holdFrames <= 0 {
		holdFrames = DefaultHoldFrames
	}
	return &Keys{holdFrames: holdFrames}
}

// Handle records one key event
func (k *Keys) Handle(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyF1:
		k.debug = true
	case tcell.KeyLeft:
		k.hold(heldLeft)
	case tcell.KeyRight:
		k.hold(heldRight)
	case tcell.KeyUp:
		k.hold(heldUp)
	case tcell.KeyDown:
		k.hold(heldDown)
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			k.shoot = true
		case 's', 'S':
			k.restart = true
		}
	}
}

func (k *Keys) hold(h heldKey) {
	k.held[h] = k.holdFrames
	// Opposite directions cancel the latch so a quick reversal is not
	// blocked by the priority rules.
	switch h {
	case heldLeft:
		k.held[heldRight] = 0
	case heldRight:
		k.held[heldLeft] = 0
	case heldUp:
		k.held[heldDown] = 0
	case heldDown:
		k.held[heldUp] = 0
	}
}

// Controls returns the controls for the next frame, consumes the
// one-shot presses and ages the steering latches
func (k *Keys) Controls() sim.Controls {
	c := sim.Controls{
		RotateLeft:  k.held[heldLeft] > 0,
		RotateRight: k.held[heldRight] > 0,
		Thrust:      k.held[heldUp] > 0,
		Reverse:     k.held[heldDown] > 0,
		Shoot:       k.shoot,
		Restart:     k.restart,
	}
	for i := range k.held {
		if k.held[i] > 0 {
			k.held[i]--
		}
	}
	k.shoot, k.restart = false, false
	return c
}

// Quit reports whether a quit key was pressed
func (k *Keys) Quit() bool {
	return k.quit
}

// TakeDebug reports and clears a pending debug toggle
func (k *Keys) TakeDebug() bool {
	d := k.debug
	k.debug = false
	return d
}
