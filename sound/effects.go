// Package sound synthesises the game's sound effects with beep, so the
// game ships without audio assets.
package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"elfrevenge/sim"
)

// SampleRate is used for every effect and for playback
const SampleRate = beep.SampleRate(48000)

// Effect durations
const (
	laserDuration         = 120 * time.Millisecond
	shipExplosionDuration = 700 * time.Millisecond
	enemyBurstDuration    = 260 * time.Millisecond
)

// sweep is a square wave gliding linearly from one frequency to another
type sweep struct {
	from, to float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

func newSweep(from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, total: rate.N(d), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		t := float64(s.position) / float64(s.total)
		freq := s.from + (s.to-s.from)*t

		val := -1.0
		if s.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise is white noise for a fixed number of samples
type noise struct {
	remaining int
}

func newNoise(d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &noise{remaining: rate.N(d)}
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	if n.remaining <= 0 {
		return 0, false
	}
	count := min(len(samples), n.remaining)
	for i := 0; i < count; i++ {
		v := rand.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	n.remaining -= count
	return count, true
}

func (n *noise) Err() error { return nil }

// decay fades a streamer out over d: a short linear attack, then an
// exponential tail
type decay struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
}

func newDecay(s beep.Streamer, d, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, attack: rate.N(attack), total: rate.N(d)}
}

func (e *decay) Stream(samples [][2]float64) (int, bool) {
	if e.position >= e.total {
		return 0, false
	}
	if left := e.total - e.position; len(samples) > left {
		samples = samples[:left]
	}
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		var vol float64
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else {
			t := float64(e.position-e.attack) / float64(e.total-e.attack)
			vol = math.Exp(-5 * t)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *decay) Err() error { return e.streamer.Err() }

// volume scales a streamer by a linear factor
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// tone returns a sine at freq limited to d. A tone the generator
// rejects (above Nyquist) becomes silence.
func tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return generators.Silence(rate.N(d))
	}
	return beep.Take(rate.N(d), sine)
}

// Effect returns a new streamer playing the sound once
func Effect(s sim.Sound) beep.Streamer {
	switch s {
	case sim.SoundLaser:
		return laser()
	case sim.SoundShipExplosion:
		return shipExplosion()
	case sim.SoundEnemyExplosion:
		return enemyExplosion()
	default:
		return generators.Silence(0)
	}
}

func laser() beep.Streamer {
	zap := newDecay(newSweep(1400, 300, laserDuration, SampleRate), laserDuration, 4*time.Millisecond, SampleRate)
	return volume(zap, 0.25)
}

func shipExplosion() beep.Streamer {
	rumble := beep.Mix(
		volume(newNoise(shipExplosionDuration, SampleRate), 0.6),
		tone(55, shipExplosionDuration, SampleRate),
	)
	boom := newDecay(beep.Take(SampleRate.N(shipExplosionDuration), rumble), shipExplosionDuration, 5*time.Millisecond, SampleRate)
	return volume(boom, 0.5)
}

func enemyExplosion() beep.Streamer {
	pop := beep.Seq(
		tone(660, 30*time.Millisecond, SampleRate),
		newNoise(enemyBurstDuration-30*time.Millisecond, SampleRate),
	)
	burst := newDecay(pop, enemyBurstDuration, 2*time.Millisecond, SampleRate)
	return volume(burst, 0.35)
}
