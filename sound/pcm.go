package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"

	"elfrevenge/sim"
)

// BytesPerFrame is the size of one stereo 16-bit sample pair
const BytesPerFrame = 4

// maxRender caps how much of a streamer Render will pull
const maxRender = 5 * time.Second

// Render drains s into signed 16-bit little-endian stereo PCM, the
// layout ebiten's audio players expect
func Render(s beep.Streamer) []byte {
	limit := SampleRate.N(maxRender)
	buf := make([][2]float64, 512)
	out := make([]byte, 0, SampleRate.N(time.Second/2)*BytesPerFrame)

	for total := 0; total < limit; {
		n, ok := s.Stream(buf[:min(len(buf), limit-total)])
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// Bank holds every effect pre-rendered to PCM
type Bank struct {
	pcm [sim.SoundCount][]byte
}

// NewBank synthesises and renders all effects
func NewBank() *Bank {
	b := &Bank{}
	for s := sim.Sound(0); s < sim.SoundCount; s++ {
		b.pcm[s] = Render(Effect(s))
	}
	return b
}

// PCM returns the rendered bytes of s, or nil for an unknown sound
func (b *Bank) PCM(s sim.Sound) []byte {
	if s < 0 || s >= sim.SoundCount {
		return nil
	}
	return b.pcm[s]
}
