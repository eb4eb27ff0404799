package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"elfrevenge/sim"
)

// Speaker plays effects through the system audio device with beep's
// speaker. Calls are safe before Init and after Close; they do nothing.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	buffers     [sim.SoundCount]*beep.Buffer
	initialized bool
}

// NewSpeaker creates a speaker with every effect pre-rendered
func NewSpeaker() *Speaker {
	sp := &Speaker{mixer: &beep.Mixer{}}
	format := beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}
	for s := sim.Sound(0); s < sim.SoundCount; s++ {
		buf := beep.NewBuffer(format)
		buf.Append(Effect(s))
		sp.buffers[s] = buf
	}
	return sp
}

// Init opens the audio device. A failure leaves the speaker silent.
func (sp *Speaker) Init() error {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if sp.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sp.mixer)
	sp.initialized = true
	return nil
}

// Play starts s without waiting for it to finish
func (sp *Speaker) Play(s sim.Sound) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !sp.initialized || s < 0 || s >= sim.SoundCount {
		return
	}
	buf := sp.buffers[s]
	speaker.Lock()
	sp.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// Close stops playback and releases the device
func (sp *Speaker) Close() {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !sp.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sp.initialized = false
}
