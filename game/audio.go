package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"elfrevenge/sim"
	"elfrevenge/sound"
)

// maxVoices caps how many copies of one effect may overlap
const maxVoices = 8

// AudioPlayer plays synthesised effects through ebiten's audio context
type AudioPlayer struct {
	ctx    *audio.Context
	bank   *sound.Bank
	voices [sim.SoundCount][]*audio.Player
}

// NewAudioPlayer opens the audio context and renders every effect. It
// must be called at most once per process.
func NewAudioPlayer() *AudioPlayer {
	return &AudioPlayer{
		ctx:  audio.NewContext(int(sound.SampleRate)),
		bank: sound.NewBank(),
	}
}

// Play starts s, reusing a finished voice when one is free
func (a *AudioPlayer) Play(s sim.Sound) {
	pcm := a.bank.PCM(s)
	if len(pcm) == 0 {
		return
	}

	for _, p := range a.voices[s] {
		if p.IsPlaying() {
			continue
		}
		if err := p.Rewind(); err != nil {
			log.Printf("Failed to rewind %s: %v", s, err)
			continue
		}
		p.Play()
		return
	}

	if len(a.voices[s]) >= maxVoices {
		return
	}
	p := a.ctx.NewPlayerFromBytes(pcm)
	a.voices[s] = append(a.voices[s], p)
	p.Play()
}
