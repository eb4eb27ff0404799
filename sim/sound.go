package sim

// Sound is a symbolic sound-effect tag. Playback is up to the platform.
type Sound int

const (
	SoundLaser Sound = iota
	SoundShipExplosion
	SoundEnemyExplosion
	SoundCount
)

// String returns the asset name of the sound
func (s Sound) String() string {
	switch s {
	case SoundLaser:
		return "laser"
	case SoundShipExplosion:
		return "explosion1"
	case SoundEnemyExplosion:
		return "explosion2"
	default:
		return "unknown"
	}
}

// AudioSink plays sound effects. Play must not block the frame.
type AudioSink interface {
	Play(Sound)
}

// ScoreStore persists the high score between sessions. Failures are the
// store's to report; ReadHighScore falls back to 0.
type ScoreStore interface {
	ReadHighScore() int
	WriteHighScore(score int)
}

type silent struct{}

func (silent) Play(Sound) {}

type noStore struct{}

func (noStore) ReadHighScore() int   { return 0 }
func (noStore) WriteHighScore(_ int) {}
