package sim

import "strconv"

const (
	bannerCycleSeconds = 20
	blinkPeriodSeconds = 1
)

// Banner is the text overlay of one frame
type Banner struct {
	// Score is always shown in the top-right corner
	Score string

	// Headline is centered on the field; empty when there is none
	Headline string

	// HighScore is true when Headline shows the high score rather than
	// the state message
	HighScore bool

	// Prompt is shown under the headline; empty while blinked off
	Prompt string
}

// Banner returns the overlay for the current frame at tps frames per
// second. While a message is set the headline alternates every ten
// seconds between the high score and the message; the continue prompt
// blinks at 1 Hz under the message.
func (s *Session) Banner(tps int) Banner {
	b := Banner{Score: strconv.Itoa(s.Score())}
	if s.message == "" {
		return b
	}
	if tps <= 0 {
		tps = 60
	}

	cycle := uint64(bannerCycleSeconds * tps)
	half := cycle / 2
	if s.frame%cycle < half {
		b.Headline = "High Score: " + strconv.Itoa(s.highScore)
		b.HighScore = true
		return b
	}

	b.Headline = s.message
	blink := uint64(blinkPeriodSeconds * tps)
	if s.frame%blink >= blink/2 {
		b.Prompt = PromptContinue
	}
	return b
}
