package sim

// State is the lifecycle phase of a session
type State int

const (
	// StateTitle is the screen shown before the first game
	StateTitle State = iota
	StatePlaying
	StateWon
	StateLost
)

// String returns a short name for the state
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Messages shown for each state
const (
	MessageTitle   = "Elf's Revenge"
	MessageWin     = "You Win!"
	MessageLoss    = "GAME OVER"
	PromptContinue = "Press 'S' to Continue"
)

// Controls is the player input for one frame. Shoot and Restart are
// discrete key presses; the rest are held-key states.
type Controls struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	Reverse     bool
	Shoot       bool
	Restart     bool
}

// Session runs games back to back on one world and keeps the high score
type Session struct {
	world *World
	store ScoreStore

	state     State
	message   string
	highScore int
	frame     uint64
}

// NewSession creates a session on the title screen. The high score is
// read from store once; a nil store keeps it in memory only.
func NewSession(cfg Config, rng Rand, audio AudioSink, store ScoreStore) *Session {
	if store == nil {
		store = noStore{}
	}
	return &Session{
		world:     NewWorld(cfg, rng, audio),
		store:     store,
		state:     StateTitle,
		message:   MessageTitle,
		highScore: store.ReadHighScore(),
	}
}

// World returns the session's world
func (s *Session) World() *World { return s.world }

// State returns the current lifecycle phase
func (s *Session) State() State { return s.state }

// Message returns the banner text, empty while playing
func (s *Session) Message() string { return s.message }

// Score returns the score of the current game
func (s *Session) Score() int { return s.world.Score() }

// HighScore returns the best score seen, including earlier sessions
func (s *Session) HighScore() int { return s.highScore }

// Frame returns the number of updates run so far
func (s *Session) Frame() uint64 { return s.frame }

// CanRestart reports whether a restart key press would start a new
// game: the ship is gone or no enemies are left
func (s *Session) CanRestart() bool {
	return s.world.Ship() == nil || len(s.world.Enemies()) == 0
}

// Reset starts a new game: a fresh ship at the centre and a new set of
// large enemies, with the score and message cleared
func (s *Session) Reset() {
	s.world.Reset()
	s.state = StatePlaying
	s.message = ""
}

// Update runs one frame: input events, held controls, one world step
// and any end-of-game transition
func (s *Session) Update(c Controls) {
	s.frame++

	if c.Shoot {
		s.world.Shoot()
	}
	if c.Restart && s.CanRestart() {
		s.Reset()
	}
	s.steer(c)

	res := s.world.Step()
	if s.state != StatePlaying {
		return
	}
	switch {
	case res.ShipLost:
		s.end(StateLost, MessageLoss)
	case res.Cleared:
		s.end(StateWon, MessageWin)
	}
}

func (s *Session) steer(c Controls) {
	ship := s.world.Ship()
	if ship == nil {
		return
	}
	if c.RotateRight {
		ship.Rotate(true)
	} else if c.RotateLeft {
		ship.Rotate(false)
	}
	if c.Thrust {
		ship.Accelerate()
	} else if c.Reverse {
		ship.Decelerate()
	}
}

// end records the outcome and persists the high score
func (s *Session) end(state State, message string) {
	s.state = state
	s.message = message
	s.highScore = max(s.highScore, s.world.Score())
	s.store.WriteHighScore(s.highScore)
}

// AppendSprites appends the render view of every live entity to dst
func (s *Session) AppendSprites(dst []Sprite) []Sprite {
	return s.world.AppendSprites(dst)
}
