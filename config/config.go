// Package config loads the platform settings shared by the window and
// terminal front ends.
package config

import (
	"errors"
	"io/fs"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"elfrevenge/highscore"
)

// Environment variables read by Load
const (
	EnvScoresPath    = "ELF_SCORES_PATH"
	EnvMute          = "ELF_MUTE"
	EnvTPS           = "ELF_TPS"
	EnvProfileOnDrop = "ELF_PROFILE_ON_DROP"
	EnvProfilesDir   = "ELF_PROFILES_DIR"
	EnvLogPath       = "ELF_LOG_PATH"
	EnvSeed          = "ELF_SEED"
)

// Settings holds the platform configuration
type Settings struct {
	// ScoresPath is the high score file
	ScoresPath string

	// Mute disables all audio
	Mute bool

	// TPS is the number of simulation steps per second
	TPS int

	// ProfileOnDrop captures a CPU profile when the frame rate drops
	ProfileOnDrop bool

	// ProfilesDir is where captured profiles are written
	ProfilesDir string

	// LogPath redirects the log; empty keeps the default output
	LogPath string

	// Seed fixes the random source; 0 seeds from the clock
	Seed int64
}

// Default returns the settings used when nothing is configured
func Default() Settings {
	return Settings{
		ScoresPath:  highscore.DefaultPath,
		TPS:         60,
		ProfilesDir: "profiles",
	}
}

// Load returns the defaults overridden by an optional .env file and the
// process environment. Variables already set in the environment take
// precedence over the file. Malformed values are logged and ignored.
func Load(envFiles ...string) Settings {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Failed to load env file: %v", err)
	}
	return FromEnv()
}

// FromEnv applies environment overrides to the defaults
func FromEnv() Settings {
	s := Default()

	if v := os.Getenv(EnvScoresPath); v != "" {
		s.ScoresPath = v
	}
	if v := os.Getenv(EnvProfilesDir); v != "" {
		s.ProfilesDir = v
	}
	if v := os.Getenv(EnvLogPath); v != "" {
		s.LogPath = v
	}
	lookupBool(EnvMute, &s.Mute)
	lookupBool(EnvProfileOnDrop, &s.ProfileOnDrop)

	if v := os.Getenv(EnvTPS); v != "" {
		tps, err := strconv.Atoi(v)
		if err != nil || tps <= 0 {
			log.Printf("Ignoring %s=%q: want a positive integer", EnvTPS, v)
		} else {
			s.TPS = tps
		}
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("Ignoring %s=%q: %v", EnvSeed, v, err)
		} else {
			s.Seed = seed
		}
	}
	return s
}

func lookupBool(key string, dst *bool) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, v, err)
		return
	}
	*dst = b
}

// NewRand returns the simulation's random source, seeded from Seed or
// from the clock when Seed is 0
func (s Settings) NewRand() *rand.Rand {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// OpenLog returns where log output should go while a full-screen front
// end owns the terminal: the LogPath file, or io.Discard when unset.
// The returned close function is never nil.
func (s Settings) OpenLog() (io.Writer, func() error, error) {
	if s.LogPath == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(s.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() error { return nil }, err
	}
	return f, f.Close, nil
}
