package game

import (
	"elfrevenge/config"
	"elfrevenge/sim"
)

// Config holds the window and simulation configuration
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// Sim is the gameplay tuning; the field matches the screen
	Sim sim.Config

	// Settings are the platform settings loaded from the environment
	Settings config.Settings
}

// DefaultConfig returns the 800x600 arcade setup with default settings
func DefaultConfig() Config {
	return NewConfig(config.Default())
}

// NewConfig builds a window config around loaded settings
func NewConfig(settings config.Settings) Config {
	simCfg := sim.DefaultConfig()
	return Config{
		ScreenWidth:  int(simCfg.Width),
		ScreenHeight: int(simCfg.Height),
		Sim:          simCfg,
		Settings:     settings,
	}
}
