package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the nominal duration of one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the game has ended
	Won      bool   // Whether the game ended by finishing every level
	Paused   bool   // Whether the game is paused
	Level    string // ID of the level being played
	Deaths   int    // Deaths so far in this run
}

// LevelResult describes a finished level.
type LevelResult struct {
	LevelID  string
	Coins    int
	Deaths   int
	Duration time.Duration
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State     GameState
	Completed []LevelResult // Levels finished during this tick
}
