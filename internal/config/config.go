// Package config provides YAML-based game configuration loading and
// difficulty management for the platformer.
package config

import (
	"errors"
	"fmt"
)

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Timing     TimingConfig     `yaml:"timing"`
	Display    DisplayConfig    `yaml:"display"`
	Input      InputConfig      `yaml:"input"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines the simulation constants in tile units and seconds.
type PhysicsConfig struct {
	MaxStep            float64 `yaml:"max_step"`
	Gravity            float64 `yaml:"gravity"`
	JumpSpeed          float64 `yaml:"jump_speed"`
	PlayerXSpeed       float64 `yaml:"player_x_speed"`
	CoinWobbleSpeed    float64 `yaml:"coin_wobble_speed"`
	CoinWobbleDist     float64 `yaml:"coin_wobble_dist"`
	MonsterWobbleSpeed float64 `yaml:"monster_wobble_speed"`
	MonsterWobbleDist  float64 `yaml:"monster_wobble_dist"`
	RespawnX           float64 `yaml:"respawn_x"`
	RespawnY           float64 `yaml:"respawn_y"`
}

// TimingConfig defines how wall-clock time drives the simulation.
type TimingConfig struct {
	TickRate     int     `yaml:"tick_rate"`      // Frames per second
	MaxFrameStep float64 `yaml:"max_frame_step"` // Longest frame in seconds; longer gaps are clipped
}

// DisplayConfig defines how tiles map onto terminal cells.
type DisplayConfig struct {
	CellWidth  int     `yaml:"cell_width"`  // Columns per tile
	CellHeight int     `yaml:"cell_height"` // Rows per tile
	Margin     float64 `yaml:"margin"`      // Fraction of the view kept between player and edge
}

// InputConfig defines the key-hold emulation for terminals.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // How long one key press keeps an action held
}

// ScoringConfig defines points awarded during a run.
type ScoringConfig struct {
	CoinPoints int `yaml:"coin_points"`
	LevelBonus int `yaml:"level_bonus"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a campaign.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Levels cleared or score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	MonsterSpeedMultiplier float64 `yaml:"monster_speed_multiplier"` // Added to wobble speed at max difficulty
	MonsterDistMultiplier  float64 `yaml:"monster_dist_multiplier"`  // Added to wobble distance at max difficulty
}

// minMaxStep matches the simulation's own floor on sub-step length.
const minMaxStep = 1e-4

// Validate reports settings the game cannot run with. Physics constants are
// checked again when a level is built.
func (c PlatformerConfig) Validate() error {
	var errs []error
	if !(c.Physics.MaxStep >= minMaxStep) {
		errs = append(errs, fmt.Errorf("physics.max_step must be at least %v, got %v", minMaxStep, c.Physics.MaxStep))
	}
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_rate must be positive, got %d", c.Timing.TickRate))
	}
	if c.Timing.MaxFrameStep <= 0 {
		errs = append(errs, fmt.Errorf("timing.max_frame_step must be positive, got %v", c.Timing.MaxFrameStep))
	}
	if c.Display.CellWidth < 1 || c.Display.CellHeight < 1 {
		errs = append(errs, fmt.Errorf("display cell size must be at least 1x1, got %dx%d",
			c.Display.CellWidth, c.Display.CellHeight))
	}
	if c.Display.Margin < 0 || c.Display.Margin >= 0.5 {
		errs = append(errs, fmt.Errorf("display.margin must be in [0, 0.5), got %v", c.Display.Margin))
	}
	if c.Input.HoldMS < 0 {
		errs = append(errs, fmt.Errorf("input.hold_ms must not be negative, got %d", c.Input.HoldMS))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
