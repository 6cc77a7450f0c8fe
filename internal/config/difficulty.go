package config

import (
	"fmt"
	"math"
)

// DifficultyPreset is a named starting point for monster behaviour.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // No progression
)

// Progression types for DifficultyConfig.Progression.Type.
const (
	ProgressByLevel = "level"
	ProgressByScore = "score"
	ProgressNone    = "none"
)

type presetTuning struct {
	initial      float64
	monsterSpeed float64 // 0 keeps the configured value
	monsterDist  float64
}

var presets = map[DifficultyPreset]presetTuning{
	DifficultyEasy:   {initial: 0, monsterSpeed: 6, monsterDist: 1.5},
	DifficultyNormal: {initial: 0.3},
	DifficultyHard:   {initial: 0.7, monsterSpeed: 10, monsterDist: 2.5},
	DifficultyFixed:  {},
}

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(s)
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
	return p, nil
}

// ApplyPreset adjusts cfg for a preset. Unknown presets leave it unchanged.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	tune, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Difficulty.Enabled = preset != DifficultyFixed
	if cfg.Difficulty.Enabled {
		cfg.Difficulty.InitialLevel = tune.initial
	}
	if tune.monsterSpeed > 0 {
		cfg.Physics.MonsterWobbleSpeed = tune.monsterSpeed
	}
	if tune.monsterDist > 0 {
		cfg.Physics.MonsterWobbleDist = tune.monsterDist
	}
}

// Difficulty turns campaign progress into a level in [0, 1] and scales
// monster movement by it.
type Difficulty struct {
	cfg DifficultyConfig
}

// NewDifficulty returns a scaler for cfg. The initial level is clamped to [0, 1].
func NewDifficulty(cfg DifficultyConfig) Difficulty {
	cfg.InitialLevel = clamp01(cfg.InitialLevel)
	return Difficulty{cfg: cfg}
}

// Progressive reports whether the level grows during a campaign.
func (d Difficulty) Progressive() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressNone
}

// Level returns the difficulty after cleared levels with the given score.
// It moves linearly from the initial level to 1 as progress reaches MaxAt.
func (d Difficulty) Level(score, cleared int) float64 {
	start := d.cfg.InitialLevel
	if !d.Progressive() {
		return start
	}

	var done int
	switch d.cfg.Progression.Type {
	case ProgressByScore:
		done = score
	case ProgressByLevel:
		done = cleared
	default:
		return start
	}

	progress := 1.0
	if d.cfg.Progression.MaxAt > 0 {
		progress = clamp01(float64(done) / float64(d.cfg.Progression.MaxAt))
	}
	return start + progress*(1-start)
}

// MonsterWobble scales a monster's wobble speed and distance for the
// current progress.
func (d Difficulty) MonsterWobble(speed, dist float64, score, cleared int) (float64, float64) {
	lvl := d.Level(score, cleared)
	return speed * (1 + lvl*d.cfg.Scaling.MonsterSpeedMultiplier),
		dist * (1 + lvl*d.cfg.Scaling.MonsterDistMultiplier)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
