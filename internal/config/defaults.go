package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			MaxStep:            0.05,
			Gravity:            70,
			JumpSpeed:          30,
			PlayerXSpeed:       7,
			CoinWobbleSpeed:    8,
			CoinWobbleDist:     0.07,
			MonsterWobbleSpeed: 8,
			MonsterWobbleDist:  2,
			RespawnX:           5,
			RespawnY:           10,
		},
		Timing: TimingConfig{
			TickRate:     60,
			MaxFrameStep: 0.1,
		},
		Display: DisplayConfig{
			CellWidth:  2,
			CellHeight: 1,
			Margin:     1.0 / 3,
		},
		Input: InputConfig{
			HoldMS: 150,
		},
		Scoring: ScoringConfig{
			CoinPoints: 10,
			LevelBonus: 50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressByLevel,
				MaxAt: 3,
			},
			Scaling: ScalingConfig{
				MonsterSpeedMultiplier: 0.5,
				MonsterDistMultiplier:  0.25,
			},
		},
	}
}
