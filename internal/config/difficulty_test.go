package config

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name    string
		cfg     DifficultyConfig
		score   int
		cleared int
		want    float64
	}{
		{
			name:    "by level start",
			cfg:     DifficultyConfig{Enabled: true, InitialLevel: 0.2, Progression: ProgressionConfig{Type: ProgressByLevel, MaxAt: 4}},
			cleared: 0,
			want:    0.2,
		},
		{
			name:    "by level halfway",
			cfg:     DifficultyConfig{Enabled: true, InitialLevel: 0.2, Progression: ProgressionConfig{Type: ProgressByLevel, MaxAt: 4}},
			cleared: 2,
			want:    0.6,
		},
		{
			name:    "by level past max",
			cfg:     DifficultyConfig{Enabled: true, InitialLevel: 0.2, Progression: ProgressionConfig{Type: ProgressByLevel, MaxAt: 4}},
			cleared: 10,
			want:    1,
		},
		{
			name:  "by score",
			cfg:   DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: ProgressByScore, MaxAt: 100}},
			score: 50,
			want:  0.5,
		},
		{
			name:    "zero max_at",
			cfg:     DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: ProgressByLevel}},
			cleared: 1,
			want:    1,
		},
		{
			name:    "progression none",
			cfg:     DifficultyConfig{Enabled: true, InitialLevel: 0.3, Progression: ProgressionConfig{Type: ProgressNone, MaxAt: 1}},
			score:   1000,
			cleared: 1000,
			want:    0.3,
		},
		{
			name:    "disabled",
			cfg:     DifficultyConfig{InitialLevel: 0.4, Progression: ProgressionConfig{Type: ProgressByLevel, MaxAt: 1}},
			cleared: 5,
			want:    0.4,
		},
		{
			name: "initial clamped",
			cfg:  DifficultyConfig{InitialLevel: 2},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewDifficulty(tt.cfg).Level(tt.score, tt.cleared); !near(got, tt.want) {
				t.Errorf("Level(%d, %d) = %f, expected %f", tt.score, tt.cleared, got, tt.want)
			}
		})
	}
}

func TestDifficultyMonsterWobble(t *testing.T) {
	d := NewDifficulty(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: ProgressByLevel, MaxAt: 4},
		Scaling:     ScalingConfig{MonsterSpeedMultiplier: 1, MonsterDistMultiplier: 0.5},
	})

	speed, dist := d.MonsterWobble(8, 2, 0, 4)
	if !near(speed, 16) || !near(dist, 3) {
		t.Errorf("MonsterWobble at max = %f, %f; expected 16, 3", speed, dist)
	}
	speed, dist = d.MonsterWobble(8, 2, 0, 0)
	if speed != 8 || dist != 2 {
		t.Errorf("MonsterWobble at start = %f, %f; expected base values", speed, dist)
	}
}
