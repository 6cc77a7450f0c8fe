package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded PlatformerConfig
	if err := yaml.Unmarshal(defaultPlatformerYAML, &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	def := DefaultPlatformerConfig()
	if embedded.Physics != def.Physics {
		t.Errorf("physics differ:\n embedded %+v\n default  %+v", embedded.Physics, def.Physics)
	}
	if embedded.Timing != def.Timing || embedded.Input != def.Input || embedded.Scoring != def.Scoring {
		t.Error("timing, input or scoring defaults differ from the embedded file")
	}
	if math.Abs(embedded.Display.Margin-def.Display.Margin) > 1e-3 {
		t.Errorf("margin = %v, expected about %v", embedded.Display.Margin, def.Display.Margin)
	}
	if embedded.Difficulty != def.Difficulty {
		t.Errorf("difficulty differs: %+v vs %+v", embedded.Difficulty, def.Difficulty)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 50\ntiming:\n  tick_rate: 30\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Physics.Gravity != 50 {
		t.Errorf("gravity = %v, expected 50", cfg.Physics.Gravity)
	}
	if cfg.Timing.TickRate != 30 {
		t.Errorf("tick rate = %d, expected 30", cfg.Timing.TickRate)
	}
	// Unset fields keep defaults
	if cfg.Physics.JumpSpeed != 30 {
		t.Errorf("jump speed = %v, expected default 30", cfg.Physics.JumpSpeed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timing:\n  tick_rate: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("expected error for zero tick rate")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PlatformerConfig)
		wantErr bool
	}{
		{"defaults", func(*PlatformerConfig) {}, false},
		{"zero max step", func(c *PlatformerConfig) { c.Physics.MaxStep = 0 }, true},
		{"tiny max step", func(c *PlatformerConfig) { c.Physics.MaxStep = 1e-300 }, true},
		{"nan max step", func(c *PlatformerConfig) { c.Physics.MaxStep = math.NaN() }, true},
		{"negative frame cap", func(c *PlatformerConfig) { c.Timing.MaxFrameStep = -1 }, true},
		{"zero cell width", func(c *PlatformerConfig) { c.Display.CellWidth = 0 }, true},
		{"margin too wide", func(c *PlatformerConfig) { c.Display.Margin = 0.5 }, true},
		{"negative hold", func(c *PlatformerConfig) { c.Input.HoldMS = -5 }, true},
		{"zero hold", func(c *PlatformerConfig) { c.Input.HoldMS = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed"} {
		if p, err := ParsePreset(name); err != nil || string(p) != name {
			t.Errorf("ParsePreset(%q) = %q, %v", name, p, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultPlatformerConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v initial=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}
	if cfg.Physics.MonsterWobbleSpeed <= DefaultPlatformerConfig().Physics.MonsterWobbleSpeed {
		t.Error("hard preset should speed monsters up")
	}

	cfg = DefaultPlatformerConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Physics.MonsterWobbleDist >= DefaultPlatformerConfig().Physics.MonsterWobbleDist {
		t.Error("easy preset should shorten monster travel")
	}
}
