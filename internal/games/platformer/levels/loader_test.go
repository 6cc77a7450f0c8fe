package levels_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

func testdataPath() string {
	return filepath.Join("testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	var buf bytes.Buffer
	loader := levels.NewLoader(testdataPath())
	loader.Logger = log.New(&buf)

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	expected := []string{"t01", "t02", "t03"}
	if len(lvls) != len(expected) {
		t.Fatalf("expected %d levels, got %d", len(expected), len(lvls))
	}
	for i, id := range expected {
		if lvls[i].ID != id {
			t.Errorf("level %d: expected ID %q, got %q", i, id, lvls[i].ID)
		}
	}

	// Invalid files are skipped and logged, the README is ignored.
	out := buf.String()
	for _, name := range []string{"bad_plan.yaml", "two_players.yaml", "broken.yaml", "no_id.yaml"} {
		if !strings.Contains(out, name) {
			t.Errorf("expected skip log for %s, got:\n%s", name, out)
		}
	}
	if strings.Contains(out, "README") {
		t.Error("non-level files should not be logged")
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := levels.NewLoader(testdataPath())

	lvl, err := loader.LoadByID("t02")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if lvl.Name != "Pit" {
		t.Errorf("expected Name 'Pit', got %q", lvl.Name)
	}
	if len(lvl.Rows) != 3 {
		t.Errorf("expected 3 rows, got %d", len(lvl.Rows))
	}
	if lvl.Respawn == nil || *lvl.Respawn != core.V(1, 0.5) {
		t.Errorf("expected respawn (1, 0.5), got %v", lvl.Respawn)
	}
	if filepath.Base(lvl.FilePath) != "t02.yml" {
		t.Errorf("unexpected FilePath %q", lvl.FilePath)
	}

	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("expected error for missing level")
	}
}

func TestLoaderDefaultsName(t *testing.T) {
	lvl, err := levels.NewLoader(testdataPath()).LoadByID("t03")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "t03" {
		t.Errorf("expected name to default to ID, got %q", lvl.Name)
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	loader := levels.NewLoader(filepath.Join("testdata", "nope"))
	if _, err := loader.LoadAll(); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestLevelBuild(t *testing.T) {
	lvl, err := levels.NewLoader(testdataPath()).LoadByID("t02")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	built, err := lvl.Build(world.WithPhysics(world.DefaultPhysics()))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if built.Physics().Respawn != core.V(1, 0.5) {
		t.Errorf("level respawn should override physics, got %v", built.Physics().Respawn)
	}
	if built.CoinsLeft() != 1 {
		t.Errorf("expected 1 coin, got %d", built.CoinsLeft())
	}
}

func TestLoadFileInvalidPlan(t *testing.T) {
	lvl, err := levels.LoadFile(filepath.Join(testdataPath(), "bad_plan.yaml"))
	if err != nil {
		t.Fatalf("LoadFile should parse the document: %v", err)
	}

	err = lvl.Validate()
	if !errors.Is(err, world.ErrInvalidLevelPlan) {
		t.Fatalf("expected ErrInvalidLevelPlan, got %v", err)
	}
	var pe *world.PlanError
	if !errors.As(err, &pe) || pe.Code != world.CodeUnknownChar {
		t.Errorf("expected UNKNOWN_CHAR plan error, got %v", err)
	}
}

func TestBuiltinLevels(t *testing.T) {
	lvls, err := levels.Builtin().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) < 3 {
		t.Fatalf("expected at least 3 builtin levels, got %d", len(lvls))
	}

	for _, lvl := range lvls {
		built, err := lvl.Build()
		if err != nil {
			t.Errorf("builtin level %s does not build: %v", lvl.ID, err)
			continue
		}
		if built.CoinsLeft() == 0 {
			t.Errorf("builtin level %s has no coins", lvl.ID)
		}

		// The respawn point must be open space inside the grid.
		phys := built.Physics()
		if got := built.ObstacleAt(phys.Respawn, built.Player().Size()); got != world.TileEmpty {
			t.Errorf("builtin level %s respawns into %v", lvl.ID, got)
		}
	}
}
