package platformer

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// wideLevel returns a 100-column level with the player at column col.
func wideLevel(t *testing.T, col int) *world.Level {
	t.Helper()
	row := []byte(strings.Repeat(" ", 100))
	row[col] = '@'
	lvl, err := world.ParsePlan([]string{
		strings.Repeat(" ", 100),
		string(row),
		strings.Repeat("x", 100),
	})
	if err != nil {
		t.Fatalf("ParsePlan failed: %v", err)
	}
	return lvl
}

func TestViewportFollow(t *testing.T) {
	display := config.DisplayConfig{CellWidth: 2, CellHeight: 1, Margin: 1.0 / 3}
	view := core.V(30, 3)

	tests := []struct {
		name     string
		col      int
		expected float64
	}{
		{"near start", 1, 0},
		{"middle", 50, 50.4 + 10 - 30},
		{"near end", 98, 70},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := newViewport(display)
			v.follow(wideLevel(t, tc.col), view)
			if math.Abs(v.left-tc.expected) > 1e-9 {
				t.Errorf("left = %f, expected %f", v.left, tc.expected)
			}
			if v.top != 0 {
				t.Errorf("top = %f, expected 0 for a level shorter than the view", v.top)
			}
		})
	}
}

func TestViewportKeepsPlayerInMargin(t *testing.T) {
	v := newViewport(config.DisplayConfig{CellWidth: 1, CellHeight: 1, Margin: 0.25})
	lvl := wideLevel(t, 60)
	view := core.V(40, 3)

	v.left = 0
	v.follow(lvl, view)

	center := lvl.Player().Pos().X + lvl.Player().Size().X/2
	if center < v.left+10-1e-9 || center > v.left+30+1e-9 {
		t.Errorf("player centre %f outside margins of view starting at %f", center, v.left)
	}
}

func TestViewportSizeAndProject(t *testing.T) {
	v := newViewport(config.DisplayConfig{CellWidth: 2, CellHeight: 1})

	if got := v.size(80, 24); got != core.V(40, 23) {
		t.Errorf("size(80, 24) = %v, expected (40, 23)", got)
	}
	if got := v.size(0, 0); got != core.V(0, 0) {
		t.Errorf("size(0, 0) = %v, expected zero", got)
	}

	v.left, v.top = 10, 2
	r := v.project(core.Box{Pos: core.V(12, 5), Size: core.V(1, 1)})
	expected := core.NewRect(4, 3+hudHeight, 2, 1)
	if r != expected {
		t.Errorf("project = %+v, expected %+v", r, expected)
	}
}
