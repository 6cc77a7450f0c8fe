package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// hudHeight is the number of screen rows above the playfield.
const hudHeight = 1

// viewport is the window of the level shown on screen, in tile units.
type viewport struct {
	cellW  int
	cellH  int
	margin float64

	left float64
	top  float64
}

func newViewport(d config.DisplayConfig) viewport {
	return viewport{
		cellW:  max(d.CellWidth, 1),
		cellH:  max(d.CellHeight, 1),
		margin: d.Margin,
	}
}

func (v *viewport) reset() {
	v.left, v.top = 0, 0
}

// size returns the view dimensions in tiles for a screen.
func (v *viewport) size(screenW, screenH int) core.Vector {
	cols := max(screenW, 0) / v.cellW
	rows := max(screenH-hudHeight, 0) / v.cellH
	return core.V(float64(cols), float64(rows))
}

// follow scrolls so the player's centre stays at least margin of the view
// away from each edge, then keeps the view inside the level.
func (v *viewport) follow(lvl *world.Level, view core.Vector) {
	p := lvl.Player()
	center := p.Pos().Plus(p.Size().Times(0.5))
	mx, my := view.X*v.margin, view.Y*v.margin

	if center.X < v.left+mx {
		v.left = center.X - mx
	} else if center.X > v.left+view.X-mx {
		v.left = center.X + mx - view.X
	}
	if center.Y < v.top+my {
		v.top = center.Y - my
	} else if center.Y > v.top+view.Y-my {
		v.top = center.Y + my - view.Y
	}

	v.left = clampAxis(v.left, view.X, float64(lvl.Width()))
	v.top = clampAxis(v.top, view.Y, float64(lvl.Height()))
}

// clampAxis keeps a view of length view inside [0, extent]. A level smaller
// than the view is pinned to the origin.
func clampAxis(pos, view, extent float64) float64 {
	if extent <= view || math.IsNaN(pos) {
		return 0
	}
	return core.Clamp(pos, 0, extent-view)
}

// project maps a level-space box onto screen cells below the HUD.
func (v *viewport) project(box core.Box) core.Rect {
	rel := core.Box{
		Pos:  box.Pos.Plus(core.V(-v.left, -v.top)),
		Size: box.Size,
	}
	r := rel.Project(float64(v.cellW), float64(v.cellH))
	r.Y += hudHeight
	return r
}

// screenView returns the current view size in tiles.
func (g *Game) screenView() core.Vector {
	return g.view.size(g.runtime.ScreenW, g.runtime.ScreenH)
}
