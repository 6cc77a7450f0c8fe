package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// Visual characters for rendering
const (
	WallChar    = '█'
	LavaChar    = '≈'
	PlayerChar  = '▓'
	CoinChar    = '●'
	MonsterChar = '▒'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		g.drawCenteredMessage(dst, "NO LEVELS", g.loadErr.Error())
		return
	}

	if g.level != nil {
		g.drawTiles(dst)
		g.drawActors(dst)
	}
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.won {
		g.drawCenteredMessage(dst, "YOU WIN", fmt.Sprintf("Score: %d  |  Press R to play again", g.score))
	}
}

// drawTiles draws the walls and lava inside the viewport.
func (g *Game) drawTiles(dst *core.Screen) {
	view := g.screenView()
	x0 := int(math.Floor(g.view.left))
	y0 := int(math.Floor(g.view.top))
	x1 := min(int(math.Ceil(g.view.left+view.X)), g.level.Width())
	y1 := min(int(math.Ceil(g.view.top+view.Y)), g.level.Height())

	for ty := max(y0, 0); ty < y1; ty++ {
		for tx := max(x0, 0); tx < x1; tx++ {
			var glyph rune
			var color core.Color
			switch g.level.TileAt(tx, ty) {
			case world.TileWall:
				glyph, color = WallChar, core.ColorWall
			case world.TileLava:
				glyph, color = LavaChar, core.ColorLava
			default:
				continue
			}
			cell := core.Box{Pos: core.V(float64(tx), float64(ty)), Size: core.V(1, 1)}
			dst.FillRect(g.view.project(cell), glyph, color)
		}
	}
}

// drawActors draws coins and monsters, then the player on top.
func (g *Game) drawActors(dst *core.Screen) {
	for _, a := range g.level.Actors() {
		switch a.Kind() {
		case world.KindCoin:
			dst.FillRect(g.clip(g.view.project(world.Bounds(a))), CoinChar, core.ColorCoin)
		case world.KindMonster:
			dst.FillRect(g.clip(g.view.project(world.Bounds(a))), MonsterChar, core.ColorMonster)
		case world.KindPlayer:
		}
	}

	p := g.level.Player()
	dst.FillRect(g.clip(g.view.project(world.Bounds(p))), PlayerChar, core.ColorPlayer)
}

// clip keeps actor rectangles out of the HUD rows.
func (g *Game) clip(r core.Rect) core.Rect {
	if r.Y < hudHeight {
		r.H -= hudHeight - r.Y
		r.Y = hudHeight
	}
	return r
}

// drawHUD draws the status line.
func (g *Game) drawHUD(dst *core.Screen) {
	if g.level == nil || g.index >= len(g.campaign) {
		dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Deaths: %d", g.score, g.deaths))
		return
	}

	def := g.campaign[g.index]
	total := g.level.CoinsCollected() + g.level.CoinsLeft()
	text := fmt.Sprintf("%d/%d %s  Coins: %d/%d  Score: %d  Deaths: %d",
		g.index+1, len(g.campaign), def.Name,
		g.level.CoinsCollected(), total, g.score, g.deaths)
	dst.DrawTextColored(1, 0, text, core.ColorHUD)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored((w-len([]rune(title)))/2, boxY+1, title, core.ColorAlert)
	dst.DrawTextCentered(boxY+3, subtitle)
}
