package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestPaletteRenderPlainStyles(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "xx", core.ColorWall)
	s.DrawTextColored(2, 0, "!!", core.ColorLava)
	s.SetColored(1, 1, '@', core.ColorPlayer)

	// Only the default role is styled, so every other role falls back to it
	p := Palette{core.ColorDefault: lipgloss.NewStyle()}
	if got, want := p.Render(s), s.String(); got != want {
		t.Errorf("Render() = %q, expected %q", got, want)
	}
}

func TestDefaultPaletteCoversEveryRole(t *testing.T) {
	p := DefaultPalette()
	roles := []core.Color{
		core.ColorDefault, core.ColorWall, core.ColorLava, core.ColorCoin,
		core.ColorMonster, core.ColorPlayer, core.ColorHUD, core.ColorAlert,
	}
	for _, c := range roles {
		if _, ok := p[c]; !ok {
			t.Errorf("no style for colour %d", c)
		}
	}
}
