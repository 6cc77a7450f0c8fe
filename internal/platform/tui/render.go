package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Palette maps screen colours to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// DefaultPalette returns the ANSI styles of each screen role.
func DefaultPalette() Palette {
	fg := func(code string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return Palette{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorWall:    fg("245"),
		core.ColorLava:    fg("9").Background(lipgloss.Color("52")),
		core.ColorCoin:    fg("11").Bold(true),
		core.ColorMonster: fg("5"),
		core.ColorPlayer:  fg("14").Bold(true),
		core.ColorHUD:     fg("7"),
		core.ColorAlert:   fg("229").Bold(true),
	}
}

var defaultPalette = DefaultPalette()

// RenderScreen converts a screen buffer to a styled string with the default palette.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.Render(s)
}

// Render converts a screen buffer to a styled string.
// Adjacent cells of one colour share a single style run.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

func (p Palette) style(c core.Color) lipgloss.Style {
	if st, ok := p[c]; ok {
		return st
	}
	return p[core.ColorDefault]
}
