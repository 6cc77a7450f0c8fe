package world

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

var (
	monsterOffset = core.V(-1, -2)
	monsterSize   = core.V(1, 1)
)

// Monster oscillates vertically around its anchor. Touching it kills the player.
type Monster struct {
	basePos core.Vector
	pos     core.Vector
	wobble  float64
}

// NewMonster creates a monster anchored relative to the given tile origin.
func NewMonster(tile core.Vector, phase float64) *Monster {
	base := tile.Plus(monsterOffset)
	return &Monster{basePos: base, pos: base, wobble: phase}
}

func (m *Monster) Kind() Kind           { return KindMonster }
func (m *Monster) Pos() core.Vector     { return m.pos }
func (m *Monster) Size() core.Vector    { return monsterSize }
func (m *Monster) BasePos() core.Vector { return m.basePos }
func (m *Monster) Wobble() float64      { return m.wobble }

func (m *Monster) act(step float64, lvl *Level, _ Input) {
	m.wobble += step * lvl.physics.MonsterWobbleSpeed
	m.pos = m.basePos.Plus(core.V(0, math.Sin(m.wobble)*lvl.physics.MonsterWobbleDist))
}
