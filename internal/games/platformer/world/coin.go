package world

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

var (
	coinOffset = core.V(0.2, 0.1)
	coinSize   = core.V(0.6, 0.6)
)

// Coin bobs in place until the player picks it up.
type Coin struct {
	basePos core.Vector
	pos     core.Vector
	wobble  float64
}

// NewCoin creates a coin spawned from the tile at the given origin with the
// given initial wobble phase.
func NewCoin(tile core.Vector, phase float64) *Coin {
	base := tile.Plus(coinOffset)
	return &Coin{basePos: base, pos: base, wobble: phase}
}

func (c *Coin) Kind() Kind           { return KindCoin }
func (c *Coin) Pos() core.Vector     { return c.pos }
func (c *Coin) Size() core.Vector    { return coinSize }
func (c *Coin) BasePos() core.Vector { return c.basePos }
func (c *Coin) Wobble() float64      { return c.wobble }

func (c *Coin) act(step float64, lvl *Level, _ Input) {
	c.wobble += step * lvl.physics.CoinWobbleSpeed
	c.pos = c.basePos.Plus(core.V(0, math.Sin(c.wobble)*lvl.physics.CoinWobbleDist))
}
