package world

import "github.com/vovakirdan/tui-platformer/internal/core"

var (
	playerOffset = core.V(0, -0.5)
	playerSize   = core.V(0.8, 1.5)
)

// Player is the actor controlled by input.
type Player struct {
	pos   core.Vector
	speed core.Vector // units per second
}

// NewPlayer creates a player spawned from the tile at the given origin.
func NewPlayer(tile core.Vector) *Player {
	return &Player{pos: tile.Plus(playerOffset)}
}

func (p *Player) Kind() Kind         { return KindPlayer }
func (p *Player) Pos() core.Vector   { return p.pos }
func (p *Player) Size() core.Vector  { return playerSize }
func (p *Player) Speed() core.Vector { return p.speed }

func (p *Player) act(step float64, lvl *Level, in Input) {
	p.moveX(step, lvl, in)
	p.moveY(step, lvl, in)

	other := lvl.ActorAt(p)
	if other == nil {
		return
	}
	switch other.Kind() {
	case KindCoin:
		lvl.ClearCoin(other)
		lvl.emit(Event{Kind: EventCoin, Pos: other.Pos()})
	case KindMonster:
		p.pos = lvl.physics.Respawn
		lvl.emit(Event{Kind: EventDeath, Cause: CauseMonster, Pos: p.pos})
	case KindPlayer:
		// A plan holds a single player, so this never matches.
	}
}

// moveX recomputes horizontal speed from input every sub-step.
// Only walls stop horizontal motion.
func (p *Player) moveX(step float64, lvl *Level, in Input) {
	p.speed.X = 0
	if in.Left {
		p.speed.X -= lvl.physics.PlayerXSpeed
	}
	if in.Right {
		p.speed.X += lvl.physics.PlayerXSpeed
	}

	newPos := p.pos.Plus(core.V(p.speed.X*step, 0))
	if lvl.ObstacleAt(newPos, playerSize) != TileWall {
		p.pos = newPos
	}
}

// moveY integrates gravity. A jump starts only when falling onto a wall with
// up held.
func (p *Player) moveY(step float64, lvl *Level, in Input) {
	p.speed.Y += step * lvl.physics.Gravity
	newPos := p.pos.Plus(core.V(0, p.speed.Y*step))

	switch lvl.ObstacleAt(newPos, playerSize) {
	case TileWall:
		if in.Up && p.speed.Y > 0 {
			p.speed.Y = -lvl.physics.JumpSpeed
		} else {
			p.speed.Y = 0
		}
	case TileLava:
		p.pos = lvl.physics.Respawn
		lvl.emit(Event{Kind: EventDeath, Cause: CauseLava, Pos: p.pos})
	case TileEmpty:
		p.pos = newPos
	}
}
