package world

import "github.com/vovakirdan/tui-platformer/internal/core"

// Kind identifies an actor variant.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindCoin
	KindMonster
)

// String returns the lowercase variant name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindCoin:
		return "coin"
	case KindMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Input is the held state of the logical buttons for one Animate call.
// The simulation only reads it.
type Input struct {
	Left  bool
	Right bool
	Up    bool
}

// Actor is a movable entity owned by a Level. The set of implementations is
// closed: *Player, *Coin and *Monster.
type Actor interface {
	Kind() Kind
	Pos() core.Vector
	Size() core.Vector
	act(step float64, lvl *Level, in Input)
}

// Bounds returns the actor's bounding box.
func Bounds(a Actor) core.Box {
	return core.Box{Pos: a.Pos(), Size: a.Size()}
}

// spawn describes how a plan character turns into an actor.
type spawn struct {
	kind Kind
	make func(tile core.Vector, phase float64) Actor
}

// spawnTable maps plan characters to actor constructors.
var spawnTable = map[byte]spawn{
	'@': {KindPlayer, func(tile core.Vector, _ float64) Actor { return NewPlayer(tile) }},
	'o': {KindCoin, func(tile core.Vector, phase float64) Actor { return NewCoin(tile, phase) }},
	'G': {KindMonster, func(tile core.Vector, phase float64) Actor { return NewMonster(tile, phase) }},
}
