package world

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Level owns the static tile grid and the live actors.
// It is not safe for concurrent use.
type Level struct {
	width   int
	height  int
	grid    [][]Tile // [row][col], immutable after construction
	actors  []Actor  // update order; sole owner of every actor
	player  *Player
	physics Physics

	coinsAtStart int
	events       []Event
}

// Width returns the grid width in tiles.
func (l *Level) Width() int {
	return l.width
}

// Height returns the grid height in tiles.
func (l *Level) Height() int {
	return l.height
}

// TileAt returns the tile at column x, row y. Cells outside the grid are walls.
func (l *Level) TileAt(x, y int) Tile {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return TileWall
	}
	return l.grid[y][x]
}

// Actors returns the live actors in update order. Callers must not modify
// the returned slice.
func (l *Level) Actors() []Actor {
	return l.actors
}

// Player returns the level's player.
func (l *Level) Player() *Player {
	return l.player
}

// Physics returns the constants the level simulates with.
func (l *Level) Physics() Physics {
	return l.physics
}

// CoinsLeft returns the number of coins still in the level.
func (l *Level) CoinsLeft() int {
	n := 0
	for _, a := range l.actors {
		if a.Kind() == KindCoin {
			n++
		}
	}
	return n
}

// CoinsCollected returns how many coins have been picked up.
func (l *Level) CoinsCollected() int {
	return l.coinsAtStart - l.CoinsLeft()
}

// Complete reports whether a level that started with coins has none left.
func (l *Level) Complete() bool {
	return l.coinsAtStart > 0 && l.CoinsLeft() == 0
}

// ObstacleAt returns the first non-empty tile covered by a box at pos with the
// given size, scanning rows then columns in ascending order. Any part of the
// box outside the grid counts as wall. When the box covers both wall and lava
// the scan order decides which one is reported; callers should not rely on it.
// A negative size extends the box left or up from pos.
func (l *Level) ObstacleAt(pos, size core.Vector) Tile {
	cells := core.Box{Pos: pos, Size: size}.Cells()

	if cells.X < 0 || cells.Right() > l.width || cells.Y < 0 || cells.Bottom() > l.height {
		return TileWall
	}

	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			if t := l.grid[y][x]; t != TileEmpty {
				return t
			}
		}
	}
	return TileEmpty
}

// ActorAt returns the first other actor, in list order, whose box strictly
// overlaps the given actor's box. It returns nil when nothing overlaps.
func (l *Level) ActorAt(actor Actor) Actor {
	box := Bounds(actor)
	for _, other := range l.actors {
		if other != actor && box.Overlaps(Bounds(other)) {
			return other
		}
	}
	return nil
}

// ClearCoin removes the actor from the level. It is a no-op if the actor is
// not present.
func (l *Level) ClearCoin(actor Actor) {
	// A fresh slice keeps an Animate pass that is ranging over the old one intact.
	kept := make([]Actor, 0, len(l.actors))
	for _, a := range l.actors {
		if a != actor {
			kept = append(kept, a)
		}
	}
	l.actors = kept
}

// Animate advances every actor by total seconds, split into sub-steps no
// longer than Physics.MaxStep. Every actor is updated once per sub-step in
// list order. Non-positive and non-finite totals do nothing.
func (l *Level) Animate(total float64, in Input) {
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return
	}
	maxStep := l.physics.MaxStep
	if maxStep <= 0 {
		maxStep = DefaultPhysics().MaxStep
	}

	for total > 0 {
		step := math.Min(total, maxStep)
		for _, a := range l.actors {
			a.act(step, l, in)
		}
		total -= step
	}
}

// DrainEvents returns the events recorded since the last call and forgets them.
func (l *Level) DrainEvents() []Event {
	events := l.events
	l.events = nil
	return events
}

func (l *Level) emit(e Event) {
	l.events = append(l.events, e)
}
