package world

import "github.com/vovakirdan/tui-platformer/internal/core"

// EventKind classifies something that happened during Animate.
type EventKind uint8

const (
	EventCoin  EventKind = iota + 1 // The player picked up a coin
	EventDeath                      // The player died and respawned
)

// Cause says what killed the player.
type Cause uint8

const (
	CauseNone Cause = iota
	CauseLava
	CauseMonster
)

func (c Cause) String() string {
	switch c {
	case CauseLava:
		return "lava"
	case CauseMonster:
		return "monster"
	default:
		return "none"
	}
}

// Event records a level-visible effect of a sub-step.
type Event struct {
	Kind  EventKind
	Cause Cause
	Pos   core.Vector // Coin position for pickups, respawn point for deaths
}
