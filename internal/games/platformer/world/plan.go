package world

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"unicode/utf8"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ErrInvalidLevelPlan is wrapped by every plan validation failure.
var ErrInvalidLevelPlan = errors.New("invalid level plan")

// Plan validation codes.
const (
	CodeEmptyPlan       = "EMPTY_PLAN"
	CodeRaggedRows      = "RAGGED_ROWS"
	CodeUnknownChar     = "UNKNOWN_CHAR"
	CodeNoPlayer        = "NO_PLAYER"
	CodeMultiplePlayers = "MULTIPLE_PLAYERS"
)

// PlanError describes why a level plan was rejected.
// Row and Col are -1 when the problem has no single location. Col is a byte
// offset into the row; plans are ASCII.
type PlanError struct {
	Code    string
	Row     int
	Col     int
	Message string
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidLevelPlan.
func (e *PlanError) Unwrap() error {
	return ErrInvalidLevelPlan
}

// PhaseFunc yields the initial wobble phase for each coin and monster, in plan
// scan order.
type PhaseFunc func() float64

// PhaseFromSeed returns a deterministic PhaseFunc producing phases in [0, 2π).
func PhaseFromSeed(seed int64) PhaseFunc {
	rng := rand.New(rand.NewSource(seed))
	return func() float64 {
		return rng.Float64() * 2 * math.Pi
	}
}

// Option configures ParsePlan.
type Option func(*planOptions)

type planOptions struct {
	physics Physics
	phase   PhaseFunc
}

// WithPhysics sets the constants the level simulates with.
func WithPhysics(p Physics) Option {
	return func(o *planOptions) {
		o.physics = p
	}
}

// WithRespawn overrides the respawn point of the physics in effect. Apply it
// after WithPhysics.
func WithRespawn(pos core.Vector) Option {
	return func(o *planOptions) {
		o.physics.Respawn = pos
	}
}

// WithPhase sets the source of initial wobble phases. Without it every
// wobble starts at zero.
func WithPhase(fn PhaseFunc) Option {
	return func(o *planOptions) {
		o.phase = fn
	}
}

// ParsePlan builds a Level from equal-length rows.
//
// Characters:
//
//	'@' = player
//	'o' = coin
//	'G' = monster
//	'x' = wall
//	'!' = lava
//	' ' = empty
//
// Any other character, ragged rows, or a player count other than one yields a
// *PlanError.
func ParsePlan(plan []string, opts ...Option) (*Level, error) {
	o := planOptions{physics: DefaultPhysics()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.physics.Validate(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	if len(plan) == 0 || len(plan[0]) == 0 {
		return nil, &PlanError{Code: CodeEmptyPlan, Row: -1, Col: -1, Message: "plan has no rows or no columns"}
	}

	width := len(plan[0])
	lvl := &Level{
		width:   width,
		height:  len(plan),
		grid:    make([][]Tile, len(plan)),
		physics: o.physics,
	}

	for y, line := range plan {
		if len(line) != width {
			return nil, &PlanError{
				Code:    CodeRaggedRows,
				Row:     y,
				Col:     -1,
				Message: fmt.Sprintf("row %d has %d columns, expected %d", y, len(line), width),
			}
		}

		row := make([]Tile, width)
		for x := 0; x < width; x++ {
			ch := line[x]
			origin := core.V(float64(x), float64(y))

			if sp, ok := spawnTable[ch]; ok {
				phase := 0.0
				if sp.kind != KindPlayer && o.phase != nil {
					phase = o.phase()
				}
				actor := sp.make(origin, phase)
				if p, isPlayer := actor.(*Player); isPlayer {
					if lvl.player != nil {
						return nil, &PlanError{
							Code:    CodeMultiplePlayers,
							Row:     y,
							Col:     x,
							Message: fmt.Sprintf("second player at row %d, column %d", y, x),
						}
					}
					lvl.player = p
				}
				if sp.kind == KindCoin {
					lvl.coinsAtStart++
				}
				lvl.actors = append(lvl.actors, actor)
				row[x] = TileEmpty
				continue
			}

			tile, ok := tileChars[ch]
			if !ok {
				r, _ := utf8.DecodeRuneInString(line[x:])
				return nil, &PlanError{
					Code:    CodeUnknownChar,
					Row:     y,
					Col:     x,
					Message: fmt.Sprintf("unknown character %q at row %d, byte %d", r, y, x),
				}
			}
			row[x] = tile
		}
		lvl.grid[y] = row
	}

	if lvl.player == nil {
		return nil, &PlanError{Code: CodeNoPlayer, Row: -1, Col: -1, Message: "plan has no player"}
	}

	return lvl, nil
}
