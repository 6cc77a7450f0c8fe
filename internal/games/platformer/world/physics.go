package world

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// MinMaxStep is the shortest sub-step Validate accepts. It bounds Animate to
// total/MinMaxStep iterations.
const MinMaxStep = 1e-4

// Physics holds the tunable constants of the simulation.
type Physics struct {
	MaxStep            float64     `msgpack:"max_step"`             // Longest sub-step in seconds
	Gravity            float64     `msgpack:"gravity"`              // Downward acceleration, units/s^2
	JumpSpeed          float64     `msgpack:"jump_speed"`           // Upward speed applied on a landing jump
	PlayerXSpeed       float64     `msgpack:"player_x_speed"`       // Horizontal run speed
	CoinWobbleSpeed    float64     `msgpack:"coin_wobble_speed"`    // Radians per second
	CoinWobbleDist     float64     `msgpack:"coin_wobble_dist"`     // Vertical amplitude
	MonsterWobbleSpeed float64     `msgpack:"monster_wobble_speed"` // Radians per second
	MonsterWobbleDist  float64     `msgpack:"monster_wobble_dist"`  // Vertical amplitude
	Respawn            core.Vector `msgpack:"respawn"`              // Where the player reappears after dying
}

// DefaultPhysics returns the standard constants.
func DefaultPhysics() Physics {
	return Physics{
		MaxStep:            0.05,
		Gravity:            70,
		JumpSpeed:          30,
		PlayerXSpeed:       7,
		CoinWobbleSpeed:    8,
		CoinWobbleDist:     0.07,
		MonsterWobbleSpeed: 8,
		MonsterWobbleDist:  2,
		Respawn:            core.V(5, 10),
	}
}

// Validate reports constants that would make the simulation diverge or never
// terminate.
func (p Physics) Validate() error {
	values := map[string]float64{
		"max_step":             p.MaxStep,
		"gravity":              p.Gravity,
		"jump_speed":           p.JumpSpeed,
		"player_x_speed":       p.PlayerXSpeed,
		"coin_wobble_speed":    p.CoinWobbleSpeed,
		"coin_wobble_dist":     p.CoinWobbleDist,
		"monster_wobble_speed": p.MonsterWobbleSpeed,
		"monster_wobble_dist":  p.MonsterWobbleDist,
		"respawn.x":            p.Respawn.X,
		"respawn.y":            p.Respawn.Y,
	}
	for name, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("physics: %s is not a finite number", name)
		}
	}
	if p.MaxStep < MinMaxStep {
		return fmt.Errorf("physics: max_step must be at least %v, got %v", MinMaxStep, p.MaxStep)
	}
	return nil
}
