// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Game is the core interface that every game must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "platformer").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Platformer").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Jump, Pause, etc.)
	// and holds every action that is down during the tick.
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Advancer is implemented by games that simulate in continuous time.
// The platform calls Advance instead of Step with the wall-clock time since
// the previous frame.
type Advancer interface {
	Advance(in core.InputFrame, elapsed time.Duration) core.StepResult
}

// Resizer is implemented by games that can adapt to a new screen size
// without being reset.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// Registry maps game IDs to factories. It is safe for concurrent use, since
// every SSH session creates its own game through it.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	title   string
	factory Factory
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a game factory.
// Returns an error if the ID is empty or already taken.
func (r *Registry) Register(id string, f Factory) error {
	if id == "" || f == nil {
		return fmt.Errorf("registry: invalid registration %q", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		return fmt.Errorf("registry: game %q already registered", id)
	}
	// The title is read once from a throwaway instance
	r.entries[id] = entry{title: f().Title(), factory: f}
	return nil
}

// List returns information about all registered games, sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]GameInfo, 0, len(r.entries))
	for id, e := range r.entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[id]
	return ok
}

// defaultRegistry holds the games that register themselves in init().
var defaultRegistry = New()

// Register adds a game to the default registry.
// Panics on a duplicate ID, which can only be a programming error.
func Register(id string, f Factory) {
	if err := defaultRegistry.Register(id, f); err != nil {
		panic(err)
	}
}

// List returns the games of the default registry.
func List() []GameInfo {
	return defaultRegistry.List()
}

// Create instantiates a game from the default registry.
func Create(id string) (Game, error) {
	return defaultRegistry.Create(id)
}

// Exists checks the default registry for a game ID.
func Exists(id string) bool {
	return defaultRegistry.Exists(id)
}
