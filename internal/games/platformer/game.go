// Package platformer implements a tile-based platformer campaign.
// The player runs and jumps through levels, collecting every coin while
// avoiding lava and monsters.
package platformer

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/replay"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// GameID is the registry identifier of the platformer.
const GameID = "platformer"

var errNoLevels = errors.New("platformer: no playable levels found")

// Package-level variables for configuration set via CLI
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelsDir        string
	startLevel       string
	recording        bool
	levelLogger      *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	if p, err := config.ParsePreset(preset); err == nil {
		difficultyPreset = p
	}
}

// SetLevelsDir plays levels from a directory instead of the built-in campaign.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetStartLevel selects the first level by ID or 1-based position.
// An empty string starts from the beginning.
func SetStartLevel(level string) {
	startLevel = level
}

// SetRecording enables replay recording for new games.
func SetRecording(on bool) {
	recording = on
}

// SetLevelLogger reports level files skipped while loading the campaign.
func SetLevelLogger(l *log.Logger) {
	levelLogger = l
}

// Campaign returns the levels a new game plays, in order.
func Campaign() ([]levels.Level, error) {
	loader := levels.Builtin()
	if levelsDir != "" {
		loader = levels.NewLoader(levelsDir)
	}
	loader.Logger = levelLogger
	return loader.LoadAll()
}

// ResolveLevel finds a campaign level by ID or 1-based position.
func ResolveLevel(ref string) (levels.Level, error) {
	campaign, err := Campaign()
	if err != nil {
		return levels.Level{}, err
	}
	for _, lvl := range campaign {
		if lvl.ID == ref {
			return lvl, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(campaign) {
		return campaign[n-1], nil
	}
	return levels.Level{}, fmt.Errorf("platformer: unknown level %q", ref)
}

// ScoreKey returns the key scores are stored under. A campaign started from
// its first level uses the game ID; one started elsewhere is kept apart.
func ScoreKey(levelID string) string {
	if levelID == "" {
		return GameID
	}
	return GameID + ":" + levelID
}

// Game implements the platformer campaign on top of the world simulation.
type Game struct {
	cfg        config.PlatformerConfig
	runtime    core.RuntimeConfig
	difficulty config.Difficulty
	view       viewport

	campaign []levels.Level
	start    string // Level reference the campaign starts from
	index    int
	level    *world.Level
	loadErr  error

	recorder *replay.Recorder
	replays  []*replay.Session
	record   bool

	score       int
	deaths      int
	levelDeaths int
	levelTime   float64 // Simulated seconds spent in the current level
	gameOver    bool
	won         bool
	paused      bool
}

// New creates a new platformer game.
func New() *Game {
	return &Game{start: startLevel}
}

// StartAt selects the first level of this game by ID or 1-based position.
// It takes effect on the next Reset.
func (g *Game) StartAt(ref string) {
	g.start = ref
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Reset loads configuration and the campaign and starts the first level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.score = 0
	g.deaths = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.loadErr = nil
	g.replays = nil
	g.record = recording

	pcfg, err := config.Load(configPath)
	if err != nil {
		pcfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&pcfg, difficultyPreset)
	}
	g.cfg = pcfg
	g.difficulty = config.NewDifficulty(pcfg.Difficulty)
	g.view = newViewport(pcfg.Display)

	campaign, err := Campaign()
	if err == nil && len(campaign) == 0 {
		err = errNoLevels
	}
	if err != nil {
		g.fail(err)
		return
	}
	g.campaign = campaign
	g.index = startIndex(campaign, g.start)

	g.loadLevel()
}

// startIndex resolves a level reference to a campaign index.
func startIndex(campaign []levels.Level, ref string) int {
	if ref == "" {
		return 0
	}
	for i, lvl := range campaign {
		if lvl.ID == ref {
			return i
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(campaign) {
		return n - 1
	}
	return 0
}

// levelSeed derives the wobble seed of a campaign level.
func (g *Game) levelSeed() int64 {
	return rand.New(rand.NewSource(g.runtime.Seed + int64(g.index))).Int63()
}

// physics returns the constants for the current level, scaled by difficulty.
func (g *Game) physics() world.Physics {
	p := g.cfg.Physics
	speed, dist := g.difficulty.MonsterWobble(p.MonsterWobbleSpeed, p.MonsterWobbleDist, g.score, g.index)
	return world.Physics{
		MaxStep:            p.MaxStep,
		Gravity:            p.Gravity,
		JumpSpeed:          p.JumpSpeed,
		PlayerXSpeed:       p.PlayerXSpeed,
		CoinWobbleSpeed:    p.CoinWobbleSpeed,
		CoinWobbleDist:     p.CoinWobbleDist,
		MonsterWobbleSpeed: speed,
		MonsterWobbleDist:  dist,
		Respawn:            core.V(p.RespawnX, p.RespawnY),
	}
}

// loadLevel builds the level at the current index.
func (g *Game) loadLevel() {
	if g.index >= len(g.campaign) {
		g.won = true
		g.gameOver = true
		g.level = nil
		return
	}

	def := g.campaign[g.index]
	seed := g.levelSeed()
	lvl, err := def.Build(
		world.WithPhysics(g.physics()),
		world.WithPhase(world.PhaseFromSeed(seed)),
	)
	if err != nil {
		g.fail(err)
		return
	}

	g.level = lvl
	g.levelDeaths = 0
	g.levelTime = 0
	g.view.reset()
	g.view.follow(lvl, g.screenView())

	g.recorder = nil
	if g.record {
		g.recorder = replay.NewRecorder(def.ID, def.Rows, lvl, seed)
	}
}

func (g *Game) fail(err error) {
	g.loadErr = err
	g.level = nil
	g.gameOver = true
}

// Step advances the game by one nominal tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.Advance(in, g.runtime.TickDuration())
}

// Advance advances the game by the wall-clock time since the last frame.
// Frames longer than the configured cap are clipped.
func (g *Game) Advance(in core.InputFrame, elapsed time.Duration) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) {
		if g.gameOver {
			g.Reset(g.runtime)
		} else if g.level != nil {
			g.abandonRecording()
			g.loadLevel()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.level == nil {
		return core.StepResult{State: g.State()}
	}

	dt := min(elapsed.Seconds(), g.cfg.Timing.MaxFrameStep)
	if dt <= 0 {
		return core.StepResult{State: g.State()}
	}

	keys := world.Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Up:    in.Has(core.ActionJump),
	}
	g.level.Animate(dt, keys)
	g.levelTime += dt

	events := g.level.DrainEvents()
	if g.recorder != nil {
		g.recorder.Record(dt, keys, events)
	}
	stuck := false
	for _, e := range events {
		switch e.Kind {
		case world.EventCoin:
			g.score += g.cfg.Scoring.CoinPoints
		case world.EventDeath:
			g.deaths++
			g.levelDeaths++
			stuck = g.respawnBlocked()
		}
	}

	var result core.StepResult
	switch {
	case g.level.Complete():
		result.Completed = append(result.Completed, g.completeLevel())
	case stuck:
		// The respawn point is inside a wall; start the level over.
		g.abandonRecording()
		g.loadLevel()
	default:
		g.view.follow(g.level, g.screenView())
	}

	result.State = g.State()
	return result
}

// Resize updates the screen size without restarting the level.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	if g.level != nil {
		g.view.follow(g.level, g.screenView())
	}
}

// InputHold returns how long a single key press keeps an action held.
func (g *Game) InputHold() time.Duration {
	return time.Duration(g.cfg.Input.HoldMS) * time.Millisecond
}

// respawnBlocked reports whether the player reappeared somewhere it can never
// leave.
func (g *Game) respawnBlocked() bool {
	p := g.level.Player()
	return g.level.ObstacleAt(p.Pos(), p.Size()) == world.TileWall
}

// completeLevel records the finished level and moves to the next one.
func (g *Game) completeLevel() core.LevelResult {
	res := core.LevelResult{
		LevelID:  g.campaign[g.index].ID,
		Coins:    g.level.CoinsCollected(),
		Deaths:   g.levelDeaths,
		Duration: time.Duration(g.levelTime * float64(time.Second)),
	}
	g.score += g.cfg.Scoring.LevelBonus

	if g.recorder != nil {
		g.replays = append(g.replays, g.recorder.Finish(g.level))
		g.recorder = nil
	}

	g.index++
	g.loadLevel()
	return res
}

// abandonRecording keeps the partial recording of a level that is being
// left without completing it.
func (g *Game) abandonRecording() {
	if g.recorder != nil && g.recorder.Frames() > 0 && g.level != nil {
		g.replays = append(g.replays, g.recorder.Finish(g.level))
	}
	g.recorder = nil
}

// TakeReplays returns the recordings finished since the last call.
func (g *Game) TakeReplays() []*replay.Session {
	out := g.replays
	g.replays = nil
	return out
}

// FinishRecording seals the recording of the level in progress, if any.
func (g *Game) FinishRecording() {
	g.abandonRecording()
}

// Level returns the level being played, or nil when none is loaded.
func (g *Game) Level() *world.Level {
	return g.level
}

// LoadError returns why the campaign could not be started, if it failed.
func (g *Game) LoadError() error {
	return g.loadErr
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
		Deaths:   g.deaths,
	}
	if g.index < len(g.campaign) {
		st.Level = g.campaign[g.index].ID
	}
	return st
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
