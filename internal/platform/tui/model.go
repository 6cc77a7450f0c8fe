package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/replay"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// defaultHold is used when the game does not configure a hold window.
const defaultHold = 150 * time.Millisecond

// inputHolder is implemented by games that configure how long one key press
// keeps an action held.
type inputHolder interface {
	InputHold() time.Duration
}

// replaySource is implemented by games that record replays.
type replaySource interface {
	TakeReplays() []*replay.Session
	FinishRecording()
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPlayer attributes saved runs to a player name.
func WithPlayer(name string) ModelOption {
	return func(m *Model) { m.player = name }
}

// WithScoreKey stores scores under key instead of the game ID.
func WithScoreKey(key string) ModelOption {
	return func(m *Model) {
		if key != "" {
			m.scoreKey = key
		}
	}
}

// WithReplayDir writes finished replays into dir.
func WithReplayDir(dir string) ModelOption {
	return func(m *Model) { m.replayDir = dir }
}

// WithScreenshotDir writes screenshots into dir.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) { m.shotDir = dir }
}

// WithMenuReturn lets Esc leave a paused or finished game for the menu.
func WithMenuReturn() ModelOption {
	return func(m *Model) { m.canReturn = true }
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      GameKeyMap
	hold      *holdTracker
	clock     *frameClock
	pending   core.InputFrame // One-shot actions since the last frame
	gameState core.GameState

	player    string
	scoreKey  string
	runID     string
	replayDir string
	shotDir   string
	canReturn bool

	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score of the current run has been saved
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    store,
		config:   cfg,
		keys:     DefaultGameKeyMap(),
		hold:     newHoldTracker(defaultHold),
		clock:    &frameClock{nominal: cfg.TickDuration()},
		pending:  core.NewInputFrame(),
		scoreKey: game.ID(),
		runID:    storage.NewRunID(),
		shotDir:  defaultScreenshotDir(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".platformer", "screenshots")
}

// Init resets the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if h, ok := m.game.(inputHolder); ok && h.InputHold() > 0 {
		m.hold.window = h.InputHold()
	}
	m.clock.Reset()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.canReturn && (m.gameState.GameOver || m.gameState.Paused) {
			m.finish()
			m.backToMenu = true
			return m, tea.Quit
		}
		// Esc doubles as pause while playing
		if !m.gameState.GameOver {
			m.pending.Set(core.ActionPause)
		}
	default:
		if isHeld(action) {
			m.hold.Press(action, now)
		} else {
			m.pending.Set(action)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick advances the game by the time since the previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	frame := m.pending.Clone()
	m.pending.Clear()
	m.hold.Apply(&frame, now)
	elapsed := m.clock.Elapsed(now)

	var result core.StepResult
	if adv, ok := m.game.(registry.Advancer); ok {
		result = adv.Advance(frame, elapsed)
	} else {
		result = m.game.Step(frame)
	}

	// A finished game that is running again is a new run
	if m.gameState.GameOver && !result.State.GameOver {
		m.runID = storage.NewRunID()
		m.scoreSaved = false
		m.hold.ReleaseAll()
	}
	m.gameState = result.State

	m.saveRuns(result.Completed)
	m.flushReplays()
	if m.gameState.GameOver {
		m.saveScore()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRuns persists finished levels.
func (m *Model) saveRuns(done []core.LevelResult) {
	if m.store == nil {
		return
	}
	for _, r := range done {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveRun(storage.RunResult{
			RunID:    m.runID,
			LevelID:  r.LevelID,
			Player:   m.player,
			Coins:    r.Coins,
			Deaths:   r.Deaths,
			Duration: r.Duration,
		})
	}
}

// saveScore stores the score of the current run once.
func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.scoreKey, m.gameState.Score)
}

// flushReplays writes finished recordings to the replay directory.
func (m *Model) flushReplays() {
	src, ok := m.game.(replaySource)
	if !ok {
		return
	}
	sessions := src.TakeReplays()
	if len(sessions) == 0 || m.replayDir == "" {
		return
	}
	if err := os.MkdirAll(m.replayDir, 0o755); err != nil {
		return
	}
	for _, s := range sessions {
		//nolint:errcheck // Best-effort save, game continues regardless
		replay.Save(filepath.Join(m.replayDir, replay.FileName(s)), s)
	}
}

// finish saves whatever the current run has produced before the model exits.
func (m *Model) finish() {
	if src, ok := m.game.(replaySource); ok {
		src.FinishRecording()
	}
	m.flushReplays()
	m.saveScore()
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.shotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(m.shotDir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts a Bubble Tea program for one game and blocks until it exits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
