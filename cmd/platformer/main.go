// platformer is a tile-based platformer that runs in the terminal.
//
// Usage:
//
//	platformer list                 - List the levels of the campaign
//	platformer play [level]         - Play the campaign, optionally from a level
//	platformer menu                 - Pick levels interactively
//	platformer scores [level]       - Show high scores and fastest runs
//	platformer serve                - Start SSH server for remote play
//	platformer replay <file>        - Verify a recorded replay
//	platformer validate <file...>   - Check level files
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.platformer/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--levels <dir>        - Play levels from a directory
//	--record              - Record replays of every level played
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagRecord     bool
	flagReplayDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - run, jump and collect coins in your terminal",
	Long: `Platformer is a tile-based platformer for the terminal.
Collect every coin in a level to move on. Lava and monsters send you
back to the respawn point.

Available commands:
  list      - Show the levels of the campaign
  play      - Play the campaign
  menu      - Interactive level picker
  scores    - View high scores and fastest runs
  serve     - Start SSH server for remote play
  replay    - Verify a recorded replay
  validate  - Check level files

Examples:
  platformer play
  platformer play lvl02 --difficulty hard
  platformer menu --levels ./my-levels
  platformer serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		platformer.SetConfigPath(flagConfig)
		platformer.SetDifficultyPreset(flagDifficulty)
		platformer.SetLevelsDir(flagLevels)
		platformer.SetRecording(flagRecord)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of level files to play instead of the built-in campaign")
	rootCmd.PersistentFlags().BoolVar(&flagRecord, "record", false, "Record a replay of every level played")
	rootCmd.PersistentFlags().StringVar(&flagReplayDir, "replay-dir", "~/.platformer/replays", "Directory recorded replays are written to")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(validateCmd)
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}

// modelOptions returns the model options shared by play and menu.
func modelOptions(levelID string) []tui.ModelOption {
	opts := []tui.ModelOption{tui.WithScoreKey(platformer.ScoreKey(levelID))}
	if flagRecord {
		opts = append(opts, tui.WithReplayDir(expandHome(flagReplayDir)))
	}
	return opts
}

// cliLogger reports skipped level files on stderr for commands that do not
// take over the terminal.
func cliLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Prefix: "platformer"})
}
