package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the campaign",
	Long: `Play the campaign from the first level, or from the given level
(by ID or 1-based position).

Controls:
  Left/Right, A/D  - Run
  Up/W/Space       - Jump
  P/Esc            - Pause
  R                - Restart the level (the campaign after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow, short monster patrols
  normal - Patrols speed up as levels are cleared
  hard   - Fast, wide monster patrols from the start
  fixed  - No progression

Examples:
  platformer play
  platformer play lvl02
  platformer play 3 --difficulty hard
  platformer play --levels ./my-levels --record`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	levelID := ""
	if len(args) == 1 {
		lvl, err := platformer.ResolveLevel(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'platformer list' to see available levels.")
			os.Exit(1)
		}
		levelID = lvl.ID
	}
	platformer.SetStartLevel(levelID)

	game, err := registry.Create(platformer.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig(), modelOptions(levelID)...)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
