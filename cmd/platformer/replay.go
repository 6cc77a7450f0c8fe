package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Verify a recorded replay",
	Long: `Replay a recorded level run and check that the simulation ends in the
recorded state. Replays are written by 'platformer play --record'.

Examples:
  platformer replay ~/.platformer/replays/lvl01-<id>.replay`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	session, err := replay.Load(expandHome(args[0]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Replay %s\n", session.ID)
	fmt.Printf("  Level:    %s\n", session.LevelID)
	fmt.Printf("  Recorded: %s\n", session.Recorded.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Frames:   %d (%.2fs)\n", len(session.Frames), session.Duration().Seconds())
	fmt.Printf("  Final:    player %v, %d coins left, %d deaths\n",
		session.Final.Player, session.Final.CoinsLeft, session.Final.Deaths)

	got, err := replay.Verify(session)
	switch {
	case errors.Is(err, replay.ErrMismatch):
		fmt.Printf("  Replayed: player %v, %d coins left, %d deaths\n", got.Player, got.CoinsLeft, got.Deaths)
		fmt.Fprintln(os.Stderr, "FAIL: replay diverged from the recording")
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OK: replay matches the recording")
}
