package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores and fastest runs",
	Long: `Without a level, display the top 10 campaign scores and a summary of
every start point played. With a level (ID or 1-based position), display
its fastest completions.

Examples:
  platformer scores
  platformer scores lvl02
  platformer scores lvl02 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the scores (and runs, for a level) instead of showing them")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			clearScores(store, "")
			return
		}
		showCampaignScores(store)
		return
	}

	lvl, err := platformer.ResolveLevel(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagClear {
		clearScores(store, lvl.ID)
		return
	}
	showLevelRuns(store, lvl.ID, lvl.Name)
}

func clearScores(store *storage.Store, levelID string) {
	if err := store.ClearScores(platformer.ScoreKey(levelID)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := store.ClearRuns(levelID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if levelID == "" {
		fmt.Println("Cleared campaign scores and all runs.")
		return
	}
	fmt.Printf("Cleared scores and runs for %s.\n", levelID)
}

func showCampaignScores(store *storage.Store) {
	scores, err := store.TopScores(platformer.GameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Campaign")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	all, err := store.GetAllGamesStats()
	if err != nil || len(all) == 0 {
		return
	}
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println()
	fmt.Println("By start point:")
	fmt.Printf("  %-22s  %-5s  %-6s  %s\n", "Start", "Games", "Best", "Last played")
	for _, k := range keys {
		st := all[k]
		start := "campaign"
		if id, ok := strings.CutPrefix(k, platformer.GameID+":"); ok {
			start = id
		}
		fmt.Printf("  %-22s  %-5d  %-6d  %s\n", start, st.GamesCount, st.HighScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func showLevelRuns(store *storage.Store, levelID, name string) {
	runs, err := store.BestRuns(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Fastest Runs - %s (%s)\n", name, levelID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("Nobody has cleared this level yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play %s' to set the first time!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-9s  %-6s  %-5s  %-12s  %s\n", "Rank", "Time", "Deaths", "Coins", "Player", "Date")
	fmt.Printf("  %-4s  %-9s  %-6s  %-5s  %-12s  %s\n", "----", "----", "------", "-----", "------", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-9s  %-6d  %-5d  %-12s  %s\n",
			i+1, fmt.Sprintf("%.2fs", r.Duration.Seconds()), r.Deaths, r.Coins, player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.LevelStats(levelID); err == nil {
		fmt.Println()
		fmt.Printf("Completions: %d  |  Average deaths: %.1f\n", stats.Completions, stats.AvgDeaths)
	}
	if high, err := store.HighScore(platformer.ScoreKey(levelID)); err == nil && high > 0 {
		fmt.Printf("Best score starting here: %d\n", high)
	}
}
