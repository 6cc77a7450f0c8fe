package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the levels of the campaign",
	Long:  `Shows the levels a new game plays, in order.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	platformer.SetLevelLogger(cliLogger())

	campaign, err := platformer.Campaign()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}
	if len(campaign) == 0 {
		fmt.Println("No levels available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, lvl := range campaign {
		maxIDLen = max(maxIDLen, len(lvl.ID))
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-*s  %-7s  %-5s  %s\n", "#", maxIDLen, "ID", "Size", "Coins", "Name")
	fmt.Printf("  %-3s  %-*s  %-7s  %-5s  %s\n", "-", maxIDLen, "--", "----", "-----", "----")

	for i, lvl := range campaign {
		width := 0
		coins := 0
		for _, row := range lvl.Rows {
			width = max(width, len([]rune(row)))
			coins += strings.Count(row, "o")
		}
		size := fmt.Sprintf("%dx%d", width, len(lvl.Rows))
		fmt.Printf("  %-3d  %-*s  %-7s  %-5d  %s\n", i+1, maxIDLen, lvl.ID, size, coins, lvl.Name)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id|#>' to start from a level.")
}
