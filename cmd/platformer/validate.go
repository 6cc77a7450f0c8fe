package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file...>",
	Short: "Check level files",
	Long: `Parse each level file and build its plan, reporting the first problem
found in each. Exits with status 1 if any file is invalid.

Examples:
  platformer validate ./my-levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func runValidate(_ *cobra.Command, args []string) {
	failed := 0
	for _, p := range args {
		lvl, err := levels.LoadFile(p)
		if err == nil {
			err = lvl.Validate()
		}
		if err != nil {
			failed++
			fmt.Printf("FAIL  %s: %v\n", p, err)
			continue
		}
		fmt.Printf("OK    %s (%s, %d rows)\n", p, lvl.ID, len(lvl.Rows))
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d level files invalid\n", failed, len(args))
		os.Exit(1)
	}
}
