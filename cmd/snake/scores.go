package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show high scores for a level",
	Long: `Display the top 10 finished games for the specified level.

Examples:
  snake scores easy
  snake scores easy --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the level")
}

func runScores(_ *cobra.Command, args []string) {
	level := args[0]
	if !registry.Exists(level) {
		exitf("unknown level %q\nRun 'snake levels' to see available levels.", level)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		n, err := store.ClearScores(level)
		if err != nil {
			store.Close()
			exitf("%v", err)
		}
		logger.Info("scores cleared", "level", level, "rows", n)
		return
	}

	scores, err := store.TopScores(level, storage.DefaultLimit)
	if err != nil {
		store.Close()
		exitf("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", level)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", level)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-6s  %-8s  %s\n", "Rank", "Score", "Length", "Outcome", "Date")
	fmt.Printf("  %-4s  %-5s  %-6s  %-8s  %s\n", "----", "-----", "------", "-------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-5d  %-6d  %-8s  %s\n", i+1, e.Score, e.Length, e.Outcome, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(level); err == nil {
		fmt.Printf("Best: %d  Games: %d  Average: %.1f  Longest snake: %d\n",
			stats.HighScore, stats.Sessions, stats.AvgScore, stats.MaxLength)
	}
}
