package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var flagPrintDefault bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the levels loaded from the levels file, in file order.

Examples:
  snake levels
  snake levels --levels ./my-levels.yaml
  snake levels --print-default > ~/.snake/levels.yaml`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagPrintDefault, "print-default", false, "Print the built-in levels file and exit")
}

func runLevels(_ *cobra.Command, _ []string) {
	if flagPrintDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	levels := registry.List()
	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	nameW := len("Name")
	for _, l := range levels {
		nameW = max(nameW, len(l.Name))
	}

	fmt.Println("Available levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-7s  %-8s  %-6s  %-6s  %-8s  %s\n", nameW, "Name", "Grid", "Tick", "Apples", "Target", "Reversal", "Next")
	fmt.Printf("  %-*s  %-7s  %-8s  %-6s  %-6s  %-8s  %s\n", nameW, "----", "----", "----", "------", "------", "--------", "----")

	for _, l := range levels {
		target := "-"
		if l.Target > 0 {
			target = fmt.Sprint(l.Target)
		}
		reversal := "guarded"
		if l.Reversal {
			reversal = "allowed"
		}
		next := l.Next
		if next == "" {
			next = "-"
		}
		fmt.Printf("  %-*s  %-7s  %-8s  %-6d  %-6s  %-8s  %s\n",
			nameW, l.Name, fmt.Sprintf("%dx%d", l.Cols, l.Rows), l.Interval, l.Apples, target, reversal, next)
	}

	fmt.Println()
	fmt.Println("Run 'snake play <name>' to play a level.")
}
