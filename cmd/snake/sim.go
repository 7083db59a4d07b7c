package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagMoves string
	flagTicks int
	flagDump  bool
)

var simCmd = &cobra.Command{
	Use:   "sim <level>",
	Short: "Run a level headless with scripted moves",
	Long: `Run a level without a terminal UI. Each character of --moves is applied
before one tick: U, D, L, R turn the snake, '.' keeps the current heading.
Whitespace is ignored. The run stops when the game ends or after --ticks
ticks (default: one per move).

Output is one line per tick; --dump adds the final state as YAML.

Examples:
  snake sim easy --moves "rrrrdddd"
  snake sim easy --moves "r" --ticks 30
  snake sim random --seed 7 --moves "..dd..ll" --dump`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVarP(&flagMoves, "moves", "m", "", "Moves to apply, one per tick (U/D/L/R or '.')")
	simCmd.Flags().IntVarP(&flagTicks, "ticks", "n", 0, "Number of ticks to run (0 = one per move)")
	simCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the final state as YAML")
}

func runSim(_ *cobra.Command, args []string) {
	e, err := registry.Create(args[0])
	if err != nil {
		exitf("%v\nRun 'snake levels' to see available levels.", err)
	}

	moves, err := parseMoves(flagMoves)
	if err != nil {
		exitf("%v", err)
	}

	ticks := flagTicks
	if ticks <= 0 {
		ticks = len(moves)
	}

	if err := simulate(os.Stdout, e, moves, ticks); err != nil {
		exitf("%v", err)
	}

	if flagDump {
		fmt.Println("---")
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(e.Snapshot()); err != nil {
			exitf("encoding snapshot: %v", err)
		}
		enc.Close()
	}
}

// parseMoves turns a move script into directions; DirNone keeps the heading.
func parseMoves(script string) ([]core.Direction, error) {
	var moves []core.Direction
	for i, r := range script {
		if unicode.IsSpace(r) {
			continue
		}
		if r == '.' {
			moves = append(moves, core.DirNone)
			continue
		}
		d, err := core.ParseDirection(string(r))
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// simulate drives the engine as a clock would, writing one line per tick.
// It stops early when the session ends. Running out of apple cells is
// reported on w and is not an error.
func simulate(w io.Writer, e *engine.Engine, moves []core.Direction, ticks int) error {
	for i := 0; i < ticks; i++ {
		if i < len(moves) && moves[i] != core.DirNone {
			if err := e.SetDirection(moves[i]); err != nil {
				return fmt.Errorf("tick %d: %w", i+1, err)
			}
		}

		res, err := e.Tick()
		var spawnErr *engine.NoValidSpawnError
		if errors.As(err, &spawnErr) {
			fmt.Fprintf(w, "tick %4d  stopped: %v\n", e.Ticks()+1, spawnErr)
			return nil
		}
		if err != nil {
			return fmt.Errorf("tick %d: %w", i+1, err)
		}

		fmt.Fprintf(w, "tick %4d  %-8s head=%-8s len=%-3d score=%d\n",
			res.Tick, res.Outcome, res.Head, len(res.Snake), res.Score)
		if res.Terminal() {
			fmt.Fprintf(w, "%s after %d ticks, score %d\n", strings.ReplaceAll(res.State.String(), "_", " "), res.Tick, res.Score)
			return nil
		}
	}
	return nil
}
