// snake is a terminal snake game built on a deterministic, clock-free engine.
//
// Usage:
//
//	snake levels                  - List available levels
//	snake play [level]            - Play (level menu when no level is given)
//	snake sim <level> --moves ... - Run a level headless with scripted moves
//	snake scores <level>          - Show high scores for a level
//	snake serve                   - Start SSH server for remote play
//
// Global flags:
//
//	--levels <path> - Levels YAML file (default: ~/.snake/levels.yaml, ./configs/levels.yaml, built-in)
//	--db <path>     - Scores database (default: ~/.snake/scores.db)
//	--seed <value>  - Seed for random levels (0 = time based)
//	--verbose       - Debug logging
//
// SNAKE_LEVELS and SNAKE_DB provide defaults for --levels and --db; they may
// also be set in a .env file in the working directory.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

const defaultDBPath = "~/.snake/scores.db"

var (
	// Global flags
	flagLevels  string
	flagDBPath  string
	flagSeed    int64
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal snake game. Levels are defined in YAML; each level
fixes the grid size, the tick interval and the ordered list of cells where
apples may appear, so every game on a level is reproducible.

Available commands:
  levels   - Show all available levels
  play     - Play a level (or pick one from the menu)
  sim      - Run a level headless with scripted moves
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  snake levels
  snake play
  snake play hard
  snake sim easy --moves "rrrd.." --dump
  snake serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to levels YAML (env SNAKE_LEVELS)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database (env SNAKE_DB)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed for random levels (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup applies environment defaults, configures logging and registers the
// levels every command works with.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not read .env", "error", err)
	}

	flags := cmd.Flags()
	if v, ok := os.LookupEnv("SNAKE_LEVELS"); ok && !flags.Changed("levels") {
		flagLevels = v
	}
	if v, ok := os.LookupEnv("SNAKE_DB"); ok && !flags.Changed("db") {
		flagDBPath = v
	}

	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	file, err := config.LoadLevels(flagLevels)
	if err != nil {
		return err
	}
	levels, err := file.Build(flagSeed)
	if err != nil {
		return fmt.Errorf("invalid levels: %w", err)
	}
	if err := registry.Load(levels); err != nil {
		return err
	}

	logger.Debug("levels loaded", "count", len(levels), "source", levelSource())
	return nil
}

func levelSource() string {
	if flagLevels == "" {
		return "default search path"
	}
	return flagLevels
}

// exitf prints an error and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
