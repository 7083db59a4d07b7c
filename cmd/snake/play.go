package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const debugLogFile = "snake-debug.log"

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing. Without a level name the level menu is shown.

Controls:
  Arrows/WASD/HJKL - Steer
  P/Space          - Pause/resume
  R                - Restart (after game over or clear)
  Enter            - Next level (after clear)
  Esc/B            - Back to menu (while paused or after the game)
  Q/Ctrl+C         - Quit

With --verbose, debug logs are written to ` + debugLogFile + ` since the
terminal is busy with the game.

Examples:
  snake play
  snake play easy
  snake play random --seed 42
  snake play tiny --levels ./my-levels.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	level := ""
	if len(args) == 1 {
		level = args[0]
		if !registry.Exists(level) {
			exitf("unknown level %q\nRun 'snake levels' to see available levels.", level)
		}
	}

	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	var gameLog *log.Logger
	if flagVerbose {
		f, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			exitf("cannot open debug log: %v", err)
		}
		defer f.Close()
		gameLog = log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "snake", Level: log.DebugLevel})
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Store:  store,
		Logger: gameLog,
		Config: cfg,
		Player: os.Getenv("USER"),
		Level:  level,
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		exitf("running game: %v", runErr)
	}
}
