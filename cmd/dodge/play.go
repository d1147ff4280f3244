package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
	"github.com/vovakirdan/dodge-arcade/internal/platform/tui"
	"github.com/vovakirdan/dodge-arcade/internal/platform/window"
	"github.com/vovakirdan/dodge-arcade/internal/registry"
)

var (
	flagWindow bool
	flagAssets string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD/HJKL  - Move
  Space/Enter       - Start (menu), back to menu (game over)
  P                 - Pause
  Esc/B             - Back to game list (terminal), close (window)
  Q/Ctrl+C          - Quit

The terminal has no key-release events, so a key counts as held for a
short moment after each press; keep it pressed to keep moving.

Examples:
  dodge play bttf
  dodge play comets --seed 42
  dodge play rainfall --window --assets ./assets
  dodge play bttf --config ./my-bttf.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of playing in the terminal")
	playCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory with sprites, fonts and sounds (window mode)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dodge list' to see available games.")
		os.Exit(1)
	}

	// Surface config problems before any frontend takes over the screen.
	if _, err := config.Load(gameID, flagConfig); err != nil {
		fail("%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	if flagWindow {
		logger, closeLog, err := newLogger(os.Stderr)
		if err != nil {
			fail("%v", err)
		}
		defer closeLog()

		if err := window.Run(game, runtimeConfig(), flagAssets, logger); err != nil {
			closeLog()
			fail("%v", err)
		}
		return
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	if _, err := tui.Run(game, runtimeConfig(), logger); err != nil {
		closeLog()
		fail("running game: %v", err)
	}
}

// runtimeConfig builds the frontend settings from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
