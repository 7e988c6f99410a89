package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var flagReleaseMS int

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The game defaults to "tetris".

Controls:
  ←/a  →/d     - Move (hold to auto-repeat)
  ↑/x          - Rotate clockwise
  z/0          - Rotate counter-clockwise
  ↓/s          - Soft drop (while held)
  Space        - Hard drop
  c            - Hold (freezes the game while held)
  p/Esc        - Pause
  r            - Restart (after game over)
  ?            - Toggle help
  q/Ctrl+C     - Quit

Terminals report key presses but not releases; a key counts as released when
its auto-repeat stops for --release-ms milliseconds.

Difficulty options:
  easy   - One row per 64 ticks
  normal - One row per 32 ticks
  hard   - One row per 16 ticks
  fixed  - Keep the fall rate from the config file

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --config ./my-tetris.yaml --log-file tetris.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagReleaseMS, "release-ms", 0, "Key release timeout in ms (0 = use config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "tetris"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'tetris list' to see available games)", gameID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	release := cfg.Input.ReleaseTimeout()
	if flagReleaseMS > 0 {
		release = msDuration(flagReleaseMS)
	}

	// Stderr belongs to the terminal UI; only log when a file was given
	uiLogger := logger
	if flagLogFile == "" {
		uiLogger = log.New(io.Discard)
	}

	return tui.Run(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, tui.Options{
		ReleaseTimeout: release,
		Logger:         uiLogger,
	})
}
