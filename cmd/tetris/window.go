package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/window"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var flagCellSize int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window. Requires a build with -tags ebiten.

The window reports real key releases, so holds and soft drop follow the
keyboard exactly. Esc or Q closes the window.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagCellSize, "cell", 0, "Cell size in pixels (0 = use config)")
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cell := cfg.Window.CellSize
	if flagCellSize > 0 {
		cell = flagCellSize
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return window.Run(tetris.NewWithConfig(cfg), core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     seed,
	}, window.Options{
		CellSize: cell,
		Logger:   logger,
	})
}

func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
