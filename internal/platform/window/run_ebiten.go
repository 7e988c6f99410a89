//go:build ebiten

package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:      {ebiten.KeyLeft, ebiten.KeyA},
	core.ActionRight:     {ebiten.KeyRight, ebiten.KeyD},
	core.ActionRotateCW:  {ebiten.KeyUp, ebiten.KeyX},
	core.ActionRotateCCW: {ebiten.KeyNumpad0, ebiten.KeyZ},
	core.ActionSoftDrop:  {ebiten.KeyDown, ebiten.KeyS},
	core.ActionHardDrop:  {ebiten.KeySpace},
	core.ActionHold:      {ebiten.KeyC},
	core.ActionPause:     {ebiten.KeyP},
	core.ActionRestart:   {ebiten.KeyR},
}

func justPressed(a core.Action) bool {
	for _, k := range keyBindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func justReleased(a core.Action) bool {
	for _, k := range keyBindings[a] {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}

// app adapts the engine to ebiten.Game. Ebiten calls Update once per tick at
// the configured TPS, so every Update is exactly one simulation step.
type app struct {
	game *tetris.Game
	cell int
	log  *log.Logger
	over bool
}

func (a *app) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	res := a.game.Step(collectFrame(justPressed, justReleased))
	if res.State.GameOver && !a.over {
		a.log.Info("game over", "lines", res.State.Score)
	}
	a.over = res.State.GameOver
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	s := a.game.Snapshot()

	for _, t := range s.Board {
		x, y, w, h := cellRect(t, a.cell)
		vector.DrawFilledRect(screen, x, y, w, h, rgba(t.Color), false)
	}
	for _, t := range s.Ghost {
		x, y, w, h := cellRect(t, a.cell)
		vector.StrokeRect(screen, x, y, w, h, 1, rgba(t.Color), false)
	}
	for _, t := range s.Active {
		x, y, w, h := cellRect(t, a.cell)
		vector.DrawFilledRect(screen, x, y, w, h, rgba(t.Color), false)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines: %d", s.Lines), 4, 2)
	switch {
	case s.State == tetris.StateGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", s.Width*a.cell/2-27, hudHeight+s.Height*a.cell/2)
	case s.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", s.Width*a.cell/2-18, hudHeight+s.Height*a.cell/2)
	}
}

func (a *app) Layout(_, _ int) (int, int) {
	b := a.game.Board()
	return screenSize(b.Width(), b.Height(), a.cell)
}

// Run resets game and blocks until the window is closed.
func Run(game *tetris.Game, rc core.RuntimeConfig, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.SetLogger(logger)
	rc.TickRate = rc.Rate()
	game.Reset(rc)

	cell := opts.CellSize
	if cell <= 0 {
		cell = 20
	}
	a := &app{game: game, cell: cell, log: logger}
	w, h := a.Layout(0, 0)

	ebiten.SetTPS(rc.TickRate)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	logger.Info("window opened", "width", w, "height", h, "tps", rc.TickRate)

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
