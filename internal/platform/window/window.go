// Package window runs the game in a desktop window with Ebiten.
//
// The Ebiten driver is only compiled with the "ebiten" build tag; without it
// Run returns ErrUnavailable. Everything in this file is tag-independent.
package window

import (
	"errors"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("window: built without the ebiten tag; rebuild with -tags ebiten")

// hudHeight is the pixel strip above the board for status text.
const hudHeight = 20

// Options tunes the window frontend.
type Options struct {
	CellSize int         // Pixels per board cell; zero uses 20
	Logger   *log.Logger // Nil discards
}

// actions lists every action the window polls, in frame order.
var actions = []core.Action{
	core.ActionLeft,
	core.ActionRight,
	core.ActionRotateCW,
	core.ActionRotateCCW,
	core.ActionSoftDrop,
	core.ActionHardDrop,
	core.ActionHold,
	core.ActionPause,
	core.ActionRestart,
}

// collectFrame builds one tick's input from press and release edge queries.
func collectFrame(justPressed, justReleased func(core.Action) bool) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		if justPressed(a) {
			in.Set(a)
		}
		if justReleased(a) {
			in.Release(a)
		}
	}
	return in
}

// cellRect returns the pixel rectangle of a board tile.
func cellRect(t tetris.Tile, cell int) (x, y, w, h float32) {
	const gap = 1
	return float32(t.X*cell + gap), float32(hudHeight + t.Y*cell + gap), float32(cell - 2*gap), float32(cell - 2*gap)
}

// screenSize returns the window's logical size for a board.
func screenSize(boardW, boardH, cell int) (int, int) {
	return boardW * cell, hudHeight + boardH*cell
}

var (
	background = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}
	gridColor  = color.RGBA{R: 0x1c, G: 0x1c, B: 0x22, A: 0xff}
)

// rgba maps a block colour to a pixel colour.
func rgba(c core.Color) color.RGBA {
	switch c {
	case core.ColorCyan, core.ColorBrightCyan:
		return color.RGBA{R: 0x00, G: 0xd7, B: 0xd7, A: 0xff}
	case core.ColorYellow, core.ColorBrightYellow:
		return color.RGBA{R: 0xf0, G: 0xd0, B: 0x00, A: 0xff}
	case core.ColorMagenta, core.ColorBrightMagenta:
		return color.RGBA{R: 0xa0, G: 0x00, B: 0xf0, A: 0xff}
	case core.ColorGreen, core.ColorBrightGreen:
		return color.RGBA{R: 0x00, G: 0xe0, B: 0x00, A: 0xff}
	case core.ColorRed, core.ColorBrightRed:
		return color.RGBA{R: 0xf0, G: 0x00, B: 0x00, A: 0xff}
	case core.ColorBlue, core.ColorBrightBlue:
		return color.RGBA{R: 0x00, G: 0x40, B: 0xf0, A: 0xff}
	case core.ColorOrange:
		return color.RGBA{R: 0xf0, G: 0xa0, B: 0x00, A: 0xff}
	case core.ColorGray:
		return color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
	case core.ColorWhite, core.ColorBrightWhite:
		return color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	default:
		return gridColor
	}
}
