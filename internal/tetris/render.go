package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Each board cell is two terminal columns wide so blocks look square.
const cellW = 2

// Render draws the board, the falling piece and its ghost into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.Snapshot()

	frameW := s.Width*cellW + 2
	frameH := s.Height + 2
	if dst.Width() < frameW || dst.Height() < frameH+1 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	ox := (dst.Width() - frameW) / 2
	oy := (dst.Height() - frameH - 1) / 2
	dst.DrawText(ox, oy, fmt.Sprintf("Lines: %d", s.Lines))
	oy++
	dst.DrawBox(core.NewRect(ox, oy, frameW, frameH))

	for _, t := range s.Board {
		if t.Color == Empty {
			drawCell(dst, ox, oy, t, ' ')
			continue
		}
		drawCell(dst, ox, oy, t, '█')
	}
	for _, t := range s.Ghost {
		drawCell(dst, ox, oy, t, '░')
	}
	for _, t := range s.Active {
		drawCell(dst, ox, oy, t, '█')
	}

	switch {
	case s.State == StateGameOver:
		drawOverlay(dst, oy+frameH/2, "GAME OVER", "R restart  Q quit")
	case s.Paused:
		drawOverlay(dst, oy+frameH/2, "PAUSED", "P to continue")
	}
}

// drawCell paints one board tile relative to the frame at (ox, oy).
func drawCell(dst *core.Screen, ox, oy int, t Tile, r rune) {
	x := ox + 1 + t.X*cellW
	y := oy + 1 + t.Y
	for i := 0; i < cellW; i++ {
		dst.SetCell(x+i, y, r, t.Color)
	}
}

func drawOverlay(dst *core.Screen, y int, title, hint string) {
	w := max(len(title), len(hint)) + 4
	box := core.NewRect((dst.Width()-w)/2, y-2, w, 5)
	dst.ClearRect(box)
	dst.DrawBox(box)
	dst.DrawTextCentered(y-1, title)
	dst.DrawTextCentered(y+1, hint)
}
