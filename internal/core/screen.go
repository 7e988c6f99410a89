package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position of a Screen.
type Cell struct {
	Rune  rune
	Color Color
}

// blank is the content of a cleared cell.
var blank = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a character buffer games draw into. Frontends turn it into
// terminal output; games never touch the terminal themselves.
// Writes outside the buffer are dropped, reads outside it return a blank.
type Screen struct {
	width  int
	height int
	cells  []Cell // row-major
}

// NewScreen returns a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

func (s *Screen) Width() int { return s.width }
func (s *Screen) Height() int { return s.height }

// Bounds returns the drawable area.
func (s *Screen) Bounds() Rect { return NewRect(0, 0, s.width, s.height) }

// index maps (x, y) to a position in cells.
func (s *Screen) index(x, y int) (int, bool) {
	if !s.Bounds().Contains(x, y) {
		return 0, false
	}
	return y*s.width + x, true
}

// Resize changes the dimensions. The overlapping top-left region survives,
// everything else is blank.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.cells != nil && width == s.width && height == s.height {
		return
	}

	next := make([]Cell, width*height)
	for i := range next {
		next[i] = blank
	}
	for y := 0; y < min(height, s.height); y++ {
		n := min(width, s.width)
		copy(next[y*width:y*width+n], s.cells[y*s.width:y*s.width+n])
	}
	s.width, s.height, s.cells = width, height, next
}

// Clear blanks the whole screen.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// SetCell places a coloured rune.
func (s *Screen) SetCell(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// GetCell returns the cell at (x, y).
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// DrawText writes text left to right from (x, y) in the default colour,
// clipping at the edges.
func (s *Screen) DrawText(x, y int, text string) {
	for _, r := range text {
		s.SetCell(x, y, r, ColorDefault)
		x++
	}
}

// DrawTextCentered draws text horizontally centred on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-utf8.RuneCountInString(text))/2, y, text)
}

// ClearRect blanks every cell inside r.
func (s *Screen) ClearRect(r Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, blank.Rune, blank.Color)
		}
	}
}

// DrawBox outlines r with single-line box-drawing runes.
func (s *Screen) DrawBox(r Rect) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.SetCell(x, r.Y, '─', ColorDefault)
		s.SetCell(x, bottom, '─', ColorDefault)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetCell(r.X, y, '│', ColorDefault)
		s.SetCell(right, y, '│', ColorDefault)
	}
	s.SetCell(r.X, r.Y, '┌', ColorDefault)
	s.SetCell(right, r.Y, '┐', ColorDefault)
	s.SetCell(r.X, bottom, '└', ColorDefault)
	s.SetCell(right, bottom, '┘', ColorDefault)
}

// String returns the screen as newline-separated rows, without colours.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(len(s.cells) + s.height)
	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range s.cells[y*s.width : (y+1)*s.width] {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
