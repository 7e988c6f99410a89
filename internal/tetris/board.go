package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Empty marks a board cell with no locked block.
const Empty = core.ColorDefault

// Board is the grid of locked blocks. Origin is top-left, row 0 is the top.
// It only changes through Lock and ClearFullRows.
type Board struct {
	width  int
	height int
	cells  []core.Color // row-major, width*height
}

// NewBoard creates an all-empty board. Non-positive dimensions panic.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid board size %dx%d", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]core.Color, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether (x, y) is on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the colour at (x, y), Empty for off-board coordinates.
func (b *Board) At(x, y int) core.Color {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.cells[y*b.width+x]
}

// Set writes a cell directly. Used to build fixtures; gameplay goes through Lock.
func (b *Board) Set(x, y int, c core.Color) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// CanMove reports whether p, shifted by offset, lies entirely on empty
// on-board cells. Only occupied cells of the shape are checked. This is the
// one collision predicate used for movement, rotation and ghost projection.
func (b *Board) CanMove(p *Piece, offset core.Point) bool {
	for y, row := range p.Shape {
		for x, filled := range row {
			if !filled {
				continue
			}
			bx := p.Pos.X + x + offset.X
			by := p.Pos.Y + y + offset.Y
			if !b.InBounds(bx, by) {
				return false
			}
			if b.cells[by*b.width+bx] != Empty {
				return false
			}
		}
	}
	return true
}

// TryRotate attempts to rotate p in dir using the kick table. It returns the
// rotated piece at the first legal kick offset, or nil if none of the five
// candidates fit. p itself is never modified.
func (b *Board) TryRotate(p *Piece, dir Direction) *Piece {
	if !p.Kind.CanRotate() {
		return nil
	}
	kicks := KickOffsets(p.Kind, p.Rotation, dir)
	tentative := p.Clone()
	tentative.Rotate(dir)
	for _, kick := range kicks {
		if b.CanMove(tentative, kick) {
			tentative.Pos = tentative.Pos.Add(kick)
			return tentative
		}
	}
	return nil
}

// Ghost projects a gray, non-interactive copy of p straight down to the
// deepest row it can reach from its current column.
func (b *Board) Ghost(p *Piece) *Piece {
	ghost := p.Clone()
	ghost.Color = GhostColor
	ghost.Ghost = true
	for b.CanMove(ghost, core.Pt(0, 1)) {
		ghost.Pos.Y++
	}
	return ghost
}

// Lock copies the occupied cells of p into the board using p's colour.
// Cells outside the board are ignored.
func (b *Board) Lock(p *Piece) {
	for _, t := range p.Tiles() {
		b.Set(t.X, t.Y, t.Color)
	}
}

// RowFull reports whether every cell in row y is occupied.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row among rows 1..height-1, bottom-up.
// Each removal shifts the rows above it down by one and empties row 0; the
// same index is re-checked afterwards so stacked clears resolve in one pass.
// Row 0 is never cleared: it is the overflow row inspected by TopRowOccupied.
// Returns how many rows were removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := b.height - 1; y >= 1; {
		if !b.RowFull(y) {
			y--
			continue
		}
		b.collapse(y)
		cleared++
	}
	return cleared
}

// collapse removes row y, moving rows 0..y-1 down one and emptying row 0.
func (b *Board) collapse(y int) {
	copy(b.cells[b.width:(y+1)*b.width], b.cells[:y*b.width])
	for x := 0; x < b.width; x++ {
		b.cells[x] = Empty
	}
}

// TopRowOccupied reports whether any cell of row 0 holds a block.
func (b *Board) TopRowOccupied() bool {
	for x := 0; x < b.width; x++ {
		if b.cells[x] != Empty {
			return true
		}
	}
	return false
}

// Tiles returns every board cell, empty ones included, in row-major order.
func (b *Board) Tiles() []Tile {
	tiles := make([]Tile, 0, len(b.cells))
	for i, c := range b.cells {
		tiles = append(tiles, Tile{X: i % b.width, Y: i / b.width, Color: c})
	}
	return tiles
}

// Rows returns a copy of the board as rows of colours.
func (b *Board) Rows() [][]core.Color {
	rows := make([][]core.Color, b.height)
	for y := range rows {
		rows[y] = append([]core.Color(nil), b.cells[y*b.width:(y+1)*b.width]...)
	}
	return rows
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	c.cells = append([]core.Color(nil), b.cells...)
	return &c
}
