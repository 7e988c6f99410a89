package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// GhostColor is the fixed colour of the drop preview.
const GhostColor = core.ColorGray

// Tile is one occupied board cell of a piece or the board.
type Tile struct {
	X, Y  int
	Color core.Color
}

// Piece is the falling tetromino. Pos is the board position of the top-left
// corner of its square bounding box; it may be off-board while kicks are
// being tested.
type Piece struct {
	Kind     Kind
	Rotation Rotation
	Shape    [][]bool
	Pos      core.Point
	Color    core.Color
	Ghost    bool
}

// NewPiece creates a piece of kind k in rotation state 0 at pos.
func NewPiece(k Kind, pos core.Point) *Piece {
	return &Piece{
		Kind:     k,
		Rotation: Rot0,
		Shape:    k.Shape(),
		Pos:      pos,
		Color:    k.Color(),
	}
}

// Size returns the side length of the bounding box.
func (p *Piece) Size() int {
	return len(p.Shape)
}

// Clone returns a deep copy; the shape matrix is not shared.
func (p *Piece) Clone() *Piece {
	c := *p
	c.Shape = make([][]bool, len(p.Shape))
	for y, row := range p.Shape {
		c.Shape[y] = append([]bool(nil), row...)
	}
	return &c
}

// Rotate turns the shape 90 degrees in dir and advances the rotation state.
// It does not check the board; callers validate the result (see Board.TryRotate).
func (p *Piece) Rotate(dir Direction) {
	n := len(p.Shape)
	rotated := make([][]bool, n)
	for r := 0; r < n; r++ {
		rotated[r] = make([]bool, n)
		for c := 0; c < n; c++ {
			if dir == Clockwise {
				rotated[r][c] = p.Shape[n-1-c][r]
			} else {
				rotated[r][c] = p.Shape[c][n-1-r]
			}
		}
	}
	p.Shape = rotated
	p.Rotation = p.Rotation.Next(dir)
}

// Tiles returns the occupied cells in row-major order of the shape matrix,
// offset by the piece position. Computed fresh on every call.
func (p *Piece) Tiles() []Tile {
	tiles := make([]Tile, 0, 4)
	for y, row := range p.Shape {
		for x, filled := range row {
			if filled {
				tiles = append(tiles, Tile{X: p.Pos.X + x, Y: p.Pos.Y + y, Color: p.Color})
			}
		}
	}
	return tiles
}

// SpawnPosition returns the fixed spawn point for a kind on a board of the
// given width: horizontally centred (rounding left), top row.
func SpawnPosition(k Kind, width int) core.Point {
	size := len(shapes[KindFromIndex(int(k))])
	return core.Pt((width-size)/2, 0)
}
