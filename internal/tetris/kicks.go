package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// kickTable holds 5 candidate offsets per row. Row 2*s is the clockwise
// rotation out of state s; row 2*s+1 is the counter-clockwise rotation back
// into state s. Offsets are in board coordinates (y grows downward).
type kickTable [8][5]core.Point

var standardKicks = kickTable{
	{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: 2}, {X: -1, Y: 2}},
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: -2}, {X: 1, Y: -2}},

	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: -2}, {X: 1, Y: -2}},
	{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: 2}, {X: -1, Y: 2}},

	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
	{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: -2}, {X: -1, Y: -2}},

	{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: -2}, {X: -1, Y: -2}},
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
}

var iKicks = kickTable{
	{{X: 0, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: 1}, {X: 1, Y: -2}},
	{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: -1}, {X: -1, Y: 2}},

	{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: -2}, {X: 2, Y: 1}},
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: 2}, {X: -2, Y: -1}},

	{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: -1}, {X: -1, Y: 2}},
	{{X: 0, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: 1}, {X: 1, Y: -2}},

	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: 2}, {X: -2, Y: -1}},
	{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: -2}, {X: 2, Y: 1}},
}

// kickIndex returns the table row for a rotation from state from in dir.
func kickIndex(from Rotation, dir Direction) int {
	if dir == Clockwise {
		return 2 * int(from)
	}
	return 2*int(from.Next(CounterClockwise)) + 1
}

// KickOffsets returns the five offsets to try, in order, when rotating a
// piece of kind k from state from in dir. O never rotates; asking for its
// kicks panics.
func KickOffsets(k Kind, from Rotation, dir Direction) [5]core.Point {
	var table *kickTable
	switch k {
	case KindO:
		panic("tetris: O piece does not rotate and has no wall kicks")
	case KindI:
		table = &iKicks
	default:
		table = &standardKicks
	}

	idx := kickIndex(from, dir)
	if idx < 0 || idx >= len(table) {
		panic(fmt.Sprintf("tetris: kick index %d out of range", idx))
	}
	return table[idx]
}
