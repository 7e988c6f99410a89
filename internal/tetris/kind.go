package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of distinct tetrominoes.
const KindCount = 7

// Kinds lists every kind in index order.
var Kinds = [KindCount]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// Base shapes in rotation state 0. Row-major, square, '#' is occupied.
var shapes = [KindCount][]string{
	KindI: {
		"....",
		"####",
		"....",
		"....",
	},
	KindO: {
		"##",
		"##",
	},
	KindT: {
		".#.",
		"###",
		"...",
	},
	KindS: {
		".##",
		"##.",
		"...",
	},
	KindZ: {
		"##.",
		".##",
		"...",
	},
	KindJ: {
		"#..",
		"###",
		"...",
	},
	KindL: {
		"..#",
		"###",
		"...",
	},
}

var colors = [KindCount]core.Color{
	KindI: core.ColorCyan,
	KindO: core.ColorYellow,
	KindT: core.ColorMagenta,
	KindS: core.ColorGreen,
	KindZ: core.ColorRed,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
}

// KindFromIndex converts 0..6 to a Kind. Any other index is a programming
// error and panics.
func KindFromIndex(i int) Kind {
	if i < 0 || i >= KindCount {
		panic(fmt.Sprintf("tetris: kind index %d out of range", i))
	}
	return Kind(i)
}

// RandomKind draws a kind uniformly from the seven tetrominoes.
func RandomKind(rng *rand.Rand) Kind {
	return KindFromIndex(rng.Intn(KindCount))
}

// ParseKind converts a single letter ("I", "O", ...) to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("tetris: unknown piece kind %q", s)
}

// Shape returns a fresh copy of the kind's base occupancy matrix.
func (k Kind) Shape() [][]bool {
	rows := shapes[KindFromIndex(int(k))]
	shape := make([][]bool, len(rows))
	for y, row := range rows {
		shape[y] = make([]bool, len(row))
		for x, ch := range row {
			shape[y][x] = ch == '#'
		}
	}
	return shape
}

// Color returns the kind's fixed block colour.
func (k Kind) Color() core.Color {
	return colors[KindFromIndex(int(k))]
}

// CanRotate reports whether rotation requests apply to this kind.
func (k Kind) CanRotate() bool {
	return k != KindO
}

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}
