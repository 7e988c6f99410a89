package tetris

// Rotation is one of the four orientation states, in clockwise order.
type Rotation int

const (
	Rot0 Rotation = iota
	RotR
	Rot2
	RotL
)

// Direction is the sense of a rotation request.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Next returns the state reached by rotating once in dir.
func (r Rotation) Next(dir Direction) Rotation {
	switch dir {
	case Clockwise:
		return (r + 1) % 4
	case CounterClockwise:
		return (r + 3) % 4
	default:
		panic("tetris: unknown rotation direction")
	}
}

func (r Rotation) String() string {
	switch r {
	case Rot0:
		return "0"
	case RotR:
		return "R"
	case Rot2:
		return "2"
	case RotL:
		return "L"
	default:
		return "?"
	}
}

func (d Direction) String() string {
	if d == Clockwise {
		return "cw"
	}
	return "ccw"
}
