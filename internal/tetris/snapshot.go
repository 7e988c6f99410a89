package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Snapshot is the read-only view handed to renderers. It also captures enough
// engine state for determinism checks.
type Snapshot struct {
	Width  int
	Height int
	Board  []Tile // Every board cell in row-major order, Empty included
	Active []Tile // Nil once the game is over
	Ghost  []Tile // Nil when disabled or no piece is falling
	State  State
	Paused bool

	Tick     uint64
	Lines    int
	Kind     Kind
	Rotation Rotation
	Pos      core.Point
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Width:  g.board.Width(),
		Height: g.board.Height(),
		Board:  g.board.Tiles(),
		State:  g.state,
		Paused: g.paused,
		Tick:   g.tick,
		Lines:  g.lines,
	}
	if g.active != nil {
		s.Active = g.active.Tiles()
		s.Kind = g.active.Kind
		s.Rotation = g.active.Rotation
		s.Pos = g.active.Pos
	}
	if g.ghost != nil {
		s.Ghost = g.ghost.Tiles()
	}
	return s
}
