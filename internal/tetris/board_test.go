package tetris

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const filler = core.ColorGray

// fillRow occupies row y except the listed columns.
func fillRow(b *Board, y int, gaps ...int) {
	skip := make(map[int]bool)
	for _, x := range gaps {
		skip[x] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			b.Set(x, y, filler)
		}
	}
}

func TestNewBoardPanicsOnInvalidSize(t *testing.T) {
	assert.Panics(t, func() { NewBoard(0, 20) })
	assert.Panics(t, func() { NewBoard(10, -1) })
}

func TestCanMoveBounds(t *testing.T) {
	b := NewBoard(10, 20)
	tests := []struct {
		name   string
		piece  *Piece
		offset core.Point
		want   bool
	}{
		{"inside", NewPiece(KindT, core.Pt(3, 0)), core.Pt(0, 1), true},
		{"left wall", NewPiece(KindT, core.Pt(0, 0)), core.Pt(-1, 0), false},
		{"right wall", NewPiece(KindT, core.Pt(7, 0)), core.Pt(1, 0), false},
		{"above top", NewPiece(KindT, core.Pt(3, 0)), core.Pt(0, -1), false},
		{"floor", NewPiece(KindO, core.Pt(4, 18)), core.Pt(0, 1), false},
		// I occupies only row 1 of its box; the empty rows may hang off-board
		{"I empty rows ignored", NewPiece(KindI, core.Pt(0, 18)), core.Pt(0, 0), true},
		{"I empty rows ignored at floor", NewPiece(KindI, core.Pt(0, 18)), core.Pt(0, 1), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, b.CanMove(tc.piece, tc.offset))
		})
	}
}

func TestCanMoveRejectsOccupied(t *testing.T) {
	b := NewBoard(10, 20)
	b.Set(4, 3, filler)
	p := NewPiece(KindO, core.Pt(4, 0))

	assert.True(t, b.CanMove(p, core.Pt(0, 1)))
	assert.False(t, b.CanMove(p, core.Pt(0, 2)))
	assert.True(t, b.CanMove(p, core.Pt(2, 2)))
}

func TestGhostDropsToRestingRow(t *testing.T) {
	b := NewBoard(10, 20)
	p := NewPiece(KindO, core.Pt(4, 0))

	ghost := b.Ghost(p)
	assert.Equal(t, core.Pt(4, 18), ghost.Pos)
	assert.True(t, ghost.Ghost)
	assert.Equal(t, GhostColor, ghost.Color)
	assert.Equal(t, core.Pt(4, 0), p.Pos, "ghost must not move the piece")
	assert.False(t, b.CanMove(ghost, core.Pt(0, 1)))

	b.Set(5, 10, filler)
	assert.Equal(t, core.Pt(4, 8), b.Ghost(p).Pos)
}

func TestLockAndClearSingleRow(t *testing.T) {
	b := NewBoard(4, 6)
	fillRow(b, 5, 1, 2)
	b.Set(0, 4, core.ColorRed)

	p := NewPiece(KindO, core.Pt(1, 4))
	b.Lock(p)
	require.True(t, b.RowFull(5))

	assert.Equal(t, 1, b.ClearFullRows())

	want := NewBoard(4, 6)
	want.Set(0, 5, core.ColorRed)
	want.Set(1, 5, core.ColorYellow)
	want.Set(2, 5, core.ColorYellow)
	if diff := cmp.Diff(want.Rows(), b.Rows()); diff != "" {
		t.Errorf("board after clear (-want +got):\n%s", diff)
	}
}

func TestClearShiftsRowsAboveOnly(t *testing.T) {
	b := NewBoard(4, 8)
	b.Set(1, 2, core.ColorBlue) // Above the cleared rows
	fillRow(b, 4)
	b.Set(0, 5, core.ColorGreen) // Between two full rows
	fillRow(b, 6)
	b.Set(3, 7, core.ColorRed) // Below every full row

	assert.Equal(t, 2, b.ClearFullRows())

	want := NewBoard(4, 8)
	want.Set(1, 4, core.ColorBlue)
	want.Set(0, 6, core.ColorGreen)
	want.Set(3, 7, core.ColorRed)
	if diff := cmp.Diff(want.Rows(), b.Rows()); diff != "" {
		t.Errorf("board after clear (-want +got):\n%s", diff)
	}
	for y := 0; y < b.Height(); y++ {
		assert.False(t, b.RowFull(y), "row %d left full", y)
	}
}

func TestClearStackedRows(t *testing.T) {
	b := NewBoard(4, 6)
	for y := 2; y < 6; y++ {
		fillRow(b, y)
	}
	b.Set(2, 1, core.ColorCyan)

	assert.Equal(t, 4, b.ClearFullRows())
	assert.Equal(t, core.ColorCyan, b.At(2, 5))
	assert.Equal(t, Empty, b.At(2, 1))
}

func TestTopRowNeverCleared(t *testing.T) {
	b := NewBoard(4, 6)
	fillRow(b, 0)

	assert.Equal(t, 0, b.ClearFullRows())
	assert.True(t, b.RowFull(0))
	assert.True(t, b.TopRowOccupied())
}

func TestTryRotateUsesThirdKick(t *testing.T) {
	b := NewBoard(10, 20)
	b.Set(4, 12, filler)
	b.Set(5, 12, filler)
	p := NewPiece(KindT, core.Pt(4, 10))

	rotated := b.TryRotate(p, Clockwise)
	require.NotNil(t, rotated)
	assert.Equal(t, core.Pt(3, 9), rotated.Pos)
	assert.Equal(t, RotR, rotated.Rotation)
	assert.Equal(t, core.Pt(4, 10), p.Pos, "input piece must be untouched")
	assert.Equal(t, Rot0, p.Rotation)
}

func TestTryRotateRejectsWhenNoKickFits(t *testing.T) {
	b := NewBoard(3, 3)
	fillRow(b, 2)
	p := NewPiece(KindT, core.Pt(0, 0))
	// T in state 0 sits on rows 0-1; every rotated candidate needs row 2 or
	// leaves the board.
	require.True(t, b.CanMove(p, core.Point{}))
	assert.Nil(t, b.TryRotate(p, Clockwise))
	assert.Nil(t, b.TryRotate(p, CounterClockwise))
}

func TestTryRotateIgnoresO(t *testing.T) {
	b := NewBoard(10, 20)
	assert.Nil(t, b.TryRotate(NewPiece(KindO, core.Pt(4, 0)), Clockwise))
}

func TestKickOffsets(t *testing.T) {
	assert.Panics(t, func() { KickOffsets(KindO, Rot0, Clockwise) })

	assert.Equal(t, core.Pt(-1, -1), KickOffsets(KindT, Rot0, Clockwise)[2])
	assert.Equal(t, core.Pt(-2, 0), KickOffsets(KindI, Rot0, Clockwise)[1])

	// CCW out of R shares row 1 with CW into R
	assert.Equal(t, standardKicks[1], KickOffsets(KindJ, RotR, CounterClockwise))
	assert.Equal(t, iKicks[7], KickOffsets(KindI, Rot0, CounterClockwise))

	for _, k := range []Kind{KindI, KindT} {
		for r := Rot0; r <= RotL; r++ {
			for _, dir := range []Direction{Clockwise, CounterClockwise} {
				assert.Equal(t, core.Point{}, KickOffsets(k, r, dir)[0], "%s %s %s", k, r, dir)
			}
		}
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoard(4, 4)
	c := b.Clone()
	c.Set(0, 0, filler)
	assert.Equal(t, Empty, b.At(0, 0))
}
