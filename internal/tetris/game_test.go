package tetris

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func newTestGame(t *testing.T, seed int64, mutate ...func(*config.TetrisConfig)) *Game {
	t.Helper()
	cfg := config.DefaultTetrisConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	require.Equal(t, StatePlaying, g.state)
	require.NotNil(t, g.active)
	return g
}

// place swaps the active piece for a known kind at pos.
func place(g *Game, k Kind, pos core.Point) {
	g.active = NewPiece(k, pos)
	g.vertical = 0
	g.horizontal = 0
	g.updateGhost()
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func release(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Release(a)
	}
	return in
}

func idle(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

func TestNormalGravityFallsOneRowPer64Ticks(t *testing.T) {
	g := newTestGame(t, 1)
	place(g, KindT, core.Pt(3, 0))

	idle(g, 63)
	assert.Equal(t, 0, g.active.Pos.Y, "no fall before 64 ticks")

	idle(g, 1)
	assert.Equal(t, 1, g.active.Pos.Y)
	assert.Zero(t, g.vertical)
}

func TestSoftDropFallsEveryTick(t *testing.T) {
	g := newTestGame(t, 1)
	place(g, KindT, core.Pt(3, 0))

	g.Step(press(core.ActionSoftDrop))
	idle(g, 4)
	assert.Equal(t, 5, g.active.Pos.Y)

	g.Step(release(core.ActionSoftDrop))
	idle(g, 10)
	assert.Equal(t, 5, g.active.Pos.Y, "released soft drop returns to normal gravity")
}

func TestHardDropLocksAtBottom(t *testing.T) {
	g := newTestGame(t, 1)
	place(g, KindO, core.Pt(4, 0))

	g.Step(press(core.ActionHardDrop))

	b := g.Board()
	for _, p := range []core.Point{{X: 4, Y: 18}, {X: 5, Y: 18}, {X: 4, Y: 19}, {X: 5, Y: 19}} {
		assert.Equal(t, core.ColorYellow, b.At(p.X, p.Y), "cell %v", p)
	}
	require.NotNil(t, g.Active(), "a new piece should spawn")
	assert.Equal(t, 0, g.Active().Pos.Y)
	assert.Zero(t, g.vertical)
	assert.Zero(t, g.horizontal)
	assert.Equal(t, StatePlaying, g.state)
}

func TestHardDropFiresOncePerPress(t *testing.T) {
	g := newTestGame(t, 3)
	place(g, KindO, core.Pt(4, 0))

	g.Step(press(core.ActionHardDrop))
	next := g.Active().Clone()

	// Still held: the new piece must fall under normal gravity only
	idle(g, 10)
	assert.Equal(t, next.Pos, g.Active().Pos)
}

func TestLineClearEndToEnd(t *testing.T) {
	g := newTestGame(t, 5)
	fillRow(g.board, 19, 4, 5)
	fillRow(g.board, 18, 4, 5)
	place(g, KindO, core.Pt(4, 0))

	res := g.Step(press(core.ActionHardDrop))

	assert.True(t, res.Locked)
	assert.Equal(t, 2, res.Cleared)
	assert.Equal(t, 2, g.Lines())
	assert.Equal(t, 2, g.State().Score)
	empty := NewBoard(10, 20)
	if diff := cmp.Diff(empty.Rows(), g.Board().Rows()); diff != "" {
		t.Errorf("board should be empty after clearing both rows (-want +got):\n%s", diff)
	}
}

func TestGameOverWhenTopRowOccupied(t *testing.T) {
	g := newTestGame(t, 9)
	for y := 2; y < 20; y++ {
		g.board.Set(4, y, filler)
	}
	place(g, KindO, core.Pt(4, 0))

	g.Step(press(core.ActionHardDrop))

	require.Equal(t, StateGameOver, g.state)
	assert.True(t, g.State().GameOver)
	assert.Nil(t, g.Active(), "no piece spawns after game over")
	assert.True(t, g.Board().TopRowOccupied())

	before := g.Snapshot()
	g.Step(press(core.ActionLeft, core.ActionRotateCW, core.ActionHardDrop))
	idle(g, 100)
	if diff := cmp.Diff(before, g.Snapshot()); diff != "" {
		t.Errorf("game over must not mutate state (-before +after):\n%s", diff)
	}
}

func TestBlockedSpawnEndsGame(t *testing.T) {
	g := newTestGame(t, 9)
	fillRow(g.board, 1, 0)

	g.spawn()

	assert.Equal(t, StateGameOver, g.state)
	assert.Nil(t, g.Active())
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, 9)
	g.gameOver("test")

	g.Step(press(core.ActionRestart))

	assert.Equal(t, StatePlaying, g.state)
	assert.NotNil(t, g.Active())
	assert.Zero(t, g.Lines())
	assert.False(t, g.Board().TopRowOccupied())
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t, 9)
	fillRow(g.board, 19, 0)

	g.Step(press(core.ActionRestart))
	assert.Equal(t, filler, g.Board().At(5, 19))
}

func TestPauseToggles(t *testing.T) {
	g := newTestGame(t, 2)
	place(g, KindT, core.Pt(3, 0))

	res := g.Step(press(core.ActionPause))
	assert.True(t, res.State.Paused)
	assert.False(t, res.Advanced)
	idle(g, 200)
	assert.Equal(t, 0, g.active.Pos.Y)

	g.Step(press(core.ActionPause))
	assert.False(t, g.State().Paused)
}

func TestHoldFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 2)
	place(g, KindT, core.Pt(3, 0))

	g.Step(press(core.ActionHold))
	tick := g.tick
	idle(g, 200)
	assert.Equal(t, tick, g.tick)
	assert.Equal(t, 0, g.active.Pos.Y)

	g.Step(release(core.ActionHold))
	idle(g, 64)
	assert.Equal(t, 1, g.active.Pos.Y)
}

func TestRotationIsEdgeTriggered(t *testing.T) {
	g := newTestGame(t, 4)
	place(g, KindT, core.Pt(3, 5))

	g.Step(press(core.ActionRotateCW))
	assert.Equal(t, RotR, g.active.Rotation)

	// Held: platform key repeat must not rotate again
	for i := 0; i < 30; i++ {
		g.Step(press(core.ActionRotateCW))
	}
	assert.Equal(t, RotR, g.active.Rotation)

	g.Step(release(core.ActionRotateCW))
	g.Step(press(core.ActionRotateCW))
	assert.Equal(t, Rot2, g.active.Rotation)

	g.Step(press(core.ActionRotateCCW))
	assert.Equal(t, RotR, g.active.Rotation)
}

func TestTapWithinOneFrameStillActs(t *testing.T) {
	g := newTestGame(t, 4)
	place(g, KindT, core.Pt(3, 5))

	in := press(core.ActionRotateCW, core.ActionLeft)
	in.Release(core.ActionRotateCW)
	in.Release(core.ActionLeft)
	g.Step(in)

	assert.Equal(t, RotR, g.active.Rotation)
	assert.False(t, g.buttons[ButtonRotateCW].IsPressed(), "tap should be released after the tick")
	assert.False(t, g.buttons[ButtonLeft].IsPressed())
}

func TestORotationIgnored(t *testing.T) {
	g := newTestGame(t, 4)
	place(g, KindO, core.Pt(4, 5))

	g.Step(press(core.ActionRotateCW))
	assert.Equal(t, Rot0, g.active.Rotation)
	assert.Equal(t, core.Pt(4, 5), g.active.Pos)
}

func TestHorizontalPressThenAutoRepeat(t *testing.T) {
	g := newTestGame(t, 6)
	place(g, KindT, core.Pt(3, 0))

	g.Step(press(core.ActionLeft))
	assert.Equal(t, 2, g.active.Pos.X, "press edge moves one cell")

	idle(g, 20)
	assert.Equal(t, 2, g.active.Pos.X, "short press does not repeat")

	// Past the 500ms threshold the 0.25 rate carries the piece to the wall
	idle(g, 40)
	assert.Equal(t, 0, g.active.Pos.X)
	assert.Less(t, math.Abs(g.horizontal), 1.0, "blocked steps zero the accumulator")

	g.Step(release(core.ActionLeft))
	g.Step(press(core.ActionRight))
	assert.Equal(t, 1, g.active.Pos.X)
}

func TestHorizontalBlockedDoesNotLock(t *testing.T) {
	g := newTestGame(t, 6)
	place(g, KindT, core.Pt(0, 5))

	g.Step(press(core.ActionLeft))
	assert.Equal(t, 0, g.active.Pos.X)
	assert.Equal(t, 5, g.active.Pos.Y)
	assert.Equal(t, KindT, g.active.Kind, "sideways collision must not lock the piece")
}

func TestAccumulatorsStayBelowOne(t *testing.T) {
	g := newTestGame(t, 11)
	script := []core.Action{
		core.ActionLeft, core.ActionSoftDrop, core.ActionRight, core.ActionRotateCW,
		core.ActionHardDrop, core.ActionRotateCCW,
	}
	for i := 0; i < 3000 && g.state == StatePlaying; i++ {
		in := core.NewInputFrame()
		a := script[(i/37)%len(script)]
		switch i % 37 {
		case 0:
			in.Set(a)
		case 36:
			in.Release(a)
		}
		g.Step(in)
		require.Less(t, math.Abs(g.vertical), 1.0, "tick %d", i)
		require.Less(t, math.Abs(g.horizontal), 1.0, "tick %d", i)
		for y := 0; y < g.board.Height(); y++ {
			require.False(t, y > 0 && g.board.RowFull(y), "tick %d: row %d left full", i, y)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 12345)
		for i := 0; i < 2000; i++ {
			in := core.NewInputFrame()
			switch i % 50 {
			case 5:
				in.Set(core.ActionRotateCW)
			case 6:
				in.Release(core.ActionRotateCW)
			case 10:
				in.Set(core.ActionLeft)
			case 40:
				in.Release(core.ActionLeft)
			case 45:
				in.Set(core.ActionHardDrop)
			case 46:
				in.Release(core.ActionHardDrop)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	first, second := run(), run()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed and inputs diverged (-first +second):\n%s", diff)
	}
}

func TestGhostTracksActivePiece(t *testing.T) {
	g := newTestGame(t, 8)
	place(g, KindO, core.Pt(4, 0))
	g.Step(core.NewInputFrame())

	snap := g.Snapshot()
	require.Len(t, snap.Ghost, 4)
	for _, tile := range snap.Ghost {
		assert.Equal(t, GhostColor, tile.Color)
		assert.GreaterOrEqual(t, tile.Y, 18)
	}

	off := newTestGame(t, 8, func(c *config.TetrisConfig) { c.Ghost.Enabled = false })
	assert.Nil(t, off.Snapshot().Ghost)
}

func TestHardDropValueCoversTallBoards(t *testing.T) {
	g := newTestGame(t, 8, func(c *config.TetrisConfig) { c.Board.Height = 40 })
	place(g, KindO, core.Pt(4, 0))

	g.Step(press(core.ActionHardDrop))
	assert.Equal(t, core.ColorYellow, g.Board().At(4, 39))
}

func TestRenderDrawsBoardAndOverlay(t *testing.T) {
	g := newTestGame(t, 8)
	place(g, KindO, core.Pt(4, 0))
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	assert.Contains(t, scr.String(), "Lines: 0")
	assert.Contains(t, scr.String(), "████")
	assert.Contains(t, scr.String(), "░░░░")

	g.gameOver("test")
	g.Render(scr)
	assert.Contains(t, scr.String(), "GAME OVER")

	small := core.NewScreen(10, 5)
	g.Render(small)
	assert.NotContains(t, small.String(), "GAME OVER")
}

func TestSetDifficultyPreset(t *testing.T) {
	t.Cleanup(func() { SetDifficultyPreset("") })

	SetDifficultyPreset("hard")
	assert.Equal(t, config.DifficultyHard, difficultyPreset)
	SetDifficultyPreset("bogus")
	assert.Equal(t, config.DifficultyPreset(""), difficultyPreset)
}
