package tetris

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// State is the engine's lifecycle state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Button is a logical input the engine tracks press state for.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonRotateCW
	ButtonRotateCCW
	ButtonSoftDrop
	ButtonHardDrop
	ButtonHold
	buttonCount
)

// buttonActions maps each button to the platform action that drives it.
var buttonActions = [buttonCount]core.Action{
	ButtonLeft:      core.ActionLeft,
	ButtonRight:     core.ActionRight,
	ButtonRotateCW:  core.ActionRotateCW,
	ButtonRotateCCW: core.ActionRotateCCW,
	ButtonSoftDrop:  core.ActionSoftDrop,
	ButtonHardDrop:  core.ActionHardDrop,
	ButtonHold:      core.ActionHold,
}

// Game is the falling-block engine. It is not safe for concurrent use.
type Game struct {
	cfg    config.TetrisConfig
	pinned bool // cfg came from NewWithConfig; Reset does not reload
	log    *log.Logger

	rng      *rand.Rand
	clock    *core.ManualClock
	tickStep time.Duration
	buttons  [buttonCount]*core.ButtonState

	board  *Board
	active *Piece
	ghost  *Piece

	vertical   float64 // Pending downward cells
	horizontal float64 // Pending sideways cells, negative is left
	hardDrop   float64

	state   State
	paused  bool
	tick    uint64
	lines   int
	screenW int
	screenH int
	rate    int
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{log: log.New(io.Discard)}
}

// NewWithConfig creates a game pinned to cfg. Reset never reloads it.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg, pinned: true, log: log.New(io.Discard)}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// SetLogger routes engine debug output. A nil logger discards.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.log = l
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Config returns the configuration in use.
func (g *Game) Config() config.TetrisConfig {
	return g.cfg
}

// Reset starts a new game: empty board, fresh buttons, a new piece.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.pinned {
		cfg, err := config.LoadTetris(configPath)
		if err != nil {
			g.log.Warn("falling back to default config", "err", err)
			cfg = config.DefaultTetrisConfig()
		}
		if difficultyPreset != "" {
			config.ApplyTetrisPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.rate = rc.Rate()
	g.tickStep = time.Second / time.Duration(g.rate)
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.clock = core.NewManualClock(time.Unix(0, 0))
	for i := range g.buttons {
		g.buttons[i] = core.NewButtonState(g.clock, g.cfg.Input.HoldThreshold())
	}

	g.board = NewBoard(g.cfg.Board.Width, g.cfg.Board.Height)
	g.hardDrop = math.Max(g.cfg.Gravity.HardDrop, float64(g.board.Height()+1))
	g.state = StatePlaying
	g.paused = false
	g.tick = 0
	g.lines = 0
	g.active = nil
	g.ghost = nil

	g.spawn()
	g.updateGhost()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.clock.Advance(g.tickStep)
	taps := g.applyInput(in)
	defer func() {
		for _, b := range taps {
			b.KeyUp()
		}
	}()

	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.rate,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.state == StatePlaying {
		g.paused = !g.paused
	}

	if g.state == StateGameOver || g.paused || g.buttons[ButtonHold].IsPressed() {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	res := core.StepResult{Advanced: true}
	g.handleRotation()
	g.handleVertical()
	g.handleHorizontal()
	g.moveHorizontally()
	if g.moveVertically() {
		res.Locked = true
		res.Cleared = g.lockActive()
		if g.board.TopRowOccupied() {
			g.gameOver("top row occupied")
			res.State = g.State()
			return res
		}
		g.spawn()
	}
	g.updateGhost()

	res.State = g.State()
	return res
}

// applyInput feeds press edges, then release edges, to the button trackers.
// A button pressed and released within the same frame stays down for this
// tick so the tap is not lost; its release is returned for after the tick.
func (g *Game) applyInput(in core.InputFrame) []*core.ButtonState {
	var taps []*core.ButtonState
	for i, a := range buttonActions {
		if in.Has(a) {
			g.buttons[i].KeyDown()
		}
	}
	for i, a := range buttonActions {
		if !in.HasRelease(a) {
			continue
		}
		if in.Has(a) {
			taps = append(taps, g.buttons[i])
			continue
		}
		g.buttons[i].KeyUp()
	}
	return taps
}

func (g *Game) handleRotation() {
	if b := g.buttons[ButtonRotateCW]; b.ShouldHandleOnce() {
		b.HandledOnce()
		g.rotate(Clockwise)
	}
	if b := g.buttons[ButtonRotateCCW]; b.ShouldHandleOnce() {
		b.HandledOnce()
		g.rotate(CounterClockwise)
	}
}

func (g *Game) rotate(dir Direction) {
	if rotated := g.board.TryRotate(g.active, dir); rotated != nil {
		g.active = rotated
	}
}

func (g *Game) handleVertical() {
	hard := g.buttons[ButtonHardDrop]
	switch {
	case hard.ShouldHandleOnce():
		hard.HandledOnce()
		g.vertical = g.hardDrop
	case g.buttons[ButtonSoftDrop].IsPressed():
		g.vertical += g.cfg.Gravity.SoftDrop
	default:
		g.vertical += g.cfg.Gravity.Normal
	}
}

// handleHorizontal snaps to one cell on a press edge and accrues the repeat
// rate while a button is long-pressed. Right wins if both edges land together.
func (g *Game) handleHorizontal() {
	rate := g.cfg.Input.RepeatRate
	if b := g.buttons[ButtonLeft]; b.ShouldHandleOnce() {
		b.HandledOnce()
		g.horizontal = -1
	} else if b.IsLongPressed() {
		g.horizontal -= rate
	}
	if b := g.buttons[ButtonRight]; b.ShouldHandleOnce() {
		b.HandledOnce()
		g.horizontal = 1
	} else if b.IsLongPressed() {
		g.horizontal += rate
	}
}

// moveHorizontally consumes whole cells of the horizontal accumulator.
// A blocked step zeroes it; the piece is not locked.
func (g *Game) moveHorizontally() {
	for g.horizontal >= 1 {
		if !g.board.CanMove(g.active, core.Pt(1, 0)) {
			g.horizontal = 0
			return
		}
		g.active.Pos.X++
		g.horizontal--
	}
	for g.horizontal <= -1 {
		if !g.board.CanMove(g.active, core.Pt(-1, 0)) {
			g.horizontal = 0
			return
		}
		g.active.Pos.X--
		g.horizontal++
	}
}

// moveVertically consumes whole cells of the vertical accumulator and
// reports whether a blocked downward step locked the piece.
func (g *Game) moveVertically() bool {
	for g.vertical >= 1 {
		if !g.board.CanMove(g.active, core.Pt(0, 1)) {
			g.vertical = 0
			return true
		}
		g.active.Pos.Y++
		g.vertical--
	}
	return false
}

// lockActive merges the piece and returns the number of rows it cleared.
func (g *Game) lockActive() int {
	g.board.Lock(g.active)
	g.log.Debug("locked", "kind", g.active.Kind, "x", g.active.Pos.X, "y", g.active.Pos.Y, "tick", g.tick)
	g.active = nil
	g.ghost = nil
	n := g.board.ClearFullRows()
	if n > 0 {
		g.lines += n
		g.log.Debug("cleared rows", "rows", n, "lines", g.lines)
	}
	return n
}

// spawn places a random piece at the top and resets both accumulators.
// A spawn that overlaps locked blocks ends the game.
func (g *Game) spawn() {
	k := RandomKind(g.rng)
	p := NewPiece(k, SpawnPosition(k, g.board.Width()))
	g.vertical = 0
	g.horizontal = 0
	if !g.board.CanMove(p, core.Point{}) {
		g.gameOver("spawn blocked")
		return
	}
	g.active = p
	g.log.Debug("spawned", "kind", k, "x", p.Pos.X)
}

func (g *Game) gameOver(reason string) {
	g.state = StateGameOver
	g.active = nil
	g.ghost = nil
	g.log.Debug("game over", "reason", reason, "lines", g.lines, "tick", g.tick)
}

func (g *Game) updateGhost() {
	if g.active == nil || !g.cfg.Ghost.Enabled {
		g.ghost = nil
		return
	}
	g.ghost = g.board.Ghost(g.active)
}

// Board returns the locked-block grid. Callers must not mutate it.
func (g *Game) Board() *Board {
	return g.board
}

// Active returns the falling piece, nil once the game is over.
func (g *Game) Active() *Piece {
	return g.active
}

// Lines returns the number of cleared rows.
func (g *Game) Lines() int {
	return g.lines
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.lines,
		GameOver: g.state == StateGameOver,
		Paused:   g.paused,
	}
}
