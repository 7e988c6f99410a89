package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Options tunes the terminal frontend.
type Options struct {
	// ReleaseTimeout is how long a key may stay silent before it counts as
	// released. Zero uses 150ms.
	ReleaseTimeout time.Duration
	// Logger receives frontend and engine logs. Nil discards.
	Logger *log.Logger
}

// loggable is implemented by games that accept a logger.
type loggable interface {
	SetLogger(*log.Logger)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	held     *heldKeys
	stepper  *core.Stepper
	frame    core.InputFrame
	lastTick time.Time
	state    core.GameState
	log      *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.TickRate = cfg.Rate()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if g, ok := game.(loggable); ok {
		g.SetLogger(logger)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		held:    newHeldKeys(opts.ReleaseTimeout),
		stepper: core.NewStepper(cfg.TickRate),
		frame:   core.NewInputFrame(),
		log:     logger,
	}
}

// Init resets the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.log.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "tps", m.config.TickRate)
	return tickCmd(m.stepper.Step())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps a key to an action. Only the first event of a held key
// becomes a press edge; terminal auto-repeat just keeps it held.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.log.Info("quit", "lines", m.state.Score)
		return m, tea.Quit
	}

	if m.held.Seen(action, now) {
		m.frame.Set(action)
	}
	return m, nil
}

// handleResize keeps the game running; only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs as many fixed ticks as wall time allows. Pending edges go
// into the first tick; released keys are added before it.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.stepper.Step()
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	for _, a := range m.held.Expire(now) {
		m.frame.Release(a)
	}

	n := m.stepper.Advance(elapsed)
	for i := 0; i < n; i++ {
		result := m.game.Step(m.frame)
		if result.Cleared > 0 {
			m.log.Debug("rows cleared", "rows", result.Cleared, "lines", result.State.Score)
		}
		if result.State.GameOver && !m.state.GameOver {
			m.log.Info("game over", "lines", result.State.Score)
		}
		m.state = result.State
		m.frame.Clear()
	}

	return m, tickCmd(m.stepper.Step())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return renderFrame(m.screen, m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
