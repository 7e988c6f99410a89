// Package tui runs a game in the terminal with Bubble Tea.
// It owns the frame loop, key mapping and key-release emulation; the game
// itself only sees core.InputFrame values and fixed ticks.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame; the model converts elapsed time into
// simulation ticks.
type TickMsg time.Time

// tickCmd schedules the next frame after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
