// Package config provides YAML-based game configuration loading and
// difficulty presets for the puzzle game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all tunables of the simulation and its frontends.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Input   InputConfig   `yaml:"input"`
	Ghost   GhostConfig   `yaml:"ghost"`
	Window  WindowConfig  `yaml:"window"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines fall rates in cells per tick.
type GravityConfig struct {
	Normal   float64 `yaml:"normal"`    // 1/64 = one row per 64 ticks
	SoftDrop float64 `yaml:"soft_drop"` // Added per tick while soft drop is held
	HardDrop float64 `yaml:"hard_drop"` // Accumulator value on a hard drop
}

// InputConfig defines button hold timing.
type InputConfig struct {
	HoldThresholdMS  int     `yaml:"hold_threshold_ms"`  // Press age before auto-repeat
	RepeatRate       float64 `yaml:"repeat_rate"`        // Horizontal cells per tick while auto-repeating
	ReleaseTimeoutMS int     `yaml:"release_timeout_ms"` // Terminal only: silence before a key counts as released
}

// GhostConfig toggles the drop preview.
type GhostConfig struct {
	Enabled bool `yaml:"enabled"`
}

// WindowConfig defines the desktop frontend layout.
type WindowConfig struct {
	CellSize int `yaml:"cell_size"` // Pixels per board cell
}

// HoldThreshold returns the hold threshold as a duration.
func (c InputConfig) HoldThreshold() time.Duration {
	return time.Duration(c.HoldThresholdMS) * time.Millisecond
}

// ReleaseTimeout returns the terminal release timeout as a duration.
func (c InputConfig) ReleaseTimeout() time.Duration {
	return time.Duration(c.ReleaseTimeoutMS) * time.Millisecond
}

// Validate reports every impossible value in the configuration.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Board.Width < 4 {
		errs = append(errs, fmt.Errorf("board.width must be at least 4, got %d", c.Board.Width))
	}
	if c.Board.Height < 4 {
		errs = append(errs, fmt.Errorf("board.height must be at least 4, got %d", c.Board.Height))
	}
	if c.Gravity.Normal <= 0 || c.Gravity.Normal >= 1 {
		errs = append(errs, fmt.Errorf("gravity.normal must be in (0, 1), got %g", c.Gravity.Normal))
	}
	if c.Gravity.SoftDrop < 1 {
		errs = append(errs, fmt.Errorf("gravity.soft_drop must be at least 1, got %g", c.Gravity.SoftDrop))
	}
	if c.Gravity.HardDrop <= 0 {
		errs = append(errs, fmt.Errorf("gravity.hard_drop must be positive, got %g", c.Gravity.HardDrop))
	}
	if c.Input.HoldThresholdMS < 0 {
		errs = append(errs, fmt.Errorf("input.hold_threshold_ms must not be negative, got %d", c.Input.HoldThresholdMS))
	}
	if c.Input.RepeatRate <= 0 {
		errs = append(errs, fmt.Errorf("input.repeat_rate must be positive, got %g", c.Input.RepeatRate))
	}
	if c.Input.ReleaseTimeoutMS < 0 {
		errs = append(errs, fmt.Errorf("input.release_timeout_ms must not be negative, got %d", c.Input.ReleaseTimeoutMS))
	}
	if c.Window.CellSize < 0 {
		errs = append(errs, fmt.Errorf("window.cell_size must not be negative, got %d", c.Window.CellSize))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tetris config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a CLI value to a preset. Empty means none.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// NormalGravityForPreset returns the fall rate for a preset, or ok=false when
// the preset keeps the configured value.
func NormalGravityForPreset(preset DifficultyPreset) (gravity float64, ok bool) {
	switch preset {
	case DifficultyEasy:
		return 1.0 / 64, true
	case DifficultyNormal:
		return 1.0 / 32, true
	case DifficultyHard:
		return 1.0 / 16, true
	default:
		return 0, false
	}
}
