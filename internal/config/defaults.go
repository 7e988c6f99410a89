package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration. It mirrors
// defaults/tetris.yaml and is the fallback when that cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Gravity: GravityConfig{
			Normal:   1.0 / 64,
			SoftDrop: 1.0,
			HardDrop: 20,
		},
		Input: InputConfig{
			HoldThresholdMS:  500,
			RepeatRate:       0.25,
			ReleaseTimeoutMS: 150,
		},
		Ghost: GhostConfig{
			Enabled: true,
		},
		Window: WindowConfig{
			CellSize: 20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
