//go:build !ebiten

package window

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Run reports ErrUnavailable; the desktop window needs the ebiten build tag.
func Run(*tetris.Game, core.RuntimeConfig, Options) error {
	return ErrUnavailable
}
