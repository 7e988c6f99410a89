package tui

import (
	"sort"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// heldKeys turns the terminal's press-only key stream into press/release
// edges. A key counts as held while its auto-repeat keeps arriving; once no
// repeat shows up within the timeout it is reported released.
type heldKeys struct {
	timeout  time.Duration
	lastSeen map[core.Action]time.Time
}

func newHeldKeys(timeout time.Duration) *heldKeys {
	if timeout <= 0 {
		timeout = 150 * time.Millisecond
	}
	return &heldKeys{timeout: timeout, lastSeen: make(map[core.Action]time.Time)}
}

// Seen records a key event at now and reports whether it starts a new press.
func (h *heldKeys) Seen(a core.Action, now time.Time) bool {
	_, held := h.lastSeen[a]
	h.lastSeen[a] = now
	return !held
}

// Expire returns the actions whose repeats stopped before now-timeout and
// forgets them. The result is sorted for stable frame contents.
func (h *heldKeys) Expire(now time.Time) []core.Action {
	var released []core.Action
	for a, t := range h.lastSeen {
		if now.Sub(t) >= h.timeout {
			released = append(released, a)
			delete(h.lastSeen, a)
		}
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	return released
}

// Held reports whether a is currently considered down.
func (h *heldKeys) Held(a core.Action) bool {
	_, ok := h.lastSeen[a]
	return ok
}
