package core

// Action is a semantic input, independent of which key or button produced it.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // shift left
	ActionRight            // shift right
	ActionRotateCW         // rotate clockwise
	ActionRotateCCW        // rotate counter-clockwise
	ActionSoftDrop         // fall faster while held
	ActionHardDrop         // drop to the floor and lock
	ActionHold             // freeze the simulation while held
	ActionPause            // toggle pause
	ActionRestart          // new game after game over
	ActionQuit             // leave the frontend; games never see it
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "RotateCW", "RotateCCW", "SoftDrop",
	"HardDrop", "Hold", "Pause", "Restart", "Quit",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// actionSet is a bit per Action.
type actionSet uint32

func (s actionSet) has(a Action) bool {
	return a > ActionNone && a < actionCount && s&(1<<a) != 0
}

func (s *actionSet) add(a Action) {
	if a > ActionNone && a < actionCount {
		*s |= 1 << a
	}
}

// InputFrame holds the key_down and key_up edges seen since the previous
// tick. An action may be both pressed and released in one frame (a tap);
// games apply presses before releases. The zero value is an empty frame
// and frames copy by value.
type InputFrame struct {
	pressed  actionSet
	released actionSet
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a key_down edge.
func (f *InputFrame) Set(a Action) { f.pressed.add(a) }

// Release records a key_up edge.
func (f *InputFrame) Release(a Action) { f.released.add(a) }

// Has reports a key_down edge for a.
func (f InputFrame) Has(a Action) bool { return f.pressed.has(a) }

// HasRelease reports a key_up edge for a.
func (f InputFrame) HasRelease(a Action) bool { return f.released.has(a) }

// Empty reports whether the frame carries no edges at all.
func (f InputFrame) Empty() bool {
	return f.pressed == 0 && f.released == 0
}

// Clear drops all edges.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}
