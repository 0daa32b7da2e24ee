package keymap

import (
	"time"

	"github.com/padbind/padbind/timing"
)

// State is the per-mapping translation state. A mapping completes
// exactly one Init -> Down -> (Repeat*) -> Up -> Init cycle per
// physical press.
type State int

const (
	StateInit State = iota
	StateDown
	StateRepeat
	StateUp
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "Init"
	case StateDown:
		return "Down"
	case StateRepeat:
		return "Repeat"
	case StateUp:
		return "Up"
	}
	return "Unknown"
}

// DefaultRepeatDelay is the cadence between repeats and the up->init
// reset delay when a mapping carries no override.
const DefaultRepeatDelay = 100 * time.Millisecond

// StateTracker guards the state variable so transitions can only occur
// in sequence; any out-of-order setter is a no-op. It also carries the
// two timers that pace a mapping: LastSent regulates repeat cadence
// and the up->init reset delay, FirstRepeat is the hold time before a
// held button begins repeating.
type StateTracker struct {
	current State

	LastSent    timing.Timer
	FirstRepeat timing.Timer
}

// NewStateTracker returns a tracker in the initial state with default
// periods on both timers.
func NewStateTracker() StateTracker {
	return StateTracker{
		LastSent:    timing.NewTimer(DefaultRepeatDelay),
		FirstRepeat: timing.NewTimer(DefaultRepeatDelay),
	}
}

func (t *StateTracker) Current() State  { return t.current }
func (t *StateTracker) IsInitial() bool { return t.current == StateInit }
func (t *StateTracker) IsDown() bool    { return t.current == StateDown }
func (t *StateTracker) IsRepeat() bool  { return t.current == StateRepeat }
func (t *StateTracker) IsUp() bool      { return t.current == StateUp }

// SetDown advances Init -> Down.
func (t *StateTracker) SetDown() {
	if t.current != StateInit {
		return
	}
	t.current = StateDown
}

// SetRepeat advances Down -> Repeat.
func (t *StateTracker) SetRepeat() {
	if t.current != StateDown {
		return
	}
	t.current = StateRepeat
}

// SetUp advances Down/Repeat -> Up.
func (t *StateTracker) SetUp() {
	if t.current != StateDown && t.current != StateRepeat {
		return
	}
	t.current = StateUp
}

// SetInit advances Up -> Init, readying the next cycle.
func (t *StateTracker) SetInit() {
	if t.current != StateUp {
		return
	}
	t.current = StateInit
}

// NeedsCleanup reports whether a terminating up must be synthesized
// before shutdown so the host is not left with a stuck key.
func (t *StateTracker) NeedsCleanup() bool {
	return t.current == StateDown || t.current == StateRepeat
}
