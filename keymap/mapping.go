// Package keymap describes how a single controller button translates
// into host-side action events: the binding metadata, the per-mapping
// state machine, and validation of a whole mapping table.
package keymap

import (
	"errors"
	"fmt"
	"time"

	"github.com/padbind/padbind/button"
)

// RepeatPolicy selects how a held button repeats after its initial
// down event.
type RepeatPolicy int

const (
	// RepeatNone never emits repeat events.
	RepeatNone RepeatPolicy = iota
	// RepeatFirstOnly emits exactly one repeat after the first-repeat
	// delay, then stays silent until release.
	RepeatFirstOnly
	// RepeatInfinite keeps repeating at the repeat cadence while held.
	RepeatInfinite
)

func (p RepeatPolicy) String() string {
	switch p {
	case RepeatNone:
		return "none"
	case RepeatFirstOnly:
		return "first-only"
	case RepeatInfinite:
		return "infinite"
	}
	return "unknown"
}

// ExclusivityGroup identifies a set of mappings among which only one
// may be active at a time.
type ExclusivityGroup uint32

// Mapping binds one controller button to host-side action callbacks.
// Everything except the embedded tracker is immutable after the
// mapping enters a translator.
type Mapping struct {
	Button button.Button
	Repeat RepeatPolicy

	// Group, when non-nil, subjects the mapping to overtaking: only
	// one member of the group is active at a time and newer presses
	// displace the current activation.
	Group *ExclusivityGroup

	// Any callback may be nil; a missing callback is skipped.
	OnDown   func()
	OnUp     func()
	OnRepeat func()
	OnReset  func()

	// Optional overrides for the two tracker timers.
	FirstRepeatDelay *time.Duration
	RepeatDelay      *time.Duration

	State StateTracker
}

// GroupRef is a convenience for building mappings with a group in a
// literal.
func GroupRef(g ExclusivityGroup) *ExclusivityGroup {
	return &g
}

// HasGroup reports whether the mapping participates in an exclusivity
// group.
func (m *Mapping) HasGroup() bool {
	return m.Group != nil
}

// InitTimers applies the optional delay overrides to the embedded
// tracker. Called once after construction, before the first tick.
func (m *Mapping) InitTimers() {
	if m.RepeatDelay != nil {
		m.State.LastSent.ResetAfter(*m.RepeatDelay)
	}
	if m.FirstRepeatDelay != nil {
		m.State.FirstRepeat.ResetAfter(*m.FirstRepeatDelay)
	}
}

// Construction failures for a mapping table.
var (
	ErrDuplicateMapping = errors.New("more than one mapping for a button")
	ErrInvalidMapping   = errors.New("mapping uses an unset button")
)

// Validate checks the global table invariants: at most one mapping per
// button, and no sentinel buttons.
func Validate(mappings []Mapping) error {
	seen := make(map[button.Button]struct{}, len(mappings))
	for i := range mappings {
		b := mappings[i].Button
		if !b.Valid() {
			return fmt.Errorf("%w at index %d", ErrInvalidMapping, i)
		}
		if _, dup := seen[b]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateMapping, b)
		}
		seen[b] = struct{}{}
	}
	return nil
}
