// Package translate turns filtered snapshots into ordered batches of
// action events by advancing each mapping's state machine.
package translate

import (
	"github.com/padbind/padbind/button"
	"github.com/padbind/padbind/keymap"
)

// Kind tags the state transition a Result carries.
type Kind int

const (
	KindDown Kind = iota
	KindFirstRepeat
	KindRepeat
	KindUp
	KindReset
)

func (k Kind) String() string {
	switch k {
	case KindDown:
		return "down"
	case KindFirstRepeat, KindRepeat:
		return "repeat"
	case KindUp:
		return "up"
	case KindReset:
		return "reset"
	}
	return "unknown"
}

// Result is one deferred (action, commit) pair for one mapping
// transition: a tagged variant carrying the mapping handle rather than
// boxed closures, so state mutation stays inside this package.
type Result struct {
	kind    Kind
	mapping *keymap.Mapping

	// Button and Group identify the originating mapping for callers
	// that observe fired events (overlays, logs).
	Button button.Button
	Group  *keymap.ExclusivityGroup
}

func newResult(k Kind, m *keymap.Mapping) Result {
	return Result{kind: k, mapping: m, Button: m.Button, Group: m.Group}
}

// Kind returns the transition tag.
func (r Result) Kind() Kind { return r.kind }

// Perform executes the user callback for the transition (skipped when
// absent) and the timer resets that pace the following transitions.
func (r Result) Perform() {
	m := r.mapping
	switch r.kind {
	case KindDown:
		if m.OnDown != nil {
			m.OnDown()
		}
		// Hold both gates closed until their periods elapse again.
		m.State.LastSent.Reset()
		m.State.FirstRepeat.Reset()
	case KindFirstRepeat, KindRepeat:
		if m.OnRepeat != nil {
			m.OnRepeat()
		}
		m.State.LastSent.Reset()
	case KindUp:
		if m.OnUp != nil {
			m.OnUp()
		}
	case KindReset:
		if m.OnReset != nil {
			m.OnReset()
		}
		m.State.LastSent.Reset()
	}
}

// Commit advances the mapping state for the transition. Perform then
// Commit is the defined invocation order.
func (r Result) Commit() {
	switch r.kind {
	case KindDown:
		r.mapping.State.SetDown()
	case KindFirstRepeat, KindRepeat:
		r.mapping.State.SetRepeat()
	case KindUp:
		r.mapping.State.SetUp()
	case KindReset:
		r.mapping.State.SetInit()
	}
}

// Do performs then commits.
func (r Result) Do() {
	r.Perform()
	r.Commit()
}
