// Package overtake enforces exclusivity-group semantics: at most one
// member of a group is active at a time, newer presses displace the
// current activation, and displaced members queue for restoration.
package overtake

import (
	"slices"

	"github.com/padbind/padbind/button"
	"github.com/padbind/padbind/keymap"
)

// GroupActivation tracks one exclusivity group's activation queue.
// The front of the queue is the currently active button; the remainder
// are overtaken members, most recently overtaken first. An empty queue
// means no member is active.
type GroupActivation struct {
	group ExclusivityGroupValue
	queue []button.Button
}

// ExclusivityGroupValue aliases the mapping-side group identifier.
type ExclusivityGroupValue = keymap.ExclusivityGroup

// NewGroupActivation returns an empty activation record for g.
func NewGroupActivation(g ExclusivityGroupValue) *GroupActivation {
	return &GroupActivation{group: g}
}

// Group returns the group identifier this record tracks.
func (a *GroupActivation) Group() ExclusivityGroupValue { return a.group }

// OnNewDown records that b is newly reported down.
//
// suppress reports that the down must be removed from the snapshot
// (b is already overtaken and waiting). syntheticUp, when not NotSet,
// names the previously active button that must receive a synthesized
// up because b overtook it.
func (a *GroupActivation) OnNewDown(b button.Button) (suppress bool, syntheticUp button.Button) {
	if a.IsActive(b) {
		// Idempotent repeat of the current activation.
		return false, button.NotSet
	}
	if a.IsOvertaken(b) {
		return true, button.NotSet
	}
	if len(a.queue) == 0 {
		a.queue = append(a.queue, b)
		return false, button.NotSet
	}
	// Overtaking: the new press becomes the active front and the
	// previous front is pushed into the overtaken portion.
	prev := a.queue[0]
	a.queue = slices.Insert(a.queue, 0, b)
	return false, prev
}

// OnNewUp records that b is no longer reported down.
//
// restored, when not NotSet, names the overtaken button promoted to
// the active front; the caller decides whether to synthesize its down
// now or let the next snapshot produce it.
func (a *GroupActivation) OnNewUp(b button.Button) (restored button.Button) {
	i := slices.Index(a.queue, b)
	if i < 0 {
		return button.NotSet
	}
	a.queue = slices.Delete(a.queue, i, i+1)
	if i == 0 && len(a.queue) > 0 {
		return a.queue[0]
	}
	return button.NotSet
}

// IsActive reports whether b is the current activation.
func (a *GroupActivation) IsActive(b button.Button) bool {
	return len(a.queue) > 0 && a.queue[0] == b
}

// IsOvertaken reports whether b is queued behind the activation.
func (a *GroupActivation) IsOvertaken(b button.Button) bool {
	return slices.Index(a.queue, b) > 0
}

// IsTracked reports whether b is active or overtaken.
func (a *GroupActivation) IsTracked(b button.Button) bool {
	return slices.Contains(a.queue, b)
}

// AnyActive reports whether any member of the group is active.
func (a *GroupActivation) AnyActive() bool {
	return len(a.queue) > 0
}

// Queue returns a copy of the activation queue, front first.
func (a *GroupActivation) Queue() []button.Button {
	return slices.Clone(a.queue)
}

func (a *GroupActivation) clone() *GroupActivation {
	return &GroupActivation{group: a.group, queue: slices.Clone(a.queue)}
}
