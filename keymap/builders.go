package keymap

import (
	"time"

	"github.com/padbind/padbind/button"
)

// Callbacks bundles the four optional event callbacks for the builder
// helpers. Any member may be nil.
type Callbacks struct {
	OnDown   func()
	OnUp     func()
	OnRepeat func()
	OnReset  func()
}

// NewRepeating returns a mapping with infinite repeat and a custom
// first-repeat delay, the most common shape for movement bindings.
func NewRepeating(b button.Button, cb Callbacks, group *ExclusivityGroup, firstRepeatDelay time.Duration) Mapping {
	d := firstRepeatDelay
	return Mapping{
		Button:           b,
		Repeat:           RepeatInfinite,
		Group:            group,
		OnDown:           cb.OnDown,
		OnUp:             cb.OnUp,
		OnRepeat:         cb.OnRepeat,
		OnReset:          cb.OnReset,
		FirstRepeatDelay: &d,
		State:            NewStateTracker(),
	}
}

// NewSingle returns a mapping that fires down/up only, no repeats.
func NewSingle(b button.Button, cb Callbacks, group *ExclusivityGroup) Mapping {
	return Mapping{
		Button:  b,
		Repeat:  RepeatNone,
		Group:   group,
		OnDown:  cb.OnDown,
		OnUp:    cb.OnUp,
		OnReset: cb.OnReset,
		State:   NewStateTracker(),
	}
}

// NewFirstRepeatOnly returns a mapping that emits one repeat after the
// given hold delay and then stays silent until release.
func NewFirstRepeatOnly(b button.Button, cb Callbacks, group *ExclusivityGroup, holdDelay time.Duration) Mapping {
	d := holdDelay
	return Mapping{
		Button:           b,
		Repeat:           RepeatFirstOnly,
		Group:            group,
		OnDown:           cb.OnDown,
		OnUp:             cb.OnUp,
		OnRepeat:         cb.OnRepeat,
		OnReset:          cb.OnReset,
		FirstRepeatDelay: &d,
		State:            NewStateTracker(),
	}
}
