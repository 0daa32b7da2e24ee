package keymap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	th "github.com/padbind/padbind/internal/testing"
	"github.com/padbind/padbind/keymap"
)

func TestStateTrackerGuardedTransitions(t *testing.T) {
	th.InstallFakeClock(t)

	tests := []struct {
		name  string
		steps func(tr *keymap.StateTracker)
		want  keymap.State
	}{
		{
			name:  "full cycle",
			steps: func(tr *keymap.StateTracker) { tr.SetDown(); tr.SetRepeat(); tr.SetUp(); tr.SetInit() },
			want:  keymap.StateInit,
		},
		{
			name:  "down then up skips repeat",
			steps: func(tr *keymap.StateTracker) { tr.SetDown(); tr.SetUp() },
			want:  keymap.StateUp,
		},
		{
			name:  "repeat from init is a no-op",
			steps: func(tr *keymap.StateTracker) { tr.SetRepeat() },
			want:  keymap.StateInit,
		},
		{
			name:  "up from init is a no-op",
			steps: func(tr *keymap.StateTracker) { tr.SetUp() },
			want:  keymap.StateInit,
		},
		{
			name:  "init from down is a no-op",
			steps: func(tr *keymap.StateTracker) { tr.SetDown(); tr.SetInit() },
			want:  keymap.StateDown,
		},
		{
			name:  "down from repeat is a no-op",
			steps: func(tr *keymap.StateTracker) { tr.SetDown(); tr.SetRepeat(); tr.SetDown() },
			want:  keymap.StateRepeat,
		},
		{
			name:  "repeat from up is a no-op",
			steps: func(tr *keymap.StateTracker) { tr.SetDown(); tr.SetUp(); tr.SetRepeat() },
			want:  keymap.StateUp,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := keymap.NewStateTracker()
			tt.steps(&tr)
			assert.Equal(t, tt.want, tr.Current())
		})
	}
}

func TestNeedsCleanup(t *testing.T) {
	th.InstallFakeClock(t)

	tr := keymap.NewStateTracker()
	assert.False(t, tr.NeedsCleanup())

	tr.SetDown()
	assert.True(t, tr.NeedsCleanup())

	tr.SetRepeat()
	assert.True(t, tr.NeedsCleanup())

	tr.SetUp()
	assert.False(t, tr.NeedsCleanup())

	tr.SetInit()
	assert.False(t, tr.NeedsCleanup())
}
