package keymap_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padbind/padbind/button"
	th "github.com/padbind/padbind/internal/testing"
	"github.com/padbind/padbind/keymap"
)

func TestValidate(t *testing.T) {
	th.InstallFakeClock(t)

	tests := []struct {
		name    string
		buttons []button.Button
		wantErr error
	}{
		{name: "empty table", buttons: nil},
		{name: "unique buttons", buttons: []button.Button{button.A, button.B, button.X}},
		{name: "duplicate button", buttons: []button.Button{button.A, button.B, button.A}, wantErr: keymap.ErrDuplicateMapping},
		{name: "sentinel button", buttons: []button.Button{button.A, button.NotSet}, wantErr: keymap.ErrInvalidMapping},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mappings := make([]keymap.Mapping, 0, len(tt.buttons))
			for _, b := range tt.buttons {
				mappings = append(mappings, keymap.NewSingle(b, keymap.Callbacks{}, nil))
			}
			err := keymap.Validate(mappings)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestInitTimersAppliesOverrides(t *testing.T) {
	clock := th.InstallFakeClock(t)

	first := 500 * time.Millisecond
	repeat := 40 * time.Millisecond
	m := keymap.Mapping{
		Button:           button.A,
		Repeat:           keymap.RepeatInfinite,
		FirstRepeatDelay: &first,
		RepeatDelay:      &repeat,
		State:            keymap.NewStateTracker(),
	}
	m.InitTimers()

	require.Equal(t, repeat, m.State.LastSent.Period())
	require.Equal(t, first, m.State.FirstRepeat.Period())

	clock.Advance(40 * time.Millisecond)
	assert.True(t, m.State.LastSent.Elapsed())
	assert.False(t, m.State.FirstRepeat.Elapsed())
}

func TestInitTimersWithoutOverridesKeepsDefaults(t *testing.T) {
	th.InstallFakeClock(t)

	m := keymap.NewSingle(button.B, keymap.Callbacks{}, nil)
	m.InitTimers()
	assert.Equal(t, keymap.DefaultRepeatDelay, m.State.LastSent.Period())
	assert.Equal(t, keymap.DefaultRepeatDelay, m.State.FirstRepeat.Period())
}

func TestBuilders(t *testing.T) {
	th.InstallFakeClock(t)

	g := keymap.GroupRef(7)

	rep := keymap.NewRepeating(button.A, keymap.Callbacks{}, g, 250*time.Millisecond)
	assert.Equal(t, keymap.RepeatInfinite, rep.Repeat)
	require.NotNil(t, rep.FirstRepeatDelay)
	assert.Equal(t, 250*time.Millisecond, *rep.FirstRepeatDelay)
	require.NotNil(t, rep.Group)
	assert.Equal(t, keymap.ExclusivityGroup(7), *rep.Group)

	single := keymap.NewSingle(button.B, keymap.Callbacks{}, nil)
	assert.Equal(t, keymap.RepeatNone, single.Repeat)
	assert.False(t, single.HasGroup())

	firstOnly := keymap.NewFirstRepeatOnly(button.X, keymap.Callbacks{}, nil, time.Second)
	assert.Equal(t, keymap.RepeatFirstOnly, firstOnly.Repeat)
	require.NotNil(t, firstOnly.FirstRepeatDelay)
	assert.Equal(t, time.Second, *firstOnly.FirstRepeatDelay)
}
