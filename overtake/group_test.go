package overtake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/padbind/padbind/button"
	"github.com/padbind/padbind/overtake"
)

// Mirrors the three decision operators across a full press/overtake/
// release conversation.
func TestGroupActivationDownsAndUps(t *testing.T) {
	gai := overtake.NewGroupActivation(101)

	down := func(b button.Button, wantSuppress bool, wantUp button.Button) {
		t.Helper()
		suppress, up := gai.OnNewDown(b)
		assert.Equal(t, wantSuppress, suppress)
		assert.Equal(t, wantUp, up)
	}
	up := func(b button.Button, wantRestored button.Button) {
		t.Helper()
		assert.Equal(t, wantRestored, gai.OnNewUp(b))
	}

	// Downs: first activation, overtake, then a suppressed re-down of
	// the overtaken member.
	down(button.A, false, button.NotSet)
	down(button.B, false, button.A)
	down(button.A, true, button.NotSet)

	// Ups: releasing the active front restores the overtaken member;
	// releasing the rest empties the queue; a stranger is a no-op.
	up(button.B, button.A)
	up(button.A, button.NotSet)
	up(button.X, button.NotSet)
	assert.False(t, gai.AnyActive())

	// Interleaved downs and ups.
	down(button.A, false, button.NotSet)
	up(button.B, button.NotSet)
	up(button.A, button.NotSet)
	down(button.B, false, button.NotSet)
	down(button.X, false, button.B)
	down(button.B, true, button.NotSet)
	up(button.B, button.NotSet)
	up(button.X, button.NotSet)
	assert.False(t, gai.AnyActive())

	// More downs than ups, released out of order.
	down(button.A, false, button.NotSet)
	down(button.B, false, button.A)
	down(button.A, true, button.NotSet)
	down(button.X, false, button.B)

	up(button.B, button.NotSet)
	up(button.A, button.NotSet)
	up(button.Y, button.NotSet)
	up(button.X, button.NotSet)
	assert.False(t, gai.AnyActive())
}

func TestGroupActivationIdempotentFrontDown(t *testing.T) {
	gai := overtake.NewGroupActivation(5)

	suppress, upFor := gai.OnNewDown(button.A)
	assert.False(t, suppress)
	assert.Equal(t, button.NotSet, upFor)

	// The active front re-reported down is neither suppressed nor an
	// overtake.
	suppress, upFor = gai.OnNewDown(button.A)
	assert.False(t, suppress)
	assert.Equal(t, button.NotSet, upFor)
	assert.Equal(t, []button.Button{button.A}, gai.Queue())
}

func TestGroupActivationQueueOrder(t *testing.T) {
	gai := overtake.NewGroupActivation(1)

	gai.OnNewDown(button.A)
	gai.OnNewDown(button.B)
	gai.OnNewDown(button.Y)
	gai.OnNewDown(button.X)

	// Front is the latest activation; overtaken members sit behind it
	// most recently overtaken first.
	assert.Equal(t, []button.Button{button.X, button.Y, button.B, button.A}, gai.Queue())
	assert.True(t, gai.IsActive(button.X))
	assert.True(t, gai.IsOvertaken(button.Y))
	assert.True(t, gai.IsTracked(button.A))
	assert.False(t, gai.IsTracked(button.DpadUp))

	// Releasing an overtaken member erases it in place.
	assert.Equal(t, button.NotSet, gai.OnNewUp(button.B))
	assert.Equal(t, []button.Button{button.X, button.Y, button.A}, gai.Queue())

	// Releasing the front promotes the next in line.
	assert.Equal(t, button.Y, gai.OnNewUp(button.X))
	assert.Equal(t, []button.Button{button.Y, button.A}, gai.Queue())
}
