package timing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	th "github.com/padbind/padbind/internal/testing"
	"github.com/padbind/padbind/timing"
)

func TestTimerElapsed(t *testing.T) {
	clock := th.InstallFakeClock(t)

	timer := timing.NewTimer(100 * time.Millisecond)
	assert.False(t, timer.Elapsed())

	clock.Advance(99 * time.Millisecond)
	assert.False(t, timer.Elapsed())

	clock.Advance(1 * time.Millisecond)
	assert.True(t, timer.Elapsed())

	// Elapsed is a pure observation; asking again changes nothing.
	assert.True(t, timer.Elapsed())
}

func TestTimerReset(t *testing.T) {
	clock := th.InstallFakeClock(t)

	timer := timing.NewTimer(50 * time.Millisecond)
	clock.Advance(60 * time.Millisecond)
	assert.True(t, timer.Elapsed())

	timer.Reset()
	assert.False(t, timer.Elapsed())
	clock.Advance(50 * time.Millisecond)
	assert.True(t, timer.Elapsed())
}

func TestTimerResetAfter(t *testing.T) {
	clock := th.InstallFakeClock(t)

	timer := timing.NewTimer(50 * time.Millisecond)
	timer.ResetAfter(200 * time.Millisecond)
	assert.Equal(t, 200*time.Millisecond, timer.Period())

	clock.Advance(150 * time.Millisecond)
	assert.False(t, timer.Elapsed())
	clock.Advance(50 * time.Millisecond)
	assert.True(t, timer.Elapsed())
}

func TestZeroPeriodElapsesImmediately(t *testing.T) {
	th.InstallFakeClock(t)

	timer := timing.NewTimer(0)
	assert.True(t, timer.Elapsed())

	timer.Reset()
	assert.True(t, timer.Elapsed())
}
