// Package testing provides shared helpers for padbind's test suites.
package testing

import (
	"sync"
	"testing"
	"time"

	"github.com/padbind/padbind/timing"
)

// FakeClock replaces timing.Now so cadence tests advance time
// explicitly instead of sleeping.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// InstallFakeClock swaps timing.Now for a fake and restores the real
// clock when the test finishes.
func InstallFakeClock(t *testing.T) *FakeClock {
	t.Helper()
	c := &FakeClock{now: time.Unix(1000, 0)}
	prev := timing.Now
	timing.Now = c.Now
	t.Cleanup(func() { timing.Now = prev })
	return c
}

// Now returns the fake instant.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the fake clock forward.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
