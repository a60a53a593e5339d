package bigobench

import (
	"testing"
	"time"
)

// fakeClock replaces the package clock so sampling tests are
// deterministic: time only moves when a workload advances it.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func useFakeClock(t *testing.T) *fakeClock {
	t.Helper()

	clk := &fakeClock{t: time.Unix(1700000000, 0)}
	now = clk.Now
	t.Cleanup(func() { now = time.Now })
	return clk
}

func TestElapsed_NonNegative(t *testing.T) {
	a := time.Unix(100, 0)
	b := time.Unix(101, 0)

	if got := elapsed(a, b); got != time.Second {
		t.Errorf("elapsed(a, b) = %v, want 1s", got)
	}

	// Reversed instants floor at zero instead of going negative.
	if got := elapsed(b, a); got != 0 {
		t.Errorf("elapsed(b, a) = %v, want 0", got)
	}
}
