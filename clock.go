package bigobench

import "time"

// now is the profiler's clock. time.Now carries a monotonic reading on
// every supported platform, so differences are immune to wall-clock
// adjustments. Tests swap this out for a deterministic clock.
var now = time.Now

// elapsed returns the monotonic duration between two instants, floored
// at zero.
func elapsed(start, end time.Time) time.Duration {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return d
}
