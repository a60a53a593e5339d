package bigobench

import (
	"log/slog"
	"runtime/debug"
	"time"
)

// Func is a profiled operation: a callable over a fixed positional
// argument list. The return value is opaque to the profiler.
type Func func(args ...any) (any, error)

// pauseGC disables background garbage collection and returns a restore
// function. The sampler holds the pause for a whole sweep so collector
// pauses do not land inside a measured batch; restore runs on every
// exit path.
func pauseGC() (restore func()) {
	prev := debug.SetGCPercent(-1)
	return func() { debug.SetGCPercent(prev) }
}

// warmUp performs one untimed invocation to prime caches and lazy
// state. Failures are irrelevant here: an error is ignored and a panic
// is swallowed, since the real, validated invocation already happened.
func warmUp(fn Func, vals []any) {
	defer func() { _ = recover() }()
	_, _ = fn(vals...)
}

// sampleSize estimates the per-call duration of fn at one fixed input
// size. A single fast call is dominated by timer resolution and
// scheduling jitter, so the batch size doubles until the whole batch
// clears minDuration (or maxLoops caps the escalation), and the
// estimate is total/loops.
//
// An error from any invocation aborts the sweep; it belongs to the
// operation and is returned untouched.
func sampleSize(fn Func, vals []any, minDuration time.Duration, maxLoops int) (float64, error) {
	loops := 1
	for {
		start := now()
		for i := 0; i < loops; i++ {
			if _, err := fn(vals...); err != nil {
				return 0, err
			}
		}
		total := elapsed(start, now())

		if total >= minDuration || loops >= maxLoops {
			return total.Seconds() / float64(loops), nil
		}
		loops *= 2
	}
}

// sampleSweep runs the full adaptive sweep: warm-up at the smallest
// scheduled size, then one per-call estimate per scheduled size, with
// GC paused for the duration.
func sampleSweep(fn Func, args []Arg, index int, sizes []int, minDuration time.Duration, maxLoops int) ([]float64, error) {
	restore := pauseGC()
	defer restore()

	warmUp(fn, argValues(resizeArgs(args, index, sizes[0])))

	perCall := make([]float64, 0, len(sizes))
	for _, n := range sizes {
		t, err := sampleSize(fn, argValues(resizeArgs(args, index, n)), minDuration, maxLoops)
		if err != nil {
			return nil, err
		}
		slog.Debug("sampled size", "size", n, "per_call_sec", t)
		perCall = append(perCall, t)
	}
	return perCall, nil
}
