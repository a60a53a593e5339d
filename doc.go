// Package bigobench is an empirical runtime-complexity profiler.
//
// # Overview
//
// bigobench measures wall-clock execution time of an operation across a
// range of input sizes and infers which asymptotic growth model best
// explains the observed timings. The candidate catalogue is fixed:
//
//	O(1), O(log n), O(n), O(n log n), O(n²), O(n³), O(n⁴), O(n⁵)
//
// Per-call times at each sampled size are regression-fit against every
// candidate's feature function by ordinary least squares, and the
// candidate with the lowest RMSE wins.
//
// # Two entry points
//
// Scoped stopwatch — time a block of code:
//
//	sw := bigobench.Start(bigobench.DefaultConfig())
//	doWork()
//	elapsed := sw.Stop()
//
// Callable wrapper — time a function, optionally with full analysis:
//
//	cfg := bigobench.DefaultConfig()
//	cfg.AnalyzeComplexity = true
//
//	sum := func(args ...any) (any, error) {
//	    xs := args[0].([]int)
//	    total := 0
//	    for _, x := range xs {
//	        total += x
//	    }
//	    return total, nil
//	}
//
//	res, err := bigobench.Measure(sum, cfg, bigobench.Seq(data))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Complexity) // "O(n)"
//
// # How analysis works
//
// The profiler locates the first argument with a usable problem size
// (a Seq/Text with a length, or a bare positive Size), builds a geometric
// schedule of sample sizes up to the natural input size, and for each
// size runs the operation in doubling batches until the batch takes long
// enough to stand out from timer resolution. The resulting
// (size, per-call-time) series is fit against every candidate model.
//
// Garbage collection is paused for the duration of a sampling sweep and
// restored afterward, so collector pauses do not inject noise into the
// series. This is best effort: OS scheduling noise remains, which is why
// the result is a heuristic classification, not a proof.
//
// # Degraded operation
//
// Analysis never turns a working call into a failure. If no argument
// exposes a size, or the size is smaller than the sample count, the
// wrapper still performs its single timed invocation and reports the
// complexity as Unknown. Errors raised by the operation itself propagate
// to the caller unmodified, exactly as if the operation had been called
// directly.
//
// # Testing
//
// Assertion helpers validate timing properties inside regular Go tests:
//
//	func TestIndexLookup(t *testing.T) {
//	    res := profileLookup(t)
//	    bigobench.AssertComplexity(t, res, bigobench.OLogN)
//	}
//
// # Non-goals
//
// bigobench does not schedule work across goroutines, does not persist
// results, and does not claim statistically rigorous confidence
// intervals. It is a best-effort classifier over noisy wall-clock
// samples, not a formal benchmarking framework.
package bigobench
