package bigobench

import (
	"testing"
	"time"
)

// AssertComplexity verifies that an analyzed result selected the
// expected growth class.
func AssertComplexity(t *testing.T, res *Result, want Complexity) {
	t.Helper()

	if res.Complexity == None {
		t.Fatal("result was not analyzed; enable AnalyzeComplexity")
	}
	if res.Complexity == Unknown {
		t.Fatalf("analysis was skipped (no usable problem size); wanted %s", want)
	}

	if res.Complexity != want {
		t.Errorf("complexity mismatch: got %s, want %s\n"+
			"Fit errors: %v", res.Complexity, want, res.Errors)
		return
	}

	t.Logf("✓ Complexity: %s (RMSE %.3e)", res.Complexity, res.Errors[res.Complexity])
}

// AssertElapsedWithin verifies a measured duration lands inside
// [min, max]. Bounds should leave room for timer resolution and
// scheduler noise.
func AssertElapsedWithin(t *testing.T, d, min, max time.Duration) {
	t.Helper()

	if d < min || d > max {
		t.Errorf("elapsed %v outside [%v, %v]", d, min, max)
		return
	}
	t.Logf("✓ Elapsed: %v within [%v, %v]", d, min, max)
}

// PrintAnalysis dumps the sampled series and the per-candidate error
// table to the test log.
func PrintAnalysis(t *testing.T, res *Result) {
	t.Helper()

	t.Logf("\n=== Growth Analysis ===")
	t.Logf("Single shot: %.6f seconds", res.Elapsed.Seconds())
	t.Logf("Selected:    %s", res.Complexity)

	if len(res.Sizes) == 0 {
		t.Logf("(no sampled series)")
		return
	}

	t.Logf("\nSampled series:")
	t.Logf("  size      per-call (s)")
	for i, n := range res.Sizes {
		t.Logf("  %-8d  %.9f", n, res.PerCall[i])
	}

	t.Logf("\nFit errors (RMSE):")
	for _, label := range Candidates() {
		marker := " "
		if label == res.Complexity {
			marker = "*"
		}
		t.Logf("  %s %-12s %.3e", marker, label, res.Errors[label])
	}
}
