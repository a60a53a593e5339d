package bigobench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticSeries builds a per-call time series from a pure cost
// function of size, over a realistic geometric schedule.
func syntheticSeries(maxSize int, cost func(n float64) float64) ([]int, []float64) {
	sizes := SizeSchedule(maxSize, 7)
	times := make([]float64, len(sizes))
	for i, n := range sizes {
		times[i] = cost(float64(n))
	}
	return sizes, times
}

func TestFitGrowth_LinearSeries(t *testing.T) {
	sizes, times := syntheticSeries(2000, func(n float64) float64 {
		return 2.5e-7 * n
	})

	errs := FitGrowth(sizes, times)

	require.Len(t, errs, len(Candidates()))
	assert.InDelta(t, 0, errs[ON], 1e-12, "linear data must fit O(n) exactly")
	assert.Equal(t, ON, SelectGrowth(errs))
}

func TestFitGrowth_ConstantSeries(t *testing.T) {
	sizes, times := syntheticSeries(2000, func(float64) float64 {
		return 3e-6
	})

	errs := FitGrowth(sizes, times)

	// Constant data is fit exactly by every zero-slope model; the
	// catalogue-order tie break must land on O(1).
	assert.Equal(t, O1, SelectGrowth(errs))
}

func TestFitGrowth_QuadraticSeries(t *testing.T) {
	sizes, times := syntheticSeries(2000, func(n float64) float64 {
		return 1e-9 * n * n
	})

	errs := FitGrowth(sizes, times)
	assert.Equal(t, ON2, SelectGrowth(errs))
}

func TestFitGrowth_LogSeries(t *testing.T) {
	sizes, times := syntheticSeries(2000, func(n float64) float64 {
		return 4e-6 * math.Log(n)
	})

	errs := FitGrowth(sizes, times)
	assert.Equal(t, OLogN, SelectGrowth(errs))
}

func TestFitGrowth_NLogNSeries(t *testing.T) {
	sizes, times := syntheticSeries(2000, func(n float64) float64 {
		return 3e-8 * n * math.Log(n)
	})

	errs := FitGrowth(sizes, times)
	assert.Equal(t, ONLogN, SelectGrowth(errs))
}

func TestFitGrowth_Deterministic(t *testing.T) {
	sizes, times := syntheticSeries(1500, func(n float64) float64 {
		return 1e-8*n + 5e-7
	})

	first := FitGrowth(sizes, times)
	second := FitGrowth(sizes, times)

	require.Equal(t, first, second)
	assert.Equal(t, SelectGrowth(first), SelectGrowth(second))
}

func TestFitGrowth_AllErrorsNonNegative(t *testing.T) {
	sizes, times := syntheticSeries(500, func(n float64) float64 {
		return 1e-7 * n
	})

	for label, e := range FitGrowth(sizes, times) {
		assert.GreaterOrEqual(t, e, 0.0, "candidate %s", label)
		assert.False(t, math.IsNaN(e), "candidate %s", label)
	}
}

func TestFitGrowth_DegenerateSizes(t *testing.T) {
	// All sizes identical after flooring: every regression denominator
	// is zero. Slope falls back to 0 and selection still works.
	sizes := []int{1, 1, 2, 2, 2}
	times := []float64{1e-6, 2e-6, 3e-6, 2e-6, 1e-6}

	errs := FitGrowth(sizes, times)

	for label, e := range errs {
		assert.False(t, math.IsNaN(e) || math.IsInf(e, 0), "candidate %s", label)
		assert.GreaterOrEqual(t, e, 0.0)
	}
	assert.NotEqual(t, Unknown, SelectGrowth(errs))
}

func TestSelectGrowth_TieBreaksByCatalogueOrder(t *testing.T) {
	errs := make(map[Complexity]float64, len(Candidates()))
	for _, label := range Candidates() {
		errs[label] = 0.5
	}

	assert.Equal(t, O1, SelectGrowth(errs))
}

func TestCandidates_Order(t *testing.T) {
	want := []Complexity{O1, OLogN, ON, ONLogN, ON2, ON3, ON4, ON5}
	assert.Equal(t, want, Candidates())
}

func TestFitLine_ZeroDenominator(t *testing.T) {
	fit := fitLine([]float64{5, 5, 5}, []float64{1, 2, 3})

	assert.Equal(t, 0.0, fit.Slope)
	assert.InDelta(t, 2.0, fit.Intercept, 1e-12)
}
