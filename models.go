package bigobench

import "math"

// Complexity is the label of one asymptotic growth class.
type Complexity string

// The candidate growth classes, in catalogue order. Two sentinels sit
// outside the catalogue: None means analysis was not requested, Unknown
// means it was requested but no usable problem size was found.
const (
	O1     Complexity = "O(1)"
	OLogN  Complexity = "O(log n)"
	ON     Complexity = "O(n)"
	ONLogN Complexity = "O(n log n)"
	ON2    Complexity = "O(n^2)"
	ON3    Complexity = "O(n^3)"
	ON4    Complexity = "O(n^4)"
	ON5    Complexity = "O(n^5)"

	None    Complexity = ""
	Unknown Complexity = "unknown"
)

// candidate pairs a growth label with the feature its regression uses:
// per-call time is fit as a + b·feature(size).
type candidate struct {
	Label   Complexity
	Feature func(n float64) float64
}

// catalogue is the fixed, ordered candidate table. Selection ties break
// toward the earlier (lower-order) entry, so the order is part of the
// contract.
var catalogue = []candidate{
	{O1, func(float64) float64 { return 1 }},
	{OLogN, math.Log},
	{ON, func(n float64) float64 { return n }},
	{ONLogN, func(n float64) float64 { return n * math.Log(n) }},
	{ON2, func(n float64) float64 { return n * n }},
	{ON3, func(n float64) float64 { return n * n * n }},
	{ON4, func(n float64) float64 { return n * n * n * n }},
	{ON5, func(n float64) float64 { return n * n * n * n * n }},
}

// Candidates returns the catalogue labels in selection order.
func Candidates() []Complexity {
	labels := make([]Complexity, len(catalogue))
	for i, c := range catalogue {
		labels[i] = c.Label
	}
	return labels
}

// linearFit is an ordinary-least-squares line y = Intercept + Slope·x.
type linearFit struct {
	Intercept float64
	Slope     float64
}

// fitLine solves OLS with intercept:
//
//	b = Σ(x-x̄)(y-ȳ) / Σ(x-x̄)², a = ȳ - b·x̄
//
// A zero denominator (all x identical) yields slope 0 rather than an
// error; the constant line through ȳ is still a valid fit.
func fitLine(xs, ys []float64) linearFit {
	n := float64(len(xs))
	var meanX, meanY float64
	for i := range xs {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= n
	meanY /= n

	var cov, varX float64
	for i := range xs {
		dx := xs[i] - meanX
		cov += dx * (ys[i] - meanY)
		varX += dx * dx
	}

	var slope float64
	if varX != 0 {
		slope = cov / varX
	}
	return linearFit{Intercept: meanY - slope*meanX, Slope: slope}
}

// rmse is the root-mean-square residual of ys against the fitted line.
func rmse(fit linearFit, xs, ys []float64) float64 {
	var sum float64
	for i := range xs {
		r := ys[i] - (fit.Intercept + fit.Slope*xs[i])
		sum += r * r
	}
	return math.Sqrt(sum / float64(len(xs)))
}

// FitGrowth regresses per-call time against every candidate's feature
// function and returns the RMSE per candidate. Sizes are floored at 2
// before the feature is applied, which keeps log-based features away
// from log(0). All candidates are always evaluated.
//
// sizes and perCall must be the same length; deterministic for
// identical input.
func FitGrowth(sizes []int, perCall []float64) map[Complexity]float64 {
	errs := make(map[Complexity]float64, len(catalogue))
	xs := make([]float64, len(sizes))

	for _, c := range catalogue {
		for i, s := range sizes {
			if s < 2 {
				s = 2
			}
			xs[i] = c.Feature(float64(s))
		}
		errs[c.Label] = rmse(fitLine(xs, perCall), xs, perCall)
	}
	return errs
}

// SelectGrowth picks the candidate with the lowest fit error. Ties break
// by catalogue order, which prefers the lower-order model; that is a
// deterministic heuristic, not a statistical claim.
func SelectGrowth(errs map[Complexity]float64) Complexity {
	best := Unknown
	bestErr := math.Inf(1)
	for _, c := range catalogue {
		e, ok := errs[c.Label]
		if !ok {
			continue
		}
		if e < bestErr {
			best = c.Label
			bestErr = e
		}
	}
	return best
}
