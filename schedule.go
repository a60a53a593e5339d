package bigobench

import "math"

// SizeSchedule produces the sample sizes for one analysis sweep: a
// geometric ladder from the smallest usable size up to maxSize, so the
// samples cover the range evenly in log space, matching the log-feature
// regression applied afterward.
//
// The ratio is (maxSize/2)^(1/(sampleCount-1)); the ladder runs
// ratio, ratio², …, maxSize/2, each rung floored at 2 and capped at
// maxSize, and maxSize itself is appended as the guaranteed largest
// sample. Duplicates collapse in order, then the schedule is padded by
// repeating maxSize until it holds exactly sampleCount entries.
func SizeSchedule(maxSize, sampleCount int) []int {
	if sampleCount < 3 {
		sampleCount = 3
	}

	ratio := math.Pow(float64(maxSize)/2, 1/float64(sampleCount-1))

	raw := make([]int, 0, sampleCount)
	size := ratio
	for i := 0; i < sampleCount-1; i++ {
		n := int(size)
		if n < 2 {
			n = 2
		}
		if n > maxSize {
			n = maxSize
		}
		raw = append(raw, n)
		size *= ratio
	}
	raw = append(raw, maxSize)

	sizes := make([]int, 0, sampleCount)
	for _, n := range raw {
		if len(sizes) == 0 || sizes[len(sizes)-1] != n {
			sizes = append(sizes, n)
		}
	}
	for len(sizes) < sampleCount {
		sizes = append(sizes, maxSize)
	}
	return sizes
}
