package stats

import (
	"errors"
	"math"
	"sort"

	moremath "github.com/aclements/go-moremath/stats"
)

// ErrNoValues is returned when a statistic needs at least one value.
var ErrNoValues = errors.New("stats: no values")

// Mean computes the average of a slice. NaN for an empty slice.
func Mean(x []float64) float64 {
	return moremath.Mean(x)
}

// Std computes the sample standard deviation (n-1 denominator).
// NaN for fewer than two values.
func Std(x []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	return moremath.StdDev(x)
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return math.NaN(), math.NaN()
	}
	return moremath.Bounds(x)
}

// Median returns the median value of the slice (allocates a copy).
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	mid := n >> 1
	if n&1 == 0 {
		return (cp[mid-1] + cp[mid]) * 0.5
	}
	return cp[mid]
}

// Percentile returns the p-th percentile value of the slice (0 <= p <= 100),
// interpolating linearly between the closest ranks.
func Percentile(x []float64, p float64) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}
	min, max := MinMax(x)
	if p <= 0 {
		return min
	}
	if p >= 100 {
		return max
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	rank := p / 100 * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	weight := rank - float64(lower)
	if upper >= n {
		return cp[lower]
	}
	return cp[lower]*(1-weight) + cp[upper]*weight
}

// Mode returns the most frequent value in the slice.
// Ties go to the smallest value.
func Mode(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrNoValues
	}
	counts := make(map[float64]int)
	for _, v := range x {
		counts[v]++
	}
	mode, maxCount := 0.0, 0
	for v, c := range counts {
		if c > maxCount || (c == maxCount && v < mode) {
			mode, maxCount = v, c
		}
	}
	return mode, nil
}

// ModeString returns the most frequent string and how often it occurs.
// Ties go to the lexicographically smallest value.
func ModeString(x []string) (string, int, error) {
	if len(x) == 0 {
		return "", 0, ErrNoValues
	}
	counts := make(map[string]int)
	for _, v := range x {
		counts[v]++
	}
	mode, maxCount := "", 0
	for v, c := range counts {
		if c > maxCount || (c == maxCount && v < mode) {
			mode, maxCount = v, c
		}
	}
	return mode, maxCount, nil
}

// Unique returns the distinct values of x in order of first appearance.
func Unique(x []string) []string {
	seen := make(map[string]struct{}, len(x))
	out := []string{}
	for _, v := range x {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
