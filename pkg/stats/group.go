package stats

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	moremath "github.com/aclements/go-moremath/stats"
)

// Count is the number of occurrences of one category.
type Count struct {
	Key string
	N   int
}

// Group summarizes the values that share one key.
type Group struct {
	Key  string
	N    int
	Mean float64
	// Low and High bound the 95% confidence interval of Mean.
	Low, High float64
}

// Confidence is the level used for group mean intervals.
const Confidence = 0.95

// ValueCounts counts each key. Keys listed in order come first, in that order;
// the rest follow in order of first appearance. Keys in order with no
// occurrences are left out.
func ValueCounts(keys []string, order []string) []Count {
	counts := make(map[string]int)
	for _, k := range keys {
		counts[k]++
	}
	out := make([]Count, 0, len(counts))
	for _, k := range Levels(keys, order) {
		out = append(out, Count{Key: k, N: counts[k]})
	}
	return out
}

// GroupMean averages values by key, with a t-based confidence interval per group.
func GroupMean(keys []string, values []float64, order []string) ([]Group, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("stats: %d keys for %d values", len(keys), len(values))
	}
	if len(keys) == 0 {
		return nil, ErrNoValues
	}
	byKey := make(map[string][]float64)
	for i, k := range keys {
		byKey[k] = append(byKey[k], values[i])
	}
	var out []Group
	for _, k := range Levels(keys, order) {
		xs := byKey[k]
		mean, lo, hi := moremath.MeanCI(xs, Confidence)
		if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			lo, hi = mean, mean
		}
		out = append(out, Group{Key: k, N: len(xs), Mean: mean, Low: lo, High: hi})
	}
	return out, nil
}

// Levels returns the distinct keys, ordered by order first and then by first
// appearance. Purely numeric keys with no order are sorted numerically.
func Levels(keys []string, order []string) []string {
	present := make(map[string]bool, len(keys))
	for _, k := range keys {
		present[k] = true
	}
	out := []string{}
	listed := make(map[string]bool, len(order))
	for _, k := range order {
		listed[k] = true
		if present[k] {
			out = append(out, k)
		}
	}
	var rest []string
	for _, k := range Unique(keys) {
		if !listed[k] {
			rest = append(rest, k)
		}
	}
	if len(order) == 0 && allNumeric(rest) {
		sort.Slice(rest, func(i, j int) bool {
			a, _ := strconv.ParseFloat(rest[i], 64)
			b, _ := strconv.ParseFloat(rest[j], 64)
			return a < b
		})
	}
	return append(out, rest...)
}

func allNumeric(keys []string) bool {
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if _, err := strconv.ParseFloat(k, 64); err != nil {
			return false
		}
	}
	return true
}
