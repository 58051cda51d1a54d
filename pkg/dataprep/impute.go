package dataprep

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-gota/gota/series"

	"github.com/soamparkash/SCT-DS-02/pkg/stats"
)

// ---------- Simple Imputation Methods ----------

// ImputeMean replaces missing numeric values with the column mean.
func ImputeMean(s series.Series) (series.Series, string, error) {
	nums, err := present(s)
	if err != nil {
		return s, "", err
	}
	return fill(s, formatFloat(stats.Mean(nums)))
}

// ImputeMedian replaces missing numeric values with the column median.
func ImputeMedian(s series.Series) (series.Series, string, error) {
	nums, err := present(s)
	if err != nil {
		return s, "", err
	}
	return fill(s, formatFloat(stats.Median(nums)))
}

// ImputeMode replaces missing values with the most frequent value.
// Ties go to the smallest value.
func ImputeMode(s series.Series) (series.Series, string, error) {
	if s.Type() == series.Int || s.Type() == series.Float {
		nums, err := present(s)
		if err != nil {
			return s, "", err
		}
		mode, err := stats.Mode(nums)
		if err != nil {
			return s, "", fmt.Errorf("mode of %s: %w", s.Name, err)
		}
		return fill(s, formatFloat(mode))
	}
	mode, _, err := stats.ModeString(NonMissing(s))
	if err != nil {
		return s, "", fmt.Errorf("mode of %s: %w", s.Name, err)
	}
	return fill(s, mode)
}

// ImputeConstant replaces missing values with a fixed constant.
func ImputeConstant(s series.Series, constant string) (series.Series, string, error) {
	return fill(s, constant)
}

// fill returns a copy of s with every missing element set to value.
// An int column filled with a fractional value becomes a float column.
func fill(s series.Series, value string) (series.Series, string, error) {
	if s.Type() == series.Float || (s.Type() == series.Int && !isWhole(value)) {
		// Rebuild from floats so present values keep full precision.
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(v) {
			return s, "", fmt.Errorf("fill %s: %q is not a valid float", s.Name, value)
		}
		nums := make([]float64, s.Len())
		for i := 0; i < s.Len(); i++ {
			if e := s.Elem(i); e.IsNA() {
				nums[i] = v
			} else {
				nums[i] = e.Float()
			}
		}
		return series.New(nums, series.Float, s.Name), value, nil
	}

	records := make([]string, s.Len())
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			records[i] = value
			continue
		}
		records[i] = e.String()
	}
	out := series.New(records, s.Type(), s.Name)
	if out.Err != nil {
		return s, "", fmt.Errorf("fill %s with %q: %w", s.Name, value, out.Err)
	}
	if out.HasNaN() {
		return s, "", fmt.Errorf("fill %s: %q is not a valid %s", s.Name, value, s.Type())
	}
	return out, value, nil
}

// present returns the non-missing values of a numeric series.
func present(s series.Series) ([]float64, error) {
	if s.Type() != series.Int && s.Type() != series.Float {
		return nil, fmt.Errorf("column %s is %s, not numeric", s.Name, s.Type())
	}
	var nums []float64
	for i := 0; i < s.Len(); i++ {
		if e := s.Elem(i); !e.IsNA() {
			nums = append(nums, e.Float())
		}
	}
	if len(nums) == 0 {
		return nil, fmt.Errorf("column %s: %w", s.Name, stats.ErrNoValues)
	}
	return nums, nil
}

// isWhole reports whether value parses as a float with no fractional part.
func isWhole(value string) bool {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return true
	}
	return v == math.Trunc(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
