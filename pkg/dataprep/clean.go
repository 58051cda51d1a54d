package dataprep

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/soamparkash/SCT-DS-02/pkg/stats"
)

// ErrUnknownColumn is returned when a plan names a column the table lacks.
var ErrUnknownColumn = errors.New("dataprep: unknown column")

// Strategy selects how missing values of a column are replaced.
type Strategy string

const (
	Mean     Strategy = "mean"
	Median   Strategy = "median"
	Mode     Strategy = "mode"
	Constant Strategy = "constant"
)

// Step imputes one column. Value is only used by Constant.
type Step struct {
	Column   string
	Strategy Strategy
	Value    string
}

// Plan is an ordered list of imputation steps.
type Plan []Step

// Fill records what a step did.
type Fill struct {
	Column   string
	Strategy Strategy
	Value    string
	Filled   int
}

// TitanicPlan is the cleaning applied to the passenger table.
func TitanicPlan() Plan {
	return Plan{
		{Column: "deck", Strategy: Constant, Value: "Unknown"},
		{Column: "age", Strategy: Median},
		{Column: "embarked", Strategy: Mode},
		{Column: "embark_town", Strategy: Mode},
		{Column: "alive", Strategy: Constant, Value: "no"},
		{Column: "who", Strategy: Constant, Value: "unknown"},
		{Column: "adult_male", Strategy: Constant, Value: "false"},
	}
}

// AutoPlan picks a strategy for every column with missing values, based on
// data type, skew and the share of missing values.
func AutoPlan(df dataframe.DataFrame) Plan {
	var plan Plan
	rows := float64(df.Nrow())
	for _, name := range df.Names() {
		col := df.Col(name)
		missing := countNaN(col)
		if missing == 0 {
			continue
		}
		ratio := float64(missing) / rows

		switch col.Type() {
		case series.Float, series.Int:
			nums := NonMissingFloats(col)
			skew := math.Abs(stats.Mean(nums)-stats.Median(nums)) / (stats.Std(nums) + 1e-9)
			if ratio < 0.05 && skew <= 1.0 && col.Type() == series.Float {
				// Low missingness -> mean
				plan = append(plan, Step{Column: name, Strategy: Mean})
			} else {
				plan = append(plan, Step{Column: name, Strategy: Median})
			}
		case series.Bool:
			plan = append(plan, Step{Column: name, Strategy: Mode})
		default:
			if ratio < 0.1 {
				plan = append(plan, Step{Column: name, Strategy: Mode})
			} else {
				plan = append(plan, Step{Column: name, Strategy: Constant, Value: "Unknown"})
			}
		}
	}
	return plan
}

// Clean applies plan to a copy of df. Every statistic is computed from the
// column as it was before its own step ran.
func Clean(df dataframe.DataFrame, plan Plan) (dataframe.DataFrame, []Fill, error) {
	if df.Err != nil {
		return df, nil, df.Err
	}
	out := df.Copy()
	fills := make([]Fill, 0, len(plan))

	for _, step := range plan {
		if !hasColumn(out, step.Column) {
			return df, nil, fmt.Errorf("%w: %q", ErrUnknownColumn, step.Column)
		}
		col := out.Col(step.Column)
		missing := countNaN(col)

		var (
			filled series.Series
			value  string
			err    error
		)
		switch step.Strategy {
		case Mean:
			filled, value, err = ImputeMean(col)
		case Median:
			filled, value, err = ImputeMedian(col)
		case Mode:
			filled, value, err = ImputeMode(col)
		case Constant:
			filled, value, err = ImputeConstant(col, step.Value)
		default:
			err = fmt.Errorf("unknown strategy %q", step.Strategy)
		}
		if err != nil {
			return df, nil, fmt.Errorf("dataprep: impute %s: %w", step.Column, err)
		}

		out = out.Mutate(filled)
		if out.Err != nil {
			return df, nil, fmt.Errorf("dataprep: replace %s: %w", step.Column, out.Err)
		}
		fills = append(fills, Fill{Column: step.Column, Strategy: step.Strategy, Value: value, Filled: missing})
	}
	return out, fills, nil
}

// ColumnCount pairs a column name with a count.
type ColumnCount struct {
	Column string
	Count  int
}

// MissingCounts returns the number of missing values per column, in column order.
func MissingCounts(df dataframe.DataFrame) []ColumnCount {
	names := df.Names()
	out := make([]ColumnCount, len(names))
	for i, name := range names {
		out[i] = ColumnCount{Column: name, Count: countNaN(df.Col(name))}
	}
	return out
}

// TotalMissing sums MissingCounts.
func TotalMissing(df dataframe.DataFrame) int {
	total := 0
	for _, c := range MissingCounts(df) {
		total += c.Count
	}
	return total
}

// CountDuplicates returns how many rows repeat an earlier row.
// Missing cells compare equal to each other and floats compare exactly.
func CountDuplicates(df dataframe.DataFrame) int {
	rows := df.Nrow()
	if rows < 2 {
		return 0
	}
	keys := make([][]string, rows)
	for _, name := range df.Names() {
		col := df.Col(name)
		for i := 0; i < rows; i++ {
			keys[i] = append(keys[i], cellKey(col.Elem(i)))
		}
	}
	seen := make(map[string]struct{}, rows)
	dups := 0
	for _, row := range keys {
		key := strings.Join(row, "\x1f")
		if _, ok := seen[key]; ok {
			dups++
			continue
		}
		seen[key] = struct{}{}
	}
	return dups
}

// cellKey formats e for row comparison. Floats keep every significant digit.
func cellKey(e series.Element) string {
	if e.IsNA() {
		return "NaN"
	}
	if e.Type() == series.Float {
		return strconv.FormatFloat(e.Float(), 'g', -1, 64)
	}
	return e.String()
}

// UniqueValues returns the distinct values of a column in order of first
// appearance. Missing values are reported as "NaN".
func UniqueValues(df dataframe.DataFrame, column string) ([]string, error) {
	if !hasColumn(df, column) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
	return stats.Unique(df.Col(column).Records()), nil
}

// NonMissing returns the string form of the non-missing values of s.
func NonMissing(s series.Series) []string {
	var out []string
	for i := 0; i < s.Len(); i++ {
		if e := s.Elem(i); !e.IsNA() {
			out = append(out, e.String())
		}
	}
	return out
}

// NonMissingFloats returns the non-missing values of s as floats.
func NonMissingFloats(s series.Series) []float64 {
	var out []float64
	for i := 0; i < s.Len(); i++ {
		if e := s.Elem(i); !e.IsNA() {
			out = append(out, e.Float())
		}
	}
	return out
}

func countNaN(s series.Series) int {
	n := 0
	for _, na := range s.IsNaN() {
		if na {
			n++
		}
	}
	return n
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
