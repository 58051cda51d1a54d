package dataprep

import (
	"errors"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"
)

// ErrNoNumericColumns is returned when a table has nothing to correlate.
var ErrNoNumericColumns = errors.New("dataprep: no numeric columns")

// NumericColumns returns the names of the int, float and bool columns.
func NumericColumns(df dataframe.DataFrame) []string {
	var names []string
	for _, name := range df.Names() {
		switch df.Col(name).Type() {
		case series.Int, series.Float, series.Bool:
			names = append(names, name)
		}
	}
	return names
}

// NumericMatrix encodes the numeric columns of df as a rows x columns matrix.
// Bools become 0 and 1. Rows with a missing value in any of these columns
// are left out.
func NumericMatrix(df dataframe.DataFrame) ([]string, *mat.Dense, error) {
	names := NumericColumns(df)
	if len(names) == 0 {
		return nil, nil, ErrNoNumericColumns
	}
	cols := make([]series.Series, len(names))
	for j, name := range names {
		cols[j] = df.Col(name)
	}

	var data []float64
	rows := 0
	for i := 0; i < df.Nrow(); i++ {
		complete := true
		for _, c := range cols {
			if c.Elem(i).IsNA() {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		for _, c := range cols {
			data = append(data, c.Elem(i).Float())
		}
		rows++
	}
	if rows == 0 {
		return names, nil, ErrNoNumericColumns
	}
	return names, mat.NewDense(rows, len(names), data), nil
}

// LabelEncode encodes categories as integers in order of first appearance.
func LabelEncode(data []string) ([]int, map[string]int) {
	unique := map[string]int{}
	out := make([]int, len(data))
	for i, v := range data {
		if _, ok := unique[v]; !ok {
			unique[v] = len(unique)
		}
		out[i] = unique[v]
	}
	return out, unique
}
