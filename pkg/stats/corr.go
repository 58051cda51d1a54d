package stats

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Matrix is a square matrix with named rows and columns.
type Matrix struct {
	Names  []string
	Values *mat.SymDense
}

// At returns the value at row i, column j.
func (m Matrix) At(i, j int) float64 { return m.Values.At(i, j) }

// Len returns the number of variables.
func (m Matrix) Len() int { return len(m.Names) }

// CorrelationMatrix computes pairwise Pearson correlations between the columns of x.
// Rows of x are observations. A constant column correlates as NaN with the others.
func CorrelationMatrix(names []string, x mat.Matrix) (Matrix, error) {
	r, c := x.Dims()
	if r < 2 {
		return Matrix{}, fmt.Errorf("stats: correlation needs at least 2 rows, got %d", r)
	}
	if c != len(names) {
		return Matrix{}, fmt.Errorf("stats: %d names for %d columns", len(names), c)
	}
	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, x, nil)
	return Matrix{Names: names, Values: &corr}, nil
}

// Correlation computes the Pearson correlation coefficient between two slices.
func Correlation(x, y []float64) float64 {
	return stat.Correlation(x, y, nil)
}
