package stats

import (
	"errors"
	"math"

	moremath "github.com/aclements/go-moremath/stats"
)

// ErrDegenerate is returned when a density cannot be estimated because
// every value is the same.
var ErrDegenerate = errors.New("stats: zero-width density")

// Density is a kernel density estimate sampled on an even grid.
type Density struct {
	Xs, Ys    []float64
	Bandwidth float64
}

// Max returns the largest density value.
func (d Density) Max() float64 {
	m := 0.0
	for _, y := range d.Ys {
		if y > m {
			m = y
		}
	}
	return m
}

// KDE estimates the density of values with a Gaussian kernel and Scott's
// bandwidth. The grid spans the data range extended by cut bandwidths on
// each side and has the given number of points.
func KDE(values []float64, points int, cut float64) (Density, error) {
	if len(values) == 0 {
		return Density{}, ErrNoValues
	}
	if points < 2 {
		points = 2
	}
	sample := moremath.Sample{Xs: values}
	bw := moremath.BandwidthScott(sample)
	if bw <= 0 {
		// Scott collapses when the IQR is zero.
		bw = moremath.BandwidthSilverman(sample)
	}
	if bw <= 0 || math.IsNaN(bw) {
		return Density{}, ErrDegenerate
	}
	kde := moremath.KDE{
		Sample:    sample,
		Kernel:    moremath.GaussianKernel,
		Bandwidth: bw,
	}

	lo, hi := sample.Bounds()
	lo -= cut * bw
	hi += cut * bw
	step := (hi - lo) / float64(points-1)

	d := Density{Xs: make([]float64, points), Ys: make([]float64, points), Bandwidth: bw}
	for i := range d.Xs {
		x := lo + float64(i)*step
		d.Xs[i] = x
		d.Ys[i] = kde.PDF(x)
	}
	return d, nil
}
