package charts

import (
	"errors"
	"image/color"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/soamparkash/SCT-DS-02/pkg/stats"
)

const (
	kdePoints = 200
	// violinCut extends each violin two bandwidths past its extreme values.
	violinCut   = 2
	violinWidth = 0.4
)

// PlotAgeDistribution draws a histogram of age with a kernel density curve
// scaled to bin counts.
func PlotAgeDistribution(df dataframe.DataFrame, opts Options) (string, error) {
	ages, err := floats(df, "age")
	if err != nil {
		return "", err
	}
	if len(ages) == 0 {
		return "", stats.ErrNoValues
	}
	bins := opts.Bins
	if bins < 1 {
		bins = 1
	}

	p := plot.New()
	p.Title.Text = "Age Distribution"
	p.X.Label.Text = "Age"
	p.Y.Label.Text = "Count"

	h, err := plotter.NewHist(plotter.Values(ages), bins)
	if err != nil {
		return "", err
	}
	h.FillColor = skyBlue
	h.LineStyle.Color = color.White
	p.Add(h)

	density, err := stats.KDE(ages, kdePoints, 0)
	switch {
	case err == nil:
		// counts = density * n * bin width
		scale := float64(len(ages)) * h.Width
		pts := make(plotter.XYs, len(density.Xs))
		for i := range density.Xs {
			pts[i] = plotter.XY{X: density.Xs[i], Y: density.Ys[i] * scale}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return "", err
		}
		line.LineStyle.Color = rgb(0x1F, 0x77, 0xB4)
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
	case errors.Is(err, stats.ErrDegenerate):
		// a single distinct age has no density curve
	default:
		return "", err
	}
	p.Y.Min = 0
	return save(p, AgeDistribution, opts, opts.Width, opts.Height)
}

// PlotAgeBySurvival draws one violin of age per survival outcome, each with
// a box marking the quartiles and a dot on the median.
func PlotAgeBySurvival(df dataframe.DataFrame, opts Options) (string, error) {
	keys, ages, err := pairs(df, "survived", "age")
	if err != nil {
		return "", err
	}
	levels := stats.Levels(keys, opts.Schema.Order("survived"))
	if len(levels) == 0 {
		return "", stats.ErrNoValues
	}

	p := plot.New()
	p.Title.Text = "Age Distribution by Survival"
	p.X.Label.Text = "Survived"
	p.Y.Label.Text = "Age"

	for i, level := range levels {
		var values []float64
		for j, k := range keys {
			if k == level {
				values = append(values, ages[j])
			}
		}
		if err := addViolin(p, float64(i), values, pick(muted, i)); err != nil {
			return "", err
		}
	}
	p.NominalX(levels...)
	p.X.Min = -0.5
	p.X.Max = float64(len(levels)) - 0.5
	return save(p, AgeBySurvival, opts, opts.Width, opts.Height)
}

// addViolin draws the mirrored density of values centred on x.
func addViolin(p *plot.Plot, x float64, values []float64, fill color.Color) error {
	density, err := stats.KDE(values, kdePoints, violinCut)
	switch {
	case err == nil:
		half := violinWidth / density.Max()
		n := len(density.Xs)
		outline := make(plotter.XYs, 0, 2*n)
		for i := 0; i < n; i++ {
			outline = append(outline, plotter.XY{X: x + density.Ys[i]*half, Y: density.Xs[i]})
		}
		for i := n - 1; i >= 0; i-- {
			outline = append(outline, plotter.XY{X: x - density.Ys[i]*half, Y: density.Xs[i]})
		}
		poly, err := plotter.NewPolygon(outline)
		if err != nil {
			return err
		}
		poly.Color = fill
		poly.LineStyle.Color = color.Gray{Y: 0x40}
		poly.LineStyle.Width = vg.Points(1)
		p.Add(poly)
	case errors.Is(err, stats.ErrDegenerate):
		// all values equal: only the box is drawn
	default:
		return err
	}
	return addInnerBox(p, x, values)
}

// addInnerBox draws whiskers to the most extreme values inside the Tukey
// fences, a thick quartile bar and a white median dot.
func addInnerBox(p *plot.Plot, x float64, values []float64) error {
	f, err := stats.IQRFences(values, 1.5)
	if err != nil {
		return err
	}
	lo, hi := f.Q3, f.Q1
	for _, v := range values {
		if v >= f.Lower && v < lo {
			lo = v
		}
		if v <= f.Upper && v > hi {
			hi = v
		}
	}

	whisker, err := plotter.NewLine(plotter.XYs{{X: x, Y: lo}, {X: x, Y: hi}})
	if err != nil {
		return err
	}
	whisker.LineStyle.Color = color.Gray{Y: 0x40}
	whisker.LineStyle.Width = vg.Points(1)

	box, err := plotter.NewLine(plotter.XYs{{X: x, Y: f.Q1}, {X: x, Y: f.Q3}})
	if err != nil {
		return err
	}
	box.LineStyle.Color = color.Gray{Y: 0x40}
	box.LineStyle.Width = vg.Points(5)

	median, err := plotter.NewScatter(plotter.XYs{{X: x, Y: stats.Median(values)}})
	if err != nil {
		return err
	}
	median.GlyphStyle.Color = color.White
	median.GlyphStyle.Shape = draw.CircleGlyph{}
	median.GlyphStyle.Radius = vg.Points(2.5)

	p.Add(whisker, box, median)
	return nil
}
