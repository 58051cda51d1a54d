package charts

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/soamparkash/SCT-DS-02/pkg/dataprep"
	"github.com/soamparkash/SCT-DS-02/pkg/stats"
)

// corrGrid lays a correlation matrix out as a heat map grid with the first
// variable in the top row.
type corrGrid struct {
	m stats.Matrix
}

func (g corrGrid) Dims() (c, r int)   { return g.m.Len(), g.m.Len() }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }
func (g corrGrid) Z(c, r int) float64 { return g.m.At(g.m.Len()-1-r, c) }

// corrAnnotations places one label per cell of m, on the same grid corrGrid
// draws, so the first variable is in the top row.
func corrAnnotations(m stats.Matrix) (plotter.XYs, []string, []float64) {
	n := m.Len()
	pts := make(plotter.XYs, 0, n*n)
	labels := make([]string, 0, n*n)
	values := make([]float64, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := m.At(r, c)
			pts = append(pts, plotter.XY{X: float64(c), Y: float64(n - 1 - r)})
			labels = append(labels, fmt.Sprintf("%.2f", v))
			values = append(values, v)
		}
	}
	return pts, labels, values
}

// topDown orders names for NominalY so the first name labels the top row.
func topDown(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[len(names)-1-i] = name
	}
	return out
}

// PlotCorrelationHeatmap draws the Pearson correlation of the numeric and
// boolean columns, annotated with two decimals.
func PlotCorrelationHeatmap(df dataframe.DataFrame, opts Options) (string, error) {
	names, x, err := dataprep.NumericMatrix(df)
	if err != nil {
		return "", err
	}
	m, err := stats.CorrelationMatrix(names, x)
	if err != nil {
		return "", err
	}

	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(-1)
	cmap.SetMax(1)
	hm := plotter.NewHeatMap(corrGrid{m: m}, cmap.Palette(255))
	hm.Min, hm.Max = -1, 1
	hm.NaN = color.Gray{Y: 0xE0}

	p := plot.New()
	p.Title.Text = "Correlation Heatmap"
	p.Add(hm)

	pts, labels, values := corrAnnotations(m)
	styles := make([]text.Style, len(values))
	for i, v := range values {
		ts := p.X.Tick.Label
		ts.XAlign = text.XCenter
		ts.YAlign = text.YCenter
		ts.Color = color.Black
		if math.Abs(v) > 0.6 {
			ts.Color = color.White
		}
		styles[i] = ts
	}
	annotations, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
	if err != nil {
		return "", err
	}
	annotations.TextStyle = styles
	p.Add(annotations)

	p.NominalX(names...)
	p.NominalY(topDown(names)...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	size := opts.Width
	if opts.Height > size {
		size = opts.Height
	}
	return save(p, CorrelationHeatmap, opts, size+vg.Inch, size)
}
