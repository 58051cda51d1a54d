package charts

import (
	"fmt"
	"image/color"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/soamparkash/SCT-DS-02/pkg/stats"
)

// groupSpan is the share of one x unit covered by the bars of a level.
const groupSpan = 0.8

// errorBars pairs bar tops with their confidence interval.
type errorBars struct {
	plotter.XYs
	plotter.YErrors
}

// PlotClassCount draws the number of passengers per class.
func PlotClassCount(df dataframe.DataFrame, opts Options) (string, error) {
	keys, err := column(df, "pclass")
	if err != nil {
		return "", err
	}
	counts := stats.ValueCounts(keys, opts.Schema.Order("pclass"))

	p := plot.New()
	p.Title.Text = "Passenger Class Count"
	p.X.Label.Text = "Class"
	p.Y.Label.Text = "Count"

	width := barWidth(opts.Width, len(counts), 1)
	names := make([]string, len(counts))
	for i, c := range counts {
		bar, err := plotter.NewBarChart(plotter.Values{float64(c.N)}, width)
		if err != nil {
			return "", err
		}
		bar.XMin = float64(i)
		bar.Color = pick(deep, i)
		bar.LineStyle.Width = 0
		p.Add(bar)
		names[i] = c.Key
	}
	p.NominalX(names...)
	frame(p, len(names))
	return save(p, ClassCount, opts, opts.Width, opts.Height)
}

// PlotSurvivalByGender draws the survival rate per sex with 95% intervals.
func PlotSurvivalByGender(df dataframe.DataFrame, opts Options) (string, error) {
	return survivalRate(df, opts, "sex", "Survival Rate by Gender", "Gender", "Pastel1", SurvivalByGender)
}

// PlotSurvivalByClass draws the survival rate per class with 95% intervals.
func PlotSurvivalByClass(df dataframe.DataFrame, opts Options) (string, error) {
	return survivalRate(df, opts, "pclass", "Survival Rate by Class", "Class", "Set2", SurvivalByClass)
}

func survivalRate(df dataframe.DataFrame, opts Options, by, title, xlabel, paletteName, name string) (string, error) {
	keys, survived, err := pairs(df, by, "survived")
	if err != nil {
		return "", err
	}
	groups, err := stats.GroupMean(keys, survived, opts.Schema.Order(by))
	if err != nil {
		return "", err
	}
	colours, err := brewerColors(paletteName, len(groups))
	if err != nil {
		return "", err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Survival Rate"

	names := make([]string, len(groups))
	positions := make(map[string]float64, len(groups))
	for i, g := range groups {
		names[i] = g.Key
		positions[g.Key] = float64(i)
	}
	width := barWidth(opts.Width, len(groups), 1)
	if _, err := addMeanBars(p, groups, positions, width, func(i int) color.Color { return colours[i] }); err != nil {
		return "", err
	}
	p.NominalX(names...)
	frame(p, len(names))
	return save(p, name, opts, opts.Width, opts.Height)
}

// PlotSurvivalByClassAndGender draws the survival rate per class, one bar
// per sex within each class.
func PlotSurvivalByClassAndGender(df dataframe.DataFrame, opts Options) (string, error) {
	classes, sexes, survived, err := triples(df, "pclass", "sex", "survived")
	if err != nil {
		return "", err
	}

	classLevels := stats.Levels(classes, opts.Schema.Order("pclass"))
	sexLevels := stats.Levels(sexes, opts.Schema.Order("sex"))
	colours, err := brewerColors("Set1", len(sexLevels))
	if err != nil {
		return "", err
	}

	p := plot.New()
	p.Title.Text = "Survival Rate by Class and Gender"
	p.X.Label.Text = "Class"
	p.Y.Label.Text = "Survival Rate"
	p.Legend.Top = true

	means, err := groupedMeans(classes, sexes, survived, classLevels, sexLevels)
	if err != nil {
		return "", err
	}
	k := len(sexLevels)
	width := barWidth(opts.Width, len(classLevels), k)
	for j, sex := range sexLevels {
		colour := colours[j]
		bars, err := addMeanBars(p, means[j], groupPositions(classLevels, j, k), width, func(int) color.Color { return colour })
		if err != nil {
			return "", err
		}
		if len(bars) > 0 {
			p.Legend.Add(sex, bars[0])
		}
	}
	p.NominalX(classLevels...)
	frame(p, len(classLevels))
	return save(p, SurvivalByClassAndGender, opts, opts.Width, opts.Height)
}

// triples returns two keys and a numeric value for every row where all three
// are present.
func triples(df dataframe.DataFrame, a, b, value string) ([]string, []string, []float64, error) {
	ac, bc, vc := df.Col(a), df.Col(b), df.Col(value)
	for _, c := range []error{ac.Err, bc.Err, vc.Err} {
		if c != nil {
			return nil, nil, nil, c
		}
	}
	var as, bs []string
	var vs []float64
	for i := 0; i < vc.Len(); i++ {
		ea, eb, ev := ac.Elem(i), bc.Elem(i), vc.Elem(i)
		if ea.IsNA() || eb.IsNA() || ev.IsNA() {
			continue
		}
		as = append(as, ea.String())
		bs = append(bs, eb.String())
		vs = append(vs, ev.Float())
	}
	return as, bs, vs, nil
}

// groupedMeans returns, for every inner level, the mean of value per outer
// level. Outer levels with no rows for an inner level are left out.
func groupedMeans(outer, inner []string, values []float64, outerLevels, innerLevels []string) ([][]stats.Group, error) {
	out := make([][]stats.Group, len(innerLevels))
	for j, level := range innerLevels {
		var keys []string
		var vs []float64
		for i := range outer {
			if inner[i] == level {
				keys = append(keys, outer[i])
				vs = append(vs, values[i])
			}
		}
		groups, err := stats.GroupMean(keys, vs, outerLevels)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", level, err)
		}
		out[j] = groups
	}
	return out, nil
}

// groupPositions returns the x position of bar j of k within every level.
// The k bars of a level are centred on the level's slot.
func groupPositions(levels []string, j, k int) map[string]float64 {
	offset := (float64(j) - float64(k-1)/2) * groupSpan / float64(k)
	positions := make(map[string]float64, len(levels))
	for i, level := range levels {
		positions[level] = float64(i) + offset
	}
	return positions
}

// addMeanBars adds one bar per group at positions[key], topped by its
// confidence interval. It returns the bars in group order.
func addMeanBars(p *plot.Plot, groups []stats.Group, positions map[string]float64, width vg.Length, fill func(i int) color.Color) ([]*plotter.BarChart, error) {
	if len(groups) == 0 {
		return nil, nil
	}
	bars := make([]*plotter.BarChart, 0, len(groups))
	eb := errorBars{
		XYs:     make(plotter.XYs, len(groups)),
		YErrors: make(plotter.YErrors, len(groups)),
	}
	for i, g := range groups {
		bar, err := plotter.NewBarChart(plotter.Values{g.Mean}, width)
		if err != nil {
			return nil, err
		}
		x := positions[g.Key]
		bar.XMin = x
		bar.Color = fill(i)
		bar.LineStyle.Width = 0
		p.Add(bar)
		bars = append(bars, bar)
		eb.XYs[i] = plotter.XY{X: x, Y: g.Mean}
		eb.YErrors[i].Low = g.Mean - g.Low
		eb.YErrors[i].High = g.High - g.Mean
	}
	errs, err := plotter.NewYErrorBars(eb)
	if err != nil {
		return nil, err
	}
	errs.LineStyle.Color = color.Gray{Y: 0x40}
	errs.LineStyle.Width = vg.Points(1.5)
	p.Add(errs)
	return bars, nil
}

// barWidth sizes bars so k bars per level fill groupSpan of a level's slot
// on a plot of the given width.
func barWidth(plotWidth vg.Length, levels, k int) vg.Length {
	if levels < 1 {
		levels = 1
	}
	if k < 1 {
		k = 1
	}
	area := plotWidth * 0.85
	return area / vg.Length(levels) * groupSpan / vg.Length(k)
}

// frame fixes the x range to n nominal slots and starts y at zero.
func frame(p *plot.Plot, n int) {
	p.X.Min = -0.5
	p.X.Max = float64(n) - 0.5
	p.Y.Min = 0
}
