package charts

import (
	"image/color"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/soamparkash/SCT-DS-02/pkg/dataprep"
	"github.com/soamparkash/SCT-DS-02/pkg/stats"
)

// glyphs mark the sex of each passenger, indexed by label code.
var glyphs = []draw.GlyphDrawer{
	draw.CircleGlyph{},
	draw.CrossGlyph{},
	draw.SquareGlyph{},
	draw.TriangleGlyph{},
}

// PlotAgeVsFare draws age against fare, coloured by class with one marker
// shape per sex. The chart is 10x6 inches regardless of Options size.
func PlotAgeVsFare(df dataframe.DataFrame, opts Options) (string, error) {
	cols := []string{"age", "fare", "class", "sex"}
	for _, c := range cols {
		if err := df.Col(c).Err; err != nil {
			return "", err
		}
	}
	age, fare, class, sex := df.Col("age"), df.Col("fare"), df.Col("class"), df.Col("sex")

	type point struct {
		xy         plotter.XY
		class, sex string
	}
	var points []point
	for i := 0; i < df.Nrow(); i++ {
		if age.Elem(i).IsNA() || fare.Elem(i).IsNA() || class.Elem(i).IsNA() || sex.Elem(i).IsNA() {
			continue
		}
		points = append(points, point{
			xy:    plotter.XY{X: age.Elem(i).Float(), Y: fare.Elem(i).Float()},
			class: class.Elem(i).String(),
			sex:   sex.Elem(i).String(),
		})
	}
	if len(points) == 0 {
		return "", stats.ErrNoValues
	}

	classes := make([]string, len(points))
	sexes := make([]string, len(points))
	for i, pt := range points {
		classes[i], sexes[i] = pt.class, pt.sex
	}
	classLevels := stats.Levels(classes, opts.Schema.Order("class"))
	sexCodes, sexLevels := dataprep.LabelEncode(sexes)

	p := plot.New()
	p.Title.Text = "Age vs Fare"
	p.X.Label.Text = "Age"
	p.Y.Label.Text = "Fare"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for ci, cls := range classLevels {
		colour := pick(deep, ci)
		// one scatter per class and sex so each gets its own marker
		byShape := make(map[int]plotter.XYs)
		for i, pt := range points {
			if pt.class == cls {
				byShape[sexCodes[i]] = append(byShape[sexCodes[i]], pt.xy)
			}
		}
		for code := 0; code < len(sexLevels); code++ {
			xys, ok := byShape[code]
			if !ok {
				continue
			}
			s, err := plotter.NewScatter(xys)
			if err != nil {
				return "", err
			}
			s.GlyphStyle = glyph(colour, code)
			p.Add(s)
		}
		thumb, err := plotter.NewScatter(plotter.XYs{{}})
		if err != nil {
			return "", err
		}
		thumb.GlyphStyle = glyph(colour, 0)
		p.Legend.Add(cls, thumb)
	}

	names := make([]string, len(sexLevels))
	for name, code := range sexLevels {
		names[code] = name
	}
	for code, name := range names {
		thumb, err := plotter.NewScatter(plotter.XYs{{}})
		if err != nil {
			return "", err
		}
		thumb.GlyphStyle = glyph(color.Gray{Y: 0x60}, code)
		p.Legend.Add(name, thumb)
	}

	return save(p, AgeVsFare, opts, 10*vg.Inch, 6*vg.Inch)
}

func glyph(c color.Color, code int) draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  c,
		Radius: vg.Points(3),
		Shape:  glyphs[code%len(glyphs)],
	}
}
