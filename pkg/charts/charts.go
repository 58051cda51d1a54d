// Package charts renders the passenger table charts to image files.
//
// Every chart is a function that takes the cleaned table and Options and
// returns the path it wrote. RenderAll draws all of them in a fixed order.
package charts

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/vg"

	"github.com/soamparkash/SCT-DS-02/pkg/data"
	"github.com/soamparkash/SCT-DS-02/pkg/dataprep"
)

// Chart names, also used as file names.
const (
	ClassCount               = "class_count"
	SurvivalPie              = "survival_pie"
	AgeDistribution          = "age_distribution"
	SurvivalByGender         = "survival_by_gender"
	SurvivalByClass          = "survival_by_class"
	AgeBySurvival            = "age_by_survival"
	CorrelationHeatmap       = "correlation_heatmap"
	SurvivalByClassAndGender = "survival_by_class_and_gender"
	AgeVsFare                = "age_vs_fare"
)

// ErrUnsupportedFormat is returned for image formats the charts cannot write.
var ErrUnsupportedFormat = errors.New("charts: unsupported format")

// Formats lists the image formats charts can be written in.
var Formats = []string{"png", "svg", "pdf"}

// Options controls where and how charts are written.
type Options struct {
	Dir    string
	Format string
	Bins   int
	Width  vg.Length
	Height vg.Length
	// Schema supplies the category order of class-like columns.
	Schema data.Schema
}

// DefaultOptions returns png output in ./charts at 6x4.5 inches.
func DefaultOptions() Options {
	return Options{
		Dir:    "charts",
		Format: "png",
		Bins:   20,
		Width:  6 * vg.Inch,
		Height: 4.5 * vg.Inch,
		Schema: data.TitanicSchema,
	}
}

func (o Options) validate() error {
	for _, f := range Formats {
		if o.Format == f {
			if o.Width <= 0 || o.Height <= 0 {
				return fmt.Errorf("charts: invalid size %vx%v", o.Width, o.Height)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, o.Format)
}

func (o Options) path(name string) string {
	return filepath.Join(o.Dir, name+"."+o.Format)
}

// renderer draws one chart and returns the written path.
type renderer func(df dataframe.DataFrame, opts Options) (string, error)

// RenderAll writes the nine charts in order and returns their paths.
// It stops at the first failure.
func RenderAll(df dataframe.DataFrame, opts Options) ([]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("charts: create output dir: %w", err)
	}

	steps := []struct {
		name   string
		render renderer
	}{
		{ClassCount, PlotClassCount},
		{SurvivalPie, PlotSurvivalPie},
		{AgeDistribution, PlotAgeDistribution},
		{SurvivalByGender, PlotSurvivalByGender},
		{SurvivalByClass, PlotSurvivalByClass},
		{AgeBySurvival, PlotAgeBySurvival},
		{CorrelationHeatmap, PlotCorrelationHeatmap},
		{SurvivalByClassAndGender, PlotSurvivalByClassAndGender},
		{AgeVsFare, PlotAgeVsFare},
	}
	paths := make([]string, 0, len(steps))
	for _, s := range steps {
		path, err := s.render(df, opts)
		if err != nil {
			return paths, fmt.Errorf("charts: %s: %w", s.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// save writes p under name using the configured format and the given size.
func save(p *plot.Plot, name string, opts Options, w, h vg.Length) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := opts.path(name)
	if err := p.Save(w, h, path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}

// column returns the records of a column, failing on unknown names.
func column(df dataframe.DataFrame, name string) ([]string, error) {
	col := df.Col(name)
	if col.Err != nil {
		return nil, col.Err
	}
	return col.Records(), nil
}

// pairs returns the key and numeric value of every row where the value is present.
func pairs(df dataframe.DataFrame, key, value string) ([]string, []float64, error) {
	kc, vc := df.Col(key), df.Col(value)
	if kc.Err != nil {
		return nil, nil, kc.Err
	}
	if vc.Err != nil {
		return nil, nil, vc.Err
	}
	keys := make([]string, 0, kc.Len())
	values := make([]float64, 0, vc.Len())
	for i := 0; i < vc.Len(); i++ {
		k, v := kc.Elem(i), vc.Elem(i)
		if k.IsNA() || v.IsNA() {
			continue
		}
		keys = append(keys, k.String())
		values = append(values, v.Float())
	}
	return keys, values, nil
}

func floats(df dataframe.DataFrame, name string) ([]float64, error) {
	col := df.Col(name)
	if col.Err != nil {
		return nil, col.Err
	}
	return dataprep.NonMissingFloats(col), nil
}

// Colours of the seaborn palettes the charts follow.
var (
	deep = []color.Color{
		rgb(0x4C, 0x72, 0xB0), rgb(0xDD, 0x84, 0x52), rgb(0x55, 0xA8, 0x68),
		rgb(0xC4, 0x4E, 0x52), rgb(0x81, 0x72, 0xB3), rgb(0x93, 0x78, 0x60),
	}
	muted = []color.Color{
		rgb(0x48, 0x78, 0xD0), rgb(0xEE, 0x85, 0x4A), rgb(0x6A, 0xCC, 0x64),
		rgb(0xD6, 0x5F, 0x5F), rgb(0x95, 0x6C, 0xB4), rgb(0x8C, 0x61, 0x3C),
	}
	skyBlue = rgb(0x87, 0xCE, 0xEB)
)

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// brewerColors returns n colours of a ColorBrewer qualitative palette.
// ColorBrewer palettes start at three colours, so smaller requests are cut
// from the three-colour version.
func brewerColors(name string, n int) ([]color.Color, error) {
	size := n
	if size < 3 {
		size = 3
	}
	pal, err := brewer.GetPalette(brewer.TypeAny, name, size)
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", name, err)
	}
	return pal.Colors()[:n], nil
}

// pick returns colours[i] cycling through the slice.
func pick(colours []color.Color, i int) color.Color {
	return colours[i%len(colours)]
}
