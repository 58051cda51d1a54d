package charts

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/plot/vg"

	"github.com/soamparkash/SCT-DS-02/pkg/stats"
)

// pieDPI converts the configured size in inches to pixels.
const pieDPI = 96

var survivalLabels = map[string]string{
	"0": "Not Survived",
	"1": "Survived",
}

var survivalColours = map[string]drawing.Color{
	"0": drawing.ColorRed,
	"1": drawing.ColorFromHex("008000"),
}

// survivalValues turns survival counts into pie slices. Label and colour
// follow the key, not the position of the count.
func survivalValues(counts []stats.Count) ([]chart.Value, error) {
	total := 0
	for _, c := range counts {
		total += c.N
	}
	if total == 0 {
		return nil, stats.ErrNoValues
	}

	values := make([]chart.Value, 0, len(counts))
	for _, c := range counts {
		label, ok := survivalLabels[c.Key]
		if !ok {
			label = c.Key
		}
		colour, ok := survivalColours[c.Key]
		if !ok {
			colour = drawing.ColorBlue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", label, 100*float64(c.N)/float64(total)),
			Value: float64(c.N),
			Style: chart.Style{FillColor: colour, StrokeColor: drawing.ColorWhite},
		})
	}
	return values, nil
}

// PlotSurvivalPie draws the share of passengers who did and did not survive.
// go-chart writes png and svg; pdf output falls back to png for this chart.
func PlotSurvivalPie(df dataframe.DataFrame, opts Options) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	keys, err := column(df, "survived")
	if err != nil {
		return "", err
	}
	values, err := survivalValues(stats.ValueCounts(keys, opts.Schema.Order("survived")))
	if err != nil {
		return "", err
	}

	pie := chart.PieChart{
		Title:  "Survival Distribution",
		Width:  int(float64(opts.Width/vg.Inch) * pieDPI),
		Height: int(float64(opts.Height/vg.Inch) * pieDPI),
		Values: values,
	}

	format, provider := "png", chart.PNG
	if opts.Format == "svg" {
		format, provider = "svg", chart.SVG
	}
	var buf bytes.Buffer
	if err := pie.Render(provider, &buf); err != nil {
		return "", fmt.Errorf("render pie: %w", err)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(opts.Dir, SurvivalPie+"."+format)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
