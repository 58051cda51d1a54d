package charts

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
)

// OverviewFile is the file name of the contact sheet inside the chart directory.
const OverviewFile = "overview.png"

const (
	overviewCell    = 600
	overviewPadding = 20
	overviewColumns = 3
)

// Overview composes the png charts in paths into one contact sheet written
// to out. Charts in other formats are skipped. It returns the number of
// charts placed.
func Overview(paths []string, out string) (int, error) {
	var pngs []string
	for _, p := range paths {
		if strings.EqualFold(filepath.Ext(p), ".png") {
			pngs = append(pngs, p)
		}
	}
	if len(pngs) == 0 {
		return 0, nil
	}

	rows := (len(pngs) + overviewColumns - 1) / overviewColumns
	cols := overviewColumns
	if len(pngs) < cols {
		cols = len(pngs)
	}
	width := cols*overviewCell + (cols+1)*overviewPadding
	height := rows*overviewCell + (rows+1)*overviewPadding

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for i, path := range pngs {
		img, err := gg.LoadPNG(path)
		if err != nil {
			return 0, fmt.Errorf("charts: load %s: %w", path, err)
		}
		b := img.Bounds()
		scale := math.Min(
			float64(overviewCell)/float64(b.Dx()),
			float64(overviewCell)/float64(b.Dy()),
		)
		col, row := i%overviewColumns, i/overviewColumns
		x := float64(overviewPadding + col*(overviewCell+overviewPadding))
		y := float64(overviewPadding + row*(overviewCell+overviewPadding))
		// centre the scaled chart in its cell
		x += (overviewCell - scale*float64(b.Dx())) / 2
		y += (overviewCell - scale*float64(b.Dy())) / 2

		dc.Push()
		dc.Translate(x, y)
		dc.Scale(scale, scale)
		dc.DrawImage(img, 0, 0)
		dc.Pop()
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return 0, fmt.Errorf("charts: create output dir: %w", err)
	}
	if err := dc.SavePNG(out); err != nil {
		return 0, fmt.Errorf("charts: save overview: %w", err)
	}
	return len(pngs), nil
}
