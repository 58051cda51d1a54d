package commands

// Steps shared by the subcommands: load, clean, export and plot

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/soamparkash/SCT-DS-02/pkg/charts"
	"github.com/soamparkash/SCT-DS-02/pkg/data"
	"github.com/soamparkash/SCT-DS-02/pkg/dataprep"
	"github.com/soamparkash/SCT-DS-02/pkg/report"
)

func (a *app) load() (dataframe.DataFrame, error) {
	source := a.cfg.Data.Input
	if source == "" {
		source = "embedded sample"
	}
	df, err := data.Load(a.cfg.Data.Input, data.TitanicSchema)
	if err != nil {
		return df, err
	}
	rows, cols := df.Dims()
	a.log.Info("Table loaded", zap.String("source", source), zap.Int("rows", rows), zap.Int("columns", cols))
	return df, nil
}

func (a *app) plan(df dataframe.DataFrame) dataprep.Plan {
	if a.cfg.Clean.Auto {
		return dataprep.AutoPlan(df)
	}
	return dataprep.TitanicPlan()
}

func (a *app) clean(df dataframe.DataFrame) (dataframe.DataFrame, []dataprep.Fill, error) {
	cleaned, fills, err := dataprep.Clean(df, a.plan(df))
	if err != nil {
		return df, nil, err
	}
	for _, f := range fills {
		a.log.Debug("Column imputed",
			zap.String("column", f.Column),
			zap.String("strategy", string(f.Strategy)),
			zap.String("value", f.Value),
			zap.Int("filled", f.Filled))
	}
	if left := dataprep.TotalMissing(cleaned); left > 0 {
		a.log.Warn("Missing values remain after cleaning", zap.Int("count", left))
	} else {
		a.log.Info("Table cleaned", zap.Int("steps", len(fills)))
	}
	return cleaned, fills, nil
}

func (a *app) export(df dataframe.DataFrame) error {
	path := a.cfg.Export.Path
	if path == "" {
		return nil
	}
	if err := data.Export(df, path); err != nil {
		return err
	}
	a.log.Info("Cleaned table exported", zap.String("path", path))
	return nil
}

func (a *app) plot(df dataframe.DataFrame) error {
	c := a.cfg.Charts
	opts := charts.Options{
		Dir:    c.OutputDir,
		Format: c.Format,
		Bins:   c.HistBins,
		Width:  vg.Length(c.WidthIn) * vg.Inch,
		Height: vg.Length(c.HeightIn) * vg.Inch,
		Schema: data.TitanicSchema,
	}

	start := time.Now()
	paths, err := charts.RenderAll(df, opts)
	for _, p := range paths {
		a.log.Debug("Chart written", zap.String("path", p))
	}
	if err != nil {
		return err
	}
	a.log.Info("Charts written",
		zap.Int("count", len(paths)),
		zap.String("dir", c.OutputDir),
		zap.Duration("took", time.Since(start)))

	if !c.Overview {
		return nil
	}
	if c.Format != "png" {
		// only the pie would make it onto the sheet
		a.log.Info("Overview skipped, it needs png charts", zap.String("format", c.Format))
		return nil
	}
	out := filepath.Join(c.OutputDir, charts.OverviewFile)
	n, err := charts.Overview(paths, out)
	if err != nil {
		return err
	}
	a.log.Info("Overview written", zap.String("path", out), zap.Int("charts", n))
	return nil
}

// runAll prints every report section, cleans the table, exports it when
// asked and writes the charts.
func (a *app) runAll(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	df, err := a.load()
	if err != nil {
		return err
	}
	if err := report.Summary(out, df, a.cfg.Report.HeadRows); err != nil {
		return fmt.Errorf("print summary: %w", err)
	}
	cleaned, fills, err := a.clean(df)
	if err != nil {
		return err
	}
	if err := report.Cleaning(out, df, cleaned, fills); err != nil {
		return fmt.Errorf("print cleaning report: %w", err)
	}
	if err := a.export(cleaned); err != nil {
		return err
	}
	return a.plot(cleaned)
}
