package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Data.Input)
	assert.Equal(t, 5, cfg.Report.HeadRows)
	assert.False(t, cfg.Clean.Auto)
	assert.Equal(t, "charts", cfg.Charts.OutputDir)
	assert.Equal(t, "png", cfg.Charts.Format)
	assert.Equal(t, 20, cfg.Charts.HistBins)
	assert.Equal(t, 6.0, cfg.Charts.WidthIn)
	assert.Equal(t, 4.5, cfg.Charts.HeightIn)
	assert.True(t, cfg.Charts.Overview)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eda.yaml")
	yaml := "charts:\n  format: svg\n  hist_bins: 30\n  output_dir: from-file\nreport:\n  head_rows: 8\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("EDA_CHARTS_HIST_BINS", "40")
	t.Setenv("EDA_CHARTS_OUTPUT_DIR", "from-env")

	cfg, err := Load(flags(t, "--config", path, "--out", "from-flag"))
	require.NoError(t, err)

	assert.Equal(t, "svg", cfg.Charts.Format, "file beats default")
	assert.Equal(t, 8, cfg.Report.HeadRows, "file beats default")
	assert.Equal(t, 40, cfg.Charts.HistBins, "env beats file")
	assert.Equal(t, "from-flag", cfg.Charts.OutputDir, "flag beats env")
}

func TestEnvBool(t *testing.T) {
	t.Setenv("EDA_CHARTS_OVERVIEW", "false")
	t.Setenv("EDA_CLEAN_AUTO", "true")
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.False(t, cfg.Charts.Overview)
	assert.True(t, cfg.Clean.Auto)
}

func TestExplicitConfigMustExist(t *testing.T) {
	_, err := Load(flags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Report: ReportConfig{HeadRows: 5},
			Charts: ChartsConfig{OutputDir: "charts", Format: "PNG", HistBins: 20, WidthIn: 6, HeightIn: 4.5},
		}
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "png", cfg.Charts.Format)

	cases := map[string]func(*Config){
		"bins":   func(c *Config) { c.Charts.HistBins = 0 },
		"rows":   func(c *Config) { c.Report.HeadRows = -1 },
		"size":   func(c *Config) { c.Charts.WidthIn = 0 },
		"format": func(c *Config) { c.Charts.Format = "gif" },
		"dir":    func(c *Config) { c.Charts.OutputDir = "" },
		"export": func(c *Config) { c.Export.Path = "clean.json" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	cfg = valid()
	cfg.Export.Path = "out/clean.XLSX"
	assert.NoError(t, cfg.Validate())
}
