// Package config loads the settings of the analysis tool.
//
// Values are layered, highest first: command line flags, EDA_* environment
// variables (a .env file in the working directory is loaded first), the
// eda.yaml file and the defaults below.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. EDA_CHARTS_FORMAT.
const EnvPrefix = "EDA"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds every setting.
type Config struct {
	Data   DataConfig   `mapstructure:"data"`
	Report ReportConfig `mapstructure:"report"`
	Clean  CleanConfig  `mapstructure:"clean"`
	Charts ChartsConfig `mapstructure:"charts"`
	Export ExportConfig `mapstructure:"export"`
	Log    LogConfig    `mapstructure:"log"`
}

type DataConfig struct {
	// Input is a CSV path. Empty selects the embedded sample.
	Input string `mapstructure:"input"`
}

type ReportConfig struct {
	HeadRows int `mapstructure:"head_rows"`
}

type CleanConfig struct {
	// Auto derives the imputation plan from the data instead of using the
	// fixed passenger table plan.
	Auto bool `mapstructure:"auto"`
}

type ChartsConfig struct {
	OutputDir string  `mapstructure:"output_dir"`
	Format    string  `mapstructure:"format"`
	HistBins  int     `mapstructure:"hist_bins"`
	WidthIn   float64 `mapstructure:"width_in"`
	HeightIn  float64 `mapstructure:"height_in"`
	Overview  bool    `mapstructure:"overview"`
}

type ExportConfig struct {
	// Path of the cleaned table, .csv or .xlsx. Empty disables export.
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

var chartFormats = []string{"png", "svg", "pdf"}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data.input", "")
	v.SetDefault("report.head_rows", 5)
	v.SetDefault("clean.auto", false)
	v.SetDefault("charts.output_dir", "charts")
	v.SetDefault("charts.format", "png")
	v.SetDefault("charts.hist_bins", 20)
	v.SetDefault("charts.width_in", 6.0)
	v.SetDefault("charts.height_in", 4.5)
	v.SetDefault("charts.overview", true)
	v.SetDefault("export.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// RegisterFlags adds a flag per key to fs. Flag names use dashes and map to
// keys with BindFlags.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a YAML config file (default ./eda.yaml)")
	fs.StringP("input", "i", "", "Passenger table CSV; empty uses the embedded sample (env: EDA_DATA_INPUT)")
	fs.Int("head-rows", 5, "Rows shown in the head section (env: EDA_REPORT_HEAD_ROWS)")
	fs.Bool("auto-clean", false, "Derive the imputation plan from the data (env: EDA_CLEAN_AUTO)")
	fs.StringP("out", "o", "charts", "Chart output directory (env: EDA_CHARTS_OUTPUT_DIR)")
	fs.String("format", "png", "Chart format: png, svg or pdf (env: EDA_CHARTS_FORMAT)")
	fs.Int("bins", 20, "Age histogram bins (env: EDA_CHARTS_HIST_BINS)")
	fs.Float64("width", 6, "Chart width in inches (env: EDA_CHARTS_WIDTH_IN)")
	fs.Float64("height", 4.5, "Chart height in inches (env: EDA_CHARTS_HEIGHT_IN)")
	fs.Bool("overview", true, "Compose png charts into overview.png (env: EDA_CHARTS_OVERVIEW)")
	fs.String("export", "", "Write the cleaned table to a .csv or .xlsx file (env: EDA_EXPORT_PATH)")
	fs.String("log-level", "info", "Console log level: debug, info, warn, error (env: EDA_LOG_LEVEL)")
	fs.String("log-file", "", "Also log to this file at debug level (env: EDA_LOG_FILE)")
}

var flagKeys = map[string]string{
	"input":      "data.input",
	"head-rows":  "report.head_rows",
	"auto-clean": "clean.auto",
	"out":        "charts.output_dir",
	"format":     "charts.format",
	"bins":       "charts.hist_bins",
	"width":      "charts.width_in",
	"height":     "charts.height_in",
	"overview":   "charts.overview",
	"export":     "export.path",
	"log-level":  "log.level",
	"log-file":   "log.file",
}

// BindFlags binds the flags registered by RegisterFlags to their keys.
// Flags that are absent from fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the configuration. fs may be nil. A missing config file is not
// an error unless its path was given explicitly.
func Load(fs *pflag.FlagSet) (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load(".env")

	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := ""
	if fs != nil {
		if f := fs.Lookup("config"); f != nil {
			explicit = f.Value.String()
		}
		if err := BindFlags(v, fs); err != nil {
			return nil, err
		}
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName("eda")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that cannot produce a report or charts.
func (c *Config) Validate() error {
	var problems []string
	if c.Report.HeadRows <= 0 {
		problems = append(problems, fmt.Sprintf("report.head_rows must be positive, got %d", c.Report.HeadRows))
	}
	if c.Charts.HistBins <= 0 {
		problems = append(problems, fmt.Sprintf("charts.hist_bins must be positive, got %d", c.Charts.HistBins))
	}
	if c.Charts.WidthIn <= 0 || c.Charts.HeightIn <= 0 {
		problems = append(problems, fmt.Sprintf("chart size must be positive, got %gx%g", c.Charts.WidthIn, c.Charts.HeightIn))
	}
	if c.Charts.OutputDir == "" {
		problems = append(problems, "charts.output_dir is empty")
	}
	c.Charts.Format = strings.ToLower(c.Charts.Format)
	if !contains(chartFormats, c.Charts.Format) {
		problems = append(problems, fmt.Sprintf("charts.format %q is not one of %s", c.Charts.Format, strings.Join(chartFormats, ", ")))
	}
	if p := c.Export.Path; p != "" {
		lower := strings.ToLower(p)
		if !strings.HasSuffix(lower, ".csv") && !strings.HasSuffix(lower, ".xlsx") {
			problems = append(problems, fmt.Sprintf("export.path %q must end in .csv or .xlsx", p))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
