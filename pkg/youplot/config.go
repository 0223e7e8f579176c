package youplot

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/red-data-tools/youplot-go/pkg/youplot/backends"
	"github.com/red-data-tools/youplot-go/pkg/youplot/params"
)

// ConfigEnv names the environment variable pointing at a config file.
const ConfigEnv = "MYYOUPLOTRC"

// Config holds the settings of a config file. Unset keys leave the
// options and parameters untouched.
type Config struct {
	Delimiter   *string `yaml:"delimiter"`
	Headers     *bool   `yaml:"headers"`
	Transpose   *bool   `yaml:"transpose"`
	Format      *string `yaml:"fmt"`
	Pass        *string `yaml:"pass"`
	Output      *string `yaml:"output"`
	Progressive *bool   `yaml:"progressive"`
	Encoding    *string `yaml:"encoding"`
	Reverse     *bool   `yaml:"reverse"`
	ColorNames  *bool   `yaml:"color_names"`
	Debug       *bool   `yaml:"debug"`
	ColorOutput *string `yaml:"color_output"`
	Sheet       *string `yaml:"sheet"`
	Range       *string `yaml:"range"`

	Title   *string   `yaml:"title"`
	XLabel  *string   `yaml:"xlabel"`
	YLabel  *string   `yaml:"ylabel"`
	Width   *int      `yaml:"width"`
	Height  *int      `yaml:"height"`
	Border  *string   `yaml:"border"`
	Margin  *int      `yaml:"margin"`
	Padding *int      `yaml:"padding"`
	Color   *string   `yaml:"color"`
	Labels  *bool     `yaml:"labels"`
	Symbol  *string   `yaml:"symbol"`
	XScale  *string   `yaml:"xscale"`
	NBins   *int      `yaml:"nbins"`
	Closed  *string   `yaml:"closed"`
	Canvas  *string   `yaml:"canvas"`
	XLim    []float64 `yaml:"xlim"`
	YLim    []float64 `yaml:"ylim"`
	Grid    *bool     `yaml:"grid"`
	Name    *string   `yaml:"name"`
}

// ConfigPaths returns the places a config file is looked for, in order.
// An explicit path comes first.
func ConfigPaths(explicit string) []string {
	var paths []string
	if explicit != "" {
		paths = append(paths, explicit)
	}
	if env := os.Getenv(ConfigEnv); env != "" {
		paths = append(paths, env)
	}
	paths = append(paths, ".youplot.yml", ".youplotrc")
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".youplotrc"),
			filepath.Join(home, ".youplot.yml"))
	}
	return paths
}

// FindConfig returns the first config file that exists. An explicit path
// must exist. It returns "" when there is none.
func FindConfig(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %w", err)
		}
		return explicit, nil
	}
	for _, path := range ConfigPaths("") {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", nil
}

// LoadConfig reads a config file. Unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &c, nil
}

// Apply copies the settings of c into opts and p.
func (c *Config) Apply(opts *Options, p *params.Parameters) error {
	setString(&opts.Delimiter, c.Delimiter)
	setBool(&opts.Headers, c.Headers)
	setBool(&opts.Transpose, c.Transpose)
	if c.Format != nil {
		opts.Format = backends.Format(*c.Format)
	}
	setString(&opts.Pass, c.Pass)
	setString(&opts.Output, c.Output)
	setBool(&opts.Progressive, c.Progressive)
	setString(&opts.Encoding, c.Encoding)
	setBool(&opts.Reverse, c.Reverse)
	setBool(&opts.ColorNames, c.ColorNames)
	setBool(&opts.Debug, c.Debug)
	if c.ColorOutput != nil {
		mode, err := ParseColorMode(*c.ColorOutput)
		if err != nil {
			return err
		}
		opts.Color = mode
	}
	setString(&opts.Sheet, c.Sheet)
	setString(&opts.Range, c.Range)

	xlim, err := limit("xlim", c.XLim)
	if err != nil {
		return err
	}
	ylim, err := limit("ylim", c.YLim)
	if err != nil {
		return err
	}
	p.Merge(&params.Parameters{
		Title:   c.Title,
		XLabel:  c.XLabel,
		YLabel:  c.YLabel,
		Width:   c.Width,
		Height:  c.Height,
		Border:  c.Border,
		Margin:  c.Margin,
		Padding: c.Padding,
		Color:   c.Color,
		Labels:  c.Labels,
		Symbol:  c.Symbol,
		XScale:  c.XScale,
		NBins:   c.NBins,
		Closed:  c.Closed,
		Canvas:  c.Canvas,
		XLim:    xlim,
		YLim:    ylim,
		Grid:    c.Grid,
		Name:    c.Name,
	})
	return nil
}

func limit(key string, v []float64) (*[2]float64, error) {
	if v == nil {
		return nil, nil
	}
	if len(v) != 2 {
		return nil, fmt.Errorf("%s must have two values, got %d", key, len(v))
	}
	return &[2]float64{v[0], v[1]}, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
