package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/red-data-tools/youplot-go/pkg/youplot"
	"github.com/red-data-tools/youplot-go/pkg/youplot/backends"
	"github.com/red-data-tools/youplot-go/pkg/youplot/params"
)

// settings holds the values bound to the command-line flags.
type settings struct {
	config string

	delimiter   string
	headers     bool
	transpose   bool
	pass        string
	output      string
	progressive bool
	encoding    string
	colorOutput bool
	monochrome  bool
	debug       bool
	sheet       string
	rng         string
	format      string
	reverse     bool
	names       bool

	title    string
	xlabel   string
	ylabel   string
	width    int
	height   int
	border   string
	margin   int
	padding  int
	color    string
	labels   bool
	noLabels bool
	symbol   string
	xscale   string
	nbins    int
	closed   string
	canvas   string
	xlim     []float64
	ylim     []float64
	grid     bool
	noGrid   bool
}

func (s *settings) addPersistentFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.config, "config", "", "config file (default: $MYYOUPLOTRC, .youplot.yml, ~/.youplotrc)")

	fs.StringVarP(&s.pass, "pass", "O", "", "relay the input to FILE, given as -O=FILE (stdout when FILE is omitted)")
	fs.Lookup("pass").NoOptDefVal = youplot.StreamStdout
	fs.StringVarP(&s.output, "output", "o", "", "write the plot to FILE, given as -o=FILE (stdout when FILE is omitted, default stderr)")
	fs.Lookup("output").NoOptDefVal = youplot.StreamStdout
	fs.StringVarP(&s.delimiter, "delimiter", "d", "\t", "use DELIM instead of TAB for field delimiter")
	fs.BoolVarP(&s.headers, "headers", "H", false, "specify that the input has header row")
	fs.BoolVarP(&s.transpose, "transpose", "T", false, "transpose the axes of the input data")
	fs.BoolVarP(&s.progressive, "progress", "p", false, "progressive mode (experimental)")
	fs.BoolVarP(&s.colorOutput, "color-output", "C", false, "colorize even if writing to a pipe")
	fs.BoolVarP(&s.monochrome, "monochrome", "M", false, "no colouring even if writing to a tty")
	fs.StringVar(&s.encoding, "encoding", "", "specify the input encoding")
	fs.StringVar(&s.sheet, "sheet", "", "worksheet of an Excel input (default: the first)")
	fs.StringVar(&s.rng, "range", "", "cell range of an Excel input, such as A1:C10")
	fs.BoolVar(&s.debug, "debug", false, "print preprocessed data")

	fs.StringVarP(&s.title, "title", "t", "", "print string on the top of plot")
	fs.StringVar(&s.xlabel, "xlabel", "", "print string on the bottom of the plot")
	fs.StringVar(&s.ylabel, "ylabel", "", "print string on the far left of the plot")
	fs.IntVarP(&s.width, "width", "w", 40, "number of characters per row")
	fs.IntVarP(&s.height, "height", "h", 15, "number of rows")
	fs.StringVarP(&s.border, "border", "b", "", "specify the style of the bounding box")
	fs.IntVarP(&s.margin, "margin", "m", 3, "number of spaces to the left of the plot")
	fs.IntVar(&s.padding, "padding", 1, "space of the left and right of the plot")
	fs.StringVarP(&s.color, "color", "c", "", "color of the drawing")
	fs.BoolVar(&s.labels, "labels", true, "show the labels")
	fs.BoolVar(&s.noLabels, "no-labels", false, "hide the labels")
}

func (s *settings) addFormatFlag(fs *pflag.FlagSet, def backends.Format) {
	fs.StringVar(&s.format, "fmt", string(def), "xy, yx, xyy or xyxy")
}

func (s *settings) addCanvasFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.canvas, "canvas", "", "type of canvas")
	fs.BoolVar(&s.grid, "grid", true, "draw grid lines")
	fs.BoolVar(&s.noGrid, "no-grid", false, "hide grid lines")
	s.addLimitFlags(fs)
}

func (s *settings) addLimitFlags(fs *pflag.FlagSet) {
	fs.Float64SliceVar(&s.xlim, "xlim", nil, "plotting range for the x coordinate")
	fs.Float64SliceVar(&s.ylim, "ylim", nil, "plotting range for the y coordinate")
}

// commandFlags adds the flags specific to cmd.
func (s *settings) commandFlags(cmd youplot.Command, fs *pflag.FlagSet) {
	switch cmd {
	case youplot.Barplot:
		fs.StringVar(&s.symbol, "symbol", "", "character to be used to plot the bars")
		fs.StringVar(&s.xscale, "xscale", "", "axis scaling: identity, ln, log2 or log10")
		s.addFormatFlag(fs, backends.FormatXY)
	case youplot.Histogram:
		fs.StringVar(&s.symbol, "symbol", "", "character to be used to plot the bars")
		fs.StringVar(&s.closed, "closed", "", "side of the intervals to be closed: left or right")
		fs.IntVarP(&s.nbins, "nbins", "n", 0, "approximate number of bins")
	case youplot.Lineplot:
		s.addCanvasFlags(fs)
		s.addFormatFlag(fs, backends.FormatXY)
	case youplot.Lineplots, youplot.Scatter, youplot.Density:
		s.addCanvasFlags(fs)
		s.addFormatFlag(fs, backends.FormatXYY)
	case youplot.Boxplot:
		s.addLimitFlags(fs)
	case youplot.Count:
		fs.StringVar(&s.symbol, "symbol", "", "character to be used to plot the bars")
		fs.StringVar(&s.xscale, "xscale", "", "axis scaling: identity, ln, log2 or log10")
		fs.BoolVarP(&s.reverse, "reverse", "r", false, "reverse the result of sorting")
	case youplot.Colors:
		fs.BoolVarP(&s.names, "names", "n", false, "show color names only")
	}
}

// apply copies every flag the user set on fs into opts and p. Flags left
// alone keep whatever the defaults or the config file gave.
func (s *settings) apply(fs *pflag.FlagSet, opts *youplot.Options, p *params.Parameters) error {
	changed := fs.Changed

	if changed("delimiter") {
		opts.Delimiter = s.delimiter
	}
	if changed("headers") {
		opts.Headers = s.headers
	}
	if changed("transpose") {
		opts.Transpose = s.transpose
	}
	if changed("pass") {
		opts.Pass = s.pass
	}
	if changed("output") {
		opts.Output = s.output
	}
	if changed("progress") {
		opts.Progressive = s.progressive
	}
	if changed("encoding") {
		opts.Encoding = s.encoding
	}
	if changed("sheet") {
		opts.Sheet = s.sheet
	}
	if changed("range") {
		opts.Range = s.rng
	}
	if changed("debug") {
		opts.Debug = s.debug
	}
	if changed("reverse") {
		opts.Reverse = s.reverse
	}
	if changed("names") {
		opts.ColorNames = s.names
	}
	if changed("fmt") {
		switch f := backends.Format(s.format); f {
		case backends.FormatXY, backends.FormatYX, backends.FormatXYY, backends.FormatXYXY:
			opts.Format = f
		default:
			return fmt.Errorf("invalid fmt: %s (must be xy, yx, xyy or xyxy)", s.format)
		}
	}
	switch {
	case s.colorOutput && s.monochrome:
		return fmt.Errorf("--color-output and --monochrome cannot be used together")
	case s.colorOutput:
		opts.Color = youplot.ColorAlways
	case s.monochrome:
		opts.Color = youplot.ColorNever
	}

	setString(fs, "title", s.title, &p.Title)
	setString(fs, "xlabel", s.xlabel, &p.XLabel)
	setString(fs, "ylabel", s.ylabel, &p.YLabel)
	setString(fs, "border", s.border, &p.Border)
	setString(fs, "color", s.color, &p.Color)
	setString(fs, "symbol", s.symbol, &p.Symbol)
	setString(fs, "xscale", s.xscale, &p.XScale)
	setString(fs, "closed", s.closed, &p.Closed)
	setString(fs, "canvas", s.canvas, &p.Canvas)
	setInt(fs, "width", s.width, &p.Width)
	setInt(fs, "height", s.height, &p.Height)
	setInt(fs, "margin", s.margin, &p.Margin)
	setInt(fs, "padding", s.padding, &p.Padding)
	setInt(fs, "nbins", s.nbins, &p.NBins)

	if changed("labels") {
		p.Labels = params.Ptr(s.labels)
	}
	if changed("no-labels") {
		p.Labels = params.Ptr(!s.noLabels)
	}
	if changed("grid") {
		p.Grid = params.Ptr(s.grid)
	}
	if changed("no-grid") {
		p.Grid = params.Ptr(!s.noGrid)
	}

	var err error
	if changed("xlim") {
		if p.XLim, err = limit("xlim", s.xlim); err != nil {
			return err
		}
	}
	if changed("ylim") {
		if p.YLim, err = limit("ylim", s.ylim); err != nil {
			return err
		}
	}
	return nil
}

func setString(fs *pflag.FlagSet, name, v string, dst **string) {
	if fs.Changed(name) {
		*dst = params.Ptr(v)
	}
}

func setInt(fs *pflag.FlagSet, name string, v int, dst **int) {
	if fs.Changed(name) {
		*dst = params.Ptr(v)
	}
}

func limit(name string, v []float64) (*[2]float64, error) {
	if len(v) != 2 {
		return nil, fmt.Errorf("--%s takes two values such as 0,10, got %d", name, len(v))
	}
	return &[2]float64{v[0], v[1]}, nil
}
