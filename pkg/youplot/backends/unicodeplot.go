// Package backends turns parsed tables into plots.
package backends

import (
	"math"
	"strconv"

	"github.com/aclements/go-moremath/stats"

	"github.com/red-data-tools/youplot-go/pkg/unicodeplot"
	"github.com/red-data-tools/youplot-go/pkg/youplot/models"
	"github.com/red-data-tools/youplot-go/pkg/youplot/params"
)

// Format is the layout of the x and y series in a table.
type Format string

const (
	// FormatXY uses the first series as x and the second as y.
	FormatXY Format = "xy"
	// FormatYX uses the first series as y and the second as x.
	FormatYX Format = "yx"
	// FormatXYY shares the first series as x for every following y series.
	FormatXYY Format = "xyy"
	// FormatXYXY pairs the series as x1, y1, x2, y2, ...
	FormatXYXY Format = "xyxy"
)

// Options converts a parameter set into renderer options. Unset fields
// keep the renderer defaults.
func Options(p *params.Parameters) unicodeplot.Options {
	o := unicodeplot.DefaultOptions()
	if p == nil {
		return o
	}
	o.Title = params.Value(p.Title, o.Title)
	o.XLabel = params.Value(p.XLabel, o.XLabel)
	o.YLabel = params.Value(p.YLabel, o.YLabel)
	o.Width = params.Value(p.Width, o.Width)
	o.Height = params.Value(p.Height, o.Height)
	o.Border = params.Value(p.Border, o.Border)
	o.Margin = params.Value(p.Margin, o.Margin)
	o.Padding = params.Value(p.Padding, o.Padding)
	o.Color = params.Value(p.Color, o.Color)
	o.Labels = params.Value(p.Labels, o.Labels)
	o.Symbol = params.Value(p.Symbol, o.Symbol)
	o.XScale = params.Value(p.XScale, o.XScale)
	o.NBins = params.Value(p.NBins, o.NBins)
	o.Closed = params.Value(p.Closed, o.Closed)
	o.Canvas = params.Value(p.Canvas, o.Canvas)
	o.XLim = params.Value(p.XLim, o.XLim)
	o.YLim = params.Value(p.YLim, o.YLim)
	o.Name = params.Value(p.Name, o.Name)
	if p.Grid != nil {
		o.Grid = params.Ptr(*p.Grid)
	}
	return o
}

// xyColumns returns the indexes of the x and y series.
func xyColumns(format Format) (x, y int) {
	if format == FormatYX {
		return 1, 0
	}
	return 0, 1
}

func positions(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return labels
}

func strs(column []models.Cell) []string {
	values := make([]string, len(column))
	for i, c := range column {
		values[i] = c.String()
	}
	return values
}

func header(t *models.Table, i int) string {
	h, _ := t.Header(i)
	return h
}

// Barplot draws one bar per row. A single series is labelled by row
// number; otherwise one series holds the labels and another the values.
func Barplot(t *models.Table, p *params.Parameters, format Format) (*unicodeplot.Plot, error) {
	if len(t.Series) == 0 {
		return nil, ErrNoData
	}
	if len(t.Series) == 1 {
		if h, ok := t.Header(0); ok {
			params.SetDefault(&p.Title, h)
		}
		values := models.Floats(t.Series[0])
		return unicodeplot.Barplot(positions(len(values)), values, Options(p))
	}
	xcol, ycol := xyColumns(format)
	if h, ok := t.Header(ycol); ok {
		params.SetDefault(&p.Title, h)
	}
	return unicodeplot.Barplot(strs(t.Series[xcol]), models.Floats(t.Series[ycol]), Options(p))
}

// Count draws the frequency of each distinct value of the first series.
func Count(t *models.Table, p *params.Parameters, reverse bool) (*unicodeplot.Plot, error) {
	if len(t.Series) == 0 {
		return nil, ErrNoData
	}
	labels, counts := CountValues(t.Series[0], reverse)
	if h, ok := t.Header(0); ok {
		params.SetDefault(&p.Title, h)
	}
	values := make([]float64, len(counts))
	for i, n := range counts {
		values[i] = float64(n)
	}
	return unicodeplot.Barplot(labels, values, Options(p))
}

// Histogram draws the distribution of the first series.
func Histogram(t *models.Table, p *params.Parameters) (*unicodeplot.Plot, error) {
	if len(t.Series) == 0 {
		return nil, ErrNoData
	}
	if h, ok := t.Header(0); ok {
		params.SetDefault(&p.Title, h)
	}
	return unicodeplot.Histogram(models.Floats(t.Series[0]), Options(p))
}

// Line draws a single line. A single series is plotted against its row
// number.
func Line(t *models.Table, p *params.Parameters, format Format) (*unicodeplot.Plot, error) {
	if len(t.Series) == 0 {
		return nil, ErrNoData
	}
	if len(t.Series) == 1 {
		if h, ok := t.Header(0); ok {
			params.SetDefault(&p.YLabel, h)
		}
		y := models.Floats(t.Series[0])
		x := make([]float64, len(y))
		for i := range x {
			x[i] = float64(i + 1)
		}
		return unicodeplot.Lineplot(x, y, Options(p))
	}
	xcol, ycol := xyColumns(format)
	if t.HasHeaders() {
		params.SetDefault(&p.XLabel, header(t, xcol))
		params.SetDefault(&p.YLabel, header(t, ycol))
	}
	return unicodeplot.Lineplot(models.Floats(t.Series[xcol]), models.Floats(t.Series[ycol]), Options(p))
}

// SeriesPlotter draws the chart families that overlay several series on
// one canvas.
type SeriesPlotter interface {
	// CreatePrimary draws the first series and returns the plot.
	CreatePrimary(x, y []float64, p *params.Parameters) (*unicodeplot.Plot, error)
	// AddSeries overlays another series on plot.
	AddSeries(plot *unicodeplot.Plot, x, y []float64, name string) error
}

type lineFamily struct{}

func (lineFamily) CreatePrimary(x, y []float64, p *params.Parameters) (*unicodeplot.Plot, error) {
	return unicodeplot.Lineplot(x, y, Options(p))
}

func (lineFamily) AddSeries(plot *unicodeplot.Plot, x, y []float64, name string) error {
	return plot.Lineplot(x, y, name)
}

type scatterFamily struct{}

func (scatterFamily) CreatePrimary(x, y []float64, p *params.Parameters) (*unicodeplot.Plot, error) {
	return unicodeplot.Scatterplot(x, y, Options(p))
}

func (scatterFamily) AddSeries(plot *unicodeplot.Plot, x, y []float64, name string) error {
	return plot.Scatterplot(x, y, name)
}

type densityFamily struct{}

func (densityFamily) CreatePrimary(x, y []float64, p *params.Parameters) (*unicodeplot.Plot, error) {
	return unicodeplot.Densityplot(x, y, Options(p))
}

func (densityFamily) AddSeries(plot *unicodeplot.Plot, x, y []float64, name string) error {
	return plot.Scatterplot(x, y, name)
}

// Lines draws several lines on one plot.
func Lines(t *models.Table, p *params.Parameters, format Format) (*unicodeplot.Plot, error) {
	return plotFormat(t, p, format, lineFamily{}, "lineplots")
}

// Scatter draws several point series on one plot.
func Scatter(t *models.Table, p *params.Parameters, format Format) (*unicodeplot.Plot, error) {
	return plotFormat(t, p, format, scatterFamily{}, "scatter")
}

// Density draws several point series on a density canvas.
func Density(t *models.Table, p *params.Parameters, format Format) (*unicodeplot.Plot, error) {
	return plotFormat(t, p, format, densityFamily{}, "density")
}

func plotFormat(t *models.Table, p *params.Parameters, format Format, f SeriesPlotter, command string) (*unicodeplot.Plot, error) {
	if err := checkSeriesSize(t, format); err != nil {
		return nil, err
	}
	switch format {
	case FormatXYY:
		return plotXYY(t, p, f)
	case FormatXYXY:
		return plotXYXY(t, p, f)
	default:
		return nil, NewUnsupportedFormatError(format, command)
	}
}

func checkSeriesSize(t *models.Table, format Format) error {
	if len(t.Series) < 2 {
		var first, last string
		if len(t.Series) == 1 && len(t.Series[0]) > 0 {
			first = t.Series[0][0].String()
			last = t.Series[0][len(t.Series[0])-1].String()
		}
		return NewInsufficientSeriesError(t.Headers, first, last)
	}
	if format == FormatXYXY && len(t.Series)%2 == 1 {
		return NewOddSeriesCountError(len(t.Series), t.Headers)
	}
	return nil
}

// bounds returns the smallest and largest of all values, or false when
// there are none.
func bounds(columns ...[]float64) ([2]float64, bool) {
	var all []float64
	for _, c := range columns {
		all = append(all, c...)
	}
	if len(all) == 0 {
		return [2]float64{}, false
	}
	lo, hi := stats.Bounds(all)
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return [2]float64{}, false
	}
	return [2]float64{lo, hi}, true
}

func setDefaultLim(field **[2]float64, columns ...[]float64) {
	if lim, ok := bounds(columns...); ok {
		params.SetDefault(field, lim)
	}
}

func floats(t *models.Table) [][]float64 {
	series := make([][]float64, len(t.Series))
	for i, s := range t.Series {
		series[i] = models.Floats(s)
	}
	return series
}

// plotXYY draws every series after the first against the first.
func plotXYY(t *models.Table, p *params.Parameters, f SeriesPlotter) (*unicodeplot.Plot, error) {
	series := floats(t)
	if t.HasHeaders() {
		params.SetDefault(&p.Name, header(t, 1))
		params.SetDefault(&p.XLabel, header(t, 0))
	}
	setDefaultLim(&p.XLim, series[0])
	setDefaultLim(&p.YLim, series[1:]...)

	plot, err := f.CreatePrimary(series[0], series[1], p)
	if err != nil {
		return nil, err
	}
	for i := 2; i < len(series); i++ {
		if err := f.AddSeries(plot, series[0], series[i], header(t, i)); err != nil {
			return nil, err
		}
	}
	return plot, nil
}

// plotXYXY draws the series pairwise as (x1, y1), (x2, y2), ...
func plotXYXY(t *models.Table, p *params.Parameters, f SeriesPlotter) (*unicodeplot.Plot, error) {
	series := floats(t)
	var xs, ys [][]float64
	for i := 0; i+1 < len(series); i += 2 {
		xs = append(xs, series[i])
		ys = append(ys, series[i+1])
	}
	if t.HasHeaders() {
		params.SetDefault(&p.Name, header(t, 0))
	}
	setDefaultLim(&p.XLim, xs...)
	setDefaultLim(&p.YLim, ys...)

	plot, err := f.CreatePrimary(xs[0], ys[0], p)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(xs); i++ {
		if err := f.AddSeries(plot, xs[i], ys[i], header(t, i*2)); err != nil {
			return nil, err
		}
	}
	return plot, nil
}

// Boxplot draws one box per series, labelled by header or by position.
func Boxplot(t *models.Table, p *params.Parameters) (*unicodeplot.Plot, error) {
	if len(t.Series) == 0 {
		return nil, ErrNoData
	}
	labels := t.Headers
	if labels == nil {
		labels = positions(len(t.Series))
	}
	return unicodeplot.Boxplot(labels, floats(t), Options(p))
}

// Colors lists the named colors. With names set, only the names are
// printed.
func Colors(names bool) unicodeplot.Renderer {
	return &unicodeplot.ColorTable{NamesOnly: names}
}
