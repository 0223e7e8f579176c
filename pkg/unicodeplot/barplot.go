package unicodeplot

import (
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/mattn/go-runewidth"
)

var xscales = map[string]func(float64) float64{
	"identity": func(v float64) float64 { return v },
	"ln":       math.Log,
	"log2":     math.Log2,
	"log10":    math.Log10,
}

type barGraphics struct {
	values  []float64
	lengths []int
	cols    int
	symbol  string
	color   Color
}

func newBarGraphics(values []float64, o Options, xscale func(float64) float64, symbol string, color Color) *barGraphics {
	valW := 0
	scaled := make([]float64, len(values))
	maxScaled := 0.0
	for i, v := range values {
		if n := len(formatNumber(v)); n > valW {
			valW = n
		}
		s := xscale(v)
		if math.IsNaN(s) || s < 0 {
			s = 0
		}
		scaled[i] = s
		if s > maxScaled && !math.IsInf(s, 1) {
			maxScaled = s
		}
	}
	maxLen := o.Width - valW - 1
	if maxLen < 1 {
		maxLen = 1
	}
	lengths := make([]int, len(values))
	for i, s := range scaled {
		switch {
		case math.IsInf(s, 1):
			lengths[i] = maxLen
		case maxScaled > 0:
			lengths[i] = int(math.Round(s / maxScaled * float64(maxLen)))
		}
	}
	cols := o.Width
	if need := maxLen + 1 + valW; cols < need {
		cols = need
	}
	return &barGraphics{values: values, lengths: lengths, cols: cols, symbol: symbol, color: color}
}

func (g *barGraphics) Rows() int { return len(g.values) }
func (g *barGraphics) Cols() int { return g.cols }

func (g *barGraphics) Row(i int, colored bool) string {
	bar := strings.Repeat(g.symbol, g.lengths[i])
	text := formatNumber(g.values[i])
	used := runewidth.StringWidth(bar) + 1 + len(text)
	if bar == "" {
		used = len(text)
	} else {
		text = " " + text
	}
	return g.color.Paint(bar, colored) + text + spaces(g.cols-used)
}

func newBarPlot(labels []string, values []float64, o Options, symbol string) (*Plot, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	xscale, ok := xscales[o.XScale]
	if !ok {
		return nil, argumentErrorf("unknown xscale: %q (available: identity, ln, log2, log10)", o.XScale)
	}
	border, err := o.border("barplot")
	if err != nil {
		return nil, err
	}
	if o.Symbol != "" {
		symbol = o.Symbol
	}
	if runewidth.StringWidth(symbol) != 1 {
		return nil, argumentErrorf("symbol must be a single character: %q", symbol)
	}
	p := newPlot(nil, o, border)
	color, err := p.firstColor(colorNames["green"])
	if err != nil {
		return nil, err
	}
	p.graphics = newBarGraphics(values, o, xscale, symbol, color)
	for i, l := range labels {
		p.left[i] = l
	}
	return p, nil
}

// Barplot draws one horizontal bar per label. Values must not be negative.
func Barplot(labels []string, values []float64, o Options) (*Plot, error) {
	if len(labels) != len(values) {
		return nil, argumentErrorf("labels and values must be the same length (labels: %d, values: %d)", len(labels), len(values))
	}
	if len(values) == 0 {
		return nil, argumentErrorf("barplot needs at least one value")
	}
	for _, v := range values {
		if v < 0 {
			return nil, argumentErrorf("all values have to be positive. Negative bars are not supported.")
		}
	}
	return newBarPlot(labels, values, o, "■")
}

// Histogram bins values and draws the frequencies as bars.
func Histogram(values []float64, o Options) (*Plot, error) {
	if len(values) == 0 {
		return nil, argumentErrorf("histogram needs at least one value")
	}
	var rightClosed bool
	switch o.Closed {
	case "", "left":
	case "right":
		rightClosed = true
	default:
		return nil, argumentErrorf("closed must be left or right: %q", o.Closed)
	}
	nbins := o.NBins
	if nbins <= 0 {
		nbins = sturges(len(values))
	}

	edges := binEdges(values, nbins, rightClosed)
	counts := make([]float64, len(edges)-1)
	step := edges[1] - edges[0]
	for _, v := range values {
		var i int
		if rightClosed {
			i = int(math.Ceil((v-edges[0])/step)) - 1
		} else {
			i = int(math.Floor((v - edges[0]) / step))
		}
		if i < 0 {
			i = 0
		}
		if i >= len(counts) {
			i = len(counts) - 1
		}
		counts[i]++
	}

	labels := make([]string, len(counts))
	for i := range counts {
		lo, hi := formatNumber(edges[i]), formatNumber(edges[i+1])
		if rightClosed {
			labels[i] = fmt.Sprintf("(%s, %s]", lo, hi)
		} else {
			labels[i] = fmt.Sprintf("[%s, %s)", lo, hi)
		}
	}
	if o.XLabel == "" {
		o.XLabel = "Frequency"
	}
	return newBarPlot(labels, counts, o, "▇")
}

// sturges returns the number of bins Sturges' rule suggests for n values.
func sturges(n int) int {
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// niceStep rounds raw up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	f := raw / base
	switch {
	case f <= 1:
		return base
	case f <= 2:
		return 2 * base
	case f <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

// binEdges returns equally spaced edges covering values in roughly nbins
// bins aligned to a nice step.
func binEdges(values []float64, nbins int, rightClosed bool) []float64 {
	lo, hi := stats.Bounds(values)
	step := niceStep((hi - lo) / float64(nbins))
	var start float64
	var n int
	if rightClosed {
		start = math.Ceil(lo/step)*step - step
		n = int(math.Ceil((hi - start) / step))
	} else {
		start = math.Floor(lo/step) * step
		n = int(math.Floor((hi-start)/step)) + 1
	}
	if n < 1 {
		n = 1
	}
	edges := make([]float64, n+1)
	for i := range edges {
		edges[i] = roundTo(start+float64(i)*step, step)
	}
	return edges
}

// roundTo removes floating point noise below the precision of step.
func roundTo(v, step float64) float64 {
	digits := -math.Floor(math.Log10(step)) + 1
	if digits < 0 {
		digits = 0
	}
	p := math.Pow(10, digits)
	return math.Round(v*p) / p
}
