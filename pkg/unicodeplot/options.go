package unicodeplot

import (
	"math"
	"strconv"
)

// Options controls how a plot is laid out and drawn.
type Options struct {
	Title  string
	XLabel string
	YLabel string

	// Width is the number of character columns of the plotting area.
	Width int
	// Height is the number of character rows of the plotting area. Bar and
	// box plots derive their height from the data.
	Height  int
	Margin  int
	Padding int

	// Border names the border style. Empty picks the plot's default.
	Border string
	// Color names the color of the first series. Empty picks the next
	// automatic color.
	Color string
	// Labels toggles the axis labels and decorations.
	Labels bool
	// Symbol is the character bars are drawn with.
	Symbol string
	// XScale transforms bar lengths: identity, ln, log2 or log10.
	XScale string
	// NBins is the number of histogram bins. Zero uses Sturges' rule.
	NBins int
	// Closed is the closed side of histogram bins: left or right.
	Closed string
	// Canvas names the canvas type. Empty picks the plot's default.
	Canvas string
	// XLim and YLim are the data ranges. A zero pair is computed from the
	// data.
	XLim [2]float64
	YLim [2]float64
	// Grid draws the axes through the origin. If nil, defaults to the
	// plot's own default.
	Grid *bool
	// Name labels the first series in the legend.
	Name string

	// ColorOutput emits ANSI escape sequences when true.
	ColorOutput bool
}

// DefaultOptions returns the options plots are drawn with when nothing is
// specified.
func DefaultOptions() Options {
	return Options{
		Width:   40,
		Height:  15,
		Margin:  3,
		Padding: 1,
		Labels:  true,
		XScale:  "identity",
		Closed:  "left",
	}
}

func (o Options) validate() error {
	if o.Width < 1 {
		return argumentErrorf("width must be positive: %d", o.Width)
	}
	if o.Height < 1 {
		return argumentErrorf("height must be positive: %d", o.Height)
	}
	if o.Margin < 0 {
		return argumentErrorf("margin must not be negative: %d", o.Margin)
	}
	if o.Padding < 0 {
		return argumentErrorf("padding must not be negative: %d", o.Padding)
	}
	return nil
}

func (o Options) grid(def bool) bool {
	if o.Grid == nil {
		return def
	}
	return *o.Grid
}

func (o Options) border(def string) (Border, error) {
	if o.Border == "" {
		return lookupBorder(def)
	}
	return lookupBorder(o.Border)
}

func (o Options) canvas(def string) string {
	if o.Canvas == "" {
		return def
	}
	return o.Canvas
}

func isZeroLim(l [2]float64) bool {
	return l[0] == 0 && l[1] == 0
}

// limits returns lim unless it is zero, in which case the bounds of the
// data are used. A degenerate range is widened so it can be mapped.
func limits(lim [2]float64, min, max float64) ([2]float64, error) {
	if !isZeroLim(lim) {
		if lim[0] > lim[1] || math.IsNaN(lim[0]) || math.IsNaN(lim[1]) {
			return lim, argumentErrorf("limits must be increasing: [%s, %s]", formatNumber(lim[0]), formatNumber(lim[1]))
		}
		min, max = lim[0], lim[1]
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return [2]float64{0, 1}, nil
	}
	if min == max {
		return [2]float64{min - 1, max + 1}, nil
	}
	return [2]float64{min, max}, nil
}

// formatNumber prints integral values without a fraction and everything
// else with five significant digits.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', 5, 64)
}
