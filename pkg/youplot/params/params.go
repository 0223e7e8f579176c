// Package params provides the plot parameter set shared by every plot
// constructor.
package params

// Parameters configures how a plot is drawn.
// Every field is optional: nil means the field was never set, by the user
// or by a default derived from the input columns.
type Parameters struct {
	// Title is printed on the top of the plot.
	Title *string
	// XLabel is printed below the plot.
	XLabel *string
	// YLabel is printed on the far left of the plot.
	YLabel *string
	// Width is the number of characters per canvas row.
	Width *int
	// Height is the number of canvas rows.
	Height *int
	// Border is the style of the bounding box.
	Border *string
	// Margin is the number of spaces to the left of the plot.
	Margin *int
	// Padding is the space on the left and right of the canvas.
	Padding *int
	// Color is a color name or a 256-color code.
	Color *string
	// Labels toggles the axis labels and decorations.
	Labels *bool
	// Symbol is the character used for bars.
	Symbol *string
	// XScale is the axis scaling of bar lengths (identity, ln, log2, log10).
	XScale *string
	// NBins is the approximate number of histogram bins.
	NBins *int
	// Closed is the side of histogram intervals that is closed (left, right).
	Closed *string
	// Canvas is the type of canvas (braille, block, ascii, dot, density).
	Canvas *string
	// XLim is the plotting range for the x coordinate.
	XLim *[2]float64
	// YLim is the plotting range for the y coordinate.
	YLim *[2]float64
	// Grid draws grid lines at the origin.
	Grid *bool
	// Name is the legend entry of the first series.
	Name *string
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// SetDefault stores v in *field unless the field is already set.
// It reports whether the field was changed.
func SetDefault[T any](field **T, v T) bool {
	if *field != nil {
		return false
	}
	*field = &v
	return true
}

// Value returns the value of field, or def when it is unset.
func Value[T any](field *T, def T) T {
	if field == nil {
		return def
	}
	return *field
}

// Clone returns a deep copy of p.
func (p *Parameters) Clone() *Parameters {
	if p == nil {
		return &Parameters{}
	}
	c := &Parameters{}
	c.Title = clonePtr(p.Title)
	c.XLabel = clonePtr(p.XLabel)
	c.YLabel = clonePtr(p.YLabel)
	c.Width = clonePtr(p.Width)
	c.Height = clonePtr(p.Height)
	c.Border = clonePtr(p.Border)
	c.Margin = clonePtr(p.Margin)
	c.Padding = clonePtr(p.Padding)
	c.Color = clonePtr(p.Color)
	c.Labels = clonePtr(p.Labels)
	c.Symbol = clonePtr(p.Symbol)
	c.XScale = clonePtr(p.XScale)
	c.NBins = clonePtr(p.NBins)
	c.Closed = clonePtr(p.Closed)
	c.Canvas = clonePtr(p.Canvas)
	c.XLim = clonePtr(p.XLim)
	c.YLim = clonePtr(p.YLim)
	c.Grid = clonePtr(p.Grid)
	c.Name = clonePtr(p.Name)
	return c
}

// Merge copies every field set in o into p, overriding p.
func (p *Parameters) Merge(o *Parameters) {
	if o == nil {
		return
	}
	merge(&p.Title, o.Title)
	merge(&p.XLabel, o.XLabel)
	merge(&p.YLabel, o.YLabel)
	merge(&p.Width, o.Width)
	merge(&p.Height, o.Height)
	merge(&p.Border, o.Border)
	merge(&p.Margin, o.Margin)
	merge(&p.Padding, o.Padding)
	merge(&p.Color, o.Color)
	merge(&p.Labels, o.Labels)
	merge(&p.Symbol, o.Symbol)
	merge(&p.XScale, o.XScale)
	merge(&p.NBins, o.NBins)
	merge(&p.Closed, o.Closed)
	merge(&p.Canvas, o.Canvas)
	merge(&p.XLim, o.XLim)
	merge(&p.YLim, o.YLim)
	merge(&p.Grid, o.Grid)
	merge(&p.Name, o.Name)
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func merge[T any](dst **T, src *T) {
	if src != nil {
		*dst = clonePtr(src)
	}
}
