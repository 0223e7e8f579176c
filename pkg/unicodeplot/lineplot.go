package unicodeplot

import (
	"github.com/aclements/go-moremath/stats"
)

type drawFunc func(c Canvas, x, y []float64, color Color)

func drawLines(c Canvas, x, y []float64, color Color) {
	if len(x) == 1 {
		c.Point(x[0], y[0], color)
		return
	}
	for i := 1; i < len(x); i++ {
		c.Line(x[i-1], y[i-1], x[i], y[i], color)
	}
}

func drawPoints(c Canvas, x, y []float64, color Color) {
	for i := range x {
		c.Point(x[i], y[i], color)
	}
}

func checkXY(x, y []float64) error {
	if len(x) != len(y) {
		return argumentErrorf("x and y must be the same length (x: %d, y: %d)", len(x), len(y))
	}
	if len(x) == 0 {
		return argumentErrorf("x and y must not be empty")
	}
	return nil
}

// newCanvasPlot sets up a plot whose graphics is a canvas spanning the
// limits of x and y, with axes drawn through the origin when grid is on.
func newCanvasPlot(x, y []float64, o Options, defCanvas string, defGrid bool) (*Plot, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if err := checkXY(x, y); err != nil {
		return nil, err
	}
	xmin, xmax := stats.Bounds(x)
	ymin, ymax := stats.Bounds(y)
	xlim, err := limits(o.XLim, xmin, xmax)
	if err != nil {
		return nil, err
	}
	ylim, err := limits(o.YLim, ymin, ymax)
	if err != nil {
		return nil, err
	}
	border, err := o.border("solid")
	if err != nil {
		return nil, err
	}
	c, err := NewCanvas(o.canvas(defCanvas), o.Width, o.Height, xlim, ylim)
	if err != nil {
		return nil, err
	}

	p := newPlot(c, o, border)
	p.canvas = c
	if o.grid(defGrid) {
		if ylim[0] < 0 && ylim[1] > 0 {
			c.Line(xlim[0], 0, xlim[1], 0, NoColor)
		}
		if xlim[0] < 0 && xlim[1] > 0 {
			c.Line(0, ylim[0], 0, ylim[1], NoColor)
		}
	}
	p.left[0] = formatNumber(ylim[1])
	p.left[o.Height-1] = formatNumber(ylim[0])
	p.bottomLeft = formatNumber(xlim[0])
	p.bottomRight = formatNumber(xlim[1])
	return p, nil
}

func canvasPlot(x, y []float64, o Options, defCanvas string, defGrid bool, draw drawFunc) (*Plot, error) {
	p, err := newCanvasPlot(x, y, o, defCanvas, defGrid)
	if err != nil {
		return nil, err
	}
	color, err := p.firstColor(NoColor)
	if err != nil {
		return nil, err
	}
	draw(p.canvas, x, y, color)
	p.legend(o.Name, color)
	return p, nil
}

// Lineplot draws y against x connecting consecutive points.
func Lineplot(x, y []float64, o Options) (*Plot, error) {
	return canvasPlot(x, y, o, "braille", true, drawLines)
}

// Scatterplot draws the points (x, y).
func Scatterplot(x, y []float64, o Options) (*Plot, error) {
	return canvasPlot(x, y, o, "braille", true, drawPoints)
}

// Densityplot shades each character cell by how many points fall into it.
func Densityplot(x, y []float64, o Options) (*Plot, error) {
	return canvasPlot(x, y, o, "density", false, drawPoints)
}

func (p *Plot) overlay(x, y []float64, name string, draw drawFunc) error {
	if p.canvas == nil {
		return argumentErrorf("this plot does not accept additional series")
	}
	if err := checkXY(x, y); err != nil {
		return err
	}
	color := p.nextColor()
	draw(p.canvas, x, y, color)
	p.legend(name, color)
	return nil
}

// Lineplot adds a line series to an existing plot.
func (p *Plot) Lineplot(x, y []float64, name string) error {
	return p.overlay(x, y, name, drawLines)
}

// Scatterplot adds a point series to an existing plot.
func (p *Plot) Scatterplot(x, y []float64, name string) error {
	return p.overlay(x, y, name, drawPoints)
}
