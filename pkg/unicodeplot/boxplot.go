package unicodeplot

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
)

// summary is the five-number summary of a sample.
type summary struct {
	min, q1, median, q3, max float64
}

func summarize(xs []float64) summary {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	s := stats.Sample{Xs: sorted, Sorted: true}
	return summary{
		min:    sorted[0],
		q1:     s.Quantile(0.25),
		median: s.Quantile(0.5),
		q3:     s.Quantile(0.75),
		max:    sorted[len(sorted)-1],
	}
}

type boxGraphics struct {
	cells [][]rune
	color Color
}

func (g *boxGraphics) Rows() int { return len(g.cells) }
func (g *boxGraphics) Cols() int { return len(g.cells[0]) }

func (g *boxGraphics) Row(i int, colored bool) string {
	return g.color.Paint(string(g.cells[i]), colored)
}

// draw renders one box into three rows starting at row.
func (g *boxGraphics) draw(row int, s summary, col func(float64) int) {
	top, mid, bot := g.cells[row], g.cells[row+1], g.cells[row+2]
	lo, q1, med, q3, hi := col(s.min), col(s.q1), col(s.median), col(s.q3), col(s.max)

	for j := lo; j <= hi; j++ {
		mid[j] = '─'
	}
	for j := q1; j <= q3; j++ {
		top[j] = '─'
		bot[j] = '─'
		mid[j] = ' '
	}
	top[lo], bot[lo], mid[lo] = '╷', '╵', '├'
	top[hi], bot[hi], mid[hi] = '╷', '╵', '┤'
	top[q1], bot[q1], mid[q1] = '┌', '└', '┤'
	top[q3], bot[q3], mid[q3] = '┐', '┘', '├'
	top[med], bot[med], mid[med] = '┬', '┴', '│'
}

// Boxplot draws one box per series, labelled with labels.
func Boxplot(labels []string, data [][]float64, o Options) (*Plot, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if len(labels) != len(data) {
		return nil, argumentErrorf("labels and data must be the same length (labels: %d, data: %d)", len(labels), len(data))
	}
	if len(data) == 0 {
		return nil, argumentErrorf("boxplot needs at least one series")
	}
	summaries := make([]summary, len(data))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, xs := range data {
		if len(xs) == 0 {
			return nil, argumentErrorf("series %q has no values", labels[i])
		}
		summaries[i] = summarize(xs)
		lo = math.Min(lo, summaries[i].min)
		hi = math.Max(hi, summaries[i].max)
	}
	xlim, err := limits(o.XLim, lo, hi)
	if err != nil {
		return nil, err
	}
	border, err := o.border("corners")
	if err != nil {
		return nil, err
	}

	g := &boxGraphics{cells: make([][]rune, 3*len(data))}
	for i := range g.cells {
		g.cells[i] = []rune(spaces(o.Width))
	}
	sc := scale.Linear{Min: xlim[0], Max: xlim[1]}
	last := o.Width - 1
	col := func(v float64) int {
		c := int(math.Round(sc.Map(v) * float64(last)))
		if c < 0 {
			return 0
		}
		if c > last {
			return last
		}
		return c
	}
	for i, s := range summaries {
		g.draw(3*i, s, col)
	}

	p := newPlot(g, o, border)
	color, err := p.firstColor(colorNames["green"])
	if err != nil {
		return nil, err
	}
	g.color = color
	for i, l := range labels {
		p.left[3*i+1] = l
	}
	p.bottomLeft = formatNumber(xlim[0])
	p.bottomRight = formatNumber(xlim[1])
	return p, nil
}
