package unicodeplot

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Renderer is anything that can be written to a terminal.
type Renderer interface {
	Render(w io.Writer) error
	// SetColorOutput toggles ANSI escape sequences in the output.
	SetColorOutput(on bool)
}

type graphics interface {
	Rows() int
	Cols() int
	Row(i int, colored bool) string
}

type label struct {
	text  string
	color Color
}

// Plot is a drawn chart together with its decorations.
type Plot struct {
	opts     Options
	border   Border
	graphics graphics
	// canvas is set for plots that accept overlays.
	canvas Canvas

	left        map[int]string
	right       map[int]label
	legendRows  int
	bottomLeft  string
	bottomRight string
	series      int
}

func newPlot(g graphics, o Options, border Border) *Plot {
	return &Plot{
		opts:     o,
		border:   border,
		graphics: g,
		left:     map[int]string{},
		right:    map[int]label{},
	}
}

// Options returns the options the plot was created with.
func (p *Plot) Options() Options {
	return p.opts
}

// SetColorOutput toggles ANSI escape sequences in the output.
func (p *Plot) SetColorOutput(on bool) {
	p.opts.ColorOutput = on
}

// Series returns how many series have been drawn.
func (p *Plot) Series() int {
	return p.series
}

func (p *Plot) nextColor() Color {
	c := autoColors[p.series%len(autoColors)]
	p.series++
	return c
}

// firstColor resolves the color of the first series, which may be set
// explicitly.
func (p *Plot) firstColor(def Color) (Color, error) {
	if p.opts.Color == "" {
		p.series++
		if def != NoColor {
			return def, nil
		}
		return autoColors[0], nil
	}
	c, err := ParseColor(p.opts.Color)
	if err != nil {
		return NoColor, err
	}
	p.series++
	return c, nil
}

func (p *Plot) legend(name string, c Color) {
	if name == "" || p.legendRows >= p.graphics.Rows() {
		return
	}
	p.right[p.legendRows] = label{text: name, color: c}
	p.legendRows++
}

// Render writes the plot to w.
func (p *Plot) Render(w io.Writer) error {
	var sb strings.Builder
	for _, line := range p.lines() {
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (p *Plot) lines() []string {
	o := p.opts
	colored := o.ColorOutput
	rows, cols := p.graphics.Rows(), p.graphics.Cols()

	leftW := 0
	ylabelW := 0
	if o.Labels {
		for _, s := range p.left {
			if n := runewidth.StringWidth(s); n > leftW {
				leftW = n
			}
		}
		if o.YLabel != "" {
			ylabelW = runewidth.StringWidth(o.YLabel) + 1
		}
	}
	// indent is the column the left border is drawn in.
	indent := o.Margin + ylabelW + leftW + o.Padding
	plotW := cols + 2

	var lines []string
	if o.Title != "" {
		lines = append(lines, centered(o.Title, indent, plotW))
	}

	lines = append(lines, spaces(indent)+p.border.TL+strings.Repeat(p.border.T, cols)+p.border.TR)
	for i := 0; i < rows; i++ {
		var sb strings.Builder
		sb.WriteString(spaces(o.Margin))
		if ylabelW > 0 {
			if i == rows/2 {
				sb.WriteString(o.YLabel + " ")
			} else {
				sb.WriteString(spaces(ylabelW))
			}
		}
		if o.Labels {
			s := p.left[i]
			sb.WriteString(spaces(leftW-runewidth.StringWidth(s)) + s)
		} else {
			sb.WriteString(spaces(leftW))
		}
		sb.WriteString(spaces(o.Padding))
		sb.WriteString(p.border.L)
		sb.WriteString(p.graphics.Row(i, colored))
		sb.WriteString(p.border.R)
		if l, ok := p.right[i]; ok && o.Labels {
			sb.WriteString(" " + l.color.Paint(l.text, colored))
		}
		lines = append(lines, sb.String())
	}
	lines = append(lines, spaces(indent)+p.border.BL+strings.Repeat(p.border.B, cols)+p.border.BR)

	if o.Labels && (p.bottomLeft != "" || p.bottomRight != "") {
		gap := plotW - runewidth.StringWidth(p.bottomLeft) - runewidth.StringWidth(p.bottomRight)
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, spaces(indent)+p.bottomLeft+spaces(gap)+p.bottomRight)
	}
	if o.Labels && o.XLabel != "" {
		lines = append(lines, centered(o.XLabel, indent, plotW))
	}
	return lines
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// centered places s in the middle of a field of the given width starting
// at column indent.
func centered(s string, indent, width int) string {
	offset := (width - runewidth.StringWidth(s)) / 2
	if offset < 0 {
		offset = 0
	}
	return spaces(indent+offset) + s
}
