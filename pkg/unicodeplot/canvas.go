package unicodeplot

import (
	"math"
	"sort"
	"strings"

	"github.com/aclements/go-moremath/scale"
)

// Canvas is a character grid addressed in data coordinates. Each character
// cell is subdivided into XRes x YRes pixels.
type Canvas interface {
	// Rows returns the number of character rows.
	Rows() int
	// Cols returns the number of character columns.
	Cols() int
	// Row returns the i-th character row.
	Row(i int, colored bool) string
	// Point sets the pixel at data coordinates (x, y). Points outside the
	// limits are ignored.
	Point(x, y float64, c Color)
	// Line draws a straight line between two points in data coordinates.
	Line(x1, y1, x2, y2 float64, c Color)
	// Limits returns the x and y ranges mapped onto the canvas.
	Limits() (xlim, ylim [2]float64)
}

type glyphSet struct {
	xres, yres int
	// bit returns the bit set for the sub-pixel (dx, dy) of a cell.
	bit func(dx, dy int) uint16
	// glyph returns the character for a cell with the given bits set.
	glyph func(bits uint16) string
}

var canvasTypes = map[string]glyphSet{
	"braille": {
		xres: 2, yres: 4,
		bit: func(dx, dy int) uint16 {
			return brailleBits[dx][dy]
		},
		glyph: func(bits uint16) string {
			if bits == 0 {
				return " "
			}
			return string(rune(0x2800 + int(bits)))
		},
	},
	"block": {
		xres: 2, yres: 2,
		bit: func(dx, dy int) uint16 {
			return 1 << uint(dy*2+dx)
		},
		glyph: func(bits uint16) string {
			return blockGlyphs[bits]
		},
	},
	"ascii": {
		xres: 1, yres: 3,
		bit: func(_, dy int) uint16 {
			return 1 << uint(dy)
		},
		glyph: func(bits uint16) string {
			return asciiGlyphs[bits]
		},
	},
	"dot": {
		xres: 1, yres: 2,
		bit: func(_, dy int) uint16 {
			return 1 << uint(dy)
		},
		glyph: func(bits uint16) string {
			return dotGlyphs[bits]
		},
	},
}

// brailleBits[dx][dy] is the dot of a braille cell (U+2800 block).
var brailleBits = [2][4]uint16{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Quadrants: 1 top-left, 2 top-right, 4 bottom-left, 8 bottom-right.
var blockGlyphs = [16]string{
	" ", "▘", "▝", "▀", "▖", "▌", "▞", "▛",
	"▗", "▚", "▐", "▜", "▄", "▙", "▟", "█",
}

// Thirds: 1 top, 2 middle, 4 bottom.
var asciiGlyphs = [8]string{" ", "'", "-", "+", ".", ":", "+", "|"}

// Halves: 1 top, 2 bottom.
var dotGlyphs = [4]string{" ", "'", ".", ":"}

// densityGlyphs shade a cell by how many points fell into it.
var densityGlyphs = []string{" ", "░", "▒", "▓", "█"}

// CanvasNames returns the available canvas types.
func CanvasNames() []string {
	names := []string{"density"}
	for name := range canvasTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewCanvas creates a canvas of the given type and size mapping xlim and
// ylim onto the whole grid.
func NewCanvas(kind string, cols, rows int, xlim, ylim [2]float64) (Canvas, error) {
	if cols < 1 || rows < 1 {
		return nil, argumentErrorf("canvas size must be positive: %dx%d", cols, rows)
	}
	if kind == "density" {
		return &densityCanvas{grid: newGrid(1, 2, cols, rows, xlim, ylim)}, nil
	}
	set, ok := canvasTypes[kind]
	if !ok {
		return nil, argumentErrorf("unknown canvas: %q (available: %s)", kind, strings.Join(CanvasNames(), ", "))
	}
	return &bitCanvas{grid: newGrid(set.xres, set.yres, cols, rows, xlim, ylim), set: set}, nil
}

// grid maps data coordinates onto sub-pixels of a character grid.
type grid struct {
	xres, yres int
	cols, rows int
	xs, ys     scale.Linear
	colors     [][]Color
}

func newGrid(xres, yres, cols, rows int, xlim, ylim [2]float64) grid {
	colors := make([][]Color, rows)
	for i := range colors {
		colors[i] = make([]Color, cols)
	}
	return grid{
		xres: xres, yres: yres,
		cols: cols, rows: rows,
		xs:     scale.Linear{Min: xlim[0], Max: xlim[1]},
		ys:     scale.Linear{Min: ylim[0], Max: ylim[1]},
		colors: colors,
	}
}

func (g *grid) Rows() int { return g.rows }
func (g *grid) Cols() int { return g.cols }

func (g *grid) Limits() (xlim, ylim [2]float64) {
	return [2]float64{g.xs.Min, g.xs.Max}, [2]float64{g.ys.Min, g.ys.Max}
}

// pixel converts data coordinates to fractional pixel coordinates, with
// y growing downwards.
func (g *grid) pixel(x, y float64) (float64, float64) {
	w := float64(g.cols * g.xres)
	h := float64(g.rows * g.yres)
	px := g.xs.Map(x) * w
	py := h - g.ys.Map(y)*h
	return px, py
}

// cell returns the character cell and sub-pixel holding the pixel
// (px, py), or ok == false when it lies outside the grid. The right and
// bottom edges belong to the last pixel.
func (g *grid) cell(px, py float64) (col, row, dx, dy int, ok bool) {
	w := g.cols * g.xres
	h := g.rows * g.yres
	if math.IsNaN(px) || math.IsNaN(py) {
		return 0, 0, 0, 0, false
	}
	ix := int(math.Floor(px))
	iy := int(math.Floor(py))
	if ix == w && px == float64(w) {
		ix = w - 1
	}
	if iy == h && py == float64(h) {
		iy = h - 1
	}
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return 0, 0, 0, 0, false
	}
	return ix / g.xres, iy / g.yres, ix % g.xres, iy % g.yres, true
}

func (g *grid) inLimits(x, y float64) bool {
	return x >= math.Min(g.xs.Min, g.xs.Max) && x <= math.Max(g.xs.Min, g.xs.Max) &&
		y >= math.Min(g.ys.Min, g.ys.Max) && y <= math.Max(g.ys.Min, g.ys.Max)
}

// walk calls set for every pixel on the segment between two points.
func (g *grid) walk(x1, y1, x2, y2 float64, set func(px, py float64)) {
	px1, py1 := g.pixel(x1, y1)
	px2, py2 := g.pixel(x2, y2)
	if math.IsNaN(px1) || math.IsNaN(py1) || math.IsNaN(px2) || math.IsNaN(py2) {
		return
	}
	dx := px2 - px1
	dy := py2 - py1
	steps := math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		set(px1, py1)
		return
	}
	// Long lines far outside the grid would take forever to walk.
	limit := float64(4 * (g.cols*g.xres + g.rows*g.yres))
	if steps > limit {
		steps = limit
	}
	for i := 0.0; i <= steps; i++ {
		set(px1+dx*i/steps, py1+dy*i/steps)
	}
}

type bitCanvas struct {
	grid
	set  glyphSet
	bits [][]uint16
}

func (c *bitCanvas) setPixel(px, py float64, color Color) {
	col, row, dx, dy, ok := c.cell(px, py)
	if !ok {
		return
	}
	if c.bits == nil {
		c.bits = make([][]uint16, c.rows)
		for i := range c.bits {
			c.bits[i] = make([]uint16, c.cols)
		}
	}
	c.bits[row][col] |= c.set.bit(dx, dy)
	if color != NoColor {
		c.colors[row][col] = color
	}
}

func (c *bitCanvas) Point(x, y float64, color Color) {
	if !c.inLimits(x, y) {
		return
	}
	px, py := c.pixel(x, y)
	c.setPixel(px, py, color)
}

func (c *bitCanvas) Line(x1, y1, x2, y2 float64, color Color) {
	c.walk(x1, y1, x2, y2, func(px, py float64) {
		c.setPixel(px, py, color)
	})
}

func (c *bitCanvas) Row(i int, colored bool) string {
	var sb strings.Builder
	for j := 0; j < c.cols; j++ {
		var bits uint16
		if c.bits != nil {
			bits = c.bits[i][j]
		}
		sb.WriteString(c.colors[i][j].Paint(c.set.glyph(bits), colored))
	}
	return sb.String()
}

type densityCanvas struct {
	grid
	counts [][]int
	max    int
}

func (c *densityCanvas) hit(px, py float64, color Color) {
	col, row, _, _, ok := c.cell(px, py)
	if !ok {
		return
	}
	if c.counts == nil {
		c.counts = make([][]int, c.rows)
		for i := range c.counts {
			c.counts[i] = make([]int, c.cols)
		}
	}
	c.counts[row][col]++
	if c.counts[row][col] > c.max {
		c.max = c.counts[row][col]
	}
	if color != NoColor {
		c.colors[row][col] = color
	}
}

func (c *densityCanvas) Point(x, y float64, color Color) {
	if !c.inLimits(x, y) {
		return
	}
	px, py := c.pixel(x, y)
	c.hit(px, py, color)
}

func (c *densityCanvas) Line(x1, y1, x2, y2 float64, color Color) {
	c.walk(x1, y1, x2, y2, func(px, py float64) {
		c.hit(px, py, color)
	})
}

func (c *densityCanvas) Row(i int, colored bool) string {
	var sb strings.Builder
	top := len(densityGlyphs) - 1
	for j := 0; j < c.cols; j++ {
		n := 0
		if c.counts != nil {
			n = c.counts[i][j]
		}
		idx := 0
		if n > 0 {
			idx = int(math.Ceil(float64(n) / float64(c.max) * float64(top)))
		}
		sb.WriteString(c.colors[i][j].Paint(densityGlyphs[idx], colored))
	}
	return sb.String()
}
