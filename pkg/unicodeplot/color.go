package unicodeplot

import (
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Color is a terminal color: 1 + a 256-color code, or 0 for the terminal
// default.
type Color uint16

// NoColor leaves the text in the terminal's default color.
const NoColor Color = 0

var colorNames = map[string]Color{
	"normal":        NoColor,
	"black":         1,
	"red":           2,
	"green":         3,
	"yellow":        4,
	"blue":          5,
	"magenta":       6,
	"cyan":          7,
	"white":         8,
	"light_black":   9,
	"light_red":     10,
	"light_green":   11,
	"light_yellow":  12,
	"light_blue":    13,
	"light_magenta": 14,
	"light_cyan":    15,
	"light_white":   16,
}

// autoColors is the order in which series are colored.
var autoColors = []Color{
	colorNames["blue"],
	colorNames["red"],
	colorNames["green"],
	colorNames["magenta"],
	colorNames["yellow"],
	colorNames["cyan"],
}

// ParseColor resolves a color name or a 256-color code ("0" to "255").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[s]; ok {
		return c, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return NoColor, argumentErrorf("color code must be between 0 and 255: %d", n)
		}
		return Color(n + 1), nil
	}
	return NoColor, argumentErrorf("unknown color: %q (available: %s)", s, strings.Join(ColorNames(), ", "))
}

// ColorNames returns the known color names in code order.
func ColorNames() []string {
	names := make([]string, 0, len(colorNames))
	for name := range colorNames {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci, cj := colorNames[names[i]], colorNames[names[j]]
		if ci != cj {
			return ci < cj
		}
		return names[i] < names[j]
	})
	return names
}

func (c Color) attributes() []color.Attribute {
	if c == NoColor {
		return nil
	}
	code := int(c) - 1
	switch {
	case code < 8:
		return []color.Attribute{color.FgBlack + color.Attribute(code)}
	case code < 16:
		return []color.Attribute{color.FgHiBlack + color.Attribute(code-8)}
	default:
		return []color.Attribute{38, 5, color.Attribute(code)}
	}
}

// Paint wraps s in the escape sequences for c when enabled is true.
func (c Color) Paint(s string, enabled bool) string {
	if !enabled || c == NoColor || s == "" {
		return s
	}
	p := color.New(c.attributes()...)
	p.EnableColor()
	return p.Sprint(s)
}
