package unicodeplot

import (
	"sort"
	"strings"
)

// Border is the set of characters drawn around a plot.
type Border struct {
	TL, T, TR, L, R, BL, B, BR string
}

var borders = map[string]Border{
	"solid":   {"┌", "─", "┐", "│", "│", "└", "─", "┘"},
	"corners": {"┌", " ", "┐", " ", " ", "└", " ", "┘"},
	"barplot": {"┌", " ", "┐", "┤", " ", "└", " ", "┘"},
	"bold":    {"┏", "━", "┓", "┃", "┃", "┗", "━", "┛"},
	"dashed":  {"┌", "╌", "┐", "╎", "╎", "└", "╌", "┘"},
	"dotted":  {"⡤", "⠤", "⢤", "⡇", "⢸", "⠓", "⠒", "⠚"},
	"ascii":   {"+", "-", "+", "|", "|", "+", "-", "+"},
	"none":    {" ", " ", " ", " ", " ", " ", " ", " "},
}

// BorderNames returns the available border styles.
func BorderNames() []string {
	names := make([]string, 0, len(borders))
	for name := range borders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupBorder(name string) (Border, error) {
	b, ok := borders[name]
	if !ok {
		return Border{}, argumentErrorf("unknown border: %q (available: %s)", name, strings.Join(BorderNames(), ", "))
	}
	return b, nil
}
