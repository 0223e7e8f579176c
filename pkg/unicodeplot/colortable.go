package unicodeplot

import (
	"io"
	"strings"
)

// ColorTable lists the named colors, each painted in itself.
type ColorTable struct {
	// NamesOnly omits the sample dot after each name.
	NamesOnly   bool
	ColorOutput bool
}

// SetColorOutput toggles ANSI escape sequences in the output.
func (t *ColorTable) SetColorOutput(on bool) {
	t.ColorOutput = on
}

// Render writes the table to w on a single line.
func (t *ColorTable) Render(w io.Writer) error {
	var sb strings.Builder
	for _, name := range ColorNames() {
		s := name
		if !t.NamesOnly {
			s += "\t  ●"
		}
		sb.WriteString(colorNames[name].Paint(s, t.ColorOutput))
		sb.WriteString("\t")
	}
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
