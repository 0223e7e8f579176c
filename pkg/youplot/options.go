package youplot

import (
	"fmt"

	"github.com/red-data-tools/youplot-go/pkg/youplot/backends"
	"github.com/red-data-tools/youplot-go/pkg/youplot/dsv"
)

// ColorMode decides whether plots are drawn with ANSI colors.
type ColorMode string

const (
	// ColorAuto colors the plot when the output is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways always colors the plot.
	ColorAlways ColorMode = "always"
	// ColorNever never colors the plot.
	ColorNever ColorMode = "never"
)

// ParseColorMode validates a color mode name.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("invalid color mode: %s (must be auto, always, or never)", s)
}

// Stream names used by Pass and Output.
const (
	// StreamStdout sends the data to standard output.
	StreamStdout = "-"
)

// Options configures a run.
type Options struct {
	// Delimiter separates the fields of the input.
	Delimiter string
	// Headers is true when the first row (or column) holds the headers.
	Headers bool
	// Transpose reads the input column by column.
	Transpose bool
	// Format is the layout of x and y series.
	Format backends.Format
	// Pass relays the raw input. Empty disables it, "-" is standard output,
	// anything else is a file path.
	Pass string
	// Output is where the plot goes. Empty is standard error, "-" is
	// standard output, anything else is a file path.
	Output string
	// Progressive redraws the plot after every input line.
	Progressive bool
	// Encoding is the character encoding of the input. Empty means UTF-8.
	Encoding string
	// Reverse reverses the order of count plots.
	Reverse bool
	// ColorNames prints only the names in the colors command.
	ColorNames bool
	// Debug dumps the parsed table.
	Debug bool
	// Color decides whether plots are colored.
	Color ColorMode
	// Sheet selects the worksheet of an Excel input. Empty means the first.
	Sheet string
	// Range restricts an Excel input to a cell range such as "A1:C10".
	Range string
}

// DefaultOptions returns default run options.
func DefaultOptions() Options {
	return Options{
		Delimiter: dsv.DefaultDelimiter,
		Format:    backends.FormatXYY,
		Color:     ColorAuto,
	}
}

// Mode decides how errors are presented.
type Mode int

const (
	// ModeLibrary returns errors to the caller.
	ModeLibrary Mode = iota
	// ModeExecutable prints errors and exits the process.
	ModeExecutable
)

func (m Mode) String() string {
	if m == ModeExecutable {
		return "executable"
	}
	return "library"
}
