package youplot

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ErrOutputNotStream indicates progressive mode was asked to draw into a
// file.
var ErrOutputNotStream = errors.New("in progressive mode, output to a file is not possible")

// UnrecognizedCommandError is returned for an unknown command name.
type UnrecognizedCommandError struct {
	Name string
}

func (e *UnrecognizedCommandError) Error() string {
	return fmt.Sprintf("unrecognized command: %q", e.Name)
}

// NewUnrecognizedCommandError creates a new UnrecognizedCommandError.
func NewUnrecognizedCommandError(name string) *UnrecognizedCommandError {
	return &UnrecognizedCommandError{Name: name}
}

// PrintError writes err to w for a person to read, in magenta when colored
// is true.
func PrintError(w io.Writer, err error, colored bool) {
	c := color.New(color.FgMagenta)
	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	c.Fprintf(w, "uplot: %v\n", err)
}

// fail presents err according to the mode. In executable mode the error
// is printed and exit is called with status 1; the error is returned in
// either case so callers that survive exit still see it.
func (m Mode) fail(err error, stderr io.Writer, colored bool, exit func(int)) error {
	if err == nil || m != ModeExecutable {
		return err
	}
	PrintError(stderr, err, colored)
	exit(1)
	return err
}
