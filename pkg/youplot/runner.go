package youplot

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fsamin/go-dump"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/red-data-tools/youplot-go/pkg/unicodeplot"
	"github.com/red-data-tools/youplot-go/pkg/youplot/backends"
	"github.com/red-data-tools/youplot-go/pkg/youplot/dsv"
	"github.com/red-data-tools/youplot-go/pkg/youplot/models"
	"github.com/red-data-tools/youplot-go/pkg/youplot/params"
)

// Terminal control sequences used by progressive mode.
const (
	hideCursor   = "\x1b[?25l"
	showCursor   = "\x1b[?25h"
	clearLine    = "\x1b[0K"
	clearScreen  = "\x1b[0J"
	cursorUpLine = "\x1b[%dF"
)

// Runner reads the input, plots it and writes the result.
type Runner struct {
	Command Command
	Options Options
	Params  *params.Parameters
	Mode    Mode

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *logrus.Logger
	// Exit terminates the process in executable mode.
	Exit func(int)
	// IsTerminal reports whether w is a terminal.
	IsTerminal func(w io.Writer) bool
}

// NewRunner creates a runner wired to the process's standard streams.
func NewRunner(cmd Command, opts Options, p *params.Parameters, mode Mode) *Runner {
	if p == nil {
		p = &params.Parameters{}
	}
	return &Runner{
		Command:    cmd,
		Options:    opts,
		Params:     p,
		Mode:       mode,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Logger:     NewLogger(os.Stderr, opts.Debug),
		Exit:       os.Exit,
		IsTerminal: isTerminal,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run executes the command. Errors are returned in library mode and
// printed before exiting in executable mode.
func (r *Runner) Run(ctx context.Context) error {
	err := r.run(ctx)
	return r.Mode.fail(err, r.Stderr, r.IsTerminal(r.Stderr), r.Exit)
}

func (r *Runner) run(ctx context.Context) (err error) {
	if r.Options.Progressive && !isStream(r.Options.Output) {
		return ErrOutputNotStream
	}

	out, closeOut, err := r.openSink(r.Options.Output, r.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	colored := r.colorEnabled(out)

	if r.Command == Colors {
		table := backends.Colors(r.Options.ColorNames)
		table.SetColorOutput(colored)
		return table.Render(out)
	}

	var pass io.Writer
	if r.Options.Pass != "" {
		w, closePass, err := r.openSink(r.Options.Pass, r.Stdout)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := closePass(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		pass = w
	}

	if r.Options.Progressive {
		return r.runProgressive(ctx, out, pass, colored)
	}
	return r.runBatch(out, pass, colored)
}

func isStream(dest string) bool {
	return dest == "" || dest == StreamStdout
}

// openSink resolves a destination: "" is def, "-" is stdout and anything
// else is a file created for this run.
func (r *Runner) openSink(dest string, def io.Writer) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	switch dest {
	case "":
		return def, noop, nil
	case StreamStdout:
		return r.Stdout, noop, nil
	}
	f, err := os.Create(dest)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", dest, err)
	}
	return f, f.Close, nil
}

func (r *Runner) colorEnabled(out io.Writer) bool {
	switch r.Options.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return r.IsTerminal(out)
}

func (r *Runner) runBatch(out, pass io.Writer, colored bool) error {
	input, err := io.ReadAll(r.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if pass != nil {
		if _, err := pass.Write(input); err != nil {
			return fmt.Errorf("failed to pass input through: %w", err)
		}
	}

	plot, err := r.plot(input, r.Params)
	if err != nil {
		return err
	}
	plot.SetColorOutput(colored)
	return plot.Render(out)
}

func (r *Runner) runProgressive(ctx context.Context, out, pass io.Writer, colored bool) error {
	io.WriteString(out, hideCursor)
	defer io.WriteString(out, showCursor)

	reader := bufio.NewReader(r.Stdin)
	var buf bytes.Buffer
	drawn := 0
	first := true
	for ctx.Err() == nil {
		line, readErr := reader.ReadString('\n')
		if line != "" {
			if pass != nil {
				if _, err := io.WriteString(pass, line); err != nil {
					return fmt.Errorf("failed to pass input through: %w", err)
				}
			}
			buf.WriteString(line)
			// A lone header row has nothing to plot yet.
			if first && r.Options.Headers {
				first = false
				r.Logger.Debug("waiting for the first data line")
				continue
			}
			first = false

			n, err := r.redraw(out, buf.Bytes(), drawn, colored)
			if err != nil {
				return err
			}
			drawn = n
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("failed to read input: %w", readErr)
		}
	}
	if ctx.Err() != nil {
		r.Logger.WithField("lines", drawn).Debug("progressive mode interrupted")
	}
	return nil
}

// redraw plots input over the previous frame of drawn lines and returns
// the number of lines of the new frame.
func (r *Runner) redraw(out io.Writer, input []byte, drawn int, colored bool) (int, error) {
	plot, err := r.plot(input, r.Params.Clone())
	if err != nil {
		return drawn, err
	}
	plot.SetColorOutput(colored)

	var frame bytes.Buffer
	if err := plot.Render(&frame); err != nil {
		return drawn, err
	}
	lines := strings.Split(strings.TrimSuffix(frame.String(), "\n"), "\n")

	var sb strings.Builder
	if drawn > 0 {
		fmt.Fprintf(&sb, cursorUpLine, drawn)
	}
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString(clearLine)
		sb.WriteString("\n")
	}
	sb.WriteString(clearScreen)
	if _, err := io.WriteString(out, sb.String()); err != nil {
		return drawn, err
	}
	return len(lines), nil
}

// plot parses one chunk of input and builds its plot with p.
func (r *Runner) plot(input []byte, p *params.Parameters) (unicodeplot.Renderer, error) {
	text, err := decode(input, r.Options.Encoding)
	if err != nil {
		return nil, err
	}
	table, err := dsv.Parse(text, dsv.Options{
		Delimiter: r.Options.Delimiter,
		Headers:   r.Options.Headers,
		Transpose: r.Options.Transpose,
		Logger:    r.Logger,
	})
	if err != nil {
		return nil, err
	}
	if r.Options.Debug {
		if err := dump.Fdump(r.Stderr, table); err != nil {
			r.Logger.WithError(err).Warn("failed to dump the parsed table")
		}
	}
	r.Logger.WithFields(logrus.Fields{
		"command": r.Command.String(),
		"series":  len(table.Series),
	}).Debug("building plot")
	return Build(r.Command, table, p, r.Options)
}

// Build dispatches a parsed table to the plot function of cmd.
func Build(cmd Command, t *models.Table, p *params.Parameters, opts Options) (unicodeplot.Renderer, error) {
	switch cmd {
	case Barplot:
		return renderer(backends.Barplot(t, p, opts.Format))
	case Count:
		return renderer(backends.Count(t, p, opts.Reverse))
	case Histogram:
		return renderer(backends.Histogram(t, p))
	case Lineplot:
		return renderer(backends.Line(t, p, opts.Format))
	case Lineplots:
		return renderer(backends.Lines(t, p, opts.Format))
	case Scatter:
		return renderer(backends.Scatter(t, p, opts.Format))
	case Density:
		return renderer(backends.Density(t, p, opts.Format))
	case Boxplot:
		return renderer(backends.Boxplot(t, p))
	case Colors:
		return backends.Colors(opts.ColorNames), nil
	}
	return nil, NewUnrecognizedCommandError(cmd.String())
}

func renderer(p *unicodeplot.Plot, err error) (unicodeplot.Renderer, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}
