package youplot

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/red-data-tools/youplot-go/pkg/youplot/backends"
	"github.com/red-data-tools/youplot-go/pkg/youplot/params"
)

type testRunner struct {
	*Runner
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	hook   *test.Hook
	exits  []int
}

func newTestRunner(t *testing.T, cmd Command, opts Options, input string) *testRunner {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	tr := &testRunner{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		hook:   hook,
	}
	r := NewRunner(cmd, opts, nil, ModeLibrary)
	r.Stdin = strings.NewReader(input)
	r.Stdout = tr.stdout
	r.Stderr = tr.stderr
	r.Logger = logger
	r.Exit = func(code int) { tr.exits = append(tr.exits, code) }
	tr.Runner = r
	return tr
}

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func csvOptions() Options {
	opts := DefaultOptions()
	opts.Delimiter = ","
	opts.Headers = true
	return opts
}

func TestRunPlotsToStderr(t *testing.T) {
	tr := newTestRunner(t, Count, DefaultOptions(), "apple\nbanana\napple\n")
	require.NoError(t, tr.Run(context.Background()))

	assert.Empty(t, tr.stdout.String())
	out := tr.stderr.String()
	assert.Contains(t, out, "apple")
	assert.Contains(t, out, "banana")
	assert.Less(t, strings.Index(out, "apple"), strings.Index(out, "banana"))
	assert.NotContains(t, out, "\x1b[")
}

func TestRunIrisCommands(t *testing.T) {
	input := readFixture(t, "iris.csv")

	tests := []struct {
		cmd   Command
		title string
	}{
		{Barplot, "IRIS-BARPLOT"},
		{Histogram, "IRIS-HISTOGRAM"},
		{Lineplot, "IRIS-LINEPLOT"},
		{Lineplots, "IRIS-LINEPLOTS"},
		{Scatter, "IRIS-SCATTER"},
		{Density, "IRIS-DENSITY"},
		{Boxplot, "IRIS-BOXPLOT"},
		{Count, "IRIS-COUNT"},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.String(), func(t *testing.T) {
			render := func() string {
				tr := newTestRunner(t, tt.cmd, csvOptions(), input)
				tr.Params = &params.Parameters{Title: params.Ptr(tt.title)}
				require.NoError(t, tr.Run(context.Background()))
				return tr.stderr.String()
			}

			first := render()
			assert.Contains(t, first, tt.title)
			assert.True(t, strings.HasSuffix(first, "\n"))
			assert.Equal(t, first, render())
		})
	}
}

func TestRunScatterLegend(t *testing.T) {
	tr := newTestRunner(t, Scatter, csvOptions(), readFixture(t, "iris.csv"))
	require.NoError(t, tr.Run(context.Background()))

	out := tr.stderr.String()
	for _, name := range []string{"sepal_width", "petal_length", "petal_width", "sepal_length"} {
		assert.Contains(t, out, name)
	}
}

func TestRunOutputToStdout(t *testing.T) {
	opts := DefaultOptions()
	opts.Output = StreamStdout
	tr := newTestRunner(t, Lineplot, opts, "1\n2\n3\n")
	require.NoError(t, tr.Run(context.Background()))

	assert.NotEmpty(t, tr.stdout.String())
	assert.Empty(t, tr.stderr.String())
}

func TestRunOutputToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.txt")
	opts := DefaultOptions()
	opts.Output = path
	tr := newTestRunner(t, Count, opts, "a\nb\nb\n")
	require.NoError(t, tr.Run(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "b")
	assert.Empty(t, tr.stderr.String())
	assert.Empty(t, tr.stdout.String())
}

func TestRunPassThrough(t *testing.T) {
	input := "x,y\n1,2\n3,4\n"

	t.Run("stdout", func(t *testing.T) {
		opts := csvOptions()
		opts.Pass = StreamStdout
		tr := newTestRunner(t, Scatter, opts, input)
		require.NoError(t, tr.Run(context.Background()))

		assert.Equal(t, input, tr.stdout.String())
		assert.NotEmpty(t, tr.stderr.String())
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pass.csv")
		opts := csvOptions()
		opts.Pass = path
		tr := newTestRunner(t, Scatter, opts, input)
		require.NoError(t, tr.Run(context.Background()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, input, string(data))
		assert.Empty(t, tr.stdout.String())
	})
}

func TestRunColorModes(t *testing.T) {
	tests := []struct {
		mode     ColorMode
		terminal bool
		want     bool
	}{
		{ColorAlways, false, true},
		{ColorNever, true, false},
		{ColorAuto, true, true},
		{ColorAuto, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Color = tt.mode
			tr := newTestRunner(t, Barplot, opts, "a\t1\nb\t2\n")
			tr.IsTerminal = func(io.Writer) bool { return tt.terminal }
			require.NoError(t, tr.Run(context.Background()))
			assert.Equal(t, tt.want, strings.Contains(tr.stderr.String(), "\x1b["))
		})
	}
}

func TestRunColors(t *testing.T) {
	opts := DefaultOptions()
	opts.ColorNames = true
	opts.Color = ColorNever
	tr := newTestRunner(t, Colors, opts, "")
	require.NoError(t, tr.Run(context.Background()))

	out := tr.stderr.String()
	assert.Contains(t, out, "red")
	assert.Contains(t, out, "light_blue")
	assert.NotContains(t, out, "●")
}

func TestRunProgressive(t *testing.T) {
	opts := DefaultOptions()
	opts.Progressive = true
	tr := newTestRunner(t, Count, opts, "a\nb\na\n")
	require.NoError(t, tr.Run(context.Background()))

	out := tr.stderr.String()
	assert.True(t, strings.HasPrefix(out, hideCursor))
	assert.True(t, strings.HasSuffix(out, showCursor))
	assert.Equal(t, 3, strings.Count(out, clearScreen))
	assert.Len(t, regexp.MustCompile(`\x1b\[\d+F`).FindAllString(out, -1), 2)
}

func TestRunProgressiveHeaders(t *testing.T) {
	opts := csvOptions()
	opts.Progressive = true
	opts.Pass = StreamStdout
	input := "fruit\napple\nbanana\n"
	tr := newTestRunner(t, Count, opts, input)
	require.NoError(t, tr.Run(context.Background()))

	out := tr.stderr.String()
	assert.Equal(t, 2, strings.Count(out, clearScreen))
	assert.Contains(t, out, "fruit")
	assert.Equal(t, input, tr.stdout.String())
}

func TestRunProgressiveStopsOnCancel(t *testing.T) {
	opts := DefaultOptions()
	opts.Progressive = true
	tr := newTestRunner(t, Count, opts, "a\nb\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, tr.Run(ctx))

	assert.Equal(t, hideCursor+showCursor, tr.stderr.String())
}

// cancelingReader yields one line per Read and cancels the run while
// handing out the second line.
type cancelingReader struct {
	lines  []string
	reads  int
	cancel context.CancelFunc
}

func (r *cancelingReader) Read(p []byte) (int, error) {
	if r.reads >= len(r.lines) {
		return 0, io.EOF
	}
	line := r.lines[r.reads]
	r.reads++
	if r.reads == 2 {
		r.cancel()
	}
	return copy(p, line), nil
}

func TestRunProgressiveStopsOnCancelMidStream(t *testing.T) {
	opts := DefaultOptions()
	opts.Progressive = true
	tr := newTestRunner(t, Count, opts, "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	in := &cancelingReader{lines: []string{"a\n", "b\n", "c\n"}, cancel: cancel}
	tr.Stdin = in
	require.NoError(t, tr.Run(ctx))

	assert.Equal(t, 2, in.reads)
	out := tr.stderr.String()
	require.True(t, strings.HasPrefix(out, hideCursor))
	assert.True(t, strings.HasSuffix(out, clearScreen+showCursor))
	assert.Equal(t, 2, strings.Count(out, clearScreen))
	assert.NotContains(t, out, "c ┤")

	first := out[len(hideCursor):strings.Index(out, clearScreen)]
	assert.Contains(t, first, "a ┤")
	assert.Contains(t, first, "└")
	assert.True(t, strings.HasSuffix(first, clearLine+"\n"))
}

func TestRunProgressiveRejectsFileOutput(t *testing.T) {
	opts := DefaultOptions()
	opts.Progressive = true
	opts.Output = filepath.Join(t.TempDir(), "plot.txt")
	tr := newTestRunner(t, Count, opts, "a\n")

	err := tr.Run(context.Background())
	assert.ErrorIs(t, err, ErrOutputNotStream)
}

func TestRunLibraryModeReturnsTypedError(t *testing.T) {
	tr := newTestRunner(t, Scatter, DefaultOptions(), "1\n2\n3\n")

	err := tr.Run(context.Background())
	var target *backends.InsufficientSeriesError
	require.True(t, errors.As(err, &target))
	assert.Empty(t, tr.exits)
	assert.Empty(t, tr.stderr.String())
}

func TestRunExecutableModeExits(t *testing.T) {
	tr := newTestRunner(t, Scatter, DefaultOptions(), "1\n2\n3\n")
	tr.Mode = ModeExecutable

	err := tr.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, []int{1}, tr.exits)
	assert.True(t, strings.HasPrefix(tr.stderr.String(), "uplot: there is only one series"))
}

func TestRunUnknownEncoding(t *testing.T) {
	opts := DefaultOptions()
	opts.Encoding = "klingon"
	tr := newTestRunner(t, Count, opts, "a\n")
	assert.Error(t, tr.Run(context.Background()))
}

func TestRunShiftJIS(t *testing.T) {
	opts := DefaultOptions()
	opts.Encoding = "shift_jis"
	tr := newTestRunner(t, Count, opts, string([]byte{0x82, 0xa0, '\n', 0x82, 0xa0, '\n'}))
	require.NoError(t, tr.Run(context.Background()))
	assert.Contains(t, tr.stderr.String(), "あ")
}

func TestRunDebugLogs(t *testing.T) {
	opts := DefaultOptions()
	opts.Debug = true
	tr := newTestRunner(t, Count, opts, "a\n")
	require.NoError(t, tr.Run(context.Background()))

	var messages []string
	for _, e := range tr.hook.AllEntries() {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, messages, "building plot")
}

func TestBuildUnknownCommand(t *testing.T) {
	_, err := Build(Command(99), nil, &params.Parameters{}, DefaultOptions())
	var target *UnrecognizedCommandError
	assert.True(t, errors.As(err, &target))
}
