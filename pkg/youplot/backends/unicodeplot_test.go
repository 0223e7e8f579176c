package backends

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/red-data-tools/youplot-go/pkg/unicodeplot"
	"github.com/red-data-tools/youplot-go/pkg/youplot/dsv"
	"github.com/red-data-tools/youplot-go/pkg/youplot/models"
	"github.com/red-data-tools/youplot-go/pkg/youplot/params"
)

func parse(t *testing.T, input string, headers bool) *models.Table {
	t.Helper()
	table, err := dsv.Parse(input, dsv.Options{Delimiter: ",", Headers: headers})
	require.NoError(t, err)
	return table
}

func renderLines(t *testing.T, r unicodeplot.Renderer) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf))
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestOptions(t *testing.T) {
	o := Options(&params.Parameters{
		Title: params.Ptr("t"),
		Width: params.Ptr(20),
		XLim:  params.Ptr([2]float64{0, 5}),
		Grid:  params.Ptr(false),
	})
	assert.Equal(t, "t", o.Title)
	assert.Equal(t, 20, o.Width)
	assert.Equal(t, 15, o.Height)
	assert.Equal(t, [2]float64{0, 5}, o.XLim)
	require.NotNil(t, o.Grid)
	assert.False(t, *o.Grid)

	assert.Equal(t, unicodeplot.DefaultOptions(), Options(nil))
}

func TestLineSingleSeries(t *testing.T) {
	table := parse(t, "5\n3\n8\n", false)
	p := &params.Parameters{}

	plot, err := Line(table, p, "")
	require.NoError(t, err)

	lines := renderLines(t, plot)
	assert.Equal(t, []string{"1", "3"}, strings.Fields(lines[len(lines)-1]))
	assert.Nil(t, p.YLabel)
}

func TestLineSingleSeriesHeader(t *testing.T) {
	table := parse(t, "price\n5\n3\n", true)
	p := &params.Parameters{}

	_, err := Line(table, p, "")
	require.NoError(t, err)
	require.NotNil(t, p.YLabel)
	assert.Equal(t, "price", *p.YLabel)
}

func TestLineTwoSeries(t *testing.T) {
	tests := []struct {
		format Format
		xlabel string
		ylabel string
	}{
		{FormatXY, "a", "b"},
		{"", "a", "b"},
		{FormatYX, "b", "a"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			table := parse(t, "a,b\n1,2\n3,4\n", true)
			p := &params.Parameters{}

			_, err := Line(table, p, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.xlabel, *p.XLabel)
			assert.Equal(t, tt.ylabel, *p.YLabel)
		})
	}
}

func TestBarplot(t *testing.T) {
	table := parse(t, "name,score\nfoo,3\nbar,5\n", true)

	p := &params.Parameters{}
	_, err := Barplot(table, p, "")
	require.NoError(t, err)
	assert.Equal(t, "score", *p.Title)

	p = &params.Parameters{}
	_, err = Barplot(parse(t, "score,name\n3,foo\n5,bar\n", true), p, FormatYX)
	require.NoError(t, err)
	assert.Equal(t, "score", *p.Title)
}

func TestBarplotKeepsExplicitTitle(t *testing.T) {
	table := parse(t, "name,score\nfoo,3\n", true)
	p := &params.Parameters{Title: params.Ptr("mine")}

	_, err := Barplot(table, p, "")
	require.NoError(t, err)
	assert.Equal(t, "mine", *p.Title)
}

func TestBarplotSingleSeries(t *testing.T) {
	table := parse(t, "3\n5\n", false)
	p := &params.Parameters{Width: params.Ptr(10), Margin: params.Ptr(0)}

	plot, err := Barplot(table, p, "")
	require.NoError(t, err)
	lines := renderLines(t, plot)
	assert.True(t, strings.HasPrefix(lines[1], "1 ┤"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "2 ┤"), lines[2])
	assert.Nil(t, p.Title)
}

func TestBarplotNegative(t *testing.T) {
	_, err := Barplot(parse(t, "a,-1\n", false), &params.Parameters{}, "")
	var argErr *unicodeplot.ArgumentError
	assert.True(t, errors.As(err, &argErr))
}

func TestCount(t *testing.T) {
	table := parse(t, "fruit\napple\nbanana\napple\ncherry\napple\nbanana\n", true)
	p := &params.Parameters{Margin: params.Ptr(0), Width: params.Ptr(20)}

	plot, err := Count(table, p, false)
	require.NoError(t, err)
	assert.Equal(t, "fruit", *p.Title)

	lines := renderLines(t, plot)
	require.Len(t, lines, 6)
	assert.True(t, strings.HasSuffix(lines[2], " 3"), lines[2])
	assert.True(t, strings.HasPrefix(strings.TrimLeft(lines[2], " "), "apple "), lines[2])
	assert.True(t, strings.HasPrefix(strings.TrimLeft(lines[3], " "), "banana "), lines[3])
	assert.True(t, strings.HasPrefix(strings.TrimLeft(lines[4], " "), "cherry "), lines[4])
}

func TestHistogramTitle(t *testing.T) {
	p := &params.Parameters{}
	_, err := Histogram(parse(t, "v\n1\n2\n3\n", true), p)
	require.NoError(t, err)
	assert.Equal(t, "v", *p.Title)
}

func TestScatterXYYDefaults(t *testing.T) {
	table := parse(t, "x,y1,y2\n1,10,-5\n2,20,0\n3,30,7\n", true)
	p := &params.Parameters{}

	plot, err := Scatter(table, p, FormatXYY)
	require.NoError(t, err)
	assert.Equal(t, "y1", *p.Name)
	assert.Equal(t, "x", *p.XLabel)
	assert.Equal(t, [2]float64{1, 3}, *p.XLim)
	assert.Equal(t, [2]float64{-5, 30}, *p.YLim)
	assert.Equal(t, 2, plot.Series())
}

func TestLinesXYXYDefaults(t *testing.T) {
	table := parse(t, "x1,y1,x2,y2\n1,10,5,-1\n2,20,6,2\n", true)
	p := &params.Parameters{}

	plot, err := Lines(table, p, FormatXYXY)
	require.NoError(t, err)
	assert.Equal(t, "x1", *p.Name)
	assert.Equal(t, [2]float64{1, 6}, *p.XLim)
	assert.Equal(t, [2]float64{-1, 20}, *p.YLim)
	assert.Equal(t, 2, plot.Series())

	lines := renderLines(t, plot)
	assert.True(t, strings.HasSuffix(lines[1], "│ x1"), lines[1])
	assert.True(t, strings.HasSuffix(lines[2], "│ x2"), lines[2])
}

func TestDensityKeepsExplicitLimits(t *testing.T) {
	table := parse(t, "1,2\n3,4\n", false)
	p := &params.Parameters{XLim: params.Ptr([2]float64{0, 10})}

	_, err := Density(table, p, FormatXYY)
	require.NoError(t, err)
	assert.Equal(t, [2]float64{0, 10}, *p.XLim)
	assert.Equal(t, [2]float64{2, 4}, *p.YLim)
	assert.Nil(t, p.Name)
}

func TestMultiSeriesErrors(t *testing.T) {
	plotters := map[string]func(*models.Table, *params.Parameters, Format) (*unicodeplot.Plot, error){
		"lineplots": Lines,
		"scatter":   Scatter,
		"density":   Density,
	}

	for name, plot := range plotters {
		t.Run(name, func(t *testing.T) {
			for _, format := range []Format{FormatXYY, FormatXYXY, FormatYX} {
				_, err := plot(parse(t, "a;b\n1;2\n3;4\n", true), &params.Parameters{}, format)
				var insufficient *InsufficientSeriesError
				require.True(t, errors.As(err, &insufficient), format)
				assert.Equal(t, []string{"a;b"}, insufficient.Headers)
				assert.Equal(t, "1;2", insufficient.First)
				assert.Equal(t, "3;4", insufficient.Last)
			}

			_, err := plot(parse(t, "1,2,3\n4,5,6\n", false), &params.Parameters{}, FormatXYXY)
			var odd *OddSeriesCountError
			require.True(t, errors.As(err, &odd))
			assert.Equal(t, 3, odd.Count)

			for _, format := range []Format{FormatYX, "zz"} {
				_, err = plot(parse(t, "1,2\n3,4\n", false), &params.Parameters{}, format)
				var unsupported *UnsupportedFormatError
				require.True(t, errors.As(err, &unsupported))
				assert.Equal(t, format, unsupported.Format)
				assert.Equal(t, name, unsupported.Command)
			}
		})
	}
}

func TestBoxplotPositionalLabels(t *testing.T) {
	table := parse(t, "1,10\n2,20\n3,30\n", false)

	plot, err := Boxplot(table, &params.Parameters{Margin: params.Ptr(0)})
	require.NoError(t, err)
	lines := renderLines(t, plot)
	assert.True(t, strings.HasPrefix(lines[2], "1"), lines[2])
	assert.True(t, strings.HasPrefix(lines[5], "2"), lines[5])
}

func TestNoData(t *testing.T) {
	empty := &models.Table{Series: [][]models.Cell{}}

	_, err := Barplot(empty, &params.Parameters{}, "")
	assert.ErrorIs(t, err, ErrNoData)
	_, err = Count(empty, &params.Parameters{}, false)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = Histogram(empty, &params.Parameters{})
	assert.ErrorIs(t, err, ErrNoData)
	_, err = Line(empty, &params.Parameters{}, "")
	assert.ErrorIs(t, err, ErrNoData)
	_, err = Boxplot(empty, &params.Parameters{})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestColors(t *testing.T) {
	lines := renderLines(t, Colors(true))
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "magenta\t")
	assert.NotContains(t, lines[0], "●")
}
