package backends

import (
	"errors"
	"fmt"
)

// ErrNoData indicates the input held no series to plot.
var ErrNoData = errors.New("no data to plot")

// InsufficientSeriesError is returned when a multi-series plot receives
// fewer than two series, which usually means the delimiter is wrong.
type InsufficientSeriesError struct {
	Headers []string
	// First and Last are the first and last raw values of the only series.
	First string
	Last  string
}

func (e *InsufficientSeriesError) Error() string {
	return fmt.Sprintf("there is only one series of input data. Please check the delimiter.\n\n"+
		"Headers: %s\nThe first item is: %q\nThe last item is : %q",
		formatHeaders(e.Headers), e.First, e.Last)
}

// NewInsufficientSeriesError creates a new InsufficientSeriesError.
func NewInsufficientSeriesError(headers []string, first, last string) *InsufficientSeriesError {
	return &InsufficientSeriesError{
		Headers: headers,
		First:   first,
		Last:    last,
	}
}

// OddSeriesCountError is returned when the xyxy format receives an odd
// number of series.
type OddSeriesCountError struct {
	Count   int
	Headers []string
}

func (e *OddSeriesCountError) Error() string {
	return fmt.Sprintf("in the xyxy format, the number of series must be even.\n\n"+
		"Number of series: %d\nHeaders: %s", e.Count, formatHeaders(e.Headers))
}

// NewOddSeriesCountError creates a new OddSeriesCountError.
func NewOddSeriesCountError(count int, headers []string) *OddSeriesCountError {
	return &OddSeriesCountError{
		Count:   count,
		Headers: headers,
	}
}

// UnsupportedFormatError is returned when a command cannot lay out its
// series in the requested format.
type UnsupportedFormatError struct {
	Format  Format
	Command string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format %q", e.Command, string(e.Format))
}

// NewUnsupportedFormatError creates a new UnsupportedFormatError.
func NewUnsupportedFormatError(format Format, command string) *UnsupportedFormatError {
	return &UnsupportedFormatError{
		Format:  format,
		Command: command,
	}
}

func formatHeaders(headers []string) string {
	if headers == nil {
		return "nil"
	}
	return fmt.Sprintf("%q", headers)
}
