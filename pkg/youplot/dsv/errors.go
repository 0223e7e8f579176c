package dsv

import (
	"fmt"
)

// MalformedInputError is returned when the input cannot be tokenized as
// delimiter-separated values.
type MalformedInputError struct {
	Delimiter string
	Err       error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("failed to parse the text (delimiter %q): %v", e.Delimiter, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// NewMalformedInputError creates a new MalformedInputError.
func NewMalformedInputError(delimiter string, err error) *MalformedInputError {
	return &MalformedInputError{
		Delimiter: delimiter,
		Err:       err,
	}
}

// HeaderSeriesMismatchError is returned when the number of headers differs
// from the number of series.
type HeaderSeriesMismatchError struct {
	Headers int
	Series  int
}

func (e *HeaderSeriesMismatchError) Error() string {
	rel := "less"
	if e.Headers > e.Series {
		rel = "greater"
	}
	return fmt.Sprintf("the number of headers is %s than the number of series (headers: %d, series: %d)",
		rel, e.Headers, e.Series)
}

// NewHeaderSeriesMismatchError creates a new HeaderSeriesMismatchError.
func NewHeaderSeriesMismatchError(headers, series int) *HeaderSeriesMismatchError {
	return &HeaderSeriesMismatchError{
		Headers: headers,
		Series:  series,
	}
}
