package sheet

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrInvalidRange indicates a cell range that cannot be parsed.
var ErrInvalidRange = errors.New("invalid cell range")

// ReadError represents an error while reading a worksheet.
type ReadError struct {
	SheetName string
	Component string // "workbook", "rows", "range", "dsv"
	Err       error
}

func (e *ReadError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("read error (%s): %v", e.Component, e.Err)
	}
	return fmt.Sprintf("read error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new ReadError.
func NewReadError(sheetName, component string, err error) *ReadError {
	return &ReadError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
