// Package sheet reads Excel worksheets as delimiter-separated text.
package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Options selects what part of a workbook is read.
type Options struct {
	// Sheet is the worksheet name. Empty selects the first sheet.
	Sheet string
	// Range restricts the cells read, such as "A1:C10". If empty, the
	// sheet's print area is used, or else the bounding box of its data.
	Range string
}

// ReadRows reads the selected cells of a workbook row by row.
func ReadRows(r io.Reader, opts Options) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, NewReadError("", "workbook", err)
	}
	defer f.Close()

	sheetName, err := selectSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, NewReadError(sheetName, "rows", err)
	}

	if opts.Range != "" {
		area, err := ParseRange(opts.Range)
		if err != nil {
			return nil, NewReadError(sheetName, "range", err)
		}
		return crop(rows, area), nil
	}
	if areas := printAreas(f)[sheetName]; len(areas) > 0 {
		return crop(rows, areas[0]), nil
	}
	area, ok := dataBounds(rows)
	if !ok {
		return nil, nil
	}
	return crop(rows, area), nil
}

func selectSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if name == "" {
		if len(sheets) == 0 {
			return "", NewReadError("", "workbook", ErrSheetNotFound)
		}
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}
	return "", NewReadError(name, "workbook", fmt.Errorf("%w (available: %s)", ErrSheetNotFound, strings.Join(sheets, ", ")))
}

// ToDSV writes rows as delimiter-separated text, quoting fields as needed.
func ToDSV(rows [][]string, delimiter string) (string, error) {
	comma, size := utf8.DecodeRuneInString(delimiter)
	if size == 0 || size != len(delimiter) {
		return "", NewReadError("", "dsv", fmt.Errorf("delimiter must be a single character: %q", delimiter))
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Comma = comma
	if err := w.WriteAll(rows); err != nil {
		return "", NewReadError("", "dsv", err)
	}
	return sb.String(), nil
}

// Read reads the selected cells of a workbook and returns them as
// delimiter-separated text.
func Read(r io.Reader, delimiter string, opts Options) (string, error) {
	rows, err := ReadRows(r, opts)
	if err != nil {
		return "", err
	}
	return ToDSV(rows, delimiter)
}
