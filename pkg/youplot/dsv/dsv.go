// Package dsv reads delimiter-separated values into a header/series table.
package dsv

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/red-data-tools/youplot-go/pkg/youplot/models"
)

// DefaultDelimiter separates fields when no delimiter is given.
const DefaultDelimiter = "\t"

// Options configures parsing.
type Options struct {
	// Delimiter is the field separator. It must be a single character.
	Delimiter string
	// Headers specifies that the input has a header row
	// (a header column when Transpose is set).
	Headers bool
	// Transpose swaps rows and columns.
	Transpose bool
	// Logger receives non-fatal warnings. If nil, the logrus standard
	// logger is used.
	Logger logrus.FieldLogger
}

// Parse splits input into headers and series.
func Parse(input string, opts Options) (*models.Table, error) {
	rows, err := ReadRows(input, opts.Delimiter)
	if err != nil {
		return nil, err
	}
	rows = dropBlankRows(rows)

	headers := Headers(rows, opts.Headers, opts.Transpose)
	series := Series(rows, opts.Headers, opts.Transpose)

	table := &models.Table{Headers: headers, Series: series}
	if headers == nil {
		return table, nil
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	for i, h := range headers {
		if h == "" {
			logger.WithField("column", i+1).Warn(`Headers contains "" in it.`)
			break
		}
	}

	if len(headers) != len(series) {
		return nil, NewHeaderSeriesMismatchError(len(headers), len(series))
	}
	return table, nil
}

// ReadRows tokenizes input into rows of cells. Quoted fields may contain
// the delimiter or newlines, and a doubled quote is a literal quote.
func ReadRows(input, delimiter string) ([][]models.Cell, error) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	comma, size := utf8.DecodeRuneInString(delimiter)
	if size != len(delimiter) || comma == utf8.RuneError {
		return nil, NewMalformedInputError(delimiter, errors.New("delimiter must be a single character"))
	}

	r := csv.NewReader(strings.NewReader(input))
	r.Comma = comma
	r.FieldsPerRecord = -1

	var rows [][]models.Cell
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, NewMalformedInputError(delimiter, err)
		}
		rows = append(rows, models.Cells(record))
	}
	return rows, nil
}

// dropBlankRows removes rows in which every cell is blank.
func dropBlankRows(rows [][]models.Cell) [][]models.Cell {
	kept := rows[:0:0]
	for _, row := range rows {
		blank := true
		for _, c := range row {
			if !c.IsBlank() {
				blank = false
				break
			}
		}
		if !blank {
			kept = append(kept, row)
		}
	}
	return kept
}

// Transpose pivots rows into columns. Rows may differ in length; missing
// cells are filled with models.Null so every column is as long as the
// number of rows, and there are as many columns as the longest row has
// cells.
func Transpose(rows [][]models.Cell) [][]models.Cell {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	columns := make([][]models.Cell, width)
	for i := range columns {
		column := make([]models.Cell, len(rows))
		for j, row := range rows {
			if i < len(row) {
				column[j] = row[i]
			} else {
				column[j] = models.Null
			}
		}
		columns[i] = column
	}
	return columns
}

// Headers extracts the header labels from rows.
// It returns nil when the input has no header.
func Headers(rows [][]models.Cell, headers, transpose bool) []string {
	if !headers {
		return nil
	}
	if transpose {
		labels := make([]string, len(rows))
		for i, row := range rows {
			if len(row) > 0 {
				labels[i] = row[0].Value
			}
		}
		return labels
	}
	if len(rows) == 0 {
		return []string{}
	}
	labels := make([]string, len(rows[0]))
	for i, c := range rows[0] {
		labels[i] = c.Value
	}
	return labels
}

// Series extracts the data columns from rows.
func Series(rows [][]models.Cell, headers, transpose bool) [][]models.Cell {
	if !headers {
		if transpose {
			return rows
		}
		return Transpose(rows)
	}

	// A header without any data yields one empty series per header.
	if len(rows) == 1 {
		n := len(rows[0])
		if transpose {
			n = 1
		}
		series := make([][]models.Cell, n)
		for i := range series {
			series[i] = []models.Cell{}
		}
		return series
	}

	if transpose {
		series := make([][]models.Cell, len(rows))
		for i, row := range rows {
			if len(row) == 0 {
				series[i] = []models.Cell{}
				continue
			}
			series[i] = row[1:]
		}
		return series
	}
	if len(rows) == 0 {
		return [][]models.Cell{}
	}
	return Transpose(rows[1:])
}
