// Package models defines the data structures shared by the youplot pipeline.
package models

import (
	"errors"
	"strconv"
	"strings"
)

// Cell is a single raw value read from the input.
type Cell struct {
	// Value is the text of the cell as it appeared in the input.
	Value string `json:"value"`
	// Valid is false for cells that were padded in because a row was
	// shorter than the longest row.
	Valid bool `json:"valid"`
}

// Null is the marker stored for missing cells of ragged rows.
var Null = Cell{}

// NewCell returns a present cell holding s.
func NewCell(s string) Cell {
	return Cell{Value: s, Valid: true}
}

// Cells wraps each string of a row as a present cell.
func Cells(row []string) []Cell {
	cells := make([]Cell, len(row))
	for i, s := range row {
		cells[i] = NewCell(s)
	}
	return cells
}

// IsBlank reports whether the cell is null or holds an empty string.
func (c Cell) IsBlank() bool {
	return !c.Valid || c.Value == ""
}

// String returns the cell text, or "" for a null cell.
func (c Cell) String() string {
	return c.Value
}

// Float converts the cell to a number. Like a lenient atof, it reads the
// longest numeric prefix and yields 0 when there is none. Values too large
// for a float64 become ±Inf.
func (c Cell) Float() float64 {
	if !c.Valid {
		return 0
	}
	s := strings.TrimSpace(c.Value)
	if n := numericPrefix(s); n > 0 {
		f, err := strconv.ParseFloat(s[:n], 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return f
		}
	}
	return 0
}

// Floats converts a column with Float.
func Floats(column []Cell) []float64 {
	values := make([]float64, len(column))
	for i, c := range column {
		values[i] = c.Float()
	}
	return values
}

// numericPrefix returns the length of the longest prefix of s that looks
// like a decimal number (sign, digits, fraction, exponent).
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if frac > 0 || digits > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}
	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
