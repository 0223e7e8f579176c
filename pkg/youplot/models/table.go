package models

// Table is the header/series structure produced from one chunk of input.
type Table struct {
	// Headers holds one label per series. It is nil when the input has no
	// header row.
	Headers []string `json:"headers"`
	// Series holds the columns of the input, each a slice of raw cells.
	Series [][]Cell `json:"series"`
}

// HasHeaders reports whether a header row was supplied.
func (t *Table) HasHeaders() bool {
	return t.Headers != nil
}

// Header returns the i-th header and whether it exists.
func (t *Table) Header(i int) (string, bool) {
	if t.Headers == nil || i < 0 || i >= len(t.Headers) {
		return "", false
	}
	return t.Headers[i], true
}
