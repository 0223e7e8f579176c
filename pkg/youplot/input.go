package youplot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/red-data-tools/youplot-go/pkg/youplot/sheet"
)

var workbookExts = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// IsWorkbook reports whether path names an Excel workbook.
func IsWorkbook(path string) bool {
	return workbookExts[strings.ToLower(filepath.Ext(path))]
}

type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var first error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// OpenInputs returns the concatenation of the named files. Workbooks are
// converted to delimiter-separated text using the sheet and range of
// opts. With no paths, stdin is returned.
func OpenInputs(paths []string, stdin io.Reader, opts Options) (io.ReadCloser, error) {
	if len(paths) == 0 {
		return io.NopCloser(stdin), nil
	}

	m := &multiReadCloser{}
	readers := make([]io.Reader, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			m.Close()
			return nil, err
		}
		if !IsWorkbook(path) {
			m.closers = append(m.closers, f)
			readers = append(readers, f)
			continue
		}
		text, err := sheet.Read(f, opts.Delimiter, sheet.Options{Sheet: opts.Sheet, Range: opts.Range})
		f.Close()
		if err != nil {
			m.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		readers = append(readers, strings.NewReader(text))
	}
	m.Reader = io.MultiReader(readers...)
	return m, nil
}
