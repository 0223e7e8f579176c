package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/red-data-tools/youplot-go/pkg/youplot/models"
)

// printAreas returns the print areas defined in a workbook, by sheet name.
func printAreas(f *excelize.File) map[string][]models.Area {
	result := make(map[string][]models.Area)

	for _, dn := range f.GetDefinedName() {
		if strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			sheetName, areas := parsePrintAreaReference(dn.RefersTo)
			if sheetName != "" && len(areas) > 0 {
				result[sheetName] = append(result[sheetName], areas...)
			}
		}
	}

	return result
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []models.Area) {
	var areas []models.Area
	var sheetName string

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		sheet := strings.Trim(part[:idx], "'")
		if sheetName == "" {
			sheetName = sheet
		}
		if area, err := ParseRange(part[idx+1:]); err == nil {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// ParseRange parses a range such as "A1:D10" or "$A$1:$D$10". A single
// cell selects just that cell.
func ParseRange(s string) (models.Area, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "$", "")

	parts := strings.Split(s, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.Area{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Area{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Area{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return models.Area{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}

// dataBounds finds the bounding box of non-empty cells. ok is false when
// every cell is empty.
func dataBounds(rows [][]string) (area models.Area, ok bool) {
	minRow, maxRow, minCol, maxCol := -1, -1, -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}
	if minRow < 0 {
		return models.Area{}, false
	}

	return models.Area{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// crop returns the cells of rows inside area. Trailing empty cells of each
// row are dropped so short rows stay short.
func crop(rows [][]string, area models.Area) [][]string {
	var result [][]string
	for r := area.R1; r <= area.R2; r++ {
		var out []string
		if r-1 < len(rows) {
			row := rows[r-1]
			for c := area.C1; c <= area.C2; c++ {
				cell := ""
				if c-1 < len(row) {
					cell = row[c-1]
				}
				out = append(out, cell)
			}
		}
		for len(out) > 0 && out[len(out)-1] == "" {
			out = out[:len(out)-1]
		}
		if len(out) == 0 {
			out = nil
		}
		result = append(result, out)
	}
	return result
}
