package backends

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/red-data-tools/youplot-go/pkg/youplot/models"
)

func cells(vals ...string) []models.Cell {
	return models.Cells(vals)
}

func TestCountValues(t *testing.T) {
	tests := []struct {
		name           string
		column         []models.Cell
		reverse        bool
		expectedLabels []string
		expectedCounts []int
	}{
		{
			name:           "descending by count",
			column:         cells("a", "a", "a", "b", "b", "c"),
			expectedLabels: []string{"a", "b", "c"},
			expectedCounts: []int{3, 2, 1},
		},
		{
			name:           "order of appearance is irrelevant",
			column:         cells("a", "b", "b", "c", "c", "c"),
			expectedLabels: []string{"c", "b", "a"},
			expectedCounts: []int{3, 2, 1},
		},
		{
			name:           "ties broken by label",
			column:         cells("b", "c", "a", "c", "b", "a"),
			expectedLabels: []string{"a", "b", "c"},
			expectedCounts: []int{2, 2, 2},
		},
		{
			name:           "reverse after sorting",
			column:         cells("b", "c", "a", "c", "b", "a", "d"),
			reverse:        true,
			expectedLabels: []string{"d", "c", "b", "a"},
			expectedCounts: []int{1, 2, 2, 2},
		},
		{
			name:           "null before empty string",
			column:         []models.Cell{models.NewCell(""), models.Null},
			expectedLabels: []string{"", ""},
			expectedCounts: []int{1, 1},
		},
		{
			name:           "empty",
			column:         nil,
			expectedLabels: []string{},
			expectedCounts: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels, counts := CountValues(tt.column, tt.reverse)
			assert.Equal(t, tt.expectedLabels, labels)
			assert.Equal(t, tt.expectedCounts, counts)
		})
	}
}

func TestCountValuesReverseIsExactReverse(t *testing.T) {
	column := cells("x", "y", "y", "z", "z", "w", "w", "w", "v")

	labels, counts := CountValues(column, false)
	rlabels, rcounts := CountValues(column, true)

	for i := range labels {
		j := len(labels) - 1 - i
		assert.Equal(t, labels[i], rlabels[j])
		assert.Equal(t, counts[i], rcounts[j])
	}
}
