package backends

import (
	"sort"

	"github.com/red-data-tools/youplot-go/pkg/youplot/models"
)

// CountValues tallies the distinct values of column. The result is sorted
// by count in descending order, ties broken by label in ascending order,
// and then reversed as a whole when reverse is true.
func CountValues(column []models.Cell, reverse bool) (labels []string, counts []int) {
	tally := make(map[models.Cell]int)
	for _, c := range column {
		tally[c]++
	}

	keys := make([]models.Cell, 0, len(tally))
	for c := range tally {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if tally[a] != tally[b] {
			return tally[a] > tally[b]
		}
		if a.Value != b.Value {
			return a.Value < b.Value
		}
		// null before an empty string
		return !a.Valid && b.Valid
	})
	if reverse {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}

	labels = make([]string, len(keys))
	counts = make([]int, len(keys))
	for i, c := range keys {
		labels[i] = c.String()
		counts[i] = tally[c]
	}
	return labels, counts
}
