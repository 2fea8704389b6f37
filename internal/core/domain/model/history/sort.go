package history

import (
	"slices"
	"strings"
)

// SortByTimestamp orders records ascending by timestamp. Ties are broken
// by record ID so the order is stable across reads.
func SortByTimestamp(records []*Record) {
	slices.SortStableFunc(records, func(a, b *Record) int {
		if c := a.timestamp.Compare(b.timestamp); c != 0 {
			return c
		}
		return strings.Compare(a.id.String(), b.id.String())
	})
}
