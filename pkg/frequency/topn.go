package frequency

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dtnitsch/web-wordviz/models"
)

// TopN returns the n most frequent tokens by descending count. The sort is
// stable, so tokens with equal counts stay in first-seen order.
func (t *Table) TopN(n int) []models.WordCount {
	if n <= 0 {
		return []models.WordCount{}
	}

	ss := t.Entries()
	sort.SliceStable(ss, func(i, j int) bool {
		return ss[i].Count > ss[j].Count
	})

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	return ss[:limit]
}

// Listing formats ranked pairs as "word: count", one per line.
func Listing(ranked []models.WordCount) string {
	var sb strings.Builder
	for _, wc := range ranked {
		fmt.Fprintf(&sb, "%s: %d\n", wc.Word, wc.Count)
	}
	return sb.String()
}

// MaxCount returns the highest count in ranked, or 0 when it is empty.
func MaxCount(ranked []models.WordCount) int {
	maxCount := 0
	for _, wc := range ranked {
		if wc.Count > maxCount {
			maxCount = wc.Count
		}
	}
	return maxCount
}
