// Package frequency counts tokens and ranks them.
//
// A Table remembers the order in which each distinct token was first seen,
// so ranking is deterministic: equal counts keep first-seen order.
package frequency

import "github.com/dtnitsch/web-wordviz/models"

// DefaultTopN is the number of ranked words charted and listed.
const DefaultTopN = models.DefaultTopN

// Table maps each distinct token to its occurrence count.
type Table struct {
	order  []string
	counts map[string]int
}

// Count builds a Table from a token sequence.
func Count(tokens []string) *Table {
	t := &Table{counts: make(map[string]int)}
	for _, token := range tokens {
		if _, seen := t.counts[token]; !seen {
			t.order = append(t.order, token)
		}
		t.counts[token]++
	}
	return t
}

// Len returns the number of distinct tokens.
func (t *Table) Len() int {
	return len(t.order)
}

// Get returns the count for token.
func (t *Table) Get(token string) (int, bool) {
	c, ok := t.counts[token]
	return c, ok
}

// Total returns the sum of all counts.
func (t *Table) Total() int {
	total := 0
	for _, c := range t.counts {
		total += c
	}
	return total
}

// Entries returns every (token, count) pair in first-seen order.
func (t *Table) Entries() []models.WordCount {
	entries := make([]models.WordCount, len(t.order))
	for i, token := range t.order {
		entries[i] = models.WordCount{Word: token, Count: t.counts[token]}
	}
	return entries
}

// FilterByMinimum returns a new Table holding only tokens whose count is at
// least threshold. Any threshold below 2 keeps everything.
func (t *Table) FilterByMinimum(threshold int) *Table {
	filtered := &Table{counts: make(map[string]int)}
	for _, token := range t.order {
		c := t.counts[token]
		if c < threshold {
			continue
		}
		filtered.order = append(filtered.order, token)
		filtered.counts[token] = c
	}
	return filtered
}
