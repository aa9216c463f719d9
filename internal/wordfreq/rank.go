package wordfreq

import (
	"cmp"
	"slices"
)

// DefaultTopN is the number of entries reported when no limit is given.
const DefaultTopN = 10

// Entry is a ranked word and its count.
type Entry struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// TopN returns the n most frequent words, highest count first.
// Words with equal counts keep the order in which they were first seen.
// The result has min(n, t.Len()) entries and is empty when n <= 0.
func TopN(t *Table, n int) []Entry {
	if n <= 0 || t.Len() == 0 {
		return []Entry{}
	}

	entries := make([]Entry, 0, t.Len())
	for _, w := range t.order {
		entries = append(entries, Entry{Word: w, Count: t.counts[w]})
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if n < len(entries) {
		entries = entries[:n:n]
	}
	return entries
}
