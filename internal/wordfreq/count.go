package wordfreq

// Table maps each distinct word to its number of occurrences.
// It remembers the order in which words were first seen, which is the
// tie-break order used by TopN.
//
// The zero value is an empty table ready to use.
type Table struct {
	counts map[string]int
	order  []string
	total  int
}

// Count tallies exact-match occurrences of each token.
func Count(tokens []string) *Table {
	t := &Table{counts: make(map[string]int, len(tokens)/2)}
	for _, tok := range tokens {
		t.add(tok, 1)
	}
	return t
}

func (t *Table) add(word string, n int) {
	if n <= 0 {
		return
	}
	if t.counts == nil {
		t.counts = make(map[string]int)
	}
	if _, ok := t.counts[word]; !ok {
		t.order = append(t.order, word)
	}
	t.counts[word] += n
	t.total += n
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Total returns the sum of all counts.
func (t *Table) Total() int {
	if t == nil {
		return 0
	}
	return t.total
}

// Get returns the count for word, or 0 if it was never seen.
func (t *Table) Get(word string) int {
	if t == nil {
		return 0
	}
	return t.counts[word]
}

// Words returns the distinct words in first-seen order.
func (t *Table) Words() []string {
	if t == nil {
		return []string{}
	}
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Map returns a copy of the word counts.
func (t *Table) Map() map[string]int {
	out := make(map[string]int, t.Len())
	if t == nil {
		return out
	}
	for w, n := range t.counts {
		out[w] = n
	}
	return out
}

// Merge adds every count from other into t. Words new to t are appended
// in other's first-seen order. Merging the tables of consecutive token
// ranges gives the same table as counting the whole sequence.
func (t *Table) Merge(other *Table) {
	if other == nil {
		return
	}
	for _, w := range other.order {
		t.add(w, other.counts[w])
	}
}
