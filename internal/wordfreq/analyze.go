package wordfreq

// Result is the outcome of analyzing one text.
type Result struct {
	TotalWords  int     `json:"total_words" yaml:"total_words"`
	UniqueWords int     `json:"unique_words" yaml:"unique_words"`
	Top         []Entry `json:"top" yaml:"top"`
}

// Analyze tokenizes text, counts the tokens and ranks the n most frequent
// words. A negative or zero n yields an empty Top while still reporting the
// totals.
func Analyze(text string, n int) Result {
	return FromTable(Count(Tokenize(text)), n)
}

// FromTable builds a Result from an already populated table.
func FromTable(t *Table, n int) Result {
	return Result{
		TotalWords:  t.Total(),
		UniqueWords: t.Len(),
		Top:         TopN(t, n),
	}
}

// Empty reports whether the text contained no words at all.
func (r Result) Empty() bool {
	return r.TotalWords == 0
}

// Percentage returns the share of all words taken by e, in percent.
// ok is false when the result has no words.
func (r Result) Percentage(e Entry) (pct float64, ok bool) {
	if r.TotalWords == 0 {
		return 0, false
	}
	return 100 * float64(e.Count) / float64(r.TotalWords), true
}

// MaxCount returns the highest count among the top entries.
func (r Result) MaxCount() int {
	m := 0
	for _, e := range r.Top {
		if e.Count > m {
			m = e.Count
		}
	}
	return m
}
