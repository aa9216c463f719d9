// Package report renders analysis results for people and for tools.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/nvandessel/wordfreq/internal/wordfreq"
)

// DefaultBarWidth is the length of the longest bar in the text chart.
const DefaultBarWidth = 40

// NoWordsMessage is printed instead of a table when the text had no words.
const NoWordsMessage = "No words found in the file."

const (
	ruleWidth  = 50
	barGlyph   = "█"
	wordColumn = 15
	barColumn  = 12
)

// TextOptions controls WriteText.
type TextOptions struct {
	// Chart appends a character bar chart after the table.
	Chart bool

	// BarWidth is the length of the longest bar. Values <= 0 use
	// DefaultBarWidth.
	BarWidth int
}

// WriteText writes the human-readable report: totals, the ranked table and
// optionally a bar chart.
func WriteText(w io.Writer, res wordfreq.Result, opts TextOptions) error {
	if res.Empty() {
		_, err := fmt.Fprintln(w, NoWordsMessage)
		return err
	}

	var b strings.Builder
	writeBanner(&b, "WORD FREQUENCY ANALYSIS RESULTS")
	fmt.Fprintf(&b, "Total words analyzed: %s\n", humanize.Comma(int64(res.TotalWords)))
	fmt.Fprintf(&b, "Unique words found: %s\n", humanize.Comma(int64(res.UniqueWords)))
	fmt.Fprintf(&b, "\nTop %d Most Frequent Words:\n", len(res.Top))
	b.WriteString(strings.Repeat("-", 30))
	b.WriteByte('\n')

	for i, e := range res.Top {
		pct, _ := res.Percentage(e)
		fmt.Fprintf(&b, "%2d. %-*s %5s (%.1f%%)\n",
			i+1, wordColumn, e.Word, humanize.Comma(int64(e.Count)), pct)
	}

	if opts.Chart {
		writeChart(&b, res, opts.BarWidth)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeChart(b *strings.Builder, res wordfreq.Result, width int) {
	if len(res.Top) == 0 {
		return
	}
	if width <= 0 {
		width = DefaultBarWidth
	}

	writeBanner(b, "VISUAL REPRESENTATION")
	maxCount := res.MaxCount()
	for _, e := range res.Top {
		bar := strings.Repeat(barGlyph, BarLength(e.Count, maxCount, width))
		fmt.Fprintf(b, "%-*s |%s %d\n", barColumn, e.Word, bar, e.Count)
	}
}

func writeBanner(b *strings.Builder, title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(b, "\n%s\n%s\n%s\n", rule, title, rule)
}

// BarLength scales count against maxCount to at most width characters,
// rounding down. It returns 0 when maxCount is not positive.
func BarLength(count, maxCount, width int) int {
	if maxCount <= 0 || count <= 0 || width <= 0 {
		return 0
	}
	if count >= maxCount {
		return width
	}
	return count * width / maxCount
}
