// Package wordfreq implements the word-frequency pipeline: tokenization,
// frequency counting and top-N ranking of the words in a text.
//
// The pipeline is pure. Each call to Analyze builds a fresh Table and
// returns a Result value; nothing is retained between runs.
package wordfreq

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinWordLength is the shortest token kept by Tokenize. Single-letter
// words, including "a" and "i", are dropped.
const MinWordLength = 2

// letterRun matches candidate words in lowercased text. Boundaries are
// checked separately by isWordRune so that runs touching non-ASCII letters,
// digits or underscores are rejected as a whole.
var letterRun = regexp.MustCompile(`[a-z]+`)

// Tokenize lowercases text and returns its words in the order they appear.
//
// A word is a maximal run of ASCII letters that is not adjacent to any other
// word character (a Unicode letter, number or underscore). "café",
// "abc123" and "foo_bar" therefore yield nothing, while "don't" yields
// "don". Words shorter than MinWordLength are discarded.
//
// The returned slice is never nil.
func Tokenize(text string) []string {
	tokens := make([]string, 0)
	if text == "" {
		return tokens
	}

	lower := strings.ToLower(text)
	for _, loc := range letterRun.FindAllStringIndex(lower, -1) {
		start, end := loc[0], loc[1]
		if end-start < MinWordLength {
			continue
		}
		if start > 0 {
			if r, _ := utf8.DecodeLastRuneInString(lower[:start]); isWordRune(r) {
				continue
			}
		}
		if end < len(lower) {
			if r, _ := utf8.DecodeRuneInString(lower[end:]); isWordRune(r) {
				continue
			}
		}
		tokens = append(tokens, lower[start:end])
	}
	return tokens
}

// isWordRune reports whether r breaks a word boundary.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
