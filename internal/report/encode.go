package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/nvandessel/wordfreq/internal/wordfreq"
	"gopkg.in/yaml.v3"
)

// Format selects a report rendering.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. The empty string means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (use 'text', 'json', or 'yaml')", s)
	}
}

// RankedWord is one row of a Document.
type RankedWord struct {
	Rank    int     `json:"rank" yaml:"rank"`
	Word    string  `json:"word" yaml:"word"`
	Count   int     `json:"count" yaml:"count"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// Document is the structured form of a result, with ranks and percentages
// precomputed for consumers that do not want to derive them.
type Document struct {
	TotalWords  int          `json:"total_words" yaml:"total_words"`
	UniqueWords int          `json:"unique_words" yaml:"unique_words"`
	Empty       bool         `json:"empty" yaml:"empty"`
	Top         []RankedWord `json:"top" yaml:"top"`
}

// NewDocument converts res. Percentages are rounded to one decimal place
// and are zero for an empty result.
func NewDocument(res wordfreq.Result) Document {
	doc := Document{
		TotalWords:  res.TotalWords,
		UniqueWords: res.UniqueWords,
		Empty:       res.Empty(),
		Top:         make([]RankedWord, 0, len(res.Top)),
	}
	for i, e := range res.Top {
		pct, _ := res.Percentage(e)
		doc.Top = append(doc.Top, RankedWord{
			Rank:    i + 1,
			Word:    e.Word,
			Count:   e.Count,
			Percent: math.Round(pct*10) / 10,
		})
	}
	return doc
}

// Encode writes res as JSON or YAML.
func Encode(w io.Writer, res wordfreq.Result, format Format) error {
	doc := NewDocument(res)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported structured format %q", format)
	}
	return nil
}

// Write renders res in the given format.
func Write(w io.Writer, res wordfreq.Result, format Format, opts TextOptions) error {
	if format == FormatText || format == "" {
		return WriteText(w, res, opts)
	}
	return Encode(w, res, format)
}
