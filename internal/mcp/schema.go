package mcp

import "github.com/nvandessel/wordfreq/internal/report"

// AnalyzeInput defines the input for the wordfreq_analyze tool.
type AnalyzeInput struct {
	Path  string `json:"path" jsonschema:"Path of the text file, absolute or relative to the server root"`
	Top   int    `json:"top,omitempty" jsonschema:"Number of most frequent words to return (default 10)"`
	Chart bool   `json:"chart,omitempty" jsonschema:"Include a character bar chart in the rendered report"`
}

// AnalyzeOutput defines the output for the wordfreq_analyze tool.
type AnalyzeOutput struct {
	Path        string              `json:"path" jsonschema:"Resolved path of the analyzed file"`
	TotalWords  int                 `json:"total_words" jsonschema:"Number of words in the file"`
	UniqueWords int                 `json:"unique_words" jsonschema:"Number of distinct words"`
	Empty       bool                `json:"empty" jsonschema:"True when the file contained no words"`
	Top         []report.RankedWord `json:"top" jsonschema:"Most frequent words, highest count first"`
	Report      string              `json:"report" jsonschema:"Human-readable text report"`
}
