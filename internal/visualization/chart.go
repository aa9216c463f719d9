// Package visualization renders analysis results as a self-contained HTML
// bar chart and opens it in a browser.
package visualization

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/nvandessel/wordfreq/internal/report"
	"github.com/nvandessel/wordfreq/internal/wordfreq"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Chart geometry, in SVG user units.
const (
	chartWidth   = 800
	chartHeight  = 480
	marginLeft   = 70
	marginRight  = 20
	marginTop    = 50
	marginBottom = 90
	barFill      = 0.7
	maxTicks     = 5
)

// ChartOptions controls RenderChartHTML.
type ChartOptions struct {
	// Title overrides the default "Top N Most Frequent Words".
	Title string

	// Source is shown under the title, usually the analyzed file name.
	Source string
}

type chartBar struct {
	X, Y, Width, Height float64
	LabelX, LabelY      float64
	Word                string
	Count               int
}

type chartTick struct {
	Y     float64
	Label string
}

// chartTemplateData holds data passed to the HTML template.
// ResultJSON is pre-sanitized JSON (via json.HTMLEscape) safe for inline <script>.
type chartTemplateData struct {
	Title       string
	Source      string
	Empty       bool
	TotalWords  string
	UniqueWords string
	Width       int
	Height      int
	PlotLeft    float64
	PlotRight   float64
	PlotTop     float64
	PlotBottom  float64
	Bars        []chartBar
	Ticks       []chartTick
	ResultJSON  template.JS
}

// RenderChartHTML produces a self-contained HTML page with one bar per top
// entry of res. An empty result renders a page saying there is no data.
func RenderChartHTML(res wordfreq.Result, opts ChartOptions) ([]byte, error) {
	tmplBytes, err := templates.ReadFile("templates/chart.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("read HTML template: %w", err)
	}

	tmpl, err := template.New("chart").Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parse HTML template: %w", err)
	}

	resultJSON, err := json.Marshal(report.NewDocument(res))
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	var escaped bytes.Buffer
	json.HTMLEscape(&escaped, resultJSON)

	title := opts.Title
	if title == "" {
		title = fmt.Sprintf("Top %d Most Frequent Words", len(res.Top))
	}

	data := chartTemplateData{
		Title:       title,
		Source:      opts.Source,
		Empty:       len(res.Top) == 0,
		TotalWords:  humanize.Comma(int64(res.TotalWords)),
		UniqueWords: humanize.Comma(int64(res.UniqueWords)),
		Width:       chartWidth,
		Height:      chartHeight,
		PlotLeft:    marginLeft,
		PlotRight:   chartWidth - marginRight,
		PlotTop:     marginTop,
		PlotBottom:  chartHeight - marginBottom,
		// ResultJSON: pre-sanitized via json.HTMLEscape, </script> breakout impossible.
		ResultJSON: template.JS(escaped.String()), // #nosec G203
	}
	if !data.Empty {
		data.Bars, data.Ticks = layout(res.Top)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute HTML template: %w", err)
	}
	return buf.Bytes(), nil
}

// layout places bars and y-axis ticks inside the plot area.
func layout(entries []wordfreq.Entry) ([]chartBar, []chartTick) {
	plotW := float64(chartWidth - marginLeft - marginRight)
	plotH := float64(chartHeight - marginTop - marginBottom)
	bottom := float64(chartHeight - marginBottom)

	maxCount := 0
	for _, e := range entries {
		maxCount = max(maxCount, e.Count)
	}
	step := tickStep(maxCount)
	yMax := step * int(math.Ceil(float64(maxCount)/float64(step)))

	title := cases.Title(language.English)
	slot := plotW / float64(len(entries))
	bars := make([]chartBar, 0, len(entries))
	for i, e := range entries {
		h := plotH * float64(e.Count) / float64(yMax)
		x := marginLeft + slot*float64(i) + slot*(1-barFill)/2
		w := slot * barFill
		bars = append(bars, chartBar{
			X:      round2(x),
			Y:      round2(bottom - h),
			Width:  round2(w),
			Height: round2(h),
			LabelX: round2(x + w/2),
			LabelY: round2(bottom + 16),
			Word:   title.String(e.Word),
			Count:  e.Count,
		})
	}

	ticks := make([]chartTick, 0, yMax/step+1)
	for v := 0; v <= yMax; v += step {
		ticks = append(ticks, chartTick{
			Y:     round2(bottom - plotH*float64(v)/float64(yMax)),
			Label: humanize.Comma(int64(v)),
		})
	}
	return bars, ticks
}

// tickStep picks a 1, 2 or 5 times power-of-ten step giving at most
// maxTicks intervals up to maxCount.
func tickStep(maxCount int) int {
	if maxCount <= maxTicks {
		return 1
	}
	for pow := 1; ; pow *= 10 {
		for _, m := range []int{1, 2, 5} {
			step := m * pow
			if (maxCount+step-1)/step <= maxTicks {
				return step
			}
		}
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
