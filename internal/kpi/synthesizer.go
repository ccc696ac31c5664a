// Package kpi derives summary cards from classified numeric columns.
package kpi

import (
	"fmt"
	"log"
	"strconv"

	"insighta/domain/dataset"
	"insighta/domain/viz"

	"github.com/montanaflynn/stats"
)

const (
	// maxColumns caps how many numeric columns get their own card
	maxColumns = 4

	// placeholderTrend is not computed from data. The source dashboard
	// ships a constant here; it is kept as a documented gap.
	placeholderTrend = "+12%"

	totalTrend    = "100%"
	totalSubtitle = "Dataset Size"
)

// Synthesizer produces the ordered KPI card list for a profiling run
type Synthesizer struct{}

// New creates a KPI synthesizer
func New() *Synthesizer {
	return &Synthesizer{}
}

// Synthesize computes one card per numeric column (up to the first four, in
// classification order) plus the synthetic Total Records card, which is
// always prepended. Non-numeric cells in a numeric column are dropped from
// aggregation, never coerced to zero. A fresh list is built every run.
func (s *Synthesizer) Synthesize(ds *dataset.Dataset, numericColumns []string) []viz.KPI {
	var kpis []viz.KPI

	columns := numericColumns
	if len(columns) > maxColumns {
		columns = columns[:maxColumns]
	}

	for _, col := range columns {
		values := collectNumeric(ds, col)
		if len(values) == 0 {
			// Sampled numeric but no full-scan numeric values: nothing to
			// aggregate, and never an error
			continue
		}

		sum, _ := stats.Sum(values)
		max, _ := stats.Max(values)
		min, _ := stats.Min(values)
		avg := sum / float64(len(values))

		kpis = append(kpis, viz.KPI{
			Title:    col,
			Value:    fmt.Sprintf("%.2f", avg),
			Subtitle: "Average",
			Trend:    placeholderTrend,
			Max:      fmt.Sprintf("%.2f", max),
			Min:      fmt.Sprintf("%.2f", min),
		})
	}

	// Total record count leads the list regardless of numeric columns
	kpis = append([]viz.KPI{{
		Title:    "Total Records",
		Value:    strconv.Itoa(ds.Len()),
		Subtitle: totalSubtitle,
		Trend:    totalTrend,
	}}, kpis...)

	log.Printf("[KPISynthesizer] Produced %d cards from %d numeric columns", len(kpis), len(numericColumns))
	return kpis
}

// collectNumeric gathers every cell of a column that parses as a finite number
func collectNumeric(ds *dataset.Dataset, column string) []float64 {
	var values []float64
	for _, row := range ds.Rows {
		if v, ok := dataset.ParseNumeric(row[column]); ok {
			values = append(values, v)
		}
	}
	return values
}
