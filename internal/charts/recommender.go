// Package charts proposes chart specifications from a classified dataset
// by applying a fixed, ordered rule set.
package charts

import (
	"fmt"
	"log"
	"math"

	"insighta/domain/dataset"
	"insighta/domain/viz"
)

// Row caps for the individual rules. The limits keep every chart's data
// payload small enough to hand to a renderer wholesale.
const (
	maxBarGroups    = 10
	maxLinePoints   = 50
	maxAreaPoints   = 30
	maxPieSlices    = 6
	maxMultiBarRows = 15
	maxMultiBarCols = 3
	maxStackedRows  = 20
)

// Engine emits zero or more chart specifications for a dataset.
//
// Rules fire independently and append in a fixed priority order; the order
// and the overlap between the numeric rules are intentional and preserved
// (a dataset with two or more numeric columns commonly triggers the area,
// multibar and stackedarea rules together). No rule ever errors; a dataset
// satisfying no precondition yields an empty list.
type Engine struct{}

// New creates a chart recommendation engine
func New() *Engine {
	return &Engine{}
}

// Recommend applies every rule in order and collects the charts that fire
func (e *Engine) Recommend(ds *dataset.Dataset, class dataset.ColumnClassification) []viz.ChartSpec {
	var specs []viz.ChartSpec

	if spec, ok := e.categoricalAggregation(ds, class); ok {
		specs = append(specs, spec)
	}
	if spec, ok := e.timeSeries(ds, class); ok {
		specs = append(specs, spec)
	}
	if spec, ok := e.pairwiseArea(ds, class); ok {
		specs = append(specs, spec)
	}
	if spec, ok := e.categoricalDistribution(ds, class); ok {
		specs = append(specs, spec)
	}
	if spec, ok := e.multiMetricComparison(ds, class); ok {
		specs = append(specs, spec)
	}
	if spec, ok := e.cumulativeComparison(ds, class); ok {
		specs = append(specs, spec)
	}

	log.Printf("[ChartEngine] Recommended %d charts for %d records", len(specs), ds.Len())
	return specs
}

// categoricalAggregation sums the first numeric column per value of the
// first categorical column. Groups keep first-seen order, capped at ten;
// rows with a missing category or non-numeric value are skipped.
func (e *Engine) categoricalAggregation(ds *dataset.Dataset, class dataset.ColumnClassification) (viz.ChartSpec, bool) {
	if !class.HasCategorical() || !class.HasNumeric() {
		return viz.ChartSpec{}, false
	}
	catCol := class.Categorical[0]
	numCol := class.Numeric[0]

	var order []string
	totals := make(map[string]float64)
	for _, row := range ds.Rows {
		cat := row[catCol]
		val, ok := dataset.ParseNumeric(row[numCol])
		if cat == "" || !ok {
			continue
		}
		if _, seen := totals[cat]; !seen {
			order = append(order, cat)
		}
		totals[cat] += val
	}

	if len(order) > maxBarGroups {
		order = order[:maxBarGroups]
	}
	data := make([]viz.Datum, 0, len(order))
	for _, name := range order {
		data = append(data, viz.Datum{"name": name, "value": round2(totals[name])})
	}

	return viz.ChartSpec{
		Type:  viz.ChartBar,
		Title: fmt.Sprintf("%s by %s", numCol, catCol),
		Data:  data,
		XKey:  "name",
		YKey:  "value",
	}, true
}

// timeSeries plots the first numeric column over the first temporal column.
// Only rows with both a non-empty date cell and a parseable numeric value
// qualify, capped at fifty in dataset order. An empty filtered set emits
// nothing.
func (e *Engine) timeSeries(ds *dataset.Dataset, class dataset.ColumnClassification) (viz.ChartSpec, bool) {
	if !class.HasTemporal() || !class.HasNumeric() {
		return viz.ChartSpec{}, false
	}
	dateCol := class.Temporal[0]
	numCol := class.Numeric[0]

	var data []viz.Datum
	for _, row := range ds.Rows {
		if len(data) >= maxLinePoints {
			break
		}
		rawDate := row[dateCol]
		val, ok := dataset.ParseNumeric(row[numCol])
		if rawDate == "" || !ok {
			continue
		}
		data = append(data, viz.Datum{"date": localeDay(rawDate), "value": val})
	}

	if len(data) == 0 {
		return viz.ChartSpec{}, false
	}

	return viz.ChartSpec{
		Type:  viz.ChartLine,
		Title: fmt.Sprintf("%s Trend Over Time", numCol),
		Data:  data,
		XKey:  "date",
		YKey:  "value",
	}, true
}

// pairwiseArea compares the first two numeric columns point by point over
// the first thirty records. Missing or invalid cells coerce to zero here.
func (e *Engine) pairwiseArea(ds *dataset.Dataset, class dataset.ColumnClassification) (viz.ChartSpec, bool) {
	if len(class.Numeric) < 2 {
		return viz.ChartSpec{}, false
	}
	first, second := class.Numeric[0], class.Numeric[1]

	rows := ds.Head(maxAreaPoints)
	data := make([]viz.Datum, 0, len(rows))
	for i, row := range rows {
		data = append(data, viz.Datum{
			"name":   fmt.Sprintf("Point %d", i+1),
			"value1": dataset.NumericOrZero(row[first]),
			"value2": dataset.NumericOrZero(row[second]),
		})
	}

	return viz.ChartSpec{
		Type:  viz.ChartArea,
		Title: fmt.Sprintf("%s vs %s", first, second),
		Data:  data,
		Keys:  []string{"value1", "value2"},
	}, true
}

// categoricalDistribution counts occurrences of the first categorical
// column's values, keeping the first six distinct values encountered.
func (e *Engine) categoricalDistribution(ds *dataset.Dataset, class dataset.ColumnClassification) (viz.ChartSpec, bool) {
	if !class.HasCategorical() {
		return viz.ChartSpec{}, false
	}
	catCol := class.Categorical[0]

	var order []string
	counts := make(map[string]int)
	for _, row := range ds.Rows {
		cat := row[catCol]
		if cat == "" {
			continue
		}
		if _, seen := counts[cat]; !seen {
			order = append(order, cat)
		}
		counts[cat]++
	}

	if len(order) > maxPieSlices {
		order = order[:maxPieSlices]
	}
	data := make([]viz.Datum, 0, len(order))
	for _, name := range order {
		data = append(data, viz.Datum{"name": name, "value": counts[name]})
	}

	return viz.ChartSpec{
		Type:  viz.ChartPie,
		Title: fmt.Sprintf("Distribution of %s", catCol),
		Data:  data,
	}, true
}

// multiMetricComparison emits one row per record with a synthetic label and
// one field per numeric column, up to the first three columns and fifteen
// records. Invalid cells coerce to zero.
func (e *Engine) multiMetricComparison(ds *dataset.Dataset, class dataset.ColumnClassification) (viz.ChartSpec, bool) {
	if len(class.Numeric) < 2 {
		return viz.ChartSpec{}, false
	}
	columns := class.Numeric
	if len(columns) > maxMultiBarCols {
		columns = columns[:maxMultiBarCols]
	}

	rows := ds.Head(maxMultiBarRows)
	data := make([]viz.Datum, 0, len(rows))
	for i, row := range rows {
		datum := viz.Datum{"name": fmt.Sprintf("Row %d", i+1)}
		for _, col := range columns {
			datum[col] = dataset.NumericOrZero(row[col])
		}
		data = append(data, datum)
	}

	return viz.ChartSpec{
		Type:  viz.ChartMultiBar,
		Title: "Multi-Metric Analysis",
		Data:  data,
		Keys:  columns,
	}, true
}

// cumulativeComparison emits the first two numeric columns keyed by their
// raw names over the first twenty records, for a stacked-area rendering.
func (e *Engine) cumulativeComparison(ds *dataset.Dataset, class dataset.ColumnClassification) (viz.ChartSpec, bool) {
	if len(class.Numeric) < 2 {
		return viz.ChartSpec{}, false
	}
	first, second := class.Numeric[0], class.Numeric[1]

	rows := ds.Head(maxStackedRows)
	data := make([]viz.Datum, 0, len(rows))
	for i, row := range rows {
		data = append(data, viz.Datum{
			"name": fmt.Sprintf("P%d", i+1),
			first:  dataset.NumericOrZero(row[first]),
			second: dataset.NumericOrZero(row[second]),
		})
	}

	return viz.ChartSpec{
		Type:  viz.ChartStackedArea,
		Title: "Cumulative Comparison",
		Data:  data,
		Keys:  []string{first, second},
	}, true
}

// localeDay renders a raw date cell as a short day string, falling back to
// the raw cell when it does not parse
func localeDay(raw string) string {
	t, ok := dataset.ParseTemporal(raw)
	if !ok {
		return raw
	}
	return t.Format("1/2/2006")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
