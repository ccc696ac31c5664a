package profile

import (
	"math"

	"insighta/domain/dataset"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// ColumnBrief is an extended statistical summary for one numeric column,
// carried on the profile beside the KPI cards.
type ColumnBrief struct {
	Column   string  `json:"column"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Median   float64 `json:"median"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Skewness float64 `json:"skewness"`
}

// ComputeBriefs summarizes every numeric column over its parseable cells.
// Columns with no parseable cells are skipped, not errored. StdDev and
// skewness are undefined below n=2 and n=3 respectively (gonum returns NaN
// there); those read as zero so the profile always marshals to JSON.
func ComputeBriefs(ds *dataset.Dataset, numericColumns []string) []ColumnBrief {
	var briefs []ColumnBrief

	for _, col := range numericColumns {
		var values []float64
		for _, row := range ds.Rows {
			if v, ok := dataset.ParseNumeric(row[col]); ok {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}

		median, _ := stats.Median(values)
		min, _ := stats.Min(values)
		max, _ := stats.Max(values)

		briefs = append(briefs, ColumnBrief{
			Column:   col,
			Count:    len(values),
			Mean:     stat.Mean(values, nil),
			StdDev:   finiteOrZero(stat.StdDev(values, nil)),
			Median:   median,
			Min:      min,
			Max:      max,
			Skewness: finiteOrZero(stat.Skew(values, nil)),
		})
	}

	return briefs
}

// finiteOrZero replaces NaN and infinities with zero
func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
