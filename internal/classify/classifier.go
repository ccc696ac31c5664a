// Package classify assigns a semantic type to each dataset column using a
// leading-sample heuristic, without any declared schema.
package classify

import (
	"log"

	"insighta/domain/dataset"
)

// Classifier partitions columns into numeric, temporal and categorical sets
type Classifier struct {
	sampleSize int
	threshold  float64
}

// New creates a classifier with the standard sample window and threshold
func New() *Classifier {
	return &Classifier{
		sampleSize: 10,
		threshold:  0.8,
	}
}

// Classify inspects a sample of each column's values and assigns one of
// three semantic types. Columns whose leading sample is entirely empty are
// unclassifiable and excluded from all three sets. Never errors; worst case
// every column is categorical.
func (c *Classifier) Classify(ds *dataset.Dataset, columns []string) dataset.ColumnClassification {
	var result dataset.ColumnClassification

	for _, col := range columns {
		sample := ds.Sample(col, c.sampleSize)
		if len(sample) == 0 {
			// Unclassifiable: never surfaces in KPIs or charts
			continue
		}

		numericCount := 0
		temporalCount := 0
		for _, v := range sample {
			if dataset.NumericOk(v) {
				numericCount++
			}
			if dataset.TemporalOk(v) {
				temporalCount++
			}
		}

		numericRatio := float64(numericCount) / float64(len(sample))
		temporalRatio := float64(temporalCount) / float64(len(sample))

		// Numeric is checked first on purpose: year-like columns ("2020",
		// "2021") pass both thresholds and must aggregate, not trend.
		switch {
		case numericRatio > c.threshold:
			result.Numeric = append(result.Numeric, col)
		case temporalRatio > c.threshold:
			result.Temporal = append(result.Temporal, col)
		default:
			result.Categorical = append(result.Categorical, col)
		}
	}

	log.Printf("[Classifier] Classified %d columns (%d numeric, %d temporal, %d categorical)",
		len(columns), len(result.Numeric), len(result.Temporal), len(result.Categorical))

	return result
}
