package dataset

import (
	"insighta/domain/core"
)

// Record is one row of a dataset: a mapping from column name to the raw
// cell value as it arrived from the file. A missing cell is an empty string.
type Record map[string]string

// Dataset is an ordered, finite sequence of uniformly-shaped records.
// Immutable once produced by ingestion; column order is the header order.
type Dataset struct {
	ID        core.DatasetID `json:"id"`
	Name      string         `json:"name"` // original filename
	Columns   []string       `json:"columns"`
	Rows      []Record       `json:"rows"`
	CreatedAt core.Timestamp `json:"created_at"`
}

// New creates a dataset with a fresh identity
func New(name string, columns []string, rows []Record) *Dataset {
	return &Dataset{
		ID:        core.DatasetID(core.NewID()),
		Name:      name,
		Columns:   columns,
		Rows:      rows,
		CreatedAt: core.Now(),
	}
}

// Len returns the number of records
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// IsEmpty reports whether the dataset has no records
func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// Value returns the raw cell value for a row index and column name.
// Out-of-range rows and unknown columns read as empty.
func (d *Dataset) Value(row int, column string) string {
	if d == nil || row < 0 || row >= len(d.Rows) {
		return ""
	}
	return d.Rows[row][column]
}

// Sample returns up to n leading non-empty values of a column
func (d *Dataset) Sample(column string, n int) []string {
	var sample []string
	for i := 0; i < len(d.Rows) && i < n; i++ {
		if v := d.Rows[i][column]; v != "" {
			sample = append(sample, v)
		}
	}
	return sample
}

// Head returns up to the first n records in dataset order
func (d *Dataset) Head(n int) []Record {
	if d == nil {
		return nil
	}
	if n > len(d.Rows) {
		n = len(d.Rows)
	}
	return d.Rows[:n]
}

// ColumnClassification partitions column names into three disjoint semantic
// sets. Columns whose leading sample is entirely empty belong to none of
// them and never surface in KPIs or charts.
type ColumnClassification struct {
	Numeric     []string `json:"numeric"`
	Temporal    []string `json:"temporal"`
	Categorical []string `json:"categorical"`
}

// HasNumeric reports whether any column classified numeric
func (c ColumnClassification) HasNumeric() bool { return len(c.Numeric) > 0 }

// HasTemporal reports whether any column classified temporal
func (c ColumnClassification) HasTemporal() bool { return len(c.Temporal) > 0 }

// HasCategorical reports whether any column classified categorical
func (c ColumnClassification) HasCategorical() bool { return len(c.Categorical) > 0 }

// ClassifiedCount returns the number of columns across all three sets
func (c ColumnClassification) ClassifiedCount() int {
	return len(c.Numeric) + len(c.Temporal) + len(c.Categorical)
}
