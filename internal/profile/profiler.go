// Package profile orchestrates one profiling run over an ingested dataset:
// column classification feeding KPI synthesis, chart recommendation and
// per-column statistical briefs.
package profile

import (
	"context"
	"log"

	"insighta/domain/dataset"
	"insighta/domain/viz"
	"insighta/internal/charts"
	"insighta/internal/classify"
	"insighta/internal/kpi"

	"golang.org/x/sync/errgroup"
)

// Profile is the full output of one profiling run. Built fresh on every
// ingestion; callers read it but never feed it back for re-classification.
type Profile struct {
	RowCount       int                          `json:"row_count"`
	Columns        []string                     `json:"columns"`
	Classification dataset.ColumnClassification `json:"classification"`
	KPIs           []viz.KPI                    `json:"kpis"`
	Charts         []viz.ChartSpec              `json:"charts"`
	Briefs         []ColumnBrief                `json:"briefs,omitempty"`
}

// Engine wires the classifier to its two independent consumers
type Engine struct {
	classifier  *classify.Classifier
	synthesizer *kpi.Synthesizer
	charts      *charts.Engine
}

// NewEngine creates a profiling engine with default components
func NewEngine() *Engine {
	return &Engine{
		classifier:  classify.New(),
		synthesizer: kpi.New(),
		charts:      charts.New(),
	}
}

// Run profiles a dataset. An empty dataset yields an empty profile (no
// KPIs, no charts) rather than an error; no path in here can fault.
//
// KPI synthesis, chart recommendation and column briefs only depend on the
// classification, not on each other, so they run concurrently.
func (e *Engine) Run(ctx context.Context, ds *dataset.Dataset) *Profile {
	if ds.IsEmpty() {
		log.Printf("[Profiler] Empty dataset %q, returning empty profile", ds.Name)
		return &Profile{Columns: ds.Columns}
	}

	class := e.classifier.Classify(ds, ds.Columns)

	var (
		cards  []viz.KPI
		specs  []viz.ChartSpec
		briefs []ColumnBrief
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		cards = e.synthesizer.Synthesize(ds, class.Numeric)
		return nil
	})
	g.Go(func() error {
		specs = e.charts.Recommend(ds, class)
		return nil
	})
	g.Go(func() error {
		briefs = ComputeBriefs(ds, class.Numeric)
		return nil
	})
	// The stages cannot fail; Wait only fences the goroutines
	_ = g.Wait()

	log.Printf("[Profiler] Profiled %q: %d rows, %d KPIs, %d charts",
		ds.Name, ds.Len(), len(cards), len(specs))

	return &Profile{
		RowCount:       ds.Len(),
		Columns:        ds.Columns,
		Classification: class,
		KPIs:           cards,
		Charts:         specs,
		Briefs:         briefs,
	}
}
