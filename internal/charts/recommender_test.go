package charts

import (
	"fmt"
	"testing"

	"insighta/domain/dataset"
	"insighta/domain/viz"
)

func buildDataset(columns []string, cells [][]string) *dataset.Dataset {
	rows := make([]dataset.Record, len(cells))
	for i, cell := range cells {
		row := dataset.Record{}
		for j, col := range columns {
			if j < len(cell) {
				row[col] = cell[j]
			}
		}
		rows[i] = row
	}
	return dataset.New("test", columns, rows)
}

func findChart(specs []viz.ChartSpec, chartType viz.ChartType) *viz.ChartSpec {
	for i := range specs {
		if specs[i].Type == chartType {
			return &specs[i]
		}
	}
	return nil
}

func TestRecommend_CategoricalAggregation(t *testing.T) {
	// Scenario: category A appears twice (5+3), B once (2)
	ds := buildDataset([]string{"cat", "num"}, [][]string{
		{"A", "5"},
		{"A", "3"},
		{"B", "2"},
	})
	class := dataset.ColumnClassification{
		Categorical: []string{"cat"},
		Numeric:     []string{"num"},
	}

	specs := New().Recommend(ds, class)

	bar := findChart(specs, viz.ChartBar)
	if bar == nil {
		t.Fatal("Expected a bar chart")
	}
	if bar.Title != "num by cat" {
		t.Errorf("Expected title 'num by cat', got %q", bar.Title)
	}
	if len(bar.Data) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(bar.Data))
	}
	if bar.Data[0]["name"] != "A" || bar.Data[0]["value"] != 8.0 {
		t.Errorf("Expected first group A=8, got %v=%v", bar.Data[0]["name"], bar.Data[0]["value"])
	}
	if bar.Data[1]["name"] != "B" || bar.Data[1]["value"] != 2.0 {
		t.Errorf("Expected second group B=2, got %v=%v", bar.Data[1]["name"], bar.Data[1]["value"])
	}
}

func TestRecommend_NoRuleFires(t *testing.T) {
	// Only temporal columns: no rule has its preconditions met
	ds := buildDataset([]string{"when"}, [][]string{
		{"2024-01-01"},
		{"2024-01-02"},
	})
	class := dataset.ColumnClassification{Temporal: []string{"when"}}

	specs := New().Recommend(ds, class)

	if len(specs) != 0 {
		t.Errorf("Expected no charts, got %d", len(specs))
	}
}

func TestRecommend_FullRuleOrder(t *testing.T) {
	// A dataset triggering all six rules must emit them in priority order
	ds := buildDataset([]string{"cat", "n1", "n2", "when"}, [][]string{
		{"A", "1", "10", "2024-01-01"},
		{"B", "2", "20", "2024-01-02"},
		{"A", "3", "30", "2024-01-03"},
	})
	class := dataset.ColumnClassification{
		Categorical: []string{"cat"},
		Numeric:     []string{"n1", "n2"},
		Temporal:    []string{"when"},
	}

	specs := New().Recommend(ds, class)

	expected := []viz.ChartType{
		viz.ChartBar,
		viz.ChartLine,
		viz.ChartArea,
		viz.ChartPie,
		viz.ChartMultiBar,
		viz.ChartStackedArea,
	}
	if len(specs) != len(expected) {
		t.Fatalf("Expected %d charts, got %d", len(expected), len(specs))
	}
	for i, want := range expected {
		if specs[i].Type != want {
			t.Errorf("Chart %d: expected type %s, got %s", i, want, specs[i].Type)
		}
	}
}

func TestRecommend_TimeSeriesSkipsInvalidRows(t *testing.T) {
	ds := buildDataset([]string{"when", "num"}, [][]string{
		{"2024-01-01", "5"},
		{"", "6"},
		{"2024-01-03", "oops"},
		{"2024-01-04", "7"},
	})
	class := dataset.ColumnClassification{
		Temporal: []string{"when"},
		Numeric:  []string{"num"},
	}

	specs := New().Recommend(ds, class)

	line := findChart(specs, viz.ChartLine)
	if line == nil {
		t.Fatal("Expected a line chart")
	}
	if len(line.Data) != 2 {
		t.Fatalf("Expected 2 qualifying points, got %d", len(line.Data))
	}
	if line.Data[0]["date"] != "1/1/2024" {
		t.Errorf("Expected locale day 1/1/2024, got %v", line.Data[0]["date"])
	}
}

func TestRecommend_NoLineChartWhenNothingQualifies(t *testing.T) {
	// Temporal and numeric columns exist but no row has both cells valid
	ds := buildDataset([]string{"when", "num"}, [][]string{
		{"", "5"},
		{"2024-01-02", "bad"},
	})
	class := dataset.ColumnClassification{
		Temporal: []string{"when"},
		Numeric:  []string{"num"},
	}

	specs := New().Recommend(ds, class)

	if findChart(specs, viz.ChartLine) != nil {
		t.Error("Expected no line chart when the filtered set is empty")
	}
}

func TestRecommend_PieCapsAtSixSlices(t *testing.T) {
	cells := make([][]string, 10)
	for i := range cells {
		cells[i] = []string{fmt.Sprintf("cat%d", i)}
	}
	ds := buildDataset([]string{"cat"}, cells)
	class := dataset.ColumnClassification{Categorical: []string{"cat"}}

	specs := New().Recommend(ds, class)

	pie := findChart(specs, viz.ChartPie)
	if pie == nil {
		t.Fatal("Expected a pie chart")
	}
	if len(pie.Data) != 6 {
		t.Errorf("Expected 6 slices, got %d", len(pie.Data))
	}
	if pie.Data[0]["name"] != "cat0" {
		t.Errorf("Expected first-seen ordering, got %v", pie.Data[0]["name"])
	}
}

func TestRecommend_AreaCoercesInvalidToZero(t *testing.T) {
	ds := buildDataset([]string{"n1", "n2"}, [][]string{
		{"1", "bad"},
		{"2", "5"},
	})
	class := dataset.ColumnClassification{Numeric: []string{"n1", "n2"}}

	specs := New().Recommend(ds, class)

	area := findChart(specs, viz.ChartArea)
	if area == nil {
		t.Fatal("Expected an area chart")
	}
	if area.Data[0]["value2"] != 0.0 {
		t.Errorf("Expected invalid cell coerced to zero, got %v", area.Data[0]["value2"])
	}
	if area.Data[0]["name"] != "Point 1" {
		t.Errorf("Expected synthetic label 'Point 1', got %v", area.Data[0]["name"])
	}
}

func TestRecommend_StackedAreaKeyedByColumnNames(t *testing.T) {
	ds := buildDataset([]string{"sales", "costs"}, [][]string{
		{"10", "4"},
		{"20", "8"},
	})
	class := dataset.ColumnClassification{Numeric: []string{"sales", "costs"}}

	specs := New().Recommend(ds, class)

	stacked := findChart(specs, viz.ChartStackedArea)
	if stacked == nil {
		t.Fatal("Expected a stackedarea chart")
	}
	if stacked.Data[0]["name"] != "P1" {
		t.Errorf("Expected label P1, got %v", stacked.Data[0]["name"])
	}
	if stacked.Data[0]["sales"] != 10.0 || stacked.Data[0]["costs"] != 4.0 {
		t.Errorf("Expected raw column keys, got %+v", stacked.Data[0])
	}
	if len(stacked.Keys) != 2 || stacked.Keys[0] != "sales" {
		t.Errorf("Expected keys [sales costs], got %v", stacked.Keys)
	}
}

func TestRecommend_BarGroupsCappedAtTen(t *testing.T) {
	cells := make([][]string, 15)
	for i := range cells {
		cells[i] = []string{fmt.Sprintf("g%02d", i), "1"}
	}
	ds := buildDataset([]string{"cat", "num"}, cells)
	class := dataset.ColumnClassification{
		Categorical: []string{"cat"},
		Numeric:     []string{"num"},
	}

	specs := New().Recommend(ds, class)

	bar := findChart(specs, viz.ChartBar)
	if bar == nil {
		t.Fatal("Expected a bar chart")
	}
	if len(bar.Data) != 10 {
		t.Errorf("Expected 10 groups, got %d", len(bar.Data))
	}
}

func TestRecommend_MultiBarUsesFirstThreeColumns(t *testing.T) {
	ds := buildDataset([]string{"a", "b", "c", "d"}, [][]string{
		{"1", "2", "3", "4"},
	})
	class := dataset.ColumnClassification{Numeric: []string{"a", "b", "c", "d"}}

	specs := New().Recommend(ds, class)

	multi := findChart(specs, viz.ChartMultiBar)
	if multi == nil {
		t.Fatal("Expected a multibar chart")
	}
	if len(multi.Keys) != 3 {
		t.Errorf("Expected 3 keys, got %v", multi.Keys)
	}
	if _, present := multi.Data[0]["d"]; present {
		t.Error("Fourth numeric column should not appear in multibar rows")
	}
	if multi.Data[0]["name"] != "Row 1" {
		t.Errorf("Expected label 'Row 1', got %v", multi.Data[0]["name"])
	}
}
