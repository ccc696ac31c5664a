package session

import (
	"sync"
	"testing"

	"insighta/domain/dataset"
	"insighta/domain/viz"
	"insighta/internal/profile"
)

func loadedDashboard() *Dashboard {
	d := NewDashboard()
	ds := dataset.New("test", []string{"a"}, []dataset.Record{{"a": "1"}})
	d.Load(ds, &profile.Profile{
		RowCount: 1,
		Columns:  []string{"a"},
		Charts:   []viz.ChartSpec{{Type: viz.ChartBar, Title: "seed"}},
	})
	return d
}

func TestLoad_ReplacesStateWholesale(t *testing.T) {
	d := loadedDashboard()
	d.AppendChart(viz.ChartSpec{Type: viz.ChartPie, Title: "extra"})
	d.AppendMessage(ChatMessage{Role: "user", Content: "hi"})

	ds2 := dataset.New("second", []string{"b"}, nil)
	d.Load(ds2, &profile.Profile{Columns: []string{"b"}})

	if d.Dataset().Name != "second" {
		t.Errorf("Expected dataset replaced, got %q", d.Dataset().Name)
	}
	if len(d.Charts()) != 0 {
		t.Errorf("Expected chart list replaced, not merged; got %d charts", len(d.Charts()))
	}
	if len(d.Messages()) != 0 {
		t.Errorf("Expected transcript cleared on load, got %d messages", len(d.Messages()))
	}
}

func TestCharts_SnapshotUnaffectedByLaterAppends(t *testing.T) {
	d := loadedDashboard()

	snapshot := d.Charts()
	d.AppendChart(viz.ChartSpec{Type: viz.ChartLine, Title: "later"})

	if len(snapshot) != 1 {
		t.Errorf("Expected snapshot of 1 chart, got %d", len(snapshot))
	}
	if len(d.Charts()) != 2 {
		t.Errorf("Expected 2 charts after append, got %d", len(d.Charts()))
	}
}

func TestReset_DropsEverything(t *testing.T) {
	d := loadedDashboard()
	d.AppendMessage(ChatMessage{Role: "user", Content: "hi"})

	d.Reset()

	if d.Loaded() {
		t.Error("Expected dashboard unloaded after reset")
	}
	if d.Profile() != nil || len(d.Charts()) != 0 || len(d.Messages()) != 0 {
		t.Error("Expected all state dropped after reset")
	}
}

func TestAppendChart_ConcurrentAppendsAllLand(t *testing.T) {
	d := loadedDashboard()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.AppendChart(viz.ChartSpec{Type: viz.ChartBar, Title: "c"})
		}()
	}
	wg.Wait()

	if len(d.Charts()) != 21 {
		t.Errorf("Expected 21 charts after concurrent appends, got %d", len(d.Charts()))
	}
}
