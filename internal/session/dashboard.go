// Package session holds the caller-owned dashboard state: the current
// dataset, its profile, the accumulated chart list and the chat transcript.
// The engine itself never holds process-wide mutable state; everything it
// returns is threaded through here.
package session

import (
	"log"
	"sync"

	"insighta/domain/dataset"
	"insighta/domain/viz"
	"insighta/internal/profile"
)

// ChatMessage is one entry of the conversation transcript
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Dashboard is the single-user application state. Chart appends are
// copy-on-append: readers holding a snapshot never observe later appends,
// which keeps re-entrant reads from a concurrent UI safe. Overlapping
// assistant replies are serialized by the mutex.
type Dashboard struct {
	mu       sync.RWMutex
	ds       *dataset.Dataset
	profile  *profile.Profile
	charts   []viz.ChartSpec
	messages []ChatMessage
}

// NewDashboard creates an empty dashboard session
func NewDashboard() *Dashboard {
	return &Dashboard{}
}

// Load replaces the session wholesale with a freshly ingested dataset and
// its profile. KPI and chart lists are replaced, never merged.
func (d *Dashboard) Load(ds *dataset.Dataset, prof *profile.Profile) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.ds = ds
	d.profile = prof
	d.charts = append([]viz.ChartSpec(nil), prof.Charts...)
	d.messages = nil

	log.Printf("[Dashboard] Loaded dataset %q (%d rows, %d charts)", ds.Name, ds.Len(), len(d.charts))
}

// Loaded reports whether a dataset is currently in place
func (d *Dashboard) Loaded() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.ds != nil
}

// Dataset returns the current dataset, or nil
func (d *Dashboard) Dataset() *dataset.Dataset {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.ds
}

// Profile returns the profile of the current dataset, or nil
func (d *Dashboard) Profile() *profile.Profile {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.profile
}

// Charts returns a snapshot of the accumulated chart list
func (d *Dashboard) Charts() []viz.ChartSpec {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]viz.ChartSpec(nil), d.charts...)
}

// AppendChart adds one extracted chart to the accumulated list.
// Entries are only ever removed by Reset.
func (d *Dashboard) AppendChart(spec viz.ChartSpec) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.charts = append(append([]viz.ChartSpec(nil), d.charts...), spec)
}

// AppendMessage records one transcript entry
func (d *Dashboard) AppendMessage(msg ChatMessage) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = append(d.messages, msg)
}

// Messages returns a snapshot of the transcript
func (d *Dashboard) Messages() []ChatMessage {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]ChatMessage(nil), d.messages...)
}

// Reset drops the dataset, profile, charts and transcript
func (d *Dashboard) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ds = nil
	d.profile = nil
	d.charts = nil
	d.messages = nil
	log.Printf("[Dashboard] Session reset")
}
