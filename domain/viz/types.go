package viz

// ChartType identifies the visual shape of a chart specification.
// The extraction protocol is deliberately permissive: values outside the
// known set are carried through and left to the rendering boundary.
type ChartType string

const (
	ChartBar         ChartType = "bar"
	ChartLine        ChartType = "line"
	ChartArea        ChartType = "area"
	ChartPie         ChartType = "pie"
	ChartMultiBar    ChartType = "multibar"
	ChartStackedArea ChartType = "stackedarea"
)

// renderable is the capability set of the rendering collaborator.
// Unknown types are a downstream no-op, not an error.
var renderable = map[ChartType]bool{
	ChartBar:         true,
	ChartLine:        true,
	ChartArea:        true,
	ChartPie:         true,
	ChartMultiBar:    true,
	ChartStackedArea: true,
}

// CanRender reports whether the rendering collaborator can draw this type
func CanRender(t ChartType) bool {
	return renderable[t]
}

// Datum is one entry of a chart's data sequence: a small plain record
// whose shape is determined by the chart type (e.g. {name, value}).
type Datum map[string]any

// ChartSpec is a declarative description of one chart, independent of any
// rendering technology.
type ChartSpec struct {
	Type  ChartType `json:"type"`
	Title string    `json:"title"`
	Data  []Datum   `json:"data"`
	XKey  string    `json:"xKey,omitempty"`
	YKey  string    `json:"yKey,omitempty"`
	Keys  []string  `json:"keys,omitempty"`
}

// KPI is a single summary statistic card shown alongside charts.
// Trend is a static placeholder: the engine does not compute real trend
// and the field is documented as such rather than silently fixed.
type KPI struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle"`
	Trend    string `json:"trend"`
	Max      string `json:"max,omitempty"`
	Min      string `json:"min,omitempty"`
}
