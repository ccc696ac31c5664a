package ai

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"insighta/domain/viz"
)

// Outcome distinguishes why an extraction did or did not yield a chart.
// The assistant's reply either never asked for a chart (the normal
// conversational path), asked for one but embedded unparseable JSON, or
// produced a usable specification.
type Outcome string

const (
	OutcomeNoChart   Outcome = "no_chart_requested"
	OutcomeMalformed Outcome = "malformed"
	OutcomeCreated   Outcome = "created"
)

// ExtractionResult is the outcome of one pass over an assistant reply.
// DisplayText is shown verbatim to the end user; the raw JSON payload never
// is, whether extraction succeeded or failed.
type ExtractionResult struct {
	Outcome     Outcome
	Success     bool
	Chart       *viz.ChartSpec
	DisplayText string
}

const malformedApology = "I tried to create a chart but encountered an error parsing the data. Please try asking again with different details."

// chartPayload is the JSON contract the assistant is instructed to emit
// when asked for a chart: a single object with no surrounding prose.
type chartPayload struct {
	ChartType string      `json:"chartType"`
	Title     string      `json:"title"`
	Data      []viz.Datum `json:"data"`
}

// ExtractChartSpec locates, isolates, parses and normalizes one embedded
// chart specification inside untrusted free-form reply text. The reply may
// wrap the JSON in markdown fences or surround it with prose; both are
// tolerated. When no candidate block exists the reply passes through
// unchanged as ordinary conversation.
func ExtractChartSpec(replyText string) ExtractionResult {
	candidate, found := findChartBlock(replyText)
	if !found {
		return ExtractionResult{
			Outcome:     OutcomeNoChart,
			DisplayText: replyText,
		}
	}

	cleaned := stripFences(candidate)

	var payload chartPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		log.Printf("[ChartExtractor] Failed to parse embedded chart JSON: %v", err)
		return ExtractionResult{
			Outcome:     OutcomeMalformed,
			DisplayText: malformedApology,
		}
	}

	// histogram is an alias the agent sometimes emits; everything else,
	// known or not, passes through for the rendering boundary to judge
	chartType := viz.ChartType(payload.ChartType)
	if chartType == "histogram" {
		chartType = viz.ChartBar
	}

	title := payload.Title
	if title == "" {
		title = "New Chart"
	}
	data := payload.Data
	if data == nil {
		data = []viz.Datum{}
	}

	chart := &viz.ChartSpec{
		Type:  chartType,
		Title: title,
		Data:  data,
		XKey:  "name",
		YKey:  "value",
	}

	log.Printf("[ChartExtractor] Extracted %q chart: %s", chart.Type, chart.Title)
	return ExtractionResult{
		Outcome:     OutcomeCreated,
		Success:     true,
		Chart:       chart,
		DisplayText: fmt.Sprintf("✅ Chart created successfully! I've added %q to your dashboard. Scroll up to see it!", title),
	}
}

// findChartBlock returns the first balanced brace block that contains the
// literal key "chartType". Balancing ignores braces inside JSON strings so
// nested data objects stay inside the candidate.
func findChartBlock(text string) (string, bool) {
	for start := 0; start < len(text); start++ {
		if text[start] != '{' {
			continue
		}
		block, ok := balancedBlock(text[start:])
		if !ok {
			continue
		}
		if strings.Contains(block, `"chartType"`) {
			return block, true
		}
	}
	return "", false
}

// balancedBlock scans a string starting at '{' and returns the substring up
// to the matching close brace
func balancedBlock(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

// stripFences removes markdown code-fence markers left around or inside the
// candidate block
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
