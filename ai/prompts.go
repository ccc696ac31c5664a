package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"insighta/domain/dataset"
	"insighta/domain/viz"
)

// sampleRows caps how many leading records the prompt context carries
const sampleRows = 3

// chartContract instructs the agent to answer chart requests with a single
// raw JSON object and nothing else. Replies still arrive wrapped in fences
// or prose often enough that the extractor tolerates both.
const chartContract = `IMPORTANT: If the user asks you to create any kind of chart or visualization, you MUST respond with ONLY a JSON object and nothing else. No explanation, no text before or after. Just the raw JSON in this exact format:
{"chartType": "bar", "title": "Chart Title", "data": [{"name": "Category1", "value": 123}, {"name": "Category2", "value": 456}]}

Supported chart types: bar, line, pie, area

If the user is NOT asking for a chart, provide a helpful analysis of their data.`

// BuildDataContext renders the dataset summary block handed to the agent on
// every turn: file name, row count, column list, existing chart titles and
// the first few sample rows as JSON.
func BuildDataContext(ds *dataset.Dataset, charts []viz.ChartSpec) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dataset: %s\n", ds.Name)
	fmt.Fprintf(&b, "Total Rows: %d\n", ds.Len())
	fmt.Fprintf(&b, "Columns: %s\n\n", strings.Join(ds.Columns, ", "))

	b.WriteString("Available Charts:\n")
	for _, chart := range charts {
		fmt.Fprintf(&b, "- %s\n", chart.Title)
	}

	sample := ds.Head(sampleRows)
	sampleJSON, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		sampleJSON = []byte("[]")
	}
	fmt.Fprintf(&b, "\nSample Data (first %d rows):\n%s\n", sampleRows, sampleJSON)

	return b.String()
}

// BuildTurnPrompt assembles the full prompt for one conversational turn
func BuildTurnPrompt(dataContext, userInput string) string {
	return fmt.Sprintf(
		"You are a data analysis assistant. Here's the dataset context:\n\n%s\n\nUser question: %s\n\n%s",
		dataContext, userInput, chartContract,
	)
}
