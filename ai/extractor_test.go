package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insighta/domain/viz"
)

func TestExtractChartSpec_FencedHistogram(t *testing.T) {
	reply := "Here is your chart:\n```json\n{\"chartType\": \"histogram\", \"title\": \"Ages\", \"data\": [{\"name\": \"20-30\", \"value\": 12}]}\n```"

	result := ExtractChartSpec(reply)

	require.Equal(t, OutcomeCreated, result.Outcome)
	require.True(t, result.Success)
	require.NotNil(t, result.Chart)

	// histogram normalizes to bar
	assert.Equal(t, viz.ChartBar, result.Chart.Type)
	assert.Equal(t, "Ages", result.Chart.Title)
	assert.Len(t, result.Chart.Data, 1)
	assert.Equal(t, "name", result.Chart.XKey)
	assert.Equal(t, "value", result.Chart.YKey)
	assert.Contains(t, result.DisplayText, `"Ages"`)
	assert.NotContains(t, result.DisplayText, "chartType")
}

func TestExtractChartSpec_PlainConversationPassesThrough(t *testing.T) {
	reply := "The average is 42."

	result := ExtractChartSpec(reply)

	assert.Equal(t, OutcomeNoChart, result.Outcome)
	assert.False(t, result.Success)
	assert.Nil(t, result.Chart)
	assert.Equal(t, reply, result.DisplayText)
}

func TestExtractChartSpec_MalformedJSONYieldsApology(t *testing.T) {
	// title is unquoted: the block is found but does not parse
	reply := `{"chartType": "bar", title: bad json}`

	result := ExtractChartSpec(reply)

	assert.Equal(t, OutcomeMalformed, result.Outcome)
	assert.False(t, result.Success)
	assert.Nil(t, result.Chart)
	assert.Contains(t, result.DisplayText, "error parsing the data")
	assert.NotContains(t, result.DisplayText, "chartType")
}

func TestExtractChartSpec_DefaultsApplied(t *testing.T) {
	reply := `{"chartType": "line"}`

	result := ExtractChartSpec(reply)

	require.Equal(t, OutcomeCreated, result.Outcome)
	assert.Equal(t, viz.ChartLine, result.Chart.Type)
	assert.Equal(t, "New Chart", result.Chart.Title)
	assert.NotNil(t, result.Chart.Data)
	assert.Empty(t, result.Chart.Data)
}

func TestExtractChartSpec_NestedDataObjectsStayInside(t *testing.T) {
	// The data array holds objects with their own braces; the extracted
	// block must span the entire specification, not stop at the first '}'
	reply := `Sure! {"chartType": "pie", "title": "Regions", "data": [{"name": "north", "value": 3}, {"name": "south", "value": 5}]} Enjoy.`

	result := ExtractChartSpec(reply)

	require.Equal(t, OutcomeCreated, result.Outcome)
	require.Len(t, result.Chart.Data, 2)
	assert.Equal(t, "south", result.Chart.Data[1]["name"])
}

func TestExtractChartSpec_UnknownTypePassesThrough(t *testing.T) {
	reply := `{"chartType": "sunburst", "title": "Odd"}`

	result := ExtractChartSpec(reply)

	require.Equal(t, OutcomeCreated, result.Outcome)
	assert.Equal(t, viz.ChartType("sunburst"), result.Chart.Type)
}

func TestExtractChartSpec_BracesInsideStringsIgnored(t *testing.T) {
	reply := `{"chartType": "bar", "title": "Open { and close }", "data": []}`

	result := ExtractChartSpec(reply)

	require.Equal(t, OutcomeCreated, result.Outcome)
	assert.Equal(t, "Open { and close }", result.Chart.Title)
}
