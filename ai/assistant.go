package ai

import (
	"context"
	"fmt"
	"log"

	"insighta/domain/core"
	"insighta/domain/dataset"
	"insighta/domain/viz"
)

// Assistant runs one conversational turn: prompt compilation, the external
// agent call, and the extraction pass over the untrusted reply.
type Assistant struct {
	client *Client
}

// NewAssistant creates an assistant around a configured client
func NewAssistant(client *Client) *Assistant {
	return &Assistant{client: client}
}

// Configured reports whether the assistant can reach the external agent
func (a *Assistant) Configured() bool {
	return a != nil && a.client.Configured()
}

// Ask sends the user's question with full dataset context and runs the
// extraction protocol on the reply. The returned result's DisplayText is
// shown to the user verbatim; when Outcome is OutcomeCreated the caller
// appends result.Chart to its chart list (copy-on-append).
func (a *Assistant) Ask(ctx context.Context, ds *dataset.Dataset, charts []viz.ChartSpec, userInput string) (ExtractionResult, error) {
	if !a.Configured() {
		return ExtractionResult{}, core.ErrAssistantUnavailable
	}

	prompt := BuildTurnPrompt(BuildDataContext(ds, charts), userInput)

	reply, err := a.client.Complete(ctx, prompt)
	if err != nil {
		log.Printf("[Assistant] Agent call failed: %v", err)
		return ExtractionResult{}, fmt.Errorf("%w: %v", core.ErrAssistantCall, err)
	}

	return ExtractChartSpec(reply), nil
}
