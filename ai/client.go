package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Client talks to the Anthropic Messages API. Transport concerns (timeout,
// cancellation, retries by the caller) live here, outside the engine core.
type Client struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   int // in milliseconds
}

// Config carries the assistant settings the client needs
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int
	TimeoutMS int
}

const anthropicVersion = "2023-06-01"

// NewClient creates an assistant client from configuration
func NewClient(cfg Config) *Client {
	log.Printf("[AssistantClient] Initializing client with model=%s, maxTokens=%d", cfg.Model, cfg.MaxTokens)

	timeout := cfg.TimeoutMS
	if timeout <= 0 {
		timeout = 60000
	}
	return &Client{
		APIKey:    cfg.APIKey,
		BaseURL:   "https://api.anthropic.com/v1",
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
		Timeout:   timeout,
	}
}

// Configured reports whether an API key is present. The dashboard runs
// without one; only the chat surface degrades.
func (c *Client) Configured() bool {
	return c != nil && c.APIKey != ""
}

// Complete sends one user prompt and returns the assistant's reply text
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	timeout := time.Duration(c.Timeout) * time.Millisecond
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	type requestBody struct {
		Model     string    `json:"model"`
		MaxTokens int       `json:"max_tokens"`
		Messages  []message `json:"messages"`
	}

	reqBody := requestBody{
		Model:     c.Model,
		MaxTokens: c.MaxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/messages", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	log.Printf("[AssistantClient] Sending request to %s - promptLength=%d", c.Model, len(prompt))

	httpClient := &http.Client{Timeout: timeout}
	resp, err := httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("request timeout after %v: %w", timeout, err)
		}
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("anthropic API error (status %d): %s", resp.StatusCode, string(body))
	}

	// Parse the Messages API envelope
	type contentBlock struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	type messagesResponse struct {
		Content []contentBlock `json:"content"`
	}

	var envelope messagesResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("failed to parse anthropic response: %w", err)
	}
	if len(envelope.Content) == 0 {
		return "", fmt.Errorf("no content blocks in anthropic response")
	}

	log.Printf("[AssistantClient] Received reply (%d bytes)", len(envelope.Content[0].Text))
	return envelope.Content[0].Text, nil
}
