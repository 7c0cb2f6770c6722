package completion

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// OpenRouterClient calls the OpenRouter chat-completions endpoint with a
// fixed model and a bearer credential.
type OpenRouterClient struct {
	client *resty.Client
	model  string
}

// NewOpenRouter builds a client for the given base URL (e.g.
// https://openrouter.ai). The timeout bounds each single outbound call.
func NewOpenRouter(baseURL, apiKey, model string, timeout time.Duration) *OpenRouterClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(apiKey).
		SetTimeout(timeout)

	return &OpenRouterClient{client: c, model: model}
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the message sequence and returns the first choice's message
// content verbatim. Non-2xx statuses, transport failures and bodies without
// choices are all errors; nothing is retried.
func (c *OpenRouterClient) Complete(ctx context.Context, messages []Message) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&chatRequest{Model: c.model, Messages: messages}).
		Post("/api/v1/chat/completions")
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", fmt.Errorf("completion status %d: %s", resp.StatusCode(), resp.String())
	}

	var out chatResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("completion response has no choices")
	}
	return out.Choices[0].Message.Content, nil
}

var _ Client = (*OpenRouterClient)(nil)
