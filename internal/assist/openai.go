package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config points the client at an OpenAI-compatible chat completions server.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// OpenAI is a Provider speaking the chat completions wire format. Any
// compatible server works; only BaseURL and Model change.
type OpenAI struct {
	config Config
	client *http.Client
}

var _ Provider = (*OpenAI)(nil)

func NewOpenAI(config Config) *OpenAI {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	return &OpenAI{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (o *OpenAI) Rewrite(ctx context.Context, req Request) (string, error) {
	if o.config.BaseURL == "" || o.config.Model == "" {
		return "", ErrNotConfigured
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	body, err := json.Marshal(chatRequest{
		Model: o.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt(req)},
			{Role: "user", Content: req.Text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode assist request: %w", err)
	}

	url := strings.TrimSuffix(o.config.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build assist request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if o.config.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+o.config.APIKey)
	}

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("assist request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read assist response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode assist response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("assist server returned %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", fmt.Errorf("assist server returned %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("assist response carried no choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
