package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// OpenAIClient implements Client against the chat/completions endpoint
type OpenAIClient struct {
	config     *Config
	apiKey     string
	httpClient *http.Client
}

// NewOpenAIClient creates a new OpenAI client. The key must carry the sk-
// prefix; anything else is a placeholder and is rejected up front so a
// misconfigured deployment fails before the first request.
func NewOpenAIClient(config *Config, apiKey string) (*OpenAIClient, error) {
	if config == nil {
		config = DefaultOpenAIConfig()
	}
	config.normalize()

	if !strings.HasPrefix(apiKey, "sk-") {
		return nil, &APICallError{Message: "OpenAI API key not configured"}
	}

	return &OpenAIClient{
		config:     config,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: config.Timeout},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float32       `json:"temperature"`
	MaxTokens      int           `json:"max_tokens"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateJSON sends a chat completion request in JSON mode
func (c *OpenAIClient) GenerateJSON(ctx context.Context, system, user string) (string, error) {
	reqBody := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
		ResponseFormat: &struct {
			Type string `json:"type"`
		}{Type: "json_object"},
	}

	raw, err := c.post(ctx, strings.TrimRight(c.config.BaseURL, "/")+"/chat/completions", reqBody)
	if err != nil {
		return "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", &ParseError{Message: "decode completion response", Cause: err}
	}
	if len(resp.Choices) == 0 {
		return "", &ParseError{Message: "no choices in completion response"}
	}

	return CleanJSONBlock(resp.Choices[0].Message.Content), nil
}

// Model returns the configured model name
func (c *OpenAIClient) Model() string {
	return c.config.Model
}

// Close is a no-op for the HTTP client
func (c *OpenAIClient) Close() error {
	return nil
}

func (c *OpenAIClient) post(ctx context.Context, url string, body any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, &APICallError{Message: "marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, &APICallError{Message: "build request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APICallError{Message: "http request failed", Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APICallError{Message: "read response body", Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APICallError{Message: fmt.Sprintf("status %d: %s", resp.StatusCode, string(data))}
	}
	return data, nil
}
