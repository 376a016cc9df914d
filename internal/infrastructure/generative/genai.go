package generative

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// GenAIClient asks Gemini for a JSON document constrained by a JSON schema.
type GenAIClient struct {
	client *genai.Client
	model  string
}

type Option func(*genai.ClientConfig)

// WithBaseURL points the client at another endpoint, e.g. a proxy.
func WithBaseURL(url string) Option {
	return func(cfg *genai.ClientConfig) {
		cfg.HTTPOptions.BaseURL = url
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(cfg *genai.ClientConfig) {
		cfg.HTTPClient = c
	}
}

func NewGenAIClient(ctx context.Context, apiKey, model string, opts ...Option) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("genai api key is required")
	}
	if model == "" {
		model = defaultModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GenAIClient{client: client, model: model}, nil
}

// CompleteJSON returns the model's answer to prompt. The answer is
// guaranteed to be syntactically valid JSON; matching the schema is up to
// the model.
func (c *GenAIClient) CompleteJSON(ctx context.Context, prompt string, schema map[string]any) (json.RawMessage, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType:   "application/json",
		ResponseJsonSchema: schema,
	})
	if err != nil {
		return nil, fmt.Errorf("genai generate: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, errors.New("genai returned an empty answer")
	}
	if !json.Valid([]byte(text)) {
		return nil, fmt.Errorf("genai returned invalid json: %.80q", text)
	}
	return json.RawMessage(text), nil
}
