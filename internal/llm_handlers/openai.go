package llmHandlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

type OpenAIConfig struct {
	Model   string // e.g. "gpt-4o-mini"
	BaseURL string // optional: for OpenAI-compatible APIs
	APIKey  string // if not set, it falls back to env
}

// OpenAIClient serves deployments that point the assistant at an
// OpenAI-compatible endpoint instead of a local Ollama server.
type OpenAIClient struct {
	llm   llms.Model
	model string
}

func NewOpenAIClient(cfg OpenAIConfig) (*OpenAIClient, error) {
	if cfg.Model == "" {
		return nil, errors.New("openai model must not be empty")
	}
	opts := []openai.Option{
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, openai.WithToken(cfg.APIKey))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}
	return &OpenAIClient{llm: llm, model: cfg.Model}, nil
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt must not be empty")
	}
	return generate(ctx, c.llm, prompt)
}

func (c *OpenAIClient) Warm(ctx context.Context) error {
	_, err := c.llm.GenerateContent(ctx,
		[]llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, " ")},
		llms.WithMaxTokens(1),
	)
	return err
}

func (c *OpenAIClient) Model() string {
	return c.model
}
