package llmHandlers

import (
	"context"
	"errors"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

type OllamaConfig struct {
	ServerURL string // e.g. "http://localhost:11434"
	Model     string // e.g. "gemma3:4b"
	KeepAlive string // how long the server keeps the model in memory
}

// OllamaClient talks to a locally running Ollama server.
type OllamaClient struct {
	llm   llms.Model
	model string
}

func NewOllamaClient(cfg OllamaConfig) (*OllamaClient, error) {
	if cfg.Model == "" {
		return nil, errors.New("ollama model must not be empty")
	}
	opts := []ollama.Option{
		ollama.WithModel(cfg.Model),
	}
	if cfg.ServerURL != "" {
		opts = append(opts, ollama.WithServerURL(cfg.ServerURL))
	}
	if cfg.KeepAlive != "" {
		opts = append(opts, ollama.WithKeepAlive(cfg.KeepAlive))
	}

	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, err
	}
	return &OllamaClient{llm: llm, model: cfg.Model}, nil
}

func (c *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt must not be empty")
	}
	return generate(ctx, c.llm, prompt)
}

func (c *OllamaClient) Warm(ctx context.Context) error {
	_, err := c.llm.GenerateContent(ctx,
		[]llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, " ")},
		llms.WithMaxTokens(1),
	)
	return err
}

func (c *OllamaClient) Model() string {
	return c.model
}

// generate runs one completion and classifies failures into gateway errors.
func generate(ctx context.Context, model llms.Model, prompt string) (string, error) {
	resp, err := model.GenerateContent(ctx,
		[]llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, prompt)},
		llms.WithTemperature(0.2),
	)
	if err != nil {
		return "", newError(KindUnreachable, err)
	}
	if len(resp.Choices) == 0 {
		return "", newError(KindEmptyResponse, errors.New("no choices in response"))
	}
	text := resp.Choices[0].Content
	if strings.TrimSpace(text) == "" {
		return "", newError(KindEmptyResponse, errors.New("blank completion"))
	}
	return text, nil
}
