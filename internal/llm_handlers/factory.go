package llmHandlers

import (
	"fmt"

	"onestop-backend/internal/config"
)

type Provider string

const (
	ProviderOllama Provider = "ollama"
	ProviderOpenAI Provider = "openai" // any OpenAI-compatible endpoint
)

// NewClient builds the gateway for the provider selected in config. The
// model is fixed here for the process lifetime.
func NewClient(cfg config.Config) (Client, error) {
	switch Provider(cfg.LLMProvider) {
	case ProviderOllama:
		return NewOllamaClient(OllamaConfig{
			ServerURL: cfg.OllamaURL,
			Model:     cfg.OllamaModel,
			KeepAlive: cfg.OllamaKeepAlive,
		})
	case ProviderOpenAI:
		return NewOpenAIClient(OpenAIConfig{
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
			APIKey:  cfg.OpenAIKey,
		})
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLMProvider)
	}
}
