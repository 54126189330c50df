package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime option the server needs. All values are read
// once at startup; business-logic layers receive them via injection.
type Config struct {
	Port        string `env:"PORT" envDefault:"3000"`
	DatabaseURL string `env:"DB_URL,required"`

	// LLM gateway
	LLMProvider     string        `env:"LLM_PROVIDER" envDefault:"ollama"`
	OllamaURL       string        `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaModel     string        `env:"OLLAMA_MODEL" envDefault:"gemma3:4b"`
	OllamaKeepAlive string        `env:"OLLAMA_KEEP_ALIVE" envDefault:"2h"`
	OpenAIModel     string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL   string        `env:"OPENAI_BASE_URL"`
	OpenAIKey       string        `env:"OPENAI_API_KEY"`
	GenerateTimeout time.Duration `env:"GENERATE_TIMEOUT" envDefault:"120s"`
	WarmOnStart     bool          `env:"MODEL_WARMUP" envDefault:"true"`

	AutoMigrate bool `env:"AUTO_MIGRATE" envDefault:"true"`
}

// Load reads an optional .env file and parses the environment into Config.
func Load() (Config, error) {
	// godotenv.Load() is a no-op if .env doesn't exist; safe in production.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
