package llmHandlers

import (
	"context"
)

// Client is the gateway to the single text-generation model configured for
// this process. One synchronous generation per call, no retries.
type Client interface {
	// Generate sends one prompt and returns the full completion.
	Generate(ctx context.Context, prompt string) (string, error)
	// Warm issues a throwaway generation so the backing server loads the
	// model outside the request path.
	Warm(ctx context.Context) error
	// Model reports the configured model tag.
	Model() string
}
