// Package ai holds the text generation clients used to summarize feedback.
package ai

import (
	"context"
	"fmt"

	"github.com/johnquangdev/meeting-feedback/pkg/config"
)

// Client completes a single prompt and returns the model's text
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewClient builds the client of the configured provider.
// It returns a nil Client when the provider has no API key.
func NewClient(ctx context.Context, cfg *config.AIConfig) (Client, error) {
	if cfg.SummarizerAPIKey() == "" {
		return nil, nil
	}

	switch cfg.Provider {
	case config.AIProviderGroq:
		return NewGroqClient(cfg), nil
	case config.AIProviderGemini:
		client, err := NewGeminiClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}
}
