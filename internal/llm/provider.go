// Package llm wraps the hosted text generation APIs behind a single
// prompt-in, text-out interface.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/postcraft/postcraft-gateway/config"
)

// MaxTemperature is the highest sampling temperature the supported providers accept.
const MaxTemperature float32 = 2.0

var (
	// ErrNotConfigured is returned by New when the selected provider has no API key.
	ErrNotConfigured = errors.New("llm provider API key is not configured")
	// ErrEmptyResponse is returned when the provider answered without any text.
	ErrEmptyResponse = errors.New("llm provider returned no text")
)

// Request is a single generation call.
type Request struct {
	Prompt          string
	Temperature     float32
	MaxOutputTokens int32
}

// Provider generates text for a prompt.
type Provider interface {
	Name() string
	Model() string
	Generate(ctx context.Context, req Request) (string, error)
}

// New builds the provider selected by cfg.Provider.
func New(ctx context.Context, cfg config.LLMConfig) (Provider, error) {
	if cfg.APIKey() == "" {
		return nil, ErrNotConfigured
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		p, err := NewGeminiProvider(ctx, GeminiConfig{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		})
		if err != nil {
			return nil, err
		}
		return p, nil
	case config.ProviderOpenAI:
		return NewOpenAIProvider(OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
		}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// ClampTemperature bounds t to [0, MaxTemperature].
func ClampTemperature(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > MaxTemperature {
		return MaxTemperature
	}
	return t
}
