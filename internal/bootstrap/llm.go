package bootstrap

import (
	"context"
	"errors"
	"log"

	"github.com/postcraft/postcraft-gateway/config"
	"github.com/postcraft/postcraft-gateway/internal/llm"
	postservice "github.com/postcraft/postcraft-gateway/internal/posts/service"
)

// NewPostService builds the post service. A missing or broken provider
// leaves generation disabled instead of failing startup.
func NewPostService(ctx context.Context, cfg config.LLMConfig) *postservice.PostService {
	provider, err := llm.New(ctx, cfg)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		log.Printf("[warn] %s API key not set, generation disabled", cfg.Provider)
	case err != nil:
		log.Printf("[error] llm provider %s: %v", cfg.Provider, err)
	default:
		log.Printf("[info] llm provider=%s model=%s", provider.Name(), provider.Model())
	}

	return postservice.NewPostService(provider, postservice.Options{
		Temperature:     cfg.Temperature,
		MaxOutputTokens: cfg.MaxOutputTokens,
	})
}
