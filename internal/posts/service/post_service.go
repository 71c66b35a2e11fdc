package service

import (
	"context"
	"strings"
	"time"

	"github.com/postcraft/postcraft-gateway/internal/llm"
	"github.com/postcraft/postcraft-gateway/internal/logger"
	"github.com/postcraft/postcraft-gateway/internal/posts/domain"
	projectdomain "github.com/postcraft/postcraft-gateway/internal/projects/domain"
)

const (
	DefaultTemperature     float32 = 0.7
	RegenerateBoost        float32 = 0.2
	DefaultMaxOutputTokens int32   = 1024
)

// Options tunes generation parameters; zero values fall back to the defaults.
type Options struct {
	Temperature     float32
	MaxOutputTokens int32
}

// PostService builds prompts and delegates them to the text generation provider.
type PostService struct {
	provider    llm.Provider
	temperature float32
	maxTokens   int32
	metrics     llm.Metrics
}

// NewPostService creates a post service; provider may be nil, in which case
// every generation fails with domain.ErrProviderNotConfigured.
func NewPostService(provider llm.Provider, opts Options) *PostService {
	s := &PostService{
		provider:    provider,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxOutputTokens,
	}
	if s.temperature == 0 {
		s.temperature = DefaultTemperature
	}
	if s.maxTokens == 0 {
		s.maxTokens = DefaultMaxOutputTokens
	}
	return s
}

// Configured reports whether a provider is available.
func (s *PostService) Configured() bool {
	return s.provider != nil
}

// ProviderInfo returns the provider and model names, or empty strings when unconfigured.
func (s *PostService) ProviderInfo() (name, model string) {
	if s.provider == nil {
		return "", ""
	}
	return s.provider.Name(), s.provider.Model()
}

// Stats returns provider call metrics since startup.
func (s *PostService) Stats() llm.Snapshot {
	return s.metrics.Snapshot()
}

// Generate writes a post from free-text context.
func (s *PostService) Generate(ctx context.Context, userContext string) (string, error) {
	return s.generate(ctx, "generating_linkedin_post", postPrompt(userContext), s.temperature)
}

// Regenerate writes a post from the same context with a higher sampling temperature.
func (s *PostService) Regenerate(ctx context.Context, userContext string) (string, error) {
	return s.generate(ctx, "regenerating_linkedin_post", regeneratePrompt(userContext), llm.ClampTemperature(s.temperature+RegenerateBoost))
}

// Modify shortens or expands an existing post.
func (s *PostService) Modify(ctx context.Context, post string, action domain.Action) (string, error) {
	action, err := domain.ParseAction(string(action))
	if err != nil {
		return "", err
	}
	return s.generate(ctx, "modifying_linkedin_post", modifyPrompt(post, action), s.temperature)
}

// GenerateComment writes, or refines, a congratulatory comment.
func (s *PostService) GenerateComment(ctx context.Context, req domain.CommentRequest) (string, error) {
	return s.generate(ctx, "generating_comment", commentPrompt(req), s.temperature)
}

// GenerateProjectPost writes an announcement post for a project.
func (s *PostService) GenerateProjectPost(ctx context.Context, p projectdomain.Project) (string, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return "", domain.ErrMissingTitle
	}
	return s.generate(ctx, "generating_project_post", projectPostPrompt(p), s.temperature)
}

func (s *PostService) generate(ctx context.Context, op, prompt string, temperature float32) (string, error) {
	log := logger.NewLogger(ctx)

	if s.provider == nil {
		log.LogWarnf(op, "provider not configured")
		return "", &domain.GenerationError{Op: op, Err: domain.ErrProviderNotConfigured}
	}

	log.LogInfof(op, "provider=%s model=%s temperature=%.2f prompt_chars=%d", s.provider.Name(), s.provider.Model(), temperature, len(prompt))
	start := time.Now()
	text, err := s.provider.Generate(ctx, llm.Request{
		Prompt:          prompt,
		Temperature:     temperature,
		MaxOutputTokens: s.maxTokens,
	})
	s.metrics.Record(time.Since(start), err)
	if err != nil {
		log.LogError(op, err)
		return "", &domain.GenerationError{Op: op, Err: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		log.LogWarnf(op, "provider returned no text")
		return "", &domain.GenerationError{Op: op, Err: llm.ErrEmptyResponse}
	}

	log.LogInfof(op, "generated chars=%d", len(text))
	return text, nil
}
