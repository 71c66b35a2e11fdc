package http

import "github.com/postcraft/postcraft-gateway/internal/projects/service"

// GenerationStatus reports whether text generation is available.
type GenerationStatus interface {
	Configured() bool
}

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc        *service.ProjectService
	generation GenerationStatus
}

func New(svc *service.ProjectService, generation GenerationStatus) *Handler {
	return &Handler{svc: svc, generation: generation}
}
