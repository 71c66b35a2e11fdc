package service

import (
	"context"

	"github.com/postcraft/postcraft-gateway/internal/projects/domain"
)

// Repository is the storage the project service reads from.
type Repository interface {
	Configured() bool
	List(ctx context.Context) ([]domain.Project, error)
	Ping(ctx context.Context) error
}

// ProjectService handles project-related business logic
type ProjectService struct {
	repo Repository
}

// NewProjectService creates a new project service
func NewProjectService(repo Repository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

// Configured reports whether the project store is available.
func (s *ProjectService) Configured() bool {
	return s.repo.Configured()
}

// List returns all titled projects, most recently updated first
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	if !s.repo.Configured() {
		return nil, domain.ErrStoreUnavailable
	}

	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortByLastUpdated(projects)
	return projects, nil
}

// Ping checks the store connection
func (s *ProjectService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
