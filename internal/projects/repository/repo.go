package repository

import (
	"context"
	"errors"

	"github.com/postcraft/postcraft-gateway/internal/logger"
	"github.com/postcraft/postcraft-gateway/internal/projects/domain"
	"github.com/postcraft/postcraft-gateway/internal/storage/docstore"
)

// ProjectRepository reads project records from the configured document store.
type ProjectRepository struct {
	holder *docstore.Holder
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(holder *docstore.Holder) *ProjectRepository {
	return &ProjectRepository{holder: holder}
}

// Configured reports whether a store is available.
func (r *ProjectRepository) Configured() bool {
	return r.holder.Configured()
}

// List returns every titled record in store iteration order.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	log := logger.NewLogger(ctx)
	collection := r.holder.Collection()

	var docs []docstore.Document
	err := r.holder.View(func(s docstore.Store) error {
		var err error
		docs, err = s.ListDocuments(ctx, collection)
		return err
	})
	if err != nil {
		return nil, storeErr("list_projects", err)
	}

	out := make([]domain.Project, 0, len(docs))
	for _, doc := range docs {
		p, ok := domain.FromDocument(doc.ID, doc.Data)
		if !ok {
			log.LogWarnf("list_projects", "skipping document id=%s collection=%s: missing title", doc.ID, collection)
			continue
		}
		out = append(out, p)
	}
	log.LogInfof("list_projects", "loaded %d of %d documents from %s", len(out), len(docs), collection)
	return out, nil
}

// Ping performs one round-trip to the store.
func (r *ProjectRepository) Ping(ctx context.Context) error {
	err := r.holder.View(func(s docstore.Store) error {
		return s.Ping(ctx, r.holder.Collection())
	})
	if err != nil {
		return storeErr("ping", err)
	}
	return nil
}

func storeErr(op string, err error) error {
	if errors.Is(err, docstore.ErrNotConfigured) {
		return domain.ErrStoreUnavailable
	}
	return &domain.StoreError{Op: op, Err: err}
}
