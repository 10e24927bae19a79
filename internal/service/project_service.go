package service

import (
	"context"

	"github.com/fliprhq/flipr-cms/internal/model"
)

// ProjectStore is the persistence surface the project service needs.
// The pgx-backed repository satisfies it in production; tests substitute
// an in-memory implementation.
type ProjectStore interface {
	Create(ctx context.Context, p *model.Project) error
	List(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, id int) (*model.Project, error)
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id int) error
}

type ProjectService struct {
	store ProjectStore
}

func NewProjectService(store ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	return s.store.List(ctx)
}

func (s *ProjectService) GetByID(ctx context.Context, id int) (*model.Project, error) {
	return s.store.GetByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, p *model.Project) error {
	return s.store.Create(ctx, p)
}

func (s *ProjectService) Update(ctx context.Context, p *model.Project) error {
	return s.store.Update(ctx, p)
}

func (s *ProjectService) Delete(ctx context.Context, id int) error {
	return s.store.Delete(ctx, id)
}
