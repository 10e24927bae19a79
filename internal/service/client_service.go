package service

import (
	"context"

	"github.com/fliprhq/flipr-cms/internal/model"
)

// ClientStore is the persistence surface the client service needs.
type ClientStore interface {
	Create(ctx context.Context, c *model.Client) error
	List(ctx context.Context) ([]model.Client, error)
	GetByID(ctx context.Context, id int) (*model.Client, error)
	Update(ctx context.Context, c *model.Client) error
	Delete(ctx context.Context, id int) error
}

type ClientService struct {
	store ClientStore
}

func NewClientService(store ClientStore) *ClientService {
	return &ClientService{store: store}
}

func (s *ClientService) List(ctx context.Context) ([]model.Client, error) {
	return s.store.List(ctx)
}

func (s *ClientService) GetByID(ctx context.Context, id int) (*model.Client, error) {
	return s.store.GetByID(ctx, id)
}

func (s *ClientService) Create(ctx context.Context, c *model.Client) error {
	return s.store.Create(ctx, c)
}

func (s *ClientService) Update(ctx context.Context, c *model.Client) error {
	return s.store.Update(ctx, c)
}

func (s *ClientService) Delete(ctx context.Context, id int) error {
	return s.store.Delete(ctx, id)
}
