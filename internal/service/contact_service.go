package service

import (
	"context"

	"github.com/fliprhq/flipr-cms/internal/model"
)

// ContactStore is the persistence surface the contact service needs.
type ContactStore interface {
	Create(ctx context.Context, c *model.Contact) error
	List(ctx context.Context) ([]model.Contact, error)
	GetByID(ctx context.Context, id int) (*model.Contact, error)
	Update(ctx context.Context, c *model.Contact) error
	Delete(ctx context.Context, id int) error
}

// ContactService handles contact lead logic.
type ContactService struct {
	store ContactStore
}

func NewContactService(store ContactStore) *ContactService {
	return &ContactService{store: store}
}

func (s *ContactService) List(ctx context.Context) ([]model.Contact, error) {
	return s.store.List(ctx)
}

func (s *ContactService) GetByID(ctx context.Context, id int) (*model.Contact, error) {
	return s.store.GetByID(ctx, id)
}

func (s *ContactService) Create(ctx context.Context, c *model.Contact) error {
	return s.store.Create(ctx, c)
}

func (s *ContactService) Update(ctx context.Context, c *model.Contact) error {
	return s.store.Update(ctx, c)
}

func (s *ContactService) Delete(ctx context.Context, id int) error {
	return s.store.Delete(ctx, id)
}
