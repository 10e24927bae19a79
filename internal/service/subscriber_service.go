package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/fliprhq/flipr-cms/internal/model"
	"github.com/fliprhq/flipr-cms/internal/repository"
)

// SubscriberStore is the persistence surface the subscriber service needs.
type SubscriberStore interface {
	Create(ctx context.Context, s *model.Subscriber) error
	List(ctx context.Context) ([]model.Subscriber, error)
	GetByID(ctx context.Context, id int) (*model.Subscriber, error)
	GetByEmail(ctx context.Context, email string) (*model.Subscriber, error)
	Update(ctx context.Context, s *model.Subscriber) error
	Delete(ctx context.Context, id int) error
}

// SubscriberService handles newsletter signup logic.
type SubscriberService struct {
	store SubscriberStore
	log   zerolog.Logger
}

func NewSubscriberService(store SubscriberStore, log zerolog.Logger) *SubscriberService {
	return &SubscriberService{
		store: store,
		log:   log.With().Str("component", "subscriber_service").Logger(),
	}
}

// Subscribe records a newsletter signup. It reports created=false when the
// email is already subscribed, whether the duplicate is seen by the lookup
// or by the unique constraint when two submissions race past the lookup.
// Both paths are success-equivalent for the caller.
func (s *SubscriberService) Subscribe(ctx context.Context, email string) (created bool, err error) {
	_, err = s.store.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}

	sub := &model.Subscriber{Email: email}
	if err := s.store.Create(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.log.Debug().Str("email", email).Msg("duplicate subscribe lost the insert race")
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *SubscriberService) List(ctx context.Context) ([]model.Subscriber, error) {
	return s.store.List(ctx)
}

func (s *SubscriberService) GetByID(ctx context.Context, id int) (*model.Subscriber, error) {
	return s.store.GetByID(ctx, id)
}

func (s *SubscriberService) Update(ctx context.Context, sub *model.Subscriber) error {
	return s.store.Update(ctx, sub)
}

func (s *SubscriberService) Delete(ctx context.Context, id int) error {
	return s.store.Delete(ctx, id)
}
