package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fliprhq/flipr-cms/internal/model"
)

// SubscriberRepository handles newsletter subscriber data access.
type SubscriberRepository struct {
	pool *pgxpool.Pool
}

// NewSubscriberRepository creates a new SubscriberRepository.
func NewSubscriberRepository(pool *pgxpool.Pool) *SubscriberRepository {
	return &SubscriberRepository{pool: pool}
}

// Create inserts a subscriber. A unique-constraint violation on email is
// mapped to ErrDuplicateEmail so callers can treat the race between the
// existence check and the insert as "already subscribed".
func (r *SubscriberRepository) Create(ctx context.Context, s *model.Subscriber) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO subscribers (email) VALUES ($1) RETURNING id, created_at`,
		s.Email).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// List returns every subscriber, newest first.
func (r *SubscriberRepository) List(ctx context.Context) ([]model.Subscriber, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, created_at FROM subscribers ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subscribers []model.Subscriber
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		subscribers = append(subscribers, s)
	}
	return subscribers, rows.Err()
}

func (r *SubscriberRepository) GetByID(ctx context.Context, id int) (*model.Subscriber, error) {
	s := &model.Subscriber{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, created_at FROM subscribers WHERE id = $1`, id,
	).Scan(&s.ID, &s.Email, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SubscriberRepository) GetByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	s := &model.Subscriber{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, created_at FROM subscribers WHERE email = $1`, email,
	).Scan(&s.ID, &s.Email, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Update changes a subscriber's email.
func (r *SubscriberRepository) Update(ctx context.Context, s *model.Subscriber) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE subscribers SET email = $1 WHERE id = $2`, s.Email, s.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SubscriberRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subscribers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
