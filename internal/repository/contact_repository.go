package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fliprhq/flipr-cms/internal/model"
)

// ContactRepository handles contact data access.
type ContactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, c *model.Contact) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts (full_name, email, mobile, city) VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		c.FullName, c.Email, c.Mobile, c.City).Scan(&c.ID, &c.CreatedAt)
}

// List returns every contact, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, full_name, email, mobile, city, created_at FROM contacts
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &c.Mobile, &c.City, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *ContactRepository) GetByID(ctx context.Context, id int) (*model.Contact, error) {
	c := &model.Contact{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, full_name, email, mobile, city, created_at FROM contacts WHERE id = $1`, id,
	).Scan(&c.ID, &c.FullName, &c.Email, &c.Mobile, &c.City, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces every editable field in one statement.
func (r *ContactRepository) Update(ctx context.Context, c *model.Contact) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contacts SET full_name = $1, email = $2, mobile = $3, city = $4 WHERE id = $5`,
		c.FullName, c.Email, c.Mobile, c.City, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
