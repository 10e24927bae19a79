package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fliprhq/flipr-cms/internal/model"
)

// ClientRepository handles client data access.
type ClientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository creates a new ClientRepository.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

func (r *ClientRepository) Create(ctx context.Context, c *model.Client) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO clients (image_url, name, description, designation) VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		c.ImageURL, c.Name, c.Description, c.Designation).Scan(&c.ID, &c.CreatedAt)
}

// List returns every client, newest first.
func (r *ClientRepository) List(ctx context.Context) ([]model.Client, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, image_url, name, description, designation, created_at FROM clients
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.ImageURL, &c.Name, &c.Description, &c.Designation, &c.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) GetByID(ctx context.Context, id int) (*model.Client, error) {
	c := &model.Client{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, image_url, name, description, designation, created_at FROM clients WHERE id = $1`, id,
	).Scan(&c.ID, &c.ImageURL, &c.Name, &c.Description, &c.Designation, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces every editable field in one statement.
func (r *ClientRepository) Update(ctx context.Context, c *model.Client) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE clients SET image_url = $1, name = $2, description = $3, designation = $4 WHERE id = $5`,
		c.ImageURL, c.Name, c.Description, c.Designation, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
