package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fliprhq/flipr-cms/internal/model"
)

// ProjectRepository handles project data access.
type ProjectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) Create(ctx context.Context, p *model.Project) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects (image_url, name, description) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		p.ImageURL, p.Name, p.Description).Scan(&p.ID, &p.CreatedAt)
}

// List returns every project, newest first.
func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, image_url, name, description, created_at FROM projects
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.ImageURL, &p.Name, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int) (*model.Project, error) {
	p := &model.Project{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, image_url, name, description, created_at FROM projects WHERE id = $1`, id,
	).Scan(&p.ID, &p.ImageURL, &p.Name, &p.Description, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces every editable field in one statement.
func (r *ProjectRepository) Update(ctx context.Context, p *model.Project) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE projects SET image_url = $1, name = $2, description = $3 WHERE id = $4`,
		p.ImageURL, p.Name, p.Description, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
