package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lamsa-decor/backend/internal/model"
)

// ProjectRepository defines the persistence interface for portfolio projects.
type ProjectRepository interface {
	Save(ctx context.Context, p *model.Project) error
	List(ctx context.Context) ([]*model.Project, error)
	FindByID(ctx context.Context, id string) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

// Save inserts a new projects row. images_urls is stored as text[] preserving
// submission order. msg.ID and CreatedAt come from the RETURNING clause.
func (r *PgProjectRepository) Save(ctx context.Context, p *model.Project) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects (title, title_en, description, description_en, images_urls)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		p.Title, p.TitleEn, p.Description, p.DescriptionEn, p.ImagesURLs,
	).Scan(&p.ID, &p.CreatedAt)
}

// List returns all projects, newest first.
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, title_en, description, description_en, images_urls, created_at
		 FROM projects
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.TitleEn, &p.Description, &p.DescriptionEn, &p.ImagesURLs, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

// FindByID returns one project or ErrNotFound.
func (r *PgProjectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	var p model.Project
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, title_en, description, description_en, images_urls, created_at
		 FROM projects
		 WHERE id = $1`, id,
	).Scan(&p.ID, &p.Title, &p.TitleEn, &p.Description, &p.DescriptionEn, &p.ImagesURLs, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a project row by id. Deleting a missing row returns ErrNotFound.
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
