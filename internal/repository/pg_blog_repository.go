package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lamsa-decor/backend/internal/model"
)

// BlogRepository defines the persistence interface for blog articles.
type BlogRepository interface {
	Save(ctx context.Context, b *model.Blog) error
	List(ctx context.Context, opts model.BlogListOptions) ([]*model.Blog, error)
	FindByID(ctx context.Context, id string) (*model.Blog, error)
	Delete(ctx context.Context, id string) error
}

// PgBlogRepository is the PostgreSQL implementation of BlogRepository.
type PgBlogRepository struct {
	pool *pgxpool.Pool
}

// NewPgBlogRepository creates a PgBlogRepository backed by the given pool.
func NewPgBlogRepository(pool *pgxpool.Pool) *PgBlogRepository {
	return &PgBlogRepository{pool: pool}
}

var _ BlogRepository = (*PgBlogRepository)(nil)

// Save inserts a new blogs row. Empty category is stored as NULL.
func (r *PgBlogRepository) Save(ctx context.Context, b *model.Blog) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO blogs (title, title_en, description, description_en, category, images_urls)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		 RETURNING id, created_at`,
		b.Title, b.TitleEn, b.Description, b.DescriptionEn, b.Category, b.ImagesURLs,
	).Scan(&b.ID, &b.CreatedAt)
}

// List returns blog articles, newest first. Query matches the Arabic or
// English title case-insensitively; Category matches exactly. Both filters
// are optional so the unfiltered full list is also served.
func (r *PgBlogRepository) List(ctx context.Context, opts model.BlogListOptions) ([]*model.Blog, error) {
	var conditions []string
	var args []any

	if q := strings.TrimSpace(opts.Query); q != "" {
		args = append(args, "%"+q+"%")
		n := strconv.Itoa(len(args))
		conditions = append(conditions, "(title ILIKE $"+n+" OR title_en ILIKE $"+n+")")
	}
	if c := strings.TrimSpace(opts.Category); c != "" {
		args = append(args, c)
		conditions = append(conditions, "category = $"+strconv.Itoa(len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, title, title_en, description, description_en, COALESCE(category, ''), images_urls, created_at
		 FROM blogs `+where+`
		 ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []*model.Blog
	for rows.Next() {
		var b model.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.TitleEn, &b.Description, &b.DescriptionEn, &b.Category, &b.ImagesURLs, &b.CreatedAt); err != nil {
			return nil, err
		}
		blogs = append(blogs, &b)
	}
	return blogs, rows.Err()
}

// FindByID returns one blog article or ErrNotFound.
func (r *PgBlogRepository) FindByID(ctx context.Context, id string) (*model.Blog, error) {
	var b model.Blog
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, title_en, description, description_en, COALESCE(category, ''), images_urls, created_at
		 FROM blogs
		 WHERE id = $1`, id,
	).Scan(&b.ID, &b.Title, &b.TitleEn, &b.Description, &b.DescriptionEn, &b.Category, &b.ImagesURLs, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Delete removes a blog row by id. Deleting a missing row returns ErrNotFound.
func (r *PgBlogRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
