package service

import (
	"context"

	"github.com/lamsa-decor/backend/internal/model"
)

// CreateBlogInput carries the bilingual text, optional category and selected
// images for a new blog article.
type CreateBlogInput struct {
	Title         string // Arabic
	TitleEn       string
	Description   string // Arabic
	DescriptionEn string
	Category      string
	Images        []ImageFile
}

// BlogService defines the business logic for blog articles.
type BlogService interface {
	// List returns blog articles, newest first, optionally filtered.
	List(ctx context.Context, opts model.BlogListOptions) ([]*model.Blog, error)

	// GetByID returns one article or repository.ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Blog, error)

	// Create uploads the images and inserts the blog row. Same contract as
	// ProjectService.Create.
	Create(ctx context.Context, in CreateBlogInput) (*model.Blog, UploadReport, error)

	// Delete removes the article's stored images best-effort, then the row.
	Delete(ctx context.Context, id string) error
}
