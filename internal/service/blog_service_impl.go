package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lamsa-decor/backend/internal/model"
	"github.com/lamsa-decor/backend/internal/repository"
	"github.com/lamsa-decor/backend/internal/storage"
)

// blogServiceImpl is the production implementation of BlogService.
type blogServiceImpl struct {
	repo  repository.BlogRepository
	store storage.Storage
}

// NewBlogService creates a BlogService backed by the given repository and
// image storage.
func NewBlogService(repo repository.BlogRepository, store storage.Storage) BlogService {
	return &blogServiceImpl{repo: repo, store: store}
}

func (s *blogServiceImpl) List(ctx context.Context, opts model.BlogListOptions) ([]*model.Blog, error) {
	return s.repo.List(ctx, opts)
}

func (s *blogServiceImpl) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	return s.repo.FindByID(ctx, id)
}

// Create mirrors the project create flow with the blog-images/ folder.
func (s *blogServiceImpl) Create(ctx context.Context, in CreateBlogInput) (*model.Blog, UploadReport, error) {
	if len(in.Images) == 0 {
		return nil, UploadReport{}, ErrNoImages
	}

	urls, report := uploadImages(ctx, s.store, storage.BlogImagesFolder, in.Images)
	if len(urls) == 0 {
		return nil, report, ErrAllUploadsFailed
	}

	blog := &model.Blog{
		Title:         in.Title,
		TitleEn:       in.TitleEn,
		Description:   in.Description,
		DescriptionEn: in.DescriptionEn,
		Category:      in.Category,
		ImagesURLs:    urls,
	}
	if err := s.repo.Save(ctx, blog); err != nil {
		return nil, report, fmt.Errorf("save blog: %w", err)
	}
	return blog, report, nil
}

// Delete removes the stored images first (best-effort), then the row.
func (s *blogServiceImpl) Delete(ctx context.Context, id string) error {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	keys := storage.ObjectKeysFromURLs(blog.ImagesURLs, storage.BlogImagesFolder)
	if err := s.store.DeleteMany(ctx, keys); err != nil {
		slog.Error("blog image cleanup failed", "error", err, "blog_id", id)
	}

	return s.repo.Delete(ctx, id)
}
