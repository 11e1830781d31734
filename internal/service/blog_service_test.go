package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lamsa-decor/backend/internal/model"
	"github.com/lamsa-decor/backend/internal/repository"
)

type mockBlogRepository struct {
	saveFunc   func(ctx context.Context, b *model.Blog) error
	listFunc   func(ctx context.Context, opts model.BlogListOptions) ([]*model.Blog, error)
	findFunc   func(ctx context.Context, id string) (*model.Blog, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockBlogRepository) Save(ctx context.Context, b *model.Blog) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, b)
	}
	return nil
}

func (m *mockBlogRepository) List(ctx context.Context, opts model.BlogListOptions) ([]*model.Blog, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockBlogRepository) FindByID(ctx context.Context, id string) (*model.Blog, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockBlogRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func TestBlogService_Create_KeepsCategoryAndUsesBlogFolder(t *testing.T) {
	var saved *model.Blog
	repo := &mockBlogRepository{
		saveFunc: func(ctx context.Context, b *model.Blog) error {
			saved = b
			return nil
		},
	}
	store := &mockStorage{}
	svc := NewBlogService(repo, store)

	_, report, err := svc.Create(context.Background(), CreateBlogInput{
		Title:    "مقال",
		TitleEn:  "Article",
		Category: "تصميم",
		Images:   []ImageFile{{Name: "cover.jpg", Data: testJPEG(t)}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Uploaded != 1 {
		t.Errorf("expected 1 uploaded, got %+v", report)
	}
	if saved == nil || saved.Category != "تصميم" {
		t.Error("expected category to be persisted")
	}
	if len(store.savedKeys) != 1 || !strings.HasPrefix(store.savedKeys[0], "blog-images/") {
		t.Errorf("expected key under blog-images/, got %v", store.savedKeys)
	}
}

func TestBlogService_Create_NoImages(t *testing.T) {
	svc := NewBlogService(&mockBlogRepository{}, &mockStorage{})

	_, _, err := svc.Create(context.Background(), CreateBlogInput{Title: "بدون صور"})
	if !errors.Is(err, ErrNoImages) {
		t.Errorf("expected ErrNoImages, got %v", err)
	}
}

func TestBlogService_Delete_DerivesBlogImageKeys(t *testing.T) {
	repo := &mockBlogRepository{
		findFunc: func(ctx context.Context, id string) (*model.Blog, error) {
			return &model.Blog{
				ID:         id,
				ImagesURLs: []string{"https://cdn.example.com/projects/blog-images/x.jpg"},
			}, nil
		},
	}
	store := &mockStorage{}
	svc := NewBlogService(repo, store)

	if err := svc.Delete(context.Background(), "b1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.deletedKeys) != 1 || store.deletedKeys[0] != "blog-images/x.jpg" {
		t.Errorf("unexpected deleted keys: %v", store.deletedKeys)
	}
}

func TestBlogService_List_ForwardsFilters(t *testing.T) {
	var gotOpts model.BlogListOptions
	repo := &mockBlogRepository{
		listFunc: func(ctx context.Context, opts model.BlogListOptions) ([]*model.Blog, error) {
			gotOpts = opts
			return nil, nil
		},
	}
	svc := NewBlogService(repo, &mockStorage{})

	if _, err := svc.List(context.Background(), model.BlogListOptions{Query: "decor", Category: "تصميم"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotOpts.Query != "decor" || gotOpts.Category != "تصميم" {
		t.Errorf("filters not forwarded: %+v", gotOpts)
	}
}
