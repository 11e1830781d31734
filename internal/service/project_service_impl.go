package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lamsa-decor/backend/internal/model"
	"github.com/lamsa-decor/backend/internal/repository"
	"github.com/lamsa-decor/backend/internal/storage"
)

// projectServiceImpl is the production implementation of ProjectService.
type projectServiceImpl struct {
	repo  repository.ProjectRepository
	store storage.Storage
}

// NewProjectService creates a ProjectService backed by the given repository
// and image storage.
func NewProjectService(repo repository.ProjectRepository, store storage.Storage) ProjectService {
	return &projectServiceImpl{repo: repo, store: store}
}

func (s *projectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.repo.FindByID(ctx, id)
}

// Create uploads the selected images sequentially under project-images/ and
// then inserts one row with the collected URLs. If the insert fails the
// already-uploaded objects are not cleaned up (accepted orphaning, same as
// the original workflow).
func (s *projectServiceImpl) Create(ctx context.Context, in CreateProjectInput) (*model.Project, UploadReport, error) {
	if len(in.Images) == 0 {
		return nil, UploadReport{}, ErrNoImages
	}

	urls, report := uploadImages(ctx, s.store, storage.ProjectImagesFolder, in.Images)
	if len(urls) == 0 {
		return nil, report, ErrAllUploadsFailed
	}

	project := &model.Project{
		Title:         in.Title,
		TitleEn:       in.TitleEn,
		Description:   in.Description,
		DescriptionEn: in.DescriptionEn,
		ImagesURLs:    urls,
	}
	if err := s.repo.Save(ctx, project); err != nil {
		return nil, report, fmt.Errorf("save project: %w", err)
	}
	return project, report, nil
}

// Delete removes the stored images first (best-effort), then the row. The
// two steps are not transactional; an image-side failure is logged and the
// row is still deleted.
func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	keys := storage.ObjectKeysFromURLs(project.ImagesURLs, storage.ProjectImagesFolder)
	if err := s.store.DeleteMany(ctx, keys); err != nil {
		slog.Error("project image cleanup failed", "error", err, "project_id", id)
	}

	return s.repo.Delete(ctx, id)
}
