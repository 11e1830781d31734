package service

import (
	"context"

	"github.com/lamsa-decor/backend/internal/model"
)

// CreateProjectInput carries the bilingual text and selected images for a
// new portfolio project.
type CreateProjectInput struct {
	Title         string // Arabic
	TitleEn       string
	Description   string // Arabic
	DescriptionEn string
	Images        []ImageFile
}

// ProjectService defines the business logic for portfolio projects.
type ProjectService interface {
	// List returns all projects, newest first.
	List(ctx context.Context) ([]*model.Project, error)

	// GetByID returns one project or repository.ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Project, error)

	// Create uploads the images and inserts the project row. Returns
	// ErrNoImages when in.Images is empty and ErrAllUploadsFailed when no
	// image reached storage. The report describes partial upload success.
	Create(ctx context.Context, in CreateProjectInput) (*model.Project, UploadReport, error)

	// Delete removes the project's stored images best-effort, then the row.
	Delete(ctx context.Context, id string) error
}
