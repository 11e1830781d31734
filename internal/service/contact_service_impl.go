package service

import (
	"context"

	"github.com/lamsa-decor/backend/internal/model"
	"github.com/lamsa-decor/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit stores a new contact message. Messages are immutable once stored.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	return s.repo.Save(ctx, msg)
}

// List returns all contact messages, newest first.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx)
}
