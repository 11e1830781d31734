package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lamsa-decor/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	repo repository.AdminRepository
}

// NewAuthService creates an AuthService backed by the given repository.
func NewAuthService(repo repository.AdminRepository) AuthService {
	return &authServiceImpl{repo: repo}
}

// VerifyPassword compares the submitted password against the stored bcrypt
// hash. A missing credential row behaves like a wrong password so an
// unseeded deployment cannot be entered.
func (s *authServiceImpl) VerifyPassword(ctx context.Context, password string) error {
	cred, err := s.repo.GetCredential(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrInvalidPassword
	}
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidPassword
	}
	return nil
}
