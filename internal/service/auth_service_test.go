package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lamsa-decor/backend/internal/model"
	"github.com/lamsa-decor/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type mockAdminRepository struct {
	getFunc func(ctx context.Context) (*model.AdminCredential, error)
	setFunc func(ctx context.Context, hash string) error
}

func (m *mockAdminRepository) GetCredential(ctx context.Context) (*model.AdminCredential, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx)
	}
	return nil, repository.ErrNotFound
}

func (m *mockAdminRepository) SetPasswordHash(ctx context.Context, hash string) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, hash)
	}
	return nil
}

func credentialWithPassword(t *testing.T, password string) *model.AdminCredential {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &model.AdminCredential{ID: "1", PasswordHash: string(hash)}
}

func TestAuthService_VerifyPassword_Match(t *testing.T) {
	repo := &mockAdminRepository{
		getFunc: func(ctx context.Context) (*model.AdminCredential, error) {
			return credentialWithPassword(t, "correct-horse"), nil
		},
	}
	svc := NewAuthService(repo)

	if err := svc.VerifyPassword(context.Background(), "correct-horse"); err != nil {
		t.Errorf("expected match, got %v", err)
	}
}

func TestAuthService_VerifyPassword_Mismatch(t *testing.T) {
	repo := &mockAdminRepository{
		getFunc: func(ctx context.Context) (*model.AdminCredential, error) {
			return credentialWithPassword(t, "correct-horse"), nil
		},
	}
	svc := NewAuthService(repo)

	if err := svc.VerifyPassword(context.Background(), "battery-staple"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}

// An unseeded deployment (no credential row) must never be enterable.
func TestAuthService_VerifyPassword_NoCredential(t *testing.T) {
	svc := NewAuthService(&mockAdminRepository{})

	if err := svc.VerifyPassword(context.Background(), "anything"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestAuthService_VerifyPassword_BackendFailure(t *testing.T) {
	repo := &mockAdminRepository{
		getFunc: func(ctx context.Context) (*model.AdminCredential, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewAuthService(repo)

	err := svc.VerifyPassword(context.Background(), "anything")
	if err == nil || errors.Is(err, ErrInvalidPassword) {
		t.Errorf("backend failure must not look like a wrong password, got %v", err)
	}
}
