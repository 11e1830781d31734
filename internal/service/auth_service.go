package service

import "context"

// AuthService verifies the admin password against the stored credential.
type AuthService interface {
	// VerifyPassword returns nil on a match, ErrInvalidPassword for a wrong
	// password (or when no credential has been set), and a wrapped error
	// for backend failures.
	VerifyPassword(ctx context.Context, password string) error
}
