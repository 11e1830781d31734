package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lamsa-decor/backend/internal/model"
)

// AdminRepository defines the persistence interface for the single admin
// credential record.
type AdminRepository interface {
	GetCredential(ctx context.Context) (*model.AdminCredential, error)
	SetPasswordHash(ctx context.Context, hash string) error
}

// PgAdminRepository is the PostgreSQL implementation of AdminRepository.
type PgAdminRepository struct {
	pool *pgxpool.Pool
}

// NewPgAdminRepository creates a PgAdminRepository backed by the given pool.
func NewPgAdminRepository(pool *pgxpool.Pool) *PgAdminRepository {
	return &PgAdminRepository{pool: pool}
}

var _ AdminRepository = (*PgAdminRepository)(nil)

// GetCredential returns the admin credential row, or ErrNotFound when the
// password has never been set.
func (r *PgAdminRepository) GetCredential(ctx context.Context) (*model.AdminCredential, error) {
	var c model.AdminCredential
	err := r.pool.QueryRow(ctx,
		`SELECT id, password_hash, updated_at
		 FROM admin_credentials
		 ORDER BY updated_at DESC
		 LIMIT 1`,
	).Scan(&c.ID, &c.PasswordHash, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SetPasswordHash replaces the admin credential with the given bcrypt hash.
// The table holds at most one row.
func (r *PgAdminRepository) SetPasswordHash(ctx context.Context, hash string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM admin_credentials`)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO admin_credentials (password_hash) VALUES ($1)`, hash)
	return err
}
