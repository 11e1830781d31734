package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lamsa-decor/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context) ([]*model.ContactMessage, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contacts row and populates msg.ID and msg.CreatedAt
// from the database RETURNING clause. Empty email is stored as NULL.
func (r *PgContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts (full_name, phone_number, email, message)
		 VALUES ($1, $2, NULLIF($3, ''), $4)
		 RETURNING id, created_at`,
		msg.FullName, msg.PhoneNumber, msg.Email, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
}

// List returns all contact messages, newest first.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, full_name, phone_number, COALESCE(email, ''), message, created_at
		 FROM contacts
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.FullName, &m.PhoneNumber, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}
