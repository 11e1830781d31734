package model

import "time"

// AdminCredential is the single admin password record. PasswordHash is a
// bcrypt hash; the plaintext is never stored.
type AdminCredential struct {
	ID           string    `json:"-"`
	PasswordHash string    `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
