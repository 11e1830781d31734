package model

import "time"

// ContactMessage represents a message submitted via the contact form.
// Messages are immutable after creation; the admin panel only lists them.
type ContactMessage struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email,omitempty"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}
