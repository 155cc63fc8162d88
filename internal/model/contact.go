// Package model defines the entities persisted by the service.
//
// Records are immutable after creation except for explicit status and
// flag mutations. Identifiers and creation timestamps are assigned by
// the server, never by the caller.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Contact statuses follow the triage lifecycle new -> read -> replied.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// Contact is a contact-form submission.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContact builds a Contact with a fresh id, the "new" status, and a
// server-assigned creation timestamp.
func NewContact(name, email string, phone *string, message string) *Contact {
	return &Contact{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Message:   message,
		Status:    ContactStatusNew,
		CreatedAt: time.Now().UTC(),
	}
}
