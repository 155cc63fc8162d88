package model

import (
	"time"

	"github.com/google/uuid"
)

// Subscriber is a newsletter subscription. Email is the deduplication
// key: at most one record exists per address, and re-subscribing an
// inactive address flips IsActive instead of inserting a duplicate.
type Subscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         *string   `json:"name,omitempty"`
	IsActive     bool      `json:"is_active"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// NewSubscriber builds an active Subscriber with a fresh id and a
// server-assigned subscription timestamp.
func NewSubscriber(email string, name *string) *Subscriber {
	return &Subscriber{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		IsActive:     true,
		SubscribedAt: time.Now().UTC(),
	}
}

// DisplayName returns the subscriber's name, or the default salutation
// used in the welcome email when no name was provided.
func (s *Subscriber) DisplayName() string {
	if s.Name != nil && *s.Name != "" {
		return *s.Name
	}
	return "Prieten"
}
