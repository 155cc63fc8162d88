package service

import (
	"context"

	"github.com/x67digital/site-api/internal/lib/email"
	"github.com/x67digital/site-api/internal/model"
	"github.com/x67digital/site-api/internal/repository"
	"github.com/x67digital/site-api/internal/server"
)

// ContactService handles contact-form submissions.
type ContactService struct {
	server *server.Server
	repo   repository.ContactRepository
	mailer *email.Dispatcher
}

func NewContactService(s *server.Server, repo repository.ContactRepository, mailer *email.Dispatcher) *ContactService {
	return &ContactService{
		server: s,
		repo:   repo,
		mailer: mailer,
	}
}

// Create persists a new contact and dispatches the admin notification
// and visitor confirmation emails. Email failures are logged by the
// dispatcher and do not fail the submission.
func (s *ContactService) Create(ctx context.Context, name, email string, phone *string, message string) (*model.Contact, error) {
	contact := model.NewContact(name, email, phone, message)

	if err := s.repo.Insert(ctx, contact); err != nil {
		return nil, err
	}

	s.mailer.SendContactNotification(contact)
	s.mailer.SendContactConfirmation(contact)

	return contact, nil
}

// List returns contacts newest-first along with the total count.
func (s *ContactService) List(ctx context.Context, limit, skip int) ([]*model.Contact, int64, error) {
	contacts, err := s.repo.List(ctx, limit, skip)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}
