package service

import (
	"context"

	"github.com/x67digital/site-api/internal/lib/email"
	"github.com/x67digital/site-api/internal/model"
	"github.com/x67digital/site-api/internal/repository"
	"github.com/x67digital/site-api/internal/server"
)

// InquiryService handles website-template inquiry leads.
type InquiryService struct {
	server *server.Server
	repo   repository.InquiryRepository
	mailer *email.Dispatcher
}

func NewInquiryService(s *server.Server, repo repository.InquiryRepository, mailer *email.Dispatcher) *InquiryService {
	return &InquiryService{
		server: s,
		repo:   repo,
		mailer: mailer,
	}
}

// CreateInquiryInput carries the validated fields of a new inquiry.
type CreateInquiryInput struct {
	Name            string
	Email           string
	Phone           *string
	BusinessType    string
	Budget          string
	Functionality   string
	TemplateID      *string
	AdditionalNotes *string
}

// Create persists a new inquiry lead and dispatches the admin
// notification and confirmation emails best-effort.
func (s *InquiryService) Create(ctx context.Context, in CreateInquiryInput) (*model.Inquiry, error) {
	inquiry := model.NewInquiry(in.Name, in.Email, in.Phone,
		in.BusinessType, in.Budget, in.Functionality,
		in.TemplateID, in.AdditionalNotes)

	if err := s.repo.Insert(ctx, inquiry); err != nil {
		return nil, err
	}

	s.mailer.SendInquiryNotification(inquiry)
	s.mailer.SendInquiryConfirmation(inquiry)

	return inquiry, nil
}

// List returns inquiries newest-first along with the total count.
func (s *InquiryService) List(ctx context.Context, limit int) ([]*model.Inquiry, int64, error) {
	inquiries, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return inquiries, total, nil
}
