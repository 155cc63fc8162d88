package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/x67digital/site-api/internal/config"
	"github.com/x67digital/site-api/internal/lib/email"
	"github.com/x67digital/site-api/internal/model"
	"github.com/x67digital/site-api/internal/repository"
)

// ---------------------------------------------------------------------------
// Repository mocks
// ---------------------------------------------------------------------------

type mockContactRepo struct {
	insertFunc func(ctx context.Context, contact *model.Contact) error
	listFunc   func(ctx context.Context, limit, skip int) ([]*model.Contact, error)
	countFunc  func(ctx context.Context) (int64, error)
}

func (m *mockContactRepo) Insert(ctx context.Context, contact *model.Contact) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, contact)
	}
	return nil
}

func (m *mockContactRepo) List(ctx context.Context, limit, skip int) ([]*model.Contact, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit, skip)
	}
	return nil, nil
}

func (m *mockContactRepo) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

type mockSubscriberRepo struct {
	insertFunc      func(ctx context.Context, sub *model.Subscriber) error
	findByEmailFunc func(ctx context.Context, email string) (*model.Subscriber, error)
	reactivateFunc  func(ctx context.Context, email string) (bool, error)
	listActiveFunc  func(ctx context.Context, limit int) ([]*model.Subscriber, error)
	countActiveFunc func(ctx context.Context) (int64, error)
}

func (m *mockSubscriberRepo) Insert(ctx context.Context, sub *model.Subscriber) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriberRepo) FindByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockSubscriberRepo) Reactivate(ctx context.Context, email string) (bool, error) {
	if m.reactivateFunc != nil {
		return m.reactivateFunc(ctx, email)
	}
	return true, nil
}

func (m *mockSubscriberRepo) ListActive(ctx context.Context, limit int) ([]*model.Subscriber, error) {
	if m.listActiveFunc != nil {
		return m.listActiveFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockSubscriberRepo) CountActive(ctx context.Context) (int64, error) {
	if m.countActiveFunc != nil {
		return m.countActiveFunc(ctx)
	}
	return 0, nil
}

type mockInquiryRepo struct {
	insertFunc func(ctx context.Context, inquiry *model.Inquiry) error
	listFunc   func(ctx context.Context, limit int) ([]*model.Inquiry, error)
	countFunc  func(ctx context.Context) (int64, error)
}

func (m *mockInquiryRepo) Insert(ctx context.Context, inquiry *model.Inquiry) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, inquiry)
	}
	return nil
}

func (m *mockInquiryRepo) List(ctx context.Context, limit int) ([]*model.Inquiry, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockInquiryRepo) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

type mockBlogRepo struct {
	listPublishedFunc  func(ctx context.Context, category string, limit, skip int) ([]*model.BlogPost, error)
	countPublishedFunc func(ctx context.Context, category string) (int64, error)
	getBySlugFunc      func(ctx context.Context, slug string) (*model.BlogPost, error)
}

func (m *mockBlogRepo) ListPublished(ctx context.Context, category string, limit, skip int) ([]*model.BlogPost, error) {
	if m.listPublishedFunc != nil {
		return m.listPublishedFunc(ctx, category, limit, skip)
	}
	return nil, nil
}

func (m *mockBlogRepo) CountPublished(ctx context.Context, category string) (int64, error) {
	if m.countPublishedFunc != nil {
		return m.countPublishedFunc(ctx, category)
	}
	return 0, nil
}

func (m *mockBlogRepo) GetPublishedBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, nil
}

type mockProjectRepo struct {
	listFunc      func(ctx context.Context, filter repository.ProjectFilter, limit int) ([]*model.Project, error)
	countFunc     func(ctx context.Context, filter repository.ProjectFilter) (int64, error)
	getBySlugFunc func(ctx context.Context, slug string) (*model.Project, error)
}

func (m *mockProjectRepo) List(ctx context.Context, filter repository.ProjectFilter, limit int) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter, limit)
	}
	return nil, nil
}

func (m *mockProjectRepo) Count(ctx context.Context, filter repository.ProjectFilter) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, filter)
	}
	return 0, nil
}

func (m *mockProjectRepo) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// Email fakes
// ---------------------------------------------------------------------------

type recordingSender struct {
	subjects []string
	fail     bool
}

func (r *recordingSender) Send(from string, to []string, subject, html string) error {
	if r.fail {
		return errors.New("provider down")
	}
	r.subjects = append(r.subjects, subject)
	return nil
}

func newTestMailer(sender email.Sender) *email.Dispatcher {
	cfg := &config.Config{
		Email: config.EmailConfig{
			FromName:     "X67 Digital",
			FromAddress:  "noreply@x67digital.com",
			AdminAddress: "admin@x67digital.com",
		},
	}
	log := zerolog.Nop()
	return email.NewDispatcher(cfg, sender, &log)
}

func strptr(s string) *string { return &s }
