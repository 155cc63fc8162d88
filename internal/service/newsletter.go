package service

import (
	"context"

	"github.com/x67digital/site-api/internal/lib/email"
	"github.com/x67digital/site-api/internal/model"
	"github.com/x67digital/site-api/internal/repository"
	"github.com/x67digital/site-api/internal/server"
)

// SubscribeOutcome distinguishes what a subscribe request actually did,
// so the handler can pick the right user-facing message.
type SubscribeOutcome int

const (
	// OutcomeSubscribed means a new subscriber record was created.
	OutcomeSubscribed SubscribeOutcome = iota

	// OutcomeReactivated means an inactive subscription was re-enabled.
	OutcomeReactivated

	// OutcomeAlreadySubscribed means the address was already active.
	OutcomeAlreadySubscribed
)

// NewsletterService handles newsletter subscriptions.
type NewsletterService struct {
	server *server.Server
	repo   repository.SubscriberRepository
	mailer *email.Dispatcher
}

func NewNewsletterService(s *server.Server, repo repository.SubscriberRepository, mailer *email.Dispatcher) *NewsletterService {
	return &NewsletterService{
		server: s,
		repo:   repo,
		mailer: mailer,
	}
}

// Subscribe registers an email address, deduplicating on the address.
// An already-active address is a no-op, an inactive one is reactivated,
// and only a brand-new subscription triggers the welcome email. The
// returned subscriber is nil except for the new-subscription outcome.
func (s *NewsletterService) Subscribe(ctx context.Context, address string, name *string) (SubscribeOutcome, *model.Subscriber, error) {
	existing, err := s.repo.FindByEmail(ctx, address)
	if err != nil {
		return 0, nil, err
	}

	if existing != nil {
		if existing.IsActive {
			return OutcomeAlreadySubscribed, nil, nil
		}

		if _, err := s.repo.Reactivate(ctx, address); err != nil {
			return 0, nil, err
		}
		return OutcomeReactivated, nil, nil
	}

	subscriber := model.NewSubscriber(address, name)
	if err := s.repo.Insert(ctx, subscriber); err != nil {
		return 0, nil, err
	}

	s.mailer.SendNewsletterWelcome(subscriber)

	return OutcomeSubscribed, subscriber, nil
}

// ListActive returns active subscribers newest-first with their count.
func (s *NewsletterService) ListActive(ctx context.Context, limit int) ([]*model.Subscriber, int64, error) {
	subscribers, err := s.repo.ListActive(ctx, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountActive(ctx)
	if err != nil {
		return nil, 0, err
	}

	return subscribers, total, nil
}
