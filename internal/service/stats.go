package service

import (
	"context"

	"github.com/x67digital/site-api/internal/repository"
)

// Stats aggregates the headline counters shown on the site dashboard.
// Subscribers counts only active subscriptions.
type Stats struct {
	Contacts    int64 `json:"contacts"`
	Subscribers int64 `json:"newsletter_subscribers"`
	Inquiries   int64 `json:"template_inquiries"`
	Projects    int64 `json:"projects"`
}

// StatsService computes the aggregate counters across collections.
type StatsService struct {
	contacts    repository.ContactRepository
	subscribers repository.SubscriberRepository
	inquiries   repository.InquiryRepository
	projects    repository.ProjectRepository
}

func NewStatsService(
	contacts repository.ContactRepository,
	subscribers repository.SubscriberRepository,
	inquiries repository.InquiryRepository,
	projects repository.ProjectRepository,
) *StatsService {
	return &StatsService{
		contacts:    contacts,
		subscribers: subscribers,
		inquiries:   inquiries,
		projects:    projects,
	}
}

// Get returns the current counters. Counts are read independently, so
// the snapshot is not transactional across collections.
func (s *StatsService) Get(ctx context.Context) (*Stats, error) {
	contacts, err := s.contacts.Count(ctx)
	if err != nil {
		return nil, err
	}

	subscribers, err := s.subscribers.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	inquiries, err := s.inquiries.Count(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.projects.Count(ctx, repository.ProjectFilter{})
	if err != nil {
		return nil, err
	}

	return &Stats{
		Contacts:    contacts,
		Subscribers: subscribers,
		Inquiries:   inquiries,
		Projects:    projects,
	}, nil
}
