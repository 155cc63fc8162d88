// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated data from the handler, performs business operations, and
// calls repository methods to interact with the data.
package service

import (
	"github.com/x67digital/site-api/internal/lib/email"
	"github.com/x67digital/site-api/internal/repository"
	"github.com/x67digital/site-api/internal/server"
)

type Services struct {
	Contacts   *ContactService
	Newsletter *NewsletterService
	Inquiries  *InquiryService
	Blog       *BlogService
	Projects   *ProjectService
	Stats      *StatsService
}

func NewServices(s *server.Server, repos *repository.Repositories, mailer *email.Dispatcher) *Services {
	return &Services{
		Contacts:   NewContactService(s, repos.Contacts, mailer),
		Newsletter: NewNewsletterService(s, repos.Subscribers, mailer),
		Inquiries:  NewInquiryService(s, repos.Inquiries, mailer),
		Blog:       NewBlogService(repos.BlogPosts),
		Projects:   NewProjectService(repos.Projects),
		Stats: NewStatsService(
			repos.Contacts, repos.Subscribers, repos.Inquiries, repos.Projects,
		),
	}
}
