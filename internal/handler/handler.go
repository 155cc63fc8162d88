// Package handler is the first entry point for business logic after
// the router.
//
// It parses requests, handles input validation using the validation
// package, and calls the appropriate service layer. It acts as the
// interface between the HTTP request and the core business logic.
package handler

import (
	"github.com/x67digital/site-api/internal/server"
	"github.com/x67digital/site-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Contacts   *ContactHandler
	Newsletter *NewsletterHandler
	Inquiries  *InquiryHandler
	Blog       *BlogHandler
	Projects   *ProjectHandler
	Stats      *StatsHandler
	Root       *RootHandler
	Health     *HealthHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Contacts:   NewContactHandler(s, services.Contacts),
		Newsletter: NewNewsletterHandler(s, services.Newsletter),
		Inquiries:  NewInquiryHandler(s, services.Inquiries),
		Blog:       NewBlogHandler(s, services.Blog),
		Projects:   NewProjectHandler(s, services.Projects),
		Stats:      NewStatsHandler(s, services.Stats),
		Root:       NewRootHandler(s),
		Health:     NewHealthHandler(s),
	}
}
