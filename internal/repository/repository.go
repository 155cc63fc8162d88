// Package repository handles all interactions with the database.
//
// It contains the raw SQL for each entity kind, abstracting persistence
// away from the service layer. Every repository follows the same store
// contract: inserts assign nothing (records arrive fully built), lookups
// report absence as a nil record rather than an error, and list queries
// take filter, sort, skip and limit parameters.
package repository

import (
	"github.com/x67digital/site-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Contacts    ContactRepository
	Subscribers SubscriberRepository
	Inquiries   InquiryRepository
	BlogPosts   BlogPostRepository
	Projects    ProjectRepository
}

// NewRepositories constructs the repository container on the server's
// database pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Contacts:    NewPgContactRepository(s.DB.Pool),
		Subscribers: NewPgSubscriberRepository(s.DB.Pool),
		Inquiries:   NewPgInquiryRepository(s.DB.Pool),
		BlogPosts:   NewPgBlogPostRepository(s.DB.Pool),
		Projects:    NewPgProjectRepository(s.DB.Pool),
	}
}
