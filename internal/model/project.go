package model

import "time"

// Project is a portfolio entry, managed externally and read-only here.
// Slug is the external lookup key and unique per project.
type Project struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description"`
	Client        string     `json:"client"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags"`
	FeaturedImage string     `json:"featured_image"`
	Images        []string   `json:"images"`
	URL           *string    `json:"url,omitempty"`
	Featured      bool       `json:"featured"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
