package service

import (
	"context"

	"github.com/x67digital/site-api/internal/errs"
	"github.com/x67digital/site-api/internal/model"
	"github.com/x67digital/site-api/internal/repository"
)

// BlogService serves the public, read-only view of blog posts. Content
// is managed out of band; only published posts are ever exposed.
type BlogService struct {
	repo repository.BlogPostRepository
}

func NewBlogService(repo repository.BlogPostRepository) *BlogService {
	return &BlogService{repo: repo}
}

// ListPublished returns published posts newest-first, optionally
// narrowed to a category, with the total matching count.
func (s *BlogService) ListPublished(ctx context.Context, category string, limit, skip int) ([]*model.BlogPost, int64, error) {
	posts, err := s.repo.ListPublished(ctx, category, limit, skip)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountPublished(ctx, category)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// GetBySlug returns the published post for slug. An unpublished or
// missing post yields a 404.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	post, err := s.repo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errs.NewNotFoundError("Post not found", true, nil)
	}
	return post, nil
}

// ProjectService serves the public, read-only view of portfolio
// projects.
type ProjectService struct {
	repo repository.ProjectRepository
}

func NewProjectService(repo repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// List returns projects most-recently-completed first, narrowed by the
// optional featured and category filters. Total counts every project
// matching the same filter, not just this page.
func (s *ProjectService) List(ctx context.Context, filter repository.ProjectFilter, limit int) ([]*model.Project, int64, error) {
	projects, err := s.repo.List(ctx, filter, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// GetBySlug returns the project for slug, or a 404 when none exists.
func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	project, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errs.NewNotFoundError("Project not found", true, nil)
	}
	return project, nil
}
