package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/x67digital/site-api/internal/errs"
	"github.com/x67digital/site-api/internal/model"
	"github.com/x67digital/site-api/internal/repository"
)

func TestBlogService_GetBySlug_Found(t *testing.T) {
	repo := &mockBlogRepo{
		getBySlugFunc: func(ctx context.Context, slug string) (*model.BlogPost, error) {
			return &model.BlogPost{ID: "1", Slug: slug, Published: true}, nil
		},
	}
	svc := NewBlogService(repo)

	post, err := svc.GetBySlug(context.Background(), "hello-world")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if post.Slug != "hello-world" {
		t.Errorf("unexpected slug %q", post.Slug)
	}
}

func TestBlogService_GetBySlug_NotFound(t *testing.T) {
	repo := &mockBlogRepo{}
	svc := NewBlogService(repo)

	_, err := svc.GetBySlug(context.Background(), "missing")

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T", err)
	}
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.Status)
	}
	if httpErr.Message != "Post not found" {
		t.Errorf("unexpected message %q", httpErr.Message)
	}
}

func TestBlogService_ListPublished_ForwardsCategory(t *testing.T) {
	var listCategory, countCategory string
	repo := &mockBlogRepo{
		listPublishedFunc: func(ctx context.Context, category string, limit, skip int) ([]*model.BlogPost, error) {
			listCategory = category
			return []*model.BlogPost{{ID: "1"}}, nil
		},
		countPublishedFunc: func(ctx context.Context, category string) (int64, error) {
			countCategory = category
			return 5, nil
		},
	}
	svc := NewBlogService(repo)

	posts, total, err := svc.ListPublished(context.Background(), "design", 10, 0)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if listCategory != "design" || countCategory != "design" {
		t.Error("expected category forwarded to both list and count")
	}
	if len(posts) != 1 || total != 5 {
		t.Errorf("unexpected result: %d posts, total %d", len(posts), total)
	}
}

func TestProjectService_GetBySlug_NotFound(t *testing.T) {
	repo := &mockProjectRepo{}
	svc := NewProjectService(repo)

	_, err := svc.GetBySlug(context.Background(), "missing")

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T", err)
	}
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.Status)
	}
	if httpErr.Message != "Project not found" {
		t.Errorf("unexpected message %q", httpErr.Message)
	}
}

func TestProjectService_List_ForwardsFilter(t *testing.T) {
	var listFilter, countFilter repository.ProjectFilter
	repo := &mockProjectRepo{
		listFunc: func(ctx context.Context, filter repository.ProjectFilter, limit int) ([]*model.Project, error) {
			listFilter = filter
			return []*model.Project{{ID: "1"}}, nil
		},
		countFunc: func(ctx context.Context, filter repository.ProjectFilter) (int64, error) {
			countFilter = filter
			return 3, nil
		},
	}
	svc := NewProjectService(repo)

	featured := true
	_, total, err := svc.List(context.Background(), repository.ProjectFilter{
		Featured: &featured,
		Category: "ecommerce",
	}, 20)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if listFilter.Featured == nil || !*listFilter.Featured {
		t.Error("expected featured filter forwarded to the list")
	}
	if listFilter.Category != "ecommerce" {
		t.Errorf("expected category forwarded, got %q", listFilter.Category)
	}

	// The total must count the same filtered set the page comes from.
	if countFilter.Featured == nil || !*countFilter.Featured || countFilter.Category != "ecommerce" {
		t.Errorf("expected the count to honor the filter, got %+v", countFilter)
	}
	if total != 3 {
		t.Errorf("expected filtered total 3, got %d", total)
	}
}
