package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/x67digital/site-api/internal/model"
	"github.com/x67digital/site-api/internal/server"
	"github.com/x67digital/site-api/internal/service"
	"github.com/x67digital/site-api/internal/validation"
)

// BlogHandler serves the public blog endpoints.
type BlogHandler struct {
	Handler
	blog *service.BlogService
}

func NewBlogHandler(s *server.Server, blog *service.BlogService) *BlogHandler {
	return &BlogHandler{
		Handler: NewHandler(s),
		blog:    blog,
	}
}

// ListBlogPostsRequest carries the blog listing query parameters.
type ListBlogPostsRequest struct {
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Skip     int    `query:"skip" validate:"omitempty,min=0"`
	Category string `query:"category" validate:"omitempty,max=100"`
}

func (r *ListBlogPostsRequest) Validate() error {
	return validation.Struct(r)
}

// BlogPostListResponse is the blog listing payload. Total counts every
// published post matching the category filter, not just this page.
type BlogPostListResponse struct {
	Posts []*model.BlogPost `json:"posts"`
	Total int64             `json:"total"`
}

// List returns published posts newest-first.
func (h *BlogHandler) List(c echo.Context, req *ListBlogPostsRequest) (*BlogPostListResponse, error) {
	if req.Limit == 0 {
		req.Limit = 10
	}

	posts, total, err := h.blog.ListPublished(c.Request().Context(), req.Category, req.Limit, req.Skip)
	if err != nil {
		return nil, err
	}

	if posts == nil {
		posts = []*model.BlogPost{}
	}

	return &BlogPostListResponse{
		Posts: posts,
		Total: total,
	}, nil
}

// GetBlogPostRequest identifies a post by its slug path parameter.
type GetBlogPostRequest struct {
	Slug string `param:"slug" validate:"required"`
}

func (r *GetBlogPostRequest) Validate() error {
	return validation.Struct(r)
}

// Get returns a single published post by slug.
func (h *BlogHandler) Get(c echo.Context, req *GetBlogPostRequest) (*model.BlogPost, error) {
	return h.blog.GetBySlug(c.Request().Context(), req.Slug)
}
