package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/x67digital/site-api/internal/model"
	"github.com/x67digital/site-api/internal/repository"
	"github.com/x67digital/site-api/internal/server"
	"github.com/x67digital/site-api/internal/service"
	"github.com/x67digital/site-api/internal/validation"
)

// ProjectHandler serves the public portfolio endpoints.
type ProjectHandler struct {
	Handler
	projects *service.ProjectService
}

func NewProjectHandler(s *server.Server, projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		Handler:  NewHandler(s),
		projects: projects,
	}
}

// ListProjectsRequest carries the portfolio listing query parameters.
// Featured is a tri-state filter: absent means both.
type ListProjectsRequest struct {
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Featured *bool  `query:"featured"`
	Category string `query:"category" validate:"omitempty,max=100"`
}

func (r *ListProjectsRequest) Validate() error {
	return validation.Struct(r)
}

// ProjectListResponse is the portfolio listing payload.
type ProjectListResponse struct {
	Projects []*model.Project `json:"projects"`
	Total    int64            `json:"total"`
}

// List returns projects most-recently-completed first.
func (h *ProjectHandler) List(c echo.Context, req *ListProjectsRequest) (*ProjectListResponse, error) {
	if req.Limit == 0 {
		req.Limit = 20
	}

	projects, total, err := h.projects.List(c.Request().Context(), repository.ProjectFilter{
		Featured: req.Featured,
		Category: req.Category,
	}, req.Limit)
	if err != nil {
		return nil, err
	}

	if projects == nil {
		projects = []*model.Project{}
	}

	return &ProjectListResponse{
		Projects: projects,
		Total:    total,
	}, nil
}

// GetProjectRequest identifies a project by its slug path parameter.
type GetProjectRequest struct {
	Slug string `param:"slug" validate:"required"`
}

func (r *GetProjectRequest) Validate() error {
	return validation.Struct(r)
}

// Get returns a single project by slug.
func (h *ProjectHandler) Get(c echo.Context, req *GetProjectRequest) (*model.Project, error) {
	return h.projects.GetBySlug(c.Request().Context(), req.Slug)
}
