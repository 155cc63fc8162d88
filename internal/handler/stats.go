package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/x67digital/site-api/internal/server"
	"github.com/x67digital/site-api/internal/service"
)

// StatsHandler serves the aggregate counters endpoint.
type StatsHandler struct {
	Handler
	stats *service.StatsService
}

func NewStatsHandler(s *server.Server, stats *service.StatsService) *StatsHandler {
	return &StatsHandler{
		Handler: NewHandler(s),
		stats:   stats,
	}
}

// StatsRequest is the empty payload of the stats endpoint.
type StatsRequest struct{}

func (r *StatsRequest) Validate() error {
	return nil
}

// Get returns the headline counters for the dashboard.
func (h *StatsHandler) Get(c echo.Context, req *StatsRequest) (*service.Stats, error) {
	return h.stats.Get(c.Request().Context())
}
