package router

import (
	"github.com/labstack/echo/v4"

	"github.com/x67digital/site-api/internal/handler"
)

// registerSystemRoutes registers the endpoints that are not business
// logic: the API descriptor and the health check used by monitors.
func registerSystemRoutes(api *echo.Group, h *handler.Handlers) {
	api.GET("", h.Root.Describe)
	api.GET("/", h.Root.Describe)

	api.GET("/health", h.Health.CheckHealth)
}
