package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x67digital/site-api/internal/server"
)

// RootHandler serves the API descriptor at the API root.
type RootHandler struct {
	Handler
}

func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{
		Handler: NewHandler(s),
	}
}

// Describe returns the service identity and a map of its endpoints, so
// a client hitting the API root can discover where to go.
func (h *RootHandler) Describe(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "X67 Digital API v2.0",
		"status":  "operational",
		"endpoints": map[string]string{
			"contact":    "/api/contact",
			"newsletter": "/api/newsletter/subscribe",
			"inquiries":  "/api/inquiries",
			"blog":       "/api/blog/posts",
			"projects":   "/api/projects",
			"stats":      "/api/stats",
		},
	})
}
