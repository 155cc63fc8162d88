package handler

// HealthHandler exposes a system endpoint that external monitors use
// to verify the service is alive and its database is reachable.
import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x67digital/site-api/internal/middleware"
	"github.com/x67digital/site-api/internal/server"
)

// HealthHandler embeds the base Handler to reuse shared server
// dependencies.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth reports service health and database connectivity.
//
// The response is always 200: monitors read the body to distinguish
// healthy from degraded, and a degraded database does not make the
// process itself unreachable.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbStart := time.Now()

	if err := h.server.DB.Pool.Ping(ctx); err != nil {
		logger.Error().
			Err(err).
			Dur("response_time", time.Since(dbStart)).
			Msg("database health check failed")

		if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
			h.server.LoggerService.GetApplication().RecordCustomEvent(
				"HealthCheckError",
				map[string]interface{}{
					"check_type":       "database",
					"operation":        "health_check",
					"error_type":       "database_unhealthy",
					"response_time_ms": time.Since(dbStart).Milliseconds(),
					"error_message":    err.Error(),
				},
			)
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":   "unhealthy",
			"database": "disconnected",
			"error":    err.Error(),
		})
	}

	logger.Info().
		Dur("response_time", time.Since(dbStart)).
		Msg("database health check passed")

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"database": "connected",
	})
}
