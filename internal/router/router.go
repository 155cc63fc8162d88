// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x67digital/site-api/internal/handler"
	"github.com/x67digital/site-api/internal/middleware"
	"github.com/x67digital/site-api/internal/server"
)

// Setup builds the Echo instance with the full middleware chain and
// every API route. Middleware order matters: tracing first so a
// transaction exists for everything downstream, then request id and
// the context enhancer so all later logging carries correlation
// fields.
func Setup(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())
	e.Use(m.Global.CORS())

	api := e.Group("/api")

	registerSystemRoutes(api, h)

	api.POST("/contact", handler.Handle(h.Contacts.Handler, h.Contacts.Create, http.StatusCreated))
	api.GET("/contacts", handler.Handle(h.Contacts.Handler, h.Contacts.List, http.StatusOK))

	api.POST("/newsletter/subscribe", handler.Handle(h.Newsletter.Handler, h.Newsletter.Subscribe, http.StatusCreated))
	api.GET("/newsletter/subscribers", handler.Handle(h.Newsletter.Handler, h.Newsletter.List, http.StatusOK))

	api.POST("/inquiries", handler.Handle(h.Inquiries.Handler, h.Inquiries.Create, http.StatusCreated))
	api.GET("/inquiries", handler.Handle(h.Inquiries.Handler, h.Inquiries.List, http.StatusOK))

	api.GET("/blog/posts", handler.Handle(h.Blog.Handler, h.Blog.List, http.StatusOK))
	api.GET("/blog/posts/:slug", handler.Handle(h.Blog.Handler, h.Blog.Get, http.StatusOK))

	api.GET("/projects", handler.Handle(h.Projects.Handler, h.Projects.List, http.StatusOK))
	api.GET("/projects/:slug", handler.Handle(h.Projects.Handler, h.Projects.Get, http.StatusOK))

	api.GET("/stats", handler.Handle(h.Stats.Handler, h.Stats.Get, http.StatusOK))

	return e
}
