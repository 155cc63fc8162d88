package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/x67digital/site-api/internal/config"
	"github.com/x67digital/site-api/internal/database"
	"github.com/x67digital/site-api/internal/handler"
	"github.com/x67digital/site-api/internal/lib/email"
	"github.com/x67digital/site-api/internal/logger"
	"github.com/x67digital/site-api/internal/middleware"
	"github.com/x67digital/site-api/internal/repository"
	"github.com/x67digital/site-api/internal/router"
	"github.com/x67digital/site-api/internal/server"
	"github.com/x67digital/site-api/internal/service"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, loggerService, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	srv, err := server.New(cfg, appLogger, loggerService)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialize server")
	}

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 60*time.Second)
	if err := database.Migrate(migrateCtx, appLogger, cfg); err != nil {
		cancelMigrate()
		appLogger.Fatal().Err(err).Msg("failed to run migrations")
	}
	cancelMigrate()

	repos := repository.NewRepositories(srv)
	mailer := email.NewDispatcher(cfg, email.NewResendSender(cfg), appLogger)
	services := service.NewServices(srv, repos, mailer)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.Setup(srv, handlers, middlewares)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("shutdown error")
	}

	if loggerService != nil {
		loggerService.Shutdown(10 * time.Second)
	}
}
