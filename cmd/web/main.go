package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/fliprhq/flipr-cms/internal/config"
	"github.com/fliprhq/flipr-cms/internal/database"
	"github.com/fliprhq/flipr-cms/internal/handler"
	"github.com/fliprhq/flipr-cms/internal/logger"
	"github.com/fliprhq/flipr-cms/internal/repository"
	"github.com/fliprhq/flipr-cms/internal/router"
	"github.com/fliprhq/flipr-cms/internal/service"
	"github.com/fliprhq/flipr-cms/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.WebPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Flipr web service")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure schema")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	projectRepo := repository.NewProjectRepository(pool)
	clientRepo := repository.NewClientRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	subscriberRepo := repository.NewSubscriberRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	projectService := service.NewProjectService(projectRepo)
	clientService := service.NewClientService(clientRepo)
	contactService := service.NewContactService(contactRepo)
	subscriberService := service.NewSubscriberService(subscriberRepo, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.WebHandlers{
		Home:       handler.NewHomeHandler(projectService, clientService, log),
		Contact:    handler.NewContactHandler(contactService, log),
		Subscriber: handler.NewSubscriberHandler(subscriberService, log),
		Project:    handler.NewProjectHandler(projectService, log),
		Client:     handler.NewClientHandler(clientService, log),
		Admin:      handler.NewAdminHandler(projectService, clientService, contactService, subscriberService, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupWebRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.WebPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.WebPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
