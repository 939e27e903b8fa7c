package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prose-marketing/internal/adapter/channel"
	"prose-marketing/internal/adapter/crm"
	httpadapter "prose-marketing/internal/adapter/http"
	"prose-marketing/internal/adapter/postgres"
	"prose-marketing/internal/adapter/usecase"
	"prose-marketing/internal/config"
	"prose-marketing/internal/db"
)

// main is the entry point of the marketing service. It loads
// configuration, optionally runs database migrations and seeding,
// initializes the database pool and repositories, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down
// the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	repo := postgres.NewMarketingRepository(pool)
	crmClient := crm.NewClient(cfg.CRM)
	books := crm.NewStaticBooks(cfg.Book)

	orchestrator := usecase.NewOrchestrator(repo, books, crmClient, logger,
		channel.NewAmazonAds(cfg.Amazon),
		channel.NewFacebookAds(cfg.Facebook),
		channel.NewBookBub(cfg.BookBub),
		channel.NewEmailSequence(cfg.Email),
		channel.NewOrganicSocial(cfg.Social),
	)
	tracker := usecase.NewTracker(repo, logger)

	handler := httpadapter.NewHandler(orchestrator, tracker, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
