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

	httpadapter "fanvote/internal/adapter/http"
	"fanvote/internal/adapter/memory"
	"fanvote/internal/adapter/postgres"
	"fanvote/internal/adapter/usecase"
	"fanvote/internal/config"
	"fanvote/internal/core/domain"
	"fanvote/internal/core/port"
	"fanvote/internal/db"
)

// main is the entry point of the fanvote service. It loads configuration,
// optionally runs database migrations, wires the selected store and the
// token ledger into the vote service, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from .env and environment variables.
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

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Select the persistence backend. The memory store keeps everything in
	// process; postgres runs migrations first when configured.
	var (
		repo   port.VoteRepository
		ledger port.TokenLedger
	)
	switch cfg.Store {
	case "memory":
		store := memory.NewStore()
		repo, ledger = store, store
		logger.Info("using in-memory store")
	default:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		repo = postgres.NewVoteRepository(pool)
		ledger = postgres.NewTokenLedger(pool)
	}

	svc := usecase.NewVoteService(repo, ledger, domain.Identity(cfg.Treasury.WithdrawAuthority))

	if cfg.RunSeed {
		if err = db.Seed(ctx, svc, ledger); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("seed data inserted")
		}
	}

	handler := httpadapter.NewHandler(svc, logger)
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
