package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/garnizeh/watchrepair/api"
	dbfs "github.com/garnizeh/watchrepair/db"
	"github.com/garnizeh/watchrepair/internal/config"
	"github.com/garnizeh/watchrepair/internal/db"
	"github.com/garnizeh/watchrepair/internal/repository/memory"
	"github.com/garnizeh/watchrepair/internal/repository/sqlite"
	"github.com/garnizeh/watchrepair/internal/seed"
	"github.com/garnizeh/watchrepair/internal/validation"
	"github.com/garnizeh/watchrepair/pkg/repository"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := cfg.Logger()
	slog.SetDefault(logger)
	api.SetLogger(logger)

	logger.Info("starting watchrepair server",
		slog.String("version", version),
		slog.String("build_time", buildTime),
		slog.String("storage", cfg.Storage),
	)

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open store", slog.Any("err", err))
		os.Exit(1)
	}

	validator, err := validation.New()
	if err != nil {
		logger.Error("failed to load validation schemas", slog.Any("err", err))
		os.Exit(1)
	}

	handler := api.SetupRoutes(cfg, version, buildTime, store, validator)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", slog.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", slog.Any("err", err))
	}

	if err := closeStore(); err != nil {
		logger.Error("error closing store", slog.Any("err", err))
	}

	logger.Info("server exited")
}

// openStore builds the configured backend. The sqlite backend is migrated and
// seeded on first start; the memory backend is seeded on construction.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repository.Store, func() error, error) {
	if cfg.Storage != config.StorageSQLite {
		return memory.New(logger), func() error { return nil }, nil
	}

	conn, err := db.New(ctx, cfg.DatabasePath, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Migrate(ctx, conn, dbfs.Migrations); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}

	repo := sqlite.New(conn, logger)
	seeded, err := seed.LoadIfEmpty(ctx, repo)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("seed: %w", err)
	}
	if seeded {
		logger.Info("seeded catalog", slog.String("database", cfg.DatabasePath))
	}
	return repo, conn.Close, nil
}
