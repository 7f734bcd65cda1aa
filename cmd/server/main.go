package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smghasemi/membersync/internal/bootstrap"
	"github.com/smghasemi/membersync/internal/config"
	"github.com/smghasemi/membersync/internal/router"
	"github.com/smghasemi/membersync/internal/shared/database"
	"github.com/smghasemi/membersync/internal/shared/logger"
	"github.com/smghasemi/membersync/internal/shared/validator"
)

func main() {
	env := flag.String("env", "local", "Environment (local|dev|production)")
	flag.Parse()

	logger.Setup(*env)
	slog.Info("server initializing", "env", *env)

	if err := run(*env); err != nil {
		slog.Error("server initialization failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped", "env", *env)
}

func run(env string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// The destination store; the legacy source is dialed per import run.
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect destination database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	srv, err := setupServer(cfg, db)
	if err != nil {
		return err
	}

	return serveUntilSignal(ctx, srv, cfg.Server.GracefulTimeout)
}

func setupServer(cfg *config.Config, db *database.DB) (*bootstrap.Server, error) {
	boot := bootstrap.NewBootstrap(cfg)
	engine := boot.SetupEngine()

	if err := validator.RegisterAll(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router.Setup(engine, cfg, db)

	slog.Info("server configured", "env", cfg.App.Env)
	return bootstrap.New(cfg, engine), nil
}

// serveUntilSignal runs the server until it fails or the process receives
// SIGINT/SIGTERM, then drains it within gracefulTimeout.
func serveUntilSignal(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, gracefulTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("forced server shutdown: %w", err)
		}
		return nil
	}
}
