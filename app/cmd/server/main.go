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

	"github.com/joho/godotenv"

	"onboarding-hub/app/config"
	"onboarding-hub/app/di"
	"onboarding-hub/app/utils/logger"
)

func main() {
	// .env is optional; real deployments use injected environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	container, err := di.NewContainer(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}
	defer container.Close()

	e := container.CreateRouter()

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("🚀 onboarding hub starting", "addr", addr)
		serverErrors <- e.Start(addr)
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-shutdown:
		log.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := e.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed, forcing close", "error", err)
			if closeErr := e.Close(); closeErr != nil {
				return fmt.Errorf("forced close failed: %w", closeErr)
			}
		}
		log.Info("👋 onboarding hub stopped")
	}

	return nil
}
