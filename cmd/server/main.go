package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/mergington/activities/internal/app"
	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/logging"
	"github.com/mergington/activities/internal/metrics"
	"github.com/mergington/activities/internal/registry"
	"github.com/mergington/activities/internal/server"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupStore(cfg *config.Config) *registry.MemoryStore {
	seed := registry.SeedActivities()
	if cfg.SeedFile != "" {
		loaded, err := registry.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			slog.Error("Failed to load seed file", "path", cfg.SeedFile, "error", err)
			os.Exit(1)
		}
		seed = loaded
		slog.Info("Loaded activity catalog from seed file", "path", cfg.SeedFile, "activities", len(seed))
	}

	store := registry.NewMemoryStore(seed)
	metrics.RegistryActivities.Set(float64(store.Len()))
	return store
}

func runGracefulShutdown(srv *server.Server, cfg *config.Config) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	store := setupStore(cfg)
	registrySvc := app.NewService(store)

	srv := server.NewServer(cfg, registrySvc, clockwork.NewRealClock())

	done := runGracefulShutdown(srv, cfg)

	slog.Info("Server starting", "port", cfg.Port, "activities", store.Len())
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
