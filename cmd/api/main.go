package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/chanmix51/kaku/infrastructure/config"
	"github.com/chanmix51/kaku/infrastructure/di"
	"github.com/chanmix51/kaku/interfaces/http/rest"
	"github.com/chanmix51/kaku/interfaces/http/rest/handlers"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize dependency container
	container, err := di.InitializeContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Runtime limits: hot-reloaded from the overlay file when one is
	// configured, fixed defaults otherwise
	var limits handlers.LimitsProvider = config.NewStatic(config.DefaultDynamicConfig().Limits)
	if cfg.DynamicConfigPath != "" {
		watcher, err := config.NewWatcher(cfg.DynamicConfigPath, container.Logger)
		if err != nil {
			container.Logger.Fatal("Failed to load dynamic configuration", zap.Error(err))
		}
		watcher.Start()
		defer watcher.Stop()
		limits = watcher
	}

	// Consume the event channel until shutdown
	dispatcherDone := make(chan struct{})
	go func() {
		defer close(dispatcherDone)
		if err := container.Dispatcher.Run(ctx); err != nil {
			container.Logger.Info("Event dispatcher stopped", zap.Error(err))
		}
	}()

	// Create HTTP server
	handler := rest.NewRouter(cfg, container.Scribe, container.Metrics, limits, container.Logger).Setup()
	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeoutSeconds) * time.Second,
	}

	// Start server in goroutine
	go func() {
		container.Logger.Info("Starting server",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	container.Logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Server shutdown error", zap.Error(err))
	}

	// Closing the queue lets the dispatcher drain the backlog before exiting
	container.Shutdown(shutdownCtx)

	select {
	case <-dispatcherDone:
	case <-shutdownCtx.Done():
		container.Logger.Warn("Event dispatcher did not drain in time")
	}

	log.Println("Server stopped")
}
