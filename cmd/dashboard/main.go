// cmd/dashboard/main.go

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"misinfotracker/internal/config"
	"misinfotracker/internal/logging"
	"misinfotracker/internal/server"
	"misinfotracker/internal/service/dashboard"
	"misinfotracker/internal/service/sample"
	"misinfotracker/internal/view"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// The record set is generated once and shared read-only by every request
	records := sample.Generate(cfg.Data.Seed)
	dash := dashboard.NewDashboard(records)
	logger.Info("Generated sample records",
		zap.Int("count", len(records)),
		zap.Uint64("seed", cfg.Data.Seed),
	)

	page, err := view.NewPageRenderer()
	if err != nil {
		logger.Fatal("Failed to parse templates", zap.Error(err))
	}

	// Initialize HTTP server
	httpServer := server.NewServer(cfg, dash, page, logger)

	// Start HTTP server
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", httpServer.Addr()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	<-shutdown
	logger.Info("Shutdown signal received")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("Shutdown complete")
}
