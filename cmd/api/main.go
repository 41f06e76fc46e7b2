package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"inmogestor-backend/internal/app"
	"inmogestor-backend/internal/config"
	"inmogestor-backend/internal/server"
)

func main() {
	// 1. Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Build logger, catalog, file storage, metrics and digest job
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	a, err := app.New(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	logger := a.Logger

	// 3. Start background cron jobs
	if err := a.Start(); err != nil {
		logger.Error("failed to start rent digest", zap.Error(err))
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		a.Close(closeCtx)
		closeCancel()
		os.Exit(1)
	}

	// 4. Start server with graceful shutdown
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           server.NewRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server started",
			zap.String("port", cfg.Port),
			zap.String("source", a.Catalog.Source()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-done
	logger.Info("server stopping")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited properly")
	a.Close(shutdownCtx)
}
