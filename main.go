package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"impactcast/internal/config"
	"impactcast/internal/logger"
	"impactcast/internal/observability"
	"impactcast/internal/server"
	"impactcast/internal/storage"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	if level := logger.ParseLogLevel(cfg.LogLevel); level != -1 {
		logger.GetGlobalLogger().SetLevel(level)
	}
	if format := logger.ParseLogFormat(cfg.LogFormat); format != -1 {
		logger.GetGlobalLogger().SetFormat(format)
	}

	logger.Info("Starting ImpactCast", map[string]interface{}{
		"version":     config.GetVersion(),
		"port":        cfg.Port,
		"environment": cfg.Environment,
	})

	deploymentMode := storage.DeploymentLocal
	if cfg.Environment != "development" && cfg.Environment != "local" && cfg.GCSBucket != "" {
		deploymentMode = storage.DeploymentGCS
		logger.Info("Using GCS storage", map[string]interface{}{"bucket": cfg.GCSBucket})
	} else {
		logger.Info("Using local storage", map[string]interface{}{"dir": cfg.LocalReportsDir})
	}

	metrics := observability.NewMetrics()

	srv, err := server.NewServer(ctx, cfg, deploymentMode, metrics)
	if err != nil {
		logger.Fatal("Failed to create server", err)
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // report generation can be slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	logger.Info("Server stopped")
}
