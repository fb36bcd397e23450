// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inventorypro/insights/internal/analysis"
	"github.com/inventorypro/insights/internal/api"
	"github.com/inventorypro/insights/internal/config"
	"github.com/inventorypro/insights/internal/inventory"
	"github.com/inventorypro/insights/internal/report"
	"github.com/inventorypro/insights/internal/repository"
	"github.com/inventorypro/insights/internal/storage"
	"github.com/inventorypro/insights/internal/store"
	"github.com/inventorypro/insights/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.SetLevel(cfg.Log.Level)
	if cfg.Log.Format == "json" {
		logger.UseJSON()
	}
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	kv, err := store.Open(cfg.Store)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to open store")
	}
	repo := repository.NewInventory(kv)

	analyzer := analysis.NewHTTPAnalyzer(cfg.Analysis)
	coordinator := analysis.NewCoordinator(analyzer, cfg.Analysis)
	defer coordinator.Close()

	svc := inventory.NewService(repo).WithListener(coordinator)

	exporter := report.NewExporter(repo, coordinator, cfg.Export)
	if cfg.Archive.Enabled {
		archive, err := storage.NewMinioClient(cfg.Archive)
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("Failed to initialize report archive")
		}
		exporter = exporter.WithArchive(archive)
	}

	router := api.NewRouter(&api.Services{
		Inventory:   svc,
		Coordinator: coordinator,
		Exporter:    exporter,
	}, cfg.Server.AllowedOrigins)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Str("store", cfg.Store.Backend).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
