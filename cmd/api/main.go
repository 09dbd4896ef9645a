package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"crawler-dashboard/pkg/api"
	"crawler-dashboard/pkg/config"
	"crawler-dashboard/pkg/crawler"
	"crawler-dashboard/pkg/db"
	"crawler-dashboard/pkg/metrics"
	"crawler-dashboard/pkg/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.API.LogLevel)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	database, err := db.New(ctx, cfg.Database.URL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	if n, err := database.RequeueRunning(ctx); err != nil {
		logger.Fatal("failed to recover interrupted crawls", zap.Error(err))
	} else if n > 0 {
		logger.Info("requeued interrupted crawls", zap.Int64("count", n))
	}

	m := metrics.New()

	// Background crawler
	crawl := crawler.New(
		time.Duration(cfg.Crawler.RequestTimeout)*time.Second,
		cfg.Crawler.MaxConcurrentChecks,
	)
	worker := crawler.NewWorker(database, crawl, m, logger.Named("crawler"),
		time.Duration(cfg.Crawler.PollInterval)*time.Second)

	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Run(ctx)
	}()

	// Initialize router
	if cfg.API.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	urlService := services.NewURLService(database, worker)
	router := api.NewRouter(urlService, cfg, m, logger.Named("http"))

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	<-workerDone

	logger.Info("server exited")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
