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

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal/internal/apiclient"
	"github.com/noah-isme/college-portal/internal/handler"
	"github.com/noah-isme/college-portal/internal/portal"
	"github.com/noah-isme/college-portal/internal/service"
	"github.com/noah-isme/college-portal/pkg/config"
	"github.com/noah-isme/college-portal/pkg/export"
	"github.com/noah-isme/college-portal/pkg/logger"
	"github.com/noah-isme/college-portal/pkg/tokenstore"
)

// @title College Portal API
// @version 0.1.0
// @description Portal gateway in front of the college REST backend
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()
	api := apiclient.NewFromConfig(cfg.API, tokenstore.FromContext, logr.Named("apiclient"), metrics)

	router := handler.NewRouter(handler.RouterConfig{
		Config: cfg,
		Deps: portal.Deps{
			API:           api,
			Tokens:        tokenstore.FromContext,
			Logger:        logr,
			Stale:         metrics,
			FlashDuration: cfg.Portal.FlashDuration,
			NoticeLimit:   cfg.Portal.AnnouncementsLimit,
			RecentLimit:   cfg.Portal.RecentAnnouncements,
		},
		Logger:  logr,
		Metrics: metrics,
		Exports: service.NewExportService(export.NewExporter()),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "backend", api.BaseURL())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
	logr.Sugar().Infow("server stopped")
}
