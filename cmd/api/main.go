package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/lahermandad/internal/audit"
	"github.com/BruksfildServices01/lahermandad/internal/config"
	dbpkg "github.com/BruksfildServices01/lahermandad/internal/db"
	"github.com/BruksfildServices01/lahermandad/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/lahermandad/internal/infra/repository"
	"github.com/BruksfildServices01/lahermandad/internal/logger"
	"github.com/BruksfildServices01/lahermandad/internal/middleware"
	"github.com/BruksfildServices01/lahermandad/internal/routes"
	"github.com/BruksfildServices01/lahermandad/internal/storage"
)

func main() {

	cfg := config.Load()

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}
	if err := dbpkg.SeedAdmin(db, cfg); err != nil {
		log.Fatal("failed to seed admin", zap.Error(err))
	}

	rdb := cache.NewRedis(cfg.Redis)
	if rdb == nil {
		log.Warn("redis disabled: settings cache and rate limiting are off")
	} else {
		defer rdb.Close()
	}

	store, err := storage.FromConfig(cfg.Storage)
	if err != nil {
		log.Fatal("failed to configure storage", zap.Error(err))
	}

	dispatcher := audit.NewDispatcher(audit.New(infraRepo.NewAuditLogGormRepository(db)))
	defer dispatcher.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.CORSMiddleware(),
	)

	routes.RegisterRoutes(r, cfg, routes.Infra{
		DB:      db,
		Redis:   rdb,
		Storage: store,
		Audit:   dispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("storage", store.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
