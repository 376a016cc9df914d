package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/waste3d/course-admin/config"
	"github.com/waste3d/course-admin/internal/application/usecase"
	"github.com/waste3d/course-admin/internal/infrastructure/cache"
	"github.com/waste3d/course-admin/internal/infrastructure/generative"
	"github.com/waste3d/course-admin/internal/infrastructure/repository"
	"github.com/waste3d/course-admin/internal/infrastructure/security"
	"github.com/waste3d/course-admin/internal/middleware"
	"github.com/waste3d/course-admin/internal/platform/logger"
	grpc_server "github.com/waste3d/course-admin/internal/transport/grpc"
	handlers "github.com/waste3d/course-admin/internal/transport/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("config load failed: " + err.Error())
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic("logger init failed: " + err.Error())
	}
	defer log.Sync()

	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		log.Fatal("ACCESS_SECRET and REFRESH_SECRET are required")
	}
	if cfg.LogMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal("db connect failed", "driver", cfg.DBDriver, "error", err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal("db migrate failed", "error", err)
	}
	if err := repository.SeedCatalog(ctx, db); err != nil {
		log.Warn("catalog seed failed", "error", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("redis connect failed", "addr", cfg.RedisAddr, "error", err)
	}
	log.Info("connected to redis", "addr", cfg.RedisAddr)

	var completer usecase.Completer
	if cfg.GenAIAPIKey != "" {
		gc, err := generative.NewGenAIClient(ctx, cfg.GenAIAPIKey, cfg.GenAIModel)
		if err != nil {
			log.Fatal("genai client init failed", "error", err)
		}
		completer = gc
	} else {
		log.Warn("GENAI_API_KEY not set, persona generation disabled")
	}

	projects := repository.NewProjectRepository(db)
	personaRepo := repository.NewPersonaRepository(db)

	content := usecase.NewContentUseCase(projects, repository.NewContentRepository(db), cache.NewContentCache(rdb, cfg.ContentCacheTTL), log)
	personas := usecase.NewPersonaUseCase(personaRepo, projects, completer, log)
	courses := usecase.NewCourseUseCase(projects, content, personas)
	catalog := usecase.NewCatalogUseCase(repository.NewFrameworkRepository(db), repository.NewMindRepository(db))
	auth := usecase.NewAuthUseCase(
		repository.NewAdminRepository(db),
		cache.NewTokenCache(rdb),
		security.NewPasswordHasher(),
		security.NewTokenManager(cfg.AccessSecret, cfg.RefreshSecret),
		security.RefreshTTL,
		log,
	)
	if err := auth.Bootstrap(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("admin bootstrap failed", "error", err)
	}

	router := handlers.NewRouter(handlers.Handlers{
		Auth:     handlers.NewAuthHandler(auth, cfg.CookieSecure),
		Projects: handlers.NewProjectHandler(courses),
		Content:  handlers.NewContentHandler(content),
		Personas: handlers.NewPersonaHandler(personas),
		Catalog:  handlers.NewCatalogHandler(catalog),
	}, handlers.RouterConfig{
		AllowedOrigins: cfg.Origins(),
		Limiter:        middleware.NewRateLimiter(rdb, log),
		Validator:      auth,
		Health: func(c *gin.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			if err := sqlDB.PingContext(c); err != nil {
				return err
			}
			return rdb.Ping(c).Err()
		},
		Log: log,
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	grpcSrv, health := grpc_server.NewServer(content, auth, log)

	lis, err := net.Listen("tcp", cfg.GRPCPort)
	if err != nil {
		log.Fatal("grpc listen failed", "addr", cfg.GRPCPort, "error", err)
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info("http server running", "addr", cfg.HTTPPort)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		log.Info("grpc server running", "addr", cfg.GRPCPort)
		if err := grpcSrv.Serve(lis); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		log.Error("server failed", "error", err)
	}

	health.SetServingStatus(grpc_server.ContentServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "error", err)
	}
	grpcSrv.GracefulStop()
	_ = rdb.Close()
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
