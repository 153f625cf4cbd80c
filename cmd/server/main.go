package main

import (
	"context"
	"log"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/wellnest/backend/api/handler"
	"github.com/wellnest/backend/internal/config"
	"github.com/wellnest/backend/internal/infrastructure/monitor"
	pgInfra "github.com/wellnest/backend/internal/infrastructure/postgres"
	redisInfra "github.com/wellnest/backend/internal/infrastructure/redis"
	"github.com/wellnest/backend/internal/middleware"
	"github.com/wellnest/backend/internal/router"
	"github.com/wellnest/backend/internal/services/lifecycle"
	"github.com/wellnest/backend/pkg/httpcontext"
	"github.com/wellnest/backend/pkg/logger"
	"github.com/wellnest/backend/repository"
	"github.com/wellnest/backend/repository/postgres"
	redisRepo "github.com/wellnest/backend/repository/redis"
	activityUC "github.com/wellnest/backend/usecase/activity"
	authUC "github.com/wellnest/backend/usecase/auth"
	uaUC "github.com/wellnest/backend/usecase/useractivity"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	// The catalog cache is optional: without Redis every read hits Postgres.
	var redisClient *redislib.Client
	var catalogCache repository.ActivityCache
	if cfg.Redis.Enabled {
		redisClient, err = redisInfra.NewClient(cfg.Redis)
		if err != nil {
			zapLogger.Fatal("redis connection failed", zap.Error(err))
		}
		manager.Register("redis", func(ctx context.Context) error {
			return redisClient.Close()
		})
		catalogCache = redisRepo.NewActivityCache(redisClient, cfg.Catalog.CacheTTL)
	}

	mon := monitor.New(pool, redisClient, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	userActivityRepo := postgres.NewUserActivityRepository(pool)

	authUseCase := authUC.New(userRepo, authUC.Config{
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
		TokenTTL:   cfg.JWT.TokenTTL,
		BcryptCost: cfg.Auth.BcryptCost,
	}, zapLogger)
	activityUseCase := activityUC.New(activityRepo, catalogCache, cfg.Catalog.CacheTTL, zapLogger)
	userActivityUseCase := uaUC.New(userActivityRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:         apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Activity:     apiHandler.NewActivityHandler(activityUseCase, ctxAdapter, zapLogger),
		UserActivity: apiHandler.NewUserActivityHandler(userActivityUseCase, ctxAdapter, zapLogger),
		Health:       apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
