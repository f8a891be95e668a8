package app

import (
	"context"
	"fmt"
	"time"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/config/db"
	"github.com/avc-dev/shortlink/internal/grpcserver"
	"github.com/avc-dev/shortlink/internal/handler"
	"github.com/avc-dev/shortlink/internal/metrics"
	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/avc-dev/shortlink/internal/migrations"
	"github.com/avc-dev/shortlink/internal/repository"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/store"
	"github.com/avc-dev/shortlink/internal/usecase"
	"github.com/avc-dev/shortlink/internal/worker"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// addJobTimeout ограничивает ожидание места в очереди фоновых задач
const addJobTimeout = time.Second

type dependencies struct {
	store      repository.Store
	pool       *worker.Pool
	metrics    *metrics.Metrics
	handler    *handler.Handler
	auth       *middleware.AuthMiddleware
	grpcServer *grpc.Server
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	storage, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	generator, err := service.NewGenerator(cfg.Code.Strategy, cfg.Code.Length)
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("failed to create code generator: %w", err)
	}

	pool := worker.NewPool(worker.PoolConfig{
		Concurrency:   cfg.Worker.Concurrency,
		DoJobTimeout:  cfg.Worker.JobTimeout,
		AddJobTimeout: addJobTimeout,
	}, logger)

	appMetrics := metrics.New()
	authService := service.NewAuthService(cfg.JWTSecret)

	repo := repository.New(storage)
	urlService := service.NewURLService(repo, generator, cfg)
	urlUsecase := usecase.NewURLUsecase(repo, urlService, pool, cfg, logger, usecase.WithMetrics(appMetrics))

	return &dependencies{
		store:      storage,
		pool:       pool,
		metrics:    appMetrics,
		handler:    handler.New(urlUsecase, service.NewForecastService(), logger),
		auth:       middleware.NewAuthMiddleware(authService, logger),
		grpcServer: grpcserver.New(urlUsecase, authService, logger),
	}, nil
}

// initStorage выбирает хранилище по приоритету: PostgreSQL, файл, память.
// Если задан адрес Redis, выбранное хранилище оборачивается кэшем.
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, error) {
	storage, err := initBackend(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.Redis.Addr == "" {
		return storage, nil
	}

	cached, err := store.NewCacheStore(ctx, storage, store.CacheConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	}, logger)
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Info("Using redis cache", zap.String("addr", cfg.Redis.Addr))

	return cached, nil
}

func initBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, error) {
	if cfg.DatabaseDSN != "" {
		database, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := migrations.NewMigrator(database.DB(), logger).RunUp(); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		databaseStore, err := store.NewDatabaseStore(database)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create database store: %w", err)
		}
		logger.Info("Using database storage")
		return databaseStore, nil
	}

	if cfg.FileStoragePath != "" {
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create file store: %w", err)
		}
		logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		return fileStore, nil
	}

	logger.Info("Using in-memory storage")
	return store.NewStore(), nil
}
