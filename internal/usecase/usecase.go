package usecase

import (
	"context"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/metrics"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/worker"
	"go.uber.org/zap"
)

// Repository определяет интерфейс для работы с хранилищем URL
type Repository interface {
	GetURLByCode(ctx context.Context, code model.Code) (model.URL, error)
	GetURLsByUserID(ctx context.Context, userID string, baseURL string) ([]model.UserURLResponse, error)
	IsURLOwnedByUser(ctx context.Context, code model.Code, userID string) (bool, error)
	DeleteURLsBatch(ctx context.Context, codes []model.Code, userID string) error
	Ping(ctx context.Context) error
}

// URLService определяет интерфейс для работы с сервисом генерации коротких URL
type URLService interface {
	CreateShortURL(ctx context.Context, originalURL model.URL, userID string) (model.Code, bool, error)
	CreateShortURLsBatch(ctx context.Context, originalURLs []model.URL, userID string) ([]model.Code, error)
}

// JobQueue очередь фоновых задач
type JobQueue interface {
	Add(ctx context.Context, job worker.Job) error
}

// Option настраивает URLUsecase
type Option func(*URLUsecase)

// WithMetrics включает учет созданных ссылок и редиректов
func WithMetrics(m *metrics.Metrics) Option {
	return func(u *URLUsecase) {
		u.metrics = m
	}
}

// URLUsecase содержит бизнес-логику для работы с URL
type URLUsecase struct {
	repo           Repository
	service        URLService
	jobs           JobQueue
	asyncProcessor *service.AsyncURLProcessor
	metrics        *metrics.Metrics
	cfg            *config.Config
	logger         *zap.Logger
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(repo Repository, svc URLService, jobs JobQueue, cfg *config.Config, logger *zap.Logger, opts ...Option) *URLUsecase {
	u := &URLUsecase{
		repo:           repo,
		service:        svc,
		jobs:           jobs,
		asyncProcessor: service.NewAsyncURLProcessor(cfg.Worker.Concurrency),
		cfg:            cfg,
		logger:         logger,
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}

// Ping проверяет доступность хранилища
func (u *URLUsecase) Ping(ctx context.Context) error {
	return u.repo.Ping(ctx)
}
