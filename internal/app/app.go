package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/avc-dev/shortlink/internal/config"
	applogger "github.com/avc-dev/shortlink/internal/logger"
	"github.com/avc-dev/shortlink/internal/metrics"
	"github.com/avc-dev/shortlink/internal/repository"
	"github.com/avc-dev/shortlink/internal/worker"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// App связывает хранилище, фоновые задачи и оба транспорта: HTTP и gRPC
type App struct {
	config     *config.Config
	logger     *zap.Logger
	store      repository.Store
	pool       *worker.Pool
	metrics    *metrics.Metrics
	httpServer *http.Server
	grpcServer *grpc.Server
}

// New создает приложение и все его зависимости
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	deps, err := initDependencies(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  cfg,
		logger:  logger,
		store:   deps.store,
		pool:    deps.pool,
		metrics: deps.metrics,
		httpServer: &http.Server{
			Handler: newRouter(deps, logger),
		},
		grpcServer: deps.grpcServer,
	}, nil
}

// Run читает конфигурацию и работает до SIGINT или SIGTERM
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := applogger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize application", zap.Error(err))
		return err
	}

	return app.Run(ctx)
}

// Run обслуживает запросы до отмены ctx или падения одного из серверов
func (a *App) Run(ctx context.Context) error {
	httpListener, err := net.Listen("tcp", a.config.ServerAddress.String())
	if err != nil {
		_ = a.shutdown()
		return fmt.Errorf("failed to listen http: %w", err)
	}

	grpcListener, err := net.Listen("tcp", a.config.GRPCAddress.String())
	if err != nil {
		httpListener.Close()
		_ = a.shutdown()
		return fmt.Errorf("failed to listen grpc: %w", err)
	}

	errCh := make(chan error, 2)

	go func() {
		a.logger.Info("Starting HTTP server", zap.String("address", httpListener.Addr().String()))
		if err := a.httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	go func() {
		a.logger.Info("Starting gRPC server", zap.String("address", grpcListener.Addr().String()))
		if err := a.grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errCh <- fmt.Errorf("grpc server failed: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("Shutdown signal received")
	case runErr = <-errCh:
		a.logger.Error("Server stopped unexpectedly", zap.Error(runErr))
	}

	return errors.Join(runErr, a.shutdown())
}
