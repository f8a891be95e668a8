package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// shutdown останавливает транспорты, дожидается фоновых задач и закрывает хранилище.
// Порядок важен: после остановки серверов новые задачи удаления не появятся.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()

	var errs []error

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
		}
	}

	if a.grpcServer != nil {
		stopped := make(chan struct{})
		go func() {
			a.grpcServer.GracefulStop()
			close(stopped)
		}()

		select {
		case <-stopped:
		case <-ctx.Done():
			a.grpcServer.Stop()
			errs = append(errs, fmt.Errorf("failed to stop grpc server gracefully: %w", ctx.Err()))
		}
	}

	if a.pool != nil {
		if err := a.pool.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to drain worker pool: %w", err))
		}
	}

	if a.store != nil {
		if err := a.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close storage: %w", err))
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		a.logger.Error("Shutdown finished with errors", zap.Error(err))
		return err
	}

	a.logger.Info("Shutdown complete")
	return nil
}
