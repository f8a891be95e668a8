package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlink/internal/metrics"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
	"go.uber.org/zap"
)

// GetOriginalURL получает оригинальный URL по короткому коду
func (u *URLUsecase) GetOriginalURL(ctx context.Context, code string) (string, error) {
	originalURL, err := u.repo.GetURLByCode(ctx, model.Code(code))
	switch {
	case err == nil:
		u.metrics.Redirect(metrics.RedirectFound)
		return originalURL.String(), nil
	case errors.Is(err, store.ErrNotFound):
		u.metrics.Redirect(metrics.RedirectNotFound)
		u.logger.Debug("short code not found", zap.String("code", code))
		return "", fmt.Errorf("%w: %w", ErrURLNotFound, err)
	case errors.Is(err, store.ErrDeleted):
		u.metrics.Redirect(metrics.RedirectDeleted)
		u.logger.Debug("short code is deleted", zap.String("code", code))
		return "", fmt.Errorf("%w: %w", ErrURLDeleted, err)
	default:
		u.logger.Error("failed to get URL by code",
			zap.String("code", code),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
}
