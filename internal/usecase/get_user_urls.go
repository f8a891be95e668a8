package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"go.uber.org/zap"
)

// GetURLsByUserID возвращает все URL для указанного пользователя
func (u *URLUsecase) GetURLsByUserID(ctx context.Context, userID string) ([]model.UserURLResponse, error) {
	urls, err := u.repo.GetURLsByUserID(ctx, userID, u.cfg.BaseURL.String())
	if err != nil {
		u.logger.Error("failed to get URLs by user ID",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	u.logger.Debug("user URLs loaded", zap.String("user_id", userID), zap.Int("urls_count", len(urls)))
	return urls, nil
}
