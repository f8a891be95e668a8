package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// CreateShortURLFromString создает короткий URL из строки оригинального URL.
// Для уже сокращенного URL возвращает URLAlreadyExistsError с существующим коротким URL.
func (u *URLUsecase) CreateShortURLFromString(ctx context.Context, urlString string, userID string) (string, error) {
	originalURL, err := normalizeURL(urlString)
	if err != nil {
		return "", err
	}

	code, created, err := u.service.CreateShortURL(ctx, originalURL, userID)
	if err != nil {
		u.logger.Error("failed to create short URL",
			zap.String("original_url", originalURL.String()),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	shortURL, err := u.shortURL(code)
	if err != nil {
		u.logger.Error("failed to build short URL",
			zap.String("base_url", u.cfg.BaseURL.String()),
			zap.String("code", code.String()),
			zap.Error(err),
		)
		return "", err
	}

	u.metrics.LinkShortened(created)

	if !created {
		return "", NewURLAlreadyExistsError(shortURL)
	}

	return shortURL, nil
}
