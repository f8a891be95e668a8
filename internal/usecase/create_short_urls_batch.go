package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"go.uber.org/zap"
)

// CreateShortURLsBatch создает короткие URL для нескольких строковых URL.
// Результат соответствует входу по индексам, уже сокращенные URL получают свой прежний код.
func (u *URLUsecase) CreateShortURLsBatch(ctx context.Context, urlStrings []string, userID string) ([]string, error) {
	originalURLs := make([]model.URL, len(urlStrings))

	for i, urlString := range urlStrings {
		originalURL, err := normalizeURL(urlString)
		if err != nil {
			return nil, fmt.Errorf("URL at index %d: %w", i, err)
		}
		originalURLs[i] = originalURL
	}

	codes, err := u.service.CreateShortURLsBatch(ctx, originalURLs, userID)
	if err != nil {
		u.logger.Error("failed to create short URLs batch",
			zap.Strings("original_urls", urlStrings),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	shortURLs := make([]string, len(codes))
	for i, code := range codes {
		shortURL, err := u.shortURL(code)
		if err != nil {
			u.logger.Error("failed to build short URL",
				zap.String("base_url", u.cfg.BaseURL.String()),
				zap.String("code", code.String()),
				zap.Error(err),
			)
			return nil, err
		}
		shortURLs[i] = shortURL
	}

	return shortURLs, nil
}
