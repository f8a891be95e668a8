package repository

import (
	"context"
	"fmt"
	"net/url"

	"github.com/avc-dev/shortlink/internal/model"
)

// GetURLsByUserID возвращает ссылки пользователя с полным коротким URL на базе baseURL
func (r Repository) GetURLsByUserID(ctx context.Context, userID string, baseURL string) ([]model.UserURLResponse, error) {
	links, err := r.underlying.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get URLs by user ID: %w", err)
	}

	urls := make([]model.UserURLResponse, 0, len(links))
	for _, link := range links {
		shortURL, err := url.JoinPath(baseURL, link.Code.String())
		if err != nil {
			return nil, fmt.Errorf("failed to build short URL for %s: %w", link.Code, err)
		}

		urls = append(urls, model.UserURLResponse{
			ShortURL:    shortURL,
			OriginalURL: link.Target.String(),
		})
	}

	return urls, nil
}
