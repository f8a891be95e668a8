package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

func (r Repository) CreateOrGetURLsBatch(ctx context.Context, links []model.ShortLink) ([]model.Code, error) {
	codes, err := r.underlying.CreateOrGetBatch(ctx, links)
	if err != nil {
		return nil, fmt.Errorf("failed to create URLs batch: %w", err)
	}

	return codes, nil
}
