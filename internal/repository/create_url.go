package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

func (r Repository) CreateOrGetURL(ctx context.Context, link model.ShortLink) (model.Code, bool, error) {
	code, created, err := r.underlying.CreateOrGet(ctx, link)
	if err != nil {
		return "", false, fmt.Errorf("failed to create or get URL: %w", err)
	}

	return code, created, nil
}
