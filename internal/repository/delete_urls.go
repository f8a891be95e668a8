package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

func (r Repository) IsURLOwnedByUser(ctx context.Context, code model.Code, userID string) (bool, error) {
	owned, err := r.underlying.IsOwnedByUser(ctx, code, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check URL owner: %w", err)
	}
	return owned, nil
}

func (r Repository) DeleteURLsBatch(ctx context.Context, codes []model.Code, userID string) error {
	if err := r.underlying.DeleteBatch(ctx, codes, userID); err != nil {
		return fmt.Errorf("failed to delete URLs batch: %w", err)
	}
	return nil
}
