package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

func (r Repository) GetURLByCode(ctx context.Context, code model.Code) (model.URL, error) {
	link, err := r.underlying.Read(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to get URL by code: %w", err)
	}

	return link.Target, nil
}
