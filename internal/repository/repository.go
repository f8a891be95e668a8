package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

// Store хранилище коротких ссылок: in-memory, файловое, PostgreSQL или их декоратор с кэшем
type Store interface {
	Read(ctx context.Context, code model.Code) (model.ShortLink, error)
	CreateOrGet(ctx context.Context, link model.ShortLink) (model.Code, bool, error)
	CreateOrGetBatch(ctx context.Context, links []model.ShortLink) ([]model.Code, error)
	IsCodeUnique(ctx context.Context, code model.Code) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]model.ShortLink, error)
	IsOwnedByUser(ctx context.Context, code model.Code, userID string) (bool, error)
	DeleteBatch(ctx context.Context, codes []model.Code, userID string) error
	Ping(ctx context.Context) error
	Close() error
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

func (r Repository) IsCodeUnique(ctx context.Context, code model.Code) (bool, error) {
	unique, err := r.underlying.IsCodeUnique(ctx, code)
	if err != nil {
		return false, fmt.Errorf("failed to check code uniqueness: %w", err)
	}
	return unique, nil
}

func (r Repository) Ping(ctx context.Context) error {
	if err := r.underlying.Ping(ctx); err != nil {
		return fmt.Errorf("storage is unavailable: %w", err)
	}
	return nil
}
