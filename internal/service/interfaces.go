package service

import (
	"context"

	"github.com/avc-dev/shortlink/internal/model"
)

// URLRepository определяет методы хранилища, нужные для выдачи кодов
type URLRepository interface {
	IsCodeUnique(ctx context.Context, code model.Code) (bool, error)
	// CreateOrGetURL возвращает store.ErrAlreadyExists, если код занят
	CreateOrGetURL(ctx context.Context, link model.ShortLink) (model.Code, bool, error)
	CreateOrGetURLsBatch(ctx context.Context, links []model.ShortLink) ([]model.Code, error)
}
