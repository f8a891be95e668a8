package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
)

// URLService содержит бизнес-логику выдачи коротких кодов
type URLService struct {
	repo          URLRepository
	codeGenerator Generator
	maxAttempts   int
	now           func() time.Time
}

// NewURLService создает новый экземпляр URLService
func NewURLService(repo URLRepository, generator Generator, cfg *config.Config) *URLService {
	maxAttempts := cfg.Retry.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	return &URLService{
		repo:          repo,
		codeGenerator: generator,
		maxAttempts:   maxAttempts,
		now:           time.Now,
	}
}

// CreateShortURL генерирует уникальный код и сохраняет его вместе с оригинальным URL и userID.
// Если URL уже сокращен, возвращается существующий код и created == false.
func (s *URLService) CreateShortURL(ctx context.Context, originalURL model.URL, userID string) (model.Code, bool, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		code, ok, err := s.nextCode(ctx, nil)
		if err != nil {
			return "", false, err
		}
		if !ok {
			continue
		}

		link := model.ShortLink{
			Code:      code,
			Target:    originalURL,
			UserID:    userID,
			CreatedAt: s.now().UTC(),
		}

		finalCode, created, err := s.repo.CreateOrGetURL(ctx, link)
		if errors.Is(err, store.ErrAlreadyExists) {
			// Код заняли между проверкой и вставкой
			continue
		}
		if err != nil {
			return "", false, fmt.Errorf("failed to create or get URL: %w", err)
		}

		return finalCode, created, nil
	}

	return "", false, fmt.Errorf("failed to generate unique code after %d attempts: %w", s.maxAttempts, ErrMaxRetriesExceeded)
}

// CreateShortURLsBatch создает короткие URL для нескольких оригинальных URL.
// Коды возвращаются в порядке входных URL, батч сохраняется атомарно.
func (s *URLService) CreateShortURLsBatch(ctx context.Context, originalURLs []model.URL, userID string) ([]model.Code, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		links, err := s.buildBatch(ctx, originalURLs, userID)
		if err != nil {
			return nil, err
		}

		codes, err := s.repo.CreateOrGetURLsBatch(ctx, links)
		if errors.Is(err, store.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create URLs batch: %w", err)
		}

		return codes, nil
	}

	return nil, fmt.Errorf("failed to store batch after %d attempts: %w", s.maxAttempts, ErrMaxRetriesExceeded)
}

func (s *URLService) buildBatch(ctx context.Context, originalURLs []model.URL, userID string) ([]model.ShortLink, error) {
	createdAt := s.now().UTC()
	usedInBatch := make(map[model.Code]bool, len(originalURLs))
	links := make([]model.ShortLink, len(originalURLs))

	for i, originalURL := range originalURLs {
		code, err := s.generateUniqueCodeForBatch(ctx, usedInBatch)
		if err != nil {
			return nil, err
		}
		usedInBatch[code] = true

		links[i] = model.ShortLink{
			Code:      code,
			Target:    originalURL,
			UserID:    userID,
			CreatedAt: createdAt,
		}
	}

	return links, nil
}

// generateUniqueCodeForBatch генерирует уникальный код для батча, учитывая уже использованные коды в рамках батча
func (s *URLService) generateUniqueCodeForBatch(ctx context.Context, usedInBatch map[model.Code]bool) (model.Code, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		code, ok, err := s.nextCode(ctx, usedInBatch)
		if err != nil {
			return "", err
		}
		if ok {
			return code, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique code for batch after %d attempts: %w", s.maxAttempts, ErrMaxRetriesExceeded)
}

// nextCode генерирует кандидата и проверяет его по батчу и по хранилищу
func (s *URLService) nextCode(ctx context.Context, usedInBatch map[model.Code]bool) (model.Code, bool, error) {
	code := s.codeGenerator.GenerateCode()
	if usedInBatch[code] {
		return "", false, nil
	}

	unique, err := s.repo.IsCodeUnique(ctx, code)
	if err != nil {
		return "", false, fmt.Errorf("failed to check code %s: %w", code, err)
	}

	return code, unique, nil
}
