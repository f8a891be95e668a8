package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/avc-dev/shortlink/internal/model"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrAlreadyExists = errors.New("key already exists")
	ErrDeleted       = errors.New("key is deleted")
)

// LinkMap представляет маппинг коротких кодов на записи хранилища
type LinkMap = map[model.Code]model.ShortLink

// Store in-memory хранилище коротких ссылок.
// Индекс byTarget содержит только неудаленные записи.
type Store struct {
	links    LinkMap
	byTarget map[model.URL]model.Code
	mutex    sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		links:    make(LinkMap),
		byTarget: make(map[model.URL]model.Code),
	}
}

func (s *Store) Read(_ context.Context, code model.Code) (model.ShortLink, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	link, ok := s.links[code]
	if !ok {
		return model.ShortLink{}, fmt.Errorf("key %s: %w", code, ErrNotFound)
	}

	if link.Deleted {
		return link, fmt.Errorf("key %s: %w", code, ErrDeleted)
	}

	return link, nil
}

// CreateOrGet сохраняет ссылку или возвращает код уже существующей ссылки на тот же Target.
// created == false означает, что запись не добавлялась.
func (s *Store) CreateOrGet(_ context.Context, link model.ShortLink) (model.Code, bool, error) {
	codes, created, err := s.createOrGet([]model.ShortLink{link}, nil)
	if err != nil {
		return "", false, err
	}
	return codes[0], created[0], nil
}

// CreateOrGetBatch атомарно применяет CreateOrGet ко всем ссылкам.
// Коды возвращаются в порядке входных ссылок.
func (s *Store) CreateOrGetBatch(_ context.Context, links []model.ShortLink) ([]model.Code, error) {
	codes, _, err := s.createOrGet(links, nil)
	return codes, err
}

// createOrGet под одной блокировкой находит новые записи, передает их в persist
// и меняет память только после его успеха. Ошибка оставляет хранилище нетронутым.
func (s *Store) createOrGet(links []model.ShortLink, persist func([]model.ShortLink) error) ([]model.Code, []bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	codes := make([]model.Code, len(links))
	created := make([]bool, len(links))
	pendingTargets := make(map[model.URL]model.Code)
	pendingCodes := make(map[model.Code]struct{})
	fresh := make([]model.ShortLink, 0, len(links))

	for i, link := range links {
		if existing, ok := s.byTarget[link.Target]; ok {
			codes[i] = existing
			continue
		}
		if existing, ok := pendingTargets[link.Target]; ok {
			codes[i] = existing
			continue
		}

		_, taken := s.links[link.Code]
		_, pending := pendingCodes[link.Code]
		if taken || pending {
			return nil, nil, fmt.Errorf("key %s: %w", link.Code, ErrAlreadyExists)
		}

		link.Deleted = false
		pendingTargets[link.Target] = link.Code
		pendingCodes[link.Code] = struct{}{}
		fresh = append(fresh, link)
		codes[i] = link.Code
		created[i] = true
	}

	if persist != nil && len(fresh) > 0 {
		if err := persist(fresh); err != nil {
			return nil, nil, err
		}
	}

	for _, link := range fresh {
		s.links[link.Code] = link
		s.byTarget[link.Target] = link.Code
	}

	return codes, created, nil
}

// IsCodeUnique проверяет, свободен ли код. Удаленные коды повторно не выдаются.
func (s *Store) IsCodeUnique(_ context.Context, code model.Code) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, exists := s.links[code]
	return !exists, nil
}

// ListByUser возвращает неудаленные ссылки пользователя в порядке создания
func (s *Store) ListByUser(_ context.Context, userID string) ([]model.ShortLink, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var links []model.ShortLink
	for _, link := range s.links {
		if link.UserID == userID && !link.Deleted {
			links = append(links, link)
		}
	}

	sort.Slice(links, func(i, j int) bool {
		if links[i].CreatedAt.Equal(links[j].CreatedAt) {
			return links[i].Code < links[j].Code
		}
		return links[i].CreatedAt.Before(links[j].CreatedAt)
	})

	return links, nil
}

func (s *Store) IsOwnedByUser(_ context.Context, code model.Code, userID string) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	link, ok := s.links[code]
	return ok && !link.Deleted && link.UserID == userID, nil
}

// DeleteBatch помечает удаленными ссылки пользователя. Чужие и неизвестные коды пропускаются.
func (s *Store) DeleteBatch(_ context.Context, codes []model.Code, userID string) error {
	return s.deleteBatch(codes, userID, nil)
}

// deleteBatch передает в persist коды, которые будут помечены удаленными,
// и помечает их только после его успеха
func (s *Store) deleteBatch(codes []model.Code, userID string, persist func([]model.Code) error) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var deleted []model.Code
	for _, code := range codes {
		link, ok := s.links[code]
		if !ok || link.Deleted || link.UserID != userID || slices.Contains(deleted, code) {
			continue
		}
		deleted = append(deleted, code)
	}

	if persist != nil && len(deleted) > 0 {
		if err := persist(deleted); err != nil {
			return err
		}
	}

	for _, code := range deleted {
		link := s.links[code]
		link.Deleted = true
		s.links[code] = link
		if s.byTarget[link.Target] == code {
			delete(s.byTarget, link.Target)
		}
	}

	return nil
}

// InitializeWith загружает записи целиком, например при чтении файла.
// Запись с уже известным кодом заменяет прежнюю, индекс byTarget перестраивается
// так, чтобы в нем остались только неудаленные записи.
func (s *Store) InitializeWith(data LinkMap) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for code, link := range data {
		if old, ok := s.links[code]; ok && s.byTarget[old.Target] == code {
			delete(s.byTarget, old.Target)
		}
		s.links[code] = link
		if !link.Deleted {
			s.byTarget[link.Target] = code
		}
	}
}

func (s *Store) Ping(context.Context) error {
	return nil
}

func (s *Store) Close() error {
	return nil
}
