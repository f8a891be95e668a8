package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	cacheKeyPrefix = "link:"
	deletedMarker  = `{"deleted":true}`
)

// Backend набор операций хранилища, который оборачивает CacheStore
type Backend interface {
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

// CacheConfig настройки подключения к Redis
type CacheConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type cachedLink struct {
	Target    string    `json:"target,omitempty"`
	UserID    string    `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Deleted   bool      `json:"deleted,omitempty"`
}

// CacheStore cache-aside декоратор над хранилищем.
// Ошибки Redis логируются и не влияют на результат операции.
// Удаленный код хранится в кэше маркером deleted, который заполнение после промаха не перезаписывает.
type CacheStore struct {
	Backend
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCacheStore подключается к Redis и оборачивает backend
func NewCacheStore(ctx context.Context, backend Backend, cfg CacheConfig, logger *zap.Logger) (*CacheStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &CacheStore{
		Backend: backend,
		client:  client,
		ttl:     cfg.TTL,
		logger:  logger,
	}, nil
}

func (cs *CacheStore) Read(ctx context.Context, code model.Code) (model.ShortLink, error) {
	data, err := cs.client.Get(ctx, cacheKey(code)).Bytes()
	switch {
	case err == nil:
		var cached cachedLink
		if err := json.Unmarshal(data, &cached); err == nil {
			if cached.Deleted {
				return model.ShortLink{Code: code, Deleted: true}, fmt.Errorf("key %s: %w", code, ErrDeleted)
			}
			return model.ShortLink{
				Code:      code,
				Target:    model.URL(cached.Target),
				UserID:    cached.UserID,
				CreatedAt: cached.CreatedAt,
			}, nil
		}
		cs.logger.Warn("Failed to decode cached link", zap.String("code", code.String()))
	case !errors.Is(err, redis.Nil):
		cs.logger.Warn("Cache read failed", zap.String("code", code.String()), zap.Error(err))
	}

	link, err := cs.Backend.Read(ctx, code)
	if err != nil {
		return link, err
	}

	// SetNX: удаление, прошедшее после чтения из backend, уже оставило маркер
	cs.fill(ctx, link)
	return link, nil
}

func (cs *CacheStore) CreateOrGet(ctx context.Context, link model.ShortLink) (model.Code, bool, error) {
	code, created, err := cs.Backend.CreateOrGet(ctx, link)
	if err != nil {
		return code, created, err
	}

	if created {
		cs.set(ctx, link)
	}
	return code, created, nil
}

func (cs *CacheStore) CreateOrGetBatch(ctx context.Context, links []model.ShortLink) ([]model.Code, error) {
	codes, err := cs.Backend.CreateOrGetBatch(ctx, links)
	if err != nil {
		return nil, err
	}

	for i, link := range links {
		if codes[i] == link.Code {
			cs.set(ctx, link)
		}
	}
	return codes, nil
}

func (cs *CacheStore) DeleteBatch(ctx context.Context, codes []model.Code, userID string) error {
	if err := cs.Backend.DeleteBatch(ctx, codes, userID); err != nil {
		return err
	}

	if len(codes) == 0 {
		return nil
	}

	// Удаленные коды получают маркер, остальные (чужие) просто вытесняются
	_, err := cs.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, code := range codes {
			if _, err := cs.Backend.Read(ctx, code); errors.Is(err, ErrDeleted) {
				pipe.Set(ctx, cacheKey(code), deletedMarker, cs.ttl)
			} else {
				pipe.Del(ctx, cacheKey(code))
			}
		}
		return nil
	})
	if err != nil {
		cs.logger.Warn("Cache eviction failed", zap.Int("keys", len(codes)), zap.Error(err))
	}
	return nil
}

func (cs *CacheStore) Ping(ctx context.Context) error {
	if err := cs.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return cs.Backend.Ping(ctx)
}

func (cs *CacheStore) Close() error {
	cacheErr := cs.client.Close()
	return errors.Join(cs.Backend.Close(), cacheErr)
}

// set записывает только что созданную ссылку
func (cs *CacheStore) set(ctx context.Context, link model.ShortLink) {
	data, ok := cs.encode(link)
	if !ok {
		return
	}

	if err := cs.client.Set(ctx, cacheKey(link.Code), data, cs.ttl).Err(); err != nil {
		cs.logger.Warn("Cache write failed", zap.String("code", link.Code.String()), zap.Error(err))
	}
}

// fill заполняет кэш после промаха, не трогая уже записанное значение
func (cs *CacheStore) fill(ctx context.Context, link model.ShortLink) {
	data, ok := cs.encode(link)
	if !ok {
		return
	}

	if err := cs.client.SetNX(ctx, cacheKey(link.Code), data, cs.ttl).Err(); err != nil {
		cs.logger.Warn("Cache write failed", zap.String("code", link.Code.String()), zap.Error(err))
	}
}

func (cs *CacheStore) encode(link model.ShortLink) ([]byte, bool) {
	data, err := json.Marshal(cachedLink{
		Target:    link.Target.String(),
		UserID:    link.UserID,
		CreatedAt: link.CreatedAt,
	})
	if err != nil {
		cs.logger.Warn("Failed to encode cached link", zap.String("code", link.Code.String()), zap.Error(err))
		return nil, false
	}
	return data, true
}

func cacheKey(code model.Code) string {
	return cacheKeyPrefix + code.String()
}
