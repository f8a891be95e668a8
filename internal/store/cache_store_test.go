package store

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func newTestCacheStore(t *testing.T) (*CacheStore, *Store, *miniredis.Miniredis) {
	t.Helper()

	redisServer := miniredis.RunT(t)
	backend := NewStore()

	cs, err := NewCacheStore(context.Background(), backend, CacheConfig{
		Addr: redisServer.Addr(),
		TTL:  time.Minute,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { cs.Close() })

	return cs, backend, redisServer
}

func TestNewCacheStore_Unreachable(t *testing.T) {
	redisServer := miniredis.RunT(t)
	addr := redisServer.Addr()
	redisServer.Close()

	_, err := NewCacheStore(context.Background(), NewStore(), CacheConfig{Addr: addr}, zap.NewNop())

	assert.Error(t, err)
}

func TestCacheStore_CreateWritesThrough(t *testing.T) {
	// Arrange
	cs, _, redisServer := newTestCacheStore(t)
	ctx := context.Background()

	// Act
	_, created, err := cs.CreateOrGet(ctx, newLink("abc12345", "https://example.com", "user"))

	// Assert
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, redisServer.Exists("link:abc12345"))
	assert.Equal(t, time.Minute, redisServer.TTL("link:abc12345"))
}

func TestCacheStore_ReadPopulatesOnMiss(t *testing.T) {
	// Arrange
	cs, backend, redisServer := newTestCacheStore(t)
	ctx := context.Background()
	_, _, err := backend.CreateOrGet(ctx, newLink("abc12345", "https://example.com", "user"))
	require.NoError(t, err)
	require.False(t, redisServer.Exists("link:abc12345"))

	// Act
	link, err := cs.Read(ctx, "abc12345")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, model.URL("https://example.com"), link.Target)
	assert.True(t, redisServer.Exists("link:abc12345"))
}

func TestCacheStore_ReadServesFromCache(t *testing.T) {
	cs, _, redisServer := newTestCacheStore(t)
	require.NoError(t, redisServer.Set("link:cached01", `{"target":"https://cached.example"}`))

	link, err := cs.Read(context.Background(), "cached01")

	require.NoError(t, err)
	assert.Equal(t, model.URL("https://cached.example"), link.Target)
	assert.Equal(t, model.Code("cached01"), link.Code)
}

func TestCacheStore_ReadFallsBackWhenRedisIsDown(t *testing.T) {
	cs, backend, redisServer := newTestCacheStore(t)
	ctx := context.Background()
	_, _, err := backend.CreateOrGet(ctx, newLink("abc12345", "https://example.com", ""))
	require.NoError(t, err)

	redisServer.Close()

	link, err := cs.Read(ctx, "abc12345")
	require.NoError(t, err)
	assert.Equal(t, model.URL("https://example.com"), link.Target)
}

func TestCacheStore_DeleteLeavesMarker(t *testing.T) {
	// Arrange
	cs, _, redisServer := newTestCacheStore(t)
	ctx := context.Background()
	_, _, err := cs.CreateOrGet(ctx, newLink("abc12345", "https://example.com", "user"))
	require.NoError(t, err)

	// Act
	err = cs.DeleteBatch(ctx, []model.Code{"abc12345"}, "user")

	// Assert
	require.NoError(t, err)
	cached, err := redisServer.Get("link:abc12345")
	require.NoError(t, err)
	assert.JSONEq(t, `{"deleted":true}`, cached)
	assert.Equal(t, time.Minute, redisServer.TTL("link:abc12345"))

	link, err := cs.Read(ctx, "abc12345")
	assert.ErrorIs(t, err, ErrDeleted)
	assert.True(t, link.Deleted)
}

func TestCacheStore_DeleteEvictsForeignCodes(t *testing.T) {
	// Arrange
	cs, _, redisServer := newTestCacheStore(t)
	ctx := context.Background()
	_, _, err := cs.CreateOrGet(ctx, newLink("abc12345", "https://example.com", "owner"))
	require.NoError(t, err)

	// Act
	err = cs.DeleteBatch(ctx, []model.Code{"abc12345"}, "stranger")

	// Assert
	require.NoError(t, err)
	assert.False(t, redisServer.Exists("link:abc12345"))
	link, err := cs.Read(ctx, "abc12345")
	require.NoError(t, err)
	assert.Equal(t, model.URL("https://example.com"), link.Target)
}

// blockingBackend задерживает первое чтение после обращения к хранилищу,
// пока тест не разрешит продолжить
type blockingBackend struct {
	*Store
	block   atomic.Bool
	fetched chan struct{}
	release chan struct{}
}

func (b *blockingBackend) Read(ctx context.Context, code model.Code) (model.ShortLink, error) {
	link, err := b.Store.Read(ctx, code)
	if b.block.CompareAndSwap(true, false) {
		close(b.fetched)
		<-b.release
	}
	return link, err
}

func TestCacheStore_DeleteDuringReadMissIsNotOverwritten(t *testing.T) {
	// Arrange
	redisServer := miniredis.RunT(t)
	backend := &blockingBackend{
		Store:   NewStore(),
		fetched: make(chan struct{}),
		release: make(chan struct{}),
	}
	cs, err := NewCacheStore(context.Background(), backend, CacheConfig{
		Addr: redisServer.Addr(),
		TTL:  time.Minute,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { cs.Close() })

	ctx := context.Background()
	_, _, err = backend.Store.CreateOrGet(ctx, newLink("abc", "https://example.com", "user"))
	require.NoError(t, err)
	backend.block.Store(true)

	readDone := make(chan error, 1)
	go func() {
		_, err := cs.Read(ctx, "abc")
		readDone <- err
	}()
	<-backend.fetched

	// Act: удаление проходит между чтением из backend и заполнением кэша
	require.NoError(t, cs.DeleteBatch(ctx, []model.Code{"abc"}, "user"))
	close(backend.release)
	require.NoError(t, <-readDone)

	// Assert
	_, err = cs.Read(ctx, "abc")
	assert.ErrorIs(t, err, ErrDeleted)
}

func TestCacheStore_NotFoundIsNotCached(t *testing.T) {
	cs, _, redisServer := newTestCacheStore(t)

	_, err := cs.Read(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, redisServer.Exists("link:missing"))
}
