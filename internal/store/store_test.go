package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLink(code model.Code, target model.URL, userID string) model.ShortLink {
	return model.ShortLink{
		Code:      code,
		Target:    target,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
}

// TestNewStore проверяет создание нового хранилища
func TestNewStore(t *testing.T) {
	// Act
	store := NewStore()

	// Assert
	require.NotNil(t, store)
	assert.Empty(t, store.links, "Expected empty store")
	assert.Empty(t, store.byTarget)
}

// TestStore_CreateOrGet_Success проверяет успешную запись
func TestStore_CreateOrGet_Success(t *testing.T) {
	tests := []struct {
		name string
		code model.Code
		url  model.URL
	}{
		{
			name: "Simple write",
			code: "abc12345",
			url:  "https://example.com",
		},
		{
			name: "Write with query params",
			code: "qwerty12",
			url:  "https://example.com?param=value&other=test",
		},
		{
			name: "Write with unicode",
			code: "unicode1",
			url:  "https://example.com/путь",
		},
		{
			name: "Single character code",
			code: "a",
			url:  "https://example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			store := NewStore()
			ctx := context.Background()

			// Act
			code, created, err := store.CreateOrGet(ctx, newLink(tt.code, tt.url, "user"))

			// Assert
			require.NoError(t, err)
			assert.True(t, created)
			assert.Equal(t, tt.code, code)

			link, err := store.Read(ctx, tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.url, link.Target)
			assert.Equal(t, "user", link.UserID)
		})
	}
}

// TestStore_CreateOrGet_ExistingTarget проверяет, что повторный URL возвращает исходный код
func TestStore_CreateOrGet_ExistingTarget(t *testing.T) {
	// Arrange
	store := NewStore()
	ctx := context.Background()
	_, _, err := store.CreateOrGet(ctx, newLink("first111", "https://example.com", "user1"))
	require.NoError(t, err)

	// Act
	code, created, err := store.CreateOrGet(ctx, newLink("second22", "https://example.com", "user2"))

	// Assert
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, model.Code("first111"), code)

	unique, err := store.IsCodeUnique(ctx, "second22")
	require.NoError(t, err)
	assert.True(t, unique, "Code of the rejected link must stay free")
}

// TestStore_CreateOrGet_CodeTaken проверяет неизменяемость выданного кода
func TestStore_CreateOrGet_CodeTaken(t *testing.T) {
	// Arrange
	store := NewStore()
	ctx := context.Background()
	_, _, err := store.CreateOrGet(ctx, newLink("abc12345", "https://one.example", ""))
	require.NoError(t, err)

	// Act
	_, _, err = store.CreateOrGet(ctx, newLink("abc12345", "https://two.example", ""))

	// Assert
	require.ErrorIs(t, err, ErrAlreadyExists)

	link, err := store.Read(ctx, "abc12345")
	require.NoError(t, err)
	assert.Equal(t, model.URL("https://one.example"), link.Target)
}

// TestStore_Read_NotFound проверяет чтение несуществующего ключа
func TestStore_Read_NotFound(t *testing.T) {
	store := NewStore()

	_, err := store.Read(context.Background(), "missing")

	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestStore_CreateOrGetBatch(t *testing.T) {
	t.Run("keeps input order and reuses existing targets", func(t *testing.T) {
		// Arrange
		store := NewStore()
		ctx := context.Background()
		_, _, err := store.CreateOrGet(ctx, newLink("existing", "https://b.example", ""))
		require.NoError(t, err)

		links := []model.ShortLink{
			newLink("code0001", "https://a.example", "u"),
			newLink("code0002", "https://b.example", "u"),
			newLink("code0003", "https://a.example", "u"),
		}

		// Act
		codes, err := store.CreateOrGetBatch(ctx, links)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []model.Code{"code0001", "existing", "code0001"}, codes)

		unique, err := store.IsCodeUnique(ctx, "code0003")
		require.NoError(t, err)
		assert.True(t, unique)
	})

	t.Run("taken code rejects the whole batch", func(t *testing.T) {
		// Arrange
		store := NewStore()
		ctx := context.Background()
		_, _, err := store.CreateOrGet(ctx, newLink("taken000", "https://x.example", ""))
		require.NoError(t, err)

		links := []model.ShortLink{
			newLink("fresh000", "https://y.example", ""),
			newLink("taken000", "https://z.example", ""),
		}

		// Act
		_, err = store.CreateOrGetBatch(ctx, links)

		// Assert
		require.ErrorIs(t, err, ErrAlreadyExists)
		unique, err := store.IsCodeUnique(ctx, "fresh000")
		require.NoError(t, err)
		assert.True(t, unique, "Batch must not be applied partially")
	})
}

func TestStore_DeleteBatch(t *testing.T) {
	// Arrange
	store := NewStore()
	ctx := context.Background()
	_, _, err := store.CreateOrGet(ctx, newLink("mine0001", "https://mine.example", "owner"))
	require.NoError(t, err)
	_, _, err = store.CreateOrGet(ctx, newLink("other001", "https://other.example", "stranger"))
	require.NoError(t, err)

	// Act
	err = store.DeleteBatch(ctx, []model.Code{"mine0001", "other001", "unknown"}, "owner")

	// Assert
	require.NoError(t, err)

	_, err = store.Read(ctx, "mine0001")
	assert.ErrorIs(t, err, ErrDeleted)

	link, err := store.Read(ctx, "other001")
	require.NoError(t, err)
	assert.Equal(t, "stranger", link.UserID)

	owned, err := store.IsOwnedByUser(ctx, "mine0001", "owner")
	require.NoError(t, err)
	assert.False(t, owned, "Deleted link is not owned")

	unique, err := store.IsCodeUnique(ctx, "mine0001")
	require.NoError(t, err)
	assert.False(t, unique, "Deleted code is never reissued")

	// Удаленный target можно сократить заново
	code, created, err := store.CreateOrGet(ctx, newLink("again001", "https://mine.example", "owner"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, model.Code("again001"), code)
}

func TestStore_ListByUser(t *testing.T) {
	// Arrange
	store := NewStore()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, code := range []model.Code{"ccc", "aaa", "bbb"} {
		link := newLink(code, model.URL(fmt.Sprintf("https://%d.example", i)), "user")
		link.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		_, _, err := store.CreateOrGet(ctx, link)
		require.NoError(t, err)
	}
	_, _, err := store.CreateOrGet(ctx, newLink("zzz", "https://foreign.example", "other"))
	require.NoError(t, err)
	require.NoError(t, store.DeleteBatch(ctx, []model.Code{"aaa"}, "user"))

	// Act
	links, err := store.ListByUser(ctx, "user")

	// Assert
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, model.Code("ccc"), links[0].Code)
	assert.Equal(t, model.Code("bbb"), links[1].Code)
}

// TestStore_ConcurrentCreate проверяет отсутствие гонок при параллельной записи
func TestStore_ConcurrentCreate(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			code := model.Code(fmt.Sprintf("code%04d", i))
			_, _, err := store.CreateOrGet(ctx, newLink(code, model.URL(fmt.Sprintf("https://%d.example", i)), ""))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.links, workers)
}

func TestStore_InitializeWith_RebuildsTargetIndex(t *testing.T) {
	// Arrange
	store := NewStore()
	ctx := context.Background()
	live := newLink("live0001", "https://example.com/live", "user")
	gone := newLink("gone0001", "https://example.com/gone", "user")
	store.InitializeWith(LinkMap{live.Code: live, gone.Code: gone})

	// Act: повторная загрузка помечает запись удаленной
	gone.Deleted = true
	store.InitializeWith(LinkMap{gone.Code: gone})

	// Assert
	code, created, err := store.CreateOrGet(ctx, newLink("other001", "https://example.com/live", "user"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, live.Code, code)

	code, created, err = store.CreateOrGet(ctx, newLink("fresh001", "https://example.com/gone", "user"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, model.Code("fresh001"), code)
}
