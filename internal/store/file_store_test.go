package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_NewFileStore(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "test_urls.json")

	fs, err := NewFileStore(filePath)
	require.NoError(t, err)
	require.NotNil(t, fs)

	// Файл создается сразу, чтобы ошибка пути проявилась при старте
	info, err := os.Stat(filePath)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestFileStore_NewFileStore_MissingDirectory(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "missing-dir", "links.json")

	_, err := NewFileStore(filePath)

	assert.Error(t, err)
}

// breakFile подменяет файл хранилища каталогом, после чего любая дозапись падает
func breakFile(t *testing.T, filePath string) {
	t.Helper()
	require.NoError(t, os.Remove(filePath))
	require.NoError(t, os.Mkdir(filePath, 0o755))
}

func TestFileStore_AppendFailureLeavesMemoryUntouched(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		// Arrange
		filePath := filepath.Join(t.TempDir(), "links.json")
		fs, err := NewFileStore(filePath)
		require.NoError(t, err)
		ctx := context.Background()
		breakFile(t, filePath)

		// Act
		_, _, err = fs.CreateOrGet(ctx, newLink("abc", "https://example.com", "user"))

		// Assert
		require.Error(t, err)
		_, err = fs.Read(ctx, "abc")
		assert.ErrorIs(t, err, ErrNotFound)

		// После восстановления файла тот же Target сохраняется как новая запись
		require.NoError(t, os.Remove(filePath))
		code, created, err := fs.CreateOrGet(ctx, newLink("def", "https://example.com", "user"))
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, model.Code("def"), code)
	})

	t.Run("batch", func(t *testing.T) {
		// Arrange
		filePath := filepath.Join(t.TempDir(), "links.json")
		fs, err := NewFileStore(filePath)
		require.NoError(t, err)
		ctx := context.Background()
		breakFile(t, filePath)

		// Act
		_, err = fs.CreateOrGetBatch(ctx, []model.ShortLink{
			newLink("code1", "https://example.com/1", "user"),
			newLink("code2", "https://example.com/2", "user"),
		})

		// Assert
		require.Error(t, err)
		for _, code := range []model.Code{"code1", "code2"} {
			unique, err := fs.IsCodeUnique(ctx, code)
			require.NoError(t, err)
			assert.True(t, unique)
		}
	})

	t.Run("delete", func(t *testing.T) {
		// Arrange
		filePath := filepath.Join(t.TempDir(), "links.json")
		fs, err := NewFileStore(filePath)
		require.NoError(t, err)
		ctx := context.Background()
		_, _, err = fs.CreateOrGet(ctx, newLink("abc", "https://example.com", "user"))
		require.NoError(t, err)
		breakFile(t, filePath)

		// Act
		err = fs.DeleteBatch(ctx, []model.Code{"abc"}, "user")

		// Assert
		require.Error(t, err)
		link, err := fs.Read(ctx, "abc")
		require.NoError(t, err)
		assert.False(t, link.Deleted)
	})
}

func TestFileStore_WriteAndRead(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "test_urls.json")
	ctx := context.Background()

	fs, err := NewFileStore(filePath)
	require.NoError(t, err)

	_, created, err := fs.CreateOrGet(ctx, newLink("abc123", "https://example.com", "user"))
	require.NoError(t, err)
	assert.True(t, created)

	link, err := fs.Read(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, model.URL("https://example.com"), link.Target)

	_, err = os.Stat(filePath)
	assert.NoError(t, err, "File should exist after write")
}

func TestFileStore_ExistingTargetIsNotAppended(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "test_urls.json")
	ctx := context.Background()

	fs, err := NewFileStore(filePath)
	require.NoError(t, err)

	_, _, err = fs.CreateOrGet(ctx, newLink("first", "https://example.com", ""))
	require.NoError(t, err)
	code, created, err := fs.CreateOrGet(ctx, newLink("second", "https://example.com", ""))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, model.Code("first"), code)

	data, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
}

func TestFileStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "test_urls.json")
	ctx := context.Background()

	// Создаём первый FileStore и записываем данные
	fs1, err := NewFileStore(filePath)
	require.NoError(t, err)

	_, _, err = fs1.CreateOrGet(ctx, newLink("code1", "https://example.com/1", "user"))
	require.NoError(t, err)
	codes, err := fs1.CreateOrGetBatch(ctx, []model.ShortLink{
		newLink("code2", "https://example.com/2", "user"),
		newLink("code3", "https://example.com/3", "user"),
	})
	require.NoError(t, err)
	assert.Equal(t, []model.Code{"code2", "code3"}, codes)
	require.NoError(t, fs1.DeleteBatch(ctx, []model.Code{"code3"}, "user"))

	// Второй FileStore восстанавливает состояние из файла
	fs2, err := NewFileStore(filePath)
	require.NoError(t, err)

	for _, code := range []model.Code{"code1", "code2"} {
		link, err := fs2.Read(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, "user", link.UserID)
	}

	_, err = fs2.Read(ctx, "code3")
	assert.ErrorIs(t, err, ErrDeleted)

	links, err := fs2.ListByUser(ctx, "user")
	require.NoError(t, err)
	assert.Len(t, links, 2)

	// Код удаленной ссылки остается занятым после перезапуска
	unique, err := fs2.IsCodeUnique(ctx, "code3")
	require.NoError(t, err)
	assert.False(t, unique)
}

func TestFileStore_CorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "broken.json")
	require.NoError(t, os.WriteFile(filePath, []byte("{not json}\n"), 0o644))

	_, err := NewFileStore(filePath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}
