package store

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/google/uuid"
)

// FileStore декоратор над Store, который добавляет персистентность через файл.
// Файл только дописывается: удаление фиксируется отдельной записью с is_deleted.
// Память меняется только после успешной записи в файл.
type FileStore struct {
	*Store
	fileStorage *FileStorage
}

// NewFileStore создаёт FileStore, загружает данные из файла и проверяет, что в него можно писать
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		Store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	// Загружаем данные из файла при инициализации
	if err := fs.loadFromFile(); err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	if err := fs.fileStorage.Touch(); err != nil {
		return nil, fmt.Errorf("file storage is not writable: %w", err)
	}

	return fs, nil
}

// CreateOrGet дописывает новую запись в файл и только затем сохраняет ее в памяти
func (fs *FileStore) CreateOrGet(_ context.Context, link model.ShortLink) (model.Code, bool, error) {
	codes, created, err := fs.Store.createOrGet([]model.ShortLink{link}, fs.appendLinks)
	if err != nil {
		return "", false, err
	}

	return codes[0], created[0], nil
}

// CreateOrGetBatch дописывает в файл только созданные записи
func (fs *FileStore) CreateOrGetBatch(_ context.Context, links []model.ShortLink) ([]model.Code, error) {
	codes, _, err := fs.Store.createOrGet(links, fs.appendLinks)
	if err != nil {
		return nil, err
	}

	return codes, nil
}

// DeleteBatch фиксирует удаление в файле и затем помечает ссылки в памяти
func (fs *FileStore) DeleteBatch(_ context.Context, codes []model.Code, userID string) error {
	return fs.Store.deleteBatch(codes, userID, func(deleted []model.Code) error {
		entries := make([]model.URLEntry, 0, len(deleted))
		for _, code := range deleted {
			entries = append(entries, model.URLEntry{
				UUID:      uuid.New().String(),
				ShortURL:  string(code),
				UserID:    userID,
				IsDeleted: true,
			})
		}

		if err := fs.fileStorage.Append(entries...); err != nil {
			return fmt.Errorf("failed to append deletions to file: %w", err)
		}
		return nil
	})
}

func (fs *FileStore) appendLinks(links []model.ShortLink) error {
	entries := make([]model.URLEntry, 0, len(links))
	for _, link := range links {
		entries = append(entries, newEntry(link))
	}

	if err := fs.fileStorage.Append(entries...); err != nil {
		return fmt.Errorf("failed to append to file: %w", err)
	}
	return nil
}

// loadFromFile загружает данные из файла в in-memory store
func (fs *FileStore) loadFromFile() error {
	entries, err := fs.fileStorage.Load()
	if err != nil {
		return err
	}

	data := make(LinkMap, len(entries))
	for _, entry := range entries {
		code := model.Code(entry.ShortURL)

		if entry.IsDeleted {
			if link, ok := data[code]; ok {
				link.Deleted = true
				data[code] = link
			}
			continue
		}

		data[code] = model.ShortLink{
			Code:      code,
			Target:    model.URL(entry.OriginalURL),
			UserID:    entry.UserID,
			CreatedAt: entry.CreatedAt,
		}
	}

	fs.Store.InitializeWith(data)

	return nil
}

func newEntry(link model.ShortLink) model.URLEntry {
	return model.URLEntry{
		UUID:        uuid.New().String(),
		ShortURL:    string(link.Code),
		OriginalURL: string(link.Target),
		UserID:      link.UserID,
		CreatedAt:   link.CreatedAt,
	}
}
