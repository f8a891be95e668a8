package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shortlink/internal/config/db"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier общий интерфейс pgxpool.Pool и pgx.Tx
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DatabaseStore реализует хранилище ссылок в PostgreSQL
type DatabaseStore struct {
	database db.Database
	pool     *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database) (*DatabaseStore, error) {
	// Получаем pgxpool.Pool из адаптера
	adapter, ok := database.(*db.DBAdapter)
	if !ok {
		return nil, fmt.Errorf("database store requires *db.DBAdapter, got %T", database)
	}

	return &DatabaseStore{
		database: database,
		pool:     adapter.Pool,
	}, nil
}

// Read читает ссылку по короткому коду
func (ds *DatabaseStore) Read(ctx context.Context, code model.Code) (model.ShortLink, error) {
	query := `
		SELECT target, user_id, created_at, is_deleted
		FROM short_links
		WHERE code = $1
	`

	link := model.ShortLink{Code: code}
	var target string
	err := ds.pool.QueryRow(ctx, query, string(code)).Scan(&target, &link.UserID, &link.CreatedAt, &link.Deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ShortLink{}, fmt.Errorf("key %s: %w", code, ErrNotFound)
		}
		return model.ShortLink{}, fmt.Errorf("failed to read from database: %w", err)
	}
	link.Target = model.URL(target)

	if link.Deleted {
		return link, fmt.Errorf("key %s: %w", code, ErrDeleted)
	}

	return link, nil
}

// CreateOrGet вставляет ссылку или возвращает код существующей ссылки на тот же target
func (ds *DatabaseStore) CreateOrGet(ctx context.Context, link model.ShortLink) (model.Code, bool, error) {
	return createOrGet(ctx, ds.pool, link)
}

// CreateOrGetBatch выполняет CreateOrGet для всех ссылок в одной транзакции
func (ds *DatabaseStore) CreateOrGetBatch(ctx context.Context, links []model.ShortLink) ([]model.Code, error) {
	tx, err := ds.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	codes := make([]model.Code, len(links))
	for i, link := range links {
		code, _, err := createOrGet(ctx, tx, link)
		if err != nil {
			return nil, err
		}
		codes[i] = code
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return codes, nil
}

func createOrGet(ctx context.Context, q querier, link model.ShortLink) (model.Code, bool, error) {
	createdAt := link.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	// ON CONFLICT без цели покрывает и первичный ключ, и частичный уникальный индекс по target
	insert := `
		INSERT INTO short_links (code, target, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
		RETURNING code
	`

	var code string
	err := q.QueryRow(ctx, insert, string(link.Code), string(link.Target), link.UserID, createdAt).Scan(&code)
	if err == nil {
		return model.Code(code), true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", false, fmt.Errorf("failed to insert into database: %w", err)
	}

	existing := `
		SELECT code
		FROM short_links
		WHERE target = $1 AND NOT is_deleted
	`

	err = q.QueryRow(ctx, existing, string(link.Target)).Scan(&code)
	if err == nil {
		return model.Code(code), false, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		// Конфликт был по коду
		return "", false, fmt.Errorf("key %s: %w", link.Code, ErrAlreadyExists)
	}

	return "", false, fmt.Errorf("failed to find existing URL: %w", err)
}

// IsCodeUnique проверяет, свободен ли код
func (ds *DatabaseStore) IsCodeUnique(ctx context.Context, code model.Code) (bool, error) {
	query := `
		SELECT EXISTS
		(SELECT 1 FROM short_links WHERE code = $1)
	`

	var exists bool
	if err := ds.pool.QueryRow(ctx, query, string(code)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check key existence: %w", err)
	}

	return !exists, nil
}

// ListByUser возвращает неудаленные ссылки пользователя в порядке создания
func (ds *DatabaseStore) ListByUser(ctx context.Context, userID string) ([]model.ShortLink, error) {
	query := `
		SELECT code, target, user_id, created_at
		FROM short_links
		WHERE user_id = $1 AND NOT is_deleted
		ORDER BY created_at, code
	`

	rows, err := ds.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user links: %w", err)
	}
	defer rows.Close()

	var links []model.ShortLink
	for rows.Next() {
		var (
			code, target string
			link         model.ShortLink
		)
		if err := rows.Scan(&code, &target, &link.UserID, &link.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user link: %w", err)
		}
		link.Code = model.Code(code)
		link.Target = model.URL(target)
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user links: %w", err)
	}

	return links, nil
}

// IsOwnedByUser проверяет, принадлежит ли неудаленная ссылка пользователю
func (ds *DatabaseStore) IsOwnedByUser(ctx context.Context, code model.Code, userID string) (bool, error) {
	query := `
		SELECT EXISTS
		(SELECT 1 FROM short_links WHERE code = $1 AND user_id = $2 AND NOT is_deleted)
	`

	var owned bool
	if err := ds.pool.QueryRow(ctx, query, string(code), userID).Scan(&owned); err != nil {
		return false, fmt.Errorf("failed to check ownership: %w", err)
	}

	return owned, nil
}

// DeleteBatch помечает удаленными ссылки пользователя одним запросом
func (ds *DatabaseStore) DeleteBatch(ctx context.Context, codes []model.Code, userID string) error {
	return ds.batchUpdateDeletedFlag(ctx, codes, userID, true)
}

func (ds *DatabaseStore) batchUpdateDeletedFlag(ctx context.Context, codes []model.Code, userID string, deleted bool) error {
	if len(codes) == 0 {
		return nil
	}

	values := make([]string, len(codes))
	for i, code := range codes {
		values[i] = string(code)
	}

	query := `
		UPDATE short_links
		SET is_deleted = $3
		WHERE code = ANY($1) AND user_id = $2
	`

	if _, err := ds.pool.Exec(ctx, query, values, userID, deleted); err != nil {
		return fmt.Errorf("failed to update deleted flag: %w", err)
	}

	return nil
}

func (ds *DatabaseStore) Ping(ctx context.Context) error {
	return ds.database.Ping(ctx)
}

func (ds *DatabaseStore) Close() error {
	ds.database.Close()
	return nil
}
