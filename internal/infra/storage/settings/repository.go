package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
	"github.com/torridellacqua/TDA-ReservationService/pkg/psqlbuilder"
)

// Repository key-value settings store
type Repository struct {
	db DBExecutor
}

// NewRepository creates a settings repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get returns the value stored under key.
// Returns ErrSettingNotFound when the key has never been written.
func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := psqlbuilder.Select("value").
		From("settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: Get - scan value: %v", ErrScanRow, err)
	}

	return value, nil
}

// Upsert stores value under key, creating the row on first write and
// replacing it in place thereafter. Idempotent: never errors on overwrite,
// never duplicates a key. Each call is a single statement, atomic per key.
func (r *Repository) Upsert(ctx context.Context, key, value string) error {
	query, args, err := psqlbuilder.Insert("settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetAll returns every settings row as a slice of entries
func (r *Repository) GetAll(ctx context.Context) ([]domain.SettingsEntry, error) {
	query, args, err := psqlbuilder.Select("key", "value").
		From("settings").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.SettingsEntry, 0)
	for rows.Next() {
		var entry domain.SettingsEntry
		if err := rows.Scan(&entry.Key, &entry.Value); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
