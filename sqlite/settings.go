package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fwojciec/invoicefmt"
)

// Ensure SettingsService implements invoicefmt.SettingsService at
// compile time.
var _ invoicefmt.SettingsService = (*SettingsService)(nil)

// SettingsService is a SQLite-backed implementation of
// invoicefmt.SettingsService.
type SettingsService struct {
	db *DB
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(db *DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get retrieves a setting value by key.
func (s *SettingsService) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", invoicefmt.Errorf(invoicefmt.ENOTFOUND, "setting %q not found", key)
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores a setting value, replacing any existing value.
func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// Delete removes a setting.
func (s *SettingsService) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	return err
}
