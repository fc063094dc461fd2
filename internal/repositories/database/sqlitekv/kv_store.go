package sqlitekv

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
)

// Store is the sqlite-backed key-value store: one kv_store table mapping
// string keys to string values, the server-side stand-in for the browser
// localStorage the converter history originally lived in.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open sqlite connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ensure implementation matches the port.
var _ portsrepo.KVStore = (*Store)(nil)

// EnsureSchema creates the kv_store table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_store (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: failed to create kv_store table: %v", apperrors.ErrStorage, err)
	}
	return nil
}

// GetItem returns the raw string stored under key.
func (s *Store) GetItem(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM kv_store WHERE key = ?;`
	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: key %q", apperrors.ErrNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("%w: failed to read key %q: %v", apperrors.ErrStorage, key, err)
	}
	return value, nil
}

// SetItem stores a raw string under key, replacing any previous value.
func (s *Store) SetItem(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("%w: failed to write key %q: %v", apperrors.ErrStorage, key, err)
	}
	return nil
}

// GetObject unmarshals the JSON stored under key into dest. A value that no
// longer parses yields ErrMalformed so callers can fall back instead of
// failing.
func (s *Store) GetObject(ctx context.Context, key string, dest any) error {
	raw, err := s.GetItem(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("%w: key %q: %v", apperrors.ErrMalformed, key, err)
	}
	return nil
}

// SetObject marshals value to JSON and stores it under key.
func (s *Store) SetObject(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: failed to serialize value for key %q: %v", apperrors.ErrStorage, key, err)
	}
	return s.SetItem(ctx, key, string(raw))
}
