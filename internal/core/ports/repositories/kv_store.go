package repositories

import "context"

// KVStore is the local persistent key-value store the history list and the
// window preference are synchronized with. It plays the role the browser's
// localStorage played for the original converter.
type KVStore interface {
	// GetItem returns the raw string stored under key.
	// Returns apperrors.ErrNotFound when the key is absent.
	GetItem(ctx context.Context, key string) (string, error)

	// SetItem stores a raw string under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// GetObject unmarshals the JSON stored under key into dest.
	// Returns apperrors.ErrNotFound when the key is absent and
	// apperrors.ErrMalformed when the stored value fails to parse.
	GetObject(ctx context.Context, key string, dest any) error

	// SetObject marshals value to JSON and stores it under key.
	SetObject(ctx context.Context, key string, value any) error
}
