package sqlitekv_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/repositories/database/sqlitekv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newStore(t *testing.T) *sqlitekv.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := sqlitekv.NewStore(db)
	require.NoError(t, store.EnsureSchema(context.Background()))
	return store
}

func TestItemRoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetItem(ctx, "selectedTimeInterval", "sevenDays"))

	value, err := store.GetItem(ctx, "selectedTimeInterval")
	require.NoError(t, err)
	assert.Equal(t, "sevenDays", value)
}

func TestSetItem_ReplacesExistingValue(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetItem(ctx, "k", "first"))
	require.NoError(t, store.SetItem(ctx, "k", "second"))

	value, err := store.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

func TestGetItem_AbsentKey(t *testing.T) {
	store := newStore(t)

	_, err := store.GetItem(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestObjectRoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.SetObject(ctx, "obj", payload{Name: "rates", Count: 3}))

	var got payload
	require.NoError(t, store.GetObject(ctx, "obj", &got))
	assert.Equal(t, payload{Name: "rates", Count: 3}, got)
}

func TestGetObject_MalformedValue(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetItem(ctx, "obj", "{not json"))

	var dest map[string]string
	err := store.GetObject(ctx, "obj", &dest)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMalformed)
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := sqlitekv.NewStore(db)
	require.NoError(t, store.EnsureSchema(context.Background()))
	require.NoError(t, store.EnsureSchema(context.Background()))
}
