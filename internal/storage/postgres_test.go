package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderdash/backend/internal/storage"
	"github.com/wanderdash/backend/testutil"
)

// newTestPostgres opens a single transaction and returns a KV backed by it,
// so every test runs against real Postgres but rolls back its writes.
func newTestPostgres(t *testing.T) *storage.Postgres {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return storage.NewPostgres(tx)
}

func TestPostgres_GetMissingKey(t *testing.T) {
	kv := newTestPostgres(t)

	_, ok, err := kv.Get(context.Background(), "plans")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPostgres_SetThenGet(t *testing.T) {
	kv := newTestPostgres(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "plans", `[{"type":"holidays"}]`))

	v, ok, err := kv.Get(ctx, "plans")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"type":"holidays"}]`, v)
}

func TestPostgres_SetUpsertsExistingKey(t *testing.T) {
	kv := newTestPostgres(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "plans", "[]"))
	require.NoError(t, kv.Set(ctx, "plans", `[{"type":"events"}]`))

	v, ok, err := kv.Get(ctx, "plans")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"type":"events"}]`, v)
}
