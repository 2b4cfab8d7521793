package credentials

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "credentials.db")
	store, err := OpenSQLite(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// runStoreSuite exercises the Store contract shared by all backends.
func runStoreSuite(t *testing.T, store Store) {
	ctx := context.Background()

	// Absence is not an error.
	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.False(t, store.IsAuthenticated(ctx))

	// The value is stored verbatim, no trimming or parsing.
	raw := "  mfa.xyz==--\ttoken\n"
	require.NoError(t, store.Set(ctx, raw))
	token, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, raw, token)
	assert.True(t, store.IsAuthenticated(ctx))

	// Overwrite wins.
	require.NoError(t, store.Set(ctx, "tok2"))
	token, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok2", token)

	// Clear is idempotent.
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
	token, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.False(t, store.IsAuthenticated(ctx))
}

func TestSQLiteStore(t *testing.T) {
	runStoreSuite(t, openTestStore(t))
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, NewMemoryStore())
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "credentials.db")

	store, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "tok1"))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	defer reopened.Close()

	token, err := reopened.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok1", token)
}
