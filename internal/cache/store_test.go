package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cache", "responses.db"), ttl)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_PutGet(t *testing.T) {
	store := openTestStore(t, time.Hour)

	_, ok := store.Get("missing")
	assert.False(t, ok)

	require.NoError(t, store.Put("k", []byte(`{"objectID":1}`)))
	body, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, `{"objectID":1}`, string(body))
}

func TestStore_PutReplaces(t *testing.T) {
	store := openTestStore(t, time.Hour)

	require.NoError(t, store.Put("k", []byte("old")))
	require.NoError(t, store.Put("k", []byte("new")))

	body, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", string(body))

	n, err := store.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_Expiry(t *testing.T) {
	store := openTestStore(t, time.Hour)

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Put("k", []byte("body")))

	now = now.Add(59 * time.Minute)
	_, ok := store.Get("k")
	assert.True(t, ok, "entry should still be valid before the ttl")

	now = now.Add(2 * time.Minute)
	_, ok = store.Get("k")
	assert.False(t, ok, "entry should be expired after the ttl")

	require.NoError(t, store.DeleteExpired())
	n, err := store.Len()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.db")

	store, err := Open(path, time.Hour)
	require.NoError(t, err)
	require.NoError(t, store.Put("k", []byte("kept")))
	require.NoError(t, store.Close())

	store, err = Open(path, time.Hour)
	require.NoError(t, err)
	defer store.Close()

	body, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "kept", string(body))
}
