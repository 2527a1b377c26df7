package kvstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RecipeBox_Go/internal/kvstore"
	"github.com/osse101/RecipeBox_Go/internal/kvstore/kvstoretest"
)

func exerciseStore(t *testing.T, s kvstore.Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "a", `["x"]`))
	v, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["x"]`, v)

	require.NoError(t, s.Set(ctx, "a", `[]`))
	v, _, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)

	require.NoError(t, s.Set(ctx, "empty", ""))
	v, ok, err = s.Get(ctx, "empty")
	require.NoError(t, err)
	assert.True(t, ok, "an empty value is still present")
	assert.Empty(t, v)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, kvstore.NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storage.yaml")
	s, err := kvstore.NewFileStore(path)
	require.NoError(t, err)
	exerciseStore(t, s)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.yaml")
	ctx := context.Background()

	s, err := kvstore.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "favoriteRecipes", `[{"kind":"catalog"}]`))
	require.NoError(t, s.Set(ctx, "customrecipes", `[]`))

	reopened, err := kvstore.NewFileStore(path)
	require.NoError(t, err)
	v, ok, err := reopened.Get(ctx, "favoriteRecipes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"kind":"catalog"}]`, v)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestFileStore_RejectsCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- just\n- a list\n"), 0o600))

	_, err := kvstore.NewFileStore(path)
	assert.Error(t, err)
}

func TestFileStore_CanceledContext(t *testing.T) {
	s, err := kvstore.NewFileStore(filepath.Join(t.TempDir(), "storage.yaml"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, s.Set(ctx, "k", "v"))

	_, ok, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok, "failed write must not be visible")
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	s := kvstoretest.New()

	var got []string
	ok, err := kvstore.GetJSON(ctx, s, "list", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kvstore.SetJSON(ctx, s, "list", []string{"a", "b"}))
	raw, _ := s.Raw("list")
	assert.JSONEq(t, `["a","b"]`, raw)

	ok, err = kvstore.GetJSON(ctx, s, "list", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	s.Put("list", "{broken")
	ok, err = kvstore.GetJSON(ctx, s, "list", &got)
	assert.True(t, ok)
	assert.ErrorIs(t, err, kvstore.ErrMalformed)

	s.FailReads(true)
	_, err = kvstore.GetJSON(ctx, s, "list", &got)
	assert.ErrorIs(t, err, kvstore.ErrRead)

	s.FailWrites(true)
	err = kvstore.SetJSON(ctx, s, "list", []string{"c"})
	assert.ErrorIs(t, err, kvstore.ErrWrite)
	assert.ErrorIs(t, err, kvstoretest.ErrInjected)
}

func TestCachedStore(t *testing.T) {
	ctx := context.Background()
	backend := kvstoretest.New()
	backend.Put("k", "v1")
	c := kvstore.NewCachedStore(backend, 8, time.Minute)

	v, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1", v)

	// Served from cache even though the backend changed underneath.
	backend.Put("k", "v2")
	v, _, _ = c.Get(ctx, "k")
	assert.Equal(t, "v1", v)
	assert.Equal(t, 1, backend.Gets())

	c.Invalidate("k")
	v, _, _ = c.Get(ctx, "k")
	assert.Equal(t, "v2", v)

	t.Run("misses are not cached", func(t *testing.T) {
		_, ok, err := c.Get(ctx, "absent")
		require.NoError(t, err)
		assert.False(t, ok)
		backend.Put("absent", "now")
		v, ok, err := c.Get(ctx, "absent")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "now", v)
	})

	t.Run("failed write leaves cache untouched", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "w", "old"))
		backend.FailWrites(true)
		defer backend.FailWrites(false)

		require.Error(t, c.Set(ctx, "w", "new"))
		raw, _ := backend.Raw("w")
		assert.Equal(t, "old", raw)
		v, _, err := c.Get(ctx, "w")
		require.NoError(t, err)
		assert.Equal(t, "old", v)
	})

	t.Run("read errors pass through", func(t *testing.T) {
		backend.FailReads(true)
		defer backend.FailReads(false)
		_, _, err := c.Get(ctx, "uncached")
		assert.ErrorIs(t, err, kvstoretest.ErrInjected)
	})
}

func TestCachedStore_Expiry(t *testing.T) {
	ctx := context.Background()
	backend := kvstoretest.New()
	backend.Put("k", "v1")
	c := kvstore.NewCachedStore(backend, 8, 20*time.Millisecond)

	_, _, err := c.Get(ctx, "k")
	require.NoError(t, err)
	backend.Put("k", "v2")

	assert.Eventually(t, func() bool {
		v, _, err := c.Get(ctx, "k")
		return err == nil && v == "v2"
	}, time.Second, 10*time.Millisecond)
}

func TestInstrumentedStore(t *testing.T) {
	ctx := context.Background()
	backend := kvstoretest.New()
	s := kvstore.NewInstrumentedStore(backend, kvstore.BackendMemory)
	exerciseStore(t, s)

	backend.FailWrites(true)
	assert.ErrorIs(t, s.Set(ctx, "k", "v"), kvstoretest.ErrInjected)
	assert.NoError(t, s.Ping(ctx))
	assert.NoError(t, s.Close())
}
