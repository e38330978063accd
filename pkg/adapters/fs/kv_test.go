package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/folio/pkg/adapters/fs"
	"github.com/aretw0/folio/pkg/core"
)

// setupStore creates an initialized store in a temp directory.
func setupStore(t *testing.T, opts ...func(*fs.Config)) (*fs.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), fs.DefaultDir)
	cfg := fs.Config{Path: path}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := fs.NewStore(cfg)
	require.NoError(t, s.Initialize(context.Background()))
	return s, path
}

func TestInitialize(t *testing.T) {
	t.Run("Creates Directory if Missing", func(t *testing.T) {
		_, path := setupStore(t)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("Fails if MustExist and Missing", func(t *testing.T) {
		s := fs.NewStore(fs.Config{Path: filepath.Join(t.TempDir(), "nope"), MustExist: true})
		assert.Error(t, s.Initialize(context.Background()))
	})

	t.Run("Fails if Path Is a File", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0644))
		s := fs.NewStore(fs.Config{Path: file, MustExist: true})
		assert.Error(t, s.Initialize(context.Background()))
	})
}

func TestStore_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	s, path := setupStore(t)

	_, ok, err := s.Get(ctx, core.KeyActiveID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, core.KeyActiveID, "1700000000000"))

	raw, err := os.ReadFile(filepath.Join(path, core.KeyActiveID))
	require.NoError(t, err)
	assert.Equal(t, "1700000000000", string(raw))

	v, ok, err := s.Get(ctx, core.KeyActiveID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1700000000000", v)

	require.NoError(t, s.Remove(ctx, core.KeyActiveID))
	require.NoError(t, s.Remove(ctx, core.KeyActiveID))
	_, ok, _ = s.Get(ctx, core.KeyActiveID)
	assert.False(t, ok)
}

func TestStore_InvalidKeys(t *testing.T) {
	ctx := context.Background()
	s, _ := setupStore(t)

	for _, key := range []string{"", ".", "..", "../escape", "nested/key"} {
		assert.Error(t, s.Set(ctx, key, "v"), "key %q", key)
		_, _, err := s.Get(ctx, key)
		assert.Error(t, err, "key %q", key)
	}
}

func TestStore_ReadOnly(t *testing.T) {
	ctx := context.Background()
	_, path := setupStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(path, core.KeyDocuments), []byte("[]"), 0644))

	ro := fs.NewStore(fs.Config{Path: path, ReadOnly: true})
	require.NoError(t, ro.Initialize(ctx))

	v, ok, err := ro.Get(ctx, core.KeyDocuments)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)

	assert.ErrorIs(t, ro.Set(ctx, core.KeyDocuments, "x"), core.ErrReadOnly)
	assert.ErrorIs(t, ro.Remove(ctx, core.KeyDocuments), core.ErrReadOnly)

	state := ro.State().(fs.StoreState)
	assert.True(t, state.ReadOnly)
	assert.Equal(t, "fs-store", ro.ComponentType())
}
