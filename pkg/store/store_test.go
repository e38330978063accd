package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/folio/pkg/adapters/memory"
	"github.com/aretw0/folio/pkg/core"
	"github.com/aretw0/folio/pkg/store"
)

// brokenKV fails every operation.
type brokenKV struct{}

func (brokenKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}
func (brokenKV) Set(context.Context, string, string) error { return errors.New("disk on fire") }
func (brokenKV) Remove(context.Context, string) error      { return errors.New("disk on fire") }

var sample = []core.Document{
	{ID: "1700000000001", Title: "Zeta", Content: "<p>last alphabetically, first created</p>"},
	{ID: "1700000000002", Title: "Alpha", Content: `<h1>Alpha</h1><p>"quoted" &amp; <b>bold</b></p>`},
	{ID: "1700000000003", Title: "", Content: ""},
}

func TestAdapter_RoundTrip(t *testing.T) {
	for _, name := range []string{"json", "yaml"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			codec, err := store.CodecFor(name)
			require.NoError(t, err)

			a := store.New(memory.New(), store.Config{Codec: codec})
			require.NoError(t, a.SaveDocuments(ctx, sample))

			assert.Equal(t, sample, a.LoadDocuments(ctx))
		})
	}
}

func TestAdapter_JSONLayout(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	a := store.New(kv, store.Config{})

	require.NoError(t, a.SaveDocuments(ctx, sample[:1]))

	raw, ok, err := kv.Get(ctx, core.KeyDocuments)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"1700000000001","title":"Zeta","content":"<p>last alphabetically, first created</p>"}]`, raw)
}

func TestAdapter_LoadDocuments_Empty(t *testing.T) {
	ctx := context.Background()

	t.Run("Absent Key", func(t *testing.T) {
		docs := store.New(memory.New(), store.Config{}).LoadDocuments(ctx)
		assert.NotNil(t, docs)
		assert.Empty(t, docs)
	})

	t.Run("Corrupted Value", func(t *testing.T) {
		kv := memory.New()
		require.NoError(t, kv.Set(ctx, core.KeyDocuments, "{not json"))
		assert.Empty(t, store.New(kv, store.Config{}).LoadDocuments(ctx))
	})

	t.Run("Null Value", func(t *testing.T) {
		kv := memory.New()
		require.NoError(t, kv.Set(ctx, core.KeyDocuments, "null"))
		docs := store.New(kv, store.Config{}).LoadDocuments(ctx)
		assert.NotNil(t, docs)
		assert.Empty(t, docs)
	})

	t.Run("Unreadable Backend", func(t *testing.T) {
		assert.Empty(t, store.New(brokenKV{}, store.Config{}).LoadDocuments(ctx))
		assert.Equal(t, "", store.New(brokenKV{}, store.Config{}).LoadActiveID(ctx))
	})
}

func TestAdapter_SaveFailuresAreSurfaced(t *testing.T) {
	ctx := context.Background()

	a := store.New(brokenKV{}, store.Config{})
	assert.ErrorIs(t, a.SaveDocuments(ctx, sample), core.ErrStorage)
	assert.ErrorIs(t, a.SaveActiveID(ctx, "1"), core.ErrStorage)

	quota := store.New(memory.New(memory.WithQuota(16)), store.Config{})
	err := quota.SaveDocuments(ctx, sample)
	assert.ErrorIs(t, err, core.ErrStorage)
	assert.ErrorIs(t, err, core.ErrQuotaExceeded)
}

func TestAdapter_ActiveID(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	a := store.New(kv, store.Config{})

	assert.Equal(t, "", a.LoadActiveID(ctx))

	require.NoError(t, a.SaveActiveID(ctx, "42"))
	assert.Equal(t, "42", a.LoadActiveID(ctx))

	require.NoError(t, a.SaveActiveID(ctx, ""))
	assert.Equal(t, "", a.LoadActiveID(ctx))
	_, ok, _ := kv.Get(ctx, core.KeyActiveID)
	assert.False(t, ok)
}

func TestCodecFor(t *testing.T) {
	c, err := store.CodecFor("")
	require.NoError(t, err)
	assert.Equal(t, "json", c.Name())

	c, err = store.CodecFor("yml")
	require.NoError(t, err)
	assert.Equal(t, "yaml", c.Name())

	_, err = store.CodecFor("toml")
	assert.Error(t, err)
}
