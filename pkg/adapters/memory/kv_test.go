package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/folio/pkg/adapters/memory"
	"github.com/aretw0/folio/pkg/core"
)

func TestStore_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", "v1"))
	require.NoError(t, s.Set(ctx, "k", "v2"))

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
	assert.Equal(t, 2, s.Writes("k"))

	require.NoError(t, s.Remove(ctx, "k"))
	require.NoError(t, s.Remove(ctx, "k"), "removing an absent key is not an error")

	_, ok, _ = s.Get(ctx, "k")
	assert.False(t, ok)
}

func TestStore_Quota(t *testing.T) {
	ctx := context.Background()
	s := memory.New(memory.WithQuota(10))

	require.NoError(t, s.Set(ctx, "k", "12345")) // 6 bytes
	require.NoError(t, s.Set(ctx, "k", "123456789"), "overwrite is measured against the replaced value")

	err := s.Set(ctx, "k", "1234567890")
	assert.ErrorIs(t, err, core.ErrQuotaExceeded)

	v, _, _ := s.Get(ctx, "k")
	assert.Equal(t, "123456789", v, "rejected write must not change the stored value")

	state := s.State().(memory.StoreState)
	assert.Equal(t, 10, state.Bytes)
	assert.Equal(t, 1, state.Keys)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := memory.New()
	assert.Error(t, s.Set(ctx, "k", "v"))
}
