package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKVRoundTrip(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "items")
	require.NoError(t, err)
	assert.False(t, ok, "missing key reads as absent, not as an error")

	require.NoError(t, kv.Set(ctx, "items", []byte(`[{"id":"a"}]`)))

	data, ok, err := kv.Get(ctx, "items")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"a"}]`, string(data))
}

func TestFileKVOverwriteIsLastWriteWins(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "categories", []byte(`["old"]`)))
	require.NoError(t, kv.Set(ctx, "categories", []byte(`["new"]`)))

	data, ok, err := kv.Get(ctx, "categories")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `["new"]`, string(data))
}

func TestMemKVIsolation(t *testing.T) {
	kv := NewMemKV()
	ctx := context.Background()

	original := []byte(`{"v":1}`)
	require.NoError(t, kv.Set(ctx, "soldItems", original))

	got, ok, err := kv.Get(ctx, "soldItems")
	require.NoError(t, err)
	assert.True(t, ok)

	// Mutating the returned slice must not reach the stored copy.
	got[0] = 'X'
	again, _, err := kv.Get(ctx, "soldItems")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1}`, string(again))
}
