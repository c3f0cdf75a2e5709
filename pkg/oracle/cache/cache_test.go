package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingEmbedder struct {
	calls int
}

func (e *countingEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	e.calls++
	vec := make([]float32, 8)
	for i, b := range []byte(text) {
		vec[i%8] += float32(b)
	}
	return vec, nil
}

func TestCachingEmbedder_MemoryHit(t *testing.T) {
	inner := &countingEmbedder{}
	c, err := New(inner, "")
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	v1, err := c.Embed(ctx, "hello")
	require.NoError(t, err)
	v2, err := c.Embed(ctx, "hello")
	require.NoError(t, err)

	assert.Equal(t, v1, v2)
	assert.Equal(t, 1, inner.calls)

	_, err = c.Embed(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachingEmbedder_DiskPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	inner1 := &countingEmbedder{}
	c1, err := New(inner1, dir)
	require.NoError(t, err)
	v1, err := c1.Embed(ctx, "persisted text")
	require.NoError(t, err)
	require.NoError(t, c1.Close())
	assert.Equal(t, 1, inner1.calls)

	inner2 := &countingEmbedder{}
	c2, err := New(inner2, dir)
	require.NoError(t, err)
	defer c2.Close()

	v2, err := c2.Embed(ctx, "persisted text")
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
	assert.Equal(t, 0, inner2.calls, "disk cache should serve the embedding")
}
