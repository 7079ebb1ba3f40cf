package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		backend := NewMemoryBackend(NewMemoryStore())

		require.NoError(t, backend.Set(ctx, "chat:session:a", `{"offset":10}`, time.Minute))

		value, ok, err := backend.Get(ctx, "chat:session:a")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"offset":10}`, value)
	})

	t.Run("missing key", func(t *testing.T) {
		backend := NewMemoryBackend(NewMemoryStore())

		_, ok, err := backend.Get(ctx, "chat:session:missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("expired entry is gone", func(t *testing.T) {
		backend := NewMemoryBackend(NewMemoryStore())

		require.NoError(t, backend.Set(ctx, "chat:session:b", "x", -time.Second))

		_, ok, err := backend.Get(ctx, "chat:session:b")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		backend := NewMemoryBackend(NewMemoryStore())

		require.NoError(t, backend.Set(ctx, "chat:session:c", "x", time.Minute))
		require.NoError(t, backend.Delete(ctx, "chat:session:c"))

		_, ok, err := backend.Get(ctx, "chat:session:c")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
