package memory_test

import (
	"context"
	"testing"

	"trattoria/internal/storage"
	"trattoria/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_GetSet(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Get(ctx, "menuItems")
		assert.ErrorIs(t, err, storage.ErrorNoSuchKey)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "menuItems", `[{"id":"1"}]`))

		v, err := s.Get(ctx, "menuItems")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"1"}]`, v)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "menuItems", `[]`))

		v, err := s.Get(ctx, "menuItems")
		require.NoError(t, err)
		assert.Equal(t, `[]`, v)
	})

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, s.Set(cctx, "k", "v"), context.Canceled)
	})
}

func TestStorage_Quota(t *testing.T) {
	ctx := context.Background()
	s := memory.New(memory.WithQuota(20))

	require.NoError(t, s.Set(ctx, "a", "0123456789"))

	err := s.Set(ctx, "b", "0123456789")
	assert.ErrorIs(t, err, storage.ErrQuotaExceeded)

	// замена существующего значения не считается дважды
	require.NoError(t, s.Set(ctx, "a", "9876543210"))

	_, err = s.Get(ctx, "b")
	assert.ErrorIs(t, err, storage.ErrorNoSuchKey)
}
