package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"trattoria/internal/storage"
	filestorage "trattoria/internal/storage/filestorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStorage(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := filestorage.NewSnapshotStorage(dir)
	require.NoError(t, err)

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Get(ctx, "galleryImages")
		assert.ErrorIs(t, err, storage.ErrorNoSuchKey)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "galleryImages", `[{"id":"1","url":"u","alt":"a"}]`))

		v, err := s.Get(ctx, "galleryImages")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"1","url":"u","alt":"a"}]`, v)

		_, err = os.Stat(filepath.Join(dir, "galleryImages.json"))
		assert.NoError(t, err)
	})

	t.Run("survives reopen", func(t *testing.T) {
		reopened, err := filestorage.NewSnapshotStorage(dir)
		require.NoError(t, err)

		v, err := reopened.Get(ctx, "galleryImages")
		require.NoError(t, err)
		assert.Contains(t, v, `"id":"1"`)
	})

	t.Run("no temp files left", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
