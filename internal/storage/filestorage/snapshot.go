package storage

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"trattoria/internal/storage"
)

// SnapshotStorage хранит снимки коллекций в файлах <dir>/<key>.json
type SnapshotStorage struct {
	dir string
}

func NewSnapshotStorage(dir string) (*SnapshotStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return &SnapshotStorage{dir: dir}, nil
}

func (s *SnapshotStorage) Get(ctx context.Context, key string) (string, error) {
	const op = "storage.filestorage.SnapshotStorage.Get"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", op, storage.ErrorNoSuchKey)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(data), nil
}

// Set пишет во временный файл и переименовывает его, чтобы читатель
// никогда не увидел наполовину записанный снимок
func (s *SnapshotStorage) Set(ctx context.Context, key, value string) error {
	const op = "storage.filestorage.SnapshotStorage.Set"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := os.CreateTemp(s.dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *SnapshotStorage) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}
