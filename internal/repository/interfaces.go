package repository

import (
	"context"
)

// SnapshotRepository долговременное key-value хранилище снимков коллекций.
// Get возвращает storage.ErrorNoSuchKey, если ключа нет.
type SnapshotRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
