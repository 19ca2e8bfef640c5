package repository

import (
	"context"
	"errors"
	"fmt"

	"trattoria/internal/storage"
	redisapp "trattoria/internal/storage/redis"

	"github.com/redis/go-redis/v9"
)

type RedisSnapshotRepo struct {
	Client *redisapp.Client
	prefix string
}

func NewRedisSnapshotRepo(client *redisapp.Client, prefix string) *RedisSnapshotRepo {
	return &RedisSnapshotRepo{Client: client, prefix: prefix}
}

func (r *RedisSnapshotRepo) Get(ctx context.Context, key string) (string, error) {
	const op = "repository.RedisSnapshotRepo.Get"

	val, err := r.Client.Get(ctx, r.snapshotKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%s: %w", op, storage.ErrorNoSuchKey)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return val, nil
}

// Set хранит снимок без TTL: снимок живет, пока его не перезапишут
func (r *RedisSnapshotRepo) Set(ctx context.Context, key, value string) error {
	const op = "repository.RedisSnapshotRepo.Set"

	if err := r.Client.Set(ctx, r.snapshotKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *RedisSnapshotRepo) snapshotKey(key string) string {
	return r.prefix + "snapshot:" + key
}
