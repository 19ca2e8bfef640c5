package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"trattoria/internal/storage"
	"trattoria/internal/storage/postgresql"
	redisapp "trattoria/internal/storage/redis"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func NewMockClient() (*redisapp.Client, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return &redisapp.Client{Client: db}, mock
}

func setupRedisRepo() (*RedisSnapshotRepo, redismock.ClientMock) {
	db, mock := NewMockClient()
	return NewRedisSnapshotRepo(db, "trattoria:"), mock
}

func TestRedisClient_HealthCheck(t *testing.T) {
	client, mock := NewMockClient()

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, client.HealthCheck(context.Background()))

	mock.ExpectPing().SetErr(errors.New("connection refused"))
	assert.ErrorContains(t, client.HealthCheck(context.Background()), "connection refused")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisSnapshotRepo_Set(t *testing.T) {
	ctx := context.Background()
	repo, mock := setupRedisRepo()

	t.Run("successful save", func(t *testing.T) {
		mock.ExpectSet("trattoria:snapshot:menuItems", `[]`, 0).SetVal("OK")

		err := repo.Set(ctx, "menuItems", `[]`)
		assert.NoError(t, err)
	})

	t.Run("redis error", func(t *testing.T) {
		mock.ExpectSet("trattoria:snapshot:menuItems", `[]`, 0).SetErr(redis.ErrClosed)

		err := repo.Set(ctx, "menuItems", `[]`)
		assert.ErrorIs(t, err, redis.ErrClosed)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisSnapshotRepo_Get(t *testing.T) {
	ctx := context.Background()
	repo, mock := setupRedisRepo()

	t.Run("snapshot exists", func(t *testing.T) {
		mock.ExpectGet("trattoria:snapshot:restaurantInfo").SetVal(`{"name":"Bella Vista"}`)

		val, err := repo.Get(ctx, "restaurantInfo")
		assert.NoError(t, err)
		assert.Equal(t, `{"name":"Bella Vista"}`, val)
	})

	t.Run("snapshot not exists", func(t *testing.T) {
		mock.ExpectGet("trattoria:snapshot:restaurantInfo").RedisNil()

		_, err := repo.Get(ctx, "restaurantInfo")
		assert.ErrorIs(t, err, storage.ErrorNoSuchKey)
	})

	t.Run("redis error", func(t *testing.T) {
		mock.ExpectGet("trattoria:snapshot:restaurantInfo").SetErr(redis.ErrClosed)

		_, err := repo.Get(ctx, "restaurantInfo")
		assert.ErrorIs(t, err, redis.ErrClosed)
		assert.NotErrorIs(t, err, storage.ErrorNoSuchKey)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func setupTestDB(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("postgres container test skipped in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = pgContainer.Terminate(ctx)
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())
}

func TestPostgresSnapshotRepo(t *testing.T) {
	dsn := setupTestDB(t)
	ctx := context.Background()

	repo, err := NewRepository(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(repo.Close)

	t.Run("missing key", func(t *testing.T) {
		_, err := repo.Snapshots.Get(ctx, "galleryImages")
		assert.ErrorIs(t, err, storage.ErrorNoSuchKey)
	})

	t.Run("insert then overwrite", func(t *testing.T) {
		require.NoError(t, repo.Snapshots.Set(ctx, "galleryImages", `[{"id":"1"}]`))
		require.NoError(t, repo.Snapshots.Set(ctx, "galleryImages", `[{"id":"2"}]`))

		val, err := repo.Snapshots.Get(ctx, "galleryImages")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"2"}]`, val)
	})

	t.Run("migration is idempotent", func(t *testing.T) {
		st, err := postgresql.New(ctx, dsn)
		require.NoError(t, err)
		defer st.Stop()

		assert.NoError(t, st.Migrate(ctx))
		assert.NoError(t, st.HealthCheck(ctx))
	})
}
