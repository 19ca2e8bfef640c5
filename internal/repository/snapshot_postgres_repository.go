package repository

import (
	"context"
	"errors"
	"fmt"

	"trattoria/internal/storage"
	"trattoria/internal/storage/postgresql"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type PostgresSnapshotRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewPostgresSnapshotRepo(db *pgxpool.Pool) *PostgresSnapshotRepo {
	return &PostgresSnapshotRepo{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Get возвращает последний сохраненный снимок по ключу
func (r *PostgresSnapshotRepo) Get(ctx context.Context, key string) (string, error) {
	const op = "repository.PostgresSnapshotRepo.Get"

	query, args, err := r.sb.Select("value").
		From(postgresql.SnapshotTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var value string
	err = r.db.QueryRow(ctx, query, args...).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("%s: %w", op, storage.ErrorNoSuchKey)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return value, nil
}

// Set вставляет снимок или целиком заменяет существующий
func (r *PostgresSnapshotRepo) Set(ctx context.Context, key, value string) error {
	const op = "repository.PostgresSnapshotRepo.Set"

	query, args, err := r.sb.Insert(postgresql.SnapshotTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
