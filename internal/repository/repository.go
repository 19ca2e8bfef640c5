package repository

import (
	"context"
	"fmt"

	"trattoria/internal/storage/postgresql"
)

// Repository владеет подключением к postgres и репозиториями поверх него
type Repository struct {
	storage   *postgresql.Storage
	Snapshots SnapshotRepository
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	const op = "repository.NewRepository"

	st, err := postgresql.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := st.Migrate(ctx); err != nil {
		st.Stop()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Repository{
		storage:   st,
		Snapshots: NewPostgresSnapshotRepo(st.Pool()),
	}, nil
}

func (r *Repository) HealthCheck(ctx context.Context) error {
	return r.storage.HealthCheck(ctx)
}

func (r *Repository) Close() {
	r.storage.Stop()
}
