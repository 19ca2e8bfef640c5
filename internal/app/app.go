package app

import (
	"context"
	"fmt"
	"log/slog"

	httpapp "trattoria/internal/app/http"
	"trattoria/internal/config"
	"trattoria/internal/i18n"
	"trattoria/internal/repository"
	mediasvc "trattoria/internal/services/media_service"
	restaurantsvc "trattoria/internal/services/restaurant_service"
	sitesvc "trattoria/internal/services/site_service"
	"trattoria/internal/storage"
	filestorage "trattoria/internal/storage/filestorage"
	"trattoria/internal/storage/memory"
	redisapp "trattoria/internal/storage/redis"
	httprouters "trattoria/internal/transport/http"

	"golang.org/x/text/language"
)

type App struct {
	HTTPServer *httpapp.Server
	Store      *restaurantsvc.RestaurantStore
	Localizer  *i18n.Localizer

	closers []func()
}

// New собирает приложение: хранилище снимков, RestaurantStore, сервисы и HTTP-сервер
func New(ctx context.Context, log *slog.Logger, cfg *config.Config) *App {
	const op = "app.New"

	localizer, err := i18n.New(cfg.I18n.DefaultLanguage)
	if err != nil {
		panic(err)
	}

	snapshots, health, closers, err := newSnapshotStore(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("%s: %w", op, err))
	}

	log.Info("snapshot storage ready",
		slog.String("op", op),
		slog.String("backend", cfg.Storage.Backend),
		slog.String("language", localizer.Language().String()),
	)

	store := restaurantsvc.New(log, localizer, snapshots, restaurantsvc.UUIDGenerator{})
	store.Load(ctx)

	// язык меняется глобально, значения по умолчанию пересчитываются сразу
	localizer.OnChange(func(tag language.Tag) {
		store.HandleLanguageChange(tag)
	})

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL, cfg.FileStorage.MaxSize)
	if err != nil {
		panic(fmt.Errorf("%s: %w", op, err))
	}

	siteService := sitesvc.NewSiteService(log, store, localizer, cfg.Maps.APIKey)
	mediaService := mediasvc.NewMediaService(log, store, fileStorage)

	routers := httprouters.NewRouter(log, store, siteService, mediaService, localizer, health)

	server := httpapp.New(log, httpapp.Options{
		Host:          cfg.HTTP.Host,
		Port:          cfg.HTTP.Port,
		Timeout:       cfg.HTTP.Timeout,
		UploadsURL:    fileStorage.BaseURL(),
		UploadsDir:    fileStorage.GetBaseDir(),
		SessionSecret: cfg.Session.Secret,
		SessionMaxAge: cfg.Session.MaxAge,
	}, routers)

	return &App{
		HTTPServer: server,
		Store:      store,
		Localizer:  localizer,
		closers:    closers,
	}
}

// Close освобождает соединения с хранилищем снимков
func (a *App) Close(log *slog.Logger) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}

	log.Info("storage connections closed")
}

// newSnapshotStore выбирает долговременное хранилище снимков по storage.backend
func newSnapshotStore(ctx context.Context, cfg *config.Config) (restaurantsvc.SnapshotStore, httprouters.HealthChecker, []func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return memory.New(memory.WithQuota(cfg.Storage.Quota)), nil, nil, nil

	case config.BackendFile:
		st, err := filestorage.NewSnapshotStorage(cfg.FileStorage.SnapshotDir)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("file snapshot storage: %w", err)
		}
		return st, nil, nil, nil

	case config.BackendRedis:
		client := redisapp.NewClient(redisapp.Options{
			Addr:     cfg.Redis.RedisAddr,
			Password: cfg.Redis.RedisPassword,
			DB:       cfg.Redis.RedisDB,
		})
		if err := client.HealthCheck(ctx); err != nil {
			_ = client.Close()
			return nil, nil, nil, fmt.Errorf("redis: %w", err)
		}
		closeRedis := func() { _ = client.Close() }
		return repository.NewRedisSnapshotRepo(client, cfg.Storage.KeyPrefix), client, []func(){closeRedis}, nil

	case config.BackendPostgres:
		repo, err := repository.NewRepository(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("postgres: %w", err)
		}
		return repo.Snapshots, repo, []func(){repo.Close}, nil
	}

	return nil, nil, nil, fmt.Errorf("%w: %s", storage.ErrUnknownBackend, cfg.Storage.Backend)
}
