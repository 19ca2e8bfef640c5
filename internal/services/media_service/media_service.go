package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"trattoria/internal/domain/models"
	"trattoria/internal/lib/logger/sl"
	"trattoria/internal/storage"
	filestorage "trattoria/internal/storage/filestorage"
	"trattoria/internal/transport/http/dto"

	"github.com/google/uuid"
)

// GalleryDir подкаталог хранилища для загруженных изображений галереи
const GalleryDir = "gallery"

// Gallery операции над коллекцией изображений
type Gallery interface {
	GalleryImages() []models.GalleryImage
	AddGalleryImage(ctx context.Context, image models.GalleryImage) models.GalleryImage
	DeleteGalleryImage(ctx context.Context, id string) bool
}

type MediaService struct {
	log         *slog.Logger
	gallery     Gallery
	fileStorage filestorage.FileStorage
}

func NewMediaService(log *slog.Logger, gallery Gallery, fileStorage filestorage.FileStorage) *MediaService {
	return &MediaService{
		log:         log,
		gallery:     gallery,
		fileStorage: fileStorage,
	}
}

// UploadImage сохраняет файл и добавляет его в галерею
func (s *MediaService) UploadImage(ctx context.Context, input dto.GalleryUploadInput) (models.GalleryImage, error) {
	const op = "media_service.UploadImage"

	log := s.log.With(
		slog.String("op", op),
		slog.String("filename", input.File.Filename),
	)

	log.Info("upload gallery image")

	// отдельный каталог на каждую загрузку, одинаковые имена файлов не конфликтуют
	filePath, fileSize, err := s.fileStorage.Save(ctx, input.File, filepath.Join(GalleryDir, uuid.NewString()))
	if err != nil {
		log.Error("failed to save file", sl.Err(err))

		return models.GalleryImage{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := ctx.Err(); err != nil {
		// запрос отменен, файл никому не нужен
		_ = s.fileStorage.Delete(context.WithoutCancel(ctx), filePath)
		log.Warn("upload canceled", sl.Err(err))

		return models.GalleryImage{}, fmt.Errorf("%s: %w", op, err)
	}

	alt := input.Alt
	if alt == "" {
		alt = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	image := s.gallery.AddGalleryImage(ctx, models.GalleryImage{
		URL: s.fileStorage.URL(filePath),
		Alt: alt,
	})

	log.Info("gallery image uploaded",
		slog.String("id", image.ID),
		slog.Int64("size", fileSize),
	)

	return image, nil
}

// RemoveImage удаляет изображение из галереи, а загруженный файл - с диска.
// Внешние URL просто убираются из коллекции.
func (s *MediaService) RemoveImage(ctx context.Context, id string) (bool, error) {
	const op = "media_service.RemoveImage"

	log := s.log.With(
		slog.String("op", op),
		slog.String("id", id),
	)

	var image *models.GalleryImage
	for _, img := range s.gallery.GalleryImages() {
		if img.ID == id {
			image = &img
			break
		}
	}

	if image == nil {
		return false, nil
	}

	if !s.gallery.DeleteGalleryImage(ctx, id) {
		return false, nil
	}

	rel, ok := s.localPath(image.URL)
	if !ok {
		return true, nil
	}

	if err := s.fileStorage.Delete(ctx, rel); err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			log.Warn("uploaded file already removed", slog.String("path", rel))
			return true, nil
		}

		log.Error("failed to remove uploaded file", sl.Err(err))

		return true, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("uploaded file removed", slog.String("path", rel))

	return true, nil
}

// localPath путь внутри хранилища для URL, выданного этим хранилищем
func (s *MediaService) localPath(imageURL string) (string, bool) {
	prefix := s.fileStorage.BaseURL() + "/"
	if !strings.HasPrefix(imageURL, prefix) {
		return "", false
	}

	rel, err := url.PathUnescape(strings.TrimPrefix(imageURL, prefix))
	if err != nil || rel == "" || strings.Contains(rel, "..") {
		return "", false
	}

	return filepath.FromSlash(rel), true
}
