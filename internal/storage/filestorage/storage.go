package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"trattoria/internal/storage"
)

// FileStorage интерфейс для работы с файловым хранилищем загруженных изображений
type FileStorage interface {
	Save(ctx context.Context, file *multipart.FileHeader, subPath string) (filePath string, fileSize int64, err error)
	Delete(ctx context.Context, filePath string) error
	GetFullPath(relativePath string) string
	URL(relativePath string) string
	BaseURL() string
	GetBaseDir() string
}

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

// LocalFileStorage реализация для локальной файловой системы
type LocalFileStorage struct {
	baseDir string // Базовый каталог для хранения (например: "./uploads")
	baseURL string // Базовый URL для доступа к файлам (например: "/uploads")
	maxSize int64  // 0 - без ограничения
}

func NewLocalFileStorage(baseDir, baseURL string, maxSize int64) (*LocalFileStorage, error) {
	// Создаем директорию, если она не существует
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &LocalFileStorage{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
		maxSize: maxSize,
	}, nil
}

func (s *LocalFileStorage) Save(ctx context.Context, file *multipart.FileHeader, subPath string) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", 0, storage.ErrFileTooLarge
	}

	if _, ok := allowedImageTypes[file.Header.Get("Content-Type")]; !ok {
		return "", 0, storage.ErrInvalidFileType
	}

	// Имя файла от клиента не должно выводить за пределы baseDir
	name := filepath.Base(file.Filename)
	filePath := filepath.Join(s.baseDir, subPath, name)

	select {
	case <-ctx.Done():
		return "", 0, ctx.Err()
	default:
		if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
			return "", 0, fmt.Errorf("failed to create directories: %w", err)
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", 0, fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	// Создаем целевой файл
	dst, err := os.Create(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	done := make(chan struct{})
	var size int64
	var copyErr error

	go func() {
		size, copyErr = io.Copy(dst, src)
		close(done)
	}()

	select {
	case <-done:
		if copyErr != nil {
			_ = os.Remove(filePath)
			return "", 0, fmt.Errorf("failed to copy file: %w", copyErr)
		}
	case <-ctx.Done():
		<-done
		_ = os.Remove(filePath)
		return "", 0, ctx.Err()
	}

	return filepath.Join(subPath, name), size, nil
}

// Delete удаляет файл из хранилища
func (s *LocalFileStorage) Delete(ctx context.Context, filePath string) error {
	fullPath := filepath.Join(s.baseDir, filePath)
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return storage.ErrFileNotFound
		}
		return err
	}

	return nil
}

// GetFullPath возвращает полный путь к файлу на диске
func (s *LocalFileStorage) GetFullPath(relativePath string) string {
	return filepath.Join(s.baseDir, relativePath)
}

// URL публичный адрес файла: baseURL + относительный путь
func (s *LocalFileStorage) URL(relativePath string) string {
	parts := strings.Split(filepath.ToSlash(relativePath), "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}

	return s.baseURL + "/" + path.Join(parts...)
}

// BaseURL возвращает базовый URL для доступа к файлам
func (s *LocalFileStorage) BaseURL() string {
	return s.baseURL
}

func (s *LocalFileStorage) GetBaseDir() string {
	return s.baseDir
}
