package dto

import (
	"mime/multipart"
)

// GalleryUploadInput загрузка изображения в галерею (multipart/form-data)
type GalleryUploadInput struct {
	File *multipart.FileHeader `json:"-" form:"file" validate:"required"`
	Alt  string                `json:"alt" form:"alt" validate:"max=255"`
}
