package dto

import "trattoria/internal/domain/models"

type AddGalleryImageRequest struct {
	URL string `json:"url" validate:"required"`
	Alt string `json:"alt" validate:"max=255"`
}

func (r AddGalleryImageRequest) ToDomain() models.GalleryImage {
	return models.GalleryImage{
		URL: r.URL,
		Alt: r.Alt,
	}
}
