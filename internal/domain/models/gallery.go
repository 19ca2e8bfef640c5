package models

// GalleryImage изображение галереи
type GalleryImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt"`
}
