package dto

import "trattoria/internal/domain/models"

// CreateMenuItemRequest цена и категория сохраняются как есть
type CreateMenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

func (r CreateMenuItemRequest) ToDomain() models.MenuItem {
	return models.MenuItem{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		Category:    r.Category,
	}
}

type MenuResponse struct {
	Category string            `json:"category,omitempty"`
	Items    []models.MenuItem `json:"items"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
