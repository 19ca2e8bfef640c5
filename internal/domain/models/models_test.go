package models_test

import (
	"testing"

	"trattoria/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestMenuItemPatch_Apply(t *testing.T) {
	item := models.MenuItem{
		ID:          "7",
		Name:        "Tiramisu",
		Description: "Coffee-soaked ladyfingers",
		Price:       12,
		Image:       "https://example.com/t.jpg",
		Category:    "Dessert",
	}

	tests := []struct {
		name  string
		patch models.MenuItemPatch
		want  models.MenuItem
	}{
		{
			name:  "empty patch",
			patch: models.MenuItemPatch{},
			want:  item,
		},
		{
			name:  "price only",
			patch: models.MenuItemPatch{Price: ptr(20.0)},
			want: models.MenuItem{
				ID: "7", Name: "Tiramisu", Description: "Coffee-soaked ladyfingers",
				Price: 20, Image: "https://example.com/t.jpg", Category: "Dessert",
			},
		},
		{
			name:  "zero values are applied",
			patch: models.MenuItemPatch{Name: ptr(""), Price: ptr(0.0)},
			want: models.MenuItem{
				ID: "7", Description: "Coffee-soaked ladyfingers",
				Image: "https://example.com/t.jpg", Category: "Dessert",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.patch.Apply(item))
		})
	}
}

func TestRestaurantInfoPatch_Apply(t *testing.T) {
	info := models.RestaurantInfo{
		Name:         "Bella Vista",
		Phone:        "+1-555-0123",
		OpeningHours: []models.OpeningHours{{Day: "Sunday", Hours: "12:00 PM - 9:00 PM"}},
	}

	t.Run("only provided fields change", func(t *testing.T) {
		got := models.RestaurantInfoPatch{Phone: ptr("+1-555-9999")}.Apply(info)

		assert.Equal(t, "Bella Vista", got.Name)
		assert.Equal(t, "+1-555-9999", got.Phone)
		assert.Equal(t, info.OpeningHours, got.OpeningHours)
	})

	t.Run("result does not alias the source", func(t *testing.T) {
		hours := []models.OpeningHours{{Day: "Monday", Hours: "closed"}}
		got := models.RestaurantInfoPatch{OpeningHours: &hours}.Apply(info)

		hours[0].Hours = "changed"
		got.OpeningHours[0].Day = "changed"

		assert.Equal(t, "closed", got.OpeningHours[0].Hours)
		assert.Equal(t, "Sunday", info.OpeningHours[0].Day)
	})

	t.Run("empty", func(t *testing.T) {
		assert.True(t, models.RestaurantInfoPatch{}.IsEmpty())
		assert.False(t, models.RestaurantInfoPatch{About: ptr("")}.IsEmpty())
	})
}

func TestCategories(t *testing.T) {
	items := []models.MenuItem{
		{ID: "1", Category: "Pizza"},
		{ID: "2", Category: "Pasta"},
		{ID: "3", Category: "Pizza"},
		{ID: "4", Category: "Dessert"},
	}

	assert.Equal(t, []string{"Pizza", "Pasta", "Dessert"}, models.Categories(items))
	assert.Empty(t, models.Categories(nil))
}
