package services

import "trattoria/internal/domain/models"

func defaultRestaurantInfo(t Translator) models.RestaurantInfo {
	return models.RestaurantInfo{
		Name:     t.T("restaurantInfo.name"),
		Tagline:  t.T("restaurantInfo.tagline"),
		Phone:    "+1-555-0123",
		WhatsApp: "+15550123",
		Address:  "123 Main Street, Downtown, NY 10001",
		Coordinates: models.Coordinates{
			Lat: 40.7128,
			Lng: -74.0060,
		},
		OpeningHours: []models.OpeningHours{
			{Day: t.T("restaurantInfo.openingHours.mondayThursday"), Hours: "11:00 AM - 10:00 PM"},
			{Day: t.T("restaurantInfo.openingHours.fridaySaturday"), Hours: "11:00 AM - 11:00 PM"},
			{Day: t.T("restaurantInfo.openingHours.sunday"), Hours: "12:00 PM - 9:00 PM"},
		},
		About: t.T("restaurantInfo.about"),
	}
}

func defaultMenuItems(t Translator) []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          "1",
			Name:        t.T("menuItems.margheritaPizza"),
			Description: t.T("menuItems.margheritaDesc"),
			Price:       18,
			Image:       "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    t.T("categories.Pizza"),
		},
		{
			ID:          "2",
			Name:        t.T("menuItems.spaghettiCarbonara"),
			Description: t.T("menuItems.carbonaraDesc"),
			Price:       22,
			Image:       "https://images.pexels.com/photos/4518843/pexels-photo-4518843.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    t.T("categories.Pasta"),
		},
		{
			ID:          "3",
			Name:        t.T("menuItems.ossoBuco"),
			Description: t.T("menuItems.ossoBucoDesc"),
			Price:       35,
			Image:       "https://images.pexels.com/photos/299347/pexels-photo-299347.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    t.T("categories.Main Course"),
		},
		{
			ID:          "4",
			Name:        t.T("menuItems.tiramisu"),
			Description: t.T("menuItems.tiramisuDesc"),
			Price:       12,
			Image:       "https://images.pexels.com/photos/6880219/pexels-photo-6880219.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    t.T("categories.Dessert"),
		},
		{
			ID:          "5",
			Name:        t.T("menuItems.caesarSalad"),
			Description: t.T("menuItems.caesarDesc"),
			Price:       14,
			Image:       "https://images.pexels.com/photos/2097090/pexels-photo-2097090.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    t.T("categories.Salads"),
		},
		{
			ID:          "6",
			Name:        t.T("menuItems.beefBurger"),
			Description: t.T("menuItems.burgerDesc"),
			Price:       16,
			Image:       "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    t.T("categories.Burgers"),
		},
	}
}

// Галерея не зависит от языка
func defaultGalleryImages() []models.GalleryImage {
	return []models.GalleryImage{
		{ID: "1", URL: "https://images.pexels.com/photos/262978/pexels-photo-262978.jpeg?auto=compress&cs=tinysrgb&w=800", Alt: "Restaurant interior"},
		{ID: "2", URL: "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg?auto=compress&cs=tinysrgb&w=800", Alt: "Fresh pasta preparation"},
		{ID: "3", URL: "https://images.pexels.com/photos/1267320/pexels-photo-1267320.jpeg?auto=compress&cs=tinysrgb&w=800", Alt: "Wood fired pizza oven"},
		{ID: "4", URL: "https://images.pexels.com/photos/958545/pexels-photo-958545.jpeg?auto=compress&cs=tinysrgb&w=800", Alt: "Chef preparing dishes"},
		{ID: "5", URL: "https://images.pexels.com/photos/1146760/pexels-photo-1146760.jpeg?auto=compress&cs=tinysrgb&w=800", Alt: "Beautiful plated dessert"},
		{ID: "6", URL: "https://images.pexels.com/photos/941861/pexels-photo-941861.jpeg?auto=compress&cs=tinysrgb&w=800", Alt: "Restaurant dining area"},
	}
}
