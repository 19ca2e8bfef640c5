package models

// MenuItem позиция меню. Category - свободный текст, по нему группируется меню.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

// MenuItemPatch частичное обновление позиции меню
type MenuItemPatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

// Apply накладывает патч на item. ID не меняется никогда.
func (p MenuItemPatch) Apply(item MenuItem) MenuItem {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Image != nil {
		item.Image = *p.Image
	}
	if p.Category != nil {
		item.Category = *p.Category
	}

	return item
}

func (p MenuItemPatch) IsEmpty() bool {
	return p == MenuItemPatch{}
}

// Categories возвращает уникальные категории в порядке первого появления
func Categories(items []MenuItem) []string {
	seen := make(map[string]struct{}, len(items))
	categories := make([]string, 0, len(items))

	for _, item := range items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}

	return categories
}
