package models

// Coordinates географические координаты ресторана
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OpeningHours одна строка расписания, например {"Friday - Saturday", "11:00 AM - 11:00 PM"}
type OpeningHours struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// RestaurantInfo единственная запись с информацией о ресторане
type RestaurantInfo struct {
	Name         string         `json:"name"`
	Tagline      string         `json:"tagline"`
	Phone        string         `json:"phone"`
	WhatsApp     string         `json:"whatsapp"`
	Address      string         `json:"address"`
	Coordinates  Coordinates    `json:"coordinates"`
	OpeningHours []OpeningHours `json:"openingHours"`
	About        string         `json:"about"`
}

// Clone возвращает копию, не разделяющую срез расписания с оригиналом
func (r RestaurantInfo) Clone() RestaurantInfo {
	if r.OpeningHours != nil {
		hours := make([]OpeningHours, len(r.OpeningHours))
		copy(hours, r.OpeningHours)
		r.OpeningHours = hours
	}

	return r
}

// RestaurantInfoPatch частичное обновление: nil означает "поле не меняется"
type RestaurantInfoPatch struct {
	Name         *string         `json:"name,omitempty"`
	Tagline      *string         `json:"tagline,omitempty"`
	Phone        *string         `json:"phone,omitempty"`
	WhatsApp     *string         `json:"whatsapp,omitempty"`
	Address      *string         `json:"address,omitempty"`
	Coordinates  *Coordinates    `json:"coordinates,omitempty"`
	OpeningHours *[]OpeningHours `json:"openingHours,omitempty"`
	About        *string         `json:"about,omitempty"`
}

// Apply накладывает патч поверх info и возвращает результат
func (p RestaurantInfoPatch) Apply(info RestaurantInfo) RestaurantInfo {
	out := info.Clone()

	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Tagline != nil {
		out.Tagline = *p.Tagline
	}
	if p.Phone != nil {
		out.Phone = *p.Phone
	}
	if p.WhatsApp != nil {
		out.WhatsApp = *p.WhatsApp
	}
	if p.Address != nil {
		out.Address = *p.Address
	}
	if p.Coordinates != nil {
		out.Coordinates = *p.Coordinates
	}
	if p.OpeningHours != nil {
		hours := make([]OpeningHours, len(*p.OpeningHours))
		copy(hours, *p.OpeningHours)
		out.OpeningHours = hours
	}
	if p.About != nil {
		out.About = *p.About
	}

	return out
}

// IsEmpty true, если патч ничего не меняет
func (p RestaurantInfoPatch) IsEmpty() bool {
	return p == RestaurantInfoPatch{}
}
