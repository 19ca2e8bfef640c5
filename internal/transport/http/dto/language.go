package dto

type LanguageResponse struct {
	Language  string   `json:"language"`
	Dir       string   `json:"dir"`
	Supported []string `json:"supported"`
}

type SetLanguageRequest struct {
	Language string `json:"language" validate:"required"`
}
