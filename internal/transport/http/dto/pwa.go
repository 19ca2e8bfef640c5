package dto

// PWAEventRequest событие жизненного цикла установки, пришедшее от браузера
type PWAEventRequest struct {
	Event string `json:"event" validate:"required,oneof=beforeinstallprompt appinstalled dismiss"`
	Width int    `json:"width" validate:"min=0"`
}

type PWAInstallRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=accepted dismissed"`
}

type PWABannerResponse struct {
	Visible bool   `json:"visible"`
	Mobile  bool   `json:"mobile"`
	Message string `json:"message"`
	Install string `json:"install"`
	Later   string `json:"later"`
}

type PWAInstallResponse struct {
	Outcome string `json:"outcome"`
}
