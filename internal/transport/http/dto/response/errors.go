package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  statusError,
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrMenuItemNotFound = ErrorResponse{
		Status:  statusError,
		Error:   "menu_item_not_found",
		Details: "Menu item with this id does not exist",
	}

	ErrGalleryImageNotFound = ErrorResponse{
		Status:  statusError,
		Error:   "gallery_image_not_found",
		Details: "Gallery image with this id does not exist",
	}

	ErrUnsupportedLanguage = ErrorResponse{
		Status:  statusError,
		Error:   "unsupported_language",
		Details: "Supported languages: en, ar",
	}

	ErrNoInstallPrompt = ErrorResponse{
		Status:  statusError,
		Error:   "no_install_prompt",
		Details: "The app can not be installed right now",
	}
)
