package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"trattoria/internal/domain/models"
	"trattoria/internal/i18n"
	"trattoria/internal/lib/logger/sl"
	install "trattoria/internal/services/install_service"
	site "trattoria/internal/services/site_service"
	"trattoria/internal/storage"
	"trattoria/internal/transport/http/dto"
	"trattoria/internal/transport/http/dto/response"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"

	_ "trattoria/docs"
)

// SessionName cookie-сессия посетителя, в ней живет состояние баннера установки
const SessionName = "trattoria"

type RestaurantStore interface {
	RestaurantInfo() models.RestaurantInfo
	MenuItems() []models.MenuItem
	GalleryImages() []models.GalleryImage
	UpdateRestaurantInfo(ctx context.Context, patch models.RestaurantInfoPatch) models.RestaurantInfo
	AddMenuItem(ctx context.Context, item models.MenuItem) models.MenuItem
	UpdateMenuItem(ctx context.Context, id string, patch models.MenuItemPatch) (models.MenuItem, bool)
	DeleteMenuItem(ctx context.Context, id string) bool
	AddGalleryImage(ctx context.Context, image models.GalleryImage) models.GalleryImage
}

type SiteService interface {
	Home() site.HomePage
	Menu(category string) site.MenuPage
	Categories() []string
	Gallery() site.GalleryPage
	About() site.AboutPage
	Contact() site.ContactPage
}

type MediaService interface {
	UploadImage(ctx context.Context, input dto.GalleryUploadInput) (models.GalleryImage, error)
	RemoveImage(ctx context.Context, id string) (bool, error)
}

type Localizer interface {
	Language() language.Tag
	SetLanguage(lang string) (language.Tag, error)
	Supported() []language.Tag
	T(key string) string
}

// HealthChecker бэкенд хранилища снимков, который умеет проверять соединение
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Routers struct {
	log          *slog.Logger
	Store        RestaurantStore
	SiteService  SiteService
	MediaService MediaService
	Localizer    Localizer
	Health       HealthChecker
}

func NewRouter(log *slog.Logger, store RestaurantStore, siteService SiteService, mediaService MediaService, localizer Localizer, health HealthChecker) *Routers {
	return &Routers{
		log:          log,
		Store:        store,
		SiteService:  siteService,
		MediaService: mediaService,
		Localizer:    localizer,
		Health:       health,
	}
}

// HealthCheck godoc
// @Summary Проверка состояния сервиса
// @Tags system
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.ErrorResponse "Хранилище снимков недоступно"
// @Router /health [get]
func (r *Routers) HealthCheck(c echo.Context) error {
	if r.Health != nil {
		if err := r.Health.HealthCheck(c.Request().Context()); err != nil {
			r.log.Error("health check failed", sl.Err(err))
			return c.JSON(http.StatusServiceUnavailable, response.Fail("storage_unavailable", err.Error()))
		}
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]string{"language": r.Localizer.Language().String()}))
}

// GetRestaurant godoc
// @Summary Информация о ресторане
// @Tags restaurant
// @Produce json
// @Success 200 {object} models.RestaurantInfo
// @Router /api/v1/restaurant [get]
func (r *Routers) GetRestaurant(c echo.Context) error {
	return c.JSON(http.StatusOK, r.Store.RestaurantInfo())
}

// UpdateRestaurant godoc
// @Summary Частичное обновление информации о ресторане
// @Description Меняются только переданные поля, остальные остаются прежними
// @Tags restaurant
// @Accept json
// @Produce json
// @Param request body models.RestaurantInfoPatch true "Изменяемые поля"
// @Success 200 {object} models.RestaurantInfo
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/restaurant [patch]
func (r *Routers) UpdateRestaurant(c echo.Context) error {
	const op = "http.routers.UpdateRestaurant"

	log := r.log.With(slog.String("op", op))

	var patch models.RestaurantInfoPatch
	if err := c.Bind(&patch); err != nil {
		log.Warn("invalid request body", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	info := r.Store.UpdateRestaurantInfo(c.Request().Context(), patch)

	return c.JSON(http.StatusOK, info)
}

// ListMenu godoc
// @Summary Позиции меню
// @Description Без category или с category=All (на активном языке) возвращается все меню
// @Tags menu
// @Produce json
// @Param category query string false "Категория"
// @Success 200 {object} dto.MenuResponse
// @Router /api/v1/menu [get]
func (r *Routers) ListMenu(c echo.Context) error {
	page := r.SiteService.Menu(c.QueryParam("category"))

	return c.JSON(http.StatusOK, dto.MenuResponse{
		Category: page.Selected,
		Items:    page.Items,
	})
}

// ListCategories godoc
// @Summary Категории меню
// @Description Первой идет локализованная категория "All", затем категории в порядке появления
// @Tags menu
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /api/v1/menu/categories [get]
func (r *Routers) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: r.SiteService.Categories()})
}

// CreateMenuItem godoc
// @Summary Добавить позицию меню
// @Tags menu
// @Accept json
// @Produce json
// @Param request body dto.CreateMenuItemRequest true "Позиция меню"
// @Success 201 {object} models.MenuItem
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/menu [post]
func (r *Routers) CreateMenuItem(c echo.Context) error {
	const op = "http.routers.CreateMenuItem"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("invalid request body", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	item := r.Store.AddMenuItem(c.Request().Context(), req.ToDomain())

	log.Info("menu item created", slog.String("id", item.ID))

	return c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem godoc
// @Summary Частичное обновление позиции меню
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "ID позиции"
// @Param request body models.MenuItemPatch true "Изменяемые поля"
// @Success 200 {object} models.MenuItem
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/menu/{id} [patch]
func (r *Routers) UpdateMenuItem(c echo.Context) error {
	const op = "http.routers.UpdateMenuItem"

	log := r.log.With(slog.String("op", op))

	var patch models.MenuItemPatch
	if err := c.Bind(&patch); err != nil {
		log.Warn("invalid request body", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	item, ok := r.Store.UpdateMenuItem(c.Request().Context(), c.Param("id"), patch)
	if !ok {
		return c.JSON(http.StatusNotFound, response.ErrMenuItemNotFound)
	}

	return c.JSON(http.StatusOK, item)
}

// DeleteMenuItem godoc
// @Summary Удалить позицию меню
// @Tags menu
// @Param id path string true "ID позиции"
// @Success 204 "Позиция удалена"
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/menu/{id} [delete]
func (r *Routers) DeleteMenuItem(c echo.Context) error {
	if !r.Store.DeleteMenuItem(c.Request().Context(), c.Param("id")) {
		return c.JSON(http.StatusNotFound, response.ErrMenuItemNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListGallery godoc
// @Summary Изображения галереи
// @Tags gallery
// @Produce json
// @Success 200 {array} models.GalleryImage
// @Router /api/v1/gallery [get]
func (r *Routers) ListGallery(c echo.Context) error {
	return c.JSON(http.StatusOK, r.Store.GalleryImages())
}

// AddGalleryImage godoc
// @Summary Добавить изображение по URL
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body dto.AddGalleryImageRequest true "Изображение"
// @Success 201 {object} models.GalleryImage
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/gallery [post]
func (r *Routers) AddGalleryImage(c echo.Context) error {
	const op = "http.routers.AddGalleryImage"

	log := r.log.With(slog.String("op", op))

	var req dto.AddGalleryImageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.InvalidRequest(err.Error()))
	}

	image := r.Store.AddGalleryImage(c.Request().Context(), req.ToDomain())

	return c.JSON(http.StatusCreated, image)
}

// UploadGalleryImage godoc
// @Summary Загрузить изображение в галерею
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Изображение (jpeg, png, webp, gif)"
// @Param alt formData string false "Подпись"
// @Success 201 {object} models.GalleryImage
// @Failure 400 {object} response.ErrorResponse "Некорректные входные данные"
// @Failure 413 {object} response.ErrorResponse "Превышен максимальный размер файла"
// @Failure 415 {object} response.ErrorResponse "Неподдерживаемый тип файла"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/gallery/upload [post]
func (r *Routers) UploadGalleryImage(c echo.Context) error {
	const op = "http.routers.UploadGalleryImage"

	log := r.log.With(slog.String("op", op))

	file, err := c.FormFile("file")
	if err != nil {
		log.Warn("empty file in request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.InvalidRequest("file is required"))
	}

	input := dto.GalleryUploadInput{
		File: file,
		Alt:  c.FormValue("alt"),
	}

	if err := c.Validate(input); err != nil {
		return c.JSON(http.StatusBadRequest, response.InvalidRequest(err.Error()))
	}

	image, err := r.MediaService.UploadImage(c.Request().Context(), input)
	switch {
	case errors.Is(err, storage.ErrFileTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, response.Fail("file_too_large", err.Error()))
	case errors.Is(err, storage.ErrInvalidFileType):
		return c.JSON(http.StatusUnsupportedMediaType, response.Fail("invalid_file_type", err.Error()))
	case err != nil:
		log.Error("failed to upload image", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Fail("upload_failed", err.Error()))
	}

	return c.JSON(http.StatusCreated, image)
}

// DeleteGalleryImage godoc
// @Summary Удалить изображение из галереи
// @Description Загруженный файл удаляется с диска вместе с записью
// @Tags gallery
// @Param id path string true "ID изображения"
// @Success 204 "Изображение удалено"
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/gallery/{id} [delete]
func (r *Routers) DeleteGalleryImage(c echo.Context) error {
	const op = "http.routers.DeleteGalleryImage"

	found, err := r.MediaService.RemoveImage(c.Request().Context(), c.Param("id"))
	if err != nil {
		// запись уже удалена, файл остался на диске
		r.log.Warn("gallery image removed with errors", slog.String("op", op), sl.Err(err))
	}

	if !found {
		return c.JSON(http.StatusNotFound, response.ErrGalleryImageNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetLanguage godoc
// @Summary Активный язык
// @Tags language
// @Produce json
// @Success 200 {object} dto.LanguageResponse
// @Router /api/v1/language [get]
func (r *Routers) GetLanguage(c echo.Context) error {
	return c.JSON(http.StatusOK, r.languageResponse(r.Localizer.Language()))
}

// SetLanguage godoc
// @Summary Сменить язык
// @Description Значения по умолчанию пересчитываются на новом языке, сохраненные изменения остаются
// @Tags language
// @Accept json
// @Produce json
// @Param request body dto.SetLanguageRequest true "Язык"
// @Success 200 {object} dto.LanguageResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/language [put]
func (r *Routers) SetLanguage(c echo.Context) error {
	const op = "http.routers.SetLanguage"

	log := r.log.With(slog.String("op", op))

	var req dto.SetLanguageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.InvalidRequest(err.Error()))
	}

	tag, err := r.Localizer.SetLanguage(req.Language)
	if errors.Is(err, i18n.ErrUnsupportedLanguage) {
		log.Warn("unsupported language", slog.String("language", req.Language))
		return c.JSON(http.StatusBadRequest, response.ErrUnsupportedLanguage)
	}
	if err != nil {
		log.Error("failed to set language", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Fail("internal_error", err.Error()))
	}

	return c.JSON(http.StatusOK, r.languageResponse(tag))
}

func (r *Routers) languageResponse(tag language.Tag) dto.LanguageResponse {
	supported := r.Localizer.Supported()
	codes := make([]string, 0, len(supported))
	for _, t := range supported {
		codes = append(codes, t.String())
	}

	return dto.LanguageResponse{
		Language:  tag.String(),
		Dir:       i18n.Direction(tag),
		Supported: codes,
	}
}

// HomePage godoc
// @Summary Главная страница
// @Tags pages
// @Produce json
// @Success 200 {object} site.HomePage
// @Router /api/v1/pages/home [get]
func (r *Routers) HomePage(c echo.Context) error {
	return c.JSON(http.StatusOK, r.SiteService.Home())
}

// MenuPage godoc
// @Summary Страница меню
// @Tags pages
// @Produce json
// @Param category query string false "Выбранная категория"
// @Success 200 {object} site.MenuPage
// @Router /api/v1/pages/menu [get]
func (r *Routers) MenuPage(c echo.Context) error {
	return c.JSON(http.StatusOK, r.SiteService.Menu(c.QueryParam("category")))
}

// GalleryPage godoc
// @Summary Страница галереи
// @Tags pages
// @Produce json
// @Success 200 {object} site.GalleryPage
// @Router /api/v1/pages/gallery [get]
func (r *Routers) GalleryPage(c echo.Context) error {
	return c.JSON(http.StatusOK, r.SiteService.Gallery())
}

// AboutPage godoc
// @Summary Страница "О нас"
// @Tags pages
// @Produce json
// @Success 200 {object} site.AboutPage
// @Router /api/v1/pages/about [get]
func (r *Routers) AboutPage(c echo.Context) error {
	return c.JSON(http.StatusOK, r.SiteService.About())
}

// ContactPage godoc
// @Summary Страница контактов
// @Tags pages
// @Produce json
// @Success 200 {object} site.ContactPage
// @Router /api/v1/pages/contact [get]
func (r *Routers) ContactPage(c echo.Context) error {
	return c.JSON(http.StatusOK, r.SiteService.Contact())
}

// GetInstallBanner godoc
// @Summary Состояние баннера установки приложения
// @Tags pwa
// @Produce json
// @Param width query integer false "Ширина окна браузера"
// @Success 200 {object} dto.PWABannerResponse
// @Router /api/v1/pwa/banner [get]
func (r *Routers) GetInstallBanner(c echo.Context) error {
	banner, err := r.banner(c)
	if err != nil {
		return err
	}

	width, _ := strconv.Atoi(c.QueryParam("width"))
	banner.DetectClient(c.Request().UserAgent(), width)

	if err := r.saveBanner(c, banner); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, r.bannerResponse(banner))
}

// InstallEvent godoc
// @Summary Событие установки от браузера
// @Description beforeinstallprompt, appinstalled или dismiss (кнопка "Позже")
// @Tags pwa
// @Accept json
// @Produce json
// @Param request body dto.PWAEventRequest true "Событие"
// @Success 200 {object} dto.PWABannerResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/pwa/event [post]
func (r *Routers) InstallEvent(c echo.Context) error {
	const op = "http.routers.InstallEvent"

	var req dto.PWAEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.InvalidRequest(err.Error()))
	}

	banner, err := r.banner(c)
	if err != nil {
		return err
	}

	banner.DetectClient(c.Request().UserAgent(), req.Width)

	switch req.Event {
	case "beforeinstallprompt":
		banner.BeforeInstallPrompt()
	case "appinstalled":
		banner.AppInstalled()
	case "dismiss":
		banner.Dismiss()
	}

	r.log.Debug("install event", slog.String("op", op), slog.String("event", req.Event))

	if err := r.saveBanner(c, banner); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, r.bannerResponse(banner))
}

// Install godoc
// @Summary Ответ пользователя на системный запрос установки
// @Tags pwa
// @Accept json
// @Produce json
// @Param request body dto.PWAInstallRequest true "Решение пользователя"
// @Success 200 {object} dto.PWAInstallResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Запрос установки недоступен"
// @Router /api/v1/pwa/install [post]
func (r *Routers) Install(c echo.Context) error {
	var req dto.PWAInstallRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.InvalidRequest(err.Error()))
	}

	banner, err := r.banner(c)
	if err != nil {
		return err
	}

	outcome, err := banner.Install(c.Request().Context(), install.StaticChoice(req.Outcome))
	if errors.Is(err, install.ErrNoPrompt) {
		return c.JSON(http.StatusConflict, response.ErrNoInstallPrompt)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, response.Fail("internal_error", err.Error()))
	}

	if err := r.saveBanner(c, banner); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.PWAInstallResponse{Outcome: string(outcome)})
}

// banner восстанавливает баннер посетителя из сессии
func (r *Routers) banner(c echo.Context) (*install.Banner, error) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		r.log.Error("failed to get session", sl.Err(err))
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
	}

	var state install.State
	state.Mobile, _ = sess.Values["pwa_mobile"].(bool)
	state.PromptAvailable, _ = sess.Values["pwa_prompt"].(bool)
	state.Shown, _ = sess.Values["pwa_shown"].(bool)

	return install.NewBanner(r.log, state), nil
}

func (r *Routers) saveBanner(c echo.Context, banner *install.Banner) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
	}

	state := banner.State()
	sess.Values["pwa_mobile"] = state.Mobile
	sess.Values["pwa_prompt"] = state.PromptAvailable
	sess.Values["pwa_shown"] = state.Shown

	if err := sess.Save(c.Request(), c.Response()); err != nil {
		r.log.Error("failed to save session", sl.Err(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
	}

	return nil
}

func (r *Routers) bannerResponse(banner *install.Banner) dto.PWABannerResponse {
	state := banner.State()

	return dto.PWABannerResponse{
		Visible: banner.Visible(),
		Mobile:  state.Mobile,
		Message: r.Localizer.T("pwa.addToHomeScreen"),
		Install: r.Localizer.T("pwa.addNow"),
		Later:   r.Localizer.T("pwa.later"),
	}
}
