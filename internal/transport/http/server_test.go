package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	httpapp "trattoria/internal/app/http"
	"trattoria/internal/domain/models"
	"trattoria/internal/i18n"
	"trattoria/internal/lib/logger/handlers/slogdiscard"
	mediasvc "trattoria/internal/services/media_service"
	restaurantsvc "trattoria/internal/services/restaurant_service"
	sitesvc "trattoria/internal/services/site_service"
	filestorage "trattoria/internal/storage/filestorage"
	"trattoria/internal/storage/memory"
	httprouters "trattoria/internal/transport/http"
	"trattoria/internal/transport/http/dto"

	"github.com/stretchr/testify/suite"
)

const (
	iphoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148"
	desktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0 Safari/537.36"
)

type ServerTestSuite struct {
	suite.Suite
	handler   http.Handler
	snapshots *memory.Storage
	baseDir   string
	cookies   []*http.Cookie
}

func (s *ServerTestSuite) SetupTest() {
	log := slogdiscard.NewDiscardLogger()
	ctx := context.Background()

	localizer, err := i18n.New("en")
	s.Require().NoError(err)

	s.snapshots = memory.New()
	store := restaurantsvc.New(log, localizer, s.snapshots, restaurantsvc.NewSequenceGenerator("id-"))
	store.Load(ctx)
	localizer.OnChange(store.HandleLanguageChange)

	s.baseDir = s.T().TempDir()
	fileStorage, err := filestorage.NewLocalFileStorage(s.baseDir, "/uploads", 1<<20)
	s.Require().NoError(err)

	routers := httprouters.NewRouter(
		log,
		store,
		sitesvc.NewSiteService(log, store, localizer, ""),
		mediasvc.NewMediaService(log, store, fileStorage),
		localizer,
		nil,
	)

	server := httpapp.New(log, httpapp.Options{
		UploadsURL:    fileStorage.BaseURL(),
		UploadsDir:    fileStorage.GetBaseDir(),
		SessionSecret: "test-secret",
		SessionMaxAge: 3600,
	}, routers)
	server.BuildRouters()

	s.handler = server.Handler()
	s.cookies = nil
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

// do выполняет запрос, переносит cookie сессии между запросами
func (s *ServerTestSuite) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	for _, c := range s.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		s.cookies = cookies
	}

	return rec
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestRestaurant_GetAndPatch() {
	rec := s.do(http.MethodGet, "/api/v1/restaurant", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var info models.RestaurantInfo
	s.decode(rec, &info)
	s.Equal("Bella Vista", info.Name)

	rec = s.do(http.MethodPatch, "/api/v1/restaurant", `{"phone":"+39-06-555-0123"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var updated models.RestaurantInfo
	s.decode(rec, &updated)
	s.Equal("+39-06-555-0123", updated.Phone)
	s.Equal(info.Name, updated.Name)
	s.Equal(info.OpeningHours, updated.OpeningHours)

	raw, err := s.snapshots.Get(context.Background(), restaurantsvc.KeyRestaurantInfo)
	s.Require().NoError(err)
	s.Contains(raw, `"phone":"+39-06-555-0123"`)
}

func (s *ServerTestSuite) TestRestaurant_InvalidBody() {
	rec := s.do(http.MethodPatch, "/api/v1/restaurant", `{"phone":`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestMenu_CRUD() {
	rec := s.do(http.MethodPost, "/api/v1/menu", `{"name":"Lasagna","description":"Layers","price":16.5,"image":"","category":"Pasta"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created models.MenuItem
	s.decode(rec, &created)
	s.Equal("id-1", created.ID)
	s.Equal(16.5, created.Price)

	rec = s.do(http.MethodGet, "/api/v1/menu", "")
	var menu dto.MenuResponse
	s.decode(rec, &menu)
	s.Require().Len(menu.Items, 7)
	s.Equal(created, menu.Items[6])

	rec = s.do(http.MethodPatch, "/api/v1/menu/"+created.ID, `{"price":18}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var patched models.MenuItem
	s.decode(rec, &patched)
	s.Equal(18.0, patched.Price)
	s.Equal("Lasagna", patched.Name)

	rec = s.do(http.MethodDelete, "/api/v1/menu/1", "")
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/menu", "")
	s.decode(rec, &menu)
	s.Len(menu.Items, 6)
	for _, item := range menu.Items {
		s.NotEqual("1", item.ID)
	}
}

func (s *ServerTestSuite) TestMenu_UnknownID() {
	rec := s.do(http.MethodPatch, "/api/v1/menu/missing", `{"price":1}`)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, "/api/v1/menu/missing", "")
	s.Equal(http.StatusNotFound, rec.Code)

	_, err := s.snapshots.Get(context.Background(), restaurantsvc.KeyMenuItems)
	s.Error(err, "no-op must not persist")
}

func (s *ServerTestSuite) TestMenu_Categories() {
	rec := s.do(http.MethodGet, "/api/v1/menu/categories", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp dto.CategoriesResponse
	s.decode(rec, &resp)
	s.Equal([]string{"All", "Pizza", "Pasta", "Main Course", "Dessert", "Salads", "Burgers"}, resp.Categories)

	rec = s.do(http.MethodGet, "/api/v1/menu?category=Pizza", "")
	var menu dto.MenuResponse
	s.decode(rec, &menu)
	s.Require().Len(menu.Items, 1)
	s.Equal("Pizza", menu.Items[0].Category)
}

func (s *ServerTestSuite) TestLanguage_Switch() {
	rec := s.do(http.MethodPut, "/api/v1/language", `{"language":"ar"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var lang dto.LanguageResponse
	s.decode(rec, &lang)
	s.Equal("ar", lang.Language)
	s.Equal(i18n.DirRTL, lang.Dir)

	rec = s.do(http.MethodGet, "/api/v1/restaurant", "")
	var info models.RestaurantInfo
	s.decode(rec, &info)
	s.Equal("بيلا فيستا", info.Name)

	rec = s.do(http.MethodGet, "/api/v1/pages/home", "")
	var home sitesvc.HomePage
	s.decode(rec, &home)
	s.Equal(i18n.DirRTL, home.Dir)
	s.Len(home.Featured, sitesvc.FeaturedCount)
}

func (s *ServerTestSuite) TestLanguage_Unsupported() {
	rec := s.do(http.MethodPut, "/api/v1/language", `{"language":"xx"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPut, "/api/v1/language", `{}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestGallery_AddByURL() {
	rec := s.do(http.MethodPost, "/api/v1/gallery", `{"alt":"no url"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/gallery", `{"url":"https://images.pexels.com/photos/1.jpeg","alt":"Pasta"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/gallery", "")
	var images []models.GalleryImage
	s.decode(rec, &images)
	s.Len(images, 7)
}

func (s *ServerTestSuite) uploadRequest(filename, contentType string) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)

	part, err := writer.CreatePart(h)
	s.Require().NoError(err)
	_, err = part.Write([]byte("fake image bytes"))
	s.Require().NoError(err)

	s.Require().NoError(writer.WriteField("alt", "Terrace"))
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/gallery/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func (s *ServerTestSuite) TestGallery_UploadAndDelete() {
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, s.uploadRequest("terrace.png", "image/png"))
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var image models.GalleryImage
	s.decode(rec, &image)
	s.True(strings.HasPrefix(image.URL, "/uploads/gallery/"), image.URL)
	s.Equal("Terrace", image.Alt)

	rel := filepath.FromSlash(strings.TrimPrefix(image.URL, "/uploads/"))
	_, err := os.Stat(filepath.Join(s.baseDir, rel))
	s.Require().NoError(err)

	// файл раздается статикой
	served := s.do(http.MethodGet, image.URL, "")
	s.Equal(http.StatusOK, served.Code)
	s.Equal("fake image bytes", served.Body.String())

	rec = s.do(http.MethodDelete, "/api/v1/gallery/"+image.ID, "")
	s.Equal(http.StatusNoContent, rec.Code)

	_, err = os.Stat(filepath.Join(s.baseDir, rel))
	s.True(os.IsNotExist(err))

	rec = s.do(http.MethodDelete, "/api/v1/gallery/"+image.ID, "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestGallery_UploadRejectsNonImage() {
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, s.uploadRequest("notes.txt", "text/plain"))
	s.Equal(http.StatusUnsupportedMediaType, rec.Code)
}

func (s *ServerTestSuite) TestPages() {
	for _, page := range []string{"home", "menu", "gallery", "about", "contact"} {
		rec := s.do(http.MethodGet, "/api/v1/pages/"+page, "")
		s.Equal(http.StatusOK, rec.Code, page)
	}

	rec := s.do(http.MethodGet, "/api/v1/pages/contact", "")
	var contact sitesvc.ContactPage
	s.decode(rec, &contact)
	s.True(strings.HasPrefix(contact.Links.Call, "tel:"))
	s.True(strings.HasPrefix(contact.Links.WhatsApp, "https://wa.me/"))
}

func (s *ServerTestSuite) TestInstallBanner_MobileFlow() {
	rec := s.do(http.MethodPost, "/api/v1/pwa/event", `{"event":"beforeinstallprompt"}`, "User-Agent", iphoneUA)
	s.Require().Equal(http.StatusOK, rec.Code)

	var banner dto.PWABannerResponse
	s.decode(rec, &banner)
	s.True(banner.Visible)
	s.Equal("Later", banner.Later)

	// состояние хранится в сессии
	rec = s.do(http.MethodGet, "/api/v1/pwa/banner", "", "User-Agent", iphoneUA)
	s.decode(rec, &banner)
	s.True(banner.Visible)

	rec = s.do(http.MethodPost, "/api/v1/pwa/install", `{"outcome":"accepted"}`, "User-Agent", iphoneUA)
	s.Require().Equal(http.StatusOK, rec.Code)

	var installed dto.PWAInstallResponse
	s.decode(rec, &installed)
	s.Equal("accepted", installed.Outcome)

	rec = s.do(http.MethodGet, "/api/v1/pwa/banner", "", "User-Agent", iphoneUA)
	s.decode(rec, &banner)
	s.False(banner.Visible)

	rec = s.do(http.MethodPost, "/api/v1/pwa/install", `{"outcome":"accepted"}`, "User-Agent", iphoneUA)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ServerTestSuite) TestInstallBanner_DismissThenInstall() {
	s.do(http.MethodPost, "/api/v1/pwa/event", `{"event":"beforeinstallprompt"}`, "User-Agent", iphoneUA)

	rec := s.do(http.MethodPost, "/api/v1/pwa/event", `{"event":"dismiss"}`, "User-Agent", iphoneUA)
	var banner dto.PWABannerResponse
	s.decode(rec, &banner)
	s.False(banner.Visible)

	rec = s.do(http.MethodPost, "/api/v1/pwa/install", `{"outcome":"dismissed"}`, "User-Agent", iphoneUA)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestInstallBanner_Desktop() {
	rec := s.do(http.MethodPost, "/api/v1/pwa/event", `{"event":"beforeinstallprompt","width":1440}`, "User-Agent", desktopUA)
	s.Require().Equal(http.StatusOK, rec.Code)

	var banner dto.PWABannerResponse
	s.decode(rec, &banner)
	s.False(banner.Visible)
	s.False(banner.Mobile)

	rec = s.do(http.MethodPost, "/api/v1/pwa/event", `{"event":"launch"}`, "User-Agent", desktopUA)
	s.Equal(http.StatusBadRequest, rec.Code)
}
