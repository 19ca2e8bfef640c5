package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"trattoria/internal/lib/logger/sl"
	appmiddleware "trattoria/internal/middleware"
	httprouters "trattoria/internal/transport/http"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Options struct {
	Host    string
	Port    string
	Timeout time.Duration
	// UploadsURL/UploadsDir раздача загруженных изображений галереи
	UploadsURL    string
	UploadsDir    string
	SessionSecret string
	SessionMaxAge int
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	opts    Options
}

func New(log *slog.Logger, opts Options, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	store := sessions.NewCookieStore([]byte(opts.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   opts.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmiddleware.PrometheusMetrics)

	if opts.Timeout > 0 {
		e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
			Timeout: opts.Timeout,
		}))
	}

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogLatency:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
			)

			return nil
		},
	}))

	mux := http.NewServeMux()
	err := statsviz.Register(mux)
	if err != nil {
		log.Info("Statsviz start with error", sl.Err(err))
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		opts:    opts,
	}
}

// Handler для тестов через httptest
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"), slog.String("addr", s.addr()))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(s.addr()); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", slog.String("op", op))

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) addr() string {
	return fmt.Sprintf("%s:%s", s.opts.Host, s.opts.Port)
}

func (s *Server) BuildRouters() {
	s.e.GET("/health", s.routers.HealthCheck)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if s.opts.UploadsURL != "" && s.opts.UploadsDir != "" {
		s.e.Static(s.opts.UploadsURL, s.opts.UploadsDir)
	}

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	swagger := s.e.Group("/swag")
	{
		swagger.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := s.e.Group("/api/v1")
	{
		api.GET("/restaurant", s.routers.GetRestaurant)
		api.PATCH("/restaurant", s.routers.UpdateRestaurant)

		menuGroup := api.Group("/menu")
		{
			menuGroup.GET("", s.routers.ListMenu)
			menuGroup.GET("/categories", s.routers.ListCategories)
			menuGroup.POST("", s.routers.CreateMenuItem)
			menuGroup.PATCH("/:id", s.routers.UpdateMenuItem)
			menuGroup.DELETE("/:id", s.routers.DeleteMenuItem)
		}

		galleryGroup := api.Group("/gallery")
		{
			galleryGroup.GET("", s.routers.ListGallery)
			galleryGroup.POST("", s.routers.AddGalleryImage)
			galleryGroup.POST("/upload", s.routers.UploadGalleryImage)
			galleryGroup.DELETE("/:id", s.routers.DeleteGalleryImage)
		}

		api.GET("/language", s.routers.GetLanguage)
		api.PUT("/language", s.routers.SetLanguage)

		pagesGroup := api.Group("/pages")
		{
			pagesGroup.GET("/home", s.routers.HomePage)
			pagesGroup.GET("/menu", s.routers.MenuPage)
			pagesGroup.GET("/gallery", s.routers.GalleryPage)
			pagesGroup.GET("/about", s.routers.AboutPage)
			pagesGroup.GET("/contact", s.routers.ContactPage)
		}

		pwaGroup := api.Group("/pwa")
		{
			pwaGroup.GET("/banner", s.routers.GetInstallBanner)
			pwaGroup.POST("/event", s.routers.InstallEvent)
			pwaGroup.POST("/install", s.routers.Install)
		}
	}
}
