package middleware

import (
	"strconv"
	"time"

	"trattoria/internal/metrics"

	"github.com/labstack/echo/v4"
)

// PrometheusMetrics считает запросы по шаблону маршрута, а не по сырому URI,
// чтобы id позиций меню не раздували кардинальность.
func PrometheusMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().URL.Path == "/metrics" {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			// статус выставит обработчик ошибок echo, а он вызывается позже
			c.Error(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request().Method,
			path,
			strconv.Itoa(c.Response().Status),
		).Inc()

		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request().Method,
			path,
		).Observe(time.Since(start).Seconds())

		return nil
	}
}
