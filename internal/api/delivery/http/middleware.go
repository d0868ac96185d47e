package http

import (
	"context"
	"strconv"
	"time"

	"presscraft/pkg/logger"
	"presscraft/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// PrometheusMiddleware records request counts and latencies per route template.
func PrometheusMiddleware(serviceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			metrics.HttpRequestsTotal.WithLabelValues(method, path, status, serviceName).Inc()
			metrics.HttpRequestDuration.WithLabelValues(method, path, serviceName).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// RequestContextMiddleware copies the X-Request-ID set by echo's RequestID
// middleware into the request context so services can log it.
func RequestContextMiddleware(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Request().Header.Get(echo.HeaderXRequestID)
			}
			if id != "" {
				ctx := context.WithValue(c.Request().Context(), logger.RequestIDKey{}, id)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			log.DebugContext(c.Request().Context(), "HTTP request",
				logger.StringField("method", c.Request().Method),
				logger.StringField("uri", c.Request().RequestURI),
			)
			return next(c)
		}
	}
}
