package http

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger logs one line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			code := responseCode(c, err)
			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.String("route", c.Path()),
				slog.Int("status", code),
				slog.Duration("elapsed", time.Since(start)),
				slog.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			}

			if code >= 500 {
				logger.ErrorContext(c.Request().Context(), "request failed", attrs...)
			} else {
				logger.InfoContext(c.Request().Context(), "request served", attrs...)
			}
			return err
		}
	}
}
