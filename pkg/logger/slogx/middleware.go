package slogx

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger logs every HTTP request with its method, path, status
// and duration through the global logger.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			logger := Default()

			ctx := c.Request().Context()
			method := slog.String("method", c.Request().Method)
			path := slog.String("path", c.Request().URL.Path)

			logger.Debug(ctx, "start handling request", method, path)

			err := next(c)

			durAttr := slog.Duration("duration", time.Since(start))
			status := slog.Int("status", c.Response().Status)

			if err != nil {
				logger.Error(ctx, "finish with error", method, path, durAttr, Err(err))
			} else {
				logger.Info(ctx, "finish success", method, path, status, durAttr)
			}

			return err
		}
	}
}
