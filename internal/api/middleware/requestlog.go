package middleware

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// RequestLog writes one structured line per completed request. Every request
// gets an id: a client- or proxy-supplied X-Request-ID is kept for
// correlation, anything else gets a fresh UUID. The id is echoed in the
// response header and stashed on the context for handlers that want it.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			reqID := requestID(c)

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			log.Info("request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)

			return err
		}
	}
}

func requestID(c echo.Context) string {
	if id := c.Request().Header.Get(requestIDHeader); id != "" {
		return id
	}
	return uuid.NewString()
}
