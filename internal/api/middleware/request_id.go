package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/JonWolf1234/current-rms-schedule/pkg/utils"
)

// RequestID attaches a unique request ID to every request, exposed to
// handlers via the echo context and to clients via the X-Request-ID
// header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			return next(c)
		}
	}
}

// RequestIDFrom returns the request ID injected by RequestID, generating
// one if the middleware did not run.
func RequestIDFrom(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}
