package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/JonWolf1234/current-rms-schedule/internal/api/middleware"
	"github.com/JonWolf1234/current-rms-schedule/internal/logging"
)

// RemoteProber is the slice of the Current RMS client the connectivity
// probe needs.
type RemoteProber interface {
	Get(ctx context.Context, path string, query url.Values) (map[string]interface{}, error)
}

// TestCurrentHandler sanity-checks connectivity to the Current RMS API by
// requesting a single opportunity. Failures come back as ok:false with
// details rather than an error status; the endpoint exists to report
// reachability, not to be reachable itself.
func TestCurrentHandler(prober RemoteProber) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestIDFrom(c)
		logger := logging.LogWithRequestID(requestID)

		query := url.Values{}
		query.Set("page", "1")
		query.Set("per_page", "1")

		envelope, err := prober.Get(c.Request().Context(), "/opportunities", query)
		if err != nil {
			logger.Warn("Current RMS connectivity probe failed", map[string]interface{}{
				"error": err.Error(),
			})
			return c.JSON(http.StatusOK, map[string]interface{}{
				"ok":      false,
				"details": err.Error(),
			})
		}

		result := map[string]interface{}{"ok": true}
		if raw, ok := envelope["opportunities"].([]interface{}); ok {
			result["opportunities_count"] = len(raw)
			if len(raw) > 0 {
				result["sample"] = raw[0]
			}
		}
		if meta, ok := envelope["meta"].(map[string]interface{}); ok {
			if total, ok := meta["total_row_count"]; ok {
				result["total_row_count"] = total
			}
		}

		return c.JSON(http.StatusOK, result)
	}
}
