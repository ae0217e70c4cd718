package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/JonWolf1234/current-rms-schedule/internal/api/middleware"
	"github.com/JonWolf1234/current-rms-schedule/internal/logging"
	"github.com/JonWolf1234/current-rms-schedule/pkg/models"
	"github.com/JonWolf1234/current-rms-schedule/pkg/utils"
)

var validate = validator.New()

// ScheduleRequest holds the query parameters of the schedule endpoint.
type ScheduleRequest struct {
	Start string `query:"start" validate:"required,datetime=2006-01-02"`
	End   string `query:"end" validate:"required,datetime=2006-01-02"`
}

// ScheduleAssembler is satisfied by *schedule.Assembler.
type ScheduleAssembler interface {
	Assemble(ctx context.Context, start, end string) (*models.ScheduleResponse, error)
}

// ScheduleHandler handles calendar schedule requests. Missing or
// malformed start/end parameters are rejected before any remote call is
// made.
func ScheduleHandler(assembler ScheduleAssembler) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := middleware.RequestIDFrom(c)
		logger := logging.LogWithRequestID(requestID)

		var req ScheduleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid query parameters",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			logger.Warn("Schedule request rejected", map[string]interface{}{
				"error": err.Error(),
			})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "start and end query parameters are required in YYYY-MM-DD format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		response, err := assembler.Assemble(c.Request().Context(), req.Start, req.End)
		if err != nil {
			logger.Error("Schedule assembly failed", map[string]interface{}{
				"error": err.Error(),
				"start": req.Start,
				"end":   req.End,
			})
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "failed to fetch schedule from Current RMS",
				Details:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Schedule request completed", map[string]interface{}{
			"jobs":            len(response.Jobs),
			"staff":           len(response.Staff),
			"source":          response.Source,
			"processing_time": utils.FormatDuration(time.Since(startTime)),
		})

		return c.JSON(http.StatusOK, response)
	}
}
