package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/parallax-dev/parallax/pkg/schedule"
	"github.com/parallax-dev/parallax/pkg/trigger"
	"github.com/parallax-dev/parallax/pkg/workflow"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var schedValidation *schedule.ValidationError
	if errors.As(err, &schedValidation) {
		return echo.NewHTTPError(http.StatusBadRequest, schedValidation.Error())
	}
	var trigValidation *trigger.ValidationError
	if errors.As(err, &trigValidation) {
		return echo.NewHTTPError(http.StatusBadRequest, trigValidation.Error())
	}
	if errors.Is(err, schedule.ErrScheduleNotFound) || errors.Is(err, trigger.ErrTriggerNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, trigger.ErrTriggerDisabled) {
		return echo.NewHTTPError(http.StatusForbidden, "trigger is disabled")
	}
	if errors.Is(err, trigger.ErrBadSignature) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid signature")
	}

	var wfErr *workflow.Error
	if errors.As(err, &wfErr) {
		switch wfErr.Kind {
		case workflow.FailurePatternNotFound:
			return echo.NewHTTPError(http.StatusNotFound, wfErr.Error())
		case workflow.FailureNoRuntime:
			return echo.NewHTTPError(http.StatusServiceUnavailable, wfErr.Error())
		case workflow.FailureTimeout:
			return echo.NewHTTPError(http.StatusGatewayTimeout, wfErr.Error())
		default:
			return echo.NewHTTPError(http.StatusUnprocessableEntity, wfErr.Error())
		}
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
