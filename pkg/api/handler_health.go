package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/parallax-dev/parallax/pkg/version"
)

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only the control plane's own components (database, runtimes) are checked;
// agent runtimes being down degrades rather than fails the service.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if s.deps.DB != nil {
		if _, err := s.deps.DB.Health(reqCtx); err != nil {
			status = healthStatusUnhealthy
			checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
		} else {
			checks["database"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.deps.Federation != nil {
		healthy := 0
		total := 0
		for _, rt := range s.deps.Federation.Statuses() {
			total++
			if rt.Healthy {
				healthy++
			}
		}
		switch {
		case total == 0:
			checks["runtimes"] = HealthCheck{Status: healthStatusDegraded, Message: "no runtimes registered"}
		case healthy == 0:
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["runtimes"] = HealthCheck{Status: healthStatusDegraded, Message: "no healthy runtimes"}
		default:
			checks["runtimes"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.Full(),
		Checks:  checks,
	})
}
