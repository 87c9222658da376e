package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/parallax-dev/parallax/pkg/schedule"
)

// createScheduleHandler handles POST /api/schedules.
func (s *Server) createScheduleHandler(c *echo.Context) error {
	var spec schedule.Spec
	if err := c.Bind(&spec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	sched, err := s.deps.Schedules.Create(c.Request().Context(), spec)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, sched)
}

// listSchedulesHandler handles GET /api/schedules.
func (s *Server) listSchedulesHandler(c *echo.Context) error {
	schedules, err := s.deps.Schedules.List(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, schedules)
}

// getScheduleHandler handles GET /api/schedules/:id.
func (s *Server) getScheduleHandler(c *echo.Context) error {
	sched, err := s.deps.Schedules.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, sched)
}

// updateScheduleHandler handles PUT /api/schedules/:id.
func (s *Server) updateScheduleHandler(c *echo.Context) error {
	var spec schedule.Spec
	if err := c.Bind(&spec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	sched, err := s.deps.Schedules.Update(c.Request().Context(), c.Param("id"), spec)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, sched)
}

// deleteScheduleHandler handles DELETE /api/schedules/:id.
func (s *Server) deleteScheduleHandler(c *echo.Context) error {
	if err := s.deps.Schedules.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// listScheduleRunsHandler handles GET /api/schedules/:id/runs?limit=N.
func (s *Server) listScheduleRunsHandler(c *echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}
	runs, err := s.deps.Schedules.Runs(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, runs)
}

// triggerScheduleHandler handles POST /api/schedules/:id/trigger: fire the
// schedule immediately, outside its cadence.
func (s *Server) triggerScheduleHandler(c *echo.Context) error {
	if s.deps.Poller == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "scheduler is disabled")
	}
	run, err := s.deps.Poller.TriggerSchedule(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, run)
}
