package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/parallax-dev/parallax/pkg/trigger"
)

// createTriggerHandler handles POST /api/triggers. For webhook triggers the
// response carries the generated secret; it is never readable afterwards.
func (s *Server) createTriggerHandler(c *echo.Context) error {
	var spec trigger.Spec
	if err := c.Bind(&spec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	trig, secret, err := s.deps.Triggers.Create(c.Request().Context(), spec)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, &CreatedTriggerResponse{
		Trigger:    trig,
		Secret:     secret,
		WebhookURL: trigger.FormatWebhookURL(trig),
	})
}

// listTriggersHandler handles GET /api/triggers.
func (s *Server) listTriggersHandler(c *echo.Context) error {
	triggers, err := s.deps.Triggers.List(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, triggers)
}

// getTriggerHandler handles GET /api/triggers/:id.
func (s *Server) getTriggerHandler(c *echo.Context) error {
	trig, err := s.deps.Triggers.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, trig)
}

// updateTriggerHandler handles PUT /api/triggers/:id.
func (s *Server) updateTriggerHandler(c *echo.Context) error {
	var spec trigger.Spec
	if err := c.Bind(&spec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	trig, err := s.deps.Triggers.Update(c.Request().Context(), c.Param("id"), spec)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, trig)
}

// deleteTriggerHandler handles DELETE /api/triggers/:id.
func (s *Server) deleteTriggerHandler(c *echo.Context) error {
	if err := s.deps.Triggers.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// rotateTriggerSecretHandler handles POST /api/triggers/:id/rotate-secret.
func (s *Server) rotateTriggerSecretHandler(c *echo.Context) error {
	secret, err := s.deps.Triggers.RotateSecret(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"secret": secret})
}
