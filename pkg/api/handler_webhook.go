package api

import (
	"encoding/json"
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/parallax-dev/parallax/pkg/trigger"
)

// webhookHandler handles POST /api/webhooks/:path. The signature is
// verified against the raw request body before any processing; acceptance
// does not wait for the triggered workflow.
func (s *Server) webhookHandler(c *echo.Context) error {
	maxBody := int64(1 << 20)
	if s.deps.Config != nil && s.deps.Config.Webhooks != nil && s.deps.Config.Webhooks.MaxBodyBytes > 0 {
		maxBody = s.deps.Config.Webhooks.MaxBodyBytes
	}
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBody+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read body")
	}
	if int64(len(body)) > maxBody {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "body too large")
	}

	signature := ""
	for _, header := range trigger.SignatureHeaders {
		if v := c.Request().Header.Get(header); v != "" {
			signature = v
			break
		}
	}

	var payload map[string]any
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "body must be a JSON object")
		}
	}

	trig, err := s.deps.Dispatcher.HandleWebhook(c.Request().Context(), c.Param("path"), body, signature, payload)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, &WebhookAcceptedResponse{
		TriggerID: trig.ID,
		Accepted:  true,
	})
}

// EmitEventRequest is the POST /api/events request body.
type EmitEventRequest struct {
	EventType string         `json:"eventType"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// emitEventHandler handles POST /api/events: offer an internal event to
// every matching event trigger.
func (s *Server) emitEventHandler(c *echo.Context) error {
	var req EmitEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.EventType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "eventType is required")
	}
	fired, err := s.deps.Dispatcher.EmitEvent(c.Request().Context(), req.EventType, req.Payload)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, &EventAcceptedResponse{
		EventType: req.EventType,
		Fired:     fired,
	})
}
