package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/parallax-dev/parallax/pkg/runtime"
)

// listAgentsHandler handles GET /api/agents. Optional query params narrow
// the result: status, type, role.
func (s *Server) listAgentsHandler(c *echo.Context) error {
	filter := runtime.ListFilter{
		Status: runtime.AgentStatus(c.QueryParam("status")),
		Type:   c.QueryParam("type"),
		Role:   c.QueryParam("role"),
	}
	agents, err := s.deps.Federation.List(c.Request().Context(), filter)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, agents)
}

// SendMessageRequest is the POST /api/agents/:id/message request body.
type SendMessageRequest struct {
	Message        string `json:"message"`
	ExpectResponse bool   `json:"expectResponse,omitempty"`
	TimeoutMs      int    `json:"timeoutMs,omitempty"`
}

// sendAgentMessageHandler handles POST /api/agents/:id/message.
func (s *Server) sendAgentMessageHandler(c *echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	opts := runtime.SendOptions{ExpectResponse: req.ExpectResponse}
	if req.TimeoutMs > 0 {
		opts.Timeout = time.Duration(req.TimeoutMs) * time.Millisecond
	}
	reply, err := s.deps.Federation.Send(c.Request().Context(), c.Param("id"), req.Message, opts)
	if err != nil {
		if errors.Is(err, runtime.ErrAgentNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "agent not found")
		}
		return mapServiceError(err)
	}
	if reply == nil {
		return c.NoContent(http.StatusAccepted)
	}
	return c.JSON(http.StatusOK, reply)
}

// agentLogsHandler handles GET /api/agents/:id/logs?tail=N.
func (s *Server) agentLogsHandler(c *echo.Context) error {
	tail := 0
	if v := c.QueryParam("tail"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid tail")
		}
		tail = n
	}
	lines, err := s.deps.Federation.Logs(c.Request().Context(), c.Param("id"), tail)
	if err != nil {
		if errors.Is(err, runtime.ErrAgentNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "agent not found")
		}
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"lines": lines})
}
