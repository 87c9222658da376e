package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
)

// listPatternsHandler handles GET /api/patterns.
func (s *Server) listPatternsHandler(c *echo.Context) error {
	summaries := make([]PatternSummary, 0)
	for _, name := range s.deps.Registry.Names() {
		p := s.deps.Registry.Get(name)
		summaries = append(summaries, PatternSummary{
			Name:    p.Name,
			Version: p.Version,
			Roles:   len(p.Structure.Roles),
			Steps:   len(p.Workflow.Steps),
		})
	}
	return c.JSON(http.StatusOK, summaries)
}

// getPatternHandler handles GET /api/patterns/:name.
func (s *Server) getPatternHandler(c *echo.Context) error {
	p := s.deps.Registry.Get(c.Param("name"))
	if p == nil {
		return echo.NewHTTPError(http.StatusNotFound, "pattern not found")
	}
	return c.JSON(http.StatusOK, p)
}

// ExecuteRequest is the POST /api/executions request body.
type ExecuteRequest struct {
	Pattern string         `json:"pattern"`
	Input   map[string]any `json:"input,omitempty"`
}

// executeHandler handles POST /api/executions: it runs the pattern to
// completion and returns the workflow result.
func (s *Server) executeHandler(c *echo.Context) error {
	var req ExecuteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Pattern == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "pattern is required")
	}

	res, err := s.deps.Engine.Execute(c.Request().Context(), req.Pattern, req.Input)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// listExecutionsHandler handles GET /api/executions (currently running
// workflows only).
func (s *Server) listExecutionsHandler(c *echo.Context) error {
	summaries := make([]ExecutionSummary, 0)
	for _, exec := range s.deps.Engine.ActiveExecutions() {
		summaries = append(summaries, ExecutionSummary{
			ID:        exec.ID,
			Pattern:   exec.Pattern.Name,
			State:     string(exec.State()),
			StepIndex: exec.StepIndex(),
			Agents:    exec.AgentCount(),
			StartedAt: exec.StartedAt.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, summaries)
}
