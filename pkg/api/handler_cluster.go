package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// clusterStatusHandler handles GET /api/cluster/status.
func (s *Server) clusterStatusHandler(c *echo.Context) error {
	resp := &ClusterStatusResponse{}
	if s.deps.Elector == nil {
		return c.JSON(http.StatusOK, resp)
	}
	resp.Enabled = true
	resp.InstanceID = s.deps.Elector.InstanceID()
	resp.LeaderID = s.deps.Elector.LeaderID()
	resp.IsLeader = s.deps.Elector.IsLeader()

	if s.deps.Monitor != nil {
		nodes, err := s.deps.Monitor.Nodes(c.Request().Context())
		if err != nil {
			s.logger.Warn("Failed to list cluster nodes", "error", err)
		} else {
			resp.Nodes = nodes
		}
		quorum, err := s.deps.Monitor.HasQuorum(c.Request().Context(), 1)
		if err == nil {
			resp.Quorum = quorum
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// runtimesHandler handles GET /api/runtimes.
func (s *Server) runtimesHandler(c *echo.Context) error {
	resp := &RuntimesResponse{}
	if s.deps.Federation != nil {
		resp.Runtimes = s.deps.Federation.Statuses()
	}
	return c.JSON(http.StatusOK, resp)
}
