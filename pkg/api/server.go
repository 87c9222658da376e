// Package api exposes the control-plane HTTP surface: health and cluster
// introspection, schedule and trigger management, webhook ingestion, and
// pattern execution.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/parallax-dev/parallax/ent"
	"github.com/parallax-dev/parallax/pkg/cluster"
	"github.com/parallax-dev/parallax/pkg/config"
	"github.com/parallax-dev/parallax/pkg/database"
	"github.com/parallax-dev/parallax/pkg/pattern"
	"github.com/parallax-dev/parallax/pkg/runtime"
	"github.com/parallax-dev/parallax/pkg/schedule"
	"github.com/parallax-dev/parallax/pkg/trigger"
	"github.com/parallax-dev/parallax/pkg/workflow"
)

// Dispatcher fires triggers from webhook deliveries and internal events.
// Satisfied by *trigger.Dispatcher.
type Dispatcher interface {
	HandleWebhook(ctx context.Context, path string, body []byte, signature string, payload map[string]any) (*ent.Trigger, error)
	EmitEvent(ctx context.Context, eventType string, payload map[string]any) (int, error)
}

// Deps carries everything the API server serves. Optional components
// (cluster, database) may be nil; their endpoints degrade accordingly.
type Deps struct {
	Config     *config.Config
	DB         *database.Client
	Elector    *cluster.Elector
	Monitor    *cluster.HealthMonitor
	Federation *runtime.Federation
	Registry   *pattern.Registry
	Engine     *workflow.Engine
	Schedules  *schedule.Service
	Poller     *schedule.Poller
	Triggers   *trigger.Service
	Dispatcher Dispatcher
	Logger     *slog.Logger
}

// Server is the control-plane HTTP server.
type Server struct {
	deps   Deps
	logger *slog.Logger
	echo   *echo.Echo
	http   *http.Server
	hub    *eventHub
}

// NewServer creates the API server and registers all routes.
func NewServer(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	s := &Server{
		deps:   deps,
		logger: logger,
		echo:   e,
		hub:    newEventHub(logger),
	}

	e.Use(requestLogger(logger))
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.GET("/api/cluster/status", s.clusterStatusHandler)
	e.GET("/api/runtimes", s.runtimesHandler)

	e.GET("/api/patterns", s.listPatternsHandler)
	e.GET("/api/patterns/:name", s.getPatternHandler)
	e.POST("/api/executions", s.executeHandler)
	e.GET("/api/executions", s.listExecutionsHandler)

	e.GET("/api/agents", s.listAgentsHandler)
	e.POST("/api/agents/:id/message", s.sendAgentMessageHandler)
	e.GET("/api/agents/:id/logs", s.agentLogsHandler)

	e.POST("/api/schedules", s.createScheduleHandler)
	e.GET("/api/schedules", s.listSchedulesHandler)
	e.GET("/api/schedules/:id", s.getScheduleHandler)
	e.PUT("/api/schedules/:id", s.updateScheduleHandler)
	e.DELETE("/api/schedules/:id", s.deleteScheduleHandler)
	e.GET("/api/schedules/:id/runs", s.listScheduleRunsHandler)
	e.POST("/api/schedules/:id/trigger", s.triggerScheduleHandler)

	e.POST("/api/triggers", s.createTriggerHandler)
	e.GET("/api/triggers", s.listTriggersHandler)
	e.GET("/api/triggers/:id", s.getTriggerHandler)
	e.PUT("/api/triggers/:id", s.updateTriggerHandler)
	e.DELETE("/api/triggers/:id", s.deleteTriggerHandler)
	e.POST("/api/triggers/:id/rotate-secret", s.rotateTriggerSecretHandler)

	e.POST("/api/webhooks/:path", s.webhookHandler)
	e.POST("/api/events", s.emitEventHandler)

	e.GET("/ws", s.websocketHandler)

	return s
}

// Start begins serving and streaming engine events. It returns immediately;
// listen errors surface on the returned channel.
func (s *Server) Start(ctx context.Context) <-chan error {
	cfg := s.deps.Config.Server
	s.http = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.echo,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if s.deps.Engine != nil {
		go s.hub.run(ctx, s.deps.Engine.Events())
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("API server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	return errCh
}

// Stop drains in-flight requests within the configured shutdown timeout.
func (s *Server) Stop() error {
	if s.http == nil {
		return nil
	}
	timeout := s.deps.Config.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	s.hub.closeAll()
	return s.http.Shutdown(ctx)
}
