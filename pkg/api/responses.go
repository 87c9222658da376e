package api

import (
	"github.com/parallax-dev/parallax/ent"
	"github.com/parallax-dev/parallax/pkg/cluster"
	"github.com/parallax-dev/parallax/pkg/runtime"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// HealthCheck is one component's health in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the GET /health payload.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// ClusterStatusResponse is the GET /api/cluster/status payload.
type ClusterStatusResponse struct {
	Enabled    bool               `json:"enabled"`
	InstanceID string             `json:"instanceId,omitempty"`
	LeaderID   string             `json:"leaderId,omitempty"`
	IsLeader   bool               `json:"isLeader"`
	Quorum     bool               `json:"quorum"`
	Nodes      []cluster.NodeInfo `json:"nodes,omitempty"`
}

// RuntimesResponse is the GET /api/runtimes payload.
type RuntimesResponse struct {
	Runtimes []runtime.RuntimeStatus `json:"runtimes"`
}

// PatternSummary is one entry in the GET /api/patterns payload.
type PatternSummary struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Roles   int    `json:"roles"`
	Steps   int    `json:"steps"`
}

// ExecutionSummary is one entry in the GET /api/executions payload.
type ExecutionSummary struct {
	ID        string `json:"id"`
	Pattern   string `json:"pattern"`
	State     string `json:"state"`
	StepIndex int    `json:"stepIndex"`
	Agents    int    `json:"agents"`
	StartedAt string `json:"startedAt"`
}

// CreatedTriggerResponse is the POST /api/triggers payload. Secret and
// webhook URL are only present for webhook triggers, and the secret only
// here: it is never readable again.
type CreatedTriggerResponse struct {
	Trigger    *ent.Trigger `json:"trigger"`
	Secret     string       `json:"secret,omitempty"`
	WebhookURL string       `json:"webhookUrl,omitempty"`
}

// WebhookAcceptedResponse is the POST /api/webhooks/:path payload.
type WebhookAcceptedResponse struct {
	TriggerID string `json:"triggerId"`
	Accepted  bool   `json:"accepted"`
}

// EventAcceptedResponse is the POST /api/events payload.
type EventAcceptedResponse struct {
	EventType string `json:"eventType"`
	Fired     int    `json:"fired"`
}
