// Package runtime defines the agent runtime provider contract and the
// federation that presents many registered providers as one. Providers are
// unaware of workflows: they expose primitive agent lifecycle and I/O only.
package runtime

import (
	"encoding/json"
	"time"
)

// AgentStatus is the lifecycle state of an agent instance.
type AgentStatus string

// Agent lifecycle states.
const (
	StatusPending        AgentStatus = "pending"
	StatusStarting       AgentStatus = "starting"
	StatusAuthenticating AgentStatus = "authenticating"
	StatusReady          AgentStatus = "ready"
	StatusIdle           AgentStatus = "idle"
	StatusBusy           AgentStatus = "busy"
	StatusWaiting        AgentStatus = "waiting"
	StatusError          AgentStatus = "error"
	StatusStopping       AgentStatus = "stopping"
	StatusStopped        AgentStatus = "stopped"
)

// Provider event types, forwarded over the event stream.
const (
	EventAgentStarted   = "agent_started"
	EventAgentReady     = "agent_ready"
	EventAgentStopped   = "agent_stopped"
	EventAgentError     = "agent_error"
	EventMessage        = "message"
	EventQuestion       = "question"
	EventLoginRequired  = "login_required"
	EventBlockingPrompt = "blocking_prompt"

	// Federation-level events, emitted on provider health transitions.
	EventRuntimeHealthy   = "runtime_healthy"
	EventRuntimeUnhealthy = "runtime_unhealthy"
)

// AgentConfig describes an agent to spawn.
type AgentConfig struct {
	Role         string         `json:"role,omitempty"`
	Type         string         `json:"type,omitempty"`
	Name         string         `json:"name,omitempty"`
	Capabilities []string       `json:"capabilities,omitempty"`
	Expertise    []string       `json:"expertise,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// AgentHandle identifies a spawned agent and its declared surface.
type AgentHandle struct {
	ID             string      `json:"id"`
	Status         AgentStatus `json:"status"`
	Endpoint       string      `json:"endpoint,omitempty"`
	Capabilities   []string    `json:"capabilities,omitempty"`
	Role           string      `json:"role,omitempty"`
	Type           string      `json:"type,omitempty"`
	Runtime        string      `json:"runtime,omitempty"` // stamped by the federation
	StartedAt      time.Time   `json:"startedAt,omitempty"`
	LastActivityAt time.Time   `json:"lastActivityAt,omitempty"`
}

// AgentMessage is one message produced by (or delivered to) an agent.
type AgentMessage struct {
	ID        string         `json:"id,omitempty"`
	AgentID   string         `json:"agentId,omitempty"`
	Type      string         `json:"type,omitempty"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Timestamp time.Time      `json:"timestamp,omitempty"`
}

// AgentMetrics are point-in-time diagnostics for one agent.
type AgentMetrics struct {
	AgentID          string        `json:"agentId"`
	MessagesIn       int           `json:"messagesIn"`
	MessagesOut      int           `json:"messagesOut"`
	Uptime           time.Duration `json:"uptime"`
	CPUPercent       float64       `json:"cpuPercent,omitempty"`
	MemoryBytes      int64         `json:"memoryBytes,omitempty"`
	LastActivityAt   time.Time     `json:"lastActivityAt,omitempty"`
	TasksCompleted   int           `json:"tasksCompleted,omitempty"`
	CurrentTaskSince time.Time     `json:"currentTaskSince,omitempty"`
}

// HealthStatus is the result of a provider health check.
type HealthStatus struct {
	Healthy      bool   `json:"healthy"`
	Message      string `json:"message,omitempty"`
	ActiveAgents int    `json:"activeAgents,omitempty"`
}

// ListFilter narrows List results. Capabilities is a subset match: every
// listed capability must be declared by the agent.
type ListFilter struct {
	Status       AgentStatus
	Type         string
	Role         string
	Capabilities []string
}

// Matches reports whether the handle satisfies the filter.
func (f ListFilter) Matches(h *AgentHandle) bool {
	if f.Status != "" && h.Status != f.Status {
		return false
	}
	if f.Type != "" && h.Type != f.Type {
		return false
	}
	if f.Role != "" && h.Role != f.Role {
		return false
	}
	for _, want := range f.Capabilities {
		found := false
		for _, have := range h.Capabilities {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SendOptions controls message delivery.
type SendOptions struct {
	ExpectResponse bool
	Timeout        time.Duration
}

// StopOptions controls agent termination.
type StopOptions struct {
	Force   bool
	Timeout time.Duration
}

// Event is one provider event frame. Runtime identifies the originating
// provider once the frame has passed through the federation.
type Event struct {
	Type      string          `json:"event"`
	AgentID   string          `json:"agentId,omitempty"`
	Runtime   string          `json:"runtime,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}
