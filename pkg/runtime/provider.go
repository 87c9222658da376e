package runtime

import (
	"context"
	"errors"
)

// Provider kinds understood by the federation. Concrete behavior differences
// live behind the Provider interface; the type is informational.
const (
	ProviderTypeLocal     = "local"
	ProviderTypeContainer = "container"
	ProviderTypeCluster   = "cluster"
)

// Sentinel errors shared by all providers.
var (
	// ErrAgentNotFound indicates the agent id is unknown to the provider.
	ErrAgentNotFound = errors.New("agent not found")
	// ErrNoHealthyRuntime indicates no registered provider can place an agent.
	ErrNoHealthyRuntime = errors.New("no healthy runtime available")
)

// UnsubscribeFunc releases a message subscription. It must be called on all
// exit paths of the subscriber.
type UnsubscribeFunc func()

// Provider is the contract every concrete agent runtime implements
// (local process, container, cluster). All non-trivial calls may block on
// I/O and honor context cancellation.
type Provider interface {
	// Spawn creates an agent instance and returns its handle.
	Spawn(ctx context.Context, cfg AgentConfig) (*AgentHandle, error)

	// Stop terminates an agent. Stopping an already-stopped or unknown
	// agent succeeds (idempotent).
	Stop(ctx context.Context, id string, opts StopOptions) error

	// Get returns the agent handle, or ErrAgentNotFound.
	Get(ctx context.Context, id string) (*AgentHandle, error)

	// List returns agents matching the filter.
	List(ctx context.Context, filter ListFilter) ([]*AgentHandle, error)

	// Send delivers a message with at-most-once semantics. When
	// opts.ExpectResponse is set it blocks until a reply or timeout.
	Send(ctx context.Context, id, message string, opts SendOptions) (*AgentMessage, error)

	// Subscribe streams the agent's outbound messages to fn. The returned
	// handle must be released on all exit paths.
	Subscribe(ctx context.Context, id string, fn func(AgentMessage)) (UnsubscribeFunc, error)

	// Logs returns the agent's recent log lines (tail <= 0 means provider
	// default).
	Logs(ctx context.Context, id string, tail int) ([]string, error)

	// Metrics returns point-in-time agent diagnostics.
	Metrics(ctx context.Context, id string) (*AgentMetrics, error)

	// HealthCheck probes the provider itself.
	HealthCheck(ctx context.Context) (*HealthStatus, error)

	// Events returns the provider's event stream (agent lifecycle,
	// messages, questions, auth prompts).
	Events() <-chan Event
}
