package cluster

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// Node status classifications.
const (
	NodeHealthy   = "healthy"
	NodeUnhealthy = "unhealthy"
	NodeUnknown   = "unknown"
)

// NodeInfo is the per-node heartbeat record written to the state bus under
// "node:<instanceId>".
type NodeInfo struct {
	InstanceID    string             `json:"instanceId"`
	Hostname      string             `json:"hostname"`
	Port          int                `json:"port"`
	StartedAt     time.Time          `json:"startedAt"`
	LastHeartbeat time.Time          `json:"lastHeartbeat"`
	IsLeader      bool               `json:"isLeader"`
	Status        string             `json:"status"`
	Metrics       map[string]float64 `json:"metrics,omitempty"`
}

// HealthMonitor writes this node's heartbeat and exposes the cluster
// liveness view. Heartbeat keys carry TTL 2×timeout so crashed nodes
// disappear on their own.
type HealthMonitor struct {
	state    *StateBus
	elector  *Elector
	cfg      Config
	hostname string
	port     int

	startedAt time.Time

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewHealthMonitor creates a health monitor for this node.
func NewHealthMonitor(state *StateBus, elector *Elector, cfg Config, port int) *HealthMonitor {
	return &HealthMonitor{
		state:    state,
		elector:  elector,
		cfg:      cfg,
		hostname: resolveInstanceID(),
		port:     port,
	}
}

// Start launches the heartbeat loop.
func (m *HealthMonitor) Start(ctx context.Context) {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	m.running = true
	m.startedAt = time.Now().UTC()
	loopCtx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})
	m.mu.Unlock()

	go func() {
		defer close(m.done)
		m.run(loopCtx)
	}()
	slog.Info("Health monitor started",
		"instance_id", m.cfg.InstanceID,
		"interval", m.cfg.HeartbeatInterval,
		"timeout", m.cfg.HeartbeatTimeout)
	_ = ctx
}

// Stop terminates the heartbeat loop and removes this node's record.
func (m *HealthMonitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	cancel := m.cancel
	done := m.done
	m.mu.Unlock()

	cancel()
	<-done

	ctx, cancelCleanup := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelCleanup()
	if _, err := m.state.Delete(ctx, m.nodeKey()); err != nil {
		slog.Warn("Failed to remove node heartbeat", "error", err)
	}
	slog.Info("Health monitor stopped", "instance_id", m.cfg.InstanceID)
}

func (m *HealthMonitor) nodeKey() string {
	return "node:" + m.cfg.InstanceID
}

func (m *HealthMonitor) run(ctx context.Context) {
	m.beat(ctx)

	ticker := time.NewTicker(m.cfg.HeartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.beat(ctx)
		}
	}
}

func (m *HealthMonitor) beat(ctx context.Context) {
	info := NodeInfo{
		InstanceID:    m.cfg.InstanceID,
		Hostname:      m.hostname,
		Port:          m.port,
		StartedAt:     m.startedAt,
		LastHeartbeat: time.Now().UTC(),
		IsLeader:      m.elector.IsLeader(),
		Status:        NodeHealthy,
	}
	if err := m.state.Set(ctx, m.nodeKey(), info, 2*m.cfg.HeartbeatTimeout); err != nil {
		slog.Warn("Heartbeat write failed", "instance_id", m.cfg.InstanceID, "error", err)
	}
}

// Nodes enumerates every node heartbeat and classifies liveness: a node is
// healthy iff now − lastHeartbeat ≤ timeout.
func (m *HealthMonitor) Nodes(ctx context.Context) ([]NodeInfo, error) {
	keys, err := m.state.Keys(ctx, "node:*")
	if err != nil {
		return nil, err
	}
	raw, err := m.state.GetMany(ctx, keys)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	nodes := make([]NodeInfo, 0, len(raw))
	for key, data := range raw {
		var info NodeInfo
		if err := json.Unmarshal(data, &info); err != nil {
			slog.Warn("Malformed node heartbeat", "key", key, "error", err)
			continue
		}
		if now.Sub(info.LastHeartbeat) <= m.cfg.HeartbeatTimeout {
			info.Status = NodeHealthy
		} else {
			info.Status = NodeUnhealthy
		}
		nodes = append(nodes, info)
	}
	return nodes, nil
}

// HasQuorum reports whether at least min nodes are healthy AND a leader
// exists.
func (m *HealthMonitor) HasQuorum(ctx context.Context, min int) (bool, error) {
	nodes, err := m.Nodes(ctx)
	if err != nil {
		return false, err
	}
	healthy := 0
	for _, n := range nodes {
		if n.Status == NodeHealthy {
			healthy++
		}
	}
	return healthy >= min && m.elector.LeaderID() != "", nil
}
