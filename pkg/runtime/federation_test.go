package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider is an in-memory Provider for federation tests.
type stubProvider struct {
	mu       sync.Mutex
	prefix   string
	seq      int
	agents   map[string]*AgentHandle
	spawnErr error
	listErr  error
	events   chan Event
}

func newStubProvider(prefix string) *stubProvider {
	return &stubProvider{
		prefix: prefix,
		agents: make(map[string]*AgentHandle),
		events: make(chan Event, 16),
	}
}

func (p *stubProvider) Spawn(_ context.Context, cfg AgentConfig) (*AgentHandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.spawnErr != nil {
		return nil, p.spawnErr
	}
	p.seq++
	h := &AgentHandle{
		ID:        fmt.Sprintf("%s-%d", p.prefix, p.seq),
		Status:    StatusIdle,
		Role:      cfg.Role,
		Type:      cfg.Type,
		StartedAt: time.Now().UTC(),
	}
	p.agents[h.ID] = h
	return h, nil
}

func (p *stubProvider) Stop(_ context.Context, id string, _ StopOptions) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if h, ok := p.agents[id]; ok {
		h.Status = StatusStopped
	}
	return nil
}

func (p *stubProvider) Get(_ context.Context, id string) (*AgentHandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	h, ok := p.agents[id]
	if !ok {
		return nil, ErrAgentNotFound
	}
	cp := *h
	return &cp, nil
}

func (p *stubProvider) List(_ context.Context, filter ListFilter) ([]*AgentHandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.listErr != nil {
		return nil, p.listErr
	}
	var out []*AgentHandle
	for _, h := range p.agents {
		if filter.Matches(h) {
			cp := *h
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (p *stubProvider) Send(_ context.Context, id, message string, opts SendOptions) (*AgentMessage, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.agents[id]; !ok {
		return nil, ErrAgentNotFound
	}
	if opts.ExpectResponse {
		return &AgentMessage{AgentID: id, Content: "echo: " + message}, nil
	}
	return nil, nil
}

func (p *stubProvider) Subscribe(_ context.Context, id string, _ func(AgentMessage)) (UnsubscribeFunc, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.agents[id]; !ok {
		return nil, ErrAgentNotFound
	}
	return func() {}, nil
}

func (p *stubProvider) Logs(_ context.Context, id string, _ int) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.agents[id]; !ok {
		return nil, ErrAgentNotFound
	}
	return []string{"started"}, nil
}

func (p *stubProvider) Metrics(_ context.Context, id string) (*AgentMetrics, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.agents[id]; !ok {
		return nil, ErrAgentNotFound
	}
	return &AgentMetrics{AgentID: id}, nil
}

func (p *stubProvider) HealthCheck(context.Context) (*HealthStatus, error) {
	return &HealthStatus{Healthy: true}, nil
}

func (p *stubProvider) Events() <-chan Event {
	return p.events
}

func (f *Federation) setHealthy(t *testing.T, name string, healthy bool) {
	t.Helper()
	f.mu.RLock()
	rt, ok := f.runtimes[name]
	f.mu.RUnlock()
	require.True(t, ok)
	rt.healthy.Store(healthy)
}

// lifecycleProvider tracks the optional Start/Close lifecycle the
// federation drives for connection-owning providers.
type lifecycleProvider struct {
	*stubProvider
	mu      sync.Mutex
	started bool
	closed  bool
}

func (p *lifecycleProvider) Start(context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started = true
}

func (p *lifecycleProvider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

func TestFederation_StartsAndClosesProviders(t *testing.T) {
	fed := NewFederation()
	lp := &lifecycleProvider{stubProvider: newStubProvider("a")}
	require.NoError(t, fed.Register("a", ProviderTypeContainer, lp, 0))

	fed.Start(context.Background())
	lp.mu.Lock()
	started := lp.started
	lp.mu.Unlock()
	assert.True(t, started, "federation start must begin the provider event stream")

	// A provider registered after start is started too.
	late := &lifecycleProvider{stubProvider: newStubProvider("b")}
	require.NoError(t, fed.Register("b", ProviderTypeContainer, late, 1))
	late.mu.Lock()
	lateStarted := late.started
	late.mu.Unlock()
	assert.True(t, lateStarted)

	fed.Stop()
	for _, p := range []*lifecycleProvider{lp, late} {
		p.mu.Lock()
		closed := p.closed
		p.mu.Unlock()
		assert.True(t, closed, "federation stop must close provider connections")
	}
}

func TestFederation_RegisterDuplicate(t *testing.T) {
	fed := NewFederation()
	require.NoError(t, fed.Register("a", ProviderTypeLocal, newStubProvider("a"), 0))
	err := fed.Register("a", ProviderTypeLocal, newStubProvider("a"), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestFederation_SpawnPriorityOrder(t *testing.T) {
	ctx := context.Background()
	fed := NewFederation()
	primary := newStubProvider("primary")
	backup := newStubProvider("backup")
	require.NoError(t, fed.Register("backup", ProviderTypeContainer, backup, 10))
	require.NoError(t, fed.Register("primary", ProviderTypeLocal, primary, 0))

	h, err := fed.Spawn(ctx, AgentConfig{Role: "lead"}, "")
	require.NoError(t, err)
	assert.Equal(t, "primary", h.Runtime)
	assert.Equal(t, "primary-1", h.ID)

	// Unhealthy primary drops out of the placement order.
	fed.setHealthy(t, "primary", false)
	h, err = fed.Spawn(ctx, AgentConfig{Role: "lead"}, "")
	require.NoError(t, err)
	assert.Equal(t, "backup", h.Runtime)
}

func TestFederation_SpawnPreferredRuntime(t *testing.T) {
	ctx := context.Background()
	fed := NewFederation()
	require.NoError(t, fed.Register("primary", ProviderTypeLocal, newStubProvider("primary"), 0))
	require.NoError(t, fed.Register("special", ProviderTypeCluster, newStubProvider("special"), 10))

	// Preference beats priority.
	h, err := fed.Spawn(ctx, AgentConfig{Role: "lead"}, "special")
	require.NoError(t, err)
	assert.Equal(t, "special", h.Runtime)

	// An unhealthy preference falls back to priority order.
	fed.setHealthy(t, "special", false)
	h, err = fed.Spawn(ctx, AgentConfig{Role: "lead"}, "special")
	require.NoError(t, err)
	assert.Equal(t, "primary", h.Runtime)
}

func TestFederation_SpawnFailover(t *testing.T) {
	ctx := context.Background()
	fed := NewFederation()
	broken := newStubProvider("broken")
	broken.spawnErr = errors.New("out of capacity")
	working := newStubProvider("working")
	require.NoError(t, fed.Register("broken", ProviderTypeLocal, broken, 0))
	require.NoError(t, fed.Register("working", ProviderTypeLocal, working, 1))

	h, err := fed.Spawn(ctx, AgentConfig{Role: "lead"}, "")
	require.NoError(t, err)
	assert.Equal(t, "working", h.Runtime)

	working.spawnErr = errors.New("also down")
	_, err = fed.Spawn(ctx, AgentConfig{Role: "lead"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all candidate runtimes failed")
}

func TestFederation_SpawnNoRuntimes(t *testing.T) {
	fed := NewFederation()
	_, err := fed.Spawn(context.Background(), AgentConfig{Role: "lead"}, "")
	assert.ErrorIs(t, err, ErrNoHealthyRuntime)
}

func TestFederation_RoutesByIndex(t *testing.T) {
	ctx := context.Background()
	fed := NewFederation()
	a := newStubProvider("a")
	b := newStubProvider("b")
	require.NoError(t, fed.Register("a", ProviderTypeLocal, a, 0))
	require.NoError(t, fed.Register("b", ProviderTypeLocal, b, 1))

	h, err := fed.Spawn(ctx, AgentConfig{Role: "lead"}, "b")
	require.NoError(t, err)

	got, err := fed.Get(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Runtime)

	msg, err := fed.Send(ctx, h.ID, "ping", SendOptions{ExpectResponse: true})
	require.NoError(t, err)
	assert.Equal(t, "echo: ping", msg.Content)

	unsub, err := fed.Subscribe(ctx, h.ID, func(AgentMessage) {})
	require.NoError(t, err)
	unsub()

	logs, err := fed.Logs(ctx, h.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"started"}, logs)

	metrics, err := fed.Metrics(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, h.ID, metrics.AgentID)
}

func TestFederation_GetBackfillsIndex(t *testing.T) {
	ctx := context.Background()
	fed := NewFederation()
	a := newStubProvider("a")
	require.NoError(t, fed.Register("a", ProviderTypeLocal, a, 0))

	// Spawned directly on the provider, so the federation has no index entry.
	orphan, err := a.Spawn(ctx, AgentConfig{Role: "lead"})
	require.NoError(t, err)

	got, err := fed.Get(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Runtime)

	// The probe backfilled the index, so Send now routes without probing.
	_, err = fed.Send(ctx, orphan.ID, "hello", SendOptions{ExpectResponse: true})
	assert.NoError(t, err)
}

func TestFederation_GetUnknown(t *testing.T) {
	fed := NewFederation()
	require.NoError(t, fed.Register("a", ProviderTypeLocal, newStubProvider("a"), 0))

	_, err := fed.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrAgentNotFound)

	_, err = fed.Subscribe(context.Background(), "nope", func(AgentMessage) {})
	assert.ErrorIs(t, err, ErrAgentNotFound)
}

func TestFederation_StopAgent(t *testing.T) {
	ctx := context.Background()
	fed := NewFederation()
	a := newStubProvider("a")
	require.NoError(t, fed.Register("a", ProviderTypeLocal, a, 0))

	h, err := fed.Spawn(ctx, AgentConfig{Role: "lead"}, "")
	require.NoError(t, err)

	require.NoError(t, fed.StopAgent(ctx, h.ID, StopOptions{}))
	got, err := a.Get(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusStopped, got.Status)

	// Unknown id is idempotent.
	assert.NoError(t, fed.StopAgent(ctx, "nope", StopOptions{}))
}

func TestFederation_ListMergesRuntimes(t *testing.T) {
	ctx := context.Background()
	fed := NewFederation()
	a := newStubProvider("a")
	b := newStubProvider("b")
	broken := newStubProvider("broken")
	broken.listErr = errors.New("unreachable")
	require.NoError(t, fed.Register("a", ProviderTypeLocal, a, 0))
	require.NoError(t, fed.Register("b", ProviderTypeLocal, b, 1))
	require.NoError(t, fed.Register("broken", ProviderTypeLocal, broken, 2))

	_, err := fed.Spawn(ctx, AgentConfig{Role: "lead"}, "a")
	require.NoError(t, err)
	_, err = fed.Spawn(ctx, AgentConfig{Role: "worker"}, "b")
	require.NoError(t, err)

	agents, err := fed.List(ctx, ListFilter{})
	require.NoError(t, err)
	require.Len(t, agents, 2, "a failing provider is skipped, not fatal")

	runtimes := map[string]bool{}
	for _, h := range agents {
		runtimes[h.Runtime] = true
	}
	assert.Equal(t, map[string]bool{"a": true, "b": true}, runtimes)

	leads, err := fed.List(ctx, ListFilter{Role: "lead"})
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "a", leads[0].Runtime)
}

func TestFederation_Statuses(t *testing.T) {
	fed := NewFederation()
	require.NoError(t, fed.Register("beta", ProviderTypeContainer, newStubProvider("b"), 5))
	require.NoError(t, fed.Register("alpha", ProviderTypeLocal, newStubProvider("a"), 0))
	fed.setHealthy(t, "beta", false)

	statuses := fed.Statuses()
	require.Len(t, statuses, 2)
	assert.Equal(t, "alpha", statuses[0].Name)
	assert.True(t, statuses[0].Healthy)
	assert.Equal(t, "beta", statuses[1].Name)
	assert.False(t, statuses[1].Healthy)
	assert.Equal(t, ProviderTypeContainer, statuses[1].Type)
}
