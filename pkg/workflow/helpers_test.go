package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/parallax-dev/parallax/pkg/pattern"
	"github.com/parallax-dev/parallax/pkg/runtime"
)

// fakeProvider is an in-memory runtime.Provider. Replies are produced by
// replyFn; sends and stops are recorded for assertions.
type fakeProvider struct {
	mu      sync.Mutex
	seq     int
	agents  map[string]*runtime.AgentHandle
	stopped map[string]bool
	sent    []fakeSend
	subs    map[string][]func(runtime.AgentMessage)
	events  chan runtime.Event

	spawnErr error
	replyFn  func(agent *runtime.AgentHandle, message string) (string, error)
}

type fakeSend struct {
	AgentID string
	Message string
	Expect  bool
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		agents:  make(map[string]*runtime.AgentHandle),
		stopped: make(map[string]bool),
		subs:    make(map[string][]func(runtime.AgentMessage)),
		events:  make(chan runtime.Event, 16),
	}
}

func (p *fakeProvider) Spawn(ctx context.Context, cfg runtime.AgentConfig) (*runtime.AgentHandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.spawnErr != nil {
		return nil, p.spawnErr
	}
	p.seq++
	h := &runtime.AgentHandle{
		ID:           fmt.Sprintf("agent-%d", p.seq),
		Status:       runtime.StatusIdle,
		Role:         cfg.Role,
		Type:         cfg.Type,
		Capabilities: cfg.Capabilities,
		StartedAt:    time.Now(),
	}
	p.agents[h.ID] = h
	return h, nil
}

func (p *fakeProvider) Stop(ctx context.Context, id string, opts runtime.StopOptions) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if h, ok := p.agents[id]; ok {
		h.Status = runtime.StatusStopped
	}
	p.stopped[id] = true
	return nil
}

func (p *fakeProvider) Get(ctx context.Context, id string) (*runtime.AgentHandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	h, ok := p.agents[id]
	if !ok {
		return nil, runtime.ErrAgentNotFound
	}
	return h, nil
}

func (p *fakeProvider) List(ctx context.Context, filter runtime.ListFilter) ([]*runtime.AgentHandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []*runtime.AgentHandle
	for _, h := range p.agents {
		if filter.Matches(h) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (p *fakeProvider) Send(ctx context.Context, id, message string, opts runtime.SendOptions) (*runtime.AgentMessage, error) {
	p.mu.Lock()
	h, ok := p.agents[id]
	reply := p.replyFn
	p.sent = append(p.sent, fakeSend{AgentID: id, Message: message, Expect: opts.ExpectResponse})
	p.mu.Unlock()
	if !ok {
		return nil, runtime.ErrAgentNotFound
	}
	if !opts.ExpectResponse {
		return nil, nil
	}
	if reply == nil {
		return &runtime.AgentMessage{AgentID: id, Content: "ok"}, nil
	}
	content, err := reply(h, message)
	if err != nil {
		return nil, err
	}
	return &runtime.AgentMessage{AgentID: id, Content: content}, nil
}

func (p *fakeProvider) Subscribe(ctx context.Context, id string, fn func(runtime.AgentMessage)) (runtime.UnsubscribeFunc, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.agents[id]; !ok {
		return nil, runtime.ErrAgentNotFound
	}
	p.subs[id] = append(p.subs[id], fn)
	return func() {}, nil
}

func (p *fakeProvider) Logs(ctx context.Context, id string, tail int) ([]string, error) {
	return []string{"started"}, nil
}

func (p *fakeProvider) Metrics(ctx context.Context, id string) (*runtime.AgentMetrics, error) {
	return &runtime.AgentMetrics{AgentID: id}, nil
}

func (p *fakeProvider) HealthCheck(ctx context.Context) (*runtime.HealthStatus, error) {
	return &runtime.HealthStatus{Healthy: true}, nil
}

func (p *fakeProvider) Events() <-chan runtime.Event {
	return p.events
}

// sends returns a snapshot of all recorded sends.
func (p *fakeProvider) sends() []fakeSend {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]fakeSend, len(p.sent))
	copy(out, p.sent)
	return out
}

// allStopped reports whether every spawned agent has been stopped.
func (p *fakeProvider) allStopped() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id := range p.agents {
		if !p.stopped[id] {
			return false
		}
	}
	return true
}

// newTestEngine wires an engine over a single fake provider.
func newTestEngine(t *testing.T, patterns ...*pattern.Pattern) (*Engine, *fakeProvider) {
	t.Helper()
	registry, err := pattern.NewRegistry(patterns...)
	require.NoError(t, err)

	provider := newFakeProvider()
	fed := runtime.NewFederation()
	require.NoError(t, fed.Register("fake", runtime.ProviderTypeLocal, provider, 0))

	engine := NewEngine(registry, fed, nil, slog.Default())
	return engine, provider
}
