package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultHealthInterval is how often each registered provider is probed.
const DefaultHealthInterval = 30 * time.Second

// RuntimeStatus is the externally visible state of one registered provider.
type RuntimeStatus struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Priority     int    `json:"priority"`
	Healthy      bool   `json:"healthy"`
	Message      string `json:"message,omitempty"`
	ActiveAgents int    `json:"activeAgents,omitempty"`
}

// registeredRuntime tracks one provider inside the federation. The struct is
// append-only after Register; only the healthy flag flips afterwards.
type registeredRuntime struct {
	name     string
	typ      string
	priority int
	provider Provider

	healthy atomic.Bool
	message atomic.Pointer[string]
	agents  atomic.Int64
}

// Federation presents all registered providers as a single virtual provider.
// It owns placement, the agent→provider index, and per-provider health.
type Federation struct {
	mu       sync.RWMutex
	runtimes map[string]*registeredRuntime

	indexMu sync.RWMutex
	index   map[string]string // agent id → runtime name

	events         chan Event
	healthInterval time.Duration

	running bool
	loopCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewFederation creates an empty federation.
func NewFederation() *Federation {
	return &Federation{
		runtimes:       make(map[string]*registeredRuntime),
		index:          make(map[string]string),
		events:         make(chan Event, 256),
		healthInterval: DefaultHealthInterval,
	}
}

// Register adds a provider under a unique name. The provider's events are
// forwarded re-stamped with the runtime name, and a health loop begins
// probing it once the federation is started. Registration happens during
// bootstrap, before traffic.
func (f *Federation) Register(name, typ string, provider Provider, priority int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.runtimes[name]; exists {
		return fmt.Errorf("runtime %q is already registered", name)
	}

	rt := &registeredRuntime{name: name, typ: typ, priority: priority, provider: provider}
	rt.healthy.Store(true) // optimistic until the first probe says otherwise
	f.runtimes[name] = rt

	if f.running {
		f.startRuntimeLoops(rt)
	}

	slog.Info("Runtime registered", "name", name, "type", typ, "priority", priority)
	return nil
}

// Start launches event forwarding and health loops for all registered
// providers.
func (f *Federation) Start(ctx context.Context) {
	f.mu.Lock()
	if f.running {
		f.mu.Unlock()
		return
	}
	f.running = true
	f.loopCtx, f.cancel = context.WithCancel(context.Background())
	for _, rt := range f.runtimes {
		f.startRuntimeLoops(rt)
	}
	f.mu.Unlock()
	_ = ctx
}

// Stop terminates all background loops.
func (f *Federation) Stop() {
	f.mu.Lock()
	if !f.running {
		f.mu.Unlock()
		return
	}
	f.running = false
	cancel := f.cancel
	f.mu.Unlock()

	cancel()
	f.wg.Wait()

	for _, rt := range f.all() {
		if c, ok := rt.provider.(closable); ok {
			c.Close()
		}
	}
}

// Events returns the federated event stream (provider events stamped with
// their runtime name, plus runtime health transitions).
func (f *Federation) Events() <-chan Event {
	return f.events
}

// Optional provider lifecycles managed by the federation. Providers that
// maintain their own connections (the HTTP provider's /ws event stream)
// implement these; in-process providers need not.
type startable interface{ Start(ctx context.Context) }
type closable interface{ Close() }

// startRuntimeLoops must be called with f.mu held and f.running true.
func (f *Federation) startRuntimeLoops(rt *registeredRuntime) {
	ctx := f.loopCtx

	if s, ok := rt.provider.(startable); ok {
		s.Start(ctx)
	}

	f.wg.Add(2)
	go func() {
		defer f.wg.Done()
		f.forwardEvents(ctx, rt)
	}()
	go func() {
		defer f.wg.Done()
		f.healthLoop(ctx, rt)
	}()
}

func (f *Federation) forwardEvents(ctx context.Context, rt *registeredRuntime) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-rt.provider.Events():
			if !ok {
				return
			}
			ev.Runtime = rt.name
			f.emit(ev)
		}
	}
}

func (f *Federation) emit(ev Event) {
	select {
	case f.events <- ev:
	default:
	}
}

// healthLoop probes the provider every healthInterval and flips the healthy
// flag, emitting runtime_healthy / runtime_unhealthy on transitions.
func (f *Federation) healthLoop(ctx context.Context, rt *registeredRuntime) {
	probe := func() {
		probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		status, err := rt.provider.HealthCheck(probeCtx)
		cancel()

		healthy := err == nil && status != nil && status.Healthy
		msg := ""
		if err != nil {
			msg = err.Error()
		} else if status != nil {
			msg = status.Message
			rt.agents.Store(int64(status.ActiveAgents))
		}
		rt.message.Store(&msg)

		was := rt.healthy.Swap(healthy)
		if was == healthy {
			return
		}
		eventType := EventRuntimeUnhealthy
		if healthy {
			eventType = EventRuntimeHealthy
		}
		slog.Info("Runtime health transition", "runtime", rt.name, "healthy", healthy, "message", msg)
		f.emit(Event{Type: eventType, Runtime: rt.name, Timestamp: time.Now().UTC()})
	}

	probe()
	ticker := time.NewTicker(f.healthInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probe()
		}
	}
}

// Statuses returns the current state of every registered runtime.
func (f *Federation) Statuses() []RuntimeStatus {
	f.mu.RLock()
	defer f.mu.RUnlock()
	statuses := make([]RuntimeStatus, 0, len(f.runtimes))
	for _, rt := range f.runtimes {
		msg := ""
		if m := rt.message.Load(); m != nil {
			msg = *m
		}
		statuses = append(statuses, RuntimeStatus{
			Name:         rt.name,
			Type:         rt.typ,
			Priority:     rt.priority,
			Healthy:      rt.healthy.Load(),
			Message:      msg,
			ActiveAgents: int(rt.agents.Load()),
		})
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })
	return statuses
}

// Spawn places an agent. A named healthy preferredRuntime wins; otherwise
// healthy providers are tried in ascending priority order (lower is
// better). Successful placement records agent→runtime in the index.
func (f *Federation) Spawn(ctx context.Context, cfg AgentConfig, preferredRuntime string) (*AgentHandle, error) {
	candidates := f.placementOrder(preferredRuntime)
	if len(candidates) == 0 {
		return nil, ErrNoHealthyRuntime
	}

	var lastErr error
	for _, rt := range candidates {
		handle, err := rt.provider.Spawn(ctx, cfg)
		if err != nil {
			slog.Warn("Spawn failed on runtime", "runtime", rt.name, "role", cfg.Role, "error", err)
			lastErr = err
			continue
		}
		handle.Runtime = rt.name

		f.indexMu.Lock()
		f.index[handle.ID] = rt.name
		f.indexMu.Unlock()

		slog.Info("Agent spawned", "agent_id", handle.ID, "role", cfg.Role, "runtime", rt.name)
		return handle, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("all candidate runtimes failed to spawn: %w", lastErr)
	}
	return nil, ErrNoHealthyRuntime
}

// placementOrder returns healthy runtimes in placement order. A healthy
// preferred runtime short-circuits the priority sort.
func (f *Federation) placementOrder(preferred string) []*registeredRuntime {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if preferred != "" {
		if rt, ok := f.runtimes[preferred]; ok && rt.healthy.Load() {
			return []*registeredRuntime{rt}
		}
	}

	healthy := make([]*registeredRuntime, 0, len(f.runtimes))
	for _, rt := range f.runtimes {
		if rt.healthy.Load() {
			healthy = append(healthy, rt)
		}
	}
	sort.Slice(healthy, func(i, j int) bool {
		if healthy[i].priority != healthy[j].priority {
			return healthy[i].priority < healthy[j].priority
		}
		return healthy[i].name < healthy[j].name
	})
	return healthy
}

// owner resolves the provider owning an agent via the index.
func (f *Federation) owner(id string) (*registeredRuntime, bool) {
	f.indexMu.RLock()
	name, ok := f.index[id]
	f.indexMu.RUnlock()
	if !ok {
		return nil, false
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	rt, ok := f.runtimes[name]
	return rt, ok
}

// all returns every registered runtime (for probing).
func (f *Federation) all() []*registeredRuntime {
	f.mu.RLock()
	defer f.mu.RUnlock()
	rts := make([]*registeredRuntime, 0, len(f.runtimes))
	for _, rt := range f.runtimes {
		rts = append(rts, rt)
	}
	sort.Slice(rts, func(i, j int) bool { return rts[i].priority < rts[j].priority })
	return rts
}

// StopAgent terminates an agent. An untracked id is probed against every
// provider until one succeeds. Provider failure surfaces unchanged; the
// index entry is kept so a retry can reach the same provider.
func (f *Federation) StopAgent(ctx context.Context, id string, opts StopOptions) error {
	if rt, ok := f.owner(id); ok {
		if err := rt.provider.Stop(ctx, id, opts); err != nil {
			return err
		}
		f.indexMu.Lock()
		delete(f.index, id)
		f.indexMu.Unlock()
		return nil
	}

	var lastErr error
	for _, rt := range f.all() {
		handle, err := rt.provider.Get(ctx, id)
		if err != nil || handle == nil {
			lastErr = err
			continue
		}
		return rt.provider.Stop(ctx, id, opts)
	}
	if lastErr != nil && lastErr != ErrAgentNotFound {
		return lastErr
	}
	// Unknown everywhere: stop is idempotent.
	return nil
}

// Get resolves an agent handle. On an index miss every provider is probed;
// a successful probe backfills the index.
func (f *Federation) Get(ctx context.Context, id string) (*AgentHandle, error) {
	if rt, ok := f.owner(id); ok {
		handle, err := rt.provider.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		handle.Runtime = rt.name
		return handle, nil
	}

	for _, rt := range f.all() {
		handle, err := rt.provider.Get(ctx, id)
		if err != nil || handle == nil {
			continue
		}
		handle.Runtime = rt.name
		f.indexMu.Lock()
		f.index[id] = rt.name
		f.indexMu.Unlock()
		return handle, nil
	}
	return nil, ErrAgentNotFound
}

// List merges agents from every provider. A failing provider is logged and
// skipped rather than failing the whole listing.
func (f *Federation) List(ctx context.Context, filter ListFilter) ([]*AgentHandle, error) {
	var agents []*AgentHandle
	for _, rt := range f.all() {
		handles, err := rt.provider.List(ctx, filter)
		if err != nil {
			slog.Warn("Runtime list failed, skipping", "runtime", rt.name, "error", err)
			continue
		}
		for _, h := range handles {
			h.Runtime = rt.name
			agents = append(agents, h)
		}
	}
	return agents, nil
}

// Send routes a message to the agent's owning provider.
func (f *Federation) Send(ctx context.Context, id, message string, opts SendOptions) (*AgentMessage, error) {
	rt, ok := f.owner(id)
	if !ok {
		if _, err := f.Get(ctx, id); err != nil {
			return nil, err
		}
		rt, ok = f.owner(id)
		if !ok {
			return nil, ErrAgentNotFound
		}
	}
	return rt.provider.Send(ctx, id, message, opts)
}

// Subscribe attaches a message subscriber via the owning provider.
func (f *Federation) Subscribe(ctx context.Context, id string, fn func(AgentMessage)) (UnsubscribeFunc, error) {
	rt, ok := f.owner(id)
	if !ok {
		return nil, ErrAgentNotFound
	}
	return rt.provider.Subscribe(ctx, id, fn)
}

// Logs fetches logs from the owning provider.
func (f *Federation) Logs(ctx context.Context, id string, tail int) ([]string, error) {
	rt, ok := f.owner(id)
	if !ok {
		return nil, ErrAgentNotFound
	}
	return rt.provider.Logs(ctx, id, tail)
}

// Metrics fetches metrics from the owning provider.
func (f *Federation) Metrics(ctx context.Context, id string) (*AgentMetrics, error) {
	rt, ok := f.owner(id)
	if !ok {
		return nil, ErrAgentNotFound
	}
	return rt.provider.Metrics(ctx, id)
}
