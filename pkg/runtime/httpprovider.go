package runtime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/sony/gobreaker"
)

// HTTPProviderOptions configures the REST client for one provider endpoint.
type HTTPProviderOptions struct {
	BaseURL        string
	RequestTimeout time.Duration // defaults to 30 s
}

// HTTPProvider implements Provider against the runtime REST API that every
// concrete provider exposes. Provider events arrive over the /ws stream;
// per-agent message subscriptions are served from that same stream.
//
// REST calls pass through a circuit breaker so a dead provider fails fast
// instead of stacking up request timeouts.
type HTTPProvider struct {
	baseURL string
	hc      *http.Client
	breaker *gobreaker.CircuitBreaker

	events chan Event

	mu     sync.RWMutex
	subs   map[string]map[int]func(AgentMessage) // agent id → subscriber callbacks
	subSeq int

	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewHTTPProvider creates a provider client. Call Start to begin receiving
// events; REST methods work without Start.
func NewHTTPProvider(opts HTTPProviderOptions) (*HTTPProvider, error) {
	base := strings.TrimSuffix(opts.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("provider base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid provider base URL %q: %w", opts.BaseURL, err)
	}

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HTTPProvider{
		baseURL: base,
		hc:      &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "runtime-provider",
			MaxRequests: 3,
			Interval:    60 * time.Second,
			Timeout:     15 * time.Second,
		}),
		events: make(chan Event, 256),
		subs:   make(map[string]map[int]func(AgentMessage)),
	}, nil
}

// Start begins the WebSocket event loop with automatic reconnection.
func (p *HTTPProvider) Start(ctx context.Context) {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	loopCtx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	p.mu.Unlock()

	go func() {
		defer close(p.done)
		p.eventLoop(loopCtx)
	}()
	_ = ctx
}

// Close terminates the event loop. A provider that was never started is a
// no-op to close.
func (p *HTTPProvider) Close() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	cancel := p.cancel
	done := p.done
	p.mu.Unlock()

	cancel()
	<-done
}

// Events returns the provider event stream.
func (p *HTTPProvider) Events() <-chan Event {
	return p.events
}

// --- Provider REST methods ---

// Spawn creates an agent via POST /api/agents.
func (p *HTTPProvider) Spawn(ctx context.Context, cfg AgentConfig) (*AgentHandle, error) {
	var handle AgentHandle
	if err := p.doJSON(ctx, http.MethodPost, "/api/agents", cfg, &handle); err != nil {
		return nil, fmt.Errorf("failed to spawn agent: %w", err)
	}
	return &handle, nil
}

// Stop terminates an agent via DELETE /api/agents/:id. A 404 is treated as
// success: stopping an already-stopped agent is not an error.
func (p *HTTPProvider) Stop(ctx context.Context, id string, opts StopOptions) error {
	q := url.Values{}
	if opts.Force {
		q.Set("force", "true")
	}
	if opts.Timeout > 0 {
		q.Set("timeout", strconv.Itoa(int(opts.Timeout.Milliseconds())))
	}
	path := "/api/agents/" + url.PathEscape(id)
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	err := p.doJSON(ctx, http.MethodDelete, path, nil, nil)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to stop agent %s: %w", id, err)
	}
	return nil
}

// Get returns the agent handle via GET /api/agents/:id.
func (p *HTTPProvider) Get(ctx context.Context, id string) (*AgentHandle, error) {
	var handle AgentHandle
	err := p.doJSON(ctx, http.MethodGet, "/api/agents/"+url.PathEscape(id), nil, &handle)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent %s: %w", id, err)
	}
	return &handle, nil
}

// List returns agents matching the filter via GET /api/agents. Status, role
// and type are pushed to the server; the capabilities subset match is
// applied client-side.
func (p *HTTPProvider) List(ctx context.Context, filter ListFilter) ([]*AgentHandle, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if filter.Role != "" {
		q.Set("role", filter.Role)
	}
	if filter.Type != "" {
		q.Set("type", filter.Type)
	}
	path := "/api/agents"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp struct {
		Agents []*AgentHandle `json:"agents"`
		Count  int            `json:"count"`
	}
	if err := p.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	if len(filter.Capabilities) == 0 {
		return resp.Agents, nil
	}
	matched := make([]*AgentHandle, 0, len(resp.Agents))
	for _, h := range resp.Agents {
		if filter.Matches(h) {
			matched = append(matched, h)
		}
	}
	return matched, nil
}

// Send delivers a message via POST /api/agents/:id/send.
func (p *HTTPProvider) Send(ctx context.Context, id, message string, opts SendOptions) (*AgentMessage, error) {
	body := map[string]any{"message": message}
	if opts.ExpectResponse {
		body["expectResponse"] = true
	}
	if opts.Timeout > 0 {
		body["timeout"] = opts.Timeout.Milliseconds()
		// The reply can take the full provider-side timeout; give the HTTP
		// round trip headroom beyond it.
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout+5*time.Second)
		defer cancel()
	}

	var resp struct {
		Sent     bool          `json:"sent"`
		Response *AgentMessage `json:"response,omitempty"`
	}
	err := p.doJSON(ctx, http.MethodPost, "/api/agents/"+url.PathEscape(id)+"/send", body, &resp)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to send to agent %s: %w", id, err)
	}
	return resp.Response, nil
}

// Subscribe registers a callback for the agent's outbound messages, fed
// from the /ws event stream.
func (p *HTTPProvider) Subscribe(_ context.Context, id string, fn func(AgentMessage)) (UnsubscribeFunc, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.subs[id] == nil {
		p.subs[id] = make(map[int]func(AgentMessage))
	}
	seq := p.subSeq
	p.subSeq++
	p.subs[id][seq] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if subs := p.subs[id]; subs != nil {
			delete(subs, seq)
			if len(subs) == 0 {
				delete(p.subs, id)
			}
		}
	}, nil
}

// Logs returns recent log lines via GET /api/agents/:id/logs.
func (p *HTTPProvider) Logs(ctx context.Context, id string, tail int) ([]string, error) {
	path := "/api/agents/" + url.PathEscape(id) + "/logs"
	if tail > 0 {
		path += "?tail=" + strconv.Itoa(tail)
	}
	var resp struct {
		Logs  []string `json:"logs"`
		Count int      `json:"count"`
	}
	err := p.doJSON(ctx, http.MethodGet, path, nil, &resp)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to fetch logs for agent %s: %w", id, err)
	}
	return resp.Logs, nil
}

// Metrics returns agent diagnostics via GET /api/agents/:id/metrics.
func (p *HTTPProvider) Metrics(ctx context.Context, id string) (*AgentMetrics, error) {
	var metrics AgentMetrics
	err := p.doJSON(ctx, http.MethodGet, "/api/agents/"+url.PathEscape(id)+"/metrics", nil, &metrics)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to fetch metrics for agent %s: %w", id, err)
	}
	return &metrics, nil
}

// HealthCheck probes GET /api/health. The breaker is bypassed: health
// probes are how the federation learns a provider recovered.
func (p *HTTPProvider) HealthCheck(ctx context.Context) (*HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/health", nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.hc.Do(req)
	if err != nil {
		return &HealthStatus{Healthy: false, Message: err.Error()}, nil
	}
	defer func() { _ = resp.Body.Close() }()

	var status struct {
		Healthy bool   `json:"healthy"`
		Message string `json:"message,omitempty"`
		Runtime *struct {
			Name         string `json:"name"`
			Type         string `json:"type"`
			ActiveAgents int    `json:"activeAgents"`
		} `json:"runtime,omitempty"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return &HealthStatus{Healthy: false, Message: "malformed health response"}, nil
	}
	out := &HealthStatus{Healthy: status.Healthy, Message: status.Message}
	if status.Runtime != nil {
		out.ActiveAgents = status.Runtime.ActiveAgents
	}
	return out, nil
}

// --- internals ---

// httpError carries a non-2xx response status and body.
type httpError struct {
	Status int
	Body   string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("provider returned %d: %s", e.Status, e.Body)
}

func isNotFound(err error) bool {
	he, ok := err.(*httpError)
	return ok && he.Status == http.StatusNotFound
}

// doJSON performs one REST round trip through the circuit breaker.
func (p *HTTPProvider) doJSON(ctx context.Context, method, path string, body, out any) error {
	_, err := p.breaker.Execute(func() (any, error) {
		var reader io.Reader
		if body != nil {
			data, err := json.Marshal(body)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal request body: %w", err)
			}
			reader = bytes.NewReader(data)
		}

		req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
		if err != nil {
			return nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := p.hc.Do(req)
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			return nil, &httpError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
		}
		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return nil, fmt.Errorf("failed to decode response: %w", err)
			}
		}
		return nil, nil
	})
	return err
}

// eventLoop maintains the /ws connection, decoding event frames and
// dispatching them to the event channel and per-agent subscribers.
// Reconnects with capped exponential backoff.
func (p *HTTPProvider) eventLoop(ctx context.Context) {
	wsURL := strings.Replace(p.baseURL, "http", "ws", 1) + "/ws"
	backoff := time.Second

	for {
		if ctx.Err() != nil {
			return
		}

		conn, _, err := websocket.Dial(ctx, wsURL, nil)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Debug("Provider event stream dial failed", "url", wsURL, "error", err, "backoff", backoff)
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		backoff = time.Second

		p.readFrames(ctx, conn)
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}
}

func (p *HTTPProvider) readFrames(ctx context.Context, conn *websocket.Conn) {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() == nil {
				slog.Debug("Provider event stream closed", "error", err)
			}
			return
		}

		var frame struct {
			Event     string          `json:"event"`
			Data      json.RawMessage `json:"data"`
			Timestamp time.Time       `json:"timestamp"`
		}
		if err := json.Unmarshal(data, &frame); err != nil {
			slog.Warn("Malformed provider event frame", "error", err)
			continue
		}

		var payload struct {
			AgentID string `json:"agentId"`
		}
		_ = json.Unmarshal(frame.Data, &payload)

		ev := Event{
			Type:      frame.Event,
			AgentID:   payload.AgentID,
			Data:      frame.Data,
			Timestamp: frame.Timestamp,
		}
		select {
		case p.events <- ev:
		default:
			// Event channel full; drop rather than stall the read loop.
		}

		if frame.Event == EventMessage || frame.Event == EventQuestion {
			p.dispatchMessage(ev)
		}
	}
}

// dispatchMessage decodes a message event and invokes the agent's
// subscribers.
func (p *HTTPProvider) dispatchMessage(ev Event) {
	var msg AgentMessage
	if err := json.Unmarshal(ev.Data, &msg); err != nil {
		slog.Warn("Malformed agent message event", "agent_id", ev.AgentID, "error", err)
		return
	}
	if msg.AgentID == "" {
		msg.AgentID = ev.AgentID
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = ev.Timestamp
	}

	p.mu.RLock()
	callbacks := make([]func(AgentMessage), 0, len(p.subs[msg.AgentID]))
	for _, fn := range p.subs[msg.AgentID] {
		callbacks = append(callbacks, fn)
	}
	p.mu.RUnlock()

	for _, fn := range callbacks {
		fn(msg)
	}
}
