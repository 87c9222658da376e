package trigger

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallax-dev/parallax/ent"
	enttrigger "github.com/parallax-dev/parallax/ent/trigger"
	"github.com/parallax-dev/parallax/pkg/workflow"
)

// fakeSource backs the dispatcher with in-memory triggers and counts the
// fire bookkeeping the real service would persist.
type fakeSource struct {
	mu         sync.Mutex
	byPath     map[string]*ent.Trigger
	eventTrigs []*ent.Trigger
	listCalls  int
	fired      map[string]int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		byPath: make(map[string]*ent.Trigger),
		fired:  make(map[string]int),
	}
}

func (f *fakeSource) GetByWebhookPath(ctx context.Context, path string) (*ent.Trigger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if trig, ok := f.byPath[path]; ok {
		return trig, nil
	}
	return nil, ErrTriggerNotFound
}

func (f *fakeSource) listEventTriggers(ctx context.Context) ([]*ent.Trigger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return f.eventTrigs, nil
}

func (f *fakeSource) recordFired(ctx context.Context, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fired[id]++
}

func (f *fakeSource) firedCount(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fired[id]
}

type fakeRunner struct {
	mu       sync.Mutex
	patterns []string
	inputs   []map[string]any
}

func (r *fakeRunner) Execute(ctx context.Context, patternName string, input map[string]any) (*workflow.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patterns = append(r.patterns, patternName)
	r.inputs = append(r.inputs, input)
	return &workflow.Result{Pattern: patternName, State: workflow.StateCompleted}, nil
}

func (r *fakeRunner) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.patterns)
}

func newTestDispatcher(src *fakeSource, runner *fakeRunner) *Dispatcher {
	d := NewDispatcher(nil, runner, nil, nil)
	d.service = src
	return d
}

func webhookTrigger(id, path, secret string) *ent.Trigger {
	return &ent.Trigger{
		ID:          id,
		Name:        id,
		Type:        enttrigger.TypeWebhook,
		PatternName: "incident-response",
		Enabled:     true,
		WebhookPath: path,
		Secret:      secret,
	}
}

func eventTrigger(id, eventType string) *ent.Trigger {
	return &ent.Trigger{
		ID:          id,
		Name:        id,
		Type:        enttrigger.TypeEvent,
		PatternName: "report-pipeline",
		Enabled:     true,
		EventType:   eventType,
	}
}

func TestHandleWebhook_BadSignatureRejected(t *testing.T) {
	src := newFakeSource()
	src.byPath["hook-a"] = webhookTrigger("trig-1", "hook-a", "topsecret")
	runner := &fakeRunner{}
	d := newTestDispatcher(src, runner)

	body := []byte(`{"action":"opened"}`)

	_, err := d.HandleWebhook(context.Background(), "hook-a", body, "sha256=deadbeef", nil)
	require.ErrorIs(t, err, ErrBadSignature)

	_, err = d.HandleWebhook(context.Background(), "hook-a", body, "", nil)
	require.ErrorIs(t, err, ErrBadSignature)

	// A rejected delivery leaves the fire bookkeeping untouched and never
	// reaches the runner.
	d.Wait()
	assert.Equal(t, 0, src.firedCount("trig-1"))
	assert.Equal(t, 0, runner.calls())
}

func TestHandleWebhook_ValidSignatureFires(t *testing.T) {
	src := newFakeSource()
	src.byPath["hook-a"] = webhookTrigger("trig-1", "hook-a", "topsecret")
	runner := &fakeRunner{}
	d := newTestDispatcher(src, runner)

	body := []byte(`{"action":"opened"}`)
	payload := map[string]any{"action": "opened"}

	trig, err := d.HandleWebhook(context.Background(), "hook-a", body, SignPayload("topsecret", body), payload)
	require.NoError(t, err)
	assert.Equal(t, "trig-1", trig.ID)

	d.Wait()
	assert.Equal(t, 1, src.firedCount("trig-1"))
	require.Equal(t, 1, runner.calls())
	assert.Equal(t, "incident-response", runner.patterns[0])
	assert.Equal(t, map[string]any{"event": payload}, runner.inputs[0],
		"without a mapping the whole payload is passed under event")
}

func TestHandleWebhook_DisabledTrigger(t *testing.T) {
	src := newFakeSource()
	trig := webhookTrigger("trig-1", "hook-a", "topsecret")
	trig.Enabled = false
	src.byPath["hook-a"] = trig
	runner := &fakeRunner{}
	d := newTestDispatcher(src, runner)

	body := []byte(`{}`)
	_, err := d.HandleWebhook(context.Background(), "hook-a", body, SignPayload("topsecret", body), nil)
	require.ErrorIs(t, err, ErrTriggerDisabled)
	assert.Equal(t, 0, runner.calls())
}

func TestHandleWebhook_UnknownPath(t *testing.T) {
	d := newTestDispatcher(newFakeSource(), &fakeRunner{})

	_, err := d.HandleWebhook(context.Background(), "no-such-path", nil, "", nil)
	require.ErrorIs(t, err, ErrTriggerNotFound)
}

func TestHandleWebhook_FilterMismatchAcceptsWithoutFiring(t *testing.T) {
	src := newFakeSource()
	trig := webhookTrigger("trig-1", "hook-a", "topsecret")
	trig.Filter = map[string]any{"action": "opened"}
	src.byPath["hook-a"] = trig
	runner := &fakeRunner{}
	d := newTestDispatcher(src, runner)

	body := []byte(`{"action":"closed"}`)
	got, err := d.HandleWebhook(context.Background(), "hook-a", body, SignPayload("topsecret", body),
		map[string]any{"action": "closed"})
	require.NoError(t, err)
	assert.Equal(t, "trig-1", got.ID)

	d.Wait()
	assert.Equal(t, 0, src.firedCount("trig-1"), "filtered-out delivery does not fire")
	assert.Equal(t, 0, runner.calls())
}

func TestEmitEvent_ServedFromIndex(t *testing.T) {
	src := newFakeSource()
	src.eventTrigs = []*ent.Trigger{
		eventTrigger("trig-1", "deploy.finished"),
		eventTrigger("trig-2", "deploy.finished"),
		eventTrigger("trig-3", "incident.opened"),
	}
	runner := &fakeRunner{}
	d := newTestDispatcher(src, runner)
	require.NoError(t, d.Start(context.Background()))

	fired, err := d.EmitEvent(context.Background(), "deploy.finished", map[string]any{"env": "prod"})
	require.NoError(t, err)
	assert.Equal(t, 2, fired)

	fired, err = d.EmitEvent(context.Background(), "unknown.event", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, fired)

	d.Wait()
	assert.Equal(t, 2, runner.calls())
	assert.Equal(t, 1, src.listCalls, "emission is served from the index, not the store")
}

func TestEmitEvent_FilterNarrowsMatches(t *testing.T) {
	src := newFakeSource()
	filtered := eventTrigger("trig-1", "deploy.finished")
	filtered.Filter = map[string]any{"env": "prod"}
	src.eventTrigs = []*ent.Trigger{filtered, eventTrigger("trig-2", "deploy.finished")}
	runner := &fakeRunner{}
	d := newTestDispatcher(src, runner)
	require.NoError(t, d.Start(context.Background()))

	fired, err := d.EmitEvent(context.Background(), "deploy.finished", map[string]any{"env": "staging"})
	require.NoError(t, err)
	assert.Equal(t, 1, fired, "only the unfiltered trigger matches a staging payload")

	d.Wait()
	assert.Equal(t, 1, src.firedCount("trig-2"))
	assert.Equal(t, 0, src.firedCount("trig-1"))
}

func TestMutations_KeepIndexCurrent(t *testing.T) {
	src := newFakeSource()
	src.eventTrigs = []*ent.Trigger{eventTrigger("trig-1", "deploy.finished")}
	runner := &fakeRunner{}
	d := newTestDispatcher(src, runner)
	require.NoError(t, d.Start(context.Background()))

	ctx := context.Background()

	// Disabling removes the trigger from the index.
	disabled := eventTrigger("trig-1", "deploy.finished")
	disabled.Enabled = false
	d.applyMutation(disabled, false)
	fired, err := d.EmitEvent(ctx, "deploy.finished", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, fired)

	// Re-enabling restores it; changing the event type moves the bucket.
	d.applyMutation(eventTrigger("trig-1", "deploy.finished"), false)
	moved := eventTrigger("trig-1", "deploy.started")
	d.applyMutation(moved, false)
	fired, err = d.EmitEvent(ctx, "deploy.finished", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, fired)
	fired, err = d.EmitEvent(ctx, "deploy.started", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, fired)

	// Deletion drops it for good.
	d.applyMutation(&ent.Trigger{ID: "trig-1"}, true)
	fired, err = d.EmitEvent(ctx, "deploy.started", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, fired)

	// Webhook mutations never enter the event index.
	d.applyMutation(webhookTrigger("trig-9", "hook-z", "s"), false)
	d.indexMu.RLock()
	assert.Empty(t, d.byEvent)
	d.indexMu.RUnlock()

	d.Wait()
}

func TestEmitEvent_FiringAdvancesBookkeeping(t *testing.T) {
	src := newFakeSource()
	src.eventTrigs = []*ent.Trigger{eventTrigger("trig-1", "deploy.finished")}
	runner := &fakeRunner{}
	d := newTestDispatcher(src, runner)
	require.NoError(t, d.Start(context.Background()))

	for i := 0; i < 3; i++ {
		_, err := d.EmitEvent(context.Background(), "deploy.finished", nil)
		require.NoError(t, err)
	}

	d.Wait()
	assert.Equal(t, 3, runner.calls())
	assert.Equal(t, 3, src.firedCount("trig-1"))
}
