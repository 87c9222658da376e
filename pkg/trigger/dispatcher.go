package trigger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/parallax-dev/parallax/ent"
	"github.com/parallax-dev/parallax/pkg/audit"
	"github.com/parallax-dev/parallax/pkg/workflow"
)

// Webhook delivery failures, mapped to HTTP statuses by the API layer.
var (
	// ErrBadSignature indicates a missing or invalid webhook signature.
	ErrBadSignature = errors.New("invalid webhook signature")
	// ErrTriggerDisabled indicates the trigger exists but is switched off.
	ErrTriggerDisabled = errors.New("trigger is disabled")
)

// Runner executes workflows on behalf of the dispatcher.
type Runner interface {
	Execute(ctx context.Context, patternName string, input map[string]any) (*workflow.Result, error)
}

// triggerSource is the slice of Service the dispatcher depends on.
type triggerSource interface {
	GetByWebhookPath(ctx context.Context, path string) (*ent.Trigger, error)
	listEventTriggers(ctx context.Context) ([]*ent.Trigger, error)
	recordFired(ctx context.Context, id string)
}

// Dispatcher fires triggers: it verifies webhook deliveries and matches
// internal events against event-trigger filters. Event triggers are held in
// an in-memory index by event type, loaded at Start and kept current through
// the service's mutation hooks, so event emission never queries the store.
// Workflow executions run in the background; delivery acceptance does not
// wait for them.
type Dispatcher struct {
	service triggerSource
	runner  Runner
	audit   audit.Sink
	logger  *slog.Logger
	runs    sync.WaitGroup

	indexMu sync.RWMutex
	byEvent map[string][]*ent.Trigger
}

// NewDispatcher creates a trigger dispatcher subscribed to the service's
// trigger mutations. Call Start to load the event-trigger index.
func NewDispatcher(service *Service, runner Runner, sink audit.Sink, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if sink == nil {
		sink = audit.NopSink{}
	}
	d := &Dispatcher{
		runner:  runner,
		audit:   sink,
		logger:  logger,
		byEvent: make(map[string][]*ent.Trigger),
	}
	if service != nil {
		d.service = service
		service.OnMutation(d.applyMutation)
	}
	return d
}

// Start loads enabled event triggers into the in-memory index.
func (d *Dispatcher) Start(ctx context.Context) error {
	triggers, err := d.service.listEventTriggers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load event triggers: %w", err)
	}

	byEvent := make(map[string][]*ent.Trigger)
	for _, trig := range triggers {
		byEvent[trig.EventType] = append(byEvent[trig.EventType], trig)
	}

	d.indexMu.Lock()
	d.byEvent = byEvent
	d.indexMu.Unlock()
	d.logger.Info("Event trigger index loaded", "triggers", len(triggers))
	return nil
}

// applyMutation keeps the event index aligned with the durable record.
func (d *Dispatcher) applyMutation(trig *ent.Trigger, deleted bool) {
	d.indexMu.Lock()
	defer d.indexMu.Unlock()

	for eventType, bucket := range d.byEvent {
		kept := bucket[:0]
		for _, t := range bucket {
			if t.ID != trig.ID {
				kept = append(kept, t)
			}
		}
		if len(kept) == 0 {
			delete(d.byEvent, eventType)
		} else {
			d.byEvent[eventType] = kept
		}
	}

	if !deleted && string(trig.Type) == TypeEvent && trig.Enabled {
		d.byEvent[trig.EventType] = append(d.byEvent[trig.EventType], trig)
	}
}

// Wait blocks until all in-flight triggered executions finish. Used during
// shutdown.
func (d *Dispatcher) Wait() {
	d.runs.Wait()
}

// HandleWebhook processes one webhook delivery: the trigger is resolved by
// path, the signature verified against the raw body, and the payload fed to
// the trigger's workflow. Returns the trigger that fired.
func (d *Dispatcher) HandleWebhook(ctx context.Context, path string, body []byte, signature string, payload map[string]any) (*ent.Trigger, error) {
	trig, err := d.service.GetByWebhookPath(ctx, path)
	if err != nil {
		return nil, err
	}
	if !trig.Enabled {
		return nil, ErrTriggerDisabled
	}
	if !VerifySignature(trig.Secret, body, signature) {
		d.logger.Warn("Rejected webhook delivery with bad signature",
			"trigger_id", trig.ID)
		return nil, ErrBadSignature
	}
	if trig.Filter != nil && !MatchFilter(trig.Filter, payload) {
		d.logger.Debug("Webhook payload did not match trigger filter",
			"trigger_id", trig.ID)
		return trig, nil
	}

	d.fire(ctx, trig, payload, "webhook")
	return trig, nil
}

// EmitEvent offers an internal event to every enabled event trigger of its
// type, served from the in-memory index. Each matching trigger fires
// independently; a failing trigger never blocks its siblings.
func (d *Dispatcher) EmitEvent(ctx context.Context, eventType string, payload map[string]any) (int, error) {
	d.indexMu.RLock()
	triggers := make([]*ent.Trigger, len(d.byEvent[eventType]))
	copy(triggers, d.byEvent[eventType])
	d.indexMu.RUnlock()

	fired := 0
	for _, trig := range triggers {
		if trig.Filter != nil && !MatchFilter(trig.Filter, payload) {
			continue
		}
		d.fire(ctx, trig, payload, "event")
		fired++
	}
	return fired, nil
}

// fire records the firing and starts the trigger's workflow in the
// background.
func (d *Dispatcher) fire(ctx context.Context, trig *ent.Trigger, payload map[string]any, source string) {
	input := mapInput(trig.InputMapping, payload)

	d.service.recordFired(ctx, trig.ID)
	d.logger.Info("Trigger fired",
		"trigger_id", trig.ID,
		"pattern", trig.PatternName,
		"source", source)
	d.audit.Record(ctx, audit.Event{
		Category: audit.CategoryTrigger,
		Action:   "trigger.fired",
		Subject:  trig.ID,
		Detail:   map[string]any{"pattern": trig.PatternName, "source": source},
	})

	d.runs.Add(1)
	go func() {
		defer d.runs.Done()
		if _, err := d.runner.Execute(context.Background(), trig.PatternName, input); err != nil {
			d.logger.Error("Triggered execution failed",
				"trigger_id", trig.ID,
				"pattern", trig.PatternName,
				"error", err)
		}
	}()
}

// mapInput builds workflow input from the payload. Without a mapping the
// whole payload is passed under "event"; with one, each input field is
// filled from the payload dot-path it names (missing paths yield nil).
func mapInput(mapping, payload map[string]any) map[string]any {
	if len(mapping) == 0 {
		return map[string]any{"event": payload}
	}
	input := make(map[string]any, len(mapping))
	for field, ref := range mapping {
		path, ok := ref.(string)
		if !ok {
			input[field] = ref
			continue
		}
		value, _ := payloadPath(payload, strings.TrimPrefix(path, "$."))
		input[field] = value
	}
	return input
}

// FormatWebhookURL renders the externally visible path for a webhook
// trigger.
func FormatWebhookURL(trig *ent.Trigger) string {
	if trig.WebhookPath == "" {
		return ""
	}
	return fmt.Sprintf("/api/webhooks/%s", trig.WebhookPath)
}
