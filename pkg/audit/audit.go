// Package audit records control-plane actions for later inspection.
// Recording is fire-and-forget: a failing sink never blocks or fails the
// operation being audited.
package audit

import (
	"context"
	"log/slog"
	"time"
)

// Event categories.
const (
	CategoryWorkflow = "workflow"
	CategorySchedule = "schedule"
	CategoryTrigger  = "trigger"
	CategoryCluster  = "cluster"
	CategoryAgent    = "agent"
)

// Event is one audited action.
type Event struct {
	Category  string         `json:"category"`
	Action    string         `json:"action"`
	Actor     string         `json:"actor,omitempty"`
	Subject   string         `json:"subject,omitempty"`
	Detail    map[string]any `json:"detail,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Sink receives audit events. Implementations must not block the caller
// beyond what the context allows and must swallow their own failures.
type Sink interface {
	Record(ctx context.Context, ev Event)
}

// LogSink writes audit events to structured logs.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a sink backed by the given logger.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// Record logs the event at info level.
func (s *LogSink) Record(ctx context.Context, ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	s.logger.InfoContext(ctx, "Audit event",
		"category", ev.Category,
		"action", ev.Action,
		"actor", ev.Actor,
		"subject", ev.Subject,
		"detail", ev.Detail)
}

// NopSink discards all events.
type NopSink struct{}

// Record discards the event.
func (NopSink) Record(context.Context, Event) {}
