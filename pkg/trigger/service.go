// Package trigger starts workflows from external conditions: signed
// webhooks served under random paths, and internal events matched against
// operator filters.
package trigger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/parallax-dev/parallax/ent"
	enttrigger "github.com/parallax-dev/parallax/ent/trigger"
	"github.com/parallax-dev/parallax/pkg/database"
	"github.com/parallax-dev/parallax/pkg/pattern"
)

// Trigger types.
const (
	TypeWebhook = "webhook"
	TypeEvent   = "event"
)

// ErrTriggerNotFound indicates the trigger id or webhook path is unknown.
var ErrTriggerNotFound = errors.New("trigger not found")

// ValidationError describes a rejected trigger definition.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid trigger: %s: %s", e.Field, e.Reason)
}

// Spec is a trigger definition as submitted by callers.
type Spec struct {
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Type         string         `json:"type"`
	PatternName  string         `json:"patternName"`
	Enabled      *bool          `json:"enabled,omitempty"`
	EventType    string         `json:"eventType,omitempty"`
	Filter       map[string]any `json:"filter,omitempty"`
	InputMapping map[string]any `json:"inputMapping,omitempty"`
}

// MutationHook observes committed trigger mutations. Hooks run synchronously
// on the mutating goroutine; deleted carries only the trigger id.
type MutationHook func(trig *ent.Trigger, deleted bool)

// Service manages trigger definitions. Webhook credentials (path and HMAC
// secret) are generated server-side; the secret is returned exactly once,
// at creation or rotation.
type Service struct {
	db       *database.Client
	registry *pattern.Registry
	logger   *slog.Logger
	hooks    []MutationHook
}

// OnMutation registers a hook invoked after every trigger create, update,
// enable/disable, and delete. Register during bootstrap, before traffic.
func (s *Service) OnMutation(fn MutationHook) {
	s.hooks = append(s.hooks, fn)
}

func (s *Service) notify(trig *ent.Trigger, deleted bool) {
	for _, fn := range s.hooks {
		fn(trig, deleted)
	}
}

// NewService creates a trigger service. A nil registry disables pattern
// existence checks.
func NewService(db *database.Client, registry *pattern.Registry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{db: db, registry: registry, logger: logger}
}

func (s *Service) validate(spec Spec) error {
	if spec.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if spec.PatternName == "" {
		return &ValidationError{Field: "patternName", Reason: "required"}
	}
	if s.registry != nil && s.registry.Get(spec.PatternName) == nil {
		return &ValidationError{Field: "patternName", Reason: fmt.Sprintf("pattern %q is not registered", spec.PatternName)}
	}
	switch spec.Type {
	case TypeWebhook:
	case TypeEvent:
		if spec.EventType == "" {
			return &ValidationError{Field: "eventType", Reason: "required for event triggers"}
		}
	default:
		return &ValidationError{Field: "type", Reason: fmt.Sprintf("must be %q or %q", TypeWebhook, TypeEvent)}
	}
	if spec.Filter != nil {
		if err := ValidateFilter(spec.Filter); err != nil {
			return &ValidationError{Field: "filter", Reason: err.Error()}
		}
	}
	return nil
}

// Create persists a new trigger. For webhook triggers the returned secret
// is the only time it is exposed in plaintext.
func (s *Service) Create(ctx context.Context, spec Spec) (*ent.Trigger, string, error) {
	if err := s.validate(spec); err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	enabled := true
	if spec.Enabled != nil {
		enabled = *spec.Enabled
	}

	create := s.db.Trigger.Create().
		SetID(uuid.NewString()).
		SetName(spec.Name).
		SetDescription(spec.Description).
		SetType(enttrigger.Type(spec.Type)).
		SetPatternName(spec.PatternName).
		SetEnabled(enabled).
		SetEventType(spec.EventType).
		SetCreatedAt(now).
		SetUpdatedAt(now)
	if spec.Filter != nil {
		create.SetFilter(spec.Filter)
	}
	if spec.InputMapping != nil {
		create.SetInputMapping(spec.InputMapping)
	}

	secret := ""
	if spec.Type == TypeWebhook {
		path, err := newWebhookPath()
		if err != nil {
			return nil, "", err
		}
		secret, err = newWebhookSecret()
		if err != nil {
			return nil, "", err
		}
		create.SetWebhookPath(path).SetSecret(secret)
	}

	trig, err := create.Save(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create trigger: %w", err)
	}
	s.logger.Info("Created trigger",
		"trigger_id", trig.ID,
		"name", trig.Name,
		"type", spec.Type,
		"pattern", trig.PatternName)
	s.notify(trig, false)
	return trig, secret, nil
}

// Update replaces a trigger's mutable definition. Type, webhook path, and
// secret are not touched.
func (s *Service) Update(ctx context.Context, id string, spec Spec) (*ent.Trigger, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	spec.Type = string(existing.Type)
	if err := s.validate(spec); err != nil {
		return nil, err
	}

	enabled := existing.Enabled
	if spec.Enabled != nil {
		enabled = *spec.Enabled
	}

	update := s.db.Trigger.UpdateOneID(id).
		SetName(spec.Name).
		SetDescription(spec.Description).
		SetPatternName(spec.PatternName).
		SetEnabled(enabled).
		SetEventType(spec.EventType).
		SetUpdatedAt(time.Now().UTC()).
		ClearFilter().
		ClearInputMapping()
	if spec.Filter != nil {
		update.SetFilter(spec.Filter)
	}
	if spec.InputMapping != nil {
		update.SetInputMapping(spec.InputMapping)
	}

	trig, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTriggerNotFound
		}
		return nil, fmt.Errorf("failed to update trigger: %w", err)
	}
	s.notify(trig, false)
	return trig, nil
}

// RotateSecret replaces a webhook trigger's HMAC key and returns the new
// plaintext secret.
func (s *Service) RotateSecret(ctx context.Context, id string) (string, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if existing.Type != enttrigger.TypeWebhook {
		return "", &ValidationError{Field: "type", Reason: "only webhook triggers carry a secret"}
	}
	secret, err := newWebhookSecret()
	if err != nil {
		return "", err
	}
	if _, err := s.db.Trigger.UpdateOneID(id).
		SetSecret(secret).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		return "", fmt.Errorf("failed to rotate secret: %w", err)
	}
	s.logger.Info("Rotated webhook secret", "trigger_id", id)
	return secret, nil
}

// SetEnabled flips a trigger on or off.
func (s *Service) SetEnabled(ctx context.Context, id string, enabled bool) (*ent.Trigger, error) {
	trig, err := s.db.Trigger.UpdateOneID(id).
		SetEnabled(enabled).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTriggerNotFound
		}
		return nil, fmt.Errorf("failed to update trigger: %w", err)
	}
	s.notify(trig, false)
	return trig, nil
}

// Get returns one trigger.
func (s *Service) Get(ctx context.Context, id string) (*ent.Trigger, error) {
	trig, err := s.db.Trigger.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTriggerNotFound
		}
		return nil, fmt.Errorf("failed to get trigger: %w", err)
	}
	return trig, nil
}

// GetByWebhookPath resolves the trigger served under a webhook path.
func (s *Service) GetByWebhookPath(ctx context.Context, path string) (*ent.Trigger, error) {
	trig, err := s.db.Trigger.Query().
		Where(enttrigger.WebhookPathEQ(path)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTriggerNotFound
		}
		return nil, fmt.Errorf("failed to look up webhook trigger: %w", err)
	}
	return trig, nil
}

// List returns all triggers ordered by creation time.
func (s *Service) List(ctx context.Context) ([]*ent.Trigger, error) {
	triggers, err := s.db.Trigger.Query().
		Order(ent.Asc(enttrigger.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list triggers: %w", err)
	}
	return triggers, nil
}

// listEventTriggers returns every enabled event trigger; the dispatcher
// indexes them by event type at startup.
func (s *Service) listEventTriggers(ctx context.Context) ([]*ent.Trigger, error) {
	triggers, err := s.db.Trigger.Query().
		Where(
			enttrigger.TypeEQ(enttrigger.TypeEvent),
			enttrigger.EnabledEQ(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list event triggers: %w", err)
	}
	return triggers, nil
}

// Delete removes a trigger.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.db.Trigger.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrTriggerNotFound
		}
		return fmt.Errorf("failed to delete trigger: %w", err)
	}
	s.notify(&ent.Trigger{ID: id}, true)
	return nil
}

// recordFired bumps the trigger's fire bookkeeping.
func (s *Service) recordFired(ctx context.Context, id string) {
	if _, err := s.db.Trigger.UpdateOneID(id).
		AddFireCount(1).
		SetLastFiredAt(time.Now().UTC()).
		Save(ctx); err != nil {
		s.logger.Warn("Failed to record trigger firing", "trigger_id", id, "error", err)
	}
}
