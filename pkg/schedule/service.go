// Package schedule provides recurring workflow execution: durable schedule
// definitions plus a leader-gated poller that fires them at most once per
// due time across the cluster.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/parallax-dev/parallax/ent"
	entschedule "github.com/parallax-dev/parallax/ent/schedule"
	"github.com/parallax-dev/parallax/ent/schedulerun"
	"github.com/parallax-dev/parallax/pkg/database"
	"github.com/parallax-dev/parallax/pkg/pattern"
)

// MinIntervalMs is the smallest accepted interval cadence.
const MinIntervalMs = 1000

// ErrScheduleNotFound indicates the schedule id is unknown.
var ErrScheduleNotFound = errors.New("schedule not found")

// ValidationError describes a rejected schedule definition.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid schedule: %s: %s", e.Field, e.Reason)
}

// Spec is a schedule definition as submitted by callers. Exactly one of
// Cron and IntervalMs must be set.
type Spec struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	PatternName string         `json:"patternName"`
	Input       map[string]any `json:"input,omitempty"`
	Cron        string         `json:"cron,omitempty"`
	IntervalMs  int64          `json:"intervalMs,omitempty"`
	Timezone    string         `json:"timezone,omitempty"`
	Enabled     *bool          `json:"enabled,omitempty"`
	StartAt     *time.Time     `json:"startAt,omitempty"`
	EndAt       *time.Time     `json:"endAt,omitempty"`
	MaxRuns     *int           `json:"maxRuns,omitempty"`
}

// Service manages schedule definitions. Cadence expressions are validated
// at ingest so the poller never sees an unparsable schedule.
type Service struct {
	db       *database.Client
	registry *pattern.Registry
	logger   *slog.Logger
}

// NewService creates a schedule service. A nil registry disables pattern
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
	switch {
	case spec.Cron == "" && spec.IntervalMs == 0:
		return &ValidationError{Field: "cron", Reason: "one of cron or intervalMs is required"}
	case spec.Cron != "" && spec.IntervalMs != 0:
		return &ValidationError{Field: "cron", Reason: "cron and intervalMs are mutually exclusive"}
	}
	if spec.Cron != "" {
		if _, err := parseCron(spec.Cron); err != nil {
			return &ValidationError{Field: "cron", Reason: err.Error()}
		}
	}
	if spec.IntervalMs != 0 && spec.IntervalMs < MinIntervalMs {
		return &ValidationError{Field: "intervalMs", Reason: fmt.Sprintf("must be at least %d", MinIntervalMs)}
	}
	if spec.Timezone != "" {
		if _, err := time.LoadLocation(spec.Timezone); err != nil {
			return &ValidationError{Field: "timezone", Reason: fmt.Sprintf("unknown timezone %q", spec.Timezone)}
		}
	}
	if spec.MaxRuns != nil && *spec.MaxRuns < 1 {
		return &ValidationError{Field: "maxRuns", Reason: "must be at least 1"}
	}
	if spec.StartAt != nil && spec.EndAt != nil && !spec.EndAt.After(*spec.StartAt) {
		return &ValidationError{Field: "endAt", Reason: "must be after startAt"}
	}
	return nil
}

// nextRun computes the first activation at or after base.
func (s *Service) nextRun(spec Spec, base time.Time) (time.Time, error) {
	if spec.Cron != "" {
		return nextCronRun(spec.Cron, spec.Timezone, base)
	}
	return base.Add(time.Duration(spec.IntervalMs) * time.Millisecond), nil
}

// Create persists a new schedule with its first next-run time computed.
func (s *Service) Create(ctx context.Context, spec Spec) (*ent.Schedule, error) {
	if err := s.validate(spec); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	base := now
	if spec.StartAt != nil && spec.StartAt.After(now) {
		base = *spec.StartAt
	}
	next, err := s.nextRun(spec, base)
	if err != nil {
		return nil, err
	}

	timezone := spec.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	enabled := true
	if spec.Enabled != nil {
		enabled = *spec.Enabled
	}

	create := s.db.Schedule.Create().
		SetID(uuid.NewString()).
		SetName(spec.Name).
		SetDescription(spec.Description).
		SetPatternName(spec.PatternName).
		SetTimezone(timezone).
		SetEnabled(enabled).
		SetNextRunAt(next).
		SetCreatedAt(now).
		SetUpdatedAt(now)
	if spec.Input != nil {
		create.SetInput(spec.Input)
	}
	if spec.Cron != "" {
		create.SetCron(spec.Cron)
	}
	if spec.IntervalMs != 0 {
		create.SetIntervalMs(spec.IntervalMs)
	}
	if spec.StartAt != nil {
		create.SetStartAt(*spec.StartAt)
	}
	if spec.EndAt != nil {
		create.SetEndAt(*spec.EndAt)
	}
	if spec.MaxRuns != nil {
		create.SetMaxRuns(*spec.MaxRuns)
	}

	sched, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	s.logger.Info("Created schedule",
		"schedule_id", sched.ID,
		"name", sched.Name,
		"pattern", sched.PatternName,
		"next_run_at", next)
	return sched, nil
}

// Update replaces a schedule's definition and recomputes its next run.
func (s *Service) Update(ctx context.Context, id string, spec Spec) (*ent.Schedule, error) {
	if err := s.validate(spec); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	base := now
	if spec.StartAt != nil && spec.StartAt.After(now) {
		base = *spec.StartAt
	}
	next, err := s.nextRun(spec, base)
	if err != nil {
		return nil, err
	}

	timezone := spec.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	enabled := existing.Enabled
	if spec.Enabled != nil {
		enabled = *spec.Enabled
	}

	update := s.db.Schedule.UpdateOneID(id).
		SetName(spec.Name).
		SetDescription(spec.Description).
		SetPatternName(spec.PatternName).
		SetTimezone(timezone).
		SetEnabled(enabled).
		SetNextRunAt(next).
		SetCompleted(false).
		SetUpdatedAt(now).
		ClearCron().
		ClearIntervalMs().
		ClearStartAt().
		ClearEndAt().
		ClearMaxRuns().
		ClearInput()
	if spec.Input != nil {
		update.SetInput(spec.Input)
	}
	if spec.Cron != "" {
		update.SetCron(spec.Cron)
	}
	if spec.IntervalMs != 0 {
		update.SetIntervalMs(spec.IntervalMs)
	}
	if spec.StartAt != nil {
		update.SetStartAt(*spec.StartAt)
	}
	if spec.EndAt != nil {
		update.SetEndAt(*spec.EndAt)
	}
	if spec.MaxRuns != nil {
		update.SetMaxRuns(*spec.MaxRuns)
	}

	sched, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	return sched, nil
}

// SetEnabled flips a schedule on or off without touching its cadence.
func (s *Service) SetEnabled(ctx context.Context, id string, enabled bool) (*ent.Schedule, error) {
	sched, err := s.db.Schedule.UpdateOneID(id).
		SetEnabled(enabled).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	return sched, nil
}

// Get returns one schedule.
func (s *Service) Get(ctx context.Context, id string) (*ent.Schedule, error) {
	sched, err := s.db.Schedule.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return sched, nil
}

// List returns all schedules ordered by creation time.
func (s *Service) List(ctx context.Context) ([]*ent.Schedule, error) {
	schedules, err := s.db.Schedule.Query().
		Order(ent.Asc(entschedule.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}

// Delete removes a schedule and (by cascade) its run history.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.db.Schedule.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrScheduleNotFound
		}
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

// Runs returns the most recent runs of a schedule, newest first.
func (s *Service) Runs(ctx context.Context, id string, limit int) ([]*ent.ScheduleRun, error) {
	if limit <= 0 {
		limit = 50
	}
	runs, err := s.db.ScheduleRun.Query().
		Where(schedulerun.ScheduleIDEQ(id)).
		Order(ent.Desc(schedulerun.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule runs: %w", err)
	}
	return runs, nil
}
