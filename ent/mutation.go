// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/parallax-dev/parallax/ent/predicate"
	"github.com/parallax-dev/parallax/ent/schedule"
	"github.com/parallax-dev/parallax/ent/schedulerun"
	"github.com/parallax-dev/parallax/ent/trigger"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeSchedule    = "Schedule"
	TypeScheduleRun = "ScheduleRun"
	TypeTrigger     = "Trigger"
)

// ScheduleMutation represents an operation that mutates the Schedule nodes in the graph.
type ScheduleMutation struct {
	config
	op              Op
	typ             string
	id              *string
	name            *string
	description     *string
	pattern_name    *string
	input           *map[string]interface{}
	cron            *string
	interval_ms     *int64
	addinterval_ms  *int64
	timezone        *string
	enabled         *bool
	start_at        *time.Time
	end_at          *time.Time
	max_runs        *int
	addmax_runs     *int
	run_count       *int
	addrun_count    *int
	next_run_at     *time.Time
	last_run_at     *time.Time
	last_run_status *string
	completed       *bool
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	runs            map[string]struct{}
	removedruns     map[string]struct{}
	clearedruns     bool
	done            bool
	oldValue        func(context.Context) (*Schedule, error)
	predicates      []predicate.Schedule
}

var _ ent.Mutation = (*ScheduleMutation)(nil)

// scheduleOption allows management of the mutation configuration using functional options.
type scheduleOption func(*ScheduleMutation)

// newScheduleMutation creates new mutation for the Schedule entity.
func newScheduleMutation(c config, op Op, opts ...scheduleOption) *ScheduleMutation {
	m := &ScheduleMutation{
		config:        c,
		op:            op,
		typ:           TypeSchedule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduleID sets the ID field of the mutation.
func withScheduleID(id string) scheduleOption {
	return func(m *ScheduleMutation) {
		var (
			err   error
			once  sync.Once
			value *Schedule
		)
		m.oldValue = func(ctx context.Context) (*Schedule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Schedule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSchedule sets the old Schedule of the mutation.
func withSchedule(node *Schedule) scheduleOption {
	return func(m *ScheduleMutation) {
		m.oldValue = func(context.Context) (*Schedule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Schedule entities.
func (m *ScheduleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Schedule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ScheduleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ScheduleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ScheduleMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ScheduleMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ScheduleMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ScheduleMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[schedule.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ScheduleMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[schedule.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ScheduleMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, schedule.FieldDescription)
}

// SetPatternName sets the "pattern_name" field.
func (m *ScheduleMutation) SetPatternName(s string) {
	m.pattern_name = &s
}

// PatternName returns the value of the "pattern_name" field in the mutation.
func (m *ScheduleMutation) PatternName() (r string, exists bool) {
	v := m.pattern_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternName returns the old "pattern_name" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldPatternName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternName: %w", err)
	}
	return oldValue.PatternName, nil
}

// ResetPatternName resets all changes to the "pattern_name" field.
func (m *ScheduleMutation) ResetPatternName() {
	m.pattern_name = nil
}

// SetInput sets the "input" field.
func (m *ScheduleMutation) SetInput(value map[string]interface{}) {
	m.input = &value
}

// Input returns the value of the "input" field in the mutation.
func (m *ScheduleMutation) Input() (r map[string]interface{}, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ClearInput clears the value of the "input" field.
func (m *ScheduleMutation) ClearInput() {
	m.input = nil
	m.clearedFields[schedule.FieldInput] = struct{}{}
}

// InputCleared returns if the "input" field was cleared in this mutation.
func (m *ScheduleMutation) InputCleared() bool {
	_, ok := m.clearedFields[schedule.FieldInput]
	return ok
}

// ResetInput resets all changes to the "input" field.
func (m *ScheduleMutation) ResetInput() {
	m.input = nil
	delete(m.clearedFields, schedule.FieldInput)
}

// SetCron sets the "cron" field.
func (m *ScheduleMutation) SetCron(s string) {
	m.cron = &s
}

// Cron returns the value of the "cron" field in the mutation.
func (m *ScheduleMutation) Cron() (r string, exists bool) {
	v := m.cron
	if v == nil {
		return
	}
	return *v, true
}

// OldCron returns the old "cron" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldCron(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCron is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCron requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCron: %w", err)
	}
	return oldValue.Cron, nil
}

// ClearCron clears the value of the "cron" field.
func (m *ScheduleMutation) ClearCron() {
	m.cron = nil
	m.clearedFields[schedule.FieldCron] = struct{}{}
}

// CronCleared returns if the "cron" field was cleared in this mutation.
func (m *ScheduleMutation) CronCleared() bool {
	_, ok := m.clearedFields[schedule.FieldCron]
	return ok
}

// ResetCron resets all changes to the "cron" field.
func (m *ScheduleMutation) ResetCron() {
	m.cron = nil
	delete(m.clearedFields, schedule.FieldCron)
}

// SetIntervalMs sets the "interval_ms" field.
func (m *ScheduleMutation) SetIntervalMs(i int64) {
	m.interval_ms = &i
	m.addinterval_ms = nil
}

// IntervalMs returns the value of the "interval_ms" field in the mutation.
func (m *ScheduleMutation) IntervalMs() (r int64, exists bool) {
	v := m.interval_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalMs returns the old "interval_ms" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldIntervalMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalMs: %w", err)
	}
	return oldValue.IntervalMs, nil
}

// AddIntervalMs adds i to the "interval_ms" field.
func (m *ScheduleMutation) AddIntervalMs(i int64) {
	if m.addinterval_ms != nil {
		*m.addinterval_ms += i
	} else {
		m.addinterval_ms = &i
	}
}

// AddedIntervalMs returns the value that was added to the "interval_ms" field in this mutation.
func (m *ScheduleMutation) AddedIntervalMs() (r int64, exists bool) {
	v := m.addinterval_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearIntervalMs clears the value of the "interval_ms" field.
func (m *ScheduleMutation) ClearIntervalMs() {
	m.interval_ms = nil
	m.addinterval_ms = nil
	m.clearedFields[schedule.FieldIntervalMs] = struct{}{}
}

// IntervalMsCleared returns if the "interval_ms" field was cleared in this mutation.
func (m *ScheduleMutation) IntervalMsCleared() bool {
	_, ok := m.clearedFields[schedule.FieldIntervalMs]
	return ok
}

// ResetIntervalMs resets all changes to the "interval_ms" field.
func (m *ScheduleMutation) ResetIntervalMs() {
	m.interval_ms = nil
	m.addinterval_ms = nil
	delete(m.clearedFields, schedule.FieldIntervalMs)
}

// SetTimezone sets the "timezone" field.
func (m *ScheduleMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *ScheduleMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *ScheduleMutation) ResetTimezone() {
	m.timezone = nil
}

// SetEnabled sets the "enabled" field.
func (m *ScheduleMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ScheduleMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ScheduleMutation) ResetEnabled() {
	m.enabled = nil
}

// SetStartAt sets the "start_at" field.
func (m *ScheduleMutation) SetStartAt(t time.Time) {
	m.start_at = &t
}

// StartAt returns the value of the "start_at" field in the mutation.
func (m *ScheduleMutation) StartAt() (r time.Time, exists bool) {
	v := m.start_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartAt returns the old "start_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldStartAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartAt: %w", err)
	}
	return oldValue.StartAt, nil
}

// ClearStartAt clears the value of the "start_at" field.
func (m *ScheduleMutation) ClearStartAt() {
	m.start_at = nil
	m.clearedFields[schedule.FieldStartAt] = struct{}{}
}

// StartAtCleared returns if the "start_at" field was cleared in this mutation.
func (m *ScheduleMutation) StartAtCleared() bool {
	_, ok := m.clearedFields[schedule.FieldStartAt]
	return ok
}

// ResetStartAt resets all changes to the "start_at" field.
func (m *ScheduleMutation) ResetStartAt() {
	m.start_at = nil
	delete(m.clearedFields, schedule.FieldStartAt)
}

// SetEndAt sets the "end_at" field.
func (m *ScheduleMutation) SetEndAt(t time.Time) {
	m.end_at = &t
}

// EndAt returns the value of the "end_at" field in the mutation.
func (m *ScheduleMutation) EndAt() (r time.Time, exists bool) {
	v := m.end_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndAt returns the old "end_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldEndAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndAt: %w", err)
	}
	return oldValue.EndAt, nil
}

// ClearEndAt clears the value of the "end_at" field.
func (m *ScheduleMutation) ClearEndAt() {
	m.end_at = nil
	m.clearedFields[schedule.FieldEndAt] = struct{}{}
}

// EndAtCleared returns if the "end_at" field was cleared in this mutation.
func (m *ScheduleMutation) EndAtCleared() bool {
	_, ok := m.clearedFields[schedule.FieldEndAt]
	return ok
}

// ResetEndAt resets all changes to the "end_at" field.
func (m *ScheduleMutation) ResetEndAt() {
	m.end_at = nil
	delete(m.clearedFields, schedule.FieldEndAt)
}

// SetMaxRuns sets the "max_runs" field.
func (m *ScheduleMutation) SetMaxRuns(i int) {
	m.max_runs = &i
	m.addmax_runs = nil
}

// MaxRuns returns the value of the "max_runs" field in the mutation.
func (m *ScheduleMutation) MaxRuns() (r int, exists bool) {
	v := m.max_runs
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRuns returns the old "max_runs" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldMaxRuns(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRuns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRuns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRuns: %w", err)
	}
	return oldValue.MaxRuns, nil
}

// AddMaxRuns adds i to the "max_runs" field.
func (m *ScheduleMutation) AddMaxRuns(i int) {
	if m.addmax_runs != nil {
		*m.addmax_runs += i
	} else {
		m.addmax_runs = &i
	}
}

// AddedMaxRuns returns the value that was added to the "max_runs" field in this mutation.
func (m *ScheduleMutation) AddedMaxRuns() (r int, exists bool) {
	v := m.addmax_runs
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxRuns clears the value of the "max_runs" field.
func (m *ScheduleMutation) ClearMaxRuns() {
	m.max_runs = nil
	m.addmax_runs = nil
	m.clearedFields[schedule.FieldMaxRuns] = struct{}{}
}

// MaxRunsCleared returns if the "max_runs" field was cleared in this mutation.
func (m *ScheduleMutation) MaxRunsCleared() bool {
	_, ok := m.clearedFields[schedule.FieldMaxRuns]
	return ok
}

// ResetMaxRuns resets all changes to the "max_runs" field.
func (m *ScheduleMutation) ResetMaxRuns() {
	m.max_runs = nil
	m.addmax_runs = nil
	delete(m.clearedFields, schedule.FieldMaxRuns)
}

// SetRunCount sets the "run_count" field.
func (m *ScheduleMutation) SetRunCount(i int) {
	m.run_count = &i
	m.addrun_count = nil
}

// RunCount returns the value of the "run_count" field in the mutation.
func (m *ScheduleMutation) RunCount() (r int, exists bool) {
	v := m.run_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRunCount returns the old "run_count" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldRunCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunCount: %w", err)
	}
	return oldValue.RunCount, nil
}

// AddRunCount adds i to the "run_count" field.
func (m *ScheduleMutation) AddRunCount(i int) {
	if m.addrun_count != nil {
		*m.addrun_count += i
	} else {
		m.addrun_count = &i
	}
}

// AddedRunCount returns the value that was added to the "run_count" field in this mutation.
func (m *ScheduleMutation) AddedRunCount() (r int, exists bool) {
	v := m.addrun_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRunCount resets all changes to the "run_count" field.
func (m *ScheduleMutation) ResetRunCount() {
	m.run_count = nil
	m.addrun_count = nil
}

// SetNextRunAt sets the "next_run_at" field.
func (m *ScheduleMutation) SetNextRunAt(t time.Time) {
	m.next_run_at = &t
}

// NextRunAt returns the value of the "next_run_at" field in the mutation.
func (m *ScheduleMutation) NextRunAt() (r time.Time, exists bool) {
	v := m.next_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRunAt returns the old "next_run_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldNextRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRunAt: %w", err)
	}
	return oldValue.NextRunAt, nil
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (m *ScheduleMutation) ClearNextRunAt() {
	m.next_run_at = nil
	m.clearedFields[schedule.FieldNextRunAt] = struct{}{}
}

// NextRunAtCleared returns if the "next_run_at" field was cleared in this mutation.
func (m *ScheduleMutation) NextRunAtCleared() bool {
	_, ok := m.clearedFields[schedule.FieldNextRunAt]
	return ok
}

// ResetNextRunAt resets all changes to the "next_run_at" field.
func (m *ScheduleMutation) ResetNextRunAt() {
	m.next_run_at = nil
	delete(m.clearedFields, schedule.FieldNextRunAt)
}

// SetLastRunAt sets the "last_run_at" field.
func (m *ScheduleMutation) SetLastRunAt(t time.Time) {
	m.last_run_at = &t
}

// LastRunAt returns the value of the "last_run_at" field in the mutation.
func (m *ScheduleMutation) LastRunAt() (r time.Time, exists bool) {
	v := m.last_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunAt returns the old "last_run_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldLastRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunAt: %w", err)
	}
	return oldValue.LastRunAt, nil
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (m *ScheduleMutation) ClearLastRunAt() {
	m.last_run_at = nil
	m.clearedFields[schedule.FieldLastRunAt] = struct{}{}
}

// LastRunAtCleared returns if the "last_run_at" field was cleared in this mutation.
func (m *ScheduleMutation) LastRunAtCleared() bool {
	_, ok := m.clearedFields[schedule.FieldLastRunAt]
	return ok
}

// ResetLastRunAt resets all changes to the "last_run_at" field.
func (m *ScheduleMutation) ResetLastRunAt() {
	m.last_run_at = nil
	delete(m.clearedFields, schedule.FieldLastRunAt)
}

// SetLastRunStatus sets the "last_run_status" field.
func (m *ScheduleMutation) SetLastRunStatus(s string) {
	m.last_run_status = &s
}

// LastRunStatus returns the value of the "last_run_status" field in the mutation.
func (m *ScheduleMutation) LastRunStatus() (r string, exists bool) {
	v := m.last_run_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunStatus returns the old "last_run_status" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldLastRunStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunStatus: %w", err)
	}
	return oldValue.LastRunStatus, nil
}

// ClearLastRunStatus clears the value of the "last_run_status" field.
func (m *ScheduleMutation) ClearLastRunStatus() {
	m.last_run_status = nil
	m.clearedFields[schedule.FieldLastRunStatus] = struct{}{}
}

// LastRunStatusCleared returns if the "last_run_status" field was cleared in this mutation.
func (m *ScheduleMutation) LastRunStatusCleared() bool {
	_, ok := m.clearedFields[schedule.FieldLastRunStatus]
	return ok
}

// ResetLastRunStatus resets all changes to the "last_run_status" field.
func (m *ScheduleMutation) ResetLastRunStatus() {
	m.last_run_status = nil
	delete(m.clearedFields, schedule.FieldLastRunStatus)
}

// SetCompleted sets the "completed" field.
func (m *ScheduleMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *ScheduleMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *ScheduleMutation) ResetCompleted() {
	m.completed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScheduleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScheduleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ScheduleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRunIDs adds the "runs" edge to the ScheduleRun entity by ids.
func (m *ScheduleMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the ScheduleRun entity.
func (m *ScheduleMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the ScheduleRun entity was cleared.
func (m *ScheduleMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the ScheduleRun entity by IDs.
func (m *ScheduleMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the ScheduleRun entity.
func (m *ScheduleMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *ScheduleMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *ScheduleMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the ScheduleMutation builder.
func (m *ScheduleMutation) Where(ps ...predicate.Schedule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Schedule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Schedule).
func (m *ScheduleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduleMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.name != nil {
		fields = append(fields, schedule.FieldName)
	}
	if m.description != nil {
		fields = append(fields, schedule.FieldDescription)
	}
	if m.pattern_name != nil {
		fields = append(fields, schedule.FieldPatternName)
	}
	if m.input != nil {
		fields = append(fields, schedule.FieldInput)
	}
	if m.cron != nil {
		fields = append(fields, schedule.FieldCron)
	}
	if m.interval_ms != nil {
		fields = append(fields, schedule.FieldIntervalMs)
	}
	if m.timezone != nil {
		fields = append(fields, schedule.FieldTimezone)
	}
	if m.enabled != nil {
		fields = append(fields, schedule.FieldEnabled)
	}
	if m.start_at != nil {
		fields = append(fields, schedule.FieldStartAt)
	}
	if m.end_at != nil {
		fields = append(fields, schedule.FieldEndAt)
	}
	if m.max_runs != nil {
		fields = append(fields, schedule.FieldMaxRuns)
	}
	if m.run_count != nil {
		fields = append(fields, schedule.FieldRunCount)
	}
	if m.next_run_at != nil {
		fields = append(fields, schedule.FieldNextRunAt)
	}
	if m.last_run_at != nil {
		fields = append(fields, schedule.FieldLastRunAt)
	}
	if m.last_run_status != nil {
		fields = append(fields, schedule.FieldLastRunStatus)
	}
	if m.completed != nil {
		fields = append(fields, schedule.FieldCompleted)
	}
	if m.created_at != nil {
		fields = append(fields, schedule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, schedule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schedule.FieldName:
		return m.Name()
	case schedule.FieldDescription:
		return m.Description()
	case schedule.FieldPatternName:
		return m.PatternName()
	case schedule.FieldInput:
		return m.Input()
	case schedule.FieldCron:
		return m.Cron()
	case schedule.FieldIntervalMs:
		return m.IntervalMs()
	case schedule.FieldTimezone:
		return m.Timezone()
	case schedule.FieldEnabled:
		return m.Enabled()
	case schedule.FieldStartAt:
		return m.StartAt()
	case schedule.FieldEndAt:
		return m.EndAt()
	case schedule.FieldMaxRuns:
		return m.MaxRuns()
	case schedule.FieldRunCount:
		return m.RunCount()
	case schedule.FieldNextRunAt:
		return m.NextRunAt()
	case schedule.FieldLastRunAt:
		return m.LastRunAt()
	case schedule.FieldLastRunStatus:
		return m.LastRunStatus()
	case schedule.FieldCompleted:
		return m.Completed()
	case schedule.FieldCreatedAt:
		return m.CreatedAt()
	case schedule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schedule.FieldName:
		return m.OldName(ctx)
	case schedule.FieldDescription:
		return m.OldDescription(ctx)
	case schedule.FieldPatternName:
		return m.OldPatternName(ctx)
	case schedule.FieldInput:
		return m.OldInput(ctx)
	case schedule.FieldCron:
		return m.OldCron(ctx)
	case schedule.FieldIntervalMs:
		return m.OldIntervalMs(ctx)
	case schedule.FieldTimezone:
		return m.OldTimezone(ctx)
	case schedule.FieldEnabled:
		return m.OldEnabled(ctx)
	case schedule.FieldStartAt:
		return m.OldStartAt(ctx)
	case schedule.FieldEndAt:
		return m.OldEndAt(ctx)
	case schedule.FieldMaxRuns:
		return m.OldMaxRuns(ctx)
	case schedule.FieldRunCount:
		return m.OldRunCount(ctx)
	case schedule.FieldNextRunAt:
		return m.OldNextRunAt(ctx)
	case schedule.FieldLastRunAt:
		return m.OldLastRunAt(ctx)
	case schedule.FieldLastRunStatus:
		return m.OldLastRunStatus(ctx)
	case schedule.FieldCompleted:
		return m.OldCompleted(ctx)
	case schedule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case schedule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Schedule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schedule.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case schedule.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case schedule.FieldPatternName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternName(v)
		return nil
	case schedule.FieldInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case schedule.FieldCron:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCron(v)
		return nil
	case schedule.FieldIntervalMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalMs(v)
		return nil
	case schedule.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case schedule.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case schedule.FieldStartAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartAt(v)
		return nil
	case schedule.FieldEndAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndAt(v)
		return nil
	case schedule.FieldMaxRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRuns(v)
		return nil
	case schedule.FieldRunCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunCount(v)
		return nil
	case schedule.FieldNextRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRunAt(v)
		return nil
	case schedule.FieldLastRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunAt(v)
		return nil
	case schedule.FieldLastRunStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunStatus(v)
		return nil
	case schedule.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case schedule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case schedule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Schedule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduleMutation) AddedFields() []string {
	var fields []string
	if m.addinterval_ms != nil {
		fields = append(fields, schedule.FieldIntervalMs)
	}
	if m.addmax_runs != nil {
		fields = append(fields, schedule.FieldMaxRuns)
	}
	if m.addrun_count != nil {
		fields = append(fields, schedule.FieldRunCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case schedule.FieldIntervalMs:
		return m.AddedIntervalMs()
	case schedule.FieldMaxRuns:
		return m.AddedMaxRuns()
	case schedule.FieldRunCount:
		return m.AddedRunCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case schedule.FieldIntervalMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalMs(v)
		return nil
	case schedule.FieldMaxRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRuns(v)
		return nil
	case schedule.FieldRunCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRunCount(v)
		return nil
	}
	return fmt.Errorf("unknown Schedule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(schedule.FieldDescription) {
		fields = append(fields, schedule.FieldDescription)
	}
	if m.FieldCleared(schedule.FieldInput) {
		fields = append(fields, schedule.FieldInput)
	}
	if m.FieldCleared(schedule.FieldCron) {
		fields = append(fields, schedule.FieldCron)
	}
	if m.FieldCleared(schedule.FieldIntervalMs) {
		fields = append(fields, schedule.FieldIntervalMs)
	}
	if m.FieldCleared(schedule.FieldStartAt) {
		fields = append(fields, schedule.FieldStartAt)
	}
	if m.FieldCleared(schedule.FieldEndAt) {
		fields = append(fields, schedule.FieldEndAt)
	}
	if m.FieldCleared(schedule.FieldMaxRuns) {
		fields = append(fields, schedule.FieldMaxRuns)
	}
	if m.FieldCleared(schedule.FieldNextRunAt) {
		fields = append(fields, schedule.FieldNextRunAt)
	}
	if m.FieldCleared(schedule.FieldLastRunAt) {
		fields = append(fields, schedule.FieldLastRunAt)
	}
	if m.FieldCleared(schedule.FieldLastRunStatus) {
		fields = append(fields, schedule.FieldLastRunStatus)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduleMutation) ClearField(name string) error {
	switch name {
	case schedule.FieldDescription:
		m.ClearDescription()
		return nil
	case schedule.FieldInput:
		m.ClearInput()
		return nil
	case schedule.FieldCron:
		m.ClearCron()
		return nil
	case schedule.FieldIntervalMs:
		m.ClearIntervalMs()
		return nil
	case schedule.FieldStartAt:
		m.ClearStartAt()
		return nil
	case schedule.FieldEndAt:
		m.ClearEndAt()
		return nil
	case schedule.FieldMaxRuns:
		m.ClearMaxRuns()
		return nil
	case schedule.FieldNextRunAt:
		m.ClearNextRunAt()
		return nil
	case schedule.FieldLastRunAt:
		m.ClearLastRunAt()
		return nil
	case schedule.FieldLastRunStatus:
		m.ClearLastRunStatus()
		return nil
	}
	return fmt.Errorf("unknown Schedule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduleMutation) ResetField(name string) error {
	switch name {
	case schedule.FieldName:
		m.ResetName()
		return nil
	case schedule.FieldDescription:
		m.ResetDescription()
		return nil
	case schedule.FieldPatternName:
		m.ResetPatternName()
		return nil
	case schedule.FieldInput:
		m.ResetInput()
		return nil
	case schedule.FieldCron:
		m.ResetCron()
		return nil
	case schedule.FieldIntervalMs:
		m.ResetIntervalMs()
		return nil
	case schedule.FieldTimezone:
		m.ResetTimezone()
		return nil
	case schedule.FieldEnabled:
		m.ResetEnabled()
		return nil
	case schedule.FieldStartAt:
		m.ResetStartAt()
		return nil
	case schedule.FieldEndAt:
		m.ResetEndAt()
		return nil
	case schedule.FieldMaxRuns:
		m.ResetMaxRuns()
		return nil
	case schedule.FieldRunCount:
		m.ResetRunCount()
		return nil
	case schedule.FieldNextRunAt:
		m.ResetNextRunAt()
		return nil
	case schedule.FieldLastRunAt:
		m.ResetLastRunAt()
		return nil
	case schedule.FieldLastRunStatus:
		m.ResetLastRunStatus()
		return nil
	case schedule.FieldCompleted:
		m.ResetCompleted()
		return nil
	case schedule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case schedule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Schedule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.runs != nil {
		edges = append(edges, schedule.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case schedule.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedruns != nil {
		edges = append(edges, schedule.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case schedule.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedruns {
		edges = append(edges, schedule.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduleMutation) EdgeCleared(name string) bool {
	switch name {
	case schedule.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduleMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Schedule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduleMutation) ResetEdge(name string) error {
	switch name {
	case schedule.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown Schedule edge %s", name)
}

// ScheduleRunMutation represents an operation that mutates the ScheduleRun nodes in the graph.
type ScheduleRunMutation struct {
	config
	op              Op
	typ             string
	id              *string
	status          *schedulerun.Status
	execution_id    *string
	started_at      *time.Time
	completed_at    *time.Time
	duration_ms     *int64
	addduration_ms  *int64
	error           *string
	clearedFields   map[string]struct{}
	schedule        *string
	clearedschedule bool
	done            bool
	oldValue        func(context.Context) (*ScheduleRun, error)
	predicates      []predicate.ScheduleRun
}

var _ ent.Mutation = (*ScheduleRunMutation)(nil)

// schedulerunOption allows management of the mutation configuration using functional options.
type schedulerunOption func(*ScheduleRunMutation)

// newScheduleRunMutation creates new mutation for the ScheduleRun entity.
func newScheduleRunMutation(c config, op Op, opts ...schedulerunOption) *ScheduleRunMutation {
	m := &ScheduleRunMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduleRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduleRunID sets the ID field of the mutation.
func withScheduleRunID(id string) schedulerunOption {
	return func(m *ScheduleRunMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduleRun
		)
		m.oldValue = func(ctx context.Context) (*ScheduleRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduleRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduleRun sets the old ScheduleRun of the mutation.
func withScheduleRun(node *ScheduleRun) schedulerunOption {
	return func(m *ScheduleRunMutation) {
		m.oldValue = func(context.Context) (*ScheduleRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduleRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduleRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduleRun entities.
func (m *ScheduleRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduleRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduleRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduleRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScheduleID sets the "schedule_id" field.
func (m *ScheduleRunMutation) SetScheduleID(s string) {
	m.schedule = &s
}

// ScheduleID returns the value of the "schedule_id" field in the mutation.
func (m *ScheduleRunMutation) ScheduleID() (r string, exists bool) {
	v := m.schedule
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleID returns the old "schedule_id" field's value of the ScheduleRun entity.
// If the ScheduleRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleRunMutation) OldScheduleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleID: %w", err)
	}
	return oldValue.ScheduleID, nil
}

// ResetScheduleID resets all changes to the "schedule_id" field.
func (m *ScheduleRunMutation) ResetScheduleID() {
	m.schedule = nil
}

// SetStatus sets the "status" field.
func (m *ScheduleRunMutation) SetStatus(s schedulerun.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScheduleRunMutation) Status() (r schedulerun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScheduleRun entity.
// If the ScheduleRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleRunMutation) OldStatus(ctx context.Context) (v schedulerun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScheduleRunMutation) ResetStatus() {
	m.status = nil
}

// SetExecutionID sets the "execution_id" field.
func (m *ScheduleRunMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *ScheduleRunMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the ScheduleRun entity.
// If the ScheduleRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleRunMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ClearExecutionID clears the value of the "execution_id" field.
func (m *ScheduleRunMutation) ClearExecutionID() {
	m.execution_id = nil
	m.clearedFields[schedulerun.FieldExecutionID] = struct{}{}
}

// ExecutionIDCleared returns if the "execution_id" field was cleared in this mutation.
func (m *ScheduleRunMutation) ExecutionIDCleared() bool {
	_, ok := m.clearedFields[schedulerun.FieldExecutionID]
	return ok
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *ScheduleRunMutation) ResetExecutionID() {
	m.execution_id = nil
	delete(m.clearedFields, schedulerun.FieldExecutionID)
}

// SetStartedAt sets the "started_at" field.
func (m *ScheduleRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ScheduleRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ScheduleRun entity.
// If the ScheduleRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ScheduleRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ScheduleRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ScheduleRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ScheduleRun entity.
// If the ScheduleRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ScheduleRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[schedulerun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ScheduleRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[schedulerun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ScheduleRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, schedulerun.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ScheduleRunMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ScheduleRunMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ScheduleRun entity.
// If the ScheduleRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleRunMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ScheduleRunMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ScheduleRunMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *ScheduleRunMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[schedulerun.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *ScheduleRunMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[schedulerun.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ScheduleRunMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, schedulerun.FieldDurationMs)
}

// SetError sets the "error" field.
func (m *ScheduleRunMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *ScheduleRunMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the ScheduleRun entity.
// If the ScheduleRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleRunMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *ScheduleRunMutation) ClearError() {
	m.error = nil
	m.clearedFields[schedulerun.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *ScheduleRunMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[schedulerun.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *ScheduleRunMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, schedulerun.FieldError)
}

// ClearSchedule clears the "schedule" edge to the Schedule entity.
func (m *ScheduleRunMutation) ClearSchedule() {
	m.clearedschedule = true
	m.clearedFields[schedulerun.FieldScheduleID] = struct{}{}
}

// ScheduleCleared reports if the "schedule" edge to the Schedule entity was cleared.
func (m *ScheduleRunMutation) ScheduleCleared() bool {
	return m.clearedschedule
}

// ScheduleIDs returns the "schedule" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScheduleID instead. It exists only for internal usage by the builders.
func (m *ScheduleRunMutation) ScheduleIDs() (ids []string) {
	if id := m.schedule; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSchedule resets all changes to the "schedule" edge.
func (m *ScheduleRunMutation) ResetSchedule() {
	m.schedule = nil
	m.clearedschedule = false
}

// Where appends a list predicates to the ScheduleRunMutation builder.
func (m *ScheduleRunMutation) Where(ps ...predicate.ScheduleRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduleRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduleRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduleRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduleRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduleRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduleRun).
func (m *ScheduleRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduleRunMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.schedule != nil {
		fields = append(fields, schedulerun.FieldScheduleID)
	}
	if m.status != nil {
		fields = append(fields, schedulerun.FieldStatus)
	}
	if m.execution_id != nil {
		fields = append(fields, schedulerun.FieldExecutionID)
	}
	if m.started_at != nil {
		fields = append(fields, schedulerun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, schedulerun.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, schedulerun.FieldDurationMs)
	}
	if m.error != nil {
		fields = append(fields, schedulerun.FieldError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduleRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schedulerun.FieldScheduleID:
		return m.ScheduleID()
	case schedulerun.FieldStatus:
		return m.Status()
	case schedulerun.FieldExecutionID:
		return m.ExecutionID()
	case schedulerun.FieldStartedAt:
		return m.StartedAt()
	case schedulerun.FieldCompletedAt:
		return m.CompletedAt()
	case schedulerun.FieldDurationMs:
		return m.DurationMs()
	case schedulerun.FieldError:
		return m.Error()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduleRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schedulerun.FieldScheduleID:
		return m.OldScheduleID(ctx)
	case schedulerun.FieldStatus:
		return m.OldStatus(ctx)
	case schedulerun.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case schedulerun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case schedulerun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case schedulerun.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case schedulerun.FieldError:
		return m.OldError(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduleRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schedulerun.FieldScheduleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleID(v)
		return nil
	case schedulerun.FieldStatus:
		v, ok := value.(schedulerun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case schedulerun.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case schedulerun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case schedulerun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case schedulerun.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case schedulerun.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduleRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduleRunMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, schedulerun.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduleRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case schedulerun.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case schedulerun.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduleRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduleRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(schedulerun.FieldExecutionID) {
		fields = append(fields, schedulerun.FieldExecutionID)
	}
	if m.FieldCleared(schedulerun.FieldCompletedAt) {
		fields = append(fields, schedulerun.FieldCompletedAt)
	}
	if m.FieldCleared(schedulerun.FieldDurationMs) {
		fields = append(fields, schedulerun.FieldDurationMs)
	}
	if m.FieldCleared(schedulerun.FieldError) {
		fields = append(fields, schedulerun.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduleRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduleRunMutation) ClearField(name string) error {
	switch name {
	case schedulerun.FieldExecutionID:
		m.ClearExecutionID()
		return nil
	case schedulerun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case schedulerun.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case schedulerun.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown ScheduleRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduleRunMutation) ResetField(name string) error {
	switch name {
	case schedulerun.FieldScheduleID:
		m.ResetScheduleID()
		return nil
	case schedulerun.FieldStatus:
		m.ResetStatus()
		return nil
	case schedulerun.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case schedulerun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case schedulerun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case schedulerun.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case schedulerun.FieldError:
		m.ResetError()
		return nil
	}
	return fmt.Errorf("unknown ScheduleRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduleRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.schedule != nil {
		edges = append(edges, schedulerun.EdgeSchedule)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduleRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case schedulerun.EdgeSchedule:
		if id := m.schedule; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduleRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduleRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduleRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedschedule {
		edges = append(edges, schedulerun.EdgeSchedule)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduleRunMutation) EdgeCleared(name string) bool {
	switch name {
	case schedulerun.EdgeSchedule:
		return m.clearedschedule
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduleRunMutation) ClearEdge(name string) error {
	switch name {
	case schedulerun.EdgeSchedule:
		m.ClearSchedule()
		return nil
	}
	return fmt.Errorf("unknown ScheduleRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduleRunMutation) ResetEdge(name string) error {
	switch name {
	case schedulerun.EdgeSchedule:
		m.ResetSchedule()
		return nil
	}
	return fmt.Errorf("unknown ScheduleRun edge %s", name)
}

// TriggerMutation represents an operation that mutates the Trigger nodes in the graph.
type TriggerMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	description   *string
	_type         *trigger.Type
	pattern_name  *string
	enabled       *bool
	webhook_path  *string
	secret        *string
	event_type    *string
	filter        *map[string]interface{}
	input_mapping *map[string]interface{}
	fire_count    *int
	addfire_count *int
	last_fired_at *time.Time
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Trigger, error)
	predicates    []predicate.Trigger
}

var _ ent.Mutation = (*TriggerMutation)(nil)

// triggerOption allows management of the mutation configuration using functional options.
type triggerOption func(*TriggerMutation)

// newTriggerMutation creates new mutation for the Trigger entity.
func newTriggerMutation(c config, op Op, opts ...triggerOption) *TriggerMutation {
	m := &TriggerMutation{
		config:        c,
		op:            op,
		typ:           TypeTrigger,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTriggerID sets the ID field of the mutation.
func withTriggerID(id string) triggerOption {
	return func(m *TriggerMutation) {
		var (
			err   error
			once  sync.Once
			value *Trigger
		)
		m.oldValue = func(ctx context.Context) (*Trigger, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Trigger.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrigger sets the old Trigger of the mutation.
func withTrigger(node *Trigger) triggerOption {
	return func(m *TriggerMutation) {
		m.oldValue = func(context.Context) (*Trigger, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TriggerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TriggerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Trigger entities.
func (m *TriggerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TriggerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TriggerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Trigger.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TriggerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TriggerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TriggerMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TriggerMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TriggerMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TriggerMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[trigger.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TriggerMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[trigger.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TriggerMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, trigger.FieldDescription)
}

// SetType sets the "type" field.
func (m *TriggerMutation) SetType(t trigger.Type) {
	m._type = &t
}

// GetType returns the value of the "type" field in the mutation.
func (m *TriggerMutation) GetType() (r trigger.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldType(ctx context.Context) (v trigger.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *TriggerMutation) ResetType() {
	m._type = nil
}

// SetPatternName sets the "pattern_name" field.
func (m *TriggerMutation) SetPatternName(s string) {
	m.pattern_name = &s
}

// PatternName returns the value of the "pattern_name" field in the mutation.
func (m *TriggerMutation) PatternName() (r string, exists bool) {
	v := m.pattern_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternName returns the old "pattern_name" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldPatternName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternName: %w", err)
	}
	return oldValue.PatternName, nil
}

// ResetPatternName resets all changes to the "pattern_name" field.
func (m *TriggerMutation) ResetPatternName() {
	m.pattern_name = nil
}

// SetEnabled sets the "enabled" field.
func (m *TriggerMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *TriggerMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *TriggerMutation) ResetEnabled() {
	m.enabled = nil
}

// SetWebhookPath sets the "webhook_path" field.
func (m *TriggerMutation) SetWebhookPath(s string) {
	m.webhook_path = &s
}

// WebhookPath returns the value of the "webhook_path" field in the mutation.
func (m *TriggerMutation) WebhookPath() (r string, exists bool) {
	v := m.webhook_path
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookPath returns the old "webhook_path" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldWebhookPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookPath: %w", err)
	}
	return oldValue.WebhookPath, nil
}

// ClearWebhookPath clears the value of the "webhook_path" field.
func (m *TriggerMutation) ClearWebhookPath() {
	m.webhook_path = nil
	m.clearedFields[trigger.FieldWebhookPath] = struct{}{}
}

// WebhookPathCleared returns if the "webhook_path" field was cleared in this mutation.
func (m *TriggerMutation) WebhookPathCleared() bool {
	_, ok := m.clearedFields[trigger.FieldWebhookPath]
	return ok
}

// ResetWebhookPath resets all changes to the "webhook_path" field.
func (m *TriggerMutation) ResetWebhookPath() {
	m.webhook_path = nil
	delete(m.clearedFields, trigger.FieldWebhookPath)
}

// SetSecret sets the "secret" field.
func (m *TriggerMutation) SetSecret(s string) {
	m.secret = &s
}

// Secret returns the value of the "secret" field in the mutation.
func (m *TriggerMutation) Secret() (r string, exists bool) {
	v := m.secret
	if v == nil {
		return
	}
	return *v, true
}

// OldSecret returns the old "secret" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldSecret(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecret: %w", err)
	}
	return oldValue.Secret, nil
}

// ClearSecret clears the value of the "secret" field.
func (m *TriggerMutation) ClearSecret() {
	m.secret = nil
	m.clearedFields[trigger.FieldSecret] = struct{}{}
}

// SecretCleared returns if the "secret" field was cleared in this mutation.
func (m *TriggerMutation) SecretCleared() bool {
	_, ok := m.clearedFields[trigger.FieldSecret]
	return ok
}

// ResetSecret resets all changes to the "secret" field.
func (m *TriggerMutation) ResetSecret() {
	m.secret = nil
	delete(m.clearedFields, trigger.FieldSecret)
}

// SetEventType sets the "event_type" field.
func (m *TriggerMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *TriggerMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ClearEventType clears the value of the "event_type" field.
func (m *TriggerMutation) ClearEventType() {
	m.event_type = nil
	m.clearedFields[trigger.FieldEventType] = struct{}{}
}

// EventTypeCleared returns if the "event_type" field was cleared in this mutation.
func (m *TriggerMutation) EventTypeCleared() bool {
	_, ok := m.clearedFields[trigger.FieldEventType]
	return ok
}

// ResetEventType resets all changes to the "event_type" field.
func (m *TriggerMutation) ResetEventType() {
	m.event_type = nil
	delete(m.clearedFields, trigger.FieldEventType)
}

// SetFilter sets the "filter" field.
func (m *TriggerMutation) SetFilter(value map[string]interface{}) {
	m.filter = &value
}

// Filter returns the value of the "filter" field in the mutation.
func (m *TriggerMutation) Filter() (r map[string]interface{}, exists bool) {
	v := m.filter
	if v == nil {
		return
	}
	return *v, true
}

// OldFilter returns the old "filter" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldFilter(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilter: %w", err)
	}
	return oldValue.Filter, nil
}

// ClearFilter clears the value of the "filter" field.
func (m *TriggerMutation) ClearFilter() {
	m.filter = nil
	m.clearedFields[trigger.FieldFilter] = struct{}{}
}

// FilterCleared returns if the "filter" field was cleared in this mutation.
func (m *TriggerMutation) FilterCleared() bool {
	_, ok := m.clearedFields[trigger.FieldFilter]
	return ok
}

// ResetFilter resets all changes to the "filter" field.
func (m *TriggerMutation) ResetFilter() {
	m.filter = nil
	delete(m.clearedFields, trigger.FieldFilter)
}

// SetInputMapping sets the "input_mapping" field.
func (m *TriggerMutation) SetInputMapping(value map[string]interface{}) {
	m.input_mapping = &value
}

// InputMapping returns the value of the "input_mapping" field in the mutation.
func (m *TriggerMutation) InputMapping() (r map[string]interface{}, exists bool) {
	v := m.input_mapping
	if v == nil {
		return
	}
	return *v, true
}

// OldInputMapping returns the old "input_mapping" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldInputMapping(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputMapping is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputMapping requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputMapping: %w", err)
	}
	return oldValue.InputMapping, nil
}

// ClearInputMapping clears the value of the "input_mapping" field.
func (m *TriggerMutation) ClearInputMapping() {
	m.input_mapping = nil
	m.clearedFields[trigger.FieldInputMapping] = struct{}{}
}

// InputMappingCleared returns if the "input_mapping" field was cleared in this mutation.
func (m *TriggerMutation) InputMappingCleared() bool {
	_, ok := m.clearedFields[trigger.FieldInputMapping]
	return ok
}

// ResetInputMapping resets all changes to the "input_mapping" field.
func (m *TriggerMutation) ResetInputMapping() {
	m.input_mapping = nil
	delete(m.clearedFields, trigger.FieldInputMapping)
}

// SetFireCount sets the "fire_count" field.
func (m *TriggerMutation) SetFireCount(i int) {
	m.fire_count = &i
	m.addfire_count = nil
}

// FireCount returns the value of the "fire_count" field in the mutation.
func (m *TriggerMutation) FireCount() (r int, exists bool) {
	v := m.fire_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFireCount returns the old "fire_count" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldFireCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFireCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFireCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFireCount: %w", err)
	}
	return oldValue.FireCount, nil
}

// AddFireCount adds i to the "fire_count" field.
func (m *TriggerMutation) AddFireCount(i int) {
	if m.addfire_count != nil {
		*m.addfire_count += i
	} else {
		m.addfire_count = &i
	}
}

// AddedFireCount returns the value that was added to the "fire_count" field in this mutation.
func (m *TriggerMutation) AddedFireCount() (r int, exists bool) {
	v := m.addfire_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFireCount resets all changes to the "fire_count" field.
func (m *TriggerMutation) ResetFireCount() {
	m.fire_count = nil
	m.addfire_count = nil
}

// SetLastFiredAt sets the "last_fired_at" field.
func (m *TriggerMutation) SetLastFiredAt(t time.Time) {
	m.last_fired_at = &t
}

// LastFiredAt returns the value of the "last_fired_at" field in the mutation.
func (m *TriggerMutation) LastFiredAt() (r time.Time, exists bool) {
	v := m.last_fired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastFiredAt returns the old "last_fired_at" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldLastFiredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastFiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastFiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastFiredAt: %w", err)
	}
	return oldValue.LastFiredAt, nil
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (m *TriggerMutation) ClearLastFiredAt() {
	m.last_fired_at = nil
	m.clearedFields[trigger.FieldLastFiredAt] = struct{}{}
}

// LastFiredAtCleared returns if the "last_fired_at" field was cleared in this mutation.
func (m *TriggerMutation) LastFiredAtCleared() bool {
	_, ok := m.clearedFields[trigger.FieldLastFiredAt]
	return ok
}

// ResetLastFiredAt resets all changes to the "last_fired_at" field.
func (m *TriggerMutation) ResetLastFiredAt() {
	m.last_fired_at = nil
	delete(m.clearedFields, trigger.FieldLastFiredAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TriggerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TriggerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TriggerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TriggerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TriggerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Trigger entity.
// If the Trigger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TriggerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TriggerMutation builder.
func (m *TriggerMutation) Where(ps ...predicate.Trigger) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TriggerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TriggerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Trigger, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TriggerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TriggerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Trigger).
func (m *TriggerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TriggerMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.name != nil {
		fields = append(fields, trigger.FieldName)
	}
	if m.description != nil {
		fields = append(fields, trigger.FieldDescription)
	}
	if m._type != nil {
		fields = append(fields, trigger.FieldType)
	}
	if m.pattern_name != nil {
		fields = append(fields, trigger.FieldPatternName)
	}
	if m.enabled != nil {
		fields = append(fields, trigger.FieldEnabled)
	}
	if m.webhook_path != nil {
		fields = append(fields, trigger.FieldWebhookPath)
	}
	if m.secret != nil {
		fields = append(fields, trigger.FieldSecret)
	}
	if m.event_type != nil {
		fields = append(fields, trigger.FieldEventType)
	}
	if m.filter != nil {
		fields = append(fields, trigger.FieldFilter)
	}
	if m.input_mapping != nil {
		fields = append(fields, trigger.FieldInputMapping)
	}
	if m.fire_count != nil {
		fields = append(fields, trigger.FieldFireCount)
	}
	if m.last_fired_at != nil {
		fields = append(fields, trigger.FieldLastFiredAt)
	}
	if m.created_at != nil {
		fields = append(fields, trigger.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, trigger.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TriggerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trigger.FieldName:
		return m.Name()
	case trigger.FieldDescription:
		return m.Description()
	case trigger.FieldType:
		return m.GetType()
	case trigger.FieldPatternName:
		return m.PatternName()
	case trigger.FieldEnabled:
		return m.Enabled()
	case trigger.FieldWebhookPath:
		return m.WebhookPath()
	case trigger.FieldSecret:
		return m.Secret()
	case trigger.FieldEventType:
		return m.EventType()
	case trigger.FieldFilter:
		return m.Filter()
	case trigger.FieldInputMapping:
		return m.InputMapping()
	case trigger.FieldFireCount:
		return m.FireCount()
	case trigger.FieldLastFiredAt:
		return m.LastFiredAt()
	case trigger.FieldCreatedAt:
		return m.CreatedAt()
	case trigger.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TriggerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trigger.FieldName:
		return m.OldName(ctx)
	case trigger.FieldDescription:
		return m.OldDescription(ctx)
	case trigger.FieldType:
		return m.OldType(ctx)
	case trigger.FieldPatternName:
		return m.OldPatternName(ctx)
	case trigger.FieldEnabled:
		return m.OldEnabled(ctx)
	case trigger.FieldWebhookPath:
		return m.OldWebhookPath(ctx)
	case trigger.FieldSecret:
		return m.OldSecret(ctx)
	case trigger.FieldEventType:
		return m.OldEventType(ctx)
	case trigger.FieldFilter:
		return m.OldFilter(ctx)
	case trigger.FieldInputMapping:
		return m.OldInputMapping(ctx)
	case trigger.FieldFireCount:
		return m.OldFireCount(ctx)
	case trigger.FieldLastFiredAt:
		return m.OldLastFiredAt(ctx)
	case trigger.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case trigger.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Trigger field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriggerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trigger.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case trigger.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case trigger.FieldType:
		v, ok := value.(trigger.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case trigger.FieldPatternName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternName(v)
		return nil
	case trigger.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case trigger.FieldWebhookPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookPath(v)
		return nil
	case trigger.FieldSecret:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecret(v)
		return nil
	case trigger.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case trigger.FieldFilter:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilter(v)
		return nil
	case trigger.FieldInputMapping:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputMapping(v)
		return nil
	case trigger.FieldFireCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFireCount(v)
		return nil
	case trigger.FieldLastFiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastFiredAt(v)
		return nil
	case trigger.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case trigger.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Trigger field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TriggerMutation) AddedFields() []string {
	var fields []string
	if m.addfire_count != nil {
		fields = append(fields, trigger.FieldFireCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TriggerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trigger.FieldFireCount:
		return m.AddedFireCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriggerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trigger.FieldFireCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFireCount(v)
		return nil
	}
	return fmt.Errorf("unknown Trigger numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TriggerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trigger.FieldDescription) {
		fields = append(fields, trigger.FieldDescription)
	}
	if m.FieldCleared(trigger.FieldWebhookPath) {
		fields = append(fields, trigger.FieldWebhookPath)
	}
	if m.FieldCleared(trigger.FieldSecret) {
		fields = append(fields, trigger.FieldSecret)
	}
	if m.FieldCleared(trigger.FieldEventType) {
		fields = append(fields, trigger.FieldEventType)
	}
	if m.FieldCleared(trigger.FieldFilter) {
		fields = append(fields, trigger.FieldFilter)
	}
	if m.FieldCleared(trigger.FieldInputMapping) {
		fields = append(fields, trigger.FieldInputMapping)
	}
	if m.FieldCleared(trigger.FieldLastFiredAt) {
		fields = append(fields, trigger.FieldLastFiredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TriggerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TriggerMutation) ClearField(name string) error {
	switch name {
	case trigger.FieldDescription:
		m.ClearDescription()
		return nil
	case trigger.FieldWebhookPath:
		m.ClearWebhookPath()
		return nil
	case trigger.FieldSecret:
		m.ClearSecret()
		return nil
	case trigger.FieldEventType:
		m.ClearEventType()
		return nil
	case trigger.FieldFilter:
		m.ClearFilter()
		return nil
	case trigger.FieldInputMapping:
		m.ClearInputMapping()
		return nil
	case trigger.FieldLastFiredAt:
		m.ClearLastFiredAt()
		return nil
	}
	return fmt.Errorf("unknown Trigger nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TriggerMutation) ResetField(name string) error {
	switch name {
	case trigger.FieldName:
		m.ResetName()
		return nil
	case trigger.FieldDescription:
		m.ResetDescription()
		return nil
	case trigger.FieldType:
		m.ResetType()
		return nil
	case trigger.FieldPatternName:
		m.ResetPatternName()
		return nil
	case trigger.FieldEnabled:
		m.ResetEnabled()
		return nil
	case trigger.FieldWebhookPath:
		m.ResetWebhookPath()
		return nil
	case trigger.FieldSecret:
		m.ResetSecret()
		return nil
	case trigger.FieldEventType:
		m.ResetEventType()
		return nil
	case trigger.FieldFilter:
		m.ResetFilter()
		return nil
	case trigger.FieldInputMapping:
		m.ResetInputMapping()
		return nil
	case trigger.FieldFireCount:
		m.ResetFireCount()
		return nil
	case trigger.FieldLastFiredAt:
		m.ResetLastFiredAt()
		return nil
	case trigger.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case trigger.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Trigger field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TriggerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TriggerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TriggerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TriggerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TriggerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TriggerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TriggerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Trigger unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TriggerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Trigger edge %s", name)
}
