// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/parallax-dev/parallax/ent/predicate"
	"github.com/parallax-dev/parallax/ent/schedule"
	"github.com/parallax-dev/parallax/ent/schedulerun"
)

// ScheduleUpdate is the builder for updating Schedule entities.
type ScheduleUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduleMutation
}

// Where appends a list predicates to the ScheduleUpdate builder.
func (_u *ScheduleUpdate) Where(ps ...predicate.Schedule) *ScheduleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ScheduleUpdate) SetName(v string) *ScheduleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableName(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ScheduleUpdate) SetDescription(v string) *ScheduleUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableDescription(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ScheduleUpdate) ClearDescription() *ScheduleUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPatternName sets the "pattern_name" field.
func (_u *ScheduleUpdate) SetPatternName(v string) *ScheduleUpdate {
	_u.mutation.SetPatternName(v)
	return _u
}

// SetNillablePatternName sets the "pattern_name" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillablePatternName(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetPatternName(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *ScheduleUpdate) SetInput(v map[string]interface{}) *ScheduleUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *ScheduleUpdate) ClearInput() *ScheduleUpdate {
	_u.mutation.ClearInput()
	return _u
}

// SetCron sets the "cron" field.
func (_u *ScheduleUpdate) SetCron(v string) *ScheduleUpdate {
	_u.mutation.SetCron(v)
	return _u
}

// SetNillableCron sets the "cron" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableCron(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetCron(*v)
	}
	return _u
}

// ClearCron clears the value of the "cron" field.
func (_u *ScheduleUpdate) ClearCron() *ScheduleUpdate {
	_u.mutation.ClearCron()
	return _u
}

// SetIntervalMs sets the "interval_ms" field.
func (_u *ScheduleUpdate) SetIntervalMs(v int64) *ScheduleUpdate {
	_u.mutation.ResetIntervalMs()
	_u.mutation.SetIntervalMs(v)
	return _u
}

// SetNillableIntervalMs sets the "interval_ms" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableIntervalMs(v *int64) *ScheduleUpdate {
	if v != nil {
		_u.SetIntervalMs(*v)
	}
	return _u
}

// AddIntervalMs adds value to the "interval_ms" field.
func (_u *ScheduleUpdate) AddIntervalMs(v int64) *ScheduleUpdate {
	_u.mutation.AddIntervalMs(v)
	return _u
}

// ClearIntervalMs clears the value of the "interval_ms" field.
func (_u *ScheduleUpdate) ClearIntervalMs() *ScheduleUpdate {
	_u.mutation.ClearIntervalMs()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ScheduleUpdate) SetTimezone(v string) *ScheduleUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableTimezone(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ScheduleUpdate) SetEnabled(v bool) *ScheduleUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableEnabled(v *bool) *ScheduleUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetStartAt sets the "start_at" field.
func (_u *ScheduleUpdate) SetStartAt(v time.Time) *ScheduleUpdate {
	_u.mutation.SetStartAt(v)
	return _u
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableStartAt(v *time.Time) *ScheduleUpdate {
	if v != nil {
		_u.SetStartAt(*v)
	}
	return _u
}

// ClearStartAt clears the value of the "start_at" field.
func (_u *ScheduleUpdate) ClearStartAt() *ScheduleUpdate {
	_u.mutation.ClearStartAt()
	return _u
}

// SetEndAt sets the "end_at" field.
func (_u *ScheduleUpdate) SetEndAt(v time.Time) *ScheduleUpdate {
	_u.mutation.SetEndAt(v)
	return _u
}

// SetNillableEndAt sets the "end_at" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableEndAt(v *time.Time) *ScheduleUpdate {
	if v != nil {
		_u.SetEndAt(*v)
	}
	return _u
}

// ClearEndAt clears the value of the "end_at" field.
func (_u *ScheduleUpdate) ClearEndAt() *ScheduleUpdate {
	_u.mutation.ClearEndAt()
	return _u
}

// SetMaxRuns sets the "max_runs" field.
func (_u *ScheduleUpdate) SetMaxRuns(v int) *ScheduleUpdate {
	_u.mutation.ResetMaxRuns()
	_u.mutation.SetMaxRuns(v)
	return _u
}

// SetNillableMaxRuns sets the "max_runs" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableMaxRuns(v *int) *ScheduleUpdate {
	if v != nil {
		_u.SetMaxRuns(*v)
	}
	return _u
}

// AddMaxRuns adds value to the "max_runs" field.
func (_u *ScheduleUpdate) AddMaxRuns(v int) *ScheduleUpdate {
	_u.mutation.AddMaxRuns(v)
	return _u
}

// ClearMaxRuns clears the value of the "max_runs" field.
func (_u *ScheduleUpdate) ClearMaxRuns() *ScheduleUpdate {
	_u.mutation.ClearMaxRuns()
	return _u
}

// SetRunCount sets the "run_count" field.
func (_u *ScheduleUpdate) SetRunCount(v int) *ScheduleUpdate {
	_u.mutation.ResetRunCount()
	_u.mutation.SetRunCount(v)
	return _u
}

// SetNillableRunCount sets the "run_count" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableRunCount(v *int) *ScheduleUpdate {
	if v != nil {
		_u.SetRunCount(*v)
	}
	return _u
}

// AddRunCount adds value to the "run_count" field.
func (_u *ScheduleUpdate) AddRunCount(v int) *ScheduleUpdate {
	_u.mutation.AddRunCount(v)
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *ScheduleUpdate) SetNextRunAt(v time.Time) *ScheduleUpdate {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableNextRunAt(v *time.Time) *ScheduleUpdate {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *ScheduleUpdate) ClearNextRunAt() *ScheduleUpdate {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ScheduleUpdate) SetLastRunAt(v time.Time) *ScheduleUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableLastRunAt(v *time.Time) *ScheduleUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *ScheduleUpdate) ClearLastRunAt() *ScheduleUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetLastRunStatus sets the "last_run_status" field.
func (_u *ScheduleUpdate) SetLastRunStatus(v string) *ScheduleUpdate {
	_u.mutation.SetLastRunStatus(v)
	return _u
}

// SetNillableLastRunStatus sets the "last_run_status" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableLastRunStatus(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetLastRunStatus(*v)
	}
	return _u
}

// ClearLastRunStatus clears the value of the "last_run_status" field.
func (_u *ScheduleUpdate) ClearLastRunStatus() *ScheduleUpdate {
	_u.mutation.ClearLastRunStatus()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ScheduleUpdate) SetCompleted(v bool) *ScheduleUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableCompleted(v *bool) *ScheduleUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduleUpdate) SetUpdatedAt(v time.Time) *ScheduleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableUpdatedAt(v *time.Time) *ScheduleUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddRunIDs adds the "runs" edge to the ScheduleRun entity by IDs.
func (_u *ScheduleUpdate) AddRunIDs(ids ...string) *ScheduleUpdate {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the ScheduleRun entity.
func (_u *ScheduleUpdate) AddRuns(v ...*ScheduleRun) *ScheduleUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the ScheduleMutation object of the builder.
func (_u *ScheduleUpdate) Mutation() *ScheduleMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the ScheduleRun entity.
func (_u *ScheduleUpdate) ClearRuns() *ScheduleUpdate {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to ScheduleRun entities by IDs.
func (_u *ScheduleUpdate) RemoveRunIDs(ids ...string) *ScheduleUpdate {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to ScheduleRun entities.
func (_u *ScheduleUpdate) RemoveRuns(v ...*ScheduleRun) *ScheduleUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduleUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := schedule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Schedule.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatternName(); ok {
		if err := schedule.PatternNameValidator(v); err != nil {
			return &ValidationError{Name: "pattern_name", err: fmt.Errorf(`ent: validator failed for field "Schedule.pattern_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schedule.Table, schedule.Columns, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(schedule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(schedule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(schedule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PatternName(); ok {
		_spec.SetField(schedule.FieldPatternName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(schedule.FieldInput, field.TypeJSON, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(schedule.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cron(); ok {
		_spec.SetField(schedule.FieldCron, field.TypeString, value)
	}
	if _u.mutation.CronCleared() {
		_spec.ClearField(schedule.FieldCron, field.TypeString)
	}
	if value, ok := _u.mutation.IntervalMs(); ok {
		_spec.SetField(schedule.FieldIntervalMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIntervalMs(); ok {
		_spec.AddField(schedule.FieldIntervalMs, field.TypeInt64, value)
	}
	if _u.mutation.IntervalMsCleared() {
		_spec.ClearField(schedule.FieldIntervalMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(schedule.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(schedule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartAt(); ok {
		_spec.SetField(schedule.FieldStartAt, field.TypeTime, value)
	}
	if _u.mutation.StartAtCleared() {
		_spec.ClearField(schedule.FieldStartAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndAt(); ok {
		_spec.SetField(schedule.FieldEndAt, field.TypeTime, value)
	}
	if _u.mutation.EndAtCleared() {
		_spec.ClearField(schedule.FieldEndAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MaxRuns(); ok {
		_spec.SetField(schedule.FieldMaxRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRuns(); ok {
		_spec.AddField(schedule.FieldMaxRuns, field.TypeInt, value)
	}
	if _u.mutation.MaxRunsCleared() {
		_spec.ClearField(schedule.FieldMaxRuns, field.TypeInt)
	}
	if value, ok := _u.mutation.RunCount(); ok {
		_spec.SetField(schedule.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRunCount(); ok {
		_spec.AddField(schedule.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(schedule.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(schedule.FieldNextRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(schedule.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(schedule.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunStatus(); ok {
		_spec.SetField(schedule.FieldLastRunStatus, field.TypeString, value)
	}
	if _u.mutation.LastRunStatusCleared() {
		_spec.ClearField(schedule.FieldLastRunStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(schedule.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(schedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   schedule.RunsTable,
			Columns: []string{schedule.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schedulerun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   schedule.RunsTable,
			Columns: []string{schedule.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schedulerun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   schedule.RunsTable,
			Columns: []string{schedule.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schedulerun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduleUpdateOne is the builder for updating a single Schedule entity.
type ScheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduleMutation
}

// SetName sets the "name" field.
func (_u *ScheduleUpdateOne) SetName(v string) *ScheduleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableName(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ScheduleUpdateOne) SetDescription(v string) *ScheduleUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableDescription(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ScheduleUpdateOne) ClearDescription() *ScheduleUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPatternName sets the "pattern_name" field.
func (_u *ScheduleUpdateOne) SetPatternName(v string) *ScheduleUpdateOne {
	_u.mutation.SetPatternName(v)
	return _u
}

// SetNillablePatternName sets the "pattern_name" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillablePatternName(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetPatternName(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *ScheduleUpdateOne) SetInput(v map[string]interface{}) *ScheduleUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *ScheduleUpdateOne) ClearInput() *ScheduleUpdateOne {
	_u.mutation.ClearInput()
	return _u
}

// SetCron sets the "cron" field.
func (_u *ScheduleUpdateOne) SetCron(v string) *ScheduleUpdateOne {
	_u.mutation.SetCron(v)
	return _u
}

// SetNillableCron sets the "cron" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableCron(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetCron(*v)
	}
	return _u
}

// ClearCron clears the value of the "cron" field.
func (_u *ScheduleUpdateOne) ClearCron() *ScheduleUpdateOne {
	_u.mutation.ClearCron()
	return _u
}

// SetIntervalMs sets the "interval_ms" field.
func (_u *ScheduleUpdateOne) SetIntervalMs(v int64) *ScheduleUpdateOne {
	_u.mutation.ResetIntervalMs()
	_u.mutation.SetIntervalMs(v)
	return _u
}

// SetNillableIntervalMs sets the "interval_ms" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableIntervalMs(v *int64) *ScheduleUpdateOne {
	if v != nil {
		_u.SetIntervalMs(*v)
	}
	return _u
}

// AddIntervalMs adds value to the "interval_ms" field.
func (_u *ScheduleUpdateOne) AddIntervalMs(v int64) *ScheduleUpdateOne {
	_u.mutation.AddIntervalMs(v)
	return _u
}

// ClearIntervalMs clears the value of the "interval_ms" field.
func (_u *ScheduleUpdateOne) ClearIntervalMs() *ScheduleUpdateOne {
	_u.mutation.ClearIntervalMs()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ScheduleUpdateOne) SetTimezone(v string) *ScheduleUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableTimezone(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ScheduleUpdateOne) SetEnabled(v bool) *ScheduleUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableEnabled(v *bool) *ScheduleUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetStartAt sets the "start_at" field.
func (_u *ScheduleUpdateOne) SetStartAt(v time.Time) *ScheduleUpdateOne {
	_u.mutation.SetStartAt(v)
	return _u
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableStartAt(v *time.Time) *ScheduleUpdateOne {
	if v != nil {
		_u.SetStartAt(*v)
	}
	return _u
}

// ClearStartAt clears the value of the "start_at" field.
func (_u *ScheduleUpdateOne) ClearStartAt() *ScheduleUpdateOne {
	_u.mutation.ClearStartAt()
	return _u
}

// SetEndAt sets the "end_at" field.
func (_u *ScheduleUpdateOne) SetEndAt(v time.Time) *ScheduleUpdateOne {
	_u.mutation.SetEndAt(v)
	return _u
}

// SetNillableEndAt sets the "end_at" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableEndAt(v *time.Time) *ScheduleUpdateOne {
	if v != nil {
		_u.SetEndAt(*v)
	}
	return _u
}

// ClearEndAt clears the value of the "end_at" field.
func (_u *ScheduleUpdateOne) ClearEndAt() *ScheduleUpdateOne {
	_u.mutation.ClearEndAt()
	return _u
}

// SetMaxRuns sets the "max_runs" field.
func (_u *ScheduleUpdateOne) SetMaxRuns(v int) *ScheduleUpdateOne {
	_u.mutation.ResetMaxRuns()
	_u.mutation.SetMaxRuns(v)
	return _u
}

// SetNillableMaxRuns sets the "max_runs" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableMaxRuns(v *int) *ScheduleUpdateOne {
	if v != nil {
		_u.SetMaxRuns(*v)
	}
	return _u
}

// AddMaxRuns adds value to the "max_runs" field.
func (_u *ScheduleUpdateOne) AddMaxRuns(v int) *ScheduleUpdateOne {
	_u.mutation.AddMaxRuns(v)
	return _u
}

// ClearMaxRuns clears the value of the "max_runs" field.
func (_u *ScheduleUpdateOne) ClearMaxRuns() *ScheduleUpdateOne {
	_u.mutation.ClearMaxRuns()
	return _u
}

// SetRunCount sets the "run_count" field.
func (_u *ScheduleUpdateOne) SetRunCount(v int) *ScheduleUpdateOne {
	_u.mutation.ResetRunCount()
	_u.mutation.SetRunCount(v)
	return _u
}

// SetNillableRunCount sets the "run_count" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableRunCount(v *int) *ScheduleUpdateOne {
	if v != nil {
		_u.SetRunCount(*v)
	}
	return _u
}

// AddRunCount adds value to the "run_count" field.
func (_u *ScheduleUpdateOne) AddRunCount(v int) *ScheduleUpdateOne {
	_u.mutation.AddRunCount(v)
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *ScheduleUpdateOne) SetNextRunAt(v time.Time) *ScheduleUpdateOne {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableNextRunAt(v *time.Time) *ScheduleUpdateOne {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *ScheduleUpdateOne) ClearNextRunAt() *ScheduleUpdateOne {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ScheduleUpdateOne) SetLastRunAt(v time.Time) *ScheduleUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableLastRunAt(v *time.Time) *ScheduleUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *ScheduleUpdateOne) ClearLastRunAt() *ScheduleUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetLastRunStatus sets the "last_run_status" field.
func (_u *ScheduleUpdateOne) SetLastRunStatus(v string) *ScheduleUpdateOne {
	_u.mutation.SetLastRunStatus(v)
	return _u
}

// SetNillableLastRunStatus sets the "last_run_status" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableLastRunStatus(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetLastRunStatus(*v)
	}
	return _u
}

// ClearLastRunStatus clears the value of the "last_run_status" field.
func (_u *ScheduleUpdateOne) ClearLastRunStatus() *ScheduleUpdateOne {
	_u.mutation.ClearLastRunStatus()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ScheduleUpdateOne) SetCompleted(v bool) *ScheduleUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableCompleted(v *bool) *ScheduleUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduleUpdateOne) SetUpdatedAt(v time.Time) *ScheduleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableUpdatedAt(v *time.Time) *ScheduleUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddRunIDs adds the "runs" edge to the ScheduleRun entity by IDs.
func (_u *ScheduleUpdateOne) AddRunIDs(ids ...string) *ScheduleUpdateOne {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the ScheduleRun entity.
func (_u *ScheduleUpdateOne) AddRuns(v ...*ScheduleRun) *ScheduleUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the ScheduleMutation object of the builder.
func (_u *ScheduleUpdateOne) Mutation() *ScheduleMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the ScheduleRun entity.
func (_u *ScheduleUpdateOne) ClearRuns() *ScheduleUpdateOne {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to ScheduleRun entities by IDs.
func (_u *ScheduleUpdateOne) RemoveRunIDs(ids ...string) *ScheduleUpdateOne {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to ScheduleRun entities.
func (_u *ScheduleUpdateOne) RemoveRuns(v ...*ScheduleRun) *ScheduleUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Where appends a list predicates to the ScheduleUpdate builder.
func (_u *ScheduleUpdateOne) Where(ps ...predicate.Schedule) *ScheduleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduleUpdateOne) Select(field string, fields ...string) *ScheduleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Schedule entity.
func (_u *ScheduleUpdateOne) Save(ctx context.Context) (*Schedule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleUpdateOne) SaveX(ctx context.Context) *Schedule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduleUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := schedule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Schedule.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatternName(); ok {
		if err := schedule.PatternNameValidator(v); err != nil {
			return &ValidationError{Name: "pattern_name", err: fmt.Errorf(`ent: validator failed for field "Schedule.pattern_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduleUpdateOne) sqlSave(ctx context.Context) (_node *Schedule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schedule.Table, schedule.Columns, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Schedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schedule.FieldID)
		for _, f := range fields {
			if !schedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schedule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(schedule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(schedule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(schedule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PatternName(); ok {
		_spec.SetField(schedule.FieldPatternName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(schedule.FieldInput, field.TypeJSON, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(schedule.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cron(); ok {
		_spec.SetField(schedule.FieldCron, field.TypeString, value)
	}
	if _u.mutation.CronCleared() {
		_spec.ClearField(schedule.FieldCron, field.TypeString)
	}
	if value, ok := _u.mutation.IntervalMs(); ok {
		_spec.SetField(schedule.FieldIntervalMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIntervalMs(); ok {
		_spec.AddField(schedule.FieldIntervalMs, field.TypeInt64, value)
	}
	if _u.mutation.IntervalMsCleared() {
		_spec.ClearField(schedule.FieldIntervalMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(schedule.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(schedule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartAt(); ok {
		_spec.SetField(schedule.FieldStartAt, field.TypeTime, value)
	}
	if _u.mutation.StartAtCleared() {
		_spec.ClearField(schedule.FieldStartAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndAt(); ok {
		_spec.SetField(schedule.FieldEndAt, field.TypeTime, value)
	}
	if _u.mutation.EndAtCleared() {
		_spec.ClearField(schedule.FieldEndAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MaxRuns(); ok {
		_spec.SetField(schedule.FieldMaxRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRuns(); ok {
		_spec.AddField(schedule.FieldMaxRuns, field.TypeInt, value)
	}
	if _u.mutation.MaxRunsCleared() {
		_spec.ClearField(schedule.FieldMaxRuns, field.TypeInt)
	}
	if value, ok := _u.mutation.RunCount(); ok {
		_spec.SetField(schedule.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRunCount(); ok {
		_spec.AddField(schedule.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(schedule.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(schedule.FieldNextRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(schedule.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(schedule.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunStatus(); ok {
		_spec.SetField(schedule.FieldLastRunStatus, field.TypeString, value)
	}
	if _u.mutation.LastRunStatusCleared() {
		_spec.ClearField(schedule.FieldLastRunStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(schedule.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(schedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   schedule.RunsTable,
			Columns: []string{schedule.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schedulerun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   schedule.RunsTable,
			Columns: []string{schedule.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schedulerun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   schedule.RunsTable,
			Columns: []string{schedule.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schedulerun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Schedule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
