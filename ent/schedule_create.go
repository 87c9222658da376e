// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/parallax-dev/parallax/ent/schedule"
	"github.com/parallax-dev/parallax/ent/schedulerun"
)

// ScheduleCreate is the builder for creating a Schedule entity.
type ScheduleCreate struct {
	config
	mutation *ScheduleMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ScheduleCreate) SetName(v string) *ScheduleCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ScheduleCreate) SetDescription(v string) *ScheduleCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableDescription(v *string) *ScheduleCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPatternName sets the "pattern_name" field.
func (_c *ScheduleCreate) SetPatternName(v string) *ScheduleCreate {
	_c.mutation.SetPatternName(v)
	return _c
}

// SetInput sets the "input" field.
func (_c *ScheduleCreate) SetInput(v map[string]interface{}) *ScheduleCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetCron sets the "cron" field.
func (_c *ScheduleCreate) SetCron(v string) *ScheduleCreate {
	_c.mutation.SetCron(v)
	return _c
}

// SetNillableCron sets the "cron" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableCron(v *string) *ScheduleCreate {
	if v != nil {
		_c.SetCron(*v)
	}
	return _c
}

// SetIntervalMs sets the "interval_ms" field.
func (_c *ScheduleCreate) SetIntervalMs(v int64) *ScheduleCreate {
	_c.mutation.SetIntervalMs(v)
	return _c
}

// SetNillableIntervalMs sets the "interval_ms" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableIntervalMs(v *int64) *ScheduleCreate {
	if v != nil {
		_c.SetIntervalMs(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *ScheduleCreate) SetTimezone(v string) *ScheduleCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableTimezone(v *string) *ScheduleCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ScheduleCreate) SetEnabled(v bool) *ScheduleCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableEnabled(v *bool) *ScheduleCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetStartAt sets the "start_at" field.
func (_c *ScheduleCreate) SetStartAt(v time.Time) *ScheduleCreate {
	_c.mutation.SetStartAt(v)
	return _c
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableStartAt(v *time.Time) *ScheduleCreate {
	if v != nil {
		_c.SetStartAt(*v)
	}
	return _c
}

// SetEndAt sets the "end_at" field.
func (_c *ScheduleCreate) SetEndAt(v time.Time) *ScheduleCreate {
	_c.mutation.SetEndAt(v)
	return _c
}

// SetNillableEndAt sets the "end_at" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableEndAt(v *time.Time) *ScheduleCreate {
	if v != nil {
		_c.SetEndAt(*v)
	}
	return _c
}

// SetMaxRuns sets the "max_runs" field.
func (_c *ScheduleCreate) SetMaxRuns(v int) *ScheduleCreate {
	_c.mutation.SetMaxRuns(v)
	return _c
}

// SetNillableMaxRuns sets the "max_runs" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableMaxRuns(v *int) *ScheduleCreate {
	if v != nil {
		_c.SetMaxRuns(*v)
	}
	return _c
}

// SetRunCount sets the "run_count" field.
func (_c *ScheduleCreate) SetRunCount(v int) *ScheduleCreate {
	_c.mutation.SetRunCount(v)
	return _c
}

// SetNillableRunCount sets the "run_count" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableRunCount(v *int) *ScheduleCreate {
	if v != nil {
		_c.SetRunCount(*v)
	}
	return _c
}

// SetNextRunAt sets the "next_run_at" field.
func (_c *ScheduleCreate) SetNextRunAt(v time.Time) *ScheduleCreate {
	_c.mutation.SetNextRunAt(v)
	return _c
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableNextRunAt(v *time.Time) *ScheduleCreate {
	if v != nil {
		_c.SetNextRunAt(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *ScheduleCreate) SetLastRunAt(v time.Time) *ScheduleCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableLastRunAt(v *time.Time) *ScheduleCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetLastRunStatus sets the "last_run_status" field.
func (_c *ScheduleCreate) SetLastRunStatus(v string) *ScheduleCreate {
	_c.mutation.SetLastRunStatus(v)
	return _c
}

// SetNillableLastRunStatus sets the "last_run_status" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableLastRunStatus(v *string) *ScheduleCreate {
	if v != nil {
		_c.SetLastRunStatus(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *ScheduleCreate) SetCompleted(v bool) *ScheduleCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableCompleted(v *bool) *ScheduleCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduleCreate) SetCreatedAt(v time.Time) *ScheduleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScheduleCreate) SetUpdatedAt(v time.Time) *ScheduleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduleCreate) SetID(v string) *ScheduleCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddRunIDs adds the "runs" edge to the ScheduleRun entity by IDs.
func (_c *ScheduleCreate) AddRunIDs(ids ...string) *ScheduleCreate {
	_c.mutation.AddRunIDs(ids...)
	return _c
}

// AddRuns adds the "runs" edges to the ScheduleRun entity.
func (_c *ScheduleCreate) AddRuns(v ...*ScheduleRun) *ScheduleCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunIDs(ids...)
}

// Mutation returns the ScheduleMutation object of the builder.
func (_c *ScheduleCreate) Mutation() *ScheduleMutation {
	return _c.mutation
}

// Save creates the Schedule in the database.
func (_c *ScheduleCreate) Save(ctx context.Context) (*Schedule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduleCreate) SaveX(ctx context.Context) *Schedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduleCreate) defaults() {
	if _, ok := _c.mutation.Timezone(); !ok {
		v := schedule.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := schedule.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.RunCount(); !ok {
		v := schedule.DefaultRunCount
		_c.mutation.SetRunCount(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := schedule.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduleCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Schedule.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := schedule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Schedule.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatternName(); !ok {
		return &ValidationError{Name: "pattern_name", err: errors.New(`ent: missing required field "Schedule.pattern_name"`)}
	}
	if v, ok := _c.mutation.PatternName(); ok {
		if err := schedule.PatternNameValidator(v); err != nil {
			return &ValidationError{Name: "pattern_name", err: fmt.Errorf(`ent: validator failed for field "Schedule.pattern_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "Schedule.timezone"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Schedule.enabled"`)}
	}
	if _, ok := _c.mutation.RunCount(); !ok {
		return &ValidationError{Name: "run_count", err: errors.New(`ent: missing required field "Schedule.run_count"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "Schedule.completed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Schedule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Schedule.updated_at"`)}
	}
	return nil
}

func (_c *ScheduleCreate) sqlSave(ctx context.Context) (*Schedule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Schedule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduleCreate) createSpec() (*Schedule, *sqlgraph.CreateSpec) {
	var (
		_node = &Schedule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schedule.Table, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(schedule.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(schedule.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.PatternName(); ok {
		_spec.SetField(schedule.FieldPatternName, field.TypeString, value)
		_node.PatternName = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(schedule.FieldInput, field.TypeJSON, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Cron(); ok {
		_spec.SetField(schedule.FieldCron, field.TypeString, value)
		_node.Cron = &value
	}
	if value, ok := _c.mutation.IntervalMs(); ok {
		_spec.SetField(schedule.FieldIntervalMs, field.TypeInt64, value)
		_node.IntervalMs = &value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(schedule.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(schedule.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.StartAt(); ok {
		_spec.SetField(schedule.FieldStartAt, field.TypeTime, value)
		_node.StartAt = &value
	}
	if value, ok := _c.mutation.EndAt(); ok {
		_spec.SetField(schedule.FieldEndAt, field.TypeTime, value)
		_node.EndAt = &value
	}
	if value, ok := _c.mutation.MaxRuns(); ok {
		_spec.SetField(schedule.FieldMaxRuns, field.TypeInt, value)
		_node.MaxRuns = &value
	}
	if value, ok := _c.mutation.RunCount(); ok {
		_spec.SetField(schedule.FieldRunCount, field.TypeInt, value)
		_node.RunCount = value
	}
	if value, ok := _c.mutation.NextRunAt(); ok {
		_spec.SetField(schedule.FieldNextRunAt, field.TypeTime, value)
		_node.NextRunAt = &value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(schedule.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.LastRunStatus(); ok {
		_spec.SetField(schedule.FieldLastRunStatus, field.TypeString, value)
		_node.LastRunStatus = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(schedule.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(schedule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(schedule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScheduleCreateBulk is the builder for creating many Schedule entities in bulk.
type ScheduleCreateBulk struct {
	config
	err      error
	builders []*ScheduleCreate
}

// Save creates the Schedule entities in the database.
func (_c *ScheduleCreateBulk) Save(ctx context.Context) ([]*Schedule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Schedule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScheduleCreateBulk) SaveX(ctx context.Context) []*Schedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
