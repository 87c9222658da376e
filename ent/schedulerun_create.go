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

// ScheduleRunCreate is the builder for creating a ScheduleRun entity.
type ScheduleRunCreate struct {
	config
	mutation *ScheduleRunMutation
	hooks    []Hook
}

// SetScheduleID sets the "schedule_id" field.
func (_c *ScheduleRunCreate) SetScheduleID(v string) *ScheduleRunCreate {
	_c.mutation.SetScheduleID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScheduleRunCreate) SetStatus(v schedulerun.Status) *ScheduleRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScheduleRunCreate) SetNillableStatus(v *schedulerun.Status) *ScheduleRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExecutionID sets the "execution_id" field.
func (_c *ScheduleRunCreate) SetExecutionID(v string) *ScheduleRunCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_c *ScheduleRunCreate) SetNillableExecutionID(v *string) *ScheduleRunCreate {
	if v != nil {
		_c.SetExecutionID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ScheduleRunCreate) SetStartedAt(v time.Time) *ScheduleRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ScheduleRunCreate) SetCompletedAt(v time.Time) *ScheduleRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ScheduleRunCreate) SetNillableCompletedAt(v *time.Time) *ScheduleRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ScheduleRunCreate) SetDurationMs(v int64) *ScheduleRunCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ScheduleRunCreate) SetNillableDurationMs(v *int64) *ScheduleRunCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *ScheduleRunCreate) SetError(v string) *ScheduleRunCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *ScheduleRunCreate) SetNillableError(v *string) *ScheduleRunCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduleRunCreate) SetID(v string) *ScheduleRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSchedule sets the "schedule" edge to the Schedule entity.
func (_c *ScheduleRunCreate) SetSchedule(v *Schedule) *ScheduleRunCreate {
	return _c.SetScheduleID(v.ID)
}

// Mutation returns the ScheduleRunMutation object of the builder.
func (_c *ScheduleRunCreate) Mutation() *ScheduleRunMutation {
	return _c.mutation
}

// Save creates the ScheduleRun in the database.
func (_c *ScheduleRunCreate) Save(ctx context.Context) (*ScheduleRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduleRunCreate) SaveX(ctx context.Context) *ScheduleRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduleRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := schedulerun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduleRunCreate) check() error {
	if _, ok := _c.mutation.ScheduleID(); !ok {
		return &ValidationError{Name: "schedule_id", err: errors.New(`ent: missing required field "ScheduleRun.schedule_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScheduleRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := schedulerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduleRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ScheduleRun.started_at"`)}
	}
	if len(_c.mutation.ScheduleIDs()) == 0 {
		return &ValidationError{Name: "schedule", err: errors.New(`ent: missing required edge "ScheduleRun.schedule"`)}
	}
	return nil
}

func (_c *ScheduleRunCreate) sqlSave(ctx context.Context) (*ScheduleRun, error) {
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
			return nil, fmt.Errorf("unexpected ScheduleRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduleRunCreate) createSpec() (*ScheduleRun, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduleRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schedulerun.Table, sqlgraph.NewFieldSpec(schedulerun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(schedulerun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(schedulerun.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(schedulerun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(schedulerun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(schedulerun.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(schedulerun.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if nodes := _c.mutation.ScheduleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   schedulerun.ScheduleTable,
			Columns: []string{schedulerun.ScheduleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ScheduleID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScheduleRunCreateBulk is the builder for creating many ScheduleRun entities in bulk.
type ScheduleRunCreateBulk struct {
	config
	err      error
	builders []*ScheduleRunCreate
}

// Save creates the ScheduleRun entities in the database.
func (_c *ScheduleRunCreateBulk) Save(ctx context.Context) ([]*ScheduleRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduleRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduleRunMutation)
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
func (_c *ScheduleRunCreateBulk) SaveX(ctx context.Context) []*ScheduleRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
