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
	"github.com/parallax-dev/parallax/ent/schedulerun"
)

// ScheduleRunUpdate is the builder for updating ScheduleRun entities.
type ScheduleRunUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduleRunMutation
}

// Where appends a list predicates to the ScheduleRunUpdate builder.
func (_u *ScheduleRunUpdate) Where(ps ...predicate.ScheduleRun) *ScheduleRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduleRunUpdate) SetStatus(v schedulerun.Status) *ScheduleRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduleRunUpdate) SetNillableStatus(v *schedulerun.Status) *ScheduleRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *ScheduleRunUpdate) SetExecutionID(v string) *ScheduleRunUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *ScheduleRunUpdate) SetNillableExecutionID(v *string) *ScheduleRunUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (_u *ScheduleRunUpdate) ClearExecutionID() *ScheduleRunUpdate {
	_u.mutation.ClearExecutionID()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ScheduleRunUpdate) SetCompletedAt(v time.Time) *ScheduleRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ScheduleRunUpdate) SetNillableCompletedAt(v *time.Time) *ScheduleRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ScheduleRunUpdate) ClearCompletedAt() *ScheduleRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ScheduleRunUpdate) SetDurationMs(v int64) *ScheduleRunUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ScheduleRunUpdate) SetNillableDurationMs(v *int64) *ScheduleRunUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ScheduleRunUpdate) AddDurationMs(v int64) *ScheduleRunUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ScheduleRunUpdate) ClearDurationMs() *ScheduleRunUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetError sets the "error" field.
func (_u *ScheduleRunUpdate) SetError(v string) *ScheduleRunUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ScheduleRunUpdate) SetNillableError(v *string) *ScheduleRunUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ScheduleRunUpdate) ClearError() *ScheduleRunUpdate {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the ScheduleRunMutation object of the builder.
func (_u *ScheduleRunUpdate) Mutation() *ScheduleRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduleRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduleRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduleRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := schedulerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduleRun.status": %w`, err)}
		}
	}
	if _u.mutation.ScheduleCleared() && len(_u.mutation.ScheduleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduleRun.schedule"`)
	}
	return nil
}

func (_u *ScheduleRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schedulerun.Table, schedulerun.Columns, sqlgraph.NewFieldSpec(schedulerun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(schedulerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(schedulerun.FieldExecutionID, field.TypeString, value)
	}
	if _u.mutation.ExecutionIDCleared() {
		_spec.ClearField(schedulerun.FieldExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(schedulerun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(schedulerun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(schedulerun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(schedulerun.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(schedulerun.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(schedulerun.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(schedulerun.FieldError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedulerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduleRunUpdateOne is the builder for updating a single ScheduleRun entity.
type ScheduleRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduleRunMutation
}

// SetStatus sets the "status" field.
func (_u *ScheduleRunUpdateOne) SetStatus(v schedulerun.Status) *ScheduleRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduleRunUpdateOne) SetNillableStatus(v *schedulerun.Status) *ScheduleRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *ScheduleRunUpdateOne) SetExecutionID(v string) *ScheduleRunUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *ScheduleRunUpdateOne) SetNillableExecutionID(v *string) *ScheduleRunUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (_u *ScheduleRunUpdateOne) ClearExecutionID() *ScheduleRunUpdateOne {
	_u.mutation.ClearExecutionID()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ScheduleRunUpdateOne) SetCompletedAt(v time.Time) *ScheduleRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ScheduleRunUpdateOne) SetNillableCompletedAt(v *time.Time) *ScheduleRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ScheduleRunUpdateOne) ClearCompletedAt() *ScheduleRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ScheduleRunUpdateOne) SetDurationMs(v int64) *ScheduleRunUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ScheduleRunUpdateOne) SetNillableDurationMs(v *int64) *ScheduleRunUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ScheduleRunUpdateOne) AddDurationMs(v int64) *ScheduleRunUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ScheduleRunUpdateOne) ClearDurationMs() *ScheduleRunUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetError sets the "error" field.
func (_u *ScheduleRunUpdateOne) SetError(v string) *ScheduleRunUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ScheduleRunUpdateOne) SetNillableError(v *string) *ScheduleRunUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ScheduleRunUpdateOne) ClearError() *ScheduleRunUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the ScheduleRunMutation object of the builder.
func (_u *ScheduleRunUpdateOne) Mutation() *ScheduleRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduleRunUpdate builder.
func (_u *ScheduleRunUpdateOne) Where(ps ...predicate.ScheduleRun) *ScheduleRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduleRunUpdateOne) Select(field string, fields ...string) *ScheduleRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduleRun entity.
func (_u *ScheduleRunUpdateOne) Save(ctx context.Context) (*ScheduleRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleRunUpdateOne) SaveX(ctx context.Context) *ScheduleRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduleRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduleRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := schedulerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduleRun.status": %w`, err)}
		}
	}
	if _u.mutation.ScheduleCleared() && len(_u.mutation.ScheduleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduleRun.schedule"`)
	}
	return nil
}

func (_u *ScheduleRunUpdateOne) sqlSave(ctx context.Context) (_node *ScheduleRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schedulerun.Table, schedulerun.Columns, sqlgraph.NewFieldSpec(schedulerun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduleRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schedulerun.FieldID)
		for _, f := range fields {
			if !schedulerun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schedulerun.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(schedulerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(schedulerun.FieldExecutionID, field.TypeString, value)
	}
	if _u.mutation.ExecutionIDCleared() {
		_spec.ClearField(schedulerun.FieldExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(schedulerun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(schedulerun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(schedulerun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(schedulerun.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(schedulerun.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(schedulerun.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(schedulerun.FieldError, field.TypeString)
	}
	_node = &ScheduleRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedulerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
