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
	"github.com/parallax-dev/parallax/ent/trigger"
)

// TriggerUpdate is the builder for updating Trigger entities.
type TriggerUpdate struct {
	config
	hooks    []Hook
	mutation *TriggerMutation
}

// Where appends a list predicates to the TriggerUpdate builder.
func (_u *TriggerUpdate) Where(ps ...predicate.Trigger) *TriggerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TriggerUpdate) SetName(v string) *TriggerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillableName(v *string) *TriggerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TriggerUpdate) SetDescription(v string) *TriggerUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillableDescription(v *string) *TriggerUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TriggerUpdate) ClearDescription() *TriggerUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPatternName sets the "pattern_name" field.
func (_u *TriggerUpdate) SetPatternName(v string) *TriggerUpdate {
	_u.mutation.SetPatternName(v)
	return _u
}

// SetNillablePatternName sets the "pattern_name" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillablePatternName(v *string) *TriggerUpdate {
	if v != nil {
		_u.SetPatternName(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *TriggerUpdate) SetEnabled(v bool) *TriggerUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillableEnabled(v *bool) *TriggerUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetWebhookPath sets the "webhook_path" field.
func (_u *TriggerUpdate) SetWebhookPath(v string) *TriggerUpdate {
	_u.mutation.SetWebhookPath(v)
	return _u
}

// SetNillableWebhookPath sets the "webhook_path" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillableWebhookPath(v *string) *TriggerUpdate {
	if v != nil {
		_u.SetWebhookPath(*v)
	}
	return _u
}

// ClearWebhookPath clears the value of the "webhook_path" field.
func (_u *TriggerUpdate) ClearWebhookPath() *TriggerUpdate {
	_u.mutation.ClearWebhookPath()
	return _u
}

// SetSecret sets the "secret" field.
func (_u *TriggerUpdate) SetSecret(v string) *TriggerUpdate {
	_u.mutation.SetSecret(v)
	return _u
}

// SetNillableSecret sets the "secret" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillableSecret(v *string) *TriggerUpdate {
	if v != nil {
		_u.SetSecret(*v)
	}
	return _u
}

// ClearSecret clears the value of the "secret" field.
func (_u *TriggerUpdate) ClearSecret() *TriggerUpdate {
	_u.mutation.ClearSecret()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *TriggerUpdate) SetEventType(v string) *TriggerUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillableEventType(v *string) *TriggerUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// ClearEventType clears the value of the "event_type" field.
func (_u *TriggerUpdate) ClearEventType() *TriggerUpdate {
	_u.mutation.ClearEventType()
	return _u
}

// SetFilter sets the "filter" field.
func (_u *TriggerUpdate) SetFilter(v map[string]interface{}) *TriggerUpdate {
	_u.mutation.SetFilter(v)
	return _u
}

// ClearFilter clears the value of the "filter" field.
func (_u *TriggerUpdate) ClearFilter() *TriggerUpdate {
	_u.mutation.ClearFilter()
	return _u
}

// SetInputMapping sets the "input_mapping" field.
func (_u *TriggerUpdate) SetInputMapping(v map[string]interface{}) *TriggerUpdate {
	_u.mutation.SetInputMapping(v)
	return _u
}

// ClearInputMapping clears the value of the "input_mapping" field.
func (_u *TriggerUpdate) ClearInputMapping() *TriggerUpdate {
	_u.mutation.ClearInputMapping()
	return _u
}

// SetFireCount sets the "fire_count" field.
func (_u *TriggerUpdate) SetFireCount(v int) *TriggerUpdate {
	_u.mutation.ResetFireCount()
	_u.mutation.SetFireCount(v)
	return _u
}

// SetNillableFireCount sets the "fire_count" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillableFireCount(v *int) *TriggerUpdate {
	if v != nil {
		_u.SetFireCount(*v)
	}
	return _u
}

// AddFireCount adds value to the "fire_count" field.
func (_u *TriggerUpdate) AddFireCount(v int) *TriggerUpdate {
	_u.mutation.AddFireCount(v)
	return _u
}

// SetLastFiredAt sets the "last_fired_at" field.
func (_u *TriggerUpdate) SetLastFiredAt(v time.Time) *TriggerUpdate {
	_u.mutation.SetLastFiredAt(v)
	return _u
}

// SetNillableLastFiredAt sets the "last_fired_at" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillableLastFiredAt(v *time.Time) *TriggerUpdate {
	if v != nil {
		_u.SetLastFiredAt(*v)
	}
	return _u
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (_u *TriggerUpdate) ClearLastFiredAt() *TriggerUpdate {
	_u.mutation.ClearLastFiredAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TriggerUpdate) SetUpdatedAt(v time.Time) *TriggerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillableUpdatedAt(v *time.Time) *TriggerUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the TriggerMutation object of the builder.
func (_u *TriggerUpdate) Mutation() *TriggerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TriggerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TriggerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriggerUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := trigger.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Trigger.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatternName(); ok {
		if err := trigger.PatternNameValidator(v); err != nil {
			return &ValidationError{Name: "pattern_name", err: fmt.Errorf(`ent: validator failed for field "Trigger.pattern_name": %w`, err)}
		}
	}
	return nil
}

func (_u *TriggerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trigger.Table, trigger.Columns, sqlgraph.NewFieldSpec(trigger.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(trigger.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(trigger.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(trigger.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PatternName(); ok {
		_spec.SetField(trigger.FieldPatternName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(trigger.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WebhookPath(); ok {
		_spec.SetField(trigger.FieldWebhookPath, field.TypeString, value)
	}
	if _u.mutation.WebhookPathCleared() {
		_spec.ClearField(trigger.FieldWebhookPath, field.TypeString)
	}
	if value, ok := _u.mutation.Secret(); ok {
		_spec.SetField(trigger.FieldSecret, field.TypeString, value)
	}
	if _u.mutation.SecretCleared() {
		_spec.ClearField(trigger.FieldSecret, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(trigger.FieldEventType, field.TypeString, value)
	}
	if _u.mutation.EventTypeCleared() {
		_spec.ClearField(trigger.FieldEventType, field.TypeString)
	}
	if value, ok := _u.mutation.Filter(); ok {
		_spec.SetField(trigger.FieldFilter, field.TypeJSON, value)
	}
	if _u.mutation.FilterCleared() {
		_spec.ClearField(trigger.FieldFilter, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputMapping(); ok {
		_spec.SetField(trigger.FieldInputMapping, field.TypeJSON, value)
	}
	if _u.mutation.InputMappingCleared() {
		_spec.ClearField(trigger.FieldInputMapping, field.TypeJSON)
	}
	if value, ok := _u.mutation.FireCount(); ok {
		_spec.SetField(trigger.FieldFireCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFireCount(); ok {
		_spec.AddField(trigger.FieldFireCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastFiredAt(); ok {
		_spec.SetField(trigger.FieldLastFiredAt, field.TypeTime, value)
	}
	if _u.mutation.LastFiredAtCleared() {
		_spec.ClearField(trigger.FieldLastFiredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(trigger.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trigger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TriggerUpdateOne is the builder for updating a single Trigger entity.
type TriggerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TriggerMutation
}

// SetName sets the "name" field.
func (_u *TriggerUpdateOne) SetName(v string) *TriggerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillableName(v *string) *TriggerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TriggerUpdateOne) SetDescription(v string) *TriggerUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillableDescription(v *string) *TriggerUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TriggerUpdateOne) ClearDescription() *TriggerUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPatternName sets the "pattern_name" field.
func (_u *TriggerUpdateOne) SetPatternName(v string) *TriggerUpdateOne {
	_u.mutation.SetPatternName(v)
	return _u
}

// SetNillablePatternName sets the "pattern_name" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillablePatternName(v *string) *TriggerUpdateOne {
	if v != nil {
		_u.SetPatternName(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *TriggerUpdateOne) SetEnabled(v bool) *TriggerUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillableEnabled(v *bool) *TriggerUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetWebhookPath sets the "webhook_path" field.
func (_u *TriggerUpdateOne) SetWebhookPath(v string) *TriggerUpdateOne {
	_u.mutation.SetWebhookPath(v)
	return _u
}

// SetNillableWebhookPath sets the "webhook_path" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillableWebhookPath(v *string) *TriggerUpdateOne {
	if v != nil {
		_u.SetWebhookPath(*v)
	}
	return _u
}

// ClearWebhookPath clears the value of the "webhook_path" field.
func (_u *TriggerUpdateOne) ClearWebhookPath() *TriggerUpdateOne {
	_u.mutation.ClearWebhookPath()
	return _u
}

// SetSecret sets the "secret" field.
func (_u *TriggerUpdateOne) SetSecret(v string) *TriggerUpdateOne {
	_u.mutation.SetSecret(v)
	return _u
}

// SetNillableSecret sets the "secret" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillableSecret(v *string) *TriggerUpdateOne {
	if v != nil {
		_u.SetSecret(*v)
	}
	return _u
}

// ClearSecret clears the value of the "secret" field.
func (_u *TriggerUpdateOne) ClearSecret() *TriggerUpdateOne {
	_u.mutation.ClearSecret()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *TriggerUpdateOne) SetEventType(v string) *TriggerUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillableEventType(v *string) *TriggerUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// ClearEventType clears the value of the "event_type" field.
func (_u *TriggerUpdateOne) ClearEventType() *TriggerUpdateOne {
	_u.mutation.ClearEventType()
	return _u
}

// SetFilter sets the "filter" field.
func (_u *TriggerUpdateOne) SetFilter(v map[string]interface{}) *TriggerUpdateOne {
	_u.mutation.SetFilter(v)
	return _u
}

// ClearFilter clears the value of the "filter" field.
func (_u *TriggerUpdateOne) ClearFilter() *TriggerUpdateOne {
	_u.mutation.ClearFilter()
	return _u
}

// SetInputMapping sets the "input_mapping" field.
func (_u *TriggerUpdateOne) SetInputMapping(v map[string]interface{}) *TriggerUpdateOne {
	_u.mutation.SetInputMapping(v)
	return _u
}

// ClearInputMapping clears the value of the "input_mapping" field.
func (_u *TriggerUpdateOne) ClearInputMapping() *TriggerUpdateOne {
	_u.mutation.ClearInputMapping()
	return _u
}

// SetFireCount sets the "fire_count" field.
func (_u *TriggerUpdateOne) SetFireCount(v int) *TriggerUpdateOne {
	_u.mutation.ResetFireCount()
	_u.mutation.SetFireCount(v)
	return _u
}

// SetNillableFireCount sets the "fire_count" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillableFireCount(v *int) *TriggerUpdateOne {
	if v != nil {
		_u.SetFireCount(*v)
	}
	return _u
}

// AddFireCount adds value to the "fire_count" field.
func (_u *TriggerUpdateOne) AddFireCount(v int) *TriggerUpdateOne {
	_u.mutation.AddFireCount(v)
	return _u
}

// SetLastFiredAt sets the "last_fired_at" field.
func (_u *TriggerUpdateOne) SetLastFiredAt(v time.Time) *TriggerUpdateOne {
	_u.mutation.SetLastFiredAt(v)
	return _u
}

// SetNillableLastFiredAt sets the "last_fired_at" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillableLastFiredAt(v *time.Time) *TriggerUpdateOne {
	if v != nil {
		_u.SetLastFiredAt(*v)
	}
	return _u
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (_u *TriggerUpdateOne) ClearLastFiredAt() *TriggerUpdateOne {
	_u.mutation.ClearLastFiredAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TriggerUpdateOne) SetUpdatedAt(v time.Time) *TriggerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillableUpdatedAt(v *time.Time) *TriggerUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the TriggerMutation object of the builder.
func (_u *TriggerUpdateOne) Mutation() *TriggerMutation {
	return _u.mutation
}

// Where appends a list predicates to the TriggerUpdate builder.
func (_u *TriggerUpdateOne) Where(ps ...predicate.Trigger) *TriggerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TriggerUpdateOne) Select(field string, fields ...string) *TriggerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Trigger entity.
func (_u *TriggerUpdateOne) Save(ctx context.Context) (*Trigger, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerUpdateOne) SaveX(ctx context.Context) *Trigger {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TriggerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriggerUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := trigger.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Trigger.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatternName(); ok {
		if err := trigger.PatternNameValidator(v); err != nil {
			return &ValidationError{Name: "pattern_name", err: fmt.Errorf(`ent: validator failed for field "Trigger.pattern_name": %w`, err)}
		}
	}
	return nil
}

func (_u *TriggerUpdateOne) sqlSave(ctx context.Context) (_node *Trigger, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trigger.Table, trigger.Columns, sqlgraph.NewFieldSpec(trigger.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Trigger.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trigger.FieldID)
		for _, f := range fields {
			if !trigger.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trigger.FieldID {
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
		_spec.SetField(trigger.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(trigger.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(trigger.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PatternName(); ok {
		_spec.SetField(trigger.FieldPatternName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(trigger.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WebhookPath(); ok {
		_spec.SetField(trigger.FieldWebhookPath, field.TypeString, value)
	}
	if _u.mutation.WebhookPathCleared() {
		_spec.ClearField(trigger.FieldWebhookPath, field.TypeString)
	}
	if value, ok := _u.mutation.Secret(); ok {
		_spec.SetField(trigger.FieldSecret, field.TypeString, value)
	}
	if _u.mutation.SecretCleared() {
		_spec.ClearField(trigger.FieldSecret, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(trigger.FieldEventType, field.TypeString, value)
	}
	if _u.mutation.EventTypeCleared() {
		_spec.ClearField(trigger.FieldEventType, field.TypeString)
	}
	if value, ok := _u.mutation.Filter(); ok {
		_spec.SetField(trigger.FieldFilter, field.TypeJSON, value)
	}
	if _u.mutation.FilterCleared() {
		_spec.ClearField(trigger.FieldFilter, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputMapping(); ok {
		_spec.SetField(trigger.FieldInputMapping, field.TypeJSON, value)
	}
	if _u.mutation.InputMappingCleared() {
		_spec.ClearField(trigger.FieldInputMapping, field.TypeJSON)
	}
	if value, ok := _u.mutation.FireCount(); ok {
		_spec.SetField(trigger.FieldFireCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFireCount(); ok {
		_spec.AddField(trigger.FieldFireCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastFiredAt(); ok {
		_spec.SetField(trigger.FieldLastFiredAt, field.TypeTime, value)
	}
	if _u.mutation.LastFiredAtCleared() {
		_spec.ClearField(trigger.FieldLastFiredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(trigger.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Trigger{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trigger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
