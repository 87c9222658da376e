// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/parallax-dev/parallax/ent/trigger"
)

// TriggerCreate is the builder for creating a Trigger entity.
type TriggerCreate struct {
	config
	mutation *TriggerMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *TriggerCreate) SetName(v string) *TriggerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TriggerCreate) SetDescription(v string) *TriggerCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TriggerCreate) SetNillableDescription(v *string) *TriggerCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *TriggerCreate) SetType(v trigger.Type) *TriggerCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetPatternName sets the "pattern_name" field.
func (_c *TriggerCreate) SetPatternName(v string) *TriggerCreate {
	_c.mutation.SetPatternName(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *TriggerCreate) SetEnabled(v bool) *TriggerCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *TriggerCreate) SetNillableEnabled(v *bool) *TriggerCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetWebhookPath sets the "webhook_path" field.
func (_c *TriggerCreate) SetWebhookPath(v string) *TriggerCreate {
	_c.mutation.SetWebhookPath(v)
	return _c
}

// SetNillableWebhookPath sets the "webhook_path" field if the given value is not nil.
func (_c *TriggerCreate) SetNillableWebhookPath(v *string) *TriggerCreate {
	if v != nil {
		_c.SetWebhookPath(*v)
	}
	return _c
}

// SetSecret sets the "secret" field.
func (_c *TriggerCreate) SetSecret(v string) *TriggerCreate {
	_c.mutation.SetSecret(v)
	return _c
}

// SetNillableSecret sets the "secret" field if the given value is not nil.
func (_c *TriggerCreate) SetNillableSecret(v *string) *TriggerCreate {
	if v != nil {
		_c.SetSecret(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *TriggerCreate) SetEventType(v string) *TriggerCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_c *TriggerCreate) SetNillableEventType(v *string) *TriggerCreate {
	if v != nil {
		_c.SetEventType(*v)
	}
	return _c
}

// SetFilter sets the "filter" field.
func (_c *TriggerCreate) SetFilter(v map[string]interface{}) *TriggerCreate {
	_c.mutation.SetFilter(v)
	return _c
}

// SetInputMapping sets the "input_mapping" field.
func (_c *TriggerCreate) SetInputMapping(v map[string]interface{}) *TriggerCreate {
	_c.mutation.SetInputMapping(v)
	return _c
}

// SetFireCount sets the "fire_count" field.
func (_c *TriggerCreate) SetFireCount(v int) *TriggerCreate {
	_c.mutation.SetFireCount(v)
	return _c
}

// SetNillableFireCount sets the "fire_count" field if the given value is not nil.
func (_c *TriggerCreate) SetNillableFireCount(v *int) *TriggerCreate {
	if v != nil {
		_c.SetFireCount(*v)
	}
	return _c
}

// SetLastFiredAt sets the "last_fired_at" field.
func (_c *TriggerCreate) SetLastFiredAt(v time.Time) *TriggerCreate {
	_c.mutation.SetLastFiredAt(v)
	return _c
}

// SetNillableLastFiredAt sets the "last_fired_at" field if the given value is not nil.
func (_c *TriggerCreate) SetNillableLastFiredAt(v *time.Time) *TriggerCreate {
	if v != nil {
		_c.SetLastFiredAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TriggerCreate) SetCreatedAt(v time.Time) *TriggerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TriggerCreate) SetUpdatedAt(v time.Time) *TriggerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TriggerCreate) SetID(v string) *TriggerCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TriggerMutation object of the builder.
func (_c *TriggerCreate) Mutation() *TriggerMutation {
	return _c.mutation
}

// Save creates the Trigger in the database.
func (_c *TriggerCreate) Save(ctx context.Context) (*Trigger, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TriggerCreate) SaveX(ctx context.Context) *Trigger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriggerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriggerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TriggerCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := trigger.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.FireCount(); !ok {
		v := trigger.DefaultFireCount
		_c.mutation.SetFireCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TriggerCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Trigger.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := trigger.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Trigger.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Trigger.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := trigger.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Trigger.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatternName(); !ok {
		return &ValidationError{Name: "pattern_name", err: errors.New(`ent: missing required field "Trigger.pattern_name"`)}
	}
	if v, ok := _c.mutation.PatternName(); ok {
		if err := trigger.PatternNameValidator(v); err != nil {
			return &ValidationError{Name: "pattern_name", err: fmt.Errorf(`ent: validator failed for field "Trigger.pattern_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Trigger.enabled"`)}
	}
	if _, ok := _c.mutation.FireCount(); !ok {
		return &ValidationError{Name: "fire_count", err: errors.New(`ent: missing required field "Trigger.fire_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Trigger.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Trigger.updated_at"`)}
	}
	return nil
}

func (_c *TriggerCreate) sqlSave(ctx context.Context) (*Trigger, error) {
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
			return nil, fmt.Errorf("unexpected Trigger.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TriggerCreate) createSpec() (*Trigger, *sqlgraph.CreateSpec) {
	var (
		_node = &Trigger{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trigger.Table, sqlgraph.NewFieldSpec(trigger.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(trigger.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(trigger.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(trigger.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.PatternName(); ok {
		_spec.SetField(trigger.FieldPatternName, field.TypeString, value)
		_node.PatternName = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(trigger.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.WebhookPath(); ok {
		_spec.SetField(trigger.FieldWebhookPath, field.TypeString, value)
		_node.WebhookPath = value
	}
	if value, ok := _c.mutation.Secret(); ok {
		_spec.SetField(trigger.FieldSecret, field.TypeString, value)
		_node.Secret = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(trigger.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Filter(); ok {
		_spec.SetField(trigger.FieldFilter, field.TypeJSON, value)
		_node.Filter = value
	}
	if value, ok := _c.mutation.InputMapping(); ok {
		_spec.SetField(trigger.FieldInputMapping, field.TypeJSON, value)
		_node.InputMapping = value
	}
	if value, ok := _c.mutation.FireCount(); ok {
		_spec.SetField(trigger.FieldFireCount, field.TypeInt, value)
		_node.FireCount = value
	}
	if value, ok := _c.mutation.LastFiredAt(); ok {
		_spec.SetField(trigger.FieldLastFiredAt, field.TypeTime, value)
		_node.LastFiredAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trigger.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(trigger.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TriggerCreateBulk is the builder for creating many Trigger entities in bulk.
type TriggerCreateBulk struct {
	config
	err      error
	builders []*TriggerCreate
}

// Save creates the Trigger entities in the database.
func (_c *TriggerCreateBulk) Save(ctx context.Context) ([]*Trigger, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Trigger, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TriggerMutation)
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
func (_c *TriggerCreateBulk) SaveX(ctx context.Context) []*Trigger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriggerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriggerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
