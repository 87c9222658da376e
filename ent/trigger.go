// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/parallax-dev/parallax/ent/trigger"
)

// Trigger is the model entity for the Trigger schema.
type Trigger struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Type holds the value of the "type" field.
	Type trigger.Type `json:"type,omitempty"`
	// PatternName holds the value of the "pattern_name" field.
	PatternName string `json:"pattern_name,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// Random path segment the webhook endpoint is served under
	WebhookPath string `json:"webhook_path,omitempty"`
	// HMAC key for webhook signature verification
	Secret string `json:"-"`
	// EventType holds the value of the "event_type" field.
	EventType string `json:"event_type,omitempty"`
	// Operator document matched against event payloads
	Filter map[string]interface{} `json:"filter,omitempty"`
	// Maps payload paths into workflow input fields
	InputMapping map[string]interface{} `json:"input_mapping,omitempty"`
	// FireCount holds the value of the "fire_count" field.
	FireCount int `json:"fire_count,omitempty"`
	// LastFiredAt holds the value of the "last_fired_at" field.
	LastFiredAt *time.Time `json:"last_fired_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Trigger) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trigger.FieldFilter, trigger.FieldInputMapping:
			values[i] = new([]byte)
		case trigger.FieldEnabled:
			values[i] = new(sql.NullBool)
		case trigger.FieldFireCount:
			values[i] = new(sql.NullInt64)
		case trigger.FieldID, trigger.FieldName, trigger.FieldDescription, trigger.FieldType, trigger.FieldPatternName, trigger.FieldWebhookPath, trigger.FieldSecret, trigger.FieldEventType:
			values[i] = new(sql.NullString)
		case trigger.FieldLastFiredAt, trigger.FieldCreatedAt, trigger.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Trigger fields.
func (_m *Trigger) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trigger.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case trigger.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case trigger.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case trigger.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = trigger.Type(value.String)
			}
		case trigger.FieldPatternName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_name", values[i])
			} else if value.Valid {
				_m.PatternName = value.String
			}
		case trigger.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case trigger.FieldWebhookPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_path", values[i])
			} else if value.Valid {
				_m.WebhookPath = value.String
			}
		case trigger.FieldSecret:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field secret", values[i])
			} else if value.Valid {
				_m.Secret = value.String
			}
		case trigger.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case trigger.FieldFilter:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field filter", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Filter); err != nil {
					return fmt.Errorf("unmarshal field filter: %w", err)
				}
			}
		case trigger.FieldInputMapping:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input_mapping", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InputMapping); err != nil {
					return fmt.Errorf("unmarshal field input_mapping: %w", err)
				}
			}
		case trigger.FieldFireCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fire_count", values[i])
			} else if value.Valid {
				_m.FireCount = int(value.Int64)
			}
		case trigger.FieldLastFiredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_fired_at", values[i])
			} else if value.Valid {
				_m.LastFiredAt = new(time.Time)
				*_m.LastFiredAt = value.Time
			}
		case trigger.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case trigger.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Trigger.
// This includes values selected through modifiers, order, etc.
func (_m *Trigger) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Trigger.
// Note that you need to call Trigger.Unwrap() before calling this method if this Trigger
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Trigger) Update() *TriggerUpdateOne {
	return NewTriggerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Trigger entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Trigger) Unwrap() *Trigger {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Trigger is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Trigger) String() string {
	var builder strings.Builder
	builder.WriteString("Trigger(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("pattern_name=")
	builder.WriteString(_m.PatternName)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("webhook_path=")
	builder.WriteString(_m.WebhookPath)
	builder.WriteString(", ")
	builder.WriteString("secret=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("filter=")
	builder.WriteString(fmt.Sprintf("%v", _m.Filter))
	builder.WriteString(", ")
	builder.WriteString("input_mapping=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputMapping))
	builder.WriteString(", ")
	builder.WriteString("fire_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FireCount))
	builder.WriteString(", ")
	if v := _m.LastFiredAt; v != nil {
		builder.WriteString("last_fired_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Triggers is a parsable slice of Trigger.
type Triggers []*Trigger
