// Code generated by ent, DO NOT EDIT.

package trigger

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the trigger type in the database.
	Label = "trigger"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "trigger_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldPatternName holds the string denoting the pattern_name field in the database.
	FieldPatternName = "pattern_name"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldWebhookPath holds the string denoting the webhook_path field in the database.
	FieldWebhookPath = "webhook_path"
	// FieldSecret holds the string denoting the secret field in the database.
	FieldSecret = "secret"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldFilter holds the string denoting the filter field in the database.
	FieldFilter = "filter"
	// FieldInputMapping holds the string denoting the input_mapping field in the database.
	FieldInputMapping = "input_mapping"
	// FieldFireCount holds the string denoting the fire_count field in the database.
	FieldFireCount = "fire_count"
	// FieldLastFiredAt holds the string denoting the last_fired_at field in the database.
	FieldLastFiredAt = "last_fired_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the trigger in the database.
	Table = "triggers"
)

// Columns holds all SQL columns for trigger fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldType,
	FieldPatternName,
	FieldEnabled,
	FieldWebhookPath,
	FieldSecret,
	FieldEventType,
	FieldFilter,
	FieldInputMapping,
	FieldFireCount,
	FieldLastFiredAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// PatternNameValidator is a validator for the "pattern_name" field. It is called by the builders before save.
	PatternNameValidator func(string) error
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultFireCount holds the default value on creation for the "fire_count" field.
	DefaultFireCount int
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeWebhook Type = "webhook"
	TypeEvent   Type = "event"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeWebhook, TypeEvent:
		return nil
	default:
		return fmt.Errorf("trigger: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the Trigger queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByPatternName orders the results by the pattern_name field.
func ByPatternName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternName, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByWebhookPath orders the results by the webhook_path field.
func ByWebhookPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookPath, opts...).ToFunc()
}

// BySecret orders the results by the secret field.
func BySecret(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecret, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByFireCount orders the results by the fire_count field.
func ByFireCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFireCount, opts...).ToFunc()
}

// ByLastFiredAt orders the results by the last_fired_at field.
func ByLastFiredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastFiredAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
