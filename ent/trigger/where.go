// Code generated by ent, DO NOT EDIT.

package trigger

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/parallax-dev/parallax/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Trigger {
	return predicate.Trigger(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldDescription, v))
}

// PatternName applies equality check predicate on the "pattern_name" field. It's identical to PatternNameEQ.
func PatternName(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldPatternName, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldEnabled, v))
}

// WebhookPath applies equality check predicate on the "webhook_path" field. It's identical to WebhookPathEQ.
func WebhookPath(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldWebhookPath, v))
}

// Secret applies equality check predicate on the "secret" field. It's identical to SecretEQ.
func Secret(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldSecret, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldEventType, v))
}

// FireCount applies equality check predicate on the "fire_count" field. It's identical to FireCountEQ.
func FireCount(v int) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldFireCount, v))
}

// LastFiredAt applies equality check predicate on the "last_fired_at" field. It's identical to LastFiredAtEQ.
func LastFiredAt(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldLastFiredAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Trigger {
	return predicate.Trigger(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Trigger {
	return predicate.Trigger(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldContainsFold(FieldDescription, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Trigger {
	return predicate.Trigger(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Trigger {
	return predicate.Trigger(sql.FieldNotIn(FieldType, vs...))
}

// PatternNameEQ applies the EQ predicate on the "pattern_name" field.
func PatternNameEQ(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldPatternName, v))
}

// PatternNameNEQ applies the NEQ predicate on the "pattern_name" field.
func PatternNameNEQ(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldPatternName, v))
}

// PatternNameIn applies the In predicate on the "pattern_name" field.
func PatternNameIn(vs ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldIn(FieldPatternName, vs...))
}

// PatternNameNotIn applies the NotIn predicate on the "pattern_name" field.
func PatternNameNotIn(vs ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNotIn(FieldPatternName, vs...))
}

// PatternNameGT applies the GT predicate on the "pattern_name" field.
func PatternNameGT(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGT(FieldPatternName, v))
}

// PatternNameGTE applies the GTE predicate on the "pattern_name" field.
func PatternNameGTE(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGTE(FieldPatternName, v))
}

// PatternNameLT applies the LT predicate on the "pattern_name" field.
func PatternNameLT(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLT(FieldPatternName, v))
}

// PatternNameLTE applies the LTE predicate on the "pattern_name" field.
func PatternNameLTE(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLTE(FieldPatternName, v))
}

// PatternNameContains applies the Contains predicate on the "pattern_name" field.
func PatternNameContains(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldContains(FieldPatternName, v))
}

// PatternNameHasPrefix applies the HasPrefix predicate on the "pattern_name" field.
func PatternNameHasPrefix(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldHasPrefix(FieldPatternName, v))
}

// PatternNameHasSuffix applies the HasSuffix predicate on the "pattern_name" field.
func PatternNameHasSuffix(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldHasSuffix(FieldPatternName, v))
}

// PatternNameEqualFold applies the EqualFold predicate on the "pattern_name" field.
func PatternNameEqualFold(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEqualFold(FieldPatternName, v))
}

// PatternNameContainsFold applies the ContainsFold predicate on the "pattern_name" field.
func PatternNameContainsFold(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldContainsFold(FieldPatternName, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldEnabled, v))
}

// WebhookPathEQ applies the EQ predicate on the "webhook_path" field.
func WebhookPathEQ(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldWebhookPath, v))
}

// WebhookPathNEQ applies the NEQ predicate on the "webhook_path" field.
func WebhookPathNEQ(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldWebhookPath, v))
}

// WebhookPathIn applies the In predicate on the "webhook_path" field.
func WebhookPathIn(vs ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldIn(FieldWebhookPath, vs...))
}

// WebhookPathNotIn applies the NotIn predicate on the "webhook_path" field.
func WebhookPathNotIn(vs ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNotIn(FieldWebhookPath, vs...))
}

// WebhookPathGT applies the GT predicate on the "webhook_path" field.
func WebhookPathGT(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGT(FieldWebhookPath, v))
}

// WebhookPathGTE applies the GTE predicate on the "webhook_path" field.
func WebhookPathGTE(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGTE(FieldWebhookPath, v))
}

// WebhookPathLT applies the LT predicate on the "webhook_path" field.
func WebhookPathLT(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLT(FieldWebhookPath, v))
}

// WebhookPathLTE applies the LTE predicate on the "webhook_path" field.
func WebhookPathLTE(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLTE(FieldWebhookPath, v))
}

// WebhookPathContains applies the Contains predicate on the "webhook_path" field.
func WebhookPathContains(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldContains(FieldWebhookPath, v))
}

// WebhookPathHasPrefix applies the HasPrefix predicate on the "webhook_path" field.
func WebhookPathHasPrefix(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldHasPrefix(FieldWebhookPath, v))
}

// WebhookPathHasSuffix applies the HasSuffix predicate on the "webhook_path" field.
func WebhookPathHasSuffix(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldHasSuffix(FieldWebhookPath, v))
}

// WebhookPathIsNil applies the IsNil predicate on the "webhook_path" field.
func WebhookPathIsNil() predicate.Trigger {
	return predicate.Trigger(sql.FieldIsNull(FieldWebhookPath))
}

// WebhookPathNotNil applies the NotNil predicate on the "webhook_path" field.
func WebhookPathNotNil() predicate.Trigger {
	return predicate.Trigger(sql.FieldNotNull(FieldWebhookPath))
}

// WebhookPathEqualFold applies the EqualFold predicate on the "webhook_path" field.
func WebhookPathEqualFold(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEqualFold(FieldWebhookPath, v))
}

// WebhookPathContainsFold applies the ContainsFold predicate on the "webhook_path" field.
func WebhookPathContainsFold(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldContainsFold(FieldWebhookPath, v))
}

// SecretEQ applies the EQ predicate on the "secret" field.
func SecretEQ(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldSecret, v))
}

// SecretNEQ applies the NEQ predicate on the "secret" field.
func SecretNEQ(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldSecret, v))
}

// SecretIn applies the In predicate on the "secret" field.
func SecretIn(vs ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldIn(FieldSecret, vs...))
}

// SecretNotIn applies the NotIn predicate on the "secret" field.
func SecretNotIn(vs ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNotIn(FieldSecret, vs...))
}

// SecretGT applies the GT predicate on the "secret" field.
func SecretGT(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGT(FieldSecret, v))
}

// SecretGTE applies the GTE predicate on the "secret" field.
func SecretGTE(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGTE(FieldSecret, v))
}

// SecretLT applies the LT predicate on the "secret" field.
func SecretLT(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLT(FieldSecret, v))
}

// SecretLTE applies the LTE predicate on the "secret" field.
func SecretLTE(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLTE(FieldSecret, v))
}

// SecretContains applies the Contains predicate on the "secret" field.
func SecretContains(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldContains(FieldSecret, v))
}

// SecretHasPrefix applies the HasPrefix predicate on the "secret" field.
func SecretHasPrefix(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldHasPrefix(FieldSecret, v))
}

// SecretHasSuffix applies the HasSuffix predicate on the "secret" field.
func SecretHasSuffix(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldHasSuffix(FieldSecret, v))
}

// SecretIsNil applies the IsNil predicate on the "secret" field.
func SecretIsNil() predicate.Trigger {
	return predicate.Trigger(sql.FieldIsNull(FieldSecret))
}

// SecretNotNil applies the NotNil predicate on the "secret" field.
func SecretNotNil() predicate.Trigger {
	return predicate.Trigger(sql.FieldNotNull(FieldSecret))
}

// SecretEqualFold applies the EqualFold predicate on the "secret" field.
func SecretEqualFold(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEqualFold(FieldSecret, v))
}

// SecretContainsFold applies the ContainsFold predicate on the "secret" field.
func SecretContainsFold(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldContainsFold(FieldSecret, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeIsNil applies the IsNil predicate on the "event_type" field.
func EventTypeIsNil() predicate.Trigger {
	return predicate.Trigger(sql.FieldIsNull(FieldEventType))
}

// EventTypeNotNil applies the NotNil predicate on the "event_type" field.
func EventTypeNotNil() predicate.Trigger {
	return predicate.Trigger(sql.FieldNotNull(FieldEventType))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldContainsFold(FieldEventType, v))
}

// FilterIsNil applies the IsNil predicate on the "filter" field.
func FilterIsNil() predicate.Trigger {
	return predicate.Trigger(sql.FieldIsNull(FieldFilter))
}

// FilterNotNil applies the NotNil predicate on the "filter" field.
func FilterNotNil() predicate.Trigger {
	return predicate.Trigger(sql.FieldNotNull(FieldFilter))
}

// InputMappingIsNil applies the IsNil predicate on the "input_mapping" field.
func InputMappingIsNil() predicate.Trigger {
	return predicate.Trigger(sql.FieldIsNull(FieldInputMapping))
}

// InputMappingNotNil applies the NotNil predicate on the "input_mapping" field.
func InputMappingNotNil() predicate.Trigger {
	return predicate.Trigger(sql.FieldNotNull(FieldInputMapping))
}

// FireCountEQ applies the EQ predicate on the "fire_count" field.
func FireCountEQ(v int) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldFireCount, v))
}

// FireCountNEQ applies the NEQ predicate on the "fire_count" field.
func FireCountNEQ(v int) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldFireCount, v))
}

// FireCountIn applies the In predicate on the "fire_count" field.
func FireCountIn(vs ...int) predicate.Trigger {
	return predicate.Trigger(sql.FieldIn(FieldFireCount, vs...))
}

// FireCountNotIn applies the NotIn predicate on the "fire_count" field.
func FireCountNotIn(vs ...int) predicate.Trigger {
	return predicate.Trigger(sql.FieldNotIn(FieldFireCount, vs...))
}

// FireCountGT applies the GT predicate on the "fire_count" field.
func FireCountGT(v int) predicate.Trigger {
	return predicate.Trigger(sql.FieldGT(FieldFireCount, v))
}

// FireCountGTE applies the GTE predicate on the "fire_count" field.
func FireCountGTE(v int) predicate.Trigger {
	return predicate.Trigger(sql.FieldGTE(FieldFireCount, v))
}

// FireCountLT applies the LT predicate on the "fire_count" field.
func FireCountLT(v int) predicate.Trigger {
	return predicate.Trigger(sql.FieldLT(FieldFireCount, v))
}

// FireCountLTE applies the LTE predicate on the "fire_count" field.
func FireCountLTE(v int) predicate.Trigger {
	return predicate.Trigger(sql.FieldLTE(FieldFireCount, v))
}

// LastFiredAtEQ applies the EQ predicate on the "last_fired_at" field.
func LastFiredAtEQ(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldLastFiredAt, v))
}

// LastFiredAtNEQ applies the NEQ predicate on the "last_fired_at" field.
func LastFiredAtNEQ(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldLastFiredAt, v))
}

// LastFiredAtIn applies the In predicate on the "last_fired_at" field.
func LastFiredAtIn(vs ...time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldIn(FieldLastFiredAt, vs...))
}

// LastFiredAtNotIn applies the NotIn predicate on the "last_fired_at" field.
func LastFiredAtNotIn(vs ...time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldNotIn(FieldLastFiredAt, vs...))
}

// LastFiredAtGT applies the GT predicate on the "last_fired_at" field.
func LastFiredAtGT(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldGT(FieldLastFiredAt, v))
}

// LastFiredAtGTE applies the GTE predicate on the "last_fired_at" field.
func LastFiredAtGTE(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldGTE(FieldLastFiredAt, v))
}

// LastFiredAtLT applies the LT predicate on the "last_fired_at" field.
func LastFiredAtLT(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldLT(FieldLastFiredAt, v))
}

// LastFiredAtLTE applies the LTE predicate on the "last_fired_at" field.
func LastFiredAtLTE(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldLTE(FieldLastFiredAt, v))
}

// LastFiredAtIsNil applies the IsNil predicate on the "last_fired_at" field.
func LastFiredAtIsNil() predicate.Trigger {
	return predicate.Trigger(sql.FieldIsNull(FieldLastFiredAt))
}

// LastFiredAtNotNil applies the NotNil predicate on the "last_fired_at" field.
func LastFiredAtNotNil() predicate.Trigger {
	return predicate.Trigger(sql.FieldNotNull(FieldLastFiredAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Trigger) predicate.Trigger {
	return predicate.Trigger(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Trigger) predicate.Trigger {
	return predicate.Trigger(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Trigger) predicate.Trigger {
	return predicate.Trigger(sql.NotPredicates(p))
}
