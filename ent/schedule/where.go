// Code generated by ent, DO NOT EDIT.

package schedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/parallax-dev/parallax/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldDescription, v))
}

// PatternName applies equality check predicate on the "pattern_name" field. It's identical to PatternNameEQ.
func PatternName(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldPatternName, v))
}

// Cron applies equality check predicate on the "cron" field. It's identical to CronEQ.
func Cron(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldCron, v))
}

// IntervalMs applies equality check predicate on the "interval_ms" field. It's identical to IntervalMsEQ.
func IntervalMs(v int64) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldIntervalMs, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldTimezone, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldEnabled, v))
}

// StartAt applies equality check predicate on the "start_at" field. It's identical to StartAtEQ.
func StartAt(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldStartAt, v))
}

// EndAt applies equality check predicate on the "end_at" field. It's identical to EndAtEQ.
func EndAt(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldEndAt, v))
}

// MaxRuns applies equality check predicate on the "max_runs" field. It's identical to MaxRunsEQ.
func MaxRuns(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldMaxRuns, v))
}

// RunCount applies equality check predicate on the "run_count" field. It's identical to RunCountEQ.
func RunCount(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldRunCount, v))
}

// NextRunAt applies equality check predicate on the "next_run_at" field. It's identical to NextRunAtEQ.
func NextRunAt(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldNextRunAt, v))
}

// LastRunAt applies equality check predicate on the "last_run_at" field. It's identical to LastRunAtEQ.
func LastRunAt(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunStatus applies equality check predicate on the "last_run_status" field. It's identical to LastRunStatusEQ.
func LastRunStatus(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldLastRunStatus, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldCompleted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldDescription, v))
}

// PatternNameEQ applies the EQ predicate on the "pattern_name" field.
func PatternNameEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldPatternName, v))
}

// PatternNameNEQ applies the NEQ predicate on the "pattern_name" field.
func PatternNameNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldPatternName, v))
}

// PatternNameIn applies the In predicate on the "pattern_name" field.
func PatternNameIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldPatternName, vs...))
}

// PatternNameNotIn applies the NotIn predicate on the "pattern_name" field.
func PatternNameNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldPatternName, vs...))
}

// PatternNameGT applies the GT predicate on the "pattern_name" field.
func PatternNameGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldPatternName, v))
}

// PatternNameGTE applies the GTE predicate on the "pattern_name" field.
func PatternNameGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldPatternName, v))
}

// PatternNameLT applies the LT predicate on the "pattern_name" field.
func PatternNameLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldPatternName, v))
}

// PatternNameLTE applies the LTE predicate on the "pattern_name" field.
func PatternNameLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldPatternName, v))
}

// PatternNameContains applies the Contains predicate on the "pattern_name" field.
func PatternNameContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldPatternName, v))
}

// PatternNameHasPrefix applies the HasPrefix predicate on the "pattern_name" field.
func PatternNameHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldPatternName, v))
}

// PatternNameHasSuffix applies the HasSuffix predicate on the "pattern_name" field.
func PatternNameHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldPatternName, v))
}

// PatternNameEqualFold applies the EqualFold predicate on the "pattern_name" field.
func PatternNameEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldPatternName, v))
}

// PatternNameContainsFold applies the ContainsFold predicate on the "pattern_name" field.
func PatternNameContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldPatternName, v))
}

// InputIsNil applies the IsNil predicate on the "input" field.
func InputIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldInput))
}

// InputNotNil applies the NotNil predicate on the "input" field.
func InputNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldInput))
}

// CronEQ applies the EQ predicate on the "cron" field.
func CronEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldCron, v))
}

// CronNEQ applies the NEQ predicate on the "cron" field.
func CronNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldCron, v))
}

// CronIn applies the In predicate on the "cron" field.
func CronIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldCron, vs...))
}

// CronNotIn applies the NotIn predicate on the "cron" field.
func CronNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldCron, vs...))
}

// CronGT applies the GT predicate on the "cron" field.
func CronGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldCron, v))
}

// CronGTE applies the GTE predicate on the "cron" field.
func CronGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldCron, v))
}

// CronLT applies the LT predicate on the "cron" field.
func CronLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldCron, v))
}

// CronLTE applies the LTE predicate on the "cron" field.
func CronLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldCron, v))
}

// CronContains applies the Contains predicate on the "cron" field.
func CronContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldCron, v))
}

// CronHasPrefix applies the HasPrefix predicate on the "cron" field.
func CronHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldCron, v))
}

// CronHasSuffix applies the HasSuffix predicate on the "cron" field.
func CronHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldCron, v))
}

// CronIsNil applies the IsNil predicate on the "cron" field.
func CronIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldCron))
}

// CronNotNil applies the NotNil predicate on the "cron" field.
func CronNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldCron))
}

// CronEqualFold applies the EqualFold predicate on the "cron" field.
func CronEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldCron, v))
}

// CronContainsFold applies the ContainsFold predicate on the "cron" field.
func CronContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldCron, v))
}

// IntervalMsEQ applies the EQ predicate on the "interval_ms" field.
func IntervalMsEQ(v int64) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldIntervalMs, v))
}

// IntervalMsNEQ applies the NEQ predicate on the "interval_ms" field.
func IntervalMsNEQ(v int64) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldIntervalMs, v))
}

// IntervalMsIn applies the In predicate on the "interval_ms" field.
func IntervalMsIn(vs ...int64) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldIntervalMs, vs...))
}

// IntervalMsNotIn applies the NotIn predicate on the "interval_ms" field.
func IntervalMsNotIn(vs ...int64) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldIntervalMs, vs...))
}

// IntervalMsGT applies the GT predicate on the "interval_ms" field.
func IntervalMsGT(v int64) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldIntervalMs, v))
}

// IntervalMsGTE applies the GTE predicate on the "interval_ms" field.
func IntervalMsGTE(v int64) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldIntervalMs, v))
}

// IntervalMsLT applies the LT predicate on the "interval_ms" field.
func IntervalMsLT(v int64) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldIntervalMs, v))
}

// IntervalMsLTE applies the LTE predicate on the "interval_ms" field.
func IntervalMsLTE(v int64) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldIntervalMs, v))
}

// IntervalMsIsNil applies the IsNil predicate on the "interval_ms" field.
func IntervalMsIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldIntervalMs))
}

// IntervalMsNotNil applies the NotNil predicate on the "interval_ms" field.
func IntervalMsNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldIntervalMs))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldTimezone, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldEnabled, v))
}

// StartAtEQ applies the EQ predicate on the "start_at" field.
func StartAtEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldStartAt, v))
}

// StartAtNEQ applies the NEQ predicate on the "start_at" field.
func StartAtNEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldStartAt, v))
}

// StartAtIn applies the In predicate on the "start_at" field.
func StartAtIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldStartAt, vs...))
}

// StartAtNotIn applies the NotIn predicate on the "start_at" field.
func StartAtNotIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldStartAt, vs...))
}

// StartAtGT applies the GT predicate on the "start_at" field.
func StartAtGT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldStartAt, v))
}

// StartAtGTE applies the GTE predicate on the "start_at" field.
func StartAtGTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldStartAt, v))
}

// StartAtLT applies the LT predicate on the "start_at" field.
func StartAtLT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldStartAt, v))
}

// StartAtLTE applies the LTE predicate on the "start_at" field.
func StartAtLTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldStartAt, v))
}

// StartAtIsNil applies the IsNil predicate on the "start_at" field.
func StartAtIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldStartAt))
}

// StartAtNotNil applies the NotNil predicate on the "start_at" field.
func StartAtNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldStartAt))
}

// EndAtEQ applies the EQ predicate on the "end_at" field.
func EndAtEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldEndAt, v))
}

// EndAtNEQ applies the NEQ predicate on the "end_at" field.
func EndAtNEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldEndAt, v))
}

// EndAtIn applies the In predicate on the "end_at" field.
func EndAtIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldEndAt, vs...))
}

// EndAtNotIn applies the NotIn predicate on the "end_at" field.
func EndAtNotIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldEndAt, vs...))
}

// EndAtGT applies the GT predicate on the "end_at" field.
func EndAtGT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldEndAt, v))
}

// EndAtGTE applies the GTE predicate on the "end_at" field.
func EndAtGTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldEndAt, v))
}

// EndAtLT applies the LT predicate on the "end_at" field.
func EndAtLT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldEndAt, v))
}

// EndAtLTE applies the LTE predicate on the "end_at" field.
func EndAtLTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldEndAt, v))
}

// EndAtIsNil applies the IsNil predicate on the "end_at" field.
func EndAtIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldEndAt))
}

// EndAtNotNil applies the NotNil predicate on the "end_at" field.
func EndAtNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldEndAt))
}

// MaxRunsEQ applies the EQ predicate on the "max_runs" field.
func MaxRunsEQ(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldMaxRuns, v))
}

// MaxRunsNEQ applies the NEQ predicate on the "max_runs" field.
func MaxRunsNEQ(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldMaxRuns, v))
}

// MaxRunsIn applies the In predicate on the "max_runs" field.
func MaxRunsIn(vs ...int) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldMaxRuns, vs...))
}

// MaxRunsNotIn applies the NotIn predicate on the "max_runs" field.
func MaxRunsNotIn(vs ...int) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldMaxRuns, vs...))
}

// MaxRunsGT applies the GT predicate on the "max_runs" field.
func MaxRunsGT(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldMaxRuns, v))
}

// MaxRunsGTE applies the GTE predicate on the "max_runs" field.
func MaxRunsGTE(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldMaxRuns, v))
}

// MaxRunsLT applies the LT predicate on the "max_runs" field.
func MaxRunsLT(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldMaxRuns, v))
}

// MaxRunsLTE applies the LTE predicate on the "max_runs" field.
func MaxRunsLTE(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldMaxRuns, v))
}

// MaxRunsIsNil applies the IsNil predicate on the "max_runs" field.
func MaxRunsIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldMaxRuns))
}

// MaxRunsNotNil applies the NotNil predicate on the "max_runs" field.
func MaxRunsNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldMaxRuns))
}

// RunCountEQ applies the EQ predicate on the "run_count" field.
func RunCountEQ(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldRunCount, v))
}

// RunCountNEQ applies the NEQ predicate on the "run_count" field.
func RunCountNEQ(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldRunCount, v))
}

// RunCountIn applies the In predicate on the "run_count" field.
func RunCountIn(vs ...int) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldRunCount, vs...))
}

// RunCountNotIn applies the NotIn predicate on the "run_count" field.
func RunCountNotIn(vs ...int) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldRunCount, vs...))
}

// RunCountGT applies the GT predicate on the "run_count" field.
func RunCountGT(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldRunCount, v))
}

// RunCountGTE applies the GTE predicate on the "run_count" field.
func RunCountGTE(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldRunCount, v))
}

// RunCountLT applies the LT predicate on the "run_count" field.
func RunCountLT(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldRunCount, v))
}

// RunCountLTE applies the LTE predicate on the "run_count" field.
func RunCountLTE(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldRunCount, v))
}

// NextRunAtEQ applies the EQ predicate on the "next_run_at" field.
func NextRunAtEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldNextRunAt, v))
}

// NextRunAtNEQ applies the NEQ predicate on the "next_run_at" field.
func NextRunAtNEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldNextRunAt, v))
}

// NextRunAtIn applies the In predicate on the "next_run_at" field.
func NextRunAtIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldNextRunAt, vs...))
}

// NextRunAtNotIn applies the NotIn predicate on the "next_run_at" field.
func NextRunAtNotIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldNextRunAt, vs...))
}

// NextRunAtGT applies the GT predicate on the "next_run_at" field.
func NextRunAtGT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldNextRunAt, v))
}

// NextRunAtGTE applies the GTE predicate on the "next_run_at" field.
func NextRunAtGTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldNextRunAt, v))
}

// NextRunAtLT applies the LT predicate on the "next_run_at" field.
func NextRunAtLT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldNextRunAt, v))
}

// NextRunAtLTE applies the LTE predicate on the "next_run_at" field.
func NextRunAtLTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldNextRunAt, v))
}

// NextRunAtIsNil applies the IsNil predicate on the "next_run_at" field.
func NextRunAtIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldNextRunAt))
}

// NextRunAtNotNil applies the NotNil predicate on the "next_run_at" field.
func NextRunAtNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldNextRunAt))
}

// LastRunAtEQ applies the EQ predicate on the "last_run_at" field.
func LastRunAtEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunAtNEQ applies the NEQ predicate on the "last_run_at" field.
func LastRunAtNEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldLastRunAt, v))
}

// LastRunAtIn applies the In predicate on the "last_run_at" field.
func LastRunAtIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldLastRunAt, vs...))
}

// LastRunAtNotIn applies the NotIn predicate on the "last_run_at" field.
func LastRunAtNotIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldLastRunAt, vs...))
}

// LastRunAtGT applies the GT predicate on the "last_run_at" field.
func LastRunAtGT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldLastRunAt, v))
}

// LastRunAtGTE applies the GTE predicate on the "last_run_at" field.
func LastRunAtGTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldLastRunAt, v))
}

// LastRunAtLT applies the LT predicate on the "last_run_at" field.
func LastRunAtLT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldLastRunAt, v))
}

// LastRunAtLTE applies the LTE predicate on the "last_run_at" field.
func LastRunAtLTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldLastRunAt, v))
}

// LastRunAtIsNil applies the IsNil predicate on the "last_run_at" field.
func LastRunAtIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldLastRunAt))
}

// LastRunAtNotNil applies the NotNil predicate on the "last_run_at" field.
func LastRunAtNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldLastRunAt))
}

// LastRunStatusEQ applies the EQ predicate on the "last_run_status" field.
func LastRunStatusEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldLastRunStatus, v))
}

// LastRunStatusNEQ applies the NEQ predicate on the "last_run_status" field.
func LastRunStatusNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldLastRunStatus, v))
}

// LastRunStatusIn applies the In predicate on the "last_run_status" field.
func LastRunStatusIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldLastRunStatus, vs...))
}

// LastRunStatusNotIn applies the NotIn predicate on the "last_run_status" field.
func LastRunStatusNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldLastRunStatus, vs...))
}

// LastRunStatusGT applies the GT predicate on the "last_run_status" field.
func LastRunStatusGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldLastRunStatus, v))
}

// LastRunStatusGTE applies the GTE predicate on the "last_run_status" field.
func LastRunStatusGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldLastRunStatus, v))
}

// LastRunStatusLT applies the LT predicate on the "last_run_status" field.
func LastRunStatusLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldLastRunStatus, v))
}

// LastRunStatusLTE applies the LTE predicate on the "last_run_status" field.
func LastRunStatusLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldLastRunStatus, v))
}

// LastRunStatusContains applies the Contains predicate on the "last_run_status" field.
func LastRunStatusContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldLastRunStatus, v))
}

// LastRunStatusHasPrefix applies the HasPrefix predicate on the "last_run_status" field.
func LastRunStatusHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldLastRunStatus, v))
}

// LastRunStatusHasSuffix applies the HasSuffix predicate on the "last_run_status" field.
func LastRunStatusHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldLastRunStatus, v))
}

// LastRunStatusIsNil applies the IsNil predicate on the "last_run_status" field.
func LastRunStatusIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldLastRunStatus))
}

// LastRunStatusNotNil applies the NotNil predicate on the "last_run_status" field.
func LastRunStatusNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldLastRunStatus))
}

// LastRunStatusEqualFold applies the EqualFold predicate on the "last_run_status" field.
func LastRunStatusEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldLastRunStatus, v))
}

// LastRunStatusContainsFold applies the ContainsFold predicate on the "last_run_status" field.
func LastRunStatusContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldLastRunStatus, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldCompleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRuns applies the HasEdge predicate on the "runs" edge.
func HasRuns() predicate.Schedule {
	return predicate.Schedule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunsWith applies the HasEdge predicate on the "runs" edge with a given conditions (other predicates).
func HasRunsWith(preds ...predicate.ScheduleRun) predicate.Schedule {
	return predicate.Schedule(func(s *sql.Selector) {
		step := newRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Schedule) predicate.Schedule {
	return predicate.Schedule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Schedule) predicate.Schedule {
	return predicate.Schedule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Schedule) predicate.Schedule {
	return predicate.Schedule(sql.NotPredicates(p))
}
