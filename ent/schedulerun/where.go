// Code generated by ent, DO NOT EDIT.

package schedulerun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/parallax-dev/parallax/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldContainsFold(FieldID, id))
}

// ScheduleID applies equality check predicate on the "schedule_id" field. It's identical to ScheduleIDEQ.
func ScheduleID(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEQ(FieldScheduleID, v))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEQ(FieldExecutionID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEQ(FieldDurationMs, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEQ(FieldError, v))
}

// ScheduleIDEQ applies the EQ predicate on the "schedule_id" field.
func ScheduleIDEQ(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEQ(FieldScheduleID, v))
}

// ScheduleIDNEQ applies the NEQ predicate on the "schedule_id" field.
func ScheduleIDNEQ(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNEQ(FieldScheduleID, v))
}

// ScheduleIDIn applies the In predicate on the "schedule_id" field.
func ScheduleIDIn(vs ...string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldIn(FieldScheduleID, vs...))
}

// ScheduleIDNotIn applies the NotIn predicate on the "schedule_id" field.
func ScheduleIDNotIn(vs ...string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNotIn(FieldScheduleID, vs...))
}

// ScheduleIDGT applies the GT predicate on the "schedule_id" field.
func ScheduleIDGT(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldGT(FieldScheduleID, v))
}

// ScheduleIDGTE applies the GTE predicate on the "schedule_id" field.
func ScheduleIDGTE(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldGTE(FieldScheduleID, v))
}

// ScheduleIDLT applies the LT predicate on the "schedule_id" field.
func ScheduleIDLT(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldLT(FieldScheduleID, v))
}

// ScheduleIDLTE applies the LTE predicate on the "schedule_id" field.
func ScheduleIDLTE(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldLTE(FieldScheduleID, v))
}

// ScheduleIDContains applies the Contains predicate on the "schedule_id" field.
func ScheduleIDContains(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldContains(FieldScheduleID, v))
}

// ScheduleIDHasPrefix applies the HasPrefix predicate on the "schedule_id" field.
func ScheduleIDHasPrefix(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldHasPrefix(FieldScheduleID, v))
}

// ScheduleIDHasSuffix applies the HasSuffix predicate on the "schedule_id" field.
func ScheduleIDHasSuffix(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldHasSuffix(FieldScheduleID, v))
}

// ScheduleIDEqualFold applies the EqualFold predicate on the "schedule_id" field.
func ScheduleIDEqualFold(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEqualFold(FieldScheduleID, v))
}

// ScheduleIDContainsFold applies the ContainsFold predicate on the "schedule_id" field.
func ScheduleIDContainsFold(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldContainsFold(FieldScheduleID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNotIn(FieldStatus, vs...))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDIsNil applies the IsNil predicate on the "execution_id" field.
func ExecutionIDIsNil() predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldIsNull(FieldExecutionID))
}

// ExecutionIDNotNil applies the NotNil predicate on the "execution_id" field.
func ExecutionIDNotNil() predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNotNull(FieldExecutionID))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldContainsFold(FieldExecutionID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNotNull(FieldDurationMs))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.FieldContainsFold(FieldError, v))
}

// HasSchedule applies the HasEdge predicate on the "schedule" edge.
func HasSchedule() predicate.ScheduleRun {
	return predicate.ScheduleRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ScheduleTable, ScheduleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScheduleWith applies the HasEdge predicate on the "schedule" edge with a given conditions (other predicates).
func HasScheduleWith(preds ...predicate.Schedule) predicate.ScheduleRun {
	return predicate.ScheduleRun(func(s *sql.Selector) {
		step := newScheduleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduleRun) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduleRun) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduleRun) predicate.ScheduleRun {
	return predicate.ScheduleRun(sql.NotPredicates(p))
}
