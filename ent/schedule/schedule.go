// Code generated by ent, DO NOT EDIT.

package schedule

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the schedule type in the database.
	Label = "schedule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "schedule_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPatternName holds the string denoting the pattern_name field in the database.
	FieldPatternName = "pattern_name"
	// FieldInput holds the string denoting the input field in the database.
	FieldInput = "input"
	// FieldCron holds the string denoting the cron field in the database.
	FieldCron = "cron"
	// FieldIntervalMs holds the string denoting the interval_ms field in the database.
	FieldIntervalMs = "interval_ms"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldStartAt holds the string denoting the start_at field in the database.
	FieldStartAt = "start_at"
	// FieldEndAt holds the string denoting the end_at field in the database.
	FieldEndAt = "end_at"
	// FieldMaxRuns holds the string denoting the max_runs field in the database.
	FieldMaxRuns = "max_runs"
	// FieldRunCount holds the string denoting the run_count field in the database.
	FieldRunCount = "run_count"
	// FieldNextRunAt holds the string denoting the next_run_at field in the database.
	FieldNextRunAt = "next_run_at"
	// FieldLastRunAt holds the string denoting the last_run_at field in the database.
	FieldLastRunAt = "last_run_at"
	// FieldLastRunStatus holds the string denoting the last_run_status field in the database.
	FieldLastRunStatus = "last_run_status"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRuns holds the string denoting the runs edge name in mutations.
	EdgeRuns = "runs"
	// ScheduleRunFieldID holds the string denoting the ID field of the ScheduleRun.
	ScheduleRunFieldID = "run_id"
	// Table holds the table name of the schedule in the database.
	Table = "schedules"
	// RunsTable is the table that holds the runs relation/edge.
	RunsTable = "schedule_runs"
	// RunsInverseTable is the table name for the ScheduleRun entity.
	// It exists in this package in order to avoid circular dependency with the "schedulerun" package.
	RunsInverseTable = "schedule_runs"
	// RunsColumn is the table column denoting the runs relation/edge.
	RunsColumn = "schedule_id"
)

// Columns holds all SQL columns for schedule fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldPatternName,
	FieldInput,
	FieldCron,
	FieldIntervalMs,
	FieldTimezone,
	FieldEnabled,
	FieldStartAt,
	FieldEndAt,
	FieldMaxRuns,
	FieldRunCount,
	FieldNextRunAt,
	FieldLastRunAt,
	FieldLastRunStatus,
	FieldCompleted,
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
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultRunCount holds the default value on creation for the "run_count" field.
	DefaultRunCount int
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
)

// OrderOption defines the ordering options for the Schedule queries.
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

// ByPatternName orders the results by the pattern_name field.
func ByPatternName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternName, opts...).ToFunc()
}

// ByCron orders the results by the cron field.
func ByCron(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCron, opts...).ToFunc()
}

// ByIntervalMs orders the results by the interval_ms field.
func ByIntervalMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalMs, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByStartAt orders the results by the start_at field.
func ByStartAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartAt, opts...).ToFunc()
}

// ByEndAt orders the results by the end_at field.
func ByEndAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndAt, opts...).ToFunc()
}

// ByMaxRuns orders the results by the max_runs field.
func ByMaxRuns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRuns, opts...).ToFunc()
}

// ByRunCount orders the results by the run_count field.
func ByRunCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunCount, opts...).ToFunc()
}

// ByNextRunAt orders the results by the next_run_at field.
func ByNextRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextRunAt, opts...).ToFunc()
}

// ByLastRunAt orders the results by the last_run_at field.
func ByLastRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunAt, opts...).ToFunc()
}

// ByLastRunStatus orders the results by the last_run_status field.
func ByLastRunStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunStatus, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRunsCount orders the results by runs count.
func ByRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRunsStep(), opts...)
	}
}

// ByRuns orders the results by runs terms.
func ByRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunsInverseTable, ScheduleRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
	)
}
