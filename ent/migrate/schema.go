// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SchedulesColumns holds the columns for the "schedules" table.
	SchedulesColumns = []*schema.Column{
		{Name: "schedule_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "pattern_name", Type: field.TypeString},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "cron", Type: field.TypeString, Nullable: true},
		{Name: "interval_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Default: "UTC"},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "start_at", Type: field.TypeTime, Nullable: true},
		{Name: "end_at", Type: field.TypeTime, Nullable: true},
		{Name: "max_runs", Type: field.TypeInt, Nullable: true},
		{Name: "run_count", Type: field.TypeInt, Default: 0},
		{Name: "next_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_run_status", Type: field.TypeString, Nullable: true},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SchedulesTable holds the schema information for the "schedules" table.
	SchedulesTable = &schema.Table{
		Name:       "schedules",
		Columns:    SchedulesColumns,
		PrimaryKey: []*schema.Column{SchedulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "schedule_enabled_next_run_at",
				Unique:  false,
				Columns: []*schema.Column{SchedulesColumns[8], SchedulesColumns[13]},
			},
		},
	}
	// ScheduleRunsColumns holds the columns for the "schedule_runs" table.
	ScheduleRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed"}, Default: "running"},
		{Name: "execution_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "schedule_id", Type: field.TypeString},
	}
	// ScheduleRunsTable holds the schema information for the "schedule_runs" table.
	ScheduleRunsTable = &schema.Table{
		Name:       "schedule_runs",
		Columns:    ScheduleRunsColumns,
		PrimaryKey: []*schema.Column{ScheduleRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "schedule_runs_schedules_runs",
				Columns:    []*schema.Column{ScheduleRunsColumns[7]},
				RefColumns: []*schema.Column{SchedulesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "schedulerun_schedule_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduleRunsColumns[7], ScheduleRunsColumns[3]},
			},
		},
	}
	// TriggersColumns holds the columns for the "triggers" table.
	TriggersColumns = []*schema.Column{
		{Name: "trigger_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"webhook", "event"}},
		{Name: "pattern_name", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "webhook_path", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "secret", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeString, Nullable: true},
		{Name: "filter", Type: field.TypeJSON, Nullable: true},
		{Name: "input_mapping", Type: field.TypeJSON, Nullable: true},
		{Name: "fire_count", Type: field.TypeInt, Default: 0},
		{Name: "last_fired_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TriggersTable holds the schema information for the "triggers" table.
	TriggersTable = &schema.Table{
		Name:       "triggers",
		Columns:    TriggersColumns,
		PrimaryKey: []*schema.Column{TriggersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trigger_type_enabled",
				Unique:  false,
				Columns: []*schema.Column{TriggersColumns[3], TriggersColumns[5]},
			},
			{
				Name:    "trigger_event_type",
				Unique:  false,
				Columns: []*schema.Column{TriggersColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SchedulesTable,
		ScheduleRunsTable,
		TriggersTable,
	}
)

func init() {
	ScheduleRunsTable.ForeignKeys[0].RefTable = SchedulesTable
}
