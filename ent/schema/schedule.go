package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Schedule holds the schema definition for the Schedule entity: a recurring
// workflow execution driven by either a cron expression or a fixed interval
// (exactly one of the two is set).
type Schedule struct {
	ent.Schema
}

// Fields of the Schedule.
func (Schedule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("schedule_id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.String("pattern_name").
			NotEmpty().
			Comment("Name of the pattern executed on each run"),
		field.JSON("input", map[string]any{}).
			Optional().
			Comment("Input passed to the workflow on each run"),

		// Cadence: exactly one of cron / interval_ms.
		field.String("cron").
			Optional().
			Nillable(),
		field.Int64("interval_ms").
			Optional().
			Nillable(),
		field.String("timezone").
			Default("UTC").
			Comment("IANA zone used to evaluate cron expressions"),

		// Run window and budget.
		field.Bool("enabled").
			Default(true),
		field.Time("start_at").
			Optional().
			Nillable(),
		field.Time("end_at").
			Optional().
			Nillable(),
		field.Int("max_runs").
			Optional().
			Nillable().
			Comment("Schedule completes after this many runs"),

		// Bookkeeping maintained by the poller.
		field.Int("run_count").
			Default(0),
		field.Time("next_run_at").
			Optional().
			Nillable(),
		field.Time("last_run_at").
			Optional().
			Nillable(),
		field.String("last_run_status").
			Optional().
			Comment("Outcome of the most recent run (completed or failed)"),
		field.Bool("completed").
			Default(false).
			Comment("Set when max_runs is reached or end_at has passed"),

		field.Time("created_at").
			Immutable(),
		field.Time("updated_at"),
	}
}

// Edges of the Schedule.
func (Schedule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("runs", ScheduleRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Schedule.
func (Schedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled", "next_run_at"),
	}
}
