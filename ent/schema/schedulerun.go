package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduleRun holds the schema definition for the ScheduleRun entity: one
// attempt at executing a schedule's workflow.
type ScheduleRun struct {
	ent.Schema
}

// Fields of the ScheduleRun.
func (ScheduleRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("schedule_id").
			Immutable(),
		field.Enum("status").
			Values("running", "completed", "failed").
			Default("running"),
		field.String("execution_id").
			Optional().
			Comment("Workflow execution produced by this run"),
		field.Time("started_at").
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int64("duration_ms").
			Optional().
			Nillable(),
		field.String("error").
			Optional().
			Nillable().
			Comment("Truncated failure message"),
	}
}

// Edges of the ScheduleRun.
func (ScheduleRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("schedule", Schedule.Type).
			Ref("runs").
			Field("schedule_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ScheduleRun.
func (ScheduleRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("schedule_id", "started_at"),
	}
}
