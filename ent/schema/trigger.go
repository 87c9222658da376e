package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Trigger holds the schema definition for the Trigger entity: an external
// condition (signed webhook or internal event) that starts a workflow.
type Trigger struct {
	ent.Schema
}

// Fields of the Trigger.
func (Trigger) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("trigger_id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Enum("type").
			Values("webhook", "event").
			Immutable(),
		field.String("pattern_name").
			NotEmpty(),
		field.Bool("enabled").
			Default(true),

		// Webhook triggers.
		field.String("webhook_path").
			Optional().
			Unique().
			Comment("Random path segment the webhook endpoint is served under"),
		field.String("secret").
			Optional().
			Sensitive().
			Comment("HMAC key for webhook signature verification"),

		// Event triggers.
		field.String("event_type").
			Optional(),
		field.JSON("filter", map[string]any{}).
			Optional().
			Comment("Operator document matched against event payloads"),

		field.JSON("input_mapping", map[string]any{}).
			Optional().
			Comment("Maps payload paths into workflow input fields"),

		field.Int("fire_count").
			Default(0),
		field.Time("last_fired_at").
			Optional().
			Nillable(),

		field.Time("created_at").
			Immutable(),
		field.Time("updated_at"),
	}
}

// Indexes of the Trigger.
func (Trigger) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type", "enabled"),
		index.Fields("event_type"),
	}
}
