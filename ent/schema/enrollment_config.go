package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EnrollmentConfig holds the schema definition for the EnrollmentConfig
// entity. Each row opens an enrollment window for an event; several windows
// may overlap (early access, general access) and the most liberal one wins.
type EnrollmentConfig struct {
	ent.Schema
}

// Mixin of the EnrollmentConfig.
func (EnrollmentConfig) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the EnrollmentConfig.
func (EnrollmentConfig) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.Int64("event_id"),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.Time("start_time"),
		field.Time("end_time"),
		field.Int("percentage_slots").
			Default(100).
			Range(0, 100).
			Comment("Share of each session's participant limit released in this window"),
		field.Bool("limit_to_end_time").
			Default(false).
			Comment("When set, only sessions starting before end_time are in scope"),
		field.Bool("restrict_to_configured_users").
			Default(false).
			Comment("Gate enrollment to users with an explicit or API-sourced slot grant"),
		field.Int("max_waitlist_sessions").
			Default(0).
			NonNegative().
			Comment("Per-user waitlist ceiling; 0 disables waitlisting"),
		field.Text("banner_text").
			Optional().
			Comment("Display only, ignored by the engine"),
		field.String("api_provider").
			Optional().
			MaxLen(64).
			Comment("Named membership gateway used to fetch slot budgets; empty means manual grants only"),
	}
}

// Edges of the EnrollmentConfig.
func (EnrollmentConfig) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("event", Event.Type).
			Ref("enrollment_configs").
			Field("event_id").
			Unique().
			Required(),
		edge.To("user_configs", UserEnrollmentConfig.Type),
		edge.To("domain_configs", DomainEnrollmentConfig.Type),
	}
}

// Indexes of the EnrollmentConfig.
func (EnrollmentConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("start_time", "end_time"),
	}
}
