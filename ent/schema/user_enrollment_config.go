package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserEnrollmentConfig holds the schema definition for the
// UserEnrollmentConfig entity. A row is a per-email slot grant under one
// enrollment config. Rows fetched from a membership gateway double as a
// cache: allowed_slots=0 with a last_check timestamp is a cooldown-guarded
// negative result.
type UserEnrollmentConfig struct {
	ent.Schema
}

// Mixin of the UserEnrollmentConfig.
func (UserEnrollmentConfig) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the UserEnrollmentConfig.
func (UserEnrollmentConfig) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.Int64("config_id"),
		field.String("user_email").
			NotEmpty().
			MaxLen(255),
		field.Int("allowed_slots").
			Default(0).
			NonNegative(),
		field.Bool("fetched_from_api").
			Default(false),
		field.Time("last_check").
			Optional().
			Nillable().
			Comment("Last gateway lookup; gates the zero-slot recheck cooldown"),
	}
}

// Edges of the UserEnrollmentConfig.
func (UserEnrollmentConfig) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("config", EnrollmentConfig.Type).
			Ref("user_configs").
			Field("config_id").
			Unique().
			Required(),
	}
}

// Indexes of the UserEnrollmentConfig.
func (UserEnrollmentConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("config").Fields("user_email").Unique(),
	}
}
