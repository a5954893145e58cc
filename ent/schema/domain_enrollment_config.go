package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DomainEnrollmentConfig holds the schema definition for the
// DomainEnrollmentConfig entity. A row grants slots to every email address
// under one domain for one enrollment config.
type DomainEnrollmentConfig struct {
	ent.Schema
}

// Mixin of the DomainEnrollmentConfig.
func (DomainEnrollmentConfig) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the DomainEnrollmentConfig.
func (DomainEnrollmentConfig) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.Int64("config_id"),
		field.String("domain").
			NotEmpty().
			MaxLen(255).
			Comment("Email domain, stored lowercase"),
		field.Int("allowed_slots_per_user").
			Default(0).
			NonNegative(),
	}
}

// Edges of the DomainEnrollmentConfig.
func (DomainEnrollmentConfig) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("config", EnrollmentConfig.Type).
			Ref("domain_configs").
			Field("config_id").
			Unique().
			Required(),
	}
}

// Indexes of the DomainEnrollmentConfig.
func (DomainEnrollmentConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("config").Fields("domain").Unique(),
	}
}
