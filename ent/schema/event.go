package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// An event is one convention edition with a fixed agenda window.
type Event struct {
	ent.Schema
}

// Mixin of the Event.
func (Event) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.Int64("sphere_id"),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("slug").
			NotEmpty().
			MaxLen(255),
		field.Time("start_time").
			Comment("Agenda start; the fallback bound for enrollment windows"),
		field.Time("end_time"),
		field.Time("proposal_start_time").
			Optional().
			Nillable(),
		field.Time("proposal_end_time").
			Optional().
			Nillable(),
		field.Time("publication_time").
			Optional().
			Nillable().
			Comment("When the agenda becomes publicly visible"),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("sphere", Sphere.Type).
			Ref("events").
			Field("sphere_id").
			Unique().
			Required(),
		edge.To("spaces", Space.Type),
		edge.To("sessions", Session.Type),
		edge.To("enrollment_configs", EnrollmentConfig.Type),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("sphere").Fields("slug").Unique(),
	}
}
