package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Sphere holds the schema definition for the Sphere entity.
// A sphere is a tenant: one organization running events under one hostname.
type Sphere struct {
	ent.Schema
}

// Mixin of the Sphere.
func (Sphere) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Sphere.
func (Sphere) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("host").
			NotEmpty().
			MaxLen(255).
			Comment("Hostname this sphere is served under"),
		field.Bool("is_open").
			Default(false).
			Comment("Open spheres accept self-service signups"),
	}
}

// Edges of the Sphere.
func (Sphere) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", Event.Type),
	}
}

// Indexes of the Sphere.
func (Sphere) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("host").Unique(),
	}
}
