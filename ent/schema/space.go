package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Space holds the schema definition for the Space entity.
// A space is a bookable room or table within an event venue.
type Space struct {
	ent.Schema
}

// Mixin of the Space.
func (Space) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Space.
func (Space) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.Int64("event_id"),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("slug").
			NotEmpty().
			MaxLen(255),
	}
}

// Edges of the Space.
func (Space) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("event", Event.Type).
			Ref("spaces").
			Field("event_id").
			Unique().
			Required(),
		edge.To("agenda_items", AgendaItem.Type),
	}
}

// Indexes of the Space.
func (Space) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("event").Fields("slug").Unique(),
	}
}
