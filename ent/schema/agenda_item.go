package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgendaItem holds the schema definition for the AgendaItem entity.
// It places a session at a time range in a space. Sessions without an
// agenda item exist but cannot conflict with anything.
type AgendaItem struct {
	ent.Schema
}

// Mixin of the AgendaItem.
func (AgendaItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the AgendaItem.
func (AgendaItem) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.Int64("space_id"),
		field.Int64("session_id").
			Unique(),
		field.Time("start_time"),
		field.Time("end_time"),
		field.Bool("session_confirmed").
			Default(false).
			Comment("Whether the organizer has confirmed the slot assignment"),
	}
}

// Edges of the AgendaItem.
func (AgendaItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("space", Space.Type).
			Ref("agenda_items").
			Field("space_id").
			Unique().
			Required(),
		edge.From("session", Session.Type).
			Ref("agenda_item").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the AgendaItem.
func (AgendaItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("start_time", "end_time"),
	}
}
