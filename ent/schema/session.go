package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity.
// A session is an enrollable activity (a game slot, a talk, a workshop).
type Session struct {
	ent.Schema
}

// Mixin of the Session.
func (Session) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.Int64("event_id"),
		field.Int64("host_id").
			Optional().
			Nillable(),
		field.String("title").
			NotEmpty().
			MaxLen(255),
		field.String("slug").
			NotEmpty().
			MaxLen(255),
		field.Int("participants_limit").
			Default(0).
			NonNegative().
			Comment("Raw capacity before the percentage_slots reduction"),
		field.Int("min_age").
			Default(0).
			NonNegative(),
		field.Text("requirements").
			Optional(),
		field.String("presenter_name").
			Optional().
			MaxLen(255),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("event", Event.Type).
			Ref("sessions").
			Field("event_id").
			Unique().
			Required(),
		edge.To("host", User.Type).
			Field("host_id").
			Unique(),
		edge.To("agenda_item", AgendaItem.Type).
			Unique(),
		edge.To("participations", SessionParticipation.Type),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("event").Fields("slug").Unique(),
	}
}
