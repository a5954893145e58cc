package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionParticipation holds the schema definition for the
// SessionParticipation entity. One row per (session, user); status is a
// free string so rows written by earlier systems survive reads unchanged.
type SessionParticipation struct {
	ent.Schema
}

// Mixin of the SessionParticipation.
func (SessionParticipation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the SessionParticipation.
func (SessionParticipation) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.Int64("session_id"),
		field.Int64("user_id"),
		field.Int64("enrolled_by_id"),
		field.String("status").
			NotEmpty().
			MaxLen(32).
			Comment("CONFIRMED, WAITING, or a legacy value preserved verbatim"),
	}
}

// Edges of the SessionParticipation.
func (SessionParticipation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("participations").
			Field("session_id").
			Unique().
			Required(),
		edge.From("user", User.Type).
			Ref("participations").
			Field("user_id").
			Unique().
			Required(),
		edge.To("enrolled_by", User.Type).
			Field("enrolled_by_id").
			Unique().
			Required().
			Comment("Acting user; differs from user for manager-driven enrollment"),
	}
}

// Indexes of the SessionParticipation.
func (SessionParticipation) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("session", "user").Unique(),
		index.Edges("session").Fields("status", "created_at"),
	}
}
