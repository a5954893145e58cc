package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity. Covers both active
// accounts and connected users (profiles a manager enrolls on behalf of).
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.Int64("manager_id").
			Optional().
			Nillable(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("slug").
			NotEmpty().
			MaxLen(255),
		field.String("email").
			Optional().
			MaxLen(255).
			Comment("Connected users have no email of their own"),
		field.Bool("is_active").
			Default(true),
		field.Time("birth_date").
			Optional().
			Nillable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("connected_users", User.Type).
			From("manager").
			Field("manager_id").
			Unique(),
		edge.To("participations", SessionParticipation.Type),
		edge.To("notifications", Notification.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug").Unique(),
		index.Fields("email"),
	}
}
