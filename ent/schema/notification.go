package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for the Notification entity.
// Platform inbox: database-backed in-app notifications written after an
// enrollment batch commits (best-effort, never blocks the batch).
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // created_at only (notifications are append-only)
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Int64("recipient_id"),
		field.Enum("type").
			Values(
				"ENROLLMENT_CONFIRMED",
				"ENROLLMENT_WAITLISTED",
				"ENROLLMENT_PROMOTED",
				"ENROLLMENT_CANCELLED",
			),
		field.String("title").
			NotEmpty().
			MaxLen(255),
		field.String("message").
			NotEmpty().
			MaxLen(2048),
		field.String("resource_type").
			Optional().
			Comment("Related resource type (e.g. session)"),
		field.String("resource_id").
			Optional().
			Comment("Related resource ID for navigation"),
		field.Bool("read").
			Default(false),
		field.Time("read_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Notification.
func (Notification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("notifications").
			Field("recipient_id").
			Unique().
			Required(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("user").Fields("read"),       // Fast unread count query
		index.Edges("user").Fields("created_at"), // Paginated list by user
		index.Fields("created_at"),               // Retention cleanup
	}
}
