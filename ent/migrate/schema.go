// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgendaItemsColumns holds the columns for the "agenda_items" table.
	AgendaItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "session_confirmed", Type: field.TypeBool, Default: false},
		{Name: "session_id", Type: field.TypeInt64, Unique: true},
		{Name: "space_id", Type: field.TypeInt64},
	}
	// AgendaItemsTable holds the schema information for the "agenda_items" table.
	AgendaItemsTable = &schema.Table{
		Name:       "agenda_items",
		Columns:    AgendaItemsColumns,
		PrimaryKey: []*schema.Column{AgendaItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agenda_items_sessions_agenda_item",
				Columns:    []*schema.Column{AgendaItemsColumns[6]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "agenda_items_spaces_agenda_items",
				Columns:    []*schema.Column{AgendaItemsColumns[7]},
				RefColumns: []*schema.Column{SpacesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agendaitem_start_time_end_time",
				Unique:  false,
				Columns: []*schema.Column{AgendaItemsColumns[3], AgendaItemsColumns[4]},
			},
		},
	}
	// DomainEnrollmentConfigsColumns holds the columns for the "domain_enrollment_configs" table.
	DomainEnrollmentConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "domain", Type: field.TypeString, Size: 255},
		{Name: "allowed_slots_per_user", Type: field.TypeInt, Default: 0},
		{Name: "config_id", Type: field.TypeInt64},
	}
	// DomainEnrollmentConfigsTable holds the schema information for the "domain_enrollment_configs" table.
	DomainEnrollmentConfigsTable = &schema.Table{
		Name:       "domain_enrollment_configs",
		Columns:    DomainEnrollmentConfigsColumns,
		PrimaryKey: []*schema.Column{DomainEnrollmentConfigsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "domain_enrollment_configs_enrollment_configs_domain_configs",
				Columns:    []*schema.Column{DomainEnrollmentConfigsColumns[5]},
				RefColumns: []*schema.Column{EnrollmentConfigsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "domainenrollmentconfig_domain_config_id",
				Unique:  true,
				Columns: []*schema.Column{DomainEnrollmentConfigsColumns[3], DomainEnrollmentConfigsColumns[5]},
			},
		},
	}
	// EnrollmentConfigsColumns holds the columns for the "enrollment_configs" table.
	EnrollmentConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "percentage_slots", Type: field.TypeInt, Default: 100},
		{Name: "limit_to_end_time", Type: field.TypeBool, Default: false},
		{Name: "restrict_to_configured_users", Type: field.TypeBool, Default: false},
		{Name: "max_waitlist_sessions", Type: field.TypeInt, Default: 0},
		{Name: "banner_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "api_provider", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "event_id", Type: field.TypeInt64},
	}
	// EnrollmentConfigsTable holds the schema information for the "enrollment_configs" table.
	EnrollmentConfigsTable = &schema.Table{
		Name:       "enrollment_configs",
		Columns:    EnrollmentConfigsColumns,
		PrimaryKey: []*schema.Column{EnrollmentConfigsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "enrollment_configs_events_enrollment_configs",
				Columns:    []*schema.Column{EnrollmentConfigsColumns[12]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "enrollmentconfig_start_time_end_time",
				Unique:  false,
				Columns: []*schema.Column{EnrollmentConfigsColumns[4], EnrollmentConfigsColumns[5]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Size: 255},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "proposal_start_time", Type: field.TypeTime, Nullable: true},
		{Name: "proposal_end_time", Type: field.TypeTime, Nullable: true},
		{Name: "publication_time", Type: field.TypeTime, Nullable: true},
		{Name: "sphere_id", Type: field.TypeInt64},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_spheres_events",
				Columns:    []*schema.Column{EventsColumns[10]},
				RefColumns: []*schema.Column{SpheresColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_slug_sphere_id",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[4], EventsColumns[10]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"ENROLLMENT_CONFIRMED", "ENROLLMENT_WAITLISTED", "ENROLLMENT_PROMOTED", "ENROLLMENT_CANCELLED"}},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2048},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "recipient_id", Type: field.TypeInt64},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_notifications",
				Columns:    []*schema.Column{NotificationsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_read_recipient_id",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[7], NotificationsColumns[9]},
			},
			{
				Name:    "notification_created_at_recipient_id",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[9]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Size: 255},
		{Name: "participants_limit", Type: field.TypeInt, Default: 0},
		{Name: "min_age", Type: field.TypeInt, Default: 0},
		{Name: "requirements", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "presenter_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "event_id", Type: field.TypeInt64},
		{Name: "host_id", Type: field.TypeInt64, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_events_sessions",
				Columns:    []*schema.Column{SessionsColumns[9]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "sessions_users_host",
				Columns:    []*schema.Column{SessionsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_slug_event_id",
				Unique:  true,
				Columns: []*schema.Column{SessionsColumns[4], SessionsColumns[9]},
			},
		},
	}
	// SessionParticipationsColumns holds the columns for the "session_participations" table.
	SessionParticipationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeString, Size: 32},
		{Name: "session_id", Type: field.TypeInt64},
		{Name: "enrolled_by_id", Type: field.TypeInt64},
		{Name: "user_id", Type: field.TypeInt64},
	}
	// SessionParticipationsTable holds the schema information for the "session_participations" table.
	SessionParticipationsTable = &schema.Table{
		Name:       "session_participations",
		Columns:    SessionParticipationsColumns,
		PrimaryKey: []*schema.Column{SessionParticipationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_participations_sessions_participations",
				Columns:    []*schema.Column{SessionParticipationsColumns[4]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "session_participations_users_enrolled_by",
				Columns:    []*schema.Column{SessionParticipationsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "session_participations_users_participations",
				Columns:    []*schema.Column{SessionParticipationsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessionparticipation_session_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{SessionParticipationsColumns[4], SessionParticipationsColumns[6]},
			},
			{
				Name:    "sessionparticipation_status_created_at_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionParticipationsColumns[3], SessionParticipationsColumns[1], SessionParticipationsColumns[4]},
			},
		},
	}
	// SpacesColumns holds the columns for the "spaces" table.
	SpacesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Size: 255},
		{Name: "event_id", Type: field.TypeInt64},
	}
	// SpacesTable holds the schema information for the "spaces" table.
	SpacesTable = &schema.Table{
		Name:       "spaces",
		Columns:    SpacesColumns,
		PrimaryKey: []*schema.Column{SpacesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "spaces_events_spaces",
				Columns:    []*schema.Column{SpacesColumns[5]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "space_slug_event_id",
				Unique:  true,
				Columns: []*schema.Column{SpacesColumns[4], SpacesColumns[5]},
			},
		},
	}
	// SpheresColumns holds the columns for the "spheres" table.
	SpheresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "host", Type: field.TypeString, Size: 255},
		{Name: "is_open", Type: field.TypeBool, Default: false},
	}
	// SpheresTable holds the schema information for the "spheres" table.
	SpheresTable = &schema.Table{
		Name:       "spheres",
		Columns:    SpheresColumns,
		PrimaryKey: []*schema.Column{SpheresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sphere_host",
				Unique:  true,
				Columns: []*schema.Column{SpheresColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "birth_date", Type: field.TypeTime, Nullable: true},
		{Name: "manager_id", Type: field.TypeInt64, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_users_connected_users",
				Columns:    []*schema.Column{UsersColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "user_slug",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[4]},
			},
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[5]},
			},
		},
	}
	// UserEnrollmentConfigsColumns holds the columns for the "user_enrollment_configs" table.
	UserEnrollmentConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_email", Type: field.TypeString, Size: 255},
		{Name: "allowed_slots", Type: field.TypeInt, Default: 0},
		{Name: "fetched_from_api", Type: field.TypeBool, Default: false},
		{Name: "last_check", Type: field.TypeTime, Nullable: true},
		{Name: "config_id", Type: field.TypeInt64},
	}
	// UserEnrollmentConfigsTable holds the schema information for the "user_enrollment_configs" table.
	UserEnrollmentConfigsTable = &schema.Table{
		Name:       "user_enrollment_configs",
		Columns:    UserEnrollmentConfigsColumns,
		PrimaryKey: []*schema.Column{UserEnrollmentConfigsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_enrollment_configs_enrollment_configs_user_configs",
				Columns:    []*schema.Column{UserEnrollmentConfigsColumns[7]},
				RefColumns: []*schema.Column{EnrollmentConfigsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "userenrollmentconfig_user_email_config_id",
				Unique:  true,
				Columns: []*schema.Column{UserEnrollmentConfigsColumns[3], UserEnrollmentConfigsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgendaItemsTable,
		DomainEnrollmentConfigsTable,
		EnrollmentConfigsTable,
		EventsTable,
		NotificationsTable,
		SessionsTable,
		SessionParticipationsTable,
		SpacesTable,
		SpheresTable,
		UsersTable,
		UserEnrollmentConfigsTable,
	}
)

func init() {
	AgendaItemsTable.ForeignKeys[0].RefTable = SessionsTable
	AgendaItemsTable.ForeignKeys[1].RefTable = SpacesTable
	DomainEnrollmentConfigsTable.ForeignKeys[0].RefTable = EnrollmentConfigsTable
	EnrollmentConfigsTable.ForeignKeys[0].RefTable = EventsTable
	EventsTable.ForeignKeys[0].RefTable = SpheresTable
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
	SessionsTable.ForeignKeys[0].RefTable = EventsTable
	SessionsTable.ForeignKeys[1].RefTable = UsersTable
	SessionParticipationsTable.ForeignKeys[0].RefTable = SessionsTable
	SessionParticipationsTable.ForeignKeys[1].RefTable = UsersTable
	SessionParticipationsTable.ForeignKeys[2].RefTable = UsersTable
	SpacesTable.ForeignKeys[0].RefTable = EventsTable
	UsersTable.ForeignKeys[0].RefTable = UsersTable
	UserEnrollmentConfigsTable.ForeignKeys[0].RefTable = EnrollmentConfigsTable
}
