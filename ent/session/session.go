// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldHostID holds the string denoting the host_id field in the database.
	FieldHostID = "host_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldParticipantsLimit holds the string denoting the participants_limit field in the database.
	FieldParticipantsLimit = "participants_limit"
	// FieldMinAge holds the string denoting the min_age field in the database.
	FieldMinAge = "min_age"
	// FieldRequirements holds the string denoting the requirements field in the database.
	FieldRequirements = "requirements"
	// FieldPresenterName holds the string denoting the presenter_name field in the database.
	FieldPresenterName = "presenter_name"
	// EdgeEvent holds the string denoting the event edge name in mutations.
	EdgeEvent = "event"
	// EdgeHost holds the string denoting the host edge name in mutations.
	EdgeHost = "host"
	// EdgeAgendaItem holds the string denoting the agenda_item edge name in mutations.
	EdgeAgendaItem = "agenda_item"
	// EdgeParticipations holds the string denoting the participations edge name in mutations.
	EdgeParticipations = "participations"
	// Table holds the table name of the session in the database.
	Table = "sessions"
	// EventTable is the table that holds the event relation/edge.
	EventTable = "sessions"
	// EventInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventInverseTable = "events"
	// EventColumn is the table column denoting the event relation/edge.
	EventColumn = "event_id"
	// HostTable is the table that holds the host relation/edge.
	HostTable = "sessions"
	// HostInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	HostInverseTable = "users"
	// HostColumn is the table column denoting the host relation/edge.
	HostColumn = "host_id"
	// AgendaItemTable is the table that holds the agenda_item relation/edge.
	AgendaItemTable = "agenda_items"
	// AgendaItemInverseTable is the table name for the AgendaItem entity.
	// It exists in this package in order to avoid circular dependency with the "agendaitem" package.
	AgendaItemInverseTable = "agenda_items"
	// AgendaItemColumn is the table column denoting the agenda_item relation/edge.
	AgendaItemColumn = "session_id"
	// ParticipationsTable is the table that holds the participations relation/edge.
	ParticipationsTable = "session_participations"
	// ParticipationsInverseTable is the table name for the SessionParticipation entity.
	// It exists in this package in order to avoid circular dependency with the "sessionparticipation" package.
	ParticipationsInverseTable = "session_participations"
	// ParticipationsColumn is the table column denoting the participations relation/edge.
	ParticipationsColumn = "session_id"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldEventID,
	FieldHostID,
	FieldTitle,
	FieldSlug,
	FieldParticipantsLimit,
	FieldMinAge,
	FieldRequirements,
	FieldPresenterName,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// DefaultParticipantsLimit holds the default value on creation for the "participants_limit" field.
	DefaultParticipantsLimit int
	// ParticipantsLimitValidator is a validator for the "participants_limit" field. It is called by the builders before save.
	ParticipantsLimitValidator func(int) error
	// DefaultMinAge holds the default value on creation for the "min_age" field.
	DefaultMinAge int
	// MinAgeValidator is a validator for the "min_age" field. It is called by the builders before save.
	MinAgeValidator func(int) error
	// PresenterNameValidator is a validator for the "presenter_name" field. It is called by the builders before save.
	PresenterNameValidator func(string) error
)

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByHostID orders the results by the host_id field.
func ByHostID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHostID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByParticipantsLimit orders the results by the participants_limit field.
func ByParticipantsLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantsLimit, opts...).ToFunc()
}

// ByMinAge orders the results by the min_age field.
func ByMinAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinAge, opts...).ToFunc()
}

// ByRequirements orders the results by the requirements field.
func ByRequirements(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequirements, opts...).ToFunc()
}

// ByPresenterName orders the results by the presenter_name field.
func ByPresenterName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPresenterName, opts...).ToFunc()
}

// ByEventField orders the results by event field.
func ByEventField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventStep(), sql.OrderByField(field, opts...))
	}
}

// ByHostField orders the results by host field.
func ByHostField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHostStep(), sql.OrderByField(field, opts...))
	}
}

// ByAgendaItemField orders the results by agenda_item field.
func ByAgendaItemField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgendaItemStep(), sql.OrderByField(field, opts...))
	}
}

// ByParticipationsCount orders the results by participations count.
func ByParticipationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newParticipationsStep(), opts...)
	}
}

// ByParticipations orders the results by participations terms.
func ByParticipations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParticipationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEventStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EventTable, EventColumn),
	)
}
func newHostStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HostInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, HostTable, HostColumn),
	)
}
func newAgendaItemStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgendaItemInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, AgendaItemTable, AgendaItemColumn),
	)
}
func newParticipationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ParticipationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ParticipationsTable, ParticipationsColumn),
	)
}
