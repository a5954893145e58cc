// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSphereID holds the string denoting the sphere_id field in the database.
	FieldSphereID = "sphere_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldProposalStartTime holds the string denoting the proposal_start_time field in the database.
	FieldProposalStartTime = "proposal_start_time"
	// FieldProposalEndTime holds the string denoting the proposal_end_time field in the database.
	FieldProposalEndTime = "proposal_end_time"
	// FieldPublicationTime holds the string denoting the publication_time field in the database.
	FieldPublicationTime = "publication_time"
	// EdgeSphere holds the string denoting the sphere edge name in mutations.
	EdgeSphere = "sphere"
	// EdgeSpaces holds the string denoting the spaces edge name in mutations.
	EdgeSpaces = "spaces"
	// EdgeSessions holds the string denoting the sessions edge name in mutations.
	EdgeSessions = "sessions"
	// EdgeEnrollmentConfigs holds the string denoting the enrollment_configs edge name in mutations.
	EdgeEnrollmentConfigs = "enrollment_configs"
	// Table holds the table name of the event in the database.
	Table = "events"
	// SphereTable is the table that holds the sphere relation/edge.
	SphereTable = "events"
	// SphereInverseTable is the table name for the Sphere entity.
	// It exists in this package in order to avoid circular dependency with the "sphere" package.
	SphereInverseTable = "spheres"
	// SphereColumn is the table column denoting the sphere relation/edge.
	SphereColumn = "sphere_id"
	// SpacesTable is the table that holds the spaces relation/edge.
	SpacesTable = "spaces"
	// SpacesInverseTable is the table name for the Space entity.
	// It exists in this package in order to avoid circular dependency with the "space" package.
	SpacesInverseTable = "spaces"
	// SpacesColumn is the table column denoting the spaces relation/edge.
	SpacesColumn = "event_id"
	// SessionsTable is the table that holds the sessions relation/edge.
	SessionsTable = "sessions"
	// SessionsInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionsInverseTable = "sessions"
	// SessionsColumn is the table column denoting the sessions relation/edge.
	SessionsColumn = "event_id"
	// EnrollmentConfigsTable is the table that holds the enrollment_configs relation/edge.
	EnrollmentConfigsTable = "enrollment_configs"
	// EnrollmentConfigsInverseTable is the table name for the EnrollmentConfig entity.
	// It exists in this package in order to avoid circular dependency with the "enrollmentconfig" package.
	EnrollmentConfigsInverseTable = "enrollment_configs"
	// EnrollmentConfigsColumn is the table column denoting the enrollment_configs relation/edge.
	EnrollmentConfigsColumn = "event_id"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSphereID,
	FieldName,
	FieldSlug,
	FieldStartTime,
	FieldEndTime,
	FieldProposalStartTime,
	FieldProposalEndTime,
	FieldPublicationTime,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
)

// OrderOption defines the ordering options for the Event queries.
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

// BySphereID orders the results by the sphere_id field.
func BySphereID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSphereID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByProposalStartTime orders the results by the proposal_start_time field.
func ByProposalStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposalStartTime, opts...).ToFunc()
}

// ByProposalEndTime orders the results by the proposal_end_time field.
func ByProposalEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposalEndTime, opts...).ToFunc()
}

// ByPublicationTime orders the results by the publication_time field.
func ByPublicationTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublicationTime, opts...).ToFunc()
}

// BySphereField orders the results by sphere field.
func BySphereField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSphereStep(), sql.OrderByField(field, opts...))
	}
}

// BySpacesCount orders the results by spaces count.
func BySpacesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSpacesStep(), opts...)
	}
}

// BySpaces orders the results by spaces terms.
func BySpaces(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSpacesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySessionsCount orders the results by sessions count.
func BySessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSessionsStep(), opts...)
	}
}

// BySessions orders the results by sessions terms.
func BySessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEnrollmentConfigsCount orders the results by enrollment_configs count.
func ByEnrollmentConfigsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEnrollmentConfigsStep(), opts...)
	}
}

// ByEnrollmentConfigs orders the results by enrollment_configs terms.
func ByEnrollmentConfigs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEnrollmentConfigsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSphereStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SphereInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SphereTable, SphereColumn),
	)
}
func newSpacesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SpacesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SpacesTable, SpacesColumn),
	)
}
func newSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
	)
}
func newEnrollmentConfigsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EnrollmentConfigsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EnrollmentConfigsTable, EnrollmentConfigsColumn),
	)
}
