// Code generated by ent, DO NOT EDIT.

package enrollmentconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the enrollmentconfig type in the database.
	Label = "enrollment_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldPercentageSlots holds the string denoting the percentage_slots field in the database.
	FieldPercentageSlots = "percentage_slots"
	// FieldLimitToEndTime holds the string denoting the limit_to_end_time field in the database.
	FieldLimitToEndTime = "limit_to_end_time"
	// FieldRestrictToConfiguredUsers holds the string denoting the restrict_to_configured_users field in the database.
	FieldRestrictToConfiguredUsers = "restrict_to_configured_users"
	// FieldMaxWaitlistSessions holds the string denoting the max_waitlist_sessions field in the database.
	FieldMaxWaitlistSessions = "max_waitlist_sessions"
	// FieldBannerText holds the string denoting the banner_text field in the database.
	FieldBannerText = "banner_text"
	// FieldAPIProvider holds the string denoting the api_provider field in the database.
	FieldAPIProvider = "api_provider"
	// EdgeEvent holds the string denoting the event edge name in mutations.
	EdgeEvent = "event"
	// EdgeUserConfigs holds the string denoting the user_configs edge name in mutations.
	EdgeUserConfigs = "user_configs"
	// EdgeDomainConfigs holds the string denoting the domain_configs edge name in mutations.
	EdgeDomainConfigs = "domain_configs"
	// Table holds the table name of the enrollmentconfig in the database.
	Table = "enrollment_configs"
	// EventTable is the table that holds the event relation/edge.
	EventTable = "enrollment_configs"
	// EventInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventInverseTable = "events"
	// EventColumn is the table column denoting the event relation/edge.
	EventColumn = "event_id"
	// UserConfigsTable is the table that holds the user_configs relation/edge.
	UserConfigsTable = "user_enrollment_configs"
	// UserConfigsInverseTable is the table name for the UserEnrollmentConfig entity.
	// It exists in this package in order to avoid circular dependency with the "userenrollmentconfig" package.
	UserConfigsInverseTable = "user_enrollment_configs"
	// UserConfigsColumn is the table column denoting the user_configs relation/edge.
	UserConfigsColumn = "config_id"
	// DomainConfigsTable is the table that holds the domain_configs relation/edge.
	DomainConfigsTable = "domain_enrollment_configs"
	// DomainConfigsInverseTable is the table name for the DomainEnrollmentConfig entity.
	// It exists in this package in order to avoid circular dependency with the "domainenrollmentconfig" package.
	DomainConfigsInverseTable = "domain_enrollment_configs"
	// DomainConfigsColumn is the table column denoting the domain_configs relation/edge.
	DomainConfigsColumn = "config_id"
)

// Columns holds all SQL columns for enrollmentconfig fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldEventID,
	FieldName,
	FieldStartTime,
	FieldEndTime,
	FieldPercentageSlots,
	FieldLimitToEndTime,
	FieldRestrictToConfiguredUsers,
	FieldMaxWaitlistSessions,
	FieldBannerText,
	FieldAPIProvider,
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
	// DefaultPercentageSlots holds the default value on creation for the "percentage_slots" field.
	DefaultPercentageSlots int
	// PercentageSlotsValidator is a validator for the "percentage_slots" field. It is called by the builders before save.
	PercentageSlotsValidator func(int) error
	// DefaultLimitToEndTime holds the default value on creation for the "limit_to_end_time" field.
	DefaultLimitToEndTime bool
	// DefaultRestrictToConfiguredUsers holds the default value on creation for the "restrict_to_configured_users" field.
	DefaultRestrictToConfiguredUsers bool
	// DefaultMaxWaitlistSessions holds the default value on creation for the "max_waitlist_sessions" field.
	DefaultMaxWaitlistSessions int
	// MaxWaitlistSessionsValidator is a validator for the "max_waitlist_sessions" field. It is called by the builders before save.
	MaxWaitlistSessionsValidator func(int) error
	// APIProviderValidator is a validator for the "api_provider" field. It is called by the builders before save.
	APIProviderValidator func(string) error
)

// OrderOption defines the ordering options for the EnrollmentConfig queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByPercentageSlots orders the results by the percentage_slots field.
func ByPercentageSlots(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPercentageSlots, opts...).ToFunc()
}

// ByLimitToEndTime orders the results by the limit_to_end_time field.
func ByLimitToEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLimitToEndTime, opts...).ToFunc()
}

// ByRestrictToConfiguredUsers orders the results by the restrict_to_configured_users field.
func ByRestrictToConfiguredUsers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRestrictToConfiguredUsers, opts...).ToFunc()
}

// ByMaxWaitlistSessions orders the results by the max_waitlist_sessions field.
func ByMaxWaitlistSessions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxWaitlistSessions, opts...).ToFunc()
}

// ByBannerText orders the results by the banner_text field.
func ByBannerText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBannerText, opts...).ToFunc()
}

// ByAPIProvider orders the results by the api_provider field.
func ByAPIProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIProvider, opts...).ToFunc()
}

// ByEventField orders the results by event field.
func ByEventField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventStep(), sql.OrderByField(field, opts...))
	}
}

// ByUserConfigsCount orders the results by user_configs count.
func ByUserConfigsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUserConfigsStep(), opts...)
	}
}

// ByUserConfigs orders the results by user_configs terms.
func ByUserConfigs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserConfigsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDomainConfigsCount orders the results by domain_configs count.
func ByDomainConfigsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDomainConfigsStep(), opts...)
	}
}

// ByDomainConfigs orders the results by domain_configs terms.
func ByDomainConfigs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDomainConfigsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEventStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EventTable, EventColumn),
	)
}
func newUserConfigsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserConfigsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UserConfigsTable, UserConfigsColumn),
	)
}
func newDomainConfigsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DomainConfigsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DomainConfigsTable, DomainConfigsColumn),
	)
}
