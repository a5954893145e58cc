// Code generated by ent, DO NOT EDIT.

package userenrollmentconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the userenrollmentconfig type in the database.
	Label = "user_enrollment_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldConfigID holds the string denoting the config_id field in the database.
	FieldConfigID = "config_id"
	// FieldUserEmail holds the string denoting the user_email field in the database.
	FieldUserEmail = "user_email"
	// FieldAllowedSlots holds the string denoting the allowed_slots field in the database.
	FieldAllowedSlots = "allowed_slots"
	// FieldFetchedFromAPI holds the string denoting the fetched_from_api field in the database.
	FieldFetchedFromAPI = "fetched_from_api"
	// FieldLastCheck holds the string denoting the last_check field in the database.
	FieldLastCheck = "last_check"
	// EdgeConfig holds the string denoting the config edge name in mutations.
	EdgeConfig = "config"
	// Table holds the table name of the userenrollmentconfig in the database.
	Table = "user_enrollment_configs"
	// ConfigTable is the table that holds the config relation/edge.
	ConfigTable = "user_enrollment_configs"
	// ConfigInverseTable is the table name for the EnrollmentConfig entity.
	// It exists in this package in order to avoid circular dependency with the "enrollmentconfig" package.
	ConfigInverseTable = "enrollment_configs"
	// ConfigColumn is the table column denoting the config relation/edge.
	ConfigColumn = "config_id"
)

// Columns holds all SQL columns for userenrollmentconfig fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldConfigID,
	FieldUserEmail,
	FieldAllowedSlots,
	FieldFetchedFromAPI,
	FieldLastCheck,
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
	// UserEmailValidator is a validator for the "user_email" field. It is called by the builders before save.
	UserEmailValidator func(string) error
	// DefaultAllowedSlots holds the default value on creation for the "allowed_slots" field.
	DefaultAllowedSlots int
	// AllowedSlotsValidator is a validator for the "allowed_slots" field. It is called by the builders before save.
	AllowedSlotsValidator func(int) error
	// DefaultFetchedFromAPI holds the default value on creation for the "fetched_from_api" field.
	DefaultFetchedFromAPI bool
)

// OrderOption defines the ordering options for the UserEnrollmentConfig queries.
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

// ByConfigID orders the results by the config_id field.
func ByConfigID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfigID, opts...).ToFunc()
}

// ByUserEmail orders the results by the user_email field.
func ByUserEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserEmail, opts...).ToFunc()
}

// ByAllowedSlots orders the results by the allowed_slots field.
func ByAllowedSlots(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllowedSlots, opts...).ToFunc()
}

// ByFetchedFromAPI orders the results by the fetched_from_api field.
func ByFetchedFromAPI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFetchedFromAPI, opts...).ToFunc()
}

// ByLastCheck orders the results by the last_check field.
func ByLastCheck(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCheck, opts...).ToFunc()
}

// ByConfigField orders the results by config field.
func ByConfigField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConfigStep(), sql.OrderByField(field, opts...))
	}
}
func newConfigStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConfigInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ConfigTable, ConfigColumn),
	)
}
