// Code generated by ent, DO NOT EDIT.

package domainenrollmentconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the domainenrollmentconfig type in the database.
	Label = "domain_enrollment_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldConfigID holds the string denoting the config_id field in the database.
	FieldConfigID = "config_id"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldAllowedSlotsPerUser holds the string denoting the allowed_slots_per_user field in the database.
	FieldAllowedSlotsPerUser = "allowed_slots_per_user"
	// EdgeConfig holds the string denoting the config edge name in mutations.
	EdgeConfig = "config"
	// Table holds the table name of the domainenrollmentconfig in the database.
	Table = "domain_enrollment_configs"
	// ConfigTable is the table that holds the config relation/edge.
	ConfigTable = "domain_enrollment_configs"
	// ConfigInverseTable is the table name for the EnrollmentConfig entity.
	// It exists in this package in order to avoid circular dependency with the "enrollmentconfig" package.
	ConfigInverseTable = "enrollment_configs"
	// ConfigColumn is the table column denoting the config relation/edge.
	ConfigColumn = "config_id"
)

// Columns holds all SQL columns for domainenrollmentconfig fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldConfigID,
	FieldDomain,
	FieldAllowedSlotsPerUser,
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
	// DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	DomainValidator func(string) error
	// DefaultAllowedSlotsPerUser holds the default value on creation for the "allowed_slots_per_user" field.
	DefaultAllowedSlotsPerUser int
	// AllowedSlotsPerUserValidator is a validator for the "allowed_slots_per_user" field. It is called by the builders before save.
	AllowedSlotsPerUserValidator func(int) error
)

// OrderOption defines the ordering options for the DomainEnrollmentConfig queries.
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

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByAllowedSlotsPerUser orders the results by the allowed_slots_per_user field.
func ByAllowedSlotsPerUser(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllowedSlotsPerUser, opts...).ToFunc()
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
