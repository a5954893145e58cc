// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"ludamus.io/enrolld/ent/domainenrollmentconfig"
	"ludamus.io/enrolld/ent/enrollmentconfig"
)

// DomainEnrollmentConfig is the model entity for the DomainEnrollmentConfig schema.
type DomainEnrollmentConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ConfigID holds the value of the "config_id" field.
	ConfigID int64 `json:"config_id,omitempty"`
	// Email domain, stored lowercase
	Domain string `json:"domain,omitempty"`
	// AllowedSlotsPerUser holds the value of the "allowed_slots_per_user" field.
	AllowedSlotsPerUser int `json:"allowed_slots_per_user,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DomainEnrollmentConfigQuery when eager-loading is set.
	Edges        DomainEnrollmentConfigEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DomainEnrollmentConfigEdges holds the relations/edges for other nodes in the graph.
type DomainEnrollmentConfigEdges struct {
	// Config holds the value of the config edge.
	Config *EnrollmentConfig `json:"config,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ConfigOrErr returns the Config value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DomainEnrollmentConfigEdges) ConfigOrErr() (*EnrollmentConfig, error) {
	if e.Config != nil {
		return e.Config, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: enrollmentconfig.Label}
	}
	return nil, &NotLoadedError{edge: "config"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DomainEnrollmentConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case domainenrollmentconfig.FieldID, domainenrollmentconfig.FieldConfigID, domainenrollmentconfig.FieldAllowedSlotsPerUser:
			values[i] = new(sql.NullInt64)
		case domainenrollmentconfig.FieldDomain:
			values[i] = new(sql.NullString)
		case domainenrollmentconfig.FieldCreatedAt, domainenrollmentconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DomainEnrollmentConfig fields.
func (_m *DomainEnrollmentConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case domainenrollmentconfig.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case domainenrollmentconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case domainenrollmentconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case domainenrollmentconfig.FieldConfigID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field config_id", values[i])
			} else if value.Valid {
				_m.ConfigID = value.Int64
			}
		case domainenrollmentconfig.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case domainenrollmentconfig.FieldAllowedSlotsPerUser:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field allowed_slots_per_user", values[i])
			} else if value.Valid {
				_m.AllowedSlotsPerUser = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DomainEnrollmentConfig.
// This includes values selected through modifiers, order, etc.
func (_m *DomainEnrollmentConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConfig queries the "config" edge of the DomainEnrollmentConfig entity.
func (_m *DomainEnrollmentConfig) QueryConfig() *EnrollmentConfigQuery {
	return NewDomainEnrollmentConfigClient(_m.config).QueryConfig(_m)
}

// Update returns a builder for updating this DomainEnrollmentConfig.
// Note that you need to call DomainEnrollmentConfig.Unwrap() before calling this method if this DomainEnrollmentConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DomainEnrollmentConfig) Update() *DomainEnrollmentConfigUpdateOne {
	return NewDomainEnrollmentConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DomainEnrollmentConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DomainEnrollmentConfig) Unwrap() *DomainEnrollmentConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DomainEnrollmentConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DomainEnrollmentConfig) String() string {
	var builder strings.Builder
	builder.WriteString("DomainEnrollmentConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("config_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfigID))
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("allowed_slots_per_user=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowedSlotsPerUser))
	builder.WriteByte(')')
	return builder.String()
}

// DomainEnrollmentConfigs is a parsable slice of DomainEnrollmentConfig.
type DomainEnrollmentConfigs []*DomainEnrollmentConfig
