// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"ludamus.io/enrolld/ent/enrollmentconfig"
	"ludamus.io/enrolld/ent/userenrollmentconfig"
)

// UserEnrollmentConfig is the model entity for the UserEnrollmentConfig schema.
type UserEnrollmentConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ConfigID holds the value of the "config_id" field.
	ConfigID int64 `json:"config_id,omitempty"`
	// UserEmail holds the value of the "user_email" field.
	UserEmail string `json:"user_email,omitempty"`
	// AllowedSlots holds the value of the "allowed_slots" field.
	AllowedSlots int `json:"allowed_slots,omitempty"`
	// FetchedFromAPI holds the value of the "fetched_from_api" field.
	FetchedFromAPI bool `json:"fetched_from_api,omitempty"`
	// Last gateway lookup; gates the zero-slot recheck cooldown
	LastCheck *time.Time `json:"last_check,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserEnrollmentConfigQuery when eager-loading is set.
	Edges        UserEnrollmentConfigEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserEnrollmentConfigEdges holds the relations/edges for other nodes in the graph.
type UserEnrollmentConfigEdges struct {
	// Config holds the value of the config edge.
	Config *EnrollmentConfig `json:"config,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ConfigOrErr returns the Config value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserEnrollmentConfigEdges) ConfigOrErr() (*EnrollmentConfig, error) {
	if e.Config != nil {
		return e.Config, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: enrollmentconfig.Label}
	}
	return nil, &NotLoadedError{edge: "config"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserEnrollmentConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userenrollmentconfig.FieldFetchedFromAPI:
			values[i] = new(sql.NullBool)
		case userenrollmentconfig.FieldID, userenrollmentconfig.FieldConfigID, userenrollmentconfig.FieldAllowedSlots:
			values[i] = new(sql.NullInt64)
		case userenrollmentconfig.FieldUserEmail:
			values[i] = new(sql.NullString)
		case userenrollmentconfig.FieldCreatedAt, userenrollmentconfig.FieldUpdatedAt, userenrollmentconfig.FieldLastCheck:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserEnrollmentConfig fields.
func (_m *UserEnrollmentConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userenrollmentconfig.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case userenrollmentconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case userenrollmentconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case userenrollmentconfig.FieldConfigID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field config_id", values[i])
			} else if value.Valid {
				_m.ConfigID = value.Int64
			}
		case userenrollmentconfig.FieldUserEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_email", values[i])
			} else if value.Valid {
				_m.UserEmail = value.String
			}
		case userenrollmentconfig.FieldAllowedSlots:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field allowed_slots", values[i])
			} else if value.Valid {
				_m.AllowedSlots = int(value.Int64)
			}
		case userenrollmentconfig.FieldFetchedFromAPI:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field fetched_from_api", values[i])
			} else if value.Valid {
				_m.FetchedFromAPI = value.Bool
			}
		case userenrollmentconfig.FieldLastCheck:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_check", values[i])
			} else if value.Valid {
				_m.LastCheck = new(time.Time)
				*_m.LastCheck = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserEnrollmentConfig.
// This includes values selected through modifiers, order, etc.
func (_m *UserEnrollmentConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConfig queries the "config" edge of the UserEnrollmentConfig entity.
func (_m *UserEnrollmentConfig) QueryConfig() *EnrollmentConfigQuery {
	return NewUserEnrollmentConfigClient(_m.config).QueryConfig(_m)
}

// Update returns a builder for updating this UserEnrollmentConfig.
// Note that you need to call UserEnrollmentConfig.Unwrap() before calling this method if this UserEnrollmentConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserEnrollmentConfig) Update() *UserEnrollmentConfigUpdateOne {
	return NewUserEnrollmentConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserEnrollmentConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserEnrollmentConfig) Unwrap() *UserEnrollmentConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserEnrollmentConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserEnrollmentConfig) String() string {
	var builder strings.Builder
	builder.WriteString("UserEnrollmentConfig(")
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
	builder.WriteString("user_email=")
	builder.WriteString(_m.UserEmail)
	builder.WriteString(", ")
	builder.WriteString("allowed_slots=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowedSlots))
	builder.WriteString(", ")
	builder.WriteString("fetched_from_api=")
	builder.WriteString(fmt.Sprintf("%v", _m.FetchedFromAPI))
	builder.WriteString(", ")
	if v := _m.LastCheck; v != nil {
		builder.WriteString("last_check=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// UserEnrollmentConfigs is a parsable slice of UserEnrollmentConfig.
type UserEnrollmentConfigs []*UserEnrollmentConfig
