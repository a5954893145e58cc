// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"ludamus.io/enrolld/ent/sphere"
)

// Sphere is the model entity for the Sphere schema.
type Sphere struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Hostname this sphere is served under
	Host string `json:"host,omitempty"`
	// Open spheres accept self-service signups
	IsOpen bool `json:"is_open,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SphereQuery when eager-loading is set.
	Edges        SphereEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SphereEdges holds the relations/edges for other nodes in the graph.
type SphereEdges struct {
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e SphereEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[0] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Sphere) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sphere.FieldIsOpen:
			values[i] = new(sql.NullBool)
		case sphere.FieldID:
			values[i] = new(sql.NullInt64)
		case sphere.FieldName, sphere.FieldHost:
			values[i] = new(sql.NullString)
		case sphere.FieldCreatedAt, sphere.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Sphere fields.
func (_m *Sphere) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sphere.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case sphere.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sphere.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case sphere.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case sphere.FieldHost:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field host", values[i])
			} else if value.Valid {
				_m.Host = value.String
			}
		case sphere.FieldIsOpen:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_open", values[i])
			} else if value.Valid {
				_m.IsOpen = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Sphere.
// This includes values selected through modifiers, order, etc.
func (_m *Sphere) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvents queries the "events" edge of the Sphere entity.
func (_m *Sphere) QueryEvents() *EventQuery {
	return NewSphereClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Sphere.
// Note that you need to call Sphere.Unwrap() before calling this method if this Sphere
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Sphere) Update() *SphereUpdateOne {
	return NewSphereClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Sphere entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Sphere) Unwrap() *Sphere {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Sphere is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Sphere) String() string {
	var builder strings.Builder
	builder.WriteString("Sphere(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("host=")
	builder.WriteString(_m.Host)
	builder.WriteString(", ")
	builder.WriteString("is_open=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsOpen))
	builder.WriteByte(')')
	return builder.String()
}

// Spheres is a parsable slice of Sphere.
type Spheres []*Sphere
