// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"ludamus.io/enrolld/ent/event"
	"ludamus.io/enrolld/ent/space"
)

// Space is the model entity for the Space schema.
type Space struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID int64 `json:"event_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SpaceQuery when eager-loading is set.
	Edges        SpaceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SpaceEdges holds the relations/edges for other nodes in the graph.
type SpaceEdges struct {
	// Event holds the value of the event edge.
	Event *Event `json:"event,omitempty"`
	// AgendaItems holds the value of the agenda_items edge.
	AgendaItems []*AgendaItem `json:"agenda_items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// EventOrErr returns the Event value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SpaceEdges) EventOrErr() (*Event, error) {
	if e.Event != nil {
		return e.Event, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: event.Label}
	}
	return nil, &NotLoadedError{edge: "event"}
}

// AgendaItemsOrErr returns the AgendaItems value or an error if the edge
// was not loaded in eager-loading.
func (e SpaceEdges) AgendaItemsOrErr() ([]*AgendaItem, error) {
	if e.loadedTypes[1] {
		return e.AgendaItems, nil
	}
	return nil, &NotLoadedError{edge: "agenda_items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Space) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case space.FieldID, space.FieldEventID:
			values[i] = new(sql.NullInt64)
		case space.FieldName, space.FieldSlug:
			values[i] = new(sql.NullString)
		case space.FieldCreatedAt, space.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Space fields.
func (_m *Space) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case space.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case space.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case space.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case space.FieldEventID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.Int64
			}
		case space.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case space.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Space.
// This includes values selected through modifiers, order, etc.
func (_m *Space) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvent queries the "event" edge of the Space entity.
func (_m *Space) QueryEvent() *EventQuery {
	return NewSpaceClient(_m.config).QueryEvent(_m)
}

// QueryAgendaItems queries the "agenda_items" edge of the Space entity.
func (_m *Space) QueryAgendaItems() *AgendaItemQuery {
	return NewSpaceClient(_m.config).QueryAgendaItems(_m)
}

// Update returns a builder for updating this Space.
// Note that you need to call Space.Unwrap() before calling this method if this Space
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Space) Update() *SpaceUpdateOne {
	return NewSpaceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Space entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Space) Unwrap() *Space {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Space is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Space) String() string {
	var builder strings.Builder
	builder.WriteString("Space(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteByte(')')
	return builder.String()
}

// Spaces is a parsable slice of Space.
type Spaces []*Space
