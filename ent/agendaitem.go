// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"ludamus.io/enrolld/ent/agendaitem"
	"ludamus.io/enrolld/ent/session"
	"ludamus.io/enrolld/ent/space"
)

// AgendaItem is the model entity for the AgendaItem schema.
type AgendaItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SpaceID holds the value of the "space_id" field.
	SpaceID int64 `json:"space_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID int64 `json:"session_id,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime time.Time `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime time.Time `json:"end_time,omitempty"`
	// Whether the organizer has confirmed the slot assignment
	SessionConfirmed bool `json:"session_confirmed,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgendaItemQuery when eager-loading is set.
	Edges        AgendaItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgendaItemEdges holds the relations/edges for other nodes in the graph.
type AgendaItemEdges struct {
	// Space holds the value of the space edge.
	Space *Space `json:"space,omitempty"`
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SpaceOrErr returns the Space value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgendaItemEdges) SpaceOrErr() (*Space, error) {
	if e.Space != nil {
		return e.Space, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: space.Label}
	}
	return nil, &NotLoadedError{edge: "space"}
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgendaItemEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgendaItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agendaitem.FieldSessionConfirmed:
			values[i] = new(sql.NullBool)
		case agendaitem.FieldID, agendaitem.FieldSpaceID, agendaitem.FieldSessionID:
			values[i] = new(sql.NullInt64)
		case agendaitem.FieldCreatedAt, agendaitem.FieldUpdatedAt, agendaitem.FieldStartTime, agendaitem.FieldEndTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgendaItem fields.
func (_m *AgendaItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agendaitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case agendaitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agendaitem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case agendaitem.FieldSpaceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field space_id", values[i])
			} else if value.Valid {
				_m.SpaceID = value.Int64
			}
		case agendaitem.FieldSessionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.Int64
			}
		case agendaitem.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case agendaitem.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.Time
			}
		case agendaitem.FieldSessionConfirmed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field session_confirmed", values[i])
			} else if value.Valid {
				_m.SessionConfirmed = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgendaItem.
// This includes values selected through modifiers, order, etc.
func (_m *AgendaItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySpace queries the "space" edge of the AgendaItem entity.
func (_m *AgendaItem) QuerySpace() *SpaceQuery {
	return NewAgendaItemClient(_m.config).QuerySpace(_m)
}

// QuerySession queries the "session" edge of the AgendaItem entity.
func (_m *AgendaItem) QuerySession() *SessionQuery {
	return NewAgendaItemClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this AgendaItem.
// Note that you need to call AgendaItem.Unwrap() before calling this method if this AgendaItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgendaItem) Update() *AgendaItemUpdateOne {
	return NewAgendaItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgendaItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgendaItem) Unwrap() *AgendaItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgendaItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgendaItem) String() string {
	var builder strings.Builder
	builder.WriteString("AgendaItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("space_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpaceID))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_confirmed=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionConfirmed))
	builder.WriteByte(')')
	return builder.String()
}

// AgendaItems is a parsable slice of AgendaItem.
type AgendaItems []*AgendaItem
