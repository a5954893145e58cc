// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"ludamus.io/enrolld/ent/session"
	"ludamus.io/enrolld/ent/sessionparticipation"
	"ludamus.io/enrolld/ent/user"
)

// SessionParticipation is the model entity for the SessionParticipation schema.
type SessionParticipation struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID int64 `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// EnrolledByID holds the value of the "enrolled_by_id" field.
	EnrolledByID int64 `json:"enrolled_by_id,omitempty"`
	// CONFIRMED, WAITING, or a legacy value preserved verbatim
	Status string `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionParticipationQuery when eager-loading is set.
	Edges        SessionParticipationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionParticipationEdges holds the relations/edges for other nodes in the graph.
type SessionParticipationEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Acting user; differs from user for manager-driven enrollment
	EnrolledBy *User `json:"enrolled_by,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionParticipationEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionParticipationEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// EnrolledByOrErr returns the EnrolledBy value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionParticipationEdges) EnrolledByOrErr() (*User, error) {
	if e.EnrolledBy != nil {
		return e.EnrolledBy, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "enrolled_by"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionParticipation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionparticipation.FieldID, sessionparticipation.FieldSessionID, sessionparticipation.FieldUserID, sessionparticipation.FieldEnrolledByID:
			values[i] = new(sql.NullInt64)
		case sessionparticipation.FieldStatus:
			values[i] = new(sql.NullString)
		case sessionparticipation.FieldCreatedAt, sessionparticipation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionParticipation fields.
func (_m *SessionParticipation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionparticipation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case sessionparticipation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sessionparticipation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case sessionparticipation.FieldSessionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.Int64
			}
		case sessionparticipation.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.Int64
			}
		case sessionparticipation.FieldEnrolledByID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field enrolled_by_id", values[i])
			} else if value.Valid {
				_m.EnrolledByID = value.Int64
			}
		case sessionparticipation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionParticipation.
// This includes values selected through modifiers, order, etc.
func (_m *SessionParticipation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the SessionParticipation entity.
func (_m *SessionParticipation) QuerySession() *SessionQuery {
	return NewSessionParticipationClient(_m.config).QuerySession(_m)
}

// QueryUser queries the "user" edge of the SessionParticipation entity.
func (_m *SessionParticipation) QueryUser() *UserQuery {
	return NewSessionParticipationClient(_m.config).QueryUser(_m)
}

// QueryEnrolledBy queries the "enrolled_by" edge of the SessionParticipation entity.
func (_m *SessionParticipation) QueryEnrolledBy() *UserQuery {
	return NewSessionParticipationClient(_m.config).QueryEnrolledBy(_m)
}

// Update returns a builder for updating this SessionParticipation.
// Note that you need to call SessionParticipation.Unwrap() before calling this method if this SessionParticipation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionParticipation) Update() *SessionParticipationUpdateOne {
	return NewSessionParticipationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionParticipation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionParticipation) Unwrap() *SessionParticipation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionParticipation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionParticipation) String() string {
	var builder strings.Builder
	builder.WriteString("SessionParticipation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("enrolled_by_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnrolledByID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteByte(')')
	return builder.String()
}

// SessionParticipations is a parsable slice of SessionParticipation.
type SessionParticipations []*SessionParticipation
