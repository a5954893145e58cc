// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"ludamus.io/enrolld/ent/agendaitem"
	"ludamus.io/enrolld/ent/event"
	"ludamus.io/enrolld/ent/session"
	"ludamus.io/enrolld/ent/user"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID int64 `json:"event_id,omitempty"`
	// HostID holds the value of the "host_id" field.
	HostID *int64 `json:"host_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// Raw capacity before the percentage_slots reduction
	ParticipantsLimit int `json:"participants_limit,omitempty"`
	// MinAge holds the value of the "min_age" field.
	MinAge int `json:"min_age,omitempty"`
	// Requirements holds the value of the "requirements" field.
	Requirements string `json:"requirements,omitempty"`
	// PresenterName holds the value of the "presenter_name" field.
	PresenterName string `json:"presenter_name,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionQuery when eager-loading is set.
	Edges        SessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionEdges holds the relations/edges for other nodes in the graph.
type SessionEdges struct {
	// Event holds the value of the event edge.
	Event *Event `json:"event,omitempty"`
	// Host holds the value of the host edge.
	Host *User `json:"host,omitempty"`
	// AgendaItem holds the value of the agenda_item edge.
	AgendaItem *AgendaItem `json:"agenda_item,omitempty"`
	// Participations holds the value of the participations edge.
	Participations []*SessionParticipation `json:"participations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// EventOrErr returns the Event value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) EventOrErr() (*Event, error) {
	if e.Event != nil {
		return e.Event, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: event.Label}
	}
	return nil, &NotLoadedError{edge: "event"}
}

// HostOrErr returns the Host value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) HostOrErr() (*User, error) {
	if e.Host != nil {
		return e.Host, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "host"}
}

// AgendaItemOrErr returns the AgendaItem value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) AgendaItemOrErr() (*AgendaItem, error) {
	if e.AgendaItem != nil {
		return e.AgendaItem, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: agendaitem.Label}
	}
	return nil, &NotLoadedError{edge: "agenda_item"}
}

// ParticipationsOrErr returns the Participations value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) ParticipationsOrErr() ([]*SessionParticipation, error) {
	if e.loadedTypes[3] {
		return e.Participations, nil
	}
	return nil, &NotLoadedError{edge: "participations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldID, session.FieldEventID, session.FieldHostID, session.FieldParticipantsLimit, session.FieldMinAge:
			values[i] = new(sql.NullInt64)
		case session.FieldTitle, session.FieldSlug, session.FieldRequirements, session.FieldPresenterName:
			values[i] = new(sql.NullString)
		case session.FieldCreatedAt, session.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case session.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case session.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case session.FieldEventID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.Int64
			}
		case session.FieldHostID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field host_id", values[i])
			} else if value.Valid {
				_m.HostID = new(int64)
				*_m.HostID = value.Int64
			}
		case session.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case session.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case session.FieldParticipantsLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field participants_limit", values[i])
			} else if value.Valid {
				_m.ParticipantsLimit = int(value.Int64)
			}
		case session.FieldMinAge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_age", values[i])
			} else if value.Valid {
				_m.MinAge = int(value.Int64)
			}
		case session.FieldRequirements:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requirements", values[i])
			} else if value.Valid {
				_m.Requirements = value.String
			}
		case session.FieldPresenterName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field presenter_name", values[i])
			} else if value.Valid {
				_m.PresenterName = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvent queries the "event" edge of the Session entity.
func (_m *Session) QueryEvent() *EventQuery {
	return NewSessionClient(_m.config).QueryEvent(_m)
}

// QueryHost queries the "host" edge of the Session entity.
func (_m *Session) QueryHost() *UserQuery {
	return NewSessionClient(_m.config).QueryHost(_m)
}

// QueryAgendaItem queries the "agenda_item" edge of the Session entity.
func (_m *Session) QueryAgendaItem() *AgendaItemQuery {
	return NewSessionClient(_m.config).QueryAgendaItem(_m)
}

// QueryParticipations queries the "participations" edge of the Session entity.
func (_m *Session) QueryParticipations() *SessionParticipationQuery {
	return NewSessionClient(_m.config).QueryParticipations(_m)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
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
	if v := _m.HostID; v != nil {
		builder.WriteString("host_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("participants_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParticipantsLimit))
	builder.WriteString(", ")
	builder.WriteString("min_age=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinAge))
	builder.WriteString(", ")
	builder.WriteString("requirements=")
	builder.WriteString(_m.Requirements)
	builder.WriteString(", ")
	builder.WriteString("presenter_name=")
	builder.WriteString(_m.PresenterName)
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
