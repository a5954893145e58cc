// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"ludamus.io/enrolld/ent/event"
	"ludamus.io/enrolld/ent/sphere"
)

// Event is the model entity for the Event schema.
type Event struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SphereID holds the value of the "sphere_id" field.
	SphereID int64 `json:"sphere_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// Agenda start; the fallback bound for enrollment windows
	StartTime time.Time `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime time.Time `json:"end_time,omitempty"`
	// ProposalStartTime holds the value of the "proposal_start_time" field.
	ProposalStartTime *time.Time `json:"proposal_start_time,omitempty"`
	// ProposalEndTime holds the value of the "proposal_end_time" field.
	ProposalEndTime *time.Time `json:"proposal_end_time,omitempty"`
	// When the agenda becomes publicly visible
	PublicationTime *time.Time `json:"publication_time,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EventQuery when eager-loading is set.
	Edges        EventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EventEdges holds the relations/edges for other nodes in the graph.
type EventEdges struct {
	// Sphere holds the value of the sphere edge.
	Sphere *Sphere `json:"sphere,omitempty"`
	// Spaces holds the value of the spaces edge.
	Spaces []*Space `json:"spaces,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*Session `json:"sessions,omitempty"`
	// EnrollmentConfigs holds the value of the enrollment_configs edge.
	EnrollmentConfigs []*EnrollmentConfig `json:"enrollment_configs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// SphereOrErr returns the Sphere value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EventEdges) SphereOrErr() (*Sphere, error) {
	if e.Sphere != nil {
		return e.Sphere, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: sphere.Label}
	}
	return nil, &NotLoadedError{edge: "sphere"}
}

// SpacesOrErr returns the Spaces value or an error if the edge
// was not loaded in eager-loading.
func (e EventEdges) SpacesOrErr() ([]*Space, error) {
	if e.loadedTypes[1] {
		return e.Spaces, nil
	}
	return nil, &NotLoadedError{edge: "spaces"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e EventEdges) SessionsOrErr() ([]*Session, error) {
	if e.loadedTypes[2] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// EnrollmentConfigsOrErr returns the EnrollmentConfigs value or an error if the edge
// was not loaded in eager-loading.
func (e EventEdges) EnrollmentConfigsOrErr() ([]*EnrollmentConfig, error) {
	if e.loadedTypes[3] {
		return e.EnrollmentConfigs, nil
	}
	return nil, &NotLoadedError{edge: "enrollment_configs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Event) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case event.FieldID, event.FieldSphereID:
			values[i] = new(sql.NullInt64)
		case event.FieldName, event.FieldSlug:
			values[i] = new(sql.NullString)
		case event.FieldCreatedAt, event.FieldUpdatedAt, event.FieldStartTime, event.FieldEndTime, event.FieldProposalStartTime, event.FieldProposalEndTime, event.FieldPublicationTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Event fields.
func (_m *Event) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case event.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case event.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case event.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case event.FieldSphereID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sphere_id", values[i])
			} else if value.Valid {
				_m.SphereID = value.Int64
			}
		case event.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case event.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case event.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case event.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.Time
			}
		case event.FieldProposalStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field proposal_start_time", values[i])
			} else if value.Valid {
				_m.ProposalStartTime = new(time.Time)
				*_m.ProposalStartTime = value.Time
			}
		case event.FieldProposalEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field proposal_end_time", values[i])
			} else if value.Valid {
				_m.ProposalEndTime = new(time.Time)
				*_m.ProposalEndTime = value.Time
			}
		case event.FieldPublicationTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field publication_time", values[i])
			} else if value.Valid {
				_m.PublicationTime = new(time.Time)
				*_m.PublicationTime = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Event.
// This includes values selected through modifiers, order, etc.
func (_m *Event) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySphere queries the "sphere" edge of the Event entity.
func (_m *Event) QuerySphere() *SphereQuery {
	return NewEventClient(_m.config).QuerySphere(_m)
}

// QuerySpaces queries the "spaces" edge of the Event entity.
func (_m *Event) QuerySpaces() *SpaceQuery {
	return NewEventClient(_m.config).QuerySpaces(_m)
}

// QuerySessions queries the "sessions" edge of the Event entity.
func (_m *Event) QuerySessions() *SessionQuery {
	return NewEventClient(_m.config).QuerySessions(_m)
}

// QueryEnrollmentConfigs queries the "enrollment_configs" edge of the Event entity.
func (_m *Event) QueryEnrollmentConfigs() *EnrollmentConfigQuery {
	return NewEventClient(_m.config).QueryEnrollmentConfigs(_m)
}

// Update returns a builder for updating this Event.
// Note that you need to call Event.Unwrap() before calling this method if this Event
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Event) Update() *EventUpdateOne {
	return NewEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Event entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Event) Unwrap() *Event {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Event is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Event) String() string {
	var builder strings.Builder
	builder.WriteString("Event(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("sphere_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SphereID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ProposalStartTime; v != nil {
		builder.WriteString("proposal_start_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ProposalEndTime; v != nil {
		builder.WriteString("proposal_end_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PublicationTime; v != nil {
		builder.WriteString("publication_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Events is a parsable slice of Event.
type Events []*Event
