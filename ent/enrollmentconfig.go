// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"ludamus.io/enrolld/ent/enrollmentconfig"
	"ludamus.io/enrolld/ent/event"
)

// EnrollmentConfig is the model entity for the EnrollmentConfig schema.
type EnrollmentConfig struct {
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
	// StartTime holds the value of the "start_time" field.
	StartTime time.Time `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime time.Time `json:"end_time,omitempty"`
	// Share of each session's participant limit released in this window
	PercentageSlots int `json:"percentage_slots,omitempty"`
	// When set, only sessions starting before end_time are in scope
	LimitToEndTime bool `json:"limit_to_end_time,omitempty"`
	// Gate enrollment to users with an explicit or API-sourced slot grant
	RestrictToConfiguredUsers bool `json:"restrict_to_configured_users,omitempty"`
	// Per-user waitlist ceiling; 0 disables waitlisting
	MaxWaitlistSessions int `json:"max_waitlist_sessions,omitempty"`
	// Display only, ignored by the engine
	BannerText string `json:"banner_text,omitempty"`
	// Named membership gateway used to fetch slot budgets; empty means manual grants only
	APIProvider string `json:"api_provider,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EnrollmentConfigQuery when eager-loading is set.
	Edges        EnrollmentConfigEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EnrollmentConfigEdges holds the relations/edges for other nodes in the graph.
type EnrollmentConfigEdges struct {
	// Event holds the value of the event edge.
	Event *Event `json:"event,omitempty"`
	// UserConfigs holds the value of the user_configs edge.
	UserConfigs []*UserEnrollmentConfig `json:"user_configs,omitempty"`
	// DomainConfigs holds the value of the domain_configs edge.
	DomainConfigs []*DomainEnrollmentConfig `json:"domain_configs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// EventOrErr returns the Event value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EnrollmentConfigEdges) EventOrErr() (*Event, error) {
	if e.Event != nil {
		return e.Event, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: event.Label}
	}
	return nil, &NotLoadedError{edge: "event"}
}

// UserConfigsOrErr returns the UserConfigs value or an error if the edge
// was not loaded in eager-loading.
func (e EnrollmentConfigEdges) UserConfigsOrErr() ([]*UserEnrollmentConfig, error) {
	if e.loadedTypes[1] {
		return e.UserConfigs, nil
	}
	return nil, &NotLoadedError{edge: "user_configs"}
}

// DomainConfigsOrErr returns the DomainConfigs value or an error if the edge
// was not loaded in eager-loading.
func (e EnrollmentConfigEdges) DomainConfigsOrErr() ([]*DomainEnrollmentConfig, error) {
	if e.loadedTypes[2] {
		return e.DomainConfigs, nil
	}
	return nil, &NotLoadedError{edge: "domain_configs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EnrollmentConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case enrollmentconfig.FieldLimitToEndTime, enrollmentconfig.FieldRestrictToConfiguredUsers:
			values[i] = new(sql.NullBool)
		case enrollmentconfig.FieldID, enrollmentconfig.FieldEventID, enrollmentconfig.FieldPercentageSlots, enrollmentconfig.FieldMaxWaitlistSessions:
			values[i] = new(sql.NullInt64)
		case enrollmentconfig.FieldName, enrollmentconfig.FieldBannerText, enrollmentconfig.FieldAPIProvider:
			values[i] = new(sql.NullString)
		case enrollmentconfig.FieldCreatedAt, enrollmentconfig.FieldUpdatedAt, enrollmentconfig.FieldStartTime, enrollmentconfig.FieldEndTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EnrollmentConfig fields.
func (_m *EnrollmentConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case enrollmentconfig.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case enrollmentconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case enrollmentconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case enrollmentconfig.FieldEventID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.Int64
			}
		case enrollmentconfig.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case enrollmentconfig.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case enrollmentconfig.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.Time
			}
		case enrollmentconfig.FieldPercentageSlots:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field percentage_slots", values[i])
			} else if value.Valid {
				_m.PercentageSlots = int(value.Int64)
			}
		case enrollmentconfig.FieldLimitToEndTime:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field limit_to_end_time", values[i])
			} else if value.Valid {
				_m.LimitToEndTime = value.Bool
			}
		case enrollmentconfig.FieldRestrictToConfiguredUsers:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field restrict_to_configured_users", values[i])
			} else if value.Valid {
				_m.RestrictToConfiguredUsers = value.Bool
			}
		case enrollmentconfig.FieldMaxWaitlistSessions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_waitlist_sessions", values[i])
			} else if value.Valid {
				_m.MaxWaitlistSessions = int(value.Int64)
			}
		case enrollmentconfig.FieldBannerText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field banner_text", values[i])
			} else if value.Valid {
				_m.BannerText = value.String
			}
		case enrollmentconfig.FieldAPIProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_provider", values[i])
			} else if value.Valid {
				_m.APIProvider = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EnrollmentConfig.
// This includes values selected through modifiers, order, etc.
func (_m *EnrollmentConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvent queries the "event" edge of the EnrollmentConfig entity.
func (_m *EnrollmentConfig) QueryEvent() *EventQuery {
	return NewEnrollmentConfigClient(_m.config).QueryEvent(_m)
}

// QueryUserConfigs queries the "user_configs" edge of the EnrollmentConfig entity.
func (_m *EnrollmentConfig) QueryUserConfigs() *UserEnrollmentConfigQuery {
	return NewEnrollmentConfigClient(_m.config).QueryUserConfigs(_m)
}

// QueryDomainConfigs queries the "domain_configs" edge of the EnrollmentConfig entity.
func (_m *EnrollmentConfig) QueryDomainConfigs() *DomainEnrollmentConfigQuery {
	return NewEnrollmentConfigClient(_m.config).QueryDomainConfigs(_m)
}

// Update returns a builder for updating this EnrollmentConfig.
// Note that you need to call EnrollmentConfig.Unwrap() before calling this method if this EnrollmentConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EnrollmentConfig) Update() *EnrollmentConfigUpdateOne {
	return NewEnrollmentConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EnrollmentConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EnrollmentConfig) Unwrap() *EnrollmentConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EnrollmentConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EnrollmentConfig) String() string {
	var builder strings.Builder
	builder.WriteString("EnrollmentConfig(")
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
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("percentage_slots=")
	builder.WriteString(fmt.Sprintf("%v", _m.PercentageSlots))
	builder.WriteString(", ")
	builder.WriteString("limit_to_end_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.LimitToEndTime))
	builder.WriteString(", ")
	builder.WriteString("restrict_to_configured_users=")
	builder.WriteString(fmt.Sprintf("%v", _m.RestrictToConfiguredUsers))
	builder.WriteString(", ")
	builder.WriteString("max_waitlist_sessions=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxWaitlistSessions))
	builder.WriteString(", ")
	builder.WriteString("banner_text=")
	builder.WriteString(_m.BannerText)
	builder.WriteString(", ")
	builder.WriteString("api_provider=")
	builder.WriteString(_m.APIProvider)
	builder.WriteByte(')')
	return builder.String()
}

// EnrollmentConfigs is a parsable slice of EnrollmentConfig.
type EnrollmentConfigs []*EnrollmentConfig
