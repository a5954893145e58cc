// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"ludamus.io/enrolld/ent/agendaitem"
	"ludamus.io/enrolld/ent/domainenrollmentconfig"
	"ludamus.io/enrolld/ent/enrollmentconfig"
	"ludamus.io/enrolld/ent/event"
	"ludamus.io/enrolld/ent/notification"
	"ludamus.io/enrolld/ent/predicate"
	"ludamus.io/enrolld/ent/session"
	"ludamus.io/enrolld/ent/sessionparticipation"
	"ludamus.io/enrolld/ent/space"
	"ludamus.io/enrolld/ent/sphere"
	"ludamus.io/enrolld/ent/user"
	"ludamus.io/enrolld/ent/userenrollmentconfig"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgendaItem             = "AgendaItem"
	TypeDomainEnrollmentConfig = "DomainEnrollmentConfig"
	TypeEnrollmentConfig       = "EnrollmentConfig"
	TypeEvent                  = "Event"
	TypeNotification           = "Notification"
	TypeSession                = "Session"
	TypeSessionParticipation   = "SessionParticipation"
	TypeSpace                  = "Space"
	TypeSphere                 = "Sphere"
	TypeUser                   = "User"
	TypeUserEnrollmentConfig   = "UserEnrollmentConfig"
)

// AgendaItemMutation represents an operation that mutates the AgendaItem nodes in the graph.
type AgendaItemMutation struct {
	config
	op                Op
	typ               string
	id                *int64
	created_at        *time.Time
	updated_at        *time.Time
	start_time        *time.Time
	end_time          *time.Time
	session_confirmed *bool
	clearedFields     map[string]struct{}
	space             *int64
	clearedspace      bool
	session           *int64
	clearedsession    bool
	done              bool
	oldValue          func(context.Context) (*AgendaItem, error)
	predicates        []predicate.AgendaItem
}

var _ ent.Mutation = (*AgendaItemMutation)(nil)

// agendaitemOption allows management of the mutation configuration using functional options.
type agendaitemOption func(*AgendaItemMutation)

// newAgendaItemMutation creates new mutation for the AgendaItem entity.
func newAgendaItemMutation(c config, op Op, opts ...agendaitemOption) *AgendaItemMutation {
	m := &AgendaItemMutation{
		config:        c,
		op:            op,
		typ:           TypeAgendaItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgendaItemID sets the ID field of the mutation.
func withAgendaItemID(id int64) agendaitemOption {
	return func(m *AgendaItemMutation) {
		var (
			err   error
			once  sync.Once
			value *AgendaItem
		)
		m.oldValue = func(ctx context.Context) (*AgendaItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgendaItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgendaItem sets the old AgendaItem of the mutation.
func withAgendaItem(node *AgendaItem) agendaitemOption {
	return func(m *AgendaItemMutation) {
		m.oldValue = func(context.Context) (*AgendaItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgendaItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgendaItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgendaItem entities.
func (m *AgendaItemMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgendaItemMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgendaItemMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgendaItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AgendaItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgendaItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgendaItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgendaItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgendaItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgendaItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSpaceID sets the "space_id" field.
func (m *AgendaItemMutation) SetSpaceID(i int64) {
	m.space = &i
}

// SpaceID returns the value of the "space_id" field in the mutation.
func (m *AgendaItemMutation) SpaceID() (r int64, exists bool) {
	v := m.space
	if v == nil {
		return
	}
	return *v, true
}

// OldSpaceID returns the old "space_id" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldSpaceID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpaceID: %w", err)
	}
	return oldValue.SpaceID, nil
}

// ResetSpaceID resets all changes to the "space_id" field.
func (m *AgendaItemMutation) ResetSpaceID() {
	m.space = nil
}

// SetSessionID sets the "session_id" field.
func (m *AgendaItemMutation) SetSessionID(i int64) {
	m.session = &i
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AgendaItemMutation) SessionID() (r int64, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldSessionID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AgendaItemMutation) ResetSessionID() {
	m.session = nil
}

// SetStartTime sets the "start_time" field.
func (m *AgendaItemMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *AgendaItemMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *AgendaItemMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *AgendaItemMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *AgendaItemMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *AgendaItemMutation) ResetEndTime() {
	m.end_time = nil
}

// SetSessionConfirmed sets the "session_confirmed" field.
func (m *AgendaItemMutation) SetSessionConfirmed(b bool) {
	m.session_confirmed = &b
}

// SessionConfirmed returns the value of the "session_confirmed" field in the mutation.
func (m *AgendaItemMutation) SessionConfirmed() (r bool, exists bool) {
	v := m.session_confirmed
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionConfirmed returns the old "session_confirmed" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldSessionConfirmed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionConfirmed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionConfirmed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionConfirmed: %w", err)
	}
	return oldValue.SessionConfirmed, nil
}

// ResetSessionConfirmed resets all changes to the "session_confirmed" field.
func (m *AgendaItemMutation) ResetSessionConfirmed() {
	m.session_confirmed = nil
}

// ClearSpace clears the "space" edge to the Space entity.
func (m *AgendaItemMutation) ClearSpace() {
	m.clearedspace = true
	m.clearedFields[agendaitem.FieldSpaceID] = struct{}{}
}

// SpaceCleared reports if the "space" edge to the Space entity was cleared.
func (m *AgendaItemMutation) SpaceCleared() bool {
	return m.clearedspace
}

// SpaceIDs returns the "space" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SpaceID instead. It exists only for internal usage by the builders.
func (m *AgendaItemMutation) SpaceIDs() (ids []int64) {
	if id := m.space; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSpace resets all changes to the "space" edge.
func (m *AgendaItemMutation) ResetSpace() {
	m.space = nil
	m.clearedspace = false
}

// ClearSession clears the "session" edge to the Session entity.
func (m *AgendaItemMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[agendaitem.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *AgendaItemMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *AgendaItemMutation) SessionIDs() (ids []int64) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *AgendaItemMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the AgendaItemMutation builder.
func (m *AgendaItemMutation) Where(ps ...predicate.AgendaItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgendaItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgendaItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgendaItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgendaItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgendaItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgendaItem).
func (m *AgendaItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgendaItemMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, agendaitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agendaitem.FieldUpdatedAt)
	}
	if m.space != nil {
		fields = append(fields, agendaitem.FieldSpaceID)
	}
	if m.session != nil {
		fields = append(fields, agendaitem.FieldSessionID)
	}
	if m.start_time != nil {
		fields = append(fields, agendaitem.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, agendaitem.FieldEndTime)
	}
	if m.session_confirmed != nil {
		fields = append(fields, agendaitem.FieldSessionConfirmed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgendaItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agendaitem.FieldCreatedAt:
		return m.CreatedAt()
	case agendaitem.FieldUpdatedAt:
		return m.UpdatedAt()
	case agendaitem.FieldSpaceID:
		return m.SpaceID()
	case agendaitem.FieldSessionID:
		return m.SessionID()
	case agendaitem.FieldStartTime:
		return m.StartTime()
	case agendaitem.FieldEndTime:
		return m.EndTime()
	case agendaitem.FieldSessionConfirmed:
		return m.SessionConfirmed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgendaItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agendaitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agendaitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case agendaitem.FieldSpaceID:
		return m.OldSpaceID(ctx)
	case agendaitem.FieldSessionID:
		return m.OldSessionID(ctx)
	case agendaitem.FieldStartTime:
		return m.OldStartTime(ctx)
	case agendaitem.FieldEndTime:
		return m.OldEndTime(ctx)
	case agendaitem.FieldSessionConfirmed:
		return m.OldSessionConfirmed(ctx)
	}
	return nil, fmt.Errorf("unknown AgendaItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgendaItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agendaitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agendaitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case agendaitem.FieldSpaceID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpaceID(v)
		return nil
	case agendaitem.FieldSessionID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case agendaitem.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case agendaitem.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case agendaitem.FieldSessionConfirmed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionConfirmed(v)
		return nil
	}
	return fmt.Errorf("unknown AgendaItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgendaItemMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgendaItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgendaItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgendaItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgendaItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgendaItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgendaItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AgendaItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgendaItemMutation) ResetField(name string) error {
	switch name {
	case agendaitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agendaitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case agendaitem.FieldSpaceID:
		m.ResetSpaceID()
		return nil
	case agendaitem.FieldSessionID:
		m.ResetSessionID()
		return nil
	case agendaitem.FieldStartTime:
		m.ResetStartTime()
		return nil
	case agendaitem.FieldEndTime:
		m.ResetEndTime()
		return nil
	case agendaitem.FieldSessionConfirmed:
		m.ResetSessionConfirmed()
		return nil
	}
	return fmt.Errorf("unknown AgendaItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgendaItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.space != nil {
		edges = append(edges, agendaitem.EdgeSpace)
	}
	if m.session != nil {
		edges = append(edges, agendaitem.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgendaItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agendaitem.EdgeSpace:
		if id := m.space; id != nil {
			return []ent.Value{*id}
		}
	case agendaitem.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgendaItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgendaItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgendaItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedspace {
		edges = append(edges, agendaitem.EdgeSpace)
	}
	if m.clearedsession {
		edges = append(edges, agendaitem.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgendaItemMutation) EdgeCleared(name string) bool {
	switch name {
	case agendaitem.EdgeSpace:
		return m.clearedspace
	case agendaitem.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgendaItemMutation) ClearEdge(name string) error {
	switch name {
	case agendaitem.EdgeSpace:
		m.ClearSpace()
		return nil
	case agendaitem.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown AgendaItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgendaItemMutation) ResetEdge(name string) error {
	switch name {
	case agendaitem.EdgeSpace:
		m.ResetSpace()
		return nil
	case agendaitem.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown AgendaItem edge %s", name)
}

// DomainEnrollmentConfigMutation represents an operation that mutates the DomainEnrollmentConfig nodes in the graph.
type DomainEnrollmentConfigMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int64
	created_at                *time.Time
	updated_at                *time.Time
	domain                    *string
	allowed_slots_per_user    *int
	addallowed_slots_per_user *int
	clearedFields             map[string]struct{}
	_config                   *int64
	cleared_config            bool
	done                      bool
	oldValue                  func(context.Context) (*DomainEnrollmentConfig, error)
	predicates                []predicate.DomainEnrollmentConfig
}

var _ ent.Mutation = (*DomainEnrollmentConfigMutation)(nil)

// domainenrollmentconfigOption allows management of the mutation configuration using functional options.
type domainenrollmentconfigOption func(*DomainEnrollmentConfigMutation)

// newDomainEnrollmentConfigMutation creates new mutation for the DomainEnrollmentConfig entity.
func newDomainEnrollmentConfigMutation(c config, op Op, opts ...domainenrollmentconfigOption) *DomainEnrollmentConfigMutation {
	m := &DomainEnrollmentConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeDomainEnrollmentConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDomainEnrollmentConfigID sets the ID field of the mutation.
func withDomainEnrollmentConfigID(id int64) domainenrollmentconfigOption {
	return func(m *DomainEnrollmentConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *DomainEnrollmentConfig
		)
		m.oldValue = func(ctx context.Context) (*DomainEnrollmentConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DomainEnrollmentConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDomainEnrollmentConfig sets the old DomainEnrollmentConfig of the mutation.
func withDomainEnrollmentConfig(node *DomainEnrollmentConfig) domainenrollmentconfigOption {
	return func(m *DomainEnrollmentConfigMutation) {
		m.oldValue = func(context.Context) (*DomainEnrollmentConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DomainEnrollmentConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DomainEnrollmentConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DomainEnrollmentConfig entities.
func (m *DomainEnrollmentConfigMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DomainEnrollmentConfigMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DomainEnrollmentConfigMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DomainEnrollmentConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DomainEnrollmentConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DomainEnrollmentConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DomainEnrollmentConfig entity.
// If the DomainEnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainEnrollmentConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DomainEnrollmentConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DomainEnrollmentConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DomainEnrollmentConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DomainEnrollmentConfig entity.
// If the DomainEnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainEnrollmentConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DomainEnrollmentConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetConfigID sets the "config_id" field.
func (m *DomainEnrollmentConfigMutation) SetConfigID(i int64) {
	m._config = &i
}

// ConfigID returns the value of the "config_id" field in the mutation.
func (m *DomainEnrollmentConfigMutation) ConfigID() (r int64, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigID returns the old "config_id" field's value of the DomainEnrollmentConfig entity.
// If the DomainEnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainEnrollmentConfigMutation) OldConfigID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigID: %w", err)
	}
	return oldValue.ConfigID, nil
}

// ResetConfigID resets all changes to the "config_id" field.
func (m *DomainEnrollmentConfigMutation) ResetConfigID() {
	m._config = nil
}

// SetDomain sets the "domain" field.
func (m *DomainEnrollmentConfigMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *DomainEnrollmentConfigMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the DomainEnrollmentConfig entity.
// If the DomainEnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainEnrollmentConfigMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *DomainEnrollmentConfigMutation) ResetDomain() {
	m.domain = nil
}

// SetAllowedSlotsPerUser sets the "allowed_slots_per_user" field.
func (m *DomainEnrollmentConfigMutation) SetAllowedSlotsPerUser(i int) {
	m.allowed_slots_per_user = &i
	m.addallowed_slots_per_user = nil
}

// AllowedSlotsPerUser returns the value of the "allowed_slots_per_user" field in the mutation.
func (m *DomainEnrollmentConfigMutation) AllowedSlotsPerUser() (r int, exists bool) {
	v := m.allowed_slots_per_user
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowedSlotsPerUser returns the old "allowed_slots_per_user" field's value of the DomainEnrollmentConfig entity.
// If the DomainEnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainEnrollmentConfigMutation) OldAllowedSlotsPerUser(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowedSlotsPerUser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowedSlotsPerUser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowedSlotsPerUser: %w", err)
	}
	return oldValue.AllowedSlotsPerUser, nil
}

// AddAllowedSlotsPerUser adds i to the "allowed_slots_per_user" field.
func (m *DomainEnrollmentConfigMutation) AddAllowedSlotsPerUser(i int) {
	if m.addallowed_slots_per_user != nil {
		*m.addallowed_slots_per_user += i
	} else {
		m.addallowed_slots_per_user = &i
	}
}

// AddedAllowedSlotsPerUser returns the value that was added to the "allowed_slots_per_user" field in this mutation.
func (m *DomainEnrollmentConfigMutation) AddedAllowedSlotsPerUser() (r int, exists bool) {
	v := m.addallowed_slots_per_user
	if v == nil {
		return
	}
	return *v, true
}

// ResetAllowedSlotsPerUser resets all changes to the "allowed_slots_per_user" field.
func (m *DomainEnrollmentConfigMutation) ResetAllowedSlotsPerUser() {
	m.allowed_slots_per_user = nil
	m.addallowed_slots_per_user = nil
}

// ClearConfig clears the "config" edge to the EnrollmentConfig entity.
func (m *DomainEnrollmentConfigMutation) ClearConfig() {
	m.cleared_config = true
	m.clearedFields[domainenrollmentconfig.FieldConfigID] = struct{}{}
}

// ConfigCleared reports if the "config" edge to the EnrollmentConfig entity was cleared.
func (m *DomainEnrollmentConfigMutation) ConfigCleared() bool {
	return m.cleared_config
}

// ConfigIDs returns the "config" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConfigID instead. It exists only for internal usage by the builders.
func (m *DomainEnrollmentConfigMutation) ConfigIDs() (ids []int64) {
	if id := m._config; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConfig resets all changes to the "config" edge.
func (m *DomainEnrollmentConfigMutation) ResetConfig() {
	m._config = nil
	m.cleared_config = false
}

// Where appends a list predicates to the DomainEnrollmentConfigMutation builder.
func (m *DomainEnrollmentConfigMutation) Where(ps ...predicate.DomainEnrollmentConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DomainEnrollmentConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DomainEnrollmentConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DomainEnrollmentConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DomainEnrollmentConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DomainEnrollmentConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DomainEnrollmentConfig).
func (m *DomainEnrollmentConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DomainEnrollmentConfigMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, domainenrollmentconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, domainenrollmentconfig.FieldUpdatedAt)
	}
	if m._config != nil {
		fields = append(fields, domainenrollmentconfig.FieldConfigID)
	}
	if m.domain != nil {
		fields = append(fields, domainenrollmentconfig.FieldDomain)
	}
	if m.allowed_slots_per_user != nil {
		fields = append(fields, domainenrollmentconfig.FieldAllowedSlotsPerUser)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DomainEnrollmentConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case domainenrollmentconfig.FieldCreatedAt:
		return m.CreatedAt()
	case domainenrollmentconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	case domainenrollmentconfig.FieldConfigID:
		return m.ConfigID()
	case domainenrollmentconfig.FieldDomain:
		return m.Domain()
	case domainenrollmentconfig.FieldAllowedSlotsPerUser:
		return m.AllowedSlotsPerUser()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DomainEnrollmentConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case domainenrollmentconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case domainenrollmentconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case domainenrollmentconfig.FieldConfigID:
		return m.OldConfigID(ctx)
	case domainenrollmentconfig.FieldDomain:
		return m.OldDomain(ctx)
	case domainenrollmentconfig.FieldAllowedSlotsPerUser:
		return m.OldAllowedSlotsPerUser(ctx)
	}
	return nil, fmt.Errorf("unknown DomainEnrollmentConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DomainEnrollmentConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case domainenrollmentconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case domainenrollmentconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case domainenrollmentconfig.FieldConfigID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigID(v)
		return nil
	case domainenrollmentconfig.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case domainenrollmentconfig.FieldAllowedSlotsPerUser:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowedSlotsPerUser(v)
		return nil
	}
	return fmt.Errorf("unknown DomainEnrollmentConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DomainEnrollmentConfigMutation) AddedFields() []string {
	var fields []string
	if m.addallowed_slots_per_user != nil {
		fields = append(fields, domainenrollmentconfig.FieldAllowedSlotsPerUser)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DomainEnrollmentConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case domainenrollmentconfig.FieldAllowedSlotsPerUser:
		return m.AddedAllowedSlotsPerUser()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DomainEnrollmentConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case domainenrollmentconfig.FieldAllowedSlotsPerUser:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAllowedSlotsPerUser(v)
		return nil
	}
	return fmt.Errorf("unknown DomainEnrollmentConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DomainEnrollmentConfigMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DomainEnrollmentConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DomainEnrollmentConfigMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DomainEnrollmentConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DomainEnrollmentConfigMutation) ResetField(name string) error {
	switch name {
	case domainenrollmentconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case domainenrollmentconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case domainenrollmentconfig.FieldConfigID:
		m.ResetConfigID()
		return nil
	case domainenrollmentconfig.FieldDomain:
		m.ResetDomain()
		return nil
	case domainenrollmentconfig.FieldAllowedSlotsPerUser:
		m.ResetAllowedSlotsPerUser()
		return nil
	}
	return fmt.Errorf("unknown DomainEnrollmentConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DomainEnrollmentConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._config != nil {
		edges = append(edges, domainenrollmentconfig.EdgeConfig)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DomainEnrollmentConfigMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case domainenrollmentconfig.EdgeConfig:
		if id := m._config; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DomainEnrollmentConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DomainEnrollmentConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DomainEnrollmentConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_config {
		edges = append(edges, domainenrollmentconfig.EdgeConfig)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DomainEnrollmentConfigMutation) EdgeCleared(name string) bool {
	switch name {
	case domainenrollmentconfig.EdgeConfig:
		return m.cleared_config
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DomainEnrollmentConfigMutation) ClearEdge(name string) error {
	switch name {
	case domainenrollmentconfig.EdgeConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown DomainEnrollmentConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DomainEnrollmentConfigMutation) ResetEdge(name string) error {
	switch name {
	case domainenrollmentconfig.EdgeConfig:
		m.ResetConfig()
		return nil
	}
	return fmt.Errorf("unknown DomainEnrollmentConfig edge %s", name)
}

// EnrollmentConfigMutation represents an operation that mutates the EnrollmentConfig nodes in the graph.
type EnrollmentConfigMutation struct {
	config
	op                           Op
	typ                          string
	id                           *int64
	created_at                   *time.Time
	updated_at                   *time.Time
	name                         *string
	start_time                   *time.Time
	end_time                     *time.Time
	percentage_slots             *int
	addpercentage_slots          *int
	limit_to_end_time            *bool
	restrict_to_configured_users *bool
	max_waitlist_sessions        *int
	addmax_waitlist_sessions     *int
	banner_text                  *string
	api_provider                 *string
	clearedFields                map[string]struct{}
	event                        *int64
	clearedevent                 bool
	user_configs                 map[int64]struct{}
	removeduser_configs          map[int64]struct{}
	cleareduser_configs          bool
	domain_configs               map[int64]struct{}
	removeddomain_configs        map[int64]struct{}
	cleareddomain_configs        bool
	done                         bool
	oldValue                     func(context.Context) (*EnrollmentConfig, error)
	predicates                   []predicate.EnrollmentConfig
}

var _ ent.Mutation = (*EnrollmentConfigMutation)(nil)

// enrollmentconfigOption allows management of the mutation configuration using functional options.
type enrollmentconfigOption func(*EnrollmentConfigMutation)

// newEnrollmentConfigMutation creates new mutation for the EnrollmentConfig entity.
func newEnrollmentConfigMutation(c config, op Op, opts ...enrollmentconfigOption) *EnrollmentConfigMutation {
	m := &EnrollmentConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeEnrollmentConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEnrollmentConfigID sets the ID field of the mutation.
func withEnrollmentConfigID(id int64) enrollmentconfigOption {
	return func(m *EnrollmentConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *EnrollmentConfig
		)
		m.oldValue = func(ctx context.Context) (*EnrollmentConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EnrollmentConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEnrollmentConfig sets the old EnrollmentConfig of the mutation.
func withEnrollmentConfig(node *EnrollmentConfig) enrollmentconfigOption {
	return func(m *EnrollmentConfigMutation) {
		m.oldValue = func(context.Context) (*EnrollmentConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EnrollmentConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EnrollmentConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EnrollmentConfig entities.
func (m *EnrollmentConfigMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EnrollmentConfigMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EnrollmentConfigMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EnrollmentConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EnrollmentConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EnrollmentConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EnrollmentConfig entity.
// If the EnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EnrollmentConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EnrollmentConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EnrollmentConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EnrollmentConfig entity.
// If the EnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EnrollmentConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEventID sets the "event_id" field.
func (m *EnrollmentConfigMutation) SetEventID(i int64) {
	m.event = &i
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *EnrollmentConfigMutation) EventID() (r int64, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the EnrollmentConfig entity.
// If the EnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentConfigMutation) OldEventID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *EnrollmentConfigMutation) ResetEventID() {
	m.event = nil
}

// SetName sets the "name" field.
func (m *EnrollmentConfigMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EnrollmentConfigMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the EnrollmentConfig entity.
// If the EnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentConfigMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EnrollmentConfigMutation) ResetName() {
	m.name = nil
}

// SetStartTime sets the "start_time" field.
func (m *EnrollmentConfigMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *EnrollmentConfigMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the EnrollmentConfig entity.
// If the EnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentConfigMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *EnrollmentConfigMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *EnrollmentConfigMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *EnrollmentConfigMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the EnrollmentConfig entity.
// If the EnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentConfigMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *EnrollmentConfigMutation) ResetEndTime() {
	m.end_time = nil
}

// SetPercentageSlots sets the "percentage_slots" field.
func (m *EnrollmentConfigMutation) SetPercentageSlots(i int) {
	m.percentage_slots = &i
	m.addpercentage_slots = nil
}

// PercentageSlots returns the value of the "percentage_slots" field in the mutation.
func (m *EnrollmentConfigMutation) PercentageSlots() (r int, exists bool) {
	v := m.percentage_slots
	if v == nil {
		return
	}
	return *v, true
}

// OldPercentageSlots returns the old "percentage_slots" field's value of the EnrollmentConfig entity.
// If the EnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentConfigMutation) OldPercentageSlots(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPercentageSlots is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPercentageSlots requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPercentageSlots: %w", err)
	}
	return oldValue.PercentageSlots, nil
}

// AddPercentageSlots adds i to the "percentage_slots" field.
func (m *EnrollmentConfigMutation) AddPercentageSlots(i int) {
	if m.addpercentage_slots != nil {
		*m.addpercentage_slots += i
	} else {
		m.addpercentage_slots = &i
	}
}

// AddedPercentageSlots returns the value that was added to the "percentage_slots" field in this mutation.
func (m *EnrollmentConfigMutation) AddedPercentageSlots() (r int, exists bool) {
	v := m.addpercentage_slots
	if v == nil {
		return
	}
	return *v, true
}

// ResetPercentageSlots resets all changes to the "percentage_slots" field.
func (m *EnrollmentConfigMutation) ResetPercentageSlots() {
	m.percentage_slots = nil
	m.addpercentage_slots = nil
}

// SetLimitToEndTime sets the "limit_to_end_time" field.
func (m *EnrollmentConfigMutation) SetLimitToEndTime(b bool) {
	m.limit_to_end_time = &b
}

// LimitToEndTime returns the value of the "limit_to_end_time" field in the mutation.
func (m *EnrollmentConfigMutation) LimitToEndTime() (r bool, exists bool) {
	v := m.limit_to_end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLimitToEndTime returns the old "limit_to_end_time" field's value of the EnrollmentConfig entity.
// If the EnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentConfigMutation) OldLimitToEndTime(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLimitToEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLimitToEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLimitToEndTime: %w", err)
	}
	return oldValue.LimitToEndTime, nil
}

// ResetLimitToEndTime resets all changes to the "limit_to_end_time" field.
func (m *EnrollmentConfigMutation) ResetLimitToEndTime() {
	m.limit_to_end_time = nil
}

// SetRestrictToConfiguredUsers sets the "restrict_to_configured_users" field.
func (m *EnrollmentConfigMutation) SetRestrictToConfiguredUsers(b bool) {
	m.restrict_to_configured_users = &b
}

// RestrictToConfiguredUsers returns the value of the "restrict_to_configured_users" field in the mutation.
func (m *EnrollmentConfigMutation) RestrictToConfiguredUsers() (r bool, exists bool) {
	v := m.restrict_to_configured_users
	if v == nil {
		return
	}
	return *v, true
}

// OldRestrictToConfiguredUsers returns the old "restrict_to_configured_users" field's value of the EnrollmentConfig entity.
// If the EnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentConfigMutation) OldRestrictToConfiguredUsers(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRestrictToConfiguredUsers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRestrictToConfiguredUsers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRestrictToConfiguredUsers: %w", err)
	}
	return oldValue.RestrictToConfiguredUsers, nil
}

// ResetRestrictToConfiguredUsers resets all changes to the "restrict_to_configured_users" field.
func (m *EnrollmentConfigMutation) ResetRestrictToConfiguredUsers() {
	m.restrict_to_configured_users = nil
}

// SetMaxWaitlistSessions sets the "max_waitlist_sessions" field.
func (m *EnrollmentConfigMutation) SetMaxWaitlistSessions(i int) {
	m.max_waitlist_sessions = &i
	m.addmax_waitlist_sessions = nil
}

// MaxWaitlistSessions returns the value of the "max_waitlist_sessions" field in the mutation.
func (m *EnrollmentConfigMutation) MaxWaitlistSessions() (r int, exists bool) {
	v := m.max_waitlist_sessions
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxWaitlistSessions returns the old "max_waitlist_sessions" field's value of the EnrollmentConfig entity.
// If the EnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentConfigMutation) OldMaxWaitlistSessions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxWaitlistSessions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxWaitlistSessions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxWaitlistSessions: %w", err)
	}
	return oldValue.MaxWaitlistSessions, nil
}

// AddMaxWaitlistSessions adds i to the "max_waitlist_sessions" field.
func (m *EnrollmentConfigMutation) AddMaxWaitlistSessions(i int) {
	if m.addmax_waitlist_sessions != nil {
		*m.addmax_waitlist_sessions += i
	} else {
		m.addmax_waitlist_sessions = &i
	}
}

// AddedMaxWaitlistSessions returns the value that was added to the "max_waitlist_sessions" field in this mutation.
func (m *EnrollmentConfigMutation) AddedMaxWaitlistSessions() (r int, exists bool) {
	v := m.addmax_waitlist_sessions
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxWaitlistSessions resets all changes to the "max_waitlist_sessions" field.
func (m *EnrollmentConfigMutation) ResetMaxWaitlistSessions() {
	m.max_waitlist_sessions = nil
	m.addmax_waitlist_sessions = nil
}

// SetBannerText sets the "banner_text" field.
func (m *EnrollmentConfigMutation) SetBannerText(s string) {
	m.banner_text = &s
}

// BannerText returns the value of the "banner_text" field in the mutation.
func (m *EnrollmentConfigMutation) BannerText() (r string, exists bool) {
	v := m.banner_text
	if v == nil {
		return
	}
	return *v, true
}

// OldBannerText returns the old "banner_text" field's value of the EnrollmentConfig entity.
// If the EnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentConfigMutation) OldBannerText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBannerText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBannerText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBannerText: %w", err)
	}
	return oldValue.BannerText, nil
}

// ClearBannerText clears the value of the "banner_text" field.
func (m *EnrollmentConfigMutation) ClearBannerText() {
	m.banner_text = nil
	m.clearedFields[enrollmentconfig.FieldBannerText] = struct{}{}
}

// BannerTextCleared returns if the "banner_text" field was cleared in this mutation.
func (m *EnrollmentConfigMutation) BannerTextCleared() bool {
	_, ok := m.clearedFields[enrollmentconfig.FieldBannerText]
	return ok
}

// ResetBannerText resets all changes to the "banner_text" field.
func (m *EnrollmentConfigMutation) ResetBannerText() {
	m.banner_text = nil
	delete(m.clearedFields, enrollmentconfig.FieldBannerText)
}

// SetAPIProvider sets the "api_provider" field.
func (m *EnrollmentConfigMutation) SetAPIProvider(s string) {
	m.api_provider = &s
}

// APIProvider returns the value of the "api_provider" field in the mutation.
func (m *EnrollmentConfigMutation) APIProvider() (r string, exists bool) {
	v := m.api_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIProvider returns the old "api_provider" field's value of the EnrollmentConfig entity.
// If the EnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentConfigMutation) OldAPIProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIProvider: %w", err)
	}
	return oldValue.APIProvider, nil
}

// ClearAPIProvider clears the value of the "api_provider" field.
func (m *EnrollmentConfigMutation) ClearAPIProvider() {
	m.api_provider = nil
	m.clearedFields[enrollmentconfig.FieldAPIProvider] = struct{}{}
}

// APIProviderCleared returns if the "api_provider" field was cleared in this mutation.
func (m *EnrollmentConfigMutation) APIProviderCleared() bool {
	_, ok := m.clearedFields[enrollmentconfig.FieldAPIProvider]
	return ok
}

// ResetAPIProvider resets all changes to the "api_provider" field.
func (m *EnrollmentConfigMutation) ResetAPIProvider() {
	m.api_provider = nil
	delete(m.clearedFields, enrollmentconfig.FieldAPIProvider)
}

// ClearEvent clears the "event" edge to the Event entity.
func (m *EnrollmentConfigMutation) ClearEvent() {
	m.clearedevent = true
	m.clearedFields[enrollmentconfig.FieldEventID] = struct{}{}
}

// EventCleared reports if the "event" edge to the Event entity was cleared.
func (m *EnrollmentConfigMutation) EventCleared() bool {
	return m.clearedevent
}

// EventIDs returns the "event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventID instead. It exists only for internal usage by the builders.
func (m *EnrollmentConfigMutation) EventIDs() (ids []int64) {
	if id := m.event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvent resets all changes to the "event" edge.
func (m *EnrollmentConfigMutation) ResetEvent() {
	m.event = nil
	m.clearedevent = false
}

// AddUserConfigIDs adds the "user_configs" edge to the UserEnrollmentConfig entity by ids.
func (m *EnrollmentConfigMutation) AddUserConfigIDs(ids ...int64) {
	if m.user_configs == nil {
		m.user_configs = make(map[int64]struct{})
	}
	for i := range ids {
		m.user_configs[ids[i]] = struct{}{}
	}
}

// ClearUserConfigs clears the "user_configs" edge to the UserEnrollmentConfig entity.
func (m *EnrollmentConfigMutation) ClearUserConfigs() {
	m.cleareduser_configs = true
}

// UserConfigsCleared reports if the "user_configs" edge to the UserEnrollmentConfig entity was cleared.
func (m *EnrollmentConfigMutation) UserConfigsCleared() bool {
	return m.cleareduser_configs
}

// RemoveUserConfigIDs removes the "user_configs" edge to the UserEnrollmentConfig entity by IDs.
func (m *EnrollmentConfigMutation) RemoveUserConfigIDs(ids ...int64) {
	if m.removeduser_configs == nil {
		m.removeduser_configs = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.user_configs, ids[i])
		m.removeduser_configs[ids[i]] = struct{}{}
	}
}

// RemovedUserConfigs returns the removed IDs of the "user_configs" edge to the UserEnrollmentConfig entity.
func (m *EnrollmentConfigMutation) RemovedUserConfigsIDs() (ids []int64) {
	for id := range m.removeduser_configs {
		ids = append(ids, id)
	}
	return
}

// UserConfigsIDs returns the "user_configs" edge IDs in the mutation.
func (m *EnrollmentConfigMutation) UserConfigsIDs() (ids []int64) {
	for id := range m.user_configs {
		ids = append(ids, id)
	}
	return
}

// ResetUserConfigs resets all changes to the "user_configs" edge.
func (m *EnrollmentConfigMutation) ResetUserConfigs() {
	m.user_configs = nil
	m.cleareduser_configs = false
	m.removeduser_configs = nil
}

// AddDomainConfigIDs adds the "domain_configs" edge to the DomainEnrollmentConfig entity by ids.
func (m *EnrollmentConfigMutation) AddDomainConfigIDs(ids ...int64) {
	if m.domain_configs == nil {
		m.domain_configs = make(map[int64]struct{})
	}
	for i := range ids {
		m.domain_configs[ids[i]] = struct{}{}
	}
}

// ClearDomainConfigs clears the "domain_configs" edge to the DomainEnrollmentConfig entity.
func (m *EnrollmentConfigMutation) ClearDomainConfigs() {
	m.cleareddomain_configs = true
}

// DomainConfigsCleared reports if the "domain_configs" edge to the DomainEnrollmentConfig entity was cleared.
func (m *EnrollmentConfigMutation) DomainConfigsCleared() bool {
	return m.cleareddomain_configs
}

// RemoveDomainConfigIDs removes the "domain_configs" edge to the DomainEnrollmentConfig entity by IDs.
func (m *EnrollmentConfigMutation) RemoveDomainConfigIDs(ids ...int64) {
	if m.removeddomain_configs == nil {
		m.removeddomain_configs = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.domain_configs, ids[i])
		m.removeddomain_configs[ids[i]] = struct{}{}
	}
}

// RemovedDomainConfigs returns the removed IDs of the "domain_configs" edge to the DomainEnrollmentConfig entity.
func (m *EnrollmentConfigMutation) RemovedDomainConfigsIDs() (ids []int64) {
	for id := range m.removeddomain_configs {
		ids = append(ids, id)
	}
	return
}

// DomainConfigsIDs returns the "domain_configs" edge IDs in the mutation.
func (m *EnrollmentConfigMutation) DomainConfigsIDs() (ids []int64) {
	for id := range m.domain_configs {
		ids = append(ids, id)
	}
	return
}

// ResetDomainConfigs resets all changes to the "domain_configs" edge.
func (m *EnrollmentConfigMutation) ResetDomainConfigs() {
	m.domain_configs = nil
	m.cleareddomain_configs = false
	m.removeddomain_configs = nil
}

// Where appends a list predicates to the EnrollmentConfigMutation builder.
func (m *EnrollmentConfigMutation) Where(ps ...predicate.EnrollmentConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EnrollmentConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EnrollmentConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EnrollmentConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EnrollmentConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EnrollmentConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EnrollmentConfig).
func (m *EnrollmentConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EnrollmentConfigMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, enrollmentconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, enrollmentconfig.FieldUpdatedAt)
	}
	if m.event != nil {
		fields = append(fields, enrollmentconfig.FieldEventID)
	}
	if m.name != nil {
		fields = append(fields, enrollmentconfig.FieldName)
	}
	if m.start_time != nil {
		fields = append(fields, enrollmentconfig.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, enrollmentconfig.FieldEndTime)
	}
	if m.percentage_slots != nil {
		fields = append(fields, enrollmentconfig.FieldPercentageSlots)
	}
	if m.limit_to_end_time != nil {
		fields = append(fields, enrollmentconfig.FieldLimitToEndTime)
	}
	if m.restrict_to_configured_users != nil {
		fields = append(fields, enrollmentconfig.FieldRestrictToConfiguredUsers)
	}
	if m.max_waitlist_sessions != nil {
		fields = append(fields, enrollmentconfig.FieldMaxWaitlistSessions)
	}
	if m.banner_text != nil {
		fields = append(fields, enrollmentconfig.FieldBannerText)
	}
	if m.api_provider != nil {
		fields = append(fields, enrollmentconfig.FieldAPIProvider)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EnrollmentConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case enrollmentconfig.FieldCreatedAt:
		return m.CreatedAt()
	case enrollmentconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	case enrollmentconfig.FieldEventID:
		return m.EventID()
	case enrollmentconfig.FieldName:
		return m.Name()
	case enrollmentconfig.FieldStartTime:
		return m.StartTime()
	case enrollmentconfig.FieldEndTime:
		return m.EndTime()
	case enrollmentconfig.FieldPercentageSlots:
		return m.PercentageSlots()
	case enrollmentconfig.FieldLimitToEndTime:
		return m.LimitToEndTime()
	case enrollmentconfig.FieldRestrictToConfiguredUsers:
		return m.RestrictToConfiguredUsers()
	case enrollmentconfig.FieldMaxWaitlistSessions:
		return m.MaxWaitlistSessions()
	case enrollmentconfig.FieldBannerText:
		return m.BannerText()
	case enrollmentconfig.FieldAPIProvider:
		return m.APIProvider()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EnrollmentConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case enrollmentconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case enrollmentconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case enrollmentconfig.FieldEventID:
		return m.OldEventID(ctx)
	case enrollmentconfig.FieldName:
		return m.OldName(ctx)
	case enrollmentconfig.FieldStartTime:
		return m.OldStartTime(ctx)
	case enrollmentconfig.FieldEndTime:
		return m.OldEndTime(ctx)
	case enrollmentconfig.FieldPercentageSlots:
		return m.OldPercentageSlots(ctx)
	case enrollmentconfig.FieldLimitToEndTime:
		return m.OldLimitToEndTime(ctx)
	case enrollmentconfig.FieldRestrictToConfiguredUsers:
		return m.OldRestrictToConfiguredUsers(ctx)
	case enrollmentconfig.FieldMaxWaitlistSessions:
		return m.OldMaxWaitlistSessions(ctx)
	case enrollmentconfig.FieldBannerText:
		return m.OldBannerText(ctx)
	case enrollmentconfig.FieldAPIProvider:
		return m.OldAPIProvider(ctx)
	}
	return nil, fmt.Errorf("unknown EnrollmentConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnrollmentConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case enrollmentconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case enrollmentconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case enrollmentconfig.FieldEventID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case enrollmentconfig.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case enrollmentconfig.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case enrollmentconfig.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case enrollmentconfig.FieldPercentageSlots:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPercentageSlots(v)
		return nil
	case enrollmentconfig.FieldLimitToEndTime:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLimitToEndTime(v)
		return nil
	case enrollmentconfig.FieldRestrictToConfiguredUsers:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRestrictToConfiguredUsers(v)
		return nil
	case enrollmentconfig.FieldMaxWaitlistSessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxWaitlistSessions(v)
		return nil
	case enrollmentconfig.FieldBannerText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBannerText(v)
		return nil
	case enrollmentconfig.FieldAPIProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIProvider(v)
		return nil
	}
	return fmt.Errorf("unknown EnrollmentConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EnrollmentConfigMutation) AddedFields() []string {
	var fields []string
	if m.addpercentage_slots != nil {
		fields = append(fields, enrollmentconfig.FieldPercentageSlots)
	}
	if m.addmax_waitlist_sessions != nil {
		fields = append(fields, enrollmentconfig.FieldMaxWaitlistSessions)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EnrollmentConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case enrollmentconfig.FieldPercentageSlots:
		return m.AddedPercentageSlots()
	case enrollmentconfig.FieldMaxWaitlistSessions:
		return m.AddedMaxWaitlistSessions()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnrollmentConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case enrollmentconfig.FieldPercentageSlots:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPercentageSlots(v)
		return nil
	case enrollmentconfig.FieldMaxWaitlistSessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxWaitlistSessions(v)
		return nil
	}
	return fmt.Errorf("unknown EnrollmentConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EnrollmentConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(enrollmentconfig.FieldBannerText) {
		fields = append(fields, enrollmentconfig.FieldBannerText)
	}
	if m.FieldCleared(enrollmentconfig.FieldAPIProvider) {
		fields = append(fields, enrollmentconfig.FieldAPIProvider)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EnrollmentConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EnrollmentConfigMutation) ClearField(name string) error {
	switch name {
	case enrollmentconfig.FieldBannerText:
		m.ClearBannerText()
		return nil
	case enrollmentconfig.FieldAPIProvider:
		m.ClearAPIProvider()
		return nil
	}
	return fmt.Errorf("unknown EnrollmentConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EnrollmentConfigMutation) ResetField(name string) error {
	switch name {
	case enrollmentconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case enrollmentconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case enrollmentconfig.FieldEventID:
		m.ResetEventID()
		return nil
	case enrollmentconfig.FieldName:
		m.ResetName()
		return nil
	case enrollmentconfig.FieldStartTime:
		m.ResetStartTime()
		return nil
	case enrollmentconfig.FieldEndTime:
		m.ResetEndTime()
		return nil
	case enrollmentconfig.FieldPercentageSlots:
		m.ResetPercentageSlots()
		return nil
	case enrollmentconfig.FieldLimitToEndTime:
		m.ResetLimitToEndTime()
		return nil
	case enrollmentconfig.FieldRestrictToConfiguredUsers:
		m.ResetRestrictToConfiguredUsers()
		return nil
	case enrollmentconfig.FieldMaxWaitlistSessions:
		m.ResetMaxWaitlistSessions()
		return nil
	case enrollmentconfig.FieldBannerText:
		m.ResetBannerText()
		return nil
	case enrollmentconfig.FieldAPIProvider:
		m.ResetAPIProvider()
		return nil
	}
	return fmt.Errorf("unknown EnrollmentConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EnrollmentConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.event != nil {
		edges = append(edges, enrollmentconfig.EdgeEvent)
	}
	if m.user_configs != nil {
		edges = append(edges, enrollmentconfig.EdgeUserConfigs)
	}
	if m.domain_configs != nil {
		edges = append(edges, enrollmentconfig.EdgeDomainConfigs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EnrollmentConfigMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case enrollmentconfig.EdgeEvent:
		if id := m.event; id != nil {
			return []ent.Value{*id}
		}
	case enrollmentconfig.EdgeUserConfigs:
		ids := make([]ent.Value, 0, len(m.user_configs))
		for id := range m.user_configs {
			ids = append(ids, id)
		}
		return ids
	case enrollmentconfig.EdgeDomainConfigs:
		ids := make([]ent.Value, 0, len(m.domain_configs))
		for id := range m.domain_configs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EnrollmentConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeduser_configs != nil {
		edges = append(edges, enrollmentconfig.EdgeUserConfigs)
	}
	if m.removeddomain_configs != nil {
		edges = append(edges, enrollmentconfig.EdgeDomainConfigs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EnrollmentConfigMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case enrollmentconfig.EdgeUserConfigs:
		ids := make([]ent.Value, 0, len(m.removeduser_configs))
		for id := range m.removeduser_configs {
			ids = append(ids, id)
		}
		return ids
	case enrollmentconfig.EdgeDomainConfigs:
		ids := make([]ent.Value, 0, len(m.removeddomain_configs))
		for id := range m.removeddomain_configs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EnrollmentConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedevent {
		edges = append(edges, enrollmentconfig.EdgeEvent)
	}
	if m.cleareduser_configs {
		edges = append(edges, enrollmentconfig.EdgeUserConfigs)
	}
	if m.cleareddomain_configs {
		edges = append(edges, enrollmentconfig.EdgeDomainConfigs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EnrollmentConfigMutation) EdgeCleared(name string) bool {
	switch name {
	case enrollmentconfig.EdgeEvent:
		return m.clearedevent
	case enrollmentconfig.EdgeUserConfigs:
		return m.cleareduser_configs
	case enrollmentconfig.EdgeDomainConfigs:
		return m.cleareddomain_configs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EnrollmentConfigMutation) ClearEdge(name string) error {
	switch name {
	case enrollmentconfig.EdgeEvent:
		m.ClearEvent()
		return nil
	}
	return fmt.Errorf("unknown EnrollmentConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EnrollmentConfigMutation) ResetEdge(name string) error {
	switch name {
	case enrollmentconfig.EdgeEvent:
		m.ResetEvent()
		return nil
	case enrollmentconfig.EdgeUserConfigs:
		m.ResetUserConfigs()
		return nil
	case enrollmentconfig.EdgeDomainConfigs:
		m.ResetDomainConfigs()
		return nil
	}
	return fmt.Errorf("unknown EnrollmentConfig edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int64
	created_at                *time.Time
	updated_at                *time.Time
	name                      *string
	slug                      *string
	start_time                *time.Time
	end_time                  *time.Time
	proposal_start_time       *time.Time
	proposal_end_time         *time.Time
	publication_time          *time.Time
	clearedFields             map[string]struct{}
	sphere                    *int64
	clearedsphere             bool
	spaces                    map[int64]struct{}
	removedspaces             map[int64]struct{}
	clearedspaces             bool
	sessions                  map[int64]struct{}
	removedsessions           map[int64]struct{}
	clearedsessions           bool
	enrollment_configs        map[int64]struct{}
	removedenrollment_configs map[int64]struct{}
	clearedenrollment_configs bool
	done                      bool
	oldValue                  func(context.Context) (*Event, error)
	predicates                []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int64) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSphereID sets the "sphere_id" field.
func (m *EventMutation) SetSphereID(i int64) {
	m.sphere = &i
}

// SphereID returns the value of the "sphere_id" field in the mutation.
func (m *EventMutation) SphereID() (r int64, exists bool) {
	v := m.sphere
	if v == nil {
		return
	}
	return *v, true
}

// OldSphereID returns the old "sphere_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSphereID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSphereID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSphereID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSphereID: %w", err)
	}
	return oldValue.SphereID, nil
}

// ResetSphereID resets all changes to the "sphere_id" field.
func (m *EventMutation) ResetSphereID() {
	m.sphere = nil
}

// SetName sets the "name" field.
func (m *EventMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EventMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EventMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *EventMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *EventMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *EventMutation) ResetSlug() {
	m.slug = nil
}

// SetStartTime sets the "start_time" field.
func (m *EventMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *EventMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *EventMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *EventMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *EventMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *EventMutation) ResetEndTime() {
	m.end_time = nil
}

// SetProposalStartTime sets the "proposal_start_time" field.
func (m *EventMutation) SetProposalStartTime(t time.Time) {
	m.proposal_start_time = &t
}

// ProposalStartTime returns the value of the "proposal_start_time" field in the mutation.
func (m *EventMutation) ProposalStartTime() (r time.Time, exists bool) {
	v := m.proposal_start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalStartTime returns the old "proposal_start_time" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldProposalStartTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalStartTime: %w", err)
	}
	return oldValue.ProposalStartTime, nil
}

// ClearProposalStartTime clears the value of the "proposal_start_time" field.
func (m *EventMutation) ClearProposalStartTime() {
	m.proposal_start_time = nil
	m.clearedFields[event.FieldProposalStartTime] = struct{}{}
}

// ProposalStartTimeCleared returns if the "proposal_start_time" field was cleared in this mutation.
func (m *EventMutation) ProposalStartTimeCleared() bool {
	_, ok := m.clearedFields[event.FieldProposalStartTime]
	return ok
}

// ResetProposalStartTime resets all changes to the "proposal_start_time" field.
func (m *EventMutation) ResetProposalStartTime() {
	m.proposal_start_time = nil
	delete(m.clearedFields, event.FieldProposalStartTime)
}

// SetProposalEndTime sets the "proposal_end_time" field.
func (m *EventMutation) SetProposalEndTime(t time.Time) {
	m.proposal_end_time = &t
}

// ProposalEndTime returns the value of the "proposal_end_time" field in the mutation.
func (m *EventMutation) ProposalEndTime() (r time.Time, exists bool) {
	v := m.proposal_end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalEndTime returns the old "proposal_end_time" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldProposalEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalEndTime: %w", err)
	}
	return oldValue.ProposalEndTime, nil
}

// ClearProposalEndTime clears the value of the "proposal_end_time" field.
func (m *EventMutation) ClearProposalEndTime() {
	m.proposal_end_time = nil
	m.clearedFields[event.FieldProposalEndTime] = struct{}{}
}

// ProposalEndTimeCleared returns if the "proposal_end_time" field was cleared in this mutation.
func (m *EventMutation) ProposalEndTimeCleared() bool {
	_, ok := m.clearedFields[event.FieldProposalEndTime]
	return ok
}

// ResetProposalEndTime resets all changes to the "proposal_end_time" field.
func (m *EventMutation) ResetProposalEndTime() {
	m.proposal_end_time = nil
	delete(m.clearedFields, event.FieldProposalEndTime)
}

// SetPublicationTime sets the "publication_time" field.
func (m *EventMutation) SetPublicationTime(t time.Time) {
	m.publication_time = &t
}

// PublicationTime returns the value of the "publication_time" field in the mutation.
func (m *EventMutation) PublicationTime() (r time.Time, exists bool) {
	v := m.publication_time
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicationTime returns the old "publication_time" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPublicationTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicationTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicationTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicationTime: %w", err)
	}
	return oldValue.PublicationTime, nil
}

// ClearPublicationTime clears the value of the "publication_time" field.
func (m *EventMutation) ClearPublicationTime() {
	m.publication_time = nil
	m.clearedFields[event.FieldPublicationTime] = struct{}{}
}

// PublicationTimeCleared returns if the "publication_time" field was cleared in this mutation.
func (m *EventMutation) PublicationTimeCleared() bool {
	_, ok := m.clearedFields[event.FieldPublicationTime]
	return ok
}

// ResetPublicationTime resets all changes to the "publication_time" field.
func (m *EventMutation) ResetPublicationTime() {
	m.publication_time = nil
	delete(m.clearedFields, event.FieldPublicationTime)
}

// ClearSphere clears the "sphere" edge to the Sphere entity.
func (m *EventMutation) ClearSphere() {
	m.clearedsphere = true
	m.clearedFields[event.FieldSphereID] = struct{}{}
}

// SphereCleared reports if the "sphere" edge to the Sphere entity was cleared.
func (m *EventMutation) SphereCleared() bool {
	return m.clearedsphere
}

// SphereIDs returns the "sphere" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SphereID instead. It exists only for internal usage by the builders.
func (m *EventMutation) SphereIDs() (ids []int64) {
	if id := m.sphere; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSphere resets all changes to the "sphere" edge.
func (m *EventMutation) ResetSphere() {
	m.sphere = nil
	m.clearedsphere = false
}

// AddSpaceIDs adds the "spaces" edge to the Space entity by ids.
func (m *EventMutation) AddSpaceIDs(ids ...int64) {
	if m.spaces == nil {
		m.spaces = make(map[int64]struct{})
	}
	for i := range ids {
		m.spaces[ids[i]] = struct{}{}
	}
}

// ClearSpaces clears the "spaces" edge to the Space entity.
func (m *EventMutation) ClearSpaces() {
	m.clearedspaces = true
}

// SpacesCleared reports if the "spaces" edge to the Space entity was cleared.
func (m *EventMutation) SpacesCleared() bool {
	return m.clearedspaces
}

// RemoveSpaceIDs removes the "spaces" edge to the Space entity by IDs.
func (m *EventMutation) RemoveSpaceIDs(ids ...int64) {
	if m.removedspaces == nil {
		m.removedspaces = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.spaces, ids[i])
		m.removedspaces[ids[i]] = struct{}{}
	}
}

// RemovedSpaces returns the removed IDs of the "spaces" edge to the Space entity.
func (m *EventMutation) RemovedSpacesIDs() (ids []int64) {
	for id := range m.removedspaces {
		ids = append(ids, id)
	}
	return
}

// SpacesIDs returns the "spaces" edge IDs in the mutation.
func (m *EventMutation) SpacesIDs() (ids []int64) {
	for id := range m.spaces {
		ids = append(ids, id)
	}
	return
}

// ResetSpaces resets all changes to the "spaces" edge.
func (m *EventMutation) ResetSpaces() {
	m.spaces = nil
	m.clearedspaces = false
	m.removedspaces = nil
}

// AddSessionIDs adds the "sessions" edge to the Session entity by ids.
func (m *EventMutation) AddSessionIDs(ids ...int64) {
	if m.sessions == nil {
		m.sessions = make(map[int64]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the Session entity.
func (m *EventMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the Session entity was cleared.
func (m *EventMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the Session entity by IDs.
func (m *EventMutation) RemoveSessionIDs(ids ...int64) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the Session entity.
func (m *EventMutation) RemovedSessionsIDs() (ids []int64) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *EventMutation) SessionsIDs() (ids []int64) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *EventMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddEnrollmentConfigIDs adds the "enrollment_configs" edge to the EnrollmentConfig entity by ids.
func (m *EventMutation) AddEnrollmentConfigIDs(ids ...int64) {
	if m.enrollment_configs == nil {
		m.enrollment_configs = make(map[int64]struct{})
	}
	for i := range ids {
		m.enrollment_configs[ids[i]] = struct{}{}
	}
}

// ClearEnrollmentConfigs clears the "enrollment_configs" edge to the EnrollmentConfig entity.
func (m *EventMutation) ClearEnrollmentConfigs() {
	m.clearedenrollment_configs = true
}

// EnrollmentConfigsCleared reports if the "enrollment_configs" edge to the EnrollmentConfig entity was cleared.
func (m *EventMutation) EnrollmentConfigsCleared() bool {
	return m.clearedenrollment_configs
}

// RemoveEnrollmentConfigIDs removes the "enrollment_configs" edge to the EnrollmentConfig entity by IDs.
func (m *EventMutation) RemoveEnrollmentConfigIDs(ids ...int64) {
	if m.removedenrollment_configs == nil {
		m.removedenrollment_configs = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.enrollment_configs, ids[i])
		m.removedenrollment_configs[ids[i]] = struct{}{}
	}
}

// RemovedEnrollmentConfigs returns the removed IDs of the "enrollment_configs" edge to the EnrollmentConfig entity.
func (m *EventMutation) RemovedEnrollmentConfigsIDs() (ids []int64) {
	for id := range m.removedenrollment_configs {
		ids = append(ids, id)
	}
	return
}

// EnrollmentConfigsIDs returns the "enrollment_configs" edge IDs in the mutation.
func (m *EventMutation) EnrollmentConfigsIDs() (ids []int64) {
	for id := range m.enrollment_configs {
		ids = append(ids, id)
	}
	return
}

// ResetEnrollmentConfigs resets all changes to the "enrollment_configs" edge.
func (m *EventMutation) ResetEnrollmentConfigs() {
	m.enrollment_configs = nil
	m.clearedenrollment_configs = false
	m.removedenrollment_configs = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, event.FieldUpdatedAt)
	}
	if m.sphere != nil {
		fields = append(fields, event.FieldSphereID)
	}
	if m.name != nil {
		fields = append(fields, event.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, event.FieldSlug)
	}
	if m.start_time != nil {
		fields = append(fields, event.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, event.FieldEndTime)
	}
	if m.proposal_start_time != nil {
		fields = append(fields, event.FieldProposalStartTime)
	}
	if m.proposal_end_time != nil {
		fields = append(fields, event.FieldProposalEndTime)
	}
	if m.publication_time != nil {
		fields = append(fields, event.FieldPublicationTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldCreatedAt:
		return m.CreatedAt()
	case event.FieldUpdatedAt:
		return m.UpdatedAt()
	case event.FieldSphereID:
		return m.SphereID()
	case event.FieldName:
		return m.Name()
	case event.FieldSlug:
		return m.Slug()
	case event.FieldStartTime:
		return m.StartTime()
	case event.FieldEndTime:
		return m.EndTime()
	case event.FieldProposalStartTime:
		return m.ProposalStartTime()
	case event.FieldProposalEndTime:
		return m.ProposalEndTime()
	case event.FieldPublicationTime:
		return m.PublicationTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case event.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case event.FieldSphereID:
		return m.OldSphereID(ctx)
	case event.FieldName:
		return m.OldName(ctx)
	case event.FieldSlug:
		return m.OldSlug(ctx)
	case event.FieldStartTime:
		return m.OldStartTime(ctx)
	case event.FieldEndTime:
		return m.OldEndTime(ctx)
	case event.FieldProposalStartTime:
		return m.OldProposalStartTime(ctx)
	case event.FieldProposalEndTime:
		return m.OldProposalEndTime(ctx)
	case event.FieldPublicationTime:
		return m.OldPublicationTime(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case event.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case event.FieldSphereID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSphereID(v)
		return nil
	case event.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case event.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case event.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case event.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case event.FieldProposalStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalStartTime(v)
		return nil
	case event.FieldProposalEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalEndTime(v)
		return nil
	case event.FieldPublicationTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicationTime(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldProposalStartTime) {
		fields = append(fields, event.FieldProposalStartTime)
	}
	if m.FieldCleared(event.FieldProposalEndTime) {
		fields = append(fields, event.FieldProposalEndTime)
	}
	if m.FieldCleared(event.FieldPublicationTime) {
		fields = append(fields, event.FieldPublicationTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldProposalStartTime:
		m.ClearProposalStartTime()
		return nil
	case event.FieldProposalEndTime:
		m.ClearProposalEndTime()
		return nil
	case event.FieldPublicationTime:
		m.ClearPublicationTime()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case event.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case event.FieldSphereID:
		m.ResetSphereID()
		return nil
	case event.FieldName:
		m.ResetName()
		return nil
	case event.FieldSlug:
		m.ResetSlug()
		return nil
	case event.FieldStartTime:
		m.ResetStartTime()
		return nil
	case event.FieldEndTime:
		m.ResetEndTime()
		return nil
	case event.FieldProposalStartTime:
		m.ResetProposalStartTime()
		return nil
	case event.FieldProposalEndTime:
		m.ResetProposalEndTime()
		return nil
	case event.FieldPublicationTime:
		m.ResetPublicationTime()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.sphere != nil {
		edges = append(edges, event.EdgeSphere)
	}
	if m.spaces != nil {
		edges = append(edges, event.EdgeSpaces)
	}
	if m.sessions != nil {
		edges = append(edges, event.EdgeSessions)
	}
	if m.enrollment_configs != nil {
		edges = append(edges, event.EdgeEnrollmentConfigs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeSphere:
		if id := m.sphere; id != nil {
			return []ent.Value{*id}
		}
	case event.EdgeSpaces:
		ids := make([]ent.Value, 0, len(m.spaces))
		for id := range m.spaces {
			ids = append(ids, id)
		}
		return ids
	case event.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case event.EdgeEnrollmentConfigs:
		ids := make([]ent.Value, 0, len(m.enrollment_configs))
		for id := range m.enrollment_configs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedspaces != nil {
		edges = append(edges, event.EdgeSpaces)
	}
	if m.removedsessions != nil {
		edges = append(edges, event.EdgeSessions)
	}
	if m.removedenrollment_configs != nil {
		edges = append(edges, event.EdgeEnrollmentConfigs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeSpaces:
		ids := make([]ent.Value, 0, len(m.removedspaces))
		for id := range m.removedspaces {
			ids = append(ids, id)
		}
		return ids
	case event.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case event.EdgeEnrollmentConfigs:
		ids := make([]ent.Value, 0, len(m.removedenrollment_configs))
		for id := range m.removedenrollment_configs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedsphere {
		edges = append(edges, event.EdgeSphere)
	}
	if m.clearedspaces {
		edges = append(edges, event.EdgeSpaces)
	}
	if m.clearedsessions {
		edges = append(edges, event.EdgeSessions)
	}
	if m.clearedenrollment_configs {
		edges = append(edges, event.EdgeEnrollmentConfigs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeSphere:
		return m.clearedsphere
	case event.EdgeSpaces:
		return m.clearedspaces
	case event.EdgeSessions:
		return m.clearedsessions
	case event.EdgeEnrollmentConfigs:
		return m.clearedenrollment_configs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeSphere:
		m.ClearSphere()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeSphere:
		m.ResetSphere()
		return nil
	case event.EdgeSpaces:
		m.ResetSpaces()
		return nil
	case event.EdgeSessions:
		m.ResetSessions()
		return nil
	case event.EdgeEnrollmentConfigs:
		m.ResetEnrollmentConfigs()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	_type         *notification.Type
	title         *string
	message       *string
	resource_type *string
	resource_id   *string
	read          *bool
	read_at       *time.Time
	clearedFields map[string]struct{}
	user          *int64
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*Notification, error)
	predicates    []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id string) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRecipientID sets the "recipient_id" field.
func (m *NotificationMutation) SetRecipientID(i int64) {
	m.user = &i
}

// RecipientID returns the value of the "recipient_id" field in the mutation.
func (m *NotificationMutation) RecipientID() (r int64, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientID returns the old "recipient_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRecipientID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientID: %w", err)
	}
	return oldValue.RecipientID, nil
}

// ResetRecipientID resets all changes to the "recipient_id" field.
func (m *NotificationMutation) ResetRecipientID() {
	m.user = nil
}

// SetType sets the "type" field.
func (m *NotificationMutation) SetType(n notification.Type) {
	m._type = &n
}

// GetType returns the value of the "type" field in the mutation.
func (m *NotificationMutation) GetType() (r notification.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldType(ctx context.Context) (v notification.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *NotificationMutation) ResetType() {
	m._type = nil
}

// SetTitle sets the "title" field.
func (m *NotificationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NotificationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NotificationMutation) ResetTitle() {
	m.title = nil
}

// SetMessage sets the "message" field.
func (m *NotificationMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *NotificationMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *NotificationMutation) ResetMessage() {
	m.message = nil
}

// SetResourceType sets the "resource_type" field.
func (m *NotificationMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *NotificationMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ClearResourceType clears the value of the "resource_type" field.
func (m *NotificationMutation) ClearResourceType() {
	m.resource_type = nil
	m.clearedFields[notification.FieldResourceType] = struct{}{}
}

// ResourceTypeCleared returns if the "resource_type" field was cleared in this mutation.
func (m *NotificationMutation) ResourceTypeCleared() bool {
	_, ok := m.clearedFields[notification.FieldResourceType]
	return ok
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *NotificationMutation) ResetResourceType() {
	m.resource_type = nil
	delete(m.clearedFields, notification.FieldResourceType)
}

// SetResourceID sets the "resource_id" field.
func (m *NotificationMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *NotificationMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ClearResourceID clears the value of the "resource_id" field.
func (m *NotificationMutation) ClearResourceID() {
	m.resource_id = nil
	m.clearedFields[notification.FieldResourceID] = struct{}{}
}

// ResourceIDCleared returns if the "resource_id" field was cleared in this mutation.
func (m *NotificationMutation) ResourceIDCleared() bool {
	_, ok := m.clearedFields[notification.FieldResourceID]
	return ok
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *NotificationMutation) ResetResourceID() {
	m.resource_id = nil
	delete(m.clearedFields, notification.FieldResourceID)
}

// SetRead sets the "read" field.
func (m *NotificationMutation) SetRead(b bool) {
	m.read = &b
}

// Read returns the value of the "read" field in the mutation.
func (m *NotificationMutation) Read() (r bool, exists bool) {
	v := m.read
	if v == nil {
		return
	}
	return *v, true
}

// OldRead returns the old "read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRead: %w", err)
	}
	return oldValue.Read, nil
}

// ResetRead resets all changes to the "read" field.
func (m *NotificationMutation) ResetRead() {
	m.read = nil
}

// SetReadAt sets the "read_at" field.
func (m *NotificationMutation) SetReadAt(t time.Time) {
	m.read_at = &t
}

// ReadAt returns the value of the "read_at" field in the mutation.
func (m *NotificationMutation) ReadAt() (r time.Time, exists bool) {
	v := m.read_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReadAt returns the old "read_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldReadAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadAt: %w", err)
	}
	return oldValue.ReadAt, nil
}

// ClearReadAt clears the value of the "read_at" field.
func (m *NotificationMutation) ClearReadAt() {
	m.read_at = nil
	m.clearedFields[notification.FieldReadAt] = struct{}{}
}

// ReadAtCleared returns if the "read_at" field was cleared in this mutation.
func (m *NotificationMutation) ReadAtCleared() bool {
	_, ok := m.clearedFields[notification.FieldReadAt]
	return ok
}

// ResetReadAt resets all changes to the "read_at" field.
func (m *NotificationMutation) ResetReadAt() {
	m.read_at = nil
	delete(m.clearedFields, notification.FieldReadAt)
}

// SetUserID sets the "user" edge to the User entity by id.
func (m *NotificationMutation) SetUserID(id int64) {
	m.user = &id
}

// ClearUser clears the "user" edge to the User entity.
func (m *NotificationMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[notification.FieldRecipientID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *NotificationMutation) UserCleared() bool {
	return m.cleareduser
}

// UserID returns the "user" edge ID in the mutation.
func (m *NotificationMutation) UserID() (id int64, exists bool) {
	if m.user != nil {
		return *m.user, true
	}
	return
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *NotificationMutation) UserIDs() (ids []int64) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *NotificationMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	if m.user != nil {
		fields = append(fields, notification.FieldRecipientID)
	}
	if m._type != nil {
		fields = append(fields, notification.FieldType)
	}
	if m.title != nil {
		fields = append(fields, notification.FieldTitle)
	}
	if m.message != nil {
		fields = append(fields, notification.FieldMessage)
	}
	if m.resource_type != nil {
		fields = append(fields, notification.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, notification.FieldResourceID)
	}
	if m.read != nil {
		fields = append(fields, notification.FieldRead)
	}
	if m.read_at != nil {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	case notification.FieldRecipientID:
		return m.RecipientID()
	case notification.FieldType:
		return m.GetType()
	case notification.FieldTitle:
		return m.Title()
	case notification.FieldMessage:
		return m.Message()
	case notification.FieldResourceType:
		return m.ResourceType()
	case notification.FieldResourceID:
		return m.ResourceID()
	case notification.FieldRead:
		return m.Read()
	case notification.FieldReadAt:
		return m.ReadAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notification.FieldRecipientID:
		return m.OldRecipientID(ctx)
	case notification.FieldType:
		return m.OldType(ctx)
	case notification.FieldTitle:
		return m.OldTitle(ctx)
	case notification.FieldMessage:
		return m.OldMessage(ctx)
	case notification.FieldResourceType:
		return m.OldResourceType(ctx)
	case notification.FieldResourceID:
		return m.OldResourceID(ctx)
	case notification.FieldRead:
		return m.OldRead(ctx)
	case notification.FieldReadAt:
		return m.OldReadAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notification.FieldRecipientID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientID(v)
		return nil
	case notification.FieldType:
		v, ok := value.(notification.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case notification.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case notification.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case notification.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case notification.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case notification.FieldRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRead(v)
		return nil
	case notification.FieldReadAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldResourceType) {
		fields = append(fields, notification.FieldResourceType)
	}
	if m.FieldCleared(notification.FieldResourceID) {
		fields = append(fields, notification.FieldResourceID)
	}
	if m.FieldCleared(notification.FieldReadAt) {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldResourceType:
		m.ClearResourceType()
		return nil
	case notification.FieldResourceID:
		m.ClearResourceID()
		return nil
	case notification.FieldReadAt:
		m.ClearReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notification.FieldRecipientID:
		m.ResetRecipientID()
		return nil
	case notification.FieldType:
		m.ResetType()
		return nil
	case notification.FieldTitle:
		m.ResetTitle()
		return nil
	case notification.FieldMessage:
		m.ResetMessage()
		return nil
	case notification.FieldResourceType:
		m.ResetResourceType()
		return nil
	case notification.FieldResourceID:
		m.ResetResourceID()
		return nil
	case notification.FieldRead:
		m.ResetRead()
		return nil
	case notification.FieldReadAt:
		m.ResetReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, notification.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case notification.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, notification.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	switch name {
	case notification.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	switch name {
	case notification.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	switch name {
	case notification.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Notification edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int64
	created_at            *time.Time
	updated_at            *time.Time
	title                 *string
	slug                  *string
	participants_limit    *int
	addparticipants_limit *int
	min_age               *int
	addmin_age            *int
	requirements          *string
	presenter_name        *string
	clearedFields         map[string]struct{}
	event                 *int64
	clearedevent          bool
	host                  *int64
	clearedhost           bool
	agenda_item           *int64
	clearedagenda_item    bool
	participations        map[int64]struct{}
	removedparticipations map[int64]struct{}
	clearedparticipations bool
	done                  bool
	oldValue              func(context.Context) (*Session, error)
	predicates            []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id int64) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEventID sets the "event_id" field.
func (m *SessionMutation) SetEventID(i int64) {
	m.event = &i
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *SessionMutation) EventID() (r int64, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldEventID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *SessionMutation) ResetEventID() {
	m.event = nil
}

// SetHostID sets the "host_id" field.
func (m *SessionMutation) SetHostID(i int64) {
	m.host = &i
}

// HostID returns the value of the "host_id" field in the mutation.
func (m *SessionMutation) HostID() (r int64, exists bool) {
	v := m.host
	if v == nil {
		return
	}
	return *v, true
}

// OldHostID returns the old "host_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldHostID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHostID: %w", err)
	}
	return oldValue.HostID, nil
}

// ClearHostID clears the value of the "host_id" field.
func (m *SessionMutation) ClearHostID() {
	m.host = nil
	m.clearedFields[session.FieldHostID] = struct{}{}
}

// HostIDCleared returns if the "host_id" field was cleared in this mutation.
func (m *SessionMutation) HostIDCleared() bool {
	_, ok := m.clearedFields[session.FieldHostID]
	return ok
}

// ResetHostID resets all changes to the "host_id" field.
func (m *SessionMutation) ResetHostID() {
	m.host = nil
	delete(m.clearedFields, session.FieldHostID)
}

// SetTitle sets the "title" field.
func (m *SessionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SessionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SessionMutation) ResetTitle() {
	m.title = nil
}

// SetSlug sets the "slug" field.
func (m *SessionMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *SessionMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *SessionMutation) ResetSlug() {
	m.slug = nil
}

// SetParticipantsLimit sets the "participants_limit" field.
func (m *SessionMutation) SetParticipantsLimit(i int) {
	m.participants_limit = &i
	m.addparticipants_limit = nil
}

// ParticipantsLimit returns the value of the "participants_limit" field in the mutation.
func (m *SessionMutation) ParticipantsLimit() (r int, exists bool) {
	v := m.participants_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantsLimit returns the old "participants_limit" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldParticipantsLimit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantsLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantsLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantsLimit: %w", err)
	}
	return oldValue.ParticipantsLimit, nil
}

// AddParticipantsLimit adds i to the "participants_limit" field.
func (m *SessionMutation) AddParticipantsLimit(i int) {
	if m.addparticipants_limit != nil {
		*m.addparticipants_limit += i
	} else {
		m.addparticipants_limit = &i
	}
}

// AddedParticipantsLimit returns the value that was added to the "participants_limit" field in this mutation.
func (m *SessionMutation) AddedParticipantsLimit() (r int, exists bool) {
	v := m.addparticipants_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetParticipantsLimit resets all changes to the "participants_limit" field.
func (m *SessionMutation) ResetParticipantsLimit() {
	m.participants_limit = nil
	m.addparticipants_limit = nil
}

// SetMinAge sets the "min_age" field.
func (m *SessionMutation) SetMinAge(i int) {
	m.min_age = &i
	m.addmin_age = nil
}

// MinAge returns the value of the "min_age" field in the mutation.
func (m *SessionMutation) MinAge() (r int, exists bool) {
	v := m.min_age
	if v == nil {
		return
	}
	return *v, true
}

// OldMinAge returns the old "min_age" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldMinAge(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinAge: %w", err)
	}
	return oldValue.MinAge, nil
}

// AddMinAge adds i to the "min_age" field.
func (m *SessionMutation) AddMinAge(i int) {
	if m.addmin_age != nil {
		*m.addmin_age += i
	} else {
		m.addmin_age = &i
	}
}

// AddedMinAge returns the value that was added to the "min_age" field in this mutation.
func (m *SessionMutation) AddedMinAge() (r int, exists bool) {
	v := m.addmin_age
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinAge resets all changes to the "min_age" field.
func (m *SessionMutation) ResetMinAge() {
	m.min_age = nil
	m.addmin_age = nil
}

// SetRequirements sets the "requirements" field.
func (m *SessionMutation) SetRequirements(s string) {
	m.requirements = &s
}

// Requirements returns the value of the "requirements" field in the mutation.
func (m *SessionMutation) Requirements() (r string, exists bool) {
	v := m.requirements
	if v == nil {
		return
	}
	return *v, true
}

// OldRequirements returns the old "requirements" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldRequirements(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequirements is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequirements requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequirements: %w", err)
	}
	return oldValue.Requirements, nil
}

// ClearRequirements clears the value of the "requirements" field.
func (m *SessionMutation) ClearRequirements() {
	m.requirements = nil
	m.clearedFields[session.FieldRequirements] = struct{}{}
}

// RequirementsCleared returns if the "requirements" field was cleared in this mutation.
func (m *SessionMutation) RequirementsCleared() bool {
	_, ok := m.clearedFields[session.FieldRequirements]
	return ok
}

// ResetRequirements resets all changes to the "requirements" field.
func (m *SessionMutation) ResetRequirements() {
	m.requirements = nil
	delete(m.clearedFields, session.FieldRequirements)
}

// SetPresenterName sets the "presenter_name" field.
func (m *SessionMutation) SetPresenterName(s string) {
	m.presenter_name = &s
}

// PresenterName returns the value of the "presenter_name" field in the mutation.
func (m *SessionMutation) PresenterName() (r string, exists bool) {
	v := m.presenter_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPresenterName returns the old "presenter_name" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPresenterName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPresenterName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPresenterName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPresenterName: %w", err)
	}
	return oldValue.PresenterName, nil
}

// ClearPresenterName clears the value of the "presenter_name" field.
func (m *SessionMutation) ClearPresenterName() {
	m.presenter_name = nil
	m.clearedFields[session.FieldPresenterName] = struct{}{}
}

// PresenterNameCleared returns if the "presenter_name" field was cleared in this mutation.
func (m *SessionMutation) PresenterNameCleared() bool {
	_, ok := m.clearedFields[session.FieldPresenterName]
	return ok
}

// ResetPresenterName resets all changes to the "presenter_name" field.
func (m *SessionMutation) ResetPresenterName() {
	m.presenter_name = nil
	delete(m.clearedFields, session.FieldPresenterName)
}

// ClearEvent clears the "event" edge to the Event entity.
func (m *SessionMutation) ClearEvent() {
	m.clearedevent = true
	m.clearedFields[session.FieldEventID] = struct{}{}
}

// EventCleared reports if the "event" edge to the Event entity was cleared.
func (m *SessionMutation) EventCleared() bool {
	return m.clearedevent
}

// EventIDs returns the "event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) EventIDs() (ids []int64) {
	if id := m.event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvent resets all changes to the "event" edge.
func (m *SessionMutation) ResetEvent() {
	m.event = nil
	m.clearedevent = false
}

// ClearHost clears the "host" edge to the User entity.
func (m *SessionMutation) ClearHost() {
	m.clearedhost = true
	m.clearedFields[session.FieldHostID] = struct{}{}
}

// HostCleared reports if the "host" edge to the User entity was cleared.
func (m *SessionMutation) HostCleared() bool {
	return m.HostIDCleared() || m.clearedhost
}

// HostIDs returns the "host" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HostID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) HostIDs() (ids []int64) {
	if id := m.host; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHost resets all changes to the "host" edge.
func (m *SessionMutation) ResetHost() {
	m.host = nil
	m.clearedhost = false
}

// SetAgendaItemID sets the "agenda_item" edge to the AgendaItem entity by id.
func (m *SessionMutation) SetAgendaItemID(id int64) {
	m.agenda_item = &id
}

// ClearAgendaItem clears the "agenda_item" edge to the AgendaItem entity.
func (m *SessionMutation) ClearAgendaItem() {
	m.clearedagenda_item = true
}

// AgendaItemCleared reports if the "agenda_item" edge to the AgendaItem entity was cleared.
func (m *SessionMutation) AgendaItemCleared() bool {
	return m.clearedagenda_item
}

// AgendaItemID returns the "agenda_item" edge ID in the mutation.
func (m *SessionMutation) AgendaItemID() (id int64, exists bool) {
	if m.agenda_item != nil {
		return *m.agenda_item, true
	}
	return
}

// AgendaItemIDs returns the "agenda_item" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgendaItemID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) AgendaItemIDs() (ids []int64) {
	if id := m.agenda_item; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgendaItem resets all changes to the "agenda_item" edge.
func (m *SessionMutation) ResetAgendaItem() {
	m.agenda_item = nil
	m.clearedagenda_item = false
}

// AddParticipationIDs adds the "participations" edge to the SessionParticipation entity by ids.
func (m *SessionMutation) AddParticipationIDs(ids ...int64) {
	if m.participations == nil {
		m.participations = make(map[int64]struct{})
	}
	for i := range ids {
		m.participations[ids[i]] = struct{}{}
	}
}

// ClearParticipations clears the "participations" edge to the SessionParticipation entity.
func (m *SessionMutation) ClearParticipations() {
	m.clearedparticipations = true
}

// ParticipationsCleared reports if the "participations" edge to the SessionParticipation entity was cleared.
func (m *SessionMutation) ParticipationsCleared() bool {
	return m.clearedparticipations
}

// RemoveParticipationIDs removes the "participations" edge to the SessionParticipation entity by IDs.
func (m *SessionMutation) RemoveParticipationIDs(ids ...int64) {
	if m.removedparticipations == nil {
		m.removedparticipations = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.participations, ids[i])
		m.removedparticipations[ids[i]] = struct{}{}
	}
}

// RemovedParticipations returns the removed IDs of the "participations" edge to the SessionParticipation entity.
func (m *SessionMutation) RemovedParticipationsIDs() (ids []int64) {
	for id := range m.removedparticipations {
		ids = append(ids, id)
	}
	return
}

// ParticipationsIDs returns the "participations" edge IDs in the mutation.
func (m *SessionMutation) ParticipationsIDs() (ids []int64) {
	for id := range m.participations {
		ids = append(ids, id)
	}
	return
}

// ResetParticipations resets all changes to the "participations" edge.
func (m *SessionMutation) ResetParticipations() {
	m.participations = nil
	m.clearedparticipations = false
	m.removedparticipations = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, session.FieldUpdatedAt)
	}
	if m.event != nil {
		fields = append(fields, session.FieldEventID)
	}
	if m.host != nil {
		fields = append(fields, session.FieldHostID)
	}
	if m.title != nil {
		fields = append(fields, session.FieldTitle)
	}
	if m.slug != nil {
		fields = append(fields, session.FieldSlug)
	}
	if m.participants_limit != nil {
		fields = append(fields, session.FieldParticipantsLimit)
	}
	if m.min_age != nil {
		fields = append(fields, session.FieldMinAge)
	}
	if m.requirements != nil {
		fields = append(fields, session.FieldRequirements)
	}
	if m.presenter_name != nil {
		fields = append(fields, session.FieldPresenterName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldUpdatedAt:
		return m.UpdatedAt()
	case session.FieldEventID:
		return m.EventID()
	case session.FieldHostID:
		return m.HostID()
	case session.FieldTitle:
		return m.Title()
	case session.FieldSlug:
		return m.Slug()
	case session.FieldParticipantsLimit:
		return m.ParticipantsLimit()
	case session.FieldMinAge:
		return m.MinAge()
	case session.FieldRequirements:
		return m.Requirements()
	case session.FieldPresenterName:
		return m.PresenterName()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case session.FieldEventID:
		return m.OldEventID(ctx)
	case session.FieldHostID:
		return m.OldHostID(ctx)
	case session.FieldTitle:
		return m.OldTitle(ctx)
	case session.FieldSlug:
		return m.OldSlug(ctx)
	case session.FieldParticipantsLimit:
		return m.OldParticipantsLimit(ctx)
	case session.FieldMinAge:
		return m.OldMinAge(ctx)
	case session.FieldRequirements:
		return m.OldRequirements(ctx)
	case session.FieldPresenterName:
		return m.OldPresenterName(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case session.FieldEventID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case session.FieldHostID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHostID(v)
		return nil
	case session.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case session.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case session.FieldParticipantsLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantsLimit(v)
		return nil
	case session.FieldMinAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinAge(v)
		return nil
	case session.FieldRequirements:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequirements(v)
		return nil
	case session.FieldPresenterName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPresenterName(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addparticipants_limit != nil {
		fields = append(fields, session.FieldParticipantsLimit)
	}
	if m.addmin_age != nil {
		fields = append(fields, session.FieldMinAge)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldParticipantsLimit:
		return m.AddedParticipantsLimit()
	case session.FieldMinAge:
		return m.AddedMinAge()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldParticipantsLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParticipantsLimit(v)
		return nil
	case session.FieldMinAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinAge(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldHostID) {
		fields = append(fields, session.FieldHostID)
	}
	if m.FieldCleared(session.FieldRequirements) {
		fields = append(fields, session.FieldRequirements)
	}
	if m.FieldCleared(session.FieldPresenterName) {
		fields = append(fields, session.FieldPresenterName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldHostID:
		m.ClearHostID()
		return nil
	case session.FieldRequirements:
		m.ClearRequirements()
		return nil
	case session.FieldPresenterName:
		m.ClearPresenterName()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case session.FieldEventID:
		m.ResetEventID()
		return nil
	case session.FieldHostID:
		m.ResetHostID()
		return nil
	case session.FieldTitle:
		m.ResetTitle()
		return nil
	case session.FieldSlug:
		m.ResetSlug()
		return nil
	case session.FieldParticipantsLimit:
		m.ResetParticipantsLimit()
		return nil
	case session.FieldMinAge:
		m.ResetMinAge()
		return nil
	case session.FieldRequirements:
		m.ResetRequirements()
		return nil
	case session.FieldPresenterName:
		m.ResetPresenterName()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.event != nil {
		edges = append(edges, session.EdgeEvent)
	}
	if m.host != nil {
		edges = append(edges, session.EdgeHost)
	}
	if m.agenda_item != nil {
		edges = append(edges, session.EdgeAgendaItem)
	}
	if m.participations != nil {
		edges = append(edges, session.EdgeParticipations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeEvent:
		if id := m.event; id != nil {
			return []ent.Value{*id}
		}
	case session.EdgeHost:
		if id := m.host; id != nil {
			return []ent.Value{*id}
		}
	case session.EdgeAgendaItem:
		if id := m.agenda_item; id != nil {
			return []ent.Value{*id}
		}
	case session.EdgeParticipations:
		ids := make([]ent.Value, 0, len(m.participations))
		for id := range m.participations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedparticipations != nil {
		edges = append(edges, session.EdgeParticipations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeParticipations:
		ids := make([]ent.Value, 0, len(m.removedparticipations))
		for id := range m.removedparticipations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedevent {
		edges = append(edges, session.EdgeEvent)
	}
	if m.clearedhost {
		edges = append(edges, session.EdgeHost)
	}
	if m.clearedagenda_item {
		edges = append(edges, session.EdgeAgendaItem)
	}
	if m.clearedparticipations {
		edges = append(edges, session.EdgeParticipations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeEvent:
		return m.clearedevent
	case session.EdgeHost:
		return m.clearedhost
	case session.EdgeAgendaItem:
		return m.clearedagenda_item
	case session.EdgeParticipations:
		return m.clearedparticipations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	case session.EdgeEvent:
		m.ClearEvent()
		return nil
	case session.EdgeHost:
		m.ClearHost()
		return nil
	case session.EdgeAgendaItem:
		m.ClearAgendaItem()
		return nil
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeEvent:
		m.ResetEvent()
		return nil
	case session.EdgeHost:
		m.ResetHost()
		return nil
	case session.EdgeAgendaItem:
		m.ResetAgendaItem()
		return nil
	case session.EdgeParticipations:
		m.ResetParticipations()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// SessionParticipationMutation represents an operation that mutates the SessionParticipation nodes in the graph.
type SessionParticipationMutation struct {
	config
	op                 Op
	typ                string
	id                 *int64
	created_at         *time.Time
	updated_at         *time.Time
	status             *string
	clearedFields      map[string]struct{}
	session            *int64
	clearedsession     bool
	user               *int64
	cleareduser        bool
	enrolled_by        *int64
	clearedenrolled_by bool
	done               bool
	oldValue           func(context.Context) (*SessionParticipation, error)
	predicates         []predicate.SessionParticipation
}

var _ ent.Mutation = (*SessionParticipationMutation)(nil)

// sessionparticipationOption allows management of the mutation configuration using functional options.
type sessionparticipationOption func(*SessionParticipationMutation)

// newSessionParticipationMutation creates new mutation for the SessionParticipation entity.
func newSessionParticipationMutation(c config, op Op, opts ...sessionparticipationOption) *SessionParticipationMutation {
	m := &SessionParticipationMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionParticipation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionParticipationID sets the ID field of the mutation.
func withSessionParticipationID(id int64) sessionparticipationOption {
	return func(m *SessionParticipationMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionParticipation
		)
		m.oldValue = func(ctx context.Context) (*SessionParticipation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionParticipation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionParticipation sets the old SessionParticipation of the mutation.
func withSessionParticipation(node *SessionParticipation) sessionparticipationOption {
	return func(m *SessionParticipationMutation) {
		m.oldValue = func(context.Context) (*SessionParticipation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionParticipationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionParticipationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionParticipation entities.
func (m *SessionParticipationMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionParticipationMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionParticipationMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionParticipation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionParticipationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionParticipationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SessionParticipation entity.
// If the SessionParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionParticipationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionParticipationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionParticipationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionParticipationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SessionParticipation entity.
// If the SessionParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionParticipationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionParticipationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionParticipationMutation) SetSessionID(i int64) {
	m.session = &i
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionParticipationMutation) SessionID() (r int64, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionParticipation entity.
// If the SessionParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionParticipationMutation) OldSessionID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionParticipationMutation) ResetSessionID() {
	m.session = nil
}

// SetUserID sets the "user_id" field.
func (m *SessionParticipationMutation) SetUserID(i int64) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionParticipationMutation) UserID() (r int64, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SessionParticipation entity.
// If the SessionParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionParticipationMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionParticipationMutation) ResetUserID() {
	m.user = nil
}

// SetEnrolledByID sets the "enrolled_by_id" field.
func (m *SessionParticipationMutation) SetEnrolledByID(i int64) {
	m.enrolled_by = &i
}

// EnrolledByID returns the value of the "enrolled_by_id" field in the mutation.
func (m *SessionParticipationMutation) EnrolledByID() (r int64, exists bool) {
	v := m.enrolled_by
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrolledByID returns the old "enrolled_by_id" field's value of the SessionParticipation entity.
// If the SessionParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionParticipationMutation) OldEnrolledByID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrolledByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrolledByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrolledByID: %w", err)
	}
	return oldValue.EnrolledByID, nil
}

// ResetEnrolledByID resets all changes to the "enrolled_by_id" field.
func (m *SessionParticipationMutation) ResetEnrolledByID() {
	m.enrolled_by = nil
}

// SetStatus sets the "status" field.
func (m *SessionParticipationMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionParticipationMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SessionParticipation entity.
// If the SessionParticipation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionParticipationMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionParticipationMutation) ResetStatus() {
	m.status = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *SessionParticipationMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[sessionparticipation.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *SessionParticipationMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SessionParticipationMutation) SessionIDs() (ids []int64) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SessionParticipationMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearUser clears the "user" edge to the User entity.
func (m *SessionParticipationMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[sessionparticipation.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *SessionParticipationMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *SessionParticipationMutation) UserIDs() (ids []int64) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *SessionParticipationMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// ClearEnrolledBy clears the "enrolled_by" edge to the User entity.
func (m *SessionParticipationMutation) ClearEnrolledBy() {
	m.clearedenrolled_by = true
	m.clearedFields[sessionparticipation.FieldEnrolledByID] = struct{}{}
}

// EnrolledByCleared reports if the "enrolled_by" edge to the User entity was cleared.
func (m *SessionParticipationMutation) EnrolledByCleared() bool {
	return m.clearedenrolled_by
}

// EnrolledByIDs returns the "enrolled_by" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EnrolledByID instead. It exists only for internal usage by the builders.
func (m *SessionParticipationMutation) EnrolledByIDs() (ids []int64) {
	if id := m.enrolled_by; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEnrolledBy resets all changes to the "enrolled_by" edge.
func (m *SessionParticipationMutation) ResetEnrolledBy() {
	m.enrolled_by = nil
	m.clearedenrolled_by = false
}

// Where appends a list predicates to the SessionParticipationMutation builder.
func (m *SessionParticipationMutation) Where(ps ...predicate.SessionParticipation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionParticipationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionParticipationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionParticipation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionParticipationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionParticipationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionParticipation).
func (m *SessionParticipationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionParticipationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, sessionparticipation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sessionparticipation.FieldUpdatedAt)
	}
	if m.session != nil {
		fields = append(fields, sessionparticipation.FieldSessionID)
	}
	if m.user != nil {
		fields = append(fields, sessionparticipation.FieldUserID)
	}
	if m.enrolled_by != nil {
		fields = append(fields, sessionparticipation.FieldEnrolledByID)
	}
	if m.status != nil {
		fields = append(fields, sessionparticipation.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionParticipationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionparticipation.FieldCreatedAt:
		return m.CreatedAt()
	case sessionparticipation.FieldUpdatedAt:
		return m.UpdatedAt()
	case sessionparticipation.FieldSessionID:
		return m.SessionID()
	case sessionparticipation.FieldUserID:
		return m.UserID()
	case sessionparticipation.FieldEnrolledByID:
		return m.EnrolledByID()
	case sessionparticipation.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionParticipationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionparticipation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sessionparticipation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case sessionparticipation.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionparticipation.FieldUserID:
		return m.OldUserID(ctx)
	case sessionparticipation.FieldEnrolledByID:
		return m.OldEnrolledByID(ctx)
	case sessionparticipation.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown SessionParticipation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionParticipationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionparticipation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sessionparticipation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case sessionparticipation.FieldSessionID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionparticipation.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case sessionparticipation.FieldEnrolledByID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrolledByID(v)
		return nil
	case sessionparticipation.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown SessionParticipation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionParticipationMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionParticipationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionParticipationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SessionParticipation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionParticipationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionParticipationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionParticipationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionParticipation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionParticipationMutation) ResetField(name string) error {
	switch name {
	case sessionparticipation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sessionparticipation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case sessionparticipation.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionparticipation.FieldUserID:
		m.ResetUserID()
		return nil
	case sessionparticipation.FieldEnrolledByID:
		m.ResetEnrolledByID()
		return nil
	case sessionparticipation.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown SessionParticipation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionParticipationMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.session != nil {
		edges = append(edges, sessionparticipation.EdgeSession)
	}
	if m.user != nil {
		edges = append(edges, sessionparticipation.EdgeUser)
	}
	if m.enrolled_by != nil {
		edges = append(edges, sessionparticipation.EdgeEnrolledBy)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionParticipationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionparticipation.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case sessionparticipation.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case sessionparticipation.EdgeEnrolledBy:
		if id := m.enrolled_by; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionParticipationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionParticipationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionParticipationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsession {
		edges = append(edges, sessionparticipation.EdgeSession)
	}
	if m.cleareduser {
		edges = append(edges, sessionparticipation.EdgeUser)
	}
	if m.clearedenrolled_by {
		edges = append(edges, sessionparticipation.EdgeEnrolledBy)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionParticipationMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionparticipation.EdgeSession:
		return m.clearedsession
	case sessionparticipation.EdgeUser:
		return m.cleareduser
	case sessionparticipation.EdgeEnrolledBy:
		return m.clearedenrolled_by
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionParticipationMutation) ClearEdge(name string) error {
	switch name {
	case sessionparticipation.EdgeSession:
		m.ClearSession()
		return nil
	case sessionparticipation.EdgeUser:
		m.ClearUser()
		return nil
	case sessionparticipation.EdgeEnrolledBy:
		m.ClearEnrolledBy()
		return nil
	}
	return fmt.Errorf("unknown SessionParticipation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionParticipationMutation) ResetEdge(name string) error {
	switch name {
	case sessionparticipation.EdgeSession:
		m.ResetSession()
		return nil
	case sessionparticipation.EdgeUser:
		m.ResetUser()
		return nil
	case sessionparticipation.EdgeEnrolledBy:
		m.ResetEnrolledBy()
		return nil
	}
	return fmt.Errorf("unknown SessionParticipation edge %s", name)
}

// SpaceMutation represents an operation that mutates the Space nodes in the graph.
type SpaceMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int64
	created_at          *time.Time
	updated_at          *time.Time
	name                *string
	slug                *string
	clearedFields       map[string]struct{}
	event               *int64
	clearedevent        bool
	agenda_items        map[int64]struct{}
	removedagenda_items map[int64]struct{}
	clearedagenda_items bool
	done                bool
	oldValue            func(context.Context) (*Space, error)
	predicates          []predicate.Space
}

var _ ent.Mutation = (*SpaceMutation)(nil)

// spaceOption allows management of the mutation configuration using functional options.
type spaceOption func(*SpaceMutation)

// newSpaceMutation creates new mutation for the Space entity.
func newSpaceMutation(c config, op Op, opts ...spaceOption) *SpaceMutation {
	m := &SpaceMutation{
		config:        c,
		op:            op,
		typ:           TypeSpace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSpaceID sets the ID field of the mutation.
func withSpaceID(id int64) spaceOption {
	return func(m *SpaceMutation) {
		var (
			err   error
			once  sync.Once
			value *Space
		)
		m.oldValue = func(ctx context.Context) (*Space, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Space.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSpace sets the old Space of the mutation.
func withSpace(node *Space) spaceOption {
	return func(m *SpaceMutation) {
		m.oldValue = func(context.Context) (*Space, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SpaceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SpaceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Space entities.
func (m *SpaceMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SpaceMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SpaceMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Space.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SpaceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SpaceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SpaceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SpaceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SpaceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SpaceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEventID sets the "event_id" field.
func (m *SpaceMutation) SetEventID(i int64) {
	m.event = &i
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *SpaceMutation) EventID() (r int64, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldEventID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *SpaceMutation) ResetEventID() {
	m.event = nil
}

// SetName sets the "name" field.
func (m *SpaceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SpaceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SpaceMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *SpaceMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *SpaceMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *SpaceMutation) ResetSlug() {
	m.slug = nil
}

// ClearEvent clears the "event" edge to the Event entity.
func (m *SpaceMutation) ClearEvent() {
	m.clearedevent = true
	m.clearedFields[space.FieldEventID] = struct{}{}
}

// EventCleared reports if the "event" edge to the Event entity was cleared.
func (m *SpaceMutation) EventCleared() bool {
	return m.clearedevent
}

// EventIDs returns the "event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventID instead. It exists only for internal usage by the builders.
func (m *SpaceMutation) EventIDs() (ids []int64) {
	if id := m.event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvent resets all changes to the "event" edge.
func (m *SpaceMutation) ResetEvent() {
	m.event = nil
	m.clearedevent = false
}

// AddAgendaItemIDs adds the "agenda_items" edge to the AgendaItem entity by ids.
func (m *SpaceMutation) AddAgendaItemIDs(ids ...int64) {
	if m.agenda_items == nil {
		m.agenda_items = make(map[int64]struct{})
	}
	for i := range ids {
		m.agenda_items[ids[i]] = struct{}{}
	}
}

// ClearAgendaItems clears the "agenda_items" edge to the AgendaItem entity.
func (m *SpaceMutation) ClearAgendaItems() {
	m.clearedagenda_items = true
}

// AgendaItemsCleared reports if the "agenda_items" edge to the AgendaItem entity was cleared.
func (m *SpaceMutation) AgendaItemsCleared() bool {
	return m.clearedagenda_items
}

// RemoveAgendaItemIDs removes the "agenda_items" edge to the AgendaItem entity by IDs.
func (m *SpaceMutation) RemoveAgendaItemIDs(ids ...int64) {
	if m.removedagenda_items == nil {
		m.removedagenda_items = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.agenda_items, ids[i])
		m.removedagenda_items[ids[i]] = struct{}{}
	}
}

// RemovedAgendaItems returns the removed IDs of the "agenda_items" edge to the AgendaItem entity.
func (m *SpaceMutation) RemovedAgendaItemsIDs() (ids []int64) {
	for id := range m.removedagenda_items {
		ids = append(ids, id)
	}
	return
}

// AgendaItemsIDs returns the "agenda_items" edge IDs in the mutation.
func (m *SpaceMutation) AgendaItemsIDs() (ids []int64) {
	for id := range m.agenda_items {
		ids = append(ids, id)
	}
	return
}

// ResetAgendaItems resets all changes to the "agenda_items" edge.
func (m *SpaceMutation) ResetAgendaItems() {
	m.agenda_items = nil
	m.clearedagenda_items = false
	m.removedagenda_items = nil
}

// Where appends a list predicates to the SpaceMutation builder.
func (m *SpaceMutation) Where(ps ...predicate.Space) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SpaceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SpaceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Space, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SpaceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SpaceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Space).
func (m *SpaceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SpaceMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, space.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, space.FieldUpdatedAt)
	}
	if m.event != nil {
		fields = append(fields, space.FieldEventID)
	}
	if m.name != nil {
		fields = append(fields, space.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, space.FieldSlug)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SpaceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case space.FieldCreatedAt:
		return m.CreatedAt()
	case space.FieldUpdatedAt:
		return m.UpdatedAt()
	case space.FieldEventID:
		return m.EventID()
	case space.FieldName:
		return m.Name()
	case space.FieldSlug:
		return m.Slug()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SpaceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case space.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case space.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case space.FieldEventID:
		return m.OldEventID(ctx)
	case space.FieldName:
		return m.OldName(ctx)
	case space.FieldSlug:
		return m.OldSlug(ctx)
	}
	return nil, fmt.Errorf("unknown Space field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpaceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case space.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case space.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case space.FieldEventID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case space.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case space.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	}
	return fmt.Errorf("unknown Space field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SpaceMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SpaceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpaceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Space numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SpaceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SpaceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SpaceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Space nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SpaceMutation) ResetField(name string) error {
	switch name {
	case space.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case space.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case space.FieldEventID:
		m.ResetEventID()
		return nil
	case space.FieldName:
		m.ResetName()
		return nil
	case space.FieldSlug:
		m.ResetSlug()
		return nil
	}
	return fmt.Errorf("unknown Space field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SpaceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.event != nil {
		edges = append(edges, space.EdgeEvent)
	}
	if m.agenda_items != nil {
		edges = append(edges, space.EdgeAgendaItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SpaceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case space.EdgeEvent:
		if id := m.event; id != nil {
			return []ent.Value{*id}
		}
	case space.EdgeAgendaItems:
		ids := make([]ent.Value, 0, len(m.agenda_items))
		for id := range m.agenda_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SpaceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedagenda_items != nil {
		edges = append(edges, space.EdgeAgendaItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SpaceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case space.EdgeAgendaItems:
		ids := make([]ent.Value, 0, len(m.removedagenda_items))
		for id := range m.removedagenda_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SpaceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedevent {
		edges = append(edges, space.EdgeEvent)
	}
	if m.clearedagenda_items {
		edges = append(edges, space.EdgeAgendaItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SpaceMutation) EdgeCleared(name string) bool {
	switch name {
	case space.EdgeEvent:
		return m.clearedevent
	case space.EdgeAgendaItems:
		return m.clearedagenda_items
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SpaceMutation) ClearEdge(name string) error {
	switch name {
	case space.EdgeEvent:
		m.ClearEvent()
		return nil
	}
	return fmt.Errorf("unknown Space unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SpaceMutation) ResetEdge(name string) error {
	switch name {
	case space.EdgeEvent:
		m.ResetEvent()
		return nil
	case space.EdgeAgendaItems:
		m.ResetAgendaItems()
		return nil
	}
	return fmt.Errorf("unknown Space edge %s", name)
}

// SphereMutation represents an operation that mutates the Sphere nodes in the graph.
type SphereMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	host          *string
	is_open       *bool
	clearedFields map[string]struct{}
	events        map[int64]struct{}
	removedevents map[int64]struct{}
	clearedevents bool
	done          bool
	oldValue      func(context.Context) (*Sphere, error)
	predicates    []predicate.Sphere
}

var _ ent.Mutation = (*SphereMutation)(nil)

// sphereOption allows management of the mutation configuration using functional options.
type sphereOption func(*SphereMutation)

// newSphereMutation creates new mutation for the Sphere entity.
func newSphereMutation(c config, op Op, opts ...sphereOption) *SphereMutation {
	m := &SphereMutation{
		config:        c,
		op:            op,
		typ:           TypeSphere,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSphereID sets the ID field of the mutation.
func withSphereID(id int64) sphereOption {
	return func(m *SphereMutation) {
		var (
			err   error
			once  sync.Once
			value *Sphere
		)
		m.oldValue = func(ctx context.Context) (*Sphere, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Sphere.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSphere sets the old Sphere of the mutation.
func withSphere(node *Sphere) sphereOption {
	return func(m *SphereMutation) {
		m.oldValue = func(context.Context) (*Sphere, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SphereMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SphereMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Sphere entities.
func (m *SphereMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SphereMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SphereMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Sphere.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SphereMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SphereMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Sphere entity.
// If the Sphere object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SphereMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SphereMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SphereMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SphereMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Sphere entity.
// If the Sphere object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SphereMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SphereMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *SphereMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SphereMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Sphere entity.
// If the Sphere object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SphereMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SphereMutation) ResetName() {
	m.name = nil
}

// SetHost sets the "host" field.
func (m *SphereMutation) SetHost(s string) {
	m.host = &s
}

// Host returns the value of the "host" field in the mutation.
func (m *SphereMutation) Host() (r string, exists bool) {
	v := m.host
	if v == nil {
		return
	}
	return *v, true
}

// OldHost returns the old "host" field's value of the Sphere entity.
// If the Sphere object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SphereMutation) OldHost(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHost: %w", err)
	}
	return oldValue.Host, nil
}

// ResetHost resets all changes to the "host" field.
func (m *SphereMutation) ResetHost() {
	m.host = nil
}

// SetIsOpen sets the "is_open" field.
func (m *SphereMutation) SetIsOpen(b bool) {
	m.is_open = &b
}

// IsOpen returns the value of the "is_open" field in the mutation.
func (m *SphereMutation) IsOpen() (r bool, exists bool) {
	v := m.is_open
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOpen returns the old "is_open" field's value of the Sphere entity.
// If the Sphere object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SphereMutation) OldIsOpen(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOpen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOpen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOpen: %w", err)
	}
	return oldValue.IsOpen, nil
}

// ResetIsOpen resets all changes to the "is_open" field.
func (m *SphereMutation) ResetIsOpen() {
	m.is_open = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *SphereMutation) AddEventIDs(ids ...int64) {
	if m.events == nil {
		m.events = make(map[int64]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *SphereMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *SphereMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *SphereMutation) RemoveEventIDs(ids ...int64) {
	if m.removedevents == nil {
		m.removedevents = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *SphereMutation) RemovedEventsIDs() (ids []int64) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *SphereMutation) EventsIDs() (ids []int64) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *SphereMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the SphereMutation builder.
func (m *SphereMutation) Where(ps ...predicate.Sphere) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SphereMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SphereMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Sphere, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SphereMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SphereMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Sphere).
func (m *SphereMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SphereMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, sphere.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sphere.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, sphere.FieldName)
	}
	if m.host != nil {
		fields = append(fields, sphere.FieldHost)
	}
	if m.is_open != nil {
		fields = append(fields, sphere.FieldIsOpen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SphereMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sphere.FieldCreatedAt:
		return m.CreatedAt()
	case sphere.FieldUpdatedAt:
		return m.UpdatedAt()
	case sphere.FieldName:
		return m.Name()
	case sphere.FieldHost:
		return m.Host()
	case sphere.FieldIsOpen:
		return m.IsOpen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SphereMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sphere.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sphere.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case sphere.FieldName:
		return m.OldName(ctx)
	case sphere.FieldHost:
		return m.OldHost(ctx)
	case sphere.FieldIsOpen:
		return m.OldIsOpen(ctx)
	}
	return nil, fmt.Errorf("unknown Sphere field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SphereMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sphere.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sphere.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case sphere.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case sphere.FieldHost:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHost(v)
		return nil
	case sphere.FieldIsOpen:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOpen(v)
		return nil
	}
	return fmt.Errorf("unknown Sphere field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SphereMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SphereMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SphereMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Sphere numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SphereMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SphereMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SphereMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Sphere nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SphereMutation) ResetField(name string) error {
	switch name {
	case sphere.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sphere.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case sphere.FieldName:
		m.ResetName()
		return nil
	case sphere.FieldHost:
		m.ResetHost()
		return nil
	case sphere.FieldIsOpen:
		m.ResetIsOpen()
		return nil
	}
	return fmt.Errorf("unknown Sphere field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SphereMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.events != nil {
		edges = append(edges, sphere.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SphereMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sphere.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SphereMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedevents != nil {
		edges = append(edges, sphere.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SphereMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case sphere.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SphereMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevents {
		edges = append(edges, sphere.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SphereMutation) EdgeCleared(name string) bool {
	switch name {
	case sphere.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SphereMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Sphere unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SphereMutation) ResetEdge(name string) error {
	switch name {
	case sphere.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Sphere edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int64
	created_at             *time.Time
	updated_at             *time.Time
	name                   *string
	slug                   *string
	email                  *string
	is_active              *bool
	birth_date             *time.Time
	clearedFields          map[string]struct{}
	manager                *int64
	clearedmanager         bool
	connected_users        map[int64]struct{}
	removedconnected_users map[int64]struct{}
	clearedconnected_users bool
	participations         map[int64]struct{}
	removedparticipations  map[int64]struct{}
	clearedparticipations  bool
	notifications          map[string]struct{}
	removednotifications   map[string]struct{}
	clearednotifications   bool
	done                   bool
	oldValue               func(context.Context) (*User, error)
	predicates             []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int64) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetManagerID sets the "manager_id" field.
func (m *UserMutation) SetManagerID(i int64) {
	m.manager = &i
}

// ManagerID returns the value of the "manager_id" field in the mutation.
func (m *UserMutation) ManagerID() (r int64, exists bool) {
	v := m.manager
	if v == nil {
		return
	}
	return *v, true
}

// OldManagerID returns the old "manager_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldManagerID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManagerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManagerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManagerID: %w", err)
	}
	return oldValue.ManagerID, nil
}

// ClearManagerID clears the value of the "manager_id" field.
func (m *UserMutation) ClearManagerID() {
	m.manager = nil
	m.clearedFields[user.FieldManagerID] = struct{}{}
}

// ManagerIDCleared returns if the "manager_id" field was cleared in this mutation.
func (m *UserMutation) ManagerIDCleared() bool {
	_, ok := m.clearedFields[user.FieldManagerID]
	return ok
}

// ResetManagerID resets all changes to the "manager_id" field.
func (m *UserMutation) ResetManagerID() {
	m.manager = nil
	delete(m.clearedFields, user.FieldManagerID)
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *UserMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *UserMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *UserMutation) ResetSlug() {
	m.slug = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *UserMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[user.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *UserMutation) EmailCleared() bool {
	_, ok := m.clearedFields[user.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, user.FieldEmail)
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetBirthDate sets the "birth_date" field.
func (m *UserMutation) SetBirthDate(t time.Time) {
	m.birth_date = &t
}

// BirthDate returns the value of the "birth_date" field in the mutation.
func (m *UserMutation) BirthDate() (r time.Time, exists bool) {
	v := m.birth_date
	if v == nil {
		return
	}
	return *v, true
}

// OldBirthDate returns the old "birth_date" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldBirthDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBirthDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBirthDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBirthDate: %w", err)
	}
	return oldValue.BirthDate, nil
}

// ClearBirthDate clears the value of the "birth_date" field.
func (m *UserMutation) ClearBirthDate() {
	m.birth_date = nil
	m.clearedFields[user.FieldBirthDate] = struct{}{}
}

// BirthDateCleared returns if the "birth_date" field was cleared in this mutation.
func (m *UserMutation) BirthDateCleared() bool {
	_, ok := m.clearedFields[user.FieldBirthDate]
	return ok
}

// ResetBirthDate resets all changes to the "birth_date" field.
func (m *UserMutation) ResetBirthDate() {
	m.birth_date = nil
	delete(m.clearedFields, user.FieldBirthDate)
}

// ClearManager clears the "manager" edge to the User entity.
func (m *UserMutation) ClearManager() {
	m.clearedmanager = true
	m.clearedFields[user.FieldManagerID] = struct{}{}
}

// ManagerCleared reports if the "manager" edge to the User entity was cleared.
func (m *UserMutation) ManagerCleared() bool {
	return m.ManagerIDCleared() || m.clearedmanager
}

// ManagerIDs returns the "manager" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ManagerID instead. It exists only for internal usage by the builders.
func (m *UserMutation) ManagerIDs() (ids []int64) {
	if id := m.manager; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetManager resets all changes to the "manager" edge.
func (m *UserMutation) ResetManager() {
	m.manager = nil
	m.clearedmanager = false
}

// AddConnectedUserIDs adds the "connected_users" edge to the User entity by ids.
func (m *UserMutation) AddConnectedUserIDs(ids ...int64) {
	if m.connected_users == nil {
		m.connected_users = make(map[int64]struct{})
	}
	for i := range ids {
		m.connected_users[ids[i]] = struct{}{}
	}
}

// ClearConnectedUsers clears the "connected_users" edge to the User entity.
func (m *UserMutation) ClearConnectedUsers() {
	m.clearedconnected_users = true
}

// ConnectedUsersCleared reports if the "connected_users" edge to the User entity was cleared.
func (m *UserMutation) ConnectedUsersCleared() bool {
	return m.clearedconnected_users
}

// RemoveConnectedUserIDs removes the "connected_users" edge to the User entity by IDs.
func (m *UserMutation) RemoveConnectedUserIDs(ids ...int64) {
	if m.removedconnected_users == nil {
		m.removedconnected_users = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.connected_users, ids[i])
		m.removedconnected_users[ids[i]] = struct{}{}
	}
}

// RemovedConnectedUsers returns the removed IDs of the "connected_users" edge to the User entity.
func (m *UserMutation) RemovedConnectedUsersIDs() (ids []int64) {
	for id := range m.removedconnected_users {
		ids = append(ids, id)
	}
	return
}

// ConnectedUsersIDs returns the "connected_users" edge IDs in the mutation.
func (m *UserMutation) ConnectedUsersIDs() (ids []int64) {
	for id := range m.connected_users {
		ids = append(ids, id)
	}
	return
}

// ResetConnectedUsers resets all changes to the "connected_users" edge.
func (m *UserMutation) ResetConnectedUsers() {
	m.connected_users = nil
	m.clearedconnected_users = false
	m.removedconnected_users = nil
}

// AddParticipationIDs adds the "participations" edge to the SessionParticipation entity by ids.
func (m *UserMutation) AddParticipationIDs(ids ...int64) {
	if m.participations == nil {
		m.participations = make(map[int64]struct{})
	}
	for i := range ids {
		m.participations[ids[i]] = struct{}{}
	}
}

// ClearParticipations clears the "participations" edge to the SessionParticipation entity.
func (m *UserMutation) ClearParticipations() {
	m.clearedparticipations = true
}

// ParticipationsCleared reports if the "participations" edge to the SessionParticipation entity was cleared.
func (m *UserMutation) ParticipationsCleared() bool {
	return m.clearedparticipations
}

// RemoveParticipationIDs removes the "participations" edge to the SessionParticipation entity by IDs.
func (m *UserMutation) RemoveParticipationIDs(ids ...int64) {
	if m.removedparticipations == nil {
		m.removedparticipations = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.participations, ids[i])
		m.removedparticipations[ids[i]] = struct{}{}
	}
}

// RemovedParticipations returns the removed IDs of the "participations" edge to the SessionParticipation entity.
func (m *UserMutation) RemovedParticipationsIDs() (ids []int64) {
	for id := range m.removedparticipations {
		ids = append(ids, id)
	}
	return
}

// ParticipationsIDs returns the "participations" edge IDs in the mutation.
func (m *UserMutation) ParticipationsIDs() (ids []int64) {
	for id := range m.participations {
		ids = append(ids, id)
	}
	return
}

// ResetParticipations resets all changes to the "participations" edge.
func (m *UserMutation) ResetParticipations() {
	m.participations = nil
	m.clearedparticipations = false
	m.removedparticipations = nil
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by ids.
func (m *UserMutation) AddNotificationIDs(ids ...string) {
	if m.notifications == nil {
		m.notifications = make(map[string]struct{})
	}
	for i := range ids {
		m.notifications[ids[i]] = struct{}{}
	}
}

// ClearNotifications clears the "notifications" edge to the Notification entity.
func (m *UserMutation) ClearNotifications() {
	m.clearednotifications = true
}

// NotificationsCleared reports if the "notifications" edge to the Notification entity was cleared.
func (m *UserMutation) NotificationsCleared() bool {
	return m.clearednotifications
}

// RemoveNotificationIDs removes the "notifications" edge to the Notification entity by IDs.
func (m *UserMutation) RemoveNotificationIDs(ids ...string) {
	if m.removednotifications == nil {
		m.removednotifications = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.notifications, ids[i])
		m.removednotifications[ids[i]] = struct{}{}
	}
}

// RemovedNotifications returns the removed IDs of the "notifications" edge to the Notification entity.
func (m *UserMutation) RemovedNotificationsIDs() (ids []string) {
	for id := range m.removednotifications {
		ids = append(ids, id)
	}
	return
}

// NotificationsIDs returns the "notifications" edge IDs in the mutation.
func (m *UserMutation) NotificationsIDs() (ids []string) {
	for id := range m.notifications {
		ids = append(ids, id)
	}
	return
}

// ResetNotifications resets all changes to the "notifications" edge.
func (m *UserMutation) ResetNotifications() {
	m.notifications = nil
	m.clearednotifications = false
	m.removednotifications = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.manager != nil {
		fields = append(fields, user.FieldManagerID)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, user.FieldSlug)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.birth_date != nil {
		fields = append(fields, user.FieldBirthDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldManagerID:
		return m.ManagerID()
	case user.FieldName:
		return m.Name()
	case user.FieldSlug:
		return m.Slug()
	case user.FieldEmail:
		return m.Email()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldBirthDate:
		return m.BirthDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldManagerID:
		return m.OldManagerID(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldSlug:
		return m.OldSlug(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldBirthDate:
		return m.OldBirthDate(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldManagerID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManagerID(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldBirthDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBirthDate(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldManagerID) {
		fields = append(fields, user.FieldManagerID)
	}
	if m.FieldCleared(user.FieldEmail) {
		fields = append(fields, user.FieldEmail)
	}
	if m.FieldCleared(user.FieldBirthDate) {
		fields = append(fields, user.FieldBirthDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldManagerID:
		m.ClearManagerID()
		return nil
	case user.FieldEmail:
		m.ClearEmail()
		return nil
	case user.FieldBirthDate:
		m.ClearBirthDate()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldManagerID:
		m.ResetManagerID()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldSlug:
		m.ResetSlug()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldBirthDate:
		m.ResetBirthDate()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.manager != nil {
		edges = append(edges, user.EdgeManager)
	}
	if m.connected_users != nil {
		edges = append(edges, user.EdgeConnectedUsers)
	}
	if m.participations != nil {
		edges = append(edges, user.EdgeParticipations)
	}
	if m.notifications != nil {
		edges = append(edges, user.EdgeNotifications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeManager:
		if id := m.manager; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeConnectedUsers:
		ids := make([]ent.Value, 0, len(m.connected_users))
		for id := range m.connected_users {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeParticipations:
		ids := make([]ent.Value, 0, len(m.participations))
		for id := range m.participations {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeNotifications:
		ids := make([]ent.Value, 0, len(m.notifications))
		for id := range m.notifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedconnected_users != nil {
		edges = append(edges, user.EdgeConnectedUsers)
	}
	if m.removedparticipations != nil {
		edges = append(edges, user.EdgeParticipations)
	}
	if m.removednotifications != nil {
		edges = append(edges, user.EdgeNotifications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeConnectedUsers:
		ids := make([]ent.Value, 0, len(m.removedconnected_users))
		for id := range m.removedconnected_users {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeParticipations:
		ids := make([]ent.Value, 0, len(m.removedparticipations))
		for id := range m.removedparticipations {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeNotifications:
		ids := make([]ent.Value, 0, len(m.removednotifications))
		for id := range m.removednotifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedmanager {
		edges = append(edges, user.EdgeManager)
	}
	if m.clearedconnected_users {
		edges = append(edges, user.EdgeConnectedUsers)
	}
	if m.clearedparticipations {
		edges = append(edges, user.EdgeParticipations)
	}
	if m.clearednotifications {
		edges = append(edges, user.EdgeNotifications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeManager:
		return m.clearedmanager
	case user.EdgeConnectedUsers:
		return m.clearedconnected_users
	case user.EdgeParticipations:
		return m.clearedparticipations
	case user.EdgeNotifications:
		return m.clearednotifications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeManager:
		m.ClearManager()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeManager:
		m.ResetManager()
		return nil
	case user.EdgeConnectedUsers:
		m.ResetConnectedUsers()
		return nil
	case user.EdgeParticipations:
		m.ResetParticipations()
		return nil
	case user.EdgeNotifications:
		m.ResetNotifications()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// UserEnrollmentConfigMutation represents an operation that mutates the UserEnrollmentConfig nodes in the graph.
type UserEnrollmentConfigMutation struct {
	config
	op               Op
	typ              string
	id               *int64
	created_at       *time.Time
	updated_at       *time.Time
	user_email       *string
	allowed_slots    *int
	addallowed_slots *int
	fetched_from_api *bool
	last_check       *time.Time
	clearedFields    map[string]struct{}
	_config          *int64
	cleared_config   bool
	done             bool
	oldValue         func(context.Context) (*UserEnrollmentConfig, error)
	predicates       []predicate.UserEnrollmentConfig
}

var _ ent.Mutation = (*UserEnrollmentConfigMutation)(nil)

// userenrollmentconfigOption allows management of the mutation configuration using functional options.
type userenrollmentconfigOption func(*UserEnrollmentConfigMutation)

// newUserEnrollmentConfigMutation creates new mutation for the UserEnrollmentConfig entity.
func newUserEnrollmentConfigMutation(c config, op Op, opts ...userenrollmentconfigOption) *UserEnrollmentConfigMutation {
	m := &UserEnrollmentConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeUserEnrollmentConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserEnrollmentConfigID sets the ID field of the mutation.
func withUserEnrollmentConfigID(id int64) userenrollmentconfigOption {
	return func(m *UserEnrollmentConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *UserEnrollmentConfig
		)
		m.oldValue = func(ctx context.Context) (*UserEnrollmentConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserEnrollmentConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserEnrollmentConfig sets the old UserEnrollmentConfig of the mutation.
func withUserEnrollmentConfig(node *UserEnrollmentConfig) userenrollmentconfigOption {
	return func(m *UserEnrollmentConfigMutation) {
		m.oldValue = func(context.Context) (*UserEnrollmentConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserEnrollmentConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserEnrollmentConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserEnrollmentConfig entities.
func (m *UserEnrollmentConfigMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserEnrollmentConfigMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserEnrollmentConfigMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserEnrollmentConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserEnrollmentConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserEnrollmentConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserEnrollmentConfig entity.
// If the UserEnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserEnrollmentConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserEnrollmentConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserEnrollmentConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserEnrollmentConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserEnrollmentConfig entity.
// If the UserEnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserEnrollmentConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserEnrollmentConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetConfigID sets the "config_id" field.
func (m *UserEnrollmentConfigMutation) SetConfigID(i int64) {
	m._config = &i
}

// ConfigID returns the value of the "config_id" field in the mutation.
func (m *UserEnrollmentConfigMutation) ConfigID() (r int64, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigID returns the old "config_id" field's value of the UserEnrollmentConfig entity.
// If the UserEnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserEnrollmentConfigMutation) OldConfigID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigID: %w", err)
	}
	return oldValue.ConfigID, nil
}

// ResetConfigID resets all changes to the "config_id" field.
func (m *UserEnrollmentConfigMutation) ResetConfigID() {
	m._config = nil
}

// SetUserEmail sets the "user_email" field.
func (m *UserEnrollmentConfigMutation) SetUserEmail(s string) {
	m.user_email = &s
}

// UserEmail returns the value of the "user_email" field in the mutation.
func (m *UserEnrollmentConfigMutation) UserEmail() (r string, exists bool) {
	v := m.user_email
	if v == nil {
		return
	}
	return *v, true
}

// OldUserEmail returns the old "user_email" field's value of the UserEnrollmentConfig entity.
// If the UserEnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserEnrollmentConfigMutation) OldUserEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserEmail: %w", err)
	}
	return oldValue.UserEmail, nil
}

// ResetUserEmail resets all changes to the "user_email" field.
func (m *UserEnrollmentConfigMutation) ResetUserEmail() {
	m.user_email = nil
}

// SetAllowedSlots sets the "allowed_slots" field.
func (m *UserEnrollmentConfigMutation) SetAllowedSlots(i int) {
	m.allowed_slots = &i
	m.addallowed_slots = nil
}

// AllowedSlots returns the value of the "allowed_slots" field in the mutation.
func (m *UserEnrollmentConfigMutation) AllowedSlots() (r int, exists bool) {
	v := m.allowed_slots
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowedSlots returns the old "allowed_slots" field's value of the UserEnrollmentConfig entity.
// If the UserEnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserEnrollmentConfigMutation) OldAllowedSlots(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowedSlots is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowedSlots requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowedSlots: %w", err)
	}
	return oldValue.AllowedSlots, nil
}

// AddAllowedSlots adds i to the "allowed_slots" field.
func (m *UserEnrollmentConfigMutation) AddAllowedSlots(i int) {
	if m.addallowed_slots != nil {
		*m.addallowed_slots += i
	} else {
		m.addallowed_slots = &i
	}
}

// AddedAllowedSlots returns the value that was added to the "allowed_slots" field in this mutation.
func (m *UserEnrollmentConfigMutation) AddedAllowedSlots() (r int, exists bool) {
	v := m.addallowed_slots
	if v == nil {
		return
	}
	return *v, true
}

// ResetAllowedSlots resets all changes to the "allowed_slots" field.
func (m *UserEnrollmentConfigMutation) ResetAllowedSlots() {
	m.allowed_slots = nil
	m.addallowed_slots = nil
}

// SetFetchedFromAPI sets the "fetched_from_api" field.
func (m *UserEnrollmentConfigMutation) SetFetchedFromAPI(b bool) {
	m.fetched_from_api = &b
}

// FetchedFromAPI returns the value of the "fetched_from_api" field in the mutation.
func (m *UserEnrollmentConfigMutation) FetchedFromAPI() (r bool, exists bool) {
	v := m.fetched_from_api
	if v == nil {
		return
	}
	return *v, true
}

// OldFetchedFromAPI returns the old "fetched_from_api" field's value of the UserEnrollmentConfig entity.
// If the UserEnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserEnrollmentConfigMutation) OldFetchedFromAPI(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFetchedFromAPI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFetchedFromAPI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFetchedFromAPI: %w", err)
	}
	return oldValue.FetchedFromAPI, nil
}

// ResetFetchedFromAPI resets all changes to the "fetched_from_api" field.
func (m *UserEnrollmentConfigMutation) ResetFetchedFromAPI() {
	m.fetched_from_api = nil
}

// SetLastCheck sets the "last_check" field.
func (m *UserEnrollmentConfigMutation) SetLastCheck(t time.Time) {
	m.last_check = &t
}

// LastCheck returns the value of the "last_check" field in the mutation.
func (m *UserEnrollmentConfigMutation) LastCheck() (r time.Time, exists bool) {
	v := m.last_check
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCheck returns the old "last_check" field's value of the UserEnrollmentConfig entity.
// If the UserEnrollmentConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserEnrollmentConfigMutation) OldLastCheck(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCheck is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCheck requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCheck: %w", err)
	}
	return oldValue.LastCheck, nil
}

// ClearLastCheck clears the value of the "last_check" field.
func (m *UserEnrollmentConfigMutation) ClearLastCheck() {
	m.last_check = nil
	m.clearedFields[userenrollmentconfig.FieldLastCheck] = struct{}{}
}

// LastCheckCleared returns if the "last_check" field was cleared in this mutation.
func (m *UserEnrollmentConfigMutation) LastCheckCleared() bool {
	_, ok := m.clearedFields[userenrollmentconfig.FieldLastCheck]
	return ok
}

// ResetLastCheck resets all changes to the "last_check" field.
func (m *UserEnrollmentConfigMutation) ResetLastCheck() {
	m.last_check = nil
	delete(m.clearedFields, userenrollmentconfig.FieldLastCheck)
}

// ClearConfig clears the "config" edge to the EnrollmentConfig entity.
func (m *UserEnrollmentConfigMutation) ClearConfig() {
	m.cleared_config = true
	m.clearedFields[userenrollmentconfig.FieldConfigID] = struct{}{}
}

// ConfigCleared reports if the "config" edge to the EnrollmentConfig entity was cleared.
func (m *UserEnrollmentConfigMutation) ConfigCleared() bool {
	return m.cleared_config
}

// ConfigIDs returns the "config" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConfigID instead. It exists only for internal usage by the builders.
func (m *UserEnrollmentConfigMutation) ConfigIDs() (ids []int64) {
	if id := m._config; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConfig resets all changes to the "config" edge.
func (m *UserEnrollmentConfigMutation) ResetConfig() {
	m._config = nil
	m.cleared_config = false
}

// Where appends a list predicates to the UserEnrollmentConfigMutation builder.
func (m *UserEnrollmentConfigMutation) Where(ps ...predicate.UserEnrollmentConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserEnrollmentConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserEnrollmentConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserEnrollmentConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserEnrollmentConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserEnrollmentConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserEnrollmentConfig).
func (m *UserEnrollmentConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserEnrollmentConfigMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, userenrollmentconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, userenrollmentconfig.FieldUpdatedAt)
	}
	if m._config != nil {
		fields = append(fields, userenrollmentconfig.FieldConfigID)
	}
	if m.user_email != nil {
		fields = append(fields, userenrollmentconfig.FieldUserEmail)
	}
	if m.allowed_slots != nil {
		fields = append(fields, userenrollmentconfig.FieldAllowedSlots)
	}
	if m.fetched_from_api != nil {
		fields = append(fields, userenrollmentconfig.FieldFetchedFromAPI)
	}
	if m.last_check != nil {
		fields = append(fields, userenrollmentconfig.FieldLastCheck)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserEnrollmentConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userenrollmentconfig.FieldCreatedAt:
		return m.CreatedAt()
	case userenrollmentconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	case userenrollmentconfig.FieldConfigID:
		return m.ConfigID()
	case userenrollmentconfig.FieldUserEmail:
		return m.UserEmail()
	case userenrollmentconfig.FieldAllowedSlots:
		return m.AllowedSlots()
	case userenrollmentconfig.FieldFetchedFromAPI:
		return m.FetchedFromAPI()
	case userenrollmentconfig.FieldLastCheck:
		return m.LastCheck()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserEnrollmentConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userenrollmentconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case userenrollmentconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case userenrollmentconfig.FieldConfigID:
		return m.OldConfigID(ctx)
	case userenrollmentconfig.FieldUserEmail:
		return m.OldUserEmail(ctx)
	case userenrollmentconfig.FieldAllowedSlots:
		return m.OldAllowedSlots(ctx)
	case userenrollmentconfig.FieldFetchedFromAPI:
		return m.OldFetchedFromAPI(ctx)
	case userenrollmentconfig.FieldLastCheck:
		return m.OldLastCheck(ctx)
	}
	return nil, fmt.Errorf("unknown UserEnrollmentConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserEnrollmentConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userenrollmentconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case userenrollmentconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case userenrollmentconfig.FieldConfigID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigID(v)
		return nil
	case userenrollmentconfig.FieldUserEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserEmail(v)
		return nil
	case userenrollmentconfig.FieldAllowedSlots:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowedSlots(v)
		return nil
	case userenrollmentconfig.FieldFetchedFromAPI:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFetchedFromAPI(v)
		return nil
	case userenrollmentconfig.FieldLastCheck:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCheck(v)
		return nil
	}
	return fmt.Errorf("unknown UserEnrollmentConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserEnrollmentConfigMutation) AddedFields() []string {
	var fields []string
	if m.addallowed_slots != nil {
		fields = append(fields, userenrollmentconfig.FieldAllowedSlots)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserEnrollmentConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userenrollmentconfig.FieldAllowedSlots:
		return m.AddedAllowedSlots()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserEnrollmentConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userenrollmentconfig.FieldAllowedSlots:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAllowedSlots(v)
		return nil
	}
	return fmt.Errorf("unknown UserEnrollmentConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserEnrollmentConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userenrollmentconfig.FieldLastCheck) {
		fields = append(fields, userenrollmentconfig.FieldLastCheck)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserEnrollmentConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserEnrollmentConfigMutation) ClearField(name string) error {
	switch name {
	case userenrollmentconfig.FieldLastCheck:
		m.ClearLastCheck()
		return nil
	}
	return fmt.Errorf("unknown UserEnrollmentConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserEnrollmentConfigMutation) ResetField(name string) error {
	switch name {
	case userenrollmentconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case userenrollmentconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case userenrollmentconfig.FieldConfigID:
		m.ResetConfigID()
		return nil
	case userenrollmentconfig.FieldUserEmail:
		m.ResetUserEmail()
		return nil
	case userenrollmentconfig.FieldAllowedSlots:
		m.ResetAllowedSlots()
		return nil
	case userenrollmentconfig.FieldFetchedFromAPI:
		m.ResetFetchedFromAPI()
		return nil
	case userenrollmentconfig.FieldLastCheck:
		m.ResetLastCheck()
		return nil
	}
	return fmt.Errorf("unknown UserEnrollmentConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserEnrollmentConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._config != nil {
		edges = append(edges, userenrollmentconfig.EdgeConfig)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserEnrollmentConfigMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case userenrollmentconfig.EdgeConfig:
		if id := m._config; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserEnrollmentConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserEnrollmentConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserEnrollmentConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_config {
		edges = append(edges, userenrollmentconfig.EdgeConfig)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserEnrollmentConfigMutation) EdgeCleared(name string) bool {
	switch name {
	case userenrollmentconfig.EdgeConfig:
		return m.cleared_config
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserEnrollmentConfigMutation) ClearEdge(name string) error {
	switch name {
	case userenrollmentconfig.EdgeConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown UserEnrollmentConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserEnrollmentConfigMutation) ResetEdge(name string) error {
	switch name {
	case userenrollmentconfig.EdgeConfig:
		m.ResetConfig()
		return nil
	}
	return fmt.Errorf("unknown UserEnrollmentConfig edge %s", name)
}
