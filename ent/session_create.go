// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"ludamus.io/enrolld/ent/agendaitem"
	"ludamus.io/enrolld/ent/event"
	"ludamus.io/enrolld/ent/session"
	"ludamus.io/enrolld/ent/sessionparticipation"
	"ludamus.io/enrolld/ent/user"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionCreate) SetUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *SessionCreate) SetEventID(v int64) *SessionCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetHostID sets the "host_id" field.
func (_c *SessionCreate) SetHostID(v int64) *SessionCreate {
	_c.mutation.SetHostID(v)
	return _c
}

// SetNillableHostID sets the "host_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableHostID(v *int64) *SessionCreate {
	if v != nil {
		_c.SetHostID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *SessionCreate) SetTitle(v string) *SessionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *SessionCreate) SetSlug(v string) *SessionCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetParticipantsLimit sets the "participants_limit" field.
func (_c *SessionCreate) SetParticipantsLimit(v int) *SessionCreate {
	_c.mutation.SetParticipantsLimit(v)
	return _c
}

// SetNillableParticipantsLimit sets the "participants_limit" field if the given value is not nil.
func (_c *SessionCreate) SetNillableParticipantsLimit(v *int) *SessionCreate {
	if v != nil {
		_c.SetParticipantsLimit(*v)
	}
	return _c
}

// SetMinAge sets the "min_age" field.
func (_c *SessionCreate) SetMinAge(v int) *SessionCreate {
	_c.mutation.SetMinAge(v)
	return _c
}

// SetNillableMinAge sets the "min_age" field if the given value is not nil.
func (_c *SessionCreate) SetNillableMinAge(v *int) *SessionCreate {
	if v != nil {
		_c.SetMinAge(*v)
	}
	return _c
}

// SetRequirements sets the "requirements" field.
func (_c *SessionCreate) SetRequirements(v string) *SessionCreate {
	_c.mutation.SetRequirements(v)
	return _c
}

// SetNillableRequirements sets the "requirements" field if the given value is not nil.
func (_c *SessionCreate) SetNillableRequirements(v *string) *SessionCreate {
	if v != nil {
		_c.SetRequirements(*v)
	}
	return _c
}

// SetPresenterName sets the "presenter_name" field.
func (_c *SessionCreate) SetPresenterName(v string) *SessionCreate {
	_c.mutation.SetPresenterName(v)
	return _c
}

// SetNillablePresenterName sets the "presenter_name" field if the given value is not nil.
func (_c *SessionCreate) SetNillablePresenterName(v *string) *SessionCreate {
	if v != nil {
		_c.SetPresenterName(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v int64) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEvent sets the "event" edge to the Event entity.
func (_c *SessionCreate) SetEvent(v *Event) *SessionCreate {
	return _c.SetEventID(v.ID)
}

// SetHost sets the "host" edge to the User entity.
func (_c *SessionCreate) SetHost(v *User) *SessionCreate {
	return _c.SetHostID(v.ID)
}

// SetAgendaItemID sets the "agenda_item" edge to the AgendaItem entity by ID.
func (_c *SessionCreate) SetAgendaItemID(id int64) *SessionCreate {
	_c.mutation.SetAgendaItemID(id)
	return _c
}

// SetNillableAgendaItemID sets the "agenda_item" edge to the AgendaItem entity by ID if the given value is not nil.
func (_c *SessionCreate) SetNillableAgendaItemID(id *int64) *SessionCreate {
	if id != nil {
		_c = _c.SetAgendaItemID(*id)
	}
	return _c
}

// SetAgendaItem sets the "agenda_item" edge to the AgendaItem entity.
func (_c *SessionCreate) SetAgendaItem(v *AgendaItem) *SessionCreate {
	return _c.SetAgendaItemID(v.ID)
}

// AddParticipationIDs adds the "participations" edge to the SessionParticipation entity by IDs.
func (_c *SessionCreate) AddParticipationIDs(ids ...int64) *SessionCreate {
	_c.mutation.AddParticipationIDs(ids...)
	return _c
}

// AddParticipations adds the "participations" edges to the SessionParticipation entity.
func (_c *SessionCreate) AddParticipations(v ...*SessionParticipation) *SessionCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddParticipationIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := session.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ParticipantsLimit(); !ok {
		v := session.DefaultParticipantsLimit
		_c.mutation.SetParticipantsLimit(v)
	}
	if _, ok := _c.mutation.MinAge(); !ok {
		v := session.DefaultMinAge
		_c.mutation.SetMinAge(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Session.updated_at"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "Session.event_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Session.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := session.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Session.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Session.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := session.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Session.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ParticipantsLimit(); !ok {
		return &ValidationError{Name: "participants_limit", err: errors.New(`ent: missing required field "Session.participants_limit"`)}
	}
	if v, ok := _c.mutation.ParticipantsLimit(); ok {
		if err := session.ParticipantsLimitValidator(v); err != nil {
			return &ValidationError{Name: "participants_limit", err: fmt.Errorf(`ent: validator failed for field "Session.participants_limit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MinAge(); !ok {
		return &ValidationError{Name: "min_age", err: errors.New(`ent: missing required field "Session.min_age"`)}
	}
	if v, ok := _c.mutation.MinAge(); ok {
		if err := session.MinAgeValidator(v); err != nil {
			return &ValidationError{Name: "min_age", err: fmt.Errorf(`ent: validator failed for field "Session.min_age": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PresenterName(); ok {
		if err := session.PresenterNameValidator(v); err != nil {
			return &ValidationError{Name: "presenter_name", err: fmt.Errorf(`ent: validator failed for field "Session.presenter_name": %w`, err)}
		}
	}
	if len(_c.mutation.EventIDs()) == 0 {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required edge "Session.event"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(session.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.ParticipantsLimit(); ok {
		_spec.SetField(session.FieldParticipantsLimit, field.TypeInt, value)
		_node.ParticipantsLimit = value
	}
	if value, ok := _c.mutation.MinAge(); ok {
		_spec.SetField(session.FieldMinAge, field.TypeInt, value)
		_node.MinAge = value
	}
	if value, ok := _c.mutation.Requirements(); ok {
		_spec.SetField(session.FieldRequirements, field.TypeString, value)
		_node.Requirements = value
	}
	if value, ok := _c.mutation.PresenterName(); ok {
		_spec.SetField(session.FieldPresenterName, field.TypeString, value)
		_node.PresenterName = value
	}
	if nodes := _c.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.EventTable,
			Columns: []string{session.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EventID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.HostIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   session.HostTable,
			Columns: []string{session.HostColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.HostID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgendaItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   session.AgendaItemTable,
			Columns: []string{session.AgendaItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agendaitem.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ParticipationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ParticipationsTable,
			Columns: []string{session.ParticipationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionparticipation.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreate) OnConflict(opts ...sql.ConflictOption) *SessionUpsertOne {
	_c.conflict = opts
	return &SessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreate) OnConflictColumns(columns ...string) *SessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertOne{
		create: _c,
	}
}

type (
	// SessionUpsertOne is the builder for "upsert"-ing
	//  one Session node.
	SessionUpsertOne struct {
		create *SessionCreate
	}

	// SessionUpsert is the "OnConflict" setter.
	SessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsert) SetUpdatedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateUpdatedAt() *SessionUpsert {
	u.SetExcluded(session.FieldUpdatedAt)
	return u
}

// SetEventID sets the "event_id" field.
func (u *SessionUpsert) SetEventID(v int64) *SessionUpsert {
	u.Set(session.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *SessionUpsert) UpdateEventID() *SessionUpsert {
	u.SetExcluded(session.FieldEventID)
	return u
}

// SetHostID sets the "host_id" field.
func (u *SessionUpsert) SetHostID(v int64) *SessionUpsert {
	u.Set(session.FieldHostID, v)
	return u
}

// UpdateHostID sets the "host_id" field to the value that was provided on create.
func (u *SessionUpsert) UpdateHostID() *SessionUpsert {
	u.SetExcluded(session.FieldHostID)
	return u
}

// ClearHostID clears the value of the "host_id" field.
func (u *SessionUpsert) ClearHostID() *SessionUpsert {
	u.SetNull(session.FieldHostID)
	return u
}

// SetTitle sets the "title" field.
func (u *SessionUpsert) SetTitle(v string) *SessionUpsert {
	u.Set(session.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SessionUpsert) UpdateTitle() *SessionUpsert {
	u.SetExcluded(session.FieldTitle)
	return u
}

// SetSlug sets the "slug" field.
func (u *SessionUpsert) SetSlug(v string) *SessionUpsert {
	u.Set(session.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *SessionUpsert) UpdateSlug() *SessionUpsert {
	u.SetExcluded(session.FieldSlug)
	return u
}

// SetParticipantsLimit sets the "participants_limit" field.
func (u *SessionUpsert) SetParticipantsLimit(v int) *SessionUpsert {
	u.Set(session.FieldParticipantsLimit, v)
	return u
}

// UpdateParticipantsLimit sets the "participants_limit" field to the value that was provided on create.
func (u *SessionUpsert) UpdateParticipantsLimit() *SessionUpsert {
	u.SetExcluded(session.FieldParticipantsLimit)
	return u
}

// AddParticipantsLimit adds v to the "participants_limit" field.
func (u *SessionUpsert) AddParticipantsLimit(v int) *SessionUpsert {
	u.Add(session.FieldParticipantsLimit, v)
	return u
}

// SetMinAge sets the "min_age" field.
func (u *SessionUpsert) SetMinAge(v int) *SessionUpsert {
	u.Set(session.FieldMinAge, v)
	return u
}

// UpdateMinAge sets the "min_age" field to the value that was provided on create.
func (u *SessionUpsert) UpdateMinAge() *SessionUpsert {
	u.SetExcluded(session.FieldMinAge)
	return u
}

// AddMinAge adds v to the "min_age" field.
func (u *SessionUpsert) AddMinAge(v int) *SessionUpsert {
	u.Add(session.FieldMinAge, v)
	return u
}

// SetRequirements sets the "requirements" field.
func (u *SessionUpsert) SetRequirements(v string) *SessionUpsert {
	u.Set(session.FieldRequirements, v)
	return u
}

// UpdateRequirements sets the "requirements" field to the value that was provided on create.
func (u *SessionUpsert) UpdateRequirements() *SessionUpsert {
	u.SetExcluded(session.FieldRequirements)
	return u
}

// ClearRequirements clears the value of the "requirements" field.
func (u *SessionUpsert) ClearRequirements() *SessionUpsert {
	u.SetNull(session.FieldRequirements)
	return u
}

// SetPresenterName sets the "presenter_name" field.
func (u *SessionUpsert) SetPresenterName(v string) *SessionUpsert {
	u.Set(session.FieldPresenterName, v)
	return u
}

// UpdatePresenterName sets the "presenter_name" field to the value that was provided on create.
func (u *SessionUpsert) UpdatePresenterName() *SessionUpsert {
	u.SetExcluded(session.FieldPresenterName)
	return u
}

// ClearPresenterName clears the value of the "presenter_name" field.
func (u *SessionUpsert) ClearPresenterName() *SessionUpsert {
	u.SetNull(session.FieldPresenterName)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertOne) UpdateNewValues() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(session.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(session.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionUpsertOne) Ignore() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertOne) DoNothing() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreate.OnConflict
// documentation for more info.
func (u *SessionUpsertOne) Update(set func(*SessionUpsert)) *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsertOne) SetUpdatedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateUpdatedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEventID sets the "event_id" field.
func (u *SessionUpsertOne) SetEventID(v int64) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateEventID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateEventID()
	})
}

// SetHostID sets the "host_id" field.
func (u *SessionUpsertOne) SetHostID(v int64) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetHostID(v)
	})
}

// UpdateHostID sets the "host_id" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateHostID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateHostID()
	})
}

// ClearHostID clears the value of the "host_id" field.
func (u *SessionUpsertOne) ClearHostID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearHostID()
	})
}

// SetTitle sets the "title" field.
func (u *SessionUpsertOne) SetTitle(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateTitle() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTitle()
	})
}

// SetSlug sets the "slug" field.
func (u *SessionUpsertOne) SetSlug(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateSlug() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateSlug()
	})
}

// SetParticipantsLimit sets the "participants_limit" field.
func (u *SessionUpsertOne) SetParticipantsLimit(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetParticipantsLimit(v)
	})
}

// AddParticipantsLimit adds v to the "participants_limit" field.
func (u *SessionUpsertOne) AddParticipantsLimit(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddParticipantsLimit(v)
	})
}

// UpdateParticipantsLimit sets the "participants_limit" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateParticipantsLimit() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateParticipantsLimit()
	})
}

// SetMinAge sets the "min_age" field.
func (u *SessionUpsertOne) SetMinAge(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetMinAge(v)
	})
}

// AddMinAge adds v to the "min_age" field.
func (u *SessionUpsertOne) AddMinAge(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddMinAge(v)
	})
}

// UpdateMinAge sets the "min_age" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateMinAge() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateMinAge()
	})
}

// SetRequirements sets the "requirements" field.
func (u *SessionUpsertOne) SetRequirements(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetRequirements(v)
	})
}

// UpdateRequirements sets the "requirements" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateRequirements() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateRequirements()
	})
}

// ClearRequirements clears the value of the "requirements" field.
func (u *SessionUpsertOne) ClearRequirements() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearRequirements()
	})
}

// SetPresenterName sets the "presenter_name" field.
func (u *SessionUpsertOne) SetPresenterName(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetPresenterName(v)
	})
}

// UpdatePresenterName sets the "presenter_name" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdatePresenterName() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdatePresenterName()
	})
}

// ClearPresenterName clears the value of the "presenter_name" field.
func (u *SessionUpsertOne) ClearPresenterName() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearPresenterName()
	})
}

// Exec executes the query.
func (u *SessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
	conflict []sql.ConflictOption
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionUpsertBulk {
	_c.conflict = opts
	return &SessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflictColumns(columns ...string) *SessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertBulk{
		create: _c,
	}
}

// SessionUpsertBulk is the builder for "upsert"-ing
// a bulk of Session nodes.
type SessionUpsertBulk struct {
	create *SessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertBulk) UpdateNewValues() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(session.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(session.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionUpsertBulk) Ignore() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertBulk) DoNothing() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreateBulk.OnConflict
// documentation for more info.
func (u *SessionUpsertBulk) Update(set func(*SessionUpsert)) *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsertBulk) SetUpdatedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateUpdatedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEventID sets the "event_id" field.
func (u *SessionUpsertBulk) SetEventID(v int64) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateEventID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateEventID()
	})
}

// SetHostID sets the "host_id" field.
func (u *SessionUpsertBulk) SetHostID(v int64) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetHostID(v)
	})
}

// UpdateHostID sets the "host_id" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateHostID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateHostID()
	})
}

// ClearHostID clears the value of the "host_id" field.
func (u *SessionUpsertBulk) ClearHostID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearHostID()
	})
}

// SetTitle sets the "title" field.
func (u *SessionUpsertBulk) SetTitle(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateTitle() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTitle()
	})
}

// SetSlug sets the "slug" field.
func (u *SessionUpsertBulk) SetSlug(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateSlug() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateSlug()
	})
}

// SetParticipantsLimit sets the "participants_limit" field.
func (u *SessionUpsertBulk) SetParticipantsLimit(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetParticipantsLimit(v)
	})
}

// AddParticipantsLimit adds v to the "participants_limit" field.
func (u *SessionUpsertBulk) AddParticipantsLimit(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddParticipantsLimit(v)
	})
}

// UpdateParticipantsLimit sets the "participants_limit" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateParticipantsLimit() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateParticipantsLimit()
	})
}

// SetMinAge sets the "min_age" field.
func (u *SessionUpsertBulk) SetMinAge(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetMinAge(v)
	})
}

// AddMinAge adds v to the "min_age" field.
func (u *SessionUpsertBulk) AddMinAge(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddMinAge(v)
	})
}

// UpdateMinAge sets the "min_age" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateMinAge() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateMinAge()
	})
}

// SetRequirements sets the "requirements" field.
func (u *SessionUpsertBulk) SetRequirements(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetRequirements(v)
	})
}

// UpdateRequirements sets the "requirements" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateRequirements() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateRequirements()
	})
}

// ClearRequirements clears the value of the "requirements" field.
func (u *SessionUpsertBulk) ClearRequirements() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearRequirements()
	})
}

// SetPresenterName sets the "presenter_name" field.
func (u *SessionUpsertBulk) SetPresenterName(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetPresenterName(v)
	})
}

// UpdatePresenterName sets the "presenter_name" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdatePresenterName() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdatePresenterName()
	})
}

// ClearPresenterName clears the value of the "presenter_name" field.
func (u *SessionUpsertBulk) ClearPresenterName() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearPresenterName()
	})
}

// Exec executes the query.
func (u *SessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
