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
	"ludamus.io/enrolld/ent/enrollmentconfig"
	"ludamus.io/enrolld/ent/event"
	"ludamus.io/enrolld/ent/session"
	"ludamus.io/enrolld/ent/space"
	"ludamus.io/enrolld/ent/sphere"
)

// EventCreate is the builder for creating a Event entity.
type EventCreate struct {
	config
	mutation *EventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventCreate) SetCreatedAt(v time.Time) *EventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableCreatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EventCreate) SetUpdatedAt(v time.Time) *EventCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableUpdatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSphereID sets the "sphere_id" field.
func (_c *EventCreate) SetSphereID(v int64) *EventCreate {
	_c.mutation.SetSphereID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *EventCreate) SetName(v string) *EventCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *EventCreate) SetSlug(v string) *EventCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *EventCreate) SetStartTime(v time.Time) *EventCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *EventCreate) SetEndTime(v time.Time) *EventCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetProposalStartTime sets the "proposal_start_time" field.
func (_c *EventCreate) SetProposalStartTime(v time.Time) *EventCreate {
	_c.mutation.SetProposalStartTime(v)
	return _c
}

// SetNillableProposalStartTime sets the "proposal_start_time" field if the given value is not nil.
func (_c *EventCreate) SetNillableProposalStartTime(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetProposalStartTime(*v)
	}
	return _c
}

// SetProposalEndTime sets the "proposal_end_time" field.
func (_c *EventCreate) SetProposalEndTime(v time.Time) *EventCreate {
	_c.mutation.SetProposalEndTime(v)
	return _c
}

// SetNillableProposalEndTime sets the "proposal_end_time" field if the given value is not nil.
func (_c *EventCreate) SetNillableProposalEndTime(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetProposalEndTime(*v)
	}
	return _c
}

// SetPublicationTime sets the "publication_time" field.
func (_c *EventCreate) SetPublicationTime(v time.Time) *EventCreate {
	_c.mutation.SetPublicationTime(v)
	return _c
}

// SetNillablePublicationTime sets the "publication_time" field if the given value is not nil.
func (_c *EventCreate) SetNillablePublicationTime(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetPublicationTime(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EventCreate) SetID(v int64) *EventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSphere sets the "sphere" edge to the Sphere entity.
func (_c *EventCreate) SetSphere(v *Sphere) *EventCreate {
	return _c.SetSphereID(v.ID)
}

// AddSpaceIDs adds the "spaces" edge to the Space entity by IDs.
func (_c *EventCreate) AddSpaceIDs(ids ...int64) *EventCreate {
	_c.mutation.AddSpaceIDs(ids...)
	return _c
}

// AddSpaces adds the "spaces" edges to the Space entity.
func (_c *EventCreate) AddSpaces(v ...*Space) *EventCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSpaceIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_c *EventCreate) AddSessionIDs(ids ...int64) *EventCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_c *EventCreate) AddSessions(v ...*Session) *EventCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// AddEnrollmentConfigIDs adds the "enrollment_configs" edge to the EnrollmentConfig entity by IDs.
func (_c *EventCreate) AddEnrollmentConfigIDs(ids ...int64) *EventCreate {
	_c.mutation.AddEnrollmentConfigIDs(ids...)
	return _c
}

// AddEnrollmentConfigs adds the "enrollment_configs" edges to the EnrollmentConfig entity.
func (_c *EventCreate) AddEnrollmentConfigs(v ...*EnrollmentConfig) *EventCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEnrollmentConfigIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_c *EventCreate) Mutation() *EventMutation {
	return _c.mutation
}

// Save creates the Event in the database.
func (_c *EventCreate) Save(ctx context.Context) (*Event, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventCreate) SaveX(ctx context.Context) *Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := event.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := event.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Event.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Event.updated_at"`)}
	}
	if _, ok := _c.mutation.SphereID(); !ok {
		return &ValidationError{Name: "sphere_id", err: errors.New(`ent: missing required field "Event.sphere_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Event.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := event.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Event.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Event.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := event.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Event.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "Event.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`ent: missing required field "Event.end_time"`)}
	}
	if len(_c.mutation.SphereIDs()) == 0 {
		return &ValidationError{Name: "sphere", err: errors.New(`ent: missing required edge "Event.sphere"`)}
	}
	return nil
}

func (_c *EventCreate) sqlSave(ctx context.Context) (*Event, error) {
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

func (_c *EventCreate) createSpec() (*Event, *sqlgraph.CreateSpec) {
	var (
		_node = &Event{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(event.Table, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(event.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(event.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(event.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(event.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(event.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.ProposalStartTime(); ok {
		_spec.SetField(event.FieldProposalStartTime, field.TypeTime, value)
		_node.ProposalStartTime = &value
	}
	if value, ok := _c.mutation.ProposalEndTime(); ok {
		_spec.SetField(event.FieldProposalEndTime, field.TypeTime, value)
		_node.ProposalEndTime = &value
	}
	if value, ok := _c.mutation.PublicationTime(); ok {
		_spec.SetField(event.FieldPublicationTime, field.TypeTime, value)
		_node.PublicationTime = &value
	}
	if nodes := _c.mutation.SphereIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.SphereTable,
			Columns: []string{event.SphereColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sphere.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SphereID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SpacesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.SpacesTable,
			Columns: []string{event.SpacesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(space.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.SessionsTable,
			Columns: []string{event.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EnrollmentConfigsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.EnrollmentConfigsTable,
			Columns: []string{event.EnrollmentConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollmentconfig.FieldID, field.TypeInt64),
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
//	client.Event.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreate) OnConflict(opts ...sql.ConflictOption) *EventUpsertOne {
	_c.conflict = opts
	return &EventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreate) OnConflictColumns(columns ...string) *EventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertOne{
		create: _c,
	}
}

type (
	// EventUpsertOne is the builder for "upsert"-ing
	//  one Event node.
	EventUpsertOne struct {
		create *EventCreate
	}

	// EventUpsert is the "OnConflict" setter.
	EventUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *EventUpsert) SetUpdatedAt(v time.Time) *EventUpsert {
	u.Set(event.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventUpsert) UpdateUpdatedAt() *EventUpsert {
	u.SetExcluded(event.FieldUpdatedAt)
	return u
}

// SetSphereID sets the "sphere_id" field.
func (u *EventUpsert) SetSphereID(v int64) *EventUpsert {
	u.Set(event.FieldSphereID, v)
	return u
}

// UpdateSphereID sets the "sphere_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateSphereID() *EventUpsert {
	u.SetExcluded(event.FieldSphereID)
	return u
}

// SetName sets the "name" field.
func (u *EventUpsert) SetName(v string) *EventUpsert {
	u.Set(event.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EventUpsert) UpdateName() *EventUpsert {
	u.SetExcluded(event.FieldName)
	return u
}

// SetSlug sets the "slug" field.
func (u *EventUpsert) SetSlug(v string) *EventUpsert {
	u.Set(event.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *EventUpsert) UpdateSlug() *EventUpsert {
	u.SetExcluded(event.FieldSlug)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *EventUpsert) SetStartTime(v time.Time) *EventUpsert {
	u.Set(event.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *EventUpsert) UpdateStartTime() *EventUpsert {
	u.SetExcluded(event.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *EventUpsert) SetEndTime(v time.Time) *EventUpsert {
	u.Set(event.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *EventUpsert) UpdateEndTime() *EventUpsert {
	u.SetExcluded(event.FieldEndTime)
	return u
}

// SetProposalStartTime sets the "proposal_start_time" field.
func (u *EventUpsert) SetProposalStartTime(v time.Time) *EventUpsert {
	u.Set(event.FieldProposalStartTime, v)
	return u
}

// UpdateProposalStartTime sets the "proposal_start_time" field to the value that was provided on create.
func (u *EventUpsert) UpdateProposalStartTime() *EventUpsert {
	u.SetExcluded(event.FieldProposalStartTime)
	return u
}

// ClearProposalStartTime clears the value of the "proposal_start_time" field.
func (u *EventUpsert) ClearProposalStartTime() *EventUpsert {
	u.SetNull(event.FieldProposalStartTime)
	return u
}

// SetProposalEndTime sets the "proposal_end_time" field.
func (u *EventUpsert) SetProposalEndTime(v time.Time) *EventUpsert {
	u.Set(event.FieldProposalEndTime, v)
	return u
}

// UpdateProposalEndTime sets the "proposal_end_time" field to the value that was provided on create.
func (u *EventUpsert) UpdateProposalEndTime() *EventUpsert {
	u.SetExcluded(event.FieldProposalEndTime)
	return u
}

// ClearProposalEndTime clears the value of the "proposal_end_time" field.
func (u *EventUpsert) ClearProposalEndTime() *EventUpsert {
	u.SetNull(event.FieldProposalEndTime)
	return u
}

// SetPublicationTime sets the "publication_time" field.
func (u *EventUpsert) SetPublicationTime(v time.Time) *EventUpsert {
	u.Set(event.FieldPublicationTime, v)
	return u
}

// UpdatePublicationTime sets the "publication_time" field to the value that was provided on create.
func (u *EventUpsert) UpdatePublicationTime() *EventUpsert {
	u.SetExcluded(event.FieldPublicationTime)
	return u
}

// ClearPublicationTime clears the value of the "publication_time" field.
func (u *EventUpsert) ClearPublicationTime() *EventUpsert {
	u.SetNull(event.FieldPublicationTime)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(event.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventUpsertOne) UpdateNewValues() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(event.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(event.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventUpsertOne) Ignore() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertOne) DoNothing() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreate.OnConflict
// documentation for more info.
func (u *EventUpsertOne) Update(set func(*EventUpsert)) *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventUpsertOne) SetUpdatedAt(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateUpdatedAt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSphereID sets the "sphere_id" field.
func (u *EventUpsertOne) SetSphereID(v int64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetSphereID(v)
	})
}

// UpdateSphereID sets the "sphere_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateSphereID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSphereID()
	})
}

// SetName sets the "name" field.
func (u *EventUpsertOne) SetName(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateName() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateName()
	})
}

// SetSlug sets the "slug" field.
func (u *EventUpsertOne) SetSlug(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateSlug() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSlug()
	})
}

// SetStartTime sets the "start_time" field.
func (u *EventUpsertOne) SetStartTime(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateStartTime() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *EventUpsertOne) SetEndTime(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateEndTime() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEndTime()
	})
}

// SetProposalStartTime sets the "proposal_start_time" field.
func (u *EventUpsertOne) SetProposalStartTime(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetProposalStartTime(v)
	})
}

// UpdateProposalStartTime sets the "proposal_start_time" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateProposalStartTime() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateProposalStartTime()
	})
}

// ClearProposalStartTime clears the value of the "proposal_start_time" field.
func (u *EventUpsertOne) ClearProposalStartTime() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearProposalStartTime()
	})
}

// SetProposalEndTime sets the "proposal_end_time" field.
func (u *EventUpsertOne) SetProposalEndTime(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetProposalEndTime(v)
	})
}

// UpdateProposalEndTime sets the "proposal_end_time" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateProposalEndTime() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateProposalEndTime()
	})
}

// ClearProposalEndTime clears the value of the "proposal_end_time" field.
func (u *EventUpsertOne) ClearProposalEndTime() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearProposalEndTime()
	})
}

// SetPublicationTime sets the "publication_time" field.
func (u *EventUpsertOne) SetPublicationTime(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetPublicationTime(v)
	})
}

// UpdatePublicationTime sets the "publication_time" field to the value that was provided on create.
func (u *EventUpsertOne) UpdatePublicationTime() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdatePublicationTime()
	})
}

// ClearPublicationTime clears the value of the "publication_time" field.
func (u *EventUpsertOne) ClearPublicationTime() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearPublicationTime()
	})
}

// Exec executes the query.
func (u *EventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventCreateBulk is the builder for creating many Event entities in bulk.
type EventCreateBulk struct {
	config
	err      error
	builders []*EventCreate
	conflict []sql.ConflictOption
}

// Save creates the Event entities in the database.
func (_c *EventCreateBulk) Save(ctx context.Context) ([]*Event, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Event, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMutation)
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
func (_c *EventCreateBulk) SaveX(ctx context.Context) []*Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventUpsertBulk {
	_c.conflict = opts
	return &EventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflictColumns(columns ...string) *EventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertBulk{
		create: _c,
	}
}

// EventUpsertBulk is the builder for "upsert"-ing
// a bulk of Event nodes.
type EventUpsertBulk struct {
	create *EventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(event.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventUpsertBulk) UpdateNewValues() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(event.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(event.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventUpsertBulk) Ignore() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertBulk) DoNothing() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreateBulk.OnConflict
// documentation for more info.
func (u *EventUpsertBulk) Update(set func(*EventUpsert)) *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventUpsertBulk) SetUpdatedAt(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateUpdatedAt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSphereID sets the "sphere_id" field.
func (u *EventUpsertBulk) SetSphereID(v int64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetSphereID(v)
	})
}

// UpdateSphereID sets the "sphere_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateSphereID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSphereID()
	})
}

// SetName sets the "name" field.
func (u *EventUpsertBulk) SetName(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateName() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateName()
	})
}

// SetSlug sets the "slug" field.
func (u *EventUpsertBulk) SetSlug(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateSlug() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSlug()
	})
}

// SetStartTime sets the "start_time" field.
func (u *EventUpsertBulk) SetStartTime(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateStartTime() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *EventUpsertBulk) SetEndTime(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateEndTime() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEndTime()
	})
}

// SetProposalStartTime sets the "proposal_start_time" field.
func (u *EventUpsertBulk) SetProposalStartTime(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetProposalStartTime(v)
	})
}

// UpdateProposalStartTime sets the "proposal_start_time" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateProposalStartTime() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateProposalStartTime()
	})
}

// ClearProposalStartTime clears the value of the "proposal_start_time" field.
func (u *EventUpsertBulk) ClearProposalStartTime() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearProposalStartTime()
	})
}

// SetProposalEndTime sets the "proposal_end_time" field.
func (u *EventUpsertBulk) SetProposalEndTime(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetProposalEndTime(v)
	})
}

// UpdateProposalEndTime sets the "proposal_end_time" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateProposalEndTime() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateProposalEndTime()
	})
}

// ClearProposalEndTime clears the value of the "proposal_end_time" field.
func (u *EventUpsertBulk) ClearProposalEndTime() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearProposalEndTime()
	})
}

// SetPublicationTime sets the "publication_time" field.
func (u *EventUpsertBulk) SetPublicationTime(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetPublicationTime(v)
	})
}

// UpdatePublicationTime sets the "publication_time" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdatePublicationTime() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdatePublicationTime()
	})
}

// ClearPublicationTime clears the value of the "publication_time" field.
func (u *EventUpsertBulk) ClearPublicationTime() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearPublicationTime()
	})
}

// Exec executes the query.
func (u *EventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
