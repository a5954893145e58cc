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
	"ludamus.io/enrolld/ent/space"
)

// SpaceCreate is the builder for creating a Space entity.
type SpaceCreate struct {
	config
	mutation *SpaceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SpaceCreate) SetCreatedAt(v time.Time) *SpaceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SpaceCreate) SetNillableCreatedAt(v *time.Time) *SpaceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SpaceCreate) SetUpdatedAt(v time.Time) *SpaceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SpaceCreate) SetNillableUpdatedAt(v *time.Time) *SpaceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *SpaceCreate) SetEventID(v int64) *SpaceCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SpaceCreate) SetName(v string) *SpaceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *SpaceCreate) SetSlug(v string) *SpaceCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SpaceCreate) SetID(v int64) *SpaceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEvent sets the "event" edge to the Event entity.
func (_c *SpaceCreate) SetEvent(v *Event) *SpaceCreate {
	return _c.SetEventID(v.ID)
}

// AddAgendaItemIDs adds the "agenda_items" edge to the AgendaItem entity by IDs.
func (_c *SpaceCreate) AddAgendaItemIDs(ids ...int64) *SpaceCreate {
	_c.mutation.AddAgendaItemIDs(ids...)
	return _c
}

// AddAgendaItems adds the "agenda_items" edges to the AgendaItem entity.
func (_c *SpaceCreate) AddAgendaItems(v ...*AgendaItem) *SpaceCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgendaItemIDs(ids...)
}

// Mutation returns the SpaceMutation object of the builder.
func (_c *SpaceCreate) Mutation() *SpaceMutation {
	return _c.mutation
}

// Save creates the Space in the database.
func (_c *SpaceCreate) Save(ctx context.Context) (*Space, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpaceCreate) SaveX(ctx context.Context) *Space {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpaceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpaceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpaceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := space.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := space.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpaceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Space.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Space.updated_at"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "Space.event_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Space.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := space.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Space.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Space.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := space.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Space.slug": %w`, err)}
		}
	}
	if len(_c.mutation.EventIDs()) == 0 {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required edge "Space.event"`)}
	}
	return nil
}

func (_c *SpaceCreate) sqlSave(ctx context.Context) (*Space, error) {
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

func (_c *SpaceCreate) createSpec() (*Space, *sqlgraph.CreateSpec) {
	var (
		_node = &Space{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(space.Table, sqlgraph.NewFieldSpec(space.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(space.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(space.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(space.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(space.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if nodes := _c.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   space.EventTable,
			Columns: []string{space.EventColumn},
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
	if nodes := _c.mutation.AgendaItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   space.AgendaItemsTable,
			Columns: []string{space.AgendaItemsColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Space.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SpaceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SpaceCreate) OnConflict(opts ...sql.ConflictOption) *SpaceUpsertOne {
	_c.conflict = opts
	return &SpaceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Space.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SpaceCreate) OnConflictColumns(columns ...string) *SpaceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SpaceUpsertOne{
		create: _c,
	}
}

type (
	// SpaceUpsertOne is the builder for "upsert"-ing
	//  one Space node.
	SpaceUpsertOne struct {
		create *SpaceCreate
	}

	// SpaceUpsert is the "OnConflict" setter.
	SpaceUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SpaceUpsert) SetUpdatedAt(v time.Time) *SpaceUpsert {
	u.Set(space.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SpaceUpsert) UpdateUpdatedAt() *SpaceUpsert {
	u.SetExcluded(space.FieldUpdatedAt)
	return u
}

// SetEventID sets the "event_id" field.
func (u *SpaceUpsert) SetEventID(v int64) *SpaceUpsert {
	u.Set(space.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *SpaceUpsert) UpdateEventID() *SpaceUpsert {
	u.SetExcluded(space.FieldEventID)
	return u
}

// SetName sets the "name" field.
func (u *SpaceUpsert) SetName(v string) *SpaceUpsert {
	u.Set(space.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SpaceUpsert) UpdateName() *SpaceUpsert {
	u.SetExcluded(space.FieldName)
	return u
}

// SetSlug sets the "slug" field.
func (u *SpaceUpsert) SetSlug(v string) *SpaceUpsert {
	u.Set(space.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *SpaceUpsert) UpdateSlug() *SpaceUpsert {
	u.SetExcluded(space.FieldSlug)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Space.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(space.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SpaceUpsertOne) UpdateNewValues() *SpaceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(space.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(space.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Space.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SpaceUpsertOne) Ignore() *SpaceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SpaceUpsertOne) DoNothing() *SpaceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SpaceCreate.OnConflict
// documentation for more info.
func (u *SpaceUpsertOne) Update(set func(*SpaceUpsert)) *SpaceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SpaceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SpaceUpsertOne) SetUpdatedAt(v time.Time) *SpaceUpsertOne {
	return u.Update(func(s *SpaceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SpaceUpsertOne) UpdateUpdatedAt() *SpaceUpsertOne {
	return u.Update(func(s *SpaceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEventID sets the "event_id" field.
func (u *SpaceUpsertOne) SetEventID(v int64) *SpaceUpsertOne {
	return u.Update(func(s *SpaceUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *SpaceUpsertOne) UpdateEventID() *SpaceUpsertOne {
	return u.Update(func(s *SpaceUpsert) {
		s.UpdateEventID()
	})
}

// SetName sets the "name" field.
func (u *SpaceUpsertOne) SetName(v string) *SpaceUpsertOne {
	return u.Update(func(s *SpaceUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SpaceUpsertOne) UpdateName() *SpaceUpsertOne {
	return u.Update(func(s *SpaceUpsert) {
		s.UpdateName()
	})
}

// SetSlug sets the "slug" field.
func (u *SpaceUpsertOne) SetSlug(v string) *SpaceUpsertOne {
	return u.Update(func(s *SpaceUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *SpaceUpsertOne) UpdateSlug() *SpaceUpsertOne {
	return u.Update(func(s *SpaceUpsert) {
		s.UpdateSlug()
	})
}

// Exec executes the query.
func (u *SpaceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SpaceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SpaceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SpaceUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SpaceUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SpaceCreateBulk is the builder for creating many Space entities in bulk.
type SpaceCreateBulk struct {
	config
	err      error
	builders []*SpaceCreate
	conflict []sql.ConflictOption
}

// Save creates the Space entities in the database.
func (_c *SpaceCreateBulk) Save(ctx context.Context) ([]*Space, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Space, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpaceMutation)
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
func (_c *SpaceCreateBulk) SaveX(ctx context.Context) []*Space {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpaceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpaceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Space.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SpaceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SpaceCreateBulk) OnConflict(opts ...sql.ConflictOption) *SpaceUpsertBulk {
	_c.conflict = opts
	return &SpaceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Space.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SpaceCreateBulk) OnConflictColumns(columns ...string) *SpaceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SpaceUpsertBulk{
		create: _c,
	}
}

// SpaceUpsertBulk is the builder for "upsert"-ing
// a bulk of Space nodes.
type SpaceUpsertBulk struct {
	create *SpaceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Space.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(space.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SpaceUpsertBulk) UpdateNewValues() *SpaceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(space.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(space.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Space.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SpaceUpsertBulk) Ignore() *SpaceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SpaceUpsertBulk) DoNothing() *SpaceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SpaceCreateBulk.OnConflict
// documentation for more info.
func (u *SpaceUpsertBulk) Update(set func(*SpaceUpsert)) *SpaceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SpaceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SpaceUpsertBulk) SetUpdatedAt(v time.Time) *SpaceUpsertBulk {
	return u.Update(func(s *SpaceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SpaceUpsertBulk) UpdateUpdatedAt() *SpaceUpsertBulk {
	return u.Update(func(s *SpaceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEventID sets the "event_id" field.
func (u *SpaceUpsertBulk) SetEventID(v int64) *SpaceUpsertBulk {
	return u.Update(func(s *SpaceUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *SpaceUpsertBulk) UpdateEventID() *SpaceUpsertBulk {
	return u.Update(func(s *SpaceUpsert) {
		s.UpdateEventID()
	})
}

// SetName sets the "name" field.
func (u *SpaceUpsertBulk) SetName(v string) *SpaceUpsertBulk {
	return u.Update(func(s *SpaceUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SpaceUpsertBulk) UpdateName() *SpaceUpsertBulk {
	return u.Update(func(s *SpaceUpsert) {
		s.UpdateName()
	})
}

// SetSlug sets the "slug" field.
func (u *SpaceUpsertBulk) SetSlug(v string) *SpaceUpsertBulk {
	return u.Update(func(s *SpaceUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *SpaceUpsertBulk) UpdateSlug() *SpaceUpsertBulk {
	return u.Update(func(s *SpaceUpsert) {
		s.UpdateSlug()
	})
}

// Exec executes the query.
func (u *SpaceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SpaceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SpaceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SpaceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
