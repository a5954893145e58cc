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
	"ludamus.io/enrolld/ent/event"
	"ludamus.io/enrolld/ent/sphere"
)

// SphereCreate is the builder for creating a Sphere entity.
type SphereCreate struct {
	config
	mutation *SphereMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SphereCreate) SetCreatedAt(v time.Time) *SphereCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SphereCreate) SetNillableCreatedAt(v *time.Time) *SphereCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SphereCreate) SetUpdatedAt(v time.Time) *SphereCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SphereCreate) SetNillableUpdatedAt(v *time.Time) *SphereCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *SphereCreate) SetName(v string) *SphereCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetHost sets the "host" field.
func (_c *SphereCreate) SetHost(v string) *SphereCreate {
	_c.mutation.SetHost(v)
	return _c
}

// SetIsOpen sets the "is_open" field.
func (_c *SphereCreate) SetIsOpen(v bool) *SphereCreate {
	_c.mutation.SetIsOpen(v)
	return _c
}

// SetNillableIsOpen sets the "is_open" field if the given value is not nil.
func (_c *SphereCreate) SetNillableIsOpen(v *bool) *SphereCreate {
	if v != nil {
		_c.SetIsOpen(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SphereCreate) SetID(v int64) *SphereCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *SphereCreate) AddEventIDs(ids ...int64) *SphereCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *SphereCreate) AddEvents(v ...*Event) *SphereCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the SphereMutation object of the builder.
func (_c *SphereCreate) Mutation() *SphereMutation {
	return _c.mutation
}

// Save creates the Sphere in the database.
func (_c *SphereCreate) Save(ctx context.Context) (*Sphere, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SphereCreate) SaveX(ctx context.Context) *Sphere {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SphereCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SphereCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SphereCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sphere.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sphere.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsOpen(); !ok {
		v := sphere.DefaultIsOpen
		_c.mutation.SetIsOpen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SphereCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Sphere.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Sphere.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Sphere.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := sphere.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Sphere.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Host(); !ok {
		return &ValidationError{Name: "host", err: errors.New(`ent: missing required field "Sphere.host"`)}
	}
	if v, ok := _c.mutation.Host(); ok {
		if err := sphere.HostValidator(v); err != nil {
			return &ValidationError{Name: "host", err: fmt.Errorf(`ent: validator failed for field "Sphere.host": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsOpen(); !ok {
		return &ValidationError{Name: "is_open", err: errors.New(`ent: missing required field "Sphere.is_open"`)}
	}
	return nil
}

func (_c *SphereCreate) sqlSave(ctx context.Context) (*Sphere, error) {
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

func (_c *SphereCreate) createSpec() (*Sphere, *sqlgraph.CreateSpec) {
	var (
		_node = &Sphere{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sphere.Table, sqlgraph.NewFieldSpec(sphere.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sphere.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sphere.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(sphere.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Host(); ok {
		_spec.SetField(sphere.FieldHost, field.TypeString, value)
		_node.Host = value
	}
	if value, ok := _c.mutation.IsOpen(); ok {
		_spec.SetField(sphere.FieldIsOpen, field.TypeBool, value)
		_node.IsOpen = value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sphere.EventsTable,
			Columns: []string{sphere.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
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
//	client.Sphere.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SphereUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SphereCreate) OnConflict(opts ...sql.ConflictOption) *SphereUpsertOne {
	_c.conflict = opts
	return &SphereUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Sphere.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SphereCreate) OnConflictColumns(columns ...string) *SphereUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SphereUpsertOne{
		create: _c,
	}
}

type (
	// SphereUpsertOne is the builder for "upsert"-ing
	//  one Sphere node.
	SphereUpsertOne struct {
		create *SphereCreate
	}

	// SphereUpsert is the "OnConflict" setter.
	SphereUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SphereUpsert) SetUpdatedAt(v time.Time) *SphereUpsert {
	u.Set(sphere.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SphereUpsert) UpdateUpdatedAt() *SphereUpsert {
	u.SetExcluded(sphere.FieldUpdatedAt)
	return u
}

// SetName sets the "name" field.
func (u *SphereUpsert) SetName(v string) *SphereUpsert {
	u.Set(sphere.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SphereUpsert) UpdateName() *SphereUpsert {
	u.SetExcluded(sphere.FieldName)
	return u
}

// SetHost sets the "host" field.
func (u *SphereUpsert) SetHost(v string) *SphereUpsert {
	u.Set(sphere.FieldHost, v)
	return u
}

// UpdateHost sets the "host" field to the value that was provided on create.
func (u *SphereUpsert) UpdateHost() *SphereUpsert {
	u.SetExcluded(sphere.FieldHost)
	return u
}

// SetIsOpen sets the "is_open" field.
func (u *SphereUpsert) SetIsOpen(v bool) *SphereUpsert {
	u.Set(sphere.FieldIsOpen, v)
	return u
}

// UpdateIsOpen sets the "is_open" field to the value that was provided on create.
func (u *SphereUpsert) UpdateIsOpen() *SphereUpsert {
	u.SetExcluded(sphere.FieldIsOpen)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Sphere.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sphere.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SphereUpsertOne) UpdateNewValues() *SphereUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sphere.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(sphere.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Sphere.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SphereUpsertOne) Ignore() *SphereUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SphereUpsertOne) DoNothing() *SphereUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SphereCreate.OnConflict
// documentation for more info.
func (u *SphereUpsertOne) Update(set func(*SphereUpsert)) *SphereUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SphereUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SphereUpsertOne) SetUpdatedAt(v time.Time) *SphereUpsertOne {
	return u.Update(func(s *SphereUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SphereUpsertOne) UpdateUpdatedAt() *SphereUpsertOne {
	return u.Update(func(s *SphereUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *SphereUpsertOne) SetName(v string) *SphereUpsertOne {
	return u.Update(func(s *SphereUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SphereUpsertOne) UpdateName() *SphereUpsertOne {
	return u.Update(func(s *SphereUpsert) {
		s.UpdateName()
	})
}

// SetHost sets the "host" field.
func (u *SphereUpsertOne) SetHost(v string) *SphereUpsertOne {
	return u.Update(func(s *SphereUpsert) {
		s.SetHost(v)
	})
}

// UpdateHost sets the "host" field to the value that was provided on create.
func (u *SphereUpsertOne) UpdateHost() *SphereUpsertOne {
	return u.Update(func(s *SphereUpsert) {
		s.UpdateHost()
	})
}

// SetIsOpen sets the "is_open" field.
func (u *SphereUpsertOne) SetIsOpen(v bool) *SphereUpsertOne {
	return u.Update(func(s *SphereUpsert) {
		s.SetIsOpen(v)
	})
}

// UpdateIsOpen sets the "is_open" field to the value that was provided on create.
func (u *SphereUpsertOne) UpdateIsOpen() *SphereUpsertOne {
	return u.Update(func(s *SphereUpsert) {
		s.UpdateIsOpen()
	})
}

// Exec executes the query.
func (u *SphereUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SphereCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SphereUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SphereUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SphereUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SphereCreateBulk is the builder for creating many Sphere entities in bulk.
type SphereCreateBulk struct {
	config
	err      error
	builders []*SphereCreate
	conflict []sql.ConflictOption
}

// Save creates the Sphere entities in the database.
func (_c *SphereCreateBulk) Save(ctx context.Context) ([]*Sphere, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Sphere, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SphereMutation)
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
func (_c *SphereCreateBulk) SaveX(ctx context.Context) []*Sphere {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SphereCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SphereCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Sphere.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SphereUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SphereCreateBulk) OnConflict(opts ...sql.ConflictOption) *SphereUpsertBulk {
	_c.conflict = opts
	return &SphereUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Sphere.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SphereCreateBulk) OnConflictColumns(columns ...string) *SphereUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SphereUpsertBulk{
		create: _c,
	}
}

// SphereUpsertBulk is the builder for "upsert"-ing
// a bulk of Sphere nodes.
type SphereUpsertBulk struct {
	create *SphereCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Sphere.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sphere.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SphereUpsertBulk) UpdateNewValues() *SphereUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sphere.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(sphere.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Sphere.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SphereUpsertBulk) Ignore() *SphereUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SphereUpsertBulk) DoNothing() *SphereUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SphereCreateBulk.OnConflict
// documentation for more info.
func (u *SphereUpsertBulk) Update(set func(*SphereUpsert)) *SphereUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SphereUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SphereUpsertBulk) SetUpdatedAt(v time.Time) *SphereUpsertBulk {
	return u.Update(func(s *SphereUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SphereUpsertBulk) UpdateUpdatedAt() *SphereUpsertBulk {
	return u.Update(func(s *SphereUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *SphereUpsertBulk) SetName(v string) *SphereUpsertBulk {
	return u.Update(func(s *SphereUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SphereUpsertBulk) UpdateName() *SphereUpsertBulk {
	return u.Update(func(s *SphereUpsert) {
		s.UpdateName()
	})
}

// SetHost sets the "host" field.
func (u *SphereUpsertBulk) SetHost(v string) *SphereUpsertBulk {
	return u.Update(func(s *SphereUpsert) {
		s.SetHost(v)
	})
}

// UpdateHost sets the "host" field to the value that was provided on create.
func (u *SphereUpsertBulk) UpdateHost() *SphereUpsertBulk {
	return u.Update(func(s *SphereUpsert) {
		s.UpdateHost()
	})
}

// SetIsOpen sets the "is_open" field.
func (u *SphereUpsertBulk) SetIsOpen(v bool) *SphereUpsertBulk {
	return u.Update(func(s *SphereUpsert) {
		s.SetIsOpen(v)
	})
}

// UpdateIsOpen sets the "is_open" field to the value that was provided on create.
func (u *SphereUpsertBulk) UpdateIsOpen() *SphereUpsertBulk {
	return u.Update(func(s *SphereUpsert) {
		s.UpdateIsOpen()
	})
}

// Exec executes the query.
func (u *SphereUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SphereCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SphereCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SphereUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
