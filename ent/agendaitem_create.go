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
	"ludamus.io/enrolld/ent/session"
	"ludamus.io/enrolld/ent/space"
)

// AgendaItemCreate is the builder for creating a AgendaItem entity.
type AgendaItemCreate struct {
	config
	mutation *AgendaItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgendaItemCreate) SetCreatedAt(v time.Time) *AgendaItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgendaItemCreate) SetNillableCreatedAt(v *time.Time) *AgendaItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgendaItemCreate) SetUpdatedAt(v time.Time) *AgendaItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgendaItemCreate) SetNillableUpdatedAt(v *time.Time) *AgendaItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSpaceID sets the "space_id" field.
func (_c *AgendaItemCreate) SetSpaceID(v int64) *AgendaItemCreate {
	_c.mutation.SetSpaceID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AgendaItemCreate) SetSessionID(v int64) *AgendaItemCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *AgendaItemCreate) SetStartTime(v time.Time) *AgendaItemCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *AgendaItemCreate) SetEndTime(v time.Time) *AgendaItemCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetSessionConfirmed sets the "session_confirmed" field.
func (_c *AgendaItemCreate) SetSessionConfirmed(v bool) *AgendaItemCreate {
	_c.mutation.SetSessionConfirmed(v)
	return _c
}

// SetNillableSessionConfirmed sets the "session_confirmed" field if the given value is not nil.
func (_c *AgendaItemCreate) SetNillableSessionConfirmed(v *bool) *AgendaItemCreate {
	if v != nil {
		_c.SetSessionConfirmed(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgendaItemCreate) SetID(v int64) *AgendaItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSpace sets the "space" edge to the Space entity.
func (_c *AgendaItemCreate) SetSpace(v *Space) *AgendaItemCreate {
	return _c.SetSpaceID(v.ID)
}

// SetSession sets the "session" edge to the Session entity.
func (_c *AgendaItemCreate) SetSession(v *Session) *AgendaItemCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the AgendaItemMutation object of the builder.
func (_c *AgendaItemCreate) Mutation() *AgendaItemMutation {
	return _c.mutation
}

// Save creates the AgendaItem in the database.
func (_c *AgendaItemCreate) Save(ctx context.Context) (*AgendaItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgendaItemCreate) SaveX(ctx context.Context) *AgendaItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgendaItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgendaItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgendaItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agendaitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agendaitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.SessionConfirmed(); !ok {
		v := agendaitem.DefaultSessionConfirmed
		_c.mutation.SetSessionConfirmed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgendaItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgendaItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgendaItem.updated_at"`)}
	}
	if _, ok := _c.mutation.SpaceID(); !ok {
		return &ValidationError{Name: "space_id", err: errors.New(`ent: missing required field "AgendaItem.space_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AgendaItem.session_id"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "AgendaItem.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`ent: missing required field "AgendaItem.end_time"`)}
	}
	if _, ok := _c.mutation.SessionConfirmed(); !ok {
		return &ValidationError{Name: "session_confirmed", err: errors.New(`ent: missing required field "AgendaItem.session_confirmed"`)}
	}
	if len(_c.mutation.SpaceIDs()) == 0 {
		return &ValidationError{Name: "space", err: errors.New(`ent: missing required edge "AgendaItem.space"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "AgendaItem.session"`)}
	}
	return nil
}

func (_c *AgendaItemCreate) sqlSave(ctx context.Context) (*AgendaItem, error) {
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

func (_c *AgendaItemCreate) createSpec() (*AgendaItem, *sqlgraph.CreateSpec) {
	var (
		_node = &AgendaItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agendaitem.Table, sqlgraph.NewFieldSpec(agendaitem.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agendaitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agendaitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(agendaitem.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(agendaitem.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.SessionConfirmed(); ok {
		_spec.SetField(agendaitem.FieldSessionConfirmed, field.TypeBool, value)
		_node.SessionConfirmed = value
	}
	if nodes := _c.mutation.SpaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agendaitem.SpaceTable,
			Columns: []string{agendaitem.SpaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(space.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SpaceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   agendaitem.SessionTable,
			Columns: []string{agendaitem.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgendaItem.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgendaItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AgendaItemCreate) OnConflict(opts ...sql.ConflictOption) *AgendaItemUpsertOne {
	_c.conflict = opts
	return &AgendaItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgendaItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgendaItemCreate) OnConflictColumns(columns ...string) *AgendaItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgendaItemUpsertOne{
		create: _c,
	}
}

type (
	// AgendaItemUpsertOne is the builder for "upsert"-ing
	//  one AgendaItem node.
	AgendaItemUpsertOne struct {
		create *AgendaItemCreate
	}

	// AgendaItemUpsert is the "OnConflict" setter.
	AgendaItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AgendaItemUpsert) SetUpdatedAt(v time.Time) *AgendaItemUpsert {
	u.Set(agendaitem.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgendaItemUpsert) UpdateUpdatedAt() *AgendaItemUpsert {
	u.SetExcluded(agendaitem.FieldUpdatedAt)
	return u
}

// SetSpaceID sets the "space_id" field.
func (u *AgendaItemUpsert) SetSpaceID(v int64) *AgendaItemUpsert {
	u.Set(agendaitem.FieldSpaceID, v)
	return u
}

// UpdateSpaceID sets the "space_id" field to the value that was provided on create.
func (u *AgendaItemUpsert) UpdateSpaceID() *AgendaItemUpsert {
	u.SetExcluded(agendaitem.FieldSpaceID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *AgendaItemUpsert) SetSessionID(v int64) *AgendaItemUpsert {
	u.Set(agendaitem.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AgendaItemUpsert) UpdateSessionID() *AgendaItemUpsert {
	u.SetExcluded(agendaitem.FieldSessionID)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *AgendaItemUpsert) SetStartTime(v time.Time) *AgendaItemUpsert {
	u.Set(agendaitem.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AgendaItemUpsert) UpdateStartTime() *AgendaItemUpsert {
	u.SetExcluded(agendaitem.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *AgendaItemUpsert) SetEndTime(v time.Time) *AgendaItemUpsert {
	u.Set(agendaitem.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *AgendaItemUpsert) UpdateEndTime() *AgendaItemUpsert {
	u.SetExcluded(agendaitem.FieldEndTime)
	return u
}

// SetSessionConfirmed sets the "session_confirmed" field.
func (u *AgendaItemUpsert) SetSessionConfirmed(v bool) *AgendaItemUpsert {
	u.Set(agendaitem.FieldSessionConfirmed, v)
	return u
}

// UpdateSessionConfirmed sets the "session_confirmed" field to the value that was provided on create.
func (u *AgendaItemUpsert) UpdateSessionConfirmed() *AgendaItemUpsert {
	u.SetExcluded(agendaitem.FieldSessionConfirmed)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgendaItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agendaitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgendaItemUpsertOne) UpdateNewValues() *AgendaItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agendaitem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agendaitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgendaItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgendaItemUpsertOne) Ignore() *AgendaItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgendaItemUpsertOne) DoNothing() *AgendaItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgendaItemCreate.OnConflict
// documentation for more info.
func (u *AgendaItemUpsertOne) Update(set func(*AgendaItemUpsert)) *AgendaItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgendaItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgendaItemUpsertOne) SetUpdatedAt(v time.Time) *AgendaItemUpsertOne {
	return u.Update(func(s *AgendaItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgendaItemUpsertOne) UpdateUpdatedAt() *AgendaItemUpsertOne {
	return u.Update(func(s *AgendaItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSpaceID sets the "space_id" field.
func (u *AgendaItemUpsertOne) SetSpaceID(v int64) *AgendaItemUpsertOne {
	return u.Update(func(s *AgendaItemUpsert) {
		s.SetSpaceID(v)
	})
}

// UpdateSpaceID sets the "space_id" field to the value that was provided on create.
func (u *AgendaItemUpsertOne) UpdateSpaceID() *AgendaItemUpsertOne {
	return u.Update(func(s *AgendaItemUpsert) {
		s.UpdateSpaceID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *AgendaItemUpsertOne) SetSessionID(v int64) *AgendaItemUpsertOne {
	return u.Update(func(s *AgendaItemUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AgendaItemUpsertOne) UpdateSessionID() *AgendaItemUpsertOne {
	return u.Update(func(s *AgendaItemUpsert) {
		s.UpdateSessionID()
	})
}

// SetStartTime sets the "start_time" field.
func (u *AgendaItemUpsertOne) SetStartTime(v time.Time) *AgendaItemUpsertOne {
	return u.Update(func(s *AgendaItemUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AgendaItemUpsertOne) UpdateStartTime() *AgendaItemUpsertOne {
	return u.Update(func(s *AgendaItemUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *AgendaItemUpsertOne) SetEndTime(v time.Time) *AgendaItemUpsertOne {
	return u.Update(func(s *AgendaItemUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *AgendaItemUpsertOne) UpdateEndTime() *AgendaItemUpsertOne {
	return u.Update(func(s *AgendaItemUpsert) {
		s.UpdateEndTime()
	})
}

// SetSessionConfirmed sets the "session_confirmed" field.
func (u *AgendaItemUpsertOne) SetSessionConfirmed(v bool) *AgendaItemUpsertOne {
	return u.Update(func(s *AgendaItemUpsert) {
		s.SetSessionConfirmed(v)
	})
}

// UpdateSessionConfirmed sets the "session_confirmed" field to the value that was provided on create.
func (u *AgendaItemUpsertOne) UpdateSessionConfirmed() *AgendaItemUpsertOne {
	return u.Update(func(s *AgendaItemUpsert) {
		s.UpdateSessionConfirmed()
	})
}

// Exec executes the query.
func (u *AgendaItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgendaItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgendaItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgendaItemUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgendaItemUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgendaItemCreateBulk is the builder for creating many AgendaItem entities in bulk.
type AgendaItemCreateBulk struct {
	config
	err      error
	builders []*AgendaItemCreate
	conflict []sql.ConflictOption
}

// Save creates the AgendaItem entities in the database.
func (_c *AgendaItemCreateBulk) Save(ctx context.Context) ([]*AgendaItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgendaItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgendaItemMutation)
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
func (_c *AgendaItemCreateBulk) SaveX(ctx context.Context) []*AgendaItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgendaItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgendaItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgendaItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgendaItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AgendaItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgendaItemUpsertBulk {
	_c.conflict = opts
	return &AgendaItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgendaItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgendaItemCreateBulk) OnConflictColumns(columns ...string) *AgendaItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgendaItemUpsertBulk{
		create: _c,
	}
}

// AgendaItemUpsertBulk is the builder for "upsert"-ing
// a bulk of AgendaItem nodes.
type AgendaItemUpsertBulk struct {
	create *AgendaItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgendaItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agendaitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgendaItemUpsertBulk) UpdateNewValues() *AgendaItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agendaitem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agendaitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgendaItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgendaItemUpsertBulk) Ignore() *AgendaItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgendaItemUpsertBulk) DoNothing() *AgendaItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgendaItemCreateBulk.OnConflict
// documentation for more info.
func (u *AgendaItemUpsertBulk) Update(set func(*AgendaItemUpsert)) *AgendaItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgendaItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgendaItemUpsertBulk) SetUpdatedAt(v time.Time) *AgendaItemUpsertBulk {
	return u.Update(func(s *AgendaItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgendaItemUpsertBulk) UpdateUpdatedAt() *AgendaItemUpsertBulk {
	return u.Update(func(s *AgendaItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSpaceID sets the "space_id" field.
func (u *AgendaItemUpsertBulk) SetSpaceID(v int64) *AgendaItemUpsertBulk {
	return u.Update(func(s *AgendaItemUpsert) {
		s.SetSpaceID(v)
	})
}

// UpdateSpaceID sets the "space_id" field to the value that was provided on create.
func (u *AgendaItemUpsertBulk) UpdateSpaceID() *AgendaItemUpsertBulk {
	return u.Update(func(s *AgendaItemUpsert) {
		s.UpdateSpaceID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *AgendaItemUpsertBulk) SetSessionID(v int64) *AgendaItemUpsertBulk {
	return u.Update(func(s *AgendaItemUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AgendaItemUpsertBulk) UpdateSessionID() *AgendaItemUpsertBulk {
	return u.Update(func(s *AgendaItemUpsert) {
		s.UpdateSessionID()
	})
}

// SetStartTime sets the "start_time" field.
func (u *AgendaItemUpsertBulk) SetStartTime(v time.Time) *AgendaItemUpsertBulk {
	return u.Update(func(s *AgendaItemUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AgendaItemUpsertBulk) UpdateStartTime() *AgendaItemUpsertBulk {
	return u.Update(func(s *AgendaItemUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *AgendaItemUpsertBulk) SetEndTime(v time.Time) *AgendaItemUpsertBulk {
	return u.Update(func(s *AgendaItemUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *AgendaItemUpsertBulk) UpdateEndTime() *AgendaItemUpsertBulk {
	return u.Update(func(s *AgendaItemUpsert) {
		s.UpdateEndTime()
	})
}

// SetSessionConfirmed sets the "session_confirmed" field.
func (u *AgendaItemUpsertBulk) SetSessionConfirmed(v bool) *AgendaItemUpsertBulk {
	return u.Update(func(s *AgendaItemUpsert) {
		s.SetSessionConfirmed(v)
	})
}

// UpdateSessionConfirmed sets the "session_confirmed" field to the value that was provided on create.
func (u *AgendaItemUpsertBulk) UpdateSessionConfirmed() *AgendaItemUpsertBulk {
	return u.Update(func(s *AgendaItemUpsert) {
		s.UpdateSessionConfirmed()
	})
}

// Exec executes the query.
func (u *AgendaItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgendaItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgendaItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgendaItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
