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
	"ludamus.io/enrolld/ent/domainenrollmentconfig"
	"ludamus.io/enrolld/ent/enrollmentconfig"
)

// DomainEnrollmentConfigCreate is the builder for creating a DomainEnrollmentConfig entity.
type DomainEnrollmentConfigCreate struct {
	config
	mutation *DomainEnrollmentConfigMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DomainEnrollmentConfigCreate) SetCreatedAt(v time.Time) *DomainEnrollmentConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DomainEnrollmentConfigCreate) SetNillableCreatedAt(v *time.Time) *DomainEnrollmentConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DomainEnrollmentConfigCreate) SetUpdatedAt(v time.Time) *DomainEnrollmentConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DomainEnrollmentConfigCreate) SetNillableUpdatedAt(v *time.Time) *DomainEnrollmentConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetConfigID sets the "config_id" field.
func (_c *DomainEnrollmentConfigCreate) SetConfigID(v int64) *DomainEnrollmentConfigCreate {
	_c.mutation.SetConfigID(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *DomainEnrollmentConfigCreate) SetDomain(v string) *DomainEnrollmentConfigCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetAllowedSlotsPerUser sets the "allowed_slots_per_user" field.
func (_c *DomainEnrollmentConfigCreate) SetAllowedSlotsPerUser(v int) *DomainEnrollmentConfigCreate {
	_c.mutation.SetAllowedSlotsPerUser(v)
	return _c
}

// SetNillableAllowedSlotsPerUser sets the "allowed_slots_per_user" field if the given value is not nil.
func (_c *DomainEnrollmentConfigCreate) SetNillableAllowedSlotsPerUser(v *int) *DomainEnrollmentConfigCreate {
	if v != nil {
		_c.SetAllowedSlotsPerUser(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DomainEnrollmentConfigCreate) SetID(v int64) *DomainEnrollmentConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConfig sets the "config" edge to the EnrollmentConfig entity.
func (_c *DomainEnrollmentConfigCreate) SetConfig(v *EnrollmentConfig) *DomainEnrollmentConfigCreate {
	return _c.SetConfigID(v.ID)
}

// Mutation returns the DomainEnrollmentConfigMutation object of the builder.
func (_c *DomainEnrollmentConfigCreate) Mutation() *DomainEnrollmentConfigMutation {
	return _c.mutation
}

// Save creates the DomainEnrollmentConfig in the database.
func (_c *DomainEnrollmentConfigCreate) Save(ctx context.Context) (*DomainEnrollmentConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DomainEnrollmentConfigCreate) SaveX(ctx context.Context) *DomainEnrollmentConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DomainEnrollmentConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DomainEnrollmentConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DomainEnrollmentConfigCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := domainenrollmentconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := domainenrollmentconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.AllowedSlotsPerUser(); !ok {
		v := domainenrollmentconfig.DefaultAllowedSlotsPerUser
		_c.mutation.SetAllowedSlotsPerUser(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DomainEnrollmentConfigCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DomainEnrollmentConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DomainEnrollmentConfig.updated_at"`)}
	}
	if _, ok := _c.mutation.ConfigID(); !ok {
		return &ValidationError{Name: "config_id", err: errors.New(`ent: missing required field "DomainEnrollmentConfig.config_id"`)}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "DomainEnrollmentConfig.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := domainenrollmentconfig.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "DomainEnrollmentConfig.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AllowedSlotsPerUser(); !ok {
		return &ValidationError{Name: "allowed_slots_per_user", err: errors.New(`ent: missing required field "DomainEnrollmentConfig.allowed_slots_per_user"`)}
	}
	if v, ok := _c.mutation.AllowedSlotsPerUser(); ok {
		if err := domainenrollmentconfig.AllowedSlotsPerUserValidator(v); err != nil {
			return &ValidationError{Name: "allowed_slots_per_user", err: fmt.Errorf(`ent: validator failed for field "DomainEnrollmentConfig.allowed_slots_per_user": %w`, err)}
		}
	}
	if len(_c.mutation.ConfigIDs()) == 0 {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required edge "DomainEnrollmentConfig.config"`)}
	}
	return nil
}

func (_c *DomainEnrollmentConfigCreate) sqlSave(ctx context.Context) (*DomainEnrollmentConfig, error) {
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

func (_c *DomainEnrollmentConfigCreate) createSpec() (*DomainEnrollmentConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &DomainEnrollmentConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(domainenrollmentconfig.Table, sqlgraph.NewFieldSpec(domainenrollmentconfig.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(domainenrollmentconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(domainenrollmentconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(domainenrollmentconfig.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.AllowedSlotsPerUser(); ok {
		_spec.SetField(domainenrollmentconfig.FieldAllowedSlotsPerUser, field.TypeInt, value)
		_node.AllowedSlotsPerUser = value
	}
	if nodes := _c.mutation.ConfigIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   domainenrollmentconfig.ConfigTable,
			Columns: []string{domainenrollmentconfig.ConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollmentconfig.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConfigID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DomainEnrollmentConfig.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DomainEnrollmentConfigUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DomainEnrollmentConfigCreate) OnConflict(opts ...sql.ConflictOption) *DomainEnrollmentConfigUpsertOne {
	_c.conflict = opts
	return &DomainEnrollmentConfigUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DomainEnrollmentConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DomainEnrollmentConfigCreate) OnConflictColumns(columns ...string) *DomainEnrollmentConfigUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DomainEnrollmentConfigUpsertOne{
		create: _c,
	}
}

type (
	// DomainEnrollmentConfigUpsertOne is the builder for "upsert"-ing
	//  one DomainEnrollmentConfig node.
	DomainEnrollmentConfigUpsertOne struct {
		create *DomainEnrollmentConfigCreate
	}

	// DomainEnrollmentConfigUpsert is the "OnConflict" setter.
	DomainEnrollmentConfigUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DomainEnrollmentConfigUpsert) SetUpdatedAt(v time.Time) *DomainEnrollmentConfigUpsert {
	u.Set(domainenrollmentconfig.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DomainEnrollmentConfigUpsert) UpdateUpdatedAt() *DomainEnrollmentConfigUpsert {
	u.SetExcluded(domainenrollmentconfig.FieldUpdatedAt)
	return u
}

// SetConfigID sets the "config_id" field.
func (u *DomainEnrollmentConfigUpsert) SetConfigID(v int64) *DomainEnrollmentConfigUpsert {
	u.Set(domainenrollmentconfig.FieldConfigID, v)
	return u
}

// UpdateConfigID sets the "config_id" field to the value that was provided on create.
func (u *DomainEnrollmentConfigUpsert) UpdateConfigID() *DomainEnrollmentConfigUpsert {
	u.SetExcluded(domainenrollmentconfig.FieldConfigID)
	return u
}

// SetDomain sets the "domain" field.
func (u *DomainEnrollmentConfigUpsert) SetDomain(v string) *DomainEnrollmentConfigUpsert {
	u.Set(domainenrollmentconfig.FieldDomain, v)
	return u
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *DomainEnrollmentConfigUpsert) UpdateDomain() *DomainEnrollmentConfigUpsert {
	u.SetExcluded(domainenrollmentconfig.FieldDomain)
	return u
}

// SetAllowedSlotsPerUser sets the "allowed_slots_per_user" field.
func (u *DomainEnrollmentConfigUpsert) SetAllowedSlotsPerUser(v int) *DomainEnrollmentConfigUpsert {
	u.Set(domainenrollmentconfig.FieldAllowedSlotsPerUser, v)
	return u
}

// UpdateAllowedSlotsPerUser sets the "allowed_slots_per_user" field to the value that was provided on create.
func (u *DomainEnrollmentConfigUpsert) UpdateAllowedSlotsPerUser() *DomainEnrollmentConfigUpsert {
	u.SetExcluded(domainenrollmentconfig.FieldAllowedSlotsPerUser)
	return u
}

// AddAllowedSlotsPerUser adds v to the "allowed_slots_per_user" field.
func (u *DomainEnrollmentConfigUpsert) AddAllowedSlotsPerUser(v int) *DomainEnrollmentConfigUpsert {
	u.Add(domainenrollmentconfig.FieldAllowedSlotsPerUser, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DomainEnrollmentConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(domainenrollmentconfig.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DomainEnrollmentConfigUpsertOne) UpdateNewValues() *DomainEnrollmentConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(domainenrollmentconfig.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(domainenrollmentconfig.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DomainEnrollmentConfig.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DomainEnrollmentConfigUpsertOne) Ignore() *DomainEnrollmentConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DomainEnrollmentConfigUpsertOne) DoNothing() *DomainEnrollmentConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DomainEnrollmentConfigCreate.OnConflict
// documentation for more info.
func (u *DomainEnrollmentConfigUpsertOne) Update(set func(*DomainEnrollmentConfigUpsert)) *DomainEnrollmentConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DomainEnrollmentConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DomainEnrollmentConfigUpsertOne) SetUpdatedAt(v time.Time) *DomainEnrollmentConfigUpsertOne {
	return u.Update(func(s *DomainEnrollmentConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DomainEnrollmentConfigUpsertOne) UpdateUpdatedAt() *DomainEnrollmentConfigUpsertOne {
	return u.Update(func(s *DomainEnrollmentConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetConfigID sets the "config_id" field.
func (u *DomainEnrollmentConfigUpsertOne) SetConfigID(v int64) *DomainEnrollmentConfigUpsertOne {
	return u.Update(func(s *DomainEnrollmentConfigUpsert) {
		s.SetConfigID(v)
	})
}

// UpdateConfigID sets the "config_id" field to the value that was provided on create.
func (u *DomainEnrollmentConfigUpsertOne) UpdateConfigID() *DomainEnrollmentConfigUpsertOne {
	return u.Update(func(s *DomainEnrollmentConfigUpsert) {
		s.UpdateConfigID()
	})
}

// SetDomain sets the "domain" field.
func (u *DomainEnrollmentConfigUpsertOne) SetDomain(v string) *DomainEnrollmentConfigUpsertOne {
	return u.Update(func(s *DomainEnrollmentConfigUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *DomainEnrollmentConfigUpsertOne) UpdateDomain() *DomainEnrollmentConfigUpsertOne {
	return u.Update(func(s *DomainEnrollmentConfigUpsert) {
		s.UpdateDomain()
	})
}

// SetAllowedSlotsPerUser sets the "allowed_slots_per_user" field.
func (u *DomainEnrollmentConfigUpsertOne) SetAllowedSlotsPerUser(v int) *DomainEnrollmentConfigUpsertOne {
	return u.Update(func(s *DomainEnrollmentConfigUpsert) {
		s.SetAllowedSlotsPerUser(v)
	})
}

// AddAllowedSlotsPerUser adds v to the "allowed_slots_per_user" field.
func (u *DomainEnrollmentConfigUpsertOne) AddAllowedSlotsPerUser(v int) *DomainEnrollmentConfigUpsertOne {
	return u.Update(func(s *DomainEnrollmentConfigUpsert) {
		s.AddAllowedSlotsPerUser(v)
	})
}

// UpdateAllowedSlotsPerUser sets the "allowed_slots_per_user" field to the value that was provided on create.
func (u *DomainEnrollmentConfigUpsertOne) UpdateAllowedSlotsPerUser() *DomainEnrollmentConfigUpsertOne {
	return u.Update(func(s *DomainEnrollmentConfigUpsert) {
		s.UpdateAllowedSlotsPerUser()
	})
}

// Exec executes the query.
func (u *DomainEnrollmentConfigUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DomainEnrollmentConfigCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DomainEnrollmentConfigUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DomainEnrollmentConfigUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DomainEnrollmentConfigUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DomainEnrollmentConfigCreateBulk is the builder for creating many DomainEnrollmentConfig entities in bulk.
type DomainEnrollmentConfigCreateBulk struct {
	config
	err      error
	builders []*DomainEnrollmentConfigCreate
	conflict []sql.ConflictOption
}

// Save creates the DomainEnrollmentConfig entities in the database.
func (_c *DomainEnrollmentConfigCreateBulk) Save(ctx context.Context) ([]*DomainEnrollmentConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DomainEnrollmentConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DomainEnrollmentConfigMutation)
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
func (_c *DomainEnrollmentConfigCreateBulk) SaveX(ctx context.Context) []*DomainEnrollmentConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DomainEnrollmentConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DomainEnrollmentConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DomainEnrollmentConfig.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DomainEnrollmentConfigUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DomainEnrollmentConfigCreateBulk) OnConflict(opts ...sql.ConflictOption) *DomainEnrollmentConfigUpsertBulk {
	_c.conflict = opts
	return &DomainEnrollmentConfigUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DomainEnrollmentConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DomainEnrollmentConfigCreateBulk) OnConflictColumns(columns ...string) *DomainEnrollmentConfigUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DomainEnrollmentConfigUpsertBulk{
		create: _c,
	}
}

// DomainEnrollmentConfigUpsertBulk is the builder for "upsert"-ing
// a bulk of DomainEnrollmentConfig nodes.
type DomainEnrollmentConfigUpsertBulk struct {
	create *DomainEnrollmentConfigCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DomainEnrollmentConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(domainenrollmentconfig.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DomainEnrollmentConfigUpsertBulk) UpdateNewValues() *DomainEnrollmentConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(domainenrollmentconfig.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(domainenrollmentconfig.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DomainEnrollmentConfig.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DomainEnrollmentConfigUpsertBulk) Ignore() *DomainEnrollmentConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DomainEnrollmentConfigUpsertBulk) DoNothing() *DomainEnrollmentConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DomainEnrollmentConfigCreateBulk.OnConflict
// documentation for more info.
func (u *DomainEnrollmentConfigUpsertBulk) Update(set func(*DomainEnrollmentConfigUpsert)) *DomainEnrollmentConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DomainEnrollmentConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DomainEnrollmentConfigUpsertBulk) SetUpdatedAt(v time.Time) *DomainEnrollmentConfigUpsertBulk {
	return u.Update(func(s *DomainEnrollmentConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DomainEnrollmentConfigUpsertBulk) UpdateUpdatedAt() *DomainEnrollmentConfigUpsertBulk {
	return u.Update(func(s *DomainEnrollmentConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetConfigID sets the "config_id" field.
func (u *DomainEnrollmentConfigUpsertBulk) SetConfigID(v int64) *DomainEnrollmentConfigUpsertBulk {
	return u.Update(func(s *DomainEnrollmentConfigUpsert) {
		s.SetConfigID(v)
	})
}

// UpdateConfigID sets the "config_id" field to the value that was provided on create.
func (u *DomainEnrollmentConfigUpsertBulk) UpdateConfigID() *DomainEnrollmentConfigUpsertBulk {
	return u.Update(func(s *DomainEnrollmentConfigUpsert) {
		s.UpdateConfigID()
	})
}

// SetDomain sets the "domain" field.
func (u *DomainEnrollmentConfigUpsertBulk) SetDomain(v string) *DomainEnrollmentConfigUpsertBulk {
	return u.Update(func(s *DomainEnrollmentConfigUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *DomainEnrollmentConfigUpsertBulk) UpdateDomain() *DomainEnrollmentConfigUpsertBulk {
	return u.Update(func(s *DomainEnrollmentConfigUpsert) {
		s.UpdateDomain()
	})
}

// SetAllowedSlotsPerUser sets the "allowed_slots_per_user" field.
func (u *DomainEnrollmentConfigUpsertBulk) SetAllowedSlotsPerUser(v int) *DomainEnrollmentConfigUpsertBulk {
	return u.Update(func(s *DomainEnrollmentConfigUpsert) {
		s.SetAllowedSlotsPerUser(v)
	})
}

// AddAllowedSlotsPerUser adds v to the "allowed_slots_per_user" field.
func (u *DomainEnrollmentConfigUpsertBulk) AddAllowedSlotsPerUser(v int) *DomainEnrollmentConfigUpsertBulk {
	return u.Update(func(s *DomainEnrollmentConfigUpsert) {
		s.AddAllowedSlotsPerUser(v)
	})
}

// UpdateAllowedSlotsPerUser sets the "allowed_slots_per_user" field to the value that was provided on create.
func (u *DomainEnrollmentConfigUpsertBulk) UpdateAllowedSlotsPerUser() *DomainEnrollmentConfigUpsertBulk {
	return u.Update(func(s *DomainEnrollmentConfigUpsert) {
		s.UpdateAllowedSlotsPerUser()
	})
}

// Exec executes the query.
func (u *DomainEnrollmentConfigUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DomainEnrollmentConfigCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DomainEnrollmentConfigCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DomainEnrollmentConfigUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
