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
	"ludamus.io/enrolld/ent/userenrollmentconfig"
)

// UserEnrollmentConfigCreate is the builder for creating a UserEnrollmentConfig entity.
type UserEnrollmentConfigCreate struct {
	config
	mutation *UserEnrollmentConfigMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserEnrollmentConfigCreate) SetCreatedAt(v time.Time) *UserEnrollmentConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserEnrollmentConfigCreate) SetNillableCreatedAt(v *time.Time) *UserEnrollmentConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserEnrollmentConfigCreate) SetUpdatedAt(v time.Time) *UserEnrollmentConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserEnrollmentConfigCreate) SetNillableUpdatedAt(v *time.Time) *UserEnrollmentConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetConfigID sets the "config_id" field.
func (_c *UserEnrollmentConfigCreate) SetConfigID(v int64) *UserEnrollmentConfigCreate {
	_c.mutation.SetConfigID(v)
	return _c
}

// SetUserEmail sets the "user_email" field.
func (_c *UserEnrollmentConfigCreate) SetUserEmail(v string) *UserEnrollmentConfigCreate {
	_c.mutation.SetUserEmail(v)
	return _c
}

// SetAllowedSlots sets the "allowed_slots" field.
func (_c *UserEnrollmentConfigCreate) SetAllowedSlots(v int) *UserEnrollmentConfigCreate {
	_c.mutation.SetAllowedSlots(v)
	return _c
}

// SetNillableAllowedSlots sets the "allowed_slots" field if the given value is not nil.
func (_c *UserEnrollmentConfigCreate) SetNillableAllowedSlots(v *int) *UserEnrollmentConfigCreate {
	if v != nil {
		_c.SetAllowedSlots(*v)
	}
	return _c
}

// SetFetchedFromAPI sets the "fetched_from_api" field.
func (_c *UserEnrollmentConfigCreate) SetFetchedFromAPI(v bool) *UserEnrollmentConfigCreate {
	_c.mutation.SetFetchedFromAPI(v)
	return _c
}

// SetNillableFetchedFromAPI sets the "fetched_from_api" field if the given value is not nil.
func (_c *UserEnrollmentConfigCreate) SetNillableFetchedFromAPI(v *bool) *UserEnrollmentConfigCreate {
	if v != nil {
		_c.SetFetchedFromAPI(*v)
	}
	return _c
}

// SetLastCheck sets the "last_check" field.
func (_c *UserEnrollmentConfigCreate) SetLastCheck(v time.Time) *UserEnrollmentConfigCreate {
	_c.mutation.SetLastCheck(v)
	return _c
}

// SetNillableLastCheck sets the "last_check" field if the given value is not nil.
func (_c *UserEnrollmentConfigCreate) SetNillableLastCheck(v *time.Time) *UserEnrollmentConfigCreate {
	if v != nil {
		_c.SetLastCheck(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserEnrollmentConfigCreate) SetID(v int64) *UserEnrollmentConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConfig sets the "config" edge to the EnrollmentConfig entity.
func (_c *UserEnrollmentConfigCreate) SetConfig(v *EnrollmentConfig) *UserEnrollmentConfigCreate {
	return _c.SetConfigID(v.ID)
}

// Mutation returns the UserEnrollmentConfigMutation object of the builder.
func (_c *UserEnrollmentConfigCreate) Mutation() *UserEnrollmentConfigMutation {
	return _c.mutation
}

// Save creates the UserEnrollmentConfig in the database.
func (_c *UserEnrollmentConfigCreate) Save(ctx context.Context) (*UserEnrollmentConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserEnrollmentConfigCreate) SaveX(ctx context.Context) *UserEnrollmentConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserEnrollmentConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserEnrollmentConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserEnrollmentConfigCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := userenrollmentconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := userenrollmentconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.AllowedSlots(); !ok {
		v := userenrollmentconfig.DefaultAllowedSlots
		_c.mutation.SetAllowedSlots(v)
	}
	if _, ok := _c.mutation.FetchedFromAPI(); !ok {
		v := userenrollmentconfig.DefaultFetchedFromAPI
		_c.mutation.SetFetchedFromAPI(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserEnrollmentConfigCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserEnrollmentConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserEnrollmentConfig.updated_at"`)}
	}
	if _, ok := _c.mutation.ConfigID(); !ok {
		return &ValidationError{Name: "config_id", err: errors.New(`ent: missing required field "UserEnrollmentConfig.config_id"`)}
	}
	if _, ok := _c.mutation.UserEmail(); !ok {
		return &ValidationError{Name: "user_email", err: errors.New(`ent: missing required field "UserEnrollmentConfig.user_email"`)}
	}
	if v, ok := _c.mutation.UserEmail(); ok {
		if err := userenrollmentconfig.UserEmailValidator(v); err != nil {
			return &ValidationError{Name: "user_email", err: fmt.Errorf(`ent: validator failed for field "UserEnrollmentConfig.user_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AllowedSlots(); !ok {
		return &ValidationError{Name: "allowed_slots", err: errors.New(`ent: missing required field "UserEnrollmentConfig.allowed_slots"`)}
	}
	if v, ok := _c.mutation.AllowedSlots(); ok {
		if err := userenrollmentconfig.AllowedSlotsValidator(v); err != nil {
			return &ValidationError{Name: "allowed_slots", err: fmt.Errorf(`ent: validator failed for field "UserEnrollmentConfig.allowed_slots": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FetchedFromAPI(); !ok {
		return &ValidationError{Name: "fetched_from_api", err: errors.New(`ent: missing required field "UserEnrollmentConfig.fetched_from_api"`)}
	}
	if len(_c.mutation.ConfigIDs()) == 0 {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required edge "UserEnrollmentConfig.config"`)}
	}
	return nil
}

func (_c *UserEnrollmentConfigCreate) sqlSave(ctx context.Context) (*UserEnrollmentConfig, error) {
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

func (_c *UserEnrollmentConfigCreate) createSpec() (*UserEnrollmentConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &UserEnrollmentConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userenrollmentconfig.Table, sqlgraph.NewFieldSpec(userenrollmentconfig.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(userenrollmentconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(userenrollmentconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserEmail(); ok {
		_spec.SetField(userenrollmentconfig.FieldUserEmail, field.TypeString, value)
		_node.UserEmail = value
	}
	if value, ok := _c.mutation.AllowedSlots(); ok {
		_spec.SetField(userenrollmentconfig.FieldAllowedSlots, field.TypeInt, value)
		_node.AllowedSlots = value
	}
	if value, ok := _c.mutation.FetchedFromAPI(); ok {
		_spec.SetField(userenrollmentconfig.FieldFetchedFromAPI, field.TypeBool, value)
		_node.FetchedFromAPI = value
	}
	if value, ok := _c.mutation.LastCheck(); ok {
		_spec.SetField(userenrollmentconfig.FieldLastCheck, field.TypeTime, value)
		_node.LastCheck = &value
	}
	if nodes := _c.mutation.ConfigIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   userenrollmentconfig.ConfigTable,
			Columns: []string{userenrollmentconfig.ConfigColumn},
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
//	client.UserEnrollmentConfig.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserEnrollmentConfigUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UserEnrollmentConfigCreate) OnConflict(opts ...sql.ConflictOption) *UserEnrollmentConfigUpsertOne {
	_c.conflict = opts
	return &UserEnrollmentConfigUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserEnrollmentConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserEnrollmentConfigCreate) OnConflictColumns(columns ...string) *UserEnrollmentConfigUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserEnrollmentConfigUpsertOne{
		create: _c,
	}
}

type (
	// UserEnrollmentConfigUpsertOne is the builder for "upsert"-ing
	//  one UserEnrollmentConfig node.
	UserEnrollmentConfigUpsertOne struct {
		create *UserEnrollmentConfigCreate
	}

	// UserEnrollmentConfigUpsert is the "OnConflict" setter.
	UserEnrollmentConfigUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *UserEnrollmentConfigUpsert) SetUpdatedAt(v time.Time) *UserEnrollmentConfigUpsert {
	u.Set(userenrollmentconfig.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserEnrollmentConfigUpsert) UpdateUpdatedAt() *UserEnrollmentConfigUpsert {
	u.SetExcluded(userenrollmentconfig.FieldUpdatedAt)
	return u
}

// SetConfigID sets the "config_id" field.
func (u *UserEnrollmentConfigUpsert) SetConfigID(v int64) *UserEnrollmentConfigUpsert {
	u.Set(userenrollmentconfig.FieldConfigID, v)
	return u
}

// UpdateConfigID sets the "config_id" field to the value that was provided on create.
func (u *UserEnrollmentConfigUpsert) UpdateConfigID() *UserEnrollmentConfigUpsert {
	u.SetExcluded(userenrollmentconfig.FieldConfigID)
	return u
}

// SetUserEmail sets the "user_email" field.
func (u *UserEnrollmentConfigUpsert) SetUserEmail(v string) *UserEnrollmentConfigUpsert {
	u.Set(userenrollmentconfig.FieldUserEmail, v)
	return u
}

// UpdateUserEmail sets the "user_email" field to the value that was provided on create.
func (u *UserEnrollmentConfigUpsert) UpdateUserEmail() *UserEnrollmentConfigUpsert {
	u.SetExcluded(userenrollmentconfig.FieldUserEmail)
	return u
}

// SetAllowedSlots sets the "allowed_slots" field.
func (u *UserEnrollmentConfigUpsert) SetAllowedSlots(v int) *UserEnrollmentConfigUpsert {
	u.Set(userenrollmentconfig.FieldAllowedSlots, v)
	return u
}

// UpdateAllowedSlots sets the "allowed_slots" field to the value that was provided on create.
func (u *UserEnrollmentConfigUpsert) UpdateAllowedSlots() *UserEnrollmentConfigUpsert {
	u.SetExcluded(userenrollmentconfig.FieldAllowedSlots)
	return u
}

// AddAllowedSlots adds v to the "allowed_slots" field.
func (u *UserEnrollmentConfigUpsert) AddAllowedSlots(v int) *UserEnrollmentConfigUpsert {
	u.Add(userenrollmentconfig.FieldAllowedSlots, v)
	return u
}

// SetFetchedFromAPI sets the "fetched_from_api" field.
func (u *UserEnrollmentConfigUpsert) SetFetchedFromAPI(v bool) *UserEnrollmentConfigUpsert {
	u.Set(userenrollmentconfig.FieldFetchedFromAPI, v)
	return u
}

// UpdateFetchedFromAPI sets the "fetched_from_api" field to the value that was provided on create.
func (u *UserEnrollmentConfigUpsert) UpdateFetchedFromAPI() *UserEnrollmentConfigUpsert {
	u.SetExcluded(userenrollmentconfig.FieldFetchedFromAPI)
	return u
}

// SetLastCheck sets the "last_check" field.
func (u *UserEnrollmentConfigUpsert) SetLastCheck(v time.Time) *UserEnrollmentConfigUpsert {
	u.Set(userenrollmentconfig.FieldLastCheck, v)
	return u
}

// UpdateLastCheck sets the "last_check" field to the value that was provided on create.
func (u *UserEnrollmentConfigUpsert) UpdateLastCheck() *UserEnrollmentConfigUpsert {
	u.SetExcluded(userenrollmentconfig.FieldLastCheck)
	return u
}

// ClearLastCheck clears the value of the "last_check" field.
func (u *UserEnrollmentConfigUpsert) ClearLastCheck() *UserEnrollmentConfigUpsert {
	u.SetNull(userenrollmentconfig.FieldLastCheck)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UserEnrollmentConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(userenrollmentconfig.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserEnrollmentConfigUpsertOne) UpdateNewValues() *UserEnrollmentConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(userenrollmentconfig.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(userenrollmentconfig.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserEnrollmentConfig.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserEnrollmentConfigUpsertOne) Ignore() *UserEnrollmentConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserEnrollmentConfigUpsertOne) DoNothing() *UserEnrollmentConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserEnrollmentConfigCreate.OnConflict
// documentation for more info.
func (u *UserEnrollmentConfigUpsertOne) Update(set func(*UserEnrollmentConfigUpsert)) *UserEnrollmentConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserEnrollmentConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserEnrollmentConfigUpsertOne) SetUpdatedAt(v time.Time) *UserEnrollmentConfigUpsertOne {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserEnrollmentConfigUpsertOne) UpdateUpdatedAt() *UserEnrollmentConfigUpsertOne {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetConfigID sets the "config_id" field.
func (u *UserEnrollmentConfigUpsertOne) SetConfigID(v int64) *UserEnrollmentConfigUpsertOne {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.SetConfigID(v)
	})
}

// UpdateConfigID sets the "config_id" field to the value that was provided on create.
func (u *UserEnrollmentConfigUpsertOne) UpdateConfigID() *UserEnrollmentConfigUpsertOne {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.UpdateConfigID()
	})
}

// SetUserEmail sets the "user_email" field.
func (u *UserEnrollmentConfigUpsertOne) SetUserEmail(v string) *UserEnrollmentConfigUpsertOne {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.SetUserEmail(v)
	})
}

// UpdateUserEmail sets the "user_email" field to the value that was provided on create.
func (u *UserEnrollmentConfigUpsertOne) UpdateUserEmail() *UserEnrollmentConfigUpsertOne {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.UpdateUserEmail()
	})
}

// SetAllowedSlots sets the "allowed_slots" field.
func (u *UserEnrollmentConfigUpsertOne) SetAllowedSlots(v int) *UserEnrollmentConfigUpsertOne {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.SetAllowedSlots(v)
	})
}

// AddAllowedSlots adds v to the "allowed_slots" field.
func (u *UserEnrollmentConfigUpsertOne) AddAllowedSlots(v int) *UserEnrollmentConfigUpsertOne {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.AddAllowedSlots(v)
	})
}

// UpdateAllowedSlots sets the "allowed_slots" field to the value that was provided on create.
func (u *UserEnrollmentConfigUpsertOne) UpdateAllowedSlots() *UserEnrollmentConfigUpsertOne {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.UpdateAllowedSlots()
	})
}

// SetFetchedFromAPI sets the "fetched_from_api" field.
func (u *UserEnrollmentConfigUpsertOne) SetFetchedFromAPI(v bool) *UserEnrollmentConfigUpsertOne {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.SetFetchedFromAPI(v)
	})
}

// UpdateFetchedFromAPI sets the "fetched_from_api" field to the value that was provided on create.
func (u *UserEnrollmentConfigUpsertOne) UpdateFetchedFromAPI() *UserEnrollmentConfigUpsertOne {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.UpdateFetchedFromAPI()
	})
}

// SetLastCheck sets the "last_check" field.
func (u *UserEnrollmentConfigUpsertOne) SetLastCheck(v time.Time) *UserEnrollmentConfigUpsertOne {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.SetLastCheck(v)
	})
}

// UpdateLastCheck sets the "last_check" field to the value that was provided on create.
func (u *UserEnrollmentConfigUpsertOne) UpdateLastCheck() *UserEnrollmentConfigUpsertOne {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.UpdateLastCheck()
	})
}

// ClearLastCheck clears the value of the "last_check" field.
func (u *UserEnrollmentConfigUpsertOne) ClearLastCheck() *UserEnrollmentConfigUpsertOne {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.ClearLastCheck()
	})
}

// Exec executes the query.
func (u *UserEnrollmentConfigUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserEnrollmentConfigCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserEnrollmentConfigUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserEnrollmentConfigUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserEnrollmentConfigUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserEnrollmentConfigCreateBulk is the builder for creating many UserEnrollmentConfig entities in bulk.
type UserEnrollmentConfigCreateBulk struct {
	config
	err      error
	builders []*UserEnrollmentConfigCreate
	conflict []sql.ConflictOption
}

// Save creates the UserEnrollmentConfig entities in the database.
func (_c *UserEnrollmentConfigCreateBulk) Save(ctx context.Context) ([]*UserEnrollmentConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserEnrollmentConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserEnrollmentConfigMutation)
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
func (_c *UserEnrollmentConfigCreateBulk) SaveX(ctx context.Context) []*UserEnrollmentConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserEnrollmentConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserEnrollmentConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserEnrollmentConfig.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserEnrollmentConfigUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UserEnrollmentConfigCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserEnrollmentConfigUpsertBulk {
	_c.conflict = opts
	return &UserEnrollmentConfigUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserEnrollmentConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserEnrollmentConfigCreateBulk) OnConflictColumns(columns ...string) *UserEnrollmentConfigUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserEnrollmentConfigUpsertBulk{
		create: _c,
	}
}

// UserEnrollmentConfigUpsertBulk is the builder for "upsert"-ing
// a bulk of UserEnrollmentConfig nodes.
type UserEnrollmentConfigUpsertBulk struct {
	create *UserEnrollmentConfigCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserEnrollmentConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(userenrollmentconfig.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserEnrollmentConfigUpsertBulk) UpdateNewValues() *UserEnrollmentConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(userenrollmentconfig.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(userenrollmentconfig.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserEnrollmentConfig.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserEnrollmentConfigUpsertBulk) Ignore() *UserEnrollmentConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserEnrollmentConfigUpsertBulk) DoNothing() *UserEnrollmentConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserEnrollmentConfigCreateBulk.OnConflict
// documentation for more info.
func (u *UserEnrollmentConfigUpsertBulk) Update(set func(*UserEnrollmentConfigUpsert)) *UserEnrollmentConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserEnrollmentConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserEnrollmentConfigUpsertBulk) SetUpdatedAt(v time.Time) *UserEnrollmentConfigUpsertBulk {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserEnrollmentConfigUpsertBulk) UpdateUpdatedAt() *UserEnrollmentConfigUpsertBulk {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetConfigID sets the "config_id" field.
func (u *UserEnrollmentConfigUpsertBulk) SetConfigID(v int64) *UserEnrollmentConfigUpsertBulk {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.SetConfigID(v)
	})
}

// UpdateConfigID sets the "config_id" field to the value that was provided on create.
func (u *UserEnrollmentConfigUpsertBulk) UpdateConfigID() *UserEnrollmentConfigUpsertBulk {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.UpdateConfigID()
	})
}

// SetUserEmail sets the "user_email" field.
func (u *UserEnrollmentConfigUpsertBulk) SetUserEmail(v string) *UserEnrollmentConfigUpsertBulk {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.SetUserEmail(v)
	})
}

// UpdateUserEmail sets the "user_email" field to the value that was provided on create.
func (u *UserEnrollmentConfigUpsertBulk) UpdateUserEmail() *UserEnrollmentConfigUpsertBulk {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.UpdateUserEmail()
	})
}

// SetAllowedSlots sets the "allowed_slots" field.
func (u *UserEnrollmentConfigUpsertBulk) SetAllowedSlots(v int) *UserEnrollmentConfigUpsertBulk {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.SetAllowedSlots(v)
	})
}

// AddAllowedSlots adds v to the "allowed_slots" field.
func (u *UserEnrollmentConfigUpsertBulk) AddAllowedSlots(v int) *UserEnrollmentConfigUpsertBulk {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.AddAllowedSlots(v)
	})
}

// UpdateAllowedSlots sets the "allowed_slots" field to the value that was provided on create.
func (u *UserEnrollmentConfigUpsertBulk) UpdateAllowedSlots() *UserEnrollmentConfigUpsertBulk {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.UpdateAllowedSlots()
	})
}

// SetFetchedFromAPI sets the "fetched_from_api" field.
func (u *UserEnrollmentConfigUpsertBulk) SetFetchedFromAPI(v bool) *UserEnrollmentConfigUpsertBulk {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.SetFetchedFromAPI(v)
	})
}

// UpdateFetchedFromAPI sets the "fetched_from_api" field to the value that was provided on create.
func (u *UserEnrollmentConfigUpsertBulk) UpdateFetchedFromAPI() *UserEnrollmentConfigUpsertBulk {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.UpdateFetchedFromAPI()
	})
}

// SetLastCheck sets the "last_check" field.
func (u *UserEnrollmentConfigUpsertBulk) SetLastCheck(v time.Time) *UserEnrollmentConfigUpsertBulk {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.SetLastCheck(v)
	})
}

// UpdateLastCheck sets the "last_check" field to the value that was provided on create.
func (u *UserEnrollmentConfigUpsertBulk) UpdateLastCheck() *UserEnrollmentConfigUpsertBulk {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.UpdateLastCheck()
	})
}

// ClearLastCheck clears the value of the "last_check" field.
func (u *UserEnrollmentConfigUpsertBulk) ClearLastCheck() *UserEnrollmentConfigUpsertBulk {
	return u.Update(func(s *UserEnrollmentConfigUpsert) {
		s.ClearLastCheck()
	})
}

// Exec executes the query.
func (u *UserEnrollmentConfigUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserEnrollmentConfigCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserEnrollmentConfigCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserEnrollmentConfigUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
