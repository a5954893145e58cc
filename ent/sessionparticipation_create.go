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
	"ludamus.io/enrolld/ent/session"
	"ludamus.io/enrolld/ent/sessionparticipation"
	"ludamus.io/enrolld/ent/user"
)

// SessionParticipationCreate is the builder for creating a SessionParticipation entity.
type SessionParticipationCreate struct {
	config
	mutation *SessionParticipationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionParticipationCreate) SetCreatedAt(v time.Time) *SessionParticipationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionParticipationCreate) SetNillableCreatedAt(v *time.Time) *SessionParticipationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionParticipationCreate) SetUpdatedAt(v time.Time) *SessionParticipationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionParticipationCreate) SetNillableUpdatedAt(v *time.Time) *SessionParticipationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionParticipationCreate) SetSessionID(v int64) *SessionParticipationCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SessionParticipationCreate) SetUserID(v int64) *SessionParticipationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetEnrolledByID sets the "enrolled_by_id" field.
func (_c *SessionParticipationCreate) SetEnrolledByID(v int64) *SessionParticipationCreate {
	_c.mutation.SetEnrolledByID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionParticipationCreate) SetStatus(v string) *SessionParticipationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SessionParticipationCreate) SetID(v int64) *SessionParticipationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *SessionParticipationCreate) SetSession(v *Session) *SessionParticipationCreate {
	return _c.SetSessionID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_c *SessionParticipationCreate) SetUser(v *User) *SessionParticipationCreate {
	return _c.SetUserID(v.ID)
}

// SetEnrolledBy sets the "enrolled_by" edge to the User entity.
func (_c *SessionParticipationCreate) SetEnrolledBy(v *User) *SessionParticipationCreate {
	return _c.SetEnrolledByID(v.ID)
}

// Mutation returns the SessionParticipationMutation object of the builder.
func (_c *SessionParticipationCreate) Mutation() *SessionParticipationMutation {
	return _c.mutation
}

// Save creates the SessionParticipation in the database.
func (_c *SessionParticipationCreate) Save(ctx context.Context) (*SessionParticipation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionParticipationCreate) SaveX(ctx context.Context) *SessionParticipation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionParticipationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionParticipationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionParticipationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionparticipation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessionparticipation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionParticipationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionParticipation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionParticipation.updated_at"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionParticipation.session_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SessionParticipation.user_id"`)}
	}
	if _, ok := _c.mutation.EnrolledByID(); !ok {
		return &ValidationError{Name: "enrolled_by_id", err: errors.New(`ent: missing required field "SessionParticipation.enrolled_by_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SessionParticipation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sessionparticipation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SessionParticipation.status": %w`, err)}
		}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "SessionParticipation.session"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "SessionParticipation.user"`)}
	}
	if len(_c.mutation.EnrolledByIDs()) == 0 {
		return &ValidationError{Name: "enrolled_by", err: errors.New(`ent: missing required edge "SessionParticipation.enrolled_by"`)}
	}
	return nil
}

func (_c *SessionParticipationCreate) sqlSave(ctx context.Context) (*SessionParticipation, error) {
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

func (_c *SessionParticipationCreate) createSpec() (*SessionParticipation, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionParticipation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionparticipation.Table, sqlgraph.NewFieldSpec(sessionparticipation.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionparticipation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionparticipation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sessionparticipation.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sessionparticipation.SessionTable,
			Columns: []string{sessionparticipation.SessionColumn},
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
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sessionparticipation.UserTable,
			Columns: []string{sessionparticipation.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EnrolledByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   sessionparticipation.EnrolledByTable,
			Columns: []string{sessionparticipation.EnrolledByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EnrolledByID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionParticipation.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionParticipationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionParticipationCreate) OnConflict(opts ...sql.ConflictOption) *SessionParticipationUpsertOne {
	_c.conflict = opts
	return &SessionParticipationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionParticipation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionParticipationCreate) OnConflictColumns(columns ...string) *SessionParticipationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionParticipationUpsertOne{
		create: _c,
	}
}

type (
	// SessionParticipationUpsertOne is the builder for "upsert"-ing
	//  one SessionParticipation node.
	SessionParticipationUpsertOne struct {
		create *SessionParticipationCreate
	}

	// SessionParticipationUpsert is the "OnConflict" setter.
	SessionParticipationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionParticipationUpsert) SetUpdatedAt(v time.Time) *SessionParticipationUpsert {
	u.Set(sessionparticipation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionParticipationUpsert) UpdateUpdatedAt() *SessionParticipationUpsert {
	u.SetExcluded(sessionparticipation.FieldUpdatedAt)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *SessionParticipationUpsert) SetSessionID(v int64) *SessionParticipationUpsert {
	u.Set(sessionparticipation.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionParticipationUpsert) UpdateSessionID() *SessionParticipationUpsert {
	u.SetExcluded(sessionparticipation.FieldSessionID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *SessionParticipationUpsert) SetUserID(v int64) *SessionParticipationUpsert {
	u.Set(sessionparticipation.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionParticipationUpsert) UpdateUserID() *SessionParticipationUpsert {
	u.SetExcluded(sessionparticipation.FieldUserID)
	return u
}

// SetEnrolledByID sets the "enrolled_by_id" field.
func (u *SessionParticipationUpsert) SetEnrolledByID(v int64) *SessionParticipationUpsert {
	u.Set(sessionparticipation.FieldEnrolledByID, v)
	return u
}

// UpdateEnrolledByID sets the "enrolled_by_id" field to the value that was provided on create.
func (u *SessionParticipationUpsert) UpdateEnrolledByID() *SessionParticipationUpsert {
	u.SetExcluded(sessionparticipation.FieldEnrolledByID)
	return u
}

// SetStatus sets the "status" field.
func (u *SessionParticipationUpsert) SetStatus(v string) *SessionParticipationUpsert {
	u.Set(sessionparticipation.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionParticipationUpsert) UpdateStatus() *SessionParticipationUpsert {
	u.SetExcluded(sessionparticipation.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SessionParticipation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionparticipation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionParticipationUpsertOne) UpdateNewValues() *SessionParticipationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sessionparticipation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(sessionparticipation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionParticipation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionParticipationUpsertOne) Ignore() *SessionParticipationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionParticipationUpsertOne) DoNothing() *SessionParticipationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionParticipationCreate.OnConflict
// documentation for more info.
func (u *SessionParticipationUpsertOne) Update(set func(*SessionParticipationUpsert)) *SessionParticipationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionParticipationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionParticipationUpsertOne) SetUpdatedAt(v time.Time) *SessionParticipationUpsertOne {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionParticipationUpsertOne) UpdateUpdatedAt() *SessionParticipationUpsertOne {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSessionID sets the "session_id" field.
func (u *SessionParticipationUpsertOne) SetSessionID(v int64) *SessionParticipationUpsertOne {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionParticipationUpsertOne) UpdateSessionID() *SessionParticipationUpsertOne {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.UpdateSessionID()
	})
}

// SetUserID sets the "user_id" field.
func (u *SessionParticipationUpsertOne) SetUserID(v int64) *SessionParticipationUpsertOne {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionParticipationUpsertOne) UpdateUserID() *SessionParticipationUpsertOne {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.UpdateUserID()
	})
}

// SetEnrolledByID sets the "enrolled_by_id" field.
func (u *SessionParticipationUpsertOne) SetEnrolledByID(v int64) *SessionParticipationUpsertOne {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.SetEnrolledByID(v)
	})
}

// UpdateEnrolledByID sets the "enrolled_by_id" field to the value that was provided on create.
func (u *SessionParticipationUpsertOne) UpdateEnrolledByID() *SessionParticipationUpsertOne {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.UpdateEnrolledByID()
	})
}

// SetStatus sets the "status" field.
func (u *SessionParticipationUpsertOne) SetStatus(v string) *SessionParticipationUpsertOne {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionParticipationUpsertOne) UpdateStatus() *SessionParticipationUpsertOne {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *SessionParticipationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionParticipationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionParticipationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionParticipationUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionParticipationUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionParticipationCreateBulk is the builder for creating many SessionParticipation entities in bulk.
type SessionParticipationCreateBulk struct {
	config
	err      error
	builders []*SessionParticipationCreate
	conflict []sql.ConflictOption
}

// Save creates the SessionParticipation entities in the database.
func (_c *SessionParticipationCreateBulk) Save(ctx context.Context) ([]*SessionParticipation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionParticipation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionParticipationMutation)
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
func (_c *SessionParticipationCreateBulk) SaveX(ctx context.Context) []*SessionParticipation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionParticipationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionParticipationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionParticipation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionParticipationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionParticipationCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionParticipationUpsertBulk {
	_c.conflict = opts
	return &SessionParticipationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionParticipation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionParticipationCreateBulk) OnConflictColumns(columns ...string) *SessionParticipationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionParticipationUpsertBulk{
		create: _c,
	}
}

// SessionParticipationUpsertBulk is the builder for "upsert"-ing
// a bulk of SessionParticipation nodes.
type SessionParticipationUpsertBulk struct {
	create *SessionParticipationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SessionParticipation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionparticipation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionParticipationUpsertBulk) UpdateNewValues() *SessionParticipationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sessionparticipation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(sessionparticipation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionParticipation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionParticipationUpsertBulk) Ignore() *SessionParticipationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionParticipationUpsertBulk) DoNothing() *SessionParticipationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionParticipationCreateBulk.OnConflict
// documentation for more info.
func (u *SessionParticipationUpsertBulk) Update(set func(*SessionParticipationUpsert)) *SessionParticipationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionParticipationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionParticipationUpsertBulk) SetUpdatedAt(v time.Time) *SessionParticipationUpsertBulk {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionParticipationUpsertBulk) UpdateUpdatedAt() *SessionParticipationUpsertBulk {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSessionID sets the "session_id" field.
func (u *SessionParticipationUpsertBulk) SetSessionID(v int64) *SessionParticipationUpsertBulk {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionParticipationUpsertBulk) UpdateSessionID() *SessionParticipationUpsertBulk {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.UpdateSessionID()
	})
}

// SetUserID sets the "user_id" field.
func (u *SessionParticipationUpsertBulk) SetUserID(v int64) *SessionParticipationUpsertBulk {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionParticipationUpsertBulk) UpdateUserID() *SessionParticipationUpsertBulk {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.UpdateUserID()
	})
}

// SetEnrolledByID sets the "enrolled_by_id" field.
func (u *SessionParticipationUpsertBulk) SetEnrolledByID(v int64) *SessionParticipationUpsertBulk {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.SetEnrolledByID(v)
	})
}

// UpdateEnrolledByID sets the "enrolled_by_id" field to the value that was provided on create.
func (u *SessionParticipationUpsertBulk) UpdateEnrolledByID() *SessionParticipationUpsertBulk {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.UpdateEnrolledByID()
	})
}

// SetStatus sets the "status" field.
func (u *SessionParticipationUpsertBulk) SetStatus(v string) *SessionParticipationUpsertBulk {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionParticipationUpsertBulk) UpdateStatus() *SessionParticipationUpsertBulk {
	return u.Update(func(s *SessionParticipationUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *SessionParticipationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionParticipationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionParticipationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionParticipationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
