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
	"ludamus.io/enrolld/ent/predicate"
	"ludamus.io/enrolld/ent/session"
	"ludamus.io/enrolld/ent/sessionparticipation"
	"ludamus.io/enrolld/ent/user"
)

// SessionParticipationUpdate is the builder for updating SessionParticipation entities.
type SessionParticipationUpdate struct {
	config
	hooks    []Hook
	mutation *SessionParticipationMutation
}

// Where appends a list predicates to the SessionParticipationUpdate builder.
func (_u *SessionParticipationUpdate) Where(ps ...predicate.SessionParticipation) *SessionParticipationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionParticipationUpdate) SetUpdatedAt(v time.Time) *SessionParticipationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionParticipationUpdate) SetSessionID(v int64) *SessionParticipationUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionParticipationUpdate) SetNillableSessionID(v *int64) *SessionParticipationUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionParticipationUpdate) SetUserID(v int64) *SessionParticipationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionParticipationUpdate) SetNillableUserID(v *int64) *SessionParticipationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetEnrolledByID sets the "enrolled_by_id" field.
func (_u *SessionParticipationUpdate) SetEnrolledByID(v int64) *SessionParticipationUpdate {
	_u.mutation.SetEnrolledByID(v)
	return _u
}

// SetNillableEnrolledByID sets the "enrolled_by_id" field if the given value is not nil.
func (_u *SessionParticipationUpdate) SetNillableEnrolledByID(v *int64) *SessionParticipationUpdate {
	if v != nil {
		_u.SetEnrolledByID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionParticipationUpdate) SetStatus(v string) *SessionParticipationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionParticipationUpdate) SetNillableStatus(v *string) *SessionParticipationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *SessionParticipationUpdate) SetSession(v *Session) *SessionParticipationUpdate {
	return _u.SetSessionID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *SessionParticipationUpdate) SetUser(v *User) *SessionParticipationUpdate {
	return _u.SetUserID(v.ID)
}

// SetEnrolledBy sets the "enrolled_by" edge to the User entity.
func (_u *SessionParticipationUpdate) SetEnrolledBy(v *User) *SessionParticipationUpdate {
	return _u.SetEnrolledByID(v.ID)
}

// Mutation returns the SessionParticipationMutation object of the builder.
func (_u *SessionParticipationUpdate) Mutation() *SessionParticipationMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *SessionParticipationUpdate) ClearSession() *SessionParticipationUpdate {
	_u.mutation.ClearSession()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *SessionParticipationUpdate) ClearUser() *SessionParticipationUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearEnrolledBy clears the "enrolled_by" edge to the User entity.
func (_u *SessionParticipationUpdate) ClearEnrolledBy() *SessionParticipationUpdate {
	_u.mutation.ClearEnrolledBy()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionParticipationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionParticipationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionParticipationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionParticipationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionParticipationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionparticipation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionParticipationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sessionparticipation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SessionParticipation.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionParticipation.session"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionParticipation.user"`)
	}
	if _u.mutation.EnrolledByCleared() && len(_u.mutation.EnrolledByIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionParticipation.enrolled_by"`)
	}
	return nil
}

func (_u *SessionParticipationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionparticipation.Table, sessionparticipation.Columns, sqlgraph.NewFieldSpec(sessionparticipation.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionparticipation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sessionparticipation.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EnrolledByCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnrolledByIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionparticipation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionParticipationUpdateOne is the builder for updating a single SessionParticipation entity.
type SessionParticipationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionParticipationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionParticipationUpdateOne) SetUpdatedAt(v time.Time) *SessionParticipationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionParticipationUpdateOne) SetSessionID(v int64) *SessionParticipationUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionParticipationUpdateOne) SetNillableSessionID(v *int64) *SessionParticipationUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionParticipationUpdateOne) SetUserID(v int64) *SessionParticipationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionParticipationUpdateOne) SetNillableUserID(v *int64) *SessionParticipationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetEnrolledByID sets the "enrolled_by_id" field.
func (_u *SessionParticipationUpdateOne) SetEnrolledByID(v int64) *SessionParticipationUpdateOne {
	_u.mutation.SetEnrolledByID(v)
	return _u
}

// SetNillableEnrolledByID sets the "enrolled_by_id" field if the given value is not nil.
func (_u *SessionParticipationUpdateOne) SetNillableEnrolledByID(v *int64) *SessionParticipationUpdateOne {
	if v != nil {
		_u.SetEnrolledByID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionParticipationUpdateOne) SetStatus(v string) *SessionParticipationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionParticipationUpdateOne) SetNillableStatus(v *string) *SessionParticipationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *SessionParticipationUpdateOne) SetSession(v *Session) *SessionParticipationUpdateOne {
	return _u.SetSessionID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *SessionParticipationUpdateOne) SetUser(v *User) *SessionParticipationUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetEnrolledBy sets the "enrolled_by" edge to the User entity.
func (_u *SessionParticipationUpdateOne) SetEnrolledBy(v *User) *SessionParticipationUpdateOne {
	return _u.SetEnrolledByID(v.ID)
}

// Mutation returns the SessionParticipationMutation object of the builder.
func (_u *SessionParticipationUpdateOne) Mutation() *SessionParticipationMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *SessionParticipationUpdateOne) ClearSession() *SessionParticipationUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *SessionParticipationUpdateOne) ClearUser() *SessionParticipationUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearEnrolledBy clears the "enrolled_by" edge to the User entity.
func (_u *SessionParticipationUpdateOne) ClearEnrolledBy() *SessionParticipationUpdateOne {
	_u.mutation.ClearEnrolledBy()
	return _u
}

// Where appends a list predicates to the SessionParticipationUpdate builder.
func (_u *SessionParticipationUpdateOne) Where(ps ...predicate.SessionParticipation) *SessionParticipationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionParticipationUpdateOne) Select(field string, fields ...string) *SessionParticipationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionParticipation entity.
func (_u *SessionParticipationUpdateOne) Save(ctx context.Context) (*SessionParticipation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionParticipationUpdateOne) SaveX(ctx context.Context) *SessionParticipation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionParticipationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionParticipationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionParticipationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionparticipation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionParticipationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sessionparticipation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SessionParticipation.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionParticipation.session"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionParticipation.user"`)
	}
	if _u.mutation.EnrolledByCleared() && len(_u.mutation.EnrolledByIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionParticipation.enrolled_by"`)
	}
	return nil
}

func (_u *SessionParticipationUpdateOne) sqlSave(ctx context.Context) (_node *SessionParticipation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionparticipation.Table, sessionparticipation.Columns, sqlgraph.NewFieldSpec(sessionparticipation.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionParticipation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionparticipation.FieldID)
		for _, f := range fields {
			if !sessionparticipation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionparticipation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionparticipation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sessionparticipation.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EnrolledByCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnrolledByIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SessionParticipation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionparticipation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
