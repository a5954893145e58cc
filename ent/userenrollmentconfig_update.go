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
	"ludamus.io/enrolld/ent/predicate"
	"ludamus.io/enrolld/ent/userenrollmentconfig"
)

// UserEnrollmentConfigUpdate is the builder for updating UserEnrollmentConfig entities.
type UserEnrollmentConfigUpdate struct {
	config
	hooks    []Hook
	mutation *UserEnrollmentConfigMutation
}

// Where appends a list predicates to the UserEnrollmentConfigUpdate builder.
func (_u *UserEnrollmentConfigUpdate) Where(ps ...predicate.UserEnrollmentConfig) *UserEnrollmentConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserEnrollmentConfigUpdate) SetUpdatedAt(v time.Time) *UserEnrollmentConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetConfigID sets the "config_id" field.
func (_u *UserEnrollmentConfigUpdate) SetConfigID(v int64) *UserEnrollmentConfigUpdate {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *UserEnrollmentConfigUpdate) SetNillableConfigID(v *int64) *UserEnrollmentConfigUpdate {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetUserEmail sets the "user_email" field.
func (_u *UserEnrollmentConfigUpdate) SetUserEmail(v string) *UserEnrollmentConfigUpdate {
	_u.mutation.SetUserEmail(v)
	return _u
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_u *UserEnrollmentConfigUpdate) SetNillableUserEmail(v *string) *UserEnrollmentConfigUpdate {
	if v != nil {
		_u.SetUserEmail(*v)
	}
	return _u
}

// SetAllowedSlots sets the "allowed_slots" field.
func (_u *UserEnrollmentConfigUpdate) SetAllowedSlots(v int) *UserEnrollmentConfigUpdate {
	_u.mutation.ResetAllowedSlots()
	_u.mutation.SetAllowedSlots(v)
	return _u
}

// SetNillableAllowedSlots sets the "allowed_slots" field if the given value is not nil.
func (_u *UserEnrollmentConfigUpdate) SetNillableAllowedSlots(v *int) *UserEnrollmentConfigUpdate {
	if v != nil {
		_u.SetAllowedSlots(*v)
	}
	return _u
}

// AddAllowedSlots adds value to the "allowed_slots" field.
func (_u *UserEnrollmentConfigUpdate) AddAllowedSlots(v int) *UserEnrollmentConfigUpdate {
	_u.mutation.AddAllowedSlots(v)
	return _u
}

// SetFetchedFromAPI sets the "fetched_from_api" field.
func (_u *UserEnrollmentConfigUpdate) SetFetchedFromAPI(v bool) *UserEnrollmentConfigUpdate {
	_u.mutation.SetFetchedFromAPI(v)
	return _u
}

// SetNillableFetchedFromAPI sets the "fetched_from_api" field if the given value is not nil.
func (_u *UserEnrollmentConfigUpdate) SetNillableFetchedFromAPI(v *bool) *UserEnrollmentConfigUpdate {
	if v != nil {
		_u.SetFetchedFromAPI(*v)
	}
	return _u
}

// SetLastCheck sets the "last_check" field.
func (_u *UserEnrollmentConfigUpdate) SetLastCheck(v time.Time) *UserEnrollmentConfigUpdate {
	_u.mutation.SetLastCheck(v)
	return _u
}

// SetNillableLastCheck sets the "last_check" field if the given value is not nil.
func (_u *UserEnrollmentConfigUpdate) SetNillableLastCheck(v *time.Time) *UserEnrollmentConfigUpdate {
	if v != nil {
		_u.SetLastCheck(*v)
	}
	return _u
}

// ClearLastCheck clears the value of the "last_check" field.
func (_u *UserEnrollmentConfigUpdate) ClearLastCheck() *UserEnrollmentConfigUpdate {
	_u.mutation.ClearLastCheck()
	return _u
}

// SetConfig sets the "config" edge to the EnrollmentConfig entity.
func (_u *UserEnrollmentConfigUpdate) SetConfig(v *EnrollmentConfig) *UserEnrollmentConfigUpdate {
	return _u.SetConfigID(v.ID)
}

// Mutation returns the UserEnrollmentConfigMutation object of the builder.
func (_u *UserEnrollmentConfigUpdate) Mutation() *UserEnrollmentConfigMutation {
	return _u.mutation
}

// ClearConfig clears the "config" edge to the EnrollmentConfig entity.
func (_u *UserEnrollmentConfigUpdate) ClearConfig() *UserEnrollmentConfigUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserEnrollmentConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserEnrollmentConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserEnrollmentConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserEnrollmentConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserEnrollmentConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userenrollmentconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserEnrollmentConfigUpdate) check() error {
	if v, ok := _u.mutation.UserEmail(); ok {
		if err := userenrollmentconfig.UserEmailValidator(v); err != nil {
			return &ValidationError{Name: "user_email", err: fmt.Errorf(`ent: validator failed for field "UserEnrollmentConfig.user_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AllowedSlots(); ok {
		if err := userenrollmentconfig.AllowedSlotsValidator(v); err != nil {
			return &ValidationError{Name: "allowed_slots", err: fmt.Errorf(`ent: validator failed for field "UserEnrollmentConfig.allowed_slots": %w`, err)}
		}
	}
	if _u.mutation.ConfigCleared() && len(_u.mutation.ConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserEnrollmentConfig.config"`)
	}
	return nil
}

func (_u *UserEnrollmentConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userenrollmentconfig.Table, userenrollmentconfig.Columns, sqlgraph.NewFieldSpec(userenrollmentconfig.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userenrollmentconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserEmail(); ok {
		_spec.SetField(userenrollmentconfig.FieldUserEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.AllowedSlots(); ok {
		_spec.SetField(userenrollmentconfig.FieldAllowedSlots, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAllowedSlots(); ok {
		_spec.AddField(userenrollmentconfig.FieldAllowedSlots, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FetchedFromAPI(); ok {
		_spec.SetField(userenrollmentconfig.FieldFetchedFromAPI, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastCheck(); ok {
		_spec.SetField(userenrollmentconfig.FieldLastCheck, field.TypeTime, value)
	}
	if _u.mutation.LastCheckCleared() {
		_spec.ClearField(userenrollmentconfig.FieldLastCheck, field.TypeTime)
	}
	if _u.mutation.ConfigCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConfigIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userenrollmentconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserEnrollmentConfigUpdateOne is the builder for updating a single UserEnrollmentConfig entity.
type UserEnrollmentConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserEnrollmentConfigMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserEnrollmentConfigUpdateOne) SetUpdatedAt(v time.Time) *UserEnrollmentConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetConfigID sets the "config_id" field.
func (_u *UserEnrollmentConfigUpdateOne) SetConfigID(v int64) *UserEnrollmentConfigUpdateOne {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *UserEnrollmentConfigUpdateOne) SetNillableConfigID(v *int64) *UserEnrollmentConfigUpdateOne {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetUserEmail sets the "user_email" field.
func (_u *UserEnrollmentConfigUpdateOne) SetUserEmail(v string) *UserEnrollmentConfigUpdateOne {
	_u.mutation.SetUserEmail(v)
	return _u
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_u *UserEnrollmentConfigUpdateOne) SetNillableUserEmail(v *string) *UserEnrollmentConfigUpdateOne {
	if v != nil {
		_u.SetUserEmail(*v)
	}
	return _u
}

// SetAllowedSlots sets the "allowed_slots" field.
func (_u *UserEnrollmentConfigUpdateOne) SetAllowedSlots(v int) *UserEnrollmentConfigUpdateOne {
	_u.mutation.ResetAllowedSlots()
	_u.mutation.SetAllowedSlots(v)
	return _u
}

// SetNillableAllowedSlots sets the "allowed_slots" field if the given value is not nil.
func (_u *UserEnrollmentConfigUpdateOne) SetNillableAllowedSlots(v *int) *UserEnrollmentConfigUpdateOne {
	if v != nil {
		_u.SetAllowedSlots(*v)
	}
	return _u
}

// AddAllowedSlots adds value to the "allowed_slots" field.
func (_u *UserEnrollmentConfigUpdateOne) AddAllowedSlots(v int) *UserEnrollmentConfigUpdateOne {
	_u.mutation.AddAllowedSlots(v)
	return _u
}

// SetFetchedFromAPI sets the "fetched_from_api" field.
func (_u *UserEnrollmentConfigUpdateOne) SetFetchedFromAPI(v bool) *UserEnrollmentConfigUpdateOne {
	_u.mutation.SetFetchedFromAPI(v)
	return _u
}

// SetNillableFetchedFromAPI sets the "fetched_from_api" field if the given value is not nil.
func (_u *UserEnrollmentConfigUpdateOne) SetNillableFetchedFromAPI(v *bool) *UserEnrollmentConfigUpdateOne {
	if v != nil {
		_u.SetFetchedFromAPI(*v)
	}
	return _u
}

// SetLastCheck sets the "last_check" field.
func (_u *UserEnrollmentConfigUpdateOne) SetLastCheck(v time.Time) *UserEnrollmentConfigUpdateOne {
	_u.mutation.SetLastCheck(v)
	return _u
}

// SetNillableLastCheck sets the "last_check" field if the given value is not nil.
func (_u *UserEnrollmentConfigUpdateOne) SetNillableLastCheck(v *time.Time) *UserEnrollmentConfigUpdateOne {
	if v != nil {
		_u.SetLastCheck(*v)
	}
	return _u
}

// ClearLastCheck clears the value of the "last_check" field.
func (_u *UserEnrollmentConfigUpdateOne) ClearLastCheck() *UserEnrollmentConfigUpdateOne {
	_u.mutation.ClearLastCheck()
	return _u
}

// SetConfig sets the "config" edge to the EnrollmentConfig entity.
func (_u *UserEnrollmentConfigUpdateOne) SetConfig(v *EnrollmentConfig) *UserEnrollmentConfigUpdateOne {
	return _u.SetConfigID(v.ID)
}

// Mutation returns the UserEnrollmentConfigMutation object of the builder.
func (_u *UserEnrollmentConfigUpdateOne) Mutation() *UserEnrollmentConfigMutation {
	return _u.mutation
}

// ClearConfig clears the "config" edge to the EnrollmentConfig entity.
func (_u *UserEnrollmentConfigUpdateOne) ClearConfig() *UserEnrollmentConfigUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// Where appends a list predicates to the UserEnrollmentConfigUpdate builder.
func (_u *UserEnrollmentConfigUpdateOne) Where(ps ...predicate.UserEnrollmentConfig) *UserEnrollmentConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserEnrollmentConfigUpdateOne) Select(field string, fields ...string) *UserEnrollmentConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserEnrollmentConfig entity.
func (_u *UserEnrollmentConfigUpdateOne) Save(ctx context.Context) (*UserEnrollmentConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserEnrollmentConfigUpdateOne) SaveX(ctx context.Context) *UserEnrollmentConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserEnrollmentConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserEnrollmentConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserEnrollmentConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userenrollmentconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserEnrollmentConfigUpdateOne) check() error {
	if v, ok := _u.mutation.UserEmail(); ok {
		if err := userenrollmentconfig.UserEmailValidator(v); err != nil {
			return &ValidationError{Name: "user_email", err: fmt.Errorf(`ent: validator failed for field "UserEnrollmentConfig.user_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AllowedSlots(); ok {
		if err := userenrollmentconfig.AllowedSlotsValidator(v); err != nil {
			return &ValidationError{Name: "allowed_slots", err: fmt.Errorf(`ent: validator failed for field "UserEnrollmentConfig.allowed_slots": %w`, err)}
		}
	}
	if _u.mutation.ConfigCleared() && len(_u.mutation.ConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserEnrollmentConfig.config"`)
	}
	return nil
}

func (_u *UserEnrollmentConfigUpdateOne) sqlSave(ctx context.Context) (_node *UserEnrollmentConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userenrollmentconfig.Table, userenrollmentconfig.Columns, sqlgraph.NewFieldSpec(userenrollmentconfig.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserEnrollmentConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userenrollmentconfig.FieldID)
		for _, f := range fields {
			if !userenrollmentconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userenrollmentconfig.FieldID {
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
		_spec.SetField(userenrollmentconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserEmail(); ok {
		_spec.SetField(userenrollmentconfig.FieldUserEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.AllowedSlots(); ok {
		_spec.SetField(userenrollmentconfig.FieldAllowedSlots, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAllowedSlots(); ok {
		_spec.AddField(userenrollmentconfig.FieldAllowedSlots, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FetchedFromAPI(); ok {
		_spec.SetField(userenrollmentconfig.FieldFetchedFromAPI, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastCheck(); ok {
		_spec.SetField(userenrollmentconfig.FieldLastCheck, field.TypeTime, value)
	}
	if _u.mutation.LastCheckCleared() {
		_spec.ClearField(userenrollmentconfig.FieldLastCheck, field.TypeTime)
	}
	if _u.mutation.ConfigCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConfigIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UserEnrollmentConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userenrollmentconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
