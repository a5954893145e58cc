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
	"ludamus.io/enrolld/ent/predicate"
)

// DomainEnrollmentConfigUpdate is the builder for updating DomainEnrollmentConfig entities.
type DomainEnrollmentConfigUpdate struct {
	config
	hooks    []Hook
	mutation *DomainEnrollmentConfigMutation
}

// Where appends a list predicates to the DomainEnrollmentConfigUpdate builder.
func (_u *DomainEnrollmentConfigUpdate) Where(ps ...predicate.DomainEnrollmentConfig) *DomainEnrollmentConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DomainEnrollmentConfigUpdate) SetUpdatedAt(v time.Time) *DomainEnrollmentConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetConfigID sets the "config_id" field.
func (_u *DomainEnrollmentConfigUpdate) SetConfigID(v int64) *DomainEnrollmentConfigUpdate {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *DomainEnrollmentConfigUpdate) SetNillableConfigID(v *int64) *DomainEnrollmentConfigUpdate {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *DomainEnrollmentConfigUpdate) SetDomain(v string) *DomainEnrollmentConfigUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *DomainEnrollmentConfigUpdate) SetNillableDomain(v *string) *DomainEnrollmentConfigUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetAllowedSlotsPerUser sets the "allowed_slots_per_user" field.
func (_u *DomainEnrollmentConfigUpdate) SetAllowedSlotsPerUser(v int) *DomainEnrollmentConfigUpdate {
	_u.mutation.ResetAllowedSlotsPerUser()
	_u.mutation.SetAllowedSlotsPerUser(v)
	return _u
}

// SetNillableAllowedSlotsPerUser sets the "allowed_slots_per_user" field if the given value is not nil.
func (_u *DomainEnrollmentConfigUpdate) SetNillableAllowedSlotsPerUser(v *int) *DomainEnrollmentConfigUpdate {
	if v != nil {
		_u.SetAllowedSlotsPerUser(*v)
	}
	return _u
}

// AddAllowedSlotsPerUser adds value to the "allowed_slots_per_user" field.
func (_u *DomainEnrollmentConfigUpdate) AddAllowedSlotsPerUser(v int) *DomainEnrollmentConfigUpdate {
	_u.mutation.AddAllowedSlotsPerUser(v)
	return _u
}

// SetConfig sets the "config" edge to the EnrollmentConfig entity.
func (_u *DomainEnrollmentConfigUpdate) SetConfig(v *EnrollmentConfig) *DomainEnrollmentConfigUpdate {
	return _u.SetConfigID(v.ID)
}

// Mutation returns the DomainEnrollmentConfigMutation object of the builder.
func (_u *DomainEnrollmentConfigUpdate) Mutation() *DomainEnrollmentConfigMutation {
	return _u.mutation
}

// ClearConfig clears the "config" edge to the EnrollmentConfig entity.
func (_u *DomainEnrollmentConfigUpdate) ClearConfig() *DomainEnrollmentConfigUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DomainEnrollmentConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DomainEnrollmentConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DomainEnrollmentConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DomainEnrollmentConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DomainEnrollmentConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := domainenrollmentconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DomainEnrollmentConfigUpdate) check() error {
	if v, ok := _u.mutation.Domain(); ok {
		if err := domainenrollmentconfig.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "DomainEnrollmentConfig.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AllowedSlotsPerUser(); ok {
		if err := domainenrollmentconfig.AllowedSlotsPerUserValidator(v); err != nil {
			return &ValidationError{Name: "allowed_slots_per_user", err: fmt.Errorf(`ent: validator failed for field "DomainEnrollmentConfig.allowed_slots_per_user": %w`, err)}
		}
	}
	if _u.mutation.ConfigCleared() && len(_u.mutation.ConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DomainEnrollmentConfig.config"`)
	}
	return nil
}

func (_u *DomainEnrollmentConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(domainenrollmentconfig.Table, domainenrollmentconfig.Columns, sqlgraph.NewFieldSpec(domainenrollmentconfig.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(domainenrollmentconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(domainenrollmentconfig.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.AllowedSlotsPerUser(); ok {
		_spec.SetField(domainenrollmentconfig.FieldAllowedSlotsPerUser, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAllowedSlotsPerUser(); ok {
		_spec.AddField(domainenrollmentconfig.FieldAllowedSlotsPerUser, field.TypeInt, value)
	}
	if _u.mutation.ConfigCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConfigIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domainenrollmentconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DomainEnrollmentConfigUpdateOne is the builder for updating a single DomainEnrollmentConfig entity.
type DomainEnrollmentConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DomainEnrollmentConfigMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DomainEnrollmentConfigUpdateOne) SetUpdatedAt(v time.Time) *DomainEnrollmentConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetConfigID sets the "config_id" field.
func (_u *DomainEnrollmentConfigUpdateOne) SetConfigID(v int64) *DomainEnrollmentConfigUpdateOne {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *DomainEnrollmentConfigUpdateOne) SetNillableConfigID(v *int64) *DomainEnrollmentConfigUpdateOne {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *DomainEnrollmentConfigUpdateOne) SetDomain(v string) *DomainEnrollmentConfigUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *DomainEnrollmentConfigUpdateOne) SetNillableDomain(v *string) *DomainEnrollmentConfigUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetAllowedSlotsPerUser sets the "allowed_slots_per_user" field.
func (_u *DomainEnrollmentConfigUpdateOne) SetAllowedSlotsPerUser(v int) *DomainEnrollmentConfigUpdateOne {
	_u.mutation.ResetAllowedSlotsPerUser()
	_u.mutation.SetAllowedSlotsPerUser(v)
	return _u
}

// SetNillableAllowedSlotsPerUser sets the "allowed_slots_per_user" field if the given value is not nil.
func (_u *DomainEnrollmentConfigUpdateOne) SetNillableAllowedSlotsPerUser(v *int) *DomainEnrollmentConfigUpdateOne {
	if v != nil {
		_u.SetAllowedSlotsPerUser(*v)
	}
	return _u
}

// AddAllowedSlotsPerUser adds value to the "allowed_slots_per_user" field.
func (_u *DomainEnrollmentConfigUpdateOne) AddAllowedSlotsPerUser(v int) *DomainEnrollmentConfigUpdateOne {
	_u.mutation.AddAllowedSlotsPerUser(v)
	return _u
}

// SetConfig sets the "config" edge to the EnrollmentConfig entity.
func (_u *DomainEnrollmentConfigUpdateOne) SetConfig(v *EnrollmentConfig) *DomainEnrollmentConfigUpdateOne {
	return _u.SetConfigID(v.ID)
}

// Mutation returns the DomainEnrollmentConfigMutation object of the builder.
func (_u *DomainEnrollmentConfigUpdateOne) Mutation() *DomainEnrollmentConfigMutation {
	return _u.mutation
}

// ClearConfig clears the "config" edge to the EnrollmentConfig entity.
func (_u *DomainEnrollmentConfigUpdateOne) ClearConfig() *DomainEnrollmentConfigUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// Where appends a list predicates to the DomainEnrollmentConfigUpdate builder.
func (_u *DomainEnrollmentConfigUpdateOne) Where(ps ...predicate.DomainEnrollmentConfig) *DomainEnrollmentConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DomainEnrollmentConfigUpdateOne) Select(field string, fields ...string) *DomainEnrollmentConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DomainEnrollmentConfig entity.
func (_u *DomainEnrollmentConfigUpdateOne) Save(ctx context.Context) (*DomainEnrollmentConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DomainEnrollmentConfigUpdateOne) SaveX(ctx context.Context) *DomainEnrollmentConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DomainEnrollmentConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DomainEnrollmentConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DomainEnrollmentConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := domainenrollmentconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DomainEnrollmentConfigUpdateOne) check() error {
	if v, ok := _u.mutation.Domain(); ok {
		if err := domainenrollmentconfig.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "DomainEnrollmentConfig.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AllowedSlotsPerUser(); ok {
		if err := domainenrollmentconfig.AllowedSlotsPerUserValidator(v); err != nil {
			return &ValidationError{Name: "allowed_slots_per_user", err: fmt.Errorf(`ent: validator failed for field "DomainEnrollmentConfig.allowed_slots_per_user": %w`, err)}
		}
	}
	if _u.mutation.ConfigCleared() && len(_u.mutation.ConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DomainEnrollmentConfig.config"`)
	}
	return nil
}

func (_u *DomainEnrollmentConfigUpdateOne) sqlSave(ctx context.Context) (_node *DomainEnrollmentConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(domainenrollmentconfig.Table, domainenrollmentconfig.Columns, sqlgraph.NewFieldSpec(domainenrollmentconfig.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DomainEnrollmentConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, domainenrollmentconfig.FieldID)
		for _, f := range fields {
			if !domainenrollmentconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != domainenrollmentconfig.FieldID {
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
		_spec.SetField(domainenrollmentconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(domainenrollmentconfig.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.AllowedSlotsPerUser(); ok {
		_spec.SetField(domainenrollmentconfig.FieldAllowedSlotsPerUser, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAllowedSlotsPerUser(); ok {
		_spec.AddField(domainenrollmentconfig.FieldAllowedSlotsPerUser, field.TypeInt, value)
	}
	if _u.mutation.ConfigCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConfigIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DomainEnrollmentConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domainenrollmentconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
