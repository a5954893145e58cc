// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"ludamus.io/enrolld/ent/predicate"
	"ludamus.io/enrolld/ent/userenrollmentconfig"
)

// UserEnrollmentConfigDelete is the builder for deleting a UserEnrollmentConfig entity.
type UserEnrollmentConfigDelete struct {
	config
	hooks    []Hook
	mutation *UserEnrollmentConfigMutation
}

// Where appends a list predicates to the UserEnrollmentConfigDelete builder.
func (_d *UserEnrollmentConfigDelete) Where(ps ...predicate.UserEnrollmentConfig) *UserEnrollmentConfigDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *UserEnrollmentConfigDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UserEnrollmentConfigDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *UserEnrollmentConfigDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(userenrollmentconfig.Table, sqlgraph.NewFieldSpec(userenrollmentconfig.FieldID, field.TypeInt64))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// UserEnrollmentConfigDeleteOne is the builder for deleting a single UserEnrollmentConfig entity.
type UserEnrollmentConfigDeleteOne struct {
	_d *UserEnrollmentConfigDelete
}

// Where appends a list predicates to the UserEnrollmentConfigDelete builder.
func (_d *UserEnrollmentConfigDeleteOne) Where(ps ...predicate.UserEnrollmentConfig) *UserEnrollmentConfigDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *UserEnrollmentConfigDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{userenrollmentconfig.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UserEnrollmentConfigDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
