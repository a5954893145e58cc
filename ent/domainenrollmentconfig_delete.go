// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"ludamus.io/enrolld/ent/domainenrollmentconfig"
	"ludamus.io/enrolld/ent/predicate"
)

// DomainEnrollmentConfigDelete is the builder for deleting a DomainEnrollmentConfig entity.
type DomainEnrollmentConfigDelete struct {
	config
	hooks    []Hook
	mutation *DomainEnrollmentConfigMutation
}

// Where appends a list predicates to the DomainEnrollmentConfigDelete builder.
func (_d *DomainEnrollmentConfigDelete) Where(ps ...predicate.DomainEnrollmentConfig) *DomainEnrollmentConfigDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DomainEnrollmentConfigDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DomainEnrollmentConfigDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DomainEnrollmentConfigDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(domainenrollmentconfig.Table, sqlgraph.NewFieldSpec(domainenrollmentconfig.FieldID, field.TypeInt64))
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

// DomainEnrollmentConfigDeleteOne is the builder for deleting a single DomainEnrollmentConfig entity.
type DomainEnrollmentConfigDeleteOne struct {
	_d *DomainEnrollmentConfigDelete
}

// Where appends a list predicates to the DomainEnrollmentConfigDelete builder.
func (_d *DomainEnrollmentConfigDeleteOne) Where(ps ...predicate.DomainEnrollmentConfig) *DomainEnrollmentConfigDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DomainEnrollmentConfigDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{domainenrollmentconfig.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DomainEnrollmentConfigDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
