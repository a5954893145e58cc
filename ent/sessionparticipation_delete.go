// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"ludamus.io/enrolld/ent/predicate"
	"ludamus.io/enrolld/ent/sessionparticipation"
)

// SessionParticipationDelete is the builder for deleting a SessionParticipation entity.
type SessionParticipationDelete struct {
	config
	hooks    []Hook
	mutation *SessionParticipationMutation
}

// Where appends a list predicates to the SessionParticipationDelete builder.
func (_d *SessionParticipationDelete) Where(ps ...predicate.SessionParticipation) *SessionParticipationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SessionParticipationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SessionParticipationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SessionParticipationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(sessionparticipation.Table, sqlgraph.NewFieldSpec(sessionparticipation.FieldID, field.TypeInt64))
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

// SessionParticipationDeleteOne is the builder for deleting a single SessionParticipation entity.
type SessionParticipationDeleteOne struct {
	_d *SessionParticipationDelete
}

// Where appends a list predicates to the SessionParticipationDelete builder.
func (_d *SessionParticipationDeleteOne) Where(ps ...predicate.SessionParticipation) *SessionParticipationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SessionParticipationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{sessionparticipation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SessionParticipationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
