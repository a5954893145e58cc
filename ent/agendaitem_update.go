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
	"ludamus.io/enrolld/ent/predicate"
	"ludamus.io/enrolld/ent/session"
	"ludamus.io/enrolld/ent/space"
)

// AgendaItemUpdate is the builder for updating AgendaItem entities.
type AgendaItemUpdate struct {
	config
	hooks    []Hook
	mutation *AgendaItemMutation
}

// Where appends a list predicates to the AgendaItemUpdate builder.
func (_u *AgendaItemUpdate) Where(ps ...predicate.AgendaItem) *AgendaItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgendaItemUpdate) SetUpdatedAt(v time.Time) *AgendaItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSpaceID sets the "space_id" field.
func (_u *AgendaItemUpdate) SetSpaceID(v int64) *AgendaItemUpdate {
	_u.mutation.SetSpaceID(v)
	return _u
}

// SetNillableSpaceID sets the "space_id" field if the given value is not nil.
func (_u *AgendaItemUpdate) SetNillableSpaceID(v *int64) *AgendaItemUpdate {
	if v != nil {
		_u.SetSpaceID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AgendaItemUpdate) SetSessionID(v int64) *AgendaItemUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AgendaItemUpdate) SetNillableSessionID(v *int64) *AgendaItemUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AgendaItemUpdate) SetStartTime(v time.Time) *AgendaItemUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AgendaItemUpdate) SetNillableStartTime(v *time.Time) *AgendaItemUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AgendaItemUpdate) SetEndTime(v time.Time) *AgendaItemUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AgendaItemUpdate) SetNillableEndTime(v *time.Time) *AgendaItemUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetSessionConfirmed sets the "session_confirmed" field.
func (_u *AgendaItemUpdate) SetSessionConfirmed(v bool) *AgendaItemUpdate {
	_u.mutation.SetSessionConfirmed(v)
	return _u
}

// SetNillableSessionConfirmed sets the "session_confirmed" field if the given value is not nil.
func (_u *AgendaItemUpdate) SetNillableSessionConfirmed(v *bool) *AgendaItemUpdate {
	if v != nil {
		_u.SetSessionConfirmed(*v)
	}
	return _u
}

// SetSpace sets the "space" edge to the Space entity.
func (_u *AgendaItemUpdate) SetSpace(v *Space) *AgendaItemUpdate {
	return _u.SetSpaceID(v.ID)
}

// SetSession sets the "session" edge to the Session entity.
func (_u *AgendaItemUpdate) SetSession(v *Session) *AgendaItemUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the AgendaItemMutation object of the builder.
func (_u *AgendaItemUpdate) Mutation() *AgendaItemMutation {
	return _u.mutation
}

// ClearSpace clears the "space" edge to the Space entity.
func (_u *AgendaItemUpdate) ClearSpace() *AgendaItemUpdate {
	_u.mutation.ClearSpace()
	return _u
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *AgendaItemUpdate) ClearSession() *AgendaItemUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgendaItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgendaItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgendaItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgendaItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgendaItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agendaitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgendaItemUpdate) check() error {
	if _u.mutation.SpaceCleared() && len(_u.mutation.SpaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgendaItem.space"`)
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgendaItem.session"`)
	}
	return nil
}

func (_u *AgendaItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agendaitem.Table, agendaitem.Columns, sqlgraph.NewFieldSpec(agendaitem.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agendaitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(agendaitem.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(agendaitem.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionConfirmed(); ok {
		_spec.SetField(agendaitem.FieldSessionConfirmed, field.TypeBool, value)
	}
	if _u.mutation.SpaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agendaitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgendaItemUpdateOne is the builder for updating a single AgendaItem entity.
type AgendaItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgendaItemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgendaItemUpdateOne) SetUpdatedAt(v time.Time) *AgendaItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSpaceID sets the "space_id" field.
func (_u *AgendaItemUpdateOne) SetSpaceID(v int64) *AgendaItemUpdateOne {
	_u.mutation.SetSpaceID(v)
	return _u
}

// SetNillableSpaceID sets the "space_id" field if the given value is not nil.
func (_u *AgendaItemUpdateOne) SetNillableSpaceID(v *int64) *AgendaItemUpdateOne {
	if v != nil {
		_u.SetSpaceID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AgendaItemUpdateOne) SetSessionID(v int64) *AgendaItemUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AgendaItemUpdateOne) SetNillableSessionID(v *int64) *AgendaItemUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AgendaItemUpdateOne) SetStartTime(v time.Time) *AgendaItemUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AgendaItemUpdateOne) SetNillableStartTime(v *time.Time) *AgendaItemUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AgendaItemUpdateOne) SetEndTime(v time.Time) *AgendaItemUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AgendaItemUpdateOne) SetNillableEndTime(v *time.Time) *AgendaItemUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetSessionConfirmed sets the "session_confirmed" field.
func (_u *AgendaItemUpdateOne) SetSessionConfirmed(v bool) *AgendaItemUpdateOne {
	_u.mutation.SetSessionConfirmed(v)
	return _u
}

// SetNillableSessionConfirmed sets the "session_confirmed" field if the given value is not nil.
func (_u *AgendaItemUpdateOne) SetNillableSessionConfirmed(v *bool) *AgendaItemUpdateOne {
	if v != nil {
		_u.SetSessionConfirmed(*v)
	}
	return _u
}

// SetSpace sets the "space" edge to the Space entity.
func (_u *AgendaItemUpdateOne) SetSpace(v *Space) *AgendaItemUpdateOne {
	return _u.SetSpaceID(v.ID)
}

// SetSession sets the "session" edge to the Session entity.
func (_u *AgendaItemUpdateOne) SetSession(v *Session) *AgendaItemUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the AgendaItemMutation object of the builder.
func (_u *AgendaItemUpdateOne) Mutation() *AgendaItemMutation {
	return _u.mutation
}

// ClearSpace clears the "space" edge to the Space entity.
func (_u *AgendaItemUpdateOne) ClearSpace() *AgendaItemUpdateOne {
	_u.mutation.ClearSpace()
	return _u
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *AgendaItemUpdateOne) ClearSession() *AgendaItemUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the AgendaItemUpdate builder.
func (_u *AgendaItemUpdateOne) Where(ps ...predicate.AgendaItem) *AgendaItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgendaItemUpdateOne) Select(field string, fields ...string) *AgendaItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgendaItem entity.
func (_u *AgendaItemUpdateOne) Save(ctx context.Context) (*AgendaItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgendaItemUpdateOne) SaveX(ctx context.Context) *AgendaItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgendaItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgendaItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgendaItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agendaitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgendaItemUpdateOne) check() error {
	if _u.mutation.SpaceCleared() && len(_u.mutation.SpaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgendaItem.space"`)
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgendaItem.session"`)
	}
	return nil
}

func (_u *AgendaItemUpdateOne) sqlSave(ctx context.Context) (_node *AgendaItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agendaitem.Table, agendaitem.Columns, sqlgraph.NewFieldSpec(agendaitem.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgendaItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agendaitem.FieldID)
		for _, f := range fields {
			if !agendaitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agendaitem.FieldID {
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
		_spec.SetField(agendaitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(agendaitem.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(agendaitem.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionConfirmed(); ok {
		_spec.SetField(agendaitem.FieldSessionConfirmed, field.TypeBool, value)
	}
	if _u.mutation.SpaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgendaItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agendaitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
