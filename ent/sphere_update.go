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
	"ludamus.io/enrolld/ent/event"
	"ludamus.io/enrolld/ent/predicate"
	"ludamus.io/enrolld/ent/sphere"
)

// SphereUpdate is the builder for updating Sphere entities.
type SphereUpdate struct {
	config
	hooks    []Hook
	mutation *SphereMutation
}

// Where appends a list predicates to the SphereUpdate builder.
func (_u *SphereUpdate) Where(ps ...predicate.Sphere) *SphereUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SphereUpdate) SetUpdatedAt(v time.Time) *SphereUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SphereUpdate) SetName(v string) *SphereUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SphereUpdate) SetNillableName(v *string) *SphereUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetHost sets the "host" field.
func (_u *SphereUpdate) SetHost(v string) *SphereUpdate {
	_u.mutation.SetHost(v)
	return _u
}

// SetNillableHost sets the "host" field if the given value is not nil.
func (_u *SphereUpdate) SetNillableHost(v *string) *SphereUpdate {
	if v != nil {
		_u.SetHost(*v)
	}
	return _u
}

// SetIsOpen sets the "is_open" field.
func (_u *SphereUpdate) SetIsOpen(v bool) *SphereUpdate {
	_u.mutation.SetIsOpen(v)
	return _u
}

// SetNillableIsOpen sets the "is_open" field if the given value is not nil.
func (_u *SphereUpdate) SetNillableIsOpen(v *bool) *SphereUpdate {
	if v != nil {
		_u.SetIsOpen(*v)
	}
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *SphereUpdate) AddEventIDs(ids ...int64) *SphereUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *SphereUpdate) AddEvents(v ...*Event) *SphereUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the SphereMutation object of the builder.
func (_u *SphereUpdate) Mutation() *SphereMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *SphereUpdate) ClearEvents() *SphereUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *SphereUpdate) RemoveEventIDs(ids ...int64) *SphereUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *SphereUpdate) RemoveEvents(v ...*Event) *SphereUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SphereUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SphereUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SphereUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SphereUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SphereUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sphere.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SphereUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := sphere.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Sphere.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Host(); ok {
		if err := sphere.HostValidator(v); err != nil {
			return &ValidationError{Name: "host", err: fmt.Errorf(`ent: validator failed for field "Sphere.host": %w`, err)}
		}
	}
	return nil
}

func (_u *SphereUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sphere.Table, sphere.Columns, sqlgraph.NewFieldSpec(sphere.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sphere.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(sphere.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Host(); ok {
		_spec.SetField(sphere.FieldHost, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsOpen(); ok {
		_spec.SetField(sphere.FieldIsOpen, field.TypeBool, value)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sphere.EventsTable,
			Columns: []string{sphere.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sphere.EventsTable,
			Columns: []string{sphere.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sphere.EventsTable,
			Columns: []string{sphere.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sphere.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SphereUpdateOne is the builder for updating a single Sphere entity.
type SphereUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SphereMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SphereUpdateOne) SetUpdatedAt(v time.Time) *SphereUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SphereUpdateOne) SetName(v string) *SphereUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SphereUpdateOne) SetNillableName(v *string) *SphereUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetHost sets the "host" field.
func (_u *SphereUpdateOne) SetHost(v string) *SphereUpdateOne {
	_u.mutation.SetHost(v)
	return _u
}

// SetNillableHost sets the "host" field if the given value is not nil.
func (_u *SphereUpdateOne) SetNillableHost(v *string) *SphereUpdateOne {
	if v != nil {
		_u.SetHost(*v)
	}
	return _u
}

// SetIsOpen sets the "is_open" field.
func (_u *SphereUpdateOne) SetIsOpen(v bool) *SphereUpdateOne {
	_u.mutation.SetIsOpen(v)
	return _u
}

// SetNillableIsOpen sets the "is_open" field if the given value is not nil.
func (_u *SphereUpdateOne) SetNillableIsOpen(v *bool) *SphereUpdateOne {
	if v != nil {
		_u.SetIsOpen(*v)
	}
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *SphereUpdateOne) AddEventIDs(ids ...int64) *SphereUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *SphereUpdateOne) AddEvents(v ...*Event) *SphereUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the SphereMutation object of the builder.
func (_u *SphereUpdateOne) Mutation() *SphereMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *SphereUpdateOne) ClearEvents() *SphereUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *SphereUpdateOne) RemoveEventIDs(ids ...int64) *SphereUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *SphereUpdateOne) RemoveEvents(v ...*Event) *SphereUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the SphereUpdate builder.
func (_u *SphereUpdateOne) Where(ps ...predicate.Sphere) *SphereUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SphereUpdateOne) Select(field string, fields ...string) *SphereUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Sphere entity.
func (_u *SphereUpdateOne) Save(ctx context.Context) (*Sphere, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SphereUpdateOne) SaveX(ctx context.Context) *Sphere {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SphereUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SphereUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SphereUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sphere.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SphereUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := sphere.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Sphere.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Host(); ok {
		if err := sphere.HostValidator(v); err != nil {
			return &ValidationError{Name: "host", err: fmt.Errorf(`ent: validator failed for field "Sphere.host": %w`, err)}
		}
	}
	return nil
}

func (_u *SphereUpdateOne) sqlSave(ctx context.Context) (_node *Sphere, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sphere.Table, sphere.Columns, sqlgraph.NewFieldSpec(sphere.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Sphere.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sphere.FieldID)
		for _, f := range fields {
			if !sphere.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sphere.FieldID {
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
		_spec.SetField(sphere.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(sphere.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Host(); ok {
		_spec.SetField(sphere.FieldHost, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsOpen(); ok {
		_spec.SetField(sphere.FieldIsOpen, field.TypeBool, value)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sphere.EventsTable,
			Columns: []string{sphere.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sphere.EventsTable,
			Columns: []string{sphere.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sphere.EventsTable,
			Columns: []string{sphere.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Sphere{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sphere.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
