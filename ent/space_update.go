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
	"ludamus.io/enrolld/ent/event"
	"ludamus.io/enrolld/ent/predicate"
	"ludamus.io/enrolld/ent/space"
)

// SpaceUpdate is the builder for updating Space entities.
type SpaceUpdate struct {
	config
	hooks    []Hook
	mutation *SpaceMutation
}

// Where appends a list predicates to the SpaceUpdate builder.
func (_u *SpaceUpdate) Where(ps ...predicate.Space) *SpaceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SpaceUpdate) SetUpdatedAt(v time.Time) *SpaceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *SpaceUpdate) SetEventID(v int64) *SpaceUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *SpaceUpdate) SetNillableEventID(v *int64) *SpaceUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SpaceUpdate) SetName(v string) *SpaceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SpaceUpdate) SetNillableName(v *string) *SpaceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *SpaceUpdate) SetSlug(v string) *SpaceUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *SpaceUpdate) SetNillableSlug(v *string) *SpaceUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetEvent sets the "event" edge to the Event entity.
func (_u *SpaceUpdate) SetEvent(v *Event) *SpaceUpdate {
	return _u.SetEventID(v.ID)
}

// AddAgendaItemIDs adds the "agenda_items" edge to the AgendaItem entity by IDs.
func (_u *SpaceUpdate) AddAgendaItemIDs(ids ...int64) *SpaceUpdate {
	_u.mutation.AddAgendaItemIDs(ids...)
	return _u
}

// AddAgendaItems adds the "agenda_items" edges to the AgendaItem entity.
func (_u *SpaceUpdate) AddAgendaItems(v ...*AgendaItem) *SpaceUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgendaItemIDs(ids...)
}

// Mutation returns the SpaceMutation object of the builder.
func (_u *SpaceUpdate) Mutation() *SpaceMutation {
	return _u.mutation
}

// ClearEvent clears the "event" edge to the Event entity.
func (_u *SpaceUpdate) ClearEvent() *SpaceUpdate {
	_u.mutation.ClearEvent()
	return _u
}

// ClearAgendaItems clears all "agenda_items" edges to the AgendaItem entity.
func (_u *SpaceUpdate) ClearAgendaItems() *SpaceUpdate {
	_u.mutation.ClearAgendaItems()
	return _u
}

// RemoveAgendaItemIDs removes the "agenda_items" edge to AgendaItem entities by IDs.
func (_u *SpaceUpdate) RemoveAgendaItemIDs(ids ...int64) *SpaceUpdate {
	_u.mutation.RemoveAgendaItemIDs(ids...)
	return _u
}

// RemoveAgendaItems removes "agenda_items" edges to AgendaItem entities.
func (_u *SpaceUpdate) RemoveAgendaItems(v ...*AgendaItem) *SpaceUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgendaItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpaceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpaceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpaceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpaceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SpaceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := space.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpaceUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := space.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Space.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := space.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Space.slug": %w`, err)}
		}
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Space.event"`)
	}
	return nil
}

func (_u *SpaceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(space.Table, space.Columns, sqlgraph.NewFieldSpec(space.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(space.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(space.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(space.FieldSlug, field.TypeString, value)
	}
	if _u.mutation.EventCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   space.EventTable,
			Columns: []string{space.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   space.EventTable,
			Columns: []string{space.EventColumn},
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
	if _u.mutation.AgendaItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   space.AgendaItemsTable,
			Columns: []string{space.AgendaItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agendaitem.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgendaItemsIDs(); len(nodes) > 0 && !_u.mutation.AgendaItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   space.AgendaItemsTable,
			Columns: []string{space.AgendaItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agendaitem.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgendaItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   space.AgendaItemsTable,
			Columns: []string{space.AgendaItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agendaitem.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{space.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpaceUpdateOne is the builder for updating a single Space entity.
type SpaceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpaceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SpaceUpdateOne) SetUpdatedAt(v time.Time) *SpaceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *SpaceUpdateOne) SetEventID(v int64) *SpaceUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *SpaceUpdateOne) SetNillableEventID(v *int64) *SpaceUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SpaceUpdateOne) SetName(v string) *SpaceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SpaceUpdateOne) SetNillableName(v *string) *SpaceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *SpaceUpdateOne) SetSlug(v string) *SpaceUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *SpaceUpdateOne) SetNillableSlug(v *string) *SpaceUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetEvent sets the "event" edge to the Event entity.
func (_u *SpaceUpdateOne) SetEvent(v *Event) *SpaceUpdateOne {
	return _u.SetEventID(v.ID)
}

// AddAgendaItemIDs adds the "agenda_items" edge to the AgendaItem entity by IDs.
func (_u *SpaceUpdateOne) AddAgendaItemIDs(ids ...int64) *SpaceUpdateOne {
	_u.mutation.AddAgendaItemIDs(ids...)
	return _u
}

// AddAgendaItems adds the "agenda_items" edges to the AgendaItem entity.
func (_u *SpaceUpdateOne) AddAgendaItems(v ...*AgendaItem) *SpaceUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgendaItemIDs(ids...)
}

// Mutation returns the SpaceMutation object of the builder.
func (_u *SpaceUpdateOne) Mutation() *SpaceMutation {
	return _u.mutation
}

// ClearEvent clears the "event" edge to the Event entity.
func (_u *SpaceUpdateOne) ClearEvent() *SpaceUpdateOne {
	_u.mutation.ClearEvent()
	return _u
}

// ClearAgendaItems clears all "agenda_items" edges to the AgendaItem entity.
func (_u *SpaceUpdateOne) ClearAgendaItems() *SpaceUpdateOne {
	_u.mutation.ClearAgendaItems()
	return _u
}

// RemoveAgendaItemIDs removes the "agenda_items" edge to AgendaItem entities by IDs.
func (_u *SpaceUpdateOne) RemoveAgendaItemIDs(ids ...int64) *SpaceUpdateOne {
	_u.mutation.RemoveAgendaItemIDs(ids...)
	return _u
}

// RemoveAgendaItems removes "agenda_items" edges to AgendaItem entities.
func (_u *SpaceUpdateOne) RemoveAgendaItems(v ...*AgendaItem) *SpaceUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgendaItemIDs(ids...)
}

// Where appends a list predicates to the SpaceUpdate builder.
func (_u *SpaceUpdateOne) Where(ps ...predicate.Space) *SpaceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpaceUpdateOne) Select(field string, fields ...string) *SpaceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Space entity.
func (_u *SpaceUpdateOne) Save(ctx context.Context) (*Space, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpaceUpdateOne) SaveX(ctx context.Context) *Space {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpaceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpaceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SpaceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := space.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpaceUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := space.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Space.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := space.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Space.slug": %w`, err)}
		}
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Space.event"`)
	}
	return nil
}

func (_u *SpaceUpdateOne) sqlSave(ctx context.Context) (_node *Space, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(space.Table, space.Columns, sqlgraph.NewFieldSpec(space.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Space.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, space.FieldID)
		for _, f := range fields {
			if !space.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != space.FieldID {
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
		_spec.SetField(space.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(space.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(space.FieldSlug, field.TypeString, value)
	}
	if _u.mutation.EventCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   space.EventTable,
			Columns: []string{space.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   space.EventTable,
			Columns: []string{space.EventColumn},
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
	if _u.mutation.AgendaItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   space.AgendaItemsTable,
			Columns: []string{space.AgendaItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agendaitem.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgendaItemsIDs(); len(nodes) > 0 && !_u.mutation.AgendaItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   space.AgendaItemsTable,
			Columns: []string{space.AgendaItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agendaitem.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgendaItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   space.AgendaItemsTable,
			Columns: []string{space.AgendaItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agendaitem.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Space{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{space.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
