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
	"ludamus.io/enrolld/ent/event"
	"ludamus.io/enrolld/ent/predicate"
	"ludamus.io/enrolld/ent/session"
	"ludamus.io/enrolld/ent/space"
	"ludamus.io/enrolld/ent/sphere"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdate) SetUpdatedAt(v time.Time) *EventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSphereID sets the "sphere_id" field.
func (_u *EventUpdate) SetSphereID(v int64) *EventUpdate {
	_u.mutation.SetSphereID(v)
	return _u
}

// SetNillableSphereID sets the "sphere_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableSphereID(v *int64) *EventUpdate {
	if v != nil {
		_u.SetSphereID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EventUpdate) SetName(v string) *EventUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EventUpdate) SetNillableName(v *string) *EventUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *EventUpdate) SetSlug(v string) *EventUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *EventUpdate) SetNillableSlug(v *string) *EventUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *EventUpdate) SetStartTime(v time.Time) *EventUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *EventUpdate) SetNillableStartTime(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *EventUpdate) SetEndTime(v time.Time) *EventUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEndTime(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetProposalStartTime sets the "proposal_start_time" field.
func (_u *EventUpdate) SetProposalStartTime(v time.Time) *EventUpdate {
	_u.mutation.SetProposalStartTime(v)
	return _u
}

// SetNillableProposalStartTime sets the "proposal_start_time" field if the given value is not nil.
func (_u *EventUpdate) SetNillableProposalStartTime(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetProposalStartTime(*v)
	}
	return _u
}

// ClearProposalStartTime clears the value of the "proposal_start_time" field.
func (_u *EventUpdate) ClearProposalStartTime() *EventUpdate {
	_u.mutation.ClearProposalStartTime()
	return _u
}

// SetProposalEndTime sets the "proposal_end_time" field.
func (_u *EventUpdate) SetProposalEndTime(v time.Time) *EventUpdate {
	_u.mutation.SetProposalEndTime(v)
	return _u
}

// SetNillableProposalEndTime sets the "proposal_end_time" field if the given value is not nil.
func (_u *EventUpdate) SetNillableProposalEndTime(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetProposalEndTime(*v)
	}
	return _u
}

// ClearProposalEndTime clears the value of the "proposal_end_time" field.
func (_u *EventUpdate) ClearProposalEndTime() *EventUpdate {
	_u.mutation.ClearProposalEndTime()
	return _u
}

// SetPublicationTime sets the "publication_time" field.
func (_u *EventUpdate) SetPublicationTime(v time.Time) *EventUpdate {
	_u.mutation.SetPublicationTime(v)
	return _u
}

// SetNillablePublicationTime sets the "publication_time" field if the given value is not nil.
func (_u *EventUpdate) SetNillablePublicationTime(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetPublicationTime(*v)
	}
	return _u
}

// ClearPublicationTime clears the value of the "publication_time" field.
func (_u *EventUpdate) ClearPublicationTime() *EventUpdate {
	_u.mutation.ClearPublicationTime()
	return _u
}

// SetSphere sets the "sphere" edge to the Sphere entity.
func (_u *EventUpdate) SetSphere(v *Sphere) *EventUpdate {
	return _u.SetSphereID(v.ID)
}

// AddSpaceIDs adds the "spaces" edge to the Space entity by IDs.
func (_u *EventUpdate) AddSpaceIDs(ids ...int64) *EventUpdate {
	_u.mutation.AddSpaceIDs(ids...)
	return _u
}

// AddSpaces adds the "spaces" edges to the Space entity.
func (_u *EventUpdate) AddSpaces(v ...*Space) *EventUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpaceIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *EventUpdate) AddSessionIDs(ids ...int64) *EventUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *EventUpdate) AddSessions(v ...*Session) *EventUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddEnrollmentConfigIDs adds the "enrollment_configs" edge to the EnrollmentConfig entity by IDs.
func (_u *EventUpdate) AddEnrollmentConfigIDs(ids ...int64) *EventUpdate {
	_u.mutation.AddEnrollmentConfigIDs(ids...)
	return _u
}

// AddEnrollmentConfigs adds the "enrollment_configs" edges to the EnrollmentConfig entity.
func (_u *EventUpdate) AddEnrollmentConfigs(v ...*EnrollmentConfig) *EventUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEnrollmentConfigIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// ClearSphere clears the "sphere" edge to the Sphere entity.
func (_u *EventUpdate) ClearSphere() *EventUpdate {
	_u.mutation.ClearSphere()
	return _u
}

// ClearSpaces clears all "spaces" edges to the Space entity.
func (_u *EventUpdate) ClearSpaces() *EventUpdate {
	_u.mutation.ClearSpaces()
	return _u
}

// RemoveSpaceIDs removes the "spaces" edge to Space entities by IDs.
func (_u *EventUpdate) RemoveSpaceIDs(ids ...int64) *EventUpdate {
	_u.mutation.RemoveSpaceIDs(ids...)
	return _u
}

// RemoveSpaces removes "spaces" edges to Space entities.
func (_u *EventUpdate) RemoveSpaces(v ...*Space) *EventUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpaceIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *EventUpdate) ClearSessions() *EventUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *EventUpdate) RemoveSessionIDs(ids ...int64) *EventUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *EventUpdate) RemoveSessions(v ...*Session) *EventUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearEnrollmentConfigs clears all "enrollment_configs" edges to the EnrollmentConfig entity.
func (_u *EventUpdate) ClearEnrollmentConfigs() *EventUpdate {
	_u.mutation.ClearEnrollmentConfigs()
	return _u
}

// RemoveEnrollmentConfigIDs removes the "enrollment_configs" edge to EnrollmentConfig entities by IDs.
func (_u *EventUpdate) RemoveEnrollmentConfigIDs(ids ...int64) *EventUpdate {
	_u.mutation.RemoveEnrollmentConfigIDs(ids...)
	return _u
}

// RemoveEnrollmentConfigs removes "enrollment_configs" edges to EnrollmentConfig entities.
func (_u *EventUpdate) RemoveEnrollmentConfigs(v ...*EnrollmentConfig) *EventUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEnrollmentConfigIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := event.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Event.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := event.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Event.slug": %w`, err)}
		}
	}
	if _u.mutation.SphereCleared() && len(_u.mutation.SphereIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Event.sphere"`)
	}
	return nil
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(event.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(event.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(event.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(event.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProposalStartTime(); ok {
		_spec.SetField(event.FieldProposalStartTime, field.TypeTime, value)
	}
	if _u.mutation.ProposalStartTimeCleared() {
		_spec.ClearField(event.FieldProposalStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.ProposalEndTime(); ok {
		_spec.SetField(event.FieldProposalEndTime, field.TypeTime, value)
	}
	if _u.mutation.ProposalEndTimeCleared() {
		_spec.ClearField(event.FieldProposalEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.PublicationTime(); ok {
		_spec.SetField(event.FieldPublicationTime, field.TypeTime, value)
	}
	if _u.mutation.PublicationTimeCleared() {
		_spec.ClearField(event.FieldPublicationTime, field.TypeTime)
	}
	if _u.mutation.SphereCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.SphereTable,
			Columns: []string{event.SphereColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sphere.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SphereIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.SphereTable,
			Columns: []string{event.SphereColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sphere.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SpacesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.SpacesTable,
			Columns: []string{event.SpacesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(space.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSpacesIDs(); len(nodes) > 0 && !_u.mutation.SpacesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.SpacesTable,
			Columns: []string{event.SpacesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(space.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpacesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.SpacesTable,
			Columns: []string{event.SpacesColumn},
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
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.SessionsTable,
			Columns: []string{event.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.SessionsTable,
			Columns: []string{event.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.SessionsTable,
			Columns: []string{event.SessionsColumn},
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
	if _u.mutation.EnrollmentConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.EnrollmentConfigsTable,
			Columns: []string{event.EnrollmentConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollmentconfig.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEnrollmentConfigsIDs(); len(nodes) > 0 && !_u.mutation.EnrollmentConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.EnrollmentConfigsTable,
			Columns: []string{event.EnrollmentConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollmentconfig.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnrollmentConfigsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.EnrollmentConfigsTable,
			Columns: []string{event.EnrollmentConfigsColumn},
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
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdateOne) SetUpdatedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSphereID sets the "sphere_id" field.
func (_u *EventUpdateOne) SetSphereID(v int64) *EventUpdateOne {
	_u.mutation.SetSphereID(v)
	return _u
}

// SetNillableSphereID sets the "sphere_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableSphereID(v *int64) *EventUpdateOne {
	if v != nil {
		_u.SetSphereID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EventUpdateOne) SetName(v string) *EventUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableName(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *EventUpdateOne) SetSlug(v string) *EventUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableSlug(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *EventUpdateOne) SetStartTime(v time.Time) *EventUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableStartTime(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *EventUpdateOne) SetEndTime(v time.Time) *EventUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEndTime(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetProposalStartTime sets the "proposal_start_time" field.
func (_u *EventUpdateOne) SetProposalStartTime(v time.Time) *EventUpdateOne {
	_u.mutation.SetProposalStartTime(v)
	return _u
}

// SetNillableProposalStartTime sets the "proposal_start_time" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableProposalStartTime(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetProposalStartTime(*v)
	}
	return _u
}

// ClearProposalStartTime clears the value of the "proposal_start_time" field.
func (_u *EventUpdateOne) ClearProposalStartTime() *EventUpdateOne {
	_u.mutation.ClearProposalStartTime()
	return _u
}

// SetProposalEndTime sets the "proposal_end_time" field.
func (_u *EventUpdateOne) SetProposalEndTime(v time.Time) *EventUpdateOne {
	_u.mutation.SetProposalEndTime(v)
	return _u
}

// SetNillableProposalEndTime sets the "proposal_end_time" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableProposalEndTime(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetProposalEndTime(*v)
	}
	return _u
}

// ClearProposalEndTime clears the value of the "proposal_end_time" field.
func (_u *EventUpdateOne) ClearProposalEndTime() *EventUpdateOne {
	_u.mutation.ClearProposalEndTime()
	return _u
}

// SetPublicationTime sets the "publication_time" field.
func (_u *EventUpdateOne) SetPublicationTime(v time.Time) *EventUpdateOne {
	_u.mutation.SetPublicationTime(v)
	return _u
}

// SetNillablePublicationTime sets the "publication_time" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillablePublicationTime(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetPublicationTime(*v)
	}
	return _u
}

// ClearPublicationTime clears the value of the "publication_time" field.
func (_u *EventUpdateOne) ClearPublicationTime() *EventUpdateOne {
	_u.mutation.ClearPublicationTime()
	return _u
}

// SetSphere sets the "sphere" edge to the Sphere entity.
func (_u *EventUpdateOne) SetSphere(v *Sphere) *EventUpdateOne {
	return _u.SetSphereID(v.ID)
}

// AddSpaceIDs adds the "spaces" edge to the Space entity by IDs.
func (_u *EventUpdateOne) AddSpaceIDs(ids ...int64) *EventUpdateOne {
	_u.mutation.AddSpaceIDs(ids...)
	return _u
}

// AddSpaces adds the "spaces" edges to the Space entity.
func (_u *EventUpdateOne) AddSpaces(v ...*Space) *EventUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpaceIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *EventUpdateOne) AddSessionIDs(ids ...int64) *EventUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *EventUpdateOne) AddSessions(v ...*Session) *EventUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddEnrollmentConfigIDs adds the "enrollment_configs" edge to the EnrollmentConfig entity by IDs.
func (_u *EventUpdateOne) AddEnrollmentConfigIDs(ids ...int64) *EventUpdateOne {
	_u.mutation.AddEnrollmentConfigIDs(ids...)
	return _u
}

// AddEnrollmentConfigs adds the "enrollment_configs" edges to the EnrollmentConfig entity.
func (_u *EventUpdateOne) AddEnrollmentConfigs(v ...*EnrollmentConfig) *EventUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEnrollmentConfigIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// ClearSphere clears the "sphere" edge to the Sphere entity.
func (_u *EventUpdateOne) ClearSphere() *EventUpdateOne {
	_u.mutation.ClearSphere()
	return _u
}

// ClearSpaces clears all "spaces" edges to the Space entity.
func (_u *EventUpdateOne) ClearSpaces() *EventUpdateOne {
	_u.mutation.ClearSpaces()
	return _u
}

// RemoveSpaceIDs removes the "spaces" edge to Space entities by IDs.
func (_u *EventUpdateOne) RemoveSpaceIDs(ids ...int64) *EventUpdateOne {
	_u.mutation.RemoveSpaceIDs(ids...)
	return _u
}

// RemoveSpaces removes "spaces" edges to Space entities.
func (_u *EventUpdateOne) RemoveSpaces(v ...*Space) *EventUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpaceIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *EventUpdateOne) ClearSessions() *EventUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *EventUpdateOne) RemoveSessionIDs(ids ...int64) *EventUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *EventUpdateOne) RemoveSessions(v ...*Session) *EventUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearEnrollmentConfigs clears all "enrollment_configs" edges to the EnrollmentConfig entity.
func (_u *EventUpdateOne) ClearEnrollmentConfigs() *EventUpdateOne {
	_u.mutation.ClearEnrollmentConfigs()
	return _u
}

// RemoveEnrollmentConfigIDs removes the "enrollment_configs" edge to EnrollmentConfig entities by IDs.
func (_u *EventUpdateOne) RemoveEnrollmentConfigIDs(ids ...int64) *EventUpdateOne {
	_u.mutation.RemoveEnrollmentConfigIDs(ids...)
	return _u
}

// RemoveEnrollmentConfigs removes "enrollment_configs" edges to EnrollmentConfig entities.
func (_u *EventUpdateOne) RemoveEnrollmentConfigs(v ...*EnrollmentConfig) *EventUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEnrollmentConfigIDs(ids...)
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := event.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Event.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := event.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Event.slug": %w`, err)}
		}
	}
	if _u.mutation.SphereCleared() && len(_u.mutation.SphereIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Event.sphere"`)
	}
	return nil
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
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
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(event.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(event.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(event.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(event.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProposalStartTime(); ok {
		_spec.SetField(event.FieldProposalStartTime, field.TypeTime, value)
	}
	if _u.mutation.ProposalStartTimeCleared() {
		_spec.ClearField(event.FieldProposalStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.ProposalEndTime(); ok {
		_spec.SetField(event.FieldProposalEndTime, field.TypeTime, value)
	}
	if _u.mutation.ProposalEndTimeCleared() {
		_spec.ClearField(event.FieldProposalEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.PublicationTime(); ok {
		_spec.SetField(event.FieldPublicationTime, field.TypeTime, value)
	}
	if _u.mutation.PublicationTimeCleared() {
		_spec.ClearField(event.FieldPublicationTime, field.TypeTime)
	}
	if _u.mutation.SphereCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.SphereTable,
			Columns: []string{event.SphereColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sphere.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SphereIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.SphereTable,
			Columns: []string{event.SphereColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sphere.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SpacesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.SpacesTable,
			Columns: []string{event.SpacesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(space.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSpacesIDs(); len(nodes) > 0 && !_u.mutation.SpacesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.SpacesTable,
			Columns: []string{event.SpacesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(space.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpacesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.SpacesTable,
			Columns: []string{event.SpacesColumn},
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
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.SessionsTable,
			Columns: []string{event.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.SessionsTable,
			Columns: []string{event.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.SessionsTable,
			Columns: []string{event.SessionsColumn},
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
	if _u.mutation.EnrollmentConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.EnrollmentConfigsTable,
			Columns: []string{event.EnrollmentConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollmentconfig.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEnrollmentConfigsIDs(); len(nodes) > 0 && !_u.mutation.EnrollmentConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.EnrollmentConfigsTable,
			Columns: []string{event.EnrollmentConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollmentconfig.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnrollmentConfigsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.EnrollmentConfigsTable,
			Columns: []string{event.EnrollmentConfigsColumn},
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
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
