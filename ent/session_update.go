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
	"ludamus.io/enrolld/ent/session"
	"ludamus.io/enrolld/ent/sessionparticipation"
	"ludamus.io/enrolld/ent/user"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *SessionUpdate) SetEventID(v int64) *SessionUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableEventID(v *int64) *SessionUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetHostID sets the "host_id" field.
func (_u *SessionUpdate) SetHostID(v int64) *SessionUpdate {
	_u.mutation.SetHostID(v)
	return _u
}

// SetNillableHostID sets the "host_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableHostID(v *int64) *SessionUpdate {
	if v != nil {
		_u.SetHostID(*v)
	}
	return _u
}

// ClearHostID clears the value of the "host_id" field.
func (_u *SessionUpdate) ClearHostID() *SessionUpdate {
	_u.mutation.ClearHostID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *SessionUpdate) SetTitle(v string) *SessionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTitle(v *string) *SessionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *SessionUpdate) SetSlug(v string) *SessionUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSlug(v *string) *SessionUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetParticipantsLimit sets the "participants_limit" field.
func (_u *SessionUpdate) SetParticipantsLimit(v int) *SessionUpdate {
	_u.mutation.ResetParticipantsLimit()
	_u.mutation.SetParticipantsLimit(v)
	return _u
}

// SetNillableParticipantsLimit sets the "participants_limit" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableParticipantsLimit(v *int) *SessionUpdate {
	if v != nil {
		_u.SetParticipantsLimit(*v)
	}
	return _u
}

// AddParticipantsLimit adds value to the "participants_limit" field.
func (_u *SessionUpdate) AddParticipantsLimit(v int) *SessionUpdate {
	_u.mutation.AddParticipantsLimit(v)
	return _u
}

// SetMinAge sets the "min_age" field.
func (_u *SessionUpdate) SetMinAge(v int) *SessionUpdate {
	_u.mutation.ResetMinAge()
	_u.mutation.SetMinAge(v)
	return _u
}

// SetNillableMinAge sets the "min_age" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableMinAge(v *int) *SessionUpdate {
	if v != nil {
		_u.SetMinAge(*v)
	}
	return _u
}

// AddMinAge adds value to the "min_age" field.
func (_u *SessionUpdate) AddMinAge(v int) *SessionUpdate {
	_u.mutation.AddMinAge(v)
	return _u
}

// SetRequirements sets the "requirements" field.
func (_u *SessionUpdate) SetRequirements(v string) *SessionUpdate {
	_u.mutation.SetRequirements(v)
	return _u
}

// SetNillableRequirements sets the "requirements" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableRequirements(v *string) *SessionUpdate {
	if v != nil {
		_u.SetRequirements(*v)
	}
	return _u
}

// ClearRequirements clears the value of the "requirements" field.
func (_u *SessionUpdate) ClearRequirements() *SessionUpdate {
	_u.mutation.ClearRequirements()
	return _u
}

// SetPresenterName sets the "presenter_name" field.
func (_u *SessionUpdate) SetPresenterName(v string) *SessionUpdate {
	_u.mutation.SetPresenterName(v)
	return _u
}

// SetNillablePresenterName sets the "presenter_name" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePresenterName(v *string) *SessionUpdate {
	if v != nil {
		_u.SetPresenterName(*v)
	}
	return _u
}

// ClearPresenterName clears the value of the "presenter_name" field.
func (_u *SessionUpdate) ClearPresenterName() *SessionUpdate {
	_u.mutation.ClearPresenterName()
	return _u
}

// SetEvent sets the "event" edge to the Event entity.
func (_u *SessionUpdate) SetEvent(v *Event) *SessionUpdate {
	return _u.SetEventID(v.ID)
}

// SetHost sets the "host" edge to the User entity.
func (_u *SessionUpdate) SetHost(v *User) *SessionUpdate {
	return _u.SetHostID(v.ID)
}

// SetAgendaItemID sets the "agenda_item" edge to the AgendaItem entity by ID.
func (_u *SessionUpdate) SetAgendaItemID(id int64) *SessionUpdate {
	_u.mutation.SetAgendaItemID(id)
	return _u
}

// SetNillableAgendaItemID sets the "agenda_item" edge to the AgendaItem entity by ID if the given value is not nil.
func (_u *SessionUpdate) SetNillableAgendaItemID(id *int64) *SessionUpdate {
	if id != nil {
		_u = _u.SetAgendaItemID(*id)
	}
	return _u
}

// SetAgendaItem sets the "agenda_item" edge to the AgendaItem entity.
func (_u *SessionUpdate) SetAgendaItem(v *AgendaItem) *SessionUpdate {
	return _u.SetAgendaItemID(v.ID)
}

// AddParticipationIDs adds the "participations" edge to the SessionParticipation entity by IDs.
func (_u *SessionUpdate) AddParticipationIDs(ids ...int64) *SessionUpdate {
	_u.mutation.AddParticipationIDs(ids...)
	return _u
}

// AddParticipations adds the "participations" edges to the SessionParticipation entity.
func (_u *SessionUpdate) AddParticipations(v ...*SessionParticipation) *SessionUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipationIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearEvent clears the "event" edge to the Event entity.
func (_u *SessionUpdate) ClearEvent() *SessionUpdate {
	_u.mutation.ClearEvent()
	return _u
}

// ClearHost clears the "host" edge to the User entity.
func (_u *SessionUpdate) ClearHost() *SessionUpdate {
	_u.mutation.ClearHost()
	return _u
}

// ClearAgendaItem clears the "agenda_item" edge to the AgendaItem entity.
func (_u *SessionUpdate) ClearAgendaItem() *SessionUpdate {
	_u.mutation.ClearAgendaItem()
	return _u
}

// ClearParticipations clears all "participations" edges to the SessionParticipation entity.
func (_u *SessionUpdate) ClearParticipations() *SessionUpdate {
	_u.mutation.ClearParticipations()
	return _u
}

// RemoveParticipationIDs removes the "participations" edge to SessionParticipation entities by IDs.
func (_u *SessionUpdate) RemoveParticipationIDs(ids ...int64) *SessionUpdate {
	_u.mutation.RemoveParticipationIDs(ids...)
	return _u
}

// RemoveParticipations removes "participations" edges to SessionParticipation entities.
func (_u *SessionUpdate) RemoveParticipations(v ...*SessionParticipation) *SessionUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := session.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Session.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := session.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Session.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ParticipantsLimit(); ok {
		if err := session.ParticipantsLimitValidator(v); err != nil {
			return &ValidationError{Name: "participants_limit", err: fmt.Errorf(`ent: validator failed for field "Session.participants_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinAge(); ok {
		if err := session.MinAgeValidator(v); err != nil {
			return &ValidationError{Name: "min_age", err: fmt.Errorf(`ent: validator failed for field "Session.min_age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PresenterName(); ok {
		if err := session.PresenterNameValidator(v); err != nil {
			return &ValidationError{Name: "presenter_name", err: fmt.Errorf(`ent: validator failed for field "Session.presenter_name": %w`, err)}
		}
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.event"`)
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(session.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParticipantsLimit(); ok {
		_spec.SetField(session.FieldParticipantsLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParticipantsLimit(); ok {
		_spec.AddField(session.FieldParticipantsLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinAge(); ok {
		_spec.SetField(session.FieldMinAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinAge(); ok {
		_spec.AddField(session.FieldMinAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Requirements(); ok {
		_spec.SetField(session.FieldRequirements, field.TypeString, value)
	}
	if _u.mutation.RequirementsCleared() {
		_spec.ClearField(session.FieldRequirements, field.TypeString)
	}
	if value, ok := _u.mutation.PresenterName(); ok {
		_spec.SetField(session.FieldPresenterName, field.TypeString, value)
	}
	if _u.mutation.PresenterNameCleared() {
		_spec.ClearField(session.FieldPresenterName, field.TypeString)
	}
	if _u.mutation.EventCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.EventTable,
			Columns: []string{session.EventColumn},
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
			Table:   session.EventTable,
			Columns: []string{session.EventColumn},
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
	if _u.mutation.HostCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   session.HostTable,
			Columns: []string{session.HostColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HostIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   session.HostTable,
			Columns: []string{session.HostColumn},
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
	if _u.mutation.AgendaItemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   session.AgendaItemTable,
			Columns: []string{session.AgendaItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agendaitem.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgendaItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   session.AgendaItemTable,
			Columns: []string{session.AgendaItemColumn},
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
	if _u.mutation.ParticipationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ParticipationsTable,
			Columns: []string{session.ParticipationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionparticipation.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipationsIDs(); len(nodes) > 0 && !_u.mutation.ParticipationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ParticipationsTable,
			Columns: []string{session.ParticipationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionparticipation.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ParticipationsTable,
			Columns: []string{session.ParticipationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionparticipation.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *SessionUpdateOne) SetEventID(v int64) *SessionUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableEventID(v *int64) *SessionUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetHostID sets the "host_id" field.
func (_u *SessionUpdateOne) SetHostID(v int64) *SessionUpdateOne {
	_u.mutation.SetHostID(v)
	return _u
}

// SetNillableHostID sets the "host_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableHostID(v *int64) *SessionUpdateOne {
	if v != nil {
		_u.SetHostID(*v)
	}
	return _u
}

// ClearHostID clears the value of the "host_id" field.
func (_u *SessionUpdateOne) ClearHostID() *SessionUpdateOne {
	_u.mutation.ClearHostID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *SessionUpdateOne) SetTitle(v string) *SessionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTitle(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *SessionUpdateOne) SetSlug(v string) *SessionUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSlug(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetParticipantsLimit sets the "participants_limit" field.
func (_u *SessionUpdateOne) SetParticipantsLimit(v int) *SessionUpdateOne {
	_u.mutation.ResetParticipantsLimit()
	_u.mutation.SetParticipantsLimit(v)
	return _u
}

// SetNillableParticipantsLimit sets the "participants_limit" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableParticipantsLimit(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetParticipantsLimit(*v)
	}
	return _u
}

// AddParticipantsLimit adds value to the "participants_limit" field.
func (_u *SessionUpdateOne) AddParticipantsLimit(v int) *SessionUpdateOne {
	_u.mutation.AddParticipantsLimit(v)
	return _u
}

// SetMinAge sets the "min_age" field.
func (_u *SessionUpdateOne) SetMinAge(v int) *SessionUpdateOne {
	_u.mutation.ResetMinAge()
	_u.mutation.SetMinAge(v)
	return _u
}

// SetNillableMinAge sets the "min_age" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableMinAge(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetMinAge(*v)
	}
	return _u
}

// AddMinAge adds value to the "min_age" field.
func (_u *SessionUpdateOne) AddMinAge(v int) *SessionUpdateOne {
	_u.mutation.AddMinAge(v)
	return _u
}

// SetRequirements sets the "requirements" field.
func (_u *SessionUpdateOne) SetRequirements(v string) *SessionUpdateOne {
	_u.mutation.SetRequirements(v)
	return _u
}

// SetNillableRequirements sets the "requirements" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableRequirements(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetRequirements(*v)
	}
	return _u
}

// ClearRequirements clears the value of the "requirements" field.
func (_u *SessionUpdateOne) ClearRequirements() *SessionUpdateOne {
	_u.mutation.ClearRequirements()
	return _u
}

// SetPresenterName sets the "presenter_name" field.
func (_u *SessionUpdateOne) SetPresenterName(v string) *SessionUpdateOne {
	_u.mutation.SetPresenterName(v)
	return _u
}

// SetNillablePresenterName sets the "presenter_name" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePresenterName(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetPresenterName(*v)
	}
	return _u
}

// ClearPresenterName clears the value of the "presenter_name" field.
func (_u *SessionUpdateOne) ClearPresenterName() *SessionUpdateOne {
	_u.mutation.ClearPresenterName()
	return _u
}

// SetEvent sets the "event" edge to the Event entity.
func (_u *SessionUpdateOne) SetEvent(v *Event) *SessionUpdateOne {
	return _u.SetEventID(v.ID)
}

// SetHost sets the "host" edge to the User entity.
func (_u *SessionUpdateOne) SetHost(v *User) *SessionUpdateOne {
	return _u.SetHostID(v.ID)
}

// SetAgendaItemID sets the "agenda_item" edge to the AgendaItem entity by ID.
func (_u *SessionUpdateOne) SetAgendaItemID(id int64) *SessionUpdateOne {
	_u.mutation.SetAgendaItemID(id)
	return _u
}

// SetNillableAgendaItemID sets the "agenda_item" edge to the AgendaItem entity by ID if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableAgendaItemID(id *int64) *SessionUpdateOne {
	if id != nil {
		_u = _u.SetAgendaItemID(*id)
	}
	return _u
}

// SetAgendaItem sets the "agenda_item" edge to the AgendaItem entity.
func (_u *SessionUpdateOne) SetAgendaItem(v *AgendaItem) *SessionUpdateOne {
	return _u.SetAgendaItemID(v.ID)
}

// AddParticipationIDs adds the "participations" edge to the SessionParticipation entity by IDs.
func (_u *SessionUpdateOne) AddParticipationIDs(ids ...int64) *SessionUpdateOne {
	_u.mutation.AddParticipationIDs(ids...)
	return _u
}

// AddParticipations adds the "participations" edges to the SessionParticipation entity.
func (_u *SessionUpdateOne) AddParticipations(v ...*SessionParticipation) *SessionUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipationIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearEvent clears the "event" edge to the Event entity.
func (_u *SessionUpdateOne) ClearEvent() *SessionUpdateOne {
	_u.mutation.ClearEvent()
	return _u
}

// ClearHost clears the "host" edge to the User entity.
func (_u *SessionUpdateOne) ClearHost() *SessionUpdateOne {
	_u.mutation.ClearHost()
	return _u
}

// ClearAgendaItem clears the "agenda_item" edge to the AgendaItem entity.
func (_u *SessionUpdateOne) ClearAgendaItem() *SessionUpdateOne {
	_u.mutation.ClearAgendaItem()
	return _u
}

// ClearParticipations clears all "participations" edges to the SessionParticipation entity.
func (_u *SessionUpdateOne) ClearParticipations() *SessionUpdateOne {
	_u.mutation.ClearParticipations()
	return _u
}

// RemoveParticipationIDs removes the "participations" edge to SessionParticipation entities by IDs.
func (_u *SessionUpdateOne) RemoveParticipationIDs(ids ...int64) *SessionUpdateOne {
	_u.mutation.RemoveParticipationIDs(ids...)
	return _u
}

// RemoveParticipations removes "participations" edges to SessionParticipation entities.
func (_u *SessionUpdateOne) RemoveParticipations(v ...*SessionParticipation) *SessionUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipationIDs(ids...)
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := session.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Session.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := session.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Session.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ParticipantsLimit(); ok {
		if err := session.ParticipantsLimitValidator(v); err != nil {
			return &ValidationError{Name: "participants_limit", err: fmt.Errorf(`ent: validator failed for field "Session.participants_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinAge(); ok {
		if err := session.MinAgeValidator(v); err != nil {
			return &ValidationError{Name: "min_age", err: fmt.Errorf(`ent: validator failed for field "Session.min_age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PresenterName(); ok {
		if err := session.PresenterNameValidator(v); err != nil {
			return &ValidationError{Name: "presenter_name", err: fmt.Errorf(`ent: validator failed for field "Session.presenter_name": %w`, err)}
		}
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.event"`)
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(session.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParticipantsLimit(); ok {
		_spec.SetField(session.FieldParticipantsLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParticipantsLimit(); ok {
		_spec.AddField(session.FieldParticipantsLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinAge(); ok {
		_spec.SetField(session.FieldMinAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinAge(); ok {
		_spec.AddField(session.FieldMinAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Requirements(); ok {
		_spec.SetField(session.FieldRequirements, field.TypeString, value)
	}
	if _u.mutation.RequirementsCleared() {
		_spec.ClearField(session.FieldRequirements, field.TypeString)
	}
	if value, ok := _u.mutation.PresenterName(); ok {
		_spec.SetField(session.FieldPresenterName, field.TypeString, value)
	}
	if _u.mutation.PresenterNameCleared() {
		_spec.ClearField(session.FieldPresenterName, field.TypeString)
	}
	if _u.mutation.EventCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.EventTable,
			Columns: []string{session.EventColumn},
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
			Table:   session.EventTable,
			Columns: []string{session.EventColumn},
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
	if _u.mutation.HostCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   session.HostTable,
			Columns: []string{session.HostColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HostIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   session.HostTable,
			Columns: []string{session.HostColumn},
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
	if _u.mutation.AgendaItemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   session.AgendaItemTable,
			Columns: []string{session.AgendaItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agendaitem.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgendaItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   session.AgendaItemTable,
			Columns: []string{session.AgendaItemColumn},
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
	if _u.mutation.ParticipationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ParticipationsTable,
			Columns: []string{session.ParticipationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionparticipation.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipationsIDs(); len(nodes) > 0 && !_u.mutation.ParticipationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ParticipationsTable,
			Columns: []string{session.ParticipationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionparticipation.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ParticipationsTable,
			Columns: []string{session.ParticipationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionparticipation.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
