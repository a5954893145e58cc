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
	"ludamus.io/enrolld/ent/event"
	"ludamus.io/enrolld/ent/predicate"
	"ludamus.io/enrolld/ent/userenrollmentconfig"
)

// EnrollmentConfigUpdate is the builder for updating EnrollmentConfig entities.
type EnrollmentConfigUpdate struct {
	config
	hooks    []Hook
	mutation *EnrollmentConfigMutation
}

// Where appends a list predicates to the EnrollmentConfigUpdate builder.
func (_u *EnrollmentConfigUpdate) Where(ps ...predicate.EnrollmentConfig) *EnrollmentConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EnrollmentConfigUpdate) SetUpdatedAt(v time.Time) *EnrollmentConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *EnrollmentConfigUpdate) SetEventID(v int64) *EnrollmentConfigUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EnrollmentConfigUpdate) SetNillableEventID(v *int64) *EnrollmentConfigUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EnrollmentConfigUpdate) SetName(v string) *EnrollmentConfigUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EnrollmentConfigUpdate) SetNillableName(v *string) *EnrollmentConfigUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *EnrollmentConfigUpdate) SetStartTime(v time.Time) *EnrollmentConfigUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *EnrollmentConfigUpdate) SetNillableStartTime(v *time.Time) *EnrollmentConfigUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *EnrollmentConfigUpdate) SetEndTime(v time.Time) *EnrollmentConfigUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *EnrollmentConfigUpdate) SetNillableEndTime(v *time.Time) *EnrollmentConfigUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetPercentageSlots sets the "percentage_slots" field.
func (_u *EnrollmentConfigUpdate) SetPercentageSlots(v int) *EnrollmentConfigUpdate {
	_u.mutation.ResetPercentageSlots()
	_u.mutation.SetPercentageSlots(v)
	return _u
}

// SetNillablePercentageSlots sets the "percentage_slots" field if the given value is not nil.
func (_u *EnrollmentConfigUpdate) SetNillablePercentageSlots(v *int) *EnrollmentConfigUpdate {
	if v != nil {
		_u.SetPercentageSlots(*v)
	}
	return _u
}

// AddPercentageSlots adds value to the "percentage_slots" field.
func (_u *EnrollmentConfigUpdate) AddPercentageSlots(v int) *EnrollmentConfigUpdate {
	_u.mutation.AddPercentageSlots(v)
	return _u
}

// SetLimitToEndTime sets the "limit_to_end_time" field.
func (_u *EnrollmentConfigUpdate) SetLimitToEndTime(v bool) *EnrollmentConfigUpdate {
	_u.mutation.SetLimitToEndTime(v)
	return _u
}

// SetNillableLimitToEndTime sets the "limit_to_end_time" field if the given value is not nil.
func (_u *EnrollmentConfigUpdate) SetNillableLimitToEndTime(v *bool) *EnrollmentConfigUpdate {
	if v != nil {
		_u.SetLimitToEndTime(*v)
	}
	return _u
}

// SetRestrictToConfiguredUsers sets the "restrict_to_configured_users" field.
func (_u *EnrollmentConfigUpdate) SetRestrictToConfiguredUsers(v bool) *EnrollmentConfigUpdate {
	_u.mutation.SetRestrictToConfiguredUsers(v)
	return _u
}

// SetNillableRestrictToConfiguredUsers sets the "restrict_to_configured_users" field if the given value is not nil.
func (_u *EnrollmentConfigUpdate) SetNillableRestrictToConfiguredUsers(v *bool) *EnrollmentConfigUpdate {
	if v != nil {
		_u.SetRestrictToConfiguredUsers(*v)
	}
	return _u
}

// SetMaxWaitlistSessions sets the "max_waitlist_sessions" field.
func (_u *EnrollmentConfigUpdate) SetMaxWaitlistSessions(v int) *EnrollmentConfigUpdate {
	_u.mutation.ResetMaxWaitlistSessions()
	_u.mutation.SetMaxWaitlistSessions(v)
	return _u
}

// SetNillableMaxWaitlistSessions sets the "max_waitlist_sessions" field if the given value is not nil.
func (_u *EnrollmentConfigUpdate) SetNillableMaxWaitlistSessions(v *int) *EnrollmentConfigUpdate {
	if v != nil {
		_u.SetMaxWaitlistSessions(*v)
	}
	return _u
}

// AddMaxWaitlistSessions adds value to the "max_waitlist_sessions" field.
func (_u *EnrollmentConfigUpdate) AddMaxWaitlistSessions(v int) *EnrollmentConfigUpdate {
	_u.mutation.AddMaxWaitlistSessions(v)
	return _u
}

// SetBannerText sets the "banner_text" field.
func (_u *EnrollmentConfigUpdate) SetBannerText(v string) *EnrollmentConfigUpdate {
	_u.mutation.SetBannerText(v)
	return _u
}

// SetNillableBannerText sets the "banner_text" field if the given value is not nil.
func (_u *EnrollmentConfigUpdate) SetNillableBannerText(v *string) *EnrollmentConfigUpdate {
	if v != nil {
		_u.SetBannerText(*v)
	}
	return _u
}

// ClearBannerText clears the value of the "banner_text" field.
func (_u *EnrollmentConfigUpdate) ClearBannerText() *EnrollmentConfigUpdate {
	_u.mutation.ClearBannerText()
	return _u
}

// SetAPIProvider sets the "api_provider" field.
func (_u *EnrollmentConfigUpdate) SetAPIProvider(v string) *EnrollmentConfigUpdate {
	_u.mutation.SetAPIProvider(v)
	return _u
}

// SetNillableAPIProvider sets the "api_provider" field if the given value is not nil.
func (_u *EnrollmentConfigUpdate) SetNillableAPIProvider(v *string) *EnrollmentConfigUpdate {
	if v != nil {
		_u.SetAPIProvider(*v)
	}
	return _u
}

// ClearAPIProvider clears the value of the "api_provider" field.
func (_u *EnrollmentConfigUpdate) ClearAPIProvider() *EnrollmentConfigUpdate {
	_u.mutation.ClearAPIProvider()
	return _u
}

// SetEvent sets the "event" edge to the Event entity.
func (_u *EnrollmentConfigUpdate) SetEvent(v *Event) *EnrollmentConfigUpdate {
	return _u.SetEventID(v.ID)
}

// AddUserConfigIDs adds the "user_configs" edge to the UserEnrollmentConfig entity by IDs.
func (_u *EnrollmentConfigUpdate) AddUserConfigIDs(ids ...int64) *EnrollmentConfigUpdate {
	_u.mutation.AddUserConfigIDs(ids...)
	return _u
}

// AddUserConfigs adds the "user_configs" edges to the UserEnrollmentConfig entity.
func (_u *EnrollmentConfigUpdate) AddUserConfigs(v ...*UserEnrollmentConfig) *EnrollmentConfigUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserConfigIDs(ids...)
}

// AddDomainConfigIDs adds the "domain_configs" edge to the DomainEnrollmentConfig entity by IDs.
func (_u *EnrollmentConfigUpdate) AddDomainConfigIDs(ids ...int64) *EnrollmentConfigUpdate {
	_u.mutation.AddDomainConfigIDs(ids...)
	return _u
}

// AddDomainConfigs adds the "domain_configs" edges to the DomainEnrollmentConfig entity.
func (_u *EnrollmentConfigUpdate) AddDomainConfigs(v ...*DomainEnrollmentConfig) *EnrollmentConfigUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDomainConfigIDs(ids...)
}

// Mutation returns the EnrollmentConfigMutation object of the builder.
func (_u *EnrollmentConfigUpdate) Mutation() *EnrollmentConfigMutation {
	return _u.mutation
}

// ClearEvent clears the "event" edge to the Event entity.
func (_u *EnrollmentConfigUpdate) ClearEvent() *EnrollmentConfigUpdate {
	_u.mutation.ClearEvent()
	return _u
}

// ClearUserConfigs clears all "user_configs" edges to the UserEnrollmentConfig entity.
func (_u *EnrollmentConfigUpdate) ClearUserConfigs() *EnrollmentConfigUpdate {
	_u.mutation.ClearUserConfigs()
	return _u
}

// RemoveUserConfigIDs removes the "user_configs" edge to UserEnrollmentConfig entities by IDs.
func (_u *EnrollmentConfigUpdate) RemoveUserConfigIDs(ids ...int64) *EnrollmentConfigUpdate {
	_u.mutation.RemoveUserConfigIDs(ids...)
	return _u
}

// RemoveUserConfigs removes "user_configs" edges to UserEnrollmentConfig entities.
func (_u *EnrollmentConfigUpdate) RemoveUserConfigs(v ...*UserEnrollmentConfig) *EnrollmentConfigUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserConfigIDs(ids...)
}

// ClearDomainConfigs clears all "domain_configs" edges to the DomainEnrollmentConfig entity.
func (_u *EnrollmentConfigUpdate) ClearDomainConfigs() *EnrollmentConfigUpdate {
	_u.mutation.ClearDomainConfigs()
	return _u
}

// RemoveDomainConfigIDs removes the "domain_configs" edge to DomainEnrollmentConfig entities by IDs.
func (_u *EnrollmentConfigUpdate) RemoveDomainConfigIDs(ids ...int64) *EnrollmentConfigUpdate {
	_u.mutation.RemoveDomainConfigIDs(ids...)
	return _u
}

// RemoveDomainConfigs removes "domain_configs" edges to DomainEnrollmentConfig entities.
func (_u *EnrollmentConfigUpdate) RemoveDomainConfigs(v ...*DomainEnrollmentConfig) *EnrollmentConfigUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDomainConfigIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnrollmentConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrollmentConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnrollmentConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrollmentConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EnrollmentConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := enrollmentconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnrollmentConfigUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := enrollmentconfig.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EnrollmentConfig.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PercentageSlots(); ok {
		if err := enrollmentconfig.PercentageSlotsValidator(v); err != nil {
			return &ValidationError{Name: "percentage_slots", err: fmt.Errorf(`ent: validator failed for field "EnrollmentConfig.percentage_slots": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxWaitlistSessions(); ok {
		if err := enrollmentconfig.MaxWaitlistSessionsValidator(v); err != nil {
			return &ValidationError{Name: "max_waitlist_sessions", err: fmt.Errorf(`ent: validator failed for field "EnrollmentConfig.max_waitlist_sessions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.APIProvider(); ok {
		if err := enrollmentconfig.APIProviderValidator(v); err != nil {
			return &ValidationError{Name: "api_provider", err: fmt.Errorf(`ent: validator failed for field "EnrollmentConfig.api_provider": %w`, err)}
		}
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EnrollmentConfig.event"`)
	}
	return nil
}

func (_u *EnrollmentConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enrollmentconfig.Table, enrollmentconfig.Columns, sqlgraph.NewFieldSpec(enrollmentconfig.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(enrollmentconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(enrollmentconfig.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(enrollmentconfig.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(enrollmentconfig.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PercentageSlots(); ok {
		_spec.SetField(enrollmentconfig.FieldPercentageSlots, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentageSlots(); ok {
		_spec.AddField(enrollmentconfig.FieldPercentageSlots, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LimitToEndTime(); ok {
		_spec.SetField(enrollmentconfig.FieldLimitToEndTime, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RestrictToConfiguredUsers(); ok {
		_spec.SetField(enrollmentconfig.FieldRestrictToConfiguredUsers, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxWaitlistSessions(); ok {
		_spec.SetField(enrollmentconfig.FieldMaxWaitlistSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxWaitlistSessions(); ok {
		_spec.AddField(enrollmentconfig.FieldMaxWaitlistSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BannerText(); ok {
		_spec.SetField(enrollmentconfig.FieldBannerText, field.TypeString, value)
	}
	if _u.mutation.BannerTextCleared() {
		_spec.ClearField(enrollmentconfig.FieldBannerText, field.TypeString)
	}
	if value, ok := _u.mutation.APIProvider(); ok {
		_spec.SetField(enrollmentconfig.FieldAPIProvider, field.TypeString, value)
	}
	if _u.mutation.APIProviderCleared() {
		_spec.ClearField(enrollmentconfig.FieldAPIProvider, field.TypeString)
	}
	if _u.mutation.EventCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   enrollmentconfig.EventTable,
			Columns: []string{enrollmentconfig.EventColumn},
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
			Table:   enrollmentconfig.EventTable,
			Columns: []string{enrollmentconfig.EventColumn},
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
	if _u.mutation.UserConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrollmentconfig.UserConfigsTable,
			Columns: []string{enrollmentconfig.UserConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userenrollmentconfig.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUserConfigsIDs(); len(nodes) > 0 && !_u.mutation.UserConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrollmentconfig.UserConfigsTable,
			Columns: []string{enrollmentconfig.UserConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userenrollmentconfig.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserConfigsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrollmentconfig.UserConfigsTable,
			Columns: []string{enrollmentconfig.UserConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userenrollmentconfig.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DomainConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrollmentconfig.DomainConfigsTable,
			Columns: []string{enrollmentconfig.DomainConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(domainenrollmentconfig.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDomainConfigsIDs(); len(nodes) > 0 && !_u.mutation.DomainConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrollmentconfig.DomainConfigsTable,
			Columns: []string{enrollmentconfig.DomainConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(domainenrollmentconfig.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DomainConfigsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrollmentconfig.DomainConfigsTable,
			Columns: []string{enrollmentconfig.DomainConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(domainenrollmentconfig.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrollmentconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnrollmentConfigUpdateOne is the builder for updating a single EnrollmentConfig entity.
type EnrollmentConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnrollmentConfigMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EnrollmentConfigUpdateOne) SetUpdatedAt(v time.Time) *EnrollmentConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *EnrollmentConfigUpdateOne) SetEventID(v int64) *EnrollmentConfigUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EnrollmentConfigUpdateOne) SetNillableEventID(v *int64) *EnrollmentConfigUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EnrollmentConfigUpdateOne) SetName(v string) *EnrollmentConfigUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EnrollmentConfigUpdateOne) SetNillableName(v *string) *EnrollmentConfigUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *EnrollmentConfigUpdateOne) SetStartTime(v time.Time) *EnrollmentConfigUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *EnrollmentConfigUpdateOne) SetNillableStartTime(v *time.Time) *EnrollmentConfigUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *EnrollmentConfigUpdateOne) SetEndTime(v time.Time) *EnrollmentConfigUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *EnrollmentConfigUpdateOne) SetNillableEndTime(v *time.Time) *EnrollmentConfigUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetPercentageSlots sets the "percentage_slots" field.
func (_u *EnrollmentConfigUpdateOne) SetPercentageSlots(v int) *EnrollmentConfigUpdateOne {
	_u.mutation.ResetPercentageSlots()
	_u.mutation.SetPercentageSlots(v)
	return _u
}

// SetNillablePercentageSlots sets the "percentage_slots" field if the given value is not nil.
func (_u *EnrollmentConfigUpdateOne) SetNillablePercentageSlots(v *int) *EnrollmentConfigUpdateOne {
	if v != nil {
		_u.SetPercentageSlots(*v)
	}
	return _u
}

// AddPercentageSlots adds value to the "percentage_slots" field.
func (_u *EnrollmentConfigUpdateOne) AddPercentageSlots(v int) *EnrollmentConfigUpdateOne {
	_u.mutation.AddPercentageSlots(v)
	return _u
}

// SetLimitToEndTime sets the "limit_to_end_time" field.
func (_u *EnrollmentConfigUpdateOne) SetLimitToEndTime(v bool) *EnrollmentConfigUpdateOne {
	_u.mutation.SetLimitToEndTime(v)
	return _u
}

// SetNillableLimitToEndTime sets the "limit_to_end_time" field if the given value is not nil.
func (_u *EnrollmentConfigUpdateOne) SetNillableLimitToEndTime(v *bool) *EnrollmentConfigUpdateOne {
	if v != nil {
		_u.SetLimitToEndTime(*v)
	}
	return _u
}

// SetRestrictToConfiguredUsers sets the "restrict_to_configured_users" field.
func (_u *EnrollmentConfigUpdateOne) SetRestrictToConfiguredUsers(v bool) *EnrollmentConfigUpdateOne {
	_u.mutation.SetRestrictToConfiguredUsers(v)
	return _u
}

// SetNillableRestrictToConfiguredUsers sets the "restrict_to_configured_users" field if the given value is not nil.
func (_u *EnrollmentConfigUpdateOne) SetNillableRestrictToConfiguredUsers(v *bool) *EnrollmentConfigUpdateOne {
	if v != nil {
		_u.SetRestrictToConfiguredUsers(*v)
	}
	return _u
}

// SetMaxWaitlistSessions sets the "max_waitlist_sessions" field.
func (_u *EnrollmentConfigUpdateOne) SetMaxWaitlistSessions(v int) *EnrollmentConfigUpdateOne {
	_u.mutation.ResetMaxWaitlistSessions()
	_u.mutation.SetMaxWaitlistSessions(v)
	return _u
}

// SetNillableMaxWaitlistSessions sets the "max_waitlist_sessions" field if the given value is not nil.
func (_u *EnrollmentConfigUpdateOne) SetNillableMaxWaitlistSessions(v *int) *EnrollmentConfigUpdateOne {
	if v != nil {
		_u.SetMaxWaitlistSessions(*v)
	}
	return _u
}

// AddMaxWaitlistSessions adds value to the "max_waitlist_sessions" field.
func (_u *EnrollmentConfigUpdateOne) AddMaxWaitlistSessions(v int) *EnrollmentConfigUpdateOne {
	_u.mutation.AddMaxWaitlistSessions(v)
	return _u
}

// SetBannerText sets the "banner_text" field.
func (_u *EnrollmentConfigUpdateOne) SetBannerText(v string) *EnrollmentConfigUpdateOne {
	_u.mutation.SetBannerText(v)
	return _u
}

// SetNillableBannerText sets the "banner_text" field if the given value is not nil.
func (_u *EnrollmentConfigUpdateOne) SetNillableBannerText(v *string) *EnrollmentConfigUpdateOne {
	if v != nil {
		_u.SetBannerText(*v)
	}
	return _u
}

// ClearBannerText clears the value of the "banner_text" field.
func (_u *EnrollmentConfigUpdateOne) ClearBannerText() *EnrollmentConfigUpdateOne {
	_u.mutation.ClearBannerText()
	return _u
}

// SetAPIProvider sets the "api_provider" field.
func (_u *EnrollmentConfigUpdateOne) SetAPIProvider(v string) *EnrollmentConfigUpdateOne {
	_u.mutation.SetAPIProvider(v)
	return _u
}

// SetNillableAPIProvider sets the "api_provider" field if the given value is not nil.
func (_u *EnrollmentConfigUpdateOne) SetNillableAPIProvider(v *string) *EnrollmentConfigUpdateOne {
	if v != nil {
		_u.SetAPIProvider(*v)
	}
	return _u
}

// ClearAPIProvider clears the value of the "api_provider" field.
func (_u *EnrollmentConfigUpdateOne) ClearAPIProvider() *EnrollmentConfigUpdateOne {
	_u.mutation.ClearAPIProvider()
	return _u
}

// SetEvent sets the "event" edge to the Event entity.
func (_u *EnrollmentConfigUpdateOne) SetEvent(v *Event) *EnrollmentConfigUpdateOne {
	return _u.SetEventID(v.ID)
}

// AddUserConfigIDs adds the "user_configs" edge to the UserEnrollmentConfig entity by IDs.
func (_u *EnrollmentConfigUpdateOne) AddUserConfigIDs(ids ...int64) *EnrollmentConfigUpdateOne {
	_u.mutation.AddUserConfigIDs(ids...)
	return _u
}

// AddUserConfigs adds the "user_configs" edges to the UserEnrollmentConfig entity.
func (_u *EnrollmentConfigUpdateOne) AddUserConfigs(v ...*UserEnrollmentConfig) *EnrollmentConfigUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserConfigIDs(ids...)
}

// AddDomainConfigIDs adds the "domain_configs" edge to the DomainEnrollmentConfig entity by IDs.
func (_u *EnrollmentConfigUpdateOne) AddDomainConfigIDs(ids ...int64) *EnrollmentConfigUpdateOne {
	_u.mutation.AddDomainConfigIDs(ids...)
	return _u
}

// AddDomainConfigs adds the "domain_configs" edges to the DomainEnrollmentConfig entity.
func (_u *EnrollmentConfigUpdateOne) AddDomainConfigs(v ...*DomainEnrollmentConfig) *EnrollmentConfigUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDomainConfigIDs(ids...)
}

// Mutation returns the EnrollmentConfigMutation object of the builder.
func (_u *EnrollmentConfigUpdateOne) Mutation() *EnrollmentConfigMutation {
	return _u.mutation
}

// ClearEvent clears the "event" edge to the Event entity.
func (_u *EnrollmentConfigUpdateOne) ClearEvent() *EnrollmentConfigUpdateOne {
	_u.mutation.ClearEvent()
	return _u
}

// ClearUserConfigs clears all "user_configs" edges to the UserEnrollmentConfig entity.
func (_u *EnrollmentConfigUpdateOne) ClearUserConfigs() *EnrollmentConfigUpdateOne {
	_u.mutation.ClearUserConfigs()
	return _u
}

// RemoveUserConfigIDs removes the "user_configs" edge to UserEnrollmentConfig entities by IDs.
func (_u *EnrollmentConfigUpdateOne) RemoveUserConfigIDs(ids ...int64) *EnrollmentConfigUpdateOne {
	_u.mutation.RemoveUserConfigIDs(ids...)
	return _u
}

// RemoveUserConfigs removes "user_configs" edges to UserEnrollmentConfig entities.
func (_u *EnrollmentConfigUpdateOne) RemoveUserConfigs(v ...*UserEnrollmentConfig) *EnrollmentConfigUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserConfigIDs(ids...)
}

// ClearDomainConfigs clears all "domain_configs" edges to the DomainEnrollmentConfig entity.
func (_u *EnrollmentConfigUpdateOne) ClearDomainConfigs() *EnrollmentConfigUpdateOne {
	_u.mutation.ClearDomainConfigs()
	return _u
}

// RemoveDomainConfigIDs removes the "domain_configs" edge to DomainEnrollmentConfig entities by IDs.
func (_u *EnrollmentConfigUpdateOne) RemoveDomainConfigIDs(ids ...int64) *EnrollmentConfigUpdateOne {
	_u.mutation.RemoveDomainConfigIDs(ids...)
	return _u
}

// RemoveDomainConfigs removes "domain_configs" edges to DomainEnrollmentConfig entities.
func (_u *EnrollmentConfigUpdateOne) RemoveDomainConfigs(v ...*DomainEnrollmentConfig) *EnrollmentConfigUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDomainConfigIDs(ids...)
}

// Where appends a list predicates to the EnrollmentConfigUpdate builder.
func (_u *EnrollmentConfigUpdateOne) Where(ps ...predicate.EnrollmentConfig) *EnrollmentConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnrollmentConfigUpdateOne) Select(field string, fields ...string) *EnrollmentConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EnrollmentConfig entity.
func (_u *EnrollmentConfigUpdateOne) Save(ctx context.Context) (*EnrollmentConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrollmentConfigUpdateOne) SaveX(ctx context.Context) *EnrollmentConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnrollmentConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrollmentConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EnrollmentConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := enrollmentconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnrollmentConfigUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := enrollmentconfig.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EnrollmentConfig.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PercentageSlots(); ok {
		if err := enrollmentconfig.PercentageSlotsValidator(v); err != nil {
			return &ValidationError{Name: "percentage_slots", err: fmt.Errorf(`ent: validator failed for field "EnrollmentConfig.percentage_slots": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxWaitlistSessions(); ok {
		if err := enrollmentconfig.MaxWaitlistSessionsValidator(v); err != nil {
			return &ValidationError{Name: "max_waitlist_sessions", err: fmt.Errorf(`ent: validator failed for field "EnrollmentConfig.max_waitlist_sessions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.APIProvider(); ok {
		if err := enrollmentconfig.APIProviderValidator(v); err != nil {
			return &ValidationError{Name: "api_provider", err: fmt.Errorf(`ent: validator failed for field "EnrollmentConfig.api_provider": %w`, err)}
		}
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EnrollmentConfig.event"`)
	}
	return nil
}

func (_u *EnrollmentConfigUpdateOne) sqlSave(ctx context.Context) (_node *EnrollmentConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enrollmentconfig.Table, enrollmentconfig.Columns, sqlgraph.NewFieldSpec(enrollmentconfig.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EnrollmentConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, enrollmentconfig.FieldID)
		for _, f := range fields {
			if !enrollmentconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != enrollmentconfig.FieldID {
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
		_spec.SetField(enrollmentconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(enrollmentconfig.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(enrollmentconfig.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(enrollmentconfig.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PercentageSlots(); ok {
		_spec.SetField(enrollmentconfig.FieldPercentageSlots, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentageSlots(); ok {
		_spec.AddField(enrollmentconfig.FieldPercentageSlots, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LimitToEndTime(); ok {
		_spec.SetField(enrollmentconfig.FieldLimitToEndTime, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RestrictToConfiguredUsers(); ok {
		_spec.SetField(enrollmentconfig.FieldRestrictToConfiguredUsers, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxWaitlistSessions(); ok {
		_spec.SetField(enrollmentconfig.FieldMaxWaitlistSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxWaitlistSessions(); ok {
		_spec.AddField(enrollmentconfig.FieldMaxWaitlistSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BannerText(); ok {
		_spec.SetField(enrollmentconfig.FieldBannerText, field.TypeString, value)
	}
	if _u.mutation.BannerTextCleared() {
		_spec.ClearField(enrollmentconfig.FieldBannerText, field.TypeString)
	}
	if value, ok := _u.mutation.APIProvider(); ok {
		_spec.SetField(enrollmentconfig.FieldAPIProvider, field.TypeString, value)
	}
	if _u.mutation.APIProviderCleared() {
		_spec.ClearField(enrollmentconfig.FieldAPIProvider, field.TypeString)
	}
	if _u.mutation.EventCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   enrollmentconfig.EventTable,
			Columns: []string{enrollmentconfig.EventColumn},
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
			Table:   enrollmentconfig.EventTable,
			Columns: []string{enrollmentconfig.EventColumn},
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
	if _u.mutation.UserConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrollmentconfig.UserConfigsTable,
			Columns: []string{enrollmentconfig.UserConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userenrollmentconfig.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUserConfigsIDs(); len(nodes) > 0 && !_u.mutation.UserConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrollmentconfig.UserConfigsTable,
			Columns: []string{enrollmentconfig.UserConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userenrollmentconfig.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserConfigsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrollmentconfig.UserConfigsTable,
			Columns: []string{enrollmentconfig.UserConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userenrollmentconfig.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DomainConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrollmentconfig.DomainConfigsTable,
			Columns: []string{enrollmentconfig.DomainConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(domainenrollmentconfig.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDomainConfigsIDs(); len(nodes) > 0 && !_u.mutation.DomainConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrollmentconfig.DomainConfigsTable,
			Columns: []string{enrollmentconfig.DomainConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(domainenrollmentconfig.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DomainConfigsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrollmentconfig.DomainConfigsTable,
			Columns: []string{enrollmentconfig.DomainConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(domainenrollmentconfig.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EnrollmentConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrollmentconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
