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
	"ludamus.io/enrolld/ent/userenrollmentconfig"
)

// EnrollmentConfigCreate is the builder for creating a EnrollmentConfig entity.
type EnrollmentConfigCreate struct {
	config
	mutation *EnrollmentConfigMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *EnrollmentConfigCreate) SetCreatedAt(v time.Time) *EnrollmentConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EnrollmentConfigCreate) SetNillableCreatedAt(v *time.Time) *EnrollmentConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EnrollmentConfigCreate) SetUpdatedAt(v time.Time) *EnrollmentConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EnrollmentConfigCreate) SetNillableUpdatedAt(v *time.Time) *EnrollmentConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *EnrollmentConfigCreate) SetEventID(v int64) *EnrollmentConfigCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *EnrollmentConfigCreate) SetName(v string) *EnrollmentConfigCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *EnrollmentConfigCreate) SetStartTime(v time.Time) *EnrollmentConfigCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *EnrollmentConfigCreate) SetEndTime(v time.Time) *EnrollmentConfigCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetPercentageSlots sets the "percentage_slots" field.
func (_c *EnrollmentConfigCreate) SetPercentageSlots(v int) *EnrollmentConfigCreate {
	_c.mutation.SetPercentageSlots(v)
	return _c
}

// SetNillablePercentageSlots sets the "percentage_slots" field if the given value is not nil.
func (_c *EnrollmentConfigCreate) SetNillablePercentageSlots(v *int) *EnrollmentConfigCreate {
	if v != nil {
		_c.SetPercentageSlots(*v)
	}
	return _c
}

// SetLimitToEndTime sets the "limit_to_end_time" field.
func (_c *EnrollmentConfigCreate) SetLimitToEndTime(v bool) *EnrollmentConfigCreate {
	_c.mutation.SetLimitToEndTime(v)
	return _c
}

// SetNillableLimitToEndTime sets the "limit_to_end_time" field if the given value is not nil.
func (_c *EnrollmentConfigCreate) SetNillableLimitToEndTime(v *bool) *EnrollmentConfigCreate {
	if v != nil {
		_c.SetLimitToEndTime(*v)
	}
	return _c
}

// SetRestrictToConfiguredUsers sets the "restrict_to_configured_users" field.
func (_c *EnrollmentConfigCreate) SetRestrictToConfiguredUsers(v bool) *EnrollmentConfigCreate {
	_c.mutation.SetRestrictToConfiguredUsers(v)
	return _c
}

// SetNillableRestrictToConfiguredUsers sets the "restrict_to_configured_users" field if the given value is not nil.
func (_c *EnrollmentConfigCreate) SetNillableRestrictToConfiguredUsers(v *bool) *EnrollmentConfigCreate {
	if v != nil {
		_c.SetRestrictToConfiguredUsers(*v)
	}
	return _c
}

// SetMaxWaitlistSessions sets the "max_waitlist_sessions" field.
func (_c *EnrollmentConfigCreate) SetMaxWaitlistSessions(v int) *EnrollmentConfigCreate {
	_c.mutation.SetMaxWaitlistSessions(v)
	return _c
}

// SetNillableMaxWaitlistSessions sets the "max_waitlist_sessions" field if the given value is not nil.
func (_c *EnrollmentConfigCreate) SetNillableMaxWaitlistSessions(v *int) *EnrollmentConfigCreate {
	if v != nil {
		_c.SetMaxWaitlistSessions(*v)
	}
	return _c
}

// SetBannerText sets the "banner_text" field.
func (_c *EnrollmentConfigCreate) SetBannerText(v string) *EnrollmentConfigCreate {
	_c.mutation.SetBannerText(v)
	return _c
}

// SetNillableBannerText sets the "banner_text" field if the given value is not nil.
func (_c *EnrollmentConfigCreate) SetNillableBannerText(v *string) *EnrollmentConfigCreate {
	if v != nil {
		_c.SetBannerText(*v)
	}
	return _c
}

// SetAPIProvider sets the "api_provider" field.
func (_c *EnrollmentConfigCreate) SetAPIProvider(v string) *EnrollmentConfigCreate {
	_c.mutation.SetAPIProvider(v)
	return _c
}

// SetNillableAPIProvider sets the "api_provider" field if the given value is not nil.
func (_c *EnrollmentConfigCreate) SetNillableAPIProvider(v *string) *EnrollmentConfigCreate {
	if v != nil {
		_c.SetAPIProvider(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EnrollmentConfigCreate) SetID(v int64) *EnrollmentConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEvent sets the "event" edge to the Event entity.
func (_c *EnrollmentConfigCreate) SetEvent(v *Event) *EnrollmentConfigCreate {
	return _c.SetEventID(v.ID)
}

// AddUserConfigIDs adds the "user_configs" edge to the UserEnrollmentConfig entity by IDs.
func (_c *EnrollmentConfigCreate) AddUserConfigIDs(ids ...int64) *EnrollmentConfigCreate {
	_c.mutation.AddUserConfigIDs(ids...)
	return _c
}

// AddUserConfigs adds the "user_configs" edges to the UserEnrollmentConfig entity.
func (_c *EnrollmentConfigCreate) AddUserConfigs(v ...*UserEnrollmentConfig) *EnrollmentConfigCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUserConfigIDs(ids...)
}

// AddDomainConfigIDs adds the "domain_configs" edge to the DomainEnrollmentConfig entity by IDs.
func (_c *EnrollmentConfigCreate) AddDomainConfigIDs(ids ...int64) *EnrollmentConfigCreate {
	_c.mutation.AddDomainConfigIDs(ids...)
	return _c
}

// AddDomainConfigs adds the "domain_configs" edges to the DomainEnrollmentConfig entity.
func (_c *EnrollmentConfigCreate) AddDomainConfigs(v ...*DomainEnrollmentConfig) *EnrollmentConfigCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDomainConfigIDs(ids...)
}

// Mutation returns the EnrollmentConfigMutation object of the builder.
func (_c *EnrollmentConfigCreate) Mutation() *EnrollmentConfigMutation {
	return _c.mutation
}

// Save creates the EnrollmentConfig in the database.
func (_c *EnrollmentConfigCreate) Save(ctx context.Context) (*EnrollmentConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EnrollmentConfigCreate) SaveX(ctx context.Context) *EnrollmentConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnrollmentConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnrollmentConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EnrollmentConfigCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := enrollmentconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := enrollmentconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.PercentageSlots(); !ok {
		v := enrollmentconfig.DefaultPercentageSlots
		_c.mutation.SetPercentageSlots(v)
	}
	if _, ok := _c.mutation.LimitToEndTime(); !ok {
		v := enrollmentconfig.DefaultLimitToEndTime
		_c.mutation.SetLimitToEndTime(v)
	}
	if _, ok := _c.mutation.RestrictToConfiguredUsers(); !ok {
		v := enrollmentconfig.DefaultRestrictToConfiguredUsers
		_c.mutation.SetRestrictToConfiguredUsers(v)
	}
	if _, ok := _c.mutation.MaxWaitlistSessions(); !ok {
		v := enrollmentconfig.DefaultMaxWaitlistSessions
		_c.mutation.SetMaxWaitlistSessions(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EnrollmentConfigCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EnrollmentConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EnrollmentConfig.updated_at"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "EnrollmentConfig.event_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "EnrollmentConfig.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := enrollmentconfig.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EnrollmentConfig.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "EnrollmentConfig.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`ent: missing required field "EnrollmentConfig.end_time"`)}
	}
	if _, ok := _c.mutation.PercentageSlots(); !ok {
		return &ValidationError{Name: "percentage_slots", err: errors.New(`ent: missing required field "EnrollmentConfig.percentage_slots"`)}
	}
	if v, ok := _c.mutation.PercentageSlots(); ok {
		if err := enrollmentconfig.PercentageSlotsValidator(v); err != nil {
			return &ValidationError{Name: "percentage_slots", err: fmt.Errorf(`ent: validator failed for field "EnrollmentConfig.percentage_slots": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LimitToEndTime(); !ok {
		return &ValidationError{Name: "limit_to_end_time", err: errors.New(`ent: missing required field "EnrollmentConfig.limit_to_end_time"`)}
	}
	if _, ok := _c.mutation.RestrictToConfiguredUsers(); !ok {
		return &ValidationError{Name: "restrict_to_configured_users", err: errors.New(`ent: missing required field "EnrollmentConfig.restrict_to_configured_users"`)}
	}
	if _, ok := _c.mutation.MaxWaitlistSessions(); !ok {
		return &ValidationError{Name: "max_waitlist_sessions", err: errors.New(`ent: missing required field "EnrollmentConfig.max_waitlist_sessions"`)}
	}
	if v, ok := _c.mutation.MaxWaitlistSessions(); ok {
		if err := enrollmentconfig.MaxWaitlistSessionsValidator(v); err != nil {
			return &ValidationError{Name: "max_waitlist_sessions", err: fmt.Errorf(`ent: validator failed for field "EnrollmentConfig.max_waitlist_sessions": %w`, err)}
		}
	}
	if v, ok := _c.mutation.APIProvider(); ok {
		if err := enrollmentconfig.APIProviderValidator(v); err != nil {
			return &ValidationError{Name: "api_provider", err: fmt.Errorf(`ent: validator failed for field "EnrollmentConfig.api_provider": %w`, err)}
		}
	}
	if len(_c.mutation.EventIDs()) == 0 {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required edge "EnrollmentConfig.event"`)}
	}
	return nil
}

func (_c *EnrollmentConfigCreate) sqlSave(ctx context.Context) (*EnrollmentConfig, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EnrollmentConfigCreate) createSpec() (*EnrollmentConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &EnrollmentConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(enrollmentconfig.Table, sqlgraph.NewFieldSpec(enrollmentconfig.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(enrollmentconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(enrollmentconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(enrollmentconfig.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(enrollmentconfig.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(enrollmentconfig.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.PercentageSlots(); ok {
		_spec.SetField(enrollmentconfig.FieldPercentageSlots, field.TypeInt, value)
		_node.PercentageSlots = value
	}
	if value, ok := _c.mutation.LimitToEndTime(); ok {
		_spec.SetField(enrollmentconfig.FieldLimitToEndTime, field.TypeBool, value)
		_node.LimitToEndTime = value
	}
	if value, ok := _c.mutation.RestrictToConfiguredUsers(); ok {
		_spec.SetField(enrollmentconfig.FieldRestrictToConfiguredUsers, field.TypeBool, value)
		_node.RestrictToConfiguredUsers = value
	}
	if value, ok := _c.mutation.MaxWaitlistSessions(); ok {
		_spec.SetField(enrollmentconfig.FieldMaxWaitlistSessions, field.TypeInt, value)
		_node.MaxWaitlistSessions = value
	}
	if value, ok := _c.mutation.BannerText(); ok {
		_spec.SetField(enrollmentconfig.FieldBannerText, field.TypeString, value)
		_node.BannerText = value
	}
	if value, ok := _c.mutation.APIProvider(); ok {
		_spec.SetField(enrollmentconfig.FieldAPIProvider, field.TypeString, value)
		_node.APIProvider = value
	}
	if nodes := _c.mutation.EventIDs(); len(nodes) > 0 {
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
		_node.EventID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserConfigsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DomainConfigsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EnrollmentConfig.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EnrollmentConfigUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EnrollmentConfigCreate) OnConflict(opts ...sql.ConflictOption) *EnrollmentConfigUpsertOne {
	_c.conflict = opts
	return &EnrollmentConfigUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EnrollmentConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EnrollmentConfigCreate) OnConflictColumns(columns ...string) *EnrollmentConfigUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EnrollmentConfigUpsertOne{
		create: _c,
	}
}

type (
	// EnrollmentConfigUpsertOne is the builder for "upsert"-ing
	//  one EnrollmentConfig node.
	EnrollmentConfigUpsertOne struct {
		create *EnrollmentConfigCreate
	}

	// EnrollmentConfigUpsert is the "OnConflict" setter.
	EnrollmentConfigUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *EnrollmentConfigUpsert) SetUpdatedAt(v time.Time) *EnrollmentConfigUpsert {
	u.Set(enrollmentconfig.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EnrollmentConfigUpsert) UpdateUpdatedAt() *EnrollmentConfigUpsert {
	u.SetExcluded(enrollmentconfig.FieldUpdatedAt)
	return u
}

// SetEventID sets the "event_id" field.
func (u *EnrollmentConfigUpsert) SetEventID(v int64) *EnrollmentConfigUpsert {
	u.Set(enrollmentconfig.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EnrollmentConfigUpsert) UpdateEventID() *EnrollmentConfigUpsert {
	u.SetExcluded(enrollmentconfig.FieldEventID)
	return u
}

// SetName sets the "name" field.
func (u *EnrollmentConfigUpsert) SetName(v string) *EnrollmentConfigUpsert {
	u.Set(enrollmentconfig.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EnrollmentConfigUpsert) UpdateName() *EnrollmentConfigUpsert {
	u.SetExcluded(enrollmentconfig.FieldName)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *EnrollmentConfigUpsert) SetStartTime(v time.Time) *EnrollmentConfigUpsert {
	u.Set(enrollmentconfig.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *EnrollmentConfigUpsert) UpdateStartTime() *EnrollmentConfigUpsert {
	u.SetExcluded(enrollmentconfig.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *EnrollmentConfigUpsert) SetEndTime(v time.Time) *EnrollmentConfigUpsert {
	u.Set(enrollmentconfig.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *EnrollmentConfigUpsert) UpdateEndTime() *EnrollmentConfigUpsert {
	u.SetExcluded(enrollmentconfig.FieldEndTime)
	return u
}

// SetPercentageSlots sets the "percentage_slots" field.
func (u *EnrollmentConfigUpsert) SetPercentageSlots(v int) *EnrollmentConfigUpsert {
	u.Set(enrollmentconfig.FieldPercentageSlots, v)
	return u
}

// UpdatePercentageSlots sets the "percentage_slots" field to the value that was provided on create.
func (u *EnrollmentConfigUpsert) UpdatePercentageSlots() *EnrollmentConfigUpsert {
	u.SetExcluded(enrollmentconfig.FieldPercentageSlots)
	return u
}

// AddPercentageSlots adds v to the "percentage_slots" field.
func (u *EnrollmentConfigUpsert) AddPercentageSlots(v int) *EnrollmentConfigUpsert {
	u.Add(enrollmentconfig.FieldPercentageSlots, v)
	return u
}

// SetLimitToEndTime sets the "limit_to_end_time" field.
func (u *EnrollmentConfigUpsert) SetLimitToEndTime(v bool) *EnrollmentConfigUpsert {
	u.Set(enrollmentconfig.FieldLimitToEndTime, v)
	return u
}

// UpdateLimitToEndTime sets the "limit_to_end_time" field to the value that was provided on create.
func (u *EnrollmentConfigUpsert) UpdateLimitToEndTime() *EnrollmentConfigUpsert {
	u.SetExcluded(enrollmentconfig.FieldLimitToEndTime)
	return u
}

// SetRestrictToConfiguredUsers sets the "restrict_to_configured_users" field.
func (u *EnrollmentConfigUpsert) SetRestrictToConfiguredUsers(v bool) *EnrollmentConfigUpsert {
	u.Set(enrollmentconfig.FieldRestrictToConfiguredUsers, v)
	return u
}

// UpdateRestrictToConfiguredUsers sets the "restrict_to_configured_users" field to the value that was provided on create.
func (u *EnrollmentConfigUpsert) UpdateRestrictToConfiguredUsers() *EnrollmentConfigUpsert {
	u.SetExcluded(enrollmentconfig.FieldRestrictToConfiguredUsers)
	return u
}

// SetMaxWaitlistSessions sets the "max_waitlist_sessions" field.
func (u *EnrollmentConfigUpsert) SetMaxWaitlistSessions(v int) *EnrollmentConfigUpsert {
	u.Set(enrollmentconfig.FieldMaxWaitlistSessions, v)
	return u
}

// UpdateMaxWaitlistSessions sets the "max_waitlist_sessions" field to the value that was provided on create.
func (u *EnrollmentConfigUpsert) UpdateMaxWaitlistSessions() *EnrollmentConfigUpsert {
	u.SetExcluded(enrollmentconfig.FieldMaxWaitlistSessions)
	return u
}

// AddMaxWaitlistSessions adds v to the "max_waitlist_sessions" field.
func (u *EnrollmentConfigUpsert) AddMaxWaitlistSessions(v int) *EnrollmentConfigUpsert {
	u.Add(enrollmentconfig.FieldMaxWaitlistSessions, v)
	return u
}

// SetBannerText sets the "banner_text" field.
func (u *EnrollmentConfigUpsert) SetBannerText(v string) *EnrollmentConfigUpsert {
	u.Set(enrollmentconfig.FieldBannerText, v)
	return u
}

// UpdateBannerText sets the "banner_text" field to the value that was provided on create.
func (u *EnrollmentConfigUpsert) UpdateBannerText() *EnrollmentConfigUpsert {
	u.SetExcluded(enrollmentconfig.FieldBannerText)
	return u
}

// ClearBannerText clears the value of the "banner_text" field.
func (u *EnrollmentConfigUpsert) ClearBannerText() *EnrollmentConfigUpsert {
	u.SetNull(enrollmentconfig.FieldBannerText)
	return u
}

// SetAPIProvider sets the "api_provider" field.
func (u *EnrollmentConfigUpsert) SetAPIProvider(v string) *EnrollmentConfigUpsert {
	u.Set(enrollmentconfig.FieldAPIProvider, v)
	return u
}

// UpdateAPIProvider sets the "api_provider" field to the value that was provided on create.
func (u *EnrollmentConfigUpsert) UpdateAPIProvider() *EnrollmentConfigUpsert {
	u.SetExcluded(enrollmentconfig.FieldAPIProvider)
	return u
}

// ClearAPIProvider clears the value of the "api_provider" field.
func (u *EnrollmentConfigUpsert) ClearAPIProvider() *EnrollmentConfigUpsert {
	u.SetNull(enrollmentconfig.FieldAPIProvider)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EnrollmentConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(enrollmentconfig.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EnrollmentConfigUpsertOne) UpdateNewValues() *EnrollmentConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(enrollmentconfig.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(enrollmentconfig.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EnrollmentConfig.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EnrollmentConfigUpsertOne) Ignore() *EnrollmentConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EnrollmentConfigUpsertOne) DoNothing() *EnrollmentConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EnrollmentConfigCreate.OnConflict
// documentation for more info.
func (u *EnrollmentConfigUpsertOne) Update(set func(*EnrollmentConfigUpsert)) *EnrollmentConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EnrollmentConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EnrollmentConfigUpsertOne) SetUpdatedAt(v time.Time) *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertOne) UpdateUpdatedAt() *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEventID sets the "event_id" field.
func (u *EnrollmentConfigUpsertOne) SetEventID(v int64) *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertOne) UpdateEventID() *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateEventID()
	})
}

// SetName sets the "name" field.
func (u *EnrollmentConfigUpsertOne) SetName(v string) *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertOne) UpdateName() *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateName()
	})
}

// SetStartTime sets the "start_time" field.
func (u *EnrollmentConfigUpsertOne) SetStartTime(v time.Time) *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertOne) UpdateStartTime() *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *EnrollmentConfigUpsertOne) SetEndTime(v time.Time) *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertOne) UpdateEndTime() *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateEndTime()
	})
}

// SetPercentageSlots sets the "percentage_slots" field.
func (u *EnrollmentConfigUpsertOne) SetPercentageSlots(v int) *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetPercentageSlots(v)
	})
}

// AddPercentageSlots adds v to the "percentage_slots" field.
func (u *EnrollmentConfigUpsertOne) AddPercentageSlots(v int) *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.AddPercentageSlots(v)
	})
}

// UpdatePercentageSlots sets the "percentage_slots" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertOne) UpdatePercentageSlots() *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdatePercentageSlots()
	})
}

// SetLimitToEndTime sets the "limit_to_end_time" field.
func (u *EnrollmentConfigUpsertOne) SetLimitToEndTime(v bool) *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetLimitToEndTime(v)
	})
}

// UpdateLimitToEndTime sets the "limit_to_end_time" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertOne) UpdateLimitToEndTime() *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateLimitToEndTime()
	})
}

// SetRestrictToConfiguredUsers sets the "restrict_to_configured_users" field.
func (u *EnrollmentConfigUpsertOne) SetRestrictToConfiguredUsers(v bool) *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetRestrictToConfiguredUsers(v)
	})
}

// UpdateRestrictToConfiguredUsers sets the "restrict_to_configured_users" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertOne) UpdateRestrictToConfiguredUsers() *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateRestrictToConfiguredUsers()
	})
}

// SetMaxWaitlistSessions sets the "max_waitlist_sessions" field.
func (u *EnrollmentConfigUpsertOne) SetMaxWaitlistSessions(v int) *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetMaxWaitlistSessions(v)
	})
}

// AddMaxWaitlistSessions adds v to the "max_waitlist_sessions" field.
func (u *EnrollmentConfigUpsertOne) AddMaxWaitlistSessions(v int) *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.AddMaxWaitlistSessions(v)
	})
}

// UpdateMaxWaitlistSessions sets the "max_waitlist_sessions" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertOne) UpdateMaxWaitlistSessions() *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateMaxWaitlistSessions()
	})
}

// SetBannerText sets the "banner_text" field.
func (u *EnrollmentConfigUpsertOne) SetBannerText(v string) *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetBannerText(v)
	})
}

// UpdateBannerText sets the "banner_text" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertOne) UpdateBannerText() *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateBannerText()
	})
}

// ClearBannerText clears the value of the "banner_text" field.
func (u *EnrollmentConfigUpsertOne) ClearBannerText() *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.ClearBannerText()
	})
}

// SetAPIProvider sets the "api_provider" field.
func (u *EnrollmentConfigUpsertOne) SetAPIProvider(v string) *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetAPIProvider(v)
	})
}

// UpdateAPIProvider sets the "api_provider" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertOne) UpdateAPIProvider() *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateAPIProvider()
	})
}

// ClearAPIProvider clears the value of the "api_provider" field.
func (u *EnrollmentConfigUpsertOne) ClearAPIProvider() *EnrollmentConfigUpsertOne {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.ClearAPIProvider()
	})
}

// Exec executes the query.
func (u *EnrollmentConfigUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EnrollmentConfigCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EnrollmentConfigUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EnrollmentConfigUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EnrollmentConfigUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EnrollmentConfigCreateBulk is the builder for creating many EnrollmentConfig entities in bulk.
type EnrollmentConfigCreateBulk struct {
	config
	err      error
	builders []*EnrollmentConfigCreate
	conflict []sql.ConflictOption
}

// Save creates the EnrollmentConfig entities in the database.
func (_c *EnrollmentConfigCreateBulk) Save(ctx context.Context) ([]*EnrollmentConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EnrollmentConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EnrollmentConfigMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EnrollmentConfigCreateBulk) SaveX(ctx context.Context) []*EnrollmentConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnrollmentConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnrollmentConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EnrollmentConfig.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EnrollmentConfigUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EnrollmentConfigCreateBulk) OnConflict(opts ...sql.ConflictOption) *EnrollmentConfigUpsertBulk {
	_c.conflict = opts
	return &EnrollmentConfigUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EnrollmentConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EnrollmentConfigCreateBulk) OnConflictColumns(columns ...string) *EnrollmentConfigUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EnrollmentConfigUpsertBulk{
		create: _c,
	}
}

// EnrollmentConfigUpsertBulk is the builder for "upsert"-ing
// a bulk of EnrollmentConfig nodes.
type EnrollmentConfigUpsertBulk struct {
	create *EnrollmentConfigCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EnrollmentConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(enrollmentconfig.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EnrollmentConfigUpsertBulk) UpdateNewValues() *EnrollmentConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(enrollmentconfig.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(enrollmentconfig.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EnrollmentConfig.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EnrollmentConfigUpsertBulk) Ignore() *EnrollmentConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EnrollmentConfigUpsertBulk) DoNothing() *EnrollmentConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EnrollmentConfigCreateBulk.OnConflict
// documentation for more info.
func (u *EnrollmentConfigUpsertBulk) Update(set func(*EnrollmentConfigUpsert)) *EnrollmentConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EnrollmentConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EnrollmentConfigUpsertBulk) SetUpdatedAt(v time.Time) *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertBulk) UpdateUpdatedAt() *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEventID sets the "event_id" field.
func (u *EnrollmentConfigUpsertBulk) SetEventID(v int64) *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertBulk) UpdateEventID() *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateEventID()
	})
}

// SetName sets the "name" field.
func (u *EnrollmentConfigUpsertBulk) SetName(v string) *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertBulk) UpdateName() *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateName()
	})
}

// SetStartTime sets the "start_time" field.
func (u *EnrollmentConfigUpsertBulk) SetStartTime(v time.Time) *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertBulk) UpdateStartTime() *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *EnrollmentConfigUpsertBulk) SetEndTime(v time.Time) *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertBulk) UpdateEndTime() *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateEndTime()
	})
}

// SetPercentageSlots sets the "percentage_slots" field.
func (u *EnrollmentConfigUpsertBulk) SetPercentageSlots(v int) *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetPercentageSlots(v)
	})
}

// AddPercentageSlots adds v to the "percentage_slots" field.
func (u *EnrollmentConfigUpsertBulk) AddPercentageSlots(v int) *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.AddPercentageSlots(v)
	})
}

// UpdatePercentageSlots sets the "percentage_slots" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertBulk) UpdatePercentageSlots() *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdatePercentageSlots()
	})
}

// SetLimitToEndTime sets the "limit_to_end_time" field.
func (u *EnrollmentConfigUpsertBulk) SetLimitToEndTime(v bool) *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetLimitToEndTime(v)
	})
}

// UpdateLimitToEndTime sets the "limit_to_end_time" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertBulk) UpdateLimitToEndTime() *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateLimitToEndTime()
	})
}

// SetRestrictToConfiguredUsers sets the "restrict_to_configured_users" field.
func (u *EnrollmentConfigUpsertBulk) SetRestrictToConfiguredUsers(v bool) *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetRestrictToConfiguredUsers(v)
	})
}

// UpdateRestrictToConfiguredUsers sets the "restrict_to_configured_users" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertBulk) UpdateRestrictToConfiguredUsers() *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateRestrictToConfiguredUsers()
	})
}

// SetMaxWaitlistSessions sets the "max_waitlist_sessions" field.
func (u *EnrollmentConfigUpsertBulk) SetMaxWaitlistSessions(v int) *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetMaxWaitlistSessions(v)
	})
}

// AddMaxWaitlistSessions adds v to the "max_waitlist_sessions" field.
func (u *EnrollmentConfigUpsertBulk) AddMaxWaitlistSessions(v int) *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.AddMaxWaitlistSessions(v)
	})
}

// UpdateMaxWaitlistSessions sets the "max_waitlist_sessions" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertBulk) UpdateMaxWaitlistSessions() *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateMaxWaitlistSessions()
	})
}

// SetBannerText sets the "banner_text" field.
func (u *EnrollmentConfigUpsertBulk) SetBannerText(v string) *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetBannerText(v)
	})
}

// UpdateBannerText sets the "banner_text" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertBulk) UpdateBannerText() *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateBannerText()
	})
}

// ClearBannerText clears the value of the "banner_text" field.
func (u *EnrollmentConfigUpsertBulk) ClearBannerText() *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.ClearBannerText()
	})
}

// SetAPIProvider sets the "api_provider" field.
func (u *EnrollmentConfigUpsertBulk) SetAPIProvider(v string) *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.SetAPIProvider(v)
	})
}

// UpdateAPIProvider sets the "api_provider" field to the value that was provided on create.
func (u *EnrollmentConfigUpsertBulk) UpdateAPIProvider() *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.UpdateAPIProvider()
	})
}

// ClearAPIProvider clears the value of the "api_provider" field.
func (u *EnrollmentConfigUpsertBulk) ClearAPIProvider() *EnrollmentConfigUpsertBulk {
	return u.Update(func(s *EnrollmentConfigUpsert) {
		s.ClearAPIProvider()
	})
}

// Exec executes the query.
func (u *EnrollmentConfigUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EnrollmentConfigCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EnrollmentConfigCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EnrollmentConfigUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
