// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"ludamus.io/enrolld/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"ludamus.io/enrolld/ent/agendaitem"
	"ludamus.io/enrolld/ent/domainenrollmentconfig"
	"ludamus.io/enrolld/ent/enrollmentconfig"
	"ludamus.io/enrolld/ent/event"
	"ludamus.io/enrolld/ent/notification"
	"ludamus.io/enrolld/ent/session"
	"ludamus.io/enrolld/ent/sessionparticipation"
	"ludamus.io/enrolld/ent/space"
	"ludamus.io/enrolld/ent/sphere"
	"ludamus.io/enrolld/ent/user"
	"ludamus.io/enrolld/ent/userenrollmentconfig"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgendaItem is the client for interacting with the AgendaItem builders.
	AgendaItem *AgendaItemClient
	// DomainEnrollmentConfig is the client for interacting with the DomainEnrollmentConfig builders.
	DomainEnrollmentConfig *DomainEnrollmentConfigClient
	// EnrollmentConfig is the client for interacting with the EnrollmentConfig builders.
	EnrollmentConfig *EnrollmentConfigClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
	// SessionParticipation is the client for interacting with the SessionParticipation builders.
	SessionParticipation *SessionParticipationClient
	// Space is the client for interacting with the Space builders.
	Space *SpaceClient
	// Sphere is the client for interacting with the Sphere builders.
	Sphere *SphereClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserEnrollmentConfig is the client for interacting with the UserEnrollmentConfig builders.
	UserEnrollmentConfig *UserEnrollmentConfigClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgendaItem = NewAgendaItemClient(c.config)
	c.DomainEnrollmentConfig = NewDomainEnrollmentConfigClient(c.config)
	c.EnrollmentConfig = NewEnrollmentConfigClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.Session = NewSessionClient(c.config)
	c.SessionParticipation = NewSessionParticipationClient(c.config)
	c.Space = NewSpaceClient(c.config)
	c.Sphere = NewSphereClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserEnrollmentConfig = NewUserEnrollmentConfigClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		AgendaItem:             NewAgendaItemClient(cfg),
		DomainEnrollmentConfig: NewDomainEnrollmentConfigClient(cfg),
		EnrollmentConfig:       NewEnrollmentConfigClient(cfg),
		Event:                  NewEventClient(cfg),
		Notification:           NewNotificationClient(cfg),
		Session:                NewSessionClient(cfg),
		SessionParticipation:   NewSessionParticipationClient(cfg),
		Space:                  NewSpaceClient(cfg),
		Sphere:                 NewSphereClient(cfg),
		User:                   NewUserClient(cfg),
		UserEnrollmentConfig:   NewUserEnrollmentConfigClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		AgendaItem:             NewAgendaItemClient(cfg),
		DomainEnrollmentConfig: NewDomainEnrollmentConfigClient(cfg),
		EnrollmentConfig:       NewEnrollmentConfigClient(cfg),
		Event:                  NewEventClient(cfg),
		Notification:           NewNotificationClient(cfg),
		Session:                NewSessionClient(cfg),
		SessionParticipation:   NewSessionParticipationClient(cfg),
		Space:                  NewSpaceClient(cfg),
		Sphere:                 NewSphereClient(cfg),
		User:                   NewUserClient(cfg),
		UserEnrollmentConfig:   NewUserEnrollmentConfigClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgendaItem.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgendaItem, c.DomainEnrollmentConfig, c.EnrollmentConfig, c.Event,
		c.Notification, c.Session, c.SessionParticipation, c.Space, c.Sphere, c.User,
		c.UserEnrollmentConfig,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgendaItem, c.DomainEnrollmentConfig, c.EnrollmentConfig, c.Event,
		c.Notification, c.Session, c.SessionParticipation, c.Space, c.Sphere, c.User,
		c.UserEnrollmentConfig,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgendaItemMutation:
		return c.AgendaItem.mutate(ctx, m)
	case *DomainEnrollmentConfigMutation:
		return c.DomainEnrollmentConfig.mutate(ctx, m)
	case *EnrollmentConfigMutation:
		return c.EnrollmentConfig.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	case *SessionParticipationMutation:
		return c.SessionParticipation.mutate(ctx, m)
	case *SpaceMutation:
		return c.Space.mutate(ctx, m)
	case *SphereMutation:
		return c.Sphere.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserEnrollmentConfigMutation:
		return c.UserEnrollmentConfig.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgendaItemClient is a client for the AgendaItem schema.
type AgendaItemClient struct {
	config
}

// NewAgendaItemClient returns a client for the AgendaItem from the given config.
func NewAgendaItemClient(c config) *AgendaItemClient {
	return &AgendaItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agendaitem.Hooks(f(g(h())))`.
func (c *AgendaItemClient) Use(hooks ...Hook) {
	c.hooks.AgendaItem = append(c.hooks.AgendaItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agendaitem.Intercept(f(g(h())))`.
func (c *AgendaItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgendaItem = append(c.inters.AgendaItem, interceptors...)
}

// Create returns a builder for creating a AgendaItem entity.
func (c *AgendaItemClient) Create() *AgendaItemCreate {
	mutation := newAgendaItemMutation(c.config, OpCreate)
	return &AgendaItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgendaItem entities.
func (c *AgendaItemClient) CreateBulk(builders ...*AgendaItemCreate) *AgendaItemCreateBulk {
	return &AgendaItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgendaItemClient) MapCreateBulk(slice any, setFunc func(*AgendaItemCreate, int)) *AgendaItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgendaItemCreateBulk{err: fmt.Errorf("calling to AgendaItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgendaItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgendaItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgendaItem.
func (c *AgendaItemClient) Update() *AgendaItemUpdate {
	mutation := newAgendaItemMutation(c.config, OpUpdate)
	return &AgendaItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgendaItemClient) UpdateOne(_m *AgendaItem) *AgendaItemUpdateOne {
	mutation := newAgendaItemMutation(c.config, OpUpdateOne, withAgendaItem(_m))
	return &AgendaItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgendaItemClient) UpdateOneID(id int64) *AgendaItemUpdateOne {
	mutation := newAgendaItemMutation(c.config, OpUpdateOne, withAgendaItemID(id))
	return &AgendaItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgendaItem.
func (c *AgendaItemClient) Delete() *AgendaItemDelete {
	mutation := newAgendaItemMutation(c.config, OpDelete)
	return &AgendaItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgendaItemClient) DeleteOne(_m *AgendaItem) *AgendaItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgendaItemClient) DeleteOneID(id int64) *AgendaItemDeleteOne {
	builder := c.Delete().Where(agendaitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgendaItemDeleteOne{builder}
}

// Query returns a query builder for AgendaItem.
func (c *AgendaItemClient) Query() *AgendaItemQuery {
	return &AgendaItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgendaItem},
		inters: c.Interceptors(),
	}
}

// Get returns a AgendaItem entity by its id.
func (c *AgendaItemClient) Get(ctx context.Context, id int64) (*AgendaItem, error) {
	return c.Query().Where(agendaitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgendaItemClient) GetX(ctx context.Context, id int64) *AgendaItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySpace queries the space edge of a AgendaItem.
func (c *AgendaItemClient) QuerySpace(_m *AgendaItem) *SpaceQuery {
	query := (&SpaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agendaitem.Table, agendaitem.FieldID, id),
			sqlgraph.To(space.Table, space.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agendaitem.SpaceTable, agendaitem.SpaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySession queries the session edge of a AgendaItem.
func (c *AgendaItemClient) QuerySession(_m *AgendaItem) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agendaitem.Table, agendaitem.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, agendaitem.SessionTable, agendaitem.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgendaItemClient) Hooks() []Hook {
	return c.hooks.AgendaItem
}

// Interceptors returns the client interceptors.
func (c *AgendaItemClient) Interceptors() []Interceptor {
	return c.inters.AgendaItem
}

func (c *AgendaItemClient) mutate(ctx context.Context, m *AgendaItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgendaItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgendaItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgendaItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgendaItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgendaItem mutation op: %q", m.Op())
	}
}

// DomainEnrollmentConfigClient is a client for the DomainEnrollmentConfig schema.
type DomainEnrollmentConfigClient struct {
	config
}

// NewDomainEnrollmentConfigClient returns a client for the DomainEnrollmentConfig from the given config.
func NewDomainEnrollmentConfigClient(c config) *DomainEnrollmentConfigClient {
	return &DomainEnrollmentConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `domainenrollmentconfig.Hooks(f(g(h())))`.
func (c *DomainEnrollmentConfigClient) Use(hooks ...Hook) {
	c.hooks.DomainEnrollmentConfig = append(c.hooks.DomainEnrollmentConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `domainenrollmentconfig.Intercept(f(g(h())))`.
func (c *DomainEnrollmentConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.DomainEnrollmentConfig = append(c.inters.DomainEnrollmentConfig, interceptors...)
}

// Create returns a builder for creating a DomainEnrollmentConfig entity.
func (c *DomainEnrollmentConfigClient) Create() *DomainEnrollmentConfigCreate {
	mutation := newDomainEnrollmentConfigMutation(c.config, OpCreate)
	return &DomainEnrollmentConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DomainEnrollmentConfig entities.
func (c *DomainEnrollmentConfigClient) CreateBulk(builders ...*DomainEnrollmentConfigCreate) *DomainEnrollmentConfigCreateBulk {
	return &DomainEnrollmentConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DomainEnrollmentConfigClient) MapCreateBulk(slice any, setFunc func(*DomainEnrollmentConfigCreate, int)) *DomainEnrollmentConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DomainEnrollmentConfigCreateBulk{err: fmt.Errorf("calling to DomainEnrollmentConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DomainEnrollmentConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DomainEnrollmentConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DomainEnrollmentConfig.
func (c *DomainEnrollmentConfigClient) Update() *DomainEnrollmentConfigUpdate {
	mutation := newDomainEnrollmentConfigMutation(c.config, OpUpdate)
	return &DomainEnrollmentConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DomainEnrollmentConfigClient) UpdateOne(_m *DomainEnrollmentConfig) *DomainEnrollmentConfigUpdateOne {
	mutation := newDomainEnrollmentConfigMutation(c.config, OpUpdateOne, withDomainEnrollmentConfig(_m))
	return &DomainEnrollmentConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DomainEnrollmentConfigClient) UpdateOneID(id int64) *DomainEnrollmentConfigUpdateOne {
	mutation := newDomainEnrollmentConfigMutation(c.config, OpUpdateOne, withDomainEnrollmentConfigID(id))
	return &DomainEnrollmentConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DomainEnrollmentConfig.
func (c *DomainEnrollmentConfigClient) Delete() *DomainEnrollmentConfigDelete {
	mutation := newDomainEnrollmentConfigMutation(c.config, OpDelete)
	return &DomainEnrollmentConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DomainEnrollmentConfigClient) DeleteOne(_m *DomainEnrollmentConfig) *DomainEnrollmentConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DomainEnrollmentConfigClient) DeleteOneID(id int64) *DomainEnrollmentConfigDeleteOne {
	builder := c.Delete().Where(domainenrollmentconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DomainEnrollmentConfigDeleteOne{builder}
}

// Query returns a query builder for DomainEnrollmentConfig.
func (c *DomainEnrollmentConfigClient) Query() *DomainEnrollmentConfigQuery {
	return &DomainEnrollmentConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDomainEnrollmentConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a DomainEnrollmentConfig entity by its id.
func (c *DomainEnrollmentConfigClient) Get(ctx context.Context, id int64) (*DomainEnrollmentConfig, error) {
	return c.Query().Where(domainenrollmentconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DomainEnrollmentConfigClient) GetX(ctx context.Context, id int64) *DomainEnrollmentConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConfig queries the config edge of a DomainEnrollmentConfig.
func (c *DomainEnrollmentConfigClient) QueryConfig(_m *DomainEnrollmentConfig) *EnrollmentConfigQuery {
	query := (&EnrollmentConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(domainenrollmentconfig.Table, domainenrollmentconfig.FieldID, id),
			sqlgraph.To(enrollmentconfig.Table, enrollmentconfig.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, domainenrollmentconfig.ConfigTable, domainenrollmentconfig.ConfigColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DomainEnrollmentConfigClient) Hooks() []Hook {
	return c.hooks.DomainEnrollmentConfig
}

// Interceptors returns the client interceptors.
func (c *DomainEnrollmentConfigClient) Interceptors() []Interceptor {
	return c.inters.DomainEnrollmentConfig
}

func (c *DomainEnrollmentConfigClient) mutate(ctx context.Context, m *DomainEnrollmentConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DomainEnrollmentConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DomainEnrollmentConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DomainEnrollmentConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DomainEnrollmentConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DomainEnrollmentConfig mutation op: %q", m.Op())
	}
}

// EnrollmentConfigClient is a client for the EnrollmentConfig schema.
type EnrollmentConfigClient struct {
	config
}

// NewEnrollmentConfigClient returns a client for the EnrollmentConfig from the given config.
func NewEnrollmentConfigClient(c config) *EnrollmentConfigClient {
	return &EnrollmentConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `enrollmentconfig.Hooks(f(g(h())))`.
func (c *EnrollmentConfigClient) Use(hooks ...Hook) {
	c.hooks.EnrollmentConfig = append(c.hooks.EnrollmentConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `enrollmentconfig.Intercept(f(g(h())))`.
func (c *EnrollmentConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.EnrollmentConfig = append(c.inters.EnrollmentConfig, interceptors...)
}

// Create returns a builder for creating a EnrollmentConfig entity.
func (c *EnrollmentConfigClient) Create() *EnrollmentConfigCreate {
	mutation := newEnrollmentConfigMutation(c.config, OpCreate)
	return &EnrollmentConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EnrollmentConfig entities.
func (c *EnrollmentConfigClient) CreateBulk(builders ...*EnrollmentConfigCreate) *EnrollmentConfigCreateBulk {
	return &EnrollmentConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EnrollmentConfigClient) MapCreateBulk(slice any, setFunc func(*EnrollmentConfigCreate, int)) *EnrollmentConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EnrollmentConfigCreateBulk{err: fmt.Errorf("calling to EnrollmentConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EnrollmentConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EnrollmentConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EnrollmentConfig.
func (c *EnrollmentConfigClient) Update() *EnrollmentConfigUpdate {
	mutation := newEnrollmentConfigMutation(c.config, OpUpdate)
	return &EnrollmentConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EnrollmentConfigClient) UpdateOne(_m *EnrollmentConfig) *EnrollmentConfigUpdateOne {
	mutation := newEnrollmentConfigMutation(c.config, OpUpdateOne, withEnrollmentConfig(_m))
	return &EnrollmentConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EnrollmentConfigClient) UpdateOneID(id int64) *EnrollmentConfigUpdateOne {
	mutation := newEnrollmentConfigMutation(c.config, OpUpdateOne, withEnrollmentConfigID(id))
	return &EnrollmentConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EnrollmentConfig.
func (c *EnrollmentConfigClient) Delete() *EnrollmentConfigDelete {
	mutation := newEnrollmentConfigMutation(c.config, OpDelete)
	return &EnrollmentConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EnrollmentConfigClient) DeleteOne(_m *EnrollmentConfig) *EnrollmentConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EnrollmentConfigClient) DeleteOneID(id int64) *EnrollmentConfigDeleteOne {
	builder := c.Delete().Where(enrollmentconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EnrollmentConfigDeleteOne{builder}
}

// Query returns a query builder for EnrollmentConfig.
func (c *EnrollmentConfigClient) Query() *EnrollmentConfigQuery {
	return &EnrollmentConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEnrollmentConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a EnrollmentConfig entity by its id.
func (c *EnrollmentConfigClient) Get(ctx context.Context, id int64) (*EnrollmentConfig, error) {
	return c.Query().Where(enrollmentconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EnrollmentConfigClient) GetX(ctx context.Context, id int64) *EnrollmentConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvent queries the event edge of a EnrollmentConfig.
func (c *EnrollmentConfigClient) QueryEvent(_m *EnrollmentConfig) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(enrollmentconfig.Table, enrollmentconfig.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, enrollmentconfig.EventTable, enrollmentconfig.EventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUserConfigs queries the user_configs edge of a EnrollmentConfig.
func (c *EnrollmentConfigClient) QueryUserConfigs(_m *EnrollmentConfig) *UserEnrollmentConfigQuery {
	query := (&UserEnrollmentConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(enrollmentconfig.Table, enrollmentconfig.FieldID, id),
			sqlgraph.To(userenrollmentconfig.Table, userenrollmentconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, enrollmentconfig.UserConfigsTable, enrollmentconfig.UserConfigsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDomainConfigs queries the domain_configs edge of a EnrollmentConfig.
func (c *EnrollmentConfigClient) QueryDomainConfigs(_m *EnrollmentConfig) *DomainEnrollmentConfigQuery {
	query := (&DomainEnrollmentConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(enrollmentconfig.Table, enrollmentconfig.FieldID, id),
			sqlgraph.To(domainenrollmentconfig.Table, domainenrollmentconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, enrollmentconfig.DomainConfigsTable, enrollmentconfig.DomainConfigsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EnrollmentConfigClient) Hooks() []Hook {
	return c.hooks.EnrollmentConfig
}

// Interceptors returns the client interceptors.
func (c *EnrollmentConfigClient) Interceptors() []Interceptor {
	return c.inters.EnrollmentConfig
}

func (c *EnrollmentConfigClient) mutate(ctx context.Context, m *EnrollmentConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EnrollmentConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EnrollmentConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EnrollmentConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EnrollmentConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EnrollmentConfig mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int64) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int64) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int64) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int64) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySphere queries the sphere edge of a Event.
func (c *EventClient) QuerySphere(_m *Event) *SphereQuery {
	query := (&SphereClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(sphere.Table, sphere.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.SphereTable, event.SphereColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySpaces queries the spaces edge of a Event.
func (c *EventClient) QuerySpaces(_m *Event) *SpaceQuery {
	query := (&SpaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(space.Table, space.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, event.SpacesTable, event.SpacesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a Event.
func (c *EventClient) QuerySessions(_m *Event) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, event.SessionsTable, event.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEnrollmentConfigs queries the enrollment_configs edge of a Event.
func (c *EventClient) QueryEnrollmentConfigs(_m *Event) *EnrollmentConfigQuery {
	query := (&EnrollmentConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(enrollmentconfig.Table, enrollmentconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, event.EnrollmentConfigsTable, event.EnrollmentConfigsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id string) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id string) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id string) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id string) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Notification.
func (c *NotificationClient) QueryUser(_m *Notification) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(notification.Table, notification.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, notification.UserTable, notification.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Notification mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id int64) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id int64) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id int64) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id int64) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvent queries the event edge of a Session.
func (c *SessionClient) QueryEvent(_m *Session) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, session.EventTable, session.EventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHost queries the host edge of a Session.
func (c *SessionClient) QueryHost(_m *Session) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, session.HostTable, session.HostColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgendaItem queries the agenda_item edge of a Session.
func (c *SessionClient) QueryAgendaItem(_m *Session) *AgendaItemQuery {
	query := (&AgendaItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(agendaitem.Table, agendaitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, session.AgendaItemTable, session.AgendaItemColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParticipations queries the participations edge of a Session.
func (c *SessionClient) QueryParticipations(_m *Session) *SessionParticipationQuery {
	query := (&SessionParticipationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(sessionparticipation.Table, sessionparticipation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, session.ParticipationsTable, session.ParticipationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// SessionParticipationClient is a client for the SessionParticipation schema.
type SessionParticipationClient struct {
	config
}

// NewSessionParticipationClient returns a client for the SessionParticipation from the given config.
func NewSessionParticipationClient(c config) *SessionParticipationClient {
	return &SessionParticipationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionparticipation.Hooks(f(g(h())))`.
func (c *SessionParticipationClient) Use(hooks ...Hook) {
	c.hooks.SessionParticipation = append(c.hooks.SessionParticipation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionparticipation.Intercept(f(g(h())))`.
func (c *SessionParticipationClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionParticipation = append(c.inters.SessionParticipation, interceptors...)
}

// Create returns a builder for creating a SessionParticipation entity.
func (c *SessionParticipationClient) Create() *SessionParticipationCreate {
	mutation := newSessionParticipationMutation(c.config, OpCreate)
	return &SessionParticipationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionParticipation entities.
func (c *SessionParticipationClient) CreateBulk(builders ...*SessionParticipationCreate) *SessionParticipationCreateBulk {
	return &SessionParticipationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionParticipationClient) MapCreateBulk(slice any, setFunc func(*SessionParticipationCreate, int)) *SessionParticipationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionParticipationCreateBulk{err: fmt.Errorf("calling to SessionParticipationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionParticipationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionParticipationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionParticipation.
func (c *SessionParticipationClient) Update() *SessionParticipationUpdate {
	mutation := newSessionParticipationMutation(c.config, OpUpdate)
	return &SessionParticipationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionParticipationClient) UpdateOne(_m *SessionParticipation) *SessionParticipationUpdateOne {
	mutation := newSessionParticipationMutation(c.config, OpUpdateOne, withSessionParticipation(_m))
	return &SessionParticipationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionParticipationClient) UpdateOneID(id int64) *SessionParticipationUpdateOne {
	mutation := newSessionParticipationMutation(c.config, OpUpdateOne, withSessionParticipationID(id))
	return &SessionParticipationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionParticipation.
func (c *SessionParticipationClient) Delete() *SessionParticipationDelete {
	mutation := newSessionParticipationMutation(c.config, OpDelete)
	return &SessionParticipationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionParticipationClient) DeleteOne(_m *SessionParticipation) *SessionParticipationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionParticipationClient) DeleteOneID(id int64) *SessionParticipationDeleteOne {
	builder := c.Delete().Where(sessionparticipation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionParticipationDeleteOne{builder}
}

// Query returns a query builder for SessionParticipation.
func (c *SessionParticipationClient) Query() *SessionParticipationQuery {
	return &SessionParticipationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionParticipation},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionParticipation entity by its id.
func (c *SessionParticipationClient) Get(ctx context.Context, id int64) (*SessionParticipation, error) {
	return c.Query().Where(sessionparticipation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionParticipationClient) GetX(ctx context.Context, id int64) *SessionParticipation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a SessionParticipation.
func (c *SessionParticipationClient) QuerySession(_m *SessionParticipation) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessionparticipation.Table, sessionparticipation.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sessionparticipation.SessionTable, sessionparticipation.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUser queries the user edge of a SessionParticipation.
func (c *SessionParticipationClient) QueryUser(_m *SessionParticipation) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessionparticipation.Table, sessionparticipation.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sessionparticipation.UserTable, sessionparticipation.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEnrolledBy queries the enrolled_by edge of a SessionParticipation.
func (c *SessionParticipationClient) QueryEnrolledBy(_m *SessionParticipation) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessionparticipation.Table, sessionparticipation.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, sessionparticipation.EnrolledByTable, sessionparticipation.EnrolledByColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionParticipationClient) Hooks() []Hook {
	return c.hooks.SessionParticipation
}

// Interceptors returns the client interceptors.
func (c *SessionParticipationClient) Interceptors() []Interceptor {
	return c.inters.SessionParticipation
}

func (c *SessionParticipationClient) mutate(ctx context.Context, m *SessionParticipationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionParticipationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionParticipationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionParticipationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionParticipationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionParticipation mutation op: %q", m.Op())
	}
}

// SpaceClient is a client for the Space schema.
type SpaceClient struct {
	config
}

// NewSpaceClient returns a client for the Space from the given config.
func NewSpaceClient(c config) *SpaceClient {
	return &SpaceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `space.Hooks(f(g(h())))`.
func (c *SpaceClient) Use(hooks ...Hook) {
	c.hooks.Space = append(c.hooks.Space, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `space.Intercept(f(g(h())))`.
func (c *SpaceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Space = append(c.inters.Space, interceptors...)
}

// Create returns a builder for creating a Space entity.
func (c *SpaceClient) Create() *SpaceCreate {
	mutation := newSpaceMutation(c.config, OpCreate)
	return &SpaceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Space entities.
func (c *SpaceClient) CreateBulk(builders ...*SpaceCreate) *SpaceCreateBulk {
	return &SpaceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SpaceClient) MapCreateBulk(slice any, setFunc func(*SpaceCreate, int)) *SpaceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SpaceCreateBulk{err: fmt.Errorf("calling to SpaceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SpaceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SpaceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Space.
func (c *SpaceClient) Update() *SpaceUpdate {
	mutation := newSpaceMutation(c.config, OpUpdate)
	return &SpaceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SpaceClient) UpdateOne(_m *Space) *SpaceUpdateOne {
	mutation := newSpaceMutation(c.config, OpUpdateOne, withSpace(_m))
	return &SpaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SpaceClient) UpdateOneID(id int64) *SpaceUpdateOne {
	mutation := newSpaceMutation(c.config, OpUpdateOne, withSpaceID(id))
	return &SpaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Space.
func (c *SpaceClient) Delete() *SpaceDelete {
	mutation := newSpaceMutation(c.config, OpDelete)
	return &SpaceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SpaceClient) DeleteOne(_m *Space) *SpaceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SpaceClient) DeleteOneID(id int64) *SpaceDeleteOne {
	builder := c.Delete().Where(space.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SpaceDeleteOne{builder}
}

// Query returns a query builder for Space.
func (c *SpaceClient) Query() *SpaceQuery {
	return &SpaceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSpace},
		inters: c.Interceptors(),
	}
}

// Get returns a Space entity by its id.
func (c *SpaceClient) Get(ctx context.Context, id int64) (*Space, error) {
	return c.Query().Where(space.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SpaceClient) GetX(ctx context.Context, id int64) *Space {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvent queries the event edge of a Space.
func (c *SpaceClient) QueryEvent(_m *Space) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(space.Table, space.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, space.EventTable, space.EventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgendaItems queries the agenda_items edge of a Space.
func (c *SpaceClient) QueryAgendaItems(_m *Space) *AgendaItemQuery {
	query := (&AgendaItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(space.Table, space.FieldID, id),
			sqlgraph.To(agendaitem.Table, agendaitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, space.AgendaItemsTable, space.AgendaItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SpaceClient) Hooks() []Hook {
	return c.hooks.Space
}

// Interceptors returns the client interceptors.
func (c *SpaceClient) Interceptors() []Interceptor {
	return c.inters.Space
}

func (c *SpaceClient) mutate(ctx context.Context, m *SpaceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SpaceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SpaceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SpaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SpaceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Space mutation op: %q", m.Op())
	}
}

// SphereClient is a client for the Sphere schema.
type SphereClient struct {
	config
}

// NewSphereClient returns a client for the Sphere from the given config.
func NewSphereClient(c config) *SphereClient {
	return &SphereClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sphere.Hooks(f(g(h())))`.
func (c *SphereClient) Use(hooks ...Hook) {
	c.hooks.Sphere = append(c.hooks.Sphere, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sphere.Intercept(f(g(h())))`.
func (c *SphereClient) Intercept(interceptors ...Interceptor) {
	c.inters.Sphere = append(c.inters.Sphere, interceptors...)
}

// Create returns a builder for creating a Sphere entity.
func (c *SphereClient) Create() *SphereCreate {
	mutation := newSphereMutation(c.config, OpCreate)
	return &SphereCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Sphere entities.
func (c *SphereClient) CreateBulk(builders ...*SphereCreate) *SphereCreateBulk {
	return &SphereCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SphereClient) MapCreateBulk(slice any, setFunc func(*SphereCreate, int)) *SphereCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SphereCreateBulk{err: fmt.Errorf("calling to SphereClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SphereCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SphereCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Sphere.
func (c *SphereClient) Update() *SphereUpdate {
	mutation := newSphereMutation(c.config, OpUpdate)
	return &SphereUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SphereClient) UpdateOne(_m *Sphere) *SphereUpdateOne {
	mutation := newSphereMutation(c.config, OpUpdateOne, withSphere(_m))
	return &SphereUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SphereClient) UpdateOneID(id int64) *SphereUpdateOne {
	mutation := newSphereMutation(c.config, OpUpdateOne, withSphereID(id))
	return &SphereUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Sphere.
func (c *SphereClient) Delete() *SphereDelete {
	mutation := newSphereMutation(c.config, OpDelete)
	return &SphereDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SphereClient) DeleteOne(_m *Sphere) *SphereDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SphereClient) DeleteOneID(id int64) *SphereDeleteOne {
	builder := c.Delete().Where(sphere.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SphereDeleteOne{builder}
}

// Query returns a query builder for Sphere.
func (c *SphereClient) Query() *SphereQuery {
	return &SphereQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSphere},
		inters: c.Interceptors(),
	}
}

// Get returns a Sphere entity by its id.
func (c *SphereClient) Get(ctx context.Context, id int64) (*Sphere, error) {
	return c.Query().Where(sphere.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SphereClient) GetX(ctx context.Context, id int64) *Sphere {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvents queries the events edge of a Sphere.
func (c *SphereClient) QueryEvents(_m *Sphere) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sphere.Table, sphere.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sphere.EventsTable, sphere.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SphereClient) Hooks() []Hook {
	return c.hooks.Sphere
}

// Interceptors returns the client interceptors.
func (c *SphereClient) Interceptors() []Interceptor {
	return c.inters.Sphere
}

func (c *SphereClient) mutate(ctx context.Context, m *SphereMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SphereCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SphereUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SphereUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SphereDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Sphere mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int64) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int64) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int64) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int64) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryManager queries the manager edge of a User.
func (c *UserClient) QueryManager(_m *User) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, user.ManagerTable, user.ManagerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryConnectedUsers queries the connected_users edge of a User.
func (c *UserClient) QueryConnectedUsers(_m *User) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.ConnectedUsersTable, user.ConnectedUsersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParticipations queries the participations edge of a User.
func (c *UserClient) QueryParticipations(_m *User) *SessionParticipationQuery {
	query := (&SessionParticipationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(sessionparticipation.Table, sessionparticipation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.ParticipationsTable, user.ParticipationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryNotifications queries the notifications edge of a User.
func (c *UserClient) QueryNotifications(_m *User) *NotificationQuery {
	query := (&NotificationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(notification.Table, notification.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.NotificationsTable, user.NotificationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// UserEnrollmentConfigClient is a client for the UserEnrollmentConfig schema.
type UserEnrollmentConfigClient struct {
	config
}

// NewUserEnrollmentConfigClient returns a client for the UserEnrollmentConfig from the given config.
func NewUserEnrollmentConfigClient(c config) *UserEnrollmentConfigClient {
	return &UserEnrollmentConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userenrollmentconfig.Hooks(f(g(h())))`.
func (c *UserEnrollmentConfigClient) Use(hooks ...Hook) {
	c.hooks.UserEnrollmentConfig = append(c.hooks.UserEnrollmentConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userenrollmentconfig.Intercept(f(g(h())))`.
func (c *UserEnrollmentConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserEnrollmentConfig = append(c.inters.UserEnrollmentConfig, interceptors...)
}

// Create returns a builder for creating a UserEnrollmentConfig entity.
func (c *UserEnrollmentConfigClient) Create() *UserEnrollmentConfigCreate {
	mutation := newUserEnrollmentConfigMutation(c.config, OpCreate)
	return &UserEnrollmentConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserEnrollmentConfig entities.
func (c *UserEnrollmentConfigClient) CreateBulk(builders ...*UserEnrollmentConfigCreate) *UserEnrollmentConfigCreateBulk {
	return &UserEnrollmentConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserEnrollmentConfigClient) MapCreateBulk(slice any, setFunc func(*UserEnrollmentConfigCreate, int)) *UserEnrollmentConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserEnrollmentConfigCreateBulk{err: fmt.Errorf("calling to UserEnrollmentConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserEnrollmentConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserEnrollmentConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserEnrollmentConfig.
func (c *UserEnrollmentConfigClient) Update() *UserEnrollmentConfigUpdate {
	mutation := newUserEnrollmentConfigMutation(c.config, OpUpdate)
	return &UserEnrollmentConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserEnrollmentConfigClient) UpdateOne(_m *UserEnrollmentConfig) *UserEnrollmentConfigUpdateOne {
	mutation := newUserEnrollmentConfigMutation(c.config, OpUpdateOne, withUserEnrollmentConfig(_m))
	return &UserEnrollmentConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserEnrollmentConfigClient) UpdateOneID(id int64) *UserEnrollmentConfigUpdateOne {
	mutation := newUserEnrollmentConfigMutation(c.config, OpUpdateOne, withUserEnrollmentConfigID(id))
	return &UserEnrollmentConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserEnrollmentConfig.
func (c *UserEnrollmentConfigClient) Delete() *UserEnrollmentConfigDelete {
	mutation := newUserEnrollmentConfigMutation(c.config, OpDelete)
	return &UserEnrollmentConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserEnrollmentConfigClient) DeleteOne(_m *UserEnrollmentConfig) *UserEnrollmentConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserEnrollmentConfigClient) DeleteOneID(id int64) *UserEnrollmentConfigDeleteOne {
	builder := c.Delete().Where(userenrollmentconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserEnrollmentConfigDeleteOne{builder}
}

// Query returns a query builder for UserEnrollmentConfig.
func (c *UserEnrollmentConfigClient) Query() *UserEnrollmentConfigQuery {
	return &UserEnrollmentConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserEnrollmentConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a UserEnrollmentConfig entity by its id.
func (c *UserEnrollmentConfigClient) Get(ctx context.Context, id int64) (*UserEnrollmentConfig, error) {
	return c.Query().Where(userenrollmentconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserEnrollmentConfigClient) GetX(ctx context.Context, id int64) *UserEnrollmentConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConfig queries the config edge of a UserEnrollmentConfig.
func (c *UserEnrollmentConfigClient) QueryConfig(_m *UserEnrollmentConfig) *EnrollmentConfigQuery {
	query := (&EnrollmentConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(userenrollmentconfig.Table, userenrollmentconfig.FieldID, id),
			sqlgraph.To(enrollmentconfig.Table, enrollmentconfig.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, userenrollmentconfig.ConfigTable, userenrollmentconfig.ConfigColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserEnrollmentConfigClient) Hooks() []Hook {
	return c.hooks.UserEnrollmentConfig
}

// Interceptors returns the client interceptors.
func (c *UserEnrollmentConfigClient) Interceptors() []Interceptor {
	return c.inters.UserEnrollmentConfig
}

func (c *UserEnrollmentConfigClient) mutate(ctx context.Context, m *UserEnrollmentConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserEnrollmentConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserEnrollmentConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserEnrollmentConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserEnrollmentConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserEnrollmentConfig mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgendaItem, DomainEnrollmentConfig, EnrollmentConfig, Event, Notification,
		Session, SessionParticipation, Space, Sphere, User,
		UserEnrollmentConfig []ent.Hook
	}
	inters struct {
		AgendaItem, DomainEnrollmentConfig, EnrollmentConfig, Event, Notification,
		Session, SessionParticipation, Space, Sphere, User,
		UserEnrollmentConfig []ent.Interceptor
	}
)
