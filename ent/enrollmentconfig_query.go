// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"ludamus.io/enrolld/ent/domainenrollmentconfig"
	"ludamus.io/enrolld/ent/enrollmentconfig"
	"ludamus.io/enrolld/ent/event"
	"ludamus.io/enrolld/ent/predicate"
	"ludamus.io/enrolld/ent/userenrollmentconfig"
)

// EnrollmentConfigQuery is the builder for querying EnrollmentConfig entities.
type EnrollmentConfigQuery struct {
	config
	ctx               *QueryContext
	order             []enrollmentconfig.OrderOption
	inters            []Interceptor
	predicates        []predicate.EnrollmentConfig
	withEvent         *EventQuery
	withUserConfigs   *UserEnrollmentConfigQuery
	withDomainConfigs *DomainEnrollmentConfigQuery
	modifiers         []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the EnrollmentConfigQuery builder.
func (_q *EnrollmentConfigQuery) Where(ps ...predicate.EnrollmentConfig) *EnrollmentConfigQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *EnrollmentConfigQuery) Limit(limit int) *EnrollmentConfigQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *EnrollmentConfigQuery) Offset(offset int) *EnrollmentConfigQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *EnrollmentConfigQuery) Unique(unique bool) *EnrollmentConfigQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *EnrollmentConfigQuery) Order(o ...enrollmentconfig.OrderOption) *EnrollmentConfigQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryEvent chains the current query on the "event" edge.
func (_q *EnrollmentConfigQuery) QueryEvent() *EventQuery {
	query := (&EventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(enrollmentconfig.Table, enrollmentconfig.FieldID, selector),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, enrollmentconfig.EventTable, enrollmentconfig.EventColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUserConfigs chains the current query on the "user_configs" edge.
func (_q *EnrollmentConfigQuery) QueryUserConfigs() *UserEnrollmentConfigQuery {
	query := (&UserEnrollmentConfigClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(enrollmentconfig.Table, enrollmentconfig.FieldID, selector),
			sqlgraph.To(userenrollmentconfig.Table, userenrollmentconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, enrollmentconfig.UserConfigsTable, enrollmentconfig.UserConfigsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDomainConfigs chains the current query on the "domain_configs" edge.
func (_q *EnrollmentConfigQuery) QueryDomainConfigs() *DomainEnrollmentConfigQuery {
	query := (&DomainEnrollmentConfigClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(enrollmentconfig.Table, enrollmentconfig.FieldID, selector),
			sqlgraph.To(domainenrollmentconfig.Table, domainenrollmentconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, enrollmentconfig.DomainConfigsTable, enrollmentconfig.DomainConfigsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first EnrollmentConfig entity from the query.
// Returns a *NotFoundError when no EnrollmentConfig was found.
func (_q *EnrollmentConfigQuery) First(ctx context.Context) (*EnrollmentConfig, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{enrollmentconfig.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *EnrollmentConfigQuery) FirstX(ctx context.Context) *EnrollmentConfig {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first EnrollmentConfig ID from the query.
// Returns a *NotFoundError when no EnrollmentConfig ID was found.
func (_q *EnrollmentConfigQuery) FirstID(ctx context.Context) (id int64, err error) {
	var ids []int64
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{enrollmentconfig.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *EnrollmentConfigQuery) FirstIDX(ctx context.Context) int64 {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single EnrollmentConfig entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one EnrollmentConfig entity is found.
// Returns a *NotFoundError when no EnrollmentConfig entities are found.
func (_q *EnrollmentConfigQuery) Only(ctx context.Context) (*EnrollmentConfig, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{enrollmentconfig.Label}
	default:
		return nil, &NotSingularError{enrollmentconfig.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *EnrollmentConfigQuery) OnlyX(ctx context.Context) *EnrollmentConfig {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only EnrollmentConfig ID in the query.
// Returns a *NotSingularError when more than one EnrollmentConfig ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *EnrollmentConfigQuery) OnlyID(ctx context.Context) (id int64, err error) {
	var ids []int64
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{enrollmentconfig.Label}
	default:
		err = &NotSingularError{enrollmentconfig.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *EnrollmentConfigQuery) OnlyIDX(ctx context.Context) int64 {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of EnrollmentConfigs.
func (_q *EnrollmentConfigQuery) All(ctx context.Context) ([]*EnrollmentConfig, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*EnrollmentConfig, *EnrollmentConfigQuery]()
	return withInterceptors[[]*EnrollmentConfig](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *EnrollmentConfigQuery) AllX(ctx context.Context) []*EnrollmentConfig {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of EnrollmentConfig IDs.
func (_q *EnrollmentConfigQuery) IDs(ctx context.Context) (ids []int64, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(enrollmentconfig.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *EnrollmentConfigQuery) IDsX(ctx context.Context) []int64 {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *EnrollmentConfigQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*EnrollmentConfigQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *EnrollmentConfigQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *EnrollmentConfigQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *EnrollmentConfigQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the EnrollmentConfigQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *EnrollmentConfigQuery) Clone() *EnrollmentConfigQuery {
	if _q == nil {
		return nil
	}
	return &EnrollmentConfigQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]enrollmentconfig.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.EnrollmentConfig{}, _q.predicates...),
		withEvent:         _q.withEvent.Clone(),
		withUserConfigs:   _q.withUserConfigs.Clone(),
		withDomainConfigs: _q.withDomainConfigs.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithEvent tells the query-builder to eager-load the nodes that are connected to
// the "event" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EnrollmentConfigQuery) WithEvent(opts ...func(*EventQuery)) *EnrollmentConfigQuery {
	query := (&EventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvent = query
	return _q
}

// WithUserConfigs tells the query-builder to eager-load the nodes that are connected to
// the "user_configs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EnrollmentConfigQuery) WithUserConfigs(opts ...func(*UserEnrollmentConfigQuery)) *EnrollmentConfigQuery {
	query := (&UserEnrollmentConfigClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUserConfigs = query
	return _q
}

// WithDomainConfigs tells the query-builder to eager-load the nodes that are connected to
// the "domain_configs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EnrollmentConfigQuery) WithDomainConfigs(opts ...func(*DomainEnrollmentConfigQuery)) *EnrollmentConfigQuery {
	query := (&DomainEnrollmentConfigClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDomainConfigs = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.EnrollmentConfig.Query().
//		GroupBy(enrollmentconfig.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *EnrollmentConfigQuery) GroupBy(field string, fields ...string) *EnrollmentConfigGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &EnrollmentConfigGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = enrollmentconfig.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.EnrollmentConfig.Query().
//		Select(enrollmentconfig.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *EnrollmentConfigQuery) Select(fields ...string) *EnrollmentConfigSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &EnrollmentConfigSelect{EnrollmentConfigQuery: _q}
	sbuild.label = enrollmentconfig.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a EnrollmentConfigSelect configured with the given aggregations.
func (_q *EnrollmentConfigQuery) Aggregate(fns ...AggregateFunc) *EnrollmentConfigSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *EnrollmentConfigQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !enrollmentconfig.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *EnrollmentConfigQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*EnrollmentConfig, error) {
	var (
		nodes       = []*EnrollmentConfig{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withEvent != nil,
			_q.withUserConfigs != nil,
			_q.withDomainConfigs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*EnrollmentConfig).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &EnrollmentConfig{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withEvent; query != nil {
		if err := _q.loadEvent(ctx, query, nodes, nil,
			func(n *EnrollmentConfig, e *Event) { n.Edges.Event = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withUserConfigs; query != nil {
		if err := _q.loadUserConfigs(ctx, query, nodes,
			func(n *EnrollmentConfig) { n.Edges.UserConfigs = []*UserEnrollmentConfig{} },
			func(n *EnrollmentConfig, e *UserEnrollmentConfig) {
				n.Edges.UserConfigs = append(n.Edges.UserConfigs, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withDomainConfigs; query != nil {
		if err := _q.loadDomainConfigs(ctx, query, nodes,
			func(n *EnrollmentConfig) { n.Edges.DomainConfigs = []*DomainEnrollmentConfig{} },
			func(n *EnrollmentConfig, e *DomainEnrollmentConfig) {
				n.Edges.DomainConfigs = append(n.Edges.DomainConfigs, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *EnrollmentConfigQuery) loadEvent(ctx context.Context, query *EventQuery, nodes []*EnrollmentConfig, init func(*EnrollmentConfig), assign func(*EnrollmentConfig, *Event)) error {
	ids := make([]int64, 0, len(nodes))
	nodeids := make(map[int64][]*EnrollmentConfig)
	for i := range nodes {
		fk := nodes[i].EventID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(event.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "event_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *EnrollmentConfigQuery) loadUserConfigs(ctx context.Context, query *UserEnrollmentConfigQuery, nodes []*EnrollmentConfig, init func(*EnrollmentConfig), assign func(*EnrollmentConfig, *UserEnrollmentConfig)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int64]*EnrollmentConfig)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(userenrollmentconfig.FieldConfigID)
	}
	query.Where(predicate.UserEnrollmentConfig(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(enrollmentconfig.UserConfigsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ConfigID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "config_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *EnrollmentConfigQuery) loadDomainConfigs(ctx context.Context, query *DomainEnrollmentConfigQuery, nodes []*EnrollmentConfig, init func(*EnrollmentConfig), assign func(*EnrollmentConfig, *DomainEnrollmentConfig)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int64]*EnrollmentConfig)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(domainenrollmentconfig.FieldConfigID)
	}
	query.Where(predicate.DomainEnrollmentConfig(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(enrollmentconfig.DomainConfigsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ConfigID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "config_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *EnrollmentConfigQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *EnrollmentConfigQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(enrollmentconfig.Table, enrollmentconfig.Columns, sqlgraph.NewFieldSpec(enrollmentconfig.FieldID, field.TypeInt64))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, enrollmentconfig.FieldID)
		for i := range fields {
			if fields[i] != enrollmentconfig.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withEvent != nil {
			_spec.Node.AddColumnOnce(enrollmentconfig.FieldEventID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *EnrollmentConfigQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(enrollmentconfig.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = enrollmentconfig.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *EnrollmentConfigQuery) ForUpdate(opts ...sql.LockOption) *EnrollmentConfigQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *EnrollmentConfigQuery) ForShare(opts ...sql.LockOption) *EnrollmentConfigQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// EnrollmentConfigGroupBy is the group-by builder for EnrollmentConfig entities.
type EnrollmentConfigGroupBy struct {
	selector
	build *EnrollmentConfigQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *EnrollmentConfigGroupBy) Aggregate(fns ...AggregateFunc) *EnrollmentConfigGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *EnrollmentConfigGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EnrollmentConfigQuery, *EnrollmentConfigGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *EnrollmentConfigGroupBy) sqlScan(ctx context.Context, root *EnrollmentConfigQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// EnrollmentConfigSelect is the builder for selecting fields of EnrollmentConfig entities.
type EnrollmentConfigSelect struct {
	*EnrollmentConfigQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *EnrollmentConfigSelect) Aggregate(fns ...AggregateFunc) *EnrollmentConfigSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *EnrollmentConfigSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EnrollmentConfigQuery, *EnrollmentConfigSelect](ctx, _s.EnrollmentConfigQuery, _s, _s.inters, v)
}

func (_s *EnrollmentConfigSelect) sqlScan(ctx context.Context, root *EnrollmentConfigQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
