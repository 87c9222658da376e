// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/parallax-dev/parallax/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/parallax-dev/parallax/ent/schedule"
	"github.com/parallax-dev/parallax/ent/schedulerun"
	"github.com/parallax-dev/parallax/ent/trigger"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Schedule is the client for interacting with the Schedule builders.
	Schedule *ScheduleClient
	// ScheduleRun is the client for interacting with the ScheduleRun builders.
	ScheduleRun *ScheduleRunClient
	// Trigger is the client for interacting with the Trigger builders.
	Trigger *TriggerClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Schedule = NewScheduleClient(c.config)
	c.ScheduleRun = NewScheduleRunClient(c.config)
	c.Trigger = NewTriggerClient(c.config)
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
		ctx:         ctx,
		config:      cfg,
		Schedule:    NewScheduleClient(cfg),
		ScheduleRun: NewScheduleRunClient(cfg),
		Trigger:     NewTriggerClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		Schedule:    NewScheduleClient(cfg),
		ScheduleRun: NewScheduleRunClient(cfg),
		Trigger:     NewTriggerClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Schedule.
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
	c.Schedule.Use(hooks...)
	c.ScheduleRun.Use(hooks...)
	c.Trigger.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Schedule.Intercept(interceptors...)
	c.ScheduleRun.Intercept(interceptors...)
	c.Trigger.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ScheduleMutation:
		return c.Schedule.mutate(ctx, m)
	case *ScheduleRunMutation:
		return c.ScheduleRun.mutate(ctx, m)
	case *TriggerMutation:
		return c.Trigger.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ScheduleClient is a client for the Schedule schema.
type ScheduleClient struct {
	config
}

// NewScheduleClient returns a client for the Schedule from the given config.
func NewScheduleClient(c config) *ScheduleClient {
	return &ScheduleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `schedule.Hooks(f(g(h())))`.
func (c *ScheduleClient) Use(hooks ...Hook) {
	c.hooks.Schedule = append(c.hooks.Schedule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `schedule.Intercept(f(g(h())))`.
func (c *ScheduleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Schedule = append(c.inters.Schedule, interceptors...)
}

// Create returns a builder for creating a Schedule entity.
func (c *ScheduleClient) Create() *ScheduleCreate {
	mutation := newScheduleMutation(c.config, OpCreate)
	return &ScheduleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Schedule entities.
func (c *ScheduleClient) CreateBulk(builders ...*ScheduleCreate) *ScheduleCreateBulk {
	return &ScheduleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduleClient) MapCreateBulk(slice any, setFunc func(*ScheduleCreate, int)) *ScheduleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduleCreateBulk{err: fmt.Errorf("calling to ScheduleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Schedule.
func (c *ScheduleClient) Update() *ScheduleUpdate {
	mutation := newScheduleMutation(c.config, OpUpdate)
	return &ScheduleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduleClient) UpdateOne(_m *Schedule) *ScheduleUpdateOne {
	mutation := newScheduleMutation(c.config, OpUpdateOne, withSchedule(_m))
	return &ScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduleClient) UpdateOneID(id string) *ScheduleUpdateOne {
	mutation := newScheduleMutation(c.config, OpUpdateOne, withScheduleID(id))
	return &ScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Schedule.
func (c *ScheduleClient) Delete() *ScheduleDelete {
	mutation := newScheduleMutation(c.config, OpDelete)
	return &ScheduleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduleClient) DeleteOne(_m *Schedule) *ScheduleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduleClient) DeleteOneID(id string) *ScheduleDeleteOne {
	builder := c.Delete().Where(schedule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduleDeleteOne{builder}
}

// Query returns a query builder for Schedule.
func (c *ScheduleClient) Query() *ScheduleQuery {
	return &ScheduleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSchedule},
		inters: c.Interceptors(),
	}
}

// Get returns a Schedule entity by its id.
func (c *ScheduleClient) Get(ctx context.Context, id string) (*Schedule, error) {
	return c.Query().Where(schedule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduleClient) GetX(ctx context.Context, id string) *Schedule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRuns queries the runs edge of a Schedule.
func (c *ScheduleClient) QueryRuns(_m *Schedule) *ScheduleRunQuery {
	query := (&ScheduleRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(schedule.Table, schedule.FieldID, id),
			sqlgraph.To(schedulerun.Table, schedulerun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, schedule.RunsTable, schedule.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScheduleClient) Hooks() []Hook {
	return c.hooks.Schedule
}

// Interceptors returns the client interceptors.
func (c *ScheduleClient) Interceptors() []Interceptor {
	return c.inters.Schedule
}

func (c *ScheduleClient) mutate(ctx context.Context, m *ScheduleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Schedule mutation op: %q", m.Op())
	}
}

// ScheduleRunClient is a client for the ScheduleRun schema.
type ScheduleRunClient struct {
	config
}

// NewScheduleRunClient returns a client for the ScheduleRun from the given config.
func NewScheduleRunClient(c config) *ScheduleRunClient {
	return &ScheduleRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `schedulerun.Hooks(f(g(h())))`.
func (c *ScheduleRunClient) Use(hooks ...Hook) {
	c.hooks.ScheduleRun = append(c.hooks.ScheduleRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `schedulerun.Intercept(f(g(h())))`.
func (c *ScheduleRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduleRun = append(c.inters.ScheduleRun, interceptors...)
}

// Create returns a builder for creating a ScheduleRun entity.
func (c *ScheduleRunClient) Create() *ScheduleRunCreate {
	mutation := newScheduleRunMutation(c.config, OpCreate)
	return &ScheduleRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduleRun entities.
func (c *ScheduleRunClient) CreateBulk(builders ...*ScheduleRunCreate) *ScheduleRunCreateBulk {
	return &ScheduleRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduleRunClient) MapCreateBulk(slice any, setFunc func(*ScheduleRunCreate, int)) *ScheduleRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduleRunCreateBulk{err: fmt.Errorf("calling to ScheduleRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduleRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduleRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduleRun.
func (c *ScheduleRunClient) Update() *ScheduleRunUpdate {
	mutation := newScheduleRunMutation(c.config, OpUpdate)
	return &ScheduleRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduleRunClient) UpdateOne(_m *ScheduleRun) *ScheduleRunUpdateOne {
	mutation := newScheduleRunMutation(c.config, OpUpdateOne, withScheduleRun(_m))
	return &ScheduleRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduleRunClient) UpdateOneID(id string) *ScheduleRunUpdateOne {
	mutation := newScheduleRunMutation(c.config, OpUpdateOne, withScheduleRunID(id))
	return &ScheduleRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduleRun.
func (c *ScheduleRunClient) Delete() *ScheduleRunDelete {
	mutation := newScheduleRunMutation(c.config, OpDelete)
	return &ScheduleRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduleRunClient) DeleteOne(_m *ScheduleRun) *ScheduleRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduleRunClient) DeleteOneID(id string) *ScheduleRunDeleteOne {
	builder := c.Delete().Where(schedulerun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduleRunDeleteOne{builder}
}

// Query returns a query builder for ScheduleRun.
func (c *ScheduleRunClient) Query() *ScheduleRunQuery {
	return &ScheduleRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduleRun},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduleRun entity by its id.
func (c *ScheduleRunClient) Get(ctx context.Context, id string) (*ScheduleRun, error) {
	return c.Query().Where(schedulerun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduleRunClient) GetX(ctx context.Context, id string) *ScheduleRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySchedule queries the schedule edge of a ScheduleRun.
func (c *ScheduleRunClient) QuerySchedule(_m *ScheduleRun) *ScheduleQuery {
	query := (&ScheduleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(schedulerun.Table, schedulerun.FieldID, id),
			sqlgraph.To(schedule.Table, schedule.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, schedulerun.ScheduleTable, schedulerun.ScheduleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScheduleRunClient) Hooks() []Hook {
	return c.hooks.ScheduleRun
}

// Interceptors returns the client interceptors.
func (c *ScheduleRunClient) Interceptors() []Interceptor {
	return c.inters.ScheduleRun
}

func (c *ScheduleRunClient) mutate(ctx context.Context, m *ScheduleRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduleRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduleRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduleRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduleRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScheduleRun mutation op: %q", m.Op())
	}
}

// TriggerClient is a client for the Trigger schema.
type TriggerClient struct {
	config
}

// NewTriggerClient returns a client for the Trigger from the given config.
func NewTriggerClient(c config) *TriggerClient {
	return &TriggerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trigger.Hooks(f(g(h())))`.
func (c *TriggerClient) Use(hooks ...Hook) {
	c.hooks.Trigger = append(c.hooks.Trigger, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trigger.Intercept(f(g(h())))`.
func (c *TriggerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Trigger = append(c.inters.Trigger, interceptors...)
}

// Create returns a builder for creating a Trigger entity.
func (c *TriggerClient) Create() *TriggerCreate {
	mutation := newTriggerMutation(c.config, OpCreate)
	return &TriggerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Trigger entities.
func (c *TriggerClient) CreateBulk(builders ...*TriggerCreate) *TriggerCreateBulk {
	return &TriggerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TriggerClient) MapCreateBulk(slice any, setFunc func(*TriggerCreate, int)) *TriggerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TriggerCreateBulk{err: fmt.Errorf("calling to TriggerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TriggerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TriggerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Trigger.
func (c *TriggerClient) Update() *TriggerUpdate {
	mutation := newTriggerMutation(c.config, OpUpdate)
	return &TriggerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TriggerClient) UpdateOne(_m *Trigger) *TriggerUpdateOne {
	mutation := newTriggerMutation(c.config, OpUpdateOne, withTrigger(_m))
	return &TriggerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TriggerClient) UpdateOneID(id string) *TriggerUpdateOne {
	mutation := newTriggerMutation(c.config, OpUpdateOne, withTriggerID(id))
	return &TriggerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Trigger.
func (c *TriggerClient) Delete() *TriggerDelete {
	mutation := newTriggerMutation(c.config, OpDelete)
	return &TriggerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TriggerClient) DeleteOne(_m *Trigger) *TriggerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TriggerClient) DeleteOneID(id string) *TriggerDeleteOne {
	builder := c.Delete().Where(trigger.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TriggerDeleteOne{builder}
}

// Query returns a query builder for Trigger.
func (c *TriggerClient) Query() *TriggerQuery {
	return &TriggerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrigger},
		inters: c.Interceptors(),
	}
}

// Get returns a Trigger entity by its id.
func (c *TriggerClient) Get(ctx context.Context, id string) (*Trigger, error) {
	return c.Query().Where(trigger.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TriggerClient) GetX(ctx context.Context, id string) *Trigger {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TriggerClient) Hooks() []Hook {
	return c.hooks.Trigger
}

// Interceptors returns the client interceptors.
func (c *TriggerClient) Interceptors() []Interceptor {
	return c.inters.Trigger
}

func (c *TriggerClient) mutate(ctx context.Context, m *TriggerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TriggerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TriggerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TriggerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TriggerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Trigger mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Schedule, ScheduleRun, Trigger []ent.Hook
	}
	inters struct {
		Schedule, ScheduleRun, Trigger []ent.Interceptor
	}
)
