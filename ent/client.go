// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ychsiao/tablerush/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/ychsiao/tablerush/ent/runevent"
	"github.com/ychsiao/tablerush/ent/scoreentry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// RunEvent is the client for interacting with the RunEvent builders.
	RunEvent *RunEventClient
	// ScoreEntry is the client for interacting with the ScoreEntry builders.
	ScoreEntry *ScoreEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.RunEvent = NewRunEventClient(c.config)
	c.ScoreEntry = NewScoreEntryClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		RunEvent:   NewRunEventClient(cfg),
		ScoreEntry: NewScoreEntryClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		RunEvent:   NewRunEventClient(cfg),
		ScoreEntry: NewScoreEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		RunEvent.
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
	c.RunEvent.Use(hooks...)
	c.ScoreEntry.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.RunEvent.Intercept(interceptors...)
	c.ScoreEntry.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *RunEventMutation:
		return c.RunEvent.mutate(ctx, m)
	case *ScoreEntryMutation:
		return c.ScoreEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// RunEventClient is a client for the RunEvent schema.
type RunEventClient struct {
	config
}

// NewRunEventClient returns a client for the RunEvent from the given config.
func NewRunEventClient(c config) *RunEventClient {
	return &RunEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runevent.Hooks(f(g(h())))`.
func (c *RunEventClient) Use(hooks ...Hook) {
	c.hooks.RunEvent = append(c.hooks.RunEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runevent.Intercept(f(g(h())))`.
func (c *RunEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunEvent = append(c.inters.RunEvent, interceptors...)
}

// Create returns a builder for creating a RunEvent entity.
func (c *RunEventClient) Create() *RunEventCreate {
	mutation := newRunEventMutation(c.config, OpCreate)
	return &RunEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunEvent entities.
func (c *RunEventClient) CreateBulk(builders ...*RunEventCreate) *RunEventCreateBulk {
	return &RunEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunEventClient) MapCreateBulk(slice any, setFunc func(*RunEventCreate, int)) *RunEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunEventCreateBulk{err: fmt.Errorf("calling to RunEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunEvent.
func (c *RunEventClient) Update() *RunEventUpdate {
	mutation := newRunEventMutation(c.config, OpUpdate)
	return &RunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunEventClient) UpdateOne(_m *RunEvent) *RunEventUpdateOne {
	mutation := newRunEventMutation(c.config, OpUpdateOne, withRunEvent(_m))
	return &RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunEventClient) UpdateOneID(id int) *RunEventUpdateOne {
	mutation := newRunEventMutation(c.config, OpUpdateOne, withRunEventID(id))
	return &RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunEvent.
func (c *RunEventClient) Delete() *RunEventDelete {
	mutation := newRunEventMutation(c.config, OpDelete)
	return &RunEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunEventClient) DeleteOne(_m *RunEvent) *RunEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunEventClient) DeleteOneID(id int) *RunEventDeleteOne {
	builder := c.Delete().Where(runevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunEventDeleteOne{builder}
}

// Query returns a query builder for RunEvent.
func (c *RunEventClient) Query() *RunEventQuery {
	return &RunEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RunEvent entity by its id.
func (c *RunEventClient) Get(ctx context.Context, id int) (*RunEvent, error) {
	return c.Query().Where(runevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunEventClient) GetX(ctx context.Context, id int) *RunEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RunEventClient) Hooks() []Hook {
	return c.hooks.RunEvent
}

// Interceptors returns the client interceptors.
func (c *RunEventClient) Interceptors() []Interceptor {
	return c.inters.RunEvent
}

func (c *RunEventClient) mutate(ctx context.Context, m *RunEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunEvent mutation op: %q", m.Op())
	}
}

// ScoreEntryClient is a client for the ScoreEntry schema.
type ScoreEntryClient struct {
	config
}

// NewScoreEntryClient returns a client for the ScoreEntry from the given config.
func NewScoreEntryClient(c config) *ScoreEntryClient {
	return &ScoreEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scoreentry.Hooks(f(g(h())))`.
func (c *ScoreEntryClient) Use(hooks ...Hook) {
	c.hooks.ScoreEntry = append(c.hooks.ScoreEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scoreentry.Intercept(f(g(h())))`.
func (c *ScoreEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScoreEntry = append(c.inters.ScoreEntry, interceptors...)
}

// Create returns a builder for creating a ScoreEntry entity.
func (c *ScoreEntryClient) Create() *ScoreEntryCreate {
	mutation := newScoreEntryMutation(c.config, OpCreate)
	return &ScoreEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScoreEntry entities.
func (c *ScoreEntryClient) CreateBulk(builders ...*ScoreEntryCreate) *ScoreEntryCreateBulk {
	return &ScoreEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScoreEntryClient) MapCreateBulk(slice any, setFunc func(*ScoreEntryCreate, int)) *ScoreEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScoreEntryCreateBulk{err: fmt.Errorf("calling to ScoreEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScoreEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScoreEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScoreEntry.
func (c *ScoreEntryClient) Update() *ScoreEntryUpdate {
	mutation := newScoreEntryMutation(c.config, OpUpdate)
	return &ScoreEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScoreEntryClient) UpdateOne(_m *ScoreEntry) *ScoreEntryUpdateOne {
	mutation := newScoreEntryMutation(c.config, OpUpdateOne, withScoreEntry(_m))
	return &ScoreEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScoreEntryClient) UpdateOneID(id int) *ScoreEntryUpdateOne {
	mutation := newScoreEntryMutation(c.config, OpUpdateOne, withScoreEntryID(id))
	return &ScoreEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScoreEntry.
func (c *ScoreEntryClient) Delete() *ScoreEntryDelete {
	mutation := newScoreEntryMutation(c.config, OpDelete)
	return &ScoreEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScoreEntryClient) DeleteOne(_m *ScoreEntry) *ScoreEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScoreEntryClient) DeleteOneID(id int) *ScoreEntryDeleteOne {
	builder := c.Delete().Where(scoreentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScoreEntryDeleteOne{builder}
}

// Query returns a query builder for ScoreEntry.
func (c *ScoreEntryClient) Query() *ScoreEntryQuery {
	return &ScoreEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScoreEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ScoreEntry entity by its id.
func (c *ScoreEntryClient) Get(ctx context.Context, id int) (*ScoreEntry, error) {
	return c.Query().Where(scoreentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScoreEntryClient) GetX(ctx context.Context, id int) *ScoreEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScoreEntryClient) Hooks() []Hook {
	return c.hooks.ScoreEntry
}

// Interceptors returns the client interceptors.
func (c *ScoreEntryClient) Interceptors() []Interceptor {
	return c.inters.ScoreEntry
}

func (c *ScoreEntryClient) mutate(ctx context.Context, m *ScoreEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScoreEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScoreEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScoreEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScoreEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScoreEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		RunEvent, ScoreEntry []ent.Hook
	}
	inters struct {
		RunEvent, ScoreEntry []ent.Interceptor
	}
)
