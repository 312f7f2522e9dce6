// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/adityab/healthpredict/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/adityab/healthpredict/ent/historyrecord"
	"github.com/adityab/healthpredict/ent/predictevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// HistoryRecord is the client for interacting with the HistoryRecord builders.
	HistoryRecord *HistoryRecordClient
	// PredictEvent is the client for interacting with the PredictEvent builders.
	PredictEvent *PredictEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.HistoryRecord = NewHistoryRecordClient(c.config)
	c.PredictEvent = NewPredictEventClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		HistoryRecord: NewHistoryRecordClient(cfg),
		PredictEvent:  NewPredictEventClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		HistoryRecord: NewHistoryRecordClient(cfg),
		PredictEvent:  NewPredictEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		HistoryRecord.
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
	c.HistoryRecord.Use(hooks...)
	c.PredictEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.HistoryRecord.Intercept(interceptors...)
	c.PredictEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *HistoryRecordMutation:
		return c.HistoryRecord.mutate(ctx, m)
	case *PredictEventMutation:
		return c.PredictEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// HistoryRecordClient is a client for the HistoryRecord schema.
type HistoryRecordClient struct {
	config
}

// NewHistoryRecordClient returns a client for the HistoryRecord from the given config.
func NewHistoryRecordClient(c config) *HistoryRecordClient {
	return &HistoryRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `historyrecord.Hooks(f(g(h())))`.
func (c *HistoryRecordClient) Use(hooks ...Hook) {
	c.hooks.HistoryRecord = append(c.hooks.HistoryRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `historyrecord.Intercept(f(g(h())))`.
func (c *HistoryRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.HistoryRecord = append(c.inters.HistoryRecord, interceptors...)
}

// Create returns a builder for creating a HistoryRecord entity.
func (c *HistoryRecordClient) Create() *HistoryRecordCreate {
	mutation := newHistoryRecordMutation(c.config, OpCreate)
	return &HistoryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HistoryRecord entities.
func (c *HistoryRecordClient) CreateBulk(builders ...*HistoryRecordCreate) *HistoryRecordCreateBulk {
	return &HistoryRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HistoryRecordClient) MapCreateBulk(slice any, setFunc func(*HistoryRecordCreate, int)) *HistoryRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HistoryRecordCreateBulk{err: fmt.Errorf("calling to HistoryRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HistoryRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HistoryRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HistoryRecord.
func (c *HistoryRecordClient) Update() *HistoryRecordUpdate {
	mutation := newHistoryRecordMutation(c.config, OpUpdate)
	return &HistoryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HistoryRecordClient) UpdateOne(_m *HistoryRecord) *HistoryRecordUpdateOne {
	mutation := newHistoryRecordMutation(c.config, OpUpdateOne, withHistoryRecord(_m))
	return &HistoryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HistoryRecordClient) UpdateOneID(id int) *HistoryRecordUpdateOne {
	mutation := newHistoryRecordMutation(c.config, OpUpdateOne, withHistoryRecordID(id))
	return &HistoryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HistoryRecord.
func (c *HistoryRecordClient) Delete() *HistoryRecordDelete {
	mutation := newHistoryRecordMutation(c.config, OpDelete)
	return &HistoryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HistoryRecordClient) DeleteOne(_m *HistoryRecord) *HistoryRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HistoryRecordClient) DeleteOneID(id int) *HistoryRecordDeleteOne {
	builder := c.Delete().Where(historyrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HistoryRecordDeleteOne{builder}
}

// Query returns a query builder for HistoryRecord.
func (c *HistoryRecordClient) Query() *HistoryRecordQuery {
	return &HistoryRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHistoryRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a HistoryRecord entity by its id.
func (c *HistoryRecordClient) Get(ctx context.Context, id int) (*HistoryRecord, error) {
	return c.Query().Where(historyrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HistoryRecordClient) GetX(ctx context.Context, id int) *HistoryRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HistoryRecordClient) Hooks() []Hook {
	return c.hooks.HistoryRecord
}

// Interceptors returns the client interceptors.
func (c *HistoryRecordClient) Interceptors() []Interceptor {
	return c.inters.HistoryRecord
}

func (c *HistoryRecordClient) mutate(ctx context.Context, m *HistoryRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HistoryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HistoryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HistoryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HistoryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HistoryRecord mutation op: %q", m.Op())
	}
}

// PredictEventClient is a client for the PredictEvent schema.
type PredictEventClient struct {
	config
}

// NewPredictEventClient returns a client for the PredictEvent from the given config.
func NewPredictEventClient(c config) *PredictEventClient {
	return &PredictEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `predictevent.Hooks(f(g(h())))`.
func (c *PredictEventClient) Use(hooks ...Hook) {
	c.hooks.PredictEvent = append(c.hooks.PredictEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `predictevent.Intercept(f(g(h())))`.
func (c *PredictEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PredictEvent = append(c.inters.PredictEvent, interceptors...)
}

// Create returns a builder for creating a PredictEvent entity.
func (c *PredictEventClient) Create() *PredictEventCreate {
	mutation := newPredictEventMutation(c.config, OpCreate)
	return &PredictEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PredictEvent entities.
func (c *PredictEventClient) CreateBulk(builders ...*PredictEventCreate) *PredictEventCreateBulk {
	return &PredictEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PredictEventClient) MapCreateBulk(slice any, setFunc func(*PredictEventCreate, int)) *PredictEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PredictEventCreateBulk{err: fmt.Errorf("calling to PredictEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PredictEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PredictEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PredictEvent.
func (c *PredictEventClient) Update() *PredictEventUpdate {
	mutation := newPredictEventMutation(c.config, OpUpdate)
	return &PredictEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PredictEventClient) UpdateOne(_m *PredictEvent) *PredictEventUpdateOne {
	mutation := newPredictEventMutation(c.config, OpUpdateOne, withPredictEvent(_m))
	return &PredictEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PredictEventClient) UpdateOneID(id int) *PredictEventUpdateOne {
	mutation := newPredictEventMutation(c.config, OpUpdateOne, withPredictEventID(id))
	return &PredictEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PredictEvent.
func (c *PredictEventClient) Delete() *PredictEventDelete {
	mutation := newPredictEventMutation(c.config, OpDelete)
	return &PredictEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PredictEventClient) DeleteOne(_m *PredictEvent) *PredictEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PredictEventClient) DeleteOneID(id int) *PredictEventDeleteOne {
	builder := c.Delete().Where(predictevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PredictEventDeleteOne{builder}
}

// Query returns a query builder for PredictEvent.
func (c *PredictEventClient) Query() *PredictEventQuery {
	return &PredictEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePredictEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PredictEvent entity by its id.
func (c *PredictEventClient) Get(ctx context.Context, id int) (*PredictEvent, error) {
	return c.Query().Where(predictevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PredictEventClient) GetX(ctx context.Context, id int) *PredictEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PredictEventClient) Hooks() []Hook {
	return c.hooks.PredictEvent
}

// Interceptors returns the client interceptors.
func (c *PredictEventClient) Interceptors() []Interceptor {
	return c.inters.PredictEvent
}

func (c *PredictEventClient) mutate(ctx context.Context, m *PredictEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PredictEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PredictEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PredictEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PredictEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PredictEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		HistoryRecord, PredictEvent []ent.Hook
	}
	inters struct {
		HistoryRecord, PredictEvent []ent.Interceptor
	}
)
