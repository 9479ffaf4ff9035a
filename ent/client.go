// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"visitor-iq/ent/migrate"

	"visitor-iq/ent/buyer"
	"visitor-iq/ent/company"
	"visitor-iq/ent/fingerprint"
	"visitor-iq/ent/identitylink"
	"visitor-iq/ent/merchant"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Buyer is the client for interacting with the Buyer builders.
	Buyer *BuyerClient
	// Company is the client for interacting with the Company builders.
	Company *CompanyClient
	// Fingerprint is the client for interacting with the Fingerprint builders.
	Fingerprint *FingerprintClient
	// IdentityLink is the client for interacting with the IdentityLink builders.
	IdentityLink *IdentityLinkClient
	// Merchant is the client for interacting with the Merchant builders.
	Merchant *MerchantClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Buyer = NewBuyerClient(c.config)
	c.Company = NewCompanyClient(c.config)
	c.Fingerprint = NewFingerprintClient(c.config)
	c.IdentityLink = NewIdentityLinkClient(c.config)
	c.Merchant = NewMerchantClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		Buyer:        NewBuyerClient(cfg),
		Company:      NewCompanyClient(cfg),
		Fingerprint:  NewFingerprintClient(cfg),
		IdentityLink: NewIdentityLinkClient(cfg),
		Merchant:     NewMerchantClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		Buyer:        NewBuyerClient(cfg),
		Company:      NewCompanyClient(cfg),
		Fingerprint:  NewFingerprintClient(cfg),
		IdentityLink: NewIdentityLinkClient(cfg),
		Merchant:     NewMerchantClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Buyer.
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
	c.Buyer.Use(hooks...)
	c.Company.Use(hooks...)
	c.Fingerprint.Use(hooks...)
	c.IdentityLink.Use(hooks...)
	c.Merchant.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Buyer.Intercept(interceptors...)
	c.Company.Intercept(interceptors...)
	c.Fingerprint.Intercept(interceptors...)
	c.IdentityLink.Intercept(interceptors...)
	c.Merchant.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BuyerMutation:
		return c.Buyer.mutate(ctx, m)
	case *CompanyMutation:
		return c.Company.mutate(ctx, m)
	case *FingerprintMutation:
		return c.Fingerprint.mutate(ctx, m)
	case *IdentityLinkMutation:
		return c.IdentityLink.mutate(ctx, m)
	case *MerchantMutation:
		return c.Merchant.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BuyerClient is a client for the Buyer schema.
type BuyerClient struct {
	config
}

// NewBuyerClient returns a client for the Buyer from the given config.
func NewBuyerClient(c config) *BuyerClient {
	return &BuyerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `buyer.Hooks(f(g(h())))`.
func (c *BuyerClient) Use(hooks ...Hook) {
	c.hooks.Buyer = append(c.hooks.Buyer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `buyer.Intercept(f(g(h())))`.
func (c *BuyerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Buyer = append(c.inters.Buyer, interceptors...)
}

// Create returns a builder for creating a Buyer entity.
func (c *BuyerClient) Create() *BuyerCreate {
	mutation := newBuyerMutation(c.config, OpCreate)
	return &BuyerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Buyer entities.
func (c *BuyerClient) CreateBulk(builders ...*BuyerCreate) *BuyerCreateBulk {
	return &BuyerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BuyerClient) MapCreateBulk(slice any, setFunc func(*BuyerCreate, int)) *BuyerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BuyerCreateBulk{err: fmt.Errorf("calling to BuyerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BuyerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BuyerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Buyer.
func (c *BuyerClient) Update() *BuyerUpdate {
	mutation := newBuyerMutation(c.config, OpUpdate)
	return &BuyerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BuyerClient) UpdateOne(_m *Buyer) *BuyerUpdateOne {
	mutation := newBuyerMutation(c.config, OpUpdateOne, withBuyer(_m))
	return &BuyerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BuyerClient) UpdateOneID(id uuid.UUID) *BuyerUpdateOne {
	mutation := newBuyerMutation(c.config, OpUpdateOne, withBuyerID(id))
	return &BuyerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Buyer.
func (c *BuyerClient) Delete() *BuyerDelete {
	mutation := newBuyerMutation(c.config, OpDelete)
	return &BuyerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BuyerClient) DeleteOne(_m *Buyer) *BuyerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BuyerClient) DeleteOneID(id uuid.UUID) *BuyerDeleteOne {
	builder := c.Delete().Where(buyer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BuyerDeleteOne{builder}
}

// Query returns a query builder for Buyer.
func (c *BuyerClient) Query() *BuyerQuery {
	return &BuyerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBuyer},
		inters: c.Interceptors(),
	}
}

// Get returns a Buyer entity by its id.
func (c *BuyerClient) Get(ctx context.Context, id uuid.UUID) (*Buyer, error) {
	return c.Query().Where(buyer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BuyerClient) GetX(ctx context.Context, id uuid.UUID) *Buyer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMerchant queries the merchant edge of a Buyer.
func (c *BuyerClient) QueryMerchant(_m *Buyer) *MerchantQuery {
	query := (&MerchantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(buyer.Table, buyer.FieldID, id),
			sqlgraph.To(merchant.Table, merchant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, buyer.MerchantTable, buyer.MerchantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCompany queries the company edge of a Buyer.
func (c *BuyerClient) QueryCompany(_m *Buyer) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(buyer.Table, buyer.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, buyer.CompanyTable, buyer.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BuyerClient) Hooks() []Hook {
	return c.hooks.Buyer
}

// Interceptors returns the client interceptors.
func (c *BuyerClient) Interceptors() []Interceptor {
	return c.inters.Buyer
}

func (c *BuyerClient) mutate(ctx context.Context, m *BuyerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BuyerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BuyerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BuyerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BuyerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Buyer mutation op: %q", m.Op())
	}
}

// CompanyClient is a client for the Company schema.
type CompanyClient struct {
	config
}

// NewCompanyClient returns a client for the Company from the given config.
func NewCompanyClient(c config) *CompanyClient {
	return &CompanyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `company.Hooks(f(g(h())))`.
func (c *CompanyClient) Use(hooks ...Hook) {
	c.hooks.Company = append(c.hooks.Company, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `company.Intercept(f(g(h())))`.
func (c *CompanyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Company = append(c.inters.Company, interceptors...)
}

// Create returns a builder for creating a Company entity.
func (c *CompanyClient) Create() *CompanyCreate {
	mutation := newCompanyMutation(c.config, OpCreate)
	return &CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Company entities.
func (c *CompanyClient) CreateBulk(builders ...*CompanyCreate) *CompanyCreateBulk {
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompanyClient) MapCreateBulk(slice any, setFunc func(*CompanyCreate, int)) *CompanyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompanyCreateBulk{err: fmt.Errorf("calling to CompanyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompanyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Company.
func (c *CompanyClient) Update() *CompanyUpdate {
	mutation := newCompanyMutation(c.config, OpUpdate)
	return &CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompanyClient) UpdateOne(_m *Company) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompany(_m))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompanyClient) UpdateOneID(id uuid.UUID) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompanyID(id))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Company.
func (c *CompanyClient) Delete() *CompanyDelete {
	mutation := newCompanyMutation(c.config, OpDelete)
	return &CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompanyClient) DeleteOne(_m *Company) *CompanyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompanyClient) DeleteOneID(id uuid.UUID) *CompanyDeleteOne {
	builder := c.Delete().Where(company.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompanyDeleteOne{builder}
}

// Query returns a query builder for Company.
func (c *CompanyClient) Query() *CompanyQuery {
	return &CompanyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompany},
		inters: c.Interceptors(),
	}
}

// Get returns a Company entity by its id.
func (c *CompanyClient) Get(ctx context.Context, id uuid.UUID) (*Company, error) {
	return c.Query().Where(company.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompanyClient) GetX(ctx context.Context, id uuid.UUID) *Company {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBuyers queries the buyers edge of a Company.
func (c *CompanyClient) QueryBuyers(_m *Company) *BuyerQuery {
	query := (&BuyerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(buyer.Table, buyer.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, company.BuyersTable, company.BuyersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompanyClient) Hooks() []Hook {
	return c.hooks.Company
}

// Interceptors returns the client interceptors.
func (c *CompanyClient) Interceptors() []Interceptor {
	return c.inters.Company
}

func (c *CompanyClient) mutate(ctx context.Context, m *CompanyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Company mutation op: %q", m.Op())
	}
}

// FingerprintClient is a client for the Fingerprint schema.
type FingerprintClient struct {
	config
}

// NewFingerprintClient returns a client for the Fingerprint from the given config.
func NewFingerprintClient(c config) *FingerprintClient {
	return &FingerprintClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fingerprint.Hooks(f(g(h())))`.
func (c *FingerprintClient) Use(hooks ...Hook) {
	c.hooks.Fingerprint = append(c.hooks.Fingerprint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fingerprint.Intercept(f(g(h())))`.
func (c *FingerprintClient) Intercept(interceptors ...Interceptor) {
	c.inters.Fingerprint = append(c.inters.Fingerprint, interceptors...)
}

// Create returns a builder for creating a Fingerprint entity.
func (c *FingerprintClient) Create() *FingerprintCreate {
	mutation := newFingerprintMutation(c.config, OpCreate)
	return &FingerprintCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Fingerprint entities.
func (c *FingerprintClient) CreateBulk(builders ...*FingerprintCreate) *FingerprintCreateBulk {
	return &FingerprintCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FingerprintClient) MapCreateBulk(slice any, setFunc func(*FingerprintCreate, int)) *FingerprintCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FingerprintCreateBulk{err: fmt.Errorf("calling to FingerprintClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FingerprintCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FingerprintCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Fingerprint.
func (c *FingerprintClient) Update() *FingerprintUpdate {
	mutation := newFingerprintMutation(c.config, OpUpdate)
	return &FingerprintUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FingerprintClient) UpdateOne(_m *Fingerprint) *FingerprintUpdateOne {
	mutation := newFingerprintMutation(c.config, OpUpdateOne, withFingerprint(_m))
	return &FingerprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FingerprintClient) UpdateOneID(id uuid.UUID) *FingerprintUpdateOne {
	mutation := newFingerprintMutation(c.config, OpUpdateOne, withFingerprintID(id))
	return &FingerprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Fingerprint.
func (c *FingerprintClient) Delete() *FingerprintDelete {
	mutation := newFingerprintMutation(c.config, OpDelete)
	return &FingerprintDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FingerprintClient) DeleteOne(_m *Fingerprint) *FingerprintDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FingerprintClient) DeleteOneID(id uuid.UUID) *FingerprintDeleteOne {
	builder := c.Delete().Where(fingerprint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FingerprintDeleteOne{builder}
}

// Query returns a query builder for Fingerprint.
func (c *FingerprintClient) Query() *FingerprintQuery {
	return &FingerprintQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFingerprint},
		inters: c.Interceptors(),
	}
}

// Get returns a Fingerprint entity by its id.
func (c *FingerprintClient) Get(ctx context.Context, id uuid.UUID) (*Fingerprint, error) {
	return c.Query().Where(fingerprint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FingerprintClient) GetX(ctx context.Context, id uuid.UUID) *Fingerprint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMerchant queries the merchant edge of a Fingerprint.
func (c *FingerprintClient) QueryMerchant(_m *Fingerprint) *MerchantQuery {
	query := (&MerchantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fingerprint.Table, fingerprint.FieldID, id),
			sqlgraph.To(merchant.Table, merchant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fingerprint.MerchantTable, fingerprint.MerchantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryIdentityLinks queries the identity_links edge of a Fingerprint.
func (c *FingerprintClient) QueryIdentityLinks(_m *Fingerprint) *IdentityLinkQuery {
	query := (&IdentityLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fingerprint.Table, fingerprint.FieldID, id),
			sqlgraph.To(identitylink.Table, identitylink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, fingerprint.IdentityLinksTable, fingerprint.IdentityLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FingerprintClient) Hooks() []Hook {
	return c.hooks.Fingerprint
}

// Interceptors returns the client interceptors.
func (c *FingerprintClient) Interceptors() []Interceptor {
	return c.inters.Fingerprint
}

func (c *FingerprintClient) mutate(ctx context.Context, m *FingerprintMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FingerprintCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FingerprintUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FingerprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FingerprintDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Fingerprint mutation op: %q", m.Op())
	}
}

// IdentityLinkClient is a client for the IdentityLink schema.
type IdentityLinkClient struct {
	config
}

// NewIdentityLinkClient returns a client for the IdentityLink from the given config.
func NewIdentityLinkClient(c config) *IdentityLinkClient {
	return &IdentityLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `identitylink.Hooks(f(g(h())))`.
func (c *IdentityLinkClient) Use(hooks ...Hook) {
	c.hooks.IdentityLink = append(c.hooks.IdentityLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `identitylink.Intercept(f(g(h())))`.
func (c *IdentityLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.IdentityLink = append(c.inters.IdentityLink, interceptors...)
}

// Create returns a builder for creating a IdentityLink entity.
func (c *IdentityLinkClient) Create() *IdentityLinkCreate {
	mutation := newIdentityLinkMutation(c.config, OpCreate)
	return &IdentityLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IdentityLink entities.
func (c *IdentityLinkClient) CreateBulk(builders ...*IdentityLinkCreate) *IdentityLinkCreateBulk {
	return &IdentityLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IdentityLinkClient) MapCreateBulk(slice any, setFunc func(*IdentityLinkCreate, int)) *IdentityLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IdentityLinkCreateBulk{err: fmt.Errorf("calling to IdentityLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IdentityLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IdentityLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IdentityLink.
func (c *IdentityLinkClient) Update() *IdentityLinkUpdate {
	mutation := newIdentityLinkMutation(c.config, OpUpdate)
	return &IdentityLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IdentityLinkClient) UpdateOne(_m *IdentityLink) *IdentityLinkUpdateOne {
	mutation := newIdentityLinkMutation(c.config, OpUpdateOne, withIdentityLink(_m))
	return &IdentityLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IdentityLinkClient) UpdateOneID(id uuid.UUID) *IdentityLinkUpdateOne {
	mutation := newIdentityLinkMutation(c.config, OpUpdateOne, withIdentityLinkID(id))
	return &IdentityLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IdentityLink.
func (c *IdentityLinkClient) Delete() *IdentityLinkDelete {
	mutation := newIdentityLinkMutation(c.config, OpDelete)
	return &IdentityLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IdentityLinkClient) DeleteOne(_m *IdentityLink) *IdentityLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IdentityLinkClient) DeleteOneID(id uuid.UUID) *IdentityLinkDeleteOne {
	builder := c.Delete().Where(identitylink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IdentityLinkDeleteOne{builder}
}

// Query returns a query builder for IdentityLink.
func (c *IdentityLinkClient) Query() *IdentityLinkQuery {
	return &IdentityLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIdentityLink},
		inters: c.Interceptors(),
	}
}

// Get returns a IdentityLink entity by its id.
func (c *IdentityLinkClient) Get(ctx context.Context, id uuid.UUID) (*IdentityLink, error) {
	return c.Query().Where(identitylink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IdentityLinkClient) GetX(ctx context.Context, id uuid.UUID) *IdentityLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMerchant queries the merchant edge of a IdentityLink.
func (c *IdentityLinkClient) QueryMerchant(_m *IdentityLink) *MerchantQuery {
	query := (&MerchantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(identitylink.Table, identitylink.FieldID, id),
			sqlgraph.To(merchant.Table, merchant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, identitylink.MerchantTable, identitylink.MerchantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFingerprint queries the fingerprint edge of a IdentityLink.
func (c *IdentityLinkClient) QueryFingerprint(_m *IdentityLink) *FingerprintQuery {
	query := (&FingerprintClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(identitylink.Table, identitylink.FieldID, id),
			sqlgraph.To(fingerprint.Table, fingerprint.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, identitylink.FingerprintTable, identitylink.FingerprintColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBuyer queries the buyer edge of a IdentityLink.
func (c *IdentityLinkClient) QueryBuyer(_m *IdentityLink) *BuyerQuery {
	query := (&BuyerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(identitylink.Table, identitylink.FieldID, id),
			sqlgraph.To(buyer.Table, buyer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, identitylink.BuyerTable, identitylink.BuyerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IdentityLinkClient) Hooks() []Hook {
	return c.hooks.IdentityLink
}

// Interceptors returns the client interceptors.
func (c *IdentityLinkClient) Interceptors() []Interceptor {
	return c.inters.IdentityLink
}

func (c *IdentityLinkClient) mutate(ctx context.Context, m *IdentityLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IdentityLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IdentityLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IdentityLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IdentityLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IdentityLink mutation op: %q", m.Op())
	}
}

// MerchantClient is a client for the Merchant schema.
type MerchantClient struct {
	config
}

// NewMerchantClient returns a client for the Merchant from the given config.
func NewMerchantClient(c config) *MerchantClient {
	return &MerchantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `merchant.Hooks(f(g(h())))`.
func (c *MerchantClient) Use(hooks ...Hook) {
	c.hooks.Merchant = append(c.hooks.Merchant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `merchant.Intercept(f(g(h())))`.
func (c *MerchantClient) Intercept(interceptors ...Interceptor) {
	c.inters.Merchant = append(c.inters.Merchant, interceptors...)
}

// Create returns a builder for creating a Merchant entity.
func (c *MerchantClient) Create() *MerchantCreate {
	mutation := newMerchantMutation(c.config, OpCreate)
	return &MerchantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Merchant entities.
func (c *MerchantClient) CreateBulk(builders ...*MerchantCreate) *MerchantCreateBulk {
	return &MerchantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MerchantClient) MapCreateBulk(slice any, setFunc func(*MerchantCreate, int)) *MerchantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MerchantCreateBulk{err: fmt.Errorf("calling to MerchantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MerchantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MerchantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Merchant.
func (c *MerchantClient) Update() *MerchantUpdate {
	mutation := newMerchantMutation(c.config, OpUpdate)
	return &MerchantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MerchantClient) UpdateOne(_m *Merchant) *MerchantUpdateOne {
	mutation := newMerchantMutation(c.config, OpUpdateOne, withMerchant(_m))
	return &MerchantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MerchantClient) UpdateOneID(id uuid.UUID) *MerchantUpdateOne {
	mutation := newMerchantMutation(c.config, OpUpdateOne, withMerchantID(id))
	return &MerchantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Merchant.
func (c *MerchantClient) Delete() *MerchantDelete {
	mutation := newMerchantMutation(c.config, OpDelete)
	return &MerchantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MerchantClient) DeleteOne(_m *Merchant) *MerchantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MerchantClient) DeleteOneID(id uuid.UUID) *MerchantDeleteOne {
	builder := c.Delete().Where(merchant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MerchantDeleteOne{builder}
}

// Query returns a query builder for Merchant.
func (c *MerchantClient) Query() *MerchantQuery {
	return &MerchantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMerchant},
		inters: c.Interceptors(),
	}
}

// Get returns a Merchant entity by its id.
func (c *MerchantClient) Get(ctx context.Context, id uuid.UUID) (*Merchant, error) {
	return c.Query().Where(merchant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MerchantClient) GetX(ctx context.Context, id uuid.UUID) *Merchant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFingerprints queries the fingerprints edge of a Merchant.
func (c *MerchantClient) QueryFingerprints(_m *Merchant) *FingerprintQuery {
	query := (&FingerprintClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(merchant.Table, merchant.FieldID, id),
			sqlgraph.To(fingerprint.Table, fingerprint.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, merchant.FingerprintsTable, merchant.FingerprintsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryIdentityLinks queries the identity_links edge of a Merchant.
func (c *MerchantClient) QueryIdentityLinks(_m *Merchant) *IdentityLinkQuery {
	query := (&IdentityLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(merchant.Table, merchant.FieldID, id),
			sqlgraph.To(identitylink.Table, identitylink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, merchant.IdentityLinksTable, merchant.IdentityLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBuyers queries the buyers edge of a Merchant.
func (c *MerchantClient) QueryBuyers(_m *Merchant) *BuyerQuery {
	query := (&BuyerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(merchant.Table, merchant.FieldID, id),
			sqlgraph.To(buyer.Table, buyer.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, merchant.BuyersTable, merchant.BuyersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MerchantClient) Hooks() []Hook {
	return c.hooks.Merchant
}

// Interceptors returns the client interceptors.
func (c *MerchantClient) Interceptors() []Interceptor {
	return c.inters.Merchant
}

func (c *MerchantClient) mutate(ctx context.Context, m *MerchantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MerchantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MerchantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MerchantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MerchantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Merchant mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Buyer, Company, Fingerprint, IdentityLink, Merchant []ent.Hook
	}
	inters struct {
		Buyer, Company, Fingerprint, IdentityLink, Merchant []ent.Interceptor
	}
)
