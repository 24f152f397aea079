// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"agroadvisor/internal/ent/migrate"

	"agroadvisor/internal/ent/diseaseanalysis"
	"agroadvisor/internal/ent/fertilizerplan"
	"agroadvisor/internal/ent/marketsnapshot"
	"agroadvisor/internal/ent/revokedtoken"
	"agroadvisor/internal/ent/soilreport"
	"agroadvisor/internal/ent/user"
	"agroadvisor/internal/ent/weathersnapshot"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DiseaseAnalysis is the client for interacting with the DiseaseAnalysis builders.
	DiseaseAnalysis *DiseaseAnalysisClient
	// FertilizerPlan is the client for interacting with the FertilizerPlan builders.
	FertilizerPlan *FertilizerPlanClient
	// MarketSnapshot is the client for interacting with the MarketSnapshot builders.
	MarketSnapshot *MarketSnapshotClient
	// RevokedToken is the client for interacting with the RevokedToken builders.
	RevokedToken *RevokedTokenClient
	// SoilReport is the client for interacting with the SoilReport builders.
	SoilReport *SoilReportClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// WeatherSnapshot is the client for interacting with the WeatherSnapshot builders.
	WeatherSnapshot *WeatherSnapshotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DiseaseAnalysis = NewDiseaseAnalysisClient(c.config)
	c.FertilizerPlan = NewFertilizerPlanClient(c.config)
	c.MarketSnapshot = NewMarketSnapshotClient(c.config)
	c.RevokedToken = NewRevokedTokenClient(c.config)
	c.SoilReport = NewSoilReportClient(c.config)
	c.User = NewUserClient(c.config)
	c.WeatherSnapshot = NewWeatherSnapshotClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		DiseaseAnalysis: NewDiseaseAnalysisClient(cfg),
		FertilizerPlan:  NewFertilizerPlanClient(cfg),
		MarketSnapshot:  NewMarketSnapshotClient(cfg),
		RevokedToken:    NewRevokedTokenClient(cfg),
		SoilReport:      NewSoilReportClient(cfg),
		User:            NewUserClient(cfg),
		WeatherSnapshot: NewWeatherSnapshotClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		DiseaseAnalysis: NewDiseaseAnalysisClient(cfg),
		FertilizerPlan:  NewFertilizerPlanClient(cfg),
		MarketSnapshot:  NewMarketSnapshotClient(cfg),
		RevokedToken:    NewRevokedTokenClient(cfg),
		SoilReport:      NewSoilReportClient(cfg),
		User:            NewUserClient(cfg),
		WeatherSnapshot: NewWeatherSnapshotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DiseaseAnalysis.
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
		c.DiseaseAnalysis, c.FertilizerPlan, c.MarketSnapshot, c.RevokedToken,
		c.SoilReport, c.User, c.WeatherSnapshot,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.DiseaseAnalysis, c.FertilizerPlan, c.MarketSnapshot, c.RevokedToken,
		c.SoilReport, c.User, c.WeatherSnapshot,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DiseaseAnalysisMutation:
		return c.DiseaseAnalysis.mutate(ctx, m)
	case *FertilizerPlanMutation:
		return c.FertilizerPlan.mutate(ctx, m)
	case *MarketSnapshotMutation:
		return c.MarketSnapshot.mutate(ctx, m)
	case *RevokedTokenMutation:
		return c.RevokedToken.mutate(ctx, m)
	case *SoilReportMutation:
		return c.SoilReport.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *WeatherSnapshotMutation:
		return c.WeatherSnapshot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DiseaseAnalysisClient is a client for the DiseaseAnalysis schema.
type DiseaseAnalysisClient struct {
	config
}

// NewDiseaseAnalysisClient returns a client for the DiseaseAnalysis from the given config.
func NewDiseaseAnalysisClient(c config) *DiseaseAnalysisClient {
	return &DiseaseAnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `diseaseanalysis.Hooks(f(g(h())))`.
func (c *DiseaseAnalysisClient) Use(hooks ...Hook) {
	c.hooks.DiseaseAnalysis = append(c.hooks.DiseaseAnalysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `diseaseanalysis.Intercept(f(g(h())))`.
func (c *DiseaseAnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.DiseaseAnalysis = append(c.inters.DiseaseAnalysis, interceptors...)
}

// Create returns a builder for creating a DiseaseAnalysis entity.
func (c *DiseaseAnalysisClient) Create() *DiseaseAnalysisCreate {
	mutation := newDiseaseAnalysisMutation(c.config, OpCreate)
	return &DiseaseAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DiseaseAnalysis entities.
func (c *DiseaseAnalysisClient) CreateBulk(builders ...*DiseaseAnalysisCreate) *DiseaseAnalysisCreateBulk {
	return &DiseaseAnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DiseaseAnalysisClient) MapCreateBulk(slice any, setFunc func(*DiseaseAnalysisCreate, int)) *DiseaseAnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DiseaseAnalysisCreateBulk{err: fmt.Errorf("calling to DiseaseAnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DiseaseAnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DiseaseAnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DiseaseAnalysis.
func (c *DiseaseAnalysisClient) Update() *DiseaseAnalysisUpdate {
	mutation := newDiseaseAnalysisMutation(c.config, OpUpdate)
	return &DiseaseAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DiseaseAnalysisClient) UpdateOne(_m *DiseaseAnalysis) *DiseaseAnalysisUpdateOne {
	mutation := newDiseaseAnalysisMutation(c.config, OpUpdateOne, withDiseaseAnalysis(_m))
	return &DiseaseAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DiseaseAnalysisClient) UpdateOneID(id uuid.UUID) *DiseaseAnalysisUpdateOne {
	mutation := newDiseaseAnalysisMutation(c.config, OpUpdateOne, withDiseaseAnalysisID(id))
	return &DiseaseAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DiseaseAnalysis.
func (c *DiseaseAnalysisClient) Delete() *DiseaseAnalysisDelete {
	mutation := newDiseaseAnalysisMutation(c.config, OpDelete)
	return &DiseaseAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DiseaseAnalysisClient) DeleteOne(_m *DiseaseAnalysis) *DiseaseAnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DiseaseAnalysisClient) DeleteOneID(id uuid.UUID) *DiseaseAnalysisDeleteOne {
	builder := c.Delete().Where(diseaseanalysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DiseaseAnalysisDeleteOne{builder}
}

// Query returns a query builder for DiseaseAnalysis.
func (c *DiseaseAnalysisClient) Query() *DiseaseAnalysisQuery {
	return &DiseaseAnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDiseaseAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a DiseaseAnalysis entity by its id.
func (c *DiseaseAnalysisClient) Get(ctx context.Context, id uuid.UUID) (*DiseaseAnalysis, error) {
	return c.Query().Where(diseaseanalysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DiseaseAnalysisClient) GetX(ctx context.Context, id uuid.UUID) *DiseaseAnalysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DiseaseAnalysisClient) Hooks() []Hook {
	return c.hooks.DiseaseAnalysis
}

// Interceptors returns the client interceptors.
func (c *DiseaseAnalysisClient) Interceptors() []Interceptor {
	return c.inters.DiseaseAnalysis
}

func (c *DiseaseAnalysisClient) mutate(ctx context.Context, m *DiseaseAnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DiseaseAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DiseaseAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DiseaseAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DiseaseAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DiseaseAnalysis mutation op: %q", m.Op())
	}
}

// FertilizerPlanClient is a client for the FertilizerPlan schema.
type FertilizerPlanClient struct {
	config
}

// NewFertilizerPlanClient returns a client for the FertilizerPlan from the given config.
func NewFertilizerPlanClient(c config) *FertilizerPlanClient {
	return &FertilizerPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fertilizerplan.Hooks(f(g(h())))`.
func (c *FertilizerPlanClient) Use(hooks ...Hook) {
	c.hooks.FertilizerPlan = append(c.hooks.FertilizerPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fertilizerplan.Intercept(f(g(h())))`.
func (c *FertilizerPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.FertilizerPlan = append(c.inters.FertilizerPlan, interceptors...)
}

// Create returns a builder for creating a FertilizerPlan entity.
func (c *FertilizerPlanClient) Create() *FertilizerPlanCreate {
	mutation := newFertilizerPlanMutation(c.config, OpCreate)
	return &FertilizerPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FertilizerPlan entities.
func (c *FertilizerPlanClient) CreateBulk(builders ...*FertilizerPlanCreate) *FertilizerPlanCreateBulk {
	return &FertilizerPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FertilizerPlanClient) MapCreateBulk(slice any, setFunc func(*FertilizerPlanCreate, int)) *FertilizerPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FertilizerPlanCreateBulk{err: fmt.Errorf("calling to FertilizerPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FertilizerPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FertilizerPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FertilizerPlan.
func (c *FertilizerPlanClient) Update() *FertilizerPlanUpdate {
	mutation := newFertilizerPlanMutation(c.config, OpUpdate)
	return &FertilizerPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FertilizerPlanClient) UpdateOne(_m *FertilizerPlan) *FertilizerPlanUpdateOne {
	mutation := newFertilizerPlanMutation(c.config, OpUpdateOne, withFertilizerPlan(_m))
	return &FertilizerPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FertilizerPlanClient) UpdateOneID(id uuid.UUID) *FertilizerPlanUpdateOne {
	mutation := newFertilizerPlanMutation(c.config, OpUpdateOne, withFertilizerPlanID(id))
	return &FertilizerPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FertilizerPlan.
func (c *FertilizerPlanClient) Delete() *FertilizerPlanDelete {
	mutation := newFertilizerPlanMutation(c.config, OpDelete)
	return &FertilizerPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FertilizerPlanClient) DeleteOne(_m *FertilizerPlan) *FertilizerPlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FertilizerPlanClient) DeleteOneID(id uuid.UUID) *FertilizerPlanDeleteOne {
	builder := c.Delete().Where(fertilizerplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FertilizerPlanDeleteOne{builder}
}

// Query returns a query builder for FertilizerPlan.
func (c *FertilizerPlanClient) Query() *FertilizerPlanQuery {
	return &FertilizerPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFertilizerPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a FertilizerPlan entity by its id.
func (c *FertilizerPlanClient) Get(ctx context.Context, id uuid.UUID) (*FertilizerPlan, error) {
	return c.Query().Where(fertilizerplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FertilizerPlanClient) GetX(ctx context.Context, id uuid.UUID) *FertilizerPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FertilizerPlanClient) Hooks() []Hook {
	return c.hooks.FertilizerPlan
}

// Interceptors returns the client interceptors.
func (c *FertilizerPlanClient) Interceptors() []Interceptor {
	return c.inters.FertilizerPlan
}

func (c *FertilizerPlanClient) mutate(ctx context.Context, m *FertilizerPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FertilizerPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FertilizerPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FertilizerPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FertilizerPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FertilizerPlan mutation op: %q", m.Op())
	}
}

// MarketSnapshotClient is a client for the MarketSnapshot schema.
type MarketSnapshotClient struct {
	config
}

// NewMarketSnapshotClient returns a client for the MarketSnapshot from the given config.
func NewMarketSnapshotClient(c config) *MarketSnapshotClient {
	return &MarketSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `marketsnapshot.Hooks(f(g(h())))`.
func (c *MarketSnapshotClient) Use(hooks ...Hook) {
	c.hooks.MarketSnapshot = append(c.hooks.MarketSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `marketsnapshot.Intercept(f(g(h())))`.
func (c *MarketSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.MarketSnapshot = append(c.inters.MarketSnapshot, interceptors...)
}

// Create returns a builder for creating a MarketSnapshot entity.
func (c *MarketSnapshotClient) Create() *MarketSnapshotCreate {
	mutation := newMarketSnapshotMutation(c.config, OpCreate)
	return &MarketSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MarketSnapshot entities.
func (c *MarketSnapshotClient) CreateBulk(builders ...*MarketSnapshotCreate) *MarketSnapshotCreateBulk {
	return &MarketSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MarketSnapshotClient) MapCreateBulk(slice any, setFunc func(*MarketSnapshotCreate, int)) *MarketSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MarketSnapshotCreateBulk{err: fmt.Errorf("calling to MarketSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MarketSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MarketSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MarketSnapshot.
func (c *MarketSnapshotClient) Update() *MarketSnapshotUpdate {
	mutation := newMarketSnapshotMutation(c.config, OpUpdate)
	return &MarketSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MarketSnapshotClient) UpdateOne(_m *MarketSnapshot) *MarketSnapshotUpdateOne {
	mutation := newMarketSnapshotMutation(c.config, OpUpdateOne, withMarketSnapshot(_m))
	return &MarketSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MarketSnapshotClient) UpdateOneID(id uuid.UUID) *MarketSnapshotUpdateOne {
	mutation := newMarketSnapshotMutation(c.config, OpUpdateOne, withMarketSnapshotID(id))
	return &MarketSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MarketSnapshot.
func (c *MarketSnapshotClient) Delete() *MarketSnapshotDelete {
	mutation := newMarketSnapshotMutation(c.config, OpDelete)
	return &MarketSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MarketSnapshotClient) DeleteOne(_m *MarketSnapshot) *MarketSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MarketSnapshotClient) DeleteOneID(id uuid.UUID) *MarketSnapshotDeleteOne {
	builder := c.Delete().Where(marketsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MarketSnapshotDeleteOne{builder}
}

// Query returns a query builder for MarketSnapshot.
func (c *MarketSnapshotClient) Query() *MarketSnapshotQuery {
	return &MarketSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMarketSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a MarketSnapshot entity by its id.
func (c *MarketSnapshotClient) Get(ctx context.Context, id uuid.UUID) (*MarketSnapshot, error) {
	return c.Query().Where(marketsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MarketSnapshotClient) GetX(ctx context.Context, id uuid.UUID) *MarketSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MarketSnapshotClient) Hooks() []Hook {
	return c.hooks.MarketSnapshot
}

// Interceptors returns the client interceptors.
func (c *MarketSnapshotClient) Interceptors() []Interceptor {
	return c.inters.MarketSnapshot
}

func (c *MarketSnapshotClient) mutate(ctx context.Context, m *MarketSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MarketSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MarketSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MarketSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MarketSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MarketSnapshot mutation op: %q", m.Op())
	}
}

// RevokedTokenClient is a client for the RevokedToken schema.
type RevokedTokenClient struct {
	config
}

// NewRevokedTokenClient returns a client for the RevokedToken from the given config.
func NewRevokedTokenClient(c config) *RevokedTokenClient {
	return &RevokedTokenClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `revokedtoken.Hooks(f(g(h())))`.
func (c *RevokedTokenClient) Use(hooks ...Hook) {
	c.hooks.RevokedToken = append(c.hooks.RevokedToken, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `revokedtoken.Intercept(f(g(h())))`.
func (c *RevokedTokenClient) Intercept(interceptors ...Interceptor) {
	c.inters.RevokedToken = append(c.inters.RevokedToken, interceptors...)
}

// Create returns a builder for creating a RevokedToken entity.
func (c *RevokedTokenClient) Create() *RevokedTokenCreate {
	mutation := newRevokedTokenMutation(c.config, OpCreate)
	return &RevokedTokenCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RevokedToken entities.
func (c *RevokedTokenClient) CreateBulk(builders ...*RevokedTokenCreate) *RevokedTokenCreateBulk {
	return &RevokedTokenCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RevokedTokenClient) MapCreateBulk(slice any, setFunc func(*RevokedTokenCreate, int)) *RevokedTokenCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RevokedTokenCreateBulk{err: fmt.Errorf("calling to RevokedTokenClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RevokedTokenCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RevokedTokenCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RevokedToken.
func (c *RevokedTokenClient) Update() *RevokedTokenUpdate {
	mutation := newRevokedTokenMutation(c.config, OpUpdate)
	return &RevokedTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RevokedTokenClient) UpdateOne(_m *RevokedToken) *RevokedTokenUpdateOne {
	mutation := newRevokedTokenMutation(c.config, OpUpdateOne, withRevokedToken(_m))
	return &RevokedTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RevokedTokenClient) UpdateOneID(id int) *RevokedTokenUpdateOne {
	mutation := newRevokedTokenMutation(c.config, OpUpdateOne, withRevokedTokenID(id))
	return &RevokedTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RevokedToken.
func (c *RevokedTokenClient) Delete() *RevokedTokenDelete {
	mutation := newRevokedTokenMutation(c.config, OpDelete)
	return &RevokedTokenDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RevokedTokenClient) DeleteOne(_m *RevokedToken) *RevokedTokenDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RevokedTokenClient) DeleteOneID(id int) *RevokedTokenDeleteOne {
	builder := c.Delete().Where(revokedtoken.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RevokedTokenDeleteOne{builder}
}

// Query returns a query builder for RevokedToken.
func (c *RevokedTokenClient) Query() *RevokedTokenQuery {
	return &RevokedTokenQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRevokedToken},
		inters: c.Interceptors(),
	}
}

// Get returns a RevokedToken entity by its id.
func (c *RevokedTokenClient) Get(ctx context.Context, id int) (*RevokedToken, error) {
	return c.Query().Where(revokedtoken.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RevokedTokenClient) GetX(ctx context.Context, id int) *RevokedToken {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RevokedTokenClient) Hooks() []Hook {
	return c.hooks.RevokedToken
}

// Interceptors returns the client interceptors.
func (c *RevokedTokenClient) Interceptors() []Interceptor {
	return c.inters.RevokedToken
}

func (c *RevokedTokenClient) mutate(ctx context.Context, m *RevokedTokenMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RevokedTokenCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RevokedTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RevokedTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RevokedTokenDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RevokedToken mutation op: %q", m.Op())
	}
}

// SoilReportClient is a client for the SoilReport schema.
type SoilReportClient struct {
	config
}

// NewSoilReportClient returns a client for the SoilReport from the given config.
func NewSoilReportClient(c config) *SoilReportClient {
	return &SoilReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `soilreport.Hooks(f(g(h())))`.
func (c *SoilReportClient) Use(hooks ...Hook) {
	c.hooks.SoilReport = append(c.hooks.SoilReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `soilreport.Intercept(f(g(h())))`.
func (c *SoilReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.SoilReport = append(c.inters.SoilReport, interceptors...)
}

// Create returns a builder for creating a SoilReport entity.
func (c *SoilReportClient) Create() *SoilReportCreate {
	mutation := newSoilReportMutation(c.config, OpCreate)
	return &SoilReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SoilReport entities.
func (c *SoilReportClient) CreateBulk(builders ...*SoilReportCreate) *SoilReportCreateBulk {
	return &SoilReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SoilReportClient) MapCreateBulk(slice any, setFunc func(*SoilReportCreate, int)) *SoilReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SoilReportCreateBulk{err: fmt.Errorf("calling to SoilReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SoilReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SoilReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SoilReport.
func (c *SoilReportClient) Update() *SoilReportUpdate {
	mutation := newSoilReportMutation(c.config, OpUpdate)
	return &SoilReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SoilReportClient) UpdateOne(_m *SoilReport) *SoilReportUpdateOne {
	mutation := newSoilReportMutation(c.config, OpUpdateOne, withSoilReport(_m))
	return &SoilReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SoilReportClient) UpdateOneID(id uuid.UUID) *SoilReportUpdateOne {
	mutation := newSoilReportMutation(c.config, OpUpdateOne, withSoilReportID(id))
	return &SoilReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SoilReport.
func (c *SoilReportClient) Delete() *SoilReportDelete {
	mutation := newSoilReportMutation(c.config, OpDelete)
	return &SoilReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SoilReportClient) DeleteOne(_m *SoilReport) *SoilReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SoilReportClient) DeleteOneID(id uuid.UUID) *SoilReportDeleteOne {
	builder := c.Delete().Where(soilreport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SoilReportDeleteOne{builder}
}

// Query returns a query builder for SoilReport.
func (c *SoilReportClient) Query() *SoilReportQuery {
	return &SoilReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSoilReport},
		inters: c.Interceptors(),
	}
}

// Get returns a SoilReport entity by its id.
func (c *SoilReportClient) Get(ctx context.Context, id uuid.UUID) (*SoilReport, error) {
	return c.Query().Where(soilreport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SoilReportClient) GetX(ctx context.Context, id uuid.UUID) *SoilReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SoilReportClient) Hooks() []Hook {
	return c.hooks.SoilReport
}

// Interceptors returns the client interceptors.
func (c *SoilReportClient) Interceptors() []Interceptor {
	return c.inters.SoilReport
}

func (c *SoilReportClient) mutate(ctx context.Context, m *SoilReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SoilReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SoilReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SoilReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SoilReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SoilReport mutation op: %q", m.Op())
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
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
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
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
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
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
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

// WeatherSnapshotClient is a client for the WeatherSnapshot schema.
type WeatherSnapshotClient struct {
	config
}

// NewWeatherSnapshotClient returns a client for the WeatherSnapshot from the given config.
func NewWeatherSnapshotClient(c config) *WeatherSnapshotClient {
	return &WeatherSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `weathersnapshot.Hooks(f(g(h())))`.
func (c *WeatherSnapshotClient) Use(hooks ...Hook) {
	c.hooks.WeatherSnapshot = append(c.hooks.WeatherSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `weathersnapshot.Intercept(f(g(h())))`.
func (c *WeatherSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.WeatherSnapshot = append(c.inters.WeatherSnapshot, interceptors...)
}

// Create returns a builder for creating a WeatherSnapshot entity.
func (c *WeatherSnapshotClient) Create() *WeatherSnapshotCreate {
	mutation := newWeatherSnapshotMutation(c.config, OpCreate)
	return &WeatherSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WeatherSnapshot entities.
func (c *WeatherSnapshotClient) CreateBulk(builders ...*WeatherSnapshotCreate) *WeatherSnapshotCreateBulk {
	return &WeatherSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WeatherSnapshotClient) MapCreateBulk(slice any, setFunc func(*WeatherSnapshotCreate, int)) *WeatherSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WeatherSnapshotCreateBulk{err: fmt.Errorf("calling to WeatherSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WeatherSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WeatherSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WeatherSnapshot.
func (c *WeatherSnapshotClient) Update() *WeatherSnapshotUpdate {
	mutation := newWeatherSnapshotMutation(c.config, OpUpdate)
	return &WeatherSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WeatherSnapshotClient) UpdateOne(_m *WeatherSnapshot) *WeatherSnapshotUpdateOne {
	mutation := newWeatherSnapshotMutation(c.config, OpUpdateOne, withWeatherSnapshot(_m))
	return &WeatherSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WeatherSnapshotClient) UpdateOneID(id uuid.UUID) *WeatherSnapshotUpdateOne {
	mutation := newWeatherSnapshotMutation(c.config, OpUpdateOne, withWeatherSnapshotID(id))
	return &WeatherSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WeatherSnapshot.
func (c *WeatherSnapshotClient) Delete() *WeatherSnapshotDelete {
	mutation := newWeatherSnapshotMutation(c.config, OpDelete)
	return &WeatherSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WeatherSnapshotClient) DeleteOne(_m *WeatherSnapshot) *WeatherSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WeatherSnapshotClient) DeleteOneID(id uuid.UUID) *WeatherSnapshotDeleteOne {
	builder := c.Delete().Where(weathersnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WeatherSnapshotDeleteOne{builder}
}

// Query returns a query builder for WeatherSnapshot.
func (c *WeatherSnapshotClient) Query() *WeatherSnapshotQuery {
	return &WeatherSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWeatherSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a WeatherSnapshot entity by its id.
func (c *WeatherSnapshotClient) Get(ctx context.Context, id uuid.UUID) (*WeatherSnapshot, error) {
	return c.Query().Where(weathersnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WeatherSnapshotClient) GetX(ctx context.Context, id uuid.UUID) *WeatherSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WeatherSnapshotClient) Hooks() []Hook {
	return c.hooks.WeatherSnapshot
}

// Interceptors returns the client interceptors.
func (c *WeatherSnapshotClient) Interceptors() []Interceptor {
	return c.inters.WeatherSnapshot
}

func (c *WeatherSnapshotClient) mutate(ctx context.Context, m *WeatherSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WeatherSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WeatherSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WeatherSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WeatherSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WeatherSnapshot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DiseaseAnalysis, FertilizerPlan, MarketSnapshot, RevokedToken, SoilReport, User,
		WeatherSnapshot []ent.Hook
	}
	inters struct {
		DiseaseAnalysis, FertilizerPlan, MarketSnapshot, RevokedToken, SoilReport, User,
		WeatherSnapshot []ent.Interceptor
	}
)
