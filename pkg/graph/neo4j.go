package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type Neo4jClient struct {
	driver     neo4j.DriverWithContext
	database   string
	accessMode neo4j.AccessMode
}

var _ Client = (*Neo4jClient)(nil)

// NewNeo4jClient creates the shared driver. Connections are opened lazily by
// the driver's pool, so an unreachable database is only reported on first
// use or by VerifyConnectivity.
func NewNeo4jClient(opts Options) (*Neo4jClient, error) {
	if opts.URI == "" {
		return nil, ErrMissingURI
	}

	auth := neo4j.NoAuth()
	if opts.Username != "" {
		auth = neo4j.BasicAuth(opts.Username, opts.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(opts.URI, auth, func(c *neo4j.Config) {
		if opts.MaxConnections > 0 {
			c.MaxConnectionPoolSize = opts.MaxConnections
		}
		if opts.UserAgent != "" {
			c.UserAgent = opts.UserAgent
		}
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create graph driver: %w", err)
	}

	mode := neo4j.AccessModeRead
	if opts.AllowWrite {
		mode = neo4j.AccessModeWrite
	}

	return &Neo4jClient{
		driver:     driver,
		database:   opts.Database,
		accessMode: mode,
	}, nil
}

// Run executes the query in a session of its own. The session is closed on
// every return path, handing its connection back to the pool.
func (c *Neo4jClient) Run(ctx context.Context, query string, params map[string]any) (*Result, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.database,
		AccessMode:   c.accessMode,
	})
	defer func() { _ = session.Close(ctx) }()

	res, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, classify(err)
	}

	keys, err := res.Keys()
	if err != nil {
		return nil, classify(err)
	}

	records := make([]Record, 0)
	for res.Next(ctx) {
		records = append(records, NewRecord(res.Record()))
	}
	if err := res.Err(); err != nil {
		return nil, classify(err)
	}

	return &Result{Keys: keys, Records: records}, nil
}

func (c *Neo4jClient) VerifyConnectivity(ctx context.Context) error {
	if err := c.driver.VerifyConnectivity(ctx); err != nil {
		return classify(err)
	}
	return nil
}

func (c *Neo4jClient) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

// NewRecord materialises a driver record into a column to value mapping.
func NewRecord(rec *neo4j.Record) Record {
	record := make(Record, len(rec.Keys))
	for i, key := range rec.Keys {
		record[key] = Normalize(rec.Values[i])
	}
	return record
}

func classify(err error) error {
	if neo4j.IsConnectivityError(err) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}
