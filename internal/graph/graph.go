package graph

import (
	"context"
	"errors"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Record is one row of a Cypher result, keyed by the RETURN aliases.
type Record = map[string]any

// Querier runs a single Cypher statement. Repositories depend on this
// interface so they can be tested without a live database.
type Querier interface {
	Run(ctx context.Context, cypher string, params map[string]any) ([]Record, error)
}

// Client wraps the Neo4j driver. The driver holds the connection pool;
// each Run acquires a session scoped to that one statement.
type Client struct {
	driver neo4j.DriverWithContext
}

func Connect(ctx context.Context, uri, user, pass string) (*Client, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, pass, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, err
	}

	return &Client{driver: driver}, nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

// Ping verifies the database is reachable (used by /ready).
func (c *Client) Ping(ctx context.Context) error {
	return c.driver.VerifyConnectivity(ctx)
}

// Run opens a session, executes one statement, collects all records, and
// closes the session on every path.
func (c *Client) Run(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}

	var records []Record
	for result.Next(ctx) {
		records = append(records, result.Record().AsMap())
	}

	return records, result.Err()
}

// IsConstraintViolation reports whether err is a schema constraint failure,
// e.g. creating a second User with an existing username.
func IsConstraintViolation(err error) bool {
	var neoErr *neo4j.Neo4jError
	if errors.As(err, &neoErr) {
		return neoErr.Code == "Neo.ClientError.Schema.ConstraintValidationFailed"
	}
	return false
}
