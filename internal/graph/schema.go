package graph

import "context"

// Schema constraints. Username uniqueness lives here so a concurrent
// signup with the same name fails at CREATE instead of racing a pre-check.
var constraints = []string{
	`CREATE CONSTRAINT user_id_unique IF NOT EXISTS FOR (u:User) REQUIRE u.id IS UNIQUE`,
	`CREATE CONSTRAINT user_username_unique IF NOT EXISTS FOR (u:User) REQUIRE u.username IS UNIQUE`,
	`CREATE CONSTRAINT product_id_unique IF NOT EXISTS FOR (p:Product) REQUIRE p.id IS UNIQUE`,
}

// EnsureSchema applies the uniqueness constraints. Safe to run on every
// startup; IF NOT EXISTS makes it a no-op once applied.
func (c *Client) EnsureSchema(ctx context.Context) error {
	for _, stmt := range constraints {
		if _, err := c.Run(ctx, stmt, nil); err != nil {
			return err
		}
	}
	return nil
}
