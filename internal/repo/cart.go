package repo

import (
	"context"

	"github.com/tdhoang/marketgraph/internal/graph"
	"github.com/tdhoang/marketgraph/internal/models"
)

// ==========================
// CartRepo
// ==========================
type CartRepo struct {
	G graph.Querier
}

func NewCartRepo(g graph.Querier) *CartRepo {
	return &CartRepo{G: g}
}

// ==========================
// Add
// ==========================
// Add merges an ADDED_TO_CART edge between the user and the product.
// MERGE makes repeats a no-op, so the cart never holds duplicate edges.
// Zero records back means user or product does not exist -> ErrNotFound.
func (r *CartRepo) Add(ctx context.Context, userID, productID string) error {
	query := `
		MATCH (u:User {id: $uid}), (p:Product {id: $pid})
		MERGE (u)-[:ADDED_TO_CART]->(p)
		RETURN p.id AS id
	`

	records, err := r.G.Run(ctx, query, map[string]any{
		"uid": userID,
		"pid": productID,
	})
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return ErrNotFound
	}
	return nil
}

// ==========================
// List
// ==========================
func (r *CartRepo) List(ctx context.Context, userID string) ([]models.Product, error) {
	query := `
		MATCH (u:User {id: $uid})-[:ADDED_TO_CART]->(p:Product)
		RETURN p.id AS id, p.name AS name, p.description AS description, p.price AS price, p.location AS location
	`

	records, err := r.G.Run(ctx, query, map[string]any{"uid": userID})
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, recordToProduct(rec))
	}

	return products, nil
}

// ==========================
// Clear
// ==========================
// Clear removes every ADDED_TO_CART edge for the user. Clearing an empty
// cart matches nothing and is a safe no-op.
func (r *CartRepo) Clear(ctx context.Context, userID string) error {
	query := `
		MATCH (u:User {id: $uid})-[rel:ADDED_TO_CART]->(:Product)
		DELETE rel
	`

	_, err := r.G.Run(ctx, query, map[string]any{"uid": userID})
	return err
}
